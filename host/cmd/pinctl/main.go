// pinctl is an interactive console for poking GPIO pins, either on a local
// register simulator or on a remote target behind a serial debug probe.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"

	"pindrv/core"
	"pindrv/host/probe"
	"pindrv/host/serial"
	"pindrv/sim"
)

var (
	device   = flag.String("device", "", "Serial device of a register probe (empty = local simulator)")
	baud     = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	verbose  = flag.Bool("verbose", false, "Enable register transaction tracing")
	simulate = flag.Bool("sim", true, "Use the local register simulator")
)

// session owns the register backends and the erased pin handles minted so
// far. Pins are erased because the console decides modes at run time.
type session struct {
	log   *logrus.Logger
	probe *probe.Probe
	banks map[core.Port]*sim.Bank
	pins  map[string]*core.ErasedPin
}

func main() {
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	s := &session{
		log:   log,
		banks: make(map[core.Port]*sim.Bank),
		pins:  make(map[string]*core.ErasedPin),
	}

	if *device != "" {
		cfg := serial.DefaultConfig(*device)
		cfg.Baud = *baud
		p, err := probe.Open(cfg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open probe: %v\n", err)
			os.Exit(1)
		}
		defer p.Close()
		s.probe = p
		fmt.Printf("Connected to register probe on %s\n", *device)
	} else if !*simulate {
		fmt.Fprintln(os.Stderr, "Error: no probe device and simulator disabled")
		os.Exit(1)
	} else {
		fmt.Println("Using local register simulator")
	}

	fmt.Println("pinctl - GPIO pin console")
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args, err := shlex.Split(line)
		if err != nil {
			fmt.Printf("parse error: %v\n", err)
			continue
		}
		if args[0] == "quit" || args[0] == "exit" || args[0] == "q" {
			return
		}
		if err := s.run(args); err != nil {
			fmt.Printf("error: %v\n", err)
		}
		if s.probe != nil {
			if err := s.probe.Err(); err != nil {
				fmt.Fprintf(os.Stderr, "probe link failed: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

func (s *session) run(args []string) error {
	switch args[0] {
	case "help":
		printHelp()
		return nil
	case "mode":
		return s.cmdMode(args[1:])
	case "set":
		return s.cmdSet(args[1:])
	case "read":
		return s.cmdRead(args[1:])
	case "tri":
		return s.cmdTri(args[1:])
	case "state":
		return s.cmdState(args[1:])
	case "speed":
		return s.cmdSpeed(args[1:])
	case "af":
		return s.cmdAf(args[1:])
	case "regs":
		return s.cmdRegs(args[1:])
	case "drive":
		return s.cmdDrive(args[1:])
	case "release":
		return s.cmdRelease(args[1:])
	case "pins":
		s.cmdPins()
		return nil
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func printHelp() {
	fmt.Print(`Commands:
  mode <pin> <mode>    reconfigure a pin; modes: floating, pull-up, pull-down,
                       output-pp, output-od, analog, tristate
  set <pin> high|low   drive an output pin
  read <pin>           read the physical pin level
  tri <pin> <state>    set a tri-state pin: low, high, float
  state <pin>          query a tri-state pin
  speed <pin> <speed>  slew rate: low, medium, high, veryhigh
  af <pin> <0-7>       route a pin to an alternate function
  regs <port>          dump a bank's registers
  drive <pin> high|low apply an external level (simulator only)
  release <pin>        remove the external level (simulator only)
  pins                 list configured pins
  quit                 exit

Pins are named like a5 or PC13.
`)
}

// pinAt parses names like "a5" or "PC13" and returns the erased handle,
// minting the whole bank on first touch.
func (s *session) pinAt(name string) (*core.ErasedPin, error) {
	name = strings.ToUpper(name)
	name = strings.TrimPrefix(name, "P")
	if len(name) < 2 || name[0] < 'A' || name[0] > 'H' {
		return nil, fmt.Errorf("bad pin name %q", name)
	}
	port := core.Port(name[0] - 'A')
	index, err := strconv.Atoi(name[1:])
	if err != nil || index < 0 || index >= core.PinCount {
		return nil, fmt.Errorf("bad pin index %q", name[1:])
	}

	key := fmt.Sprintf("%s%d", port, index)
	if p, ok := s.pins[key]; ok {
		return p, nil
	}

	split := core.Split(port, s.block(port), core.NopClockEnabler{})
	for i := range split {
		erased := split[i].Downgrade()
		s.pins[fmt.Sprintf("%s%d", port, i)] = &erased
	}
	return s.pins[key], nil
}

func (s *session) block(port core.Port) core.RegisterBlock {
	if s.probe != nil {
		return s.probe.Block(port)
	}
	bank, ok := s.banks[port]
	if !ok {
		var opts []sim.Option
		if *verbose {
			opts = append(opts, sim.WithLogger(s.log))
		}
		bank = sim.NewBank(port.String(), opts...)
		s.banks[port] = bank
	}
	return bank
}

func (s *session) bankOf(name string) (*sim.Bank, uint8, error) {
	p, err := s.pinAt(name)
	if err != nil {
		return nil, 0, err
	}
	bank, ok := s.banks[p.Port()]
	if !ok {
		return nil, 0, fmt.Errorf("%s is not on the simulator", name)
	}
	return bank, p.Index(), nil
}

var modeNames = map[string]core.Mode{
	"floating":  core.ModeFloatingInput,
	"pull-up":   core.ModePullUpInput,
	"pull-down": core.ModePullDownInput,
	"output-pp": core.ModePushPullOutput,
	"output-od": core.ModeOpenDrainOutput,
	"analog":    core.ModeAnalog,
	"tristate":  core.ModeTriState,
}

func (s *session) cmdMode(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: mode <pin> <mode>")
	}
	p, err := s.pinAt(args[0])
	if err != nil {
		return err
	}
	mode, ok := modeNames[args[1]]
	if !ok {
		return fmt.Errorf("unknown mode %q", args[1])
	}
	p.Reconfigure(mode)
	fmt.Printf("%s\n", p)
	return nil
}

func (s *session) cmdSet(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <pin> high|low")
	}
	p, err := s.pinAt(args[0])
	if err != nil {
		return err
	}
	switch p.Mode() {
	case core.ModePushPullOutput, core.ModeOpenDrainOutput:
	default:
		return fmt.Errorf("%s is not an output", p)
	}
	switch args[1] {
	case "high":
		p.SetHigh()
	case "low":
		p.SetLow()
	default:
		return fmt.Errorf("bad level %q", args[1])
	}
	return nil
}

func (s *session) cmdRead(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: read <pin>")
	}
	p, err := s.pinAt(args[0])
	if err != nil {
		return err
	}
	switch p.Mode() {
	case core.ModeAnalog, core.ModeAltFunc:
		return fmt.Errorf("%s has no digital input path", p)
	}
	if p.IsHigh() {
		fmt.Println("high")
	} else {
		fmt.Println("low")
	}
	return nil
}

var stateNames = map[string]core.PinState{
	"low":   core.StateLow,
	"high":  core.StateHigh,
	"float": core.StateFloating,
}

func (s *session) cmdTri(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: tri <pin> low|high|float")
	}
	p, err := s.pinAt(args[0])
	if err != nil {
		return err
	}
	if p.Mode() != core.ModeTriState {
		return fmt.Errorf("%s is not tri-state; run: mode %s tristate", p, args[0])
	}
	state, ok := stateNames[args[1]]
	if !ok {
		return fmt.Errorf("bad state %q", args[1])
	}
	p.Set(state)
	return nil
}

func (s *session) cmdState(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: state <pin>")
	}
	p, err := s.pinAt(args[0])
	if err != nil {
		return err
	}
	if p.Mode() != core.ModeTriState {
		return fmt.Errorf("%s is not tri-state", p)
	}
	fmt.Println(p.State())
	return nil
}

var speedNames = map[string]core.Speed{
	"low":      core.SpeedLow,
	"medium":   core.SpeedMedium,
	"high":     core.SpeedHigh,
	"veryhigh": core.SpeedVeryHigh,
}

func (s *session) cmdSpeed(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: speed <pin> <speed>")
	}
	p, err := s.pinAt(args[0])
	if err != nil {
		return err
	}
	speed, ok := speedNames[args[1]]
	if !ok {
		return fmt.Errorf("bad speed %q", args[1])
	}
	p.SetSpeed(speed)
	return nil
}

func (s *session) cmdAf(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: af <pin> <0-7>")
	}
	p, err := s.pinAt(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < int(core.AF0) || n > int(core.AF7) {
		return fmt.Errorf("bad alternate function %q", args[1])
	}
	p.ReconfigureAltFunc(core.AltFunc(n))
	fmt.Printf("%s\n", p)
	return nil
}

// regNames lists the dumpable registers; the set/reset register is
// write-only and omitted.
var regNames = []struct {
	name string
	reg  core.Register
}{
	{"mode", core.RegMode},
	{"pull", core.RegPull},
	{"otype", core.RegOutputType},
	{"speed", core.RegSpeed},
	{"afl", core.RegAltLow},
	{"afh", core.RegAltHigh},
	{"input", core.RegInput},
	{"output", core.RegOutput},
}

func (s *session) cmdRegs(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: regs <port>")
	}
	port, err := parsePort(args[0])
	if err != nil {
		return err
	}
	block := s.block(port)
	for _, r := range regNames {
		fmt.Printf("  %-6s 0x%08x\n", r.name, block.Read(r.reg))
	}
	return nil
}

func parsePort(name string) (core.Port, error) {
	name = strings.TrimPrefix(strings.ToUpper(name), "P")
	if len(name) != 1 || name[0] < 'A' || name[0] > 'H' {
		return 0, fmt.Errorf("bad port %q", name)
	}
	return core.Port(name[0] - 'A'), nil
}

func (s *session) cmdDrive(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: drive <pin> high|low")
	}
	bank, index, err := s.bankOf(args[0])
	if err != nil {
		return err
	}
	switch args[1] {
	case "high":
		bank.Drive(index, true)
	case "low":
		bank.Drive(index, false)
	default:
		return fmt.Errorf("bad level %q", args[1])
	}
	return nil
}

func (s *session) cmdRelease(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: release <pin>")
	}
	bank, index, err := s.bankOf(args[0])
	if err != nil {
		return err
	}
	bank.Release(index)
	return nil
}

func (s *session) cmdPins() {
	for _, p := range s.pins {
		if p.Mode() != core.ModeFloatingInput {
			fmt.Println(p)
		}
	}
}
