package core_test

import (
	"testing"

	"pindrv/core"
	"pindrv/sim"
)

// countingClock records EnableClock calls.
type countingClock struct {
	ports []core.Port
}

func (c *countingClock) EnableClock(p core.Port) {
	c.ports = append(c.ports, p)
}

// newBank splits a fresh simulated bank and returns it with its pins.
func newBank(t *testing.T) (*sim.Bank, [core.PinCount]core.FloatingInput) {
	t.Helper()
	bank := sim.NewBank(t.Name())
	pins := core.Split(core.PortA, bank, core.NopClockEnabler{})
	return bank, pins
}

// modeField extracts the 2-bit mode selector for one pin.
func modeField(bank *sim.Bank, index uint8) uint32 {
	return bank.Peek(core.RegMode) >> (2 * uint32(index)) & 0b11
}

func pullField(bank *sim.Bank, index uint8) uint32 {
	return bank.Peek(core.RegPull) >> (2 * uint32(index)) & 0b11
}

func typeField(bank *sim.Bank, index uint8) uint32 {
	return bank.Peek(core.RegOutputType) >> uint32(index) & 0b1
}

func TestSplit(t *testing.T) {
	bank := sim.NewBank("porta")
	clk := &countingClock{}

	pins := core.Split(core.PortA, bank, clk)

	if len(clk.ports) != 1 || clk.ports[0] != core.PortA {
		t.Errorf("expected one clock enable for PortA, got %v", clk.ports)
	}
	for i, p := range pins {
		if p.Port() != core.PortA {
			t.Errorf("pin %d: port = %v, want PortA", i, p.Port())
		}
		if int(p.Index()) != i {
			t.Errorf("pin %d: index = %d", i, p.Index())
		}
	}
	// Split must not touch the registers: the handles describe the reset
	// state, they do not impose it.
	if n := len(bank.Journal()); n != 0 {
		t.Errorf("split performed %d register transactions, want 0", n)
	}
}

func TestTransitionRegisterAgreement(t *testing.T) {
	const index = 7

	testCases := []struct {
		name     string
		into     func(core.FloatingInput) // consumes the handle
		wantMode uint32
		wantPull uint32
		wantType uint32
	}{
		{
			name:     "floating input",
			into:     func(p core.FloatingInput) { p.IntoFloatingInput() },
			wantMode: 0b00, wantPull: 0b00,
		},
		{
			name:     "pull-up input",
			into:     func(p core.FloatingInput) { p.IntoPullUpInput() },
			wantMode: 0b00, wantPull: 0b01,
		},
		{
			name:     "pull-down input",
			into:     func(p core.FloatingInput) { p.IntoPullDownInput() },
			wantMode: 0b00, wantPull: 0b10,
		},
		{
			name:     "analog",
			into:     func(p core.FloatingInput) { p.IntoAnalog() },
			wantMode: 0b11, wantPull: 0b00,
		},
		{
			name:     "push-pull output",
			into:     func(p core.FloatingInput) { p.IntoPushPullOutput() },
			wantMode: 0b01, wantPull: 0b00, wantType: 0b0,
		},
		{
			name:     "open-drain output",
			into:     func(p core.FloatingInput) { p.IntoOpenDrainOutput() },
			wantMode: 0b01, wantPull: 0b00, wantType: 0b1,
		},
		{
			name:     "tri-state",
			into:     func(p core.FloatingInput) { p.IntoTriState() },
			wantMode: 0b00, wantPull: 0b00,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bank, pins := newBank(t)
			tc.into(pins[index])

			if got := modeField(bank, index); got != tc.wantMode {
				t.Errorf("mode field = %02b, want %02b", got, tc.wantMode)
			}
			if got := pullField(bank, index); got != tc.wantPull {
				t.Errorf("pull field = %02b, want %02b", got, tc.wantPull)
			}
			if got := typeField(bank, index); got != tc.wantType {
				t.Errorf("output type field = %b, want %b", got, tc.wantType)
			}
		})
	}
}

func TestTransitionTouchesOnlyOwnFields(t *testing.T) {
	bank, pins := newBank(t)

	// Configure neighbors first, then retag pin 7 and check the neighbors'
	// fields survived.
	pins[6].IntoPullUpInput()
	pins[8].IntoOpenDrainOutput()
	pins[7].IntoPushPullOutput()

	if got := pullField(bank, 6); got != 0b01 {
		t.Errorf("pin 6 pull field = %02b after pin 7 transition, want %02b", got, 0b01)
	}
	if got := modeField(bank, 8); got != 0b01 {
		t.Errorf("pin 8 mode field = %02b after pin 7 transition, want %02b", got, 0b01)
	}
	if got := typeField(bank, 8); got != 0b1 {
		t.Errorf("pin 8 output type = %b after pin 7 transition, want 1", got)
	}
}

func TestOutputTransitionOrdering(t *testing.T) {
	bank, pins := newBank(t)
	bank.ResetJournal()

	pins[4].IntoPushPullOutput()

	journal := bank.Journal()
	if len(journal) != 3 {
		t.Fatalf("expected 3 register transactions, got %d: %v", len(journal), journal)
	}
	// The mode selector commit must come last so the pin never drives with
	// stale type/pull bits.
	want := []core.Register{core.RegPull, core.RegOutputType, core.RegMode}
	for i, reg := range want {
		if journal[i].Op != sim.OpModify || journal[i].Reg != reg {
			t.Errorf("transaction %d = %v %v, want modify of register %v",
				i, journal[i].Op, journal[i].Reg, reg)
		}
	}
}

func TestPushPullOutputIdempotent(t *testing.T) {
	bank, pins := newBank(t)

	out := pins[3].IntoPushPullOutput()
	first := [3]uint32{
		bank.Peek(core.RegMode),
		bank.Peek(core.RegPull),
		bank.Peek(core.RegOutputType),
	}

	out = out.IntoPushPullOutput()
	second := [3]uint32{
		bank.Peek(core.RegMode),
		bank.Peek(core.RegPull),
		bank.Peek(core.RegOutputType),
	}
	_ = out

	if first != second {
		t.Errorf("repeat transition changed registers: %v -> %v", first, second)
	}
}

func TestOutputReadback(t *testing.T) {
	bank, pins := newBank(t)
	out := pins[2].IntoPushPullOutput()

	out.SetHigh()
	if !out.IsSetHigh() || out.IsSetLow() {
		t.Error("after SetHigh: IsSetHigh/IsSetLow disagree with driven level")
	}
	// The physical level follows the driven level on an ideal connection.
	if !out.IsHigh() {
		t.Error("after SetHigh: IsHigh = false")
	}

	out.SetLow()
	if out.IsSetHigh() || !out.IsSetLow() {
		t.Error("after SetLow: IsSetHigh/IsSetLow disagree with driven level")
	}
	if !out.IsLow() {
		t.Error("after SetLow: IsLow = false")
	}

	out.Toggle()
	if !out.IsSetHigh() {
		t.Error("after Toggle from low: IsSetHigh = false")
	}
	_ = bank
}

func TestSetResetIsPlainWrite(t *testing.T) {
	bank, pins := newBank(t)
	out := pins[9].IntoPushPullOutput()
	bank.ResetJournal()

	out.SetHigh()
	out.SetLow()

	journal := bank.Journal()
	if len(journal) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(journal))
	}
	for i, tr := range journal {
		if tr.Op != sim.OpWrite || tr.Reg != core.RegSetReset {
			t.Errorf("transaction %d = %v %v, want plain write to set/reset register", i, tr.Op, tr.Reg)
		}
	}
	if journal[0].Value != 1<<9 {
		t.Errorf("set value = %#x, want %#x", journal[0].Value, uint32(1)<<9)
	}
	if journal[1].Value != 1<<(9+16) {
		t.Errorf("reset value = %#x, want %#x", journal[1].Value, uint32(1)<<(9+16))
	}
}

func TestInputLevels(t *testing.T) {
	bank, pins := newBank(t)

	in := pins[11].IntoFloatingInput()
	bank.Drive(11, true)
	if !in.IsHigh() {
		t.Error("driven-high floating input reads low")
	}
	bank.Drive(11, false)
	if !in.IsLow() {
		t.Error("driven-low floating input reads high")
	}
	bank.Release(11)

	up := pins[12].IntoPullUpInput()
	if !up.IsHigh() {
		t.Error("undriven pull-up input reads low")
	}
	down := pins[13].IntoPullDownInput()
	if !down.IsLow() {
		t.Error("undriven pull-down input reads high")
	}
}

func TestSetSpeed(t *testing.T) {
	bank, pins := newBank(t)
	out := pins[5].IntoPushPullOutput()

	out.SetSpeed(core.SpeedVeryHigh)
	if got := bank.Peek(core.RegSpeed) >> 10 & 0b11; got != uint32(core.SpeedVeryHigh) {
		t.Errorf("speed field = %02b, want %02b", got, uint32(core.SpeedVeryHigh))
	}
	// Speed is orthogonal to mode: the mode selector must be untouched.
	if got := modeField(bank, 5); got != 0b01 {
		t.Errorf("mode field = %02b after SetSpeed, want %02b", got, 0b01)
	}
}

func TestAltFunc(t *testing.T) {
	testCases := []struct {
		index uint8
		af    core.AltFunc
		reg   core.Register
		shift uint32
	}{
		{index: 3, af: core.AF7, reg: core.RegAltLow, shift: 12},
		{index: 10, af: core.AF2, reg: core.RegAltHigh, shift: 8},
	}

	for _, tc := range testCases {
		bank, pins := newBank(t)
		pins[tc.index].IntoAltFunc(tc.af)

		if got := bank.Peek(tc.reg) >> tc.shift & 0b1111; got != uint32(tc.af) {
			t.Errorf("pin %d: AF field = %d, want %d", tc.index, got, tc.af)
		}
		if got := modeField(bank, tc.index); got != 0b10 {
			t.Errorf("pin %d: mode field = %02b, want alternate", tc.index, got)
		}
	}
}
