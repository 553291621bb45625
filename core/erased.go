package core

import "fmt"

// Mode is the runtime form of a handle's mode tag, used by erased pins.
type Mode uint8

const (
	ModeFloatingInput Mode = iota
	ModePullUpInput
	ModePullDownInput
	ModePushPullOutput
	ModeOpenDrainOutput
	ModeAnalog
	ModeTriState
	ModeAltFunc
)

func (m Mode) String() string {
	switch m {
	case ModeFloatingInput:
		return "floating-input"
	case ModePullUpInput:
		return "pull-up-input"
	case ModePullDownInput:
		return "pull-down-input"
	case ModePushPullOutput:
		return "push-pull-output"
	case ModeOpenDrainOutput:
		return "open-drain-output"
	case ModeAnalog:
		return "analog"
	case ModeTriState:
		return "tri-state"
	case ModeAltFunc:
		return "alternate"
	}
	return "invalid"
}

// ErasedPin carries the mode tag as a runtime value instead of a type, so
// pins of mixed modes can live in one slice. The register effects of every
// operation are identical to the typed handle it was downgraded from; what
// is lost is the compile-time proof that an operation is legal for the
// current mode. That check happens at run time instead and a violation
// panics rather than touching the registers — an erased handle must fail
// loudly, never misdrive a pin.
//
// Erasure is one-directional. As with typed handles, the caller owns
// exclusivity: no two erased pins may refer to the same (port, index).
type ErasedPin struct {
	pin
	mode Mode
}

// Mode reports the current runtime mode tag.
func (p *ErasedPin) Mode() Mode { return p.mode }

func (p *ErasedPin) String() string {
	return fmt.Sprintf("%s%d (%s)", p.port, p.index, p.mode)
}

func (p *ErasedPin) guard(op string, want ...Mode) {
	for _, m := range want {
		if p.mode == m {
			return
		}
	}
	panic(fmt.Sprintf("core: %s on %s%d while %s", op, p.port, p.index, p.mode))
}

// SetHigh drives the pin high. Panics unless the pin is in an output mode.
func (p *ErasedPin) SetHigh() {
	p.guard("SetHigh", ModePushPullOutput, ModeOpenDrainOutput)
	p.setHigh()
}

// SetLow drives the pin low. Panics unless the pin is in an output mode.
func (p *ErasedPin) SetLow() {
	p.guard("SetLow", ModePushPullOutput, ModeOpenDrainOutput)
	p.setLow()
}

// Toggle inverts the last driven level. Panics unless in an output mode.
func (p *ErasedPin) Toggle() {
	p.guard("Toggle", ModePushPullOutput, ModeOpenDrainOutput)
	if p.outputLow() {
		p.setHigh()
	} else {
		p.setLow()
	}
}

// IsSetHigh reads back the last driven level. Panics unless in an output
// mode.
func (p *ErasedPin) IsSetHigh() bool {
	p.guard("IsSetHigh", ModePushPullOutput, ModeOpenDrainOutput)
	return !p.outputLow()
}

// IsSetLow reads back the last driven level. Panics unless in an output
// mode.
func (p *ErasedPin) IsSetLow() bool {
	p.guard("IsSetLow", ModePushPullOutput, ModeOpenDrainOutput)
	return p.outputLow()
}

// IsHigh reads the physical pin level. Panics on analog or alternate pins,
// whose input path is disconnected.
func (p *ErasedPin) IsHigh() bool {
	p.guard("IsHigh", ModeFloatingInput, ModePullUpInput, ModePullDownInput,
		ModePushPullOutput, ModeOpenDrainOutput, ModeTriState)
	return !p.inputLow()
}

// IsLow reads the physical pin level. Panics on analog or alternate pins.
func (p *ErasedPin) IsLow() bool {
	p.guard("IsLow", ModeFloatingInput, ModePullUpInput, ModePullDownInput,
		ModePushPullOutput, ModeOpenDrainOutput, ModeTriState)
	return p.inputLow()
}

// Set moves a tri-state pin to the given logical state. Panics unless the
// pin is tri-state tagged.
func (p *ErasedPin) Set(s PinState) {
	p.guard("Set", ModeTriState)
	TriStatePin{p.pin}.Set(s)
}

// State reports a tri-state pin's logical state. Panics unless the pin is
// tri-state tagged.
func (p *ErasedPin) State() PinState {
	p.guard("State", ModeTriState)
	return TriStatePin{p.pin}.State()
}

// Reconfigure rewrites the pin's registers for the given mode and retags the
// handle. This is the runtime-checked counterpart of the typed Into*
// transitions, for callers that hold only erased pins. Alternate mode cannot
// be entered here because it needs a function number; use ReconfigureAltFunc.
func (p *ErasedPin) Reconfigure(m Mode) {
	switch m {
	case ModeFloatingInput:
		p.pin = p.intoInput(pullNone)
	case ModePullUpInput:
		p.pin = p.intoInput(pullUp)
	case ModePullDownInput:
		p.pin = p.intoInput(pullDown)
	case ModePushPullOutput:
		p.pin = p.intoOutput(typePushPull)
	case ModeOpenDrainOutput:
		p.pin = p.intoOutput(typeOpenDrain)
	case ModeAnalog:
		p.pin = p.intoAnalog()
	case ModeTriState:
		p.pin = p.intoTriState()
	default:
		panic(fmt.Sprintf("core: Reconfigure to %s on %s%d", m, p.port, p.index))
	}
	p.mode = m
}

// ReconfigureAltFunc routes the pin to the given alternate function and
// retags the handle. Split off from Reconfigure because alternate mode
// carries the function number.
func (p *ErasedPin) ReconfigureAltFunc(af AltFunc) {
	p.pin = p.intoAltFunc(af)
	p.mode = ModeAltFunc
}

// Downgrade erases the handle's static mode tag.

func (p FloatingInput) Downgrade() ErasedPin {
	return ErasedPin{pin: p.pin, mode: ModeFloatingInput}
}

func (p PullUpInput) Downgrade() ErasedPin {
	return ErasedPin{pin: p.pin, mode: ModePullUpInput}
}

func (p PullDownInput) Downgrade() ErasedPin {
	return ErasedPin{pin: p.pin, mode: ModePullDownInput}
}

func (p PushPullOutput) Downgrade() ErasedPin {
	return ErasedPin{pin: p.pin, mode: ModePushPullOutput}
}

func (p OpenDrainOutput) Downgrade() ErasedPin {
	return ErasedPin{pin: p.pin, mode: ModeOpenDrainOutput}
}

func (p AnalogPin) Downgrade() ErasedPin {
	return ErasedPin{pin: p.pin, mode: ModeAnalog}
}

func (p TriStatePin) Downgrade() ErasedPin {
	return ErasedPin{pin: p.pin, mode: ModeTriState}
}

func (p AltFuncPin) Downgrade() ErasedPin {
	return ErasedPin{pin: p.pin, mode: ModeAltFunc}
}
