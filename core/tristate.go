package core

// TriStatePin drives one of three logical states over a substrate that only
// knows input and output: Low and High are push-pull output with the matching
// data bit, Floating is plain input with no pull. The engine keeps no
// software state at all; the current logical state is recomputed from the
// registers on every query, so it stays truthful even if something outside
// this process reset the bank.
type TriStatePin struct{ pin }

// PinState is the logical state of a tri-state pin.
type PinState uint8

const (
	StateFloating PinState = iota
	StateLow
	StateHigh
)

func (s PinState) String() string {
	switch s {
	case StateFloating:
		return "floating"
	case StateLow:
		return "low"
	case StateHigh:
		return "high"
	}
	return "invalid"
}

// Set moves the pin to the requested logical state.
//
// For Low and High the output data bit is written first, through the atomic
// set/reset register, and only then are the output type and mode committed.
// A pin entering output mode therefore drives the requested level from the
// very first moment; the wrong level never appears, not even transiently.
// Switching between Low and High while already in output mode reduces to the
// single data write, with the type/mode writes as no-ops.
//
// For Floating the mode selector alone is reset to input; an input has no
// drive strength, so there is no ordering hazard.
func (p TriStatePin) Set(s PinState) {
	switch s {
	case StateFloating:
		p.setMode(modeInput)
	case StateLow:
		p.setLow()
		p.setOutputType(typePushPull)
		p.setMode(modeOutput)
	case StateHigh:
		p.setHigh()
		p.setOutputType(typePushPull)
		p.setMode(modeOutput)
	}
}

// State reports the current logical state, purely from register contents: a
// mode selector reading "input" means Floating regardless of whatever stale
// value the output data bit holds; otherwise the output data bit decides
// between Low and High.
func (p TriStatePin) State() PinState {
	if p.modeBits() == modeInput {
		return StateFloating
	}
	if p.outputLow() {
		return StateLow
	}
	return StateHigh
}
