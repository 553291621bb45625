package core

// I/O operations available per mode tag. Output handles drive through the
// set/reset register and can read back both the last driven level (output
// data register) and the physical pin level (input data register); input
// handles only read the physical level.

// SetHigh drives the pin high.
func (p PushPullOutput) SetHigh() { p.setHigh() }

// SetLow drives the pin low.
func (p PushPullOutput) SetLow() { p.setLow() }

// Toggle inverts the last driven level.
func (p PushPullOutput) Toggle() {
	if p.outputLow() {
		p.setHigh()
	} else {
		p.setLow()
	}
}

// IsSetHigh reports whether the last driven level was high. This reads the
// output data register, not the pin itself.
func (p PushPullOutput) IsSetHigh() bool { return !p.outputLow() }

// IsSetLow reports whether the last driven level was low.
func (p PushPullOutput) IsSetLow() bool { return p.outputLow() }

// IsHigh reports the physical pin level, independent of what was driven.
func (p PushPullOutput) IsHigh() bool { return !p.inputLow() }

// IsLow reports whether the physical pin level is low.
func (p PushPullOutput) IsLow() bool { return p.inputLow() }

// SetHigh releases the pin; the external or internal pull-up supplies the
// high level.
func (p OpenDrainOutput) SetHigh() { p.setHigh() }

// SetLow sinks the pin low.
func (p OpenDrainOutput) SetLow() { p.setLow() }

// Toggle inverts the last driven level.
func (p OpenDrainOutput) Toggle() {
	if p.outputLow() {
		p.setHigh()
	} else {
		p.setLow()
	}
}

// IsSetHigh reports whether the last driven level was high.
func (p OpenDrainOutput) IsSetHigh() bool { return !p.outputLow() }

// IsSetLow reports whether the last driven level was low.
func (p OpenDrainOutput) IsSetLow() bool { return p.outputLow() }

// IsHigh reports the physical pin level. On an open-drain pin this can
// disagree with the driven level when the bus is held by another party.
func (p OpenDrainOutput) IsHigh() bool { return !p.inputLow() }

// IsLow reports whether the physical pin level is low.
func (p OpenDrainOutput) IsLow() bool { return p.inputLow() }

// IsHigh reports whether the pin reads high.
func (p FloatingInput) IsHigh() bool { return !p.inputLow() }

// IsLow reports whether the pin reads low.
func (p FloatingInput) IsLow() bool { return p.inputLow() }

// IsHigh reports whether the pin reads high.
func (p PullUpInput) IsHigh() bool { return !p.inputLow() }

// IsLow reports whether the pin reads low.
func (p PullUpInput) IsLow() bool { return p.inputLow() }

// IsHigh reports whether the pin reads high.
func (p PullDownInput) IsHigh() bool { return !p.inputLow() }

// IsLow reports whether the pin reads low.
func (p PullDownInput) IsLow() bool { return p.inputLow() }
