package core

// Speed selects the slew rate of an output driver. Orthogonal to the pin
// mode; changing it never retags a handle.
type Speed uint8

const (
	SpeedLow Speed = iota
	SpeedMedium
	SpeedHigh
	SpeedVeryHigh
)

// AltFunc selects one of the alternate function numbers a pin can be routed
// to. The meaning of each number is bank- and pin-specific and belongs to the
// peripheral claiming the pin, not to this layer.
type AltFunc uint8

const (
	AF0 AltFunc = iota
	AF1
	AF2
	AF3
	AF4
	AF5
	AF6
	AF7
)

// pin is the identity shared by every handle type: which bank, which bit
// position, and the register block to write through. It is embedded by the
// mode-tagged handle types and never used on its own.
type pin struct {
	port  Port
	index uint8
	regs  RegisterBlock
}

// Port reports the bank this handle belongs to.
func (p pin) Port() Port { return p.port }

// Index reports the pin's bit position within the bank's registers.
func (p pin) Index() uint8 { return p.index }

// SetSpeed writes the slew-rate selector for this pin. Any mode may call it.
func (p pin) SetSpeed(s Speed) {
	shift := 2 * uint32(p.index)
	p.regs.Modify(RegSpeed, 0b11<<shift, uint32(s)<<shift)
}

// setMode commits the 2-bit mode selector. This is always the last write of
// a transition sequence so the pin never drives with stale type/pull bits.
func (p pin) setMode(mode uint32) {
	shift := 2 * uint32(p.index)
	p.regs.Modify(RegMode, 0b11<<shift, mode<<shift)
}

func (p pin) setPull(pull uint32) {
	shift := 2 * uint32(p.index)
	p.regs.Modify(RegPull, 0b11<<shift, pull<<shift)
}

func (p pin) setOutputType(typ uint32) {
	p.regs.Modify(RegOutputType, 1<<uint32(p.index), typ<<uint32(p.index))
}

// intoInput reconfigures the pin as an input with the given pull selection.
func (p pin) intoInput(pull uint32) pin {
	p.setPull(pull)
	p.setMode(modeInput)
	return p
}

// intoOutput reconfigures the pin as an output of the given drive type. The
// pull and type bits are written before the mode selector commits the pin to
// output, so a transient output state with stale bits never appears on the
// physical pin.
func (p pin) intoOutput(typ uint32) pin {
	p.setPull(pullNone)
	p.setOutputType(typ)
	p.setMode(modeOutput)
	return p
}

func (p pin) intoAnalog() pin {
	p.setPull(pullNone)
	p.setMode(modeAnalog)
	return p
}

// intoTriState parks the pin in the tri-state rest configuration, which is
// bit-identical to a floating input. The tri-state behavior itself lives in
// TriStatePin.
func (p pin) intoTriState() pin {
	p.setMode(modeInput)
	p.setPull(pullNone)
	return p
}

// intoAltFunc routes the pin to an alternate function for use by another
// peripheral. Only the function number and the "alternate" mode bits are
// recorded here; everything else is the peripheral's business.
func (p pin) intoAltFunc(af AltFunc) pin {
	reg := RegAltLow
	shift := 4 * uint32(p.index)
	if p.index >= 8 {
		reg = RegAltHigh
		shift = 4 * uint32(p.index-8)
	}
	p.regs.Modify(reg, 0b1111<<shift, uint32(af)<<shift)
	p.setMode(modeAlternate)
	return p
}

// setHigh and setLow go through the set/reset register: one plain write, no
// read-modify-write, so concurrent writers on other pins of the same bank
// cannot be disturbed.
func (p pin) setHigh() { p.regs.Write(RegSetReset, 1<<uint32(p.index)) }
func (p pin) setLow()  { p.regs.Write(RegSetReset, 1<<(uint32(p.index)+16)) }

// outputLow reads back the last driven level from the output data register.
func (p pin) outputLow() bool {
	return p.regs.Read(RegOutput)&(1<<uint32(p.index)) == 0
}

// inputLow reads the physical pin level from the input data register.
func (p pin) inputLow() bool {
	return p.regs.Read(RegInput)&(1<<uint32(p.index)) == 0
}

// modeBits reads the current 2-bit mode selector for this pin.
func (p pin) modeBits() uint32 {
	return p.regs.Read(RegMode) >> (2 * uint32(p.index)) & 0b11
}

// Split enables the bank's clock and mints one handle per pin index, all
// tagged as floating inputs to match the hardware reset state. It is the
// sole entry point for obtaining handles; holding a handle stands for
// exclusive ownership of its (port, index) pair, and callers must not
// duplicate one.
func Split(port Port, regs RegisterBlock, clk ClockEnabler) [PinCount]FloatingInput {
	clk.EnableClock(port)

	var pins [PinCount]FloatingInput
	for i := range pins {
		pins[i] = FloatingInput{pin{port: port, index: uint8(i), regs: regs}}
	}
	return pins
}
