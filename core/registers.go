package core

// Register names one of the per-bank 32-bit registers behind a RegisterBlock.
type Register uint8

const (
	// RegMode holds 2 bits per pin: input=00, output=01, alternate=10,
	// analog=11.
	RegMode Register = iota
	// RegPull holds 2 bits per pin: none=00, pull-up=01, pull-down=10.
	RegPull
	// RegOutputType holds 1 bit per pin: push-pull=0, open-drain=1.
	RegOutputType
	// RegSpeed holds 2 bits per pin of slew-rate selection.
	RegSpeed
	// RegAltLow / RegAltHigh hold 4 bits per pin of alternate function
	// number, for pins 0-7 and 8-15 respectively.
	RegAltLow
	RegAltHigh
	// RegInput is the read-only input data snapshot, 1 bit per pin.
	RegInput
	// RegOutput is the output data register, 1 bit per pin.
	RegOutput
	// RegSetReset is the write-only set/reset register: bit n sets pin n's
	// output data bit, bit n+16 clears it, in one bus transaction.
	RegSetReset
)

// RegisterBlock is the driver's only window onto a GPIO bank's registers.
// Implementations must perform every call as a single indivisible bus
// transaction; Modify must clear exactly the masked bits and OR in the new
// ones without disturbing other pins' fields. Calls cannot fail on this
// hardware class, so there is no error path.
//
// Backends: memory-mapped blocks (targets/stm32l0), the register simulator
// (sim), a serial debug probe (host/probe) and an I2C expander
// (devices/expander).
type RegisterBlock interface {
	Read(r Register) uint32
	Write(r Register, value uint32)
	Modify(r Register, mask, bits uint32)
}

// Two-bit field values for RegMode.
const (
	modeInput     = 0b00
	modeOutput    = 0b01
	modeAlternate = 0b10
	modeAnalog    = 0b11
)

// Two-bit field values for RegPull.
const (
	pullNone = 0b00
	pullUp   = 0b01
	pullDown = 0b10
)

// One-bit field values for RegOutputType.
const (
	typePushPull  = 0b0
	typeOpenDrain = 0b1
)
