// GPIO pin handles and the mode transition engine.
// Every handle ties a (port, index) pair to a mode tag; transitions rewrite
// the bank registers and retag the handle in one move, so the advertised
// mode and the register contents can never disagree.
package core

// Port identifies a GPIO bank. The value is fixed for the lifetime of every
// pin handle minted on the bank.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
	PortH
)

// PinCount is the number of pin indices per bank.
const PinCount = 16

func (p Port) String() string {
	if p > PortH {
		return "P?"
	}
	return string([]byte{'P', 'A' + byte(p)})
}

// ClockEnabler gates the peripheral clock for a GPIO bank. Clock and reset
// configuration live outside this layer; Split only asks the collaborator to
// turn the bank on before handing out pin handles.
type ClockEnabler interface {
	EnableClock(port Port)
}

// NopClockEnabler is for banks that have no clock gate, such as I2C expander
// ports or the register simulator.
type NopClockEnabler struct{}

func (NopClockEnabler) EnableClock(Port) {}
