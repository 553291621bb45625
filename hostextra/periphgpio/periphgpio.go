// Package periphgpio adapts erased pin handles to the periph.io pin
// interfaces, so periph device drivers can run on top of any register
// backend this module supports.
//
// periph's contract expects operations to be able to fail; register access
// here cannot, so the only errors ever returned are for capabilities the
// hardware does not have (edge detection, PWM).
package periphgpio

import (
	"errors"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/physic"

	"pindrv/core"
)

// Pin wraps an erased pin as a gpio.PinIO. The wrapped handle is owned by
// the adapter; reconfigurations requested through In and Out retag it.
type Pin struct {
	name string
	p    *core.ErasedPin
}

// New wraps p under the given name. An empty name falls back to the pin's
// own identity string.
func New(name string, p *core.ErasedPin) *Pin {
	if name == "" {
		name = p.Port().String() + itoa(p.Index())
	}
	return &Pin{name: name, p: p}
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return p.name
}

// Halt implements conn.Resource.
func (p *Pin) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return p.name
}

// Number implements pin.Pin.
func (p *Pin) Number() int {
	return int(p.p.Port())*core.PinCount + int(p.p.Index())
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	switch p.p.Mode() {
	case core.ModeFloatingInput, core.ModePullUpInput, core.ModePullDownInput:
		return "In"
	case core.ModePushPullOutput, core.ModeOpenDrainOutput:
		return "Out"
	case core.ModeAnalog:
		return "Analog"
	case core.ModeTriState:
		return "TriState"
	case core.ModeAltFunc:
		return "Alt"
	}
	return "Unknown"
}

// In implements gpio.PinIn.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	if edge != gpio.NoEdge {
		return errors.New("periphgpio: edge detection is not supported")
	}
	switch pull {
	case gpio.Float:
		p.p.Reconfigure(core.ModeFloatingInput)
	case gpio.PullUp:
		p.p.Reconfigure(core.ModePullUpInput)
	case gpio.PullDown:
		p.p.Reconfigure(core.ModePullDownInput)
	case gpio.PullNoChange:
		switch p.p.Mode() {
		case core.ModeFloatingInput, core.ModePullUpInput, core.ModePullDownInput:
		default:
			p.p.Reconfigure(core.ModeFloatingInput)
		}
	default:
		return errors.New("periphgpio: unknown pull")
	}
	return nil
}

// Read implements gpio.PinIn. Pins whose input path is disconnected
// (analog, alternate) read Low rather than panicking through the erased
// handle's guard.
func (p *Pin) Read() gpio.Level {
	switch p.p.Mode() {
	case core.ModeAnalog, core.ModeAltFunc:
		return gpio.Low
	}
	return gpio.Level(p.p.IsHigh())
}

// WaitForEdge implements gpio.PinIn.
func (p *Pin) WaitForEdge(t time.Duration) bool {
	return false
}

// Pull implements gpio.PinIn.
func (p *Pin) Pull() gpio.Pull {
	switch p.p.Mode() {
	case core.ModeFloatingInput, core.ModeTriState:
		return gpio.Float
	case core.ModePullUpInput:
		return gpio.PullUp
	case core.ModePullDownInput:
		return gpio.PullDown
	}
	return gpio.PullNoChange
}

// DefaultPull implements gpio.PinIn. Pins reset to floating input.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out implements gpio.PinOut.
func (p *Pin) Out(l gpio.Level) error {
	switch p.p.Mode() {
	case core.ModePushPullOutput, core.ModeOpenDrainOutput:
	default:
		p.p.Reconfigure(core.ModePushPullOutput)
	}
	if l == gpio.High {
		p.p.SetHigh()
	} else {
		p.p.SetLow()
	}
	return nil
}

// PWM implements gpio.PinOut.
func (p *Pin) PWM(d gpio.Duty, f physic.Frequency) error {
	return errors.New("periphgpio: PWM is not supported")
}

func itoa(v uint8) string {
	if v >= 10 {
		return string([]byte{'0' + v/10, '0' + v%10})
	}
	return string([]byte{'0' + v})
}

var _ gpio.PinIO = (*Pin)(nil)
