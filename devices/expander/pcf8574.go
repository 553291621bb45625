// Package expander exposes a PCF8574 I2C GPIO expander as a
// core.RegisterBlock, so core.Split can mint ordinary pin handles on an
// expander bank.
//
// The chip is quasi-bidirectional: each pin is either sinking current
// (written 0) or released against a weak pull-up (written 1, which is also
// how a pin becomes readable as an input). That maps onto the register
// contract as an 8-pin bank of open-drain pins: the configuration registers
// are software shadows, and only mode and output data changes reach the
// wire. Pull-down, push-pull drive, speed and alternate functions have no
// hardware behind them; their shadow bits are accepted and ignored.
//
// Datasheet: https://cdn-learn.adafruit.com/assets/assets/000/113/910/original/pcf8574.pdf
package expander

import (
	"sync"

	"tinygo.org/x/drivers"

	"pindrv/core"
)

// DefaultAddress is the chip's base I2C address with A0-A2 strapped low.
const DefaultAddress = 0x20

// NumPins is the number of pins on the expander. Handles minted above this
// index shadow-only, with no hardware effect.
const NumPins = 8

// Config holds the expander configuration.
type Config struct {
	Address uint8
}

// PCF8574 is one expander chip on a preconfigured I2C bus. The datasheet
// claims a maximum bus speed of 100 kHz.
type PCF8574 struct {
	mu     sync.Mutex
	bus    drivers.I2C
	addr   uint16
	shadow [regCount]uint32
	// wire is the last byte pushed to the chip: 1 = released (weak high),
	// 0 = sinking. Defaults to everything released, the power-on state.
	wire uint8
	err  error
}

const regCount = int(core.RegSetReset) + 1

// New creates a driver on the given bus. Call Configure before use.
func New(bus drivers.I2C) *PCF8574 {
	return &PCF8574{bus: bus, wire: 0xFF}
}

// Configure sets the chip address.
func (d *PCF8574) Configure(c Config) {
	if c.Address == 0 {
		c.Address = DefaultAddress
	}
	d.addr = uint16(c.Address)
}

// Err returns the first bus failure seen, if any. The register contract has
// no error path, so transactions after a failure keep updating shadows but
// stop touching the wire.
func (d *PCF8574) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Read implements core.RegisterBlock. The input data register is a bus
// read; everything else answers from the shadow.
func (d *PCF8574) Read(r core.Register) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r != core.RegInput {
		return d.shadow[r]
	}
	if d.err != nil {
		return 0
	}
	var buf [1]byte
	if err := d.bus.Tx(d.addr, nil, buf[:]); err != nil {
		d.err = err
		return 0
	}
	return uint32(buf[0])
}

// Write implements core.RegisterBlock.
func (d *PCF8574) Write(r core.Register, value uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r == core.RegSetReset {
		set := value & 0xffff
		clear := value >> 16
		d.shadow[core.RegOutput] = d.shadow[core.RegOutput]&^clear | set
	} else {
		d.shadow[r] = value
	}
	d.sync()
}

// Modify implements core.RegisterBlock.
func (d *PCF8574) Modify(r core.Register, mask, bits uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.shadow[r] = d.shadow[r]&^mask | bits
	d.sync()
}

// sync recomputes the wire byte from the mode and output data shadows and
// pushes it when it changed. A pin sinks only while configured as an output
// with a low data bit; everything else leaves it released.
func (d *PCF8574) sync() {
	wire := uint8(0xFF)
	for i := uint32(0); i < NumPins; i++ {
		mode := d.shadow[core.RegMode] >> (2 * i) & 0b11
		if mode == 0b01 && d.shadow[core.RegOutput]&(1<<i) == 0 {
			wire &^= 1 << i
		}
	}
	if wire == d.wire || d.err != nil {
		return
	}
	d.wire = wire
	buf := [1]byte{wire}
	if err := d.bus.Tx(d.addr, buf[:], nil); err != nil {
		d.err = err
	}
}

var _ core.RegisterBlock = (*PCF8574)(nil)
