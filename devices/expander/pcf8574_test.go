package expander

import (
	"errors"
	"testing"

	"pindrv/core"
)

// fakeI2C records writes and answers reads with a canned byte.
type fakeI2C struct {
	writes   []byte
	readByte byte
	err      error
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if f.err != nil {
		return f.err
	}
	if len(w) > 0 {
		f.writes = append(f.writes, w...)
	}
	if len(r) > 0 {
		r[0] = f.readByte
	}
	return nil
}

func newDevice(bus *fakeI2C) *PCF8574 {
	d := New(bus)
	d.Configure(Config{})
	return d
}

func TestOpenDrainPinOverExpander(t *testing.T) {
	bus := &fakeI2C{readByte: 0xFF}
	dev := newDevice(bus)

	pins := core.Split(core.PortA, dev, core.NopClockEnabler{})

	// The output data bit resets low, so committing to output mode starts
	// the pin sinking.
	out := pins[3].IntoOpenDrainOutput()
	if len(bus.writes) != 1 || bus.writes[0] != 0xFF&^(1<<3) {
		t.Fatalf("transition wrote %v, want pin 3 sinking", bus.writes)
	}

	out.SetHigh()
	if len(bus.writes) != 2 || bus.writes[1] != 0xFF {
		t.Fatalf("SetHigh wrote %v, want pin 3 released", bus.writes)
	}

	out.SetLow()
	if len(bus.writes) != 3 || bus.writes[2] != 0xFF&^(1<<3) {
		t.Fatalf("SetLow wrote %v, want pin 3 sinking", bus.writes)
	}
}

func TestInputReadsBus(t *testing.T) {
	bus := &fakeI2C{readByte: 0b0100_0000}
	dev := newDevice(bus)

	pins := core.Split(core.PortA, dev, core.NopClockEnabler{})
	in := pins[6].IntoFloatingInput()
	other := pins[5].IntoFloatingInput()

	if !in.IsHigh() {
		t.Error("pin 6 reads low, bus says high")
	}
	if !other.IsLow() {
		t.Error("pin 5 reads high, bus says low")
	}
	if len(bus.writes) != 0 {
		t.Errorf("input configuration reached the wire: %v", bus.writes)
	}
}

func TestRedundantWritesCoalesce(t *testing.T) {
	bus := &fakeI2C{}
	dev := newDevice(bus)

	pins := core.Split(core.PortA, dev, core.NopClockEnabler{})
	out := pins[0].IntoOpenDrainOutput()
	if len(bus.writes) != 1 {
		t.Fatalf("transition produced %d bus writes, want 1", len(bus.writes))
	}

	// Re-driving the level the chip already holds must not hit the bus.
	out.SetLow()
	out.SetLow()
	if len(bus.writes) != 1 {
		t.Errorf("redundant SetLow produced %d bus writes, want 1", len(bus.writes))
	}

	out.SetHigh()
	out.SetHigh()
	if len(bus.writes) != 2 {
		t.Errorf("redundant SetHigh produced %d bus writes, want 2", len(bus.writes))
	}
}

func TestBusErrorLatches(t *testing.T) {
	bus := &fakeI2C{}
	dev := newDevice(bus)
	pins := core.Split(core.PortA, dev, core.NopClockEnabler{})
	out := pins[1].IntoOpenDrainOutput()

	bus.err = errors.New("nack")
	out.SetHigh()
	if dev.Err() == nil {
		t.Fatal("Err() = nil after bus failure")
	}

	// After the failure nothing else may reach the wire.
	bus.err = nil
	before := len(bus.writes)
	out.SetLow()
	if len(bus.writes) != before {
		t.Errorf("writes after latched failure: %v", bus.writes[before:])
	}
}
