package sim

import (
	"testing"

	"pindrv/core"
)

func TestSetResetFolding(t *testing.T) {
	b := NewBank("t")

	b.Write(core.RegSetReset, 1<<3)
	if b.Peek(core.RegOutput)&(1<<3) == 0 {
		t.Error("set bit did not reach the output data register")
	}

	b.Write(core.RegSetReset, 1<<(3+16))
	if b.Peek(core.RegOutput)&(1<<3) != 0 {
		t.Error("reset bit did not clear the output data register")
	}

	// When both halves name the same pin, set wins.
	b.Write(core.RegSetReset, 1<<5|1<<(5+16))
	if b.Peek(core.RegOutput)&(1<<5) == 0 {
		t.Error("simultaneous set+reset: set must win")
	}
}

func TestModifyClearsOnlyMask(t *testing.T) {
	b := NewBank("t")
	b.Write(core.RegPull, 0xffffffff)

	b.Modify(core.RegPull, 0b11<<4, 0b01<<4)

	want := uint32(0xffffffff)&^(0b11<<4) | 0b01<<4
	if got := b.Peek(core.RegPull); got != want {
		t.Errorf("pull register = %#x, want %#x", got, want)
	}
}

func TestInputModel(t *testing.T) {
	b := NewBank("t")

	// Push-pull output pin 0 driving high reads back high.
	b.Modify(core.RegMode, 0b11, 0b01)
	b.Write(core.RegSetReset, 1)
	if b.Read(core.RegInput)&1 == 0 {
		t.Error("push-pull high does not read back high")
	}

	// Open-drain pin 1 sinking low reads low; released it follows the pull.
	b.Modify(core.RegMode, 0b11<<2, 0b01<<2)
	b.Modify(core.RegOutputType, 1<<1, 1<<1)
	b.Write(core.RegSetReset, 1<<(1+16))
	if b.Read(core.RegInput)&(1<<1) != 0 {
		t.Error("sinking open-drain does not read low")
	}
	b.Write(core.RegSetReset, 1<<1)
	b.Modify(core.RegPull, 0b11<<2, 0b01<<2)
	if b.Read(core.RegInput)&(1<<1) == 0 {
		t.Error("released open-drain with pull-up does not read high")
	}

	// External drive beats the pull on an input pin.
	b.Modify(core.RegMode, 0b11<<4, 0b00<<4)
	b.Modify(core.RegPull, 0b11<<4, 0b01<<4)
	b.Drive(2, false)
	if b.Read(core.RegInput)&(1<<2) != 0 {
		t.Error("external low does not override the pull-up")
	}
	b.Release(2)
	if b.Read(core.RegInput)&(1<<2) == 0 {
		t.Error("released pin does not fall back to the pull-up")
	}
}

func TestJournal(t *testing.T) {
	b := NewBank("t")
	b.Write(core.RegOutput, 1)
	b.Modify(core.RegMode, 0b11, 0b01)
	b.Read(core.RegInput)

	journal := b.Journal()
	wantOps := []Op{OpWrite, OpModify, OpRead}
	if len(journal) != len(wantOps) {
		t.Fatalf("journal length = %d, want %d", len(journal), len(wantOps))
	}
	for i, op := range wantOps {
		if journal[i].Op != op {
			t.Errorf("journal[%d].Op = %v, want %v", i, journal[i].Op, op)
		}
	}

	b.ResetJournal()
	if len(b.Journal()) != 0 {
		t.Error("ResetJournal left transactions behind")
	}
}
