// Package sim is an in-memory stand-in for one GPIO bank's register block.
// It implements core.RegisterBlock, models the input data register from the
// current pin configurations, and keeps a journal of every bus transaction
// so tests can assert write ordering.
package sim

import (
	"sync"

	"github.com/sirupsen/logrus"

	"pindrv/core"
)

// Op classifies a journaled bus transaction.
type Op uint8

const (
	OpRead Op = iota
	OpWrite
	OpModify
)

func (o Op) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpModify:
		return "modify"
	}
	return "invalid"
}

// Transaction is one recorded register access. Mask is zero for plain reads
// and writes.
type Transaction struct {
	Op    Op
	Reg   core.Register
	Mask  uint32
	Value uint32
}

// extDrive is an externally applied level on a pin, as injected by Drive.
type extDrive struct {
	driven bool
	high   bool
}

// Bank simulates one GPIO bank. All accesses are serialized by a mutex,
// which is the simulator's version of the single-bus-transaction guarantee.
type Bank struct {
	mu      sync.Mutex
	label   string
	regs    [regCount]uint32
	ext     [core.PinCount]extDrive
	journal []Transaction
	log     *logrus.Logger
}

const regCount = int(core.RegSetReset) + 1

// Option configures a Bank at construction.
type Option func(*Bank)

// WithLogger makes the bank trace every register transaction at debug level.
func WithLogger(log *logrus.Logger) Option {
	return func(b *Bank) { b.log = log }
}

// NewBank constructs a simulated bank. The label is informational, used only
// in trace output.
func NewBank(label string, opts ...Option) *Bank {
	b := &Bank{label: label}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Read implements core.RegisterBlock. Reading the input data register
// resolves each pin's level from the current configuration.
func (b *Bank) Read(r core.Register) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	var v uint32
	if r == core.RegInput {
		v = b.inputLevels()
	} else {
		v = b.regs[r]
	}
	b.record(Transaction{Op: OpRead, Reg: r, Value: v})
	return v
}

// Write implements core.RegisterBlock. A write to the set/reset register is
// folded into the output data register, set bits winning over reset bits,
// the way the hardware resolves the conflict.
func (b *Bank) Write(r core.Register, value uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record(Transaction{Op: OpWrite, Reg: r, Value: value})
	if r == core.RegSetReset {
		set := value & 0xffff
		clear := value >> 16
		b.regs[core.RegOutput] = b.regs[core.RegOutput]&^clear | set
		return
	}
	b.regs[r] = value
}

// Modify implements core.RegisterBlock: one indivisible read-modify-write
// clearing exactly the masked bits and ORing in the new ones.
func (b *Bank) Modify(r core.Register, mask, bits uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record(Transaction{Op: OpModify, Reg: r, Mask: mask, Value: bits})
	b.regs[r] = b.regs[r]&^mask | bits
}

// Drive applies an external level to a pin, as if a wire were attached.
func (b *Bank) Drive(index uint8, high bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ext[index] = extDrive{driven: true, high: high}
}

// Release removes the external level from a pin.
func (b *Bank) Release(index uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ext[index] = extDrive{}
}

// Journal returns a copy of all transactions recorded so far.
func (b *Bank) Journal() []Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Transaction, len(b.journal))
	copy(out, b.journal)
	return out
}

// ResetJournal discards the recorded transactions.
func (b *Bank) ResetJournal() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.journal = b.journal[:0]
}

// Peek returns a register's raw contents without journaling a transaction.
func (b *Bank) Peek(r core.Register) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r == core.RegInput {
		return b.inputLevels()
	}
	return b.regs[r]
}

func (b *Bank) record(t Transaction) {
	b.journal = append(b.journal, t)
	if b.log != nil {
		b.log.WithFields(logrus.Fields{
			"bank":  b.label,
			"op":    t.Op.String(),
			"reg":   t.Reg,
			"mask":  t.Mask,
			"value": t.Value,
		}).Debug("register transaction")
	}
}

// inputLevels resolves the input data register. A push-pull output reads
// back its own driven level (ideal unloaded connection). An open-drain
// output driving low reads low; released, it resolves like an input. Inputs
// read an external drive when present, otherwise the pull resistor decides;
// an undriven floating pin reads low.
func (b *Bank) inputLevels() uint32 {
	var in uint32
	for i := uint32(0); i < core.PinCount; i++ {
		mode := b.regs[core.RegMode] >> (2 * i) & 0b11
		odrHigh := b.regs[core.RegOutput]&(1<<i) != 0
		openDrain := b.regs[core.RegOutputType]&(1<<i) != 0

		if mode == 0b01 { // output
			if !openDrain {
				if odrHigh {
					in |= 1 << i
				}
				continue
			}
			if !odrHigh {
				continue // sinking low
			}
			// Released open-drain falls through to the input resolution.
		}

		if b.ext[i].driven {
			if b.ext[i].high {
				in |= 1 << i
			}
			continue
		}
		pull := b.regs[core.RegPull] >> (2 * i) & 0b11
		if pull == 0b01 {
			in |= 1 << i
		}
	}
	return in
}

var _ core.RegisterBlock = (*Bank)(nil)
