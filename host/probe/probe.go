// Package probe drives GPIO bank registers on a remote target through a
// serial-attached debug probe. Each bank is exposed as a core.RegisterBlock,
// so the same driver code that runs against memory-mapped registers can be
// exercised from a workstation.
//
// The RegisterBlock contract has no error path, so link failures cannot be
// reported per call: they are logged, the affected read returns zero, and
// the first failure is latched for Err().
package probe

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"pindrv/core"
	"pindrv/host/serial"
	"pindrv/protocol"
)

// Probe is one open probe link. All register transactions are serialized
// over the wire, which also serializes them on the target's bus.
type Probe struct {
	mu   sync.Mutex
	port serial.Port
	log  *logrus.Logger
	err  error
}

// New wraps an already-open serial port. A nil logger disables logging.
func New(port serial.Port, log *logrus.Logger) *Probe {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Probe{port: port, log: log}
}

// Open opens the native serial device from cfg and wraps it.
func Open(cfg *serial.Config, log *logrus.Logger) (*Probe, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}
	return New(port, log), nil
}

// Err returns the first link failure seen, if any.
func (p *Probe) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Close closes the underlying serial port.
func (p *Probe) Close() error {
	return p.port.Close()
}

// Block returns the register block view of one bank on the target.
func (p *Probe) Block(port core.Port) core.RegisterBlock {
	return &block{probe: p, port: uint8(port)}
}

type block struct {
	probe *Probe
	port  uint8
}

func (b *block) Read(r core.Register) uint32 {
	f, ok := b.probe.roundTrip(protocol.Frame{
		Op:   protocol.OpRead,
		Port: b.port,
		Reg:  uint8(r),
	})
	if !ok {
		return 0
	}
	return f.Value
}

func (b *block) Write(r core.Register, value uint32) {
	b.probe.send(protocol.Frame{
		Op:    protocol.OpWrite,
		Port:  b.port,
		Reg:   uint8(r),
		Value: value,
	})
}

func (b *block) Modify(r core.Register, mask, bits uint32) {
	b.probe.send(protocol.Frame{
		Op:    protocol.OpModify,
		Port:  b.port,
		Reg:   uint8(r),
		Mask:  mask,
		Value: bits,
	})
}

// send transmits a one-way frame.
func (p *Probe) send(f protocol.Frame) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return
	}
	p.log.WithFields(logrus.Fields{
		"op": f.Op, "port": f.Port, "reg": f.Reg,
	}).Debug("probe send")

	wire := protocol.Encode(nil, f)
	if _, err := p.port.Write(wire); err != nil {
		p.fail(fmt.Errorf("probe: write: %w", err))
	}
}

// roundTrip transmits a read frame and waits for the matching reply.
func (p *Probe) roundTrip(f protocol.Frame) (protocol.Frame, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return protocol.Frame{}, false
	}

	wire := protocol.Encode(nil, f)
	if _, err := p.port.Write(wire); err != nil {
		p.fail(fmt.Errorf("probe: write: %w", err))
		return protocol.Frame{}, false
	}

	var buf [protocol.FrameSize]byte
	if err := p.readReply(buf[:]); err != nil {
		p.fail(fmt.Errorf("probe: read reply: %w", err))
		return protocol.Frame{}, false
	}
	reply, err := protocol.Decode(buf[:])
	if err != nil {
		p.fail(fmt.Errorf("probe: decode reply: %w", err))
		return protocol.Frame{}, false
	}
	if reply.Op != protocol.OpReply || reply.Port != f.Port || reply.Reg != f.Reg {
		p.fail(errors.New("probe: reply does not match request"))
		return protocol.Frame{}, false
	}
	return reply, true
}

// maxIdleReads bounds how many consecutive empty reads roundTrip tolerates
// before declaring the link dead. The port is opened with a short read
// timeout, which surfaces as zero-byte reads; 50 of them at the 100ms
// default is a 5s reply budget.
const maxIdleReads = 50

// readReply fills buf from the port. A run of zero-byte reads with no data
// in between means the target stopped answering, and that is a link error,
// not something to poll through forever.
func (p *Probe) readReply(buf []byte) error {
	idle := 0
	for n := 0; n < len(buf); {
		k, err := p.port.Read(buf[n:])
		if err != nil {
			return err
		}
		if k == 0 {
			idle++
			if idle >= maxIdleReads {
				return errors.New("reply timeout")
			}
			continue
		}
		idle = 0
		n += k
	}
	return nil
}

// fail latches the first link error. Once the link is suspect, every
// following transaction is refused; a broken probe must not silently feed
// zeros into mode decisions.
func (p *Probe) fail(err error) {
	p.log.WithError(err).Error("probe link failure")
	if p.err == nil {
		p.err = err
	}
}
