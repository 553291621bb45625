// Package protocol frames register transactions for the serial debug probe.
// Every frame is fixed size: a sync byte, the operation, the bank and
// register selectors, two 32-bit little-endian operands and a big-endian
// CRC16 trailer. Read replies reuse the same layout with the result in the
// value field.
package protocol

import (
	"encoding/binary"
	"errors"
)

// Sync marks the start of every frame.
const Sync = 0x7E

// FrameSize is the fixed on-wire size of a frame.
const FrameSize = 14

// Op is the register operation a frame requests or answers.
type Op uint8

const (
	OpRead Op = iota + 1
	OpWrite
	OpModify
	// OpReply answers an OpRead with the register contents in Value.
	OpReply
)

// Frame is one register transaction on the probe link. Mask is only
// meaningful for OpModify.
type Frame struct {
	Op    Op
	Port  uint8
	Reg   uint8
	Mask  uint32
	Value uint32
}

var (
	ErrShortFrame = errors.New("protocol: short frame")
	ErrBadSync    = errors.New("protocol: bad sync byte")
	ErrBadCRC     = errors.New("protocol: CRC mismatch")
	ErrBadOp      = errors.New("protocol: unknown op")
)

// Encode appends the wire form of f to dst and returns the result.
func Encode(dst []byte, f Frame) []byte {
	start := len(dst)
	dst = append(dst, Sync, byte(f.Op), f.Port, f.Reg)
	dst = binary.LittleEndian.AppendUint32(dst, f.Mask)
	dst = binary.LittleEndian.AppendUint32(dst, f.Value)
	crc := CRC16(dst[start+1:])
	return binary.BigEndian.AppendUint16(dst, crc)
}

// Decode parses one frame from the front of buf.
func Decode(buf []byte) (Frame, error) {
	if len(buf) < FrameSize {
		return Frame{}, ErrShortFrame
	}
	if buf[0] != Sync {
		return Frame{}, ErrBadSync
	}
	if CRC16(buf[1:FrameSize-2]) != binary.BigEndian.Uint16(buf[FrameSize-2:FrameSize]) {
		return Frame{}, ErrBadCRC
	}
	f := Frame{
		Op:    Op(buf[1]),
		Port:  buf[2],
		Reg:   buf[3],
		Mask:  binary.LittleEndian.Uint32(buf[4:8]),
		Value: binary.LittleEndian.Uint32(buf[8:12]),
	}
	if f.Op < OpRead || f.Op > OpReply {
		return Frame{}, ErrBadOp
	}
	return f, nil
}
