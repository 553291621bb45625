package protocol

import "testing"

func TestEncodeDecode(t *testing.T) {
	testCases := []Frame{
		{Op: OpRead, Port: 0, Reg: 6},
		{Op: OpWrite, Port: 1, Reg: 8, Value: 1 << 19},
		{Op: OpModify, Port: 7, Reg: 0, Mask: 0b11 << 10, Value: 0b01 << 10},
		{Op: OpReply, Port: 2, Reg: 7, Value: 0xDEADBEEF},
	}

	for _, want := range testCases {
		wire := Encode(nil, want)
		if len(wire) != FrameSize {
			t.Fatalf("encoded size = %d, want %d", len(wire), FrameSize)
		}
		got, err := Decode(wire)
		if err != nil {
			t.Fatalf("Decode(%+v): %v", want, err)
		}
		if got != want {
			t.Errorf("round trip: got %+v, want %+v", got, want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	good := Encode(nil, Frame{Op: OpWrite, Port: 1, Reg: 8, Value: 42})

	if _, err := Decode(good[:FrameSize-1]); err != ErrShortFrame {
		t.Errorf("short frame: err = %v, want %v", err, ErrShortFrame)
	}

	bad := append([]byte(nil), good...)
	bad[0] = 0x00
	if _, err := Decode(bad); err != ErrBadSync {
		t.Errorf("bad sync: err = %v, want %v", err, ErrBadSync)
	}

	bad = append([]byte(nil), good...)
	bad[5] ^= 0xFF
	if _, err := Decode(bad); err != ErrBadCRC {
		t.Errorf("corrupted payload: err = %v, want %v", err, ErrBadCRC)
	}
}

func TestCRC16Consistency(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	if CRC16(data) != CRC16(data) {
		t.Error("CRC16 not deterministic")
	}
	if CRC16(nil) != 0xFFFF {
		t.Errorf("CRC16(nil) = %#x, want 0xFFFF", CRC16(nil))
	}
	if CRC16([]byte{0x01, 0x02, 0x04}) == CRC16(data[:3]) {
		t.Error("CRC16 collision on adjacent inputs")
	}
}
