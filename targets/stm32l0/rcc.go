//go:build tinygo

package stm32l0

import (
	"runtime/volatile"
	"unsafe"

	"pindrv/core"
)

const (
	rccBase      = 0x4002_1000
	iopenrOffset = 0x2C
)

// RCC enables GPIO bank clocks through the IOPENR register. Only clock
// gating is handled here; the rest of the reset and clock tree is the
// startup code's business.
type RCC struct{}

// EnableClock implements core.ClockEnabler. The IOPENR bit positions match
// the Port values, including the gap left by the absent F and G banks.
func (RCC) EnableClock(port core.Port) {
	iopenr := (*volatile.Register32)(unsafe.Pointer(uintptr(rccBase + iopenrOffset)))
	iopenr.SetBits(1 << uint32(port))
}

var _ core.ClockEnabler = RCC{}
