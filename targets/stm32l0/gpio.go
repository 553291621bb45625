//go:build tinygo

// Package stm32l0 binds the driver core to the STM32L0 GPIO banks through
// memory-mapped registers.
package stm32l0

import (
	"runtime/volatile"
	"unsafe"

	"pindrv/core"
)

// gpioRegs mirrors the register layout of one GPIO bank.
type gpioRegs struct {
	MODER   volatile.Register32
	OTYPER  volatile.Register32
	OSPEEDR volatile.Register32
	PUPDR   volatile.Register32
	IDR     volatile.Register32
	ODR     volatile.Register32
	BSRR    volatile.Register32
	LCKR    volatile.Register32
	AFRL    volatile.Register32
	AFRH    volatile.Register32
	BRR     volatile.Register32
}

const (
	gpioBase   = 0x5000_0000
	gpioStride = 0x400

	// GPIOH sits apart from the contiguous A-E blocks.
	gpiohBase = 0x5000_1C00
)

// Block is the memory-mapped register view of one bank.
type Block struct {
	regs *gpioRegs
}

// GPIOA through GPIOH return the banks present on the STM32L0x2/L0x3
// parts. On smaller parts only A and B exist; asking for an absent bank
// addresses reserved space.

func GPIOA() Block { return blockAt(gpioBase + 0*gpioStride) }
func GPIOB() Block { return blockAt(gpioBase + 1*gpioStride) }
func GPIOC() Block { return blockAt(gpioBase + 2*gpioStride) }
func GPIOD() Block { return blockAt(gpioBase + 3*gpioStride) }
func GPIOE() Block { return blockAt(gpioBase + 4*gpioStride) }
func GPIOH() Block { return blockAt(gpiohBase) }

func blockAt(addr uintptr) Block {
	return Block{regs: (*gpioRegs)(unsafe.Pointer(addr))}
}

func (b Block) reg(r core.Register) *volatile.Register32 {
	switch r {
	case core.RegMode:
		return &b.regs.MODER
	case core.RegPull:
		return &b.regs.PUPDR
	case core.RegOutputType:
		return &b.regs.OTYPER
	case core.RegSpeed:
		return &b.regs.OSPEEDR
	case core.RegAltLow:
		return &b.regs.AFRL
	case core.RegAltHigh:
		return &b.regs.AFRH
	case core.RegInput:
		return &b.regs.IDR
	case core.RegOutput:
		return &b.regs.ODR
	case core.RegSetReset:
		return &b.regs.BSRR
	}
	panic("stm32l0: unknown register")
}

// Read implements core.RegisterBlock.
func (b Block) Read(r core.Register) uint32 {
	return b.reg(r).Get()
}

// Write implements core.RegisterBlock.
func (b Block) Write(r core.Register, value uint32) {
	b.reg(r).Set(value)
}

// Modify implements core.RegisterBlock. The load and store are separate bus
// transactions on this core; the sequence is indivisible only because pin
// ownership keeps two contexts from modifying the same register
// concurrently, which is the caller-side exclusivity the driver already
// requires.
func (b Block) Modify(r core.Register, mask, bits uint32) {
	reg := b.reg(r)
	reg.Set(reg.Get()&^mask | bits)
}

var _ core.RegisterBlock = Block{}
