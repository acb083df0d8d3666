// Package mmio implements the console transport over a memory-mapped
// UART register block.
//
// The register layout follows the LiteX-style CSR map the firmware was
// written against: one 32-bit slot per register, data in the low byte.
// The bus itself is abstracted behind the [Bus] interface so the same
// driver runs against real hardware bindings, an emulated SoC bus, or a
// test double.
package mmio

import (
	"github.com/ardnew/softconsole/console/transport"
)

// Register offsets from the UART base address.
const (
	RegRxTx      = 0x00 // Shared RX/TX data register
	RegTxFull    = 0x04 // Nonzero when the TX buffer cannot accept a byte
	RegRxEmpty   = 0x08 // Nonzero when the RX buffer holds no data
	RegEvStatus  = 0x0C // Raw event status
	RegEvPending = 0x10 // Pending events; write bits to acknowledge
	RegEvEnable  = 0x14 // Event interrupt enable (unused in polled mode)
)

// Bus is a byte-addressed register bus. Addresses are absolute; the UART
// adds its base offset before every access.
type Bus interface {
	Read8(addr uint32) uint8
	Write8(addr uint32, v uint8)
}

// UART drives a memory-mapped UART register block through a Bus.
// It implements [transport.Transport].
type UART struct {
	bus  Bus
	base uint32
}

// New returns a UART over the register block at base.
func New(bus Bus, base uint32) *UART {
	return &UART{bus: bus, base: base}
}

// Base returns the base address of the register block.
func (u *UART) Base() uint32 {
	return u.base
}

// RxEmpty reports whether the receive buffer holds no data.
func (u *UART) RxEmpty() bool {
	return u.bus.Read8(u.base+RegRxEmpty) != 0
}

// TxFull reports whether the transmit buffer cannot accept a byte.
func (u *UART) TxFull() bool {
	return u.bus.Read8(u.base+RegTxFull) != 0
}

// ReadData consumes one byte from the data register.
func (u *UART) ReadData() byte {
	return u.bus.Read8(u.base + RegRxTx)
}

// WriteData places one byte in the data register.
func (u *UART) WriteData(b byte) {
	u.bus.Write8(u.base+RegRxTx, b)
}

// AckEvent acknowledges the given pending-event bits by writing them to
// the pending register.
func (u *UART) AckEvent(ev transport.Event) {
	u.bus.Write8(u.base+RegEvPending, uint8(ev))
}
