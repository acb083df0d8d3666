// Package transport defines the register-level contract between the
// console driver and the UART peripheral backing it.
//
// The interface mirrors the classic four-register debug UART: a shared
// receive/transmit data register, a receive-empty status flag, a
// transmit-full status flag, and a pending-event register that the
// firmware writes to acknowledge completed transfers. Bit-exact register
// semantics belong to the peripheral; this package only names the
// operations the console performs against it.
//
// Implementations:
//
//   - [github.com/ardnew/softconsole/console/transport/mmio] drives a
//     memory-mapped register block over a byte-addressed bus.
//   - [github.com/ardnew/softconsole/console/transport/sim] is an
//     in-memory UART for tests and hosted demos.
//   - [github.com/ardnew/softconsole/console/transport/fifo] carries the
//     byte stream over named pipes so a separate operator process can
//     attach.
package transport
