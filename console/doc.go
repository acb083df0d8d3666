// Package console implements the blocking serial console driver and its
// bounded printf shim.
//
// The console is the firmware's debug channel: single bytes in and out of
// a UART transport, with CR/LF canonicalization on the write path and a
// fixed 128-byte rendering buffer for formatted output. All primitives
// are synchronous. The two blocking primitives, [Console.ReadByte] and
// [Console.WriteByte], spin on the transport status flags until the
// hardware is ready; they are the only suspension points in the whole
// firmware, and while they spin nothing else progresses. That is the
// intended no-OS operating model for a human-operated console.
//
// A Console is not safe for concurrent use: its printf buffer is a single
// instance shared across calls. The cooperative single-threaded firmware
// loop is the only supported caller.
package console
