package transport

// Event identifies a bit in the UART pending-event register.
type Event uint8

// Pending-event bits. The peripheral sets a bit when the corresponding
// transfer completes; the firmware writes the bit back to acknowledge.
const (
	EventTx Event = 1 << 0 // Transmit complete
	EventRx Event = 1 << 1 // Receive complete
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventTx:
		return "tx"
	case EventRx:
		return "rx"
	case EventTx | EventRx:
		return "tx|rx"
	default:
		return "none"
	}
}

// Transport is the register-level capability the console driver requires
// of its UART. All methods are immediate register accesses: none of them
// block, and none of them return errors. A transport that cannot make
// progress reports it through the status flags, and the console spins on
// those flags (the no-OS operating model).
//
// Implementations are accessed from a single logical thread of control.
// Transports whose far end lives on another goroutine or process must
// carry their own internal synchronization.
type Transport interface {
	// RxEmpty reports whether the receive buffer holds no data.
	RxEmpty() bool

	// TxFull reports whether the transmit buffer cannot accept a byte.
	TxFull() bool

	// ReadData consumes one byte from the data register.
	// Only valid when RxEmpty reports false.
	ReadData() byte

	// WriteData places one byte in the data register for transmission.
	// Only valid when TxFull reports false.
	WriteData(b byte)

	// AckEvent acknowledges the given pending-event bits.
	AckEvent(ev Event)
}
