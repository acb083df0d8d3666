// Package sim provides an in-memory UART for tests and hosted demos.
//
// The simulated UART implements the console transport on one side and
// exposes a host side (Feed, Drain) on the other, so a test or demo
// process can play the role of the serial cable. RX and TX are bounded
// rings; the pending-event register is modeled closely enough that tests
// can assert the firmware's acknowledge protocol.
package sim

import (
	"sync"

	"github.com/ardnew/softconsole/console/transport"
	"github.com/ardnew/softconsole/pkg"
)

// RingSize is the capacity of each direction's byte ring.
const RingSize = 256

// ring is a bounded byte FIFO. Head and tail are free-running counters;
// their difference is the fill level.
type ring struct {
	buf  [RingSize]byte
	head uint32
	tail uint32
}

func (r *ring) used() int {
	return int(r.head - r.tail)
}

func (r *ring) put(b byte) bool {
	if r.used() == RingSize {
		return false
	}
	r.buf[r.head%RingSize] = b
	r.head++
	return true
}

func (r *ring) get() (byte, bool) {
	if r.used() == 0 {
		return 0, false
	}
	b := r.buf[r.tail%RingSize]
	r.tail++
	return b, true
}

// UART is a simulated serial peripheral. The firmware side implements
// [transport.Transport]; the host side feeds RX and drains TX. Both sides
// may run on different goroutines.
type UART struct {
	mu sync.Mutex

	rx ring // host -> firmware
	tx ring // firmware -> host

	pending transport.Event // event bits set by completions, cleared by acks
	rxAcks  int
	txAcks  int
}

// New returns an idle simulated UART.
func New() *UART {
	return &UART{}
}

// RxEmpty reports whether the receive ring holds no data.
func (u *UART) RxEmpty() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rx.used() == 0
}

// TxFull reports whether the transmit ring cannot accept a byte.
func (u *UART) TxFull() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.tx.used() == RingSize
}

// ReadData consumes one byte from the receive ring and raises the RX
// event, as the hardware does on a completed receive. Reading while
// empty returns 0 without consuming anything.
func (u *UART) ReadData() byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	b, ok := u.rx.get()
	if !ok {
		return 0
	}
	u.pending |= transport.EventRx
	return b
}

// WriteData appends one byte to the transmit ring and raises the TX
// event. Writing while full drops the byte; the firmware is expected to
// spin on TxFull first.
func (u *UART) WriteData(b byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.tx.put(b) {
		pkg.LogWarn(pkg.ComponentTransport, "tx ring full, byte dropped", "byte", b)
		return
	}
	u.pending |= transport.EventTx
}

// AckEvent clears the given pending-event bits.
func (u *UART) AckEvent(ev transport.Event) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.pending &^= ev
	if ev&transport.EventRx != 0 {
		u.rxAcks++
	}
	if ev&transport.EventTx != 0 {
		u.txAcks++
	}
}

// Host side

// Feed makes p available to the firmware as received serial data.
// It returns the number of bytes accepted; pkg.ErrOverrun is returned
// with a short count if the receive ring fills.
func (u *UART) Feed(p []byte) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, b := range p {
		if !u.rx.put(b) {
			return i, pkg.ErrOverrun
		}
	}
	return len(p), nil
}

// Drain removes and returns everything the firmware has transmitted
// since the last call. It never blocks; an idle UART yields nil.
func (u *UART) Drain() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []byte
	for {
		b, ok := u.tx.get()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

// Pending returns the current pending-event bits. Test hook.
func (u *UART) Pending() transport.Event {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.pending
}

// Acks returns how many RX and TX acknowledgments the firmware has
// issued. Test hook for the acknowledge protocol.
func (u *UART) Acks() (rx, tx int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rxAcks, u.txAcks
}
