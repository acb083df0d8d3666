package console

import (
	"runtime"

	"github.com/ardnew/softconsole/console/transport"
)

// Console drives a serial transport with blocking byte I/O.
type Console struct {
	t transport.Transport

	// Rendering buffer for Printf. One formatted call in flight at a
	// time; see the package comment.
	fmtBuf [PrintfBufferSize]byte
}

// New returns a console over t.
func New(t transport.Transport) *Console {
	return &Console{t: t}
}

// Transport returns the underlying transport.
func (c *Console) Transport() transport.Transport {
	return c.t
}

// ReadByte consumes the next received byte, blocking until one arrives.
// The receive event is acknowledged before returning. There is no
// timeout: a silent transport blocks forever.
func (c *Console) ReadByte() byte {
	for c.t.RxEmpty() {
		runtime.Gosched()
	}
	b := c.t.ReadData()
	c.t.AckEvent(transport.EventRx)
	return b
}

// PollByte returns the next received byte if one is already available.
// It never blocks: when the transport reports empty it returns false
// immediately, otherwise it returns exactly the byte ReadByte would.
func (c *Console) PollByte() (byte, bool) {
	if c.t.RxEmpty() {
		return 0, false
	}
	return c.ReadByte(), true
}

// WriteByte transmits b, blocking until the transport accepts it, and
// acknowledges the transmit event. It returns the byte written so call
// sites can chain on the value.
func (c *Console) WriteByte(b byte) byte {
	for c.t.TxFull() {
		runtime.Gosched()
	}
	c.t.WriteData(b)
	c.t.AckEvent(transport.EventTx)
	return b
}

// WriteString transmits s, inserting a carriage return before every
// newline so terminal clients see canonical CR/LF line endings. The
// return value counts only the bytes of s; inserted carriage returns are
// excluded.
func (c *Console) WriteString(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\n' {
			c.WriteByte('\r')
		}
		c.WriteByte(b)
		n++
	}
	return n
}
