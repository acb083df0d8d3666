package sim

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ardnew/softconsole/console/transport"
	"github.com/ardnew/softconsole/pkg"
)

func TestFeedAndRead(t *testing.T) {
	u := New()

	if !u.RxEmpty() {
		t.Error("RxEmpty() = false on idle UART")
	}

	n, err := u.Feed([]byte("ab"))
	if err != nil || n != 2 {
		t.Fatalf("Feed() = (%d, %v), want (2, nil)", n, err)
	}
	if u.RxEmpty() {
		t.Error("RxEmpty() = true with data queued")
	}

	if got := u.ReadData(); got != 'a' {
		t.Errorf("ReadData() = %q, want %q", got, byte('a'))
	}
	if got := u.ReadData(); got != 'b' {
		t.Errorf("ReadData() = %q, want %q", got, byte('b'))
	}
	if !u.RxEmpty() {
		t.Error("RxEmpty() = false after draining")
	}
}

func TestWriteAndDrain(t *testing.T) {
	u := New()

	for _, b := range []byte("hello") {
		if u.TxFull() {
			t.Fatal("TxFull() = true with ring nowhere near capacity")
		}
		u.WriteData(b)
	}

	if got := u.Drain(); !bytes.Equal(got, []byte("hello")) {
		t.Errorf("Drain() = %q, want %q", got, "hello")
	}
	if got := u.Drain(); got != nil {
		t.Errorf("second Drain() = %q, want nil", got)
	}
}

func TestFeedOverrun(t *testing.T) {
	u := New()

	big := make([]byte, RingSize+1)
	n, err := u.Feed(big)
	if !errors.Is(err, pkg.ErrOverrun) {
		t.Fatalf("Feed() error = %v, want ErrOverrun", err)
	}
	if n != RingSize {
		t.Errorf("Feed() accepted %d bytes, want %d", n, RingSize)
	}
}

func TestPendingEvents(t *testing.T) {
	u := New()

	if got := u.Pending(); got != 0 {
		t.Fatalf("Pending() = %v on idle UART, want none", got)
	}

	u.Feed([]byte{'x'})
	u.ReadData()
	if got := u.Pending(); got&transport.EventRx == 0 {
		t.Error("RX event not raised by ReadData")
	}
	u.AckEvent(transport.EventRx)
	if got := u.Pending(); got&transport.EventRx != 0 {
		t.Error("RX event not cleared by AckEvent")
	}

	u.WriteData('y')
	if got := u.Pending(); got&transport.EventTx == 0 {
		t.Error("TX event not raised by WriteData")
	}
	u.AckEvent(transport.EventTx)
	if got := u.Pending(); got != 0 {
		t.Errorf("Pending() = %v after acks, want none", got)
	}

	rx, tx := u.Acks()
	if rx != 1 || tx != 1 {
		t.Errorf("Acks() = (%d, %d), want (1, 1)", rx, tx)
	}
}

func TestReadDataEmptyReturnsZero(t *testing.T) {
	u := New()
	if got := u.ReadData(); got != 0 {
		t.Errorf("ReadData() on empty ring = %#x, want 0", got)
	}
	if got := u.Pending(); got != 0 {
		t.Errorf("empty read raised events: %v", got)
	}
}
