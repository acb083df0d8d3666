package fifo

import (
	"errors"
	"testing"
	"time"

	"github.com/ardnew/softconsole/console/transport"
	"github.com/ardnew/softconsole/pkg"
)

// waitFor polls cond until it holds or the deadline expires.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func openUART(t *testing.T) *UART {
	t.Helper()
	u := New(t.TempDir() + "/console")
	if err := u.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { u.Close() })
	return u
}

func TestOpenTwice(t *testing.T) {
	u := openUART(t)
	if err := u.Open(); !errors.Is(err, pkg.ErrAlreadyOpen) {
		t.Errorf("second Open() error = %v, want ErrAlreadyOpen", err)
	}
}

func TestTerminalToFirmware(t *testing.T) {
	u := openUART(t)

	term, err := Attach(u.Dir())
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	defer term.Close()

	if _, err := term.Write([]byte("SD")); err != nil {
		t.Fatalf("terminal Write() error = %v", err)
	}

	waitFor(t, "rx data", func() bool { return !u.RxEmpty() })

	if got := u.ReadData(); got != 'S' {
		t.Errorf("ReadData() = %q, want %q", got, byte('S'))
	}
	if u.Pending()&transport.EventRx == 0 {
		t.Error("RX event not raised by ReadData")
	}
	u.AckEvent(transport.EventRx)

	waitFor(t, "second byte", func() bool { return !u.RxEmpty() })
	if got := u.ReadData(); got != 'D' {
		t.Errorf("ReadData() = %q, want %q", got, byte('D'))
	}
}

func TestFirmwareToTerminal(t *testing.T) {
	u := openUART(t)

	term, err := Attach(u.Dir())
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	defer term.Close()

	if u.TxFull() {
		t.Error("TxFull() = true, pipe transport should never report full")
	}
	for _, b := range []byte("ok\r\n") {
		u.WriteData(b)
	}

	buf := make([]byte, 16)
	got := make([]byte, 0, 4)
	for len(got) < 4 {
		n, err := term.Read(buf)
		if err != nil {
			t.Fatalf("terminal Read() error = %v", err)
		}
		got = append(got, buf[:n]...)
	}
	if string(got) != "ok\r\n" {
		t.Errorf("terminal received %q, want %q", got, "ok\r\n")
	}
}

func TestAttachMissingDir(t *testing.T) {
	if _, err := Attach(t.TempDir() + "/nope"); err == nil {
		t.Error("Attach() on missing console dir succeeded, want error")
	}
}

func TestCloseNotOpen(t *testing.T) {
	u := New(t.TempDir())
	if err := u.Close(); !errors.Is(err, pkg.ErrNotOpen) {
		t.Errorf("Close() before Open() error = %v, want ErrNotOpen", err)
	}
}
