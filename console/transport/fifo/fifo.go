// Package fifo carries the console byte stream over named pipes.
//
// The firmware side creates two FIFOs inside a directory it owns:
//
//	<dir>/rx    terminal -> firmware (received serial data)
//	<dir>/tx    firmware -> terminal (transmitted serial data)
//
// and implements the console transport on top of them. A separate
// operator process attaches to the same directory with [Attach] and
// speaks to the firmware as if over a serial cable. Both ends open the
// pipes read-write so neither blocks waiting for its peer to arrive.
package fifo

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/ardnew/softconsole/console/transport"
	"github.com/ardnew/softconsole/pkg"
)

// FIFO file names inside the console directory.
const (
	fifoRx = "rx" // terminal writes, firmware reads
	fifoTx = "tx" // firmware writes, terminal reads
)

// UART is a named-pipe serial peripheral. It implements
// [transport.Transport] for the firmware side of the pipes.
type UART struct {
	dir string

	rxFile *os.File // firmware reads received data here
	txFile *os.File // firmware writes transmitted data here

	mu      sync.Mutex
	rxQueue []byte
	pending transport.Event
	open    bool
}

// New returns a UART that will create its FIFOs inside dir.
func New(dir string) *UART {
	return &UART{dir: dir}
}

// Dir returns the console directory containing the FIFOs.
func (u *UART) Dir() string {
	return u.dir
}

// Open creates the console directory and FIFOs, opens both ends, and
// starts pumping received data so the status flags stay non-blocking.
func (u *UART) Open() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.open {
		return pkg.ErrAlreadyOpen
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return fmt.Errorf("create console dir: %w", err)
	}
	for _, name := range []string{fifoRx, fifoTx} {
		path := filepath.Join(u.dir, name)
		if err := syscall.Mkfifo(path, 0o644); err != nil && !os.IsExist(err) {
			return fmt.Errorf("create fifo %s: %w", name, err)
		}
	}

	// O_RDWR keeps open from blocking on a missing peer and keeps the
	// pipe alive across terminal reconnects.
	var err error
	u.rxFile, err = os.OpenFile(filepath.Join(u.dir, fifoRx), os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open rx fifo: %w", err)
	}
	u.txFile, err = os.OpenFile(filepath.Join(u.dir, fifoTx), os.O_RDWR, 0)
	if err != nil {
		u.rxFile.Close()
		return fmt.Errorf("open tx fifo: %w", err)
	}

	u.open = true
	go u.pumpRx()

	pkg.LogInfo(pkg.ComponentTransport, "fifo console transport open", "dir", u.dir)
	return nil
}

// pumpRx moves bytes from the rx pipe into the receive queue. It exits
// when the pipe is closed by Close.
func (u *UART) pumpRx() {
	var buf [64]byte
	for {
		n, err := u.rxFile.Read(buf[:])
		if n > 0 {
			u.mu.Lock()
			u.rxQueue = append(u.rxQueue, buf[:n]...)
			u.mu.Unlock()
		}
		if err != nil {
			u.mu.Lock()
			stillOpen := u.open
			u.mu.Unlock()
			if stillOpen {
				pkg.LogWarn(pkg.ComponentTransport, "rx pump stopped", "error", err)
			}
			return
		}
	}
}

// Close tears down the FIFOs. The firmware side must not touch the
// transport afterward.
func (u *UART) Close() error {
	u.mu.Lock()
	if !u.open {
		u.mu.Unlock()
		return pkg.ErrNotOpen
	}
	u.open = false
	u.mu.Unlock()

	u.rxFile.Close()
	u.txFile.Close()
	os.Remove(filepath.Join(u.dir, fifoRx))
	os.Remove(filepath.Join(u.dir, fifoTx))
	pkg.LogInfo(pkg.ComponentTransport, "fifo console transport closed", "dir", u.dir)
	return nil
}

// RxEmpty reports whether the receive queue holds no data.
func (u *UART) RxEmpty() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.rxQueue) == 0
}

// TxFull reports whether the transmit path cannot accept a byte.
// Pipe writes block in the kernel instead, so this is always false.
func (u *UART) TxFull() bool {
	return false
}

// ReadData consumes one byte from the receive queue and raises the RX
// event. Reading while empty returns 0.
func (u *UART) ReadData() byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.rxQueue) == 0 {
		return 0
	}
	b := u.rxQueue[0]
	u.rxQueue = u.rxQueue[1:]
	u.pending |= transport.EventRx
	return b
}

// WriteData transmits one byte down the tx pipe and raises the TX event.
func (u *UART) WriteData(b byte) {
	u.mu.Lock()
	if !u.open {
		u.mu.Unlock()
		return
	}
	u.pending |= transport.EventTx
	u.mu.Unlock()

	if _, err := u.txFile.Write([]byte{b}); err != nil {
		pkg.LogWarn(pkg.ComponentTransport, "tx write failed", "error", err)
	}
}

// AckEvent clears the given pending-event bits.
func (u *UART) AckEvent(ev transport.Event) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.pending &^= ev
}

// Pending returns the current pending-event bits. Test hook.
func (u *UART) Pending() transport.Event {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.pending
}

// Terminal is the operator's end of the pipes. Read yields bytes the
// firmware transmitted; Write feeds bytes to the firmware as received
// serial data.
type Terminal struct {
	rxFile *os.File // terminal writes (firmware's rx)
	txFile *os.File // terminal reads (firmware's tx)
}

// Attach connects to the console directory created by a firmware-side
// [UART]. It fails if the FIFOs do not exist yet.
func Attach(dir string) (*Terminal, error) {
	txFile, err := os.OpenFile(filepath.Join(dir, fifoTx), os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("attach tx fifo: %w", err)
	}
	rxFile, err := os.OpenFile(filepath.Join(dir, fifoRx), os.O_RDWR, 0)
	if err != nil {
		txFile.Close()
		return nil, fmt.Errorf("attach rx fifo: %w", err)
	}
	return &Terminal{rxFile: rxFile, txFile: txFile}, nil
}

// Read blocks until the firmware transmits data.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.txFile.Read(p)
}

// Write feeds p to the firmware as received serial data.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.rxFile.Write(p)
}

// Close detaches from the console.
func (t *Terminal) Close() error {
	err1 := t.rxFile.Close()
	err2 := t.txFile.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
