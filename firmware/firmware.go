package firmware

import (
	"context"

	"github.com/ardnew/softconsole/console"
	"github.com/ardnew/softconsole/pkg"
	"github.com/ardnew/softconsole/usb"
)

// Prompt is the interactive prompt printed when the console is ready for
// the next command.
const Prompt = "Command> "

// DefaultBanner is printed once at boot.
const DefaultBanner = "\n" +
	"==========================================================\n" +
	"\n" +
	"Booting polled USB console..\n" +
	"\n"

// EchoChunkSize is the largest CDC read echoed back in one pass.
const EchoChunkSize = 64

// Config assembles the collaborators of a firmware loop.
type Config struct {
	// Console is the operator's serial console. Required.
	Console *console.Console

	// Controller is the USB device controller, driven in polled mode.
	// Required.
	Controller usb.Controller

	// Stack is the USB device stack whose task runs every iteration.
	// Required.
	Stack usb.Stack

	// CDC is the data port serviced by the loop-back echo task.
	// Optional: with no port the echo task idles.
	CDC usb.CDCPort

	// Port is the controller port index passed to polls and dumps.
	Port uint8

	// Banner overrides DefaultBanner when non-empty.
	Banner string
}

// Loop is the firmware main loop.
type Loop struct {
	con    *console.Console
	ctl    usb.Controller
	stack  usb.Stack
	cdc    usb.CDCPort
	port   uint8
	banner string

	commands map[byte]func()

	// promptDue is the single slot of state carried between iterations:
	// whether the previous iteration consumed a command and owes the
	// operator a fresh prompt. It starts true so the prompt appears on
	// the very first pass.
	promptDue bool

	echoBuf [EchoChunkSize]byte
}

// New assembles a firmware loop with the stock command bindings.
func New(cfg Config) (*Loop, error) {
	if cfg.Console == nil || cfg.Controller == nil || cfg.Stack == nil {
		return nil, pkg.ErrInvalidParameter
	}

	banner := cfg.Banner
	if banner == "" {
		banner = DefaultBanner
	}

	l := &Loop{
		con:       cfg.Console,
		ctl:       cfg.Controller,
		stack:     cfg.Stack,
		cdc:       cfg.CDC,
		port:      cfg.Port,
		banner:    banner,
		commands:  make(map[byte]func()),
		promptDue: true,
	}
	l.bindStockCommands()
	return l, nil
}

// Console returns the loop's console.
func (l *Loop) Console() *console.Console {
	return l.con
}

// Boot prints the boot banner.
func (l *Loop) Boot() {
	l.con.WriteString(l.banner)
	pkg.LogInfo(pkg.ComponentFirmware, "boot banner printed", "port", l.port)
}

// Step runs exactly one loop iteration.
func (l *Loop) Step() {
	if l.promptDue {
		l.con.Printf(Prompt)
	}

	cmd, ok := l.con.PollByte()
	l.promptDue = ok

	if ok {
		if cmd > 32 && cmd < 127 {
			l.con.WriteByte(cmd)
		}
		l.con.WriteByte('\r')
		l.con.WriteByte('\n')

		if action := l.commands[cmd]; action != nil {
			action()
		}
	}

	l.ctl.PollInterrupts(l.port)
	l.stack.Task()
	l.echoTask()
}

// Run prints the banner and iterates until ctx is cancelled. A cancelled
// context is the hosted analogue of an external reset; hardware builds
// pass a context that never fires.
func (l *Loop) Run(ctx context.Context) {
	l.Boot()
	for {
		select {
		case <-ctx.Done():
			pkg.LogInfo(pkg.ComponentFirmware, "loop stopped", "reason", ctx.Err())
			return
		default:
		}
		l.Step()
	}
}

// echoTask loops received CDC data straight back to the host, at most
// one EchoChunkSize read per iteration, flushing after the write. A
// short read is echoed as read; there is no retry.
func (l *Loop) echoTask() {
	if l.cdc == nil {
		return
	}
	if l.cdc.Available() == 0 {
		return
	}
	n := l.cdc.Read(l.echoBuf[:])
	if n == 0 {
		return
	}
	l.cdc.Write(l.echoBuf[:n])
	l.cdc.Flush()
}
