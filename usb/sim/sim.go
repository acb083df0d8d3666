// Package sim provides in-process doubles for the external USB stack.
//
// These stand in for the real controller driver and class stack in tests
// and hosted demos: the controller records poll and dump calls (and can
// route dump output to a callback), the stack counts task invocations
// and delivers the mount notification, and the CDC port is a pair of
// bounded rings with a host side for loop-back traffic.
package sim

import (
	"sync"

	"github.com/ardnew/softconsole/usb"
)

// DumpCall records one DebugEndpoint invocation.
type DumpCall struct {
	Port   uint8
	EpAddr uint8
}

// Controller is a recording double for [usb.Controller].
type Controller struct {
	mu sync.Mutex

	polls []uint8
	dumps []DumpCall

	// DumpFunc, when set, receives every DebugEndpoint call. Demos use
	// it to print diagnostics through the console.
	DumpFunc func(port, epAddr uint8)
}

// NewController returns an idle controller double.
func NewController() *Controller {
	return &Controller{}
}

// PollInterrupts records the polled port.
func (c *Controller) PollInterrupts(port uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.polls = append(c.polls, port)
}

// DebugEndpoint records the dump request and forwards it to DumpFunc.
func (c *Controller) DebugEndpoint(port, epAddr uint8) {
	c.mu.Lock()
	c.dumps = append(c.dumps, DumpCall{Port: port, EpAddr: epAddr})
	fn := c.DumpFunc
	c.mu.Unlock()
	if fn != nil {
		fn(port, epAddr)
	}
}

// Polls returns the ports polled so far, in order.
func (c *Controller) Polls() []uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uint8(nil), c.polls...)
}

// Dumps returns the recorded DebugEndpoint calls, in order.
func (c *Controller) Dumps() []DumpCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]DumpCall(nil), c.dumps...)
}

// Reset clears the recorded calls.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.polls = nil
	c.dumps = nil
}

// Stack is a counting double for [usb.Stack]. The first Task invocation
// delivers Mount to the handler, modeling enumeration completing.
type Stack struct {
	mu      sync.Mutex
	tasks   int
	handler usb.EventHandler
	mounted bool
}

// NewStack returns a stack double delivering notifications to handler.
// A nil handler is allowed; notifications are then dropped.
func NewStack(handler usb.EventHandler) *Stack {
	return &Stack{handler: handler}
}

// Task counts the invocation and mounts on the first call.
func (s *Stack) Task() {
	s.mu.Lock()
	s.tasks++
	first := !s.mounted
	s.mounted = true
	h := s.handler
	s.mu.Unlock()

	if first && h != nil {
		h.Mount()
	}
}

// Tasks returns the number of Task invocations so far.
func (s *Stack) Tasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks
}

// CDCRingSize is the capacity of each direction of the CDC port double.
const CDCRingSize = 1024

// CDCPort is a loop-back-capable double for [usb.CDCPort]. The firmware
// side uses the usb.CDCPort methods; the host side uses HostWrite and
// HostRead.
type CDCPort struct {
	mu sync.Mutex

	fromHost []byte // host -> device, surfaced via Available/Read
	toHost   []byte // device -> host, staged until Flush
	flushed  []byte // device -> host, visible to HostRead
	flushes  int
}

// NewCDCPort returns an idle CDC port double.
func NewCDCPort() *CDCPort {
	return &CDCPort{}
}

// Available returns the number of bytes the host has sent and the device
// has not yet read.
func (p *CDCPort) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.fromHost)
}

// Read copies up to len(p) host bytes into buf.
func (p *CDCPort) Read(buf []byte) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := copy(buf, p.fromHost)
	p.fromHost = p.fromHost[n:]
	return n
}

// Write stages buf for transmission to the host, bounded by the ring
// capacity.
func (p *CDCPort) Write(buf []byte) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	room := CDCRingSize - len(p.toHost)
	if room <= 0 {
		return 0
	}
	if len(buf) > room {
		buf = buf[:room]
	}
	p.toHost = append(p.toHost, buf...)
	return len(buf)
}

// Flush moves staged transmit data into the host-visible stream.
func (p *CDCPort) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flushed = append(p.flushed, p.toHost...)
	p.toHost = nil
	p.flushes++
}

// HostWrite makes buf available to the device as received CDC data.
func (p *CDCPort) HostWrite(buf []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fromHost = append(p.fromHost, buf...)
}

// HostRead returns everything the device has flushed to the host since
// the last call.
func (p *CDCPort) HostRead() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.flushed
	p.flushed = nil
	return out
}

// Flushes returns how many times the device has flushed. Test hook.
func (p *CDCPort) Flushes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushes
}

// Unflushed returns the number of staged bytes not yet flushed.
// Test hook.
func (p *CDCPort) Unflushed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.toHost)
}
