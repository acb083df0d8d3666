package usb

// Controller is the device controller driver, driven in polled mode.
type Controller interface {
	// PollInterrupts services pending controller events on the given
	// port, in lieu of a hardware interrupt.
	PollInterrupts(port uint8)

	// DebugEndpoint dumps diagnostic state for the endpoint at epAddr
	// on the given port. Output goes wherever the controller's
	// diagnostics are wired; the firmware consumes no return value.
	DebugEndpoint(port, epAddr uint8)
}

// Stack advances the USB protocol and class state machines. The firmware
// invokes Task once per loop iteration.
type Stack interface {
	Task()
}

// CDCPort is the data interface of a CDC (virtual serial) class driver.
type CDCPort interface {
	// Available returns the number of received bytes ready to read.
	Available() int

	// Read copies up to len(p) received bytes into p and returns the
	// count. It never blocks; an empty port returns 0.
	Read(p []byte) int

	// Write queues p for transmission to the host and returns the
	// number of bytes accepted.
	Write(p []byte) int

	// Flush pushes any queued transmit data to the host.
	Flush()
}

// EventHandler receives device-stack notifications. Implementations run
// on the firmware's single thread of control and must not block.
type EventHandler interface {
	// Mount is invoked when the host configures the device.
	Mount()

	// Unmount is invoked when the device is unconfigured or detached.
	Unmount()

	// Suspend is invoked when the bus suspends. remoteWakeup reports
	// whether the host permits remote wakeup.
	Suspend(remoteWakeup bool)

	// Resume is invoked when the bus resumes.
	Resume()

	// LineState is invoked when a CDC interface's DTR/RTS lines change.
	LineState(itf uint8, dtr, rts bool)

	// Received is invoked when a CDC interface has new data from the
	// host.
	Received(itf uint8)
}

// BaseHandler is an EventHandler with empty method bodies. Embed it to
// handle only the notifications of interest.
type BaseHandler struct{}

func (BaseHandler) Mount()                             {}
func (BaseHandler) Unmount()                           {}
func (BaseHandler) Suspend(bool)                       {}
func (BaseHandler) Resume()                            {}
func (BaseHandler) LineState(itf uint8, dtr, rts bool) {}
func (BaseHandler) Received(itf uint8)                 {}
