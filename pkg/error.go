package pkg

import "errors"

// Transport lifecycle errors.
//
// The polled console primitives never return errors (they block until the
// hardware is ready). These sentinels cover the host-side boundary of the
// simulated and FIFO transports, where files and pipes can genuinely fail.
var (
	// ErrClosed indicates the transport has been torn down.
	ErrClosed = errors.New("transport closed")

	// ErrAlreadyOpen indicates the transport is already open.
	ErrAlreadyOpen = errors.New("transport already open")

	// ErrNotOpen indicates the transport has not been opened.
	ErrNotOpen = errors.New("transport not open")

	// ErrOverrun indicates a receive ring overrun: bytes were offered
	// faster than the firmware consumed them and have been dropped.
	ErrOverrun = errors.New("receive overrun")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")
)
