// Package usb defines the capability interfaces between the firmware
// core and the external USB device stack.
//
// The firmware never assumes a concrete controller or class stack. It
// consumes three capabilities each loop iteration:
//
//   - [Controller]: service pending controller events in polled mode and
//     dump endpoint diagnostics on operator command
//   - [Stack]: advance the protocol and class state machines
//   - [CDCPort]: availability check, bounded read, bounded write, and
//     flush for the CDC data channel
//
// and exposes one: [EventHandler], the notifications the stack delivers
// back to the firmware (mount, unmount, suspend, resume, line state,
// data arrival). [BaseHandler] provides the all-no-op implementation for
// firmware that only cares about a subset.
//
// CDCPort is count-based rather than error-based: in the polled no-OS
// model a port that has nothing to say simply reports zero, and there is
// no failure to surface beyond the absence of data.
package usb
