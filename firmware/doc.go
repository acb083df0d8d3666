// Package firmware implements the cooperative polling loop at the heart
// of the debug firmware.
//
// One loop iteration, always in this order: print the prompt if the
// previous iteration consumed a command, poll the console for at most one
// character, echo and dispatch it, then service the USB collaborators
// (controller poll, stack task, CDC loop-back echo). The loop is strictly
// single-threaded and cooperative: each step runs to completion before
// the next, and the only suspension points are the console's busy-wait
// spins.
//
// Commands are single characters bound to actions in a registry populated
// at initialization. The stock bindings are the two endpoint diagnostic
// dumps ('S' and 'D'); extending the console means binding another byte,
// not registering handlers at runtime from elsewhere.
//
// There is no exit condition of its own: [Loop.Run] iterates until its
// context is cancelled, the hosted stand-in for an external reset.
package firmware
