// Package pkg provides shared utilities for the softconsole firmware core.
//
// This package contains common functionality used across the console,
// transport, and firmware packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for transport setup and teardown
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with component context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentFirmware, "boot complete", "port", 0)
//
// The console data path itself never logs: the console is the log device
// of the system it runs on, and logging from inside its byte primitives
// would recurse. Only the simulated and FIFO transports, which have a
// host-side file boundary, emit log records.
//
// # Errors
//
// Transport lifecycle errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrClosed) {
//	    // Transport torn down under us
//	}
//
// The polled console primitives are error-free: they block until the
// hardware is ready or silently return nothing, matching the no-OS
// operating model of the firmware they drive.
package pkg
