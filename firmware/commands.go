package firmware

// Stock command bytes.
const (
	// CmdSerialStatus dumps the CDC serial endpoints.
	CmdSerialStatus = 'S'

	// CmdDataDump dumps the auxiliary data endpoints.
	CmdDataDump = 'D'
)

// Endpoint addresses dumped by the stock commands. These match the
// descriptor layout of the CDC-ACM configuration the firmware ships
// with: notification IN, data OUT, data IN, and the auxiliary pair.
const (
	epNotify  = 0x81
	epDataOut = 0x02
	epDataIn  = 0x82
	epAuxOut  = 0x03
	epAuxIn   = 0x83
)

// Bind maps a command byte to an action. Later bindings replace earlier
// ones; binding nil removes the command. The dispatch default remains a
// no-op: bytes with no binding are silently ignored.
func (l *Loop) Bind(cmd byte, action func()) {
	if action == nil {
		delete(l.commands, cmd)
		return
	}
	l.commands[cmd] = action
}

// bindStockCommands installs the two diagnostic dump commands.
func (l *Loop) bindStockCommands() {
	l.Bind(CmdSerialStatus, func() {
		l.ctl.DebugEndpoint(l.port, epNotify)
		l.ctl.DebugEndpoint(l.port, epDataOut)
		l.ctl.DebugEndpoint(l.port, epDataIn)
	})
	l.Bind(CmdDataDump, func() {
		l.ctl.DebugEndpoint(l.port, epAuxOut)
		l.ctl.DebugEndpoint(l.port, epAuxIn)
	})
}
