package console

import "fmt"

// PrintfBufferSize is the size of the rendering buffer used by Printf,
// including the byte reserved for the terminator bound. At most
// PrintfBufferSize-1 characters of any one rendering reach the wire.
const PrintfBufferSize = 128

// Printf renders a formatted string into the console's fixed buffer and
// transmits it through WriteString (so CR/LF canonicalization applies).
// Renderings longer than the buffer are truncated: exactly the first
// PrintfBufferSize-1 characters are emitted. The return value is the
// length the full rendering would have had, which exceeds the emitted
// length when truncation occurred.
//
// Not reentrant: the buffer is shared across calls on the same Console.
func (c *Console) Printf(format string, args ...any) int {
	rendered := fmt.Appendf(c.fmtBuf[:0], format, args...)
	l := len(rendered)
	if l > PrintfBufferSize-1 {
		rendered = rendered[:PrintfBufferSize-1]
	}
	c.WriteString(string(rendered))
	return l
}
