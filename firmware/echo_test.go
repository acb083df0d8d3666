package firmware

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/softconsole/console"
	tsim "github.com/ardnew/softconsole/console/transport/sim"
	usim "github.com/ardnew/softconsole/usb/sim"
)

func TestEchoLoopbackExact(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"single byte", []byte{'x'}},
		{"text", []byte("hello, host")},
		{"binary", []byte{0x00, 0xFF, 0x7F, 0x80, '\n', '\r'}},
		{"full chunk", bytes.Repeat([]byte{0xA5}, EchoChunkSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			h.cdc.HostWrite(tt.in)
			h.loop.Step()

			assert.Equal(t, tt.in, h.cdc.HostRead(),
				"echo must return the exact byte sequence")
			assert.Equal(t, 1, h.cdc.Flushes(), "one flush per echoed chunk")
			assert.Zero(t, h.cdc.Unflushed())
		})
	}
}

func TestEchoChunksLargeInput(t *testing.T) {
	h := newHarness(t)

	in := make([]byte, EchoChunkSize+36)
	for i := range in {
		in[i] = byte(i)
	}
	h.cdc.HostWrite(in)

	h.loop.Step()
	first := h.cdc.HostRead()
	require.Len(t, first, EchoChunkSize, "one chunk per iteration")
	assert.Equal(t, in[:EchoChunkSize], first)

	h.loop.Step()
	second := h.cdc.HostRead()
	assert.Equal(t, in[EchoChunkSize:], second)
	assert.Equal(t, 2, h.cdc.Flushes())
}

func TestEchoIdleWithoutData(t *testing.T) {
	h := newHarness(t)

	h.loop.Step()
	assert.Zero(t, h.cdc.Flushes(), "no data, no flush")
	assert.Empty(t, h.cdc.HostRead())
}

func TestEchoNilPort(t *testing.T) {
	uart := tsim.New()
	loop, err := New(Config{
		Console:    console.New(uart),
		Controller: usim.NewController(),
		Stack:      usim.NewStack(nil),
	})
	require.NoError(t, err)

	// Must not panic with no CDC port wired.
	for i := 0; i < 3; i++ {
		loop.Step()
	}
}
