package logging

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// maxHeldBytes bounds what a held writer buffers; later writes are dropped.
const maxHeldBytes = 1 << 20

// HoldWriter passes writes through to an underlying writer until Hold is
// called, then buffers them until Release. It keeps stderr logs from drawing
// over a full-screen terminal UI.
type HoldWriter struct {
	mu      sync.Mutex
	out     io.Writer
	buf     bytes.Buffer
	held    bool
	dropped int
}

// NewHoldWriter wraps out.
func NewHoldWriter(out io.Writer) *HoldWriter {
	return &HoldWriter{out: out}
}

// Write implements io.Writer.
func (h *HoldWriter) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.held {
		return h.out.Write(p)
	}
	if h.buf.Len()+len(p) > maxHeldBytes {
		h.dropped += len(p)
		return len(p), nil
	}
	return h.buf.Write(p)
}

// Hold starts buffering.
func (h *HoldWriter) Hold() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.held = true
}

// Release writes everything buffered since Hold and resumes pass-through.
func (h *HoldWriter) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.held = false
	dropped := h.dropped
	h.dropped = 0
	if h.buf.Len() == 0 && dropped == 0 {
		return nil
	}
	_, err := h.buf.WriteTo(h.out)
	if err == nil && dropped > 0 {
		_, err = fmt.Fprintf(h.out, "... %d bytes of log output dropped\n", dropped)
	}
	return err
}
