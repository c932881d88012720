// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package streamutil

import "sync"

// LineHandler is a callback invoked once per complete line.
type LineHandler func(line string)

// Writer adapts a LineBuffer to io.Writer. It buffers partial lines across
// writes and calls the handler for each complete line, in arrival order.
// Writes are serialized by a mutex, so the handler never runs concurrently
// with itself.
type Writer struct {
	mu      sync.Mutex
	buf     LineBuffer
	handler LineHandler
}

// NewWriter returns a Writer that invokes handler for every complete line
// written to it.
func NewWriter(handler LineHandler) *Writer {
	return &Writer{handler: handler}
}

// Write implements io.Writer. It never fails; the returned count is always
// len(p).
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, line := range w.buf.Append(string(p)) {
		if w.handler != nil {
			w.handler(line)
		}
	}
	return len(p), nil
}

// Pending returns the buffered unterminated remainder.
func (w *Writer) Pending() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Pending()
}

// Flush delivers any buffered remainder to the handler as a final line.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if rest := w.buf.Flush(); rest != "" && w.handler != nil {
		w.handler(rest)
	}
}
