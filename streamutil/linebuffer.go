// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package streamutil

import "regexp"

// lineSeparator matches both Unix and Windows line endings.
var lineSeparator = regexp.MustCompile(`\r?\n`)

// LineBuffer reassembles complete lines from a stream of text chunks.
// The zero value is ready to use. A LineBuffer is not safe for concurrent
// use; wrap it in a Writer when multiple goroutines may feed it.
type LineBuffer struct {
	// unfinished holds the unterminated remainder of the most recent chunk.
	// It never contains a line separator.
	unfinished string
}

// Append adds a chunk to the buffer and returns the complete lines it
// produced, in order, with separators stripped. The first returned line has
// any previously buffered remainder prepended. When the chunk contains no
// separator, nothing is returned and the whole chunk is merged into the
// buffered remainder.
func (b *LineBuffer) Append(chunk string) []string {
	parts := lineSeparator.Split(chunk, -1)
	if len(parts) == 1 {
		b.unfinished += chunk
		return nil
	}

	parts[0] = b.unfinished + parts[0]
	b.unfinished = parts[len(parts)-1]
	return parts[:len(parts)-1]
}

// Pending returns the buffered unterminated remainder without clearing it.
func (b *LineBuffer) Pending() string {
	return b.unfinished
}

// Flush returns the buffered remainder and clears it. Append never emits
// this data by itself, so a caller that cares about a final line without a
// trailing separator must call Flush after the last chunk.
func (b *LineBuffer) Flush() string {
	rest := b.unfinished
	b.unfinished = ""
	return rest
}
