// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

// Package streamutil provides line reassembly for byte streams that arrive in
// arbitrarily sized chunks, such as the standard output of a subprocess.
//
// The central type is LineBuffer, which turns a sequence of chunks into a
// sequence of complete lines terminated at "\n" or "\r\n" boundaries. A chunk
// may split a logical line anywhere; the unterminated remainder is buffered
// until the next chunk supplies the separator.
//
// LineBuffer deliberately never emits a trailing unterminated fragment on its
// own. Process-listing commands terminate their output with a final separator,
// so in practice nothing is left behind; callers that do need the remainder
// must call Flush explicitly.
//
// Writer adapts a LineBuffer to io.Writer so it can be wired directly into
// exec.Cmd.Stdout, invoking a handler for each complete line as it appears.
//
// Example:
//
//	w := streamutil.NewWriter(func(line string) {
//	    fmt.Println("got line:", line)
//	})
//	cmd.Stdout = w
package streamutil
