// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerCreatesWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	defer SetupLogger(false, false)

	logger := NewLogger("pslist")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if logger.Component() != "pslist" {
		t.Errorf("expected component 'pslist', got %q", logger.Component())
	}

	logger.Info("hello")
	if !strings.Contains(buf.String(), "component=pslist") {
		t.Errorf("expected output to contain component=pslist, got: %s", buf.String())
	}
}

func TestWithOperationAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	defer SetupLogger(false, false)

	NewLogger("pslist").WithOperation("enumerate").Info("test")

	out := buf.String()
	if !strings.Contains(out, "component=pslist") {
		t.Errorf("expected component=pslist in output, got: %s", out)
	}
	if !strings.Contains(out, "operation=enumerate") {
		t.Errorf("expected operation=enumerate in output, got: %s", out)
	}
}

func TestWithFieldsAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	defer SetupLogger(false, false)

	NewLogger("cli").WithFields("pid", 42).Info("test")

	if !strings.Contains(buf.String(), "pid=42") {
		t.Errorf("expected pid=42 in output, got: %s", buf.String())
	}
}
