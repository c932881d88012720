// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package pslist

import "testing"

func TestWindowsParserQuotedCommand(t *testing.T) {
	p := NewWindowsParser()

	line := `"C:\a b\node.exe" --inspect   1600000000.000000+000   100   200`
	rec, ok := p.ParseLine(line)
	if !ok {
		t.Fatalf("ParseLine(%q) not ok", line)
	}

	if rec.Command != `C:\a b\node.exe` {
		t.Errorf("Command = %q, want %q", rec.Command, `C:\a b\node.exe`)
	}
	if rec.Args != "--inspect" {
		t.Errorf("Args = %q, want %q", rec.Args, "--inspect")
	}
	if rec.PPID != 100 {
		t.Errorf("PPID = %d, want 100", rec.PPID)
	}
	if rec.PID != 200 {
		t.Errorf("PID = %d, want 200", rec.PID)
	}
	if rec.Date != 1600000000 {
		t.Errorf("Date = %d, want 1600000000", rec.Date)
	}
}

func TestWindowsParserUnquotedCommand(t *testing.T) {
	p := NewWindowsParser()

	line := `C:\Windows\System32\svchost.exe -k netsvcs   1600000001.500000+060   4   1234`
	rec, ok := p.ParseLine(line)
	if !ok {
		t.Fatalf("ParseLine(%q) not ok", line)
	}

	if rec.Command != `C:\Windows\System32\svchost.exe` {
		t.Errorf("Command = %q, want svchost path", rec.Command)
	}
	if rec.Args != "-k netsvcs" {
		t.Errorf("Args = %q, want %q", rec.Args, "-k netsvcs")
	}
	if rec.PID != 1234 || rec.PPID != 4 {
		t.Errorf("PID/PPID = %d/%d, want 1234/4", rec.PID, rec.PPID)
	}
}

func TestWindowsParserCommandWithoutArgs(t *testing.T) {
	p := NewWindowsParser()

	rec, ok := p.ParseLine(`C:\Windows\explorer.exe   1600000000.000000+000   1   42`)
	if !ok {
		t.Fatal("ParseLine() not ok")
	}
	if rec.Command != `C:\Windows\explorer.exe` {
		t.Errorf("Command = %q", rec.Command)
	}
	if rec.Args != "" {
		t.Errorf("Args = %q, want empty", rec.Args)
	}
}

func TestWindowsParserRejectsNonMatchingRows(t *testing.T) {
	p := NewWindowsParser()

	tests := []struct {
		name string
		line string
	}{
		{"header row", "CommandLine   CreationDate   ParentProcessId   ProcessId"},
		{"empty line", ""},
		{"missing columns", `C:\Windows\explorer.exe   1600000000.000000+000   1`},
		{"no date", `C:\Windows\explorer.exe   1   42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := p.ParseLine(tt.line); ok {
				t.Errorf("ParseLine(%q) ok, want rejection", tt.line)
			}
		})
	}
}

func TestWindowsParserIdempotent(t *testing.T) {
	p := NewWindowsParser()
	line := `"C:\a b\node.exe" --inspect   1600000000.000000+000   100   200`

	first, ok1 := p.ParseLine(line)
	second, ok2 := p.ParseLine(line)

	if !ok1 || !ok2 {
		t.Fatal("ParseLine() not ok")
	}
	if first != second {
		t.Errorf("repeated parse differs: %+v vs %+v", first, second)
	}
}

func TestSplitCommandBlobUnterminatedQuote(t *testing.T) {
	command, args := splitCommandBlob(`"C:\broken\path`)

	if command != `"C:\broken\path` {
		t.Errorf("command = %q", command)
	}
	if args != "" {
		t.Errorf("args = %q, want empty", args)
	}
}
