// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package debugargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		args string
		want Target
	}{
		{
			name: "bare inspect flag",
			args: "--inspect",
			want: Target{},
		},
		{
			name: "inspect with port",
			args: "--inspect=9229",
			want: Target{Port: 9229},
		},
		{
			name: "inspect with host and port",
			args: "--inspect=localhost:9229",
			want: Target{Address: "localhost", Port: 9229},
		},
		{
			name: "break on start with port",
			args: "--inspect-brk=9229",
			want: Target{Port: 9229},
		},
		{
			name: "port override wins over inspect port",
			args: "--inspect=9229 --inspect-port=9230",
			want: Target{Port: 9230},
		},
		{
			name: "port override wins regardless of order",
			args: "--inspect-port=9230 --inspect=9229",
			want: Target{Port: 9230},
		},
		{
			name: "port override alone",
			args: "--inspect-port=9230",
			want: Target{Port: 9230},
		},
		{
			name: "ipv4 host",
			args: "--inspect=127.0.0.1:9229",
			want: Target{Address: "127.0.0.1", Port: 9229},
		},
		{
			name: "bracketed ipv6 host",
			args: "--inspect=[::1]:9229",
			want: Target{Address: "[::1]", Port: 9229},
		},
		{
			name: "legacy debug flag",
			args: "--debug-brk=5858",
			want: Target{Port: 5858},
		},
		{
			name: "flag embedded in larger command line",
			args: "server.js --inspect=0.0.0.0:9229 --port 8080",
			want: Target{Address: "0.0.0.0", Port: 9229},
		},
		{
			name: "no debug flags",
			args: "server.js --port 8080",
			want: Target{},
		},
		{
			name: "empty input",
			args: "",
			want: Target{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.args))
		})
	}
}

func TestAnalyzeIsPure(t *testing.T) {
	const args = "--inspect=localhost:9229 --inspect-port=9230"

	first := Analyze(args)
	second := Analyze(args)

	assert.Equal(t, first, second)
	assert.Equal(t, Target{Address: "localhost", Port: 9230}, first)
}
