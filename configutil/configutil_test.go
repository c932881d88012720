// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attachkit/attach-core/testutil"
)

func TestLoadExplicitFile(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, "psattach.yaml")

	content := `
format: json
show_all: true
listing:
  command: /usr/bin/ps
  args: ["-ax"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.ShowAll)
	assert.Equal(t, "/usr/bin/ps", cfg.Listing.Command)
	assert.Equal(t, []string{"-ax"}, cfg.Listing.Args)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	dir := testutil.TempDir(t)
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := testutil.TempDir(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsTraversal(t *testing.T) {
	_, err := Load("../elsewhere/config.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPath))
}
