// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o666))
	return path
}

func TestOpenTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "canvas.toml", `
log-level = "debug"
undo-limit = 5
watch-debounce = "1s"
`)
	s := Defaults()
	require.NoError(t, s.Open(path))
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 5, s.UndoLimit)
	assert.Equal(t, time.Second, s.WatchDebounce.Std())
	// not in the file
	assert.Equal(t, 1, s.LPEShareLimit)
	assert.True(t, s.StrictXML)
}

func TestOpenYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "canvas.yml", "id-prefix: doc\nstrict-xml: false\nlpe-share-limit: 3\n")
	s := Defaults()
	require.NoError(t, s.Open(path))
	assert.Equal(t, "doc", s.IDPrefix)
	assert.False(t, s.StrictXML)
	assert.Equal(t, 3, s.LPEShareLimit)
}

func TestIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "undo-limit: 7\nid-prefix: base\n")
	path := writeFile(t, dir, "canvas.toml", `
includes = ["base.yaml"]
id-prefix = "top"
`)
	s := Defaults()
	require.NoError(t, s.Open(path))
	assert.Equal(t, 7, s.UndoLimit)
	assert.Equal(t, "top", s.IDPrefix)
	assert.Equal(t, []string{"base.yaml"}, s.Includes)

	loop := writeFile(t, dir, "loop.toml", `includes = ["loop.toml"]`)
	assert.Error(t, s.Open(loop))
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	s := Defaults()
	assert.ErrorIs(t, s.Open(writeFile(t, dir, "canvas.ini", "x=1")), ErrUnknownFormat)
	assert.Error(t, s.Open(writeFile(t, dir, "bad.toml", "undo-limit = [")))
	assert.Error(t, s.Open(filepath.Join(dir, "missing.toml")))
	assert.ErrorIs(t, s.Save(filepath.Join(dir, "out.json")), ErrUnknownFormat)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := Defaults()
	s.IDPrefix = "x"
	s.WatchDebounce = Duration(3 * time.Second)
	for _, name := range []string{"out.toml", "out.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, s.Save(path))
		got := Settings{}
		require.NoError(t, got.Open(path))
		assert.Equal(t, s, got, name)
	}
}
