// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/canvas/config"
	"cogentcore.org/canvas/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docSVG = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="100" height="100">
  <defs>
    <inkscape:path-effect id="pe" effect="bounding_box" is_visible="true"/>
  </defs>
  <g id="layer1" inkscape:label="Layer 1" inkscape:groupmode="layer">
    <rect id="r" x="1" y="2" width="3" height="4"/>
    <path id="p1" d="M 0 0 L 10 10" inkscape:path-effect="#pe"/>
    <path id="p2" d="M 0 0 L 5 10" inkscape:path-effect="#pe"/>
  </g>
</svg>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o666))
	return file
}

func runOut(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, run(args, &buf))
	return buf.String()
}

func TestAttrs(t *testing.T) {
	all := strings.Fields(runOut(t, "attrs"))
	css := strings.Fields(runOut(t, "attrs", "--css"))
	assert.Contains(t, all, "fill")
	assert.Contains(t, all, "inkscape:label")
	assert.Contains(t, css, "fill")
	assert.NotContains(t, css, "inkscape:label")
	assert.Less(t, len(css), len(all))
}

func TestLookup(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(runOut(t, "lookup", "fill", "bogus")), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "fill\t"))
	assert.True(t, strings.HasSuffix(lines[0], "\tcss"))
	assert.Equal(t, "bogus\tunknown", lines[1])
}

func TestLPEs(t *testing.T) {
	assert.Contains(t, runOut(t, "lpes"), "bounding_box\tBounding Box\n")
}

func TestTree(t *testing.T) {
	file := writeFile(t, "doc.svg", docSVG)
	out := runOut(t, "tree", file)
	assert.Contains(t, out, "\n  g#layer1 \"Layer 1\"\n")
	assert.Contains(t, out, "\n    rect#r\n")
	assert.Contains(t, out, "path-effect#pe [2 refs]")
}

func TestRoundtrip(t *testing.T) {
	file := writeFile(t, "doc.svg", docSVG)
	out := filepath.Join(filepath.Dir(file), "out.svg")
	lines := strings.Fields(runOut(t, "roundtrip", "--out", out, file))
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0], lines[1])

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `id="layer1"`)
}

func TestFork(t *testing.T) {
	file := writeFile(t, "doc.svg", docSVG)
	out := filepath.Join(filepath.Dir(file), "forked.svg")
	runOut(t, "fork", "--out", out, file)

	d, err := object.Open(out, config.Defaults())
	require.NoError(t, err)
	defer d.Close()
	assert.Len(t, d.Resources("path-effect"), 2)
	assert.Equal(t, 1, d.ObjectByID("pe").AsObject().HrefCount())
}

func TestQuery(t *testing.T) {
	file := writeFile(t, "doc.svg", docSVG)
	out := runOut(t, "query", file, "//svg:path")
	assert.Equal(t, "svg:path#p1 *object.Path\nsvg:path#p2 *object.Path\n", out)
}

func TestConfigFile(t *testing.T) {
	file := writeFile(t, "doc.svg", docSVG)
	cfg := writeFile(t, "canvas.toml", "lpe-share-limit = 2\n")
	out := filepath.Join(filepath.Dir(file), "forked.svg")
	runOut(t, "--config", cfg, "fork", "--out", out, file)

	d, err := object.Open(out, config.Defaults())
	require.NoError(t, err)
	defer d.Close()
	assert.Len(t, d.Resources("path-effect"), 1)
}

func TestReload(t *testing.T) {
	file := writeFile(t, "doc.svg", docSVG)
	d, err := object.Open(file, config.Defaults())
	require.NoError(t, err)
	defer d.Close()

	var updates int
	d.Modified.Connect(func(object.Flags) { updates++ })

	changed := strings.Replace(docSVG, `<rect id="r" x="1"`, `<rect id="r" x="7"`, 1)
	changed = strings.Replace(changed, `<path id="p2" d="M 0 0 L 5 10" inkscape:path-effect="#pe"/>`, `<circle id="c" r="2"/>`, 1)
	require.NoError(t, os.WriteFile(file, []byte(changed), 0o666))
	r := d.ObjectByID("r")
	require.NoError(t, reload(d, file, true))

	assert.Same(t, r, d.ObjectByID("r"))
	assert.Equal(t, "7", r.AsObject().Node().AttributeOr("x", ""))
	assert.Nil(t, d.ObjectByID("p2"))
	assert.NotNil(t, d.ObjectByID("c"))
	assert.Positive(t, updates)
	assert.True(t, d.CanUndo())

	d.Undo()
	assert.NotNil(t, d.ObjectByID("p2"))
	assert.Nil(t, d.ObjectByID("c"))

	bad := writeFile(t, "bad.svg", `<html/>`)
	assert.Error(t, reload(d, bad, true))
}
