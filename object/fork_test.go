// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"testing"

	"cogentcore.org/canvas/lpe"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/ppath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lpeSVG = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">
  <defs>
    <inkscape:path-effect id="pe" effect="bounding_box" is_visible="true"/>
  </defs>
  <path id="p1" d="M 0 0 L 10 0 L 10 10" inkscape:path-effect="#pe"/>
  <path id="p2" d="M 0 0 L 20 5" inkscape:path-effect="#pe"/>
</svg>`

func TestForkPrivate(t *testing.T) {
	d := load(t, lpeSVG)
	pe := byID[*PathEffectObject](t, d, "pe")
	assert.Equal(t, lpe.BoundingBox, pe.Kind)
	require.Equal(t, 2, pe.HrefCount())
	before := pe.Node().String()

	assert.Same(t, pe, pe.ForkPrivateIfNecessary(2))

	fk := pe.ForkPrivateIfNecessary(1)
	require.NotSame(t, pe, fk)
	assert.NotEqual(t, "pe", fk.ID())
	assert.Equal(t, lpe.BoundingBox, fk.Kind)
	assert.Equal(t, before, pe.Node().String())
	assert.Equal(t, pe.Node(), fk.Node().Prev())
	assert.Len(t, d.Resources("path-effect"), 2)
}

func TestForkPathEffects(t *testing.T) {
	d := load(t, lpeSVG)
	pe := byID[*PathEffectObject](t, d, "pe")
	p1 := byID[*Path](t, d, "p1")
	p2 := byID[*Path](t, d, "p2")

	assert.False(t, p1.ForkPathEffectsIfNecessary(2))
	require.True(t, p1.ForkPathEffectsIfNecessary(1))
	assert.Equal(t, 1, pe.HrefCount())
	list := p1.PathEffectList()
	require.Len(t, list, 1)
	assert.NotEqual(t, "#pe", list[0])
	require.Len(t, p1.PathEffects(), 1)
	assert.Equal(t, 1, p1.PathEffects()[0].HrefCount())
	assert.Equal(t, []string{"#pe"}, p2.PathEffectList())

	// the last user does not fork
	assert.False(t, p2.ForkPathEffectsIfNecessary(1))
}

func TestPathEffectGuard(t *testing.T) {
	d := load(t, lpeSVG)
	p := byID[*Path](t, d, "p1")
	assert.False(t, d.IsUpdatePending())

	orig, ok := p.OriginalD()
	require.True(t, ok)
	assert.Equal(t, ppath.MustParseSVGPath("M 0 0 L 10 0 L 10 10").String(), orig.String())
	assertBox(t, math32.B2(0, 0, 10, 10), p.Curve().Bounds())
	v, _ := p.Node().Attribute("d")
	assert.Equal(t, p.Curve().String(), v)

	// writing d back does not apply the effect again
	n := p.Node().AttributeOr("d", "")
	require.True(t, d.EnsureUpToDate())
	assert.Equal(t, n, p.Node().AttributeOr("d", ""))

	p.Node().SetAttribute("inkscape:original-d", "M 0 0 L 20 30")
	require.True(t, d.EnsureUpToDate())
	assertBox(t, math32.B2(0, 0, 20, 30), p.Curve().Bounds())
	v, _ = p.Node().Attribute("d")
	assert.Equal(t, p.Curve().String(), v)

	// removing the last effect restores the original path
	p.RemoveCurrentPathEffect(false)
	require.True(t, d.EnsureUpToDate())
	assert.False(t, p.HasPathEffect())
	_, ok = p.OriginalD()
	assert.False(t, ok)
	assert.Equal(t, ppath.MustParseSVGPath("M 0 0 L 20 30").String(), p.Node().AttributeOr("d", ""))
	assert.Equal(t, 1, byID[*PathEffectObject](t, d, "pe").HrefCount())
}
