// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"image/color"
	"testing"

	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientChain(t *testing.T) {
	d := load(t, testSVG)
	base := byID[*LinearGradient](t, d, "base")
	lg := byID[*LinearGradient](t, d, "lg")

	assert.Equal(t, Gradienter(base), lg.Linked())
	assert.Len(t, lg.Chain(), 2)
	assert.Equal(t, Gradienter(base), lg.Vector())
	assert.False(t, lg.HasStops())
	assert.Equal(t, ObjectBoundingBox, lg.EffectiveUnits())
	assert.Equal(t, 1, base.HrefCount())

	stops := lg.Stops()
	require.Len(t, stops, 2)
	assert.Equal(t, drawing.GradientStop{Offset: 0, Color: color.RGBA{255, 0, 0, 255}}, stops[0])
	assert.Equal(t, float32(0.5), stops[1].Offset)
	assert.Equal(t, color.RGBA{0, 0, 255, 128}, byID[*Stop](t, d, "s1").Color())

	// a cycle ends the chain
	base.Node().SetAttribute("xlink:href", "#lg")
	assert.Len(t, lg.Chain(), 2)
	assert.Len(t, base.Chain(), 2)
	assert.Equal(t, Gradienter(base), lg.Vector())
}

func TestStopOffsets(t *testing.T) {
	d := load(t, `<svg xmlns="http://www.w3.org/2000/svg">
  <linearGradient id="g">
    <stop offset="0.6"/>
    <stop offset="0.2"/>
    <stop offset="150%"/>
  </linearGradient>
</svg>`)
	g := byID[*LinearGradient](t, d, "g")
	var offs []float32
	for _, s := range g.Stops() {
		offs = append(offs, s.Offset)
	}
	assert.Equal(t, []float32{0.6, 0.6, 1}, offs)
}

func TestGradientPaint(t *testing.T) {
	d := load(t, testSVG)
	r := byID[*Rect](t, d, "rect1")
	lg := byID[*LinearGradient](t, d, "lg")

	dr := drawing.New("view")
	d.Show(dr)
	v := r.Views()[0]
	fill := v.Item.FillPattern()
	require.NotNil(t, fill)
	assert.Equal(t, drawing.GradientItem, fill.Kind)
	require.NotNil(t, fill.Gradient)
	assert.Len(t, fill.Gradient.Stops, 2)
	assert.InDelta(t, 0.5, fill.Gradient.End.X, 1e-6)
	assert.InDelta(t, 0, fill.Gradient.End.Y, 1e-6)
	assert.Equal(t, "pad", fill.Gradient.Spread)
	assertBox(t, r.GeometricBounds(), fill.Bounds)

	// a change of a stop of the linked gradient reaches the paint
	byID[*Stop](t, d, "s0").Node().SetAttribute("style", "stop-color:#00ff00")
	require.True(t, d.EnsureUpToDate())
	fill = v.Item.FillPattern()
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, fill.Gradient.Stops[0].Color)

	// the clone shows the paint too
	assert.Equal(t, 2, lg.ViewCount())

	// unsetting the fill hides the paint of the rect and its clone
	r.Node().SetAttribute("style", "fill:#ff0000")
	assert.Nil(t, v.Item.FillPattern())
	assert.Zero(t, lg.ViewCount())
	assert.True(t, fill.IsDestroyed())
}

const patternSVG = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
  <defs>
    <pattern id="base" patternUnits="userSpaceOnUse" width="10" height="10"><rect id="dot" width="5" height="5"/></pattern>
    <pattern id="pp" xlink:href="#base" patternTransform="translate(2,3)"/>
  </defs>
  <rect id="r" width="40" height="40" style="fill:url(#pp)"/>
</svg>`

func TestPattern(t *testing.T) {
	d := load(t, patternSVG)
	base := byID[*Pattern](t, d, "base")
	pp := byID[*Pattern](t, d, "pp")
	r := byID[*Rect](t, d, "r")
	dot := byID[*Rect](t, d, "dot")

	assert.Equal(t, base, pp.Linked())
	assert.Equal(t, base, pp.RootPattern())
	assert.Equal(t, base, base.RootPattern())
	assert.Equal(t, PaintServer(pp), r.FillServer())

	dr := drawing.New("view")
	d.Show(dr)
	fill := r.Views()[0].Item.FillPattern()
	require.NotNil(t, fill)
	assert.Equal(t, drawing.PatternItem, fill.Kind)
	assertBox(t, math32.B2(0, 0, 10, 10), fill.Bounds)
	o := fill.Transform.MulVector2AsPoint(math32.Vec2(0, 0))
	assert.Equal(t, math32.Vec2(2, 3), o)

	// the content is shown from the pattern that has it
	require.Len(t, fill.Children(), 1)
	assert.Len(t, fill.Children()[0].Children(), 1)
	assert.Len(t, dot.Views(), 1)
	assert.Equal(t, 1, pp.ViewCount())

	d.Hide(dr)
	assert.Empty(t, dot.Views())
	assert.Zero(t, pp.ViewCount())
	assert.True(t, fill.IsDestroyed())
}

func TestForkPaint(t *testing.T) {
	d := load(t, `<svg xmlns="http://www.w3.org/2000/svg">
  <defs><linearGradient id="g"><stop offset="0"/></linearGradient></defs>
  <rect id="a" style="fill:url(#g)"/>
  <rect id="b" style="fill:url(#g);stroke:url(#g)"/>
</svg>`)
	g := byID[*LinearGradient](t, d, "g")
	assert.Equal(t, 3, g.HrefCount())
	assert.Same(t, g, g.ForkPrivateIfNecessary(3))
	fk := g.ForkPrivateIfNecessary(2)
	require.NotSame(t, g, fk)
	assert.True(t, fk.AsGradient().HasStops())
	assert.Zero(t, fk.AsObject().HrefCount())
	assert.Len(t, d.Resources("linearGradient"), 2)
}
