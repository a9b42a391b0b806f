// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filters

import (
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filterSVG = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
  <defs>
    <filter id="f">
      <feGaussianBlur id="blur" stdDeviation="3" result="b"/>
      <feOffset id="off" in="b" dx="2" dy="4" result="o"/>
      <feBlend id="blend" in="SourceGraphic" in2="o" mode="multiply"/>
      <feComposite id="comp" in="missing" in2="b" operator="arithmetic" k2="1" k3="0.5"/>
      <feMerge id="merge"><feMergeNode in="b"/><feMergeNode/></feMerge>
    </filter>
    <filter id="f2" x="0" y="0" width="1" height="1">
      <feFlood id="flood" style="flood-color:#ff0000;flood-opacity:0.5"/>
      <feColorMatrix id="cm" type="saturate" values="0"/>
      <feMorphology id="morph" operator="dilate" radius="2 3"/>
      <feImage id="img" xlink:href="#r"/>
      <feTile id="tile"/>
    </filter>
  </defs>
  <rect id="r" x="10" y="10" width="100" height="50" style="stroke:none;filter:url(#f)"/>
</svg>`

func load(t *testing.T, src string) *object.Document {
	t.Helper()
	d, err := object.Load(strings.NewReader(src))
	require.NoError(t, err)
	return d
}

func byID[T object.Object](t *testing.T, d *object.Document, id string) T {
	t.Helper()
	o, ok := d.ObjectByID(id).(T)
	require.True(t, ok, "object %q", id)
	return o
}

func assertBox(t *testing.T, want, got math32.Box2) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, 1e-4)
	assert.InDelta(t, want.Min.Y, got.Min.Y, 1e-4)
	assert.InDelta(t, want.Max.X, got.Max.X, 1e-4)
	assert.InDelta(t, want.Max.Y, got.Max.Y, 1e-4)
}

func TestFactory(t *testing.T) {
	tags := object.Tags()
	for _, tag := range []string{"svg:filter", "svg:feGaussianBlur", "svg:feMergeNode", "svg:feImage"} {
		assert.Contains(t, tags, tag)
	}
	o, ok := object.New("svg:filter")
	require.True(t, ok)
	f := o.(*Filter)
	assert.Equal(t, object.ObjectBoundingBox, f.Units)
	assert.Equal(t, float32(-10), f.X.Value)
	assert.Equal(t, "%", f.Width.Unit)
}

func TestResolveInput(t *testing.T) {
	d := load(t, filterSVG)
	f := byID[*Filter](t, d, "f")
	require.Len(t, f.Primitives(), 5)

	blur := byID[*GaussianBlur](t, d, "blur")
	off := byID[*Offset](t, d, "off")
	blend := byID[*Blend](t, d, "blend")
	comp := byID[*Composite](t, d, "comp")
	merge := byID[*Merge](t, d, "merge")

	assert.Equal(t, InputSourceGraphic, blur.Input())
	assert.Equal(t, Input(0), off.Input())
	assert.Equal(t, InputSourceGraphic, blend.Input())
	assert.Equal(t, Input(1), blend.Input2())
	assert.Equal(t, InputNotSet, comp.Input())
	assert.Equal(t, Input(0), comp.Input2())
	assert.Equal(t, []Input{0, 3}, merge.Inputs())
	assert.Equal(t, "not set", InputNotSet.String())

	// a result defined later does not resolve an earlier in
	off.Node().SetAttribute("in", "o")
	assert.Equal(t, InputNotSet, off.Input())

	// renaming the result updates the table
	comp.Node().SetAttribute("result", "missing")
	assert.Equal(t, InputNotSet, comp.Input())
	merge.Node().FirstChild().SetAttribute("in", "missing")
	assert.Equal(t, []Input{3, 3}, merge.Inputs())

	blur.Node().Unparent()
	assert.Len(t, f.Primitives(), 4)
	assert.Equal(t, InputNotSet, comp.Input2())
	assert.Equal(t, 2, comp.Index())
}

func TestSetResult(t *testing.T) {
	d := load(t, filterSVG)
	f := byID[*Filter](t, d, "f")
	blend := byID[*Blend](t, d, "blend")
	name := f.SetResult(blend, "")
	assert.Equal(t, "result1", name)
	assert.Equal(t, "result1", blend.Result)
	assert.Equal(t, Input(2), f.ResolveInput(3, "result1"))
}

func TestGaussianBlur(t *testing.T) {
	d := load(t, filterSVG)
	blur := byID[*GaussianBlur](t, d, "blur")
	x, y := blur.Deviation()
	assert.Equal(t, float32(3), x)
	assert.Equal(t, float32(3), y)

	blur.SetDeviation(2, 5)
	assert.Equal(t, []float32{2, 5}, blur.StdDeviation)
	v, _ := blur.Node().Attribute("stdDeviation")
	assert.Equal(t, "2 5", v)

	blur.Node().SetAttribute("stdDeviation", "4")
	d.UpdateRepr()
	v, _ = blur.Node().Attribute("stdDeviation")
	assert.Equal(t, "4", v)

	for _, v := range []string{"3.5", "3.5 2.0", "4", "4 7"} {
		blur.Node().SetAttribute("stdDeviation", v)
		n := blur.Write(d.Repr(), nil, object.WriteBuild)
		got, _ := n.Attribute("stdDeviation")
		assert.Equal(t, v, got)
	}
	x, y = blur.Deviation()
	assert.Equal(t, float32(4), x)
	assert.Equal(t, float32(7), y)

	blur.Node().SetAttribute("stdDeviation", "-1")
	assert.Nil(t, blur.StdDeviation)
	blur.Node().SetAttribute("stdDeviation", "1 2 3")
	assert.Nil(t, blur.StdDeviation)
}

func TestPrimitives(t *testing.T) {
	d := load(t, filterSVG)

	off := byID[*Offset](t, d, "off")
	assert.Equal(t, float32(2), off.DX)
	assert.Equal(t, float32(4), off.DY)

	comp := byID[*Composite](t, d, "comp")
	assert.Equal(t, CompositeArithmetic, comp.Operator)
	assert.Equal(t, float32(0.5), comp.K3)

	flood := byID[*Flood](t, d, "flood")
	assert.Equal(t, color.RGBA{255, 0, 0, 128}, flood.Color())

	cm := byID[*ColorMatrix](t, d, "cm")
	assert.Equal(t, ColorMatrixSaturate, cm.Type)
	m := cm.Matrix()
	assert.InDelta(t, 0.213, m[0], 1e-6)
	assert.InDelta(t, 0.715, m[1], 1e-6)
	cm.Node().SetAttribute("type", "matrix")
	assert.Nil(t, cm.Values)
	assert.Equal(t, float32(1), cm.Matrix()[6])

	morph := byID[*Morphology](t, d, "morph")
	assert.Equal(t, MorphologyDilate, morph.Operator)
	rx, ry := morph.Radii()
	assert.Equal(t, float32(2), rx)
	assert.Equal(t, float32(3), ry)

	img := byID[*Image](t, d, "img")
	assert.Equal(t, d.ObjectByID("r"), img.Element())
	img.Node().SetAttribute("xlink:href", "photo.png")
	assert.Nil(t, img.Element())
}

func TestFilterRegion(t *testing.T) {
	d := load(t, filterSVG)
	r := byID[*object.Rect](t, d, "r")
	f := byID[*Filter](t, d, "f")
	require.Equal(t, object.FilterObject(f), r.Filter())
	assert.Equal(t, 1, f.HrefCount())

	assertBox(t, math32.B2(0, 5, 120, 65), r.VisualBounds())

	r.Node().SetAttribute("style", "stroke:none;filter:url(#f2)")
	f2 := byID[*Filter](t, d, "f2")
	assert.Equal(t, object.FilterObject(f2), r.Filter())
	assert.Equal(t, 0, f.HrefCount())
	assertBox(t, math32.B2(10, 10, 110, 60), r.VisualBounds())

	tile := byID[*Tile](t, d, "tile")
	assertBox(t, math32.B2(10, 10, 110, 60), tile.Subregion(f2.FilterRegion(r.GeometricBounds()), r.GeometricBounds()))
}

func TestRelease(t *testing.T) {
	d := load(t, filterSVG)
	r := byID[*object.Rect](t, d, "r")
	assert.Len(t, d.Resources("filter"), 2)
	d.ObjectByID("f").AsObject().Delete()
	assert.Len(t, d.Resources("filter"), 1)
	assert.Nil(t, r.Filter())
	assert.Nil(t, d.ObjectByID("blur"))
}
