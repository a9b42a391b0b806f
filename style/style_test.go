// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"image/color"
	"testing"

	"cogentcore.org/canvas/attr"
	"github.com/aymerick/douceur/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func mustDecls(t *testing.T, s string) []*css.Declaration {
	decls, err := parseDeclarations(s)
	require.NoError(t, err)
	return decls
}

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, float32(1), s.Opacity.Value)
	assert.Equal(t, PaintColor, s.Fill.Value.Kind)
	assert.Equal(t, PaintNone, s.Stroke.Value.Kind)
	assert.Equal(t, "", s.Write(WriteIfSet))
	assert.True(t, s.Visible())
	assert.True(t, Has(attr.Fill))
	assert.False(t, Has(attr.X))
	assert.True(t, Inherited(attr.Fill))
	assert.False(t, Inherited(attr.ClipPath))
}

func TestReadStyleString(t *testing.T) {
	s := New()
	require.NoError(t, s.ReadStyleString("stroke-width:2px; fill:#f00;opacity:50%;font-weight:bold;stroke:url(#grad1)"))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, s.Fill.Value.Color)
	assert.Equal(t, float32(0.5), s.Opacity.Value)
	assert.Equal(t, Length{2, "px"}, s.StrokeWidth.Value)
	assert.Equal(t, "#grad1", s.Stroke.Value.URL)
	assert.Equal(t, SourceStyleProperty, s.SourceOf(attr.Fill))
	// written in property order, unknown declarations last
	assert.Equal(t, "opacity:0.5;fill:#ff0000;stroke:url(#grad1);stroke-width:2px;font-weight:bold", s.Write(WriteIfSet))

	// re-reading replaces the previous style attribute
	require.NoError(t, s.ReadStyleString("fill:blue"))
	assert.Equal(t, "fill:#0000ff", s.Write(WriteIfSet))
	assert.False(t, s.IsSet(attr.Opacity))

	// the last declaration keeps its value without a trailing ';'
	require.NoError(t, s.ReadStyleString("fill:none;stroke:#00ff00"))
	assert.Equal(t, PaintColor, s.Stroke.Value.Kind)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, s.Stroke.Value.Color)
	assert.Equal(t, "fill:none;stroke:#00ff00", s.Write(WriteIfSet))
}

func TestWriteIdempotent(t *testing.T) {
	s := New()
	require.NoError(t, s.ReadStyleString("fill:rgb(0,128,0);stroke-dasharray:4 2;mix-blend-mode:multiply;paint-order:stroke fill"))
	out := s.Write(WriteIfSet)
	s2 := New()
	require.NoError(t, s2.ReadStyleString(out))
	assert.Equal(t, out, s2.Write(WriteIfSet))
	assert.Equal(t, "mix-blend-mode:multiply;fill:#008000;paint-order:stroke fill;stroke-dasharray:4,2", out)
}

func TestPrecedence(t *testing.T) {
	s := New()
	s.ReadFromAttribute(attr.Fill, ptr("red"))
	assert.Equal(t, SourceAttribute, s.SourceOf(attr.Fill))
	require.NoError(t, s.ReadStyleString("fill:blue"))
	assert.Equal(t, "#0000ff", s.Fill.Value.String())

	// a presentation attribute does not override the style attribute
	s.ReadFromAttribute(attr.Fill, ptr("green"))
	assert.Equal(t, "#0000ff", s.Fill.Value.String())
	// and removing it does not clear the style value
	s.ReadFromAttribute(attr.Fill, nil)
	assert.True(t, s.IsSet(attr.Fill))

	s.ReadFromAttribute(attr.Stroke, ptr("red"))
	s.ReadFromAttribute(attr.Stroke, nil)
	assert.False(t, s.IsSet(attr.Stroke))
	assert.Equal(t, PaintNone, s.Stroke.Value.Kind)

	// important wins over a later style value
	s2 := New()
	s2.ReadDeclarations(mustDecls(t, "fill:red !important"), SourceStylesheet)
	require.NoError(t, s2.ReadStyleString("fill:blue"))
	assert.Equal(t, "#ff0000", s2.Fill.Value.String())
}

func TestInvalidValue(t *testing.T) {
	s := New()
	s.ReadFromAttribute(attr.Opacity, ptr("0.3"))
	s.ReadFromAttribute(attr.Opacity, ptr("bogus"))
	assert.False(t, s.IsSet(attr.Opacity))
	assert.Equal(t, float32(1), s.Opacity.Value)

	s.ReadFromAttribute(attr.StrokeLineCap, ptr("pointy"))
	assert.Equal(t, CapButt, s.StrokeLineCap.Value)
	s.ReadFromAttribute(attr.StrokeWidth, ptr("3furlongs"))
	assert.Equal(t, Length{Value: 1}, s.StrokeWidth.Value)
	assert.False(t, s.ReadFromAttribute(attr.X, ptr("1")))
}

func TestCascade(t *testing.T) {
	parent := New()
	require.NoError(t, parent.ReadStyleString("fill:red;opacity:0.5;clip-path:url(#c1);stroke-width:3"))
	parent.Cascade(nil)

	child := New()
	require.NoError(t, child.ReadStyleString("stroke:blue;mask:inherit"))
	child.ReadFromAttribute(attr.Opacity, ptr("inherit"))
	child.Cascade(parent)
	assert.Equal(t, "#ff0000", child.Fill.Value.String())
	assert.Equal(t, Length{Value: 3}, child.StrokeWidth.Value)
	assert.Equal(t, float32(0.5), child.Opacity.Value)
	// clip-path is not inherited
	assert.Equal(t, URLRef(""), child.ClipPath.Value)
	assert.False(t, child.IsSet(attr.Fill))
	assert.Equal(t, "mask:inherit;stroke:#0000ff", child.Write(WriteStyleOnly))

	// the parent changes: the child follows
	require.NoError(t, parent.ReadStyleString("fill:green"))
	child.Cascade(parent)
	assert.Equal(t, "#008000", child.Fill.Value.String())
}

func TestCopyFrom(t *testing.T) {
	s := New()
	require.NoError(t, s.ReadStyleString("stroke-dasharray:1,2;fill:red;x-custom:1"))
	cp := s.Clone()
	assert.Equal(t, s.Write(WriteIfSet), cp.Write(WriteIfSet))
	cp.StrokeDashArray.Value[0] = 9
	assert.Equal(t, float32(1), s.StrokeDashArray.Value[0])
	cp.Unknown.Set("x-custom", "2")
	assert.Equal(t, "1", s.Unknown.At("x-custom"))
}

func TestWriteAlways(t *testing.T) {
	s := New()
	out := s.Write(WriteAlways)
	assert.Contains(t, out, "opacity:1;")
	assert.Contains(t, out, "fill:#000000;")
	assert.Contains(t, out, "stroke:none;")
}

func TestParsePaint(t *testing.T) {
	p, err := ParsePaint("url(#g) #00ff00")
	require.NoError(t, err)
	assert.True(t, p.IsPaintServer())
	assert.True(t, p.Fallback)
	assert.Equal(t, "url(#g) #00ff00", p.String())

	p, err = ParsePaint("currentcolor")
	require.NoError(t, err)
	assert.Equal(t, PaintCurrentColor, p.Kind)

	_, err = ParsePaint("url()")
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = ParseURLRef("url(#a) junk")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLength(t *testing.T) {
	l, err := ParseLength("2.5mm")
	require.NoError(t, err)
	assert.Equal(t, "2.5mm", l.String())
	assert.InDelta(t, 9.4488, l.Px(12, 100), 1e-3)
	l, err = ParseLength("50%")
	require.NoError(t, err)
	assert.Equal(t, float32(40), l.Px(12, 80))
	_, err = ParseLength("px")
	assert.Error(t, err)
	_, err = ParseLength("1e999")
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = parseNumber("-1e40")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSheet(t *testing.T) {
	sh, err := ParseSheet(`
@media print { rect { fill: black } }
rect { fill: red }
.blue, #special { stroke: blue }
circle.big { stroke-width: 5 }
`)
	require.NoError(t, err)
	require.Len(t, sh.Rules, 4)

	s := New()
	sh.Apply(s, "rect", "r1", "")
	assert.Equal(t, "#ff0000", s.Fill.Value.String())
	assert.False(t, s.IsSet(attr.Stroke))

	s = New()
	sh.Apply(s, "circle", "special", "big other")
	assert.Equal(t, "#0000ff", s.Stroke.Value.String())
	assert.Equal(t, Length{Value: 5}, s.StrokeWidth.Value)
	assert.Equal(t, SourceStylesheet, s.SourceOf(attr.StrokeWidth))
	assert.False(t, s.IsSet(attr.Fill))
}
