// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tolEqualVec2(t *testing.T, a, b math32.Vector2, tols ...float64) {
	tol := 1.0e-4
	if len(tols) == 1 {
		tol = tols[0]
	}
	assert.InDelta(t, b.X, a.X, tol)
	assert.InDelta(t, b.Y, a.Y, tol)
}

func tolEqualBox2(t *testing.T, a, b math32.Box2, tols ...float64) {
	tol := 1.0e-4
	if len(tols) == 1 {
		tol = tols[0]
	}
	tolEqualVec2(t, a.Min, b.Min, tol)
	tolEqualVec2(t, a.Max, b.Max, tol)
}

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	assert.True(t, p.Empty())

	p.MoveTo(5, 2)
	assert.True(t, p.Empty())

	p.LineTo(6, 2)
	assert.False(t, p.Empty())
}

func TestPathEquals(t *testing.T) {
	assert.False(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0")))
	assert.False(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 9")))
	assert.True(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 10")))
}

func TestParseSVGPath(t *testing.T) {
	tests := []struct {
		d    string
		want string
	}{
		{"M10 20 L30 40", "M 10,20 L 30,40"},
		{"m10 20 l10 10 20 0", "M 10,20 L 20,30 L 40,30"},
		{"M0,0 H10 V10 h-10 z", "M 0,0 L 10,0 L 10,10 L 0,10 Z"},
		{"M0 0 10 0 10 10", "M 0,0 L 10,0 L 10,10"},
		{"M0 0C1 2 3 4 5 6S9 10 11 12", "M 0,0 C 1,2 3,4 5,6 C 7,8 9,10 11,12"},
		{"M0 0Q5 5 10 0T20 0", "M 0,0 Q 5,5 10,0 Q 15,-5 20,0"},
		{"M0 0S5 5 10 0", "M 0,0 C 0,0 5,5 10,0"},
		{"M1-2-3-4", "M 1,-2 L -3,-4"},
		{"M.5.5L1e1 2E1", "M 0.5,0.5 L 10,20"},
		{"M0 0L10 0Z l0 10", "M 0,0 L 10,0 Z M 0,0 L 0,10"},
		{"", ""},
	}
	for _, tt := range tests {
		p, err := ParseSVGPath(tt.d)
		require.NoError(t, err, tt.d)
		assert.Equal(t, tt.want, p.String(), tt.d)
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	for _, d := range []string{"L", "M0", "10 10", "M0 0 A10 10 0 2 1 5 5", "M0 0 X", "M0 0 L1e999 0"} {
		_, err := ParseSVGPath(d)
		assert.Error(t, err, d)
	}
	// partial result on error
	p, err := ParseSVGPath("M0 0 L10 10 L")
	assert.Error(t, err)
	assert.Equal(t, "M 0,0 L 10,10", p.String())
}

func TestPathStringRoundTrip(t *testing.T) {
	for _, d := range []string{
		"M 0,0 L 10,0 L 10,10 Z",
		"M 1.5,2.25 C 3,4 5,6 7,8 Q 9,10 11,12",
		"M 0,0 L 1,1 Z M 5,5 L 6,6",
	} {
		p := MustParseSVGPath(d)
		assert.Equal(t, d, p.String())
		assert.Equal(t, d, MustParseSVGPath(p.String()).String())
	}
}

func TestArc(t *testing.T) {
	// half circle of radius 5 from (0,0) to (10,0)
	p := MustParseSVGPath("M0 0 A5 5 0 0 1 10 0")
	assert.Equal(t, 3, p.Len())
	tolEqualVec2(t, p.Pos(), math32.Vec2(10, 0))
	bb := p.Bounds()
	tolEqualBox2(t, bb, math32.B2(0, -5, 10, 0), 1e-3)

	// compact flags
	q := MustParseSVGPath("M0 0a5 5 0 0110 0")
	assert.True(t, p.Equals(q))

	// radii too small are scaled up
	r := MustParseSVGPath("M0 0 A1 1 0 0 0 10 0")
	tolEqualBox2(t, r.Bounds(), math32.B2(0, 0, 10, 5), 1e-3)

	// zero radius is a line
	l := MustParseSVGPath("M0 0 A0 5 0 0 1 10 0")
	assert.Equal(t, "M 0,0 L 10,0", l.String())
}

func TestBounds(t *testing.T) {
	p := MustParseSVGPath("M0 0 C0 10 10 10 10 0")
	tolEqualBox2(t, p.Bounds(), math32.B2(0, 0, 10, 7.5))
	tolEqualBox2(t, p.FastBounds(), math32.B2(0, 0, 10, 10))

	q := MustParseSVGPath("M0 0 Q5 10 10 0")
	tolEqualBox2(t, q.Bounds(), math32.B2(0, 0, 10, 5))

	assert.True(t, MustParseSVGPath("M5 5").Bounds().IsEmpty())
	assert.True(t, Path{}.Bounds().IsEmpty())

	c := (&Path{}).Circle(10, 10, 5)
	tolEqualBox2(t, c.Bounds(), math32.B2(5, 5, 15, 15), 1e-3)
}

func TestTransform(t *testing.T) {
	p := MustParseSVGPath("M0 0 L10 0 C10 5 5 10 0 10 Z")
	q := p.Transform(math32.Translate2D(5, 5))
	assert.Equal(t, "M 5,5 L 15,5 C 15,10 10,15 5,15 Z", q.String())
	// original untouched
	assert.Equal(t, "M 0,0 L 10,0 C 10,5 5,10 0,10 Z", p.String())

	s := p.Scale(2, 3)
	tolEqualBox2(t, s.Bounds(), math32.B2(0, 0, 20, 30))
}

func TestPoints(t *testing.T) {
	p := MustParseSVGPath("M0 0 L10 0 Q15 5 10 10 Z")
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, p.Points())
	assert.Equal(t, 1, p.Subpaths())
}

func TestReverse(t *testing.T) {
	p := MustParseSVGPath("M0 0 L10 0 L10 10")
	assert.Equal(t, "M 10,10 L 10,0 L 0,0", p.Reverse().String())

	c := MustParseSVGPath("M0 0 L10 0 L10 10 Z")
	assert.Equal(t, "M 0,0 L 10,10 L 10,0 Z", c.Reverse().String())

	b := MustParseSVGPath("M0 0 C1 2 3 4 5 6")
	assert.Equal(t, "M 5,6 C 3,4 1,2 0,0", b.Reverse().String())
}

func TestShapes(t *testing.T) {
	r := (&Path{}).Rectangle(0, 0, 10, 20)
	assert.Equal(t, "M 0,0 L 10,0 L 10,20 L 0,20 Z", r.String())

	rr := (&Path{}).RoundedRectangle(0, 0, 10, 20, 2, 3)
	tolEqualBox2(t, rr.Bounds(), math32.B2(0, 0, 10, 20))

	pl := (&Path{}).Polygon(math32.Vec2(0, 0), math32.Vec2(4, 0), math32.Vec2(4, 3))
	assert.Equal(t, "M 0,0 L 4,0 L 4,3 Z", pl.String())

	ln := (&Path{}).Line(1, 2, 3, 4)
	assert.Equal(t, "M 1,2 L 3,4", ln.String())
}

func TestAppendSplit(t *testing.T) {
	a := MustParseSVGPath("M0 0 L1 1")
	b := MustParseSVGPath("M5 5 L6 6")
	ab := a.Append(b)
	assert.Equal(t, "M 0,0 L 1,1 M 5,5 L 6,6", ab.String())
	sp := ab.Split()
	assert.Len(t, sp, 2)
	assert.True(t, sp[1].Equals(b))
}
