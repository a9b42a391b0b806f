// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpe

import (
	"testing"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/ppath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func assertPoints(t *testing.T, want []math32.Vector2, p ppath.Path) {
	t.Helper()
	got := p.Points()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-4, "point %d x", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-4, "point %d y", i)
	}
}

func TestRegistry(t *testing.T) {
	for k := Kind(0); k < KindsN; k++ {
		assert.Equal(t, k, KindFromKey(k.Key()))
	}
	assert.Equal(t, Invalid, KindFromKey("no_such_effect"))
	assert.Equal(t, Invalid, KindFromKey(""))
	assert.Equal(t, "INVALID", Kind(99).Key())
	assert.Equal(t, []string{"bounding_box", "circle_with_radius", "mirror_symmetry", "rotate_copies", "transform_2pts"}, Keys())
	assert.Equal(t, "Mirror symmetry", MirrorSymmetry.Label())
}

func TestNew(t *testing.T) {
	assert.Nil(t, New(Invalid))
	assert.Nil(t, New(KindsN))
	for k := Kind(1); k < KindsN; k++ {
		e := New(k)
		require.NotNil(t, e, k.Key())
		assert.Equal(t, k, e.Kind())
	}
}

func TestParams(t *testing.T) {
	e := New(RotateCopies)
	assert.Equal(t, []Param{{"num_copies", "6"}, {"rotation_angle", "60"}, {"starting_angle", "0"}, {"origin", ""}}, e.Params())
	assert.True(t, e.ReadParam("num_copies", ptr("3")))
	assert.True(t, e.ReadParam("origin", ptr("1.5, 2")))
	assert.Equal(t, []Param{{"num_copies", "3"}, {"rotation_angle", "60"}, {"starting_angle", "0"}, {"origin", "1.5,2"}}, e.Params())

	// malformed and removed values reset to defaults
	assert.True(t, e.ReadParam("num_copies", ptr("many")))
	assert.True(t, e.ReadParam("origin", nil))
	assert.True(t, e.ReadParam("rotation_angle", ptr("1 2")))
	assert.Equal(t, "6", e.Params()[0].Value)
	assert.Equal(t, "60", e.Params()[1].Value)
	assert.Equal(t, "", e.Params()[3].Value)
	assert.True(t, e.ReadParam("num_copies", ptr("0")))
	assert.Equal(t, "6", e.Params()[0].Value)

	assert.False(t, e.ReadParam("no_such_param", ptr("1")))
}

func TestBoundingBox(t *testing.T) {
	e := New(BoundingBox)
	out := e.DoEffect(ppath.MustParseSVGPath("M 0,0 L 10,5 L 3,8"))
	assert.Equal(t, math32.B2(0, 0, 10, 8), out.Bounds())
	assert.True(t, out.Closed())
	assert.True(t, e.DoEffect(ppath.Path{}).Empty())
}

func TestCircleWithRadius(t *testing.T) {
	e := New(CircleWithRadius)
	out := e.DoEffect(ppath.MustParseSVGPath("M 5,5 L 8,9"))
	b := out.Bounds()
	assert.InDelta(t, 0, b.Min.X, 1e-4)
	assert.InDelta(t, 10, b.Max.Y, 1e-4)
	assert.True(t, e.DoEffect(ppath.MustParseSVGPath("M 5,5")).Empty())
}

func TestMirrorSymmetry(t *testing.T) {
	e := New(MirrorSymmetry)
	in := ppath.MustParseSVGPath("M 0,0 L 10,0 L 10,10")
	out := e.DoEffect(in)
	assert.Equal(t, 2, out.Subpaths())
	assertPoints(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 10}}, out)
	assertPoints(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, in)

	e.ReadParam("mode", ptr("free"))
	e.ReadParam("start_point", ptr("0,0"))
	e.ReadParam("end_point", ptr("1,1"))
	e.ReadParam("discard_orig_path", ptr("true"))
	assertPoints(t, []math32.Vector2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}, e.DoEffect(in))

	// free mode without points leaves the path unchanged
	e.ReadParam("end_point", nil)
	assertPoints(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, e.DoEffect(in))
}

func TestRotateCopies(t *testing.T) {
	e := New(RotateCopies)
	e.ReadParam("num_copies", ptr("4"))
	e.ReadParam("rotation_angle", ptr("90"))
	e.ReadParam("origin", ptr("0,0"))
	out := e.DoEffect(ppath.MustParseSVGPath("M 1,0 L 2,0"))
	assert.Equal(t, 4, out.Subpaths())
	assertPoints(t, []math32.Vector2{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: -1, Y: 0}, {X: -2, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -2}}, out)
}

func TestTransform2Pts(t *testing.T) {
	e := New(Transform2Pts)
	in := ppath.MustParseSVGPath("M 0,0 L 1,0")
	assertPoints(t, []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}}, e.DoEffect(in))
	e.ReadParam("start", ptr("10,10"))
	e.ReadParam("end", ptr("10,12"))
	assertPoints(t, []math32.Vector2{{X: 10, Y: 10}, {X: 10, Y: 12}}, e.DoEffect(in))
}
