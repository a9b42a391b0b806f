// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(tol))
	assert.InDelta(t, vt.Y, va.Y, float64(tol))
}

const standardTol = float32(1.0e-6)

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy))
	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))

	assert.InDelta(t, DegToRad(45), Rotate2D(DegToRad(45)).ExtractRot(), float64(standardTol))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	tolAssertEqualVector(t, standardTol, Vec2(1, 3), Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2)).MulVector2AsPoint(vx))

	m := Matrix2{2, 1, 1, 3, 5, 7}
	p := Vec2(3, -4)
	tolAssertEqualVector(t, 1e-5, p, m.Inverse().MulVector2AsPoint(m.MulVector2AsPoint(p)))
	assert.Equal(t, Identity2(), Matrix2{}.Inverse())
}

func TestMatrix2SetString(t *testing.T) {
	tests := []struct {
		str     string
		wantErr bool
		want    Matrix2
	}{
		{str: "none", want: Identity2()},
		{str: "", want: Identity2()},
		{str: "matrix(1, 2, 3, 4, 5, 6)", want: Matrix2{1, 2, 3, 4, 5, 6}},
		{str: "translate(1, 2)", want: Matrix2{XX: 1, YX: 0, XY: 0, YY: 1, X0: 1, Y0: 2}},
		{str: "translate(5)", want: Translate2D(5, 0)},
		{str: "scale(2)", want: Scale2D(2, 2)},
		{str: "translate(10,20) scale(2,3)", want: Matrix2{2, 0, 0, 3, 10, 20}},
		{str: "translate(10-5)", want: Translate2D(10, -5)},
		{str: "invalid(1, 2)", wantErr: true, want: Identity2()},
		{str: "translate(1, 2, 3)", wantErr: true, want: Identity2()},
		{str: "translate(1", wantErr: true, want: Identity2()},
	}
	for _, test := range tests {
		var m Matrix2
		err := m.SetString(test.str)
		if test.wantErr {
			assert.Error(t, err, test.str)
		} else {
			assert.NoError(t, err, test.str)
		}
		assert.Equal(t, test.want, m, test.str)
	}
}

func TestMatrix2RotateAbout(t *testing.T) {
	m, err := ParseTransform("rotate(90 1 1)")
	assert.NoError(t, err)
	tolAssertEqualVector(t, 1e-6, Vec2(1, 1), m.MulVector2AsPoint(Vec2(1, 1)))
	tolAssertEqualVector(t, 1e-6, Vec2(1, 2), m.MulVector2AsPoint(Vec2(2, 1)))
}

func TestMatrix2String(t *testing.T) {
	tests := []Matrix2{
		Identity2(),
		Translate2D(3.5, -2),
		Scale2D(2, 2),
		Scale2D(2, 0.5),
		Rotate2D(DegToRad(30)),
		{1.1, 0.2, -0.3, 0.9, 10.25, -4},
	}
	for _, m := range tests {
		s := m.String()
		back, err := ParseTransform(s)
		assert.NoError(t, err, s)
		assert.Equal(t, m, back, s)
		assert.Equal(t, s, back.String())
	}
	assert.Equal(t, "translate(3.5,-2)", Translate2D(3.5, -2).String())
	assert.Equal(t, "scale(2)", Scale2D(2, 2).String())
}

func TestReadNumbers(t *testing.T) {
	nums, err := ReadNumbers("3.5 2,1e2  -4")
	assert.NoError(t, err)
	assert.Equal(t, []float32{3.5, 2, 100, -4}, nums)

	nums, err = ReadNumbers("1 x 2")
	assert.Error(t, err)
	assert.Equal(t, []float32{1}, nums)

	nums, err = ReadNumbers("1 1e999")
	assert.Error(t, err)
	assert.Equal(t, []float32{1}, nums)

	pts, err := ReadPoints("0,0 10,0 10,10")
	assert.NoError(t, err)
	assert.Equal(t, []Vector2{{0, 0}, {10, 0}, {10, 10}}, pts)
	_, err = ReadPoints("1 2 3")
	assert.Error(t, err)
}

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(-1, 5))
	assert.Equal(t, B2(-1, 2, 1, 5), b)
	assert.Equal(t, b, B2Empty().Union(b))
	assert.Equal(t, B2(0, 4, 2, 7), b.MulMatrix2(Translate2D(1, 2)))
	assert.True(t, B2Empty().MulMatrix2(Scale2D(2, 2)).IsEmpty())
}
