// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/canvas/math32"
)

// Bounds returns the exact bounding box of the path, including the
// extrema of Bézier curves but not their control points. A path
// without any drawing command has an empty box.
func (p Path) Bounds() math32.Box2 {
	bb := math32.B2Empty()
	if p.Empty() {
		return bb
	}
	s := p.Scanner()
	for s.Scan() {
		start, end := s.Start(), s.End()
		switch s.Cmd() {
		case MoveTo:
			continue
		case LineTo, Close:
			bb.ExpandByPoint(start)
			bb.ExpandByPoint(end)
		case QuadTo:
			cp := s.CP1()
			bb.ExpandByPoint(start)
			bb.ExpandByPoint(end)
			for _, t := range quadExtrema(start, cp, end) {
				bb.ExpandByPoint(quadPos(start, cp, end, t))
			}
		case CubeTo:
			cp1, cp2 := s.CP1(), s.CP2()
			bb.ExpandByPoint(start)
			bb.ExpandByPoint(end)
			for _, t := range cubicExtrema(start, cp1, cp2, end) {
				bb.ExpandByPoint(cubicPos(start, cp1, cp2, end, t))
			}
		}
	}
	return bb
}

// FastBounds returns the bounding box of all points of the path,
// including control points, which contains [Path.Bounds].
func (p Path) FastBounds() math32.Box2 {
	bb := math32.B2Empty()
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		for j := i + 1; j < i+n-1; j += 2 {
			bb.ExpandByPoint(math32.Vec2(p[j], p[j+1]))
		}
		i += n
	}
	return bb
}

func quadPos(p0, p1, p2 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	return p0.MulScalar(mt * mt).Add(p1.MulScalar(2 * mt * t)).Add(p2.MulScalar(t * t))
}

func cubicPos(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	return p0.MulScalar(mt * mt * mt).Add(p1.MulScalar(3 * mt * mt * t)).Add(p2.MulScalar(3 * mt * t * t)).Add(p3.MulScalar(t * t * t))
}

// quadExtrema returns the curve parameters in (0,1) where the
// quadratic Bézier has a horizontal or vertical tangent.
func quadExtrema(p0, p1, p2 math32.Vector2) []float32 {
	var ts []float32
	axis := func(a, b, c float32) {
		den := a - 2*b + c
		if den == 0 {
			return
		}
		if t := (a - b) / den; 0 < t && t < 1 {
			ts = append(ts, t)
		}
	}
	axis(p0.X, p1.X, p2.X)
	axis(p0.Y, p1.Y, p2.Y)
	return ts
}

// cubicExtrema returns the curve parameters in (0,1) where the
// cubic Bézier has a horizontal or vertical tangent.
func cubicExtrema(p0, p1, p2, p3 math32.Vector2) []float32 {
	var ts []float32
	axis := func(a0, a1, a2, a3 float32) {
		// derivative is 3(a t^2 + b t + c)
		a := -a0 + 3*a1 - 3*a2 + a3
		b := 2 * (a0 - 2*a1 + a2)
		c := a1 - a0
		for _, t := range solveQuadratic(a, b, c) {
			if 0 < t && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	axis(p0.X, p1.X, p2.X, p3.X)
	axis(p0.Y, p1.Y, p2.Y, p3.Y)
	return ts
}

// solveQuadratic returns the real roots of a x^2 + b x + c = 0.
func solveQuadratic(a, b, c float32) []float32 {
	if Equal(a, 0) {
		if b == 0 {
			return nil
		}
		return []float32{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float32{-b / (2 * a)}
	}
	sq := math32.Sqrt(disc)
	return []float32{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
