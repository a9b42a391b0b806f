// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"math"

	"cogentcore.org/canvas/math32"
)

var (
	// Epsilon is the smallest number below which we assume the value to be zero.
	// This is to avoid numerical floating point issues.
	Epsilon = float32(1e-5)

	// EllipseKappa is the cubic Bézier control point distance, relative
	// to the radius, that approximates a quarter ellipse.
	EllipseKappa = float32(4 * (math.Sqrt2 - 1) / 3)
)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	return math32.Abs(a-b) <= Epsilon
}

// EqualPoint returns if points are equal within tolerance Epsilon.
func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// AngleBetween returns the signed angle in radians from p to q,
// in the range (-Pi, Pi].
func AngleBetween(p, q math32.Vector2) float32 {
	return math32.Atan2(p.Cross(q), p.Dot(q))
}

// ellipsePos returns the point at angle theta on the ellipse with
// radii rx, ry rotated by phi about center c.
func ellipsePos(rx, ry, phi float32, c math32.Vector2, theta float32) math32.Vector2 {
	sinphi, cosphi := math32.Sincos(phi)
	sintheta, costheta := math32.Sincos(theta)
	x := rx * costheta
	y := ry * sintheta
	return math32.Vec2(c.X+cosphi*x-sinphi*y, c.Y+sinphi*x+cosphi*y)
}

// ellipseDeriv returns the derivative with respect to theta of [ellipsePos].
func ellipseDeriv(rx, ry, phi float32, theta float32) math32.Vector2 {
	sinphi, cosphi := math32.Sincos(phi)
	sintheta, costheta := math32.Sincos(theta)
	x := -rx * sintheta
	y := ry * costheta
	return math32.Vec2(cosphi*x-sinphi*y, sinphi*x+cosphi*y)
}

// ellipseToCenter converts the SVG endpoint parameterization of an arc
// into its center parameterization: center, corrected radii, start
// angle and sweep angle (negative for a clockwise sweep).
func ellipseToCenter(start math32.Vector2, rx, ry, phi float32, large, sweep bool, end math32.Vector2) (c math32.Vector2, nrx, nry, theta, dtheta float32) {
	sinphi, cosphi := math32.Sincos(phi)
	hx := (start.X - end.X) / 2
	hy := (start.Y - end.Y) / 2
	x1 := cosphi*hx + sinphi*hy
	y1 := -sinphi*hx + cosphi*hy

	// scale up radii that are too small to reach the end point
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math32.Sqrt(lambda)
		rx *= s
		ry *= s
	}
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	sq := float32(0)
	if num > 0 && den > 0 {
		sq = math32.Sqrt(num / den)
	}
	if large == sweep {
		sq = -sq
	}
	cx1 := sq * rx * y1 / ry
	cy1 := -sq * ry * x1 / rx
	c = math32.Vec2(cosphi*cx1-sinphi*cy1+(start.X+end.X)/2, sinphi*cx1+cosphi*cy1+(start.Y+end.Y)/2)

	u := math32.Vec2((x1-cx1)/rx, (y1-cy1)/ry)
	v := math32.Vec2((-x1-cx1)/rx, (-y1-cy1)/ry)
	theta = AngleBetween(math32.Vec2(1, 0), u)
	dtheta = AngleBetween(u, v)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math32.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math32.Pi
	}
	return c, rx, ry, theta, dtheta
}

// ellipseToCubicBeziers approximates the elliptical arc by cubic Béziers,
// one per quarter turn or part thereof. Each returned element holds the
// start, the two control points and the end.
func ellipseToCubicBeziers(start math32.Vector2, rx, ry, phi float32, large, sweep bool, end math32.Vector2) [][4]math32.Vector2 {
	c, rx, ry, theta, dtheta := ellipseToCenter(start, rx, ry, phi, large, sweep, end)
	n := int(math.Ceil(float64(math32.Abs(dtheta)/(math32.Pi/2)) - 1e-4))
	n = max(n, 1)
	dt := dtheta / float32(n)
	alpha := 4.0 / 3.0 * math32.Tan(dt/4)

	beziers := make([][4]math32.Vector2, 0, n)
	p0 := start
	for i := 0; i < n; i++ {
		t0 := theta + float32(i)*dt
		t1 := t0 + dt
		p3 := ellipsePos(rx, ry, phi, c, t1)
		if i == n-1 {
			p3 = end
		}
		p1 := p0.Add(ellipseDeriv(rx, ry, phi, t0).MulScalar(alpha))
		p2 := p3.Sub(ellipseDeriv(rx, ry, phi, t1).MulScalar(alpha))
		beziers = append(beziers, [4]math32.Vector2{p0, p1, p2, p3})
		p0 = p3
	}
	return beziers
}
