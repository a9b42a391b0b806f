// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

// Package ppath provides SVG path data: parsing of the d attribute
// into absolute commands, canonical formatting, affine transforms,
// and exact bounding boxes.
package ppath

import (
	"slices"

	"cogentcore.org/canvas/math32"
)

// Path is a collection of MoveTo, LineTo, QuadTo, CubeTo and Close
// commands, each followed by the float32 coordinate data for it.
// To support bidirectional processing, the command verb is also added
// to the end of the coordinate data as well.
// The last two coordinate values are the end point position of the pen after
// the action (x,y). QuadTo defines one control point (x,y) in between and
// CubeTo defines two control points. Elliptical arcs are converted to
// cubic Béziers when they are added, so all stored coordinates are
// absolute and transform with an affine matrix.
type Path []float32

// New returns a new empty path.
func New() *Path {
	return &Path{}
}

// Commands
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	QuadTo float32 = 2
	CubeTo float32 = 3
	Close  float32 = 4
)

var cmdLens = [5]int{4, 4, 6, 8, 4}

// CmdLen returns the overall length of the command, including
// the command op itself.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// Reset clears the path but retains the same memory.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Empty returns true if p is an empty path or consists of only MoveTos and Closes.
func (p Path) Empty() bool {
	return len(p) <= CmdLen(MoveTo)
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p Path) Equals(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := 0; i < len(p); i++ {
		if !Equal(p[i], q[i]) {
			return false
		}
	}
	return true
}

// Closed returns true if the last subpath of p is a closed path.
func (p Path) Closed() bool {
	return 0 < len(p) && p[len(p)-1] == Close
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Len returns the number of commands in the path.
func (p Path) Len() int {
	n := 0
	for i := 0; i < len(p); {
		i += CmdLen(p[i])
		n++
	}
	return n
}

// Append appends path q to p and returns the extended path p.
func (p Path) Append(qs ...Path) Path {
	if p.Empty() {
		p = Path{}
	}
	for _, q := range qs {
		if !q.Empty() {
			p = append(p, q...)
		}
	}
	return p
}

// Pos returns the current position of the path,
// which is the end point of the last command.
func (p Path) Pos() math32.Vector2 {
	if 0 < len(p) {
		return math32.Vec2(p[len(p)-3], p[len(p)-2])
	}
	return math32.Vector2{}
}

// StartPos returns the start point of the current subpath,
// i.e. it returns the position of the last MoveTo command.
func (p Path) StartPos() math32.Vector2 {
	for i := len(p); 0 < i; {
		cmd := p[i-1]
		if cmd == MoveTo {
			return math32.Vec2(p[i-3], p[i-2])
		}
		i -= CmdLen(cmd)
	}
	return math32.Vector2{}
}

// Points returns the end point of every command except Close, which
// are the nodes a user edits. Control points are not included.
func (p Path) Points() []math32.Vector2 {
	var pts []math32.Vector2
	for i := 0; i < len(p); {
		cmd := p[i]
		i += CmdLen(cmd)
		if cmd != Close {
			pts = append(pts, math32.Vec2(p[i-3], p[i-2]))
		}
	}
	return pts
}

// Subpaths returns the number of MoveTo commands, which is the
// number of subpaths in p.
func (p Path) Subpaths() int {
	n := 0
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		if p[i] == MoveTo {
			n++
		}
	}
	return n
}

// MoveTo moves the path to (x,y) without connecting the path.
// It starts a new independent subpath. Consecutive MoveTos are
// collapsed into the last one.
func (p *Path) MoveTo(x, y float32) {
	if 0 < len(*p) && (*p)[len(*p)-1] == MoveTo {
		(*p)[len(*p)-3] = x
		(*p)[len(*p)-2] = y
		return
	}
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// ensureStart makes sure a drawing command starts from a MoveTo,
// re-opening the subpath at its start after a Close.
func (p *Path) ensureStart() {
	if len(*p) == 0 {
		p.MoveTo(0.0, 0.0)
	} else if (*p)[len(*p)-1] == Close {
		p.MoveTo((*p)[len(*p)-3], (*p)[len(*p)-2])
	}
}

// LineTo adds a linear path to (x,y).
func (p *Path) LineTo(x, y float32) {
	p.ensureStart()
	*p = append(*p, LineTo, x, y, LineTo)
}

// QuadTo adds a quadratic Bézier path with control point (cpx,cpy) and end point (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float32) {
	p.ensureStart()
	*p = append(*p, QuadTo, cpx, cpy, x, y, QuadTo)
}

// CubeTo adds a cubic Bézier path with control points
// (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float32) {
	p.ensureStart()
	*p = append(*p, CubeTo, cpx1, cpy1, cpx2, cpy2, x, y, CubeTo)
}

// ArcTo adds an arc with radii rx and ry, with rot the counter clockwise
// rotation with respect to the coordinate system in radians, large and sweep booleans
// (see https://developer.mozilla.org/en-US/docs/Web/SVG/Tutorial/Paths#Arcs),
// and (x,y) the end position of the pen. The arc is stored as cubic Béziers.
func (p *Path) ArcTo(rx, ry, rot float32, large, sweep bool, x, y float32) {
	start := p.Pos()
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) {
		return
	}
	if Equal(rx, 0.0) || math32.IsInf(rx, 0) || Equal(ry, 0.0) || math32.IsInf(ry, 0) {
		p.LineTo(end.X, end.Y)
		return
	}
	p.ensureStart()
	for _, b := range ellipseToCubicBeziers(start, math32.Abs(rx), math32.Abs(ry), rot, large, sweep, end) {
		*p = append(*p, CubeTo, b[1].X, b[1].Y, b[2].X, b[2].Y, b[3].X, b[3].Y, CubeTo)
	}
}

// ArcToDeg is a version of [Path.ArcTo] with the angle in degrees instead of radians.
func (p *Path) ArcToDeg(rx, ry, rot float32, large, sweep bool, x, y float32) {
	p.ArcTo(rx, ry, math32.DegToRad(rot), large, sweep, x, y)
}

// Close closes a (sub)path with a LineTo to the start of the path
// (the most recent MoveTo command). It also signals the path closes
// as opposed to being just a LineTo command.
func (p *Path) Close() {
	if len(*p) == 0 || (*p)[len(*p)-1] == Close {
		// already closed or empty
		return
	} else if (*p)[len(*p)-1] == MoveTo {
		// remove MoveTo + Close
		*p = (*p)[:len(*p)-CmdLen(MoveTo)]
		return
	}
	end := p.StartPos()
	*p = append(*p, Close, end.X, end.Y, Close)
}
