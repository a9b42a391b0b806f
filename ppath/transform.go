// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/canvas/math32"
)

// Transform returns a copy of the path transformed by the given matrix.
// Since arcs are stored as cubic Béziers, every coordinate is a point
// and the result is exact for any affine matrix.
func (p Path) Transform(m math32.Matrix2) Path {
	q := p.Clone()
	if m.IsIdentity() {
		return q
	}
	for i := 0; i < len(q); {
		cmd := q[i]
		n := CmdLen(cmd)
		for j := i + 1; j < i+n-1; j += 2 {
			v := m.MulVector2AsPoint(math32.Vec2(q[j], q[j+1]))
			q[j] = v.X
			q[j+1] = v.Y
		}
		i += n
	}
	return q
}

// Translate returns a copy of the path translated by (x,y).
func (p Path) Translate(x, y float32) Path {
	return p.Transform(math32.Translate2D(x, y))
}

// Scale returns a copy of the path scaled by (x,y).
func (p Path) Scale(x, y float32) Path {
	return p.Transform(math32.Scale2D(x, y))
}

// Reverse returns a copy of the path running in the opposite direction.
// Each subpath is reversed in place and closed subpaths stay closed.
func (p Path) Reverse() Path {
	var r Path
	for _, sp := range p.Split() {
		closed := sp.Closed()
		type seg struct {
			cmd   float32
			start math32.Vector2
			vals  []float32
		}
		var segs []seg
		s := sp.Scanner()
		for s.Scan() {
			if s.Cmd() == MoveTo {
				continue
			}
			segs = append(segs, seg{s.Cmd(), s.Start(), s.Values()})
		}
		if len(segs) == 0 {
			continue
		}
		end := sp.Pos()
		r.MoveTo(end.X, end.Y)
		for k := len(segs) - 1; k >= 0; k-- {
			sg := segs[k]
			if closed && k == 0 && sg.cmd == LineTo {
				break // Close draws it
			}
			switch sg.cmd {
			case LineTo, Close:
				r.LineTo(sg.start.X, sg.start.Y)
			case QuadTo:
				r.QuadTo(sg.vals[0], sg.vals[1], sg.start.X, sg.start.Y)
			case CubeTo:
				r.CubeTo(sg.vals[2], sg.vals[3], sg.vals[0], sg.vals[1], sg.start.X, sg.start.Y)
			}
		}
		if closed {
			r.Close()
		}
	}
	return r
}

// Split splits the path into its independent subpaths.
func (p Path) Split() []Path {
	var ps []Path
	var cur Path
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		if cmd == MoveTo && len(cur) > 0 {
			ps = append(ps, cur)
			cur = nil
		}
		cur = append(cur, p[i:i+n]...)
		i += n
	}
	if len(cur) > 0 {
		ps = append(ps, cur)
	}
	return ps
}
