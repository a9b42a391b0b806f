// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"fmt"
	"strings"

	"cogentcore.org/canvas/math32"
	"github.com/tdewolff/parse/v2/strconv"
)

// pathParser holds the state of parsing one d attribute.
type pathParser struct {
	b   []byte
	pos int
}

func isPathSpace(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (pp *pathParser) skipSpace() {
	for pp.pos < len(pp.b) && isPathSpace(pp.b[pp.pos]) {
		pp.pos++
	}
}

func (pp *pathParser) number() (float32, error) {
	pp.skipSpace()
	f, n := strconv.ParseFloat(pp.b[pp.pos:])
	if n == 0 {
		return 0, fmt.Errorf("expected number at %d", pp.pos)
	}
	if !math32.IsFinite(float32(f)) {
		return 0, fmt.Errorf("number out of range at %d", pp.pos)
	}
	pp.pos += n
	return float32(f), nil
}

// flag reads an arc flag, which may be packed without separators.
func (pp *pathParser) flag() (bool, error) {
	pp.skipSpace()
	if pp.pos < len(pp.b) {
		switch pp.b[pp.pos] {
		case '0':
			pp.pos++
			return false, nil
		case '1':
			pp.pos++
			return true, nil
		}
	}
	return false, fmt.Errorf("expected arc flag at %d", pp.pos)
}

func (pp *pathParser) numbers(n int) ([]float32, error) {
	fs := make([]float32, n)
	for i := range fs {
		f, err := pp.number()
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}
	return fs, nil
}

// ParseSVGPath parses an SVG path data string (the d attribute) into
// a [Path]. Relative commands are made absolute, H and V become LineTo,
// S and T become CubeTo and QuadTo with the reflected control point,
// and A is converted to cubic Béziers. On error the path parsed so far
// is returned together with the error.
func ParseSVGPath(s string) (Path, error) {
	pp := &pathParser{b: []byte(s)}
	p := Path{}
	var cmd byte
	var cur, start, lastCP math32.Vector2
	var prev byte
	for {
		pp.skipSpace()
		if pp.pos >= len(pp.b) {
			break
		}
		c := pp.b[pp.pos]
		if strings.IndexByte("MmLlHhVvCcSsQqTtAaZz", c) >= 0 {
			cmd = c
			pp.pos++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return p, fmt.Errorf("ppath.ParseSVGPath: unexpected %q at %d", c, pp.pos)
		}
		rel := 'a' <= cmd && cmd <= 'z'
		off := math32.Vector2{}
		if rel {
			off = cur
		}
		var err error
		switch cmd {
		case 'M', 'm':
			var f []float32
			if f, err = pp.numbers(2); err == nil {
				cur = math32.Vec2(f[0], f[1]).Add(off)
				start = cur
				p.MoveTo(cur.X, cur.Y)
				// subsequent pairs are implicit LineTos
				if cmd == 'M' {
					cmd = 'L'
				} else {
					cmd = 'l'
				}
			}
		case 'L', 'l':
			var f []float32
			if f, err = pp.numbers(2); err == nil {
				cur = math32.Vec2(f[0], f[1]).Add(off)
				p.LineTo(cur.X, cur.Y)
			}
		case 'H', 'h':
			var x float32
			if x, err = pp.number(); err == nil {
				cur.X = x + off.X
				p.LineTo(cur.X, cur.Y)
			}
		case 'V', 'v':
			var y float32
			if y, err = pp.number(); err == nil {
				cur.Y = y + off.Y
				p.LineTo(cur.X, cur.Y)
			}
		case 'C', 'c':
			var f []float32
			if f, err = pp.numbers(6); err == nil {
				cp1 := math32.Vec2(f[0], f[1]).Add(off)
				cp2 := math32.Vec2(f[2], f[3]).Add(off)
				cur = math32.Vec2(f[4], f[5]).Add(off)
				p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, cur.X, cur.Y)
				lastCP = cp2
			}
		case 'S', 's':
			var f []float32
			if f, err = pp.numbers(4); err == nil {
				cp1 := cur
				if strings.IndexByte("CcSs", prev) >= 0 {
					cp1 = cur.MulScalar(2).Sub(lastCP)
				}
				cp2 := math32.Vec2(f[0], f[1]).Add(off)
				cur = math32.Vec2(f[2], f[3]).Add(off)
				p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, cur.X, cur.Y)
				lastCP = cp2
			}
		case 'Q', 'q':
			var f []float32
			if f, err = pp.numbers(4); err == nil {
				cp := math32.Vec2(f[0], f[1]).Add(off)
				cur = math32.Vec2(f[2], f[3]).Add(off)
				p.QuadTo(cp.X, cp.Y, cur.X, cur.Y)
				lastCP = cp
			}
		case 'T', 't':
			var f []float32
			if f, err = pp.numbers(2); err == nil {
				cp := cur
				if strings.IndexByte("QqTt", prev) >= 0 {
					cp = cur.MulScalar(2).Sub(lastCP)
				}
				cur = math32.Vec2(f[0], f[1]).Add(off)
				p.QuadTo(cp.X, cp.Y, cur.X, cur.Y)
				lastCP = cp
			}
		case 'A', 'a':
			var f []float32
			var large, sweep bool
			if f, err = pp.numbers(3); err != nil {
				break
			}
			if large, err = pp.flag(); err != nil {
				break
			}
			if sweep, err = pp.flag(); err != nil {
				break
			}
			var e []float32
			if e, err = pp.numbers(2); err == nil {
				cur = math32.Vec2(e[0], e[1]).Add(off)
				p.ArcToDeg(f[0], f[1], f[2], large, sweep, cur.X, cur.Y)
			}
		case 'Z', 'z':
			p.Close()
			cur = start
		}
		if err != nil {
			return p, fmt.Errorf("ppath.ParseSVGPath: %q: %w", s, err)
		}
		prev = cmd
	}
	return p, nil
}

// MustParseSVGPath parses an SVG path data string and panics if it fails.
func MustParseSVGPath(s string) Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the path in canonical SVG path data form, with
// absolute commands separated by spaces and coordinates as "x,y",
// such as "M 0,0 L 10,0 C 10,5 5,10 0,10 Z". Parsing the result
// gives back the same path.
func (p Path) String() string {
	var sb strings.Builder
	for i := 0; i < len(p); {
		cmd := p[i]
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch cmd {
		case MoveTo:
			sb.WriteString("M " + math32.Vec2(p[i+1], p[i+2]).String())
		case LineTo:
			sb.WriteString("L " + math32.Vec2(p[i+1], p[i+2]).String())
		case QuadTo:
			sb.WriteString("Q " + math32.Vec2(p[i+1], p[i+2]).String() + " " + math32.Vec2(p[i+3], p[i+4]).String())
		case CubeTo:
			sb.WriteString("C " + math32.Vec2(p[i+1], p[i+2]).String() + " " + math32.Vec2(p[i+3], p[i+4]).String() + " " + math32.Vec2(p[i+5], p[i+6]).String())
		case Close:
			sb.WriteString("Z")
		}
		i += CmdLen(cmd)
	}
	return sb.String()
}
