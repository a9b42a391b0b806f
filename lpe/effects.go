// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpe

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/ppath"
)

// param is one typed parameter of an effect.
type param struct {
	name   string
	reset  func()
	read   func(s string) error
	format func() string
}

// base implements the parameter handling of [Effect].
type base struct {
	kind   Kind
	params []*param
}

func (b *base) Kind() Kind { return b.kind }

func (b *base) ReadParam(name string, value *string) bool {
	i := slices.IndexFunc(b.params, func(p *param) bool { return p.name == name })
	if i < 0 {
		return false
	}
	p := b.params[i]
	if value == nil {
		p.reset()
		return true
	}
	if err := p.read(strings.TrimSpace(*value)); err != nil {
		slog.Debug("lpe: invalid parameter", "effect", b.kind.Key(), "param", name, "value", *value, "err", err)
		p.reset()
	}
	return true
}

func (b *base) Params() []Param {
	ps := make([]Param, len(b.params))
	for i, p := range b.params {
		ps[i] = Param{Name: p.name, Value: p.format()}
	}
	return ps
}

func (b *base) add(p *param) {
	p.reset()
	b.params = append(b.params, p)
}

func boolParam(name string, v *bool, def bool) *param {
	return &param{
		name:  name,
		reset: func() { *v = def },
		read: func(s string) error {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return err
			}
			*v = b
			return nil
		},
		format: func() string { return strconv.FormatBool(*v) },
	}
}

func floatParam(name string, v *float32, def float32) *param {
	return &param{
		name:  name,
		reset: func() { *v = def },
		read: func(s string) error {
			nums, err := math32.ReadNumbers(s)
			if err != nil {
				return err
			}
			if len(nums) != 1 {
				return fmt.Errorf("want one number, got %q", s)
			}
			*v = nums[0]
			return nil
		},
		format: func() string { return math32.FormatFloat(*v) },
	}
}

func intParam(name string, v *int, def, lo int) *param {
	return &param{
		name:  name,
		reset: func() { *v = def },
		read: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			if n < lo {
				return fmt.Errorf("%d is below the minimum %d", n, lo)
			}
			*v = n
			return nil
		},
		format: func() string { return strconv.Itoa(*v) },
	}
}

// pointParam is an optional point, written as "x,y";
// nil is unset and written as "".
func pointParam(name string, v **math32.Vector2) *param {
	return &param{
		name:  name,
		reset: func() { *v = nil },
		read: func(s string) error {
			if s == "" {
				*v = nil
				return nil
			}
			pts, err := math32.ReadPoints(s)
			if err != nil {
				return err
			}
			if len(pts) != 1 {
				return fmt.Errorf("want one point, got %q", s)
			}
			*v = &pts[0]
			return nil
		},
		format: func() string {
			if *v == nil {
				return ""
			}
			return math32.FormatFloat((*v).X) + "," + math32.FormatFloat((*v).Y)
		},
	}
}

func enumParam(name string, v *string, def string, values ...string) *param {
	return &param{
		name:  name,
		reset: func() { *v = def },
		read: func(s string) error {
			if !slices.Contains(values, s) {
				return fmt.Errorf("unknown value %q", s)
			}
			*v = s
			return nil
		},
		format: func() string { return *v },
	}
}

// rotateAbout returns the rotation by the given degrees about c.
func rotateAbout(c math32.Vector2, deg float32) math32.Matrix2 {
	return math32.Translate2D(c.X, c.Y).Mul(math32.Rotate2D(math32.DegToRad(deg))).Mul(math32.Translate2D(-c.X, -c.Y))
}

// boundingBox replaces the path by the rectangle of its bounds.
type boundingBox struct {
	base
	visualBounds bool
}

func newBoundingBox() *boundingBox {
	e := &boundingBox{}
	e.kind = BoundingBox
	e.add(boolParam("visualbounds", &e.visualBounds, false))
	return e
}

func (e *boundingBox) DoEffect(p ppath.Path) ppath.Path {
	if p.Empty() {
		return ppath.Path{}
	}
	b := p.Bounds()
	sz := b.Size()
	out := ppath.Path{}
	out.Rectangle(b.Min.X, b.Min.Y, sz.X, sz.Y)
	return out
}

// circleWithRadius replaces the path by the circle centered on its
// first node and passing through its last node.
type circleWithRadius struct {
	base
}

func (e *circleWithRadius) DoEffect(p ppath.Path) ppath.Path {
	pts := p.Points()
	if len(pts) < 2 {
		return ppath.Path{}
	}
	c := pts[0]
	r := pts[len(pts)-1].Sub(c).Length()
	out := ppath.Path{}
	out.Circle(c.X, c.Y, r)
	return out
}

// mirrorSymmetry adds the reflection of the path about a line: the
// vertical or horizontal line through the center of its bounds, or
// the line through two given points.
type mirrorSymmetry struct {
	base
	mode        string
	discardOrig bool
	start, end  *math32.Vector2
}

func newMirrorSymmetry() *mirrorSymmetry {
	e := &mirrorSymmetry{}
	e.kind = MirrorSymmetry
	e.add(enumParam("mode", &e.mode, "vertical", "vertical", "horizontal", "free"))
	e.add(boolParam("discard_orig_path", &e.discardOrig, false))
	e.add(pointParam("start_point", &e.start))
	e.add(pointParam("end_point", &e.end))
	return e
}

// line returns two points of the mirror line.
func (e *mirrorSymmetry) line(p ppath.Path) (a, b math32.Vector2, ok bool) {
	bb := p.Bounds()
	c := bb.Center()
	switch e.mode {
	case "vertical":
		return math32.Vec2(c.X, bb.Min.Y), math32.Vec2(c.X, bb.Max.Y), true
	case "horizontal":
		return math32.Vec2(bb.Min.X, c.Y), math32.Vec2(bb.Max.X, c.Y), true
	}
	if e.start == nil || e.end == nil {
		return a, b, false
	}
	return *e.start, *e.end, true
}

func (e *mirrorSymmetry) DoEffect(p ppath.Path) ppath.Path {
	if p.Empty() {
		return ppath.Path{}
	}
	a, b, ok := e.line(p)
	d := b.Sub(a)
	if !ok || d.Length() == 0 {
		return p.Clone()
	}
	s2, c2 := math32.Sincos(2 * math32.Atan2(d.Y, d.X))
	refl := math32.Matrix2{XX: c2, YX: s2, XY: s2, YY: -c2}
	m := math32.Translate2D(a.X, a.Y).Mul(refl).Mul(math32.Translate2D(-a.X, -a.Y))
	mirrored := p.Transform(m)
	if e.discardOrig {
		return mirrored
	}
	return p.Clone().Append(mirrored)
}

// rotateCopies draws copies of the path rotated about an origin,
// the center of the path bounds by default.
type rotateCopies struct {
	base
	copies        int
	angle         float32
	startingAngle float32
	origin        *math32.Vector2
}

func newRotateCopies() *rotateCopies {
	e := &rotateCopies{}
	e.kind = RotateCopies
	e.add(intParam("num_copies", &e.copies, 6, 1))
	e.add(floatParam("rotation_angle", &e.angle, 60))
	e.add(floatParam("starting_angle", &e.startingAngle, 0))
	e.add(pointParam("origin", &e.origin))
	return e
}

func (e *rotateCopies) DoEffect(p ppath.Path) ppath.Path {
	if p.Empty() {
		return ppath.Path{}
	}
	o := p.Bounds().Center()
	if e.origin != nil {
		o = *e.origin
	}
	out := ppath.Path{}
	for i := range e.copies {
		out = out.Append(p.Transform(rotateAbout(o, e.startingAngle+float32(i)*e.angle)))
	}
	return out
}

// transform2Pts moves, rotates and scales the path so that its first
// node lands on the start point and its last node on the end point.
type transform2Pts struct {
	base
	start, end *math32.Vector2
	stretch    float32
}

func newTransform2Pts() *transform2Pts {
	e := &transform2Pts{}
	e.kind = Transform2Pts
	e.add(pointParam("start", &e.start))
	e.add(pointParam("end", &e.end))
	e.add(floatParam("stretch", &e.stretch, 1))
	return e
}

func (e *transform2Pts) DoEffect(p ppath.Path) ppath.Path {
	pts := p.Points()
	if len(pts) < 2 || e.start == nil || e.end == nil {
		return p.Clone()
	}
	from, to := pts[0], pts[len(pts)-1]
	src := to.Sub(from)
	dst := e.end.Sub(*e.start)
	if src.Length() == 0 {
		return p.Clone()
	}
	scale := dst.Length() / src.Length() * e.stretch
	angle := math32.Atan2(dst.Y, dst.X) - math32.Atan2(src.Y, src.X)
	m := math32.Translate2D(e.start.X, e.start.Y).
		Mul(math32.Rotate2D(angle)).
		Mul(math32.Scale2D(scale, scale)).
		Mul(math32.Translate2D(-from.X, -from.Y))
	return p.Transform(m)
}
