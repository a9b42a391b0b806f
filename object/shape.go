// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"log/slog"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/ppath"
	"cogentcore.org/canvas/repr"
	"cogentcore.org/canvas/style"
)

// Shape is the base of the geometric elements. Its curve is computed
// from the attributes of the kind, then passed through the path
// effects of the item.
type Shape struct {
	LPEItem

	curve          ppath.Path
	curveBeforeLPE ppath.Path
}

// shaper is implemented by the shape kinds: setShape computes the
// curve from the attributes and calls [Shape.setCurve].
type shaper interface {
	setShape(ctx *UpdateContext)
}

// Curve returns the curve, with the path effects applied.
func (s *Shape) Curve() ppath.Path { return s.curve }

// CurveBeforeLPE returns the curve before the path effects.
func (s *Shape) CurveBeforeLPE() ppath.Path { return s.curveBeforeLPE }

// setCurve sets the curve before path effects and applies them.
func (s *Shape) setCurve(c ppath.Path) {
	s.curveBeforeLPE = c
	s.curve = s.PerformPathEffect(c)
	s.bboxValid = false
}

// shapeFlags are the flags that make a shape compute its curve again.
const shapeFlags = ModifiedFlag | StyleModifiedFlag | ViewportModifiedFlag

func (s *Shape) Update(ctx *UpdateContext, flags Flags) {
	if flags&shapeFlags != 0 {
		if sh, ok := s.This.(shaper); ok {
			sh.setShape(ctx)
		}
	}
	s.LPEItem.Update(ctx, flags)
}

func (s *Shape) Show(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	return dr.NewItem(drawing.ShapeItem)
}

func (s *Shape) updateView(v *ItemView) {
	v.Item.Path = s.curve
}

func (s *Shape) Bounds(t BBoxType, m math32.Matrix2) math32.Box2 {
	if s.curve.Empty() {
		return math32.B2Empty()
	}
	b := s.curve.Transform(m).Bounds()
	if t == VisualBBox && s.style.Stroke.Value.Kind != style.PaintNone {
		w := s.style.StrokeWidth.Value.Px(fontSize(s.style), 0)
		b.ExpandByScalar(w / 2 * m.ExpansionX())
	}
	return b
}

// fontSize returns the font size of the style in user units.
func fontSize(s *style.Style) float32 {
	return s.FontSize.Value.Px(16, 16)
}

// readPoints reads a points attribute, logging malformed values.
func readPoints(o *ObjectBase, value *string) []math32.Vector2 {
	if value == nil {
		return nil
	}
	pts, err := math32.ReadPoints(*value)
	if err != nil {
		slog.Debug("object: bad points", "object", o.String(), "err", err)
		return nil
	}
	return pts
}

func formatPoints(pts []math32.Vector2) string {
	b := make([]byte, 0, len(pts)*8)
	for i, p := range pts {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, math32.FormatFloat(p.X)...)
		b = append(b, ',')
		b = append(b, math32.FormatFloat(p.Y)...)
	}
	return string(b)
}

// Path is a path element. With path effects, inkscape:original-d is
// the path before the effects and d is written with the result.
type Path struct {
	Shape

	d            ppath.Path
	originalD    ppath.Path
	hasOriginalD bool

	// writingLPE is set while d is written with the result of the path
	// effects, so that reading it back does not apply them again.
	writingLPE bool
}

func (p *Path) Build(doc *Document, node *repr.Node) {
	p.Shape.Build(doc, node)
	p.ReadAttr(attr.InkscapeOriginalD, attr.D)
}

func readPath(o *ObjectBase, value *string) ppath.Path {
	if value == nil {
		return nil
	}
	c, err := ppath.ParseSVGPath(*value)
	if err != nil {
		slog.Debug("object: bad path data", "object", o.String(), "err", err)
		return nil
	}
	return c
}

func (p *Path) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.D:
		if p.writingLPE {
			return true
		}
		p.d = readPath(&p.ObjectBase, value)
	case attr.InkscapeOriginalD:
		p.originalD = readPath(&p.ObjectBase, value)
		p.hasOriginalD = value != nil
	default:
		return p.Shape.Set(key, value)
	}
	p.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// D returns the path data of the d attribute.
func (p *Path) D() ppath.Path { return p.d }

// OriginalD returns inkscape:original-d, and whether it is set.
func (p *Path) OriginalD() (ppath.Path, bool) { return p.originalD, p.hasOriginalD }

func (p *Path) setShape(ctx *UpdateContext) {
	if p.HasPathEffect() && p.hasOriginalD {
		p.setCurve(p.originalD)
		return
	}
	p.setCurve(p.d)
}

func (p *Path) Update(ctx *UpdateContext, flags Flags) {
	p.Shape.Update(ctx, flags)
	if flags&shapeFlags != 0 && !p.cloned && p.HasPathEffect() {
		p.writeEffectResult()
	}
}

// writeEffectResult keeps original-d and writes the result of the path
// effects to d. A path that gets its first effect keeps its d as
// original-d.
func (p *Path) writeEffectResult() {
	if !p.hasOriginalD {
		p.node.SetAttribute("inkscape:original-d", p.d.String())
		return
	}
	s := p.curve.String()
	if v, _ := p.node.Attribute("d"); v == s {
		return
	}
	p.writingLPE = true
	p.node.SetAttribute("d", s)
	p.writingLPE = false
	p.d = p.curve
}

// restoreOriginal writes original-d back to d and removes it,
// after the last path effect was removed.
func (p *Path) restoreOriginal(keepPaths bool) {
	if !p.hasOriginalD {
		return
	}
	if !keepPaths {
		p.node.SetAttribute("d", p.originalD.String())
	}
	p.node.RemoveAttribute("inkscape:original-d")
}

// ApplyTransform applies m to the path data of a path without
// path effects.
func (p *Path) ApplyTransform(m math32.Matrix2) math32.Matrix2 {
	if p.HasPathEffect() {
		return m
	}
	p.d = p.d.Transform(m)
	p.setCurve(p.d)
	return math32.Identity2()
}

func (p *Path) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = p.Shape.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "inkscape:original-d", p.originalD.String(), p.hasOriginalD)
	d := p.d
	if p.HasPathEffect() {
		d = p.curve
	}
	p.writingLPE = node == p.node
	setOrRemove(node, "d", d.String(), len(d) > 0)
	p.writingLPE = false
	return node
}

// Rect is a rect element. Percentages are relative to the viewport.
type Rect struct {
	Shape

	X, Y, Width, Height, RX, RY SVGLength
}

func (r *Rect) Build(doc *Document, node *repr.Node) {
	r.Shape.Build(doc, node)
	r.ReadAttr(attr.X, attr.Y, attr.Width, attr.Height, attr.RX, attr.RY)
}

func (r *Rect) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.X:
		r.X.Read(value, 0)
	case attr.Y:
		r.Y.Read(value, 0)
	case attr.Width:
		r.Width.Read(value, 0)
	case attr.Height:
		r.Height.Read(value, 0)
	case attr.RX:
		r.RX.Read(value, 0)
	case attr.RY:
		r.RY.Read(value, 0)
	default:
		return r.Shape.Set(key, value)
	}
	r.RequestDisplayUpdate(ModifiedFlag)
	return true
}

func (r *Rect) setShape(ctx *UpdateContext) {
	vs := ctx.Viewport.Size()
	em := fontSize(r.style)
	r.X.Update(em, vs.X)
	r.Y.Update(em, vs.Y)
	r.Width.Update(em, vs.X)
	r.Height.Update(em, vs.Y)
	r.RX.Update(em, vs.X)
	r.RY.Update(em, vs.Y)
	w, h := r.Width.Computed, r.Height.Computed
	c := ppath.Path{}
	if w <= 0 || h <= 0 {
		r.setCurve(c)
		return
	}
	rx, ry := r.RX.Computed, r.RY.Computed
	switch {
	case r.RX.IsSet && !r.RY.IsSet:
		ry = rx
	case r.RY.IsSet && !r.RX.IsSet:
		rx = ry
	}
	rx, ry = min(rx, w/2), min(ry, h/2)
	if rx > 0 && ry > 0 {
		c.RoundedRectangle(r.X.Computed, r.Y.Computed, w, h, rx, ry)
	} else {
		c.Rectangle(r.X.Computed, r.Y.Computed, w, h)
	}
	r.setCurve(c)
}

func (r *Rect) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = r.Shape.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	r.X.WriteTo(node, "x")
	r.Y.WriteTo(node, "y")
	r.Width.WriteTo(node, "width")
	r.Height.WriteTo(node, "height")
	r.RX.WriteTo(node, "rx")
	r.RY.WriteTo(node, "ry")
	return node
}

// Circle is a circle element.
type Circle struct {
	Shape

	CX, CY, R SVGLength
}

func (c *Circle) Build(doc *Document, node *repr.Node) {
	c.Shape.Build(doc, node)
	c.ReadAttr(attr.CX, attr.CY, attr.R)
}

func (c *Circle) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.CX:
		c.CX.Read(value, 0)
	case attr.CY:
		c.CY.Read(value, 0)
	case attr.R:
		c.R.Read(value, 0)
	default:
		return c.Shape.Set(key, value)
	}
	c.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// diagonal returns the normalized diagonal of the viewport,
// the percentage base of lengths that are neither horizontal
// nor vertical.
func diagonal(vs math32.Vector2) float32 {
	return math32.Sqrt((vs.X*vs.X + vs.Y*vs.Y) / 2)
}

func (c *Circle) setShape(ctx *UpdateContext) {
	vs := ctx.Viewport.Size()
	em := fontSize(c.style)
	c.CX.Update(em, vs.X)
	c.CY.Update(em, vs.Y)
	c.R.Update(em, diagonal(vs))
	p := ppath.Path{}
	if c.R.Computed > 0 {
		p.Circle(c.CX.Computed, c.CY.Computed, c.R.Computed)
	}
	c.setCurve(p)
}

func (c *Circle) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = c.Shape.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	c.CX.WriteTo(node, "cx")
	c.CY.WriteTo(node, "cy")
	c.R.WriteTo(node, "r")
	return node
}

// Ellipse is an ellipse element.
type Ellipse struct {
	Shape

	CX, CY, RX, RY SVGLength
}

func (e *Ellipse) Build(doc *Document, node *repr.Node) {
	e.Shape.Build(doc, node)
	e.ReadAttr(attr.CX, attr.CY, attr.RX, attr.RY)
}

func (e *Ellipse) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.CX:
		e.CX.Read(value, 0)
	case attr.CY:
		e.CY.Read(value, 0)
	case attr.RX:
		e.RX.Read(value, 0)
	case attr.RY:
		e.RY.Read(value, 0)
	default:
		return e.Shape.Set(key, value)
	}
	e.RequestDisplayUpdate(ModifiedFlag)
	return true
}

func (e *Ellipse) setShape(ctx *UpdateContext) {
	vs := ctx.Viewport.Size()
	em := fontSize(e.style)
	e.CX.Update(em, vs.X)
	e.CY.Update(em, vs.Y)
	e.RX.Update(em, vs.X)
	e.RY.Update(em, vs.Y)
	p := ppath.Path{}
	if e.RX.Computed > 0 && e.RY.Computed > 0 {
		p.Ellipse(e.CX.Computed, e.CY.Computed, e.RX.Computed, e.RY.Computed)
	}
	e.setCurve(p)
}

func (e *Ellipse) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = e.Shape.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	e.CX.WriteTo(node, "cx")
	e.CY.WriteTo(node, "cy")
	e.RX.WriteTo(node, "rx")
	e.RY.WriteTo(node, "ry")
	return node
}

// Line is a line element.
type Line struct {
	Shape

	X1, Y1, X2, Y2 SVGLength
}

func (l *Line) Build(doc *Document, node *repr.Node) {
	l.Shape.Build(doc, node)
	l.ReadAttr(attr.X1, attr.Y1, attr.X2, attr.Y2)
}

func (l *Line) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.X1:
		l.X1.Read(value, 0)
	case attr.Y1:
		l.Y1.Read(value, 0)
	case attr.X2:
		l.X2.Read(value, 0)
	case attr.Y2:
		l.Y2.Read(value, 0)
	default:
		return l.Shape.Set(key, value)
	}
	l.RequestDisplayUpdate(ModifiedFlag)
	return true
}

func (l *Line) setShape(ctx *UpdateContext) {
	vs := ctx.Viewport.Size()
	l.X1.Update(0, vs.X)
	l.Y1.Update(0, vs.Y)
	l.X2.Update(0, vs.X)
	l.Y2.Update(0, vs.Y)
	p := ppath.Path{}
	p.Line(l.X1.Computed, l.Y1.Computed, l.X2.Computed, l.Y2.Computed)
	l.setCurve(p)
}

func (l *Line) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = l.Shape.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	l.X1.WriteTo(node, "x1")
	l.Y1.WriteTo(node, "y1")
	l.X2.WriteTo(node, "x2")
	l.Y2.WriteTo(node, "y2")
	return node
}

// Polyline is a polyline element.
type Polyline struct {
	Shape

	Points []math32.Vector2
}

func (p *Polyline) Build(doc *Document, node *repr.Node) {
	p.Shape.Build(doc, node)
	p.ReadAttr(attr.Points)
}

func (p *Polyline) Set(key attr.Attr, value *string) bool {
	if key != attr.Points {
		return p.Shape.Set(key, value)
	}
	p.Points = readPoints(&p.ObjectBase, value)
	p.RequestDisplayUpdate(ModifiedFlag)
	return true
}

func (p *Polyline) setShape(ctx *UpdateContext) {
	c := ppath.Path{}
	if len(p.Points) > 0 {
		c.Polyline(p.Points...)
	}
	p.setCurve(c)
}

func (p *Polyline) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = p.Shape.Write(rdoc, node, flags)
	if node != nil {
		setOrRemove(node, "points", formatPoints(p.Points), len(p.Points) > 0)
	}
	return node
}

// Polygon is a polygon element: a closed polyline.
type Polygon struct {
	Polyline
}

func (p *Polygon) setShape(ctx *UpdateContext) {
	c := ppath.Path{}
	if len(p.Points) > 0 {
		c.Polygon(p.Points...)
	}
	p.setCurve(c)
}
