// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
	"cogentcore.org/canvas/signal"
	"cogentcore.org/canvas/style"
	"cogentcore.org/canvas/tree"
)

// PaintServer is implemented by the objects that a fill or stroke can
// reference: gradients and patterns. They are shown once per key for
// every item that paints with them.
type PaintServer interface {
	Object

	// ShowPaint returns a new paint node for the key, for an item
	// with the given bounding box.
	ShowPaint(dr *drawing.Drawing, key uint32, bbox math32.Box2) *drawing.Item

	// HidePaint destroys the paint nodes of the key.
	HidePaint(key uint32)
}

// SpreadMethods are the values of spreadMethod.
type SpreadMethods int32

const (
	SpreadPad SpreadMethods = iota
	SpreadReflect
	SpreadRepeat
)

var spreadNames = []string{"pad", "reflect", "repeat"}

func (s SpreadMethods) String() string {
	if s < 0 || int(s) >= len(spreadNames) {
		return spreadNames[0]
	}
	return spreadNames[s]
}

// hrefLink is the link of a gradient or pattern to the one it takes
// unset attributes and content from. The owner is updated when the
// linked object is modified.
type hrefLink[T Object] struct {
	ref     *Ref[T]
	modConn signal.Connection
}

func (hl *hrefLink[T]) init(owner Object) {
	hl.ref = NewRef[T](owner)
	hl.ref.Changed.Connect(func(ch TargetChange) {
		if ch.Old != nil {
			ch.Old.AsObject().ModifiedSignal.Disconnect(hl.modConn)
			hl.modConn = 0
		}
		if ch.New != nil {
			hl.modConn = ch.New.AsObject().ModifiedSignal.Connect(func(Flags) {
				owner.AsObject().RequestDisplayUpdate(ModifiedFlag)
			})
		}
		owner.AsObject().RequestDisplayUpdate(ModifiedFlag)
	})
}

func (hl *hrefLink[T]) set(value *string) {
	if value == nil || *value == "" {
		hl.ref.Unlink()
		return
	}
	hl.ref.TryLink(*value)
}

// chain returns the owner followed by the objects reached through
// the links, stopping at a cycle.
func chain[T Object](first T, next func(T) T) []T {
	var zero T
	var c []T
	for o := first; Object(o) != Object(zero); o = next(o) {
		if slices.ContainsFunc(c, func(x T) bool { return Object(x) == Object(o) }) {
			slog.Debug("object: href cycle", "object", o.AsObject().String())
			break
		}
		c = append(c, o)
	}
	return c
}

// Gradienter is implemented by the gradient kinds.
type Gradienter interface {
	PaintServer

	// AsGradient returns the [Gradient] of the object.
	AsGradient() *Gradient
}

// gradientGeometry is implemented by the gradient kinds to set the
// vector of a paint node.
type gradientGeometry interface {
	geometry(g *drawing.Gradient, units Units, viewport math32.Box2)
}

// Gradient is the base of linear and radial gradients. Attributes that
// are not set are taken from the gradient linked by href, and the
// stops from the first gradient of the chain that has any.
type Gradient struct {
	ObjectBase

	// Href is the linked gradient as written.
	Href string

	// Units is gradientUnits.
	Units    Units
	hasUnits bool

	// GradientTransform is gradientTransform.
	GradientTransform math32.Matrix2
	hasTransform      bool

	// Spread is spreadMethod.
	Spread    SpreadMethods
	hasSpread bool

	// Swatch is inkscape:swatch, "solid" or "gradient" for a swatch.
	Swatch string

	link     hrefLink[Gradienter]
	views    keyedViews
	viewport math32.Box2
}

func (g *Gradient) AsGradient() *Gradient { return g }

func (g *Gradient) initObject(this Object, tag string) {
	g.ObjectBase.initObject(this, tag)
	g.Units = ObjectBoundingBox
	g.GradientTransform = math32.Identity2()
	g.viewport = math32.B2(0, 0, 100, 100)
}

func (g *Gradient) Build(doc *Document, node *repr.Node) {
	g.link.init(g.this())
	g.ObjectBase.Build(doc, node)
	g.ReadAttr(attr.GradientUnits, attr.GradientTransform, attr.SpreadMethod, attr.XlinkHref, attr.Href, attr.InkscapeSwatch)
	doc.AddResource(g.LocalTag(), g.this())
}

func (g *Gradient) Release() {
	g.doc.RemoveResource(g.LocalTag(), g.this())
	g.link.ref.Unlink()
	g.ObjectBase.Release()
	g.views.clear()
}

func (g *Gradient) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.GradientUnits:
		g.Units = ReadUnits(value, ObjectBoundingBox)
		g.hasUnits = value != nil
	case attr.GradientTransform:
		g.GradientTransform = math32.Identity2()
		g.hasTransform = false
		if value != nil {
			if err := g.GradientTransform.SetString(*value); err != nil {
				slog.Debug("object: bad gradientTransform", "object", g.String(), "err", err)
				g.GradientTransform = math32.Identity2()
			} else {
				g.hasTransform = true
			}
		}
	case attr.SpreadMethod:
		g.Spread = SpreadPad
		g.hasSpread = false
		if value != nil {
			if i := slices.Index(spreadNames, *value); i >= 0 {
				g.Spread = SpreadMethods(i)
				g.hasSpread = true
			}
		}
	case attr.XlinkHref, attr.Href:
		if value == nil && (g.node.AttributePtr("href") != nil || g.node.AttributePtr("xlink:href") != nil) {
			return true
		}
		g.Href = ""
		if value != nil {
			g.Href = *value
		}
		g.link.set(value)
	case attr.InkscapeSwatch:
		g.Swatch = ""
		if value != nil {
			g.Swatch = *value
		}
	default:
		return g.ObjectBase.Set(key, value)
	}
	g.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// Linked returns the gradient linked by href, or nil.
func (g *Gradient) Linked() Gradienter {
	return g.link.ref.Object()
}

// Chain returns the gradient and the gradients reached through href.
func (g *Gradient) Chain() []Gradienter {
	first, _ := g.this().(Gradienter)
	return chain(first, func(x Gradienter) Gradienter { return x.AsGradient().Linked() })
}

// Vector returns the gradient that has the stops: the first of the
// chain with stop children, or nil.
func (g *Gradient) Vector() Gradienter {
	for _, x := range g.Chain() {
		if x.AsGradient().HasStops() {
			return x
		}
	}
	return nil
}

// HasStops returns whether the gradient has stop children.
func (g *Gradient) HasStops() bool {
	return slices.ContainsFunc(g.Children, func(c tree.Node) bool {
		_, ok := c.(*Stop)
		return ok
	})
}

// IsSwatch returns whether the gradient is a swatch.
func (g *Gradient) IsSwatch() bool { return g.Swatch != "" }

// Stops returns the stops of the vector, with offsets made
// non-decreasing.
func (g *Gradient) Stops() []drawing.GradientStop {
	v := g.Vector()
	if v == nil {
		return nil
	}
	var stops []drawing.GradientStop
	last := float32(0)
	for _, c := range v.AsGradient().Children {
		s, ok := c.(*Stop)
		if !ok {
			continue
		}
		off := math32.Clamp(s.Offset, last, 1)
		last = off
		stops = append(stops, drawing.GradientStop{Offset: off, Color: s.Color()})
	}
	return stops
}

// EffectiveUnits returns the units of the first gradient of the chain
// that sets them.
func (g *Gradient) EffectiveUnits() Units {
	for _, x := range g.Chain() {
		if xg := x.AsGradient(); xg.hasUnits {
			return xg.Units
		}
	}
	return ObjectBoundingBox
}

// EffectiveTransform returns the gradientTransform of the first
// gradient of the chain that sets it.
func (g *Gradient) EffectiveTransform() math32.Matrix2 {
	for _, x := range g.Chain() {
		if xg := x.AsGradient(); xg.hasTransform {
			return xg.GradientTransform
		}
	}
	return math32.Identity2()
}

// EffectiveSpread returns the spreadMethod of the first gradient of the
// chain that sets it.
func (g *Gradient) EffectiveSpread() SpreadMethods {
	for _, x := range g.Chain() {
		if xg := x.AsGradient(); xg.hasSpread {
			return xg.Spread
		}
	}
	return SpreadPad
}

func (g *Gradient) ShowPaint(dr *drawing.Drawing, key uint32, bbox math32.Box2) *drawing.Item {
	di := dr.NewItem(drawing.GradientItem)
	di.Data = g.This
	di.Key = key
	g.pushPaint(g.views.add(key, di, bbox))
	return di
}

func (g *Gradient) HidePaint(key uint32) {
	g.views.remove(key)
}

// ViewCount returns the number of paint nodes.
func (g *Gradient) ViewCount() int { return len(g.views) }

// pushPaint sets the state of one paint node.
func (g *Gradient) pushPaint(v *keyedView) {
	di := v.item
	units := g.EffectiveUnits()
	m := g.EffectiveTransform()
	if units == ObjectBoundingBox && !v.bbox.IsEmpty() {
		m = bboxTransform(v.bbox).Mul(m)
	}
	di.Transform = m
	di.Bounds = v.bbox
	gs := &drawing.Gradient{Spread: g.EffectiveSpread().String(), Stops: g.Stops()}
	if gg, ok := g.This.(gradientGeometry); ok {
		gg.geometry(gs, units, g.viewport)
	}
	di.Gradient = gs
	di.Updates++
}

func (g *Gradient) Update(ctx *UpdateContext, flags Flags) {
	if flags&ViewportModifiedFlag != 0 || g.viewport != ctx.Viewport {
		g.viewport = ctx.Viewport
		flags |= ModifiedFlag
	}
	if flags&(ModifiedFlag|ChildModifiedFlag|StyleModifiedFlag) == 0 {
		return
	}
	for _, v := range g.views {
		g.pushPaint(v)
	}
}

func (g *Gradient) ChildAdded(child, prev *repr.Node) {
	g.ObjectBase.ChildAdded(child, prev)
	g.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

func (g *Gradient) ChildRemoved(child *repr.Node) {
	g.ObjectBase.ChildRemoved(child)
	g.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

func (g *Gradient) OrderChanged(child, oldPrev, newPrev *repr.Node) {
	g.ObjectBase.OrderChanged(child, oldPrev, newPrev)
	g.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

// ForkPrivateIfNecessary returns the gradient itself if it has at most
// n users, and otherwise a private copy for the caller.
func (g *Gradient) ForkPrivateIfNecessary(n int) Gradienter {
	self, _ := g.this().(Gradienter)
	if fk, ok := forkPrivateIfNecessary(self, n).(Gradienter); ok {
		return fk
	}
	return self
}

func (g *Gradient) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = g.ObjectBase.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "gradientUnits", g.Units.String(), g.hasUnits)
	setOrRemove(node, "gradientTransform", g.GradientTransform.String(), g.hasTransform)
	setOrRemove(node, "spreadMethod", g.Spread.String(), g.hasSpread)
	WriteHref(node, g.Href)
	if flags&WriteExt != 0 {
		setOrRemove(node, "inkscape:swatch", g.Swatch, g.Swatch != "")
	}
	return node
}

// gradientLength resolves a gradient coordinate. Coordinates in
// objectBoundingBox units are fractions of the box, which the
// transform of the paint node maps.
func gradientLength(l SVGLength, units Units, extent float32) float32 {
	if units == ObjectBoundingBox {
		return regionLength(l, units, 1)
	}
	return l.Px(0, extent)
}

// inheritLength returns the first length of the chain that is set,
// or def.
func inheritLength[T Gradienter](chain []Gradienter, get func(T) SVGLength, def SVGLength) SVGLength {
	for _, x := range chain {
		if t, ok := x.(T); ok {
			if l := get(t); l.IsSet {
				return l
			}
		}
	}
	return def
}

// percentLength returns an unset length of the given percentage.
func percentLength(p float32) SVGLength {
	return SVGLength{Length: style.Length{Value: p, Unit: "%"}}
}

// LinearGradient is a linearGradient element.
type LinearGradient struct {
	Gradient

	X1, Y1, X2, Y2 SVGLength
}

func (lg *LinearGradient) Build(doc *Document, node *repr.Node) {
	lg.Gradient.Build(doc, node)
	lg.ReadAttr(attr.X1, attr.Y1, attr.X2, attr.Y2)
}

func (lg *LinearGradient) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.X1:
		lg.X1.Read(value, 0)
	case attr.Y1:
		lg.Y1.Read(value, 0)
	case attr.X2:
		lg.X2.Read(value, 0)
	case attr.Y2:
		lg.Y2.Read(value, 0)
	default:
		return lg.Gradient.Set(key, value)
	}
	lg.RequestDisplayUpdate(ModifiedFlag)
	return true
}

func (lg *LinearGradient) geometry(gs *drawing.Gradient, units Units, vp math32.Box2) {
	c := lg.Chain()
	vs := vp.Size()
	get := func(f func(*LinearGradient) SVGLength, def SVGLength, extent float32) float32 {
		return gradientLength(inheritLength(c, f, def), units, extent)
	}
	gs.Start = math32.Vec2(
		get(func(x *LinearGradient) SVGLength { return x.X1 }, percentLength(0), vs.X),
		get(func(x *LinearGradient) SVGLength { return x.Y1 }, percentLength(0), vs.Y))
	gs.End = math32.Vec2(
		get(func(x *LinearGradient) SVGLength { return x.X2 }, percentLength(100), vs.X),
		get(func(x *LinearGradient) SVGLength { return x.Y2 }, percentLength(0), vs.Y))
}

func (lg *LinearGradient) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = lg.Gradient.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	lg.X1.WriteTo(node, "x1")
	lg.Y1.WriteTo(node, "y1")
	lg.X2.WriteTo(node, "x2")
	lg.Y2.WriteTo(node, "y2")
	return node
}

// RadialGradient is a radialGradient element.
type RadialGradient struct {
	Gradient

	CX, CY, R, FX, FY, FR SVGLength
}

func (rg *RadialGradient) Build(doc *Document, node *repr.Node) {
	rg.Gradient.Build(doc, node)
	rg.ReadAttr(attr.CX, attr.CY, attr.R, attr.FX, attr.FY, attr.FR)
}

func (rg *RadialGradient) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.CX:
		rg.CX.Read(value, 0)
	case attr.CY:
		rg.CY.Read(value, 0)
	case attr.R:
		rg.R.Read(value, 0)
	case attr.FX:
		rg.FX.Read(value, 0)
	case attr.FY:
		rg.FY.Read(value, 0)
	case attr.FR:
		rg.FR.Read(value, 0)
	default:
		return rg.Gradient.Set(key, value)
	}
	rg.RequestDisplayUpdate(ModifiedFlag)
	return true
}

func (rg *RadialGradient) geometry(gs *drawing.Gradient, units Units, vp math32.Box2) {
	c := rg.Chain()
	vs := vp.Size()
	diag := math32.Sqrt((vs.X*vs.X + vs.Y*vs.Y) / 2)
	get := func(f func(*RadialGradient) SVGLength, def SVGLength, extent float32) float32 {
		return gradientLength(inheritLength(c, f, def), units, extent)
	}
	cx := inheritLength(c, func(x *RadialGradient) SVGLength { return x.CX }, percentLength(50))
	cy := inheritLength(c, func(x *RadialGradient) SVGLength { return x.CY }, percentLength(50))
	gs.Radial = true
	gs.Start = math32.Vec2(gradientLength(cx, units, vs.X), gradientLength(cy, units, vs.Y))
	gs.End = math32.Vec2(
		get(func(x *RadialGradient) SVGLength { return x.FX }, cx, vs.X),
		get(func(x *RadialGradient) SVGLength { return x.FY }, cy, vs.Y))
	gs.Radius = get(func(x *RadialGradient) SVGLength { return x.R }, percentLength(50), diag)
	gs.FocalRadius = get(func(x *RadialGradient) SVGLength { return x.FR }, percentLength(0), diag)
}

func (rg *RadialGradient) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = rg.Gradient.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	rg.CX.WriteTo(node, "cx")
	rg.CY.WriteTo(node, "cy")
	rg.R.WriteTo(node, "r")
	rg.FX.WriteTo(node, "fx")
	rg.FY.WriteTo(node, "fy")
	rg.FR.WriteTo(node, "fr")
	return node
}

// Stop is a stop element of a gradient.
type Stop struct {
	ObjectBase

	// Offset is the offset in [0, 1].
	Offset float32
}

func (s *Stop) Build(doc *Document, node *repr.Node) {
	s.ObjectBase.Build(doc, node)
	s.ReadAttr(attr.Offset)
}

func (s *Stop) Set(key attr.Attr, value *string) bool {
	if key != attr.Offset {
		return s.ObjectBase.Set(key, value)
	}
	s.Offset = 0
	if value != nil {
		l, err := style.ParseLength(*value)
		switch {
		case err != nil:
			slog.Debug("object: bad stop offset", "object", s.String(), "err", err)
		case l.Unit == "%":
			s.Offset = l.Value / 100
		default:
			s.Offset = l.Value
		}
	}
	s.Offset = math32.Clamp(s.Offset, 0, 1)
	s.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// Color returns stop-color with stop-opacity applied.
func (s *Stop) Color() color.RGBA {
	st := s.style
	c := st.StopColor.Value.Color
	switch st.StopColor.Value.Kind {
	case style.PaintCurrentColor:
		c = st.Color.Value
	case style.PaintNone:
		c = color.RGBA{}
	}
	return colors.WithAlpha(c, st.StopOpacity.Value)
}

func (s *Stop) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = s.ObjectBase.Write(rdoc, node, flags)
	if node != nil {
		node.SetAttribute("offset", math32.FormatFloat(s.Offset))
	}
	return node
}

// Pattern is a pattern element. Attributes that are not set are taken
// from the pattern linked by href, and the content from the first
// pattern of the chain that has children.
type Pattern struct {
	ObjectBase

	// Href is the linked pattern as written.
	Href string

	// Units is patternUnits, the units of the tile.
	Units    Units
	hasUnits bool

	// ContentUnits is patternContentUnits.
	ContentUnits    Units
	hasContentUnits bool

	// PatternTransform is patternTransform.
	PatternTransform math32.Matrix2
	hasTransform     bool

	// X, Y, Width and Height are the tile.
	X, Y, Width, Height SVGLength

	// ViewBox is the viewBox of the content.
	ViewBox ViewBox

	link     hrefLink[*Pattern]
	views    keyedViews
	viewport math32.Box2
}

func (p *Pattern) initObject(this Object, tag string) {
	p.ObjectBase.initObject(this, tag)
	p.Units = ObjectBoundingBox
	p.PatternTransform = math32.Identity2()
	p.ViewBox.PreserveAspectRatio.Defaults()
	p.viewport = math32.B2(0, 0, 100, 100)
}

func (p *Pattern) Build(doc *Document, node *repr.Node) {
	p.link.init(p)
	p.ObjectBase.Build(doc, node)
	p.ReadAttr(attr.PatternUnits, attr.PatternContentUnits, attr.PatternTransform, attr.X, attr.Y,
		attr.Width, attr.Height, attr.ViewBox, attr.PreserveAspectRatio, attr.XlinkHref, attr.Href)
	doc.AddResource("pattern", p)
}

func (p *Pattern) Release() {
	p.doc.RemoveResource("pattern", p)
	p.link.ref.Unlink()
	for _, v := range p.views {
		if v.content != nil && v.content != &p.ObjectBase && !v.content.released {
			hideItemChildren(v.content, v.key)
		}
	}
	p.ObjectBase.Release()
	p.views.clear()
}

func (p *Pattern) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.PatternUnits:
		p.Units = ReadUnits(value, ObjectBoundingBox)
		p.hasUnits = value != nil
	case attr.PatternContentUnits:
		p.ContentUnits = ReadUnits(value, UserSpaceOnUse)
		p.hasContentUnits = value != nil
	case attr.PatternTransform:
		p.PatternTransform = math32.Identity2()
		p.hasTransform = false
		if value != nil {
			if err := p.PatternTransform.SetString(*value); err != nil {
				slog.Debug("object: bad patternTransform", "object", p.String(), "err", err)
				p.PatternTransform = math32.Identity2()
			} else {
				p.hasTransform = true
			}
		}
	case attr.X:
		p.X.Read(value, 0)
	case attr.Y:
		p.Y.Read(value, 0)
	case attr.Width:
		p.Width.Read(value, 0)
	case attr.Height:
		p.Height.Read(value, 0)
	case attr.ViewBox:
		readViewBox(&p.ViewBox, value)
	case attr.PreserveAspectRatio:
		readAspect(&p.ViewBox.PreserveAspectRatio, value)
	case attr.XlinkHref, attr.Href:
		if value == nil && (p.node.AttributePtr("href") != nil || p.node.AttributePtr("xlink:href") != nil) {
			return true
		}
		p.Href = ""
		if value != nil {
			p.Href = *value
		}
		p.link.set(value)
	default:
		return p.ObjectBase.Set(key, value)
	}
	p.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// Linked returns the pattern linked by href, or nil.
func (p *Pattern) Linked() *Pattern {
	return p.link.ref.Object()
}

// Chain returns the pattern and the patterns reached through href.
func (p *Pattern) Chain() []*Pattern {
	return chain(p, (*Pattern).Linked)
}

// RootPattern returns the pattern whose children are the content:
// the first of the chain with children, or the pattern itself.
func (p *Pattern) RootPattern() *Pattern {
	for _, x := range p.Chain() {
		if x.HasChildren() {
			return x
		}
	}
	return p
}

// tile returns the tile for an item with the given bounding box, in
// pattern space.
func (p *Pattern) tile(bbox math32.Box2) math32.Box2 {
	c := p.Chain()
	units := ObjectBoundingBox
	for _, x := range c {
		if x.hasUnits {
			units = x.Units
			break
		}
	}
	get := func(f func(*Pattern) SVGLength) SVGLength {
		for _, x := range c {
			if l := f(x); l.IsSet {
				return l
			}
		}
		return SVGLength{}
	}
	vs := p.viewport.Size()
	if units == ObjectBoundingBox {
		s := bbox.Size()
		x := bbox.Min.X + regionLength(get(func(x *Pattern) SVGLength { return x.X }), units, s.X)
		y := bbox.Min.Y + regionLength(get(func(x *Pattern) SVGLength { return x.Y }), units, s.Y)
		w := regionLength(get(func(x *Pattern) SVGLength { return x.Width }), units, s.X)
		h := regionLength(get(func(x *Pattern) SVGLength { return x.Height }), units, s.Y)
		return math32.B2(x, y, x+w, y+h)
	}
	x := get(func(x *Pattern) SVGLength { return x.X }).Px(0, vs.X)
	y := get(func(x *Pattern) SVGLength { return x.Y }).Px(0, vs.Y)
	w := get(func(x *Pattern) SVGLength { return x.Width }).Px(0, vs.X)
	h := get(func(x *Pattern) SVGLength { return x.Height }).Px(0, vs.Y)
	return math32.B2(x, y, x+w, y+h)
}

// contentTransform returns the transform of the content into the
// tile: the viewBox if one is set, and otherwise the content units.
func (p *Pattern) contentTransform(tile, bbox math32.Box2) math32.Matrix2 {
	c := p.Chain()
	for _, x := range c {
		if x.ViewBox.IsSet() {
			s := tile.Size()
			return math32.Translate2D(tile.Min.X, tile.Min.Y).Mul(x.ViewBox.Transform(math32.B2(0, 0, s.X, s.Y)))
		}
	}
	m := math32.Translate2D(tile.Min.X, tile.Min.Y)
	for _, x := range c {
		if x.hasContentUnits {
			if x.ContentUnits == ObjectBoundingBox {
				s := bbox.Size()
				m = m.Mul(math32.Scale2D(s.X, s.Y))
			}
			break
		}
	}
	return m
}

// ContentTransform returns the transform of the content for an item
// with the given bounding box.
func (p *Pattern) ContentTransform(bbox math32.Box2) math32.Matrix2 {
	return p.contentTransform(p.tile(bbox), bbox)
}

// EffectiveTransform returns the patternTransform of the first pattern
// of the chain that sets it.
func (p *Pattern) EffectiveTransform() math32.Matrix2 {
	for _, x := range p.Chain() {
		if x.hasTransform {
			return x.PatternTransform
		}
	}
	return math32.Identity2()
}

// ShowPaint returns a pattern node with a group of the content.
func (p *Pattern) ShowPaint(dr *drawing.Drawing, key uint32, bbox math32.Box2) *drawing.Item {
	di := dr.NewItem(drawing.PatternItem)
	di.Data = p
	di.Key = key
	content := dr.NewItem(drawing.GroupItem)
	di.AppendChild(content)
	v := p.views.add(key, di, bbox)
	v.content = &p.RootPattern().ObjectBase
	showItemChildren(v.content, content, key)
	p.pushPaint(v)
	return di
}

func (p *Pattern) HidePaint(key uint32) {
	for _, v := range p.views.forKey(key) {
		if v.content != nil && !v.content.released {
			hideItemChildren(v.content, key)
		}
	}
	p.views.remove(key)
}

// ViewCount returns the number of paint nodes.
func (p *Pattern) ViewCount() int { return len(p.views) }

func (p *Pattern) pushPaint(v *keyedView) {
	tile := p.tile(v.bbox)
	v.item.Transform = p.EffectiveTransform()
	v.item.Bounds = tile
	if cs := v.item.Children(); len(cs) > 0 {
		cs[0].Transform = p.contentTransform(tile, v.bbox)
	}
	v.item.Updates++
}

func (p *Pattern) Update(ctx *UpdateContext, flags Flags) {
	if flags&ViewportModifiedFlag != 0 || p.viewport != ctx.Viewport {
		p.viewport = ctx.Viewport
		flags |= ModifiedFlag
	}
	if flags&(ModifiedFlag|ChildModifiedFlag) == 0 {
		return
	}
	for _, v := range p.views {
		p.pushPaint(v)
	}
}

func (p *Pattern) ChildAdded(child, prev *repr.Node) {
	p.ObjectBase.ChildAdded(child, prev)
	if ci, ok := p.ChildByNode(child).(Itemer); ok {
		for _, v := range p.views {
			if v.content != &p.ObjectBase {
				continue
			}
			cs := v.item.Children()
			if len(cs) == 0 {
				continue
			}
			if cdi := ci.AsItem().InvokeShow(v.item.Drawing(), v.key, 0); cdi != nil {
				cs[0].InsertChild(cdi, childViewIndex(&p.ObjectBase, ci, v.key))
			}
		}
	}
	p.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

func (p *Pattern) ChildRemoved(child *repr.Node) {
	p.ObjectBase.ChildRemoved(child)
	p.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

// ForkPrivateIfNecessary returns the pattern itself if it has at most
// n users, and otherwise a private copy for the caller.
func (p *Pattern) ForkPrivateIfNecessary(n int) *Pattern {
	if fk, ok := forkPrivateIfNecessary(p, n).(*Pattern); ok {
		return fk
	}
	return p
}

func (p *Pattern) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = p.ObjectBase.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "patternUnits", p.Units.String(), p.hasUnits)
	setOrRemove(node, "patternContentUnits", p.ContentUnits.String(), p.hasContentUnits)
	setOrRemove(node, "patternTransform", p.PatternTransform.String(), p.hasTransform)
	p.X.WriteTo(node, "x")
	p.Y.WriteTo(node, "y")
	p.Width.WriteTo(node, "width")
	p.Height.WriteTo(node, "height")
	setOrRemove(node, "viewBox", p.ViewBox.String(), p.ViewBox.IsSet())
	WriteHref(node, p.Href)
	return node
}
