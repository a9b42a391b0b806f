// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"log/slog"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
)

// Root is the svg root element: the outermost viewport.
type Root struct {
	Group

	// Version is the SVG version attribute.
	Version string

	// InkscapeVersion is the inkscape:version of the editor that
	// last saved the document.
	InkscapeVersion string

	X, Y, Width, Height SVGLength

	// ViewBox is the viewBox attribute, with preserveAspectRatio.
	ViewBox ViewBox

	parSet   bool
	viewport math32.Box2
	c2p      math32.Matrix2
}

func (r *Root) initObject(this Object, tag string) {
	r.Group.initObject(this, tag)
	r.ViewBox.PreserveAspectRatio.Defaults()
	r.c2p = math32.Identity2()
}

func (r *Root) Build(doc *Document, node *repr.Node) {
	r.Group.Build(doc, node)
	r.ReadAttr(attr.Version, attr.InkscapeVersion, attr.X, attr.Y, attr.Width, attr.Height,
		attr.ViewBox, attr.PreserveAspectRatio)
}

func (r *Root) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.Version:
		r.Version = ""
		if value != nil {
			r.Version = *value
		}
		return true
	case attr.InkscapeVersion:
		r.InkscapeVersion = ""
		if value != nil {
			r.InkscapeVersion = *value
		}
		return true
	case attr.X:
		r.X.Read(value, 0)
	case attr.Y:
		r.Y.Read(value, 0)
	case attr.Width:
		readViewportLength(&r.Width, value)
	case attr.Height:
		readViewportLength(&r.Height, value)
	case attr.ViewBox:
		readViewBox(&r.ViewBox, value)
	case attr.PreserveAspectRatio:
		r.parSet = value != nil
		readAspect(&r.ViewBox.PreserveAspectRatio, value)
	default:
		return r.Group.Set(key, value)
	}
	r.RequestDisplayUpdate(ModifiedFlag | ViewportModifiedFlag)
	return true
}

// readViewportLength reads a width or height, which defaults to 100%.
func readViewportLength(l *SVGLength, value *string) {
	l.Read(value, 100)
	if !l.IsSet {
		l.Unit = "%"
	}
}

func readViewBox(vb *ViewBox, value *string) {
	vb.Min = math32.Vector2{}
	vb.Size = math32.Vector2{}
	if value == nil {
		return
	}
	if err := vb.SetString(*value); err != nil {
		slog.Debug("object: bad viewBox", "err", err)
		vb.Size = math32.Vector2{}
	}
}

func readAspect(p *PreserveAspectRatio, value *string) {
	p.Defaults()
	if value == nil {
		return
	}
	if err := p.SetString(*value); err != nil {
		slog.Debug("object: bad preserveAspectRatio", "err", err)
	}
}

// documentViewport returns the viewport the root is laid out in:
// its own size in absolute units, or else the size of the view box.
func (r *Root) documentViewport() math32.Box2 {
	w, h := float32(100), float32(100)
	if r.ViewBox.IsSet() {
		w, h = r.ViewBox.Size.X, r.ViewBox.Size.Y
	}
	if r.Width.IsSet && r.Width.Unit != "%" {
		w = r.Width.Px(0, 0)
	}
	if r.Height.IsSet && r.Height.Unit != "%" {
		h = r.Height.Px(0, 0)
	}
	return math32.B2(0, 0, w, h)
}

// Viewport returns the viewport computed by the last update.
func (r *Root) Viewport() math32.Box2 { return r.viewport }

// ViewBoxTransform returns the transform from user coordinates to
// viewport coordinates computed by the last update.
func (r *Root) ViewBoxTransform() math32.Matrix2 { return r.c2p }

func (r *Root) Update(ctx *UpdateContext, flags Flags) {
	r.layout(ctx)
	r.Group.Update(ctx, flags)
}

// layout computes the viewport and the view box transform.
func (r *Root) layout(ctx *UpdateContext) {
	vs := ctx.Viewport.Size()
	r.X.Update(0, vs.X)
	r.Y.Update(0, vs.Y)
	r.Width.Update(0, vs.X)
	r.Height.Update(0, vs.Y)
	w, h := r.Width.Computed, r.Height.Computed
	if !r.Width.IsSet {
		w = vs.X
	}
	if !r.Height.IsSet {
		h = vs.Y
	}
	r.viewport = math32.B2(r.X.Computed, r.Y.Computed, r.X.Computed+w, r.Y.Computed+h)
	r.c2p = r.ViewBox.Transform(r.viewport)
}

func (r *Root) ChildContext(ctx *UpdateContext) *UpdateContext {
	r.layout(ctx)
	c := r.Group.ChildContext(ctx)
	c.I2Doc = c.I2Doc.Mul(r.c2p)
	c.I2VP = math32.Identity2()
	if r.ViewBox.IsSet() {
		c.Viewport = math32.B2(r.ViewBox.Min.X, r.ViewBox.Min.Y, r.ViewBox.Min.X+r.ViewBox.Size.X, r.ViewBox.Min.Y+r.ViewBox.Size.Y)
	} else {
		sz := r.viewport.Size()
		c.Viewport = math32.B2(0, 0, sz.X, sz.Y)
	}
	return c
}

func (r *Root) Show(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	return r.showChildren(dr, key, flags)
}

func (r *Root) updateView(v *ItemView) {
	v.Item.Transform = r.Transform.Mul(r.c2p)
}

func (r *Root) Bounds(t BBoxType, m math32.Matrix2) math32.Box2 {
	return r.childBounds(t, m)
}

func (r *Root) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = r.Group.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "version", r.Version, r.Version != "")
	if flags&WriteExt != 0 {
		setOrRemove(node, "inkscape:version", r.InkscapeVersion, r.InkscapeVersion != "")
	}
	r.X.WriteTo(node, "x")
	r.Y.WriteTo(node, "y")
	r.Width.WriteTo(node, "width")
	r.Height.WriteTo(node, "height")
	setOrRemove(node, "viewBox", r.ViewBox.String(), r.ViewBox.IsSet())
	setOrRemove(node, "preserveAspectRatio", r.ViewBox.PreserveAspectRatio.String(), r.parSet)
	return node
}
