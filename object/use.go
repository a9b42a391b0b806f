// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
)

// Use is a use element. It shows a clone of the item it references:
// an object tree built from the nodes of the original, marked as
// cloned, that is its only child.
type Use struct {
	Item

	X, Y, Width, Height SVGLength

	// Href is the reference as written, such as #rect1.
	Href string

	ref   *UseRef
	clone Handle
}

func (u *Use) Build(doc *Document, node *repr.Node) {
	u.ref = NewRef[Itemer](u.this())
	u.ref.Changed.Connect(u.hrefChanged)
	u.Item.Build(doc, node)
	u.ReadAttr(attr.X, attr.Y, attr.Width, attr.Height, attr.XlinkHref, attr.Href)
}

func (u *Use) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.X:
		u.X.Read(value, 0)
	case attr.Y:
		u.Y.Read(value, 0)
	case attr.Width:
		readViewportLength(&u.Width, value)
	case attr.Height:
		readViewportLength(&u.Height, value)
	case attr.XlinkHref, attr.Href:
		href := ""
		if value != nil {
			href = *value
		} else if v := u.node.AttributePtr("href"); v != nil {
			href = *v
		} else if v := u.node.AttributePtr("xlink:href"); v != nil {
			href = *v
		}
		u.Href = href
		if u.ref != nil {
			u.ref.TryLink(href)
		}
	default:
		return u.Item.Set(key, value)
	}
	u.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// Original returns the referenced item, or nil.
func (u *Use) Original() Itemer {
	return u.ref.Object()
}

// Clone returns the root of the clone, or nil.
func (u *Use) Clone() Itemer {
	c, _ := u.doc.Resolve(u.clone).(Itemer)
	return c
}

// UltimateOriginal follows chains of use elements to the first
// referenced item that is not a use.
func (u *Use) UltimateOriginal() Itemer {
	var o Itemer = u
	for range maxUpdatePasses {
		uo, ok := o.(*Use)
		if !ok {
			return o
		}
		o = uo.Original()
		if o == nil {
			return nil
		}
	}
	return nil
}

// hrefChanged rebuilds the clone for a new target.
func (u *Use) hrefChanged(ch TargetChange) {
	if c := u.doc.Resolve(u.clone); c != nil {
		u.doc.release(c)
	}
	u.clone = Handle{}
	if u.released || ch.New == nil {
		return
	}
	c := u.doc.buildObject(u.this(), ch.New.AsObject().node, true)
	if c == nil {
		return
	}
	u.clone = c.AsObject().handle
	if ci, ok := c.(Itemer); ok {
		for _, v := range u.views {
			if cdi := ci.AsItem().InvokeShow(v.Item.Drawing(), v.Key, v.Flags); cdi != nil {
				v.Item.AppendChild(cdi)
			}
		}
	}
	u.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

// offset returns the translation by x and y.
func (u *Use) offset() math32.Matrix2 {
	return math32.Translate2D(u.X.Computed, u.Y.Computed)
}

// ViewBoxTransform returns the translation by x and y.
func (u *Use) ViewBoxTransform() math32.Matrix2 { return u.offset() }

func (u *Use) Update(ctx *UpdateContext, flags Flags) {
	vs := ctx.Viewport.Size()
	u.X.Update(0, vs.X)
	u.Y.Update(0, vs.Y)
	u.Width.Update(0, vs.X)
	u.Height.Update(0, vs.Y)
	u.Item.Update(ctx, flags)
}

func (u *Use) ChildContext(ctx *UpdateContext) *UpdateContext {
	c := u.Item.ChildContext(ctx)
	c.I2Doc = c.I2Doc.Mul(u.offset())
	c.I2VP = c.I2VP.Mul(u.offset())
	return c
}

func (u *Use) Show(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	return u.showChildren(dr, key, flags)
}

func (u *Use) Hide(key uint32) { u.hideChildren(key) }

func (u *Use) updateView(v *ItemView) {
	v.Item.Transform = u.Transform.Mul(u.offset())
}

func (u *Use) Bounds(t BBoxType, m math32.Matrix2) math32.Box2 {
	return u.childBounds(t, m.Mul(u.offset()))
}

// ChildAdded ignores the children of the node: the only child of a
// use is its clone.
func (u *Use) ChildAdded(child, prev *repr.Node) {}

func (u *Use) ChildRemoved(child *repr.Node) {}

func (u *Use) Release() {
	u.ref.Unlink()
	u.Item.Release()
}

func (u *Use) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = u.Item.Write(rdoc, node, flags|WriteNoChildren)
	if node == nil {
		return nil
	}
	u.X.WriteTo(node, "x")
	u.Y.WriteTo(node, "y")
	u.Width.WriteTo(node, "width")
	u.Height.WriteTo(node, "height")
	WriteHref(node, u.Href)
	return node
}
