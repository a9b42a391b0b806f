// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
)

// Group is a g element, which groups items. Layers are groups with
// inkscape:groupmode="layer".
type Group struct {
	Item

	// Mode is inkscape:groupmode: "", "layer" or "group".
	Mode string
}

func (g *Group) Build(doc *Document, node *repr.Node) {
	g.Item.Build(doc, node)
	g.ReadAttr(attr.InkscapeGroupMode)
}

func (g *Group) Set(key attr.Attr, value *string) bool {
	if key != attr.InkscapeGroupMode {
		return g.Item.Set(key, value)
	}
	g.Mode = ""
	if value != nil {
		g.Mode = *value
	}
	g.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// IsLayer returns whether the group is a layer.
func (g *Group) IsLayer() bool { return g.Mode == "layer" }

func (g *Group) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = g.Item.Write(rdoc, node, flags)
	if node != nil && flags&WriteExt != 0 {
		setOrRemove(node, "inkscape:groupmode", g.Mode, g.Mode != "")
	}
	return node
}

func (g *Group) Show(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	return g.showChildren(dr, key, flags)
}

func (g *Group) Hide(key uint32) { g.hideChildren(key) }

func (g *Group) Bounds(t BBoxType, m math32.Matrix2) math32.Box2 {
	return g.childBounds(t, m)
}

func (g *Group) ChildAdded(child, prev *repr.Node) {
	g.Item.ChildAdded(child, prev)
	g.childShown(child)
	g.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

func (g *Group) ChildRemoved(child *repr.Node) {
	g.Item.ChildRemoved(child)
	g.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

func (g *Group) OrderChanged(child, oldPrev, newPrev *repr.Node) {
	g.Item.OrderChanged(child, oldPrev, newPrev)
	g.childMoved(child)
	g.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

// showChildren returns a new group node with the projections of the
// item children.
func (it *Item) showChildren(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	di := dr.NewItem(drawing.GroupItem)
	for _, c := range it.Children {
		if ci, ok := c.(Itemer); ok {
			if cdi := ci.AsItem().InvokeShow(dr, key, flags); cdi != nil {
				di.AppendChild(cdi)
			}
		}
	}
	return di
}

// hideChildren hides the projections of the item children.
func (it *Item) hideChildren(key uint32) {
	for _, h := range it.childHandles() {
		if ci, ok := it.doc.Resolve(h).(Itemer); ok {
			ci.AsItem().InvokeHide(key)
		}
	}
}

// childBounds returns the union of the bounds of the visible
// item children.
func (it *Item) childBounds(t BBoxType, m math32.Matrix2) math32.Box2 {
	b := math32.B2Empty()
	for _, c := range it.Children {
		ci, ok := c.(Itemer)
		if !ok {
			continue
		}
		cit := ci.AsItem()
		if cit.IsHidden() {
			continue
		}
		b = b.Union(cit.boundsOf(t, m.Mul(cit.Transform)))
	}
	return b
}

// viewIndex returns the index in the group node of view key for the
// projection of child: after the projections of its previous siblings.
func (it *Item) viewIndex(child Object, key uint32) int {
	n := 0
	for _, c := range it.Children {
		if c == child {
			break
		}
		if ci, ok := c.(Itemer); ok && ci.AsItem().View(key) != nil {
			n++
		}
	}
	return n
}

// childShown shows the new child of node in every view of the item.
func (it *Item) childShown(node *repr.Node) {
	ci, ok := it.ChildByNode(node).(Itemer)
	if !ok {
		return
	}
	for _, v := range it.views {
		if cdi := ci.AsItem().InvokeShow(v.Item.Drawing(), v.Key, v.Flags); cdi != nil {
			v.Item.InsertChild(cdi, it.viewIndex(ci, v.Key))
		}
	}
}

// childMoved moves the projections of the child of node to match
// its new position.
func (it *Item) childMoved(node *repr.Node) {
	ci, ok := it.ChildByNode(node).(Itemer)
	if !ok {
		return
	}
	for _, v := range it.views {
		if cv := ci.AsItem().View(v.Key); cv != nil {
			v.Item.MoveChild(cv.Item, it.viewIndex(ci, v.Key))
		}
	}
}

// Defs is the defs element, which holds resources that are not shown.
type Defs struct {
	ObjectBase
}

// Anchor is an a element: a group that links to href.
type Anchor struct {
	Group

	// Href is the link target.
	Href string

	// Target is the browsing context to open the link in.
	Target string
}

func (a *Anchor) Build(doc *Document, node *repr.Node) {
	a.Group.Build(doc, node)
	a.ReadAttr(attr.XlinkHref, attr.Href, attr.Target)
}

func (a *Anchor) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.XlinkHref, attr.Href:
		if value != nil {
			a.Href = *value
		} else if a.node.AttributePtr("href") == nil && a.node.AttributePtr("xlink:href") == nil {
			a.Href = ""
		}
	case attr.Target:
		a.Target = ""
		if value != nil {
			a.Target = *value
		}
	default:
		return a.Group.Set(key, value)
	}
	return true
}

func (a *Anchor) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = a.Group.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	WriteHref(node, a.Href)
	setOrRemove(node, "target", a.Target, a.Target != "")
	return node
}

// WriteHref writes href as href if the node has it, and as xlink:href
// otherwise.
func WriteHref(node *repr.Node, href string) {
	key := "xlink:href"
	if _, ok := node.Attribute("href"); ok {
		key = "href"
	}
	setOrRemove(node, key, href, href != "")
}

// Symbol is a symbol element: a group with its own viewport that is
// shown only through a use element.
type Symbol struct {
	Group

	// ViewBox is the viewBox attribute.
	ViewBox ViewBox

	c2p math32.Matrix2
}

func (s *Symbol) initObject(this Object, tag string) {
	s.Group.initObject(this, tag)
	s.ViewBox.PreserveAspectRatio.Defaults()
	s.c2p = math32.Identity2()
}

func (s *Symbol) Build(doc *Document, node *repr.Node) {
	s.Group.Build(doc, node)
	s.ReadAttr(attr.ViewBox, attr.PreserveAspectRatio)
}

func (s *Symbol) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.ViewBox:
		readViewBox(&s.ViewBox, value)
	case attr.PreserveAspectRatio:
		readAspect(&s.ViewBox.PreserveAspectRatio, value)
	default:
		return s.Group.Set(key, value)
	}
	s.RequestDisplayUpdate(ModifiedFlag | ViewportModifiedFlag)
	return true
}

func (s *Symbol) Show(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	if !s.cloned {
		return nil
	}
	return s.Group.Show(dr, key, flags)
}

func (s *Symbol) Update(ctx *UpdateContext, flags Flags) {
	s.layout(ctx)
	s.Group.Update(ctx, flags)
}

// layout computes the view box transform.
func (s *Symbol) layout(ctx *UpdateContext) {
	s.c2p = math32.Identity2()
	if s.ViewBox.IsSet() {
		vp := ctx.Viewport
		if u, ok := s.ParentObject().(*Use); ok && u.Width.IsSet && u.Height.IsSet {
			vp = math32.B2(0, 0, u.Width.Computed, u.Height.Computed)
		}
		s.c2p = s.ViewBox.Transform(vp)
	}
}

func (s *Symbol) ChildContext(ctx *UpdateContext) *UpdateContext {
	s.layout(ctx)
	c := s.Group.ChildContext(ctx)
	c.I2Doc = c.I2Doc.Mul(s.c2p)
	c.I2VP = math32.Identity2()
	if s.ViewBox.IsSet() {
		c.Viewport = math32.B2(s.ViewBox.Min.X, s.ViewBox.Min.Y, s.ViewBox.Min.X+s.ViewBox.Size.X, s.ViewBox.Min.Y+s.ViewBox.Size.Y)
	}
	return c
}

// ViewBoxTransform returns the transform of the viewBox into the
// viewport of the use that shows the symbol.
func (s *Symbol) ViewBoxTransform() math32.Matrix2 { return s.c2p }

func (s *Symbol) updateView(v *ItemView) {
	v.Item.Transform = s.Transform.Mul(s.c2p)
}

func (s *Symbol) Bounds(t BBoxType, m math32.Matrix2) math32.Box2 {
	return s.childBounds(t, m.Mul(s.c2p))
}

func (s *Symbol) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = s.Group.Write(rdoc, node, flags)
	if node != nil && s.ViewBox.IsSet() {
		node.SetAttribute("viewBox", s.ViewBox.String())
	}
	return node
}
