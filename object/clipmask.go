// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"slices"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
)

// Units are the coordinate systems of the units attributes of clip
// paths, masks, gradients, patterns and filters.
type Units int32

const (
	// UserSpaceOnUse is the user space of the referencing item.
	UserSpaceOnUse Units = iota

	// ObjectBoundingBox is the unit square mapped onto the bounding
	// box of the referencing item.
	ObjectBoundingBox
)

func (u Units) String() string {
	if u == ObjectBoundingBox {
		return "objectBoundingBox"
	}
	return "userSpaceOnUse"
}

// ReadUnits returns the units of an attribute value, or def for a nil
// or unknown value.
func ReadUnits(value *string, def Units) Units {
	if value == nil {
		return def
	}
	switch *value {
	case "userSpaceOnUse":
		return UserSpaceOnUse
	case "objectBoundingBox":
		return ObjectBoundingBox
	}
	return def
}

// bboxTransform maps the unit square onto bbox.
func bboxTransform(bbox math32.Box2) math32.Matrix2 {
	s := bbox.Size()
	return math32.Translate2D(bbox.Min.X, bbox.Min.Y).Mul(math32.Scale2D(s.X, s.Y))
}

// keyedView is a rendering node shown for one display key.
type keyedView struct {
	key  uint32
	item *drawing.Item
	bbox math32.Box2

	// content is the object whose children are shown in the view,
	// for a pattern that takes them from the pattern it links to.
	content *ObjectBase
}

// keyedViews are the projections of a resource, which is shown once
// for every item that uses it. A key can have several views: the fill
// and the stroke of an item share the paint key.
type keyedViews []*keyedView

func (kv *keyedViews) add(key uint32, di *drawing.Item, bbox math32.Box2) *keyedView {
	v := &keyedView{key: key, item: di, bbox: bbox}
	*kv = append(*kv, v)
	return v
}

// forKey returns the views of the key.
func (kv keyedViews) forKey(key uint32) []*keyedView {
	var vs []*keyedView
	for _, v := range kv {
		if v.key == key {
			vs = append(vs, v)
		}
	}
	return vs
}

// has returns whether the key has a view.
func (kv keyedViews) has(key uint32) bool {
	return slices.ContainsFunc(kv, func(v *keyedView) bool { return v.key == key })
}

// remove destroys the views of the key.
func (kv *keyedViews) remove(key uint32) {
	*kv = slices.DeleteFunc(*kv, func(v *keyedView) bool {
		if v.key != key {
			return false
		}
		v.item.Destroy()
		return true
	})
}

// clear destroys all views.
func (kv *keyedViews) clear() {
	for _, v := range *kv {
		v.item.Destroy()
	}
	*kv = nil
}

// keys returns the distinct keys, in order of first view.
func (kv keyedViews) keys() []uint32 {
	var ks []uint32
	for _, v := range kv {
		if !slices.Contains(ks, v.key) {
			ks = append(ks, v.key)
		}
	}
	return ks
}

// childViewIndex returns the index for the projection of child with
// the key in a node that holds the projections of the item children of
// ob: after those of its previous siblings.
func childViewIndex(ob *ObjectBase, child Object, key uint32) int {
	n := 0
	for _, c := range ob.Children {
		if c == child {
			break
		}
		if ci, ok := c.(Itemer); ok && ci.AsItem().View(key) != nil {
			n++
		}
	}
	return n
}

// showItemChildren appends the projections of the item children of ob
// with the key to di.
func showItemChildren(ob *ObjectBase, di *drawing.Item, key uint32) {
	dr := di.Drawing()
	for _, c := range ob.Children {
		if ci, ok := c.(Itemer); ok {
			if cdi := ci.AsItem().InvokeShow(dr, key, 0); cdi != nil {
				di.AppendChild(cdi)
			}
		}
	}
}

// hideItemChildren hides the projections of the item children of ob
// with the key.
func hideItemChildren(ob *ObjectBase, key uint32) {
	for _, h := range ob.childHandles() {
		if ci, ok := ob.doc.Resolve(h).(Itemer); ok {
			ci.AsItem().InvokeHide(key)
		}
	}
}

// clipBase is the shared part of clip paths and masks: a container of
// items shown once per key for the items that use it, with its content
// mapped to their bounding box for objectBoundingBox content units.
type clipBase struct {
	ObjectBase

	contentUnits Units
	views        keyedViews
}

// Show returns a new projection of the content for the key.
func (cb *clipBase) Show(dr *drawing.Drawing, key uint32) *drawing.Item {
	di := dr.NewItem(drawing.GroupItem)
	di.Data = cb.This
	di.Key = key
	showItemChildren(&cb.ObjectBase, di, key)
	cb.views.add(key, di, math32.B2Empty())
	return di
}

// Hide destroys the projection for the key.
func (cb *clipBase) Hide(key uint32) {
	hideItemChildren(&cb.ObjectBase, key)
	cb.views.remove(key)
}

// SetBBox sets the bounding box of the item that uses the projection
// of the key.
func (cb *clipBase) SetBBox(key uint32, bbox math32.Box2) {
	for _, v := range cb.views.forKey(key) {
		v.bbox = bbox
		cb.pushTransform(v)
	}
}

func (cb *clipBase) pushTransform(v *keyedView) {
	v.item.Transform = math32.Identity2()
	if cb.contentUnits == ObjectBoundingBox && !v.bbox.IsEmpty() {
		v.item.Transform = bboxTransform(v.bbox)
	}
	v.item.Updates++
}

// contentBounds returns the union of the bounds of the item children,
// in the user space of an item with the given bounding box.
func (cb *clipBase) contentBounds(bbox math32.Box2) math32.Box2 {
	m := math32.Identity2()
	if cb.contentUnits == ObjectBoundingBox {
		m = bboxTransform(bbox)
	}
	b := math32.B2Empty()
	for _, c := range cb.Children {
		if ci, ok := c.(Itemer); ok {
			it := ci.AsItem()
			b = b.Union(it.boundsOf(GeometricBBox, m.Mul(it.Transform)))
		}
	}
	return b
}

func (cb *clipBase) Update(ctx *UpdateContext, flags Flags) {
	if flags&(ModifiedFlag|ChildModifiedFlag) == 0 {
		return
	}
	for _, v := range cb.views {
		cb.pushTransform(v)
	}
}

func (cb *clipBase) ChildAdded(child, prev *repr.Node) {
	cb.ObjectBase.ChildAdded(child, prev)
	ci, ok := cb.ChildByNode(child).(Itemer)
	if ok {
		for _, v := range cb.views {
			if cdi := ci.AsItem().InvokeShow(v.item.Drawing(), v.key, 0); cdi != nil {
				v.item.InsertChild(cdi, childViewIndex(&cb.ObjectBase, ci, v.key))
			}
		}
	}
	cb.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

func (cb *clipBase) ChildRemoved(child *repr.Node) {
	cb.ObjectBase.ChildRemoved(child)
	cb.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

func (cb *clipBase) OrderChanged(child, oldPrev, newPrev *repr.Node) {
	cb.ObjectBase.OrderChanged(child, oldPrev, newPrev)
	if ci, ok := cb.ChildByNode(child).(Itemer); ok {
		for _, v := range cb.views {
			if cv := ci.AsItem().View(v.key); cv != nil {
				v.item.MoveChild(cv.Item, childViewIndex(&cb.ObjectBase, ci, v.key))
			}
		}
	}
	cb.RequestDisplayUpdate(ModifiedFlag | ChildModifiedFlag)
}

// ViewCount returns the number of projections.
func (cb *clipBase) ViewCount() int { return len(cb.views) }

func (cb *clipBase) release() {
	cb.ObjectBase.Release()
	cb.views.clear()
}

// ClipPath is a clipPath element. The items that use it show its
// content as their clip.
type ClipPath struct {
	clipBase
}

// Units returns clipPathUnits.
func (cp *ClipPath) Units() Units { return cp.contentUnits }

func (cp *ClipPath) Build(doc *Document, node *repr.Node) {
	cp.ObjectBase.Build(doc, node)
	cp.ReadAttr(attr.ClipPathUnits)
	doc.AddResource("clipPath", cp)
}

func (cp *ClipPath) Release() {
	cp.doc.RemoveResource("clipPath", cp)
	cp.release()
}

func (cp *ClipPath) Set(key attr.Attr, value *string) bool {
	if key != attr.ClipPathUnits {
		return cp.ObjectBase.Set(key, value)
	}
	cp.contentUnits = ReadUnits(value, UserSpaceOnUse)
	cp.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// ContentBounds returns the bounds of the clip for an item with the
// given bounding box.
func (cp *ClipPath) ContentBounds(bbox math32.Box2) math32.Box2 {
	return cp.contentBounds(bbox)
}

func (cp *ClipPath) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = cp.ObjectBase.Write(rdoc, node, flags)
	if node != nil {
		setOrRemove(node, "clipPathUnits", cp.contentUnits.String(), cp.contentUnits != UserSpaceOnUse)
	}
	return node
}

// Mask is a mask element. The items that use it show its content as
// their mask, within the mask region.
type Mask struct {
	clipBase

	// Units is maskUnits, the units of the region.
	Units Units

	// X, Y, Width and Height are the mask region.
	X, Y, Width, Height SVGLength
}

func (m *Mask) initObject(this Object, tag string) {
	m.clipBase.initObject(this, tag)
	m.Units = ObjectBoundingBox
}

// ContentUnits returns maskContentUnits.
func (m *Mask) ContentUnits() Units { return m.contentUnits }

func (m *Mask) Build(doc *Document, node *repr.Node) {
	m.ObjectBase.Build(doc, node)
	m.ReadAttr(attr.MaskUnits, attr.MaskContentUnits, attr.X, attr.Y, attr.Width, attr.Height)
	doc.AddResource("mask", m)
}

func (m *Mask) Release() {
	m.doc.RemoveResource("mask", m)
	m.release()
}

func (m *Mask) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.MaskUnits:
		m.Units = ReadUnits(value, ObjectBoundingBox)
	case attr.MaskContentUnits:
		m.contentUnits = ReadUnits(value, UserSpaceOnUse)
	case attr.X:
		ReadRegionLength(&m.X, value, -10)
	case attr.Y:
		ReadRegionLength(&m.Y, value, -10)
	case attr.Width:
		ReadRegionLength(&m.Width, value, 120)
	case attr.Height:
		ReadRegionLength(&m.Height, value, 120)
	default:
		return m.ObjectBase.Set(key, value)
	}
	m.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// ReadRegionLength reads a length of a region, with a default in
// percent of the bounding box.
func ReadRegionLength(l *SVGLength, value *string, defPercent float32) {
	l.Read(value, 0)
	if !l.IsSet {
		l.Value = defPercent
		l.Unit = "%"
	}
}

// regionLength resolves a region length against the bounding box
// extent for objectBoundingBox units.
func regionLength(l SVGLength, units Units, extent float32) float32 {
	if units == ObjectBoundingBox {
		if l.Unit == "%" {
			return l.Value / 100 * extent
		}
		return l.Value * extent
	}
	return l.Px(0, extent)
}

// Region returns the mask region for an item with the given bounding
// box, in the user space of the item.
func (m *Mask) Region(bbox math32.Box2) math32.Box2 {
	return UnitsRegion(m.X, m.Y, m.Width, m.Height, m.Units, bbox)
}

// UnitsRegion returns the region given by x, y, width and height in
// the given units, for an item with the given bounding box.
func UnitsRegion(x, y, w, h SVGLength, units Units, bbox math32.Box2) math32.Box2 {
	s := bbox.Size()
	var o math32.Vector2
	if units == ObjectBoundingBox {
		o = bbox.Min
	}
	x0 := o.X + regionLength(x, units, s.X)
	y0 := o.Y + regionLength(y, units, s.Y)
	return math32.B2(x0, y0, x0+regionLength(w, units, s.X), y0+regionLength(h, units, s.Y))
}

// SetBBox sets the bounding box of the item that uses the projection
// of the key, and the region of the projection.
func (m *Mask) SetBBox(key uint32, bbox math32.Box2) {
	m.clipBase.SetBBox(key, bbox)
	for _, v := range m.views.forKey(key) {
		v.item.Bounds = m.Region(bbox)
	}
}

func (m *Mask) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = m.ObjectBase.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "maskUnits", m.Units.String(), m.Units != ObjectBoundingBox)
	setOrRemove(node, "maskContentUnits", m.contentUnits.String(), m.contentUnits != UserSpaceOnUse)
	m.X.WriteTo(node, "x")
	m.Y.WriteTo(node, "y")
	m.Width.WriteTo(node, "width")
	m.Height.WriteTo(node, "height")
	return node
}
