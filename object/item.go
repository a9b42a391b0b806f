// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"log/slog"
	"slices"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
	"cogentcore.org/canvas/tree"
)

// BBoxType selects the kind of bounding box.
type BBoxType int32

const (
	// GeometricBBox is the bounding box of the geometry alone.
	GeometricBBox BBoxType = iota

	// VisualBBox includes the stroke and filter effects.
	VisualBBox
)

// ItemView is one projection of an item into a drawing.
type ItemView struct {

	// Flags are the display flags given to [Item.InvokeShow].
	Flags uint32

	// Key is the key of the view the item is shown in.
	Key uint32

	// Item is the rendering node.
	Item *drawing.Item
}

// Itemer is implemented by all renderable objects,
// which embed [Item].
type Itemer interface {
	Object

	// AsItem returns the [Item] of the object.
	AsItem() *Item
}

// Showable is implemented by kinds that have a projection:
// Show creates the rendering node for one view.
type Showable interface {
	Show(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item
}

// hider is implemented by kinds that tear down parts of their
// projection themselves, such as the children of a group.
type hider interface {
	Hide(key uint32)
}

// Bounder is implemented by kinds with a bounding box: Bounds returns
// the bounds of the geometry transformed by m.
type Bounder interface {
	Bounds(t BBoxType, m math32.Matrix2) math32.Box2
}

// viewUpdater is implemented by kinds that push more state than
// [Item] to their projections, such as the path of a shape.
type viewUpdater interface {
	updateView(v *ItemView)
}

// Transformable is implemented by kinds that can absorb a transform
// into their geometry. ApplyTransform returns what remains to be
// set as the transform attribute.
type Transformable interface {
	ApplyTransform(m math32.Matrix2) math32.Matrix2
}

// FilterObject is implemented by filter elements.
type FilterObject interface {
	Object

	// FilterRegion returns the region the filter draws in, for an
	// item with the given bounding box.
	FilterRegion(bbox math32.Box2) math32.Box2
}

// Item is the base of all renderable objects: it adds the transform,
// the clip, mask and paint references, and the projections into
// drawings.
type Item struct {
	ObjectBase

	// Transform is the transform attribute.
	Transform math32.Matrix2

	// Sensitive is false when the item is locked with
	// sodipodi:insensitive.
	Sensitive bool

	// HighlightColor is inkscape:highlight-color, or "" for the default.
	HighlightColor string

	// AvoidConnectors is inkscape:connector-avoid.
	AvoidConnectors bool

	centerX, centerY       float32
	hasCenterX, hasCenterY bool

	clipRef   *ClipPathRef
	maskRef   *MaskRef
	fillRef   *PaintServerRef
	strokeRef *PaintServerRef
	filterRef *FilterRef

	views []*ItemView

	bbox      math32.Box2
	bboxValid bool
	i2doc     math32.Matrix2
}

func (it *Item) AsItem() *Item { return it }

func (it *Item) initObject(this Object, tag string) {
	it.ObjectBase.initObject(this, tag)
	it.Transform = math32.Identity2()
	it.i2doc = math32.Identity2()
	it.Sensitive = true
}

func (it *Item) Build(doc *Document, node *repr.Node) {
	it.ObjectBase.Build(doc, node)
	it.ReadAttr(attr.Transform, attr.SodipodiInsensitive, attr.InkscapeTransformCenterX,
		attr.InkscapeTransformCenterY, attr.InkscapeHighlightColor, attr.InkscapeConnectorAvoid)
}

func (it *Item) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.Transform:
		m := math32.Identity2()
		if value != nil {
			if err := m.SetString(*value); err != nil {
				slog.Debug("object: bad transform", "object", it.String(), "err", err)
			}
		}
		it.Transform = m
		it.RequestDisplayUpdate(ModifiedFlag)
	case attr.SodipodiInsensitive:
		it.Sensitive = value == nil
		it.RequestDisplayUpdate(ModifiedFlag)
	case attr.InkscapeTransformCenterX:
		it.centerX, it.hasCenterX = parseFloat(value)
	case attr.InkscapeTransformCenterY:
		it.centerY, it.hasCenterY = parseFloat(value)
	case attr.InkscapeHighlightColor:
		it.HighlightColor = ""
		if value != nil {
			it.HighlightColor = *value
		}
		it.RequestDisplayUpdate(ModifiedFlag)
	case attr.InkscapeConnectorAvoid:
		it.AvoidConnectors = value != nil && *value == "true"
	default:
		return it.ObjectBase.Set(key, value)
	}
	return true
}

// styleChanged links the references named by the style.
func (it *Item) styleChanged() {
	if it.doc == nil || it.released {
		return
	}
	this := it.this()
	s := it.style
	syncRef(&it.clipRef, this, string(s.ClipPath.Value), it.clipChanged)
	syncRef(&it.maskRef, this, string(s.Mask.Value), it.maskChanged)
	fill, stroke := "", ""
	if s.Fill.Value.IsPaintServer() {
		fill = s.Fill.Value.URL
	}
	if s.Stroke.Value.IsPaintServer() {
		stroke = s.Stroke.Value.URL
	}
	syncRef(&it.fillRef, this, fill, it.paintChanged)
	syncRef(&it.strokeRef, this, stroke, it.paintChanged)
	syncRef(&it.filterRef, this, string(s.Filter.Value), it.filterChanged)
}

// ClipPath returns the clip path, or nil.
func (it *Item) ClipPath() *ClipPath {
	if it.clipRef == nil {
		return nil
	}
	return it.clipRef.Object()
}

// Mask returns the mask, or nil.
func (it *Item) Mask() *Mask {
	if it.maskRef == nil {
		return nil
	}
	return it.maskRef.Object()
}

// FillServer returns the paint server of the fill, or nil.
func (it *Item) FillServer() PaintServer {
	if it.fillRef == nil {
		return nil
	}
	return it.fillRef.Object()
}

// StrokeServer returns the paint server of the stroke, or nil.
func (it *Item) StrokeServer() PaintServer {
	if it.strokeRef == nil {
		return nil
	}
	return it.strokeRef.Object()
}

// Filter returns the filter, or nil.
func (it *Item) Filter() FilterObject {
	if it.filterRef == nil {
		return nil
	}
	return it.filterRef.Object()
}

// TransformCenter returns the inkscape:transform-center offset,
// and whether it is set.
func (it *Item) TransformCenter() (math32.Vector2, bool) {
	return math32.Vec2(it.centerX, it.centerY), it.hasCenterX || it.hasCenterY
}

// Views returns a snapshot of the projections, newest first.
func (it *Item) Views() []*ItemView {
	return slices.Clone(it.views)
}

// View returns the projection for the view key, or nil.
func (it *Item) View(key uint32) *ItemView {
	for _, v := range it.views {
		if v.Key == key {
			return v
		}
	}
	return nil
}

// EnsureKey returns the key base of the rendering node, allocating
// [drawing.KeysPerItem] keys on first need. Clip, mask and paint
// projections for the node are shown with the base plus their offset.
func EnsureKey(di *drawing.Item) uint32 {
	if di.Key == 0 {
		di.Key = drawing.NewKeys(drawing.KeysPerItem)
	}
	return di.Key
}

// InvokeShow creates the projection of the item for a view,
// with its clip, mask and paint, and returns its rendering node.
// It returns nil for kinds that are not shown.
func (it *Item) InvokeShow(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	sh, ok := it.This.(Showable)
	if !ok || it.released {
		return nil
	}
	di := sh.Show(dr, key, flags)
	if di == nil {
		return nil
	}
	di.Data = it.This
	v := &ItemView{Flags: flags, Key: key, Item: di}
	it.views = slices.Insert(it.views, 0, v)
	if cp := it.ClipPath(); cp != nil {
		k := EnsureKey(di) + drawing.KeyClip
		di.SetClip(cp.Show(dr, k))
		cp.SetBBox(k, it.GeometricBounds())
	}
	if m := it.Mask(); m != nil {
		k := EnsureKey(di) + drawing.KeyMask
		di.SetMask(m.Show(dr, k))
		m.SetBBox(k, it.GeometricBounds())
	}
	it.showPaint(v)
	it.pushState(v)
	return di
}

// InvokeHide removes the projection for the view key, hiding its clip,
// mask and paint first.
func (it *Item) InvokeHide(key uint32) {
	if h, ok := it.This.(hider); ok {
		h.Hide(key)
	}
	i := slices.IndexFunc(it.views, func(v *ItemView) bool { return v.Key == key })
	if i < 0 {
		return
	}
	v := it.views[i]
	if k := v.Item.Key; k != 0 {
		if cp := it.ClipPath(); cp != nil {
			cp.Hide(k + drawing.KeyClip)
		}
		if m := it.Mask(); m != nil {
			m.Hide(k + drawing.KeyMask)
		}
		it.hidePaint(v)
	}
	v.Item.Destroy()
	it.views = slices.Delete(it.views, i, i+1)
}

// hidePaint hides the fill and stroke paint of a view.
func (it *Item) hidePaint(v *ItemView) {
	if v.Item.Key == 0 {
		return
	}
	k := v.Item.Key + drawing.KeyPaint
	if ps := it.FillServer(); ps != nil {
		ps.HidePaint(k)
	}
	if ps := it.StrokeServer(); ps != nil {
		ps.HidePaint(k)
	}
}

// showPaint shows the fill and stroke paint of a view again. They
// share one key, so both are hidden and shown together.
func (it *Item) showPaint(v *ItemView) {
	fill, stroke := it.FillServer(), it.StrokeServer()
	if fill == nil && stroke == nil {
		return
	}
	it.hidePaint(v)
	di := v.Item
	k := EnsureKey(di) + drawing.KeyPaint
	bbox := it.GeometricBounds()
	if fill != nil {
		di.SetFillPattern(fill.ShowPaint(di.Drawing(), k, bbox))
	}
	if stroke != nil {
		di.SetStrokePattern(stroke.ShowPaint(di.Drawing(), k, bbox))
	}
}

func (it *Item) clipChanged(ch TargetChange) {
	for _, v := range it.views {
		if old, ok := ch.Old.(*ClipPath); ok && v.Item.Key != 0 {
			old.Hide(v.Item.Key + drawing.KeyClip)
		}
		if cp, ok := ch.New.(*ClipPath); ok {
			k := EnsureKey(v.Item) + drawing.KeyClip
			v.Item.SetClip(cp.Show(v.Item.Drawing(), k))
			cp.SetBBox(k, it.GeometricBounds())
		}
	}
	it.RequestDisplayUpdate(ModifiedFlag)
}

func (it *Item) maskChanged(ch TargetChange) {
	for _, v := range it.views {
		if old, ok := ch.Old.(*Mask); ok && v.Item.Key != 0 {
			old.Hide(v.Item.Key + drawing.KeyMask)
		}
		if m, ok := ch.New.(*Mask); ok {
			k := EnsureKey(v.Item) + drawing.KeyMask
			v.Item.SetMask(m.Show(v.Item.Drawing(), k))
			m.SetBBox(k, it.GeometricBounds())
		}
	}
	it.RequestDisplayUpdate(ModifiedFlag)
}

func (it *Item) paintChanged(ch TargetChange) {
	for _, v := range it.views {
		if old, ok := ch.Old.(PaintServer); ok && v.Item.Key != 0 {
			old.HidePaint(v.Item.Key + drawing.KeyPaint)
		}
		it.showPaint(v)
	}
	it.RequestDisplayUpdate(ModifiedFlag)
}

func (it *Item) filterChanged(ch TargetChange) {
	it.RequestDisplayUpdate(ModifiedFlag)
}

// pushState sets the state of one projection from the item.
func (it *Item) pushState(v *ItemView) {
	di := v.Item
	s := it.style
	di.Transform = it.Transform
	di.Opacity = s.Opacity.Value
	di.Visible = s.Visible()
	di.Sensitive = it.Sensitive
	di.BlendMode = s.MixBlendMode.Value
	di.Isolation = s.Isolation.Value
	di.Style = s.Clone()
	di.Bounds = it.GeometricBounds()
	if vu, ok := it.This.(viewUpdater); ok {
		vu.updateView(v)
	}
	di.Updates++
}

func (it *Item) Update(ctx *UpdateContext, flags Flags) {
	it.i2doc = ctx.I2Doc.Mul(it.Transform)
	if flags&(ModifiedFlag|ChildModifiedFlag|ParentModifiedFlag|StyleModifiedFlag|ViewportModifiedFlag) == 0 {
		return
	}
	bbox := it.GeometricBounds()
	for _, v := range it.views {
		if k := v.Item.Key; k != 0 {
			if cp := it.ClipPath(); cp != nil {
				cp.SetBBox(k+drawing.KeyClip, bbox)
			}
			if m := it.Mask(); m != nil {
				m.SetBBox(k+drawing.KeyMask, bbox)
			}
		}
		it.pushState(v)
	}
}

// ChildContext adds the transform of the item to the context.
func (it *Item) ChildContext(ctx *UpdateContext) *UpdateContext {
	c := *ctx
	c.I2Doc = ctx.I2Doc.Mul(it.Transform)
	c.I2VP = ctx.I2VP.Mul(it.Transform)
	return &c
}

func (it *Item) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = it.ObjectBase.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "transform", it.Transform.String(), !it.Transform.IsIdentity())
	if flags&WriteExt != 0 {
		setOrRemove(node, "sodipodi:insensitive", "true", !it.Sensitive)
		setOrRemove(node, "inkscape:transform-center-x", math32.FormatFloat(it.centerX), it.hasCenterX)
		setOrRemove(node, "inkscape:transform-center-y", math32.FormatFloat(it.centerY), it.hasCenterY)
		setOrRemove(node, "inkscape:highlight-color", it.HighlightColor, it.HighlightColor != "")
		setOrRemove(node, "inkscape:connector-avoid", "true", it.AvoidConnectors)
	}
	return node
}

// Release unlinks the clip and mask, which hides their projections,
// releases the object, hides the paint, and destroys the projections.
func (it *Item) Release() {
	unlinkRef(it.clipRef)
	unlinkRef(it.maskRef)
	it.ObjectBase.Release()
	unlinkRef(it.fillRef)
	unlinkRef(it.strokeRef)
	unlinkRef(it.filterRef)
	for _, v := range it.views {
		v.Item.Destroy()
	}
	it.views = nil
}

// boundsOf returns the bounds of the kind, or an empty box.
func (it *Item) boundsOf(t BBoxType, m math32.Matrix2) math32.Box2 {
	if b, ok := it.This.(Bounder); ok {
		return b.Bounds(t, m)
	}
	return math32.B2Empty()
}

// GeometricBounds returns the geometric bounds in item coordinates,
// cached until the item or a descendant changes.
func (it *Item) GeometricBounds() math32.Box2 {
	if !it.bboxValid {
		it.bbox = it.boundsOf(GeometricBBox, math32.Identity2())
		it.bboxValid = true
	}
	return it.bbox
}

// VisualBounds returns the visual bounds in item coordinates,
// grown to the filter region and cut to the clip.
func (it *Item) VisualBounds() math32.Box2 {
	b := it.boundsOf(VisualBBox, math32.Identity2())
	if f := it.Filter(); f != nil {
		b = f.FilterRegion(b)
	}
	if cp := it.ClipPath(); cp != nil {
		b = b.Intersect(cp.ContentBounds(it.GeometricBounds()))
	}
	return b
}

// DocumentBounds returns the bounds in document coordinates.
func (it *Item) DocumentBounds(t BBoxType) math32.Box2 {
	return it.boundsOf(t, it.I2Doc())
}

// I2Doc returns the transform from item to document coordinates,
// the product of the transforms of the item and its ancestors.
func (it *Item) I2Doc() math32.Matrix2 {
	m := it.Transform
	for p := it.ParentObject(); p != nil; p = p.AsObject().ParentObject() {
		pi, ok := p.(Itemer)
		if !ok {
			break
		}
		if _, root := p.(*Root); root {
			break
		}
		m = pi.AsItem().Transform.Mul(m)
	}
	return m
}

// SetTransform sets the transform and schedules an update. The
// attribute is not written; see [Item.DoWriteTransform].
func (it *Item) SetTransform(m math32.Matrix2) {
	it.Transform = m
	it.RequestDisplayUpdate(ModifiedFlag)
}

// DoWriteTransform applies m to the item, into its geometry for kinds
// that can absorb it, and writes the result to the node.
func (it *Item) DoWriteTransform(m math32.Matrix2) {
	if t, ok := it.This.(Transformable); ok {
		m = t.ApplyTransform(m)
	}
	it.SetTransform(m)
	it.UpdateRepr(0)
}

// IsHidden returns whether the style hides the item.
func (it *Item) IsHidden() bool {
	return !it.style.Visible()
}

// IsLocked returns whether the item or an ancestor is insensitive.
func (it *Item) IsLocked() bool {
	locked := false
	it.WalkUp(func(n tree.Node) bool {
		if i, ok := n.(Itemer); ok && !i.AsItem().Sensitive {
			locked = true
			return tree.Break
		}
		return tree.Continue
	})
	return locked
}

// SetLocked sets sodipodi:insensitive on the node.
func (it *Item) SetLocked(locked bool) {
	if it.node == nil {
		return
	}
	setOrRemove(it.node, "sodipodi:insensitive", "true", locked)
}
