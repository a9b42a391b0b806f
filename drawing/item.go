// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawing

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/ppath"
	"cogentcore.org/canvas/style"
)

// ItemKinds are the kinds of [Item].
type ItemKinds int32

const (
	// GroupItem holds children.
	GroupItem ItemKinds = iota

	// ShapeItem draws a path.
	ShapeItem

	// TextItem draws text.
	TextItem

	// ImageItem draws an image.
	ImageItem

	// PatternItem is the content of a pattern paint server.
	PatternItem

	// GradientItem is a gradient paint server.
	GradientItem
)

func (k ItemKinds) String() string {
	switch k {
	case GroupItem:
		return "group"
	case ShapeItem:
		return "shape"
	case TextItem:
		return "text"
	case ImageItem:
		return "image"
	case PatternItem:
		return "pattern"
	case GradientItem:
		return "gradient"
	}
	return fmt.Sprintf("ItemKinds(%d)", int32(k))
}

// Roles are the ways an item is attached to its owner.
type Roles int32

const (
	// RoleNone is an item that is not attached.
	RoleNone Roles = iota

	// RoleChild is a child in the owner's list.
	RoleChild

	// RoleClip is the clip of the owner.
	RoleClip

	// RoleMask is the mask of the owner.
	RoleMask

	// RoleFill is the fill paint of the owner.
	RoleFill

	// RoleStroke is the stroke paint of the owner.
	RoleStroke
)

// GradientStop is a color stop of a [Gradient].
type GradientStop struct {
	Offset float32
	Color  color.RGBA
}

// Gradient is the paint of a gradient item, in the coordinates given
// by the item transform.
type Gradient struct {
	Radial bool

	// Start and End are the vector of a linear gradient.
	// For a radial gradient, Start is the center and End the focus.
	Start, End math32.Vector2

	// Radius and FocalRadius are the radii of a radial gradient.
	Radius, FocalRadius float32

	// Spread is the spreadMethod: pad, reflect or repeat.
	Spread string

	Stops []GradientStop
}

// Item is one node of the rendering tree. The state fields are set by
// the document item that owns the projection; every projection of one
// document item receives the same values.
type Item struct {
	Kind ItemKinds

	// Key is the display key of the projection, correlating the
	// sub-resources shown for it.
	Key uint32

	Transform math32.Matrix2
	Opacity   float32
	Visible   bool

	// Sensitive is false for locked items, which do not take events.
	Sensitive bool

	BlendMode style.BlendModes
	Isolation style.Isolations

	// Path is the geometry of a shape item, in item coordinates.
	Path ppath.Path

	// Style is a snapshot of the style of the document item, taken
	// when the item was last updated.
	Style *style.Style

	// Bounds is the bounding box of the item, in item coordinates.
	// For a pattern item it is the tile.
	Bounds math32.Box2

	// Gradient is the state of a gradient item.
	Gradient *Gradient

	// Data is the document item this projection belongs to.
	Data any

	// Updates counts the state pushes received, for diagnostics.
	Updates int

	drawing   *Drawing
	owner     *Item
	role      Roles
	children  []*Item
	clip      *Item
	mask      *Item
	fill      *Item
	stroke    *Item
	destroyed bool
}

// NewItem returns a new unattached item of the given kind.
func (d *Drawing) NewItem(kind ItemKinds) *Item {
	it := &Item{Kind: kind, Transform: math32.Identity2(), Opacity: 1, Visible: true, Sensitive: true, Bounds: math32.B2Empty(), drawing: d}
	d.created(it)
	return it
}

// Drawing returns the drawing the item belongs to.
func (it *Item) Drawing() *Drawing {
	return it.drawing
}

// Owner returns the item this one is attached to, and its role.
func (it *Item) Owner() (*Item, Roles) {
	return it.owner, it.role
}

// IsDestroyed returns whether [Item.Destroy] was called.
func (it *Item) IsDestroyed() bool {
	return it.destroyed
}

// Children returns a copy of the children.
func (it *Item) Children() []*Item {
	return slices.Clone(it.children)
}

// Clip returns the clip item, or nil.
func (it *Item) Clip() *Item { return it.clip }

// Mask returns the mask item, or nil.
func (it *Item) Mask() *Item { return it.mask }

// FillPattern returns the fill paint item, or nil.
func (it *Item) FillPattern() *Item { return it.fill }

// StrokePattern returns the stroke paint item, or nil.
func (it *Item) StrokePattern() *Item { return it.stroke }

func (it *Item) checkAttach(child *Item) {
	if child.drawing != it.drawing {
		panic("drawing: item from another drawing")
	}
	if child.owner != nil {
		panic("drawing: item is already attached")
	}
	if child.destroyed || it.destroyed {
		panic("drawing: attach of a destroyed item")
	}
}

// AppendChild adds child as the last child.
func (it *Item) AppendChild(child *Item) {
	it.InsertChild(child, len(it.children))
}

// InsertChild inserts child at the given index among the children.
func (it *Item) InsertChild(child *Item, idx int) {
	it.checkAttach(child)
	idx = min(max(idx, 0), len(it.children))
	it.children = slices.Insert(it.children, idx, child)
	child.owner = it
	child.role = RoleChild
}

// MoveChild moves an existing child to the given index.
func (it *Item) MoveChild(child *Item, idx int) {
	i := slices.Index(it.children, child)
	if i < 0 {
		return
	}
	it.children = slices.Delete(it.children, i, i+1)
	idx = min(max(idx, 0), len(it.children))
	it.children = slices.Insert(it.children, idx, child)
}

// slot returns the field holding the item attached with the role.
func (it *Item) slot(role Roles) **Item {
	switch role {
	case RoleClip:
		return &it.clip
	case RoleMask:
		return &it.mask
	case RoleFill:
		return &it.fill
	case RoleStroke:
		return &it.stroke
	}
	panic(fmt.Sprintf("drawing: no slot for role %d", role))
}

func (it *Item) setSlot(role Roles, sub *Item) {
	s := it.slot(role)
	if *s == sub {
		return
	}
	if old := *s; old != nil {
		old.owner = nil
		old.role = RoleNone
	}
	*s = nil
	if sub != nil {
		it.checkAttach(sub)
		sub.owner = it
		sub.role = role
		*s = sub
	}
}

// SetClip sets the clip item, detaching the previous one.
func (it *Item) SetClip(clip *Item) { it.setSlot(RoleClip, clip) }

// SetMask sets the mask item, detaching the previous one.
func (it *Item) SetMask(mask *Item) { it.setSlot(RoleMask, mask) }

// SetFillPattern sets the fill paint item, detaching the previous one.
func (it *Item) SetFillPattern(p *Item) { it.setSlot(RoleFill, p) }

// SetStrokePattern sets the stroke paint item, detaching the previous one.
func (it *Item) SetStrokePattern(p *Item) { it.setSlot(RoleStroke, p) }

// Unlink detaches the item from its owner.
func (it *Item) Unlink() {
	o := it.owner
	if o == nil {
		return
	}
	if it.role == RoleChild {
		if i := slices.Index(o.children, it); i >= 0 {
			o.children = slices.Delete(o.children, i, i+1)
		}
		it.owner = nil
		it.role = RoleNone
		return
	}
	o.setSlot(it.role, nil)
}

// Destroy detaches the item and destroys it with its children and its
// attached clip, mask and paint items. Destroying twice does nothing.
func (it *Item) Destroy() {
	if it.destroyed {
		return
	}
	it.Unlink()
	for _, sub := range []*Item{it.clip, it.mask, it.fill, it.stroke} {
		if sub != nil {
			sub.Destroy()
		}
	}
	for _, c := range slices.Clone(it.children) {
		c.Destroy()
	}
	it.destroyed = true
	it.drawing.destroyed(it)
}

// VisualBounds returns the bounds of the item and its children in the
// coordinates of its owner, intersected with the clip bounds.
func (it *Item) VisualBounds() math32.Box2 {
	b := it.Bounds
	for _, c := range it.children {
		b = b.Union(c.VisualBounds())
	}
	if it.clip != nil {
		b = b.Intersect(it.clip.VisualBounds())
	}
	return b.MulMatrix2(it.Transform)
}

func (it *Item) String() string {
	return fmt.Sprintf("%s:%d", it.Kind, it.Key)
}
