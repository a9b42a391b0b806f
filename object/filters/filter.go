// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filters provides the filter element and its primitives,
// registered into the object factory when the package is imported.
package filters

import (
	"fmt"
	"slices"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/object"
	"cogentcore.org/canvas/repr"
)

// Input is a resolved in or in2 of a primitive: one of the standard
// inputs, or the index of the primitive whose result is used.
type Input int

const (
	// InputNotSet is an in that names a result no earlier primitive
	// has. It is not rendered.
	InputNotSet Input = -1 - iota
	InputSourceGraphic
	InputSourceAlpha
	InputBackgroundImage
	InputBackgroundAlpha
	InputFillPaint
	InputStrokePaint
)

var inputNames = map[string]Input{
	"SourceGraphic":   InputSourceGraphic,
	"SourceAlpha":     InputSourceAlpha,
	"BackgroundImage": InputBackgroundImage,
	"BackgroundAlpha": InputBackgroundAlpha,
	"FillPaint":       InputFillPaint,
	"StrokePaint":     InputStrokePaint,
}

func (in Input) String() string {
	if in >= 0 {
		return fmt.Sprintf("result %d", int(in))
	}
	if in == InputNotSet {
		return "not set"
	}
	for name, v := range inputNames {
		if v == in {
			return name
		}
	}
	return fmt.Sprintf("Input(%d)", int(in))
}

// Filter is a filter element: a list of primitives applied to the
// items that reference it, within the filter region.
type Filter struct {
	object.ObjectBase

	// Units is filterUnits, the units of the region.
	Units object.Units

	// PrimitiveUnits are the units of the subregions of the primitives.
	PrimitiveUnits object.Units

	// X, Y, Width and Height are the filter region.
	X, Y, Width, Height object.SVGLength

	// AutoRegion is inkscape:auto-region: the region is computed
	// from the items that use the filter.
	AutoRegion bool

	// results maps result names to the indexes of the primitives
	// that set them, in order. It is nil when it needs to be built.
	results map[string][]int
}

func (f *Filter) Defaults() {
	f.Units = object.ObjectBoundingBox
	f.PrimitiveUnits = object.UserSpaceOnUse
	f.AutoRegion = true
	object.ReadRegionLength(&f.X, nil, -10)
	object.ReadRegionLength(&f.Y, nil, -10)
	object.ReadRegionLength(&f.Width, nil, 120)
	object.ReadRegionLength(&f.Height, nil, 120)
}

func (f *Filter) Build(doc *object.Document, node *repr.Node) {
	f.ObjectBase.Build(doc, node)
	f.ReadAttr(attr.FilterUnits, attr.PrimitiveUnits, attr.X, attr.Y, attr.Width, attr.Height, attr.InkscapeAutoRegion)
	doc.AddResource("filter", f)
}

func (f *Filter) Release() {
	f.Document().RemoveResource("filter", f)
	f.ObjectBase.Release()
}

func (f *Filter) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.FilterUnits:
		f.Units = object.ReadUnits(value, object.ObjectBoundingBox)
	case attr.PrimitiveUnits:
		f.PrimitiveUnits = object.ReadUnits(value, object.UserSpaceOnUse)
	case attr.X:
		object.ReadRegionLength(&f.X, value, -10)
	case attr.Y:
		object.ReadRegionLength(&f.Y, value, -10)
	case attr.Width:
		object.ReadRegionLength(&f.Width, value, 120)
	case attr.Height:
		object.ReadRegionLength(&f.Height, value, 120)
	case attr.InkscapeAutoRegion:
		f.AutoRegion = value == nil || *value != "false"
	default:
		return f.ObjectBase.Set(key, value)
	}
	f.RequestDisplayUpdate(object.ModifiedFlag)
	return true
}

// FilterRegion returns the filter region for an item with the given
// bounding box, in the user space of the item.
func (f *Filter) FilterRegion(bbox math32.Box2) math32.Box2 {
	if bbox.IsEmpty() {
		return bbox
	}
	return object.UnitsRegion(f.X, f.Y, f.Width, f.Height, f.Units, bbox)
}

// Primitives returns the primitives of the filter, in order.
func (f *Filter) Primitives() []Primitiver {
	var res []Primitiver
	for _, c := range f.ChildObjects() {
		if p, ok := c.(Primitiver); ok {
			res = append(res, p)
		}
	}
	return res
}

// resultsChanged drops the result table, to be built again
// on the next resolution.
func (f *Filter) resultsChanged() {
	f.results = nil
	f.RequestDisplayUpdate(object.ModifiedFlag)
}

func (f *Filter) resultTable() map[string][]int {
	if f.results != nil {
		return f.results
	}
	f.results = map[string][]int{}
	for i, p := range f.Primitives() {
		if r := p.AsPrimitive().Result; r != "" {
			f.results[r] = append(f.results[r], i)
		}
	}
	return f.results
}

// ResolveInput resolves the name of an input of the primitive at index
// i. An empty name is the result of the previous primitive, or the
// source graphic for the first one. A name that is neither a standard
// input nor the result of an earlier primitive is [InputNotSet].
func (f *Filter) ResolveInput(i int, name string) Input {
	if name == "" {
		if i == 0 {
			return InputSourceGraphic
		}
		return Input(i - 1)
	}
	if in, ok := inputNames[name]; ok {
		return in
	}
	idx := f.resultTable()[name]
	j, _ := slices.BinarySearch(idx, i)
	if j == 0 {
		return InputNotSet
	}
	return Input(idx[j-1])
}

// IndexOf returns the index of the primitive, or -1.
func (f *Filter) IndexOf(p Primitiver) int {
	return slices.Index(f.Primitives(), p)
}

// SetResult sets the result name of the primitive, choosing a name
// that no primitive uses if name is empty, and returns it.
func (f *Filter) SetResult(p Primitiver, name string) string {
	if name == "" {
		tbl := f.resultTable()
		for n := 1; ; n++ {
			name = fmt.Sprintf("result%d", n)
			if _, used := tbl[name]; !used {
				break
			}
		}
	}
	p.AsObject().Node().SetAttribute("result", name)
	return name
}

func (f *Filter) ChildAdded(child, prev *repr.Node) {
	f.ObjectBase.ChildAdded(child, prev)
	f.resultsChanged()
}

func (f *Filter) ChildRemoved(child *repr.Node) {
	f.ObjectBase.ChildRemoved(child)
	f.resultsChanged()
}

func (f *Filter) OrderChanged(child, oldPrev, newPrev *repr.Node) {
	f.ObjectBase.OrderChanged(child, oldPrev, newPrev)
	f.resultsChanged()
}

func (f *Filter) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = f.ObjectBase.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "filterUnits", f.Units.String(), f.Units != object.ObjectBoundingBox)
	setOrRemove(node, "primitiveUnits", f.PrimitiveUnits.String(), f.PrimitiveUnits != object.UserSpaceOnUse)
	f.X.WriteTo(node, "x")
	f.Y.WriteTo(node, "y")
	f.Width.WriteTo(node, "width")
	f.Height.WriteTo(node, "height")
	if flags&object.WriteExt != 0 {
		setOrRemove(node, "inkscape:auto-region", "false", !f.AutoRegion)
	}
	return node
}

func setOrRemove(node *repr.Node, key, value string, set bool) {
	if set {
		node.SetAttribute(key, value)
	} else {
		node.RemoveAttribute(key)
	}
}

func init() {
	object.Register("svg:filter", func() object.Object { return &Filter{} })
	object.Register("svg:feGaussianBlur", func() object.Object { return &GaussianBlur{} })
	object.Register("svg:feOffset", func() object.Object { return &Offset{} })
	object.Register("svg:feFlood", func() object.Object { return &Flood{} })
	object.Register("svg:feBlend", func() object.Object { return &Blend{} })
	object.Register("svg:feComposite", func() object.Object { return &Composite{} })
	object.Register("svg:feColorMatrix", func() object.Object { return &ColorMatrix{} })
	object.Register("svg:feMerge", func() object.Object { return &Merge{} })
	object.Register("svg:feMergeNode", func() object.Object { return &MergeNode{} })
	object.Register("svg:feMorphology", func() object.Object { return &Morphology{} })
	object.Register("svg:feTile", func() object.Object { return &Tile{} })
	object.Register("svg:feImage", func() object.Object { return &Image{} })
}
