// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filters

import (
	"log/slog"
	"strings"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/object"
	"cogentcore.org/canvas/repr"
)

// Primitiver is implemented by all filter primitives,
// which embed [Primitive].
type Primitiver interface {
	object.Object

	// AsPrimitive returns the [Primitive] of the object.
	AsPrimitive() *Primitive
}

// Primitive is the base of the filter primitives: the input, the name
// of the result, and the subregion.
type Primitive struct {
	object.ObjectBase

	// In is the in attribute as written.
	In string

	// Result is the name of the result, or "".
	Result string

	// X, Y, Width and Height are the subregion; unset lengths take
	// the filter region.
	X, Y, Width, Height object.SVGLength
}

func (p *Primitive) AsPrimitive() *Primitive { return p }

var primitiveAttrs = []attr.Attr{attr.In, attr.Result, attr.X, attr.Y, attr.Width, attr.Height}

func (p *Primitive) Build(doc *object.Document, node *repr.Node) {
	p.ObjectBase.Build(doc, node)
	p.ReadAttr(primitiveAttrs...)
}

func (p *Primitive) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.In:
		p.In = readString(value)
	case attr.Result:
		p.Result = readString(value)
		if f := p.Filter(); f != nil {
			f.resultsChanged()
		}
	case attr.X:
		p.X.Read(value, 0)
	case attr.Y:
		p.Y.Read(value, 0)
	case attr.Width:
		p.Width.Read(value, 0)
	case attr.Height:
		p.Height.Read(value, 0)
	default:
		return p.ObjectBase.Set(key, value)
	}
	p.RequestDisplayUpdate(object.ModifiedFlag)
	return true
}

// Filter returns the filter the primitive is in, or nil.
func (p *Primitive) Filter() *Filter {
	f, _ := p.ParentObject().(*Filter)
	return f
}

// Index returns the index of the primitive in its filter, or -1.
func (p *Primitive) Index() int {
	f := p.Filter()
	if f == nil {
		return -1
	}
	pr, _ := p.This.(Primitiver)
	return f.IndexOf(pr)
}

// resolve resolves an input name of the primitive.
func (p *Primitive) resolve(name string) Input {
	i := p.Index()
	if i < 0 {
		return InputNotSet
	}
	return p.Filter().ResolveInput(i, name)
}

// Input returns the resolved in of the primitive.
func (p *Primitive) Input() Input {
	return p.resolve(p.In)
}

// Subregion returns the subregion of the primitive for an item with the
// given bounding box, within the given filter region.
func (p *Primitive) Subregion(region, bbox math32.Box2) math32.Box2 {
	units := object.UserSpaceOnUse
	if f := p.Filter(); f != nil {
		units = f.PrimitiveUnits
	}
	r := object.UnitsRegion(p.X, p.Y, p.Width, p.Height, units, bbox)
	if !p.X.IsSet {
		r.Min.X = region.Min.X
	}
	if !p.Y.IsSet {
		r.Min.Y = region.Min.Y
	}
	if !p.Width.IsSet {
		r.Max.X = r.Min.X + region.Size().X
	}
	if !p.Height.IsSet {
		r.Max.Y = r.Min.Y + region.Size().Y
	}
	return r
}

func (p *Primitive) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = p.ObjectBase.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "in", p.In, p.In != "")
	setOrRemove(node, "result", p.Result, p.Result != "")
	p.X.WriteTo(node, "x")
	p.Y.WriteTo(node, "y")
	p.Width.WriteTo(node, "width")
	p.Height.WriteTo(node, "height")
	return node
}

func readString(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

// readNumbers reads a list of at most max numbers, returning nil for
// a nil, malformed or too long value.
func readNumbers(o *object.ObjectBase, value *string, max int) []float32 {
	if value == nil {
		return nil
	}
	nums, err := math32.ReadNumbers(*value)
	if err != nil || len(nums) == 0 || (max > 0 && len(nums) > max) {
		slog.Debug("filters: bad number list", "object", o.String(), "value", *value, "err", err)
		return nil
	}
	return nums
}

func formatNumbers(nums []float32) string {
	s := make([]string, len(nums))
	for i, v := range nums {
		s[i] = math32.FormatFloat(v)
	}
	return strings.Join(s, " ")
}

// pair returns the first number and the second, which defaults to
// the first.
func pair(nums []float32) (x, y float32) {
	switch len(nums) {
	case 0:
		return 0, 0
	case 1:
		return nums[0], nums[0]
	}
	return nums[0], nums[1]
}
