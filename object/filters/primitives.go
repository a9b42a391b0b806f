// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filters

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/object"
	"cogentcore.org/canvas/repr"
	"cogentcore.org/canvas/style"
)

// GaussianBlur is feGaussianBlur.
type GaussianBlur struct {
	Primitive

	// StdDeviation are the numbers of stdDeviation: one for both
	// directions, or x and y. Nil when not set.
	StdDeviation []float32

	// text is the valid stdDeviation as written, written back as is.
	text string
}

func (gb *GaussianBlur) Build(doc *object.Document, node *repr.Node) {
	gb.Primitive.Build(doc, node)
	gb.ReadAttr(attr.StdDeviation)
}

func (gb *GaussianBlur) Set(key attr.Attr, value *string) bool {
	if key != attr.StdDeviation {
		return gb.Primitive.Set(key, value)
	}
	gb.StdDeviation = nil
	gb.text = ""
	if nums := readNumbers(gb.AsObject(), value, 2); nums != nil && nums[0] >= 0 && (len(nums) == 1 || nums[1] >= 0) {
		gb.StdDeviation = nums
		gb.text = readString(value)
	}
	gb.RequestDisplayUpdate(object.ModifiedFlag)
	return true
}

// Deviation returns the deviation in x and y.
func (gb *GaussianBlur) Deviation() (x, y float32) {
	return pair(gb.StdDeviation)
}

// SetDeviation sets stdDeviation, written as one number when x and y
// are equal.
func (gb *GaussianBlur) SetDeviation(x, y float32) {
	nums := []float32{x}
	if x != y {
		nums = append(nums, y)
	}
	gb.Node().SetAttribute("stdDeviation", formatNumbers(nums))
}

func (gb *GaussianBlur) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = gb.Primitive.Write(rdoc, node, flags)
	if node != nil {
		setOrRemove(node, "stdDeviation", gb.text, gb.StdDeviation != nil)
	}
	return node
}

// Offset is feOffset.
type Offset struct {
	Primitive
	DX, DY float32
}

func (o *Offset) Build(doc *object.Document, node *repr.Node) {
	o.Primitive.Build(doc, node)
	o.ReadAttr(attr.DX, attr.DY)
}

func (o *Offset) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.DX:
		o.DX = readNumber(o.AsObject(), value, 0)
	case attr.DY:
		o.DY = readNumber(o.AsObject(), value, 0)
	default:
		return o.Primitive.Set(key, value)
	}
	o.RequestDisplayUpdate(object.ModifiedFlag)
	return true
}

func (o *Offset) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = o.Primitive.Write(rdoc, node, flags)
	if node != nil {
		setOrRemove(node, "dx", math32.FormatFloat(o.DX), o.DX != 0)
		setOrRemove(node, "dy", math32.FormatFloat(o.DY), o.DY != 0)
	}
	return node
}

// readNumber reads a single number, or def.
func readNumber(o *object.ObjectBase, value *string, def float32) float32 {
	nums := readNumbers(o, value, 1)
	if nums == nil {
		return def
	}
	return nums[0]
}

// Flood is feFlood. Its color is the flood-color and flood-opacity
// of its style.
type Flood struct {
	Primitive
}

// Color returns the flood color with the flood opacity applied.
func (fl *Flood) Color() color.RGBA {
	s := fl.Style()
	c := s.FloodColor.Value.Color
	switch s.FloodColor.Value.Kind {
	case style.PaintCurrentColor:
		c = s.Color.Value
	case style.PaintNone:
		c = color.RGBA{}
	}
	return colors.WithAlpha(c, s.FloodOpacity.Value)
}

// Blend is feBlend.
type Blend struct {
	Primitive

	// In2 is the in2 attribute as written.
	In2 string

	Mode style.BlendModes
}

func (b *Blend) Build(doc *object.Document, node *repr.Node) {
	b.Primitive.Build(doc, node)
	b.ReadAttr(attr.In2, attr.Mode)
}

func (b *Blend) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.In2:
		b.In2 = readString(value)
	case attr.Mode:
		b.Mode = style.BlendNormal
		if value != nil {
			m, err := style.ParseBlendMode(*value)
			if err != nil {
				slog.Debug("filters: bad blend mode", "object", b.String(), "err", err)
			} else {
				b.Mode = m
			}
		}
	default:
		return b.Primitive.Set(key, value)
	}
	b.RequestDisplayUpdate(object.ModifiedFlag)
	return true
}

// Input2 returns the resolved in2.
func (b *Blend) Input2() Input { return b.resolve(b.In2) }

func (b *Blend) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = b.Primitive.Write(rdoc, node, flags)
	if node != nil {
		setOrRemove(node, "in2", b.In2, b.In2 != "")
		setOrRemove(node, "mode", b.Mode.String(), b.Mode != style.BlendNormal)
	}
	return node
}

// CompositeOperators are the operators of feComposite.
type CompositeOperators int32

const (
	CompositeOver CompositeOperators = iota
	CompositeIn
	CompositeOut
	CompositeAtop
	CompositeXor
	CompositeArithmetic
	CompositeLighter
)

var compositeNames = []string{"over", "in", "out", "atop", "xor", "arithmetic", "lighter"}

func (op CompositeOperators) String() string {
	if op >= 0 && int(op) < len(compositeNames) {
		return compositeNames[op]
	}
	return fmt.Sprintf("CompositeOperators(%d)", int32(op))
}

// readKeyword returns the index of the value in names, or def.
func readKeyword[T ~int32](o *object.ObjectBase, value *string, names []string, def T) T {
	if value == nil {
		return def
	}
	v := readString(value)
	for i, n := range names {
		if n == v {
			return T(i)
		}
	}
	slog.Debug("filters: unknown keyword", "object", o.String(), "value", v)
	return def
}

// Composite is feComposite.
type Composite struct {
	Primitive

	// In2 is the in2 attribute as written.
	In2 string

	Operator CompositeOperators

	// K1, K2, K3 and K4 are the coefficients of the arithmetic operator.
	K1, K2, K3, K4 float32
}

func (c *Composite) Build(doc *object.Document, node *repr.Node) {
	c.Primitive.Build(doc, node)
	c.ReadAttr(attr.In2, attr.Operator, attr.K1, attr.K2, attr.K3, attr.K4)
}

func (c *Composite) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.In2:
		c.In2 = readString(value)
	case attr.Operator:
		c.Operator = readKeyword(c.AsObject(), value, compositeNames, CompositeOver)
	case attr.K1:
		c.K1 = readNumber(c.AsObject(), value, 0)
	case attr.K2:
		c.K2 = readNumber(c.AsObject(), value, 0)
	case attr.K3:
		c.K3 = readNumber(c.AsObject(), value, 0)
	case attr.K4:
		c.K4 = readNumber(c.AsObject(), value, 0)
	default:
		return c.Primitive.Set(key, value)
	}
	c.RequestDisplayUpdate(object.ModifiedFlag)
	return true
}

// Input2 returns the resolved in2.
func (c *Composite) Input2() Input { return c.resolve(c.In2) }

func (c *Composite) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = c.Primitive.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "in2", c.In2, c.In2 != "")
	setOrRemove(node, "operator", c.Operator.String(), c.Operator != CompositeOver)
	arith := c.Operator == CompositeArithmetic
	for _, k := range []struct {
		name string
		v    float32
	}{{"k1", c.K1}, {"k2", c.K2}, {"k3", c.K3}, {"k4", c.K4}} {
		setOrRemove(node, k.name, math32.FormatFloat(k.v), arith && k.v != 0)
	}
	return node
}

// ColorMatrixTypes are the types of feColorMatrix.
type ColorMatrixTypes int32

const (
	ColorMatrixMatrix ColorMatrixTypes = iota
	ColorMatrixSaturate
	ColorMatrixHueRotate
	ColorMatrixLuminanceToAlpha
)

var colorMatrixNames = []string{"matrix", "saturate", "hueRotate", "luminanceToAlpha"}

func (t ColorMatrixTypes) String() string {
	if t >= 0 && int(t) < len(colorMatrixNames) {
		return colorMatrixNames[t]
	}
	return fmt.Sprintf("ColorMatrixTypes(%d)", int32(t))
}

// ColorMatrix is feColorMatrix.
type ColorMatrix struct {
	Primitive

	Type ColorMatrixTypes

	// Values are the values as written, checked against the type:
	// 20 for matrix, one for saturate and hueRotate, none for
	// luminanceToAlpha. Nil when not set or invalid.
	Values []float32
}

func (cm *ColorMatrix) Build(doc *object.Document, node *repr.Node) {
	cm.Primitive.Build(doc, node)
	cm.ReadAttr(attr.Type, attr.Values)
}

func (cm *ColorMatrix) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.Type:
		cm.Type = readKeyword(cm.AsObject(), value, colorMatrixNames, ColorMatrixMatrix)
		cm.readValues(cm.Node().AttributePtr("values"))
	case attr.Values:
		cm.readValues(value)
	default:
		return cm.Primitive.Set(key, value)
	}
	cm.RequestDisplayUpdate(object.ModifiedFlag)
	return true
}

func (cm *ColorMatrix) readValues(value *string) {
	cm.Values = nil
	nums := readNumbers(cm.AsObject(), value, 0)
	want := 1
	switch cm.Type {
	case ColorMatrixMatrix:
		want = 20
	case ColorMatrixLuminanceToAlpha:
		return
	}
	if len(nums) == want {
		cm.Values = nums
	}
}

// Matrix returns the 4x5 matrix of the primitive, row by row.
func (cm *ColorMatrix) Matrix() [20]float32 {
	switch cm.Type {
	case ColorMatrixSaturate:
		s := float32(1)
		if cm.Values != nil {
			s = math32.Clamp(cm.Values[0], 0, 1)
		}
		return [20]float32{
			0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
			0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
			0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
			0, 0, 0, 1, 0,
		}
	case ColorMatrixHueRotate:
		var deg float32
		if cm.Values != nil {
			deg = cm.Values[0]
		}
		rad := math32.DegToRad(deg)
		c, s := math32.Cos(rad), math32.Sin(rad)
		return [20]float32{
			0.213 + c*0.787 - s*0.213, 0.715 - c*0.715 - s*0.715, 0.072 - c*0.072 + s*0.928, 0, 0,
			0.213 - c*0.213 + s*0.143, 0.715 + c*0.285 + s*0.140, 0.072 - c*0.072 - s*0.283, 0, 0,
			0.213 - c*0.213 - s*0.787, 0.715 - c*0.715 + s*0.715, 0.072 + c*0.928 + s*0.072, 0, 0,
			0, 0, 0, 1, 0,
		}
	case ColorMatrixLuminanceToAlpha:
		return [20]float32{
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0.2125, 0.7154, 0.0721, 0, 0,
		}
	}
	if cm.Values != nil {
		return [20]float32(cm.Values)
	}
	return [20]float32{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

func (cm *ColorMatrix) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = cm.Primitive.Write(rdoc, node, flags)
	if node != nil {
		setOrRemove(node, "type", cm.Type.String(), cm.Type != ColorMatrixMatrix)
		setOrRemove(node, "values", formatNumbers(cm.Values), cm.Values != nil)
	}
	return node
}

// Merge is feMerge. Its inputs are the in of its merge node children.
type Merge struct {
	Primitive
}

// Inputs returns the resolved inputs of the merge nodes, in order.
func (m *Merge) Inputs() []Input {
	var res []Input
	for _, c := range m.ChildObjects() {
		if mn, ok := c.(*MergeNode); ok {
			res = append(res, m.resolve(mn.In))
		}
	}
	return res
}

func (m *Merge) ChildAdded(child, prev *repr.Node) {
	m.Primitive.ChildAdded(child, prev)
	m.RequestDisplayUpdate(object.ModifiedFlag)
}

func (m *Merge) ChildRemoved(child *repr.Node) {
	m.Primitive.ChildRemoved(child)
	m.RequestDisplayUpdate(object.ModifiedFlag)
}

// MergeNode is feMergeNode, one input of a merge.
type MergeNode struct {
	object.ObjectBase

	// In is the in attribute as written.
	In string
}

func (mn *MergeNode) Build(doc *object.Document, node *repr.Node) {
	mn.ObjectBase.Build(doc, node)
	mn.ReadAttr(attr.In)
}

func (mn *MergeNode) Set(key attr.Attr, value *string) bool {
	if key != attr.In {
		return mn.ObjectBase.Set(key, value)
	}
	mn.In = readString(value)
	if p := mn.ParentObject(); p != nil {
		p.AsObject().RequestDisplayUpdate(object.ModifiedFlag)
	}
	return true
}

func (mn *MergeNode) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = mn.ObjectBase.Write(rdoc, node, flags)
	if node != nil {
		setOrRemove(node, "in", mn.In, mn.In != "")
	}
	return node
}

// MorphologyOperators are the operators of feMorphology.
type MorphologyOperators int32

const (
	MorphologyErode MorphologyOperators = iota
	MorphologyDilate
)

var morphologyNames = []string{"erode", "dilate"}

func (op MorphologyOperators) String() string {
	if op >= 0 && int(op) < len(morphologyNames) {
		return morphologyNames[op]
	}
	return fmt.Sprintf("MorphologyOperators(%d)", int32(op))
}

// Morphology is feMorphology.
type Morphology struct {
	Primitive

	Operator MorphologyOperators

	// Radius are the numbers of radius as written. Nil when not set,
	// which is a radius of zero that disables the primitive.
	Radius []float32
}

func (mo *Morphology) Build(doc *object.Document, node *repr.Node) {
	mo.Primitive.Build(doc, node)
	mo.ReadAttr(attr.Operator, attr.Radius)
}

func (mo *Morphology) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.Operator:
		mo.Operator = readKeyword(mo.AsObject(), value, morphologyNames, MorphologyErode)
	case attr.Radius:
		mo.Radius = nil
		if nums := readNumbers(mo.AsObject(), value, 2); nums != nil && nums[0] >= 0 && (len(nums) == 1 || nums[1] >= 0) {
			mo.Radius = nums
		}
	default:
		return mo.Primitive.Set(key, value)
	}
	mo.RequestDisplayUpdate(object.ModifiedFlag)
	return true
}

// Radii returns the radius in x and y.
func (mo *Morphology) Radii() (x, y float32) {
	return pair(mo.Radius)
}

func (mo *Morphology) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = mo.Primitive.Write(rdoc, node, flags)
	if node != nil {
		setOrRemove(node, "operator", mo.Operator.String(), mo.Operator != MorphologyErode)
		setOrRemove(node, "radius", formatNumbers(mo.Radius), mo.Radius != nil)
	}
	return node
}

// Tile is feTile. It fills its subregion with copies of its input.
type Tile struct {
	Primitive
}

// Image is feImage: an external image, or an element of the document
// referenced by #id.
type Image struct {
	Primitive

	// Href is the reference as written.
	Href string

	// PreserveAspectRatio is how an external image is fitted.
	PreserveAspectRatio object.PreserveAspectRatio

	ref *object.UseRef
}

func (im *Image) Defaults() {
	im.PreserveAspectRatio.Defaults()
}

func (im *Image) Build(doc *object.Document, node *repr.Node) {
	im.Primitive.Build(doc, node)
	im.ReadAttr(attr.XlinkHref, attr.Href, attr.PreserveAspectRatio)
}

func (im *Image) Release() {
	if im.ref != nil {
		im.ref.Unlink()
	}
	im.Primitive.Release()
}

func (im *Image) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.XlinkHref, attr.Href:
		if value == nil && im.Node() != nil {
			if key == attr.Href {
				value = im.Node().AttributePtr("xlink:href")
			} else {
				value = im.Node().AttributePtr("href")
			}
		}
		im.Href = readString(value)
		im.link()
	case attr.PreserveAspectRatio:
		im.PreserveAspectRatio.Defaults()
		if value != nil {
			if err := im.PreserveAspectRatio.SetString(*value); err != nil {
				slog.Debug("filters: bad preserveAspectRatio", "object", im.String(), "err", err)
			}
		}
	default:
		return im.Primitive.Set(key, value)
	}
	im.RequestDisplayUpdate(object.ModifiedFlag)
	return true
}

// link links the element reference for an #id href.
func (im *Image) link() {
	if len(im.Href) == 0 || im.Href[0] != '#' {
		if im.ref != nil {
			im.ref.Unlink()
		}
		return
	}
	if im.ref == nil {
		im.ref = object.NewRef[object.Itemer](im)
		im.ref.Changed.Connect(func(object.TargetChange) {
			im.RequestDisplayUpdate(object.ModifiedFlag)
		})
	}
	im.ref.TryLink(im.Href)
}

// Element returns the referenced element, or nil for an external
// image or an unresolved reference.
func (im *Image) Element() object.Itemer {
	if im.ref == nil {
		return nil
	}
	return im.ref.Object()
}

func (im *Image) Write(rdoc *repr.Document, node *repr.Node, flags object.WriteFlags) *repr.Node {
	node = im.Primitive.Write(rdoc, node, flags)
	if node != nil {
		object.WriteHref(node, im.Href)
	}
	return node
}
