// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"strings"
	"unicode/utf8"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
)

// advance is the width of a glyph relative to the font size,
// used for the approximate text bounds.
const advance = 0.6

// TextPosition are the positioning attributes of text and tspan
// elements: lists of numbers, one per character.
type TextPosition struct {
	X, Y, DX, DY, Rotate []float32
}

func readList(value *string) []float32 {
	if value == nil {
		return nil
	}
	nums, err := math32.ReadNumbers(*value)
	if err != nil {
		return nil
	}
	return nums
}

func formatList(nums []float32) string {
	s := make([]string, len(nums))
	for i, v := range nums {
		s[i] = math32.FormatFloat(v)
	}
	return strings.Join(s, " ")
}

func (tp *TextPosition) set(key attr.Attr, value *string) bool {
	switch key {
	case attr.X:
		tp.X = readList(value)
	case attr.Y:
		tp.Y = readList(value)
	case attr.DX:
		tp.DX = readList(value)
	case attr.DY:
		tp.DY = readList(value)
	case attr.Rotate:
		tp.Rotate = readList(value)
	default:
		return false
	}
	return true
}

func (tp *TextPosition) write(node *repr.Node) {
	for _, a := range []struct {
		key  string
		nums []float32
	}{{"x", tp.X}, {"y", tp.Y}, {"dx", tp.DX}, {"dy", tp.DY}, {"rotate", tp.Rotate}} {
		setOrRemove(node, a.key, formatList(a.nums), len(a.nums) > 0)
	}
}

// origin returns the first x and y, plus the first dx and dy.
func (tp *TextPosition) origin() math32.Vector2 {
	var o math32.Vector2
	if len(tp.X) > 0 {
		o.X = tp.X[0]
	}
	if len(tp.Y) > 0 {
		o.Y = tp.Y[0]
	}
	if len(tp.DX) > 0 {
		o.X += tp.DX[0]
	}
	if len(tp.DY) > 0 {
		o.Y += tp.DY[0]
	}
	return o
}

// Text is a text element. Its characters are the text content of its
// children, including those of its tspan children.
type Text struct {
	Item
	TextPosition
}

var textAttrs = []attr.Attr{attr.X, attr.Y, attr.DX, attr.DY, attr.Rotate}

func (t *Text) Build(doc *Document, node *repr.Node) {
	t.Item.Build(doc, node)
	t.ReadAttr(textAttrs...)
}

func (t *Text) Set(key attr.Attr, value *string) bool {
	if !t.TextPosition.set(key, value) {
		return t.Item.Set(key, value)
	}
	t.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// Content returns the text of the element.
func (t *Text) Content() string {
	return t.node.TextContent()
}

func (t *Text) contentChanged() {
	t.RequestDisplayUpdate(ModifiedFlag)
}

func (t *Text) ChildAdded(child, prev *repr.Node) {
	t.Item.ChildAdded(child, prev)
	t.childShown(child)
	t.contentChanged()
}

func (t *Text) ChildRemoved(child *repr.Node) {
	t.Item.ChildRemoved(child)
	t.contentChanged()
}

func (t *Text) Show(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	di := t.showChildren(dr, key, flags)
	di.Kind = drawing.TextItem
	return di
}

func (t *Text) Hide(key uint32) { t.hideChildren(key) }

// Bounds approximates the box of the text with a fixed advance
// per character.
func (t *Text) Bounds(bt BBoxType, m math32.Matrix2) math32.Box2 {
	return textBounds(t.origin(), t.node.TextContent(), fontSize(t.style)).MulMatrix2(m)
}

func textBounds(o math32.Vector2, text string, size float32) math32.Box2 {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	if n == 0 {
		return math32.B2Empty()
	}
	return math32.B2(o.X, o.Y-size, o.X+float32(n)*size*advance, o.Y+size*0.25)
}

func (t *Text) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = t.Item.Write(rdoc, node, flags)
	if node != nil {
		t.TextPosition.write(node)
	}
	return node
}

// TSpan is a tspan element, a run of text within a text element.
type TSpan struct {
	Item
	TextPosition

	// Role is sodipodi:role; "line" marks a line of a multi-line text.
	Role string
}

func (ts *TSpan) Build(doc *Document, node *repr.Node) {
	ts.Item.Build(doc, node)
	ts.ReadAttr(textAttrs...)
	ts.ReadAttr(attr.SodipodiRole)
}

func (ts *TSpan) Set(key attr.Attr, value *string) bool {
	switch {
	case key == attr.SodipodiRole:
		ts.Role = ""
		if value != nil {
			ts.Role = *value
		}
	case ts.TextPosition.set(key, value):
	default:
		return ts.Item.Set(key, value)
	}
	ts.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// contentChanged updates the span and the text it is in.
func (ts *TSpan) contentChanged() {
	ts.RequestDisplayUpdate(ModifiedFlag)
	if cw, ok := ts.ParentObject().(contentWatcher); ok {
		cw.contentChanged()
	}
}

func (ts *TSpan) ChildAdded(child, prev *repr.Node) {
	ts.Item.ChildAdded(child, prev)
	ts.contentChanged()
}

func (ts *TSpan) ChildRemoved(child *repr.Node) {
	ts.Item.ChildRemoved(child)
	ts.contentChanged()
}

func (ts *TSpan) Show(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	return dr.NewItem(drawing.TextItem)
}

func (ts *TSpan) Bounds(bt BBoxType, m math32.Matrix2) math32.Box2 {
	return textBounds(ts.origin(), ts.node.TextContent(), fontSize(ts.style)).MulMatrix2(m)
}

func (ts *TSpan) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = ts.Item.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	ts.TextPosition.write(node)
	if flags&WriteExt != 0 {
		setOrRemove(node, "sodipodi:role", ts.Role, ts.Role != "")
	}
	return node
}
