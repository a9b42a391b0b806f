// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repr

import (
	"iter"
	"slices"
	"strings"

	"cogentcore.org/canvas/base/keylist"
)

// NodeType is the type of a [Node].
type NodeType int32

const (
	// ElementNode is an element with a qualified name such as svg:rect,
	// an ordered attribute list and children.
	ElementNode NodeType = iota

	// TextNode is character data inside an element.
	TextNode

	// CommentNode is an XML comment.
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	}
	return "invalid"
}

// Node is one node of an XML tree. Element names and attribute keys
// are qualified with a fixed prefix per namespace: svg:, inkscape:,
// sodipodi:, xlink:, xml:. Attributes keep their insertion order,
// so that writing a tree is byte-stable.
type Node struct {
	doc      *Document
	typ      NodeType
	name     string
	content  string
	attrs    keylist.List[string, string]
	parent   *Node
	children []*Node
	obs      observers
}

// Type returns the node type.
func (n *Node) Type() NodeType {
	return n.typ
}

// Name returns the qualified element name, such as svg:rect,
// or "string" for text and "comment" for comments.
func (n *Node) Name() string {
	return n.name
}

// Document returns the document the node belongs to.
func (n *Node) Document() *Document {
	return n.doc
}

// Parent returns the parent element, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the list of children,
// which is safe to iterate while the tree changes.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// ChildAt returns the child at the given index, or nil.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	return n.ChildAt(0)
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	return n.ChildAt(len(n.children) - 1)
}

// Position returns the index of the node among its siblings,
// or -1 for a node without parent.
func (n *Node) Position() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

// Next returns the next sibling, or nil.
func (n *Node) Next() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.ChildAt(n.Position() + 1)
}

// Prev returns the previous sibling, or nil.
func (n *Node) Prev() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.ChildAt(n.Position() - 1)
}

// IsAncestorOf returns whether n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Attribute returns the value of the given attribute,
// and whether it is present.
func (n *Node) Attribute(key string) (string, bool) {
	return n.attrs.AtTry(key)
}

// AttributeOr returns the value of the given attribute,
// or def if it is absent.
func (n *Node) AttributeOr(key, def string) string {
	if v, ok := n.attrs.AtTry(key); ok {
		return v
	}
	return def
}

// AttributePtr returns the value of the given attribute,
// or nil if it is absent.
func (n *Node) AttributePtr(key string) *string {
	if v, ok := n.attrs.AtTry(key); ok {
		return &v
	}
	return nil
}

// AttributeKeys returns the attribute keys in order.
func (n *Node) AttributeKeys() []string {
	return slices.Clone(n.attrs.Keys)
}

// AttributeCount returns the number of attributes.
func (n *Node) AttributeCount() int {
	return n.attrs.Len()
}

// SetAttribute sets the given attribute. A new attribute is added at
// the end of the list and an existing one keeps its position.
// Setting the current value does nothing.
func (n *Node) SetAttribute(key, value string) {
	old, had := n.attrs.AtTry(key)
	if had && old == value {
		return
	}
	n.attrs.Set(key, value)
	var op *string
	if had {
		op = &old
	}
	n.attributeChanged(key, op, &value, n.attrs.IndexByKey(key))
}

// RemoveAttribute removes the given attribute, if present.
func (n *Node) RemoveAttribute(key string) {
	old, had := n.attrs.AtTry(key)
	if !had {
		return
	}
	idx := n.attrs.IndexByKey(key)
	n.attrs.DeleteByKey(key)
	n.attributeChanged(key, &old, nil, idx)
}

// insertAttribute sets the attribute at the given position of the
// attribute list, where a removed attribute is put back on undo.
func (n *Node) insertAttribute(key string, value *string, index int) {
	if _, had := n.attrs.AtTry(key); value == nil || had {
		n.SetOrRemoveAttribute(key, value)
		return
	}
	n.attrs.Insert(index, key, *value)
	n.attributeChanged(key, nil, value, index)
}

// SetOrRemoveAttribute sets the attribute to *value,
// or removes it if value is nil.
func (n *Node) SetOrRemoveAttribute(key string, value *string) {
	if value == nil {
		n.RemoveAttribute(key)
		return
	}
	n.SetAttribute(key, *value)
}

// Content returns the content of a text or comment node.
func (n *Node) Content() string {
	return n.content
}

// TextContent returns the concatenated content of all
// text nodes in the subtree.
func (n *Node) TextContent() string {
	if n.typ == TextNode {
		return n.content
	}
	var sb strings.Builder
	for _, c := range n.children {
		if c.typ != CommentNode {
			sb.WriteString(c.TextContent())
		}
	}
	return sb.String()
}

// SetContent sets the content of a text or comment node.
func (n *Node) SetContent(content string) {
	if n.typ == ElementNode {
		panic("repr: SetContent on element " + n.name)
	}
	old := n.content
	if old == content {
		return
	}
	n.content = content
	n.doc.record(Event{Kind: ContentEvent, Node: n, OldContent: old, NewContent: content})
	for o := range n.deliverTo() {
		o.NotifyContentChanged(n, old, content)
	}
}

// AppendChild adds child as the last child.
func (n *Node) AppendChild(child *Node) {
	n.AddChild(child, n.LastChild())
}

// AddChild inserts child immediately after the given sibling,
// or as the first child if after is nil. The child must belong to
// the same document and must not have a parent.
func (n *Node) AddChild(child, after *Node) {
	if n.typ != ElementNode {
		panic("repr: AddChild on " + n.typ.String() + " node")
	}
	if child.doc != n.doc {
		panic("repr: AddChild of a node from another document")
	}
	if child.parent != nil {
		panic("repr: AddChild of a node that already has a parent")
	}
	if child == n || child.IsAncestorOf(n) {
		panic("repr: AddChild would create a cycle")
	}
	idx := 0
	if after != nil {
		if after.parent != n {
			panic("repr: AddChild after a node that is not a child")
		}
		idx = after.Position() + 1
	}
	n.children = slices.Insert(n.children, idx, child)
	child.parent = n
	n.doc.record(Event{Kind: AddEvent, Node: n, Child: child, Ref: after})
	for o := range n.deliverTo() {
		o.NotifyChildAdded(n, child, after)
	}
}

// RemoveChild removes the given child. The child keeps its subtree
// and may be added again.
func (n *Node) RemoveChild(child *Node) {
	if child.parent != n {
		panic("repr: RemoveChild of a node that is not a child")
	}
	idx := child.Position()
	prev := n.ChildAt(idx - 1)
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil
	n.doc.record(Event{Kind: RemoveEvent, Node: n, Child: child, Ref: prev})
	for o := range n.deliverTo() {
		o.NotifyChildRemoved(n, child, prev)
	}
}

// ChangeOrder moves child to immediately after the given sibling,
// or to the first position if after is nil.
func (n *Node) ChangeOrder(child, after *Node) {
	if child.parent != n {
		panic("repr: ChangeOrder of a node that is not a child")
	}
	if after == child {
		return
	}
	if after != nil && after.parent != n {
		panic("repr: ChangeOrder after a node that is not a child")
	}
	oldPrev := child.Prev()
	if oldPrev == after {
		return
	}
	n.children = slices.Delete(n.children, child.Position(), child.Position()+1)
	idx := 0
	if after != nil {
		idx = after.Position() + 1
	}
	n.children = slices.Insert(n.children, idx, child)
	n.doc.record(Event{Kind: OrderEvent, Node: n, Child: child, OldRef: oldPrev, Ref: after})
	for o := range n.deliverTo() {
		o.NotifyChildOrderChanged(n, child, oldPrev, after)
	}
}

// Unparent removes the node from its parent, if any.
func (n *Node) Unparent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// AddObserver registers an observer of changes to this node.
func (n *Node) AddObserver(o Observer) {
	n.obs.add(o)
}

// RemoveObserver removes an observer, returning whether
// it was registered.
func (n *Node) RemoveObserver(o Observer) bool {
	return n.obs.remove(o)
}

// ObserverCount returns the number of registered observers.
func (n *Node) ObserverCount() int {
	return len(n.obs)
}

func (n *Node) attributeChanged(key string, old, value *string, index int) {
	n.doc.record(Event{Kind: AttributeEvent, Node: n, Key: key, OldValue: old, NewValue: value, Index: index})
	for o := range n.deliverTo() {
		o.NotifyAttributeChanged(n, key, old, value, n.doc.interactive)
	}
}

// deliverTo returns the observers to notify of a change: a snapshot
// of the node observers followed by the document observers, filtered
// as they are iterated so that an observer removed by an earlier one
// is skipped.
func (n *Node) deliverTo() iter.Seq[Observer] {
	nobs := n.obs
	dobs := n.doc.obs
	return func(yield func(Observer) bool) {
		for _, o := range nobs {
			if n.obs.contains(o) && !yield(o) {
				return
			}
		}
		for _, o := range dobs {
			if n.doc.obs.contains(o) && !yield(o) {
				return
			}
		}
	}
}
