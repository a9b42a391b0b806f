// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the parent and children links of a tree of
// nodes, centered on the [Node] interface, with walks over them.
package tree

import (
	"slices"
	"strings"
)

// Node is an interface that all tree nodes satisfy. The tree
// functionality is defined on [NodeBase], which all higher-level
// tree types must embed; [Node.AsTree] returns it.
type Node interface {

	// AsTree returns the [NodeBase] of this Node.
	AsTree() *NodeBase
}

// NodeBase implements the [Node] interface and holds the links
// of a node. It must be initialized with [NodeBase.InitNode]
// before it is added to a tree.
type NodeBase struct {

	// Name is the name of this node, used in [NodeBase.Path].
	Name string

	// This is the value of this Node as its true underlying type, so
	// that methods defined on base types can call methods defined on
	// higher-level types. It is nil after [NodeBase.Detach].
	This Node

	// Parent is the parent of this node, set when it is added as a
	// child. Nodes have at most one parent.
	Parent Node

	// Children is the list of children of this node. Use the child
	// methods to modify it so that parents stay consistent.
	Children []Node

	// index is the last known index in the parent, used as the
	// starting point of the next search.
	index int
}

// InitNode sets [NodeBase.This] to the given node, which must
// embed n.
func (n *NodeBase) InitNode(this Node) {
	n.This = this
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// IsRoot returns whether the given node has no parent.
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root of the tree the node is in.
func Root(n Node) Node {
	for n.AsTree().Parent != nil {
		n = n.AsTree().Parent
	}
	return n
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and searches outward from it, so subsequent calls are
// typically fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index)
	n.index = idx
	return idx
}

// ParentLevel finds a given potential parent node recursively up the
// hierarchy, returning the level above the current node that the parent was
// found, and -1 if not found.
func (n *NodeBase) ParentLevel(parent Node) int {
	parLev := -1
	level := 0
	n.WalkUpParent(func(k Node) bool {
		if k == parent {
			parLev = level
			return Break
		}
		level++
		return Continue
	})
	return parLev
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildrenSnapshot returns a copy of the children list, for iterating
// while callbacks may add or remove children.
func (n *NodeBase) ChildrenSnapshot() []Node {
	return slices.Clone(n.Children)
}

// AddChild adds given child at end of children list.
func (n *NodeBase) AddChild(kid Node) {
	n.InsertChild(kid, len(n.Children))
}

// InsertChild adds given child at position in children list.
// It panics if the child already has a parent.
func (n *NodeBase) InsertChild(kid Node, index int) {
	kb := kid.AsTree()
	if kb.Parent != nil {
		panic("tree: InsertChild of a node that already has a parent: " + kb.Path())
	}
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	kb.Parent = n.This
	kb.index = index
}

// RemoveChild removes the given child from the children list,
// leaving the child itself intact. It returns false if the node
// is not a child.
func (n *NodeBase) RemoveChild(kid Node) bool {
	if kid == nil {
		return false
	}
	idx := IndexOf(n.Children, kid, kid.AsTree().index)
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	kid.AsTree().Parent = nil
	return true
}

// MoveChild moves an existing child to the given index.
// It returns false if the node is not a child.
func (n *NodeBase) MoveChild(kid Node, index int) bool {
	idx := IndexOf(n.Children, kid, kid.AsTree().index)
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	kid.AsTree().index = index
	return true
}

// Detach removes the node from its parent and clears
// [NodeBase.This], marking the node as gone. Children are
// left in place.
func (n *NodeBase) Detach() {
	if n.Parent != nil {
		n.Parent.AsTree().RemoveChild(n.This)
	}
	n.This = nil
}

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument gives
// a guess at where the node might be: the search proceeds outward
// from it in both directions, which is a key speedup for large
// slices. If it is not given, the search starts in the middle.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	sz := len(slice)
	if sz == 0 {
		return -1
	}
	st := sz / 2
	if len(startIndex) > 0 {
		st = min(max(startIndex[0], 0), sz-1)
	}
	for lo, hi := st, st+1; lo >= 0 || hi < sz; lo, hi = lo-1, hi+1 {
		if lo >= 0 && slice[lo] == child {
			return lo
		}
		if hi < sz && slice[hi] == child {
			return hi
		}
	}
	return -1
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// Path returns the path to this node from the tree root,
// using [NodeBase.Name]s separated by / delimiters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}
