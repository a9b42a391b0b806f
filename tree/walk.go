// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking if
// it returns [Continue]. It returns whether walking was finished (false
// if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur {
			return true
		}
		cur = parent
	}
}

// WalkUpParent calls the given function on all of the node's parents
// (but not the node itself). It stops walking if the function returns
// [Break]. It returns whether walking was finished.
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	if n.Parent == nil {
		return true
	}
	return n.Parent.AsTree().WalkUp(fun)
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner. It stops walking the current branch of the
// tree if the function returns [Break]. Each children list is
// snapshotted before it is walked, so the function may add or remove
// nodes; removed nodes that were not reached yet are skipped.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) || n.This == nil {
		return
	}
	for _, kid := range n.ChildrenSnapshot() {
		kb := kid.AsTree()
		if kb.This == nil || kb.Parent != n.This {
			continue
		}
		kb.WalkDown(fun)
	}
}

// WalkDownPost calls shouldContinue on each node to test if processing
// should proceed into its children (if it returns [Break] then that
// branch of the tree is not further processed), and then calls the
// given function after all of a node's children have been visited.
// In effect, the given function is called for deeper nodes first.
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if shouldContinue(n.This) {
		for _, kid := range n.ChildrenSnapshot() {
			kb := kid.AsTree()
			if kb.This == nil || kb.Parent != n.This {
				continue
			}
			kb.WalkDownPost(shouldContinue, fun)
		}
	}
	if n.This != nil {
		fun(n.This)
	}
}

// Last returns the last node in the tree.
func Last(n Node) Node {
	return lastChild(n)
}

// lastChild returns the last child under the given node,
// or the node itself if it has no children.
func lastChild(n Node) Node {
	nb := n.AsTree()
	if nb.HasChildren() {
		return lastChild(nb.Child(nb.NumChildren() - 1))
	}
	return n
}

// Previous returns the previous node in the tree,
// or nil if this is the root node.
func Previous(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	myidx := nb.IndexInParent()
	if myidx > 0 {
		nn := nb.Parent.AsTree().Child(myidx - 1)
		return lastChild(nn)
	}
	return nb.Parent
}

// Next returns next node in the tree,
// or nil if this is the last node.
func Next(n Node) Node {
	if !n.AsTree().HasChildren() {
		return NextSibling(n)
	}
	return n.AsTree().Child(0)
}

// NextSibling returns the next sibling of this node, or of its
// closest ancestor that has one, or nil if there is none.
func NextSibling(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	myidx := nb.IndexInParent()
	if myidx >= 0 && myidx < nb.Parent.AsTree().NumChildren()-1 {
		return nb.Parent.AsTree().Child(myidx + 1)
	}
	return NextSibling(nb.Parent)
}
