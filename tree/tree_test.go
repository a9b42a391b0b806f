// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testNode struct {
	NodeBase
}

func newTestNode(name string, parent *testNode) *testNode {
	n := &testNode{}
	n.InitNode(n)
	n.Name = name
	if parent != nil {
		parent.AddChild(n)
	}
	return n
}

func testTree() (*testNode, map[string]*testNode) {
	nodes := map[string]*testNode{}
	add := func(name string, parent *testNode) *testNode {
		n := newTestNode(name, parent)
		nodes[name] = n
		return n
	}
	root := add("root", nil)
	add("child0", root)
	child1 := add("child1", root)
	schild1 := add("subchild1", child1)
	add("subsubchild1", schild1)
	add("child2", root)
	add("child3", root)
	return root, nodes
}

func paths(ns []Node) []string {
	res := make([]string, len(ns))
	for i, n := range ns {
		res[i] = n.AsTree().Path()
	}
	return res
}

func TestDown(t *testing.T) {
	root, _ := testTree()
	var cur Node = root
	res := []string{}
	for cur != nil {
		res = append(res, cur.AsTree().Path())
		cur = Next(cur)
	}
	assert.Equal(t, []string{"/root", "/root/child0", "/root/child1", "/root/child1/subchild1", "/root/child1/subchild1/subsubchild1", "/root/child2", "/root/child3"}, res)
}

func TestUp(t *testing.T) {
	root, _ := testTree()
	cur := Last(root)
	res := []string{}
	for cur != nil {
		res = append(res, cur.AsTree().Path())
		cur = Previous(cur)
	}
	assert.Equal(t, []string{"/root/child3", "/root/child2", "/root/child1/subchild1/subsubchild1", "/root/child1/subchild1", "/root/child1", "/root/child0", "/root"}, res)
}

func TestWalkDownPost(t *testing.T) {
	root, _ := testTree()
	var res []Node
	root.WalkDownPost(func(n Node) bool { return n.AsTree().Name != "subchild1" }, func(n Node) bool {
		res = append(res, n)
		return Continue
	})
	assert.Equal(t, []string{"/root/child0", "/root/child1/subchild1", "/root/child1", "/root/child2", "/root/child3", "/root"}, paths(res))
}

func TestWalkDownRemove(t *testing.T) {
	root, nodes := testTree()
	var res []Node
	root.WalkDown(func(n Node) bool {
		res = append(res, n)
		if n == Node(nodes["child0"]) {
			root.RemoveChild(nodes["child1"])
		}
		return Continue
	})
	assert.Equal(t, []string{"/root", "/root/child0", "/root/child2", "/root/child3"}, paths(res))
	assert.Nil(t, nodes["child1"].Parent)
}

func TestChildren(t *testing.T) {
	root, nodes := testTree()
	assert.Equal(t, 2, nodes["child2"].IndexInParent())
	assert.True(t, root.MoveChild(nodes["child3"], 0))
	assert.Equal(t, 0, nodes["child3"].IndexInParent())
	assert.Equal(t, 3, nodes["child2"].IndexInParent())
	assert.Equal(t, 2, nodes["subsubchild1"].ParentLevel(root))
	assert.Equal(t, -1, root.ParentLevel(nodes["child0"]))
	assert.Panics(t, func() { root.AddChild(nodes["child0"]) })
	assert.Equal(t, Node(root), Root(nodes["subsubchild1"]))

	snap := root.ChildrenSnapshot()
	nodes["child0"].Detach()
	assert.Len(t, snap, 4)
	assert.Equal(t, 3, root.NumChildren())
	assert.Nil(t, nodes["child0"].This)
	assert.Equal(t, "nil", nodes["child0"].String())
	assert.Equal(t, -1, IndexOf(root.Children, nodes["child0"]))
}
