// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repr

import (
	"fmt"
	"strings"

	"github.com/antchfx/xpath"
)

// Query returns the element, text and comment nodes selected by the
// XPath expression, evaluated with n as the context node. Names in
// the expression use the fixed prefixes, as in //svg:rect[@inkscape:label].
// Selected attributes are returned as their element.
func Query(n *Node, expr string) ([]*Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("repr.Query: %q: %w", expr, err)
	}
	var res []*Node
	seen := map[*Node]bool{}
	it := x.Select(newNavigator(n))
	for it.MoveNext() {
		nv := it.Current().(*navigator)
		if !seen[nv.cur] {
			seen[nv.cur] = true
			res = append(res, nv.cur)
		}
	}
	return res, nil
}

// QueryOne returns the first node selected by the expression, or nil.
func QueryOne(n *Node, expr string) (*Node, error) {
	res, err := Query(n, expr)
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// Evaluate evaluates an XPath expression that returns a value, such
// as count(//svg:rect), with n as the context node. The result is
// a float64, string or bool.
func Evaluate(n *Node, expr string) (any, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("repr.Evaluate: %q: %w", expr, err)
	}
	v := x.Evaluate(newNavigator(n))
	if _, ok := v.(*xpath.NodeIterator); ok {
		return nil, fmt.Errorf("repr.Evaluate: %q selects nodes", expr)
	}
	return v, nil
}

// navigator implements [xpath.NodeNavigator] over a repr tree.
// The tree root is the parent of the root element, as a document node.
type navigator struct {
	root, cur *Node

	// top is true when positioned at the document node above root.
	top  bool
	attr int
}

func newNavigator(n *Node) *navigator {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return &navigator{root: root, cur: n, attr: -1}
}

func (nv *navigator) NodeType() xpath.NodeType {
	switch {
	case nv.top:
		return xpath.RootNode
	case nv.attr >= 0:
		return xpath.AttributeNode
	}
	switch nv.cur.typ {
	case TextNode:
		return xpath.TextNode
	case CommentNode:
		return xpath.CommentNode
	}
	return xpath.ElementNode
}

func splitName(name string) (prefix, local string) {
	if p, l, ok := strings.Cut(name, ":"); ok {
		return p, l
	}
	return "", name
}

func (nv *navigator) LocalName() string {
	if nv.top {
		return ""
	}
	if nv.attr >= 0 {
		_, l := splitName(nv.cur.attrs.Keys[nv.attr])
		return l
	}
	if nv.cur.typ != ElementNode {
		return ""
	}
	_, l := splitName(nv.cur.name)
	return l
}

func (nv *navigator) Prefix() string {
	if nv.top {
		return ""
	}
	if nv.attr >= 0 {
		p, _ := splitName(nv.cur.attrs.Keys[nv.attr])
		return p
	}
	if nv.cur.typ != ElementNode {
		return ""
	}
	p, _ := splitName(nv.cur.name)
	return p
}

func (nv *navigator) Value() string {
	switch {
	case nv.top:
		return nv.root.TextContent()
	case nv.attr >= 0:
		return nv.cur.attrs.Values[nv.attr]
	}
	return nv.cur.TextContent()
}

func (nv *navigator) Copy() xpath.NodeNavigator {
	cp := *nv
	return &cp
}

func (nv *navigator) MoveToRoot() {
	nv.cur = nv.root
	nv.top = true
	nv.attr = -1
}

func (nv *navigator) MoveToParent() bool {
	switch {
	case nv.top:
		return false
	case nv.attr >= 0:
		nv.attr = -1
		return true
	case nv.cur.parent != nil:
		nv.cur = nv.cur.parent
		return true
	case nv.cur == nv.root:
		nv.top = true
		return true
	}
	return false
}

func (nv *navigator) MoveToNextAttribute() bool {
	if nv.top || nv.cur.typ != ElementNode || nv.attr+1 >= nv.cur.attrs.Len() {
		return false
	}
	nv.attr++
	return true
}

func (nv *navigator) MoveToChild() bool {
	if nv.attr >= 0 {
		return false
	}
	if nv.top {
		nv.top = false
		nv.cur = nv.root
		return true
	}
	if c := nv.cur.FirstChild(); c != nil {
		nv.cur = c
		return true
	}
	return false
}

func (nv *navigator) MoveToFirst() bool {
	if nv.top || nv.attr >= 0 || nv.cur.parent == nil {
		return false
	}
	if f := nv.cur.parent.FirstChild(); f != nv.cur {
		nv.cur = f
		return true
	}
	return false
}

func (nv *navigator) MoveToNext() bool {
	if nv.top || nv.attr >= 0 {
		return false
	}
	if nx := nv.cur.Next(); nx != nil {
		nv.cur = nx
		return true
	}
	return false
}

func (nv *navigator) MoveToPrevious() bool {
	if nv.top || nv.attr >= 0 {
		return false
	}
	if pv := nv.cur.Prev(); pv != nil {
		nv.cur = pv
		return true
	}
	return false
}

func (nv *navigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*navigator)
	if !ok || o.root != nv.root {
		return false
	}
	*nv = *o
	return true
}
