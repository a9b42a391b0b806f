// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repr

// Duplicate returns a deep copy of the node and its subtree,
// owned by the given document, without parent and observers.
func (n *Node) Duplicate(doc *Document) *Node {
	cp := &Node{doc: doc, typ: n.typ, name: n.name, content: n.content}
	cp.attrs.Copy(&n.attrs)
	cp.children = make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		cc := c.Duplicate(doc)
		cc.parent = cp
		cp.children = append(cp.children, cc)
	}
	return cp
}

// MergeFrom updates the node to match src, through the normal
// mutation methods so that observers see every change.
// Element children of src are matched to existing children by the
// value of the key attribute (typically id) and merged recursively;
// unmatched ones are duplicated and appended. Attributes of src are
// set on the node. If clean is true, children and attributes that
// src does not have are removed and the children are reordered to
// follow src.
func (n *Node) MergeFrom(src *Node, key string, clean bool) {
	if n.typ != ElementNode {
		n.SetContent(src.content)
		return
	}
	used := map[*Node]bool{}
	keep := make([]*Node, 0, len(src.children))
	for _, sc := range src.children {
		match := n.matchChild(sc, key, used)
		if match != nil {
			match.MergeFrom(sc, key, clean)
		} else {
			match = sc.Duplicate(n.doc)
			n.AppendChild(match)
		}
		used[match] = true
		keep = append(keep, match)
	}
	if clean {
		for _, c := range n.Children() {
			if !used[c] {
				n.RemoveChild(c)
			}
		}
		var prev *Node
		for _, c := range keep {
			if c.Prev() != prev {
				n.ChangeOrder(c, prev)
			}
			prev = c
		}
	}
	for i, k := range src.attrs.Keys {
		n.SetAttribute(k, src.attrs.Values[i])
	}
	if clean {
		for _, k := range n.AttributeKeys() {
			if _, ok := src.Attribute(k); !ok {
				n.RemoveAttribute(k)
			}
		}
	}
}

// matchChild returns the unused child of n that corresponds to sc:
// for elements, the one with the same name and key value, and for
// text and comments, the first one of the same type.
func (n *Node) matchChild(sc *Node, key string, used map[*Node]bool) *Node {
	if sc.typ != ElementNode {
		for _, c := range n.children {
			if c.typ == sc.typ && !used[c] {
				return c
			}
		}
		return nil
	}
	kv, ok := sc.Attribute(key)
	if key == "" || !ok {
		return nil
	}
	for _, c := range n.children {
		if c.typ != ElementNode || c.name != sc.name || used[c] {
			continue
		}
		if v, ok := c.Attribute(key); ok && v == kv {
			return c
		}
	}
	return nil
}
