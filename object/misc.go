// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "strings"

// Title is a title element: the accessible name of its parent.
type Title struct {
	ObjectBase
}

// Text returns the text of the title.
func (t *Title) Text() string {
	return strings.TrimSpace(t.node.TextContent())
}

// Desc is a desc element: the description of its parent.
type Desc struct {
	ObjectBase
}

// Text returns the text of the description.
func (d *Desc) Text() string {
	return strings.TrimSpace(d.node.TextContent())
}

// Metadata is a metadata element. Its content, usually RDF, is kept
// in the node and has no objects.
type Metadata struct {
	ObjectBase
}

// Title returns the text of the first title child, or "".
func (ob *ObjectBase) Title() string {
	for _, c := range ob.Children {
		if t, ok := c.(*Title); ok {
			return t.Text()
		}
	}
	return ""
}

// Desc returns the text of the first desc child, or "".
func (ob *ObjectBase) Desc() string {
	for _, c := range ob.Children {
		if d, ok := c.(*Desc); ok {
			return d.Text()
		}
	}
	return ""
}
