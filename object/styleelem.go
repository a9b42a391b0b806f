// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"log/slog"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/repr"
	"cogentcore.org/canvas/style"
)

// StyleElem is a style element. Its text is a CSS stylesheet that
// applies to the whole document.
type StyleElem struct {
	ObjectBase

	// Type is the type attribute; only "" and text/css are read.
	Type string

	sheet *style.Sheet
}

func (se *StyleElem) Build(doc *Document, node *repr.Node) {
	se.ObjectBase.Build(doc, node)
	se.ReadAttr(attr.Type)
	doc.AddResource("style", se)
	doc.stylesheetChanged()
}

func (se *StyleElem) Release() {
	doc := se.doc
	doc.RemoveResource("style", se)
	se.ObjectBase.Release()
	doc.stylesheetChanged()
}

func (se *StyleElem) Set(key attr.Attr, value *string) bool {
	if key != attr.Type {
		return se.ObjectBase.Set(key, value)
	}
	se.Type = ""
	if value != nil {
		se.Type = *value
	}
	se.contentChanged()
	return true
}

// IsCSS returns whether the content is read as CSS.
func (se *StyleElem) IsCSS() bool {
	return se.Type == "" || se.Type == "text/css"
}

// Sheet returns the parsed stylesheet. A malformed stylesheet has
// no rules.
func (se *StyleElem) Sheet() *style.Sheet {
	if se.sheet != nil {
		return se.sheet
	}
	se.sheet = &style.Sheet{}
	if !se.IsCSS() || se.node == nil {
		return se.sheet
	}
	sh, err := style.ParseSheet(se.node.TextContent())
	if err != nil {
		slog.Debug("object: malformed stylesheet", "object", se.String(), "err", err)
		return se.sheet
	}
	se.sheet = sh
	return sh
}

func (se *StyleElem) contentChanged() {
	se.sheet = nil
	if se.doc != nil && !se.released {
		se.doc.stylesheetChanged()
	}
}

func (se *StyleElem) ChildAdded(child, prev *repr.Node) {
	se.ObjectBase.ChildAdded(child, prev)
	se.contentChanged()
}

func (se *StyleElem) ChildRemoved(child *repr.Node) {
	se.ObjectBase.ChildRemoved(child)
	se.contentChanged()
}

func (se *StyleElem) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = se.ObjectBase.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	setOrRemove(node, "type", se.Type, se.Type != "")
	if node != se.node && flags&WriteBuild != 0 && se.node != nil {
		node.AppendChild(rdoc.CreateTextNode(se.node.TextContent()))
	}
	return node
}
