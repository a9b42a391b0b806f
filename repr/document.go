// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repr is the XML tree that backs a document: an ordered,
// mutable tree of element, text and comment nodes with attribute
// lists, change observers, a transaction log for undo, and XML
// parsing, writing and XPath queries.
package repr

import (
	"errors"
)

// ErrNotElement is returned when an element is required.
var ErrNotElement = errors.New("repr: not an element")

// Document owns the nodes of one XML tree.
type Document struct {
	root *Node

	// namespaces maps prefixes that are not built in to their URIs,
	// as read from the parsed file, so that writing keeps them.
	namespaces map[string]string

	obs         observers
	interactive bool

	// log is the current transaction, nil when not recording.
	log *[]Event
}

// NewDocument returns a new document with an empty svg:svg root element.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.CreateElement("svg:svg")
	return d
}

// Root returns the root element.
func (d *Document) Root() *Node {
	return d.root
}

// SetRoot replaces the root element, which must be a parentless
// element of this document.
func (d *Document) SetRoot(n *Node) error {
	if n.typ != ElementNode {
		return ErrNotElement
	}
	if n.doc != d || n.parent != nil {
		return errors.New("repr: root must be a parentless node of the document")
	}
	d.root = n
	return nil
}

// CreateElement returns a new element with the given qualified name.
// The node has no parent until it is added to one.
func (d *Document) CreateElement(name string) *Node {
	return &Node{doc: d, typ: ElementNode, name: name}
}

// CreateTextNode returns a new text node.
func (d *Document) CreateTextNode(content string) *Node {
	return &Node{doc: d, typ: TextNode, name: "string", content: content}
}

// CreateComment returns a new comment node.
func (d *Document) CreateComment(content string) *Node {
	return &Node{doc: d, typ: CommentNode, name: "comment", content: content}
}

// AddObserver registers an observer of changes to every node of
// the document. Document observers are notified after the
// observers of the changed node.
func (d *Document) AddObserver(o Observer) {
	d.obs.add(o)
}

// RemoveObserver removes a document observer.
func (d *Document) RemoveObserver(o Observer) bool {
	return d.obs.remove(o)
}

// SetInteractive sets whether following attribute changes are part of
// an interactive edit, such as a drag, which observers may use to
// defer expensive work.
func (d *Document) SetInteractive(interactive bool) {
	d.interactive = interactive
}

// BeginTransaction starts recording changes. If a transaction is
// already open it stays open with its events.
func (d *Document) BeginTransaction() {
	if d.log == nil {
		d.log = &[]Event{}
	}
}

// InTransaction returns whether changes are being recorded.
func (d *Document) InTransaction() bool {
	return d.log != nil
}

// Commit ends the transaction and returns its events in the order the
// changes were made. It returns nil if no transaction is open.
func (d *Document) Commit() []Event {
	if d.log == nil {
		return nil
	}
	evs := *d.log
	d.log = nil
	return evs
}

// Rollback ends the transaction and reverts its changes.
func (d *Document) Rollback() {
	evs := d.Commit()
	Undo(evs)
}

func (d *Document) record(ev Event) {
	if d.log != nil {
		*d.log = append(*d.log, ev)
	}
}
