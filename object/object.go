// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object is the live object model of an SVG document: one typed
// [Object] per element of the backing [repr] tree, kept in sync with it
// through attribute dispatch, with dirty-flag propagation, update and
// modified passes, references to shared resources, and projections of
// renderable items into [drawing] views.
package object

import (
	"log/slog"
	"strings"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/repr"
	"cogentcore.org/canvas/signal"
	"cogentcore.org/canvas/style"
	"cogentcore.org/canvas/tree"
)

// Object is the interface for all document objects. Kinds embed
// [ObjectBase], or a type that embeds it, and override the hooks they
// need. Every override calls the embedded method for what it does not
// handle itself, so that each level of the embedding chain gets its
// chance.
type Object interface {
	tree.Node

	// AsObject returns the [ObjectBase] of the object.
	AsObject() *ObjectBase

	// Tag returns the qualified element name, such as svg:rect.
	Tag() string

	// Build reads the attributes of the node and builds the children.
	// It is called once, when the object is created for its node.
	Build(doc *Document, node *repr.Node)

	// Release undoes what Build registered and drops references.
	// It is called once, before the object is discarded.
	Release()

	// Set reads one attribute. A nil value means the attribute is
	// absent and resets the field to its default. It returns whether
	// the attribute was handled.
	Set(key attr.Attr, value *string) bool

	// Update recomputes the state implied by the flags and pushes it
	// to the projections. Children were updated before.
	Update(ctx *UpdateContext, flags Flags)

	// Modified is the notification pass after updates.
	// The base implementation passes it on to the children.
	Modified(flags Flags)

	// Write writes the state to the node, or to a new node when node is
	// nil and flags has [WriteBuild], and returns the node.
	Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node

	// ChildAdded is called after an element child was added to the
	// node, after prev.
	ChildAdded(child, prev *repr.Node)

	// ChildRemoved is called after a child was removed from the node.
	ChildRemoved(child *repr.Node)

	// OrderChanged is called after a child of the node was moved
	// from after oldPrev to after newPrev.
	OrderChanged(child, oldPrev, newPrev *repr.Node)
}

// ObjectBase is the base type of all objects. It holds the identity,
// the style and the modification state, and implements the [Object]
// hooks for the attributes every element has.
type ObjectBase struct {
	tree.NodeBase

	// ModifiedSignal is emitted with the flags after the modified
	// pass reached the object.
	ModifiedSignal signal.Signal[Flags]

	// ReleaseSignal is emitted when the object starts releasing.
	ReleaseSignal signal.Signal[Object]

	doc    *Document
	node   *repr.Node
	tag    string
	handle Handle
	obs    *nodeObserver

	id       string
	label    string
	collect  bool
	preserve bool

	style *style.Style

	cloned   bool
	released bool
	updating bool

	uflags Flags
	mflags Flags

	hrefCount int
}

func (ob *ObjectBase) AsObject() *ObjectBase { return ob }

func (ob *ObjectBase) Tag() string { return ob.tag }

// LocalTag returns the tag without its namespace prefix, such as rect.
func (ob *ObjectBase) LocalTag() string {
	if _, local, ok := strings.Cut(ob.tag, ":"); ok {
		return local
	}
	return ob.tag
}

// initObject is called by the factory on a new object.
func (ob *ObjectBase) initObject(this Object, tag string) {
	ob.InitNode(this)
	ob.tag = tag
	ob.Name = ob.LocalTag()
	ob.style = style.New()
}

// this returns the object as its true type, or nil once released.
func (ob *ObjectBase) this() Object {
	o, _ := ob.This.(Object)
	return o
}

// Document returns the document of the object.
func (ob *ObjectBase) Document() *Document { return ob.doc }

// Node returns the backing node.
func (ob *ObjectBase) Node() *repr.Node { return ob.node }

// Handle returns the stable handle of the object.
func (ob *ObjectBase) Handle() Handle { return ob.handle }

// ID returns the id, or "" for none.
func (ob *ObjectBase) ID() string { return ob.id }

// Label returns the inkscape:label.
func (ob *ObjectBase) Label() string { return ob.label }

// Style returns the style. It is shared, not copied.
func (ob *ObjectBase) Style() *style.Style { return ob.style }

// IsCloned returns whether the object is part of the clone
// shown by a use element.
func (ob *ObjectBase) IsCloned() bool { return ob.cloned }

// IsReleased returns whether the object was released.
func (ob *ObjectBase) IsReleased() bool { return ob.released }

// PreservesSpace returns whether xml:space is preserve.
func (ob *ObjectBase) PreservesSpace() bool { return ob.preserve }

// Collectable returns whether inkscape:collect is always, so that the
// object is deleted when nothing references it.
func (ob *ObjectBase) Collectable() bool { return ob.collect }

// Flags returns the flags waiting for the update and modified passes.
func (ob *ObjectBase) Flags() (update, modified Flags) {
	return ob.uflags, ob.mflags
}

// ParentObject returns the parent object, or nil for the root.
func (ob *ObjectBase) ParentObject() Object {
	if ob.Parent == nil {
		return nil
	}
	return ob.Parent.(Object)
}

// ChildObjects returns a snapshot of the child objects.
func (ob *ObjectBase) ChildObjects() []Object {
	res := make([]Object, 0, len(ob.Children))
	for _, c := range ob.Children {
		res = append(res, c.(Object))
	}
	return res
}

// childHandles returns a snapshot of the handles of the children,
// for iterating while callbacks may release them.
func (ob *ObjectBase) childHandles() []Handle {
	res := make([]Handle, len(ob.Children))
	for i, c := range ob.Children {
		res[i] = c.(Object).AsObject().handle
	}
	return res
}

// childIndexAfter returns the index for a child whose node follows
// prev: after the object of the nearest previous sibling that has one.
func (ob *ObjectBase) childIndexAfter(prev *repr.Node) int {
	for p := prev; p != nil; p = p.Prev() {
		for i, c := range ob.Children {
			if c.(Object).AsObject().node == p {
				return i + 1
			}
		}
	}
	return 0
}

// ChildByNode returns the child object for the given node, or nil.
func (ob *ObjectBase) ChildByNode(node *repr.Node) Object {
	for _, c := range ob.Children {
		if o := c.(Object); o.AsObject().node == node {
			return o
		}
	}
	return nil
}

// HrefCount returns the number of references to the object.
func (ob *ObjectBase) HrefCount() int { return ob.hrefCount }

// HrefObject records a reference to the object by owner.
func (ob *ObjectBase) HrefObject(owner Object) {
	ob.hrefCount++
}

// UnhrefObject removes a reference recorded with [ObjectBase.HrefObject].
// A collectable object left without references is queued for deletion.
func (ob *ObjectBase) UnhrefObject(owner Object) {
	if ob.hrefCount == 0 {
		slog.Debug("object: unbalanced UnhrefObject", "object", ob.String())
		return
	}
	ob.hrefCount--
	if ob.hrefCount == 0 && ob.collect && !ob.released && ob.doc != nil {
		ob.doc.queueOrphan(ob.handle)
	}
}

// ReadAttr reads the attribute of the node with [Object.Set].
func (ob *ObjectBase) ReadAttr(keys ...attr.Attr) {
	this := ob.this()
	for _, key := range keys {
		var value *string
		if ob.node != nil {
			value = ob.node.AttributePtr(attr.Name(key))
		}
		this.Set(key, value)
	}
}

// attributeChanged dispatches a change of the node.
func (ob *ObjectBase) attributeChanged(name string, value *string) {
	this := ob.this()
	key := attr.Lookup(name)
	if key == attr.Invalid {
		if pr, ok := this.(paramReader); ok {
			pr.ReadParam(name, value)
		}
		return
	}
	if !this.Set(key, value) {
		slog.Debug("object: attribute not handled", "object", ob.String(), "attribute", name)
	}
}

// paramReader is implemented by kinds that read attributes whose names
// are not in the registry, such as path effect parameters.
type paramReader interface {
	ReadParam(name string, value *string) bool
}

// styleWatcher is implemented by kinds that depend on the style,
// called after it was read or cascaded.
type styleWatcher interface {
	styleChanged()
}

func (ob *ObjectBase) Build(doc *Document, node *repr.Node) {
	ob.doc = doc
	ob.node = node
	ob.ReadAttr(attr.XMLSpace, attr.InkscapeLabel, attr.InkscapeCollect)
	ob.readStyle(attr.Invalid, nil)
	for _, c := range node.Children() {
		if c.Type() == repr.ElementNode {
			doc.buildObject(ob.this(), c, ob.cloned)
		}
	}
}

// Release releases the children, then drops the id binding,
// the node observer and the handle.
func (ob *ObjectBase) Release() {
	doc := ob.doc
	for _, h := range ob.childHandles() {
		if c := doc.Resolve(h); c != nil {
			doc.release(c)
		}
	}
	if !ob.cloned {
		if ob.id != "" {
			doc.unbindID(ob.id, ob.handle)
		}
		if doc.byRepr[ob.node] == ob.handle {
			delete(doc.byRepr, ob.node)
		}
	}
	if ob.obs != nil {
		ob.node.RemoveObserver(ob.obs)
		ob.obs = nil
	}
	ob.ModifiedSignal.DisconnectAll()
	doc.objects.remove(ob.handle)
}

func (ob *ObjectBase) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.ID:
		ob.setID(value)
	case attr.InkscapeLabel:
		ob.label = ""
		if value != nil {
			ob.label = *value
		}
	case attr.InkscapeCollect:
		ob.collect = value != nil && *value == "always"
	case attr.XMLSpace:
		ob.preserve = value != nil && *value == "preserve"
		ob.RequestDisplayUpdate(ModifiedFlag)
	case attr.Style, attr.Class:
		ob.readStyle(key, value)
		ob.RequestDisplayUpdate(ModifiedFlag | StyleModifiedFlag)
	default:
		if !key.IsCSS() {
			return false
		}
		ob.readStyle(key, value)
		ob.RequestDisplayUpdate(ModifiedFlag | StyleModifiedFlag)
	}
	return true
}

// setID binds the object to a new id. An object that holds the id
// already is given a new one.
func (ob *ObjectBase) setID(value *string) {
	if ob.cloned || ob.doc == nil {
		return
	}
	id := ""
	if value != nil {
		id = *value
	}
	if id == ob.id {
		return
	}
	this := ob.this()
	doc := ob.doc
	if id != "" {
		if other := doc.ObjectByID(id); other != nil && other != this {
			ob2 := other.AsObject()
			ob2.node.SetAttribute("id", doc.GenerateUniqueID(ob2.LocalTag()))
		}
	}
	if ob.id != "" {
		doc.unbindID(ob.id, ob.handle)
	}
	ob.id = id
	ob.Name = ob.LocalTag()
	if id != "" {
		ob.Name = id
		doc.bindID(id, this)
	}
}

// readStyle reads the style again from its sources, in increasing
// precedence: presentation attributes, the document stylesheet and
// the style attribute. The value of the override attribute is taken
// from value instead of the node.
func (ob *ObjectBase) readStyle(override attr.Attr, value *string) {
	s := ob.style
	s.Defaults()
	get := func(key attr.Attr) *string {
		if key == override {
			return value
		}
		if ob.node == nil {
			return nil
		}
		return ob.node.AttributePtr(attr.Name(key))
	}
	if ob.node != nil {
		for _, name := range ob.node.AttributeKeys() {
			key := attr.Lookup(name)
			if key == override || !key.IsCSS() {
				continue
			}
			s.ReadFromAttribute(key, ob.node.AttributePtr(name))
		}
	}
	if override.IsCSS() {
		s.ReadFromAttribute(override, value)
	}
	if ob.doc != nil {
		class := ""
		if c := get(attr.Class); c != nil {
			class = *c
		}
		ob.doc.Stylesheet().Apply(s, ob.LocalTag(), ob.id, class)
	}
	if str := get(attr.Style); str != nil {
		if err := s.ReadStyleString(*str); err != nil {
			slog.Debug("object: malformed style", "object", ob.String(), "err", err)
		}
	}
	ob.cascadeStyle()
}

// cascadeStyle resolves the style against the parent style.
func (ob *ObjectBase) cascadeStyle() {
	var ps *style.Style
	if p := ob.ParentObject(); p != nil {
		ps = p.AsObject().style
	}
	ob.style.Cascade(ps)
	if w, ok := ob.This.(styleWatcher); ok {
		w.styleChanged()
	}
}

// SetStyleProperty sets a property in the style attribute, replacing a
// presentation attribute of the same name.
func (ob *ObjectBase) SetStyleProperty(key attr.Attr, value string) {
	if ob.node == nil {
		return
	}
	s := &style.Style{}
	s.Defaults()
	if str, ok := ob.node.Attribute("style"); ok {
		s.ReadStyleString(str)
	}
	s.ReadProperty(key, value, style.SourceStyleProperty)
	ob.node.RemoveAttribute(attr.Name(key))
	ob.node.SetAttribute("style", s.Write(style.WriteStyleOnly))
}

func (ob *ObjectBase) Update(ctx *UpdateContext, flags Flags) {}

func (ob *ObjectBase) Modified(flags Flags) {
	cflags := flags
	if cflags&ModifiedFlag != 0 {
		cflags |= ParentModifiedFlag
	}
	cflags &= ModifiedCascade
	for _, h := range ob.childHandles() {
		c := ob.doc.Resolve(h)
		if c == nil {
			continue
		}
		cb := c.AsObject()
		if cflags != 0 || cb.mflags&(ModifiedFlag|ChildModifiedFlag) != 0 {
			cb.EmitModified(cflags)
		}
	}
}

func (ob *ObjectBase) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	if node == nil {
		if flags&WriteBuild == 0 {
			return nil
		}
		node = rdoc.CreateElement(ob.tag)
	}
	if flags&WriteBuild != 0 && flags&WriteNoChildren == 0 && node != ob.node {
		for _, c := range ob.ChildObjects() {
			if cn := c.Write(rdoc, nil, flags); cn != nil {
				node.AppendChild(cn)
			}
		}
	} else if flags&WriteNoChildren == 0 {
		for _, c := range ob.ChildObjects() {
			c.Write(rdoc, c.AsObject().node, flags)
		}
	}
	if ob.id != "" && !ob.cloned {
		node.SetAttribute("id", ob.id)
	}
	if flags&WriteExt != 0 {
		setOrRemove(node, "inkscape:label", ob.label, ob.label != "")
		setOrRemove(node, "inkscape:collect", "always", ob.collect)
	}
	if ob.preserve {
		node.SetAttribute("xml:space", "preserve")
	}
	sflags := style.WriteStyleOnly
	if node != ob.node {
		// presentation attributes are not copied to a new node
		sflags = style.WriteIfSet
	}
	setOrRemove(node, "style", ob.style.Write(sflags), true)
	if v, _ := node.Attribute("style"); v == "" {
		node.RemoveAttribute("style")
	}
	return node
}

// setOrRemove sets the attribute when set is true, and removes it otherwise.
func setOrRemove(node *repr.Node, key, value string, set bool) {
	if set {
		node.SetAttribute(key, value)
	} else {
		node.RemoveAttribute(key)
	}
}

// UpdateRepr writes the object to its own node.
func (ob *ObjectBase) UpdateRepr(flags WriteFlags) {
	this := ob.this()
	if this == nil || ob.node == nil || ob.cloned {
		return
	}
	this.Write(ob.doc.rdoc, ob.node, flags)
}

func (ob *ObjectBase) ChildAdded(child, prev *repr.Node) {
	if child.Type() != repr.ElementNode {
		return
	}
	ob.doc.buildObject(ob.this(), child, ob.cloned)
}

func (ob *ObjectBase) ChildRemoved(child *repr.Node) {
	if c := ob.ChildByNode(child); c != nil {
		ob.doc.release(c)
	}
}

func (ob *ObjectBase) OrderChanged(child, oldPrev, newPrev *repr.Node) {
	c := ob.ChildByNode(child)
	if c == nil {
		return
	}
	ob.NodeBase.RemoveChild(c)
	ob.InsertChild(c, ob.childIndexAfter(newPrev))
}

// Delete removes the node of the object from its parent,
// which releases the object.
func (ob *ObjectBase) Delete() {
	if ob.cloned || ob.node == nil {
		return
	}
	ob.node.Unparent()
}

// nodeObserver forwards the changes of a node to its object. It holds
// the handle, so that changes that arrive after the object was
// released are dropped.
type nodeObserver struct {
	doc *Document
	h   Handle
}

func (no *nodeObserver) object() Object {
	return no.doc.Resolve(no.h)
}

func (no *nodeObserver) NotifyChildAdded(node, child, prev *repr.Node) {
	if o := no.object(); o != nil {
		o.ChildAdded(child, prev)
	}
}

func (no *nodeObserver) NotifyChildRemoved(node, child, prev *repr.Node) {
	if o := no.object(); o != nil {
		o.ChildRemoved(child)
	}
}

func (no *nodeObserver) NotifyChildOrderChanged(node, child, oldPrev, newPrev *repr.Node) {
	if o := no.object(); o != nil {
		o.OrderChanged(child, oldPrev, newPrev)
	}
}

func (no *nodeObserver) NotifyContentChanged(node *repr.Node, oldContent, newContent string) {}

func (no *nodeObserver) NotifyAttributeChanged(node *repr.Node, key string, oldValue, newValue *string, interactive bool) {
	if o := no.object(); o != nil {
		o.AsObject().attributeChanged(key, newValue)
	}
}
