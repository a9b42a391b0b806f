// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/canvas/signal"
)

// ErrExternalRef is returned for a reference that does not name an id
// in the same document.
var ErrExternalRef = errors.New("object: reference is not to an id in the document")

// TargetChange is the value of [Reference.Changed].
type TargetChange struct {
	Old, New Object
}

// Reference is a link from an owner object to the object with a given
// id in the same document. The target follows the id: it is resolved
// again whenever an object is bound to or unbound from the id. The
// target counts the reference in [ObjectBase.HrefCount].
type Reference struct {

	// Changed is emitted when the target changes.
	Changed signal.Signal[TargetChange]

	owner  Object
	accept func(o Object) bool
	href   string
	id     string
	target Handle
	conn   signal.Connection
}

// NewReference returns a reference owned by owner that accepts
// the targets for which accept returns true; nil accepts all.
func NewReference(owner Object, accept func(o Object) bool) *Reference {
	r := &Reference{}
	r.init(owner, accept)
	return r
}

func (r *Reference) init(owner Object, accept func(o Object) bool) {
	r.owner = owner
	r.accept = accept
}

// Href returns the linked href, or "" if not linked.
func (r *Reference) Href() string { return r.href }

// IsLinked returns whether an href is linked, resolved or not.
func (r *Reference) IsLinked() bool { return r.href != "" }

// Link links the reference to href, which must be of the form #id.
// Linking the current href does nothing. On error the reference is
// unlinked.
func (r *Reference) Link(href string) error {
	if href != "" && href == r.href {
		return nil
	}
	id, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
	r.Unlink()
	if !ok || id == "" {
		return fmt.Errorf("%w: %q", ErrExternalRef, href)
	}
	doc := r.owner.AsObject().doc
	r.href = href
	r.id = id
	r.conn = doc.ConnectIDChanged(id, r.setTarget)
	r.setTarget(doc.ObjectByID(id))
	return nil
}

// TryLink links href, logging instead of returning an error.
// An empty href unlinks.
func (r *Reference) TryLink(href string) {
	if href == "" {
		r.Unlink()
		return
	}
	if err := r.Link(href); err != nil {
		slog.Debug("object: reference not linked", "owner", r.owner.AsObject().String(), "err", err)
	}
}

// Unlink drops the href and the target.
func (r *Reference) Unlink() {
	if r.href == "" {
		return
	}
	doc := r.owner.AsObject().doc
	doc.DisconnectIDChanged(r.id, r.conn)
	r.href = ""
	r.id = ""
	r.conn = 0
	r.setTarget(nil)
}

// Target returns the target object, or nil.
func (r *Reference) Target() Object {
	if !r.target.IsValid() {
		return nil
	}
	return r.owner.AsObject().doc.Resolve(r.target)
}

// acceptable returns whether o may be the target: the filter accepts
// it, and it is neither the owner nor an element that contains the
// owner, which would make a cycle.
func (r *Reference) acceptable(o Object) bool {
	if r.accept != nil && !r.accept(o) {
		return false
	}
	node := o.AsObject().node
	for n := r.owner.AsObject().node; n != nil; n = n.Parent() {
		if n == node {
			return false
		}
	}
	for a := r.owner; a != nil; a = a.AsObject().ParentObject() {
		if a.AsObject().node == node {
			return false
		}
	}
	return true
}

func (r *Reference) setTarget(o Object) {
	if o != nil && !r.acceptable(o) {
		slog.Debug("object: reference target rejected", "owner", r.owner.AsObject().String(), "target", o.AsObject().String())
		o = nil
	}
	old := r.Target()
	if old == o {
		return
	}
	r.target = Handle{}
	if old != nil {
		old.AsObject().UnhrefObject(r.owner)
	}
	if o != nil {
		o.AsObject().HrefObject(r.owner)
		r.target = o.AsObject().handle
	}
	r.Changed.Emit(TargetChange{Old: old, New: o})
}

// Ref is a [Reference] that accepts targets of type T.
type Ref[T any] struct {
	Reference
}

// NewRef returns a reference owned by owner that accepts targets of type T.
func NewRef[T any](owner Object) *Ref[T] {
	r := &Ref[T]{}
	r.init(owner, func(o Object) bool {
		_, ok := o.(T)
		return ok
	})
	return r
}

// Object returns the target as T, or the zero T.
func (r *Ref[T]) Object() T {
	t, _ := r.Target().(T)
	return t
}

type (
	// ClipPathRef is the clip-path reference of an item.
	ClipPathRef = Ref[*ClipPath]

	// MaskRef is the mask reference of an item.
	MaskRef = Ref[*Mask]

	// PaintServerRef is a fill or stroke url reference.
	PaintServerRef = Ref[PaintServer]

	// FilterRef is the filter reference of an item.
	FilterRef = Ref[FilterObject]

	// UseRef is the href of a use element.
	UseRef = Ref[Itemer]
)

// syncRef links the reference at *rp to href, creating it on first
// need with changed connected to it.
func syncRef[T any](rp **Ref[T], owner Object, href string, changed func(TargetChange)) {
	if *rp == nil {
		if href == "" {
			return
		}
		*rp = NewRef[T](owner)
		(*rp).Changed.Connect(changed)
	}
	(*rp).TryLink(href)
}

// unlinkRef unlinks the reference if there is one.
func unlinkRef[T any](r *Ref[T]) {
	if r != nil {
		r.Unlink()
	}
}
