// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"fmt"
	"log/slog"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/lpe"
	"cogentcore.org/canvas/repr"
)

// PathEffectObject is an inkscape:path-effect element: a live path
// effect shared by the items that list it. The effect attribute
// selects the kind, and the other attributes are its parameters.
type PathEffectObject struct {
	ObjectBase

	// Kind is the kind of the effect; [lpe.Invalid] for an unknown
	// or missing effect attribute, which has no implementation.
	Kind lpe.Kind

	// Visible is the is_visible attribute. Hidden effects are skipped.
	Visible bool

	// Version is the lpeversion attribute.
	Version string

	effect lpe.Effect
}

func (pe *PathEffectObject) initObject(this Object, tag string) {
	pe.ObjectBase.initObject(this, tag)
	pe.Visible = true
}

func (pe *PathEffectObject) Build(doc *Document, node *repr.Node) {
	pe.ObjectBase.Build(doc, node)
	pe.ReadAttr(attr.PathEffect, attr.LPEIsVisible, attr.LPEVersion)
	doc.AddResource("path-effect", pe)
}

func (pe *PathEffectObject) Release() {
	pe.doc.RemoveResource("path-effect", pe)
	pe.ObjectBase.Release()
}

// Effect returns the implementation, or nil for [lpe.Invalid].
func (pe *PathEffectObject) Effect() lpe.Effect { return pe.effect }

func (pe *PathEffectObject) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.PathEffect:
		kind := lpe.Invalid
		if value != nil {
			kind = lpe.KindFromKey(*value)
			if kind == lpe.Invalid {
				slog.Debug("object: unknown path effect", "effect", *value)
			}
		}
		pe.setKind(kind)
	case attr.LPEIsVisible:
		pe.Visible = value == nil || *value != "false"
	case attr.LPEVersion:
		pe.Version = ""
		if value != nil {
			pe.Version = *value
		}
		return true
	default:
		if pe.ReadParam(attr.Name(key), value) {
			return true
		}
		return pe.ObjectBase.Set(key, value)
	}
	pe.RequestModified(ModifiedFlag)
	return true
}

// setKind sets the kind, with a new implementation whose parameters
// are read from the node.
func (pe *PathEffectObject) setKind(kind lpe.Kind) {
	if kind == pe.Kind && (pe.effect != nil) == (kind != lpe.Invalid) {
		return
	}
	pe.Kind = kind
	pe.effect = lpe.New(kind)
	if pe.effect == nil || pe.node == nil {
		return
	}
	for _, p := range pe.effect.Params() {
		pe.effect.ReadParam(p.Name, pe.node.AttributePtr(p.Name))
	}
}

// ReadParam reads a parameter of the effect. It returns false for a
// name that is not a parameter.
func (pe *PathEffectObject) ReadParam(name string, value *string) bool {
	if pe.effect == nil || !pe.effect.ReadParam(name, value) {
		return false
	}
	pe.RequestModified(ModifiedFlag)
	return true
}

// SetParam writes a parameter to the node.
func (pe *PathEffectObject) SetParam(name, value string) {
	pe.node.SetAttribute(name, value)
}

// ForkPrivateIfNecessary returns the effect itself if it has at most n
// users, and otherwise a private copy for the caller.
func (pe *PathEffectObject) ForkPrivateIfNecessary(n int) *PathEffectObject {
	fk, _ := forkPrivateIfNecessary(pe, n).(*PathEffectObject)
	if fk == nil {
		return pe
	}
	return fk
}

func (pe *PathEffectObject) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = pe.ObjectBase.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	if pe.effect != nil {
		node.SetAttribute("effect", pe.Kind.Key())
		for _, p := range pe.effect.Params() {
			node.SetAttribute(p.Name, p.Value)
		}
	}
	if !pe.Visible || flags&WriteAll != 0 {
		node.SetAttribute("is_visible", fmt.Sprint(pe.Visible))
	}
	setOrRemove(node, "lpeversion", pe.Version, pe.Version != "")
	return node
}

// CreatePathEffect adds a new path effect of the given kind to the
// defs, with its default parameters written, and returns it.
func (d *Document) CreatePathEffect(kind lpe.Kind) (*PathEffectObject, error) {
	e := lpe.New(kind)
	if e == nil {
		return nil, fmt.Errorf("object.CreatePathEffect: invalid kind %d", kind)
	}
	defs := d.EnsureDefs()
	n := d.rdoc.CreateElement("inkscape:path-effect")
	n.SetAttribute("id", d.GenerateUniqueID("path-effect"))
	n.SetAttribute("effect", kind.Key())
	for _, p := range e.Params() {
		n.SetAttribute(p.Name, p.Value)
	}
	n.SetAttribute("is_visible", "true")
	defs.node.AppendChild(n)
	pe, _ := d.ObjectByRepr(n).(*PathEffectObject)
	return pe, nil
}
