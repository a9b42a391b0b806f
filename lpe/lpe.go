// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lpe provides the live path effects: parameterized geometry
// transformations applied to path data, identified by a string key
// stored in the effect attribute of an inkscape:path-effect element.
package lpe

import (
	"fmt"
	"slices"

	"cogentcore.org/canvas/ppath"
)

// Kind is the kind of a live path effect.
type Kind int32

const (
	// Invalid is an unknown or missing effect kind,
	// which has no implementation.
	Invalid Kind = iota

	BoundingBox
	CircleWithRadius
	MirrorSymmetry
	RotateCopies
	Transform2Pts

	// KindsN is the number of kinds.
	KindsN
)

type kindEntry struct {
	kind  Kind
	key   string
	label string
}

var kindTable = [...]kindEntry{
	{Invalid, "INVALID", "Invalid"},
	{BoundingBox, "bounding_box", "Bounding Box"},
	{CircleWithRadius, "circle_with_radius", "Circle (by center and radius)"},
	{MirrorSymmetry, "mirror_symmetry", "Mirror symmetry"},
	{RotateCopies, "rotate_copies", "Rotate copies"},
	{Transform2Pts, "transform_2pts", "Transform by 2 points"},
}

// the table has exactly one entry per kind
var (
	_ [len(kindTable) - int(KindsN)]struct{}
	_ [int(KindsN) - len(kindTable)]struct{}
)

var byKey map[string]Kind

func init() {
	byKey = make(map[string]Kind, len(kindTable))
	for i, e := range kindTable {
		if int(e.kind) != i {
			panic(fmt.Sprintf("lpe: table entry %d declares kind %d", i, e.kind))
		}
		if _, dup := byKey[e.key]; dup {
			panic("lpe: duplicate key " + e.key)
		}
		byKey[e.key] = e.kind
	}
}

// KindFromKey returns the kind with the given key,
// or [Invalid] for an unknown key.
func KindFromKey(key string) Kind {
	return byKey[key]
}

// Key returns the key of the kind, as stored in the effect attribute.
func (k Kind) Key() string {
	if k < 0 || k >= KindsN {
		return kindTable[Invalid].key
	}
	return kindTable[k].key
}

// Label returns the user-visible name of the kind.
func (k Kind) Label() string {
	if k < 0 || k >= KindsN {
		return kindTable[Invalid].label
	}
	return kindTable[k].label
}

func (k Kind) String() string {
	return k.Key()
}

// Keys returns the keys of the valid kinds, sorted.
func Keys() []string {
	keys := make([]string, 0, len(kindTable)-1)
	for _, e := range kindTable[1:] {
		keys = append(keys, e.key)
	}
	slices.Sort(keys)
	return keys
}

// Param is a named parameter of an effect, with its value as written
// in the attribute of the same name.
type Param struct {
	Name  string
	Value string
}

// Effect is the implementation of one kind of live path effect.
type Effect interface {
	// Kind returns the kind of the effect.
	Kind() Kind

	// ReadParam reads the parameter with the given name. A nil value
	// resets it to its default, as does a malformed value. It returns
	// false if the effect has no such parameter.
	ReadParam(name string, value *string) bool

	// Params returns the parameters with their current values.
	Params() []Param

	// DoEffect returns the path with the effect applied.
	// The input is not modified.
	DoEffect(p ppath.Path) ppath.Path
}

// New returns a new effect of the given kind with default parameters,
// or nil for [Invalid] and out of range kinds.
func New(kind Kind) Effect {
	switch kind {
	case BoundingBox:
		return newBoundingBox()
	case CircleWithRadius:
		return &circleWithRadius{base: base{kind: CircleWithRadius}}
	case MirrorSymmetry:
		return newMirrorSymmetry()
	case RotateCopies:
		return newRotateCopies()
	case Transform2Pts:
		return newTransform2Pts()
	}
	return nil
}
