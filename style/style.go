// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style holds the cascaded CSS state of a document object:
// the values of the presentation attributes, the style attribute and
// the document stylesheet, resolved against the parent style.
package style

import (
	"image/color"
	"strings"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/base/keylist"
	"github.com/jinzhu/copier"
)

// Sources are where a property value was read from, in increasing
// order of precedence.
type Sources int32

const (
	// SourceUnset is a property that has not been read.
	SourceUnset Sources = iota

	// SourceAttribute is a presentation attribute, such as fill="red".
	SourceAttribute

	// SourceStylesheet is a rule of a style element.
	SourceStylesheet

	// SourceStyleProperty is the style attribute, such as style="fill:red".
	SourceStyleProperty
)

// Prop is one property of a [Style].
type Prop[T any] struct {

	// Value is the computed value: the read value, the inherited value,
	// or the default.
	Value T

	PropState
}

// PropState is the read state of a [Prop].
type PropState struct {

	// Set is whether the property was read.
	Set bool

	// Inherit is whether the read value is the inherit keyword.
	Inherit bool

	// Important is whether the value was marked !important.
	Important bool

	// Source is where the value was read from.
	Source Sources
}

// Style is the styling state of one object. The zero value is not
// valid: use [New].
type Style struct {
	Opacity         Prop[float32]
	Display         Prop[Displays]
	Visibility      Prop[Visibilities]
	Isolation       Prop[Isolations]
	MixBlendMode    Prop[BlendModes]
	ClipPath        Prop[URLRef]
	Mask            Prop[URLRef]
	Filter          Prop[URLRef]
	Color           Prop[color.RGBA]
	Fill            Prop[Paint]
	FillOpacity     Prop[float32]
	FillRule        Prop[FillRules]
	ClipRule        Prop[FillRules]
	Stroke          Prop[Paint]
	StrokeWidth     Prop[Length]
	StrokeOpacity   Prop[float32]
	StrokeLineCap   Prop[LineCaps]
	StrokeLineJoin  Prop[LineJoins]
	StrokeMiter     Prop[float32]
	StrokeDashArray Prop[DashArray]
	StrokeDashOff   Prop[Length]
	PaintOrder      Prop[string]
	FontSize        Prop[Length]
	FontFamily      Prop[string]
	StopColor       Prop[Paint]
	StopOpacity     Prop[float32]
	FloodColor      Prop[Paint]
	FloodOpacity    Prop[float32]
	D               Prop[string]

	// Unknown holds the declarations of the style attribute that are
	// not tracked properties, written back unchanged.
	Unknown keylist.List[string, string]
}

// New returns a new style with all properties at their defaults.
func New() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

// Defaults resets every property to its default, unset.
func (s *Style) Defaults() {
	for _, d := range properties {
		d.reset(s)
	}
	s.Unknown.Reset()
}

// Has returns whether the given attribute is a property tracked by [Style].
func Has(key attr.Attr) bool {
	return propertyOf(key) != nil
}

// Inherited returns whether the given property is inherited by default.
func Inherited(key attr.Attr) bool {
	d := propertyOf(key)
	return d != nil && d.inherited
}

// IsSet returns whether the given property was read.
func (s *Style) IsSet(key attr.Attr) bool {
	d := propertyOf(key)
	return d != nil && d.header(s).Set
}

// SourceOf returns where the given property was read from.
func (s *Style) SourceOf(key attr.Attr) Sources {
	d := propertyOf(key)
	if d == nil {
		return SourceUnset
	}
	return d.header(s).Source
}

// Property returns the written value of the given property,
// and whether it is set.
func (s *Style) Property(key attr.Attr) (string, bool) {
	d := propertyOf(key)
	if d == nil || !d.header(s).Set {
		return "", false
	}
	return d.format(s), true
}

// ReadProperty reads the value of a property from the given source.
// A value from a source of lower precedence than the current one is
// ignored. The inherit keyword marks the property for [Style.Cascade].
// A malformed value resets the property to its default. It returns
// false if the key is not a tracked property.
func (s *Style) ReadProperty(key attr.Attr, value string, src Sources) bool {
	d := propertyOf(key)
	if d == nil {
		return false
	}
	d.read(s, value, src, false)
	return true
}

// ReadFromAttribute reads a presentation attribute. A nil value means
// the attribute was removed, clearing the property if it came from
// the attribute.
func (s *Style) ReadFromAttribute(key attr.Attr, value *string) bool {
	d := propertyOf(key)
	if d == nil {
		return false
	}
	if value == nil {
		if d.header(s).Source == SourceAttribute {
			d.reset(s)
		}
		return true
	}
	d.read(s, *value, SourceAttribute, false)
	return true
}

// ClearProperty resets the given property to its default, unset.
func (s *Style) ClearProperty(key attr.Attr) {
	if d := propertyOf(key); d != nil {
		d.reset(s)
	}
}

// ClearSource resets the properties read from the given source.
func (s *Style) ClearSource(src Sources) {
	for _, d := range properties {
		if d.header(s).Source == src {
			d.reset(s)
		}
	}
	if src == SourceStyleProperty {
		s.Unknown.Reset()
	}
}

// Cascade resolves the properties against the parent style: inherited
// properties that are not set, and properties set to inherit, take the
// parent value. A nil parent resolves inherit to the default.
func (s *Style) Cascade(parent *Style) {
	for _, d := range properties {
		h := d.header(s)
		if h.Set && !h.Inherit {
			continue
		}
		if !h.Inherit && !d.inherited {
			continue
		}
		if parent == nil {
			d.setDefault(s)
			continue
		}
		d.inherit(s, parent)
	}
}

// WriteFlags control [Style.Write].
type WriteFlags int32

const (
	// WriteIfSet writes only the properties that are set.
	WriteIfSet WriteFlags = 1 << iota

	// WriteAlways writes every property with its computed value.
	WriteAlways

	// WriteStyleOnly writes only the properties read from the style
	// attribute, and the unknown declarations. It implies WriteIfSet.
	WriteStyleOnly
)

// Write returns the properties as the value of a style attribute, in
// property order, such as "fill:#ff0000;stroke-width:2".
func (s *Style) Write(flags WriteFlags) string {
	var decls []string
	for _, d := range properties {
		h := d.header(s)
		switch {
		case flags&WriteStyleOnly != 0:
			if !h.Set || h.Source != SourceStyleProperty {
				continue
			}
		case flags&WriteAlways == 0:
			if !h.Set {
				continue
			}
		}
		v := d.format(s)
		if h.Set && h.Inherit {
			v = "inherit"
		}
		if h.Important {
			v += " !important"
		}
		decls = append(decls, attr.Name(d.key)+":"+v)
	}
	for i, k := range s.Unknown.Keys {
		decls = append(decls, k+":"+s.Unknown.Values[i])
	}
	return strings.Join(decls, ";")
}

// CopyFrom sets the style to a deep copy of other.
func (s *Style) CopyFrom(other *Style) {
	copier.CopyWithOption(s, other, copier.Option{DeepCopy: true})
}

// Clone returns a deep copy of the style.
func (s *Style) Clone() *Style {
	cp := &Style{}
	cp.CopyFrom(s)
	return cp
}

// Visible returns whether the style displays its object:
// display is not none and visibility is visible.
func (s *Style) Visible() bool {
	return s.Display.Value != DisplayNone && s.Visibility.Value == Visible
}
