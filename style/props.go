// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"cmp"
	"fmt"
	"image/color"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/math32"
)

// property describes how one property of a [Style] is read,
// written and inherited.
type property struct {
	key       attr.Attr
	inherited bool

	header     func(s *Style) *PropState
	read       func(s *Style, value string, src Sources, important bool)
	format     func(s *Style) string
	reset      func(s *Style)
	setDefault func(s *Style)
	inherit    func(s, parent *Style)
}

// newProperty returns the property for the given field of [Style].
func newProperty[T any](key attr.Attr, inherited bool, field func(s *Style) *Prop[T], def T, parse func(string) (T, error), format func(T) string) *property {
	return &property{
		key:       key,
		inherited: inherited,
		header: func(s *Style) *PropState {
			return &field(s).PropState
		},
		read: func(s *Style, value string, src Sources, important bool) {
			p := field(s)
			if p.Set {
				if p.Important && !important {
					return
				}
				if p.Source > src && !important {
					return
				}
			}
			value = strings.TrimSpace(value)
			if value == "inherit" {
				p.Value = def
				p.PropState = PropState{Set: true, Inherit: true, Important: important, Source: src}
				return
			}
			v, err := parse(value)
			if err != nil {
				slog.Debug("style: invalid property value", "property", attr.Name(key), "value", value, "err", err)
				*p = Prop[T]{Value: def}
				return
			}
			p.Value = v
			p.PropState = PropState{Set: true, Important: important, Source: src}
		},
		format: func(s *Style) string {
			return format(field(s).Value)
		},
		reset: func(s *Style) {
			*field(s) = Prop[T]{Value: def}
		},
		setDefault: func(s *Style) {
			field(s).Value = def
		},
		inherit: func(s, parent *Style) {
			field(s).Value = field(parent).Value
		},
	}
}

func parseString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalid)
	}
	return s, nil
}

func formatString(s string) string { return s }

func parsePaintOrder(s string) (string, error) {
	fs := strings.Fields(s)
	if len(fs) == 0 {
		return "", fmt.Errorf("%w: empty paint-order", ErrInvalid)
	}
	if len(fs) == 1 && fs[0] == "normal" {
		return "normal", nil
	}
	for _, f := range fs {
		if f != "fill" && f != "stroke" && f != "markers" {
			return "", fmt.Errorf("%w: paint-order %q", ErrInvalid, f)
		}
	}
	return strings.Join(fs, " "), nil
}

var (
	// properties are the tracked properties, in attribute order.
	properties []*property

	// byKey maps an attribute to its property.
	byKey map[attr.Attr]*property
)

func init() {
	black := color.RGBA{A: 255}
	properties = []*property{
		newProperty(attr.Opacity, false, func(s *Style) *Prop[float32] { return &s.Opacity }, 1, parseOpacity, math32.FormatFloat),
		newProperty(attr.Display, false, func(s *Style) *Prop[Displays] { return &s.Display }, DisplayInline, parseKeyword[Displays], Displays.String),
		newProperty(attr.Visibility, true, func(s *Style) *Prop[Visibilities] { return &s.Visibility }, Visible, parseKeyword[Visibilities], Visibilities.String),
		newProperty(attr.Isolation, false, func(s *Style) *Prop[Isolations] { return &s.Isolation }, IsolationAuto, parseKeyword[Isolations], Isolations.String),
		newProperty(attr.MixBlendMode, false, func(s *Style) *Prop[BlendModes] { return &s.MixBlendMode }, BlendNormal, parseKeyword[BlendModes], BlendModes.String),
		newProperty(attr.ClipPath, false, func(s *Style) *Prop[URLRef] { return &s.ClipPath }, "", ParseURLRef, URLRef.String),
		newProperty(attr.Mask, false, func(s *Style) *Prop[URLRef] { return &s.Mask }, "", ParseURLRef, URLRef.String),
		newProperty(attr.Filter, false, func(s *Style) *Prop[URLRef] { return &s.Filter }, "", ParseURLRef, URLRef.String),
		newProperty(attr.Color, true, func(s *Style) *Prop[color.RGBA] { return &s.Color }, black, colors.FromString, colors.AsHex),
		newProperty(attr.Fill, true, func(s *Style) *Prop[Paint] { return &s.Fill }, ColorPaint(black), ParsePaint, Paint.String),
		newProperty(attr.FillOpacity, true, func(s *Style) *Prop[float32] { return &s.FillOpacity }, 1, parseOpacity, math32.FormatFloat),
		newProperty(attr.FillRule, true, func(s *Style) *Prop[FillRules] { return &s.FillRule }, NonZero, parseKeyword[FillRules], FillRules.String),
		newProperty(attr.ClipRule, true, func(s *Style) *Prop[FillRules] { return &s.ClipRule }, NonZero, parseKeyword[FillRules], FillRules.String),
		newProperty(attr.Stroke, true, func(s *Style) *Prop[Paint] { return &s.Stroke }, Paint{}, ParsePaint, Paint.String),
		newProperty(attr.StrokeWidth, true, func(s *Style) *Prop[Length] { return &s.StrokeWidth }, Length{Value: 1}, ParseLength, Length.String),
		newProperty(attr.StrokeOpacity, true, func(s *Style) *Prop[float32] { return &s.StrokeOpacity }, 1, parseOpacity, math32.FormatFloat),
		newProperty(attr.StrokeLineCap, true, func(s *Style) *Prop[LineCaps] { return &s.StrokeLineCap }, CapButt, parseKeyword[LineCaps], LineCaps.String),
		newProperty(attr.StrokeLineJoin, true, func(s *Style) *Prop[LineJoins] { return &s.StrokeLineJoin }, JoinMiter, parseKeyword[LineJoins], LineJoins.String),
		newProperty(attr.StrokeMiterLimit, true, func(s *Style) *Prop[float32] { return &s.StrokeMiter }, 4, parseNumber, math32.FormatFloat),
		newProperty(attr.StrokeDashArray, true, func(s *Style) *Prop[DashArray] { return &s.StrokeDashArray }, nil, parseDashArray, DashArray.String),
		newProperty(attr.StrokeDashOffset, true, func(s *Style) *Prop[Length] { return &s.StrokeDashOff }, Length{}, ParseLength, Length.String),
		newProperty(attr.PaintOrder, true, func(s *Style) *Prop[string] { return &s.PaintOrder }, "normal", parsePaintOrder, formatString),
		newProperty(attr.FontSize, true, func(s *Style) *Prop[Length] { return &s.FontSize }, Length{Value: 12, Unit: "px"}, ParseLength, Length.String),
		newProperty(attr.FontFamily, true, func(s *Style) *Prop[string] { return &s.FontFamily }, "sans-serif", parseString, formatString),
		newProperty(attr.StopColor, false, func(s *Style) *Prop[Paint] { return &s.StopColor }, ColorPaint(black), ParsePaint, Paint.String),
		newProperty(attr.StopOpacity, false, func(s *Style) *Prop[float32] { return &s.StopOpacity }, 1, parseOpacity, math32.FormatFloat),
		newProperty(attr.FloodColor, false, func(s *Style) *Prop[Paint] { return &s.FloodColor }, ColorPaint(black), ParsePaint, Paint.String),
		newProperty(attr.FloodOpacity, false, func(s *Style) *Prop[float32] { return &s.FloodOpacity }, 1, parseOpacity, math32.FormatFloat),
		newProperty(attr.D, false, func(s *Style) *Prop[string] { return &s.D }, "", parseString, formatString),
	}
	slices.SortFunc(properties, func(a, b *property) int {
		return cmp.Compare(a.key, b.key)
	})
	byKey = make(map[attr.Attr]*property, len(properties))
	for _, p := range properties {
		if !p.key.IsCSS() {
			panic("style: property " + attr.Name(p.key) + " is not a CSS attribute")
		}
		byKey[p.key] = p
	}
}

// propertyOf returns the property for the given key, or nil.
func propertyOf(key attr.Attr) *property {
	return byKey[key]
}
