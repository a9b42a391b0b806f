// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strings"

	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/math32"
	"github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalid is returned for a property value that cannot be parsed.
var ErrInvalid = errors.New("style: invalid value")

// PaintKinds are the kinds of [Paint].
type PaintKinds int32

const (
	// PaintNone paints nothing.
	PaintNone PaintKinds = iota

	// PaintColor paints a solid color.
	PaintColor

	// PaintCurrentColor paints the value of the color property.
	PaintCurrentColor

	// PaintURL paints with a paint server, such as a gradient,
	// referenced by URL.
	PaintURL
)

// Paint is the value of the fill and stroke properties,
// and of the stop-color and flood-color properties.
type Paint struct {
	Kind PaintKinds

	// Color is the color of a PaintColor paint,
	// and the fallback color of a PaintURL paint.
	Color color.RGBA

	// URL is the reference of a PaintURL paint, such as #linearGradient1.
	URL string

	// Fallback is true when a PaintURL paint has a fallback color.
	Fallback bool
}

// ColorPaint returns a solid color paint.
func ColorPaint(c color.RGBA) Paint {
	return Paint{Kind: PaintColor, Color: c}
}

// URLPaint returns a paint server reference.
func URLPaint(url string) Paint {
	return Paint{Kind: PaintURL, URL: url}
}

// IsPaintServer returns whether the paint references a paint server.
func (p Paint) IsPaintServer() bool {
	return p.Kind == PaintURL
}

// ParsePaint parses a paint value: none, currentColor,
// url(#id) with an optional fallback color, or a color.
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "none":
		return Paint{}, nil
	case strings.EqualFold(s, "currentColor"):
		return Paint{Kind: PaintCurrentColor}, nil
	case strings.HasPrefix(s, "url("):
		url, rest, err := ParseURL(s)
		if err != nil {
			return Paint{}, err
		}
		p := URLPaint(url)
		if rest = strings.TrimSpace(rest); rest != "" && rest != "none" {
			c, err := colors.FromString(rest)
			if err != nil {
				return Paint{}, err
			}
			p.Color = c
			p.Fallback = true
		}
		return p, nil
	}
	c, err := colors.FromString(s)
	if err != nil {
		return Paint{}, err
	}
	return ColorPaint(c), nil
}

func (p Paint) String() string {
	switch p.Kind {
	case PaintColor:
		return colors.AsHex(p.Color)
	case PaintCurrentColor:
		return "currentColor"
	case PaintURL:
		if p.Fallback {
			return "url(" + p.URL + ") " + colors.AsHex(p.Color)
		}
		return "url(" + p.URL + ")"
	}
	return "none"
}

// ParseURL extracts the reference of a url(...) value, with optional
// quotes, and returns the remainder of the string after it.
func ParseURL(s string) (url, rest string, err error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "url(") {
		return "", "", fmt.Errorf("%w: %q is not a url", ErrInvalid, s)
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return "", "", fmt.Errorf("%w: unterminated url in %q", ErrInvalid, s)
	}
	url = strings.Trim(strings.TrimSpace(s[4:end]), `"'`)
	if url == "" {
		return "", "", fmt.Errorf("%w: empty url in %q", ErrInvalid, s)
	}
	return url, s[end+1:], nil
}

// URLRef is the value of the clip-path, mask and filter properties:
// a reference such as #clipPath1, or "" for none.
type URLRef string

// ParseURLRef parses none or url(...).
func ParseURLRef(s string) (URLRef, error) {
	s = strings.TrimSpace(s)
	if s == "none" {
		return "", nil
	}
	url, rest, err := ParseURL(s)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(rest) != "" {
		return "", fmt.Errorf("%w: trailing %q after url", ErrInvalid, rest)
	}
	return URLRef(url), nil
}

func (u URLRef) String() string {
	if u == "" {
		return "none"
	}
	return "url(" + string(u) + ")"
}

// Length is a number with an optional unit, such as 2px or 50%.
// The unit is kept so that a written value reads as it was set.
type Length struct {
	Value float32
	Unit  string
}

// units are the units accepted in a [Length].
var units = []string{"", "px", "pt", "pc", "mm", "cm", "in", "em", "ex", "%"}

// pxPerUnit converts absolute units to user units.
var pxPerUnit = map[string]float32{
	"": 1, "px": 1, "pt": 96.0 / 72, "pc": 16, "mm": 96 / 25.4, "cm": 96 / 2.54, "in": 96,
}

// ParseLength parses a number with an optional unit.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || !math32.IsFinite(float32(f)) {
		return Length{}, fmt.Errorf("%w: length %q", ErrInvalid, s)
	}
	unit := strings.TrimSpace(s[n:])
	if !slices.Contains(units, unit) {
		return Length{}, fmt.Errorf("%w: unit %q", ErrInvalid, unit)
	}
	return Length{Value: float32(f), Unit: unit}, nil
}

// Px returns the length in user units. Relative units are resolved
// against the given em size and percentage base.
func (l Length) Px(em, percentBase float32) float32 {
	switch l.Unit {
	case "%":
		return l.Value * percentBase / 100
	case "em":
		return l.Value * em
	case "ex":
		return l.Value * em / 2
	}
	return l.Value * pxPerUnit[l.Unit]
}

func (l Length) String() string {
	return math32.FormatFloat(l.Value) + l.Unit
}

// parseNumber parses a plain number.
func parseNumber(s string) (float32, error) {
	s = strings.TrimSpace(s)
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) || !math32.IsFinite(float32(f)) {
		return 0, fmt.Errorf("%w: number %q", ErrInvalid, s)
	}
	return float32(f), nil
}

// parseOpacity parses a number or percentage, clamped to [0, 1].
func parseOpacity(s string) (float32, error) {
	s = strings.TrimSpace(s)
	scale := float32(1)
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		scale = 0.01
	}
	f, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return min(max(f*scale, 0), 1), nil
}

// DashArray is the value of stroke-dasharray; nil is none.
type DashArray []float32

func parseDashArray(s string) (DashArray, error) {
	s = strings.TrimSpace(s)
	if s == "none" {
		return nil, nil
	}
	nums, err := math32.ReadNumbers(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, n := range nums {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative dash %q", ErrInvalid, s)
		}
	}
	return DashArray(nums), nil
}

func (d DashArray) String() string {
	if len(d) == 0 {
		return "none"
	}
	strs := make([]string, len(d))
	for i, v := range d {
		strs[i] = math32.FormatFloat(v)
	}
	return strings.Join(strs, ",")
}

// keyword is an enumerated property value, an index into its names.
type keyword interface {
	~int32
	names() []string
}

func parseKeyword[T keyword](s string) (T, error) {
	var zero T
	i := slices.Index(zero.names(), strings.TrimSpace(s))
	if i < 0 {
		return zero, fmt.Errorf("%w: keyword %q", ErrInvalid, s)
	}
	return T(i), nil
}

func keywordString[T keyword](v T) string {
	ns := v.names()
	if int(v) < 0 || int(v) >= len(ns) {
		return ns[0]
	}
	return ns[v]
}

// Displays are the values of the display property.
type Displays int32

const (
	DisplayInline Displays = iota
	DisplayBlock
	DisplayListItem
	DisplayRunIn
	DisplayCompact
	DisplayMarker
	DisplayTable
	DisplayInlineTable
	DisplayTableRowGroup
	DisplayTableHeaderGroup
	DisplayTableFooterGroup
	DisplayTableRow
	DisplayTableColumnGroup
	DisplayTableColumn
	DisplayTableCell
	DisplayTableCaption
	DisplayInlineBlock
	DisplayInlineFlex
	DisplayFlex
	DisplayNone
)

func (Displays) names() []string {
	return []string{"inline", "block", "list-item", "run-in", "compact", "marker", "table",
		"inline-table", "table-row-group", "table-header-group", "table-footer-group",
		"table-row", "table-column-group", "table-column", "table-cell", "table-caption",
		"inline-block", "inline-flex", "flex", "none"}
}

func (d Displays) String() string { return keywordString(d) }

// Visibilities are the values of the visibility property.
type Visibilities int32

const (
	Visible Visibilities = iota
	Hidden
	Collapse
)

func (Visibilities) names() []string { return []string{"visible", "hidden", "collapse"} }

func (v Visibilities) String() string { return keywordString(v) }

// FillRules are the values of the fill-rule and clip-rule properties.
type FillRules int32

const (
	NonZero FillRules = iota
	EvenOdd
)

func (FillRules) names() []string { return []string{"nonzero", "evenodd"} }

func (r FillRules) String() string { return keywordString(r) }

// LineCaps are the values of the stroke-linecap property.
type LineCaps int32

const (
	CapButt LineCaps = iota
	CapRound
	CapSquare
)

func (LineCaps) names() []string { return []string{"butt", "round", "square"} }

func (c LineCaps) String() string { return keywordString(c) }

// LineJoins are the values of the stroke-linejoin property.
type LineJoins int32

const (
	JoinMiter LineJoins = iota
	JoinRound
	JoinBevel
	JoinArcs
	JoinMiterClip
)

func (LineJoins) names() []string { return []string{"miter", "round", "bevel", "arcs", "miter-clip"} }

func (j LineJoins) String() string { return keywordString(j) }

// BlendModes are the values of the mix-blend-mode property.
type BlendModes int32

const (
	BlendNormal BlendModes = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

func (BlendModes) names() []string {
	return []string{"normal", "multiply", "screen", "overlay", "darken", "lighten",
		"color-dodge", "color-burn", "hard-light", "soft-light", "difference",
		"exclusion", "hue", "saturation", "color", "luminosity"}
}

func (b BlendModes) String() string { return keywordString(b) }

// ParseBlendMode parses a blend mode keyword, as also used by the
// feBlend mode attribute.
func ParseBlendMode(s string) (BlendModes, error) {
	return parseKeyword[BlendModes](s)
}

// Isolations are the values of the isolation property.
type Isolations int32

const (
	IsolationAuto Isolations = iota
	IsolationIsolate
)

func (Isolations) names() []string { return []string{"auto", "isolate"} }

func (i Isolations) String() string { return keywordString(i) }
