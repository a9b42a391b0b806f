// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses and formats CSS color values as used in
// SVG presentation attributes and style declarations.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalid is returned for a string that is not a color.
var ErrInvalid = errors.New("colors: invalid color")

// Transparent is fully transparent black.
var Transparent = color.RGBA{}

// Black is opaque black, the initial value of most color properties.
var Black = color.RGBA{A: 255}

// FromString returns the color for a CSS color string: #rgb, #rrggbb,
// #rrggbbaa, rgb(r,g,b), rgba(r,g,b,a), the keyword transparent, or a
// named color such as "steelblue". Channels in rgb() may be integers
// or percentages. The returned color is not premultiplied.
func FromString(str string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	switch {
	case s == "":
		return Transparent, fmt.Errorf("%w: empty string", ErrInvalid)
	case s == "transparent":
		return Transparent, nil
	case s[0] == '#':
		return FromHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s)
	}
	if nc, ok := colornames.Map[s]; ok {
		return nc, nil
	}
	return Transparent, fmt.Errorf("%w: %q", ErrInvalid, str)
}

// FromHex parses a hex color, with or without the leading #.
func FromHex(hex string) (color.RGBA, error) {
	x := strings.TrimPrefix(hex, "#")
	switch len(x) {
	case 3, 4:
		// expand each digit: "f80" is "ff8800"
		var sb strings.Builder
		for _, r := range x {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		x = sb.String()
	case 6, 8:
	default:
		return Transparent, fmt.Errorf("%w: hex %q", ErrInvalid, hex)
	}
	v, err := strconv.ParseUint(x, 16, 32)
	if err != nil {
		return Transparent, fmt.Errorf("%w: hex %q", ErrInvalid, hex)
	}
	if len(x) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseRGB(s string) (color.RGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	fields := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return Transparent, fmt.Errorf("%w: %q needs 3 or 4 channels", ErrInvalid, s)
	}
	var ch [4]uint8
	ch[3] = 255
	for i, f := range fields {
		pct := strings.HasSuffix(f, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
		if err != nil {
			return Transparent, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		switch {
		case pct:
			v = v * 255 / 100
		case i == 3:
			v *= 255
		}
		ch[i] = uint8(min(max(v+0.5, 0), 255))
	}
	return color.RGBA{ch[0], ch[1], ch[2], ch[3]}, nil
}

// AsHex returns the color as #rrggbb, or #rrggbbaa when it is
// not fully opaque.
func AsHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// WithAlpha returns the color with its alpha set from an opacity in [0,1].
func WithAlpha(c color.RGBA, opacity float32) color.RGBA {
	c.A = uint8(min(max(opacity, 0), 1)*255 + 0.5)
	return c
}
