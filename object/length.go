// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"strings"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
	"cogentcore.org/canvas/style"
	"github.com/tdewolff/parse/v2/strconv"
)

// SVGLength is a length attribute, such as the width of a rect.
type SVGLength struct {
	style.Length

	// IsSet is whether the attribute was read.
	IsSet bool

	// Computed is the length in user units, set by [SVGLength.Update].
	Computed float32
}

// Read sets the length from an attribute value. A nil or malformed
// value unsets it, and its computed value becomes def.
func (l *SVGLength) Read(value *string, def float32) {
	*l = SVGLength{Length: style.Length{Value: def}, Computed: def}
	if value == nil {
		return
	}
	v, err := style.ParseLength(*value)
	if err != nil {
		return
	}
	l.Length = v
	l.IsSet = true
	l.Computed = v.Px(0, 0)
}

// Update computes the length against the font size and the
// percentage base.
func (l *SVGLength) Update(em, percentBase float32) {
	if l.IsSet {
		l.Computed = l.Px(em, percentBase)
	}
}

// WriteTo sets the attribute if the length is set,
// and removes it otherwise.
func (l *SVGLength) WriteTo(node *repr.Node, key string) {
	setOrRemove(node, key, l.String(), l.IsSet)
}

// parseFloat parses a number attribute, returning false for a nil or
// malformed value.
func parseFloat(value *string) (float32, bool) {
	if value == nil {
		return 0, false
	}
	s := strings.TrimSpace(*value)
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) || !math32.IsFinite(float32(f)) {
		return 0, false
	}
	return float32(f), true
}
