// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupInverse(t *testing.T) {
	for _, a := range All() {
		assert.Equal(t, a, Lookup(Name(a)), Name(a))
	}
	assert.Len(t, All(), int(AttrsN)-1)
}

func TestLookupUnknown(t *testing.T) {
	for _, s := range []string{"", "bogus", "ID", "Fill", "svg:fill", "inkscape:nothing", "stddeviation"} {
		assert.Equal(t, Invalid, Lookup(s), s)
	}
	assert.Equal(t, StdDeviation, Lookup("stdDeviation"))
	assert.Equal(t, InkscapeSnapBBox, Lookup("inkscape:snap-bbox"))
	assert.Equal(t, XlinkHref, Lookup("xlink:href"))
}

func TestName(t *testing.T) {
	assert.Equal(t, "", Name(Invalid))
	assert.Equal(t, "font-family", Name(FontFamily))
	assert.Panics(t, func() { Name(AttrsN) })
	assert.Panics(t, func() { Name(-1) })
}

func TestIsCSS(t *testing.T) {
	// range edges
	assert.True(t, IsCSS(D))
	assert.False(t, IsCSS(D-1))
	assert.True(t, IsCSS(SystemLanguage-1))
	assert.False(t, IsCSS(SystemLanguage))

	assert.True(t, IsCSS(Fill))
	assert.True(t, Opacity.IsCSS())
	assert.False(t, IsCSS(Transform))
	assert.False(t, IsCSS(Invalid))
	assert.False(t, IsCSS(AttrsN))

	for _, a := range All() {
		assert.Equal(t, a >= D && a < SystemLanguage, IsCSS(a), Name(a))
	}
}

func TestPropertyOrder(t *testing.T) {
	assert.Less(t, Font, FontFamily)
	assert.Less(t, Font, FontSize)
}

func TestSortedNames(t *testing.T) {
	all := SortedNames(false)
	assert.True(t, slices.IsSorted(all))
	assert.Len(t, all, int(AttrsN)-1)

	css := SortedNames(true)
	assert.True(t, slices.IsSorted(css))
	assert.Len(t, css, int(SystemLanguage-D))
	assert.Contains(t, css, "stroke-width")
	assert.NotContains(t, css, "transform")
}

func TestText(t *testing.T) {
	assert.Equal(t, "stdDeviation", StdDeviation.String())
	assert.Equal(t, "Attr(0)", Invalid.String())

	b, err := json.Marshal(map[string]Attr{"a": MixBlendMode})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"mix-blend-mode"}`, string(b))

	var m map[string]Attr
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, MixBlendMode, m["a"])

	var a Attr
	assert.Error(t, a.UnmarshalText([]byte("nope")))
	_, err = Invalid.MarshalText()
	assert.Error(t, err)
}
