// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#f80", color.RGBA{0xff, 0x88, 0x00, 0xff}},
		{"#FF8800", color.RGBA{0xff, 0x88, 0x00, 0xff}},
		{"#ff880080", color.RGBA{0xff, 0x88, 0x00, 0x80}},
		{"rgb(255, 0, 10)", color.RGBA{255, 0, 10, 255}},
		{"rgb(100%,50%,0%)", color.RGBA{255, 128, 0, 255}},
		{"rgba(0,0,255,0.5)", color.RGBA{0, 0, 255, 128}},
		{"steelblue", color.RGBA{70, 130, 180, 255}},
		{"Red", color.RGBA{255, 0, 0, 255}},
		{"transparent", Transparent},
	}
	for _, tt := range tests {
		c, err := FromString(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}
	for _, bad := range []string{"", "#12", "#ggg", "rgb(1,2)", "notacolor", "rgb(a,b,c)"} {
		_, err := FromString(bad)
		assert.ErrorIs(t, err, ErrInvalid, bad)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#ff8800", AsHex(color.RGBA{0xff, 0x88, 0, 0xff}))
	assert.Equal(t, "#ff880080", AsHex(color.RGBA{0xff, 0x88, 0, 0x80}))
	c, err := FromString(AsHex(color.RGBA{1, 2, 3, 255}))
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, c)
	assert.Equal(t, uint8(128), WithAlpha(Black, 0.5).A)
}
