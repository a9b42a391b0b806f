// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyList(t *testing.T) {
	var kl List[string, string]
	kl.Set("id", "rect1")
	kl.Set("width", "10")
	kl.Set("height", "20")
	assert.Equal(t, []string{"id", "width", "height"}, kl.Keys)

	kl.Set("width", "11")
	assert.Equal(t, []string{"id", "width", "height"}, kl.Keys)
	assert.Equal(t, "11", kl.At("width"))

	_, ok := kl.AtTry("x")
	assert.False(t, ok)
	assert.Equal(t, -1, kl.IndexByKey("x"))

	assert.True(t, kl.DeleteByKey("id"))
	assert.False(t, kl.DeleteByKey("id"))
	assert.Equal(t, 0, kl.IndexByKey("width"))
	assert.Equal(t, 2, kl.Len())

	kl.Insert(0, "id", "rect2")
	assert.Equal(t, []string{"id", "width", "height"}, kl.Keys)
	assert.Equal(t, 2, kl.IndexByKey("height"))

	cp := kl.Clone()
	cp.Set("width", "99")
	assert.Equal(t, "11", kl.At("width"))

	var other List[string, string]
	other.Set("x", "1")
	other.Copy(&kl)
	assert.Equal(t, []string{"x", "id", "width", "height"}, other.Keys)
}
