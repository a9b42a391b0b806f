// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testFlags uint32

const (
	flagA testFlags = 1 << iota
	flagB
	flagC
)

func TestBitFlags(t *testing.T) {
	var bits testFlags
	Set(&bits, flagA, flagC)
	assert.True(t, Has(bits, flagA))
	assert.False(t, Has(bits, flagB))
	assert.True(t, HasAll(bits, flagA|flagC))
	assert.False(t, HasAll(bits, flagA|flagB))

	Clear(&bits, flagA)
	assert.Equal(t, flagC, bits)

	SetState(&bits, true, flagB)
	assert.Equal(t, flagB|flagC, bits)
	SetState(&bits, false, flagB, flagC)
	assert.Equal(t, testFlags(0), bits)

	Toggle(&bits, flagA, flagB)
	assert.Equal(t, flagA|flagB, bits)
	Toggle(&bits, flagA)
	assert.Equal(t, flagB, bits)
}

func TestString(t *testing.T) {
	names := []string{"A", "B", "C"}
	assert.Equal(t, "A|C", String(flagA|flagC, names))
	assert.Equal(t, "", String(testFlags(0), names))
}
