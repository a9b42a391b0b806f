// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitOrder(t *testing.T) {
	var s Signal[int]
	var got []string
	s.Connect(func(v int) { got = append(got, "a") })
	s.Connect(func(v int) { got = append(got, "b") })
	s.Connect(func(v int) { got = append(got, "c") })
	s.Emit(1)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestDisconnectDuringEmit(t *testing.T) {
	var s Signal[int]
	var got []string
	var cb Connection
	s.Connect(func(v int) {
		got = append(got, "a")
		s.Disconnect(cb)
		s.Connect(func(v int) { got = append(got, "late") })
	})
	cb = s.Connect(func(v int) { got = append(got, "b") })
	s.Emit(1)
	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 2, s.Len())

	got = nil
	s.DisconnectAll()
	s.Emit(2)
	assert.Empty(t, got)
	s.Disconnect(cb) // no-op
}
