// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"testing"

	"cogentcore.org/canvas/repr"
	"github.com/stretchr/testify/assert"
)

func edit(d *repr.Document, key, value string) []repr.Event {
	d.BeginTransaction()
	d.Root().SetAttribute(key, value)
	return d.Commit()
}

func TestUndoRedo(t *testing.T) {
	d := repr.NewDocument()
	um := NewMgr(0)
	assert.False(t, um.IsUndoAvail())
	assert.False(t, um.IsRedoAvail())

	um.Save("width 1", edit(d, "width", "1"))
	um.Save("width 2", edit(d, "width", "2"))
	um.Save("nothing", nil)
	assert.Len(t, um.Recs, 2)
	assert.True(t, um.IsUndoAvail())

	assert.Equal(t, "width 2", um.Undo())
	assert.Equal(t, "1", d.Root().AttributeOr("width", ""))
	assert.True(t, um.IsRedoAvail())
	assert.Equal(t, "width 1", um.Undo())
	_, ok := d.Root().Attribute("width")
	assert.False(t, ok)
	assert.Equal(t, "", um.Undo())

	assert.Equal(t, "width 1", um.Redo())
	assert.Equal(t, "1", d.Root().AttributeOr("width", ""))

	// a new action drops the redo records
	um.Save("height", edit(d, "height", "3"))
	assert.False(t, um.IsRedoAvail())
	assert.Equal(t, "", um.Redo())
	assert.Len(t, um.Recs, 2)
}

func TestLimit(t *testing.T) {
	d := repr.NewDocument()
	um := NewMgr(2)
	um.Save("a", edit(d, "x", "1"))
	um.Save("b", edit(d, "x", "2"))
	um.Save("c", edit(d, "x", "3"))
	assert.Len(t, um.Recs, 2)
	assert.Equal(t, "c", um.Undo())
	assert.Equal(t, "b", um.Undo())
	assert.False(t, um.IsUndoAvail())
	assert.Equal(t, "1", d.Root().AttributeOr("x", ""))

	um.Reset()
	assert.False(t, um.IsUndoAvail())
	assert.False(t, um.IsRedoAvail())
}
