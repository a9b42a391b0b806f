// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawing

import (
	"testing"

	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
)

type logger struct {
	log []string
}

func (l *logger) ItemCreated(it *Item)   { l.log = append(l.log, "+"+it.Kind.String()) }
func (l *logger) ItemDestroyed(it *Item) { l.log = append(l.log, "-"+it.String()) }

func TestNewKeys(t *testing.T) {
	a := NewKeys(KeysPerItem)
	b := NewKeys(KeysPerItem)
	assert.NotZero(t, a)
	assert.Equal(t, a+KeysPerItem, b)
	assert.Panics(t, func() { NewKeys(0) })
}

func TestTree(t *testing.T) {
	d := New("view")
	l := &logger{}
	d.AddObserver(l)
	g := d.NewItem(GroupItem)
	s1 := d.NewItem(ShapeItem)
	s2 := d.NewItem(ShapeItem)
	d.Root().AppendChild(g)
	g.AppendChild(s2)
	g.InsertChild(s1, 0)
	assert.Equal(t, []*Item{s1, s2}, g.Children())
	owner, role := s1.Owner()
	assert.Equal(t, g, owner)
	assert.Equal(t, RoleChild, role)
	assert.Panics(t, func() { d.Root().AppendChild(s1) })
	assert.Panics(t, func() { New("other").Root().AppendChild(d.NewItem(GroupItem)) })

	g.MoveChild(s2, 0)
	assert.Equal(t, []*Item{s2, s1}, g.Children())
	assert.Equal(t, 5, d.ItemCount())

	s1.Key = 7
	s2.Key = 8
	g.Key = 4
	g.Destroy()
	g.Destroy()
	assert.Empty(t, d.Root().Children())
	assert.True(t, s1.IsDestroyed())
	assert.Equal(t, 2, d.ItemCount())
	assert.Equal(t, []string{"+group", "+shape", "+shape", "+group", "-shape:8", "-shape:7", "-group:4"}, l.log)
}

func TestClipMask(t *testing.T) {
	d := New("view")
	l := &logger{}
	d.AddObserver(l)
	s := d.NewItem(ShapeItem)
	s.Key = 10
	clip := d.NewItem(GroupItem)
	clip.Key = 10 + KeyClip
	mask := d.NewItem(GroupItem)
	mask.Key = 10 + KeyMask
	s.SetClip(clip)
	s.SetMask(mask)
	assert.Equal(t, clip, s.Clip())
	_, role := mask.Owner()
	assert.Equal(t, RoleMask, role)

	// destroying the clip detaches it from its owner
	clip.Destroy()
	assert.Nil(t, s.Clip())

	p := d.NewItem(PatternItem)
	s.SetFillPattern(p)
	s.SetStrokePattern(nil)
	s.Destroy()
	assert.True(t, mask.IsDestroyed())
	assert.True(t, p.IsDestroyed())
	assert.Equal(t, []string{"+shape", "+group", "+group", "-group:10", "+pattern", "-group:11", "-pattern:0", "-shape:10"}, l.log)
	d.RemoveObserver(l)
	d.NewItem(GroupItem)
	assert.Len(t, l.log, 8)
}

func TestVisualBounds(t *testing.T) {
	d := New("view")
	g := d.NewItem(GroupItem)
	g.Transform = math32.Translate2D(10, 0)
	s := d.NewItem(ShapeItem)
	s.Bounds = math32.B2(0, 0, 10, 10)
	g.AppendChild(s)
	assert.Equal(t, math32.B2(10, 0, 20, 10), g.VisualBounds())

	clip := d.NewItem(GroupItem)
	clip.Bounds = math32.B2(0, 0, 5, 5)
	g.SetClip(clip)
	assert.Equal(t, math32.B2(10, 0, 15, 5), g.VisualBounds())
}
