// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"testing"

	"cogentcore.org/canvas/drawing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedSVG = `<svg xmlns="http://www.w3.org/2000/svg">
  <g id="g1"><g id="g2"><g id="g3">
    <rect id="a" width="1" height="1"/>
    <rect id="b" width="1" height="1"/>
    <rect id="c" width="1" height="1"/>
  </g></g></g>
</svg>`

func TestDirtyPropagation(t *testing.T) {
	d := load(t, nestedSVG)
	leaf := byID[*Rect](t, d, "a")
	var got Flags
	leaf.ModifiedSignal.Connect(func(f Flags) { got |= f })

	leaf.RequestDisplayUpdate(ModifiedFlag)
	u, _ := leaf.Flags()
	assert.Equal(t, ModifiedFlag, u)
	for p := leaf.ParentObject(); p != nil; p = p.AsObject().ParentObject() {
		u, _ := p.AsObject().Flags()
		assert.NotZero(t, u&ChildModifiedFlag, p.AsObject().String())
	}
	assert.True(t, d.IsUpdatePending())

	require.True(t, d.EnsureUpToDate())
	assert.False(t, d.IsUpdatePending())
	assert.Equal(t, ModifiedFlag, got)
	u, m := d.Root().Flags()
	assert.Zero(t, u)
	assert.Zero(t, m)

	// siblings are not visited
	var other bool
	byID[*Rect](t, d, "b").ModifiedSignal.Connect(func(Flags) { other = true })
	leaf.RequestDisplayUpdate(ModifiedFlag)
	require.True(t, d.EnsureUpToDate())
	assert.False(t, other)
}

func TestModifiedCascade(t *testing.T) {
	d := load(t, nestedSVG)
	g := byID[*Group](t, d, "g2")
	var leaf, group Flags
	byID[*Rect](t, d, "a").ModifiedSignal.Connect(func(f Flags) { leaf |= f })
	g.ModifiedSignal.Connect(func(f Flags) { group |= f })

	g.RequestDisplayUpdate(ModifiedFlag)
	require.True(t, d.EnsureUpToDate())
	assert.Equal(t, ModifiedFlag, group&ModifiedFlag)
	assert.Equal(t, ParentModifiedFlag, leaf)
}

func TestReentrantModified(t *testing.T) {
	d := load(t, nestedSVG)
	a := byID[*Rect](t, d, "a")
	b := byID[*Rect](t, d, "b")
	c := byID[*Rect](t, d, "c")

	a.ModifiedSignal.Connect(func(Flags) {
		if b.Node().Parent() != nil {
			b.Node().Unparent()
		}
	})
	var reached bool
	c.ModifiedSignal.Connect(func(Flags) { reached = true })
	bh := b.Handle()

	byID[*Group](t, d, "g3").RequestDisplayUpdate(ModifiedFlag)
	require.NotPanics(t, func() { d.EnsureUpToDate() })
	assert.True(t, b.IsReleased())
	assert.Nil(t, d.Resolve(bh))
	assert.True(t, reached)
	assert.False(t, d.IsUpdatePending())
}

func TestMultiViewOpacity(t *testing.T) {
	d := load(t, nestedSVG)
	r := byID[*Rect](t, d, "a")
	dr1, dr2 := drawing.New("one"), drawing.New("two")
	require.NotNil(t, d.Show(dr1))
	require.NotNil(t, d.Show(dr2))
	require.Len(t, r.Views(), 2)

	r.Node().SetAttribute("opacity", "0.25")
	require.True(t, d.EnsureUpToDate())
	for _, v := range r.Views() {
		assert.Equal(t, float32(0.25), v.Item.Opacity)
		assert.Equal(t, Object(r), v.Item.Data)
	}
	assert.NotSame(t, r.Views()[0].Item.Drawing(), r.Views()[1].Item.Drawing())

	// each view holds its own style snapshot, replaced on update
	s1, s2 := r.Views()[0].Item.Style, r.Views()[1].Item.Style
	assert.NotSame(t, r.Style(), s1)
	assert.NotSame(t, s1, s2)
	assert.Equal(t, float32(0.25), s1.Opacity.Value)
	r.Node().SetAttribute("opacity", "0.75")
	assert.Equal(t, float32(0.25), s1.Opacity.Value)
	require.True(t, d.EnsureUpToDate())
	for _, v := range r.Views() {
		assert.Equal(t, float32(0.75), v.Item.Style.Opacity.Value)
	}
	assert.Equal(t, float32(0.25), s1.Opacity.Value)

	k1, ok := d.ViewKey(dr1)
	require.True(t, ok)
	assert.NotNil(t, r.View(k1))

	require.True(t, d.Hide(dr1))
	assert.Len(t, r.Views(), 1)
	assert.Same(t, dr2, r.Views()[0].Item.Drawing())
	assert.False(t, d.Hide(dr1))
}

func TestUpdateSettles(t *testing.T) {
	d := load(t, nestedSVG)
	r := byID[*Rect](t, d, "a")
	// a slot that keeps requesting updates never settles
	r.ModifiedSignal.Connect(func(Flags) { r.RequestDisplayUpdate(ModifiedFlag) })
	r.RequestDisplayUpdate(ModifiedFlag)
	assert.False(t, d.EnsureUpToDate())
}
