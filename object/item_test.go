// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"slices"
	"testing"

	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clipSVG = `<svg xmlns="http://www.w3.org/2000/svg">
  <defs>
    <clipPath id="clip" clipPathUnits="objectBoundingBox"><rect width="0.5" height="1"/></clipPath>
    <mask id="mask"><rect width="100" height="100" fill="#ffffff"/></mask>
  </defs>
  <rect id="r" x="10" y="20" width="30" height="40" clip-path="url(#clip)" mask="url(#mask)"/>
</svg>`

// destroyLog records the items destroyed in a drawing, in order.
type destroyLog struct {
	items []*drawing.Item
}

func (dl *destroyLog) ItemCreated(it *drawing.Item) {}

func (dl *destroyLog) ItemDestroyed(it *drawing.Item) {
	dl.items = append(dl.items, it)
}

func TestReleaseOrder(t *testing.T) {
	d := load(t, clipSVG)
	r := byID[*Rect](t, d, "r")
	cp := byID[*ClipPath](t, d, "clip")
	m := byID[*Mask](t, d, "mask")

	dr := drawing.New("view")
	log := &destroyLog{}
	dr.AddObserver(log)
	require.NotNil(t, d.Show(dr))
	require.Len(t, r.Views(), 1)
	v := r.Views()[0]
	clipItem := v.Item.Clip()
	maskItem := v.Item.Mask()
	require.NotNil(t, clipItem)
	require.NotNil(t, maskItem)
	assert.Equal(t, 1, cp.ViewCount())
	assert.Equal(t, 1, cp.HrefCount())

	r.Delete()
	ci := slices.Index(log.items, clipItem)
	mi := slices.Index(log.items, maskItem)
	ri := slices.Index(log.items, v.Item)
	require.GreaterOrEqual(t, ci, 0)
	require.GreaterOrEqual(t, mi, 0)
	require.GreaterOrEqual(t, ri, 0)
	assert.Less(t, ci, ri)
	assert.Less(t, mi, ri)

	assert.Zero(t, cp.ViewCount())
	assert.Zero(t, m.ViewCount())
	assert.Zero(t, cp.HrefCount())
	assert.Empty(t, r.Views())
	assert.True(t, v.Item.IsDestroyed())
}

func TestClipMaskShow(t *testing.T) {
	d := load(t, clipSVG)
	r := byID[*Rect](t, d, "r")
	cp := byID[*ClipPath](t, d, "clip")
	m := byID[*Mask](t, d, "mask")
	assert.Equal(t, ObjectBoundingBox, cp.Units())
	assert.Equal(t, UserSpaceOnUse, m.ContentUnits())

	dr := drawing.New("view")
	d.Show(dr)
	v := r.Views()[0]

	// objectBoundingBox content is mapped to the bounding box
	clip := v.Item.Clip()
	p := clip.Transform.MulVector2AsPoint(math32.Vec2(1, 1))
	assert.InDelta(t, 40, p.X, 1e-4)
	assert.InDelta(t, 60, p.Y, 1e-4)
	assertBox(t, math32.B2(10, 20, 25, 60), cp.ContentBounds(r.GeometricBounds()))

	// the mask region is the bounding box grown by 10% on each side
	assertBox(t, math32.B2(7, 16, 43, 64), v.Item.Mask().Bounds)
	assertBox(t, math32.B2(10, 20, 25, 60), r.VisualBounds())

	// a new bounding box is pushed to the clip
	r.Node().SetAttribute("width", "60")
	require.True(t, d.EnsureUpToDate())
	p = v.Item.Clip().Transform.MulVector2AsPoint(math32.Vec2(1, 1))
	assert.InDelta(t, 70, p.X, 1e-4)

	// switching the clip hides the old projection
	r.Node().RemoveAttribute("clip-path")
	assert.Nil(t, r.ClipPath())
	assert.Zero(t, cp.ViewCount())
	assert.Nil(t, v.Item.Clip())
	assert.True(t, clip.IsDestroyed())

	r.Node().SetAttribute("clip-path", "url(#clip)")
	assert.Equal(t, 1, cp.ViewCount())
	assert.NotNil(t, v.Item.Clip())
}

func TestLocked(t *testing.T) {
	d := load(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd">
  <g id="g" sodipodi:insensitive="true"><rect id="r" width="1" height="1"/></g>
</svg>`)
	g := byID[*Group](t, d, "g")
	r := byID[*Rect](t, d, "r")
	assert.True(t, g.IsLocked())
	assert.True(t, r.IsLocked())

	g.SetLocked(false)
	assert.False(t, r.IsLocked())
	_, ok := g.Node().Attribute("sodipodi:insensitive")
	assert.False(t, ok)
}

func TestViewportUpdate(t *testing.T) {
	d := load(t, `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100">
  <image id="im" width="50%" height="10"/>
</svg>`)
	im := byID[*Image](t, d, "im")
	dr := drawing.New("view")
	d.Show(dr)
	v := im.Views()[0]
	n := v.Item.Updates
	assertBox(t, math32.B2(0, 0, 100, 10), v.Item.Bounds)

	// a viewport change alone is pushed to the views
	im.RequestDisplayUpdate(ViewportModifiedFlag)
	require.True(t, d.EnsureUpToDate())
	assert.Equal(t, n+1, v.Item.Updates)
	assertBox(t, im.GeometricBounds(), v.Item.Bounds)
}
