// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"strings"
	"testing"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="200" height="100">
  <defs id="defs1">
    <linearGradient id="base">
      <stop id="s0" offset="0" style="stop-color:#ff0000"/>
      <stop id="s1" offset="50%" style="stop-color:#0000ff;stop-opacity:0.5"/>
    </linearGradient>
    <linearGradient id="lg" xlink:href="#base" x2="50%"/>
    <clipPath id="clip"><rect id="cliprect" width="50" height="50"/></clipPath>
  </defs>
  <g id="layer1" inkscape:label="Layer 1" inkscape:groupmode="layer">
    <rect id="rect1" x="10" y="20" width="30" height="40" opacity="0.5" style="fill:url(#lg)" clip-path="url(#clip)"/>
    <circle id="circle1" cx="50%" cy="50" r="10"/>
    <use id="use1" xlink:href="#rect1" x="5"/>
  </g>
</svg>`

func load(t *testing.T, src string) *Document {
	t.Helper()
	d, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	return d
}

func byID[T Object](t *testing.T, d *Document, id string) T {
	t.Helper()
	o, ok := d.ObjectByID(id).(T)
	require.True(t, ok, "object %q", id)
	return o
}

func assertBox(t *testing.T, want, got math32.Box2) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, 1e-4)
	assert.InDelta(t, want.Min.Y, got.Min.Y, 1e-4)
	assert.InDelta(t, want.Max.X, got.Max.X, 1e-4)
	assert.InDelta(t, want.Max.Y, got.Max.Y, 1e-4)
}

func ptr(s string) *string { return &s }

func TestBuild(t *testing.T) {
	d := load(t, testSVG)
	root := d.Root()
	require.NotNil(t, root)
	assertBox(t, math32.B2(0, 0, 200, 100), root.Viewport())
	assert.NotNil(t, d.Defs())
	assert.False(t, d.IsUpdatePending())

	layer := byID[*Group](t, d, "layer1")
	assert.True(t, layer.IsLayer())
	assert.Equal(t, "Layer 1", layer.Label())
	assert.Equal(t, Object(root), layer.ParentObject())

	r := byID[*Rect](t, d, "rect1")
	assert.Equal(t, float32(10), r.X.Computed)
	assert.Equal(t, float32(0.5), r.Style().Opacity.Value)
	assertBox(t, math32.B2(10, 20, 40, 60), r.GeometricBounds())
	assert.Equal(t, Object(byID[*ClipPath](t, d, "clip")), Object(r.ClipPath()))
	assert.Equal(t, PaintServer(byID[*LinearGradient](t, d, "lg")), r.FillServer())

	// percentages resolve against the viewport
	c := byID[*Circle](t, d, "circle1")
	assertBox(t, math32.B2(90, 40, 110, 60), c.GeometricBounds())

	assert.Len(t, d.Resources("linearGradient"), 2)
	assert.Len(t, d.Resources("clipPath"), 1)
	assert.Len(t, layer.ChildObjects(), 3)
}

func TestRoundTrip(t *testing.T) {
	d := load(t, testSVG)
	d.UpdateRepr()
	out := d.WriteString()
	assert.Contains(t, out, `id="rect1"`)
	assert.Contains(t, out, `inkscape:groupmode="layer"`)

	d2 := load(t, out)
	d2.UpdateRepr()
	assert.Equal(t, out, d2.WriteString())
}

func TestSetForwarding(t *testing.T) {
	d := load(t, testSVG)
	r := byID[*Rect](t, d, "rect1")

	assert.True(t, r.Set(attr.Width, ptr("7")))
	assert.Equal(t, float32(7), r.Width.Value)

	// a presentation attribute is read into the style
	assert.True(t, r.Set(attr.Opacity, nil))
	assert.Equal(t, float32(1), r.Style().Opacity.Value)

	// an attribute no kind knows is not handled
	assert.False(t, r.Set(attr.OnClick, ptr("alert()")))

	r.Node().SetAttribute("stroke", "#00ff00")
	assert.Equal(t, "#00ff00", r.Style().Stroke.Value.String())
}

func TestIDConflict(t *testing.T) {
	d := load(t, `<svg xmlns="http://www.w3.org/2000/svg"><rect id="a"/><rect id="a"/></svg>`)
	objs := d.Root().ChildObjects()
	require.Len(t, objs, 2)
	first, second := objs[0].AsObject(), objs[1].AsObject()

	assert.Equal(t, Object(objs[0]), d.ObjectByID("a"))
	assert.True(t, strings.HasPrefix(second.ID(), "rect-"))
	v, _ := second.Node().Attribute("id")
	assert.Equal(t, second.ID(), v)

	// taking the id moves the holder to a new one
	second.Node().SetAttribute("id", "a")
	assert.Equal(t, Object(objs[1]), d.ObjectByID("a"))
	assert.NotEqual(t, "a", first.ID())
	assert.NotEmpty(t, first.ID())
	assert.Equal(t, Object(objs[0]), d.ObjectByID(first.ID()))
}

func TestHandles(t *testing.T) {
	d := load(t, testSVG)
	c := byID[*Circle](t, d, "circle1")
	h := c.Handle()
	assert.True(t, h.IsValid())
	assert.Equal(t, Object(c), d.Resolve(h))
	assert.Nil(t, d.Resolve(Handle{}))

	n := d.ObjectCount()
	c.Delete()
	assert.True(t, c.IsReleased())
	assert.Nil(t, d.Resolve(h))
	assert.Nil(t, d.ObjectByID("circle1"))
	assert.Equal(t, n-1, d.ObjectCount())

	// a new object in the freed slot does not resolve from the old handle
	o, err := d.AppendNew(d.Root(), "svg:circle")
	require.NoError(t, err)
	assert.NotEqual(t, h, o.AsObject().Handle())
	assert.Nil(t, d.Resolve(h))

	_, err = d.AppendNew(d.Root(), "svg:nosuch")
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestUseClone(t *testing.T) {
	d := load(t, testSVG)
	r := byID[*Rect](t, d, "rect1")
	u := byID[*Use](t, d, "use1")
	assert.Equal(t, Itemer(r), u.Original())
	assert.Equal(t, Itemer(r), u.UltimateOriginal())

	c, ok := u.Clone().(*Rect)
	require.True(t, ok)
	assert.True(t, c.IsCloned())
	assert.Equal(t, Object(r), d.ObjectByID("rect1"))
	assert.Equal(t, Object(u), c.ParentObject())

	// the clone follows the original
	r.Node().SetAttribute("width", "99")
	assert.Equal(t, float32(99), c.Width.Value)
	require.True(t, d.EnsureUpToDate())
	assertBox(t, math32.B2(10, 20, 109, 60), c.GeometricBounds())

	// clones are not deleted on their own
	c.Delete()
	assert.False(t, c.IsReleased())

	r.Delete()
	assert.True(t, c.IsReleased())
	assert.Nil(t, u.Clone())
}

func TestStylesheet(t *testing.T) {
	d := load(t, `<svg xmlns="http://www.w3.org/2000/svg">
  <style id="st">rect { fill: #00ff00 }</style>
  <rect id="r" width="10" height="10"/>
  <rect id="r2" class="x" width="10" height="10" style="fill:#ff0000"/>
</svg>`)
	r := byID[*Rect](t, d, "r")
	r2 := byID[*Rect](t, d, "r2")
	assert.Equal(t, "#00ff00", r.Style().Fill.Value.String())
	assert.Equal(t, "#ff0000", r2.Style().Fill.Value.String())
	assert.Len(t, d.Stylesheet().Rules, 1)

	st := d.ObjectByID("st")
	st.AsObject().Node().FirstChild().SetContent("#r { fill: #0000ff }")
	assert.Equal(t, "#0000ff", r.Style().Fill.Value.String())

	st.AsObject().Delete()
	assert.Equal(t, "#000000", r.Style().Fill.Value.String())
	assert.Empty(t, d.Stylesheet().Rules)
}

// onePixelPNG is a 1x1 transparent PNG.
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func TestImageDataURI(t *testing.T) {
	d := load(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
  <image id="im" width="10" height="10" xlink:href="data:image/png;base64,`+onePixelPNG+`"/>
</svg>`)
	im := byID[*Image](t, d, "im")
	assert.Equal(t, "png", im.Format)
	assert.Equal(t, math32.Vec2(1, 1), im.IntrinsicSize())
	assert.True(t, strings.HasPrefix(im.Href, "data:image/png"))

	// the href survives writing
	d.UpdateRepr()
	href, ok := im.Node().Attribute("xlink:href")
	require.True(t, ok)
	assert.Equal(t, im.Href, href)

	im.Node().SetAttribute("xlink:href", "photo.png")
	assert.Equal(t, "photo.png", im.Href)
	assert.Equal(t, "", im.Format)
	assert.Equal(t, math32.Vector2{}, im.IntrinsicSize())

	im.Node().RemoveAttribute("xlink:href")
	assert.Equal(t, "", im.Href)
}

func TestNonFiniteLength(t *testing.T) {
	d := load(t, `<svg xmlns="http://www.w3.org/2000/svg">
  <rect id="r" width="10" height="1e999" x="-1e40"/>
</svg>`)
	r := byID[*Rect](t, d, "r")
	assert.False(t, r.Height.IsSet)
	assert.Equal(t, float32(0), r.Height.Computed)
	assert.False(t, r.X.IsSet)
	assert.Equal(t, float32(10), r.Width.Computed)

	d.UpdateRepr()
	_, ok := r.Node().Attribute("height")
	assert.False(t, ok)
	_, ok = r.Node().Attribute("x")
	assert.False(t, ok)
	assert.Equal(t, "10", r.Node().AttributeOr("width", ""))
	assert.NotContains(t, d.WriteString(), "Inf")
}

func TestUndoRedo(t *testing.T) {
	d := load(t, testSVG)
	r := byID[*Rect](t, d, "rect1")
	assert.False(t, d.DoneAction("nothing"))

	r.Node().SetAttribute("width", "99")
	require.True(t, d.DoneAction("resize"))
	assert.True(t, d.CanUndo())

	assert.Equal(t, "resize", d.Undo())
	assert.Equal(t, float32(30), r.Width.Value)
	assert.True(t, d.CanRedo())
	assert.Equal(t, "resize", d.Redo())
	assert.Equal(t, float32(99), r.Width.Value)

	c := byID[*Circle](t, d, "circle1")
	c.Delete()
	require.True(t, d.DoneAction("delete"))
	assert.Nil(t, d.ObjectByID("circle1"))
	d.Undo()
	restored := byID[*Circle](t, d, "circle1")
	assert.NotEqual(t, c.Handle(), restored.Handle())
	assert.Equal(t, float32(10), restored.R.Value)

	// cancelling reverts the open action
	r.Node().SetAttribute("height", "1")
	d.CancelAction()
	assert.Equal(t, float32(40), r.Height.Value)
}
