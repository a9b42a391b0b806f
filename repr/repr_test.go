// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repr

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"
  xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="100" height="50">
  <defs id="defs1">
    <linearGradient id="grad1"><stop offset="0" style="stop-color:#ff0000" /></linearGradient>
  </defs>
  <g id="layer1" inkscape:label="Layer 1" inkscape:groupmode="layer">
    <rect id="rect1" x="1" y="2" width="10" height="20" />
    <!-- note -->
    <use id="use1" xlink:href="#rect1" />
    <text id="text1" xml:space="preserve">Hello <tspan id="ts1">world</tspan></text>
  </g>
</svg>
`

// recorder is an observer that records the changes it sees.
type recorder struct {
	ObserverBase
	name string
	log  *[]string
}

func (r *recorder) NotifyAttributeChanged(node *Node, key string, oldValue, newValue *string, interactive bool) {
	*r.log = append(*r.log, fmt.Sprintf("%s:%s=%s", r.name, key, valueString(newValue)))
}

func (r *recorder) NotifyChildAdded(node, child, prev *Node) {
	*r.log = append(*r.log, r.name+":add:"+child.Name())
}

func (r *recorder) NotifyChildRemoved(node, child, prev *Node) {
	*r.log = append(*r.log, r.name+":del:"+child.Name())
}

func TestParse(t *testing.T) {
	d, err := ParseString(testSVG)
	require.NoError(t, err)
	root := d.Root()
	assert.Equal(t, "svg:svg", root.Name())
	assert.Equal(t, []string{"width", "height"}, root.AttributeKeys())
	require.Equal(t, 2, root.ChildCount())

	layer := root.ChildAt(1)
	assert.Equal(t, "svg:g", layer.Name())
	label, ok := layer.Attribute("inkscape:label")
	assert.True(t, ok)
	assert.Equal(t, "Layer 1", label)

	use := layer.ChildAt(2)
	assert.Equal(t, "svg:use", use.Name())
	assert.Equal(t, "#rect1", use.AttributeOr("xlink:href", ""))
	assert.Equal(t, CommentNode, layer.ChildAt(1).Type())

	text := layer.ChildAt(3)
	assert.Equal(t, "Hello world", text.TextContent())
	assert.Equal(t, "preserve", text.AttributeOr("xml:space", ""))
}

func TestParseCharset(t *testing.T) {
	src := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><title>caf\xe9</title></svg>")
	d, err := Parse(bytes.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "café", d.Root().FirstChild().TextContent())
	assert.Equal(t, "svg:title", d.Root().FirstChild().Name())
}

func TestParseErrors(t *testing.T) {
	_, err := ParseString("<svg><g></svg>")
	assert.Error(t, err)
	_, err = ParseString("")
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	d, err := ParseString(testSVG)
	require.NoError(t, err)
	out := d.WriteString("  ")
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" xmlns:xlink="http://www.w3.org/1999/xlink" width="100" height="50">`)
	assert.Contains(t, out, `<text id="text1" xml:space="preserve">Hello <tspan id="ts1">world</tspan></text>`)
	assert.Contains(t, out, "\n    <rect id=\"rect1\" x=\"1\" y=\"2\" width=\"10\" height=\"20\" />")

	d2, err := ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, out, d2.WriteString("  "))
	assert.Equal(t, Digest(d.Root()), Digest(d2.Root()))
}

func TestWriteEscape(t *testing.T) {
	d := NewDocument()
	r := d.Root()
	r.SetAttribute("inkscape:label", `a "b" <c> & d`)
	r.AppendChild(d.CreateTextNode("1 < 2 & 3"))
	s := r.String()
	assert.Equal(t, `<svg inkscape:label="a &quot;b&quot; &lt;c&gt; &amp; d">1 &lt; 2 &amp; 3</svg>`, s)

	d2, err := ParseString(d.WriteString(""))
	require.NoError(t, err)
	assert.Equal(t, `a "b" <c> & d`, d2.Root().AttributeOr("inkscape:label", ""))
	assert.Equal(t, "1 < 2 & 3", d2.Root().TextContent())
}

func TestAttributes(t *testing.T) {
	d := NewDocument()
	n := d.CreateElement("svg:rect")
	var log []string
	n.AddObserver(&recorder{name: "a", log: &log})

	n.SetAttribute("width", "10")
	n.SetAttribute("height", "20")
	n.SetAttribute("width", "11")
	n.SetAttribute("width", "11") // unchanged: no notification
	assert.Equal(t, []string{"width", "height"}, n.AttributeKeys())

	n.RemoveAttribute("nothing")
	n.RemoveAttribute("height")
	_, ok := n.Attribute("height")
	assert.False(t, ok)
	assert.Nil(t, n.AttributePtr("height"))
	assert.Equal(t, []string{`a:width="10"`, `a:height="20"`, `a:width="11"`, `a:height=<none>`}, log)
}

func TestObserverOrder(t *testing.T) {
	d := NewDocument()
	n := d.Root()
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	c := &recorder{name: "c", log: &log}
	n.AddObserver(a)
	n.AddObserver(b)
	d.AddObserver(c)
	n.SetAttribute("x", "1")
	assert.Equal(t, []string{`a:x="1"`, `b:x="1"`, `c:x="1"`}, log)

	// rm removes b during delivery: b is not called
	log = nil
	n.RemoveObserver(a)
	n.RemoveObserver(b)
	rm := &removing{node: n, target: b, log: &log}
	n.AddObserver(rm)
	n.AddObserver(b)
	n.SetAttribute("x", "2")
	assert.Equal(t, []string{"rm", `c:x="2"`}, log)

	log = nil
	n.SetAttribute("x", "3")
	assert.Equal(t, []string{"rm", `c:x="3"`}, log)
	assert.Equal(t, 1, n.ObserverCount())
}

type removing struct {
	ObserverBase
	node   *Node
	target Observer
	log    *[]string
}

func (r *removing) NotifyAttributeChanged(node *Node, key string, oldValue, newValue *string, interactive bool) {
	*r.log = append(*r.log, "rm")
	r.node.RemoveObserver(r.target)
}

func TestChildren(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	var log []string
	root.AddObserver(&recorder{name: "r", log: &log})
	a := d.CreateElement("svg:a")
	b := d.CreateElement("svg:b")
	c := d.CreateElement("svg:c")
	root.AppendChild(a)
	root.AppendChild(c)
	root.AddChild(b, a)
	assert.Equal(t, []*Node{a, b, c}, root.Children())
	assert.Equal(t, 1, b.Position())
	assert.Equal(t, c, b.Next())
	assert.Equal(t, a, b.Prev())

	root.ChangeOrder(c, nil)
	assert.Equal(t, []*Node{c, a, b}, root.Children())
	root.RemoveChild(a)
	assert.Nil(t, a.Parent())
	assert.Equal(t, []*Node{c, b}, root.Children())
	assert.Equal(t, []string{"r:add:svg:a", "r:add:svg:c", "r:add:svg:b", "r:del:svg:a"}, log)

	assert.Panics(t, func() { root.AddChild(b, nil) })
	assert.Panics(t, func() { b.AppendChild(root) })
	other := NewDocument()
	assert.Panics(t, func() { root.AppendChild(other.CreateElement("svg:x")) })
}

func TestTransactionUndoRedo(t *testing.T) {
	d, err := ParseString(testSVG)
	require.NoError(t, err)
	before := d.WriteString("")

	d.BeginTransaction()
	assert.True(t, d.InTransaction())
	rect, err := QueryOne(d.Root(), "//svg:rect")
	require.NoError(t, err)
	rect.SetAttribute("width", "99")
	rect.RemoveAttribute("y")
	layer := rect.Parent()
	circle := d.CreateElement("svg:circle")
	circle.SetAttribute("r", "5")
	layer.AddChild(circle, rect)
	layer.ChangeOrder(rect, layer.LastChild())
	text, _ := QueryOne(d.Root(), "//svg:tspan/text()")
	text.SetContent("there")
	defs, _ := QueryOne(d.Root(), "//svg:defs")
	d.Root().RemoveChild(defs)
	evs := d.Commit()
	assert.False(t, d.InTransaction())
	require.Len(t, evs, 7)
	assert.Equal(t, AttributeEvent, evs[2].Kind)
	assert.Equal(t, AddEvent, evs[3].Kind)
	after := d.WriteString("")
	assert.NotEqual(t, before, after)

	Undo(evs)
	assert.Equal(t, before, d.WriteString(""))
	Replay(evs)
	assert.Equal(t, after, d.WriteString(""))
}

func TestUndoAttributeOrder(t *testing.T) {
	d := NewDocument()
	n := d.CreateElement("svg:rect")
	d.Root().AppendChild(n)
	for _, k := range []string{"x", "y", "width", "height"} {
		n.SetAttribute(k, "1")
	}
	d.BeginTransaction()
	n.RemoveAttribute("y")
	n.RemoveAttribute("x")
	n.SetAttribute("y", "2")
	evs := d.Commit()
	assert.Equal(t, []string{"width", "height", "y"}, n.AttributeKeys())

	Undo(evs)
	assert.Equal(t, []string{"x", "y", "width", "height"}, n.AttributeKeys())
	assert.Equal(t, "1", n.AttributeOr("y", ""))
	Replay(evs)
	assert.Equal(t, []string{"width", "height", "y"}, n.AttributeKeys())
}

func TestRollback(t *testing.T) {
	d := NewDocument()
	before := d.WriteString("")
	d.BeginTransaction()
	d.Root().SetAttribute("width", "10")
	d.Root().AppendChild(d.CreateElement("svg:g"))
	d.Rollback()
	assert.Equal(t, before, d.WriteString(""))
	assert.Nil(t, d.Commit())
}

func TestDuplicate(t *testing.T) {
	d, err := ParseString(testSVG)
	require.NoError(t, err)
	var log []string
	layer, _ := QueryOne(d.Root(), "//svg:g")
	layer.AddObserver(&recorder{name: "l", log: &log})
	cp := layer.Duplicate(d)
	assert.Nil(t, cp.Parent())
	assert.Equal(t, 0, cp.ObserverCount())
	assert.Equal(t, layer.String(), cp.String())
	cp.SetAttribute("id", "layer2")
	assert.Equal(t, "layer1", layer.AttributeOr("id", ""))

	d2 := NewDocument()
	cp2 := layer.Duplicate(d2)
	assert.Equal(t, d2, cp2.Document())
	d2.Root().AppendChild(cp2)
	assert.Empty(t, log)
}

func TestMergeFrom(t *testing.T) {
	d, err := ParseString(`<svg><rect id="r1" x="1" /><circle id="c1" r="2" /><g id="g1" /></svg>`)
	require.NoError(t, err)
	src, err := ParseString(`<svg width="5"><circle id="c1" r="3" /><rect id="r1" y="4" /><path id="p1" /></svg>`)
	require.NoError(t, err)
	rect := d.Root().FirstChild()
	var log []string
	rect.AddObserver(&recorder{name: "r", log: &log})

	d.Root().MergeFrom(src.Root(), "id", true)
	assert.Equal(t, `<svg width="5"><circle id="c1" r="3" /><rect id="r1" y="4" /><path id="p1" /></svg>`, d.Root().String())
	// the rect object was kept and updated in place
	assert.Equal(t, rect, d.Root().ChildAt(1))
	assert.Equal(t, []string{`r:y="4"`, `r:x=<none>`}, log)
}

func TestMergeFromKeep(t *testing.T) {
	d, err := ParseString(`<svg><rect id="r1" x="1" /></svg>`)
	require.NoError(t, err)
	src, err := ParseString(`<svg><rect id="r1" y="4" /><g /></svg>`)
	require.NoError(t, err)
	d.Root().MergeFrom(src.Root(), "id", false)
	assert.Equal(t, `<svg><rect id="r1" x="1" y="4" /><g /></svg>`, d.Root().String())
}

func TestQuery(t *testing.T) {
	d, err := ParseString(testSVG)
	require.NoError(t, err)
	res, err := Query(d.Root(), "//svg:g[@inkscape:groupmode='layer']/*")
	require.NoError(t, err)
	var names []string
	for _, n := range res {
		names = append(names, n.Name())
	}
	assert.Equal(t, []string{"svg:rect", "svg:use", "svg:text"}, names)

	res, err = Query(d.Root(), "//*[@xlink:href]")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "use1", res[0].AttributeOr("id", ""))

	v, err := Evaluate(d.Root(), "count(//svg:stop)")
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)

	n, err := QueryOne(d.Root(), "//svg:nothing")
	assert.NoError(t, err)
	assert.Nil(t, n)

	_, err = Query(d.Root(), "//[")
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	d := NewDocument()
	a := Digest(d.Root())
	assert.Len(t, DigestString(d.Root()), 64)
	d.Root().SetAttribute("width", "1")
	assert.NotEqual(t, a, Digest(d.Root()))
	d.Root().RemoveAttribute("width")
	assert.Equal(t, a, Digest(d.Root()))
}

func TestUnknownNamespace(t *testing.T) {
	d, err := ParseString(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:foo="urn:foo"><foo:bar foo:baz="1" /></svg>`)
	require.NoError(t, err)
	assert.Equal(t, "foo:bar", d.Root().FirstChild().Name())
	assert.Equal(t, "1", d.Root().FirstChild().AttributeOr("foo:baz", ""))
	out := d.WriteString("")
	assert.True(t, strings.Contains(out, `xmlns:foo="urn:foo"`), out)
}
