// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repr

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html/charset"
)

// Namespace URIs of the built in prefixes.
const (
	SVGNamespace      = "http://www.w3.org/2000/svg"
	XlinkNamespace    = "http://www.w3.org/1999/xlink"
	InkscapeNamespace = "http://www.inkscape.org/namespaces/inkscape"
	SodipodiNamespace = "http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
	XMLNamespace      = "http://www.w3.org/XML/1998/namespace"
	RDFNamespace      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	CCNamespace       = "http://creativecommons.org/ns#"
	DCNamespace       = "http://purl.org/dc/elements/1.1/"
)

// prefixes maps the built in namespace URIs to their fixed prefixes.
var prefixes = map[string]string{
	SVGNamespace:      "svg",
	XlinkNamespace:    "xlink",
	InkscapeNamespace: "inkscape",
	SodipodiNamespace: "sodipodi",
	XMLNamespace:      "xml",
	RDFNamespace:      "rdf",
	CCNamespace:       "cc",
	DCNamespace:       "dc",
}

// namespaceOf returns the URI of a built in prefix.
func namespaceOf(prefix string) string {
	for uri, p := range prefixes {
		if p == prefix {
			return uri
		}
	}
	return ""
}

// ParseOptions are the options for [ParseWithOptions].
type ParseOptions struct {
	// Strict requires well-formed XML. When false, common HTML-like
	// mistakes such as unquoted attributes are accepted.
	Strict bool

	// KeepSpace keeps text nodes that only contain white space.
	// They are always kept inside elements with xml:space="preserve".
	KeepSpace bool
}

// Parse reads an XML document with strict parsing.
// See [ParseWithOptions].
func Parse(r io.Reader) (*Document, error) {
	return ParseWithOptions(r, ParseOptions{Strict: true})
}

// ParseString reads an XML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseWithOptions reads an XML document. The character set declared
// in the XML header is decoded. Namespaced names are qualified with
// the fixed prefix of their namespace (svg:rect, xlink:href), and
// elements without a namespace are taken as svg elements.
// Declarations and processing instructions are dropped.
func ParseWithOptions(r io.Reader, opts ParseOptions) (*Document, error) {
	xdoc, err := xmlquery.ParseWithOptions(r, xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{
			Strict:        opts.Strict,
			AutoClose:     autoClose(opts.Strict),
			CharsetReader: charset.NewReaderLabel,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("repr.Parse: %w", err)
	}
	d := &Document{}
	for xn := xdoc.FirstChild; xn != nil; xn = xn.NextSibling {
		if xn.Type == xmlquery.ElementNode {
			d.root = d.convert(xn, opts.KeepSpace)
			break
		}
	}
	if d.root == nil {
		return nil, fmt.Errorf("repr.Parse: %w: no root element", ErrNotElement)
	}
	return d, nil
}

func autoClose(strict bool) []string {
	if strict {
		return nil
	}
	return []string{"br", "hr", "img", "input", "meta", "link"}
}

// convert converts an xmlquery element and its subtree.
func (d *Document) convert(xn *xmlquery.Node, keepSpace bool) *Node {
	n := d.CreateElement(d.elementName(xn))
	for _, a := range xn.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			if a.Name.Space == "xmlns" {
				if _, known := prefixes[a.Value]; !known {
					d.addNamespace(a.Name.Local, a.Value)
				}
			}
			continue
		}
		key := d.attrName(a)
		n.attrs.Set(key, a.Value)
	}
	switch n.AttributeOr("xml:space", "") {
	case "preserve":
		keepSpace = true
	case "default":
		keepSpace = false
	}
	for xc := xn.FirstChild; xc != nil; xc = xc.NextSibling {
		var c *Node
		switch xc.Type {
		case xmlquery.ElementNode:
			c = d.convert(xc, keepSpace)
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if !keepSpace && strings.TrimSpace(xc.Data) == "" {
				continue
			}
			c = d.CreateTextNode(xc.Data)
		case xmlquery.CommentNode:
			c = d.CreateComment(xc.Data)
		default:
			continue
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (d *Document) addNamespace(prefix, uri string) {
	if d.namespaces == nil {
		d.namespaces = map[string]string{}
	}
	d.namespaces[prefix] = uri
}

func (d *Document) elementName(xn *xmlquery.Node) string {
	if xn.NamespaceURI == "" {
		return "svg:" + xn.Data
	}
	if p, ok := prefixes[xn.NamespaceURI]; ok {
		return p + ":" + xn.Data
	}
	for p, uri := range d.namespaces {
		if uri == xn.NamespaceURI {
			return p + ":" + xn.Data
		}
	}
	if xn.Prefix != "" {
		return xn.Prefix + ":" + xn.Data
	}
	return xn.Data
}

// attrName returns the qualified attribute key. Unprefixed attributes
// have no namespace and keep their local name.
func (d *Document) attrName(a xmlquery.Attr) string {
	if a.NamespaceURI == "" {
		return a.Name.Local
	}
	if p, ok := prefixes[a.NamespaceURI]; ok {
		return p + ":" + a.Name.Local
	}
	if a.Name.Space != "" {
		// the document prefix, or the prefix itself if undeclared
		return a.Name.Space + ":" + a.Name.Local
	}
	return a.Name.Local
}

// Write writes the document as XML with an XML declaration.
// Elements that contain only elements are indented with the given
// indent string, one level per depth; an empty indent writes
// everything on one line. The root element declares the namespaces
// of all prefixes used in the tree.
func Write(w io.Writer, doc *Document, indent string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	wr := &writer{w: bw, indent: indent, decls: doc.namespaceDecls()}
	wr.node(doc.root, 0)
	bw.WriteString("\n")
	return bw.Flush()
}

// WriteString returns the document written with [Write].
func (d *Document) WriteString(indent string) string {
	var sb strings.Builder
	Write(&sb, d, indent)
	return sb.String()
}

// WriteNode writes one subtree as XML, without declaration
// or namespace declarations.
func WriteNode(w io.Writer, n *Node, indent string) error {
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: indent}
	wr.node(n, 0)
	return bw.Flush()
}

// String returns the subtree as one line of XML.
func (n *Node) String() string {
	var sb strings.Builder
	WriteNode(&sb, n, "")
	return sb.String()
}

// namespaceDecls returns the xmlns attributes for the root element.
func (d *Document) namespaceDecls() [][2]string {
	used := map[string]bool{}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.typ != ElementNode {
			return
		}
		if p, _, ok := strings.Cut(n.name, ":"); ok {
			used[p] = true
		}
		for _, k := range n.attrs.Keys {
			if p, _, ok := strings.Cut(k, ":"); ok {
				used[p] = true
			}
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(d.root)
	var decls [][2]string
	if used["svg"] {
		decls = append(decls, [2]string{"xmlns", SVGNamespace})
	}
	for _, p := range slices.Sorted(maps.Keys(used)) {
		if p == "svg" || p == "xml" || p == "xmlns" {
			continue
		}
		uri := namespaceOf(p)
		if uri == "" {
			uri = d.namespaces[p]
		}
		if uri != "" {
			decls = append(decls, [2]string{"xmlns:" + p, uri})
		}
	}
	return decls
}

type writer struct {
	w      *bufio.Writer
	indent string
	decls  [][2]string
}

var (
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;", "\n", "&#10;", "\t", "&#9;", "\r", "&#13;")
	textEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;")
)

// elementTag returns the tag written for a qualified element name,
// svg being the default namespace.
func elementTag(name string) string {
	return strings.TrimPrefix(name, "svg:")
}

func (wr *writer) newline(depth int) {
	if wr.indent == "" {
		return
	}
	wr.w.WriteByte('\n')
	for range depth {
		wr.w.WriteString(wr.indent)
	}
}

func (wr *writer) node(n *Node, depth int) {
	switch n.typ {
	case TextNode:
		wr.w.WriteString(textEscaper.Replace(n.content))
		return
	case CommentNode:
		wr.w.WriteString("<!--" + n.content + "-->")
		return
	}
	tag := elementTag(n.name)
	wr.w.WriteString("<" + tag)
	if depth == 0 {
		for _, d := range wr.decls {
			wr.w.WriteString(" " + d[0] + `="` + attrEscaper.Replace(d[1]) + `"`)
		}
	}
	for i, k := range n.attrs.Keys {
		wr.w.WriteString(" " + k + `="` + attrEscaper.Replace(n.attrs.Values[i]) + `"`)
	}
	if len(n.children) == 0 {
		wr.w.WriteString(" />")
		return
	}
	wr.w.WriteString(">")
	mixed := slices.ContainsFunc(n.children, func(c *Node) bool { return c.typ == TextNode })
	sub := *wr
	if mixed {
		sub.indent = ""
	}
	for _, c := range n.children {
		sub.newline(depth + 1)
		sub.node(c, depth+1)
	}
	sub.newline(depth)
	wr.w.WriteString("</" + tag + ">")
}
