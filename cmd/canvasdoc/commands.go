// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/lpe"
	"cogentcore.org/canvas/object"
	"cogentcore.org/canvas/repr"
)

// AttrsCmd lists the attribute names.
type AttrsCmd struct {
	CSS bool `name:"css" help:"Only list style properties"`
}

func (c *AttrsCmd) Run(g *Globals) error {
	for _, name := range attr.SortedNames(c.CSS) {
		g.printf("%s\n", name)
	}
	return nil
}

// LookupCmd prints the id and kind of attribute names.
type LookupCmd struct {
	Names []string `arg:"" help:"Attribute names, such as fill or inkscape:label"`
}

func (c *LookupCmd) Run(g *Globals) error {
	for _, name := range c.Names {
		a := attr.Lookup(name)
		switch {
		case !a.IsValid():
			g.printf("%s\tunknown\n", name)
		case a.IsCSS():
			g.printf("%s\t%d\tcss\n", name, int32(a))
		default:
			g.printf("%s\t%d\n", name, int32(a))
		}
	}
	return nil
}

// LPEsCmd lists the path effect kinds.
type LPEsCmd struct{}

func (c *LPEsCmd) Run(g *Globals) error {
	for _, key := range lpe.Keys() {
		g.printf("%s\t%s\n", key, lpe.KindFromKey(key).Label())
	}
	return nil
}

// open reads the document in file with the settings.
func (g *Globals) open(file string) (*object.Document, error) {
	d, err := object.Open(file, g.Settings)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file, err)
	}
	return d, nil
}

// TreeCmd prints the object tree.
type TreeCmd struct {
	File string `arg:"" help:"SVG file" type:"existingfile"`
}

func (c *TreeCmd) Run(g *Globals) error {
	d, err := g.open(c.File)
	if err != nil {
		return err
	}
	defer d.Close()
	printTree(g, d.Root(), 0)
	g.printf("%d objects\n", d.ObjectCount())
	return nil
}

// printTree prints an object and its children, one per line.
func printTree(g *Globals, o object.Object, depth int) {
	ob := o.AsObject()
	line := strings.Repeat("  ", depth) + ob.LocalTag()
	if id := ob.ID(); id != "" {
		line += "#" + id
	}
	if l := ob.Label(); l != "" {
		line += fmt.Sprintf(" %q", l)
	}
	if ob.IsCloned() {
		line += " (clone)"
	}
	if n := ob.HrefCount(); n > 0 {
		line += fmt.Sprintf(" [%d refs]", n)
	}
	g.printf("%s\n", line)
	for _, c := range ob.ChildObjects() {
		printTree(g, c, depth+1)
	}
}

// RoundtripCmd writes the document, reads the result and writes it
// again, and checks that both writes are the same.
type RoundtripCmd struct {
	File string `arg:"" help:"SVG file" type:"existingfile"`
	Out  string `help:"Write the result to this file" type:"path"`
}

// ErrNotIdempotent is returned by roundtrip when the second write
// differs from the first.
var ErrNotIdempotent = errors.New("writing is not idempotent")

func (c *RoundtripCmd) Run(g *Globals) error {
	d, err := g.open(c.File)
	if err != nil {
		return err
	}
	defer d.Close()
	d.UpdateRepr()
	first := d.WriteString()
	sum1 := repr.DigestString(d.Repr().Root())

	d2, err := object.LoadSettings(strings.NewReader(first), g.Settings)
	if err != nil {
		return fmt.Errorf("reading the first write: %w", err)
	}
	defer d2.Close()
	d2.UpdateRepr()
	sum2 := repr.DigestString(d2.Repr().Root())

	g.printf("%s\n%s\n", sum1, sum2)
	if c.Out != "" {
		if err := os.WriteFile(c.Out, []byte(first), 0o666); err != nil {
			return err
		}
	}
	if sum1 != sum2 {
		return ErrNotIdempotent
	}
	return nil
}

// ForkCmd gives the items that share a path effect with more than
// limit users their own copies, and writes the result.
type ForkCmd struct {
	File  string `arg:"" help:"SVG file" type:"existingfile"`
	Limit int    `help:"Users a path effect may keep; the lpe-share-limit setting if 0"`
	Out   string `help:"Write the result to this file instead of stdout" type:"path"`
}

func (c *ForkCmd) Run(g *Globals) error {
	d, err := g.open(c.File)
	if err != nil {
		return err
	}
	defer d.Close()
	limit := c.Limit
	if limit <= 0 {
		limit = max(g.Settings.LPEShareLimit, 1)
	}
	forked := 0
	for _, li := range lpeItems(d.Root()) {
		if li.ForkPathEffectsIfNecessary(limit) {
			forked++
		}
	}
	d.DoneAction("fork path effects")
	slog.Info("forked path effects", "items", forked, "limit", limit)
	if c.Out == "" {
		g.printf("%s", d.WriteString())
		return nil
	}
	return os.WriteFile(c.Out, []byte(d.WriteString()), 0o666)
}

// lpeItems returns the items under o that have path effects,
// in document order. Clones follow their originals and are skipped.
func lpeItems(o object.Object) []*object.LPEItem {
	var items []*object.LPEItem
	ob := o.AsObject()
	if ob.IsCloned() {
		return nil
	}
	if li, ok := o.(object.LPEItemer); ok && len(li.AsLPEItem().PathEffects()) > 0 {
		items = append(items, li.AsLPEItem())
	}
	for _, c := range ob.ChildObjects() {
		items = append(items, lpeItems(c)...)
	}
	return items
}

// QueryCmd prints the nodes selected by an XPath expression.
type QueryCmd struct {
	File string `arg:"" help:"SVG file" type:"existingfile"`
	Expr string `arg:"" help:"XPath expression, with svg:, inkscape: and sodipodi: prefixes"`
}

func (c *QueryCmd) Run(g *Globals) error {
	d, err := g.open(c.File)
	if err != nil {
		return err
	}
	defer d.Close()
	nodes, err := repr.Query(d.Repr().Root(), c.Expr)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if n.Type() != repr.ElementNode {
			g.printf("%s %q\n", n.Type(), n.Content())
			continue
		}
		line := n.Name()
		if id, ok := n.Attribute("id"); ok {
			line += "#" + id
		}
		if o := d.ObjectByRepr(n); o != nil {
			line += fmt.Sprintf(" %T", o)
		}
		g.printf("%s\n", line)
	}
	return nil
}
