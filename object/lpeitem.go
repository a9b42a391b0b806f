// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"slices"
	"strings"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/ppath"
	"cogentcore.org/canvas/repr"
	"cogentcore.org/canvas/signal"
)

// LPEReference is a reference to a path effect in the
// inkscape:path-effect list of an item. The item is updated when
// the effect object is modified.
type LPEReference struct {
	Ref[*PathEffectObject]

	modConn signal.Connection
}

func newLPEReference(owner Itemer) *LPEReference {
	r := &LPEReference{}
	r.init(owner, func(o Object) bool {
		_, ok := o.(*PathEffectObject)
		return ok
	})
	r.Changed.Connect(func(ch TargetChange) {
		if old, ok := ch.Old.(*PathEffectObject); ok {
			old.ModifiedSignal.Disconnect(r.modConn)
			r.modConn = 0
		}
		if pe, ok := ch.New.(*PathEffectObject); ok {
			r.modConn = pe.ModifiedSignal.Connect(func(Flags) {
				owner.AsObject().RequestDisplayUpdate(ModifiedFlag)
			})
		}
		owner.AsObject().RequestDisplayUpdate(ModifiedFlag)
	})
	return r
}

// LPEItem is the base of items that can have path effects.
type LPEItem struct {
	Item

	lpeRefs []*LPEReference
}

// LPEItemer is implemented by the kinds that embed [LPEItem].
type LPEItemer interface {
	Itemer

	// AsLPEItem returns the [LPEItem] of the object.
	AsLPEItem() *LPEItem
}

func (li *LPEItem) AsLPEItem() *LPEItem { return li }

func (li *LPEItem) Build(doc *Document, node *repr.Node) {
	li.Item.Build(doc, node)
	li.ReadAttr(attr.InkscapePathEffect)
}

func (li *LPEItem) Set(key attr.Attr, value *string) bool {
	if key != attr.InkscapePathEffect {
		return li.Item.Set(key, value)
	}
	li.clearPathEffects()
	if value != nil {
		owner := li.this().(Itemer)
		for _, href := range splitPathEffectList(*value) {
			r := newLPEReference(owner)
			li.lpeRefs = append(li.lpeRefs, r)
			r.TryLink(href)
		}
	}
	li.RequestDisplayUpdate(ModifiedFlag)
	return true
}

func splitPathEffectList(list string) []string {
	var hrefs []string
	for _, s := range strings.Split(list, ";") {
		if s = strings.TrimSpace(s); s != "" {
			hrefs = append(hrefs, s)
		}
	}
	return hrefs
}

func (li *LPEItem) clearPathEffects() {
	for _, r := range li.lpeRefs {
		r.Unlink()
	}
	li.lpeRefs = nil
}

// PathEffectList returns the hrefs of the path effects, in order.
func (li *LPEItem) PathEffectList() []string {
	hrefs := make([]string, len(li.lpeRefs))
	for i, r := range li.lpeRefs {
		hrefs[i] = r.Href()
	}
	return hrefs
}

// PathEffects returns the resolved path effect objects, in order.
func (li *LPEItem) PathEffects() []*PathEffectObject {
	var pes []*PathEffectObject
	for _, r := range li.lpeRefs {
		if pe := r.Object(); pe != nil {
			pes = append(pes, pe)
		}
	}
	return pes
}

// HasPathEffect returns whether the item has a path effect with an
// implementation.
func (li *LPEItem) HasPathEffect() bool {
	return slices.ContainsFunc(li.PathEffects(), func(pe *PathEffectObject) bool {
		return pe.Effect() != nil
	})
}

// PerformPathEffect returns the curve with the visible path effects
// applied in order.
func (li *LPEItem) PerformPathEffect(c ppath.Path) ppath.Path {
	for _, pe := range li.PathEffects() {
		if e := pe.Effect(); e != nil && pe.Visible {
			c = e.DoEffect(c)
		}
	}
	return c
}

// writePathEffectList writes the list of hrefs to the node.
func (li *LPEItem) writePathEffectList(hrefs []string) {
	setOrRemove(li.node, "inkscape:path-effect", strings.Join(hrefs, ";"), len(hrefs) > 0)
}

// AddPathEffect appends a path effect to the item. The current path
// data of a path becomes its original-d.
func (li *LPEItem) AddPathEffect(pe *PathEffectObject) {
	if pe.ID() == "" {
		pe.node.SetAttribute("id", li.doc.GenerateUniqueID("path-effect"))
	}
	if p, ok := li.This.(*Path); ok && !p.hasOriginalD {
		li.node.SetAttribute("inkscape:original-d", p.d.String())
	}
	li.writePathEffectList(append(li.PathEffectList(), "#"+pe.ID()))
}

// RemoveCurrentPathEffect removes the last path effect. When none are
// left, a path gets its original-d back as d, or keeps the result of
// the effects if keepPaths is true.
func (li *LPEItem) RemoveCurrentPathEffect(keepPaths bool) {
	hrefs := li.PathEffectList()
	if len(hrefs) == 0 {
		return
	}
	hrefs = hrefs[:len(hrefs)-1]
	li.writePathEffectList(hrefs)
	if len(hrefs) == 0 {
		if p, ok := li.This.(*Path); ok {
			p.restoreOriginal(keepPaths)
		}
	}
}

// ForkPathEffectsIfNecessary gives the item private copies of the path
// effects that have more than n users. It returns whether any was forked.
func (li *LPEItem) ForkPathEffectsIfNecessary(n int) bool {
	hrefs := li.PathEffectList()
	forked := false
	for i, r := range slices.Clone(li.lpeRefs) {
		pe := r.Object()
		if pe == nil {
			continue
		}
		if fk := pe.ForkPrivateIfNecessary(n); fk != pe {
			hrefs[i] = "#" + fk.ID()
			forked = true
		}
	}
	if forked {
		li.writePathEffectList(hrefs)
	}
	return forked
}

func (li *LPEItem) Release() {
	li.clearPathEffects()
	li.Item.Release()
}

func (li *LPEItem) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = li.Item.Write(rdoc, node, flags)
	if node != nil && flags&WriteExt != 0 {
		hrefs := li.PathEffectList()
		setOrRemove(node, "inkscape:path-effect", strings.Join(hrefs, ";"), len(hrefs) > 0)
	}
	return node
}
