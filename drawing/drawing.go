// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawing is the rendering tree that document items are
// projected into. Each open view of a document has its own [Drawing],
// and each displayed item has one [Item] per drawing. Items hold the
// state that rendering needs; they are not rendered here.
package drawing

import (
	"log/slog"
	"sync/atomic"
)

// Display key offsets. Each item that shows sub-resources reserves
// [KeysPerItem] contiguous keys from [NewKeys], and a sub-resource
// shown for it uses the key base plus the offset of its role.
const (
	KeyClip = iota
	KeyMask
	KeyPaint

	KeysPerItem
)

var keyCounter atomic.Uint32

// NewKeys allocates n contiguous display keys and returns the first.
// Keys are unique for the process; 0 is never returned.
func NewKeys(n uint32) uint32 {
	if n == 0 {
		panic("drawing.NewKeys: zero keys")
	}
	return keyCounter.Add(n) - n + 1
}

// Observer receives the creation and destruction of items.
type Observer interface {
	ItemCreated(it *Item)
	ItemDestroyed(it *Item)
}

// Drawing is one view of a document: the root of a tree of items.
type Drawing struct {

	// Name is the name of the view, for debugging.
	Name string

	root      *Item
	observers []Observer
	items     int
}

// New returns a new drawing with an empty root group.
func New(name string) *Drawing {
	d := &Drawing{Name: name}
	d.root = d.NewItem(GroupItem)
	return d
}

// Root returns the root item, which the document root is shown into.
func (d *Drawing) Root() *Item {
	return d.root
}

// ItemCount returns the number of live items, including the root.
func (d *Drawing) ItemCount() int {
	return d.items
}

// AddObserver registers an observer of item creation and destruction.
func (d *Drawing) AddObserver(o Observer) {
	d.observers = append(d.observers, o)
}

// RemoveObserver removes an observer.
func (d *Drawing) RemoveObserver(o Observer) {
	for i, x := range d.observers {
		if x == o {
			d.observers = append(d.observers[:i:i], d.observers[i+1:]...)
			return
		}
	}
}

func (d *Drawing) created(it *Item) {
	d.items++
	for _, o := range d.observers {
		o.ItemCreated(it)
	}
}

func (d *Drawing) destroyed(it *Item) {
	d.items--
	slog.Debug("drawing: item destroyed", "drawing", d.Name, "kind", it.Kind, "key", it.Key)
	for _, o := range d.observers {
		o.ItemDestroyed(it)
	}
}
