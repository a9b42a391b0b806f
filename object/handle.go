// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "fmt"

// Handle is a stable reference to an object of a [Document]. Code that
// holds an object across a call that may release it keeps a Handle and
// resolves it again with [Document.Resolve], which returns nil once the
// object is released, even if its slot was reused. The zero Handle
// resolves to nil.
type Handle struct {
	index uint32 // slot + 1
	gen   uint32
}

// IsValid returns whether the handle was ever assigned.
func (h Handle) IsValid() bool {
	return h.index != 0
}

func (h Handle) String() string {
	if h.index == 0 {
		return "nil"
	}
	return fmt.Sprintf("%d.%d", h.index-1, h.gen)
}

// arena holds the live objects of a document in reusable slots.
type arena struct {
	slots []arenaSlot
	free  []uint32
}

type arenaSlot struct {
	obj Object
	gen uint32
}

func (a *arena) add(o Object) Handle {
	var i uint32
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, arenaSlot{})
		i = uint32(len(a.slots) - 1)
	}
	s := &a.slots[i]
	s.obj = o
	return Handle{index: i + 1, gen: s.gen}
}

func (a *arena) slot(h Handle) *arenaSlot {
	if h.index == 0 || int(h.index) > len(a.slots) {
		return nil
	}
	s := &a.slots[h.index-1]
	if s.gen != h.gen || s.obj == nil {
		return nil
	}
	return s
}

func (a *arena) resolve(h Handle) Object {
	if s := a.slot(h); s != nil {
		return s.obj
	}
	return nil
}

// remove frees the slot of h; its generation moves on so that
// h and its copies no longer resolve.
func (a *arena) remove(h Handle) {
	s := a.slot(h)
	if s == nil {
		return
	}
	s.obj = nil
	s.gen++
	a.free = append(a.free, h.index-1)
}

func (a *arena) len() int {
	return len(a.slots) - len(a.free)
}
