// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/tree"
)

// UpdateContext is the context an object is updated in,
// given by its parent.
type UpdateContext struct {

	// I2Doc transforms the coordinates of the object to document
	// coordinates.
	I2Doc math32.Matrix2

	// I2VP transforms the coordinates of the object to the
	// coordinates of the nearest viewport.
	I2VP math32.Matrix2

	// Viewport is the nearest viewport, in its own coordinates.
	// Percentage lengths are relative to it.
	Viewport math32.Box2
}

// childContexter is implemented by kinds that give their children
// another context than their own, such as items with a transform
// and viewports.
type childContexter interface {
	ChildContext(ctx *UpdateContext) *UpdateContext
}

// RequestDisplayUpdate schedules an update of the object with the given
// flags. The first request since the last update marks every ancestor
// with [ChildModifiedFlag], and the document is scheduled at the root.
// ParentModifiedFlag is only passed down and is dropped here.
func (ob *ObjectBase) RequestDisplayUpdate(flags Flags) {
	if ob.released || ob.doc == nil {
		return
	}
	flags &^= ParentModifiedFlag
	if flags&(ModifiedFlag|ChildModifiedFlag) == 0 {
		flags |= ModifiedFlag
	}
	ob.invalidateBounds()
	propagated := ob.uflags&(ModifiedFlag|ChildModifiedFlag) != 0
	ob.uflags |= flags
	if propagated {
		return
	}
	if p := ob.ParentObject(); p != nil {
		p.AsObject().RequestDisplayUpdate(ChildModifiedFlag)
	} else {
		ob.doc.scheduleUpdate()
	}
}

// RequestModified schedules the modified pass for the object,
// without an update.
func (ob *ObjectBase) RequestModified(flags Flags) {
	if ob.released || ob.doc == nil {
		return
	}
	flags &^= ParentModifiedFlag
	if flags&(ModifiedFlag|ChildModifiedFlag) == 0 {
		flags |= ModifiedFlag
	}
	propagated := ob.mflags&(ModifiedFlag|ChildModifiedFlag) != 0
	ob.mflags |= flags
	if propagated {
		return
	}
	if p := ob.ParentObject(); p != nil {
		p.AsObject().RequestModified(ChildModifiedFlag)
	} else {
		ob.doc.scheduleUpdate()
	}
}

// invalidateBounds drops the cached bounding boxes of the object and
// of its ancestors, which contain it.
func (ob *ObjectBase) invalidateBounds() {
	ob.WalkUp(func(n tree.Node) bool {
		if it, ok := n.(Itemer); ok {
			it.AsItem().bboxValid = false
		}
		return true
	})
}

// UpdateDisplay runs the update pass on the object and its subtree: the
// pending flags are added to the given ones and cleared, the children
// that need it are updated first, and then [Object.Update] is called.
// It does nothing for a clean object. Children are reached through a
// snapshot of their handles, so an update that releases siblings is safe.
func (ob *ObjectBase) UpdateDisplay(ctx *UpdateContext, flags Flags) {
	if ob.released || ob.updating {
		return
	}
	this := ob.this()
	flags |= ob.uflags
	ob.mflags |= ob.uflags
	ob.uflags = 0
	if flags == 0 {
		return
	}
	ob.updating = true
	defer func() { ob.updating = false }()

	if flags&StyleModifiedFlag != 0 && flags&ParentModifiedFlag != 0 {
		ob.cascadeStyle()
	}
	cflags := flags
	if cflags&ModifiedFlag != 0 {
		cflags |= ParentModifiedFlag
	}
	cflags &= ModifiedCascade
	cctx := ctx
	if cc, ok := this.(childContexter); ok {
		cctx = cc.ChildContext(ctx)
	}
	for _, h := range ob.childHandles() {
		c := ob.doc.Resolve(h)
		if c == nil {
			continue
		}
		cb := c.AsObject()
		if cflags != 0 || cb.uflags&(ModifiedFlag|ChildModifiedFlag) != 0 {
			cb.UpdateDisplay(cctx, cflags)
		}
	}
	if ob.released {
		return
	}
	this.Update(ctx, flags)
}

// EmitModified runs the modified pass on the object: the pending
// modified flags are added to the cascaded ones and cleared,
// [Object.Modified] is called, and then [ObjectBase.ModifiedSignal]
// is emitted unless the object was released meanwhile.
func (ob *ObjectBase) EmitModified(flags Flags) {
	if ob.released {
		return
	}
	flags &= ModifiedCascade
	flags |= ob.mflags
	ob.mflags = 0
	if flags == 0 {
		return
	}
	doc, h := ob.doc, ob.handle
	ob.this().Modified(flags)
	if doc.Resolve(h) == nil {
		return
	}
	ob.ModifiedSignal.Emit(flags)
}
