// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a generic undo / redo manager over the change
// events recorded by [repr.Document] transactions. Undo is a forward
// restoration: undoing a record applies the inverse of its events,
// redoing it replays them.
package undo

import (
	"log/slog"
	"sync"

	"cogentcore.org/canvas/repr"
)

// DefaultLimit is the default maximum number of records kept.
var DefaultLimit = 100

// Rec is one undo record, associated with one action that changed
// the document from one state to the next.
type Rec struct {

	// Action is a description of the action, for the user to see.
	Action string

	// Events are the changes made by the action, in order.
	Events []repr.Event
}

// Mgr is the undo manager, managing the undo / redo process.
type Mgr struct {

	// Index is the current index in the undo records:
	// the record that will be undone by the next [Mgr.Undo].
	Index int

	// Recs is the list of saved records.
	Recs []*Rec

	// Limit is the maximum number of records kept, with the oldest
	// dropped first. Zero means [DefaultLimit].
	Limit int

	// Mu protects updates.
	Mu sync.Mutex
}

// NewMgr returns a new manager with the given record limit.
func NewMgr(limit int) *Mgr {
	return &Mgr{Index: -1, Limit: limit}
}

// Save saves a new action as the next action to be undone. Any records
// after the current index are discarded, so that redo is no longer
// available. An action without events is not saved.
func (um *Mgr) Save(action string, events []repr.Event) {
	if len(events) == 0 {
		return
	}
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Recs == nil {
		um.Index = -1
	}
	if um.Index+1 < len(um.Recs) {
		um.Recs = um.Recs[:um.Index+1]
	}
	um.Recs = append(um.Recs, &Rec{Action: action, Events: events})
	limit := um.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if over := len(um.Recs) - limit; over > 0 {
		slog.Debug("undo: dropping oldest records", "n", over)
		um.Recs = um.Recs[over:]
	}
	um.Index = len(um.Recs) - 1
}

// IsUndoAvail returns true if there is at least one undo record available.
func (um *Mgr) IsUndoAvail() bool {
	return um.Index >= 0 && len(um.Recs) > 0
}

// IsRedoAvail returns true if there is at least one redo record available.
func (um *Mgr) IsRedoAvail() bool {
	return um.Index < len(um.Recs)-1
}

// Undo reverts the record at the current index and decrements the
// index. It returns the action of the record, or "" if there is
// nothing to undo.
func (um *Mgr) Undo() string {
	um.Mu.Lock()
	if !um.IsUndoAvail() {
		um.Mu.Unlock()
		return ""
	}
	rec := um.Recs[um.Index]
	um.Index--
	um.Mu.Unlock()
	// applied outside the lock: observers may save new records
	repr.Undo(rec.Events)
	return rec.Action
}

// Redo replays the record after the current index and increments the
// index. It returns the action of the record, or "" if there is
// nothing to redo.
func (um *Mgr) Redo() string {
	um.Mu.Lock()
	if !um.IsRedoAvail() {
		um.Mu.Unlock()
		return ""
	}
	um.Index++
	rec := um.Recs[um.Index]
	um.Mu.Unlock()
	repr.Replay(rec.Events)
	return rec.Action
}

// Reset removes all records.
func (um *Mgr) Reset() {
	um.Mu.Lock()
	um.Recs = nil
	um.Index = -1
	um.Mu.Unlock()
}
