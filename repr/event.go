// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repr

import (
	"fmt"
)

// EventKinds are the kinds of recorded changes.
type EventKinds int32

const (
	// AttributeEvent is an attribute set or removed.
	AttributeEvent EventKinds = iota

	// AddEvent is a child added.
	AddEvent

	// RemoveEvent is a child removed.
	RemoveEvent

	// ContentEvent is text or comment content changed.
	ContentEvent

	// OrderEvent is a child moved among its siblings.
	OrderEvent
)

func (k EventKinds) String() string {
	switch k {
	case AttributeEvent:
		return "attr"
	case AddEvent:
		return "add"
	case RemoveEvent:
		return "del"
	case ContentEvent:
		return "content"
	case OrderEvent:
		return "order"
	}
	return fmt.Sprintf("EventKinds(%d)", int32(k))
}

// Event is one recorded change of a transaction, holding
// what is needed to apply it again or to revert it.
type Event struct {
	Kind EventKinds

	// Node is the changed node: the parent for child events.
	Node *Node

	// Child is the added, removed or moved child.
	Child *Node

	// Ref is the sibling the child is after: for add and order the
	// new position, for remove the old one. Nil means first.
	Ref *Node

	// OldRef is the sibling a moved child was after before the move.
	OldRef *Node

	// Key is the attribute key of an attribute event.
	Key string

	// OldValue and NewValue are the attribute values, nil if absent.
	OldValue, NewValue *string

	// Index is the position of the attribute in the attribute list:
	// before the change for a removal, after it otherwise.
	Index int

	// OldContent and NewContent are the node contents.
	OldContent, NewContent string
}

func (ev Event) String() string {
	switch ev.Kind {
	case AttributeEvent:
		return fmt.Sprintf("attr %s %s: %s -> %s", ev.Node.name, ev.Key, valueString(ev.OldValue), valueString(ev.NewValue))
	case ContentEvent:
		return fmt.Sprintf("content %s: %q -> %q", ev.Node.name, ev.OldContent, ev.NewContent)
	}
	return fmt.Sprintf("%s %s child %s", ev.Kind, ev.Node.name, ev.Child.name)
}

func valueString(v *string) string {
	if v == nil {
		return "<none>"
	}
	return fmt.Sprintf("%q", *v)
}

// Replay applies the events in order, redoing their changes
// on the tree they were recorded from. Observers are notified
// as for any other change.
func Replay(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case AttributeEvent:
			ev.Node.SetOrRemoveAttribute(ev.Key, ev.NewValue)
		case AddEvent:
			ev.Node.AddChild(ev.Child, ev.Ref)
		case RemoveEvent:
			ev.Node.RemoveChild(ev.Child)
		case ContentEvent:
			ev.Node.SetContent(ev.NewContent)
		case OrderEvent:
			ev.Node.ChangeOrder(ev.Child, ev.Ref)
		}
	}
}

// Undo reverts the events, in reverse order, restoring the tree to
// its state before they were recorded.
func Undo(events []Event) {
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		switch ev.Kind {
		case AttributeEvent:
			ev.Node.insertAttribute(ev.Key, ev.OldValue, ev.Index)
		case AddEvent:
			ev.Node.RemoveChild(ev.Child)
		case RemoveEvent:
			ev.Node.AddChild(ev.Child, ev.Ref)
		case ContentEvent:
			ev.Node.SetContent(ev.OldContent)
		case OrderEvent:
			ev.Node.ChangeOrder(ev.Child, ev.OldRef)
		}
	}
}
