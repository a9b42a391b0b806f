// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repr

// Observer receives the changes made to a [Node]. Notifications are
// delivered synchronously, in registration order, before the mutating
// call returns. An observer may remove itself or others while being
// notified; observers added during a delivery see the next change.
type Observer interface {
	// NotifyChildAdded is called after child was inserted into node,
	// immediately after prev (nil if child is the first child).
	NotifyChildAdded(node, child, prev *Node)

	// NotifyChildRemoved is called after child was removed from node,
	// where it was immediately after prev.
	NotifyChildRemoved(node, child, prev *Node)

	// NotifyChildOrderChanged is called after child was moved within
	// node from after oldPrev to after newPrev.
	NotifyChildOrderChanged(node, child, oldPrev, newPrev *Node)

	// NotifyContentChanged is called after the content of a text or
	// comment node changed.
	NotifyContentChanged(node *Node, oldContent, newContent string)

	// NotifyAttributeChanged is called after an attribute of node
	// changed. A nil value means the attribute is absent.
	// Interactive is true for changes made during an interactive
	// edit, see [Document.SetInteractive].
	NotifyAttributeChanged(node *Node, key string, oldValue, newValue *string, interactive bool)
}

// ObserverBase implements [Observer] with methods that do nothing,
// for embedding in observers interested in a subset of changes.
type ObserverBase struct{}

func (ObserverBase) NotifyChildAdded(node, child, prev *Node)                       {}
func (ObserverBase) NotifyChildRemoved(node, child, prev *Node)                     {}
func (ObserverBase) NotifyChildOrderChanged(node, child, oldPrev, newPrev *Node)    {}
func (ObserverBase) NotifyContentChanged(node *Node, oldContent, newContent string) {}
func (ObserverBase) NotifyAttributeChanged(node *Node, key string, oldValue, newValue *string, interactive bool) {
}

// observers is an ordered list of observers.
type observers []Observer

func (os *observers) add(o Observer) {
	*os = append(*os, o)
}

// remove removes the first registration of o, returning whether
// it was found. The backing array is not modified, so that
// a snapshot taken for delivery stays intact.
func (os *observers) remove(o Observer) bool {
	for i, x := range *os {
		if x == o {
			nos := make(observers, 0, len(*os)-1)
			nos = append(nos, (*os)[:i]...)
			*os = append(nos, (*os)[i+1:]...)
			return true
		}
	}
	return false
}

// contains returns whether o is registered.
func (os observers) contains(o Observer) bool {
	for _, x := range os {
		if x == o {
			return true
		}
	}
	return false
}
