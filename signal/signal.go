// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package signal provides a simple ordered signal / slot mechanism.
//
// A receiver connects in advance to a signal on a sender, and the sender
// emits a value whenever the event occurs. This separates when something
// has happened, who should hear about it, and what they do in response.
//
// Receivers are called synchronously, in the order in which they were
// connected. Connecting or disconnecting during an emission is allowed:
// a receiver disconnected during an emission is not called afterward,
// and a receiver connected during an emission is first called on the
// next emission.
package signal

// Connection identifies one connection to a [Signal], for use with
// [Signal.Disconnect]. The zero value is never a valid connection.
type Connection uint64

type slot[T any] struct {
	id      Connection
	fun     func(v T)
	removed bool
}

// Signal is a list of receiver functions called with a value of type T.
// The zero value is ready to use.
type Signal[T any] struct {
	slots  []*slot[T]
	nextID Connection
}

// Connect adds the given receiver function and returns its [Connection].
func (s *Signal[T]) Connect(fun func(v T)) Connection {
	s.nextID++
	s.slots = append(s.slots, &slot[T]{id: s.nextID, fun: fun})
	return s.nextID
}

// Disconnect removes the given connection. It is a no-op if the
// connection is not present.
func (s *Signal[T]) Disconnect(c Connection) {
	for i, sl := range s.slots {
		if sl.id == c {
			sl.removed = true
			s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
			return
		}
	}
}

// DisconnectAll removes all connections.
func (s *Signal[T]) DisconnectAll() {
	for _, sl := range s.slots {
		sl.removed = true
	}
	s.slots = nil
}

// Len returns the number of connections.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// Emit calls all of the connected receivers with the given value.
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}
	snap := append([]*slot[T](nil), s.slots...)
	for _, sl := range snap {
		if sl.removed {
			continue
		}
		sl.fun(v)
	}
}
