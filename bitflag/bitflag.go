// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides simple bit flag setting, checking, and clearing
// methods for integer mask types whose constants are already shifted
// (1 << iota), so that several flags can be combined with | and
// passed around as a single value.
package bitflag

import "strings"

// Bits is the constraint for flag mask types.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int32 | ~int64
}

// Mask combines the given flags into one mask.
func Mask[F Bits](flags ...F) F {
	var mask F
	for _, f := range flags {
		mask |= f
	}
	return mask
}

// Set sets the given flag(s) on bits.
func Set[F Bits](bits *F, flags ...F) {
	*bits |= Mask(flags...)
}

// Clear clears the given flag(s) on bits.
func Clear[F Bits](bits *F, flags ...F) {
	*bits &^= Mask(flags...)
}

// SetState sets or clears the given flag(s) depending on state.
func SetState[F Bits](bits *F, state bool, flags ...F) {
	if state {
		Set(bits, flags...)
	} else {
		Clear(bits, flags...)
	}
}

// Toggle toggles the state of each of the given flags.
func Toggle[F Bits](bits *F, flags ...F) {
	for _, f := range flags {
		*bits ^= f
	}
}

// Has returns true if any bit of mask is set in bits.
func Has[F Bits](bits, mask F) bool {
	return bits&mask != 0
}

// HasAll returns true if every bit of mask is set in bits.
func HasAll[F Bits](bits, mask F) bool {
	return bits&mask == mask
}

// String returns a "|" separated list of the names of the set bits,
// where names[i] names the flag 1<<i. Unnamed bits are skipped.
func String[F Bits](bits F, names []string) string {
	var sb strings.Builder
	for i, nm := range names {
		if bits&(F(1)<<i) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(nm)
	}
	return sb.String()
}
