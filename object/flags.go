// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "cogentcore.org/canvas/bitflag"

// Flags are the modification flags of an object: the kinds of change
// waiting for the update and modified passes.
type Flags uint32

const (
	// ModifiedFlag is a change of the object itself.
	ModifiedFlag Flags = 1 << iota

	// ChildModifiedFlag is a change somewhere below the object.
	ChildModifiedFlag

	// ParentModifiedFlag is a change of an ancestor that the object
	// depends on. It is only passed down, never requested.
	ParentModifiedFlag

	// StyleModifiedFlag is a change of the style.
	StyleModifiedFlag

	// ViewportModifiedFlag is a change of the nearest viewport.
	ViewportModifiedFlag

	// UserModifiedFlagA and UserModifiedFlagB are free for kinds
	// to use for their own changes.
	UserModifiedFlagA
	UserModifiedFlagB

	// StylesheetModifiedFlag is a change of the document stylesheet.
	StylesheetModifiedFlag

	flagsN = iota
)

const (
	// FlagsAll has every flag set.
	FlagsAll Flags = 1<<flagsN - 1

	// ModifiedCascade are the flags passed on to children: everything
	// but the object's own change, which becomes ParentModifiedFlag.
	ModifiedCascade = (FlagsAll &^ (ModifiedFlag | ChildModifiedFlag)) | ParentModifiedFlag
)

var flagNames = []string{"modified", "child-modified", "parent-modified", "style-modified", "viewport-modified", "user-a", "user-b", "stylesheet-modified"}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	return bitflag.String(f, flagNames)
}

// WriteFlags control [Object.Write].
type WriteFlags uint32

const (
	// WriteBuild creates a new node when none is given.
	WriteBuild WriteFlags = 1 << iota

	// WriteExt writes the Inkscape and Sodipodi extension attributes.
	WriteExt

	// WriteAll writes attributes that are at their defaults too.
	WriteAll

	// WriteNoChildren does not write the children.
	WriteNoChildren
)
