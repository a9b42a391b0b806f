// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attr is the registry of the XML attribute and CSS property
// names tracked by the document object model. Each name has a dense
// id of type [Attr]; the mapping is built once at startup and never
// changes, since the names are effectively a file format.
package attr

import (
	"fmt"
	"slices"
	"strconv"
)

// Attr is the id of a tracked attribute or CSS property name.
type Attr int32

// entry is one row of the name table. Each entry declares its own id,
// so that an insertion in the constants without the matching row
// (or the reverse) is caught at startup.
type entry struct {
	id   Attr
	name string

	// css marks a property that may be promoted into a style
	// declaration, and that style="" may set.
	css bool
}

// The name table must have exactly one row per id.
var (
	_ [len(table) - int(AttrsN)]struct{}
	_ [int(AttrsN) - len(table)]struct{}
)

// byName is the lookup map, built from table at init.
var byName map[string]Attr

func init() {
	byName = make(map[string]Attr, len(table))
	for i, e := range table {
		if int(e.id) != i {
			panic(fmt.Sprintf("attr: table entry %d (%q) declares id %d", i, e.name, e.id))
		}
		if i == 0 {
			continue
		}
		if _, dup := byName[e.name]; dup {
			panic(fmt.Sprintf("attr: duplicate name %q", e.name))
		}
		byName[e.name] = e.id
		if e.css != (e.id >= D && e.id < SystemLanguage) {
			panic(fmt.Sprintf("attr: %q css flag %v does not match the property range", e.name, e.css))
		}
	}
}

// Lookup returns the id of the given name, or [Invalid] if the name
// is not tracked. Untracked names are common and are not an error.
func Lookup(name string) Attr {
	return byName[name]
}

// Name returns the name of the given id. It panics for an id outside
// of [0, AttrsN), which is a programming error. The name of [Invalid]
// is the empty string.
func Name(a Attr) string {
	if a < 0 || a >= AttrsN {
		panic(fmt.Sprintf("attr.Name: id %d out of range", a))
	}
	return table[a].name
}

// IsCSS returns whether the given id is a CSS property.
// Ids out of range are not properties.
func IsCSS(a Attr) bool {
	if a <= Invalid || a >= AttrsN {
		return false
	}
	return table[a].css
}

// SortedNames returns all names in lexicographic order,
// or only the CSS property names if cssOnly is true.
func SortedNames(cssOnly bool) []string {
	names := make([]string, 0, len(table)-1)
	for _, e := range table[1:] {
		if !cssOnly || e.css {
			names = append(names, e.name)
		}
	}
	slices.Sort(names)
	return names
}

// All returns all valid ids, in id order.
func All() []Attr {
	vals := make([]Attr, 0, len(table)-1)
	for _, e := range table[1:] {
		vals = append(vals, e.id)
	}
	return vals
}

// IsValid returns whether the id is a tracked name, not [Invalid].
func (a Attr) IsValid() bool {
	return a > Invalid && a < AttrsN
}

// IsCSS returns whether the id is a CSS property. See [IsCSS].
func (a Attr) IsCSS() bool {
	return IsCSS(a)
}

// String returns the attribute name, or Attr(n) for an id
// that has no name.
func (a Attr) String() string {
	if !a.IsValid() {
		return "Attr(" + strconv.Itoa(int(a)) + ")"
	}
	return table[a].name
}

// MarshalText implements [encoding.TextMarshaler].
func (a Attr) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("attr: cannot marshal invalid id %d", a)
	}
	return []byte(table[a].name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Attr) UnmarshalText(text []byte) error {
	v := Lookup(string(text))
	if v == Invalid {
		return fmt.Errorf("attr: unknown name %q", text)
	}
	*a = v
	return nil
}
