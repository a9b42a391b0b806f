// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"maps"
	"slices"
	"sync/atomic"
)

var (
	// factory maps qualified tag names to object constructors.
	factory = map[string]func() Object{}

	// frozen is set by the first [New]; the factory is read-only after.
	frozen atomic.Bool
)

// Register registers the constructor of the objects for the given
// qualified tag name, such as svg:rect. It must be called from an init
// function: registering after the first [New], or twice for one tag,
// panics.
func Register(tag string, fn func() Object) {
	if frozen.Load() {
		panic("object.Register: factory is frozen, register " + tag + " from an init function")
	}
	if _, has := factory[tag]; has {
		panic("object.Register: " + tag + " is already registered")
	}
	factory[tag] = fn
}

// New returns a new object for the given qualified tag name, and false
// if no kind is registered for it. The object is not built.
func New(tag string) (Object, bool) {
	frozen.Store(true)
	fn, ok := factory[tag]
	if !ok {
		return nil, false
	}
	o := fn()
	o.(initer).initObject(o, tag)
	if d, ok := o.(defaulter); ok {
		d.Defaults()
	}
	return o, true
}

// initer is implemented through [ObjectBase]; kinds override it to
// set their defaults.
type initer interface {
	initObject(this Object, tag string)
}

// defaulter is implemented by kinds outside this package that
// have defaults to set on a new object.
type defaulter interface {
	Defaults()
}

// Tags returns the registered tag names, sorted.
func Tags() []string {
	return slices.Sorted(maps.Keys(factory))
}

func init() {
	Register("svg:svg", func() Object { return &Root{} })
	Register("svg:g", func() Object { return &Group{} })
	Register("svg:defs", func() Object { return &Defs{} })
	Register("svg:symbol", func() Object { return &Symbol{} })
	Register("svg:a", func() Object { return &Anchor{} })
	Register("svg:use", func() Object { return &Use{} })
	Register("svg:path", func() Object { return &Path{} })
	Register("svg:rect", func() Object { return &Rect{} })
	Register("svg:circle", func() Object { return &Circle{} })
	Register("svg:ellipse", func() Object { return &Ellipse{} })
	Register("svg:line", func() Object { return &Line{} })
	Register("svg:polyline", func() Object { return &Polyline{} })
	Register("svg:polygon", func() Object { return &Polygon{} })
	Register("svg:text", func() Object { return &Text{} })
	Register("svg:tspan", func() Object { return &TSpan{} })
	Register("svg:image", func() Object { return &Image{} })
	Register("svg:clipPath", func() Object { return &ClipPath{} })
	Register("svg:mask", func() Object { return &Mask{} })
	Register("svg:linearGradient", func() Object { return &LinearGradient{} })
	Register("svg:radialGradient", func() Object { return &RadialGradient{} })
	Register("svg:stop", func() Object { return &Stop{} })
	Register("svg:pattern", func() Object { return &Pattern{} })
	Register("svg:style", func() Object { return &StyleElem{} })
	Register("svg:title", func() Object { return &Title{} })
	Register("svg:desc", func() Object { return &Desc{} })
	Register("svg:metadata", func() Object { return &Metadata{} })
	Register("inkscape:path-effect", func() Object { return &PathEffectObject{} })
}
