// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"fmt"
	"strings"

	"cogentcore.org/canvas/math32"
)

// ViewBox is used in SVG to define the coordinate system of a viewport.
type ViewBox struct {

	// Min is the offset of the coordinate system.
	Min math32.Vector2

	// Size is the size of the coordinate system mapped to the viewport.
	// The view box is unset when it is zero.
	Size math32.Vector2

	// PreserveAspectRatio is how to scale the view box within the viewport.
	PreserveAspectRatio PreserveAspectRatio
}

// IsSet returns whether the view box has a size.
func (vb *ViewBox) IsSet() bool {
	return vb.Size.X > 0 && vb.Size.Y > 0
}

// SetString sets the view box from a viewBox attribute: four numbers.
func (vb *ViewBox) SetString(str string) error {
	nums, err := math32.ReadNumbers(str)
	if err != nil {
		return err
	}
	if len(nums) != 4 || nums[2] < 0 || nums[3] < 0 {
		return fmt.Errorf("object: viewBox needs four numbers with a positive size: %q", str)
	}
	vb.Min = math32.Vec2(nums[0], nums[1])
	vb.Size = math32.Vec2(nums[2], nums[3])
	return nil
}

func (vb *ViewBox) String() string {
	return math32.FormatFloat(vb.Min.X) + " " + math32.FormatFloat(vb.Min.Y) + " " +
		math32.FormatFloat(vb.Size.X) + " " + math32.FormatFloat(vb.Size.Y)
}

// Transform returns the transform from view box coordinates to the
// coordinates of the viewport, which has the given position and size.
func (vb *ViewBox) Transform(viewport math32.Box2) math32.Matrix2 {
	if !vb.IsSet() {
		return math32.Translate2D(viewport.Min.X, viewport.Min.Y)
	}
	size := viewport.Size()
	sx, sy := size.X/vb.Size.X, size.Y/vb.Size.Y
	par := vb.PreserveAspectRatio
	if par.Align != AlignNone {
		s := min(sx, sy)
		if par.MeetOrSlice == Slice {
			s = max(sx, sy)
		}
		sx, sy = s, s
	}
	tx := viewport.Min.X - vb.Min.X*sx
	ty := viewport.Min.Y - vb.Min.Y*sy
	free := math32.Vec2(size.X-vb.Size.X*sx, size.Y-vb.Size.Y*sy)
	switch par.Align & alignXMask {
	case alignXMid:
		tx += free.X / 2
	case alignXMax:
		tx += free.X
	}
	switch par.Align & alignYMask {
	case alignYMid:
		ty += free.Y / 2
	case alignYMax:
		ty += free.Y
	}
	return math32.Translate2D(tx, ty).Mul(math32.Scale2D(sx, sy))
}

// Aligns are the alignments of preserveAspectRatio.
type Aligns int32

const (
	alignXMin Aligns = 1 << iota
	alignXMid
	alignXMax
	alignYMin
	alignYMid
	alignYMax

	alignXMask = alignXMin | alignXMid | alignXMax
	alignYMask = alignYMin | alignYMid | alignYMax

	// AlignNone scales the view box to the viewport
	// without preserving its aspect ratio.
	AlignNone Aligns = 0

	// AlignMidMid is the default, xMidYMid.
	AlignMidMid = alignXMid | alignYMid
)

var alignNames = map[string]Aligns{
	"none":     AlignNone,
	"xMinYMin": alignXMin | alignYMin, "xMidYMin": alignXMid | alignYMin, "xMaxYMin": alignXMax | alignYMin,
	"xMinYMid": alignXMin | alignYMid, "xMidYMid": alignXMid | alignYMid, "xMaxYMid": alignXMax | alignYMid,
	"xMinYMax": alignXMin | alignYMax, "xMidYMax": alignXMid | alignYMax, "xMaxYMax": alignXMax | alignYMax,
}

func (a Aligns) String() string {
	for name, v := range alignNames {
		if v == a {
			return name
		}
	}
	return "xMidYMid"
}

// MeetOrSlice is how preserveAspectRatio scales.
type MeetOrSlice int32

const (
	// Meet makes the whole view box visible in the viewport.
	Meet MeetOrSlice = iota

	// Slice makes the view box cover the whole viewport.
	Slice
)

// PreserveAspectRatio is the preserveAspectRatio attribute.
type PreserveAspectRatio struct {
	Align       Aligns
	MeetOrSlice MeetOrSlice
}

// Defaults sets xMidYMid meet.
func (p *PreserveAspectRatio) Defaults() {
	p.Align = AlignMidMid
	p.MeetOrSlice = Meet
}

// SetString sets the value from a preserveAspectRatio attribute.
// On error the value is reset to the defaults.
func (p *PreserveAspectRatio) SetString(str string) error {
	p.Defaults()
	fields := strings.Fields(str)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	if len(fields) == 0 || len(fields) > 2 {
		return fmt.Errorf("object: bad preserveAspectRatio %q", str)
	}
	align, ok := alignNames[fields[0]]
	if !ok {
		return fmt.Errorf("object: bad preserveAspectRatio align %q", fields[0])
	}
	p.Align = align
	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
		case "slice":
			p.MeetOrSlice = Slice
		default:
			p.Defaults()
			return fmt.Errorf("object: bad preserveAspectRatio %q", str)
		}
	}
	return nil
}

func (p PreserveAspectRatio) String() string {
	s := p.Align.String()
	if p.MeetOrSlice == Slice {
		s += " slice"
	}
	return s
}

// Viewporter is implemented by the kinds that establish a new
// viewport for their children: the root, symbols and uses.
type Viewporter interface {

	// ViewBoxTransform returns the transform from the coordinates of
	// the children to those of the element.
	ViewBoxTransform() math32.Matrix2
}
