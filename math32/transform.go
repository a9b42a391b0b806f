// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// transformList is the grammar of the SVG transform attribute:
// a whitespace or comma separated list of transform functions.
type transformList struct {
	Items []*transformItem `parser:"( @@ \",\"? )*"`
}

type transformItem struct {
	Pos  lexer.Position
	Name string    `parser:"@Ident \"(\""`
	Args []float32 `parser:"( @Number \",\"? )* \")\""`
}

var transformLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var transformParser = participle.MustBuild[transformList](
	participle.Lexer(transformLexer),
	participle.Elide("Whitespace"),
)

// ParseTransform parses an SVG transform list, such as
// "translate(10,20) rotate(45 5 5)", into one matrix. The functions
// are composed left to right, so the rightmost one applies first.
// An empty string or "none" is the identity.
func ParseTransform(str string) (Matrix2, error) {
	str = strings.TrimSpace(str)
	if str == "" || str == "none" {
		return Identity2(), nil
	}
	tl, err := transformParser.ParseString("", str)
	if err != nil {
		return Identity2(), fmt.Errorf("math32.ParseTransform: %q: %w", str, err)
	}
	m := Identity2()
	for _, it := range tl.Items {
		tm, err := it.matrix()
		if err != nil {
			return Identity2(), fmt.Errorf("math32.ParseTransform: %q: %w", str, err)
		}
		m.SetMul(tm)
	}
	return m, nil
}

func (it *transformItem) matrix() (Matrix2, error) {
	a := it.Args
	n := len(a)
	bad := func() (Matrix2, error) {
		return Identity2(), fmt.Errorf("%s: wrong number of arguments: %d", it.Name, n)
	}
	switch strings.ToLower(it.Name) {
	case "matrix":
		if n != 6 {
			return bad()
		}
		return Matrix2{a[0], a[1], a[2], a[3], a[4], a[5]}, nil
	case "translate":
		switch n {
		case 1:
			return Translate2D(a[0], 0), nil
		case 2:
			return Translate2D(a[0], a[1]), nil
		}
		return bad()
	case "scale":
		switch n {
		case 1:
			return Scale2D(a[0], a[0]), nil
		case 2:
			return Scale2D(a[0], a[1]), nil
		}
		return bad()
	case "rotate":
		switch n {
		case 1:
			return Rotate2D(DegToRad(a[0])), nil
		case 3:
			c := Vec2(a[1], a[2])
			return Translate2D(c.X, c.Y).Mul(Rotate2D(DegToRad(a[0]))).Mul(Translate2D(-c.X, -c.Y)), nil
		}
		return bad()
	case "skewx":
		if n != 1 {
			return bad()
		}
		return Skew2D(DegToRad(a[0]), 0), nil
	case "skewy":
		if n != 1 {
			return bad()
		}
		return Skew2D(0, DegToRad(a[0])), nil
	}
	return Identity2(), fmt.Errorf("unknown transform function %q", it.Name)
}
