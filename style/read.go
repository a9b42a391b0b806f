// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/canvas/attr"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ReadStyleString reads the declarations of a style attribute, such
// as "fill:red;stroke-width:2", replacing the properties previously
// read from the style attribute. Declarations of untracked properties
// are kept in [Style.Unknown]. Invalid values are reset to defaults.
func (s *Style) ReadStyleString(str string) error {
	s.ClearSource(SourceStyleProperty)
	if strings.TrimSpace(str) == "" {
		return nil
	}
	decls, err := parseDeclarations(str)
	if err != nil {
		slog.Debug("style: invalid style attribute", "style", str, "err", err)
		return fmt.Errorf("style.ReadStyleString: %w", err)
	}
	s.ReadDeclarations(decls, SourceStyleProperty)
	return nil
}

// parseDeclarations parses a declaration list. The parser only ends
// the value of a declaration at ';' or '}', so the list is closed with
// braces to keep the last value.
func parseDeclarations(str string) ([]*css.Declaration, error) {
	return parser.ParseDeclarations("{" + str + "}")
}

// ReadDeclarations reads parsed CSS declarations from the given source.
func (s *Style) ReadDeclarations(decls []*css.Declaration, src Sources) {
	for _, decl := range decls {
		p := propertyOf(attr.Lookup(decl.Property))
		if p == nil {
			if src == SourceStyleProperty {
				v := decl.Value
				if decl.Important {
					v += " !important"
				}
				s.Unknown.Set(decl.Property, v)
			}
			continue
		}
		p.read(s, decl.Value, src, decl.Important)
	}
}

// Sheet is a parsed stylesheet: the rules of the style elements
// of a document.
type Sheet struct {
	Rules []*Rule
}

// Rule is one rule of a [Sheet] with a simple selector.
type Rule struct {

	// Selector is the selector: *, a tag name such as rect, a class
	// such as .red, an id such as #rect1, or tag.class.
	Selector string

	Declarations []*css.Declaration
}

// ParseSheet parses CSS text into a [Sheet]. At-rules are skipped.
func ParseSheet(text string) (*Sheet, error) {
	ss, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("style.ParseSheet: %w", err)
	}
	sh := &Sheet{}
	for _, r := range ss.Rules {
		if r.Kind == css.AtRule || len(r.Declarations) == 0 {
			continue
		}
		for _, sel := range r.Selectors {
			sh.Rules = append(sh.Rules, &Rule{Selector: strings.TrimSpace(sel), Declarations: r.Declarations})
		}
	}
	return sh, nil
}

// Append adds the rules of other to the sheet.
func (sh *Sheet) Append(other *Sheet) {
	if other != nil {
		sh.Rules = append(sh.Rules, other.Rules...)
	}
}

// Matches returns whether the rule applies to an element with the given
// local tag name (without the svg: prefix), id and class attribute.
func (r *Rule) Matches(tag, id, class string) bool {
	sel := r.Selector
	switch {
	case sel == "*":
		return true
	case strings.HasPrefix(sel, "#"):
		return id != "" && sel[1:] == id
	}
	stag, sclass, hasClass := strings.Cut(sel, ".")
	if stag != "" && stag != tag {
		return false
	}
	if !hasClass {
		return stag != ""
	}
	for _, c := range strings.Fields(class) {
		if c == sclass {
			return true
		}
	}
	return false
}

// Apply reads the declarations of the matching rules, in order.
func (sh *Sheet) Apply(s *Style, tag, id, class string) {
	if sh == nil {
		return
	}
	for _, r := range sh.Rules {
		if r.Matches(tag, id, class) {
			s.ReadDeclarations(r.Declarations, SourceStylesheet)
		}
	}
}
