/*
Package position groups the glyphs of a font's attachment points into mark
and base class definitions.

Glyphs sharing the same anchor coordinates for an attachment point share a
single definition. This keeps the number of emitted definitions small for
fonts where many glyphs have identical attachment geometry, which is typical
for marks.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package position

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/feax/fontmodel"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'feax.position'
func tracer() tracing.Trace {
	return tracing.Select("feax.position")
}

// MarkBaseSuffix is appended to the base class name for marks serving as
// bases of an attachment point (stacking marks).
const MarkBaseSuffix = "_MarkBase"

// ClassKind tells if a class collects marks or bases.
type ClassKind int

const (
	BaseClass ClassKind = iota // glyphs which marks attach to
	MarkClass                  // marks attaching at an anchor
)

func (k ClassKind) String() string {
	if k == MarkClass {
		return "markClass"
	}
	return "baseClass"
}

// Definition assigns an anchor position to one or more glyphs.
type Definition struct {
	Glyphs []string
	Anchor fontmodel.Point
}

// Class is a base or mark class of an attachment point.
type Class struct {
	Name        string
	Kind        ClassKind
	Definitions []Definition // in order of first appearance of a position
}

// AttachmentPoint holds the classes for an anchor name.
type AttachmentPoint struct {
	Name    string
	Classes []Class
}

// IsMarkAnchor reports whether anchor name is the anchor a mark attaches
// with.
func IsMarkAnchor(name string) bool {
	return strings.HasPrefix(name, fontmodel.MarkPrefix)
}

// Group computes the attachment point classes of a font, in order of first
// appearance of the anchor names. Marks have to be classified beforehand.
//
// For a mark anchor ('_top') there is a single mark class named after the
// anchor. For a base anchor ('top') there is a base class for all non-mark
// glyphs and a base class 'top_MarkBase' for marks carrying the anchor. A
// class exists only if it has at least one glyph.
func Group(font *fontmodel.Font) []AttachmentPoint {
	aps := make([]AttachmentPoint, 0, font.Anchors.Len())
	for _, name := range font.Anchors.Names() {
		glyphs := font.Anchors.Glyphs(name)
		ap := AttachmentPoint{Name: name}
		if IsMarkAnchor(name) {
			ap.Classes = appendClass(ap.Classes, name, MarkClass, name, glyphs)
		} else {
			var bases, marks []*fontmodel.Glyph
			for _, g := range glyphs {
				if g.IsMark {
					marks = append(marks, g)
				} else {
					bases = append(bases, g)
				}
			}
			ap.Classes = appendClass(ap.Classes, name, BaseClass, name, bases)
			ap.Classes = appendClass(ap.Classes, name+MarkBaseSuffix, BaseClass, name, marks)
		}
		aps = append(aps, ap)
	}
	tracer().Debugf("grouped %d attachment points", len(aps))
	return aps
}

func appendClass(classes []Class, className string, kind ClassKind, anchor string,
	glyphs []*fontmodel.Glyph) []Class {
	//
	if len(glyphs) == 0 {
		return classes
	}
	return append(classes, Class{
		Name:        className,
		Kind:        kind,
		Definitions: groupByPosition(anchor, glyphs),
	})
}

// groupByPosition collects glyphs with identical anchor coordinates,
// keeping positions in order of first appearance.
func groupByPosition(anchor string, glyphs []*fontmodel.Glyph) []Definition {
	positions := linkedhashmap.New()
	for _, g := range glyphs {
		p, _ := g.Anchor(anchor)
		var names []string
		if v, found := positions.Get(p); found {
			names = v.([]string)
		}
		positions.Put(p, append(names, g.Name))
	}
	defs := make([]Definition, 0, positions.Size())
	it := positions.Iterator()
	for it.Next() {
		defs = append(defs, Definition{
			Anchor: it.Key().(fontmodel.Point),
			Glyphs: it.Value().([]string),
		})
	}
	tracer().Debugf("anchor %s: %d glyphs at %d positions", anchor, len(glyphs), len(defs))
	return defs
}
