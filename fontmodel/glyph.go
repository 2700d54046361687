package fontmodel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Point is an anchor position in font design units.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", formatCoord(p.X), formatCoord(p.Y))
}

func formatCoord(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// BBox describes the bounding box of a glyph. The zero value is used for
// glyphs without contour data.
type BBox struct {
	XMin, YMin float64
	XMax, YMax float64
}

// IsEmpty reports whether this box has zero area.
func (bbox BBox) IsEmpty() bool {
	return bbox.XMax-bbox.XMin == 0 || bbox.YMax-bbox.YMin == 0
}

// Glyph is the record of a single glyph of a font.
type Glyph struct {
	Name    string           // unique glyph name
	Advance int              // advance width in font design units
	BBox    BBox             // bounding box, zero if the glyph has no outline
	Anchors map[string]Point // attachment points by anchor name
	IsMark  bool             // glyph attaches to a base, see ClassifyMarks
}

// NewGlyph creates a glyph record without anchors.
func NewGlyph(name string, advance float64, bbox BBox) *Glyph {
	return &Glyph{
		Name:    name,
		Advance: int(advance),
		BBox:    bbox,
		Anchors: make(map[string]Point),
	}
}

// addAnchor sets an anchor position and reports whether the anchor name has
// been new to this glyph.
func (g *Glyph) addAnchor(name string, p Point) bool {
	_, exists := g.Anchors[name]
	g.Anchors[name] = p
	return !exists
}

// Anchor returns the position of anchor name.
func (g *Glyph) Anchor(name string) (Point, bool) {
	p, ok := g.Anchors[name]
	return p, ok
}

// AnchorNames returns the names of the glyph's anchors, sorted.
func (g *Glyph) AnchorNames() []string {
	names := make([]string, 0, len(g.Anchors))
	for name := range g.Anchors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// decideIfMark sets IsMark if the glyph owns at least one mark anchor.
func (g *Glyph) decideIfMark() {
	for name := range g.Anchors {
		if strings.HasPrefix(name, MarkPrefix) {
			g.IsMark = true
			return
		}
	}
}

func (g *Glyph) String() string {
	kind := "base"
	if g.IsMark {
		kind = "mark"
	}
	return fmt.Sprintf("%s[%s adv=%d anchors=%d]", g.Name, kind, g.Advance, len(g.Anchors))
}
