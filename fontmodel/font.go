package fontmodel

import (
	"fmt"
	"iter"
)

// AnchorIndex maps anchor names to the glyphs declaring them. Anchor names
// are kept in order of first appearance, glyphs in font iteration order.
type AnchorIndex struct {
	names  []string
	glyphs map[string][]*Glyph
}

func newAnchorIndex() *AnchorIndex {
	return &AnchorIndex{glyphs: make(map[string][]*Glyph)}
}

func (ax *AnchorIndex) add(name string, g *Glyph) {
	if _, ok := ax.glyphs[name]; !ok {
		ax.names = append(ax.names, name)
	}
	ax.glyphs[name] = append(ax.glyphs[name], g)
}

// Names returns all anchor names in order of first appearance.
func (ax *AnchorIndex) Names() []string {
	names := make([]string, len(ax.names))
	copy(names, ax.names)
	return names
}

// Glyphs returns the glyphs declaring anchor name.
func (ax *AnchorIndex) Glyphs(name string) []*Glyph {
	return ax.glyphs[name]
}

// Len returns the number of distinct anchor names.
func (ax *AnchorIndex) Len() int {
	return len(ax.names)
}

// Font is the feature-relevant model of a font.
type Font struct {
	glyphs  map[string]*Glyph
	order   []string
	Anchors *AnchorIndex // anchor name → glyphs
	Groups  []Group      // glyph groups of the font, in font order
	Kerning Kerning      // repacked kerning table
	Info    FontInfo     // font metadata
}

// Load builds a font model from a snapshot. Glyphs listed in snap.Skip are
// left out, as are anchors named in omitted and anchors without geometry.
// Kerning is repacked with the font's groups as known class names.
func Load(snap *Snapshot, omitted []string) (*Font, error) {
	if snap == nil {
		return nil, fmt.Errorf("fontmodel: no font snapshot")
	}
	skip := toSet(snap.Skip)
	omit := toSet(omitted)
	f := &Font{
		glyphs:  make(map[string]*Glyph, len(snap.Glyphs)),
		order:   make([]string, 0, len(snap.Glyphs)),
		Anchors: newAnchorIndex(),
		Info:    FontInfo(snap.Info),
	}
	for _, gd := range snap.Glyphs {
		if skip[gd.Name] {
			tracer().Debugf("skipping glyph %s", gd.Name)
			continue
		}
		if gd.Name == "" {
			return nil, fmt.Errorf("fontmodel: glyph without name")
		}
		if _, dup := f.glyphs[gd.Name]; dup {
			return nil, fmt.Errorf("fontmodel: duplicate glyph name %q", gd.Name)
		}
		g := NewGlyph(gd.Name, gd.Advance, gd.BBox)
		f.glyphs[g.Name] = g
		f.order = append(f.order, g.Name)
		for _, a := range gd.Anchors {
			if a.Name == "" || a.NoGeometry || omit[a.Name] {
				continue
			}
			if g.addAnchor(a.Name, Point{X: a.X, Y: a.Y}) {
				f.Anchors.add(a.Name, g)
			}
		}
	}
	known := make(map[string]bool, len(snap.Groups))
	for _, grp := range snap.Groups {
		f.Groups = append(f.Groups, Group{Name: grp.Name, Members: append([]string(nil), grp.Members...)})
		known[grp.Name] = true
	}
	f.Kerning = RepackKerning(snap.Kerning, known)
	tracer().Infof("loaded %d glyphs, %d anchor names, %d groups", len(f.order), f.Anchors.Len(), len(f.Groups))
	return f, nil
}

// ClassifyMarks sets IsMark for every glyph owning an anchor whose name
// starts with MarkPrefix.
func (f *Font) ClassifyMarks() {
	marks := 0
	for _, name := range f.order {
		g := f.glyphs[name]
		g.decideIfMark()
		if g.IsMark {
			marks++
		}
	}
	tracer().Debugf("classified %d of %d glyphs as marks", marks, len(f.order))
}

// Glyph returns the glyph record for name.
func (f *Font) Glyph(name string) (*Glyph, bool) {
	g, ok := f.glyphs[name]
	return g, ok
}

// HasGlyph reports whether the font contains a glyph called name.
func (f *Font) HasGlyph(name string) bool {
	_, ok := f.glyphs[name]
	return ok
}

// Len returns the number of glyphs.
func (f *Font) Len() int {
	return len(f.order)
}

// GlyphNames returns all glyph names in font order.
func (f *Font) GlyphNames() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

// Glyphs iterates over all glyphs in font order.
func (f *Font) Glyphs() iter.Seq[*Glyph] {
	return func(yield func(*Glyph) bool) {
		for _, name := range f.order {
			if !yield(f.glyphs[name]) {
				return
			}
		}
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
