package classes

import (
	"fmt"
	"strings"

	"github.com/npillmayer/feax/fontmodel"
)

// LigatureMode selects how ligature glyph names are split into components
// for class derivation.
type LigatureMode int

const (
	// LigNone disables ligature classes.
	LigNone LigatureMode = iota
	// LigFirst uses the first component as class name, for ligatures whose
	// last component carries no suffix.
	LigFirst
	// LigLast uses the last component as class name, for ligatures whose
	// last component carries no suffix.
	LigLast
	// LigFirstComp is like LigFirst, but suffixes belong to the component
	// rather than to the whole ligature.
	LigFirstComp
	// LigLastComp is like LigLast, but suffixes belong to the component
	// rather than to the whole ligature.
	LigLastComp
)

var ligModeNames = [...]string{"none", "first", "last", "firstcomp", "lastcomp"}

func (m LigatureMode) String() string {
	if m < 0 || int(m) >= len(ligModeNames) {
		return "unknown"
	}
	return ligModeNames[m]
}

// ParseLigatureMode converts a mode name into a LigatureMode. The empty
// string means LigNone.
func ParseLigatureMode(s string) (LigatureMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LigNone, nil
	}
	for i, name := range ligModeNames {
		if s == name {
			return LigatureMode(i), nil
		}
	}
	return LigNone, fmt.Errorf("unknown ligature mode %q", s)
}

func (m LigatureMode) componentAware() bool {
	return m == LigFirstComp || m == LigLastComp
}

func (m LigatureMode) fromLast() bool {
	return m == LigLast || m == LigLastComp
}

// Prefixes of classes derived from glyph names.
const (
	SuffixPrefix      = "c_"
	NoSuffixPrefix    = "cno_"
	LigaturePrefix    = "clig_"
	NoLigaturePrefix  = "cligno_"
	ligatureSeparator = "_"
	suffixSeparator   = "."
)

// DeriveFromNames derives classes from glyph naming conventions and files
// every glyph into one of the GDEF mark/base classes. It has to run after
// the font's marks have been classified.
//
// For a glyph 'a.sc' with base glyph 'a' present, 'a.sc' is added to class
// 'c_sc' and 'a' to class 'cno_sc'. Multiple suffixes are peeled from the
// most specific one. Suffix peeling is skipped for ligature names if mode
// is component-aware. Ligature names ('f_i') produce classes 'clig_<comp>'
// and 'cligno_<comp>', if both the component and the remaining ligature
// exist as glyphs.
func DeriveFromNames(b *Builder, font *fontmodel.Font, mode LigatureMode) {
	for g := range font.Glyphs() {
		name := g.Name
		isLigature := strings.Contains(name, ligatureSeparator)
		if !mode.componentAware() || !isLigature {
			peelSuffixes(b, font, name)
		}
		if mode != LigNone && isLigature {
			splitLigature(b, font, name, mode)
		}
		if g.IsMark {
			b.Add(GDEFMarks, name)
		} else {
			b.Add(GDEFBases, name)
		}
	}
	tracer().Debugf("derived classes from %d glyph names, ligature mode %s", font.Len(), mode)
}

func peelSuffixes(b *Builder, font *fontmodel.Font, name string) {
	base := name
	pos := strings.LastIndex(base, suffixSeparator)
	for pos > 0 {
		variant, ext := base, base[pos+1:]
		base = base[:pos]
		if font.HasGlyph(base) && font.HasGlyph(variant) {
			if b.Add(SuffixPrefix+ext, variant) > 0 {
				b.Add(NoSuffixPrefix+ext, base)
			}
		}
		pos = strings.LastIndex(base, suffixSeparator)
	}
}

func splitLigature(b *Builder, font *fontmodel.Font, name string, mode LigatureMode) {
	comps := strings.Split(name, ligatureSeparator)
	last := len(comps) - 1
	if !mode.componentAware() && strings.Contains(comps[last], suffixSeparator) {
		return
	}
	var comp string
	if mode.fromLast() {
		comp, comps = comps[last], comps[:last]
	} else {
		comp, comps = comps[0], comps[1:]
	}
	rest := strings.Join(comps, ligatureSeparator)
	if !font.HasGlyph(comp) || !font.HasGlyph(rest) {
		return
	}
	cname := strings.ReplaceAll(comp, suffixSeparator, "_")
	if b.Add(LigaturePrefix+cname, name) > 0 {
		b.Add(NoLigaturePrefix+cname, rest)
	}
}
