package classes

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// GlyphSet tells if a glyph exists in a font.
type GlyphSet interface {
	HasGlyph(name string) bool
}

// SkipReporter is called for every class file token which is skipped
// because the glyph does not exist in the font.
type SkipReporter func(class, token string)

// LoadOptions controls LoadClassFile.
type LoadOptions struct {
	IncludeProperties bool         // derive classes from 'property' elements
	OnSkip            SkipReporter // optional
}

var fixedIndex = regexp.MustCompile(`\[(\d+)\]$`)

// ReadClassFile opens a class declaration file and loads it, see LoadClassFile.
func ReadClassFile(b *Builder, path string, glyphs GlyphSet, opts LoadOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = LoadClassFile(b, f, glyphs, opts); err != nil {
		return fmt.Errorf("class file %s: %w", path, err)
	}
	return nil
}

// LoadClassFile reads an XML class declaration document and adds its
// classes to b.
//
// Each 'class' element has a name, an optional space-separated list of
// suffixes 'exts' and a body of space-separated glyph names. For every suffix
// and finally the empty suffix, glyph+suffix is added to the class if it
// exists in the font. Class references ('@name') are accepted with the empty
// suffix only. A name ending in '[n]' inserts the members at position n of the
// class instead of appending them.
//
// With opts.IncludeProperties set, 'property' elements with attributes 'name'
// and 'value' are handled in the same way, adding to class '<name>_<value>'.
//
// Glyphs missing from the font are skipped silently.
func LoadClassFile(b *Builder, r io.Reader, glyphs GlyphSet, opts LoadOptions) error {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return fmt.Errorf("malformed class file: %w", err)
	}
	for _, c := range xmlquery.Find(doc, "//class") {
		className := c.SelectAttr("name")
		if className == "" {
			return fmt.Errorf("malformed class file: class element without name")
		}
		at := -1
		if m := fixedIndex.FindStringSubmatchIndex(className); m != nil {
			if at, err = strconv.Atoi(className[m[2]:m[3]]); err != nil {
				return fmt.Errorf("malformed class file: class %q: %w", className, err)
			}
			className = className[:m[0]]
		}
		b.Ensure(className)
		tokens := acceptedTokens(c, className, glyphs, true, opts.OnSkip)
		if at >= 0 {
			b.Insert(className, at, tokens...)
		} else {
			b.Add(className, tokens...)
		}
		tracer().Debugf("class file: %s += %d glyphs", className, len(tokens))
	}
	if !opts.IncludeProperties {
		return nil
	}
	for _, p := range xmlquery.Find(doc, "//property") {
		name, value := p.SelectAttr("name"), p.SelectAttr("value")
		if name == "" {
			return fmt.Errorf("malformed class file: property element without name")
		}
		className := name + "_" + value
		tokens := acceptedTokens(p, className, glyphs, false, opts.OnSkip)
		if len(tokens) > 0 {
			b.Add(className, tokens...)
		}
	}
	return nil
}

// acceptedTokens returns the tokens of an element which exist in the font,
// suffixed variants first.
func acceptedTokens(elem *xmlquery.Node, class string, glyphs GlyphSet, refs bool,
	onSkip SkipReporter) []string {
	//
	exts := append(strings.Fields(elem.SelectAttr("exts")), "")
	body := strings.Fields(elem.InnerText())
	tokens := make([]string, 0, len(exts)*len(body))
	for _, ext := range exts {
		for _, g := range body {
			token := g + ext
			if glyphs.HasGlyph(token) || (refs && ext == "" && IsReference(g)) {
				tokens = append(tokens, token)
			} else if onSkip != nil {
				onSkip(class, token)
			}
		}
	}
	return tokens
}
