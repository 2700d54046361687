package fea

import (
	"fmt"
	"strconv"
	"strings"
)

// Statement is a top-level element of a feature document.
type Statement interface {
	AsFea() string
}

// GlyphsValue is either a single glyph name or a glyph class.
type GlyphsValue interface {
	AsFea() string
	GlyphSet() []string
}

// Comment is a comment line. Text has to include the leading '#'.
type Comment struct {
	Text    string
	Pretext string // printed before the comment, e.g. a blank line
}

// NewComment creates a comment preceded by an empty line.
func NewComment(text string) *Comment {
	return &Comment{Text: "# " + text, Pretext: "\n"}
}

func (c *Comment) AsFea() string {
	return c.Pretext + c.Text
}

// GlyphName is a single glyph or class reference.
type GlyphName string

func (g GlyphName) AsFea() string {
	return string(g)
}

func (g GlyphName) GlyphSet() []string {
	return []string{string(g)}
}

// GlyphClass is an anonymous, ordered glyph class.
type GlyphClass struct {
	Glyphs []string
}

// NewGlyphClass creates a glyph class with the given members.
func NewGlyphClass(glyphs ...string) *GlyphClass {
	return &GlyphClass{Glyphs: append([]string(nil), glyphs...)}
}

// Append adds a glyph or class reference.
func (gc *GlyphClass) Append(g string) {
	gc.Glyphs = append(gc.Glyphs, g)
}

func (gc *GlyphClass) AsFea() string {
	return "[" + strings.Join(gc.Glyphs, " ") + "]"
}

func (gc *GlyphClass) GlyphSet() []string {
	return gc.Glyphs
}

// GlyphClassDefinition is a named glyph class: '@name = [a b];'.
type GlyphClassDefinition struct {
	Name  string
	Class *GlyphClass
}

func (gcd *GlyphClassDefinition) AsFea() string {
	return fmt.Sprintf("@%s = %s;", gcd.Name, gcd.Class.AsFea())
}

// Anchor is an anchor position in design units.
type Anchor struct {
	X, Y float64
}

func (a Anchor) AsFea() string {
	return "<anchor " + formatNumber(a.X) + " " + formatNumber(a.Y) + ">"
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// BaseClass is a named class of base glyphs with anchors.
type BaseClass struct {
	Name        string
	Definitions []*BaseClassDefinition
}

// AddDefinition registers a definition with this class.
func (bc *BaseClass) AddDefinition(def *BaseClassDefinition) {
	bc.Definitions = append(bc.Definitions, def)
}

// BaseClassDefinition: 'baseClass [a b] <anchor 250 500> @top;'.
type BaseClassDefinition struct {
	Class  *BaseClass
	Anchor Anchor
	Glyphs GlyphsValue
}

func (d *BaseClassDefinition) AsFea() string {
	return fmt.Sprintf("baseClass %s %s @%s;", d.Glyphs.AsFea(), d.Anchor.AsFea(), d.Class.Name)
}

// MarkClass is a named class of marks with anchors.
type MarkClass struct {
	Name        string
	Definitions []*MarkClassDefinition
}

// AddDefinition registers a definition with this class.
func (mc *MarkClass) AddDefinition(def *MarkClassDefinition) {
	mc.Definitions = append(mc.Definitions, def)
}

// MarkClassDefinition: 'markClass [acute grave] <anchor 0 500> @_top;'.
type MarkClassDefinition struct {
	Class  *MarkClass
	Anchor Anchor
	Glyphs GlyphsValue
}

func (d *MarkClassDefinition) AsFea() string {
	return fmt.Sprintf("markClass %s %s @%s;", d.Glyphs.AsFea(), d.Anchor.AsFea(), d.Class.Name)
}

// Raw is verbatim feature source.
type Raw struct {
	Text string
}

func (r *Raw) AsFea() string {
	return strings.TrimRight(r.Text, "\n")
}
