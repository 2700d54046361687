package fea

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// InfoPrefix prefixes font info variables in merged source, e.g. '$(info.unitsPerEm)'.
const InfoPrefix = "info."

// Environment holds the definitions available to merged feature source.
type Environment struct {
	Defines map[string]string
	Info    map[string]string // font info values, referenced with InfoPrefix
}

func (env Environment) lookup(name string) (string, bool) {
	if value, ok := env.Defines[name]; ok {
		return value, true
	}
	if key, ok := strings.CutPrefix(name, InfoPrefix); ok {
		value, found := env.Info[key]
		return value, found
	}
	return "", false
}

// Document is a feature document under construction.
type Document struct {
	Statements   []Statement
	env          Environment
	glyphClasses map[string]*GlyphClassDefinition
	baseClasses  map[string]*BaseClass
	markClasses  map[string]*MarkClass
}

// NewDocument creates an empty feature document.
func NewDocument(env Environment) *Document {
	return &Document{
		env:          env,
		glyphClasses: make(map[string]*GlyphClassDefinition),
		baseClasses:  make(map[string]*BaseClass),
		markClasses:  make(map[string]*MarkClass),
	}
}

// AddStatement appends a statement to the document.
func (doc *Document) AddStatement(s Statement) {
	doc.Statements = append(doc.Statements, s)
}

// DefineGlyphClass enters a named glyph class into the symbol table.
func (doc *Document) DefineGlyphClass(name string, def *GlyphClassDefinition) {
	doc.glyphClasses[name] = def
}

// GlyphClass looks up a named glyph class.
func (doc *Document) GlyphClass(name string) (*GlyphClassDefinition, bool) {
	def, ok := doc.glyphClasses[name]
	return def, ok
}

// SetBaseClass returns the base class called name, creating it if necessary.
func (doc *Document) SetBaseClass(name string) *BaseClass {
	bc, ok := doc.baseClasses[name]
	if !ok {
		bc = &BaseClass{Name: name}
		doc.baseClasses[name] = bc
	}
	return bc
}

// SetMarkClass returns the mark class called name, creating it if necessary.
func (doc *Document) SetMarkClass(name string) *MarkClass {
	mc, ok := doc.markClasses[name]
	if !ok {
		mc = &MarkClass{Name: name}
		doc.markClasses[name] = mc
	}
	return mc
}

// BaseClass looks up a base class.
func (doc *Document) BaseClass(name string) (*BaseClass, bool) {
	bc, ok := doc.baseClasses[name]
	return bc, ok
}

// MarkClass looks up a mark class.
func (doc *Document) MarkClass(name string) (*MarkClass, bool) {
	mc, ok := doc.markClasses[name]
	return mc, ok
}

var variable = regexp.MustCompile(`\$\(([A-Za-z_][A-Za-z0-9_.]*)\)|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Merge appends hand-written feature source to the document. Variables
// '$name' or '$(name)' are replaced by definitions of the environment;
// font info values are available as '$(info.key)'. Undefined variables are
// left untouched. A nil source is a no-op.
func (doc *Document) Merge(src io.Reader) error {
	if src == nil {
		return nil
	}
	text, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("cannot read feature source: %w", err)
	}
	substituted := variable.ReplaceAllStringFunc(string(text), func(v string) string {
		m := variable.FindStringSubmatch(v)
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if value, ok := doc.env.lookup(name); ok {
			return value
		}
		return v
	})
	if strings.TrimSpace(substituted) == "" {
		return nil
	}
	doc.AddStatement(&Raw{Text: substituted})
	tracer().Debugf("merged %d bytes of feature source", len(text))
	return nil
}

// AsFea serializes the document.
func (doc *Document) AsFea() string {
	var sb strings.Builder
	for _, s := range doc.Statements {
		sb.WriteString(s.AsFea())
		sb.WriteString("\n")
	}
	return sb.String()
}
