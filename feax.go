/*
Package feax derives OpenType feature source from a font's glyph inventory,
attachment points and kerning, and merges it with hand-written feature rules.

Generation runs in fixed phases:

▪︎ load the font model from a font container and classify marks (package fontmodel),

▪︎ derive glyph classes from the font's groups, from glyph naming conventions
and from an optional class declaration file (package classes),

▪︎ order the classes such that every class is defined before it is referenced,

▪︎ group attachment points into base and mark class definitions (package position),

▪︎ emit everything into a feature document and merge the hand-written source
(package fea).

Either the complete feature source is produced or an error is returned; there
is no partial output.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package feax

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/feax/classes"
	"github.com/npillmayer/feax/fea"
	"github.com/npillmayer/feax/fontmodel"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'feax'
func tracer() tracing.Trace {
	return tracing.Select("feax")
}

// Options configures feature generation.
type Options struct {
	OmittedAnchors         []string             // anchor names to ignore
	LigatureMode           classes.LigatureMode // ligature class derivation
	ClassFile              string               // path of a class declaration file, optional
	IncludeClassProperties bool                 // use 'property' elements of the class file
	Defines                map[string]string    // variables for the hand-written source
	FeatureSource          io.Reader            // hand-written feature source, optional
	OnSkip                 classes.SkipReporter // called for class file glyphs missing from the font
}

// Model is a font model together with its sealed glyph classes.
type Model struct {
	Font    *fontmodel.Font
	Classes *classes.Set
}

// Analyze loads the font model from src and derives all glyph classes.
func Analyze(src fontmodel.Source, opts Options) (*Model, error) {
	snap, err := src.Snapshot()
	if err != nil {
		return nil, err
	}
	font, err := fontmodel.Load(snap, opts.OmittedAnchors)
	if err != nil {
		return nil, err
	}
	font.ClassifyMarks()
	b := classes.NewBuilder()
	b.AddGroups(font.Groups)
	classes.DeriveFromNames(b, font, opts.LigatureMode)
	if opts.ClassFile != "" {
		loadOpts := classes.LoadOptions{
			IncludeProperties: opts.IncludeClassProperties,
			OnSkip:            opts.OnSkip,
		}
		if err = classes.ReadClassFile(b, opts.ClassFile, font, loadOpts); err != nil {
			return nil, err
		}
	}
	return &Model{Font: font, Classes: b.Seal()}, nil
}

// Generate produces the complete feature source for a font.
func Generate(src fontmodel.Source, opts Options) (string, error) {
	m, err := Analyze(src, opts)
	if err != nil {
		return "", err
	}
	stmts, err := Build(m)
	if err != nil {
		return "", err
	}
	info := make(map[string]string, len(m.Font.Info))
	for key := range m.Font.Info {
		info[key] = m.Font.Info.String(key)
	}
	doc := fea.NewDocument(fea.Environment{Defines: opts.Defines, Info: info})
	Emit(stmts, doc)
	if err = doc.Merge(opts.FeatureSource); err != nil {
		return "", err
	}
	tracer().Infof("generated %d statements", len(doc.Statements))
	return doc.AsFea(), nil
}

// ParseOmittedAnchors splits a comma- or space-separated list of anchor names.
func ParseOmittedAnchors(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// ParseDefines converts 'var=val' items into a definitions map.
func ParseDefines(items []string) (map[string]string, error) {
	defines := make(map[string]string, len(items))
	for _, item := range items {
		name, value, ok := strings.Cut(item, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid definition %q, expected var=val", item)
		}
		defines[strings.TrimSpace(name)] = value
	}
	return defines, nil
}
