/*
Package fontmodel holds the in-memory model of a font as far as feature
generation is concerned: glyphs with their metrics and attachment points
(anchors), an index from anchor names to the glyphs declaring them, the font's
pre-existing glyph groups, font info and a repacked kerning table.

The model is built once per run from a Snapshot, which is handed over by a
font container reader (see packages ufo and internal/fontload). After loading,
ClassifyMarks has to be called before any class derivation which depends on
the mark/base status of glyphs.

	font, err := fontmodel.Load(snapshot, omittedAnchors)
	...
	font.ClassifyMarks()

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontmodel

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'feax.font'
func tracer() tracing.Trace {
	return tracing.Select("feax.font")
}

// MarkPrefix starts every anchor name a mark glyph attaches with.
const MarkPrefix = "_"
