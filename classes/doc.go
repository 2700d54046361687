/*
Package classes derives, stores and orders the glyph classes of a font.

Classes are accumulated in a Builder from several sources, in a fixed order:

▪︎ the glyph groups declared in the font (Builder.AddGroups),

▪︎ naming conventions of glyph names (DeriveFromNames),

▪︎ an external class declaration file (LoadClassFile).

A sealed Set is read-only. Order computes an emission order for a Set such that
every class is defined before another class references it. Class references
are tokens starting with "@".

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package classes

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'feax.classes'
func tracer() tracing.Trace {
	return tracing.Select("feax.classes")
}
