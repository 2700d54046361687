/*
Package fea builds feature documents in the OpenType feature file syntax
(FEA), as understood by feature compilers like fontTools' feaLib, extended
by 'baseClass' statements.

A Document is a sequence of statements plus symbol tables for glyph classes,
base classes and mark classes. Hand-written feature source is merged in as
opaque text, with variables substituted from an Environment.

This package does not parse or validate feature rules.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fea

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'feax.fea'
func tracer() tracing.Trace {
	return tracing.Select("feax.fea")
}
