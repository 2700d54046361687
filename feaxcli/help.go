package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	switch strings.ToLower(topic) {
	case "class", "classes":
		pterm.Info.Println("Classes")
		pterm.Println(`
	classes[:prefix]   list classes in output order, optionally filtered by prefix
	class:name         print the definition of a class

	Classes come from the font's groups, from glyph names ('c_sc' holds 'a.sc'
	for a glyph 'a', 'cno_sc' holds 'a') and from a class declaration file.
	A class is always listed after every class it references.
	`)
	case "anchor", "anchors":
		pterm.Info.Println("Attachment points")
		pterm.Println(`
	anchors[:name]     list base and mark classes per attachment point

	Anchors starting with '_' attach marks. For a base anchor 'top', marks
	carrying it form class 'top_MarkBase'.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	info               font info and counts
	glyph[:name]       glyph metrics, anchors and class membership
	classes[:prefix]   glyph classes
	class:name         members of a class
	anchors[:name]     attachment point classes
	kern[:left]        kerning pairs
	help[:topic]       help on 'classes' or 'anchors'
	quit               leave

	Steps may be chained, separated by spaces: 'glyph:a class:c_sc'.
	`)
	}
}
