package main

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/npillmayer/feax/fontmodel"
	"github.com/npillmayer/feax/position"
	"github.com/pterm/pterm"
)

func infoOp(intp *Intp, op *Op) (error, bool) {
	f := intp.model.Font
	pterm.Printf("%d glyphs, %d anchor names, %d groups, %d kerning pairs\n",
		f.Len(), f.Anchors.Len(), len(f.Groups), f.Kerning.Len())
	keys := make([]string, 0, len(f.Info))
	for k := range f.Info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data := [][]string{{"Key", "Value"}}
	for _, k := range keys {
		data = append(data, []string{k, f.Info.String(k)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (error, bool) {
	name, ok := op.hasArg()
	if !ok {
		if name = intp.glyph; name == "" {
			return errNoArg, false
		}
	}
	g, ok := intp.model.Font.Glyph(name)
	if !ok {
		return fmt.Errorf("no glyph %q in font", name), false
	}
	intp.glyph = name
	pterm.Printf("%s bbox=%v\n", g, g.BBox)
	data := [][]string{{"Anchor", "Position"}}
	for _, a := range g.AnchorNames() {
		p, _ := g.Anchor(a)
		data = append(data, []string{a, p.String()})
	}
	if len(data) > 1 {
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
	var member []string
	for _, c := range intp.model.Classes.Sorted() {
		if slices.Contains(intp.model.Classes.Members(c), name) {
			member = append(member, c)
		}
	}
	pterm.Printf("member of: %s\n", strings.Join(member, " "))
	return nil, false
}

func classesOp(intp *Intp, op *Op) (error, bool) {
	names := intp.order
	if names == nil {
		names = intp.model.Classes.Sorted()
	}
	prefix, _ := op.hasArg()
	data := [][]string{{"Class", "Size", "References"}}
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		data = append(data, []string{
			name,
			fmt.Sprintf("%d", len(intp.model.Classes.Members(name))),
			strings.Join(intp.model.Classes.References(name), " "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func classOp(intp *Intp, op *Op) (error, bool) {
	name, ok := op.hasArg()
	if !ok {
		return errNoArg, false
	}
	name = strings.TrimPrefix(name, fontmodel.ClassMarker)
	if !intp.model.Classes.Has(name) {
		return fmt.Errorf("no class %q", name), false
	}
	pterm.Printf("@%s = [%s];\n", name, strings.Join(intp.model.Classes.Members(name), " "))
	return nil, false
}

func anchorsOp(intp *Intp, op *Op) (error, bool) {
	filter, _ := op.hasArg()
	for _, ap := range position.Group(intp.model.Font) {
		if filter != "" && ap.Name != filter {
			continue
		}
		pterm.Info.Printf("AP %s\n", ap.Name)
		for _, class := range ap.Classes {
			for _, def := range class.Definitions {
				pterm.Printf("  %-6s %-16s %-12v %s\n", class.Kind, class.Name, def.Anchor,
					strings.Join(def.Glyphs, " "))
			}
		}
	}
	return nil, false
}

func kernOp(intp *Intp, op *Op) (error, bool) {
	kerning := intp.model.Font.Kerning
	left, ok := op.hasArg()
	if !ok {
		pterm.Printf("%d pairs, left sides: %s\n", kerning.Len(), strings.Join(kerning.Lefts(), " "))
		return nil, false
	}
	rights := kerning.Rights(left)
	if len(rights) == 0 {
		return fmt.Errorf("no kerning for %q", left), false
	}
	data := [][]string{{"Left", "Right", "Value"}}
	for _, r := range rights {
		v, _ := kerning.Value(left, r)
		data = append(data, []string{left, r, fmt.Sprintf("%g", v)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
