package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/feax/classes"
	"github.com/npillmayer/feax/position"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runClassesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	m := mustAnalyze(mustOpenSource(args), analysisOptions(flags))
	order, err := classes.Order(m.Classes)
	if err != nil {
		fatalf("%v", err)
	}
	showMembers := mustFlagBool(flags["members"], "members")
	data := [][]string{{"Class", "Size", "References"}}
	if showMembers {
		data[0] = append(data[0], "Members")
	}
	for _, name := range order {
		row := []string{
			name,
			fmt.Sprintf("%d", len(m.Classes.Members(name))),
			strings.Join(m.Classes.References(name), " "),
		}
		if showMembers {
			row = append(row, strings.Join(m.Classes.Members(name), " "))
		}
		data = append(data, row)
	}
	pterm.Info.Printf("%d glyphs, %d classes\n", m.Font.Len(), len(order))
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func runAnchorsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	m := mustAnalyze(mustOpenSource(args), analysisOptions(flags))
	aps := position.Group(m.Font)
	data := [][]string{{"Anchor", "Class", "Kind", "Positions", "Glyphs"}}
	for _, ap := range aps {
		for _, class := range ap.Classes {
			n := 0
			for _, def := range class.Definitions {
				n += len(def.Glyphs)
			}
			data = append(data, []string{
				ap.Name,
				class.Name,
				class.Kind.String(),
				fmt.Sprintf("%d", len(class.Definitions)),
				fmt.Sprintf("%d", n),
			})
		}
	}
	pterm.Info.Printf("%d attachment points\n", len(aps))
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
