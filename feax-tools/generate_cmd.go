package main

import (
	"os"
	"strings"

	"github.com/npillmayer/feax"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runGenerateCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	verbose := mustFlagBool(flags["verbose"], "verbose")
	setupTracing(verbose)
	src := mustOpenSource(args)
	opts := analysisOptions(flags)
	if verbose {
		opts.OnSkip = func(class, token string) {
			pterm.Warning.Printf("class %s: no glyph %s in font\n", class, token)
		}
	}
	if raw, ok := optFlagString(flags, "define"); ok {
		defines, err := feax.ParseDefines(splitCSVSpace(raw))
		if err != nil {
			fatalf("%v", err)
		}
		opts.Defines = defines
	}
	if input, ok := optFlagString(flags, "input"); ok {
		f, err := os.Open(input)
		if err != nil {
			fatalf("cannot read feature file: %v", err)
		}
		defer f.Close()
		opts.FeatureSource = f
	}
	out, err := feax.Generate(src, opts)
	if err != nil {
		fatalf("%v", err)
	}
	output, ok := optFlagString(flags, "output")
	if !ok {
		_, _ = os.Stdout.WriteString(out)
		return
	}
	if err = os.WriteFile(output, []byte(out), 0o644); err != nil {
		fatalf("cannot write feature file: %v", err)
	}
	if verbose {
		pterm.Info.Printf("wrote %d lines to %s\n", strings.Count(out, "\n"), output)
	}
}
