package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/feax"
	"github.com/npillmayer/feax/classes"
	"github.com/npillmayer/feax/fontmodel"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("feax-tools").
		SetVersion("v0.1.0").
		SetDescription("Derive OpenType feature source from a font's glyphs, anchors and groups.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("generate").
		SetDescription("Generate class and mark positioning statements and merge them with a hand-written feature file.").
		SetShortDescription("generate feature source").
		AddArgument("font", "UFO font source directory or OpenType font file", "").
		AddFlag("input,i", "hand-written feature file to merge", commando.String, "-").
		AddFlag("output,o", "output feature file (default stdout)", commando.String, "-").
		AddFlag("classes,c", "XML class declaration file", commando.String, "-").
		AddFlag("classprops,p", "derive classes from 'property' elements of the class file", commando.Bool, nil).
		AddFlag("ligatures,L", "ligature classes: none|first|last|firstcomp|lastcomp", commando.String, "none").
		AddFlag("define,D", "definitions for the feature file (e.g. script=latn,lang=dflt)", commando.String, "-").
		AddFlag("omit,a", "anchor names to ignore (comma/space separated)", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runGenerateCommand)

	commando.
		Register("classes").
		SetDescription("List the glyph classes of a font in output order.").
		SetShortDescription("list glyph classes").
		AddArgument("font", "UFO font source directory or OpenType font file", "").
		AddFlag("classes,c", "XML class declaration file", commando.String, "-").
		AddFlag("classprops,p", "derive classes from 'property' elements of the class file", commando.Bool, nil).
		AddFlag("ligatures,L", "ligature classes: none|first|last|firstcomp|lastcomp", commando.String, "none").
		AddFlag("members,m", "print class members", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runClassesCommand)

	commando.
		Register("anchors").
		SetDescription("List attachment points with their base and mark classes.").
		SetShortDescription("list attachment points").
		AddArgument("font", "UFO font source directory or OpenType font file", "").
		AddFlag("omit,a", "anchor names to ignore (comma/space separated)", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runAnchorsCommand)

	commando.Parse(nil)
}

// setupTracing routes all feax tracers to the Go log adapter.
func setupTracing(verbose bool) {
	level := "Error"
	if verbose {
		level = "Info"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range []string{"feax", "feax.font", "feax.classes", "feax.position", "feax.fea", "feax.ufo"} {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// analysisOptions collects the options shared by all subcommands.
func analysisOptions(flags map[string]commando.FlagValue) feax.Options {
	var opts feax.Options
	if v, ok := optFlagString(flags, "omit"); ok {
		opts.OmittedAnchors = feax.ParseOmittedAnchors(v)
	}
	if v, ok := optFlagString(flags, "ligatures"); ok {
		mode, err := classes.ParseLigatureMode(v)
		if err != nil {
			fatalf("%v", err)
		}
		opts.LigatureMode = mode
	}
	if v, ok := optFlagString(flags, "classes"); ok {
		opts.ClassFile = v
	}
	if _, ok := flags["classprops"]; ok {
		opts.IncludeClassProperties = mustFlagBool(flags["classprops"], "classprops")
	}
	return opts
}

func mustOpenSource(args map[string]commando.ArgValue) fontmodel.Source {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	src, err := feax.OpenSource(fontPath)
	if err != nil {
		fatalf("%v", err)
	}
	return src
}

func mustAnalyze(src fontmodel.Source, opts feax.Options) *feax.Model {
	m, err := feax.Analyze(src, opts)
	if err != nil {
		fatalf("%v", err)
	}
	return m
}

// optFlagString returns a string flag, with "-" and the empty string
// meaning "not set".
func optFlagString(flags map[string]commando.FlagValue, name string) (string, bool) {
	flag, ok := flags[name]
	if !ok {
		return "", false
	}
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return "", false
	}
	return s, true
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "feax-tools: "+format+"\n", args...)
	os.Exit(1)
}
