package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/feax"
	"github.com/npillmayer/feax/classes"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'feax.cli'
func tracer() tracing.Trace {
	return tracing.Select("feax.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.feax.cli":  "Info",
		"trace.feax":      "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "UFO font source or OpenType font to load")
	classFile := flag.String("classes", "", "XML class declaration file")
	ligatures := flag.String("ligatures", "none", "Ligature classes [none|first|last|firstcomp|lastcomp]")
	omit := flag.String("omit", "", "Anchor names to ignore")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the feax inspector")
	//
	// set up REPL
	repl, err := readline.New("feax > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	mode, err := classes.ParseLigatureMode(*ligatures)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	opts := feax.Options{
		ClassFile:      *classFile,
		LigatureMode:   mode,
		OmittedAnchors: feax.ParseOmittedAnchors(*omit),
	}
	if err := intp.loadFont(*fontname, opts); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	model *feax.Model
	order []string // classes in output order, nil if they cannot be ordered
	repl  *readline.Instance
	glyph string // glyph selected last
}

func (intp *Intp) String() string {
	if intp == nil || intp.model == nil {
		return "()"
	}
	s := fmt.Sprintf("( glyphs=%d classes=%d )", intp.model.Font.Len(), intp.model.Classes.Len())
	if intp.glyph != "" {
		s += " -> " + intp.glyph
	}
	return s
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	INFO
	GLYPH
	CLASSES
	CLASS
	ANCHORS
	KERN
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"info":    INFO,
	"glyph":   GLYPH,
	"classes": CLASSES,
	"class":   CLASS,
	"anchors": ANCHORS,
	"anchor":  ANCHORS,
	"kern":    KERN,
}

var opNames = []string{
	"quit",
	"help",
	"info",
	"glyph",
	"classes",
	"class",
	"anchors",
	"kern",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
	}
}

// parseCommand splits a line into steps like "class:c_sc" or "kern:@K".
// Glyph and class names may contain ':', so only the first one separates.
func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		name, arg, _ := strings.Cut(step, ":")
		code, ok := opMap[strings.ToLower(name)]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code == QUIT {
			return &command, nil
		}
		command.op[i].arg = arg
		if arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	INFO:    infoOp,
	GLYPH:   glyphOp,
	CLASSES: classesOp,
	CLASS:   classOp,
	ANCHORS: anchorsOp,
	KERN:    kernOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string, opts feax.Options) error {
	if fontname == "" {
		return errors.New("no font given, use -font")
	}
	src, err := feax.OpenSource(fontname)
	if err != nil {
		return err
	}
	opts.OnSkip = func(class, token string) {
		tracer().Debugf("class %s: skipping %s, not in font", class, token)
	}
	if intp.model, err = feax.Analyze(src, opts); err != nil {
		return err
	}
	if intp.order, err = classes.Order(intp.model.Classes); err != nil {
		pterm.Error.Println(err)
	}
	tracer().Infof("loaded font %s", fontname)
	return nil
}

// ----------------------------------------------------------------------

var errNoArg = errors.New("command needs an argument")

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
