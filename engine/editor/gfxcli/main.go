package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/derekparker/trie"
	"github.com/knadh/koanf"
	"github.com/npillmayer/gfxedit/core"
	"github.com/npillmayer/gfxedit/core/config"
	"github.com/npillmayer/gfxedit/core/font"
	"github.com/npillmayer/gfxedit/core/locate/resources"
	"github.com/npillmayer/gfxedit/engine/editor"
	"github.com/npillmayer/gfxedit/engine/preview"
	"github.com/npillmayer/gfxedit/engine/tool"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

// tracer traces with key 'gfxedit.editor'
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.editor")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontfile := flag.String("font", "", "GFX font file to load")
	noconf := flag.Bool("noconfig", false, "Do not read configuration files")
	flag.Parse()

	// set up configuration and logging
	tag := "gfxedit"
	if *noconf {
		tag = ""
	}
	conf := koanfadapter.New(koanf.New("."), tag, []string{".nt"})
	conf.InitDefaults()
	conf.Set("trace.gfxedit.editor", *tlevel)
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	settings, err := config.FromConfiguration(conf)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	pterm.Info.Println("Welcome to the GFX font editor") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "gfx > ",
		AutoComplete: completer(),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, ed: editor.New(settings), settings: settings}
	if *fontfile != "" {
		if err := intp.load(*fontfile); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                              // go into interactive mode
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
	repl     *readline.Instance
	ed       *editor.Editor
	settings config.Settings
	file     string // path of the font file last loaded or saved
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(core.Report(err))
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.Report(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line: an op code followed by integer or
// string arguments.
type Command struct {
	code int
	name string
	args []string
}

const (
	QUIT int = iota
	HELP
	LOAD
	SAVE
	GLYPHS
	SHOW
	ADD
	REMOVE
	CLEAR
	ACTIVE
	TOOL
	DOWN
	MOVE
	UP
	KEY
	UNDO
	REDO
	BEARING
	CANVAS
	BASELINE
	ADVANCE
	SEED
	PREVIEW
)

var commands = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"load":     LOAD,
	"save":     SAVE,
	"glyphs":   GLYPHS,
	"show":     SHOW,
	"add":      ADD,
	"remove":   REMOVE,
	"clear":    CLEAR,
	"active":   ACTIVE,
	"tool":     TOOL,
	"down":     DOWN,
	"move":     MOVE,
	"up":       UP,
	"key":      KEY,
	"undo":     UNDO,
	"redo":     REDO,
	"bearing":  BEARING,
	"canvas":   CANVAS,
	"baseline": BASELINE,
	"advance":  ADVANCE,
	"seed":     SEED,
	"preview":  PREVIEW,
}

// commandTrie lets users abbreviate commands to any unique prefix.
var commandTrie = func() *trie.Trie {
	t := trie.New()
	for name, code := range commands {
		t.Add(name, code)
	}
	return t
}()

func completer() *readline.PrefixCompleter {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, name := range names {
		items[i] = readline.PcItem(name)
	}
	return readline.NewPrefixCompleter(items...)
}

// minimum number of arguments per op code
var arity = map[int]int{
	LOAD: 1, ADD: 1, REMOVE: 1, CLEAR: 1, ACTIVE: 1, TOOL: 1,
	DOWN: 2, MOVE: 2, KEY: 1, BEARING: 3, CANVAS: 2, BASELINE: 1,
	ADVANCE: 1, SEED: 1, PREVIEW: 1,
}

func parseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, core.Error(core.EINVALID, "empty command")
	}
	name := strings.ToLower(fields[0])
	code, ok := commands[name]
	if !ok {
		switch matches := commandTrie.PrefixSearch(name); len(matches) {
		case 0:
			return &Command{code: HELP, name: name}, nil
		case 1:
			name = matches[0]
			code = commands[name]
		default:
			sort.Strings(matches)
			return nil, core.Error(core.EINVALID, "ambiguous command %q: %s", name, strings.Join(matches, ", "))
		}
	}
	cmd := &Command{code: code, name: name, args: fields[1:]}
	if len(cmd.args) < arity[code] {
		return nil, core.Error(core.EINVALID, "%s needs %d argument(s)", name, arity[code])
	}
	tracer().Debugf("parse command = %v", cmd)
	return cmd, nil
}

// parseCode accepts a character code as decimal, as 0x-hex or as a single
// quoted character, e.g. 'A'.
func parseCode(arg string) (int, error) {
	if r := []rune(arg); len(r) == 3 && r[0] == '\'' && r[2] == '\'' {
		return int(r[1]), nil
	}
	n, err := strconv.ParseInt(arg, 0, 32)
	if err != nil {
		return 0, core.Error(core.EINVALID, "not a character code: %q", arg)
	}
	return int(n), nil
}

func parseInts(args []string) ([]int, error) {
	n := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, core.Error(core.EINVALID, "not a number: %q", a)
		}
		n[i] = v
	}
	return n, nil
}

func parseKey(arg string) (tool.Key, error) {
	for _, k := range []tool.Key{tool.Escape, tool.Delete, tool.Copy, tool.Cut, tool.Paste} {
		if strings.EqualFold(k.String(), arg) {
			return k, nil
		}
	}
	return 0, core.Error(core.EINVALID, "unknown key: %q", arg)
}

func (intp *Intp) execute(cmd *Command) (error, bool) {
	ed := intp.ed
	switch cmd.code {
	case QUIT:
		return nil, true
	case HELP:
		topic := cmd.name
		if len(cmd.args) > 0 {
			topic = cmd.args[0]
		}
		help(topic)
	case LOAD:
		return intp.load(cmd.args[0]), false
	case SAVE:
		return intp.save(cmd.args), false
	case GLYPHS:
		intp.listGlyphs()
	case SHOW:
		return intp.show(cmd.args), false
	case ADD, REMOVE, CLEAR, ACTIVE:
		code, err := parseCode(cmd.args[0])
		if err != nil {
			return err, false
		}
		return intp.glyphOp(cmd.code, code), false
	case TOOL:
		kind, err := tool.ParseKind(cmd.args[0])
		if err != nil {
			return err, false
		}
		ed.UseTool(kind)
	case DOWN, MOVE:
		n, err := parseInts(cmd.args[:2])
		if err != nil {
			return err, false
		}
		if cmd.code == DOWN {
			ed.PointerDown(image.Pt(n[0], n[1]))
		} else {
			ed.PointerMove(image.Pt(n[0], n[1]))
		}
	case UP:
		ed.PointerUp()
		return intp.show(nil), false
	case KEY:
		k, err := parseKey(cmd.args[0])
		if err != nil {
			return err, false
		}
		ed.Key(k)
		return intp.show(nil), false
	case UNDO, REDO:
		var ok bool
		if cmd.code == UNDO {
			ok = ed.Undo()
		} else {
			ok = ed.Redo()
		}
		if !ok {
			pterm.Info.Printf("nothing to %s\n", cmd.name)
			return nil, false
		}
		return intp.show(nil), false
	case BEARING:
		code, err := parseCode(cmd.args[0])
		if err != nil {
			return err, false
		}
		n, err := parseInts(cmd.args[1:3])
		if err != nil {
			return err, false
		}
		return ed.SetBearing(code, n[0], n[1]), false
	case CANVAS, BASELINE, ADVANCE:
		return intp.layout(cmd), false
	case SEED:
		return intp.seed(cmd.args), false
	case PREVIEW:
		return intp.preview(cmd.args), false
	}
	return nil, false
}

func (intp *Intp) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot open font file %s", path)
	}
	defer f.Close()
	if err = intp.ed.LoadFrom(f); err != nil {
		return err
	}
	intp.file = path
	pterm.Info.Printf("font %q loaded, %d glyphs\n", intp.ed.Font().Name, intp.ed.Font().Len())
	return nil
}

func (intp *Intp) save(args []string) error {
	path := intp.file
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return core.Error(core.EINVALID, "save needs a file name")
	}
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create font file %s", path)
	}
	defer f.Close()
	if err = intp.ed.SaveTo(f); err != nil {
		return err
	}
	intp.file = path
	pterm.Info.Printf("font saved to %s\n", path)
	return nil
}

func (intp *Intp) listGlyphs() {
	active, _ := intp.ed.Active()
	for _, g := range intp.ed.Font().Glyphs() {
		mark := " "
		if g == active {
			mark = "*"
		}
		b := g.Bounds()
		pterm.Printf("%s %#04x %-30s %3d pixels, bounds %v\n", mark, g.Code,
			runenames.Name(rune(g.Code)), len(g.Pixels()), b)
	}
}

func (intp *Intp) show(args []string) error {
	var code int
	if len(args) > 0 {
		c, err := parseCode(args[0])
		if err != nil {
			return err
		}
		code = c
	} else if g, ok := intp.ed.Active(); ok {
		code = g.Code
	} else {
		return core.Error(core.EMISSING, "no active glyph")
	}
	rows, err := intp.ed.Picture(code)
	if err != nil {
		return err
	}
	pterm.Println(strings.Join(rows, "\n"))
	return nil
}

func (intp *Intp) glyphOp(op int, code int) error {
	ed := intp.ed
	switch op {
	case ADD:
		ed.AddGlyph(code, nil, font.Bearing{Left: 1, Right: 1})
		return ed.SetActive(code)
	case REMOVE:
		if !ed.RemoveGlyph(code) {
			return core.Error(core.EMISSING, "no glyph for code %#x", code)
		}
	case CLEAR:
		return ed.ClearGlyph(code)
	case ACTIVE:
		return ed.SetActive(code)
	}
	return nil
}

func (intp *Intp) layout(cmd *Command) error {
	n, err := parseInts(cmd.args)
	if err != nil {
		return err
	}
	switch cmd.code {
	case CANVAS:
		return intp.ed.ResizeCanvas(n[0], n[1])
	case BASELINE:
		intp.ed.SetBaseline(n[0])
	case ADVANCE:
		return intp.ed.SetLineAdvance(n[0])
	}
	return nil
}

func (intp *Intp) seed(args []string) error {
	code, err := parseCode(args[0])
	if err != nil {
		return err
	}
	name, size := intp.settings.SeedFont, intp.settings.SeedSize
	if len(args) > 1 {
		name = args[1]
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	tc, err := resources.ResolveTypeCase(name, size).Await(ctx)
	if err != nil {
		if tc == nil {
			return err
		}
		pterm.Warning.Println(err.Error())
	}
	if _, err = intp.ed.SeedGlyph(code, tc, intp.settings.SeedThreshold); err != nil {
		return err
	}
	if err = intp.ed.SetActive(code); err != nil {
		return err
	}
	return intp.show(nil)
}

// preview sets a sample text. Underscores stand for blanks, as the
// command line is split at spaces.
func (intp *Intp) preview(args []string) error {
	text := strings.ReplaceAll(args[0], "_", " ")
	line := preview.SetString(intp.ed.Font(), intp.ed.Canvas(), text)
	if len(args) < 2 {
		pterm.Println(strings.Join(line.Rows(), "\n"))
		return nil
	}
	f, err := os.Create(args[1])
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create preview file %s", args[1])
	}
	defer f.Close()
	return line.WritePNG(f, 4)
}

func help(topic string) {
	switch topic {
	case "load", "save":
		pterm.Info.Println("load <file> / save [<file>]")
		pterm.Println("Read or write a font as GFX source text.")
	case "down", "move", "up", "key", "tool":
		pterm.Info.Println("tool draw|select, down <x> <y>, move <x> <y>, up, key <k>")
		pterm.Println("Simulate pointer gestures on the canvas of the active glyph.")
		pterm.Println("Keys are escape, delete, copy, cut and paste.")
	case "seed":
		pterm.Info.Println("seed <code> [<font>]")
		pterm.Println("Render a character of a scalable font into a glyph.")
	case "preview":
		pterm.Info.Println("preview <text> [<file.png>]")
		pterm.Println("Set a sample text with the font, '_' for blanks.")
	default:
		pterm.Info.Println("Commands:")
		pterm.Println("  load, save, glyphs, show [<code>]")
		pterm.Println("  add|remove|clear|active <code>, bearing <code> <left> <right>")
		pterm.Println("  tool, down, move, up, key, undo, redo")
		pterm.Println("  canvas <w> <h>, baseline <row>, advance <n>, seed, preview")
		pterm.Println("  help <command>, quit")
		pterm.Println("Codes may be given as 65, 0x41 or 'A'.")
	}
}
