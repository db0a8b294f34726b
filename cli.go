package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"dunes/emu/log"
	"dunes/hw/input"
)

type mode byte

const (
	runMode      mode = iota // Run a ROM
	romInfosMode             // Show ROM infos
	configMode               // Show the configuration
	versionMode              // Show dunes version
)

type (
	CLI struct {
		Run      Run      `cmd:"" help:"Run ROM in emulator."`
		RomInfos RomInfos `cmd:"" help:"Show ROM infos." name:"rom-infos"`
		Config   Config   `cmd:"" help:"Show the configuration."`
		Version  Version  `cmd:"" help:"Show dunes version."`

		Log      logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		LogLevel string     `name:"log-level" help:"Most verbose log level." enum:"panic,fatal,error,warn,info,debug" default:"debug"`

		mode mode
	}

	Run struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"ROM to run." required:"true" type:"existingfile"`

		ConfigPath string   `name:"config" help:"${config_help}" type:"existingfile"`
		Frames     int64    `name:"frames" help:"Number of frames to run, 0 runs until interrupted. (overrides config)" default:"-1"`
		ForceNROM  bool     `name:"force-nrom" help:"Load the ROM as NROM, whatever its mapper number."`
		Press      []string `name:"press" help:"${press_help}" placeholder:"FRAME:BUTTONS[:FRAMES]"`
		PNGDir     string   `name:"png-dir" help:"Save screenshots into this directory." type:"existingdir"`
		PNGEvery   uint64   `name:"png-every" help:"Save a screenshot every N frames, 0 only saves the last frame."`
		WAV        string   `name:"wav" help:"Record audio into a wav file." type:"path"`
		Trace      *outfile `name:"trace" help:"Write CPU trace log." placeholder:"FILE|stdout|stderr"`
		CPUProfile string   `name:"cpuprofile" help:"${cpuprofile_help}" type:"path"`
		Stats      bool     `name:"stats" help:"Print execution statistics and the call stack on exit."`
	}

	RomInfos struct {
		RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`
		JSON    bool   `name:"json" help:"Print infos as JSON."`
	}

	Config struct {
		Default bool `name:"default" help:"Show the default configuration instead of the current one."`
		Save    bool `name:"save" help:"Write the configuration shown into the config directory."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"config_help":     "Config file to use instead of the one in the user config directory.",
	"cpuprofile_help": "Write CPU profile to file.",
	"press_help":      "Press buttons of the first paddle at a given frame, e.g 120:Start or 200:A+Right:30. Can be repeated.",
	"log_help":        "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("dunes"),
		kong.Description("Headless cycle-accurate NES emulator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "rom-infos </path/to/rom>":
		cfg.mode = romInfosMode
	case "config":
		cfg.mode = configMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}

	lvl, ok := logLevels[cfg.LogLevel]
	if !ok {
		fatalf("invalid log level %q", cfg.LogLevel)
	}
	log.SetLevel(lvl)
	return cfg
}

var logLevels = map[string]log.Level{
	"panic": log.PanicLevel,
	"fatal": log.FatalLevel,
	"error": log.ErrorLevel,
	"warn":  log.WarnLevel,
	"info":  log.InfoLevel,
	"debug": log.DebugLevel,
}

// printHelp adds the log modules and pad buttons to the help of the run
// command.
func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if !strings.HasPrefix(ctx.Command(), "run") {
		return nil
	}

	w := os.Stderr
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Log modules (--log takes a comma-separated list):")
	for _, name := range log.ModuleNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, "  all    every module")
	fmt.Fprintln(w, "  no     disable logging altogether")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Buttons (--press joins them with '+'):")
	var btns []string
	for b := range input.PadButtonCount {
		btns = append(btns, b.String())
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(btns, " "))
	return nil
}

type logModMask log.ModuleMask

// Decode implements kong.MapperValue. It enables debug logs for a
// comma-separated list of modules, or disables logging with "no".
func (logModMask) Decode(ctx *kong.DecodeContext) error {
	list := ctx.Scan.Pop().Value.(string)
	if list == "no" {
		log.Disable()
		return nil
	}

	mask, err := log.ParseModules(list)
	if err != nil {
		return err
	}
	log.EnableDebugModules(mask)
	return nil
}

// parseInputEvent parses a button press on the first paddle, written
// FRAME:BUTTONS[:FRAMES].
func parseInputEvent(s string) (input.Event, error) {
	var ev input.Event

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ev, fmt.Errorf("invalid button press %q, expected FRAME:BUTTONS[:FRAMES]", s)
	}

	frame, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return ev, fmt.Errorf("invalid button press %q: bad frame: %w", s, err)
	}
	if _, err := input.ParseButtons(parts[1]); err != nil {
		return ev, fmt.Errorf("invalid button press %q: %w", s, err)
	}

	ev.Frame = frame
	ev.Frames = 1
	ev.Buttons = parts[1]
	if len(parts) == 3 {
		ev.Frames, err = strconv.ParseUint(parts[2], 10, 64)
		if err != nil || ev.Frames == 0 {
			return ev, fmt.Errorf("invalid button press %q: bad duration", s)
		}
	}
	return ev, nil
}

// outfile is a file flag accepting stdout and stderr as special names.
type outfile struct {
	io.Writer
	name string
}

// Decode implements kong.MapperValue.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	f.name = ctx.Scan.Pop().Value.(string)
	switch f.name {
	case "stdout":
		f.Writer = os.Stdout
	case "stderr":
		f.Writer = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.Writer = fd
	}
	return nil
}

func (f *outfile) String() string { return f.name }

// Close closes the underlying file, the standard streams are left open.
func (f *outfile) Close() error {
	if fd, ok := f.Writer.(*os.File); ok && fd != os.Stdout && fd != os.Stderr {
		return fd.Close()
	}
	return nil
}

// checkf exits with an error message if err is not nil.
func checkf(err error, format string, args ...any) {
	if err != nil {
		fatalf("%s: %v", fmt.Sprintf(format, args...), err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "dunes: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
