// Package main is the entry point for the sheetfont command.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jwulff/sheetfont-go/internal/config"
	"github.com/jwulff/sheetfont-go/internal/font"
	"github.com/jwulff/sheetfont-go/internal/registry"
	"github.com/jwulff/sheetfont-go/internal/storage/sqlite"
	"github.com/spf13/pflag"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// command is one subcommand. It returns the process exit code.
type command func(env *env, args []string) int

var commands = map[string]command{
	"preview": previewCommand,
	"send":    sendCommand,
	"measure": measureCommand,
	"hittest": hittestCommand,
	"catalog": catalogCommand,
	"config":  configCommand,
	"devices": devicesCommand,
}

// env is what every subcommand shares: output streams and resolved config.
type env struct {
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	logger *slog.Logger
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		showUsage(stdout)
		return 1
	}

	name := args[0]
	switch name {
	case "help", "-h", "--help":
		showUsage(stdout)
		return 0
	case "version", "--version":
		fmt.Fprintf(stdout, "sheetfont version %s\n", version)
		return 0
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", name)
		showUsage(stderr)
		return 1
	}
	return cmd(&env{stdout: stdout, stderr: stderr}, args[1:])
}

// parse resolves config for a subcommand, binding extra flags first.
func (e *env) parse(name string, args []string, extra func(fs *pflag.FlagSet)) ([]string, bool) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	if extra != nil {
		extra(fs)
	}

	cfg, rest, err := config.Load(fs, args, os.Getenv)
	if err != nil {
		if err == pflag.ErrHelp {
			return nil, false
		}
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return nil, false
	}
	e.cfg = cfg

	config.SetVerbose(cfg.Debug)
	e.logger = config.NewLogger(e.stderr)
	font.SetLogger(e.logger)
	return rest, true
}

// selectFont builds the registry and selects the configured font.
func (e *env) selectFont() (*font.Font, *registry.Registry, bool) {
	reg, err := e.cfg.Registry()
	if err != nil {
		fmt.Fprintf(e.stderr, "Error loading fonts: %v\n", err)
		return nil, nil, false
	}

	family, size := e.cfg.Family, e.cfg.Size
	if e.cfg.Builtin && !e.familySet() {
		return reg.Default(), reg, true
	}
	f := reg.Get(family, size)
	if f == nil {
		fmt.Fprintf(e.stderr, "Error: no font %s %dpt. Available:\n", family, size)
		for _, f := range reg.Fonts() {
			fmt.Fprintf(e.stderr, "  %s\n", f)
		}
		return nil, nil, false
	}
	return f, reg, true
}

// familySet reports whether family or size differ from the defaults.
func (e *env) familySet() bool {
	d := config.Default()
	return !strings.EqualFold(e.cfg.Family, d.Family) || e.cfg.Size != d.Size
}

func (e *env) openStore() (*sqlite.Store, bool) {
	store, err := sqlite.NewFileStore(e.cfg.DB)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error opening database %s: %v\n", e.cfg.DB, err)
		return nil, false
	}
	return store, true
}

func showUsage(w io.Writer) {
	fmt.Fprintln(w, "sheetfont - bitmap glyph-sheet text for LED panels")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  sheetfont preview [text]          - Show ASCII preview of a composed frame")
	fmt.Fprintln(w, "  sheetfont send [IP] [text]        - Send text (or the last preview) to a Pixoo")
	fmt.Fprintln(w, "  sheetfont measure <text>          - Print the pixel width and bounds of text")
	fmt.Fprintln(w, "  sheetfont hittest <text> <x>      - Print the character index under x")
	fmt.Fprintln(w, "  sheetfont catalog                 - Store and list font metrics")
	fmt.Fprintln(w, "  sheetfont config get|set|delete   - Manage stored settings")
	fmt.Fprintln(w, "  sheetfont devices [forget <id>]   - List or forget Pixoo devices")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common flags:")
	fmt.Fprintln(w, "  -a, --assets DIR      glyph sheet directory")
	fmt.Fprintln(w, "  -m, --manifest FILE   YAML sheet manifest")
	fmt.Fprintln(w, "  -f, --family NAME     font family (default Arial)")
	fmt.Fprintln(w, "  -s, --size N          point size (default 14)")
	fmt.Fprintln(w, "      --builtin         use the built-in tiny font")
	fmt.Fprintln(w, "      --db FILE         SQLite database")
	fmt.Fprintln(w, "      --debug           debug logging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Text may contain \\n, \\t and color tags such as {red} or {cyan}.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintf(w, "  %s, %s, %s, %s,\n", config.EnvAssets, config.EnvManifest, config.EnvFamily, config.EnvSize)
	fmt.Fprintf(w, "  %s, %s, %s\n", config.EnvDB, config.EnvDebug, config.EnvPixooIP)
}
