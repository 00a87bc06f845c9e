// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main implements the proteinscan CLI for detecting protein sources
// in ingredient lists and evaluating the detector against a test corpus.
//
// Usage:
//
//	proteinscan init                       Create .proteinscan/ with catalog and corpus
//	proteinscan classify "Whey protein"    Detect protein sources in text
//	proteinscan evaluate                   Run the test corpus
//	proteinscan add --id X "ingredients"   Add or replace a corpus case
//	proteinscan status                     Show corpus curation status
//	proteinscan catalog validate|show      Check or print the keyword catalog
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/proteinscan/internal/errors"
	"github.com/kraklabs/proteinscan/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// GlobalFlags holds flags accepted before the command name.
type GlobalFlags struct {
	ConfigPath string
	JSON       bool
	NoColor    bool
	Quiet      bool
	Verbose    int
	Debug      bool
}

// streams carries the process I/O so commands can be tested in-process.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

const usage = `proteinscan - protein source detection for ingredient lists

Usage:
  proteinscan [global options] <command> [options]

Commands:
  init          Create .proteinscan/ with config, catalog and test corpus
  classify      Detect protein sources in ingredient text
  evaluate      Run the test corpus against the classifier
  add           Add or replace a test corpus case
  status        Show test corpus curation status
  catalog       Validate or print the keyword catalog (validate|show)
  completion    Generate shell completion script (bash|zsh|fish)

Global Options:
`

const usageFooter = `
Examples:
  proteinscan init
  proteinscan classify "Molkenproteinisolat, Weizen"
  proteinscan classify --ocr --explain --file label.txt
  proteinscan evaluate --workers 4 --metrics-addr :9100
  proteinscan --json status

Environment Variables:
  PROTEINSCAN_CATALOG            Keyword catalog YAML (overrides config)
  PROTEINSCAN_CORPUS             Test corpus JSON (overrides config)
  PROTEINSCAN_SOFT_LIMIT_BYTES   Maximum input size (default 4 MiB)

For detailed command help: proteinscan <command> --help
`

func main() {
	s := streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}
	globals, err := run(os.Args[1:], s)
	errors.FatalError(err, globals.JSON)
}

// run parses global flags and dispatches to the command.
func run(args []string, s streams) (GlobalFlags, error) {
	var g GlobalFlags
	fs := flag.NewFlagSet("proteinscan", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(s.err)
	fs.StringVar(&g.ConfigPath, "config", "", "Path to .proteinscan/config.yaml (default: nearest workspace)")
	fs.BoolVar(&g.JSON, "json", false, "Machine-readable JSON output")
	fs.BoolVar(&g.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&g.Quiet, "quiet", "q", false, "Suppress progress output")
	fs.CountVarP(&g.Verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	fs.BoolVar(&g.Debug, "debug", false, "Enable debug logging")
	showVersion := fs.Bool("version", false, "Show version and exit")
	fs.Usage = func() {
		fmt.Fprint(s.err, usage)
		fs.PrintDefaults()
		fmt.Fprint(s.err, usageFooter)
	}

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return g, nil
		}
		return g, errors.NewInputError("Invalid global option", err.Error(), "Run: proteinscan --help")
	}
	if g.JSON {
		g.Quiet = true
	}
	ui.InitColors(g.NoColor || os.Getenv("NO_COLOR") != "")
	slog.SetDefault(newLogger(s.err, g))

	if *showVersion {
		fmt.Fprintf(s.out, "proteinscan version %s\n", version)
		fmt.Fprintf(s.out, "commit: %s\n", commit)
		fmt.Fprintf(s.out, "built: %s\n", date)
		return g, nil
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return g, errors.NewInputError("No command given", "", "Run: proteinscan --help")
	}

	command, cmdArgs := rest[0], rest[1:]
	var err error
	switch command {
	case "init":
		err = runInit(cmdArgs, g, s)
	case "classify":
		err = runClassify(cmdArgs, g, s)
	case "evaluate":
		err = runEvaluate(cmdArgs, g, s)
	case "add":
		err = runAdd(cmdArgs, g, s)
	case "status":
		err = runStatus(cmdArgs, g, s)
	case "catalog":
		err = runCatalog(cmdArgs, g, s)
	case "completion":
		err = runCompletion(cmdArgs, s)
	default:
		fs.Usage()
		err = errors.NewInputError(
			fmt.Sprintf("Unknown command: %s", command),
			"",
			"Run: proteinscan --help",
		)
	}
	return g, err
}

// newLogger builds the stderr text logger. Warnings only by default; -v
// adds info, -vv or --debug adds debug.
func newLogger(w io.Writer, g GlobalFlags) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case g.Debug || g.Verbose >= 2:
		level = slog.LevelDebug
	case g.Verbose == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseFlags parses command flags, mapping --help to a nil error and
// anything else to an input error.
func parseFlags(fs *flag.FlagSet, args []string) (help bool, err error) {
	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, errors.NewInputError(
			fmt.Sprintf("Invalid option for '%s'", fs.Name()),
			err.Error(),
			fmt.Sprintf("Run: proteinscan %s --help", fs.Name()),
		)
	}
	return false, nil
}
