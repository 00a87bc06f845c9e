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

package main

import (
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/proteinscan/internal/bootstrap"
	"github.com/kraklabs/proteinscan/internal/errors"
	"github.com/kraklabs/proteinscan/internal/output"
	"github.com/kraklabs/proteinscan/internal/ui"
)

// InitResult is the --json output of 'init'.
type InitResult struct {
	Dir     string   `json:"dir"`
	Written []string `json:"written"`
	Skipped []string `json:"skipped"`
}

// runInit executes the 'init' command, creating .proteinscan/ in the
// target directory (default: current directory). Existing files are kept
// unless --force is given.
func runInit(args []string, g GlobalFlags, s streams) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(s.err)
	force := fs.Bool("force", false, "Overwrite existing config, catalog and corpus")
	dir := fs.String("dir", "", "Directory to initialise (default: current directory)")

	fs.Usage = func() {
		fmt.Fprintf(s.err, `Usage: proteinscan init [options]

Creates .proteinscan/ with:
  config.yaml               catalog and corpus paths, worker count
  catalog.yaml              the built-in keyword catalog, ready to edit
  protein_test_cases.json   a starter test corpus

Options:
`)
		fs.PrintDefaults()
	}

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	root := *dir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.NewIOError("Cannot get current directory", err.Error(), "Pass --dir", err)
		}
		root = cwd
	}

	ws, err := bootstrap.InitWorkspace(root, *force, slog.Default())
	if err != nil {
		return err
	}

	if g.JSON {
		return output.JSONTo(s.out, InitResult{
			Dir:     ws.Dir,
			Written: nonNil(ws.Written),
			Skipped: nonNil(ws.Skipped),
		})
	}

	for _, p := range ws.Written {
		ui.Successf(s.out, "Wrote %s", p)
	}
	for _, p := range ws.Skipped {
		ui.Warningf(s.out, "Kept existing %s (use --force to overwrite)", p)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Next steps:")
	fmt.Fprintln(s.out, "  proteinscan evaluate          Run the starter test corpus")
	fmt.Fprintln(s.out, "  proteinscan classify \"...\"    Classify an ingredient list")
	fmt.Fprintln(s.out, "  proteinscan status            Show corpus curation status")
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
