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
	"io"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/proteinscan/internal/output"
	"github.com/kraklabs/proteinscan/internal/ui"
	"github.com/kraklabs/proteinscan/pkg/corpus"
)

// StatusResult is the --json output of 'status'.
type StatusResult struct {
	Corpus      string   `json:"corpus"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version,omitempty"`
	PendingIDs  []string `json:"pending_ids,omitempty"`
	corpus.Stats
}

// runStatus executes the 'status' command, summarising how much of the
// test corpus is curated and where the cases came from.
func runStatus(args []string, g GlobalFlags, s streams) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(s.err)
	corpusPath := fs.String("corpus", "", "Test corpus JSON (default: config)")

	fs.Usage = func() {
		fmt.Fprintf(s.err, `Usage: proteinscan status [options]

Shows test corpus counts by source and the cases awaiting evaluation.

Options:
`)
		fs.PrintDefaults()
	}

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	st, err := LoadSettings(g.ConfigPath)
	if err != nil {
		return err
	}
	override(&st.CorpusPath, *corpusPath)
	if err := st.requireCorpus(); err != nil {
		return err
	}

	f, err := corpus.LoadFile(st.CorpusPath)
	if err != nil {
		return err
	}

	res := StatusResult{
		Corpus:      st.CorpusPath,
		Description: f.Description,
		Version:     f.Version,
		Stats:       corpus.Status(f),
	}
	for _, c := range f.Cases {
		if c.Pending() {
			res.PendingIDs = append(res.PendingIDs, c.ID)
		}
	}

	if g.JSON {
		return output.JSONTo(s.out, res)
	}
	printStatus(s.out, res)
	return nil
}

func printStatus(w io.Writer, r StatusResult) {
	ui.Header(w, "Test Corpus Status")
	fmt.Fprintf(w, "%s %s\n", ui.Label("Corpus:"), ui.DimText(r.Corpus))
	if r.Version != "" {
		fmt.Fprintf(w, "%s %s\n", ui.Label("Version:"), r.Version)
	}
	fmt.Fprintln(w)

	ui.SubHeader(w, "Cases:")
	fmt.Fprintf(w, "  Total:          %s\n", ui.CountText(r.Total))
	fmt.Fprintf(w, "  Manual:         %s\n", ui.CountText(r.Manual))
	fmt.Fprintf(w, "  OpenFoodFacts:  %s\n", ui.CountText(r.OpenFoodFacts))
	fmt.Fprintf(w, "  Training:       %s\n", ui.CountText(r.Training))
	if r.Other > 0 {
		fmt.Fprintf(w, "  Other:          %s\n", ui.CountText(r.Other))
	}
	fmt.Fprintln(w)

	if r.AwaitingEvaluation == 0 {
		ui.Successf(w, "Every case is curated")
		return
	}
	ui.Warningf(w, "%d case(s) awaiting evaluation", r.AwaitingEvaluation)
	for _, id := range r.PendingIDs {
		fmt.Fprintf(w, "  %s\n", ui.DimText(id))
	}
}
