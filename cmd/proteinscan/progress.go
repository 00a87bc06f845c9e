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
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/kraklabs/proteinscan/pkg/corpus"
)

// evalProgress draws the 'evaluate' bar. The description counts the cases
// that failed so far, so a regression shows up before the summary does.
// All methods are no-ops on a nil *evalProgress.
type evalProgress struct {
	bar     *progressbar.ProgressBar
	noColor bool
	failed  atomic.Int32
}

// newEvalProgress returns nil with --json or -q, or when w is not a
// terminal.
func newEvalProgress(w io.Writer, g GlobalFlags, cases int) *evalProgress {
	if g.Quiet || g.JSON || !isTerminal(w) {
		return nil
	}
	return startEvalProgress(w, cases, g.NoColor)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func startEvalProgress(w io.Writer, cases int, noColor bool) *evalProgress {
	p := &evalProgress{noColor: noColor}
	p.bar = progressbar.NewOptions(cases,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(p.describe(0)),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionFullWidth(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(!noColor),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	return p
}

// observe records one evaluated case. EvaluateAll calls it from its
// workers.
func (p *evalProgress) observe(r corpus.Result) {
	if p == nil {
		return
	}
	if r.Failed() {
		p.bar.Describe(p.describe(int(p.failed.Add(1))))
	}
	_ = p.bar.Add(1)
}

// options hooks observe into EvaluateAll.
func (p *evalProgress) options() []corpus.Option {
	if p == nil {
		return nil
	}
	return []corpus.Option{corpus.WithProgress(p.observe)}
}

func (p *evalProgress) finish() {
	if p == nil {
		return
	}
	_ = p.bar.Finish()
}

func (p *evalProgress) describe(failed int) string {
	switch {
	case failed == 0:
		return "Evaluating"
	case p.noColor:
		return fmt.Sprintf("Evaluating (%d failing)", failed)
	default:
		return fmt.Sprintf("Evaluating [red](%d failing)[reset]", failed)
	}
}
