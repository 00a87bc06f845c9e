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

package corpus

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kraklabs/proteinscan/pkg/catalog"
	"github.com/kraklabs/proteinscan/pkg/classifier"
)

// Explainer is the part of *classifier.Classifier the evaluator needs.
type Explainer interface {
	Explain(text string) classifier.Report
}

// Result is the outcome of one case.
//
// Missing lists expected labels the classifier did not report and
// WronglyDetected lists forbidden labels it did report. Unexpected holds
// reported labels the case does not mention at all; it is informational.
type Result struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Detected        classifier.LabelSet `json:"detected"`
	Missing         []catalog.Label     `json:"missing,omitempty"`
	WronglyDetected []catalog.Label     `json:"wrongly_detected,omitempty"`
	Unexpected      []catalog.Label     `json:"unexpected,omitempty"`
	Markers         []catalog.MarkerHit `json:"markers,omitempty"`
	Passed          bool                `json:"passed"`
	Pending         bool                `json:"pending"`
}

// Failed reports whether a curated case did not pass.
func (r Result) Failed() bool { return !r.Passed && !r.Pending }

// Evaluate classifies tc.Ingredients and compares the labels with the
// expectations: the output must be a superset of ExpectedDetected and
// disjoint from ExpectedNotDetected. Pending cases never fail.
func Evaluate(e Explainer, tc Case) Result {
	report := e.Explain(tc.Ingredients)
	got := report.Labels()

	res := Result{
		ID:       tc.ID,
		Name:     tc.Name,
		Detected: got,
		Markers:  report.Markers,
		Pending:  tc.Pending(),
	}

	mentioned := make(map[catalog.Label]bool, len(tc.ExpectedDetected)+len(tc.ExpectedNotDetected))
	for _, l := range tc.ExpectedDetected {
		mentioned[l] = true
		if l != NeedsEvaluation && !got.Has(l) {
			res.Missing = append(res.Missing, l)
		}
	}
	for _, l := range tc.ExpectedNotDetected {
		mentioned[l] = true
		if got.Has(l) {
			res.WronglyDetected = append(res.WronglyDetected, l)
		}
	}
	for _, l := range got.Sorted() {
		if !mentioned[l] {
			res.Unexpected = append(res.Unexpected, l)
		}
	}

	res.Passed = !res.Pending && len(res.Missing) == 0 && len(res.WronglyDetected) == 0
	return res
}

// Summary aggregates a corpus evaluation.
type Summary struct {
	Total    int           `json:"total"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Pending  int           `json:"pending"`
	Duration time.Duration `json:"duration_ns"`
	Results  []Result      `json:"results"`
}

// OK reports whether no curated case failed.
func (s Summary) OK() bool { return s.Failed == 0 }

// FailedIDs returns the ids of failing cases in corpus order.
func (s Summary) FailedIDs() []string {
	var out []string
	for _, r := range s.Results {
		if r.Failed() {
			out = append(out, r.ID)
		}
	}
	return out
}

// Option configures EvaluateAll.
type Option func(*evalOptions)

type evalOptions struct {
	progress func(Result)
}

// WithProgress registers a callback invoked with every evaluated case, in
// completion order. It may be called from several goroutines at once.
func WithProgress(fn func(Result)) Option {
	return func(o *evalOptions) { o.progress = fn }
}

// EvaluateAll evaluates every case of f with up to workers goroutines
// (runtime.NumCPU() when workers < 1). Results keep corpus order.
func EvaluateAll(ctx context.Context, e Explainer, f *File, workers int, opts ...Option) (Summary, error) {
	var o evalOptions
	for _, opt := range opts {
		opt(&o)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	results := make([]Result, len(f.Cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tc := range f.Cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(e, tc)
			recordResult(results[i])
			if o.progress != nil {
				o.progress(results[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	s := Summary{Total: len(results), Results: results, Duration: time.Since(start)}
	for _, r := range results {
		switch {
		case r.Pending:
			s.Pending++
		case r.Passed:
			s.Passed++
		default:
			s.Failed++
		}
	}
	recordRun(s.Duration)
	return s, nil
}
