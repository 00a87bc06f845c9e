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
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/proteinscan/internal/errors"
	"github.com/kraklabs/proteinscan/internal/output"
	"github.com/kraklabs/proteinscan/internal/ui"
	"github.com/kraklabs/proteinscan/pkg/catalog"
	"github.com/kraklabs/proteinscan/pkg/corpus"
)

// EvaluateResult is the --json output of 'evaluate'.
type EvaluateResult struct {
	Corpus        string          `json:"corpus"`
	Catalog       string          `json:"catalog"`
	UnknownLabels []catalog.Label `json:"unknown_labels,omitempty"`
	corpus.Summary
}

// runEvaluate executes the 'evaluate' command.
//
// Every case is classified and checked: the detected labels must include
// expected_detected and exclude expected_not_detected. Pending cases are
// reported but never fail the run. Exits with ExitEvaluation when any case
// fails.
func runEvaluate(args []string, g GlobalFlags, s streams) error {
	fs := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	fs.SetOutput(s.err)
	corpusPath := fs.String("corpus", "", "Test corpus JSON (default: config)")
	catalogPath := fs.String("catalog", "", "Keyword catalog YAML (default: config or built-in)")
	workers := fs.Int("workers", 0, "Parallel workers (0: config or one per CPU)")
	metricsAddr := fs.String("metrics-addr", "", "HTTP listen address for Prometheus metrics (empty to disable)")
	verbose := fs.Bool("verbose", false, "List passing and pending cases too")

	fs.Usage = func() {
		fmt.Fprintf(s.err, `Usage: proteinscan evaluate [options]

Runs every case of the test corpus through the classifier and reports
missing and wrongly detected labels. Exit code 3 means at least one
curated case failed.

Options:
`)
		fs.PrintDefaults()
	}

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	if *workers < 0 {
		return errors.NewInputError("Invalid --workers", strconv.Itoa(*workers), "Use 0 for one worker per CPU")
	}

	st, err := LoadSettings(g.ConfigPath)
	if err != nil {
		return err
	}
	override(&st.CatalogPath, *catalogPath)
	override(&st.CorpusPath, *corpusPath)
	if *workers > 0 {
		st.Workers = *workers
	}
	if err := st.requireCorpus(); err != nil {
		return err
	}

	f, err := corpus.LoadFile(st.CorpusPath)
	if err != nil {
		return err
	}
	c, err := st.newClassifier()
	if err != nil {
		return err
	}
	logger := slog.Default()

	unknown := f.UnknownLabels(c.Catalog())
	if len(unknown) > 0 {
		logger.Warn("evaluate.labels.unknown", "labels", fmt.Sprint(unknown))
		if !g.JSON {
			ui.Warningf(s.err, "Corpus uses labels the catalog does not define: %s", ui.LabelList(unknown))
		}
	}

	if *metricsAddr != "" {
		srv := startMetricsServer(*metricsAddr, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("shutdown.signal", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	progress := newEvalProgress(s.err, g, len(f.Cases))

	logger.Info("evaluate.start", "corpus", st.CorpusPath, "cases", len(f.Cases), "workers", c.Workers())
	sum, err := corpus.EvaluateAll(ctx, c, f, c.Workers(), progress.options()...)
	progress.finish()
	if err != nil {
		if stderrors.Is(err, context.Canceled) {
			return errors.NewInputError("Evaluation interrupted", "", "")
		}
		return errors.NewInternalError("Evaluation failed", err.Error(), "This is a bug; please report it", err)
	}

	for _, r := range sum.Results {
		if r.Failed() {
			logger.Info("evaluate.case.failed",
				"id", r.ID,
				"missing", fmt.Sprint(r.Missing),
				"wrongly_detected", fmt.Sprint(r.WronglyDetected),
			)
		}
	}
	logger.Info("evaluate.done",
		"passed", sum.Passed,
		"failed", sum.Failed,
		"pending", sum.Pending,
		"duration", sum.Duration,
	)

	if g.JSON {
		if err := output.JSONTo(s.out, EvaluateResult{
			Corpus:        st.CorpusPath,
			Catalog:       catalogName(st.CatalogPath),
			UnknownLabels: unknown,
			Summary:       sum,
		}); err != nil {
			return err
		}
	} else {
		printEvaluation(s.out, sum, *verbose)
	}

	if !sum.OK() {
		return errors.NewEvaluationError(
			fmt.Sprintf("%d of %d cases failed", sum.Failed, sum.Total-sum.Pending),
			"Failing cases: "+strings.Join(sum.FailedIDs(), ", "),
			"Run 'proteinscan classify --explain' on a failing case's ingredients",
		)
	}
	return nil
}

func startMetricsServer(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info("metrics.http.start", "addr", addr, "path", "/metrics")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics.http.error", "err", err)
		}
	}()
	return srv
}

func catalogName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func printEvaluation(w io.Writer, sum corpus.Summary, verbose bool) {
	for _, r := range sum.Results {
		if !verbose && !r.Failed() {
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n", ui.Outcome(r.Passed, r.Pending), r.ID, ui.DimText(r.Name))
		if len(r.Missing) > 0 {
			fmt.Fprintf(w, "    missing:          %s\n", ui.LabelList(r.Missing))
		}
		if len(r.WronglyDetected) > 0 {
			fmt.Fprintf(w, "    wrongly detected: %s\n", ui.LabelList(r.WronglyDetected))
		}
		if verbose || r.Pending {
			fmt.Fprintf(w, "    detected:         %s\n", ui.LabelList(r.Detected.Sorted()))
		}
		for _, h := range r.Markers {
			fmt.Fprintf(w, "    %s\n", ui.DimText(fmt.Sprintf("%s marker %q", h.Kind, h.Phrase)))
		}
	}
	if verbose || sum.Failed > 0 {
		fmt.Fprintln(w)
	}

	ui.Header(w, "Evaluation Summary")
	fmt.Fprintf(w, "%s %s\n", ui.Label("Cases:   "), ui.CountText(sum.Total))
	fmt.Fprintf(w, "%s %s\n", ui.Label("Passed:  "), ui.Green.Sprint(sum.Passed))
	fmt.Fprintf(w, "%s %s\n", ui.Label("Failed:  "), ui.Red.Sprint(sum.Failed))
	fmt.Fprintf(w, "%s %s\n", ui.Label("Pending: "), ui.Yellow.Sprint(sum.Pending))
	fmt.Fprintf(w, "%s %s\n", ui.Label("Time:    "), FormatDuration(sum.Duration))

	if sum.OK() {
		fmt.Fprintln(w)
		ui.Successf(w, "All curated cases pass")
	}
}

// FormatDuration formats an evaluation run time for display.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	case d < time.Minute:
		return strconv.FormatFloat(d.Seconds(), 'f', 1, 64) + "s"
	default:
		return strconv.Itoa(int(d.Minutes())) + "m " + strconv.Itoa(int(d.Seconds())%60) + "s"
	}
}
