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
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/proteinscan/internal/contract"
	"github.com/kraklabs/proteinscan/internal/errors"
	"github.com/kraklabs/proteinscan/internal/output"
	"github.com/kraklabs/proteinscan/internal/ui"
	"github.com/kraklabs/proteinscan/pkg/catalog"
	"github.com/kraklabs/proteinscan/pkg/classifier"
	"github.com/kraklabs/proteinscan/pkg/ocrtext"
)

// ocrLowQuality is the score below which OCR input triggers a warning.
const ocrLowQuality = 0.5

// ClassifyResult is the --json output of 'classify'.
type ClassifyResult struct {
	Text   string              `json:"text"`
	Labels classifier.LabelSet `json:"labels"`
	Score  catalog.Score       `json:"score"`
	OCR    *OCRResult          `json:"ocr,omitempty"`
	Report *classifier.Report  `json:"report,omitempty"`
}

// OCRResult describes the OCR clean-up applied before classification.
type OCRResult struct {
	Corrections []ocrtext.Correction `json:"corrections,omitempty"`
	Quality     ocrtext.Quality      `json:"quality"`
}

// LineResult is one line of 'classify --lines' output.
type LineResult struct {
	Line   int                 `json:"line"`
	Text   string              `json:"text"`
	Labels classifier.LabelSet `json:"labels"`
}

// runClassify executes the 'classify' command.
//
// Text comes from the positional arguments, --file, or stdin, in that
// order. With --lines every non-empty line is classified on its own, in
// parallel.
func runClassify(args []string, g GlobalFlags, s streams) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(s.err)
	catalogPath := fs.String("catalog", "", "Keyword catalog YAML (default: config or built-in)")
	file := fs.StringP("file", "f", "", "Read ingredient text from file ('-' for stdin)")
	ocr := fs.Bool("ocr", false, "Clean up OCR errors before classifying")
	explain := fs.Bool("explain", false, "Show accepted and rejected keyword occurrences")
	lines := fs.Bool("lines", false, "Classify each input line separately")
	noSection := fs.Bool("no-section", false, "Classify the whole text, not only the part after 'Ingredients:'")

	fs.Usage = func() {
		fmt.Fprintf(s.err, `Usage: proteinscan classify [options] [text...]

Detects protein sources in ingredient text. Without text arguments the
text is read from --file or stdin.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(s.err, `
Examples:
  proteinscan classify "Molkenproteinisolat, Weizen"
  proteinscan classify --explain "Whey protein isolate, peanuts"
  proteinscan classify --ocr --file scan.txt
  cat products.txt | proteinscan --json classify --lines
`)
	}

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	st, err := LoadSettings(g.ConfigPath)
	if err != nil {
		return err
	}
	override(&st.CatalogPath, *catalogPath)
	if *noSection {
		st.ExtractSection = false
	}

	text, err := readInput(fs.Args(), *file, s.in)
	if err != nil {
		return err
	}

	c, err := st.newClassifier()
	if err != nil {
		return err
	}

	if *lines {
		return classifyLines(c, text, *ocr, g, s)
	}

	res := ClassifyResult{}
	if *ocr {
		pre := ocrtext.Preprocess(text)
		q := ocrtext.AssessQuality(pre.Processed)
		if q.Score < ocrLowQuality {
			slog.Warn("ocr.quality.low", "score", q.Score, "issues", strings.Join(q.Issues, "; "))
		}
		res.OCR = &OCRResult{Corrections: pre.Corrections, Quality: q}
		text = pre.Processed
	}
	res.Text = text

	rep := c.Explain(text)
	if *explain {
		res.Report = &rep
	}
	res.Labels = rep.Labels()
	res.Score = c.Catalog().Score(rep.Ordered())

	if g.JSON {
		return output.JSONTo(s.out, res)
	}
	printClassify(s.out, res)
	return nil
}

func classifyLines(c *classifier.Classifier, text string, ocr bool, g GlobalFlags, s streams) error {
	var inputs []string
	var numbers []int
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if ocr {
			line = ocrtext.Preprocess(line).Processed
		}
		inputs = append(inputs, line)
		numbers = append(numbers, i+1)
	}

	sets, err := c.ClassifyBatch(context.Background(), inputs)
	if err != nil {
		return errors.NewInternalError("Batch classification failed", err.Error(), "This is a bug; please report it", err)
	}

	results := make([]LineResult, len(inputs))
	for i := range inputs {
		results[i] = LineResult{Line: numbers[i], Text: inputs[i], Labels: sets[i]}
	}

	if g.JSON {
		return output.JSONLines(s.out, results)
	}
	for _, r := range results {
		fmt.Fprintf(s.out, "%4d  %s  %s\n", r.Line, ui.LabelList(r.Labels.Sorted()), ui.DimText(r.Text))
	}
	return nil
}

// readInput returns the text to classify from args, file or stdin.
func readInput(args []string, file string, stdin io.Reader) (string, error) {
	var text string
	switch {
	case len(args) > 0:
		text = strings.Join(args, " ")
		if res := contract.ValidateText(text); !res.OK {
			return "", errors.NewInputError("Input too large", res.Message, "Pass long text with --file")
		}
	case file != "" && file != "-":
		f, err := os.Open(file)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return "", errors.NewNotFoundError("Input file not found", file, "Check the --file path")
			}
			return "", errors.NewIOError("Cannot open input file", file, "Check the file permissions", err)
		}
		defer func() { _ = f.Close() }()
		if text, err = contract.ReadText(f); err != nil {
			return "", err
		}
	default:
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return "", noInputError()
		}
		var err error
		if text, err = contract.ReadText(stdin); err != nil {
			return "", err
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", noInputError()
	}
	return text, nil
}

func noInputError() error {
	return errors.NewInputError(
		"No ingredient text given",
		"Neither arguments, --file nor stdin provided any text",
		`Run: proteinscan classify "Whey protein, cocoa"`,
	)
}

func printClassify(w io.Writer, res ClassifyResult) {
	if res.OCR != nil {
		q := res.OCR.Quality
		fmt.Fprintf(w, "%s %.2f", ui.Label("OCR quality:"), q.Score)
		if q.LikelyIngredientList {
			fmt.Fprint(w, ui.DimText(" (looks like an ingredient list)"))
		}
		fmt.Fprintln(w)
		for _, issue := range q.Issues {
			ui.Warningf(w, "%s", issue)
		}
		if n := len(res.OCR.Corrections); n > 0 {
			fmt.Fprintf(w, "%s %s\n", ui.Label("OCR fixes:"), ui.CountText(n))
		}
		fmt.Fprintf(w, "%s %s\n", ui.Label("Text:"), ui.DimText(res.Text))
	}

	fmt.Fprintf(w, "%s %s\n", ui.Label("Detected:"), ui.LabelList(res.Labels.Sorted()))
	if res.Score.Rated > 0 {
		fmt.Fprintf(w, "%s %s %s\n",
			ui.Label("Quality:"),
			ui.Quality(res.Score.Category),
			ui.DimText(fmt.Sprintf("(weighted PDCAAS %.2f over %d)", res.Score.Average, res.Score.Rated)),
		)
	}

	if res.Report != nil {
		printReport(w, *res.Report)
	}
}

func printReport(w io.Writer, rep classifier.Report) {
	if len(rep.Matches) > 0 {
		fmt.Fprintln(w)
		ui.SubHeader(w, "Matches:")
		for _, m := range rep.Matches {
			fmt.Fprintf(w, "  %-24s %q in %s", m.Label, m.Keyword, highlightKeyword(m.Context, m.Keyword))
			if h, ok := rep.InMarker(m); ok {
				fmt.Fprint(w, ui.Yellow.Sprintf("  [inside %s marker %q]", h.Kind, h.Phrase))
			}
			fmt.Fprintln(w)
		}
	}

	if len(rep.Rejections) > 0 {
		fmt.Fprintln(w)
		ui.SubHeader(w, "Rejected:")
		for _, r := range rep.Rejections {
			why := string(r.Reason)
			if r.Qualifier != "" {
				why += fmt.Sprintf(" %q", r.Qualifier)
			}
			fmt.Fprintf(w, "  %-24s %q in %s %s\n", r.Label, r.Keyword, highlightKeyword(r.Context, r.Keyword), ui.Yellow.Sprint(why))
		}
	}

	if len(rep.Markers) > 0 {
		fmt.Fprintln(w)
		ui.SubHeader(w, "Markers:")
		for _, h := range rep.Markers {
			fmt.Fprintf(w, "  %-11s %q at %d\n", h.Kind, h.Phrase, h.Start)
		}
	}
}

// highlightKeyword bolds the first occurrence of kw in context.
func highlightKeyword(context, kw string) string {
	i := strings.Index(context, kw)
	if i < 0 {
		return ui.DimText(context)
	}
	return ui.Highlight(context, i, i+len(kw))
}
