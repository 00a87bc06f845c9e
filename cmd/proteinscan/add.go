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
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/proteinscan/internal/errors"
	"github.com/kraklabs/proteinscan/internal/output"
	"github.com/kraklabs/proteinscan/internal/ui"
	"github.com/kraklabs/proteinscan/pkg/catalog"
	"github.com/kraklabs/proteinscan/pkg/corpus"
)

// AddResult is the --json output of 'add'.
type AddResult struct {
	Corpus   string        `json:"corpus"`
	Replaced bool          `json:"replaced"`
	Case     corpus.Case   `json:"case"`
	Result   corpus.Result `json:"result"`
}

// runAdd executes the 'add' command, which inserts or replaces a case in
// the test corpus. A case without --detect is stored as pending
// (NEEDS_EVALUATION) unless --none says nothing should be detected.
func runAdd(args []string, g GlobalFlags, s streams) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(s.err)
	corpusPath := fs.String("corpus", "", "Test corpus JSON (default: config)")
	catalogPath := fs.String("catalog", "", "Keyword catalog YAML used to check labels")
	id := fs.String("id", "", "Case id (required; an existing case is replaced)")
	name := fs.String("name", "", "Product name")
	source := fs.String("source", corpus.SourceManual, "Case source (manual, openfoodfacts, openfoodfacts_training)")
	barcode := fs.String("barcode", "", "Product barcode")
	notes := fs.String("notes", "", "Curator notes")
	detect := fs.StringArray("detect", nil, "Label that must be detected (repeatable)")
	notDetect := fs.StringArray("not-detect", nil, "Label that must not be detected (repeatable)")
	none := fs.Bool("none", false, "Expect no protein source at all")

	fs.Usage = func() {
		fmt.Fprintf(s.err, `Usage: proteinscan add --id <id> [options] <ingredients...>

Adds a case to the test corpus, or replaces the case with the same id.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(s.err, `
Examples:
  proteinscan add --id manual_011 --detect "Soy Protein" "Tofu, Wasser"
  proteinscan add --id off_4001234567890 --source openfoodfacts --barcode 4001234567890 "Haferflocken"
`)
	}

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	if strings.TrimSpace(*id) == "" {
		return errors.NewInputError("Missing --id", "Every corpus case needs a unique id", "Pass --id, e.g. --id manual_011")
	}
	ingredients := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if ingredients == "" {
		return errors.NewInputError("Missing ingredients", "No ingredient text after the options", `Run: proteinscan add --id x "Soja, Wasser"`)
	}
	if *none && len(*detect) > 0 {
		return errors.NewInputError("Conflicting options", "--none and --detect both given", "Use one of them")
	}

	st, err := LoadSettings(g.ConfigPath)
	if err != nil {
		return err
	}
	override(&st.CorpusPath, *corpusPath)
	override(&st.CatalogPath, *catalogPath)
	if err := st.requireCorpus(); err != nil {
		return err
	}

	c, err := st.newClassifier()
	if err != nil {
		return err
	}
	cat := c.Catalog()

	tc := corpus.Case{
		ID:                  strings.TrimSpace(*id),
		Name:                *name,
		Source:              *source,
		Barcode:             *barcode,
		Ingredients:         ingredients,
		ExpectedDetected:    toLabels(*detect),
		ExpectedNotDetected: toLabels(*notDetect),
		Notes:               *notes,
	}
	if len(tc.ExpectedDetected) == 0 && !*none {
		tc.ExpectedDetected = []catalog.Label{corpus.NeedsEvaluation}
	}
	for _, l := range append(append([]catalog.Label{}, tc.ExpectedDetected...), tc.ExpectedNotDetected...) {
		if l != corpus.NeedsEvaluation && !cat.Has(l) {
			return errors.NewInputError(
				fmt.Sprintf("Unknown label %q", l),
				"The catalog does not define this label",
				"Run 'proteinscan catalog show' to list the labels",
			)
		}
	}

	f, err := corpus.LoadFile(st.CorpusPath)
	if err != nil {
		return err
	}
	_, replaced := f.Find(tc.ID)
	f.Upsert(tc)
	if err := f.Validate(); err != nil {
		return err
	}
	if err := corpus.SaveFile(st.CorpusPath, f); err != nil {
		return err
	}
	slog.Info("corpus.case.saved", "id", tc.ID, "replaced", replaced, "corpus", st.CorpusPath)

	res := corpus.Evaluate(c, tc)
	if g.JSON {
		return output.JSONTo(s.out, AddResult{
			Corpus:   st.CorpusPath,
			Replaced: replaced,
			Case:     tc,
			Result:   res,
		})
	}

	verb := "Added"
	if replaced {
		verb = "Replaced"
	}
	ui.Successf(s.out, "%s case %s in %s", verb, tc.ID, st.CorpusPath)
	fmt.Fprintf(s.out, "%s %s\n", ui.Label("Detected now:"), ui.LabelList(res.Detected.Sorted()))
	fmt.Fprintf(s.out, "%s %s\n", ui.Label("Outcome:     "), ui.Outcome(res.Passed, res.Pending))
	return nil
}

func toLabels(in []string) []catalog.Label {
	out := make([]catalog.Label, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, catalog.Label(s))
		}
	}
	return out
}
