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

// Package ocrtext cleans up ingredient text captured by OCR before it is
// classified.
//
// Camera OCR confuses similar glyphs ("prote1n", "s0ja", "rnilk" for
// "milk"), splits words across lines with a hyphen, and keeps whatever
// separators the label used. Preprocess undoes the common cases and
// reports every correction it applied; AssessQuality scores how usable the
// text is.
package ocrtext

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Correction records one rewrite applied by Preprocess.
type Correction struct {
	Pattern string `json:"pattern"`
	Replace string `json:"replace"`
}

func (c Correction) String() string {
	return fmt.Sprintf("%s → %s", c.Pattern, c.Replace)
}

// Result is the outcome of Preprocess.
type Result struct {
	Original    string       `json:"original"`
	Processed   string       `json:"processed"`
	Corrections []Correction `json:"corrections,omitempty"`
}

type rule struct {
	re      *regexp.Regexp
	replace string
}

func rules(pairs ...string) []rule {
	out := make([]rule, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, rule{re: regexp.MustCompile(pairs[i]), replace: pairs[i+1]})
	}
	return out
}

// glyphRules fix single-character confusions: digit for letter, capital I
// for l, "rn" for "m".
var glyphRules = rules(
	`(?i)prote[10]n`, "protein",
	`proteIn`, "protein",
	`(?i)iso1ate`, "isolate",
	`isoIate`, "isolate",
	`(?i)m1lk`, "milk",
	`mIlk`, "milk",
	`(?i)wh3y`, "whey",
	`(?i)cas3in`, "casein",
	`(?i)s0ja`, "soja",
	`(?i)s0y`, "soy",
	`(?i)rnilk`, "milk",
	`(?i)rnilch`, "milch",
	`(?i)rnolke`, "molke",
	`(?i)\bwhev\b`, "whey",
	`(?i)protien`, "protein",
	`(?i)proetein`, "protein",
	`(?i)\bproteine(s?)\b`, "protéine$1",
	`(?i)\blactoserum\b`, "lactosérum",
	`(?i)lait ecreme`, "lait écrémé",
	`(?i)legumineuse`, "légumineuse",
	`(?i)eiwei(ss|b\b)`, "eiweiß",
	`(?i)eiwel(ss|ß)`, "eiweiß",
)

// termRules fix whole-term misreads of protein vocabulary.
var termRules = rules(
	`(?i)wh[cn]y protein|wney protein`, "whey protein",
	`(?i)\bcas(ie|ae)n\b`, "casein",
	`(?i)\bsova\b`, "soya",
	`(?i)\bpca protein`, "pea protein",
	`(?i)\blsolate`, "isolate",
	`(?i)concentratc\b`, "concentrate",
)

var (
	reHorizontalSpace = regexp.MustCompile(`[ \t]+`)
	reBlankLines      = regexp.MustCompile(`\n\s*\n`)
	reHyphenBreak     = regexp.MustCompile(`([\p{L}\d])-[ \t]*\n[ \t]*([\p{L}\d])`)
	reBullets         = regexp.MustCompile(`[•·▪▸►]`)
	rePercent         = regexp.MustCompile(`\(\s*\d+(?:[.,]\d+)?\s*%?\s*\)`)
	reSpaceComma      = regexp.MustCompile(`[ \t]+,`)
	reDoubleComma     = regexp.MustCompile(`,(\s*,)+`)
)

// Preprocess applies the OCR clean-up pipeline:
// whitespace normalisation, glyph fixes, rejoining of words hyphenated
// across lines, separator normalisation and protein-term fixes.
func Preprocess(raw string) Result {
	res := Result{Original: raw}

	text := normalizeWhitespace(raw)
	text = applyRules(text, glyphRules, &res.Corrections)
	text = reHyphenBreak.ReplaceAllString(text, "$1$2")
	text = normalizeSeparators(text)
	text = applyRules(text, termRules, &res.Corrections)

	res.Processed = text
	if len(res.Corrections) > 0 {
		slog.Debug("ocr.preprocess.corrected", "corrections", len(res.Corrections))
	}
	return res
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = reHorizontalSpace.ReplaceAllString(s, " ")
	s = reBlankLines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

func normalizeSeparators(s string) string {
	s = reBullets.ReplaceAllString(s, ",")
	s = strings.ReplaceAll(s, ";", ",")
	s = rePercent.ReplaceAllString(s, "")
	s = reSpaceComma.ReplaceAllString(s, ",")
	s = reDoubleComma.ReplaceAllString(s, ",")
	s = reHorizontalSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func applyRules(s string, rs []rule, log *[]Correction) string {
	for _, r := range rs {
		out := r.re.ReplaceAllString(s, r.replace)
		if out != s {
			*log = append(*log, Correction{Pattern: r.re.String(), Replace: r.replace})
			s = out
		}
	}
	return s
}
