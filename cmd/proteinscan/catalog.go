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

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/proteinscan/internal/errors"
	"github.com/kraklabs/proteinscan/internal/output"
	"github.com/kraklabs/proteinscan/internal/ui"
	"github.com/kraklabs/proteinscan/pkg/catalog"
)

// CatalogStats is the --json output of 'catalog validate'.
type CatalogStats struct {
	Source       string `json:"source"`
	Valid        bool   `json:"valid"`
	Labels       int    `json:"labels"`
	Keywords     int    `json:"keywords"`
	BaseKeywords int    `json:"base_keywords"`
	Qualifiers   int    `json:"qualifiers"`
	Markers      int    `json:"markers"`
}

// CatalogDocument is the --json output of 'catalog show'.
type CatalogDocument struct {
	Labels           []catalog.Entry  `json:"labels"`
	BaseKeywords     []string         `json:"base_keywords"`
	Qualifiers       []string         `json:"qualifiers"`
	ExclusionMarkers []catalog.Marker `json:"exclusion_markers"`
}

// runCatalog executes 'catalog validate' and 'catalog show'.
func runCatalog(args []string, g GlobalFlags, s streams) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(s.err)
	catalogPath := fs.String("catalog", "", "Keyword catalog YAML (default: config or built-in)")

	fs.Usage = func() {
		fmt.Fprintf(s.err, `Usage: proteinscan catalog <validate|show> [options]

Subcommands:
  validate   Load the catalog and report its size, or the first error
  show       Print the catalog as YAML (JSON with --json)

Options:
`)
		fs.PrintDefaults()
	}

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.NewInputError("Expected one subcommand", "validate or show", "Run: proteinscan catalog validate")
	}

	st, err := LoadSettings(g.ConfigPath)
	if err != nil {
		return err
	}
	override(&st.CatalogPath, *catalogPath)

	switch sub := fs.Arg(0); sub {
	case "validate":
		cat, err := loadCatalog(st.CatalogPath)
		if err != nil {
			return err
		}
		stats := catalogStats(cat, catalogName(st.CatalogPath))
		if g.JSON {
			return output.JSONTo(s.out, stats)
		}
		ui.Successf(s.out, "Catalog %s is valid", stats.Source)
		fmt.Fprintf(s.out, "  Labels:         %s\n", ui.CountText(stats.Labels))
		fmt.Fprintf(s.out, "  Keywords:       %s\n", ui.CountText(stats.Keywords))
		fmt.Fprintf(s.out, "  Base keywords:  %s\n", ui.CountText(stats.BaseKeywords))
		fmt.Fprintf(s.out, "  Qualifiers:     %s\n", ui.CountText(stats.Qualifiers))
		fmt.Fprintf(s.out, "  Markers:        %s\n", ui.CountText(stats.Markers))
		return nil

	case "show":
		cat, err := loadCatalog(st.CatalogPath)
		if err != nil {
			return err
		}
		if g.JSON {
			return output.JSONTo(s.out, CatalogDocument{
				Labels:           cat.Entries(),
				BaseKeywords:     cat.BaseKeywords(),
				Qualifiers:       cat.Qualifiers(),
				ExclusionMarkers: cat.Markers().List(),
			})
		}
		data, err := catalog.Marshal(cat)
		if err != nil {
			return errors.NewInternalError("Cannot render catalog", err.Error(), "This is a bug; please report it", err)
		}
		_, err = s.out.Write(data)
		return err

	default:
		return errors.NewInputError(
			fmt.Sprintf("Unknown catalog subcommand: %s", sub),
			"",
			"Use 'validate' or 'show'",
		)
	}
}

func catalogStats(cat *catalog.Catalog, source string) CatalogStats {
	st := CatalogStats{
		Source:       source,
		Valid:        true,
		Labels:       cat.Len(),
		BaseKeywords: len(cat.BaseKeywords()),
		Qualifiers:   len(cat.Qualifiers()),
		Markers:      cat.Markers().Len(),
	}
	cat.ForEach(func(_ catalog.Label, keywords []string) {
		st.Keywords += len(keywords)
	})
	return st
}
