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

// Package ui renders human-readable proteinscan output.
//
// Colors follow the --no-color flag and the NO_COLOR environment variable,
// and fatih/color turns them off when stdout is not a terminal.
//
// Color usage:
//   - Red: failed cases, errors
//   - Yellow: warnings, pending cases, rejected occurrences
//   - Green: passed cases, detected labels
//   - Cyan: counts and informational lines
//   - Bold: headers and labels
//   - Dim: paths, context snippets
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Green  = color.New(color.FgGreen)
	Cyan   = color.New(color.FgCyan)
	Bold   = color.New(color.Bold)
	Dim    = color.New(color.Faint)
)

// InitColors sets the global color switch. Call it once after flag parsing.
func InitColors(noColor bool) {
	color.NoColor = noColor
}

// Successf prints a green line prefixed with a checkmark.
func Successf(w io.Writer, format string, args ...any) {
	_, _ = Green.Fprintf(w, "✓ "+format+"\n", args...)
}

// Warningf prints a yellow line prefixed with a warning sign.
func Warningf(w io.Writer, format string, args ...any) {
	_, _ = Yellow.Fprintf(w, "⚠ "+format+"\n", args...)
}

// Errorf prints a red line prefixed with a cross.
func Errorf(w io.Writer, format string, args ...any) {
	_, _ = Red.Fprintf(w, "✗ "+format+"\n", args...)
}

// Infof prints a cyan informational line.
func Infof(w io.Writer, format string, args ...any) {
	_, _ = Cyan.Fprintf(w, "ℹ "+format+"\n", args...)
}

// Header prints a bold title underlined with '='.
//
//	Evaluation Summary
//	==================
func Header(w io.Writer, text string) {
	_, _ = Bold.Fprintln(w, text)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len([]rune(text))))
}

// SubHeader prints a bold title without underline.
func SubHeader(w io.Writer, text string) {
	_, _ = Bold.Fprintln(w, text)
}

// Label returns text in bold for inline use.
func Label(text string) string {
	return Bold.Sprint(text)
}

// DimText returns text in faint style.
func DimText(text string) string {
	return Dim.Sprint(text)
}

// CountText returns a count in cyan.
func CountText(count int) string {
	return Cyan.Sprint(count)
}

// LabelList joins protein labels in green, or a dim "(none)" when empty.
func LabelList[T ~string](labels []T) string {
	if len(labels) == 0 {
		return Dim.Sprint("(none)")
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = Green.Sprint(string(l))
	}
	return strings.Join(parts, ", ")
}

// Outcome returns the colored status word for an evaluated case.
func Outcome(passed, pending bool) string {
	switch {
	case pending:
		return Yellow.Sprint("PENDING")
	case passed:
		return Green.Sprint("PASS")
	default:
		return Red.Sprint("FAIL")
	}
}

// Quality colors a protein quality category: excellent and good green,
// medium yellow, low red, anything else dim.
func Quality(category string) string {
	switch category {
	case "excellent", "good":
		return Green.Sprint(category)
	case "medium":
		return Yellow.Sprint(category)
	case "low":
		return Red.Sprint(category)
	default:
		return Dim.Sprint(category)
	}
}

// Highlight returns text with the byte range [start, end) in bold and the
// rest dim. Out-of-range bounds are clamped.
func Highlight(text string, start, end int) string {
	start = max(0, min(start, len(text)))
	end = max(start, min(end, len(text)))
	return Dim.Sprint(text[:start]) + Bold.Sprint(text[start:end]) + Dim.Sprint(text[end:])
}
