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

// Package errors provides structured error handling for the proteinscan CLI.
//
// This package defines UserError, a type that carries structured error information
// including what went wrong, why it happened, and how to fix it. It also defines
// consistent exit codes for different error categories.
//
// # Usage Example
//
// Creating and displaying errors:
//
//	err := errors.NewConfigError(
//	    "Cannot load keyword catalog",
//	    "Label \"Whey Isolate\" has no keywords",
//	    "Add at least one keyword to every label in catalog.yaml",
//	    underlyingErr,
//	)
//	if err != nil {
//	    errors.FatalError(err, false)
//	}
//
// # Formatted Output
//
// The Format() method provides colored terminal output:
//
//	fmt.Fprint(os.Stderr, err.Format(false))
//	// Output (with colors):
//	// Error: Cannot load keyword catalog
//	// Cause: Label "Whey Isolate" has no keywords
//	// Fix:   Add at least one keyword to every label in catalog.yaml
//
// For JSON output:
//
//	jsonData := err.ToJSON()
//	json.NewEncoder(os.Stderr).Encode(jsonData)
//	// Output:
//	// {
//	//   "error": "Cannot load keyword catalog",
//	//   "cause": "Label \"Whey Isolate\" has no keywords",
//	//   "fix": "Add at least one keyword to every label in catalog.yaml",
//	//   "exit_code": 1
//	// }
//
// # Exit Codes
//
// The package defines semantic exit codes following Unix conventions:
//   - ExitSuccess (0): Successful execution
//   - ExitConfig (1): Configuration errors (invalid catalog, bad config file)
//   - ExitIO (2): Reading or writing files failed
//   - ExitEvaluation (3): Corpus evaluation finished with failing cases
//   - ExitInput (4): Invalid user input (bad arguments, validation errors)
//   - ExitPermission (5): Permission denied (file access, etc.)
//   - ExitNotFound (6): Resource not found (catalog, corpus, etc.)
//   - ExitInternal (10): Internal errors (bugs, panics)
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConfig indicates configuration errors (invalid catalog or config files).
	ExitConfig = 1

	// ExitIO indicates that reading or writing a file failed.
	ExitIO = 2

	// ExitEvaluation indicates that a corpus evaluation had failing cases.
	ExitEvaluation = 3

	// ExitInput indicates invalid user input (bad arguments, validation errors).
	ExitInput = 4

	// ExitPermission indicates permission denied errors (file access, etc.).
	ExitPermission = 5

	// ExitNotFound indicates resource not found errors (catalog, corpus, etc.).
	ExitNotFound = 6

	// ExitInternal indicates internal errors (bugs, unexpected panics).
	// Exit code 10 signals "this is a bug that should be reported".
	ExitInternal = 10
)

// UserError represents an error with structured context for end users.
//
// It provides three levels of information:
//   - Message: What went wrong (user-facing error description)
//   - Cause: Why it happened (diagnostic information)
//   - Fix: How to fix it (actionable suggestion)
//
// UserError also carries an exit code for consistent CLI exit behavior
// and optionally wraps an underlying error for error chain compatibility.
type UserError struct {
	// Message describes what went wrong in user-friendly language.
	Message string

	// Cause explains why the error occurred (diagnostic information).
	Cause string

	// Fix provides an actionable suggestion on how to resolve the error.
	Fix string

	// ExitCode is the exit code that should be used when exiting due to this error.
	ExitCode int

	// Err is the underlying error that caused this error (optional).
	// This enables error wrapping and compatibility with errors.Is/As.
	Err error
}

// Error implements the error interface.
//
// It returns a simple error message string. If an underlying error is present,
// it appends that error's message for context.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements error unwrapping for compatibility with errors.Is and errors.As.
func (e *UserError) Unwrap() error {
	return e.Err
}

func newUserError(code int, msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: code,
		Err:      err,
	}
}

// NewConfigError creates a configuration error with exit code ExitConfig.
//
// Use this for invalid keyword catalogs, malformed YAML, or an unreadable
// .proteinscan/config.yaml. Catalog construction failures are always config
// errors: they are fatal at startup and never recovered mid-classification.
//
// Example:
//
//	return NewConfigError(
//	    "Invalid keyword catalog",
//	    "Keyword #2 of label \"Soy Protein\" is empty",
//	    "Remove the empty entry from catalog.yaml",
//	    catalog.ErrConfig,
//	)
func NewConfigError(msg, cause, fix string, err error) *UserError {
	return newUserError(ExitConfig, msg, cause, fix, err)
}

// NewIOError creates a file I/O error with exit code ExitIO.
func NewIOError(msg, cause, fix string, err error) *UserError {
	return newUserError(ExitIO, msg, cause, fix, err)
}

// NewEvaluationError creates an error with exit code ExitEvaluation.
//
// Use this when a corpus evaluation completed but some cases failed. The
// error is an expected outcome of the evaluate command, not a malfunction.
func NewEvaluationError(msg, cause, fix string) *UserError {
	return newUserError(ExitEvaluation, msg, cause, fix, nil)
}

// NewInputError creates an input validation error with exit code ExitInput.
//
// Use this for errors related to invalid user input, such as bad command-line
// arguments or oversized stdin. Input errors typically do not wrap
// an underlying error.
//
// Example:
//
//	return NewInputError(
//	    "No ingredient text given",
//	    "Neither arguments, --file nor stdin provided any text",
//	    "Run: proteinscan classify \"Whey protein, cocoa\"",
//	)
func NewInputError(msg, cause, fix string) *UserError {
	return newUserError(ExitInput, msg, cause, fix, nil)
}

// NewPermissionError creates a permission denied error with exit code ExitPermission.
func NewPermissionError(msg, cause, fix string, err error) *UserError {
	return newUserError(ExitPermission, msg, cause, fix, err)
}

// NewNotFoundError creates a resource not found error with exit code ExitNotFound.
//
// Use this when a catalog or corpus file named on the command line does not exist.
func NewNotFoundError(msg, cause, fix string) *UserError {
	return newUserError(ExitNotFound, msg, cause, fix, nil)
}

// NewInternalError creates an internal error with exit code ExitInternal.
//
// Use this for unexpected errors that indicate bugs in the program.
// Internal errors should be reported to the maintainers.
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return newUserError(ExitInternal, msg, cause, fix, err)
}

// ExitCodeOf returns the exit code carried by err.
//
// A nil error maps to ExitSuccess, a UserError anywhere in the chain to its
// ExitCode, and anything else to ExitInternal.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ue *UserError
	if stderrors.As(err, &ue) {
		return ue.ExitCode
	}
	return ExitInternal
}

// Color definitions for error formatting.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format renders the error for a terminal: an Error row, then Cause and
// Fix rows when they are set. Continuation lines of a multi-line value are
// indented under the first one, which keeps lists of failing case ids
// readable. Labels are colored unless noColor or NO_COLOR is set.
func (e *UserError) Format(noColor bool) string {
	plain := noColor || os.Getenv("NO_COLOR") != ""
	rows := []struct {
		label string
		color *color.Color
		value string
	}{
		{"Error: ", colorError, e.Message},
		{"Cause: ", colorCause, e.Cause},
		{"Fix:   ", colorFix, e.Fix},
	}

	var out strings.Builder
	for i, row := range rows {
		if i > 0 && row.value == "" {
			continue
		}
		label := row.label
		if !plain {
			label = row.color.Sprint(label)
		}
		out.WriteString(label)
		out.WriteString(strings.ReplaceAll(row.value, "\n", "\n"+strings.Repeat(" ", len(row.label))))
		out.WriteByte('\n')
	}
	return out.String()
}

// ErrorJSON represents error information in JSON format.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}

// Report writes err to w as the CLI shows it and returns the exit code to
// use. Errors that are not a UserError are reported as internal errors, in
// both the text and the JSON form.
func Report(w io.Writer, err error, jsonOutput bool) int {
	if err == nil {
		return ExitSuccess
	}
	var ue *UserError
	if !stderrors.As(err, &ue) {
		ue = NewInternalError(err.Error(), "", "", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		_ = enc.Encode(ue.ToJSON())
	} else {
		fmt.Fprint(w, ue.Format(false))
	}
	return ue.ExitCode
}

// FatalError reports err on stderr and exits with its code. A nil error
// returns immediately.
func FatalError(err error, jsonOutput bool) {
	if err == nil {
		return
	}
	os.Exit(Report(os.Stderr, err, jsonOutput))
}
