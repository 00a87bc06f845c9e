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

package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestUserError_Error verifies the Error() method implementation.
func TestUserError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want string
	}{
		{
			name: "with underlying error",
			err: &UserError{
				Message: "Cannot load keyword catalog",
				Err:     fmt.Errorf("yaml: line 3: mapping values are not allowed"),
			},
			want: "Cannot load keyword catalog: yaml: line 3: mapping values are not allowed",
		},
		{
			name: "without underlying error",
			err:  &UserError{Message: "Invalid input"},
			want: "Invalid input",
		},
		{
			name: "empty message with underlying error",
			err:  &UserError{Err: fmt.Errorf("some error")},
			want: ": some error",
		},
		{
			name: "empty message without underlying error",
			err:  &UserError{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UserError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestExitCodes verifies that exit code constants have the correct values.
func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		want     int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitConfig", ExitConfig, 1},
		{"ExitIO", ExitIO, 2},
		{"ExitEvaluation", ExitEvaluation, 3},
		{"ExitInput", ExitInput, 4},
		{"ExitPermission", ExitPermission, 5},
		{"ExitNotFound", ExitNotFound, 6},
		{"ExitInternal", ExitInternal, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.exitCode != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.exitCode, tt.want)
			}
		})
	}
}

// TestConstructors verifies that all constructor functions work correctly.
func TestConstructors(t *testing.T) {
	underlyingErr := fmt.Errorf("underlying error")

	tests := []struct {
		name         string
		constructor  func() *UserError
		wantExitCode int
		wantHasErr   bool
	}{
		{"NewConfigError with underlying error", func() *UserError { return NewConfigError("msg", "cause", "fix", underlyingErr) }, ExitConfig, true},
		{"NewConfigError without underlying error", func() *UserError { return NewConfigError("msg", "cause", "fix", nil) }, ExitConfig, false},
		{"NewIOError", func() *UserError { return NewIOError("msg", "cause", "fix", underlyingErr) }, ExitIO, true},
		{"NewEvaluationError", func() *UserError { return NewEvaluationError("msg", "cause", "fix") }, ExitEvaluation, false},
		{"NewInputError", func() *UserError { return NewInputError("msg", "cause", "fix") }, ExitInput, false},
		{"NewPermissionError", func() *UserError { return NewPermissionError("msg", "cause", "fix", underlyingErr) }, ExitPermission, true},
		{"NewNotFoundError", func() *UserError { return NewNotFoundError("msg", "cause", "fix") }, ExitNotFound, false},
		{"NewInternalError", func() *UserError { return NewInternalError("msg", "cause", "fix", underlyingErr) }, ExitInternal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.constructor()

			if got.Message != "msg" || got.Cause != "cause" || got.Fix != "fix" {
				t.Errorf("fields = (%q, %q, %q), want (msg, cause, fix)", got.Message, got.Cause, got.Fix)
			}
			if got.ExitCode != tt.wantExitCode {
				t.Errorf("ExitCode = %d, want %d", got.ExitCode, tt.wantExitCode)
			}
			if hasErr := got.Err != nil; hasErr != tt.wantHasErr {
				t.Errorf("has underlying error = %v, want %v", hasErr, tt.wantHasErr)
			}
		})
	}
}

// TestErrorChain verifies error wrapping compatibility with stdlib errors package.
func TestErrorChain(t *testing.T) {
	t.Run("errors.Is finds a sentinel behind a config error", func(t *testing.T) {
		sentinel := fmt.Errorf("invalid catalog")
		userErr := NewConfigError("Invalid keyword catalog", "cause", "fix", fmt.Errorf("label x: %w", sentinel))

		if !errors.Is(userErr, sentinel) {
			t.Error("errors.Is should find sentinel error in chain")
		}
	})

	t.Run("errors.As returns the outermost UserError", func(t *testing.T) {
		inner := NewConfigError("config error", "cause", "fix", nil)
		outer := NewIOError("io error", "cause", "fix", inner)

		var target *UserError
		if !errors.As(outer, &target) {
			t.Fatal("errors.As should extract UserError")
		}
		if target.ExitCode != ExitIO {
			t.Errorf("ExitCode = %d, want %d", target.ExitCode, ExitIO)
		}
	})
}

func TestExitCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", fmt.Errorf("boom"), ExitInternal},
		{"user error", NewNotFoundError("m", "c", "f"), ExitNotFound},
		{"wrapped user error", fmt.Errorf("run: %w", NewConfigError("m", "c", "f", nil)), ExitConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeOf(tt.err); got != tt.want {
				t.Errorf("ExitCodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestUserError_Format verifies the Format() method implementation.
func TestUserError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want []string
		skip []string
	}{
		{
			name: "full error",
			err: &UserError{
				Message:  "Invalid keyword catalog",
				Cause:    "Label \"Soy Protein\" has no keywords",
				Fix:      "Add keywords in catalog.yaml",
				ExitCode: ExitConfig,
			},
			want: []string{"Error: Invalid keyword catalog", "Cause: Label \"Soy Protein\" has no keywords", "Fix:   Add keywords in catalog.yaml"},
		},
		{
			name: "error without cause",
			err:  &UserError{Message: "Invalid input", Fix: "Use valid format", ExitCode: ExitInput},
			want: []string{"Error: Invalid input", "Fix:   Use valid format"},
			skip: []string{"Cause:"},
		},
		{
			name: "message only",
			err:  &UserError{Message: "Something failed", ExitCode: ExitInternal},
			want: []string{"Error: Something failed"},
			skip: []string{"Cause:", "Fix:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(true)
			for _, substr := range tt.want {
				if !strings.Contains(got, substr) {
					t.Errorf("Format() output missing %q\nGot: %s", substr, got)
				}
			}
			for _, substr := range tt.skip {
				if strings.Contains(got, substr) {
					t.Errorf("Format() output should not contain %q\nGot: %s", substr, got)
				}
			}
		})
	}
}

// TestUserError_Format_NoColor verifies that NO_COLOR environment variable is respected.
func TestUserError_Format_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	err := &UserError{Message: "Test error", Cause: "Test cause", Fix: "Test fix", ExitCode: ExitConfig}
	if strings.Contains(err.Format(false), "\x1b[") {
		t.Error("Format() output contains ANSI codes despite NO_COLOR being set")
	}
}

// TestUserError_ToJSON verifies the ToJSON() method implementation.
func TestUserError_ToJSON(t *testing.T) {
	err := &UserError{
		Message:  "Corpus evaluation failed",
		Cause:    "2 of 40 cases failed",
		Fix:      "Run: proteinscan evaluate --verbose",
		ExitCode: ExitEvaluation,
	}

	got := err.ToJSON()
	want := ErrorJSON{
		Error:    "Corpus evaluation failed",
		Cause:    "2 of 40 cases failed",
		Fix:      "Run: proteinscan evaluate --verbose",
		ExitCode: ExitEvaluation,
	}
	if got != want {
		t.Errorf("ToJSON() = %+v, want %+v", got, want)
	}
}

func TestUserError_Format_MultiLineCause(t *testing.T) {
	err := &UserError{Message: "2 corpus cases failed", Cause: "case-3\ncase-17", ExitCode: ExitEvaluation}
	want := "Error: 2 corpus cases failed\nCause: case-3\n       case-17\n"
	if got := err.Format(true); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		json     bool
		wantCode int
		want     []string
	}{
		{
			name:     "nil",
			wantCode: ExitSuccess,
		},
		{
			name:     "user error text",
			err:      NewInputError("Input is empty", "", "Pass ingredient text or --file"),
			wantCode: ExitInput,
			want:     []string{"Error: Input is empty\n", "Fix:   Pass ingredient text or --file\n"},
		},
		{
			name:     "wrapped user error keeps its code",
			err:      fmt.Errorf("classify: %w", NewConfigError("Bad catalog", "", "", nil)),
			wantCode: ExitConfig,
			want:     []string{"Error: Bad catalog\n"},
		},
		{
			name:     "plain error is internal",
			err:      errors.New("boom"),
			wantCode: ExitInternal,
			want:     []string{"Error: boom\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			var buf bytes.Buffer
			if code := Report(&buf, tt.err, tt.json); code != tt.wantCode {
				t.Errorf("Report() code = %d, want %d", code, tt.wantCode)
			}
			if tt.err == nil && buf.Len() != 0 {
				t.Errorf("Report(nil) wrote %q", buf.String())
			}
			for _, substr := range tt.want {
				if !strings.Contains(buf.String(), substr) {
					t.Errorf("Report() output missing %q\nGot: %s", substr, buf.String())
				}
			}
		})
	}
}

func TestReport_JSON(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorJSON
	}{
		{
			name: "user error",
			err:  NewEvaluationError("Corpus evaluation failed", "1 of 3 cases failed", "Run: proteinscan evaluate --verbose"),
			want: ErrorJSON{Error: "Corpus evaluation failed", Cause: "1 of 3 cases failed", Fix: "Run: proteinscan evaluate --verbose", ExitCode: ExitEvaluation},
		},
		{
			name: "plain error",
			err:  errors.New("salt & pepper <missing>"),
			want: ErrorJSON{Error: "salt & pepper <missing>", ExitCode: ExitInternal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := Report(&buf, tt.err, true)
			if code != tt.want.ExitCode {
				t.Errorf("Report() code = %d, want %d", code, tt.want.ExitCode)
			}
			if strings.Contains(buf.String(), `\u0026`) {
				t.Errorf("Report() escaped HTML: %s", buf.String())
			}
			var got ErrorJSON
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("Report() wrote invalid JSON: %v\n%s", err, buf.String())
			}
			if got != tt.want {
				t.Errorf("Report() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFatalError_NilDoesNothing(t *testing.T) {
	FatalError(nil, false)
}
