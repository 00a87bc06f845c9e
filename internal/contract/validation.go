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

package contract

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kraklabs/proteinscan/internal/errors"
)

const (
	// DefaultSoftLimitBytes is the input size limit when no override is set.
	DefaultSoftLimitBytes = 4 << 20 // 4 MiB

	// SoftLimitEnv overrides DefaultSoftLimitBytes.
	SoftLimitEnv = "PROTEINSCAN_SOFT_LIMIT_BYTES"
)

// SoftLimitBytes returns the effective input size limit.
func SoftLimitBytes() int {
	if v := os.Getenv(SoftLimitEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultSoftLimitBytes
}

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	OK      bool
	Message string
}

// ValidateText checks text against the soft limit.
func ValidateText(text string) *ValidationResult {
	if limit := SoftLimitBytes(); len(text) > limit {
		return &ValidationResult{
			OK:      false,
			Message: fmt.Sprintf("input is %d bytes, limit is %d", len(text), limit),
		}
	}
	return &ValidationResult{OK: true}
}

// ReadText reads all of r, failing with an input error once the soft limit
// is exceeded. It never buffers more than limit+1 bytes.
func ReadText(r io.Reader) (string, error) {
	limit := SoftLimitBytes()
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return "", errors.NewIOError(
			"Cannot read input",
			err.Error(),
			"Check that the file or pipe is readable",
			err,
		)
	}
	if len(data) > limit {
		return "", errors.NewInputError(
			"Input too large",
			fmt.Sprintf("more than %d bytes of ingredient text", limit),
			fmt.Sprintf("Split the input or raise %s", SoftLimitEnv),
		)
	}
	return string(data), nil
}
