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
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/proteinscan/internal/errors"
)

func TestSoftLimitBytes(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"unset", "", DefaultSoftLimitBytes},
		{"valid", "1024", 1024},
		{"not a number", "lots", DefaultSoftLimitBytes},
		{"zero", "0", DefaultSoftLimitBytes},
		{"negative", "-5", DefaultSoftLimitBytes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(SoftLimitEnv, tt.env)
			assert.Equal(t, tt.want, SoftLimitBytes())
		})
	}
}

func TestValidateText(t *testing.T) {
	t.Setenv(SoftLimitEnv, "10")

	assert.True(t, ValidateText("Soja").OK)
	assert.True(t, ValidateText(strings.Repeat("a", 10)).OK)

	res := ValidateText("Molkenproteinisolat")
	assert.False(t, res.OK)
	assert.Equal(t, "input is 19 bytes, limit is 10", res.Message)
}

func TestReadText(t *testing.T) {
	t.Setenv(SoftLimitEnv, "16")

	got, err := ReadText(strings.NewReader("Reisprotein"))
	require.NoError(t, err)
	assert.Equal(t, "Reisprotein", got)

	_, err = ReadText(strings.NewReader("Molkenproteinisolat, Weizen"))
	require.Error(t, err)
	assert.Equal(t, errors.ExitInput, errors.ExitCodeOf(err))
	assert.Contains(t, err.Error(), "Input too large")

	_, err = ReadText(iotest.ErrReader(assert.AnError))
	require.Error(t, err)
	assert.Equal(t, errors.ExitIO, errors.ExitCodeOf(err))
}
