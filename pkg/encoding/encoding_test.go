// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package encoding_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lassandro/gobefunge/pkg/encoding"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Want  []string
	}{
		{"Empty", "", []string{""}},
		{"Single", "1.@", []string{"1.@"}},
		{"LF", "ab\ncd", []string{"ab", "cd"}},
		{"CR", "ab\rcd", []string{"ab", "cd"}},
		{"CRLF", "ab\r\ncd", []string{"ab", "cd"}},
		{"Mixed", "a\nb\rc\r\nd", []string{"a", "b", "c", "d"}},
		{"Trailing", "ab\n", []string{"ab", ""}},
		{"Blank rows", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"LFCR", "a\n\rb", []string{"a", "", "b"}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if diff := cmp.Diff(test.Want, encoding.SplitLines(test.Input)); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +have):\n%s", test.Input, diff)
			}
		})
	}
}

func TestDecodeHexDigit(t *testing.T) {
	for i, r := range "0123456789abcdef" {
		value, ok := encoding.DecodeHexDigit(r)
		assert.True(t, ok, "%q", r)
		assert.Equal(t, i, value, "%q", r)
	}

	for i, r := range "ABCDEF" {
		value, ok := encoding.DecodeHexDigit(r)
		assert.True(t, ok, "%q", r)
		assert.Equal(t, i+10, value, "%q", r)
	}

	for _, r := range "gG@ \"x-" {
		_, ok := encoding.DecodeHexDigit(r)
		assert.False(t, ok, "%q", r)
	}
}

func TestDecodeInt(t *testing.T) {
	tests := map[string]int{
		"42":        42,
		"  42\n":    42,
		"-17":       -17,
		"+8":        8,
		"12abc":     12,
		"":          0,
		"abc":       0,
		"-":         0,
		"0":         0,
		"007":       7,
		"3.9":       3,
		"99999999999999999999999": math.MaxInt,
		"-99999999999999999999999": math.MinInt,
	}

	for input, want := range tests {
		assert.Equal(t, want, encoding.DecodeInt(input), "DecodeInt(%q)", input)
	}
}

func TestDecodeCoord(t *testing.T) {
	tests := map[string]int{
		"12":   12,
		"#12":  12,
		"0x0C": 12,
		"x0c":  12,
		"X10":  16,
		"0":    0,
		"-1":   -1,
	}

	for input, want := range tests {
		have, err := encoding.DecodeCoord(input)
		require.NoError(t, err, "DecodeCoord(%q)", input)
		assert.Equal(t, want, have, "DecodeCoord(%q)", input)
	}

	for _, input := range []string{"", "abc", "1x", "0xZZ", "#"} {
		_, err := encoding.DecodeCoord(input)
		assert.Error(t, err, "DecodeCoord(%q)", input)
	}
}

func TestDecodeCell(t *testing.T) {
	tests := map[string]rune{
		"'a'":  'a',
		"' '":  ' ',
		"@":    '@',
		"5":    '5',
		"#64":  '@',
		"0x40": '@',
		"'ā'":  'ā',
	}

	for input, want := range tests {
		have, err := encoding.DecodeCell(input)
		require.NoError(t, err, "DecodeCell(%q)", input)
		assert.Equal(t, want, have, "DecodeCell(%q)", input)
	}

	for _, input := range []string{"'ab'", "hello", ""} {
		_, err := encoding.DecodeCell(input)
		assert.Error(t, err, "DecodeCell(%q)", input)
	}
}
