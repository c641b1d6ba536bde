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

package encoding

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Splits program text into rows on any of CRLF, CR or LF
func SplitLines(text string) []string {
	lines := make([]string, 0, 25)
	start := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}

	return append(lines, text[start:])
}

// Decodes a single hexadecimal digit: 0-9, a-f, A-F
func DecodeHexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}

	return 0, false
}

// Decodes the leading integer of s, ignoring surrounding whitespace and any
// trailing garbage: " -12abc" is -12. Input with no leading digits is 0.
func DecodeInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0
	}

	result, err := strconv.ParseInt(s[:end], 10, strconv.IntSize)

	if err != nil {
		// Only a range error can get here
		if s[0] == '-' {
			return -1 << (strconv.IntSize - 1)
		}
		return 1<<(strconv.IntSize-1) - 1
	}

	return int(result)
}

// Decodes a grid coordinate in the formats: 12, #12, 0x0C, x0C
func DecodeCoord(s string) (int, error) {
	if i := strings.IndexAny(s, "xX"); i == 0 || i == 1 {
		if i == 0 {
			s = "0" + s
		}

		result, err := strconv.ParseInt(s, 0, 16)

		if err != nil {
			return 0, err
		}

		return int(result), nil
	}

	s = strings.TrimPrefix(s, "#")

	result, err := strconv.ParseInt(s, 10, 16)

	if err != nil {
		return 0, err
	}

	return int(result), nil
}

// Decodes a cell value in the formats: 'c', #99, 0x63, or a lone character
func DecodeCell(s string) (rune, error) {
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]

		if utf8.RuneCountInString(s) != 1 {
			return 0, errors.New("Invalid character literal")
		}

		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}

	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}

	value, err := DecodeCoord(s)

	if err != nil {
		return 0, errors.New("Invalid cell value")
	}

	return rune(value), nil
}
