package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadLength reports a puzzle line that is not exactly 81 characters.
var ErrBadLength = errors.New("puzzle line must be exactly 81 characters")

// ParseLine builds a Board from an 81-character row-major line.
// '1'-'9' are givens and become fixed cells; any other character
// (conventionally '.' or '0') is an empty cell. A trailing newline is
// tolerated so lines read straight from a file work unchanged.
func ParseLine(line string) (*Board, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) != 81 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, len(line))
	}
	b := &Board{}
	for i := 0; i < 81; i++ {
		if ch := line[i]; ch >= '1' && ch <= '9' {
			b.Values[i/9][i%9] = ch - '0'
			b.Fixed[i/9][i%9] = true
		}
	}
	return b, nil
}

// Line renders the board as an 81-character row-major string, '.' for
// empty cells. A solved board yields a pure digit string.
func (b *Board) Line() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// String renders the board as a multi-line text grid with box
// separators, for console display.
//
//	 -----------------------
//	| 4 8 . | 3 . . | . . . |
//	...
func (b *Board) String() string {
	rule := " " + strings.Repeat("-", 23) + "\n"
	var sb strings.Builder
	sb.WriteString(rule)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c == 0 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			sb.WriteByte(' ')
			if c%3 == 2 {
				sb.WriteString("| ")
			}
		}
		sb.WriteByte('\n')
		if r%3 == 2 {
			sb.WriteString(rule)
		}
	}
	return sb.String()
}
