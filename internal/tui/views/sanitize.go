package views

import (
	"strings"
	"unicode"
)

// unmeasured holds the runes tcell gets the width of wrong: the zero width
// joiner, variation selectors and emoji skin tone modifiers.
var unmeasured = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200d, Hi: 0x200d, Stride: 1},
		{Lo: 0xfe00, Hi: 0xfe0f, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f3fb, Hi: 0x1f3ff, Stride: 1},
		{Lo: 0xe0100, Hi: 0xe01ef, Stride: 1},
	},
}

// cellText flattens free text such as notes and email bodies to one table
// line. Line breaks and tabs become single spaces.
func cellText(s string) string {
	flat := strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r), unicode.Is(unmeasured, r):
			return -1
		}
		return r
	}, s)
	for strings.Contains(flat, "  ") {
		flat = strings.ReplaceAll(flat, "  ", " ")
	}
	return flat
}
