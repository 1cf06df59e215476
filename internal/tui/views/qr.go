package views

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// halfBlocks is indexed by top<<1 | bottom.
var halfBlocks = [4]rune{' ', '▄', '▀', '█'}

// renderQR draws a QR code of content with half blocks, two module rows
// per text line, keeping the quiet zone so phones can scan it off a dark
// terminal.
func renderQR(content string) (string, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", err
	}
	bitmap := code.Bitmap()

	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		sb.WriteString("  ")
		for x := range bitmap[y] {
			i := 0
			if bitmap[y][x] {
				i |= 2
			}
			if y+1 < len(bitmap) && bitmap[y+1][x] {
				i |= 1
			}
			sb.WriteRune(halfBlocks[i])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
