package display

import (
	"strings"

	"sysfetch/ascii"
)

// gapSize is the number of spaces between the logo column and the info column.
const gapSize = 3

// SideBySide merges logo and info into max(len(logo.Lines), len(info)) rows.
//
// Parameters:
//   - logo: Art lines and the declared column width to pad them to
//   - info: Info lines, possibly containing ANSI color codes
//   - color: Whether to wrap the art text in the logo's accent color
//
// Returns:
//   - One string per row: the padded logo column (blanks once the logo is
//     exhausted), the gap, then the info line if any
func SideBySide(logo ascii.Logo, info []string, color bool) []string {
	rows := max(len(logo.Lines), len(info))
	gap := strings.Repeat(" ", gapSize)
	out := make([]string, 0, rows)

	for i := 0; i < rows; i++ {
		var logoCol string
		if i < len(logo.Lines) {
			line := logo.Lines[i]
			logoCol = PadRight(line, logo.Width)
			if color {
				logoCol = logo.Color + line + ascii.ColorReset + logoCol[len(line):]
			}
		} else {
			logoCol = strings.Repeat(" ", logo.Width)
		}

		var infoLine string
		if i < len(info) {
			infoLine = info[i]
		}
		out = append(out, logoCol+gap+infoLine)
	}
	return out
}
