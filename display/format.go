// Package display - Formatting utilities
package display

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	mib = 1024 * 1024
	gib = 1024 * 1024 * 1024
)

// FormatUptime renders whole seconds with the coarsest non-zero unit leading.
//
// Parameters:
//   - seconds: Time since boot in whole seconds
//
// Returns:
//   - "D days, H hours, M mins", "H hours, M mins" or "M mins"
//
// Example: FormatUptime(90000) returns "1 days, 1 hours, 0 mins"
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	mins := seconds % 3600 / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%d days, %d hours, %d mins", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%d hours, %d mins", hours, mins)
	default:
		return fmt.Sprintf("%d mins", mins)
	}
}

// Percent returns used*100/total truncated toward zero, or 0 when total is 0.
func Percent(used, total uint64) uint64 {
	if total == 0 {
		return 0
	}
	if used > total {
		used = total
	}
	return used * 100 / total
}

// FormatMemory renders used/total bytes in MiB with a usage percentage.
//
// Example: FormatMemory(1572864000, 17179869184) returns "1500 MiB / 16384 MiB (9%)"
func FormatMemory(used, total uint64) string {
	return formatUsage(used, total, mib, "MiB")
}

// FormatDisk renders used/total bytes in GiB with a usage percentage.
func FormatDisk(used, total uint64) string {
	return formatUsage(used, total, gib, "GiB")
}

func formatUsage(used, total, unit uint64, suffix string) string {
	return fmt.Sprintf("%d %s / %d %s (%d%%)", used/unit, suffix, total/unit, suffix, Percent(used, total))
}

// VisibleWidth returns the display width of s, ignoring ANSI escape codes.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// PadRight pads a string with spaces to reach a minimum display width.
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
