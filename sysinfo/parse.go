// Package sysinfo - Text parsers for pseudo-files and command output
package sysinfo

import (
	"strconv"
	"strings"
)

// maxReadBytes bounds every file read and command output. Longer input is
// truncated; parsing is best-effort.
const maxReadBytes = 64 * 1024

// ParseKeyValue splits a "key: value" line at its first colon and trims both
// halves.
//
// Returns ok=false when the line has no colon or the key is empty.
func ParseKeyValue(line string) (key, value string, ok bool) {
	k, v, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	k = strings.TrimSpace(k)
	if k == "" {
		return "", "", false
	}
	return k, strings.TrimSpace(v), true
}

// ParseUintField parses the first whitespace-delimited token of a value as
// an unsigned integer. "16384000 kB" yields 16384000. Returns 0 on failure.
func ParseUintField(value string) uint64 {
	tokens := Fields(value)
	if len(tokens) == 0 {
		return 0
	}
	n, err := strconv.ParseUint(tokens[0], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// KeyValues parses every "key: value" line of blob. The first occurrence of
// a key wins; lines without a colon are skipped.
func KeyValues(blob string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(blob, "\n") {
		k, v, ok := ParseKeyValue(line)
		if !ok {
			continue
		}
		if _, seen := out[k]; !seen {
			out[k] = v
		}
	}
	return out
}

// Fields splits a line on runs of spaces and tabs.
func Fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r'
	})
}

// ExtractToken finds prefix in blob and returns the text that follows it up
// to the first space, newline, parenthesis or hyphen.
//
// Example: ExtractToken("GNU bash, version 5.2.15(1)-release", "version ")
// returns "5.2.15".
func ExtractToken(blob, prefix string) (string, bool) {
	i := strings.Index(blob, prefix)
	if i < 0 {
		return "", false
	}
	rest := blob[i+len(prefix):]
	if end := strings.IndexAny(rest, " \n\r()-"); end >= 0 {
		rest = rest[:end]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// ParseEnvFile parses KEY=value lines such as /etc/os-release. Values are
// de-quoted; blank lines and comments are skipped.
func ParseEnvFile(blob string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok || k == "" {
			continue
		}
		out[strings.TrimSpace(k)] = unquote(strings.TrimSpace(v))
	}
	return out
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// lineAt returns the n-th (zero-based) line of blob.
func lineAt(blob string, n int) (string, bool) {
	lines := strings.Split(blob, "\n")
	if n >= len(lines) {
		return "", false
	}
	return lines[n], true
}

// dfColumns reads total, used and available from the second line of df
// output. Values are multiplied by unit.
func dfColumns(out string, unit uint64) (Usage, bool) {
	row, ok := lineAt(out, 1)
	if !ok {
		return Usage{}, false
	}
	tokens := Fields(row)
	if len(tokens) < 4 {
		return Usage{}, false
	}
	total, err1 := strconv.ParseUint(tokens[1], 10, 64)
	used, err2 := strconv.ParseUint(tokens[2], 10, 64)
	avail, err3 := strconv.ParseUint(tokens[3], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Usage{}, false
	}
	return NewUsage(total*unit, used*unit, avail*unit), true
}
