// Package sysinfo - Shell detection
package sysinfo

import (
	"errors"
	"path"
)

// shellVersionPrefix maps a shell name to the phrase that precedes the
// version number in `<shell> --version` output. Shells without an entry are
// reported by name only.
func shellVersionPrefix(name string) (string, bool) {
	switch name {
	case "bash":
		return "version ", true // GNU bash, version 5.2.15(1)-release
	case "zsh":
		return "zsh ", true // zsh 5.9 (x86_64-pc-linux-gnu)
	case "fish":
		return "fish, version ", true // fish, version 3.6.1
	}
	return "", false
}

// getShell returns the shell name from $SHELL and, when it can be
// extracted, its version.
func getShell(src *Source) (name, version string) {
	shellPath := src.env("SHELL")
	if shellPath == "" {
		src.degraded("shell", errors.New("SHELL not set"))
		return Unknown, ""
	}
	name = path.Base(shellPath)
	if name == "" || name == "/" || name == "." {
		return Unknown, ""
	}

	prefix, ok := shellVersionPrefix(name)
	if !ok {
		return name, ""
	}
	out, err := src.run(shellPath, "--version")
	if err != nil {
		src.degraded("shell version", err)
		return name, ""
	}
	version, ok = ExtractToken(out, prefix)
	if !ok {
		return name, ""
	}
	return name, version
}
