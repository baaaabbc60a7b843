// Package sysinfo - Platform probe selection and shared collectors
package sysinfo

import (
	"runtime"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Probe gathers a SystemInfo snapshot for one operating-system family.
type Probe interface {
	Collect() *SystemInfo
}

// NewProbe selects the probe for an operating-system family. The choice is
// made once per run; there is no fallback between families.
//
// Parameters:
//   - goos: A runtime.GOOS value; "darwin" gets the macOS probe, anything else the Linux probe
//   - src: Files, commands and environment the probe reads from
//
// Returns:
//   - A Probe whose Collect never fails
func NewProbe(goos string, src *Source) Probe {
	if goos == "darwin" {
		return &darwinProbe{src: src}
	}
	return &linuxProbe{src: src}
}

// GetSystemInfo collects a snapshot of the running host.
//
// This is the main entry point for gathering all system details; it never
// fails, unresolved fields carry sentinel values.
func GetSystemInfo(src *Source) *SystemInfo {
	info := NewProbe(runtime.GOOS, src).Collect()
	src.logger().Debug("system info collected",
		zap.String("os", info.OSName),
		zap.String("kernel", info.Kernel),
		zap.Uint64("uptime_seconds", info.Uptime),
		zap.String("memory_total", humanize.IBytes(info.Memory.Total)),
		zap.String("disk_total", humanize.IBytes(info.Disk.Total)),
	)
	return info
}

// collectCommon fills the fields that both families read the same way.
func collectCommon(src *Source, info *SystemInfo) {
	src.hostIdentity(info)
	info.Username = getUsername(src)
	info.Shell, info.ShellVersion = getShell(src)
	info.Terminal = getTerminal(src)
	info.Locale = getLocale(src)
}

func getUsername(src *Source) string {
	return orDefault(src.env("USER", "LOGNAME"), UnknownUser)
}

func getTerminal(src *Source) string {
	return orDefault(src.env("TERM_PROGRAM", "TERMINAL", "TERM"), Unknown)
}

func getLocale(src *Source) string {
	return orDefault(src.env("LANG", "LC_ALL"), DefaultLocale)
}

// clampCPU applies the core/thread defaults: cores fall back to threads and
// both are at least 1.
func clampCPU(cores, threads int) (int, int) {
	if threads < 1 {
		threads = 1
	}
	if cores < 1 {
		cores = threads
	}
	return cores, threads
}
