// Package display renders a system snapshot next to the OS logo.
package display

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"sysfetch/ascii"
	"sysfetch/sysinfo"
)

const colorBold = "\033[1m"

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Config holds the independent display toggles.
type Config struct {
	Color   bool
	Logo    bool
	Network bool
	Compact bool
}

// DefaultConfig enables everything except compact mode.
func DefaultConfig() Config {
	return Config{Color: true, Logo: true, Network: true}
}

// Render writes the full report to w: the logo for sys.OSName beside the
// info lines when the logo is enabled, the info lines alone otherwise.
//
// Parameters:
//   - w: Destination of the report, usually stdout
//   - cfg: Display toggles (color, logo, network, compact)
//   - sys: System snapshot to report
//   - net: Network snapshot; may be nil, the network section then shows sentinel values
//
// Returns:
//   - An error if writing to w fails
func Render(w io.Writer, cfg Config, sys *sysinfo.SystemInfo, net *sysinfo.NetworkInfo) error {
	logo := ascii.Select(sys.OSName)
	info := InfoLines(cfg, logo.Color, sys, net)

	lines := info
	if cfg.Logo {
		lines = SideBySide(logo, info, cfg.Color)
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return bw.Flush()
}

// painter applies the accent color to labels when color is enabled.
type painter struct {
	color  bool
	accent string
}

func (p painter) paint(text string) string {
	if !p.color {
		return text
	}
	return colorBold + p.accent + text + ascii.ColorReset
}

func (p painter) label(name, value string) string {
	return p.paint(name) + ": " + value
}

// InfoLines builds the info column in its fixed order.
func InfoLines(cfg Config, accent string, sys *sysinfo.SystemInfo, net *sysinfo.NetworkInfo) []string {
	p := painter{color: cfg.Color, accent: accent}

	title := p.paint(sys.Username) + "@" + p.paint(sys.Hostname)
	lines := []string{
		title,
		strings.Repeat("-", VisibleWidth(title)),
		p.label("OS", osText(sys)),
		p.label("Kernel", sys.Kernel),
		p.label("Arch", sys.Arch),
		p.label("Uptime", FormatUptime(sys.Uptime)),
		p.label("Shell", shellText(sys)),
		p.label("Terminal", sys.Terminal),
		p.label("CPU", fmt.Sprintf("%s (%dC/%dT)", sys.CPUModel, sys.CPUCores, sys.CPUThreads)),
		p.label("Memory", FormatMemory(sys.Memory.Used, sys.Memory.Total)),
		p.label("Disk", FormatDisk(sys.Disk.Used, sys.Disk.Total)),
		p.label("Locale", sys.Locale),
	}

	if cfg.Network {
		if net == nil {
			net = &sysinfo.NetworkInfo{LocalIP: sysinfo.Unknown, PublicIP: sysinfo.NotAvailable}
		}
		if !cfg.Compact {
			lines = append(lines, "")
		}
		lines = append(lines,
			p.label("Local IP", net.LocalIP),
			p.label("Public IP", net.PublicIP),
		)
		if !cfg.Compact {
			for _, iface := range VisibleInterfaces(net.Interfaces) {
				lines = append(lines, p.label(iface.Name, iface.IPv4))
			}
		}
	}

	if !cfg.Compact {
		lines = append(lines, "")
		if cfg.Color {
			lines = append(lines, colorBar(40), colorBar(100))
		}
	}
	return lines
}

// VisibleInterfaces drops loopback interfaces and those without an IPv4
// address, keeping enumeration order.
func VisibleInterfaces(ifaces []sysinfo.Interface) []sysinfo.Interface {
	var out []sysinfo.Interface
	for _, iface := range ifaces {
		if iface.Loopback || iface.IPv4 == "" {
			continue
		}
		out = append(out, iface)
	}
	return out
}

func osText(sys *sysinfo.SystemInfo) string {
	v := sys.OSVersion
	if v == "" || v == sysinfo.Unknown || strings.Contains(sys.OSName, v) {
		return sys.OSName
	}
	return sys.OSName + " " + v
}

func shellText(sys *sysinfo.SystemInfo) string {
	if sys.ShellVersion == "" {
		return sys.Shell
	}
	return sys.Shell + " " + sys.ShellVersion
}

// colorBar renders eight background swatches starting at the given SGR code
// (40 for the standard colors, 100 for the bright ones).
func colorBar(base int) string {
	var b strings.Builder
	for bg := base; bg < base+8; bg++ {
		fmt.Fprintf(&b, "\033[%dm   ", bg)
	}
	b.WriteString(ascii.ColorReset)
	return b.String()
}
