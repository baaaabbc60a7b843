package display

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"sysfetch/ascii"
	"sysfetch/sysinfo"
)

func testSystem() *sysinfo.SystemInfo {
	return &sysinfo.SystemInfo{
		Hostname:     "box",
		Username:     "alice",
		OSName:       "Ubuntu 22.04.3 LTS",
		OSVersion:    "22.04",
		Kernel:       "6.5.0-14-generic",
		Arch:         "x86_64",
		Uptime:       3661,
		Shell:        "bash",
		ShellVersion: "5.2.15",
		Terminal:     "xterm-256color",
		CPUModel:     "Intel(R) Core(TM) i7-8550U",
		CPUCores:     4,
		CPUThreads:   8,
		Memory:       sysinfo.Usage{Total: 17179869184, Used: 1572864000},
		Disk:         sysinfo.Usage{Total: 100 * gib, Used: 25 * gib},
		Locale:       "en_US.UTF-8",
	}
}

func testNetwork() *sysinfo.NetworkInfo {
	return &sysinfo.NetworkInfo{
		Hostname: "box",
		LocalIP:  "10.0.0.5",
		PublicIP: "203.0.113.7",
		Interfaces: []sysinfo.Interface{
			{Name: "lo", IPv4: "127.0.0.1", Loopback: true, Up: true},
			{Name: "eth0", IPv4: "10.0.0.5", Up: true},
			{Name: "docker0"},
			{Name: "wlan0", IPv4: "192.168.1.9", Up: true},
		},
	}
}

func TestInfoLinesPlain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = false
	got := InfoLines(cfg, ascii.ColorRed, testSystem(), testNetwork())
	want := []string{
		"alice@box",
		"---------",
		"OS: Ubuntu 22.04.3 LTS",
		"Kernel: 6.5.0-14-generic",
		"Arch: x86_64",
		"Uptime: 1 hours, 1 mins",
		"Shell: bash 5.2.15",
		"Terminal: xterm-256color",
		"CPU: Intel(R) Core(TM) i7-8550U (4C/8T)",
		"Memory: 1500 MiB / 16384 MiB (9%)",
		"Disk: 25 GiB / 100 GiB (25%)",
		"Locale: en_US.UTF-8",
		"",
		"Local IP: 10.0.0.5",
		"Public IP: 203.0.113.7",
		"eth0: 10.0.0.5",
		"wlan0: 192.168.1.9",
		"",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InfoLines =\n%q\nwant\n%q", got, want)
	}
}

func TestInfoLinesVersionAndShellVariants(t *testing.T) {
	sys := testSystem()
	sys.OSName = "macOS Sonoma"
	sys.OSVersion = "14.2.1"
	sys.ShellVersion = ""
	cfg := Config{}
	got := InfoLines(cfg, ascii.ColorGreen, sys, nil)
	if got[2] != "OS: macOS Sonoma 14.2.1" {
		t.Errorf("OS line = %q", got[2])
	}
	if got[6] != "Shell: bash" {
		t.Errorf("Shell line = %q", got[6])
	}

	sys.OSVersion = sysinfo.Unknown
	if got := InfoLines(cfg, ascii.ColorGreen, sys, nil)[2]; got != "OS: macOS Sonoma" {
		t.Errorf("OS line with unknown version = %q", got)
	}
}

func TestInfoLinesNetworkDisabled(t *testing.T) {
	cfg := Config{Logo: true}
	got := InfoLines(cfg, ascii.ColorRed, testSystem(), testNetwork())
	if len(got) != 13 {
		t.Fatalf("len = %d; want 13: %q", len(got), got)
	}
	for _, line := range got {
		if strings.Contains(line, "IP") {
			t.Fatalf("network line present: %q", line)
		}
	}
}

func TestInfoLinesNilNetwork(t *testing.T) {
	cfg := Config{Network: true}
	got := InfoLines(cfg, ascii.ColorRed, testSystem(), nil)
	if got[13] != "Local IP: Unknown" || got[14] != "Public IP: N/A" {
		t.Fatalf("network section = %q", got[12:])
	}
}

func TestInfoLinesCompact(t *testing.T) {
	cfg := Config{Network: true, Compact: true}
	got := InfoLines(cfg, ascii.ColorRed, testSystem(), testNetwork())
	if len(got) != 14 {
		t.Fatalf("len = %d; want 14: %q", len(got), got)
	}
	for _, line := range got {
		if line == "" || strings.HasPrefix(line, "eth0") {
			t.Fatalf("compact output contains %q", line)
		}
	}
}

func TestNoEscapesWithoutColor(t *testing.T) {
	for _, compact := range []bool{false, true} {
		cfg := Config{Logo: true, Network: true, Compact: compact}
		var buf bytes.Buffer
		if err := Render(&buf, cfg, testSystem(), testNetwork()); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if strings.Contains(buf.String(), "\x1b") {
			t.Fatalf("escape sequence in uncolored output (compact=%v):\n%s", compact, buf.String())
		}
	}
}

func TestInfoLinesColor(t *testing.T) {
	got := InfoLines(DefaultConfig(), ascii.ColorRed, testSystem(), testNetwork())
	wantOS := "\x1b[1m\x1b[31mOS\x1b[0m: Ubuntu 22.04.3 LTS"
	if got[2] != wantOS {
		t.Errorf("OS line = %q; want %q", got[2], wantOS)
	}
	if VisibleWidth(got[0]) != len("alice@box") || got[1] != "---------" {
		t.Errorf("title/separator = %q / %q", got[0], got[1])
	}
	n := len(got)
	if !strings.Contains(got[n-2], "\x1b[40m") || !strings.Contains(got[n-1], "\x1b[107m") {
		t.Errorf("palette lines = %q, %q", got[n-2], got[n-1])
	}
	if strings.Count(got[n-1], "   ") != 8 {
		t.Errorf("palette swatches = %d; want 8", strings.Count(got[n-1], "   "))
	}
}

func TestVisibleInterfaces(t *testing.T) {
	got := VisibleInterfaces(testNetwork().Interfaces)
	if len(got) != 2 || got[0].Name != "eth0" || got[1].Name != "wlan0" {
		t.Fatalf("VisibleInterfaces = %+v", got)
	}
}

func TestRenderWithoutLogo(t *testing.T) {
	cfg := Config{Network: true}
	var buf bytes.Buffer
	if err := Render(&buf, cfg, testSystem(), testNetwork()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := strings.Join(InfoLines(cfg, "", testSystem(), testNetwork()), "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("Render =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRenderWithLogo(t *testing.T) {
	cfg := Config{Logo: true, Network: true}
	var buf bytes.Buffer
	if err := Render(&buf, cfg, testSystem(), testNetwork()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	logo := ascii.Select("Ubuntu")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	info := InfoLines(cfg, "", testSystem(), testNetwork())
	if want := max(len(logo.Lines), len(info)); len(lines) != want {
		t.Fatalf("rendered %d lines; want %d", len(lines), want)
	}
	if want := PadRight(logo.Lines[0], logo.Width) + "   alice@box"; lines[0] != want {
		t.Fatalf("first line = %q; want %q", lines[0], want)
	}
}
