// Package sysinfo - macOS-specific implementation
package sysinfo

import (
	"errors"
	"strconv"
	"strings"

	"howett.net/plist"
)

const (
	systemVersionPlist = "/System/Library/CoreServices/SystemVersion.plist"
	defaultPageSize    = 4096
)

type darwinProbe struct {
	src *Source
}

// Collect gathers system information from sw_vers, sysctl, vm_stat and df.
func (p *darwinProbe) Collect() *SystemInfo {
	info := newSystemInfo()
	collectCommon(p.src, info)

	info.OSVersion = p.productVersion()
	info.OSName = macOSName(info.OSVersion)
	info.Uptime = p.uptime()
	info.CPUModel, info.CPUCores, info.CPUThreads = p.cpu()
	info.Memory = p.memory()
	info.Disk = p.disk()

	return info
}

// productVersion asks sw_vers first and falls back to SystemVersion.plist.
func (p *darwinProbe) productVersion() string {
	if out, err := p.src.run("sw_vers", "-productVersion"); err == nil {
		if v := strings.TrimSpace(out); v != "" {
			return v
		}
	} else {
		p.src.degraded("os version", err)
	}

	data, err := p.src.readFile(systemVersionPlist)
	if err != nil {
		p.src.degraded("os version", err)
		return Unknown
	}
	var sv struct {
		ProductVersion string `plist:"ProductVersion"`
	}
	if _, err := plist.Unmarshal([]byte(data), &sv); err != nil {
		p.src.degraded("os version", err)
		return Unknown
	}
	return orDefault(strings.TrimSpace(sv.ProductVersion), Unknown)
}

// macOSName maps the major version to its product name.
func macOSName(version string) string {
	major, _, _ := strings.Cut(version, ".")
	switch major {
	case "10":
		return "Mac OS X"
	case "11":
		return "macOS Big Sur"
	case "12":
		return "macOS Monterey"
	case "13":
		return "macOS Ventura"
	case "14":
		return "macOS Sonoma"
	case "15":
		return "macOS Sequoia"
	}
	return "macOS"
}

// sysctl returns the trimmed value of a single sysctl key.
func (p *darwinProbe) sysctl(key string) (string, bool) {
	out, err := p.src.run("sysctl", "-n", key)
	if err != nil {
		p.src.degraded(key, err)
		return "", false
	}
	v := strings.TrimSpace(out)
	return v, v != ""
}

func (p *darwinProbe) sysctlUint(key string) uint64 {
	v, ok := p.sysctl(key)
	if !ok {
		return 0
	}
	return ParseUintField(v)
}

// uptime derives seconds since boot from kern.boottime, which prints as
// "{ sec = 1700000000, usec = 0 } Tue Nov 14 22:13:20 2023".
func (p *darwinProbe) uptime() uint64 {
	v, ok := p.sysctl("kern.boottime")
	if !ok {
		return 0
	}
	_, rest, found := strings.Cut(v, "sec = ")
	if !found {
		p.src.degraded("uptime", errors.New("unexpected kern.boottime format"))
		return 0
	}
	digits, _, _ := strings.Cut(rest, ",")
	boot, err := strconv.ParseInt(strings.TrimSpace(digits), 10, 64)
	if err != nil {
		p.src.degraded("uptime", err)
		return 0
	}
	now := p.src.now().Unix()
	if boot <= 0 || boot > now {
		return 0
	}
	return uint64(now - boot)
}

func (p *darwinProbe) cpu() (model string, cores, threads int) {
	model = Unknown
	if v, ok := p.sysctl("machdep.cpu.brand_string"); ok {
		model = v
	}
	cores = int(p.sysctlUint("hw.physicalcpu"))
	threads = int(p.sysctlUint("hw.logicalcpu"))
	cores, threads = clampCPU(cores, threads)
	return model, cores, threads
}

// memory combines hw.memsize with the free and inactive page counts from
// vm_stat.
func (p *darwinProbe) memory() Usage {
	total := p.sysctlUint("hw.memsize")
	if total == 0 {
		return Usage{}
	}
	out, err := p.src.run("vm_stat")
	if err != nil {
		p.src.degraded("memory", err)
		return UsageFromAvailable(total, 0)
	}
	return UsageFromAvailable(total, vmStatAvailable(out))
}

// vmStatAvailable returns (free + inactive) pages times the page size
// announced in the vm_stat header.
func vmStatAvailable(out string) uint64 {
	pageSize := uint64(defaultPageSize)
	if tok, ok := ExtractToken(out, "page size of "); ok {
		if n, err := strconv.ParseUint(tok, 10, 64); err == nil && n > 0 {
			pageSize = n
		}
	}

	var free, inactive uint64
	for _, line := range strings.Split(out, "\n") {
		k, v, ok := ParseKeyValue(line)
		if !ok {
			continue
		}
		switch k {
		case "Pages free":
			free = ParseUintField(strings.TrimSuffix(v, "."))
		case "Pages inactive":
			inactive = ParseUintField(strings.TrimSuffix(v, "."))
		}
	}
	return (free + inactive) * pageSize
}

// disk reads the root filesystem totals from `df -k /`.
func (p *darwinProbe) disk() Usage {
	out, err := p.src.run("df", "-k", "/")
	if err != nil {
		p.src.degraded("disk", err)
		return Usage{}
	}
	u, ok := dfColumns(out, 1024)
	if !ok {
		p.src.degraded("disk", errors.New("unexpected df output"))
		return Usage{}
	}
	return u
}
