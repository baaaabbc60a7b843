// Package sysinfo - Linux-specific implementation
package sysinfo

import (
	"errors"
	"strconv"
	"strings"
)

const (
	osReleasePath = "/etc/os-release"
	uptimePath    = "/proc/uptime"
	cpuinfoPath   = "/proc/cpuinfo"
	meminfoPath   = "/proc/meminfo"
)

type linuxProbe struct {
	src *Source
}

// Collect gathers system information from procfs, /etc/os-release and df.
func (p *linuxProbe) Collect() *SystemInfo {
	info := newSystemInfo()
	collectCommon(p.src, info)

	info.OSName, info.OSVersion = p.osRelease()
	info.Uptime = p.uptime()
	info.CPUModel, info.CPUCores, info.CPUThreads = p.cpu()
	info.Memory = p.memory()
	info.Disk = p.disk()

	return info
}

// osRelease returns PRETTY_NAME and VERSION_ID, defaulting to
// ("Linux", "Unknown").
func (p *linuxProbe) osRelease() (name, version string) {
	name, version = "Linux", Unknown
	data, err := p.src.readFile(osReleasePath)
	if err != nil {
		p.src.degraded("os", err)
		return name, version
	}
	kv := ParseEnvFile(data)
	if v := kv["PRETTY_NAME"]; v != "" {
		name = v
	} else if v := kv["NAME"]; v != "" {
		name = v
	}
	if v := kv["VERSION_ID"]; v != "" {
		version = v
	}
	return name, version
}

// uptime reads the integer part of the first field of /proc/uptime.
func (p *linuxProbe) uptime() uint64 {
	data, err := p.src.readFile(uptimePath)
	if err != nil {
		p.src.degraded("uptime", err)
		return 0
	}
	tokens := Fields(strings.TrimSpace(data))
	if len(tokens) == 0 {
		p.src.degraded("uptime", errors.New("empty uptime file"))
		return 0
	}
	whole, _, _ := strings.Cut(tokens[0], ".")
	secs, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		p.src.degraded("uptime", err)
		return 0
	}
	return secs
}

// cpu returns the first model name, the "cpu cores" value and the number
// of processor entries. The file is scanned line by line so hosts with
// hundreds of processors are counted in full.
func (p *linuxProbe) cpu() (model string, cores, threads int) {
	model = Unknown
	modelSeen, coresSeen := false, false
	err := p.src.scanLines(cpuinfoPath, func(line string) {
		k, v, ok := ParseKeyValue(line)
		if !ok {
			return
		}
		switch k {
		case "model name":
			if !modelSeen && v != "" {
				model, modelSeen = v, true
			}
		case "cpu cores":
			if !coresSeen {
				cores, coresSeen = int(ParseUintField(v)), true
			}
		case "processor":
			threads++
		}
	})
	if err != nil {
		p.src.degraded("cpu", err)
		if threads == 0 {
			return model, 1, 1
		}
	}
	cores, threads = clampCPU(cores, threads)
	return model, cores, threads
}

// memory reads MemTotal and MemAvailable (or MemFree+Buffers+Cached on
// kernels without MemAvailable). Values are in kB.
func (p *linuxProbe) memory() Usage {
	data, err := p.src.readFile(meminfoPath)
	if err != nil {
		p.src.degraded("memory", err)
		return Usage{}
	}
	kv := KeyValues(data)
	total := ParseUintField(kv["MemTotal"]) * 1024

	var avail uint64
	if v, ok := kv["MemAvailable"]; ok {
		avail = ParseUintField(v) * 1024
	} else {
		avail = (ParseUintField(kv["MemFree"]) +
			ParseUintField(kv["Buffers"]) +
			ParseUintField(kv["Cached"])) * 1024
	}
	return UsageFromAvailable(total, avail)
}

// disk reads the root filesystem totals from `df -B1 /`.
func (p *linuxProbe) disk() Usage {
	out, err := p.src.run("df", "-B1", "/")
	if err != nil {
		p.src.degraded("disk", err)
		return Usage{}
	}
	u, ok := dfColumns(out, 1)
	if !ok {
		p.src.degraded("disk", errors.New("unexpected df output"))
		return Usage{}
	}
	return u
}
