// Package sysinfo collects a one-shot snapshot of the host: identity,
// resources and network reachability. Collection is best-effort: a field
// that cannot be determined carries a sentinel value instead of an error.
package sysinfo

// Sentinel values substituted for fields that could not be determined.
const (
	Unknown       = "Unknown"
	UnknownUser   = "unknown"
	NotAvailable  = "N/A"
	DefaultLocale = "C"
)

// SystemInfo represents the identity and resource snapshot of the host.
type SystemInfo struct {
	// Hostname is the node name reported by the kernel
	Hostname string

	// Username is the invoking user
	Username string

	// OSName is the display name of the operating system (e.g. "Ubuntu 22.04.3 LTS")
	OSName string

	// OSVersion is the operating system version string (e.g. "22.04", "14.2.1")
	OSVersion string

	// Kernel is the kernel release string
	Kernel string

	// Arch is the machine hardware name (e.g. "x86_64", "arm64")
	Arch string

	// Uptime is the time since boot in whole seconds
	Uptime uint64

	// Shell is the name of the login shell (final path segment of $SHELL)
	Shell string

	// ShellVersion is the shell's version, empty when it could not be extracted
	ShellVersion string

	// Terminal is the terminal program name
	Terminal string

	// CPUModel is the processor model string
	CPUModel string

	// CPUCores is the number of physical cores, at least 1
	CPUCores int

	// CPUThreads is the number of logical processors, at least 1
	CPUThreads int

	// Memory holds physical memory totals in bytes
	Memory Usage

	// Disk holds totals in bytes for the root filesystem
	Disk Usage

	// Locale is the configured locale
	Locale string
}

// NetworkInfo represents the network reachability snapshot of the host.
type NetworkInfo struct {
	Hostname   string
	LocalIP    string
	PublicIP   string
	Interfaces []Interface
}

// Interface is one network interface as reported by the enumeration source.
type Interface struct {
	Name string
	IPv4 string
	// IPv6 is reserved and currently always empty.
	IPv6     string
	MAC      string
	Up       bool
	Loopback bool
}

// Usage holds byte totals for a resource. Used never exceeds Total.
type Usage struct {
	Total     uint64
	Used      uint64
	Available uint64
}

// NewUsage builds a Usage from explicit columns, clamping used to total.
func NewUsage(total, used, available uint64) Usage {
	if used > total {
		used = total
	}
	return Usage{Total: total, Used: used, Available: available}
}

// UsageFromAvailable builds a Usage where used is total minus available,
// saturating at zero.
func UsageFromAvailable(total, available uint64) Usage {
	return Usage{Total: total, Used: saturatingSub(total, available), Available: available}
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// newSystemInfo returns a SystemInfo with every field set to its sentinel.
func newSystemInfo() *SystemInfo {
	return &SystemInfo{
		Hostname:   Unknown,
		Username:   UnknownUser,
		OSName:     Unknown,
		OSVersion:  Unknown,
		Kernel:     Unknown,
		Arch:       Unknown,
		Shell:      Unknown,
		Terminal:   Unknown,
		CPUModel:   Unknown,
		CPUCores:   1,
		CPUThreads: 1,
		Locale:     DefaultLocale,
	}
}
