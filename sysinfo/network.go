// Package sysinfo - Network reachability
package sysinfo

import (
	"context"
	"errors"
	"net"
	"path"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultPublicIPURL is queried for the public address.
	DefaultPublicIPURL = "https://api.ipify.org"
	// DefaultPublicIPTimeout bounds the public address lookup.
	DefaultPublicIPTimeout = 2 * time.Second

	// localProbeAddr is the destination used to make the kernel pick a
	// local route. Nothing is sent to it.
	localProbeAddr = "8.8.8.8:80"

	netDevPath   = "/proc/net/dev"
	sysClassNet  = "/sys/class/net"
	maxIPRespLen = 50
)

// NetworkProbe collects a NetworkInfo snapshot.
type NetworkProbe struct {
	src  *Source
	goos string

	// PublicIPURL is the "what is my IP" service.
	PublicIPURL string
	// PublicIPTimeout bounds the lookup.
	PublicIPTimeout time.Duration
	// SkipPublicIP reports N/A without contacting the service.
	SkipPublicIP bool

	localAddr string
}

// NewNetworkProbe returns a network probe using the default public IP
// service and timeout.
//
// Parameters:
//   - goos: A runtime.GOOS value selecting ifconfig ("darwin") or procfs interface enumeration
//   - src: Files, commands, dialer and logger the probe reads from
//
// Returns:
//   - A NetworkProbe whose exported fields may be adjusted before Collect
func NewNetworkProbe(goos string, src *Source) *NetworkProbe {
	return &NetworkProbe{
		src:             src,
		goos:            goos,
		PublicIPURL:     DefaultPublicIPURL,
		PublicIPTimeout: DefaultPublicIPTimeout,
		localAddr:       localProbeAddr,
	}
}

// Collect gathers hostname, local address, public address and interfaces.
func (p *NetworkProbe) Collect() *NetworkInfo {
	info := &NetworkInfo{
		Hostname: p.src.hostname(),
		LocalIP:  p.localIP(),
		PublicIP: p.publicIP(),
	}
	if p.goos == "darwin" {
		info.Interfaces = p.darwinInterfaces()
	} else {
		info.Interfaces = p.linuxInterfaces()
	}
	p.src.logger().Debug("network info collected",
		zap.String("local_ip", info.LocalIP),
		zap.String("public_ip", info.PublicIP),
		zap.Int("interfaces", len(info.Interfaces)),
	)
	return info
}

// localIP "connects" a UDP socket and reads back the local endpoint the
// kernel assigned. No datagram is sent.
func (p *NetworkProbe) localIP() string {
	if p.src.Dial == nil {
		p.src.degraded("local ip", errors.New("no dialer"))
		return Unknown
	}
	conn, err := p.src.Dial("udp", p.localAddr)
	if err != nil {
		p.src.degraded("local ip", err)
		return Unknown
	}
	defer func() { _ = conn.Close() }()

	ua, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || ua.IP == nil || ua.IP.IsUnspecified() {
		p.src.degraded("local ip", errors.New("no local udp address"))
		return Unknown
	}
	return ua.IP.String()
}

// publicIP fetches the public address with curl under a short deadline and
// accepts only a short, dotted-decimal looking answer. An expired deadline
// yields NotAvailable.
func (p *NetworkProbe) publicIP() string {
	if p.SkipPublicIP {
		return NotAvailable
	}
	timeout := p.PublicIPTimeout
	if timeout <= 0 {
		timeout = DefaultPublicIPTimeout
	}
	url := p.PublicIPURL
	if url == "" {
		url = DefaultPublicIPURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// -f keeps HTTP error bodies such as "429" out of the answer.
	maxTime := strconv.FormatFloat(timeout.Seconds(), 'f', -1, 64)
	out, err := p.src.runContext(ctx, "curl", "-sf", "--max-time", maxTime, url)
	if err != nil {
		p.src.degraded("public ip", err)
		return NotAvailable
	}
	ip := strings.TrimSpace(out)
	if !looksLikeIPv4(ip) {
		p.src.degraded("public ip", errors.New("unexpected response"))
		return NotAvailable
	}
	return ip
}

// looksLikeIPv4 reports whether s is non-empty, shorter than 50 bytes and
// made of digits and dots only.
func looksLikeIPv4(s string) bool {
	if s == "" || len(s) >= maxIPRespLen {
		return false
	}
	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// linuxInterfaces lists interfaces from /proc/net/dev and resolves each
// one's IPv4 address with `ip` and MAC/state from sysfs.
func (p *NetworkProbe) linuxInterfaces() []Interface {
	data, err := p.src.readFile(netDevPath)
	if err != nil {
		p.src.degraded("interfaces", err)
		return nil
	}

	var ifaces []Interface
	for _, name := range parseNetDevNames(data) {
		iface := Interface{Name: name, Loopback: name == "lo"}
		if out, err := p.src.run("ip", "-4", "addr", "show", "dev", name); err == nil {
			iface.IPv4 = parseIPAddrInet(out)
		} else {
			p.src.degraded("ipv4 "+name, err)
		}
		if mac, err := p.src.readFile(path.Join(sysClassNet, name, "address")); err == nil {
			iface.MAC = strings.TrimSpace(mac)
		}
		if state, err := p.src.readFile(path.Join(sysClassNet, name, "operstate")); err == nil {
			iface.Up = strings.TrimSpace(state) == "up"
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces
}

// parseNetDevNames returns interface names from /proc/net/dev: the text
// before the colon of every line after the two header lines.
func parseNetDevNames(data string) []string {
	var names []string
	for i, line := range strings.Split(data, "\n") {
		if i < 2 {
			continue
		}
		name, _, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// parseIPAddrInet returns the first IPv4 address in `ip addr show` output.
func parseIPAddrInet(out string) string {
	for _, line := range strings.Split(out, "\n") {
		_, rest, ok := strings.Cut(line, "inet ")
		if !ok {
			continue
		}
		rest = strings.TrimLeft(rest, " ")
		if end := strings.IndexAny(rest, "/ "); end >= 0 {
			rest = rest[:end]
		}
		if rest != "" {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// darwinInterfaces parses the output of a single ifconfig run.
func (p *NetworkProbe) darwinInterfaces() []Interface {
	out, err := p.src.run("ifconfig")
	if err != nil {
		p.src.degraded("interfaces", err)
		return nil
	}
	return parseIfconfig(out)
}

// parseIfconfig walks ifconfig output. A line starting at column zero opens
// a new interface; indented lines add inet/ether details to it. The open
// record is flushed at the next column-zero line and at end of input.
func parseIfconfig(out string) []Interface {
	var (
		ifaces []Interface
		cur    *Interface
	)
	flush := func() {
		if cur != nil {
			ifaces = append(ifaces, *cur)
			cur = nil
		}
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			flush()
			name, rest, ok := strings.Cut(line, ":")
			if !ok || name == "" {
				continue
			}
			cur = &Interface{
				Name:     name,
				Loopback: strings.HasPrefix(name, "lo"),
				Up:       hasFlag(rest, "UP"),
			}
			continue
		}
		if cur == nil {
			continue
		}
		if v, ok := tokenAfter(line, "inet "); ok && cur.IPv4 == "" {
			cur.IPv4 = v
		}
		if v, ok := tokenAfter(line, "ether "); ok && cur.MAC == "" {
			cur.MAC = v
		}
	}
	flush()
	return ifaces
}

// tokenAfter returns the text after marker up to the next space, or the
// rest of the line.
func tokenAfter(line, marker string) (string, bool) {
	_, rest, ok := strings.Cut(line, marker)
	if !ok {
		return "", false
	}
	rest = strings.TrimLeft(rest, " ")
	if end := strings.IndexByte(rest, ' '); end >= 0 {
		rest = rest[:end]
	}
	rest = strings.TrimSpace(rest)
	return rest, rest != ""
}

// hasFlag reports whether flag appears in an ifconfig "flags=8863<UP,...>"
// list.
func hasFlag(header, flag string) bool {
	_, rest, ok := strings.Cut(header, "<")
	if !ok {
		return false
	}
	list, _, _ := strings.Cut(rest, ">")
	for _, f := range strings.Split(list, ",") {
		if f == flag {
			return true
		}
	}
	return false
}
