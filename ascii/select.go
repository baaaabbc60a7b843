package ascii

import "strings"

// rule maps a set of keywords to a logo. A rule matches when any keyword is
// contained in the lower-cased OS name.
type rule struct {
	keywords []string
	logo     *Logo
}

// rules is evaluated top to bottom and the first match wins. Derivatives
// come before the distribution whose keyword they also contain
// ("Linux Mint ... Ubuntu", "openSUSE" vs "suse").
var rules = []rule{
	{[]string{"mac os", "macos", "darwin"}, &logoMacOS},
	{[]string{"opensuse", "tumbleweed", "leap"}, &logoOpenSUSE},
	{[]string{"suse", "sles"}, &logoSUSE},
	{[]string{"mint"}, &logoMint},
	{[]string{"pop!_os", "pop_os", "pop os"}, &logoPop},
	{[]string{"ubuntu"}, &logoUbuntu},
	{[]string{"kali"}, &logoKali},
	{[]string{"debian"}, &logoDebian},
	{[]string{"manjaro"}, &logoManjaro},
	{[]string{"endeavour"}, &logoEndeavour},
	{[]string{"arch"}, &logoArch},
	{[]string{"centos", "rocky", "alma"}, &logoCentOS},
	{[]string{"red hat", "rhel"}, &logoRedHat},
	{[]string{"fedora"}, &logoFedora},
	{[]string{"gentoo"}, &logoGentoo},
	{[]string{"alpine"}, &logoAlpine},
	{[]string{"nixos"}, &logoNixOS},
}

func (r rule) matches(name string) bool {
	for _, k := range r.keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

// Select returns the logo for a free-text OS display name.
//
// Parameters:
//   - osName: OS display name such as "Ubuntu 22.04.3 LTS" or "macOS Sonoma"
//
// Returns:
//   - The logo of the first rule with a keyword contained in the lower-cased
//     name, or the generic Linux logo when none matches
func Select(osName string) Logo {
	name := strings.ToLower(osName)
	for _, r := range rules {
		if r.matches(name) {
			return *r.logo
		}
	}
	return logoLinux
}
