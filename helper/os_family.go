package helper

import (
	"log/slog"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

var redhatFamilies = map[string]struct{}{
	"rhel":   {},
	"fedora": {},
}

// IsRedHatFamily reports whether the host belongs to the Red Hat OS family
// (RHEL, CentOS, Rocky, Alma, Oracle, Fedora). The katello-ca-consumer RPM
// only exists for this family.
func IsRedHatFamily() bool {
	platform, family, _, err := host.PlatformInformation()
	if err != nil {
		slog.Debug("failed to detect platform, falling back to /etc/os-release",
			slog.String("error", err.Error()))
		return osReleaseIsRedHat()
	}

	slog.Debug("detected platform", slog.String("platform", platform), slog.String("family", family))
	if _, ok := redhatFamilies[family]; ok {
		return true
	}
	return osReleaseIsRedHat()
}

func osReleaseIsRedHat() bool {
	if OSID() == "rhel" || OSID() == "fedora" {
		return true
	}
	for _, like := range strings.Fields(OSIDLike()) {
		if _, ok := redhatFamilies[like]; ok {
			return true
		}
	}
	return false
}
