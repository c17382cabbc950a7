package helper

import "testing"

func TestOSReleaseIsRedHat(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		idLike   string
		expected bool
	}{
		{"rhel", "rhel", "fedora", true},
		{"centos", "centos", "rhel fedora", true},
		{"rocky", "rocky", "rhel centos fedora", true},
		{"fedora", "fedora", "", true},
		{"ubuntu", "ubuntu", "debian", false},
		{"sles", "sles", "suse", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ID", tt.id)
			t.Setenv("ID_LIKE", tt.idLike)

			if got := osReleaseIsRedHat(); got != tt.expected {
				t.Errorf("osReleaseIsRedHat() = %t, expected %t for ID=%q ID_LIKE=%q",
					got, tt.expected, tt.id, tt.idLike)
			}
		})
	}
}
