// Package satellite builds the desired-state resources that hook a host's
// puppetserver up to a Satellite/Katello server: the satellite_pe_tools.yaml
// connection file, the `satellite` report processor registration, the
// optional Katello CA bootstrap and the optional trusted external command.
package satellite

import (
	"errors"
	"fmt"
	"net/url"

	"gopkg.in/yaml.v3"

	"gitea.obmondo.com/EnableIT/satellite-pe-tools/constant"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/pkg/resource"
)

// Settings are the operator-provided inputs for one convergence run.
type Settings struct {
	URL                    string
	VerifyCertificate      bool
	SSLCA                  string
	SSLCert                string
	SSLKey                 string
	ManageDefaultCACert    bool
	TrustedExternalCommand bool
}

// Config is written verbatim to satellite_pe_tools.yaml. SSLCA is either a
// path or the literal bool false, which the report processor reads as
// "do not verify".
type Config struct {
	URL     string `yaml:"url"`
	SSLCA   any    `yaml:"ssl_ca"`
	SSLCert string `yaml:"ssl_cert"`
	SSLKey  string `yaml:"ssl_key"`
}

// CACert resolves the effective ssl_ca value: the false sentinel when
// verification is off, an explicit path when one is given, the Katello
// default CA path otherwise.
func (s Settings) CACert() any {
	if !s.VerifyCertificate {
		return false
	}
	if s.SSLCA != "" {
		return s.SSLCA
	}
	return constant.DefaultCACertPath
}

// Config builds the record rendered into satellite_pe_tools.yaml.
func (s Settings) Config() Config {
	return Config{
		URL:     s.URL,
		SSLCA:   s.CACert(),
		SSLCert: s.SSLCert,
		SSLKey:  s.SSLKey,
	}
}

// Render serializes the config to YAML.
func (s Settings) Render() ([]byte, error) {
	return yaml.Marshal(s.Config())
}

// Hostname extracts the Satellite host from the configured URL.
func (s Settings) Hostname() (string, error) {
	parsed, err := url.Parse(s.URL)
	if err != nil {
		return "", fmt.Errorf("parsing satellite url %q: %w", s.URL, err)
	}
	if parsed.Hostname() == "" {
		return "", errors.New("satellite url has no hostname: " + s.URL)
	}
	return parsed.Hostname(), nil
}

// Resources returns the resource list for one run, already in apply order:
// the report registration and any CA bootstrap precede the YAML config
// write, the trusted external command pieces follow it.
func (s Settings) Resources(redhatFamily bool) ([]resource.Resource, error) {
	content, err := s.Render()
	if err != nil {
		return nil, err
	}

	resources := []resource.Resource{
		&resource.IniSubsetting{
			Path:     constant.PuppetConfig,
			Section:  constant.PuppetConfigSection,
			Key:      "reports",
			Subvalue: constant.SatelliteReportName,
		},
	}

	// The katello-ca-consumer RPM is only published for the Red Hat family.
	if redhatFamily && s.ManageDefaultCACert {
		resources = append(resources,
			&resource.Download{
				URL:      s.URL + constant.ConsumerRPMPath,
				Path:     constant.ConsumerRPMDownload,
				Creates:  constant.KatelloServerCACert,
				Insecure: true,
			},
			&resource.Package{
				Source:  constant.ConsumerRPMDownload,
				Creates: constant.KatelloServerCACert,
			},
			&resource.Symlink{
				Path:   constant.DefaultCACertPath,
				Target: constant.KatelloServerCACert,
			},
		)
	}

	resources = append(resources, &resource.File{
		Path:    constant.SatelliteConfigFile,
		Content: content,
		Mode:    0o644,
		Owner:   constant.PuppetUser,
		Group:   constant.PuppetGroup,
	})

	if s.TrustedExternalCommand {
		resources = append(resources,
			&resource.Directory{
				Path: constant.TrustedExternalDir,
				Mode: 0o755,
			},
			&resource.IniSetting{
				Path:    constant.PuppetConfig,
				Section: constant.PuppetConfigSection,
				Key:     constant.TrustedExternalSetting,
				Value:   constant.TrustedExternalDir,
			},
			&resource.File{
				Path:    constant.TrustedExternalDir + "/" + constant.SatelliteReportName,
				Content: []byte(trustedExternalScript),
				Mode:    0o755,
			},
		)
	}

	return resources, nil
}
