package constant

const (
	// Puppet
	PuppetConfig        = "/etc/puppetlabs/puppet/puppet.conf"
	PuppetConfigSection = "master"
	PuppetServerService = "pe-puppetserver"
	PuppetUser          = "pe-puppet"
	PuppetGroup         = "pe-puppet"

	// Satellite
	SatelliteConfigFile    = "/etc/puppetlabs/puppet/satellite_pe_tools.yaml"
	SatelliteReportName    = "satellite"
	DefaultCACertPath      = "/etc/puppetlabs/puppet/ssl/ca/katello-default-ca.crt"
	KatelloServerCACert    = "/etc/rhsm/ca/katello-server-ca.pem"
	ConsumerRPMPath        = "/pub/katello-ca-consumer-latest.noarch.rpm"
	ConsumerRPMDownload    = "/tmp/katello-ca-consumer-latest.noarch.rpm"
	TrustedExternalDir     = "/etc/puppetlabs/puppet/trusted-external-commands"
	TrustedExternalSetting = "trusted_external_command"
	SatellitePort          = "443"

	// node_exporter textfile collector
	MetricsDir           = "/var/lib/node_exporter"
	ConvergeMetricsFile  = MetricsDir + "/satellite_pe_tools.prom"
	ReachableMetricsFile = MetricsDir + "/satellite_reachable.prom"

	// Cobra Flags
	CobraFlagDebug               = "debug"
	CobraFlagNoop                = "noop"
	CobraFlagAssumeYes           = "assume-yes"
	CobraFlagSatelliteURL        = "satellite-url"
	CobraFlagVerifyCertificate   = "verify-satellite-certificate"
	CobraFlagSSLCA               = "ssl-ca"
	CobraFlagSSLCert             = "ssl-cert"
	CobraFlagSSLKey              = "ssl-key"
	CobraFlagManageDefaultCACert = "manage-default-ca-cert"
	CobraFlagTrustedExternalCmd  = "trusted-external-command"
)
