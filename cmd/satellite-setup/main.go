package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gitea.obmondo.com/EnableIT/satellite-pe-tools/config"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/constant"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/helper/logger"
)

var Version string

var (
	debugFlag        bool
	noopFlag         bool
	assumeYesFlag    bool
	satelliteURLFlag string
	verifyCertFlag   bool
	sslCAFlag        string
	sslCertFlag      string
	sslKeyFlag       string
	manageCAFlag     bool
	trustedCmdFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "satellite-setup",
	Short: "Configure a host to submit puppet run reports to Satellite",
	Long:  "Configures the local puppetserver to forward puppet agent run reports to a Satellite/Katello server",
	Example: `
	$ satellite-setup configure --satellite-url https://sat.example.com
	$ satellite-setup configure --satellite-url https://sat.example.com --trusted-external-command
	$ satellite-setup check --satellite-url https://sat.example.com
	`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.InitLogger(config.IsDebug())

		// Print version first
		slog.Info("satellite-setup", slog.String("version", cmd.Root().Version))

		if config.GetSatelliteURL() == "" {
			slog.Error("the --satellite-url flag is required")
			cmd.Help()
			os.Exit(1)
		}
	},
}

func init() {
	v := config.GetViperInstance()

	rootCmd.PersistentFlags().BoolVar(&debugFlag, constant.CobraFlagDebug, false, "Enable debug logs")
	rootCmd.PersistentFlags().BoolVar(&noopFlag, constant.CobraFlagNoop, false, "Report drift without changing anything")
	rootCmd.PersistentFlags().BoolVar(&assumeYesFlag, constant.CobraFlagAssumeYes, false, "Do not prompt for confirmation")
	rootCmd.PersistentFlags().StringVar(&satelliteURLFlag, constant.CobraFlagSatelliteURL, "", "Satellite server URL (required)")
	rootCmd.PersistentFlags().BoolVar(&verifyCertFlag, constant.CobraFlagVerifyCertificate, true, "Verify the Satellite server certificate when submitting reports")
	rootCmd.PersistentFlags().StringVar(&sslCAFlag, constant.CobraFlagSSLCA, "", "CA certificate used to verify the Satellite server")
	rootCmd.PersistentFlags().StringVar(&sslCertFlag, constant.CobraFlagSSLCert, "", "Client certificate for the Satellite API")
	rootCmd.PersistentFlags().StringVar(&sslKeyFlag, constant.CobraFlagSSLKey, "", "Client key for the Satellite API")
	rootCmd.PersistentFlags().BoolVar(&manageCAFlag, constant.CobraFlagManageDefaultCACert, true, "Install the Katello default CA certificate (Red Hat family only)")
	rootCmd.PersistentFlags().BoolVar(&trustedCmdFlag, constant.CobraFlagTrustedExternalCmd, false, "Install the satellite trusted external command")

	// Bind flags to viper
	for _, flag := range []string{
		constant.CobraFlagDebug,
		constant.CobraFlagNoop,
		constant.CobraFlagAssumeYes,
		constant.CobraFlagSatelliteURL,
		constant.CobraFlagVerifyCertificate,
		constant.CobraFlagSSLCA,
		constant.CobraFlagSSLCert,
		constant.CobraFlagSSLKey,
		constant.CobraFlagManageDefaultCACert,
		constant.CobraFlagTrustedExternalCmd,
	} {
		v.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag))
		v.BindEnv(flag)
	}
}

func main() {
	//nolint:reassign
	// By default, parent's PersistentPreRun gets overridden by a child's PersistentPreRun.
	// We want to disable this overriding behaviour and chain all the PersistentPreRuns.
	// REFERENCE : https://github.com/spf13/cobra/pull/2044.
	cobra.EnableTraverseRunHooks = true

	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
