package main

import (
	"fmt"
	"log/slog"

	"github.com/bitfield/script"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"gitea.obmondo.com/EnableIT/satellite-pe-tools/config"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/constant"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/helper"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/pkg/metrics"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/pkg/prettyfmt"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/pkg/resource"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/pkg/satellite"
)

var configureCmd = &cobra.Command{
	Use:     "configure",
	Short:   "Converge the host's satellite reporting configuration",
	Example: `$ satellite-setup configure --satellite-url https://sat.example.com`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigure(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func settingsFromConfig() satellite.Settings {
	return satellite.Settings{
		URL:                    config.GetSatelliteURL(),
		VerifyCertificate:      config.VerifyCertificate(),
		SSLCA:                  config.GetSSLCA(),
		SSLCert:                config.GetSSLCert(),
		SSLKey:                 config.GetSSLKey(),
		ManageDefaultCACert:    config.ManageDefaultCACert(),
		TrustedExternalCommand: config.TrustedExternalCommand(),
	}
}

func runConfigure(cmd *cobra.Command) error {
	if !config.IsNoop() {
		if err := helper.RequireRoot(); err != nil {
			return err
		}
	}

	if err := helper.LoadOSReleaseEnv(); err == nil {
		slog.Debug("detected os", slog.String("pretty_name", helper.OSPrettyName()))
	}

	settings := settingsFromConfig()
	host, err := settings.Hostname()
	if err != nil {
		return err
	}

	if !config.AssumeYes() && !config.IsNoop() {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Configure puppet run reporting to %s", host),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			slog.Info("aborted by operator")
			return nil
		}
	}

	resources, err := settings.Resources(helper.IsRedHatFamily())
	if err != nil {
		return err
	}

	executor := resource.Executor{
		Noop:     config.IsNoop(),
		OnChange: restartPuppetserver,
		Report:   printStatus,
	}

	summary, runErr := executor.Run(cmd.Context(), resources)

	if err := writeRunMetrics(summary, runErr, config.IsNoop(), constant.ConvergeMetricsFile); err != nil {
		slog.Debug("failed to write run metrics", slog.String("error", err.Error()))
	}

	if runErr != nil {
		return runErr
	}

	slog.Info("converged",
		slog.Int("changed", summary.Changed),
		slog.Int("unchanged", summary.Unchanged),
		slog.Int("skipped", summary.Skipped))
	return nil
}

// writeRunMetrics publishes the run outcome for the textfile collector. A
// noop run must not clobber the gauges of the last real converge.
func writeRunMetrics(summary resource.Summary, runErr error, noop bool, path string) error {
	if noop {
		return nil
	}
	metrics.Record(summary, runErr == nil)
	return metrics.WriteFile(path)
}

func printStatus(name string, status resource.Status) {
	switch status {
	case resource.StatusChanged:
		prettyfmt.PrettyFmt(" ", prettyfmt.FontGreen(prettyfmt.IconCheckPass), " ", prettyfmt.FontWhite(name), prettyfmt.FontGreen(status.String()))
	case resource.StatusFailed:
		prettyfmt.PrettyFmt(" ", prettyfmt.FontRed(prettyfmt.IconCheckFail), " ", prettyfmt.FontWhite(name), prettyfmt.FontRed(status.String()))
	case resource.StatusSkipped:
		prettyfmt.PrettyFmt(" ", prettyfmt.FontYellow(prettyfmt.IconGear), " ", prettyfmt.FontWhite(name), prettyfmt.FontYellow(status.String()))
	default:
		prettyfmt.PrettyFmt(" ", prettyfmt.FontGreen(prettyfmt.IconCheckPass), " ", prettyfmt.FontWhite(name), prettyfmt.FontWhite(status.String()))
	}
}

// restartPuppetserver runs once per converge when anything changed.
func restartPuppetserver() error {
	slog.Info("restarting puppetserver", slog.String("service", constant.PuppetServerService))

	pipe := script.Exec(fmt.Sprintf("systemctl restart %s", constant.PuppetServerService))
	pipe.Wait()
	if pipe.ExitStatus() != 0 {
		output, _ := pipe.String()
		return fmt.Errorf("restarting %s: %s", constant.PuppetServerService, output)
	}
	return nil
}
