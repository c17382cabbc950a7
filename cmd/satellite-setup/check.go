package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gitea.obmondo.com/EnableIT/satellite-pe-tools/pkg/checkconnectivity"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Check TCP connectivity to the Satellite server",
	Example: `$ satellite-setup check --satellite-url https://sat.example.com`,
	RunE: func(*cobra.Command, []string) error {
		settings := settingsFromConfig()
		host, err := settings.Hostname()
		if err != nil {
			return err
		}

		if !checkconnectivity.CheckTCPConnection(host) {
			return fmt.Errorf("satellite host %s is not reachable", host)
		}

		slog.Info("satellite host is reachable", slog.String("host", host))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
