package checkconnectivity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tevino/tcp-shaker"

	"gitea.obmondo.com/EnableIT/satellite-pe-tools/constant"
)

const timeout = time.Second * 5

var reachableMetric *prometheus.GaugeVec
var registry *prometheus.Registry

func init() {
	registry = prometheus.NewRegistry()

	reachableMetric = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "satellite_unreachable",
			Help: "Satellite host connectivity status, 1 when unreachable",
		},
		[]string{"host", "port"},
	)

	registry.MustRegister(reachableMetric)
}

// CheckTCPConnection probes the Satellite host on the puppetserver port and
// records the result for the node_exporter textfile collector.
func CheckTCPConnection(host string) bool {
	// Initializing the checker
	// It is expected to be shared among goroutines, only one instance is necessary.
	c := tcp.NewChecker()

	ctx, stopChecker := context.WithCancel(context.Background())
	defer stopChecker()
	go func() {
		if err := c.CheckingLoop(ctx); err != nil {
			slog.Info("checking loop stopped due to fatal error: ", slog.String("error", err.Error()))
		}
	}()

	<-c.WaitReady()

	reachable := true
	err := c.CheckAddr(fmt.Sprintf("%s:%s", host, constant.SatellitePort), timeout)
	if err != nil {
		reachable = false
		reachableMetric.WithLabelValues(host, constant.SatellitePort).Set(1)
	} else {
		reachableMetric.WithLabelValues(host, constant.SatellitePort).Set(0)
	}

	if err := prometheus.WriteToTextfile(constant.ReachableMetricsFile, registry); err != nil {
		slog.Info("Error writing metrics to file:", slog.String("error", err.Error()))
	}

	return reachable
}
