// Package metrics publishes convergence run results through the
// node_exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"gitea.obmondo.com/EnableIT/satellite-pe-tools/constant"
	"gitea.obmondo.com/EnableIT/satellite-pe-tools/pkg/resource"
)

var (
	registry         *prometheus.Registry
	resourcesMetric  *prometheus.GaugeVec
	runSuccessMetric prometheus.Gauge
)

func init() {
	registry = prometheus.NewRegistry()

	resourcesMetric = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "satellite_pe_tools_resources",
			Help: "Resource outcomes of the last satellite-setup run",
		},
		[]string{"status"},
	)
	runSuccessMetric = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "satellite_pe_tools_run_success",
			Help: "Whether the last satellite-setup run converged, 1 for success",
		},
	)

	registry.MustRegister(resourcesMetric, runSuccessMetric)
}

// Record stores the run summary in the registry gauges.
func Record(summary resource.Summary, success bool) {
	resourcesMetric.WithLabelValues(resource.StatusSkipped.String()).Set(float64(summary.Skipped))
	resourcesMetric.WithLabelValues(resource.StatusUnchanged.String()).Set(float64(summary.Unchanged))
	resourcesMetric.WithLabelValues(resource.StatusChanged.String()).Set(float64(summary.Changed))
	resourcesMetric.WithLabelValues(resource.StatusFailed.String()).Set(float64(summary.Failed))

	if success {
		runSuccessMetric.Set(1)
	} else {
		runSuccessMetric.Set(0)
	}
}

// Write dumps the registry to the textfile collector path.
func Write() error {
	return WriteFile(constant.ConvergeMetricsFile)
}

// WriteFile dumps the registry to path.
func WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, registry)
}
