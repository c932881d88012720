// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

package pslist

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsEnabled controls whether Prometheus metrics are recorded.
var metricsEnabled atomic.Bool

// Enumeration outcome labels.
const (
	outcomeOK          = "ok"
	outcomeLaunchError = "launch_error"
	outcomeStderr      = "stderr"
	outcomeExitCode    = "exit_code"
	outcomeSignal      = "signal"
)

var (
	rowsDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attachcore_pslist_rows_decoded_total",
		Help: "Total number of listing rows decoded into process records",
	})

	rowsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attachcore_pslist_rows_discarded_total",
		Help: "Total number of listing rows discarded as unparsable",
	})

	enumerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attachcore_pslist_enumerations_total",
			Help: "Total number of process enumerations by outcome",
		},
		[]string{"outcome"},
	)
)

// EnableMetrics turns Prometheus metric recording on or off. Metrics are off
// by default so library consumers without a registry exporter pay nothing.
func EnableMetrics(enable bool) {
	metricsEnabled.Store(enable)
}

func observeRows(decoded, discarded int) {
	if !metricsEnabled.Load() {
		return
	}
	rowsDecoded.Add(float64(decoded))
	rowsDiscarded.Add(float64(discarded))
}

func observeEnumeration(outcome string) {
	if !metricsEnabled.Load() {
		return
	}
	enumerationsTotal.WithLabelValues(outcome).Inc()
}
