// SPDX-License-Identifier: MIT
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	schedulesResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ruvxmltv_schedules_resolved_total",
		Help: "Schedule files resolved from upstream listings, per channel",
	}, []string{"channel"})

	fetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ruvxmltv_feed_errors_total",
		Help: "Upstream feed failures by pipeline stage",
	}, []string{"stage"}) // stage=resolve|fetch|parse

	programmesWritten = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ruvxmltv_programmes_written",
		Help: "Programmes written to the guide per channel (last run)",
	}, []string{"channel"})

	eventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ruvxmltv_events_dropped_total",
		Help: "Events dropped by overlap reconciliation, per channel",
	}, []string{"channel"})

	channelsWritten = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ruvxmltv_channels_written",
		Help: "Number of channels written to the guide (last run)",
	})
)

func RecordScheduleResolved(channel string) {
	schedulesResolved.WithLabelValues(channel).Inc()
}

func RecordFeedError(stage string) {
	fetchErrors.WithLabelValues(stage).Inc()
}

func SetProgrammesWritten(channel string, n int) {
	programmesWritten.WithLabelValues(channel).Set(float64(n))
}

func RecordEventsDropped(channel string, n int) {
	eventsDropped.WithLabelValues(channel).Add(float64(n))
}

func SetChannelsWritten(n int) {
	channelsWritten.Set(float64(n))
}
