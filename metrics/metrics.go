package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

var submissions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "scheduler",
		Name:      "submissions_total",
		Help:      "Entry form submissions by record kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

var sideChannelErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "scheduler",
		Name:      "side_channel_errors_total",
		Help:      "Failed event publications and index writes after a stored record.",
	},
	[]string{"channel"},
)

func init() {
	prometheus.MustRegister(submissions, sideChannelErrors)
}

func ObserveSubmission(kind, outcome string) {
	submissions.WithLabelValues(kind, outcome).Inc()
}

func ObserveSideChannelError(channel string) {
	sideChannelErrors.WithLabelValues(channel).Inc()
}
