package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lens_sessions_started_total",
			Help: "Total number of wear sessions started",
		},
	)

	SessionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lens_sessions_completed_total",
			Help: "Total number of wear sessions completed",
		},
	)

	SessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lens_wear_duration_seconds",
			Help:    "Duration of completed wear sessions in seconds",
			Buckets: prometheus.LinearBuckets(3600, 7200, 12),
		},
	)

	RemindersFired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lens_reminders_fired_total",
			Help: "Total number of reclean reminders delivered",
		},
	)

	RemindersFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lens_reminders_failed_total",
			Help: "Total number of reclean reminders that failed to schedule",
		},
	)
)
