package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpdatesHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_updates_handled_total",
		Help: "The total number of handled updates by outcome",
	}, []string{"outcome"})

	SpamRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_spam_rejected_total",
		Help: "Messages rejected by the spam guard or rate limiter",
	}, []string{"reason"})

	AssistantRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kiosk_assistant_request_duration_seconds",
		Help:    "Duration of assistant runs end to end",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 45, 60},
	}, []string{"outcome"})

	VerifierFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_verifier_fallbacks_total",
		Help: "Draft answers replaced with curated gold answers",
	}, []string{"intent"})

	LeadsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_leads_submitted_total",
		Help: "Completed lead forms by delivery outcome",
	}, []string{"channel", "status"})

	CalculatorAnswers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kiosk_calculator_answers_total",
		Help: "Questions answered by the deterministic profit calculator",
	})
)
