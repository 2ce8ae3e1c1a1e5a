package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StreakUpdates counts daily check-ins by result (started, continued, reset, noop, error)
	StreakUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miniapp_streak_updates_total",
			Help: "Total number of daily streak updates",
		},
		[]string{"result"},
	)

	// StreakMilestones counts milestone records by kind (weekly, monthly, personal_record)
	StreakMilestones = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miniapp_streak_milestones_total",
			Help: "Total number of streak milestones reached",
		},
		[]string{"kind"},
	)

	// StreakCASRetries counts conditional streak writes that lost a race and were retried
	StreakCASRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "miniapp_streak_cas_retries_total",
			Help: "Total number of streak updates retried after a concurrent write",
		},
	)

	// ProfileCompletions counts successful profile completions by eligibility
	ProfileCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miniapp_profile_completions_total",
			Help: "Total number of completed profiles",
		},
		[]string{"eligible"},
	)

	// EligibilityChecks counts eligibility decisions by outcome
	EligibilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miniapp_eligibility_checks_total",
			Help: "Total number of eligibility decisions",
		},
		[]string{"outcome"},
	)

	// SessionValidations counts session validations by result
	SessionValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miniapp_session_validations_total",
			Help: "Total number of session validations",
		},
		[]string{"result"},
	)

	// SignIns counts wallet sign-in attempts by result
	SignIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miniapp_signins_total",
			Help: "Total number of wallet sign-in attempts",
		},
		[]string{"result"},
	)

	// SideEffectFailures counts best-effort writes (audit, activity) that failed
	SideEffectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miniapp_side_effect_failures_total",
			Help: "Total number of failed best-effort audit or activity writes",
		},
		[]string{"kind"},
	)

	// MarketsClosed counts open markets closed by the reconciler after their end date
	MarketsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "miniapp_markets_closed_total",
			Help: "Total number of markets closed after their end date",
		},
	)

	// NoncesPurged counts expired sign-in nonces deleted by the reconciler
	NoncesPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "miniapp_nonces_purged_total",
			Help: "Total number of expired sign-in nonces deleted",
		},
	)
)
