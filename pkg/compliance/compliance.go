// Package compliance decides whether a user may take part in prediction markets.
package compliance

import (
	"fmt"
	"strings"
)

// DefaultMinimumAge is the age floor applied when none is configured.
const DefaultMinimumAge = 18

// DefaultRestrictedCountries are the ISO 3166-1 alpha-2 codes where
// participation is blocked.
var DefaultRestrictedCountries = []string{"US", "FR", "TR", "CN", "KR", "SG"}

// Reason messages returned with a decision.
const (
	ReasonUnderage   = "You must be at least 18 years old to participate in prediction markets"
	ReasonRestricted = "Prediction markets are not available in your region"
	ReasonEligible   = "You are eligible to participate in prediction markets"
)

// Decision is the outcome of an eligibility check.
type Decision struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
	// Rule names the rule that produced the decision: "age", "region" or "ok".
	Rule string `json:"rule"`
}

// Rules holds the eligibility rule set. The zero value is not usable; use New
// or Default.
type Rules struct {
	minimumAge int
	restricted map[string]struct{}
}

// New builds a rule set. Country codes are matched case-insensitively.
func New(minimumAge int, restrictedCountries []string) *Rules {
	restricted := make(map[string]struct{}, len(restrictedCountries))
	for _, cc := range restrictedCountries {
		restricted[normalizeCountry(cc)] = struct{}{}
	}
	return &Rules{minimumAge: minimumAge, restricted: restricted}
}

// Default returns the rule set with the default age floor and restricted countries.
func Default() *Rules {
	return New(DefaultMinimumAge, DefaultRestrictedCountries)
}

// MinimumAge returns the configured age floor.
func (r *Rules) MinimumAge() int {
	return r.minimumAge
}

// CheckEligibility applies the age floor first and the region block second.
// It never fails.
func (r *Rules) CheckEligibility(age int, countryCode string) Decision {
	if age < r.minimumAge {
		return Decision{Eligible: false, Reason: underageReason(r.minimumAge), Rule: "age"}
	}
	if r.IsRestricted(countryCode) {
		return Decision{Eligible: false, Reason: ReasonRestricted, Rule: "region"}
	}
	return Decision{Eligible: true, Reason: ReasonEligible, Rule: "ok"}
}

// IsRestricted reports whether participation is blocked for the country.
func (r *Rules) IsRestricted(countryCode string) bool {
	_, blocked := r.restricted[normalizeCountry(countryCode)]
	return blocked
}

// CheckEligibility evaluates the default rule set.
func CheckEligibility(age int, countryCode string) Decision {
	return Default().CheckEligibility(age, countryCode)
}

func underageReason(minimumAge int) string {
	if minimumAge == DefaultMinimumAge {
		return ReasonUnderage
	}
	return fmt.Sprintf("You must be at least %d years old to participate in prediction markets", minimumAge)
}

func normalizeCountry(cc string) string {
	return strings.ToUpper(strings.TrimSpace(cc))
}
