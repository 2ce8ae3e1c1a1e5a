package compliance

import (
	"strings"
	"testing"
)

func TestCheckEligibility_AgeFloor(t *testing.T) {
	got := CheckEligibility(17, "GB")
	if got.Eligible {
		t.Fatal("expected 17 year old to be ineligible")
	}
	if !strings.Contains(got.Reason, "18") {
		t.Fatalf("expected reason to mention the age floor, got %q", got.Reason)
	}
	if got.Rule != "age" {
		t.Fatalf("expected age rule, got %q", got.Rule)
	}
}

func TestCheckEligibility_RegionIsCaseInsensitive(t *testing.T) {
	for _, cc := range []string{"us", "US", " Us "} {
		got := CheckEligibility(25, cc)
		if got.Eligible {
			t.Fatalf("expected %q to be restricted", cc)
		}
		if got.Reason != ReasonRestricted {
			t.Fatalf("unexpected reason for %q: %q", cc, got.Reason)
		}
	}

	if got := CheckEligibility(25, "gb"); !got.Eligible {
		t.Fatalf("expected gb to be eligible, got %+v", got)
	}
}

func TestCheckEligibility_AgeTakesPrecedence(t *testing.T) {
	got := CheckEligibility(16, "US")
	if got.Eligible || got.Rule != "age" || got.Reason != ReasonUnderage {
		t.Fatalf("expected the age failure to win, got %+v", got)
	}
}

func TestCheckEligibility_Boundary(t *testing.T) {
	if got := CheckEligibility(18, "DE"); !got.Eligible {
		t.Fatalf("expected 18 to pass the age floor, got %+v", got)
	}
	for _, cc := range DefaultRestrictedCountries {
		if got := CheckEligibility(40, cc); got.Eligible {
			t.Fatalf("expected %s to be restricted", cc)
		}
	}
}

func TestRules_Custom(t *testing.T) {
	r := New(21, []string{"gb"})
	if got := r.CheckEligibility(19, "DE"); got.Eligible || !strings.Contains(got.Reason, "21") {
		t.Fatalf("expected custom age floor to apply, got %+v", got)
	}
	if got := r.CheckEligibility(30, "GB"); got.Eligible {
		t.Fatalf("expected GB restricted by custom rules, got %+v", got)
	}
	if got := r.CheckEligibility(30, "US"); !got.Eligible {
		t.Fatalf("expected US allowed by custom rules, got %+v", got)
	}
	if r.MinimumAge() != 21 {
		t.Fatalf("unexpected minimum age %d", r.MinimumAge())
	}
}
