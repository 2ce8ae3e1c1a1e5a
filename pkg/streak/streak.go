// Package streak computes daily check-in streak transitions.
//
// Days are compared as calendar days in a single location. The engine is pure:
// callers load the state, compute the update and persist Update.State.
package streak

import (
	"fmt"
	"time"

	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

// Event classifies a streak transition.
type Event string

const (
	EventNoop      Event = "noop"
	EventStarted   Event = "started"
	EventContinued Event = "continued"
	EventReset     Event = "reset"
	// EventRestarted is a new day-1 after a gap that did not break a streak
	// longer than one day.
	EventRestarted Event = "restarted"
)

// Milestone is a notable streak length.
type Milestone string

const (
	MilestoneWeekly         Milestone = "weekly"
	MilestoneMonthly        Milestone = "monthly"
	MilestonePersonalRecord Milestone = "personal_record"
)

// Update is the outcome of a daily check-in.
type Update struct {
	CurrentStreak  int  `json:"currentStreak"`
	LongestStreak  int  `json:"longestStreak"`
	TotalVisitDays int  `json:"totalVisitDays"`
	IsNewDay       bool `json:"isNewDay"`
	StreakBroken   bool `json:"streakBroken"`

	Event      Event       `json:"-"`
	Milestones []Milestone `json:"-"`
	// Previous is the state the update was computed from.
	Previous user.StreakState `json:"-"`
	// State is the row state to persist. Equal to Previous when IsNewDay is false.
	State user.StreakState `json:"-"`
}

// Stats is a read-only view of a user's streak.
type Stats struct {
	CurrentStreak  int        `json:"currentStreak"`
	LongestStreak  int        `json:"longestStreak"`
	TotalVisitDays int        `json:"totalVisitDays"`
	LastActiveDate *time.Time `json:"lastActiveDate"`
	IsActiveToday  bool       `json:"isActiveToday"`
	IsStreakAtRisk bool       `json:"isStreakAtRisk"`
}

// Engine applies streak rules in a fixed location.
type Engine struct {
	loc *time.Location
}

// NewEngine returns an engine deciding day boundaries in loc. A nil loc means UTC.
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc}
}

// Location returns the engine's day-boundary location.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// dayNumber maps t to a count of calendar days in the engine location.
func (e *Engine) dayNumber(t time.Time) int64 {
	y, m, d := t.In(e.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// Compute returns the transition for a check-in at now.
func (e *Engine) Compute(prev user.StreakState, now time.Time) Update {
	u := Update{
		CurrentStreak:  prev.CurrentStreak,
		LongestStreak:  prev.LongestStreak,
		TotalVisitDays: prev.TotalVisitDays,
		Event:          EventNoop,
		Previous:       prev,
		State:          prev,
	}

	today := e.dayNumber(now)
	switch {
	case prev.LastActiveDate == nil:
		u.CurrentStreak = 1
		u.Event = EventStarted
	default:
		gap := today - e.dayNumber(*prev.LastActiveDate)
		switch {
		case gap == 0:
			return u
		case gap == 1:
			u.CurrentStreak = prev.CurrentStreak + 1
			u.Event = EventContinued
		default:
			// Also covers a last-active day in the future.
			u.StreakBroken = prev.CurrentStreak > 1
			u.CurrentStreak = 1
			u.Event = EventRestarted
			if u.StreakBroken {
				u.Event = EventReset
			}
		}
	}

	u.IsNewDay = true
	u.LongestStreak = max(prev.LongestStreak, u.CurrentStreak)
	u.TotalVisitDays = prev.TotalVisitDays + 1
	u.Milestones = milestones(u.CurrentStreak, prev.LongestStreak)

	at := now
	u.State = user.StreakState{
		CurrentStreak:  u.CurrentStreak,
		LongestStreak:  u.LongestStreak,
		TotalVisitDays: u.TotalVisitDays,
		LastActiveDate: &at,
	}
	return u
}

// Stats reports whether the user checked in today and whether the streak is at risk.
func (e *Engine) Stats(state user.StreakState, now time.Time) Stats {
	s := Stats{
		CurrentStreak:  state.CurrentStreak,
		LongestStreak:  state.LongestStreak,
		TotalVisitDays: state.TotalVisitDays,
		LastActiveDate: state.LastActiveDate,
	}
	if state.LastActiveDate == nil {
		return s
	}

	today := e.dayNumber(now)
	last := e.dayNumber(*state.LastActiveDate)
	s.IsActiveToday = last == today
	s.IsStreakAtRisk = !s.IsActiveToday && last < today-1 && state.CurrentStreak > 0
	return s
}

// InitialState is the streak recorded when a profile is completed for the first time.
func InitialState(now time.Time) user.StreakState {
	return user.StreakState{
		CurrentStreak:  1,
		LongestStreak:  1,
		TotalVisitDays: 1,
		LastActiveDate: &now,
	}
}

func milestones(current, previousLongest int) []Milestone {
	var out []Milestone
	if current%7 == 0 {
		out = append(out, MilestoneWeekly)
	}
	if current%30 == 0 {
		out = append(out, MilestoneMonthly)
	}
	if current > previousLongest && current > 1 {
		out = append(out, MilestonePersonalRecord)
	}
	return out
}

// Message is the user-facing summary of an update.
func Message(u Update) string {
	switch {
	case !u.IsNewDay:
		return fmt.Sprintf("You've already checked in today. Current streak: %d days", u.CurrentStreak)
	case u.StreakBroken:
		return "Your streak was reset. Starting fresh at day 1!"
	case u.CurrentStreak == 1:
		return "Welcome! You've started your streak!"
	default:
		return fmt.Sprintf("Streak continued! You're on a %d-day streak!", u.CurrentStreak)
	}
}

// ActivityTitle is the feed title for an update.
func ActivityTitle(u Update) string {
	switch u.Event {
	case EventReset:
		return "Streak reset"
	case EventStarted:
		return "First streak day"
	case EventRestarted:
		return "Streak restarted"
	default:
		return fmt.Sprintf("Streak day %d", u.CurrentStreak)
	}
}
