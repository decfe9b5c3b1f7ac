// Package streak derives a user's streak statistics and earned achievements from
// their daily quest history. It is pure: callers fetch records and persist results.
package streak

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/SideQuest_Go/internal/calendar"
	"github.com/osse101/SideQuest_Go/internal/domain"
)

// DayCount aggregates the records of one calendar date.
type DayCount struct {
	Date      string
	Completed int
	Total     int
	at        time.Time
}

// Perfect reports whether a full set of at least size assignments was completed.
func (d DayCount) Perfect(size int) bool {
	return d.Total >= size && d.Completed == d.Total
}

// Result is the outcome of a recomputation.
type Result struct {
	Snapshot domain.UserStatsSnapshot
	// Days holds one entry per distinct date, most recent first.
	Days        []DayCount
	PerfectDays int
}

// DefaultPerfectDaySize is the number of assignments a perfect day needs.
const DefaultPerfectDaySize = 3

// Engine recomputes statistics under a fixed policy.
type Engine struct {
	policy         Policy
	perfectDaySize int
}

// NewEngine creates an engine using policy for the current streak. perfectDaySize is
// the daily set size; values below one fall back to DefaultPerfectDaySize.
func NewEngine(policy Policy, perfectDaySize int) *Engine {
	if perfectDaySize < 1 {
		perfectDaySize = DefaultPerfectDaySize
	}
	return &Engine{policy: policy, perfectDaySize: perfectDaySize}
}

// Policy returns the engine's current-streak policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Recompute derives statistics from the complete, unordered history of one user.
// today must already be adjusted for the user's day boundary.
//
// A record with an unparseable date fails the whole computation. A record that carries
// a completion timestamp but not the completion flag counts as not completed.
func (e *Engine) Recompute(records []domain.DailyQuestRecord, today string) (Result, error) {
	todayAt, err := calendar.ParseDate(today)
	if err != nil {
		return Result{}, fmt.Errorf("today: %w", err)
	}

	days, err := groupByDate(records)
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.Days = days
	for _, d := range days {
		res.Snapshot.TotalQuestsCompleted += d.Completed
		if d.Completed > 0 {
			res.Snapshot.TotalDaysActive++
			if res.Snapshot.LastActiveDate == nil {
				last := d.Date
				res.Snapshot.LastActiveDate = &last
			}
		}
		if d.Perfect(e.perfectDaySize) {
			res.PerfectDays++
		}
	}

	res.Snapshot.CurrentStreak, res.Snapshot.LongestStreak = e.walk(days, todayAt)
	return res, nil
}

// walk scans dates newest first and returns the current and longest streaks.
func (e *Engine) walk(days []DayCount, today time.Time) (current, longest int) {
	anchor := today
	if e.policy == PolicyGrace && !completedOn(days, today) {
		anchor = today.AddDate(0, 0, -1)
	}

	var (
		running  int
		anchored bool
		prev     time.Time
	)
	for i, d := range days {
		switch {
		case d.Completed > 0:
			if i > 0 && !calendar.Consecutive(prev, d.at) {
				running = 0
				anchored = false
			}
			running++
			if d.at.Equal(anchor) {
				anchored = true
			}
			if anchored {
				current++
			}
			if running > longest {
				longest = running
			}
		case d.at.Equal(today):
			// today is still open: the streak freezes instead of breaking
		default:
			running = 0
			anchored = false
		}
		prev = d.at
	}
	return current, longest
}

func completedOn(days []DayCount, date time.Time) bool {
	for _, d := range days {
		if d.at.Equal(date) {
			return d.Completed > 0
		}
	}
	return false
}

func groupByDate(records []domain.DailyQuestRecord) ([]DayCount, error) {
	byDate := make(map[string]*DayCount, len(records))
	for _, r := range records {
		d, ok := byDate[r.Date]
		if !ok {
			at, err := calendar.ParseDate(r.Date)
			if err != nil {
				return nil, fmt.Errorf("record for quest %d: %w", r.QuestID, err)
			}
			d = &DayCount{Date: r.Date, at: at}
			byDate[r.Date] = d
		}
		d.Total++
		if r.Completed {
			d.Completed++
		}
	}

	days := make([]DayCount, 0, len(byDate))
	for _, d := range byDate {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].at.After(days[j].at) })
	return days, nil
}

// Recompute runs a strict-policy engine with the default daily set size.
func Recompute(records []domain.DailyQuestRecord, today string) (Result, error) {
	return NewEngine(PolicyStrict, DefaultPerfectDaySize).Recompute(records, today)
}
