// Package calendar converts between wall-clock instants and the plain YYYY-MM-DD
// dates used for daily quests, honouring a per-user day boundary.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // IANA zones for hosts without a zoneinfo database

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// DateLayout is the storage and wire format of a calendar date.
const DateLayout = "2006-01-02"

// Day is the literal duration used to decide whether two dates are consecutive.
const Day = 24 * time.Hour

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidRecordDate, s)
	}
	return t, nil
}

// FormatDate renders t's calendar date in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Consecutive reports whether two dates are at most one day apart, in either order.
func Consecutive(a, b time.Time) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= Day
}

// AddDays shifts a date string by n days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" in 24-hour form.
func ParseClock(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", domain.ErrInvalidRefreshTime, s)
	}
	h, errH := strconv.Atoi(hh)
	m, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", domain.ErrInvalidRefreshTime, s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// LoadLocation resolves an IANA zone name; the empty string means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, name)
	}
	return loc, nil
}

// GameDate returns the quest date for now. Before the refresh time the previous
// calendar day is still active.
func GameDate(now time.Time, refresh ClockTime, loc *time.Location) string {
	local := now.In(loc)
	minutes := local.Hour()*60 + local.Minute()
	if minutes < refresh.Hour*60+refresh.Minute {
		local = local.AddDate(0, 0, -1)
	}
	return FormatDate(local)
}

// GameDateFor resolves the quest date from a user's settings.
func GameDateFor(now time.Time, s domain.UserSettings) (string, error) {
	refresh, err := ParseClock(s.RefreshTime)
	if err != nil {
		return "", err
	}
	loc, err := LoadLocation(s.Timezone)
	if err != nil {
		return "", err
	}
	return GameDate(now, refresh, loc), nil
}
