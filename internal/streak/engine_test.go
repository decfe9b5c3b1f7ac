package streak

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SideQuest_Go/internal/calendar"
	"github.com/osse101/SideQuest_Go/internal/domain"
)

const today = "2024-06-15"

func done(date string) domain.DailyQuestRecord {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	return domain.DailyQuestRecord{UserID: "u1", QuestID: 1, Date: date, Completed: true, CompletedAt: &at}
}

func open(date string) domain.DailyQuestRecord {
	return domain.DailyQuestRecord{UserID: "u1", QuestID: 2, Date: date}
}

func daysBefore(n int) string {
	d, err := calendar.AddDays(today, -n)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func TestRecompute(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.DailyQuestRecord
		want    domain.UserStatsSnapshot
	}{
		{
			name: "empty history",
			want: domain.UserStatsSnapshot{},
		},
		{
			name:    "single completed record today",
			records: []domain.DailyQuestRecord{done(today)},
			want: domain.UserStatsSnapshot{
				CurrentStreak: 1, LongestStreak: 1, TotalQuestsCompleted: 1, TotalDaysActive: 1,
				LastActiveDate: strPtr(today),
			},
		},
		{
			name:    "two consecutive days",
			records: []domain.DailyQuestRecord{done(daysBefore(1)), done(today)},
			want: domain.UserStatsSnapshot{
				CurrentStreak: 2, LongestStreak: 2, TotalQuestsCompleted: 2, TotalDaysActive: 2,
				LastActiveDate: strPtr(today),
			},
		},
		{
			name:    "skipped day with open records resets the run",
			records: []domain.DailyQuestRecord{done(today), open(daysBefore(1)), done(daysBefore(2))},
			want: domain.UserStatsSnapshot{
				CurrentStreak: 1, LongestStreak: 1, TotalQuestsCompleted: 2, TotalDaysActive: 2,
				LastActiveDate: strPtr(today),
			},
		},
		{
			name:    "missing day without records breaks the run",
			records: []domain.DailyQuestRecord{done(today), done(daysBefore(2)), done(daysBefore(3))},
			want: domain.UserStatsSnapshot{
				CurrentStreak: 1, LongestStreak: 2, TotalQuestsCompleted: 3, TotalDaysActive: 3,
				LastActiveDate: strPtr(today),
			},
		},
		{
			name: "older run is longest",
			records: []domain.DailyQuestRecord{
				done(today), done(daysBefore(1)),
				done(daysBefore(5)), done(daysBefore(6)), done(daysBefore(7)), done(daysBefore(8)),
			},
			want: domain.UserStatsSnapshot{
				CurrentStreak: 2, LongestStreak: 4, TotalQuestsCompleted: 6, TotalDaysActive: 6,
				LastActiveDate: strPtr(today),
			},
		},
		{
			name: "several completions per day count individually",
			records: []domain.DailyQuestRecord{
				done(today), done(today), open(today),
				done(daysBefore(1)), done(daysBefore(1)), done(daysBefore(1)),
			},
			want: domain.UserStatsSnapshot{
				CurrentStreak: 2, LongestStreak: 2, TotalQuestsCompleted: 5, TotalDaysActive: 2,
				LastActiveDate: strPtr(today),
			},
		},
		{
			name:    "only open records",
			records: []domain.DailyQuestRecord{open(today), open(daysBefore(1))},
			want:    domain.UserStatsSnapshot{},
		},
		{
			name:    "last active date ignores later open days",
			records: []domain.DailyQuestRecord{open(today), open(daysBefore(1)), done(daysBefore(2))},
			want: domain.UserStatsSnapshot{
				CurrentStreak: 0, LongestStreak: 1, TotalQuestsCompleted: 1, TotalDaysActive: 1,
				LastActiveDate: strPtr(daysBefore(2)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Recompute(tt.records, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Snapshot)
		})
	}
}

func TestRecompute_OpenToday(t *testing.T) {
	history := []domain.DailyQuestRecord{
		open(today), open(today), open(today),
		done(daysBefore(1)), done(daysBefore(2)), done(daysBefore(3)),
	}
	noTodayRecords := history[3:]
	todayDone := append([]domain.DailyQuestRecord{done(today)}, history[3:]...)

	tests := []struct {
		name        string
		policy      Policy
		records     []domain.DailyQuestRecord
		wantCurrent int
		wantLongest int
	}{
		{"strict: open today shows zero", PolicyStrict, history, 0, 3},
		{"strict: no set generated yet shows zero", PolicyStrict, noTodayRecords, 0, 3},
		{"strict: completing today extends the run", PolicyStrict, todayDone, 4, 4},
		{"grace: open today keeps yesterday's run", PolicyGrace, history, 3, 3},
		{"grace: no set generated yet keeps the run", PolicyGrace, noTodayRecords, 3, 3},
		{"grace: completing today extends the run", PolicyGrace, todayDone, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewEngine(tt.policy, DefaultPerfectDaySize).Recompute(tt.records, today)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrent, res.Snapshot.CurrentStreak)
			assert.Equal(t, tt.wantLongest, res.Snapshot.LongestStreak)
		})
	}
}

func TestRecompute_GraceDoesNotBridgeTwoOpenDays(t *testing.T) {
	records := []domain.DailyQuestRecord{open(today), open(daysBefore(1)), done(daysBefore(2))}

	res, err := NewEngine(PolicyGrace, DefaultPerfectDaySize).Recompute(records, today)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Snapshot.CurrentStreak)
	assert.Equal(t, 1, res.Snapshot.LongestStreak)
}

func TestRecompute_CalendarBoundaries(t *testing.T) {
	records := []domain.DailyQuestRecord{
		done("2024-02-28"), done("2024-02-29"), done("2024-03-01"),
		done("2024-12-31"), done("2025-01-01"),
	}

	res, err := Recompute(records, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Snapshot.CurrentStreak)
	assert.Equal(t, 3, res.Snapshot.LongestStreak)
}

func TestRecompute_InputOrderIrrelevant(t *testing.T) {
	records := []domain.DailyQuestRecord{
		done(daysBefore(3)), done(today), open(daysBefore(2)), done(daysBefore(1)), done(daysBefore(4)),
	}
	want, err := Recompute(records, today)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.DailyQuestRecord(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := Recompute(shuffled, today)
		require.NoError(t, err)
		assert.Equal(t, want.Snapshot, got.Snapshot)
	}
}

func TestRecompute_MalformedRecords(t *testing.T) {
	t.Run("unparseable date is a validation error", func(t *testing.T) {
		records := []domain.DailyQuestRecord{done(today), {UserID: "u1", QuestID: 9, Date: "15/06/2024", Completed: true}}

		_, err := Recompute(records, today)
		assert.ErrorIs(t, err, domain.ErrInvalidRecordDate)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty date is a validation error", func(t *testing.T) {
		_, err := Recompute([]domain.DailyQuestRecord{{UserID: "u1", QuestID: 3}}, today)
		assert.ErrorIs(t, err, domain.ErrInvalidRecordDate)
	})

	t.Run("invalid today is a validation error", func(t *testing.T) {
		_, err := Recompute(nil, "today")
		assert.ErrorIs(t, err, domain.ErrInvalidRecordDate)
	})

	t.Run("completion timestamp without flag counts as not completed", func(t *testing.T) {
		at := time.Now()
		stray := domain.DailyQuestRecord{UserID: "u1", QuestID: 4, Date: today, CompletedAt: &at}

		res, err := Recompute([]domain.DailyQuestRecord{stray, done(daysBefore(1))}, today)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Snapshot.TotalQuestsCompleted)
		assert.Equal(t, 0, res.Snapshot.CurrentStreak)
		assert.Equal(t, daysBefore(1), *res.Snapshot.LastActiveDate)
	})

	t.Run("completion flag without timestamp still counts", func(t *testing.T) {
		r := domain.DailyQuestRecord{UserID: "u1", QuestID: 5, Date: today, Completed: true}

		res, err := Recompute([]domain.DailyQuestRecord{r}, today)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Snapshot.CurrentStreak)
	})
}

func TestRecompute_Days(t *testing.T) {
	records := []domain.DailyQuestRecord{
		done(daysBefore(1)), open(daysBefore(1)),
		done(today), done(today), done(today),
	}

	res, err := Recompute(records, today)
	require.NoError(t, err)
	require.Len(t, res.Days, 2)
	assert.Equal(t, today, res.Days[0].Date)
	assert.Equal(t, 3, res.Days[0].Completed)
	assert.Equal(t, 3, res.Days[0].Total)
	assert.Equal(t, daysBefore(1), res.Days[1].Date)
	assert.Equal(t, 1, res.Days[1].Completed)
	assert.Equal(t, 2, res.Days[1].Total)
	assert.Equal(t, 1, res.PerfectDays)
}

func TestRecompute_PerfectDaySize(t *testing.T) {
	records := []domain.DailyQuestRecord{done(today), done(today)}

	res, err := NewEngine(PolicyStrict, 3).Recompute(records, today)
	require.NoError(t, err)
	assert.Zero(t, res.PerfectDays, "two of a three-quest set is not perfect")

	res, err = NewEngine(PolicyStrict, 2).Recompute(records, today)
	require.NoError(t, err)
	assert.Equal(t, 1, res.PerfectDays)
}

// TestRecompute_Properties checks invariants over random histories.
func TestRecompute_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 500; iter++ {
		var records []domain.DailyQuestRecord
		distinct := map[string]bool{}
		span := rng.Intn(60) + 1
		for day := 0; day < span; day++ {
			if rng.Intn(4) == 0 {
				continue
			}
			date := daysBefore(day)
			distinct[date] = true
			for q := 0; q < rng.Intn(4); q++ {
				r := open(date)
				if rng.Intn(3) > 0 {
					r = done(date)
				}
				records = append(records, r)
			}
		}

		for _, policy := range []Policy{PolicyStrict, PolicyGrace} {
			res, err := NewEngine(policy, DefaultPerfectDaySize).Recompute(records, today)
			require.NoError(t, err)

			s := res.Snapshot
			assert.LessOrEqual(t, s.CurrentStreak, s.LongestStreak)
			assert.LessOrEqual(t, s.TotalDaysActive, len(distinct))
			assert.LessOrEqual(t, s.LongestStreak, s.TotalDaysActive)
			assert.GreaterOrEqual(t, s.TotalQuestsCompleted, s.TotalDaysActive)
			if s.TotalDaysActive == 0 {
				assert.Nil(t, s.LastActiveDate)
			} else {
				assert.NotNil(t, s.LastActiveDate)
			}
		}
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("GRACE")
	require.NoError(t, err)
	assert.Equal(t, PolicyGrace, p)
	assert.Equal(t, "grace", p.String())

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	_, err = ParsePolicy("optimistic")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func BenchmarkRecompute(b *testing.B) {
	var records []domain.DailyQuestRecord
	for day := 0; day < 3*365; day++ {
		date := daysBefore(day)
		records = append(records, done(date), done(date), open(date))
	}
	engine := NewEngine(PolicyStrict, DefaultPerfectDaySize)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Recompute(records, today); err != nil {
			b.Fatal(err)
		}
	}
}
