package streak

import "github.com/osse101/SideQuest_Go/internal/domain"

// Eligible lists every achievement whose condition holds for res, in catalog order.
// Streak badges compare against the longest streak, so a badge stays earned after
// the streak that earned it is broken.
func Eligible(res Result) []domain.AchievementType {
	var out []domain.AchievementType
	for _, def := range domain.AchievementCatalog {
		if qualifies(def, res) {
			out = append(out, def.Type)
		}
	}
	return out
}

func qualifies(def domain.AchievementDefinition, res Result) bool {
	switch {
	case def.Type == domain.AchievementFirstQuest:
		return res.Snapshot.TotalQuestsCompleted >= 1
	case def.Type == domain.AchievementFirstPerfectDay:
		return res.PerfectDays >= 1
	case def.StreakDays > 0:
		return res.Snapshot.LongestStreak >= def.StreakDays
	default:
		return false
	}
}
