package domain

// Default quest categories
const (
	CategoryPhysicalHealth = "Physical Health"
	CategoryMentalWellness = "Mental Wellness"
	CategoryLearning       = "Learning & Growth"
	CategoryProductivity   = "Productivity"
	CategorySocial         = "Social & Connection"
	CategorySelfCare       = "Self-Care"
	CategoryHabits         = "Habits"
)

// DefaultQuests is the onboarding catalog. IDs are stable and stored in user settings.
var DefaultQuests = []DefaultQuest{
	{ID: "dq_1", Content: "Do 20 pushups", Category: CategoryPhysicalHealth},
	{ID: "dq_2", Content: "Take a 15-minute walk", Category: CategoryPhysicalHealth},
	{ID: "dq_3", Content: "Drink 8 glasses of water", Category: CategoryPhysicalHealth},
	{ID: "dq_4", Content: "Do 10 minutes of stretching", Category: CategoryPhysicalHealth},
	{ID: "dq_5", Content: "Go to the gym", Category: CategoryPhysicalHealth},

	{ID: "dq_6", Content: "Meditate for 10 minutes", Category: CategoryMentalWellness},
	{ID: "dq_7", Content: "Journal for 5 minutes", Category: CategoryMentalWellness},
	{ID: "dq_8", Content: "Practice gratitude - list 3 things", Category: CategoryMentalWellness},
	{ID: "dq_9", Content: "Take a 5-minute breathing break", Category: CategoryMentalWellness},

	{ID: "dq_10", Content: "Read for 30 minutes", Category: CategoryLearning},
	{ID: "dq_11", Content: "Learn something new", Category: CategoryLearning},
	{ID: "dq_12", Content: "Practice a skill for 20 minutes", Category: CategoryLearning},
	{ID: "dq_13", Content: "Watch an educational video", Category: CategoryLearning},

	{ID: "dq_14", Content: "Clean your workspace", Category: CategoryProductivity},
	{ID: "dq_15", Content: "Plan tomorrow's tasks", Category: CategoryProductivity},
	{ID: "dq_16", Content: "Complete one important task", Category: CategoryProductivity},
	{ID: "dq_17", Content: "Organize something for 10 minutes", Category: CategoryProductivity},

	{ID: "dq_18", Content: "Call a friend or family member", Category: CategorySocial},
	{ID: "dq_19", Content: "Send a thoughtful message to someone", Category: CategorySocial},
	{ID: "dq_20", Content: "Spend quality time with loved ones", Category: CategorySocial},

	{ID: "dq_21", Content: "Take a relaxing bath or shower", Category: CategorySelfCare},
	{ID: "dq_22", Content: "Go to bed before midnight", Category: CategorySelfCare},
	{ID: "dq_23", Content: "Prepare a healthy meal", Category: CategorySelfCare},
	{ID: "dq_24", Content: "Practice a hobby you enjoy", Category: CategorySelfCare},

	{ID: "dq_25", Content: "Make your bed", Category: CategoryHabits},
	{ID: "dq_26", Content: "No phone for 1 hour before bed", Category: CategoryHabits},
	{ID: "dq_27", Content: "Wake up before 8 AM", Category: CategoryHabits},
	{ID: "dq_28", Content: "Take vitamins/supplements", Category: CategoryHabits},
}

var defaultQuestIndex = func() map[string]DefaultQuest {
	m := make(map[string]DefaultQuest, len(DefaultQuests))
	for _, q := range DefaultQuests {
		m[q.ID] = q
	}
	return m
}()

// LookupDefaultQuest returns the catalog entry for id.
func LookupDefaultQuest(id string) (DefaultQuest, bool) {
	q, ok := defaultQuestIndex[id]
	return q, ok
}
