package progression

// DefaultMissions is the static daily mission catalog. Per-day progress is
// derived from the user's counters; only claimed ids are persisted.
func DefaultMissions() []Mission {
	return []Mission{
		{ID: "daily_xp", Title: "Earn 30 XP today", Type: MissionXP, Target: 30, Reward: 50},
		{ID: "daily_streak", Title: "Keep your streak alive", Type: MissionStreak, Target: 1, Reward: 20},
		{ID: "daily_lessons", Title: "Complete 2 lessons", Type: MissionWildcard, Target: 2, Reward: 40},
	}
}

// DefaultBadges is the static badge catalog. Thresholds on dailyXP can flip
// back to unearned after the daily reset; that is expected.
func DefaultBadges() []Badge {
	return []Badge{
		{
			ID:          "first_light",
			Label:       "First Light",
			Description: "Earn your first 10 XP",
			Earned:      func(xp int64, _ int, _ int64) bool { return xp >= 10 },
		},
		{
			ID:          "scholar",
			Label:       "Scholar",
			Description: "Reach 100 XP",
			Earned:      func(xp int64, _ int, _ int64) bool { return xp >= 100 },
		},
		{
			ID:          "sage",
			Label:       "Sage",
			Description: "Reach 500 XP",
			Earned:      func(xp int64, _ int, _ int64) bool { return xp >= 500 },
		},
		{
			ID:          "luminary",
			Label:       "Luminary",
			Description: "Reach 1000 XP",
			Earned:      func(xp int64, _ int, _ int64) bool { return xp >= 1000 },
		},
		{
			ID:          "kindled",
			Label:       "Kindled",
			Description: "Hold a 3 day streak",
			Earned:      func(_ int64, streak int, _ int64) bool { return streak >= 3 },
		},
		{
			ID:          "blazing",
			Label:       "Blazing",
			Description: "Hold a 7 day streak",
			Earned:      func(_ int64, streak int, _ int64) bool { return streak >= 7 },
		},
		{
			ID:          "unstoppable",
			Label:       "Unstoppable",
			Description: "Hold a 30 day streak",
			Earned:      func(_ int64, streak int, _ int64) bool { return streak >= 30 },
		},
		{
			ID:          "daily_devotee",
			Label:       "Daily Devotee",
			Description: "Earn 50 XP in a single day",
			Earned:      func(_ int64, _ int, dailyXP int64) bool { return dailyXP >= 50 },
		},
	}
}
