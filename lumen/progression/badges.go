package progression

import "time"

const xpPerLevel = 100

// Level derives the display level from total XP.
func Level(xp int64) int {
	if xp < 0 {
		return 1
	}
	return int(xp/xpPerLevel) + 1
}

// EvaluateBadges recomputes the earned set from the current counters. The
// computation is pure and order-independent: the same (xp, streak, dailyXP)
// always yields the same result.
func EvaluateBadges(catalog []Badge, s Snapshot) []BadgeStatus {
	statuses := make([]BadgeStatus, 0, len(catalog))
	for _, b := range catalog {
		status := BadgeStatus{ID: b.ID, Label: b.Label, Description: b.Description}
		if b.Earned != nil {
			status.Earned = b.Earned(s.XP, s.Streak, s.DailyXP)
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// EarnedBadgeIDs returns just the ids of the earned badges.
func EarnedBadgeIDs(catalog []Badge, s Snapshot) []string {
	ids := make([]string, 0, len(catalog))
	for _, b := range EvaluateBadges(catalog, s) {
		if b.Earned {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// NextStreak computes the streak value after an engagement at now, given the
// time of the previous engagement. Same-day activity leaves the streak
// untouched, next-day activity extends it, anything longer restarts at 1.
func NextStreak(current int, lastActivity, now time.Time) int {
	if lastActivity.IsZero() {
		return 1
	}
	if sameCalendarDay(lastActivity, now) {
		if current < 1 {
			return 1
		}
		return current
	}
	if sameCalendarDay(lastActivity.AddDate(0, 0, 1), now) {
		return current + 1
	}
	return 1
}
