package progression

import "time"

// sameCalendarDay compares wall-clock dates in the location of b.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ResetDaily applies the daily rollover to a snapshot. The daily counters
// and the claimed mission set reset together, exactly once per calendar day,
// keyed on LastMissionReset. The rollover also breaks a stale streak: a
// streak only survives when the last lesson was completed today or
// yesterday. Applying it twice on the same day is a no-op after the first
// application. The returned bool reports whether anything changed, so
// callers can skip the write-back.
func ResetDaily(s Snapshot, now time.Time) (Snapshot, bool) {
	if !s.LastMissionReset.IsZero() && sameCalendarDay(s.LastMissionReset, now) {
		return s, false
	}

	s.DailyXP = 0
	s.DailyLessons = 0
	s.ClaimedMissions = []string{}
	s.LastMissionReset = now
	if s.Streak > 0 && !streakAlive(s.LastLesson, now) {
		s.Streak = 0
	}
	return s, true
}

// streakAlive reports whether a streak is still extendable: the last lesson
// was today (already extended) or yesterday (extendable today).
func streakAlive(lastLesson, now time.Time) bool {
	if lastLesson.IsZero() {
		return false
	}
	return sameCalendarDay(lastLesson, now) ||
		sameCalendarDay(lastLesson, now.AddDate(0, 0, -1))
}

// EvaluateMission derives a single mission's progress from the snapshot.
// Progress is clamped at Target and never exceeds it. A mission with a
// non-positive target is returned as-is with zero progress (defined no-op
// for invalid definitions).
func EvaluateMission(m Mission, s Snapshot) MissionStatus {
	status := MissionStatus{Mission: m, Claimed: s.HasClaimed(m.ID)}
	if m.Target <= 0 {
		return status
	}

	switch m.Type {
	case MissionXP:
		status.Progress = min64(s.DailyXP, m.Target)
	case MissionStreak:
		// Rewards on any positive streak, not only a streak renewed today.
		// ResetDaily zeroes stale streaks at rollover, so this never pays
		// out for a streak the user has already let lapse.
		if s.Streak > 0 {
			status.Progress = 1
		}
	case MissionWildcard:
		status.Progress = min64(int64(s.DailyLessons), m.Target)
	default:
		return status
	}

	status.Completed = status.Progress >= m.Target
	return status
}

// EvaluateMissions evaluates the whole catalog against one snapshot.
func EvaluateMissions(catalog []Mission, s Snapshot) []MissionStatus {
	statuses := make([]MissionStatus, 0, len(catalog))
	for _, m := range catalog {
		statuses = append(statuses, EvaluateMission(m, s))
	}
	return statuses
}

// ClaimReward attempts to claim a mission's gold reward. The claim is valid
// only when the mission is completed and not yet in the claimed set; any
// other case returns the snapshot unchanged with a zero ClaimResult. A
// successful claim adds the reward to Gold and records the mission id, a
// one-way transition.
func ClaimReward(catalog []Mission, s Snapshot, missionID string) (Snapshot, ClaimResult) {
	if missionID == "" {
		return s, ClaimResult{}
	}

	for _, m := range catalog {
		if m.ID != missionID {
			continue
		}
		status := EvaluateMission(m, s)
		if !status.Completed || status.Claimed || m.Reward <= 0 {
			return s, ClaimResult{}
		}

		s.Gold += m.Reward
		s.ClaimedMissions = append(append([]string{}, s.ClaimedMissions...), m.ID)
		return s, ClaimResult{Claimed: true, Reward: m.Reward}
	}

	return s, ClaimResult{}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
