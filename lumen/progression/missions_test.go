package progression

import (
	"reflect"
	"testing"
	"time"
)

func Test_ResetDaily(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		snapshot    Snapshot
		wantChanged bool
	}{
		{
			name: "never reset before",
			snapshot: Snapshot{
				DailyXP:         40,
				DailyLessons:    2,
				ClaimedMissions: []string{"daily_xp"},
			},
			wantChanged: true,
		},
		{
			name: "last reset yesterday",
			snapshot: Snapshot{
				DailyXP:          40,
				DailyLessons:     2,
				ClaimedMissions:  []string{"daily_xp"},
				LastMissionReset: now.AddDate(0, 0, -1),
			},
			wantChanged: true,
		},
		{
			name: "already reset today",
			snapshot: Snapshot{
				DailyXP:          15,
				DailyLessons:     1,
				LastMissionReset: now.Add(-3 * time.Hour),
			},
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ResetDaily(tt.snapshot, now)
			if changed != tt.wantChanged {
				t.Fatalf("ResetDaily() changed = %v, want %v", changed, tt.wantChanged)
			}
			if !changed {
				if !reflect.DeepEqual(got, tt.snapshot) {
					t.Errorf("ResetDaily() modified snapshot without reporting change: %+v", got)
				}
				return
			}
			if got.DailyXP != 0 || got.DailyLessons != 0 || len(got.ClaimedMissions) != 0 {
				t.Errorf("ResetDaily() left daily state: %+v", got)
			}
			if !got.LastMissionReset.Equal(now) {
				t.Errorf("ResetDaily() LastMissionReset = %v, want %v", got.LastMissionReset, now)
			}
		})
	}
}

func Test_ResetDaily_BreaksStaleStreak(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastLesson time.Time
		wantStreak int
	}{
		{
			name:       "lesson earlier today keeps streak",
			lastLesson: now.Add(-2 * time.Hour),
			wantStreak: 7,
		},
		{
			name:       "lesson yesterday keeps streak",
			lastLesson: now.AddDate(0, 0, -1),
			wantStreak: 7,
		},
		{
			name:       "idle day breaks streak",
			lastLesson: now.AddDate(0, 0, -2),
			wantStreak: 0,
		},
		{
			name:       "no lesson ever breaks streak",
			wantStreak: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Snapshot{
				Streak:           7,
				LastMissionReset: now.AddDate(0, 0, -1),
				LastLesson:       tt.lastLesson,
			}
			got, changed := ResetDaily(s, now)
			if !changed {
				t.Fatal("rollover reported no change")
			}
			if got.Streak != tt.wantStreak {
				t.Errorf("ResetDaily() streak = %d, want %d", got.Streak, tt.wantStreak)
			}
		})
	}
}

func Test_ResetDaily_StaleStreakStopsPayingMissions(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	streakMission := Mission{ID: "daily_streak", Type: MissionStreak, Target: 1, Reward: 20}

	s := Snapshot{
		Streak:           7,
		LastMissionReset: now.AddDate(0, 0, -3),
		LastLesson:       now.AddDate(0, 0, -3),
	}

	// Days of rollovers with no lessons in between: the streak must not
	// survive the first one, and the mission must stop completing.
	for day := 0; day < 10; day++ {
		s, _ = ResetDaily(s, now.AddDate(0, 0, day))
	}

	if s.Streak != 0 {
		t.Errorf("streak after idle rollovers = %d, want 0", s.Streak)
	}
	if got := EvaluateMission(streakMission, s); got.Completed {
		t.Error("streak mission still completed after the streak lapsed")
	}
}

func Test_ResetDaily_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	s := Snapshot{XP: 200, DailyXP: 55, DailyLessons: 3, ClaimedMissions: []string{"daily_xp", "daily_streak"}}

	once, _ := ResetDaily(s, now)
	twice, changed := ResetDaily(once, now.Add(5*time.Hour))

	if changed {
		t.Error("second ResetDaily on the same day reported a change")
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second ResetDaily altered the snapshot: %+v vs %+v", once, twice)
	}
}

func Test_EvaluateMission(t *testing.T) {
	xpMission := Mission{ID: "daily_xp", Type: MissionXP, Target: 30, Reward: 50}
	streakMission := Mission{ID: "daily_streak", Type: MissionStreak, Target: 1, Reward: 20}
	wildcard := Mission{ID: "daily_lessons", Type: MissionWildcard, Target: 2, Reward: 40}

	tests := []struct {
		name          string
		mission       Mission
		snapshot      Snapshot
		wantProgress  int64
		wantCompleted bool
	}{
		{
			name:     "xp mission no progress",
			mission:  xpMission,
			snapshot: Snapshot{DailyXP: 0},
		},
		{
			name:          "xp mission exactly at target",
			mission:       xpMission,
			snapshot:      Snapshot{DailyXP: 30},
			wantProgress:  30,
			wantCompleted: true,
		},
		{
			name:          "xp mission clamped above target",
			mission:       xpMission,
			snapshot:      Snapshot{DailyXP: 120},
			wantProgress:  30,
			wantCompleted: true,
		},
		{
			name:     "streak mission zero streak",
			mission:  streakMission,
			snapshot: Snapshot{Streak: 0},
		},
		{
			name:          "streak mission any positive streak",
			mission:       streakMission,
			snapshot:      Snapshot{Streak: 1},
			wantProgress:  1,
			wantCompleted: true,
		},
		{
			name:          "streak mission long streak still clamps to 1",
			mission:       streakMission,
			snapshot:      Snapshot{Streak: 14},
			wantProgress:  1,
			wantCompleted: true,
		},
		{
			name:         "wildcard partial",
			mission:      wildcard,
			snapshot:     Snapshot{DailyLessons: 1},
			wantProgress: 1,
		},
		{
			name:          "wildcard complete",
			mission:       wildcard,
			snapshot:      Snapshot{DailyLessons: 5},
			wantProgress:  2,
			wantCompleted: true,
		},
		{
			name:     "invalid non-positive target",
			mission:  Mission{ID: "broken", Type: MissionXP, Target: -5, Reward: 10},
			snapshot: Snapshot{DailyXP: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateMission(tt.mission, tt.snapshot)
			if got.Progress != tt.wantProgress {
				t.Errorf("EvaluateMission() progress = %d, want %d", got.Progress, tt.wantProgress)
			}
			if got.Completed != tt.wantCompleted {
				t.Errorf("EvaluateMission() completed = %v, want %v", got.Completed, tt.wantCompleted)
			}
		})
	}
}

func Test_EvaluateMission_ProgressMonotonic(t *testing.T) {
	m := Mission{ID: "daily_xp", Type: MissionXP, Target: 30, Reward: 50}

	var prev int64
	for dailyXP := int64(0); dailyXP <= 60; dailyXP++ {
		got := EvaluateMission(m, Snapshot{DailyXP: dailyXP})
		if got.Progress < prev {
			t.Fatalf("progress decreased from %d to %d at dailyXP=%d", prev, got.Progress, dailyXP)
		}
		if got.Progress > m.Target {
			t.Fatalf("progress %d exceeds target %d at dailyXP=%d", got.Progress, m.Target, dailyXP)
		}
		prev = got.Progress
	}
}

func Test_ClaimReward(t *testing.T) {
	catalog := DefaultMissions()

	tests := []struct {
		name        string
		snapshot    Snapshot
		missionID   string
		wantClaimed bool
		wantGold    int64
	}{
		{
			name:        "completed mission claims once",
			snapshot:    Snapshot{Gold: 100, DailyXP: 30},
			missionID:   "daily_xp",
			wantClaimed: true,
			wantGold:    150,
		},
		{
			name:      "incomplete mission is a no-op",
			snapshot:  Snapshot{Gold: 100, DailyXP: 10},
			missionID: "daily_xp",
			wantGold:  100,
		},
		{
			name:      "already claimed is a no-op",
			snapshot:  Snapshot{Gold: 100, DailyXP: 30, ClaimedMissions: []string{"daily_xp"}},
			missionID: "daily_xp",
			wantGold:  100,
		},
		{
			name:      "unknown mission id is a no-op",
			snapshot:  Snapshot{Gold: 100, DailyXP: 30},
			missionID: "nope",
			wantGold:  100,
		},
		{
			name:      "empty mission id is a no-op",
			snapshot:  Snapshot{Gold: 100, DailyXP: 30},
			missionID: "",
			wantGold:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, result := ClaimReward(catalog, tt.snapshot, tt.missionID)
			if result.Claimed != tt.wantClaimed {
				t.Errorf("ClaimReward() claimed = %v, want %v", result.Claimed, tt.wantClaimed)
			}
			if got.Gold != tt.wantGold {
				t.Errorf("ClaimReward() gold = %d, want %d", got.Gold, tt.wantGold)
			}
			if tt.wantClaimed && !got.HasClaimed(tt.missionID) {
				t.Errorf("ClaimReward() did not record %q in claimed set", tt.missionID)
			}
		})
	}
}

func Test_ClaimReward_SecondClaimNoEffect(t *testing.T) {
	catalog := []Mission{{ID: "daily_xp", Type: MissionXP, Target: 30, Reward: 50}}
	s := Snapshot{Gold: 100, DailyXP: 45}

	s, first := ClaimReward(catalog, s, "daily_xp")
	if !first.Claimed || s.Gold != 150 {
		t.Fatalf("first claim = %+v, gold = %d", first, s.Gold)
	}

	s, second := ClaimReward(catalog, s, "daily_xp")
	if second.Claimed {
		t.Error("second claim was accepted")
	}
	if s.Gold != 150 {
		t.Errorf("gold after second claim = %d, want 150", s.Gold)
	}
}

func Test_EvaluateMissions_CompletedIndependentOfClaims(t *testing.T) {
	catalog := DefaultMissions()
	s := Snapshot{DailyXP: 30, Streak: 2, DailyLessons: 2, ClaimedMissions: []string{"daily_xp"}}

	for _, status := range EvaluateMissions(catalog, s) {
		if !status.Completed {
			t.Errorf("mission %s not completed: %+v", status.ID, status)
		}
	}
}
