package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories"
	"github.com/vantagelearn/lumen/lumen/progression"
)

// ProgressService is the session controller for missions and badges: it
// loads a counter snapshot, runs the progression engine over it and writes
// the result back. The engine itself never touches storage.
type ProgressService struct {
	userRepo repositories.UserRepository
	missions []progression.Mission
	badges   []progression.Badge
	now      func() time.Time
}

func NewProgressService(userRepo repositories.UserRepository, missions []progression.Mission, badges []progression.Badge) *ProgressService {
	return &ProgressService{
		userRepo: userRepo,
		missions: missions,
		badges:   badges,
		now:      time.Now,
	}
}

// SnapshotOf converts a user row into an engine snapshot.
func SnapshotOf(user *models.User) progression.Snapshot {
	return progression.Snapshot{
		XP:               user.XP,
		Streak:           user.Streak,
		Gold:             user.Gold,
		DailyXP:          user.DailyXPEarned,
		DailyLessons:     user.DailyLessonsCompleted,
		ClaimedMissions:  user.CompletedMissions,
		LastMissionReset: user.LastMissionReset,
		LastLesson:       user.LastLessonAt,
	}
}

func applySnapshot(user *models.User, s progression.Snapshot) {
	user.XP = s.XP
	user.Streak = s.Streak
	user.Gold = s.Gold
	user.DailyXPEarned = s.DailyXP
	user.DailyLessonsCompleted = s.DailyLessons
	user.CompletedMissions = s.ClaimedMissions
	user.LastMissionReset = s.LastMissionReset
}

// CurrentUser loads the user and applies the daily rollover, persisting it
// when it actually changed anything. Every read path goes through here so
// the reset happens at most once per day no matter which page triggers it.
func (s *ProgressService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	snapshot, changed := progression.ResetDaily(SnapshotOf(user), s.now())
	if changed {
		applySnapshot(user, snapshot)
		if err := s.userRepo.UpdateDailyProgress(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to persist daily reset: %w", err)
		}
		slog.Info("Daily progress reset",
			slog.String("type", "sys"),
			slog.Int64("user_id", userID))
	}

	return user, nil
}

// Missions evaluates the static catalog against the user's counters.
func (s *ProgressService) Missions(ctx context.Context, userID int64) ([]progression.MissionStatus, error) {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progression.EvaluateMissions(s.missions, SnapshotOf(user)), nil
}

// Badges recomputes the earned set; nothing is stored.
func (s *ProgressService) Badges(ctx context.Context, userID int64) ([]progression.BadgeStatus, error) {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progression.EvaluateBadges(s.badges, SnapshotOf(user)), nil
}

// ClaimMission claims a completed mission's gold. An invalid claim (not
// completed, already claimed, unknown id) returns a zero ClaimResult and no
// error: the business rule is an idempotent no-op, not a failure.
func (s *ProgressService) ClaimMission(ctx context.Context, userID int64, missionID string) (progression.ClaimResult, error) {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return progression.ClaimResult{}, err
	}

	snapshot, result := progression.ClaimReward(s.missions, SnapshotOf(user), missionID)
	if !result.Claimed {
		slog.Debug("Mission claim rejected",
			slog.String("type", "sys"),
			slog.Int64("user_id", userID),
			slog.String("mission_id", missionID))
		return result, nil
	}

	// Gold and the claimed set land in one single-row update.
	if err := s.userRepo.ApplyMissionClaim(ctx, userID, snapshot.Gold, snapshot.ClaimedMissions); err != nil {
		return progression.ClaimResult{}, fmt.Errorf("failed to persist mission claim: %w", err)
	}

	slog.Info("Mission reward claimed",
		slog.String("type", "sys"),
		slog.Int64("user_id", userID),
		slog.String("mission_id", missionID),
		slog.Int64("reward", result.Reward))
	return result, nil
}

// Level is the display level for the user's XP.
func (s *ProgressService) Level(user *models.User) int {
	return progression.Level(user.XP)
}
