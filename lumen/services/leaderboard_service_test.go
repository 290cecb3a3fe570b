package services

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories/mock"
	"github.com/vantagelearn/lumen/lumen/progression"
)

func TestLeaderboardService_Top(t *testing.T) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	// One fetch pair only: the second Top hits the cache.
	repo.EXPECT().GetTopUsers(gomock.Any(), 2).Return([]*models.User{
		{ID: 1, Username: "ada", XP: 520, Streak: 9},
		{ID: 2, Username: "grace", XP: 130, Streak: 1},
	}, nil).Times(1)
	repo.EXPECT().GetUserCount(gomock.Any()).Return(int64(42), nil).Times(1)

	service := NewLeaderboardService(repo, progression.DefaultBadges())
	board, err := service.Top(context.Background(), 2)
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if board.TotalUsers != 42 {
		t.Errorf("TotalUsers = %d, want 42", board.TotalUsers)
	}
	if len(board.Entries) != 2 {
		t.Fatalf("Top() entries = %d, want 2", len(board.Entries))
	}

	first := board.Entries[0]
	if first.Rank != 1 || first.Username != "ada" {
		t.Errorf("first entry = %+v", first)
	}
	if first.Level != 6 {
		t.Errorf("Level = %d, want 6 for 520 XP", first.Level)
	}
	// 520 XP earns the first three XP badges; a 9-day streak earns two more.
	if first.Badges != 5 {
		t.Errorf("Badges = %d, want 5", first.Badges)
	}

	cached, err := service.Top(context.Background(), 2)
	if err != nil {
		t.Fatalf("cached Top() error = %v", err)
	}
	if cached.Entries[0].Username != "ada" {
		t.Errorf("cached Top() = %+v", cached.Entries[0])
	}
}

func TestLeaderboardService_LimitClamp(t *testing.T) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	repo.EXPECT().GetTopUsers(gomock.Any(), 25).Return(nil, nil)
	repo.EXPECT().GetUserCount(gomock.Any()).Return(int64(0), nil)

	service := NewLeaderboardService(repo, progression.DefaultBadges())
	if _, err := service.Top(context.Background(), -3); err != nil {
		t.Fatalf("Top() error = %v", err)
	}
}
