package services

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"

	"github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories"
	"github.com/vantagelearn/lumen/lumen/progression"
)

const (
	leaderboardCacheSize = 64
	leaderboardCacheTTL  = time.Minute
)

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	XP       int64  `json:"xp"`
	Level    int    `json:"level"`
	Streak   int    `json:"streak"`
	Badges   int    `json:"badges"`
}

type Leaderboard struct {
	Entries    []LeaderboardEntry `json:"entries"`
	TotalUsers int64              `json:"total_users"`
}

type cachedBoard struct {
	board    *Leaderboard
	cachedAt time.Time
}

// LeaderboardService serves ranked users by XP. Results are cached briefly:
// the board is read on every visit but only needs to move at human pace.
type LeaderboardService struct {
	userRepo repositories.UserRepository
	badges   []progression.Badge
	cache    *lru.Cache
}

func NewLeaderboardService(userRepo repositories.UserRepository, badges []progression.Badge) *LeaderboardService {
	cache, _ := lru.New(leaderboardCacheSize)
	return &LeaderboardService{
		userRepo: userRepo,
		badges:   badges,
		cache:    cache,
	}
}

func (s *LeaderboardService) Top(ctx context.Context, limit int) (*Leaderboard, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	key := fmt.Sprintf("top:%d", limit)
	if v, ok := s.cache.Get(key); ok {
		if cached, ok := v.(*cachedBoard); ok && time.Since(cached.cachedAt) < leaderboardCacheTTL {
			return cached.board, nil
		}
		s.cache.Remove(key)
	}

	var (
		users []*models.User
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.userRepo.GetTopUsers(gctx, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.userRepo.GetUserCount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   user.ID,
			Username: user.Username,
			XP:       user.XP,
			Level:    progression.Level(user.XP),
			Streak:   user.Streak,
			Badges:   len(progression.EarnedBadgeIDs(s.badges, SnapshotOf(user))),
		})
	}

	board := &Leaderboard{Entries: entries, TotalUsers: total}
	s.cache.Add(key, &cachedBoard{board: board, cachedAt: time.Now()})
	return board, nil
}
