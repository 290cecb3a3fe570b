package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"github.com/vantagelearn/lumen/lumen/database/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateDailyProgress(ctx context.Context, user *models.User) error
	ApplyMissionClaim(ctx context.Context, userID int64, gold int64, completedMissions []string) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	GetTopUsers(ctx context.Context, limit int) ([]*models.User, error)
	GetUserCount(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.CompletedMissions == nil {
		user.CompletedMissions = []string{}
	}
	if user.Subjects == nil {
		user.Subjects = []string{}
	}
	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Warn("User not found in database",
				slog.String("type", "db"),
				slog.String("operation", "GetByID"),
				slog.Int64("user_id", id))
		} else {
			slog.Error("Database error when getting user",
				slog.String("type", "db"),
				slog.String("operation", "GetByID"),
				slog.Int64("user_id", id),
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("lower(email) = lower(?)", email).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(user).
		WherePK().
		Exec(ctx)
	return err
}

// UpdateDailyProgress writes back only the counters the progression engine
// owns, leaving auth and profile columns untouched.
func (r *userRepository) UpdateDailyProgress(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(user).
		Column("xp", "streak", "gold",
			"daily_xp_earned", "daily_lessons_completed",
			"completed_missions", "last_mission_reset", "last_lesson_at",
			"updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to update daily progress",
			slog.String("type", "db"),
			slog.String("operation", "UpdateDailyProgress"),
			slog.Int64("user_id", user.ID),
			slog.Any("error", err))
	}
	return err
}

// ApplyMissionClaim persists a reward claim as a single-row update of gold
// and the claimed mission set together, the atomicity the claim flow needs.
func (r *userRepository) ApplyMissionClaim(ctx context.Context, userID int64, gold int64, completedMissions []string) error {
	if completedMissions == nil {
		completedMissions = []string{}
	}
	user := &models.User{
		ID:                userID,
		Gold:              gold,
		CompletedMissions: completedMissions,
		UpdatedAt:         time.Now(),
	}
	res, err := r.db.NewUpdate().
		Model(user).
		Column("gold", "completed_missions", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply mission claim: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("password_hash = ?", passwordHash).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

func (r *userRepository) GetTopUsers(ctx context.Context, limit int) ([]*models.User, error) {
	if limit <= 0 {
		limit = 10
	}

	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Order("xp DESC").
		Order("id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}
	return users, nil
}

func (r *userRepository) GetUserCount(ctx context.Context) (int64, error) {
	count, err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Count(ctx)
	return int64(count), err
}
