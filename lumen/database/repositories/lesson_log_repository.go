package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"github.com/vantagelearn/lumen/lumen/database/models"
)

type LessonLogRepository interface {
	// RecordCompletion persists a collect in one transaction: the user's
	// progress counters and the new completion log row land together or not
	// at all.
	RecordCompletion(ctx context.Context, user *models.User, log *models.LessonLog) error
	HasCompletion(ctx context.Context, userID, lessonID int64) (bool, error)
	GetRecent(ctx context.Context, userID int64, limit int) ([]*models.LessonLog, error)
	CountSince(ctx context.Context, userID int64, since time.Time) (int, error)
}

type lessonLogRepository struct {
	db *bun.DB
}

func NewLessonLogRepository(db *bun.DB) LessonLogRepository {
	return &lessonLogRepository{db: db}
}

func (r *lessonLogRepository) RecordCompletion(ctx context.Context, user *models.User, log *models.LessonLog) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		user.UpdatedAt = time.Now()
		if _, err := tx.NewUpdate().
			Model(user).
			Column("xp", "streak",
				"daily_xp_earned", "daily_lessons_completed",
				"completed_missions", "last_mission_reset",
				"last_lesson_at", "updated_at").
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to update user progress: %w", err)
		}

		if log.CreatedAt.IsZero() {
			log.CreatedAt = time.Now()
		}
		if _, err := tx.NewInsert().Model(log).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert lesson log: %w", err)
		}
		return nil
	})

	if err != nil {
		slog.Error("Failed to record lesson completion",
			slog.String("type", "db"),
			slog.String("operation", "RecordCompletion"),
			slog.Int64("user_id", user.ID),
			slog.Int64("lesson_id", log.LessonID),
			slog.Any("error", err))
	}
	return err
}

func (r *lessonLogRepository) HasCompletion(ctx context.Context, userID, lessonID int64) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.LessonLog)(nil)).
		Where("user_id = ?", userID).
		Where("lesson_id = ?", lessonID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check completion: %w", err)
	}
	return exists, nil
}

func (r *lessonLogRepository) GetRecent(ctx context.Context, userID int64, limit int) ([]*models.LessonLog, error) {
	if limit <= 0 {
		limit = 20
	}

	var logs []*models.LessonLog
	err := r.db.NewSelect().
		Model(&logs).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *lessonLogRepository) CountSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	return r.db.NewSelect().
		Model((*models.LessonLog)(nil)).
		Where("user_id = ?", userID).
		Where("created_at >= ?", since).
		Count(ctx)
}
