package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/vantagelearn/lumen/lumen/database/models"
)

type TimetableRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.TimetableEntry, error)
	Create(ctx context.Context, entry *models.TimetableEntry) error
	Update(ctx context.Context, entry *models.TimetableEntry) error
	Delete(ctx context.Context, id, userID int64) error
}

type timetableRepository struct {
	db *bun.DB
}

func NewTimetableRepository(db *bun.DB) TimetableRepository {
	return &timetableRepository{db: db}
}

func (r *timetableRepository) ListByUser(ctx context.Context, userID int64) ([]*models.TimetableEntry, error) {
	var entries []*models.TimetableEntry
	err := r.db.NewSelect().
		Model(&entries).
		Where("user_id = ?", userID).
		Order("weekday ASC").
		Order("start ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *timetableRepository) Create(ctx context.Context, entry *models.TimetableEntry) error {
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(entry).Exec(ctx)
	return err
}

func (r *timetableRepository) Update(ctx context.Context, entry *models.TimetableEntry) error {
	entry.UpdatedAt = time.Now()
	result, err := r.db.NewUpdate().
		Model(entry).
		WherePK().
		Where("user_id = ?", entry.UserID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *timetableRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.NewDelete().
		Model((*models.TimetableEntry)(nil)).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
