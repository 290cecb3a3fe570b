package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/vantagelearn/lumen/lumen/database/models"
)

type JournalRepository interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]*models.JournalEntry, error)
	GetByID(ctx context.Context, id, userID int64) (*models.JournalEntry, error)
	Create(ctx context.Context, entry *models.JournalEntry) error
	Update(ctx context.Context, entry *models.JournalEntry) error
	Delete(ctx context.Context, id, userID int64) error
}

type journalRepository struct {
	db *bun.DB
}

func NewJournalRepository(db *bun.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	var entries []*models.JournalEntry
	err := r.db.NewSelect().
		Model(&entries).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *journalRepository) GetByID(ctx context.Context, id, userID int64) (*models.JournalEntry, error) {
	entry := new(models.JournalEntry)
	err := r.db.NewSelect().
		Model(entry).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *journalRepository) Create(ctx context.Context, entry *models.JournalEntry) error {
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(entry).Exec(ctx)
	return err
}

func (r *journalRepository) Update(ctx context.Context, entry *models.JournalEntry) error {
	entry.UpdatedAt = time.Now()
	result, err := r.db.NewUpdate().
		Model(entry).
		Column("title", "body", "mood", "updated_at").
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

func (r *journalRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.NewDelete().
		Model((*models.JournalEntry)(nil)).
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
