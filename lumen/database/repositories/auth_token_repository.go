package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"github.com/vantagelearn/lumen/lumen/database/models"
)

type AuthTokenRepository interface {
	Create(ctx context.Context, token *models.AuthToken) error
	// Consume marks a token used and returns it. A token that is unknown,
	// expired, wrong-purpose or already consumed yields sql.ErrNoRows.
	Consume(ctx context.Context, token, purpose string) (*models.AuthToken, error)
	DeleteExpired(ctx context.Context) error
}

type authTokenRepository struct {
	db *bun.DB
}

func NewAuthTokenRepository(db *bun.DB) AuthTokenRepository {
	return &authTokenRepository{db: db}
}

func (r *authTokenRepository) Create(ctx context.Context, token *models.AuthToken) error {
	token.CreatedAt = time.Now()
	_, err := r.db.NewInsert().Model(token).Exec(ctx)
	return err
}

func (r *authTokenRepository) Consume(ctx context.Context, token, purpose string) (*models.AuthToken, error) {
	now := time.Now()
	row := new(models.AuthToken)

	// Single-use guard: the conditional UPDATE wins exactly once per token.
	res, err := r.db.NewUpdate().
		Model(row).
		Set("consumed_at = ?", now).
		Where("token = ?", token).
		Where("purpose = ?", purpose).
		Where("consumed_at IS NULL").
		Where("expires_at > ?", now).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		slog.Debug("Auth token rejected",
			slog.String("type", "db"),
			slog.String("operation", "Consume"),
			slog.String("purpose", purpose))
		return nil, sql.ErrNoRows
	}

	return row, nil
}

func (r *authTokenRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.db.NewDelete().
		Model((*models.AuthToken)(nil)).
		Where("expires_at < ?", time.Now()).
		Exec(ctx)
	return err
}
