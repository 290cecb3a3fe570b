package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/vantagelearn/lumen/lumen/database/models"
)

type LessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) error
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
	GetAll(ctx context.Context) ([]*models.Lesson, error)
	GetBySubject(ctx context.Context, subject string) ([]*models.Lesson, error)
	GetBySubjectTopic(ctx context.Context, subject, topic string) ([]*models.Lesson, error)
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id int64) error
	GetLessonCount(ctx context.Context) (int64, error)
}

type lessonRepository struct {
	db *bun.DB
}

func NewLessonRepository(db *bun.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = time.Now()
	if lesson.Categories == nil {
		lesson.Categories = []string{}
	}
	_, err := r.db.NewInsert().Model(lesson).Exec(ctx)
	return err
}

func (r *lessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	lesson := new(models.Lesson)
	err := r.db.NewSelect().
		Model(lesson).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

func (r *lessonRepository) GetAll(ctx context.Context) ([]*models.Lesson, error) {
	var lessons []*models.Lesson
	err := r.db.NewSelect().
		Model(&lessons).
		Order("subject ASC").
		Order("topic ASC").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return lessons, nil
}

func (r *lessonRepository) GetBySubject(ctx context.Context, subject string) ([]*models.Lesson, error) {
	var lessons []*models.Lesson
	err := r.db.NewSelect().
		Model(&lessons).
		Where("subject = ?", subject).
		Order("topic ASC").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepository) GetBySubjectTopic(ctx context.Context, subject, topic string) ([]*models.Lesson, error) {
	var lessons []*models.Lesson
	err := r.db.NewSelect().
		Model(&lessons).
		Where("subject = ?", subject).
		Where("topic = ?", topic).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	lesson.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(lesson).
		WherePK().
		Exec(ctx)
	return err
}

// Delete removes a lesson together with its questions. There is no FK
// cascade in the schema, so both deletes run in one transaction.
func (r *lessonRepository) Delete(ctx context.Context, id int64) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Question)(nil)).
			Where("lesson_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		result, err := tx.NewDelete().
			Model((*models.Lesson)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}

func (r *lessonRepository) GetLessonCount(ctx context.Context) (int64, error) {
	count, err := r.db.NewSelect().
		Model((*models.Lesson)(nil)).
		Count(ctx)
	return int64(count), err
}
