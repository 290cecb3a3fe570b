package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/vantagelearn/lumen/lumen/database/models"
)

// NumberConflict marks a question number carrying more than one variant
// within a lesson. Variants are a deliberate authoring feature, but the
// admin surface flags them so duplicates created by accident get noticed.
type NumberConflict struct {
	Number int `bun:"number" json:"number"`
	Count  int `bun:"count" json:"count"`
}

type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	GetByLessonID(ctx context.Context, lessonID int64) ([]*models.Question, error)
	GetBySubjectTopic(ctx context.Context, subject, topic string) ([]*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id int64) error
	FindNumberConflicts(ctx context.Context, lessonID int64) ([]NumberConflict, error)
}

type questionRepository struct {
	db *bun.DB
}

func NewQuestionRepository(db *bun.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	question.CreatedAt = time.Now()
	question.UpdatedAt = time.Now()
	if question.Options == nil {
		question.Options = []string{}
	}
	_, err := r.db.NewInsert().Model(question).Exec(ctx)
	return err
}

func (r *questionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	question := new(models.Question)
	err := r.db.NewSelect().
		Model(question).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (r *questionRepository) GetByLessonID(ctx context.Context, lessonID int64) ([]*models.Question, error) {
	var questions []*models.Question
	err := r.db.NewSelect().
		Model(&questions).
		Where("lesson_id = ?", lessonID).
		Order("number ASC").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for lesson %d: %w", lessonID, err)
	}
	return questions, nil
}

// GetBySubjectTopic loads every question under a subject/topic pair, the
// candidate pool drills sample from.
func (r *questionRepository) GetBySubjectTopic(ctx context.Context, subject, topic string) ([]*models.Question, error) {
	var questions []*models.Question
	q := r.db.NewSelect().
		Model(&questions).
		Join("JOIN lessons AS l ON l.id = q.lesson_id").
		Where("l.subject = ?", subject)
	if topic != "" {
		q = q.Where("l.topic = ?", topic)
	}
	err := q.Order("q.lesson_id ASC").
		Order("q.number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for %s/%s: %w", subject, topic, err)
	}
	return questions, nil
}

func (r *questionRepository) Update(ctx context.Context, question *models.Question) error {
	question.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(question).
		WherePK().
		Exec(ctx)
	return err
}

func (r *questionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.NewDelete().
		Model((*models.Question)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *questionRepository) FindNumberConflicts(ctx context.Context, lessonID int64) ([]NumberConflict, error) {
	var conflicts []NumberConflict
	err := r.db.NewSelect().
		Model((*models.Question)(nil)).
		ColumnExpr("number").
		ColumnExpr("count(*) AS count").
		Where("lesson_id = ?", lessonID).
		GroupExpr("number").
		Having("count(*) > 1").
		Order("number ASC").
		Scan(ctx, &conflicts)
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}
