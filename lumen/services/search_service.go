package services

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories"
)

// lessonSearchItems implements fuzzy.Source over lessons.
type lessonSearchItems []lessonSearchItem

type lessonSearchItem struct {
	Lesson *models.Lesson
	Text   string
}

func (items lessonSearchItems) Len() int            { return len(items) }
func (items lessonSearchItems) String(i int) string { return items[i].Text }

// questionSearchItems implements fuzzy.Source over question prompts.
type questionSearchItems []questionSearchItem

type questionSearchItem struct {
	Question *models.Question
	Text     string
}

func (items questionSearchItems) Len() int            { return len(items) }
func (items questionSearchItems) String(i int) string { return items[i].Text }

// SearchService provides fuzzy matching over lessons and questions for the
// admin content screens. Matching runs in memory against the full catalog,
// which stays small enough that a database-side search is not worth it.
type SearchService struct {
	lessonRepo   repositories.LessonRepository
	questionRepo repositories.QuestionRepository
}

func NewSearchService(lessonRepo repositories.LessonRepository, questionRepo repositories.QuestionRepository) *SearchService {
	return &SearchService{
		lessonRepo:   lessonRepo,
		questionRepo: questionRepo,
	}
}

// SearchLessons returns lessons matching the query, best match first.
// An empty query returns the whole catalog in repository order.
func (s *SearchService) SearchLessons(ctx context.Context, query string) ([]*models.Lesson, error) {
	lessons, err := s.lessonRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return lessons, nil
	}

	items := make(lessonSearchItems, len(lessons))
	for i, lesson := range lessons {
		items[i] = lessonSearchItem{
			Lesson: lesson,
			Text:   normalizeSearchText(lesson.Subject + " " + lesson.Topic + " " + lesson.Title),
		}
	}

	matches := fuzzy.FindFrom(normalizeSearchText(query), items)
	results := make([]*models.Lesson, len(matches))
	for i, match := range matches {
		results[i] = items[match.Index].Lesson
	}
	return results, nil
}

// SearchQuestions returns questions in a lesson whose prompt matches the query.
func (s *SearchService) SearchQuestions(ctx context.Context, lessonID int64, query string) ([]*models.Question, error) {
	questions, err := s.questionRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return questions, nil
	}

	items := make(questionSearchItems, len(questions))
	for i, question := range questions {
		items[i] = questionSearchItem{
			Question: question,
			Text:     normalizeSearchText(question.Prompt),
		}
	}

	matches := fuzzy.FindFrom(normalizeSearchText(query), items)
	results := make([]*models.Question, len(matches))
	for i, match := range matches {
		results[i] = items[match.Index].Question
	}
	return results, nil
}

// BestLesson returns the single best match for a query, or nil when nothing
// matches at all.
func (s *SearchService) BestLesson(ctx context.Context, query string) (*models.Lesson, error) {
	results, err := s.SearchLessons(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func normalizeSearchText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.ReplaceAll(text, "_", " ")
	text = strings.ReplaceAll(text, "-", " ")
	return strings.Join(strings.Fields(text), " ")
}
