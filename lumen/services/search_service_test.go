package services

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories/mock"
)

func searchLessons() []*models.Lesson {
	return []*models.Lesson{
		{ID: 1, Subject: "math", Topic: "fractions", Title: "Adding Fractions"},
		{ID: 2, Subject: "math", Topic: "geometry", Title: "Angles and Triangles"},
		{ID: 3, Subject: "history", Topic: "rome", Title: "The Roman Republic"},
	}
}

func TestSearchService_SearchLessons(t *testing.T) {
	ctrl := gomock.NewController(t)
	lessonRepo := mock.NewMockLessonRepository(ctrl)
	questionRepo := mock.NewMockQuestionRepository(ctrl)
	lessonRepo.EXPECT().GetAll(gomock.Any()).Return(searchLessons(), nil).AnyTimes()

	service := NewSearchService(lessonRepo, questionRepo)

	t.Run("fuzzy query ranks the closest lesson first", func(t *testing.T) {
		results, err := service.SearchLessons(context.Background(), "fractns")
		if err != nil {
			t.Fatalf("SearchLessons() error = %v", err)
		}
		if len(results) == 0 || results[0].ID != 1 {
			t.Errorf("SearchLessons(fractns) = %+v, want lesson 1 first", results)
		}
	})

	t.Run("empty query returns the whole catalog", func(t *testing.T) {
		results, err := service.SearchLessons(context.Background(), "  ")
		if err != nil {
			t.Fatalf("SearchLessons() error = %v", err)
		}
		if len(results) != 3 {
			t.Errorf("SearchLessons(empty) = %d lessons, want 3", len(results))
		}
	})

	t.Run("no match yields no results", func(t *testing.T) {
		results, err := service.SearchLessons(context.Background(), "zzzzqqq")
		if err != nil {
			t.Fatalf("SearchLessons() error = %v", err)
		}
		if len(results) != 0 {
			t.Errorf("SearchLessons(garbage) = %+v, want none", results)
		}
	})
}

func TestSearchService_BestLesson(t *testing.T) {
	ctrl := gomock.NewController(t)
	lessonRepo := mock.NewMockLessonRepository(ctrl)
	questionRepo := mock.NewMockQuestionRepository(ctrl)
	lessonRepo.EXPECT().GetAll(gomock.Any()).Return(searchLessons(), nil).AnyTimes()

	service := NewSearchService(lessonRepo, questionRepo)

	best, err := service.BestLesson(context.Background(), "roman republic")
	if err != nil {
		t.Fatalf("BestLesson() error = %v", err)
	}
	if best == nil || best.ID != 3 {
		t.Errorf("BestLesson() = %+v, want lesson 3", best)
	}

	best, err = service.BestLesson(context.Background(), "zzzzqqq")
	if err != nil {
		t.Fatalf("BestLesson() error = %v", err)
	}
	if best != nil {
		t.Errorf("BestLesson(garbage) = %+v, want nil", best)
	}
}
