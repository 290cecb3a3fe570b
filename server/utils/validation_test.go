package utils

import (
	"testing"

	"github.com/vantagelearn/lumen/server/models"
)

func TestValidateSignUpRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       models.SignUpRequest
		wantField string
	}{
		{
			name: "valid request",
			req:  models.SignUpRequest{Email: "ada@example.com", Username: "ada", Password: "hunter2222", Subjects: []string{"maths"}},
		},
		{
			name:      "bad email",
			req:       models.SignUpRequest{Email: "not-an-email", Username: "ada", Password: "hunter2222"},
			wantField: "email",
		},
		{
			name:      "short password",
			req:       models.SignUpRequest{Email: "ada@example.com", Username: "ada", Password: "short"},
			wantField: "password",
		},
		{
			name:      "blank username",
			req:       models.SignUpRequest{Email: "ada@example.com", Username: "   ", Password: "hunter2222"},
			wantField: "username",
		},
		{
			name:      "uppercase subject slug",
			req:       models.SignUpRequest{Email: "ada@example.com", Username: "ada", Password: "hunter2222", Subjects: []string{"Maths"}},
			wantField: "subjects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateSignUpRequest(&tt.req)
			if tt.wantField == "" {
				if details != nil {
					t.Errorf("ValidateSignUpRequest() = %v, want nil", details)
				}
				return
			}
			if _, ok := details[tt.wantField]; !ok {
				t.Errorf("ValidateSignUpRequest() = %v, want error on %q", details, tt.wantField)
			}
		})
	}
}

func TestValidateQuestionRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       models.QuestionRequest
		wantField string
	}{
		{
			name: "valid multiple choice",
			req:  models.QuestionRequest{LessonID: 1, Number: 1, Type: "multiple", Prompt: "2+2?", Options: []string{"3", "4"}, Answer: "4"},
		},
		{
			name: "valid write-in",
			req:  models.QuestionRequest{LessonID: 1, Number: 2, Type: "write", Prompt: "Capital of France?", Answer: "Paris"},
		},
		{
			name: "text needs no answer",
			req:  models.QuestionRequest{LessonID: 1, Number: 3, Type: "text", Prompt: "Read this passage."},
		},
		{
			name:      "multiple choice with one option",
			req:       models.QuestionRequest{LessonID: 1, Number: 1, Type: "multiple", Prompt: "2+2?", Options: []string{"4"}, Answer: "4"},
			wantField: "options",
		},
		{
			name:      "answer outside options",
			req:       models.QuestionRequest{LessonID: 1, Number: 1, Type: "multiple", Prompt: "2+2?", Options: []string{"3", "4"}, Answer: "5"},
			wantField: "answer",
		},
		{
			name:      "write-in without answer",
			req:       models.QuestionRequest{LessonID: 1, Number: 1, Type: "write", Prompt: "Capital?", Answer: "  "},
			wantField: "answer",
		},
		{
			name:      "unknown type",
			req:       models.QuestionRequest{LessonID: 1, Number: 1, Type: "essay", Prompt: "Discuss."},
			wantField: "type",
		},
		{
			name:      "missing lesson",
			req:       models.QuestionRequest{Number: 1, Type: "text", Prompt: "Read."},
			wantField: "lesson_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateQuestionRequest(&tt.req)
			if tt.wantField == "" {
				if details != nil {
					t.Errorf("ValidateQuestionRequest() = %v, want nil", details)
				}
				return
			}
			if _, ok := details[tt.wantField]; !ok {
				t.Errorf("ValidateQuestionRequest() = %v, want error on %q", details, tt.wantField)
			}
		})
	}
}

func TestValidateTimetableRequest(t *testing.T) {
	valid := models.TimetableEntryRequest{Weekday: 1, Start: "16:30", Minutes: 45, Subject: "maths"}
	if details := ValidateTimetableRequest(&valid); details != nil {
		t.Errorf("ValidateTimetableRequest() = %v, want nil", details)
	}

	tests := []struct {
		name      string
		mutate    func(*models.TimetableEntryRequest)
		wantField string
	}{
		{"weekday out of range", func(r *models.TimetableEntryRequest) { r.Weekday = 7 }, "weekday"},
		{"bad start time", func(r *models.TimetableEntryRequest) { r.Start = "24:00" }, "start"},
		{"ungainly start format", func(r *models.TimetableEntryRequest) { r.Start = "4pm" }, "start"},
		{"too short", func(r *models.TimetableEntryRequest) { r.Minutes = 2 }, "minutes"},
		{"too long", func(r *models.TimetableEntryRequest) { r.Minutes = 600 }, "minutes"},
		{"bad subject slug", func(r *models.TimetableEntryRequest) { r.Subject = "Maths!" }, "subject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			details := ValidateTimetableRequest(&req)
			if _, ok := details[tt.wantField]; !ok {
				t.Errorf("ValidateTimetableRequest() = %v, want error on %q", details, tt.wantField)
			}
		})
	}
}

func TestValidateLessonRequest(t *testing.T) {
	valid := models.LessonRequest{Subject: "history", Topic: "rome", Title: "The Republic", Diff: 3}
	if details := ValidateLessonRequest(&valid); details != nil {
		t.Errorf("ValidateLessonRequest() = %v, want nil", details)
	}

	bad := models.LessonRequest{Subject: "History", Topic: "", Title: "", Diff: 9}
	details := ValidateLessonRequest(&bad)
	for _, field := range []string{"subject", "topic", "title", "diff"} {
		if _, ok := details[field]; !ok {
			t.Errorf("ValidateLessonRequest() missing error on %q: %v", field, details)
		}
	}
}
