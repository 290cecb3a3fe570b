package mock

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	models "github.com/vantagelearn/lumen/lumen/database/models"
	repositories "github.com/vantagelearn/lumen/lumen/database/repositories"
)

// MockQuestionRepository is a mock of QuestionRepository interface.
type MockQuestionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockQuestionRepositoryMockRecorder
	isgomock struct{}
}

// MockQuestionRepositoryMockRecorder is the mock recorder for MockQuestionRepository.
type MockQuestionRepositoryMockRecorder struct {
	mock *MockQuestionRepository
}

// NewMockQuestionRepository creates a new mock instance.
func NewMockQuestionRepository(ctrl *gomock.Controller) *MockQuestionRepository {
	mock := &MockQuestionRepository{ctrl: ctrl}
	mock.recorder = &MockQuestionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQuestionRepository) EXPECT() *MockQuestionRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, question)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockQuestionRepositoryMockRecorder) Create(ctx, question any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockQuestionRepository)(nil).Create), ctx, question)
}

// Delete mocks base method.
func (m *MockQuestionRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockQuestionRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockQuestionRepository)(nil).Delete), ctx, id)
}

// FindNumberConflicts mocks base method.
func (m *MockQuestionRepository) FindNumberConflicts(ctx context.Context, lessonID int64) ([]repositories.NumberConflict, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindNumberConflicts", ctx, lessonID)
	ret0, _ := ret[0].([]repositories.NumberConflict)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindNumberConflicts indicates an expected call of FindNumberConflicts.
func (mr *MockQuestionRepositoryMockRecorder) FindNumberConflicts(ctx, lessonID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindNumberConflicts", reflect.TypeOf((*MockQuestionRepository)(nil).FindNumberConflicts), ctx, lessonID)
}

// GetByID mocks base method.
func (m *MockQuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Question)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockQuestionRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockQuestionRepository)(nil).GetByID), ctx, id)
}

// GetByLessonID mocks base method.
func (m *MockQuestionRepository) GetByLessonID(ctx context.Context, lessonID int64) ([]*models.Question, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByLessonID", ctx, lessonID)
	ret0, _ := ret[0].([]*models.Question)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByLessonID indicates an expected call of GetByLessonID.
func (mr *MockQuestionRepositoryMockRecorder) GetByLessonID(ctx, lessonID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByLessonID", reflect.TypeOf((*MockQuestionRepository)(nil).GetByLessonID), ctx, lessonID)
}

// GetBySubjectTopic mocks base method.
func (m *MockQuestionRepository) GetBySubjectTopic(ctx context.Context, subject, topic string) ([]*models.Question, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBySubjectTopic", ctx, subject, topic)
	ret0, _ := ret[0].([]*models.Question)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBySubjectTopic indicates an expected call of GetBySubjectTopic.
func (mr *MockQuestionRepositoryMockRecorder) GetBySubjectTopic(ctx, subject, topic any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBySubjectTopic", reflect.TypeOf((*MockQuestionRepository)(nil).GetBySubjectTopic), ctx, subject, topic)
}

// Update mocks base method.
func (m *MockQuestionRepository) Update(ctx context.Context, question *models.Question) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, question)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockQuestionRepositoryMockRecorder) Update(ctx, question any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockQuestionRepository)(nil).Update), ctx, question)
}
