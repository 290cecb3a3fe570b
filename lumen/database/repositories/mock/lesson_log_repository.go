package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"

	models "github.com/vantagelearn/lumen/lumen/database/models"
)

// MockLessonLogRepository is a mock of LessonLogRepository interface.
type MockLessonLogRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLessonLogRepositoryMockRecorder
	isgomock struct{}
}

// MockLessonLogRepositoryMockRecorder is the mock recorder for MockLessonLogRepository.
type MockLessonLogRepositoryMockRecorder struct {
	mock *MockLessonLogRepository
}

// NewMockLessonLogRepository creates a new mock instance.
func NewMockLessonLogRepository(ctrl *gomock.Controller) *MockLessonLogRepository {
	mock := &MockLessonLogRepository{ctrl: ctrl}
	mock.recorder = &MockLessonLogRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLessonLogRepository) EXPECT() *MockLessonLogRepositoryMockRecorder {
	return m.recorder
}

// CountSince mocks base method.
func (m *MockLessonLogRepository) CountSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountSince", ctx, userID, since)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountSince indicates an expected call of CountSince.
func (mr *MockLessonLogRepositoryMockRecorder) CountSince(ctx, userID, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountSince", reflect.TypeOf((*MockLessonLogRepository)(nil).CountSince), ctx, userID, since)
}

// GetRecent mocks base method.
func (m *MockLessonLogRepository) GetRecent(ctx context.Context, userID int64, limit int) ([]*models.LessonLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecent", ctx, userID, limit)
	ret0, _ := ret[0].([]*models.LessonLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecent indicates an expected call of GetRecent.
func (mr *MockLessonLogRepositoryMockRecorder) GetRecent(ctx, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecent", reflect.TypeOf((*MockLessonLogRepository)(nil).GetRecent), ctx, userID, limit)
}

// HasCompletion mocks base method.
func (m *MockLessonLogRepository) HasCompletion(ctx context.Context, userID, lessonID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasCompletion", ctx, userID, lessonID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasCompletion indicates an expected call of HasCompletion.
func (mr *MockLessonLogRepositoryMockRecorder) HasCompletion(ctx, userID, lessonID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasCompletion", reflect.TypeOf((*MockLessonLogRepository)(nil).HasCompletion), ctx, userID, lessonID)
}

// RecordCompletion mocks base method.
func (m *MockLessonLogRepository) RecordCompletion(ctx context.Context, user *models.User, log *models.LessonLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordCompletion", ctx, user, log)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordCompletion indicates an expected call of RecordCompletion.
func (mr *MockLessonLogRepositoryMockRecorder) RecordCompletion(ctx, user, log any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordCompletion", reflect.TypeOf((*MockLessonLogRepository)(nil).RecordCompletion), ctx, user, log)
}
