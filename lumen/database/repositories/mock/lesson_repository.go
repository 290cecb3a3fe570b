package mock

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	models "github.com/vantagelearn/lumen/lumen/database/models"
)

// MockLessonRepository is a mock of LessonRepository interface.
type MockLessonRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLessonRepositoryMockRecorder
	isgomock struct{}
}

// MockLessonRepositoryMockRecorder is the mock recorder for MockLessonRepository.
type MockLessonRepositoryMockRecorder struct {
	mock *MockLessonRepository
}

// NewMockLessonRepository creates a new mock instance.
func NewMockLessonRepository(ctrl *gomock.Controller) *MockLessonRepository {
	mock := &MockLessonRepository{ctrl: ctrl}
	mock.recorder = &MockLessonRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLessonRepository) EXPECT() *MockLessonRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockLessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, lesson)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockLessonRepositoryMockRecorder) Create(ctx, lesson any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockLessonRepository)(nil).Create), ctx, lesson)
}

// Delete mocks base method.
func (m *MockLessonRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockLessonRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockLessonRepository)(nil).Delete), ctx, id)
}

// GetAll mocks base method.
func (m *MockLessonRepository) GetAll(ctx context.Context) ([]*models.Lesson, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx)
	ret0, _ := ret[0].([]*models.Lesson)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockLessonRepositoryMockRecorder) GetAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockLessonRepository)(nil).GetAll), ctx)
}

// GetByID mocks base method.
func (m *MockLessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Lesson)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockLessonRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockLessonRepository)(nil).GetByID), ctx, id)
}

// GetBySubject mocks base method.
func (m *MockLessonRepository) GetBySubject(ctx context.Context, subject string) ([]*models.Lesson, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBySubject", ctx, subject)
	ret0, _ := ret[0].([]*models.Lesson)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBySubject indicates an expected call of GetBySubject.
func (mr *MockLessonRepositoryMockRecorder) GetBySubject(ctx, subject any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBySubject", reflect.TypeOf((*MockLessonRepository)(nil).GetBySubject), ctx, subject)
}

// GetBySubjectTopic mocks base method.
func (m *MockLessonRepository) GetBySubjectTopic(ctx context.Context, subject, topic string) ([]*models.Lesson, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBySubjectTopic", ctx, subject, topic)
	ret0, _ := ret[0].([]*models.Lesson)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBySubjectTopic indicates an expected call of GetBySubjectTopic.
func (mr *MockLessonRepositoryMockRecorder) GetBySubjectTopic(ctx, subject, topic any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBySubjectTopic", reflect.TypeOf((*MockLessonRepository)(nil).GetBySubjectTopic), ctx, subject, topic)
}

// GetLessonCount mocks base method.
func (m *MockLessonRepository) GetLessonCount(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLessonCount", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLessonCount indicates an expected call of GetLessonCount.
func (mr *MockLessonRepositoryMockRecorder) GetLessonCount(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLessonCount", reflect.TypeOf((*MockLessonRepository)(nil).GetLessonCount), ctx)
}

// Update mocks base method.
func (m *MockLessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, lesson)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockLessonRepositoryMockRecorder) Update(ctx, lesson any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockLessonRepository)(nil).Update), ctx, lesson)
}
