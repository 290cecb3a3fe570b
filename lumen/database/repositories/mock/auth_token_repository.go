package mock

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	models "github.com/vantagelearn/lumen/lumen/database/models"
)

// MockAuthTokenRepository is a mock of AuthTokenRepository interface.
type MockAuthTokenRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAuthTokenRepositoryMockRecorder
	isgomock struct{}
}

// MockAuthTokenRepositoryMockRecorder is the mock recorder for MockAuthTokenRepository.
type MockAuthTokenRepositoryMockRecorder struct {
	mock *MockAuthTokenRepository
}

// NewMockAuthTokenRepository creates a new mock instance.
func NewMockAuthTokenRepository(ctrl *gomock.Controller) *MockAuthTokenRepository {
	mock := &MockAuthTokenRepository{ctrl: ctrl}
	mock.recorder = &MockAuthTokenRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthTokenRepository) EXPECT() *MockAuthTokenRepositoryMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockAuthTokenRepository) Consume(ctx context.Context, token, purpose string) (*models.AuthToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consume", ctx, token, purpose)
	ret0, _ := ret[0].(*models.AuthToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Consume indicates an expected call of Consume.
func (mr *MockAuthTokenRepositoryMockRecorder) Consume(ctx, token, purpose any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockAuthTokenRepository)(nil).Consume), ctx, token, purpose)
}

// Create mocks base method.
func (m *MockAuthTokenRepository) Create(ctx context.Context, token *models.AuthToken) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAuthTokenRepositoryMockRecorder) Create(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAuthTokenRepository)(nil).Create), ctx, token)
}

// DeleteExpired mocks base method.
func (m *MockAuthTokenRepository) DeleteExpired(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpired", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteExpired indicates an expected call of DeleteExpired.
func (mr *MockAuthTokenRepositoryMockRecorder) DeleteExpired(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpired", reflect.TypeOf((*MockAuthTokenRepository)(nil).DeleteExpired), ctx)
}
