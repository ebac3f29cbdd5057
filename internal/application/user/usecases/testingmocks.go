package usecases

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"sitios/internal/domain/user"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*user.User), args.Get(1).(int64), args.Error(2)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, session *user.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Session), args.Error(1)
}

func (m *mockSessionRepository) ListActiveByUser(ctx context.Context, userID uint) ([]*user.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.Session), args.Error(1)
}

func (m *mockSessionRepository) UpdateActivity(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *mockSessionRepository) End(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *mockSessionRepository) EndAllExcept(ctx context.Context, userID uint, exceptSessionID string) error {
	args := m.Called(ctx, userID, exceptSessionID)
	return args.Error(0)
}

func (m *mockSessionRepository) DeleteByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockBackupCodeRepository struct {
	mock.Mock
}

func (m *mockBackupCodeRepository) ReplaceForUser(ctx context.Context, userID uint, codes []string) error {
	args := m.Called(ctx, userID, codes)
	return args.Error(0)
}

func (m *mockBackupCodeRepository) Consume(ctx context.Context, userID uint, code string) (bool, error) {
	args := m.Called(ctx, userID, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockBackupCodeRepository) DeleteForUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockBackupCodeRepository) CountUnused(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockPreferenceRepository struct {
	mock.Mock
}

func (m *mockPreferenceRepository) ListByUser(ctx context.Context, userID uint) ([]*user.Preference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.Preference), args.Error(1)
}

func (m *mockPreferenceRepository) Get(ctx context.Context, userID uint, key string) (*user.Preference, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Preference), args.Error(1)
}

func (m *mockPreferenceRepository) Upsert(ctx context.Context, userID uint, key string, value json.RawMessage) error {
	args := m.Called(ctx, userID, key, value)
	return args.Error(0)
}

func (m *mockPreferenceRepository) Delete(ctx context.Context, userID uint, key string) error {
	args := m.Called(ctx, userID, key)
	return args.Error(0)
}

func (m *mockPreferenceRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockPreferenceRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Issue(userID uint, sessionID string) (string, error) {
	args := m.Called(userID, sessionID)
	return args.String(0), args.Error(1)
}

func (m *mockTokenIssuer) ExpMinutes() int {
	args := m.Called()
	return args.Int(0)
}

type mockTwoFactorService struct {
	mock.Mock
}

func (m *mockTwoFactorService) GenerateKey(accountName string) (*TwoFactorProvisioning, error) {
	args := m.Called(accountName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TwoFactorProvisioning), args.Error(1)
}

func (m *mockTwoFactorService) Validate(code, secret string) bool {
	args := m.Called(code, secret)
	return args.Bool(0)
}
