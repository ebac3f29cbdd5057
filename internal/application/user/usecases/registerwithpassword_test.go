package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sitios/internal/application/user/services"
	"sitios/internal/domain/user"
	"sitios/internal/infrastructure/persistence/models"
	"sitios/internal/infrastructure/repository"
	"sitios/internal/shared/db"
	apperrors "sitios/internal/shared/errors"
)

func TestRegisterWithPasswordUseCase_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	prefRepo := new(mockPreferenceRepository)
	sessionRepo := new(mockSessionRepository)
	issuer := new(mockTokenIssuer)

	userRepo.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created := args.Get(1).(*user.User)
		require.NoError(t, created.SetID(1))
	}).Return(nil)
	prefRepo.On("Upsert", mock.Anything, uint(1), mock.Anything, mock.Anything).Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	issuer.On("Issue", uint(1), mock.Anything).Return("signed-token", nil)
	issuer.On("ExpMinutes").Return(60)

	tracker := services.NewSessionTracker(sessionRepo, nil, testLogger())
	uc := NewRegisterWithPasswordUseCase(userRepo, prefRepo, stubHasher{}, issuer, tracker, testTxManager(t), testLogger())

	result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "ana@example.com",
		Name:     "Ana López",
		Password: "Segura123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.User.ID())
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	require.NotNil(t, result.Session)

	prefRepo.AssertNumberOfCalls(t, "Upsert", len(user.DefaultPreferences()))
	userRepo.AssertExpectations(t)
}

func TestRegisterWithPasswordUseCase_SessionFailureRollsBack(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&models.UserModel{}, &models.PreferenceModel{}, &models.SessionModel{}))

	sessionRepo := new(mockSessionRepository)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("session store unavailable"))

	tracker := services.NewSessionTracker(sessionRepo, nil, testLogger())
	uc := NewRegisterWithPasswordUseCase(
		repository.NewUserRepository(gormDB),
		repository.NewPreferenceRepository(gormDB),
		stubHasher{},
		new(mockTokenIssuer),
		tracker,
		db.NewTransactionManager(gormDB),
		testLogger(),
	)

	_, err = uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "ana@example.com",
		Name:     "Ana López",
		Password: "Segura123",
	})
	require.Error(t, err)

	var users, prefs int64
	require.NoError(t, gormDB.Model(&models.UserModel{}).Count(&users).Error)
	require.NoError(t, gormDB.Model(&models.PreferenceModel{}).Count(&prefs).Error)
	assert.Zero(t, users, "no account may remain without a session")
	assert.Zero(t, prefs)
}

func TestRegisterWithPasswordUseCase_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  RegisterWithPasswordCommand
	}{
		{
			name: "bad email",
			cmd:  RegisterWithPasswordCommand{Email: "not-an-email", Name: "Ana López", Password: "Segura123"},
		},
		{
			name: "bad name",
			cmd:  RegisterWithPasswordCommand{Email: "ana@example.com", Name: "A", Password: "Segura123"},
		},
		{
			name: "weak password",
			cmd:  RegisterWithPasswordCommand{Email: "ana@example.com", Name: "Ana López", Password: "corta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			uc := NewRegisterWithPasswordUseCase(userRepo, new(mockPreferenceRepository), stubHasher{}, new(mockTokenIssuer), nil, testTxManager(t), testLogger())

			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterWithPasswordUseCase_EmailTaken(t *testing.T) {
	userRepo := new(mockUserRepository)
	userRepo.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(true, nil)

	uc := NewRegisterWithPasswordUseCase(userRepo, new(mockPreferenceRepository), stubHasher{}, new(mockTokenIssuer), nil, testTxManager(t), testLogger())

	_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "ana@example.com",
		Name:     "Ana López",
		Password: "Segura123",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
