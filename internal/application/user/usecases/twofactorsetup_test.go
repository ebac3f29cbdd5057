package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sitios/internal/domain/user"
	"sitios/internal/shared/db"
	apperrors "sitios/internal/shared/errors"
)

func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

func TestBeginTwoFactorSetupUseCase(t *testing.T) {
	t.Run("stages secret and returns provisioning data", func(t *testing.T) {
		stored := buildStoredUser(t, nil, false)
		userRepo := new(mockUserRepository)
		twoFactor := new(mockTwoFactorService)

		userRepo.On("GetByID", mock.Anything, uint(1)).Return(stored, nil)
		twoFactor.On("GenerateKey", "ana@example.com").Return(&TwoFactorProvisioning{
			Secret:       "JBSWY3DPEHPK3PXP",
			OtpauthURL:   "otpauth://totp/Sitios:ana@example.com?secret=JBSWY3DPEHPK3PXP",
			QRCodeBase64: "aW1hZ2U=",
		}, nil)
		userRepo.On("Update", mock.Anything, stored).Return(nil)

		uc := NewBeginTwoFactorSetupUseCase(userRepo, twoFactor, testLogger())
		result, err := uc.Execute(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "JBSWY3DPEHPK3PXP", result.Secret)
		assert.NotEmpty(t, result.OtpauthURL)
		assert.NotEmpty(t, result.QRCodeBase64)

		require.NotNil(t, stored.TwoFactorSecret())
		assert.Equal(t, "JBSWY3DPEHPK3PXP", *stored.TwoFactorSecret())
		assert.False(t, stored.TwoFactorEnabled(), "staging does not enable")
		userRepo.AssertExpectations(t)
	})

	t.Run("rejected when already enabled", func(t *testing.T) {
		secret := "JBSWY3DPEHPK3PXP"
		stored := buildStoredUser(t, &secret, true)
		userRepo := new(mockUserRepository)
		twoFactor := new(mockTwoFactorService)
		userRepo.On("GetByID", mock.Anything, uint(1)).Return(stored, nil)

		uc := NewBeginTwoFactorSetupUseCase(userRepo, twoFactor, testLogger())
		_, err := uc.Execute(context.Background(), 1)

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
		twoFactor.AssertNotCalled(t, "GenerateKey", mock.Anything)
	})
}

func TestConfirmTwoFactorSetupUseCase(t *testing.T) {
	secret := "JBSWY3DPEHPK3PXP"

	t.Run("enables and issues backup codes", func(t *testing.T) {
		stored := buildStoredUser(t, &secret, false)
		userRepo := new(mockUserRepository)
		backupRepo := new(mockBackupCodeRepository)
		twoFactor := new(mockTwoFactorService)

		userRepo.On("GetByID", mock.Anything, uint(1)).Return(stored, nil)
		twoFactor.On("Validate", "123456", secret).Return(true)
		userRepo.On("Update", mock.Anything, stored).Return(nil)
		backupRepo.On("ReplaceForUser", mock.Anything, uint(1), mock.Anything).Return(nil)

		uc := NewConfirmTwoFactorSetupUseCase(userRepo, backupRepo, twoFactor, testTxManager(t), testLogger())
		result, err := uc.Execute(context.Background(), ConfirmTwoFactorSetupCommand{UserID: 1, Code: "123456"})

		require.NoError(t, err)
		assert.Len(t, result.BackupCodes, user.BackupCodeBatchSize)
		assert.True(t, stored.TwoFactorEnabled())
		userRepo.AssertExpectations(t)
		backupRepo.AssertExpectations(t)
	})

	t.Run("wrong code leaves account unprotected", func(t *testing.T) {
		stored := buildStoredUser(t, &secret, false)
		userRepo := new(mockUserRepository)
		backupRepo := new(mockBackupCodeRepository)
		twoFactor := new(mockTwoFactorService)

		userRepo.On("GetByID", mock.Anything, uint(1)).Return(stored, nil)
		twoFactor.On("Validate", "000000", secret).Return(false)

		uc := NewConfirmTwoFactorSetupUseCase(userRepo, backupRepo, twoFactor, testTxManager(t), testLogger())
		_, err := uc.Execute(context.Background(), ConfirmTwoFactorSetupCommand{UserID: 1, Code: "000000"})

		require.Error(t, err)
		assert.False(t, stored.TwoFactorEnabled())
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		backupRepo.AssertNotCalled(t, "ReplaceForUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no staged secret", func(t *testing.T) {
		stored := buildStoredUser(t, nil, false)
		userRepo := new(mockUserRepository)
		userRepo.On("GetByID", mock.Anything, uint(1)).Return(stored, nil)

		uc := NewConfirmTwoFactorSetupUseCase(userRepo, new(mockBackupCodeRepository), new(mockTwoFactorService), testTxManager(t), testLogger())
		_, err := uc.Execute(context.Background(), ConfirmTwoFactorSetupCommand{UserID: 1, Code: "123456"})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	})

	t.Run("already enabled", func(t *testing.T) {
		stored := buildStoredUser(t, &secret, true)
		userRepo := new(mockUserRepository)
		userRepo.On("GetByID", mock.Anything, uint(1)).Return(stored, nil)

		uc := NewConfirmTwoFactorSetupUseCase(userRepo, new(mockBackupCodeRepository), new(mockTwoFactorService), testTxManager(t), testLogger())
		_, err := uc.Execute(context.Background(), ConfirmTwoFactorSetupCommand{UserID: 1, Code: "123456"})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestDisableTwoFactorUseCase(t *testing.T) {
	secret := "JBSWY3DPEHPK3PXP"

	t.Run("disables with correct password", func(t *testing.T) {
		stored := buildStoredUser(t, &secret, true)
		userRepo := new(mockUserRepository)
		backupRepo := new(mockBackupCodeRepository)

		userRepo.On("GetByID", mock.Anything, uint(1)).Return(stored, nil)
		userRepo.On("Update", mock.Anything, stored).Return(nil)
		backupRepo.On("DeleteForUser", mock.Anything, uint(1)).Return(nil)

		uc := NewDisableTwoFactorUseCase(userRepo, backupRepo, stubHasher{}, testTxManager(t), testLogger())
		err := uc.Execute(context.Background(), DisableTwoFactorCommand{UserID: 1, Password: "Segura123"})

		require.NoError(t, err)
		assert.False(t, stored.TwoFactorEnabled())
		assert.Nil(t, stored.TwoFactorSecret())
		backupRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		stored := buildStoredUser(t, &secret, true)
		userRepo := new(mockUserRepository)
		backupRepo := new(mockBackupCodeRepository)
		userRepo.On("GetByID", mock.Anything, uint(1)).Return(stored, nil)

		uc := NewDisableTwoFactorUseCase(userRepo, backupRepo, stubHasher{}, testTxManager(t), testLogger())
		err := uc.Execute(context.Background(), DisableTwoFactorCommand{UserID: 1, Password: "Incorrecta1"})

		require.Error(t, err)
		assert.True(t, stored.TwoFactorEnabled(), "state unchanged on bad password")
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("not enabled", func(t *testing.T) {
		stored := buildStoredUser(t, nil, false)
		userRepo := new(mockUserRepository)
		userRepo.On("GetByID", mock.Anything, uint(1)).Return(stored, nil)

		uc := NewDisableTwoFactorUseCase(userRepo, new(mockBackupCodeRepository), stubHasher{}, testTxManager(t), testLogger())
		err := uc.Execute(context.Background(), DisableTwoFactorCommand{UserID: 1, Password: "Segura123"})

		require.Error(t, err)
	})
}
