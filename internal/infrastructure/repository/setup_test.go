package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sitios/internal/domain/user"
	"sitios/internal/domain/user/valueobjects"
	"sitios/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gormDB.AutoMigrate(
		&models.UserModel{},
		&models.SessionModel{},
		&models.BackupCodeModel{},
		&models.PreferenceModel{},
		&models.PageViewModel{},
		&models.SearchQueryModel{},
	)
	require.NoError(t, err)

	return gormDB
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

// mustCreateUser persists a fresh user and returns it with its assigned ID.
func mustCreateUser(t *testing.T, repo user.Repository, emailAddr string) *user.User {
	t.Helper()

	email, err := valueobjects.NewEmail(emailAddr)
	require.NoError(t, err)
	name, err := valueobjects.NewName("Ana López")
	require.NoError(t, err)
	entity, err := user.NewUser(email, name)
	require.NoError(t, err)

	pw, err := valueobjects.NewPassword("Segura123")
	require.NoError(t, err)
	require.NoError(t, entity.SetPassword(pw, plainHasher{}))

	require.NoError(t, repo.Create(context.Background(), entity))
	require.NotZero(t, entity.ID())
	return entity
}

// mustCreateSession persists an active session for the user.
func mustCreateSession(t *testing.T, repo user.SessionRepository, userID uint) *user.Session {
	t.Helper()

	session, err := user.NewSession(userID, "203.0.113.10", "Mozilla/5.0", "Chrome on Windows", "Bogotá, Colombia")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), session))
	return session
}
