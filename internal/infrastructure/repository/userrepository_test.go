package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitios/internal/domain/user"
	"sitios/internal/domain/user/valueobjects"
	apperrors "sitios/internal/shared/errors"
)

func TestUserRepository_Create(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	created := mustCreateUser(t, repo, "ana@example.com")
	assert.NotZero(t, created.ID())

	t.Run("duplicate email rejected", func(t *testing.T) {
		email, err := valueobjects.NewEmail("ana@example.com")
		require.NoError(t, err)
		name, err := valueobjects.NewName("Otra Ana")
		require.NoError(t, err)
		dup, err := user.NewUser(email, name)
		require.NoError(t, err)

		err = repo.Create(context.Background(), dup)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	created := mustCreateUser(t, repo, "ana@example.com")

	found, err := repo.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), found.ID())
	assert.Equal(t, "ana@example.com", found.Email().String())
	assert.Equal(t, "hashed:Segura123", found.PasswordHash())

	_, err = repo.GetByID(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	created := mustCreateUser(t, repo, "ana@example.com")

	found, err := repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID(), found.ID())

	_, err = repo.GetByEmail(context.Background(), "nadie@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	mustCreateUser(t, repo, "ana@example.com")

	exists, err := repo.ExistsByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(context.Background(), "nadie@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	created := mustCreateUser(t, repo, "ana@example.com")

	t.Run("persists two-factor state", func(t *testing.T) {
		require.NoError(t, created.StageTwoFactorSecret("JBSWY3DPEHPK3PXP"))
		require.NoError(t, created.ConfirmTwoFactor())
		require.NoError(t, repo.Update(context.Background(), created))

		found, err := repo.GetByID(context.Background(), created.ID())
		require.NoError(t, err)
		assert.True(t, found.TwoFactorEnabled())
		require.NotNil(t, found.TwoFactorSecret())
		assert.Equal(t, "JBSWY3DPEHPK3PXP", *found.TwoFactorSecret())
	})

	t.Run("persists cleared two-factor state", func(t *testing.T) {
		created.DisableTwoFactor()
		require.NoError(t, repo.Update(context.Background(), created))

		found, err := repo.GetByID(context.Background(), created.ID())
		require.NoError(t, err)
		assert.False(t, found.TwoFactorEnabled())
		assert.Nil(t, found.TwoFactorSecret())
	})

	t.Run("missing user", func(t *testing.T) {
		email, err := valueobjects.NewEmail("fantasma@example.com")
		require.NoError(t, err)
		name, err := valueobjects.NewName("Fantasma Pérez")
		require.NoError(t, err)
		ghost, err := user.ReconstructUser(9999, email, name, created.Role(), "hash", nil, false, created.CreatedAt(), created.UpdatedAt())
		require.NoError(t, err)

		err = repo.Update(context.Background(), ghost)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	created := mustCreateUser(t, repo, "ana@example.com")

	require.NoError(t, repo.Delete(context.Background(), created.ID()))

	_, err := repo.GetByID(context.Background(), created.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))

	err = repo.Delete(context.Background(), created.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	for i := 0; i < 5; i++ {
		mustCreateUser(t, repo, fmt.Sprintf("user%d@example.com", i))
	}

	users, total, err := repo.List(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 3)

	users, total, err = repo.List(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 2)

	t.Run("clamps out-of-range paging", func(t *testing.T) {
		users, _, err := repo.List(context.Background(), 0, 500)
		require.NoError(t, err)
		assert.Len(t, users, 5)
	})
}
