package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/Loccar-Locadora/Loccar-Auth-API/internal/errors"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Role{}, &model.User{}))
	require.NoError(t, db.Create(&model.Role{ID: 1, Name: "CLIENT_USER"}).Error)
	return db
}

func boolPtr(v bool) *bool { return &v }

func TestAuthRepository_RegisterUserAttachesExistingRoles(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)

	user := &model.User{
		Username:     "A",
		Email:        "a@b.com",
		PasswordHash: "hash",
		Roles:        []model.Role{{ID: 1}},
	}
	require.NoError(t, repo.RegisterUser(context.Background(), user))

	// The pre-provisioned role must not be duplicated or rewritten.
	var roleCount int64
	require.NoError(t, db.Model(&model.Role{}).Count(&roleCount).Error)
	assert.Equal(t, int64(1), roleCount)

	var role model.Role
	require.NoError(t, db.First(&role, 1).Error)
	assert.Equal(t, "CLIENT_USER", role.Name)

	found, err := repo.FindUserByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Roles, 1)
	assert.Equal(t, "CLIENT_USER", found.Roles[0].Name)
}

func TestAuthRepository_RegisterUserDefaultsActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)

	user := &model.User{Username: "A", Email: "a@b.com", PasswordHash: "hash"}
	require.NoError(t, repo.RegisterUser(context.Background(), user))

	require.NotNil(t, user.IsActive)
	assert.True(t, *user.IsActive)
}

func TestAuthRepository_RegisterUserRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)

	require.NoError(t, repo.RegisterUser(context.Background(), &model.User{
		Username: "A", Email: "a@b.com", PasswordHash: "hash",
	}))

	// The unique index is what closes the check-then-act window between the
	// duplicate lookup and the insert.
	err := repo.RegisterUser(context.Background(), &model.User{
		Username: "B", Email: "a@b.com", PasswordHash: "other",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

func TestAuthRepository_FindUserByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)

	require.NoError(t, db.Create(&model.User{Username: "A", Email: "Mixed@Case.com", PasswordHash: "hash", IsActive: boolPtr(true)}).Error)
	require.NoError(t, db.Create(&model.User{Username: "B", Email: "inactive@b.com", PasswordHash: "hash", IsActive: boolPtr(false)}).Error)
	require.NoError(t, db.Exec("UPDATE users SET is_active = NULL WHERE email = ?", "Mixed@Case.com").Error)

	t.Run("case-insensitive match", func(t *testing.T) {
		found, err := repo.FindUserByEmail(context.Background(), "mixed@CASE.COM")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "A", found.Username)
	})

	t.Run("legacy NULL active flag counts as active", func(t *testing.T) {
		found, err := repo.FindUserByEmail(context.Background(), "mixed@case.com")
		require.NoError(t, err)
		assert.NotNil(t, found)
	})

	t.Run("inactive user filtered out", func(t *testing.T) {
		found, err := repo.FindUserByEmail(context.Background(), "inactive@b.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("absence is not an error", func(t *testing.T) {
		found, err := repo.FindUserByEmail(context.Background(), "nobody@b.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("blank email", func(t *testing.T) {
		found, err := repo.FindUserByEmail(context.Background(), "   ")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
