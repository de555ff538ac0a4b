package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"phonebook_backend/internal/feature/auth/domain/entity"
	"phonebook_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError is on like in production, so unique violations arrive as
// gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := &entity.User{
			Login:    "Oleksii",
			Password: "hashed_password",
			Role:     entity.RoleUser,
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate login maps to ErrLoginAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		err := repo.Create(context.Background(), &entity.User{Login: "Rebeca", Password: "p1"})
		require.NoError(t, err, "failed to create first user")

		err = repo.Create(context.Background(), &entity.User{Login: "Rebeca", Password: "p2"})

		assert.ErrorIs(t, err, usecase.ErrLoginAlreadyExists, "should return ErrLoginAlreadyExists")
	})
}

func TestUserGorm_FindByLogin(t *testing.T) {
	t.Run("find user by login successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := &entity.User{Login: "Oleksii", Password: "hashed_password"}
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByLogin(context.Background(), "Oleksii")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Login, found.Login, "login does not match")
		assert.Equal(t, expected.Password, found.Password, "password does not match")
	})

	t.Run("login not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		found, err := repo.FindByLogin(context.Background(), "ghost")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("find correct user when multiple users exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		users := []*entity.User{
			{Login: "user1", Password: "pass1"},
			{Login: "user2", Password: "pass2"},
			{Login: "user3", Password: "pass3"},
		}
		for _, u := range users {
			require.NoError(t, repo.Create(context.Background(), u), "failed to create test data")
		}

		found, err := repo.FindByLogin(context.Background(), "user2")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, users[1].ID, found.ID, "ID does not match")
		assert.Equal(t, "pass2", found.Password, "password does not match")
	})
}

func TestUserGorm_ExistsByLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)

	require.NoError(t, repo.Create(context.Background(), &entity.User{Login: "Rebeca", Password: "p"}))

	exists, err := repo.ExistsByLogin(context.Background(), "Rebeca")
	assert.NoError(t, err)
	assert.True(t, exists, "existing login should be reported")

	exists, err = repo.ExistsByLogin(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.False(t, exists, "unknown login should not be reported")
}
