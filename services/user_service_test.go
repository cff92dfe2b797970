package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasks-pro/taskspro/models"
	"tasks-pro/taskspro/testutils"
)

func TestGetUsers(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	user := createTestUser(t, db, "user@tasks-pro.com", models.RoleUser)
	admin := createTestUser(t, db, "admin@tasks-pro.com", models.RoleAdmin)

	userService := &UserService{}

	t.Run("admin lists everyone", func(t *testing.T) {
		users, err := userService.GetUsers(db, admin)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		_, err := userService.GetUsers(db, user)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestGetUserById(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	alice := createTestUser(t, db, "alice@tasks-pro.com", models.RoleUser)
	bob := createTestUser(t, db, "bob@tasks-pro.com", models.RoleUser)
	admin := createTestUser(t, db, "admin@tasks-pro.com", models.RoleAdmin)

	userService := &UserService{}

	t.Run("self", func(t *testing.T) {
		got, err := userService.GetUserById(db, alice.ID, alice)
		require.NoError(t, err)
		assert.Equal(t, "alice@tasks-pro.com", got.Email)
	})

	t.Run("other profile is forbidden", func(t *testing.T) {
		_, err := userService.GetUserById(db, alice.ID, bob)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin reads anyone", func(t *testing.T) {
		got, err := userService.GetUserById(db, bob.ID, admin)
		require.NoError(t, err)
		assert.Equal(t, "bob@tasks-pro.com", got.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := userService.GetUserById(db, uuid.New(), admin)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
