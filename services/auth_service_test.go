package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasks-pro/taskspro/models"
	"tasks-pro/taskspro/testutils"
)

func TestRegisterAndLogin(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	authService := NewAuthService("test-secret", 1)

	user, err := authService.Register(db, "new@tasks-pro.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)

	tokenString, err := authService.Login(db, "new@tasks-pro.com", "password123")
	require.NoError(t, err)

	claims, err := authService.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "new@tasks-pro.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	authService := NewAuthService("test-secret", 1)

	_, err := authService.Register(db, "dup@tasks-pro.com", "password123")
	require.NoError(t, err)

	_, err = authService.Register(db, "dup@tasks-pro.com", "different456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	authService := NewAuthService("test-secret", 1)

	_, err := authService.Register(db, "known@tasks-pro.com", "password123")
	require.NoError(t, err)

	_, err = authService.Login(db, "known@tasks-pro.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authService.Login(db, "unknown@tasks-pro.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	authService := NewAuthService("test-secret", 1)
	otherService := NewAuthService("other-secret", 1)

	_, err := authService.Register(db, "user@tasks-pro.com", "password123")
	require.NoError(t, err)

	tokenString, err := authService.Login(db, "user@tasks-pro.com", "password123")
	require.NoError(t, err)

	_, err = otherService.ValidateToken(tokenString)
	assert.Error(t, err)
}
