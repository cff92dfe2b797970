package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	role, err := RoleFromString("USER")
	assert.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	role, err = RoleFromString("ADMIN")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = RoleFromString("superuser")
	assert.Error(t, err)
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	user := User{
		ID:           uuid.New(),
		Email:        "user@tasks-pro.com",
		PasswordHash: "$2a$10$secret",
		Role:         RoleUser,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), "user@tasks-pro.com")
}

func TestOwnerSummary(t *testing.T) {
	user := User{ID: uuid.New(), Email: "owner@tasks-pro.com", Role: RoleAdmin}

	summary := user.Summary()
	assert.Equal(t, user.ID, summary.ID)
	assert.Equal(t, user.Email, summary.Email)
	assert.Equal(t, RoleAdmin, summary.Role)
}
