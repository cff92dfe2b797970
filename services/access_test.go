package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"tasks-pro/taskspro/models"
)

func TestResolveTaskAccess(t *testing.T) {
	ownerID := uuid.New()
	task := models.Task{ID: uuid.New(), OwnerID: ownerID}

	tests := []struct {
		name      string
		requester models.User
		want      AccessLevel
	}{
		{
			name:      "owner",
			requester: models.User{ID: ownerID, Role: models.RoleUser},
			want:      AccessOwner,
		},
		{
			name:      "other user",
			requester: models.User{ID: uuid.New(), Role: models.RoleUser},
			want:      AccessDenied,
		},
		{
			name:      "admin over foreign task",
			requester: models.User{ID: uuid.New(), Role: models.RoleAdmin},
			want:      AccessAdmin,
		},
		{
			name:      "admin over own task",
			requester: models.User{ID: ownerID, Role: models.RoleAdmin},
			want:      AccessAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTaskAccess(task, tt.requester)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != AccessDenied, got.Granted())
		})
	}
}
