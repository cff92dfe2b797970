package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a single todo item owned by exactly one user. Ownership is set at
// creation and never reassigned; deletion is permanent.
type Task struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string        `gorm:"size:255;not null" json:"title"`
	Done      bool          `gorm:"not null;default:false" json:"done"`
	OwnerID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner     *OwnerSummary `gorm:"-" json:"owner,omitempty"`
	CreatedAt time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time     `gorm:"not null" json:"updated_at"`
}

// BeforeCreate is a GORM hook that assigns an id when none is set
func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TaskPatch carries a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title *string `json:"title" binding:"omitempty,max=255"`
	Done  *bool   `json:"done"`
}
