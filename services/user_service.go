package services

import (
	"errors"

	"tasks-pro/taskspro/database"
	"tasks-pro/taskspro/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserServiceInterface interface {
	GetUserById(db *database.Database, id uuid.UUID, requester models.User) (models.User, error)
	GetUsers(db *database.Database, requester models.User) ([]models.User, error)
}

type UserService struct{}

// GetUserById returns a user profile. Regular users may only read their own
// profile; administrators may read anyone's.
func (s *UserService) GetUserById(db *database.Database, id uuid.UUID, requester models.User) (models.User, error) {
	if !requester.IsAdmin() && requester.ID != id {
		return models.User{}, ErrForbidden
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUsers lists every account, administrators only.
func (s *UserService) GetUsers(db *database.Database, requester models.User) ([]models.User, error) {
	if !requester.IsAdmin() {
		return nil, ErrForbidden
	}

	var users []models.User
	if err := db.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

var UserServiceInstance UserServiceInterface = &UserService{}
