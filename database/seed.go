package database

import (
	"log"

	"tasks-pro/taskspro/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData inserts a demo admin, a demo user and a few tasks. It is a
// no-op unless the users table is empty, so it is safe to call on every
// start of a development instance.
func SeedDemoData(db *Database) error {
	var userCount int64
	if err := db.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	admin, err := seedUser(db, "admin@tasks-pro.com", "admin123", models.RoleAdmin)
	if err != nil {
		return err
	}
	user, err := seedUser(db, "user@tasks-pro.com", "user123", models.RoleUser)
	if err != nil {
		return err
	}

	tasks := []models.Task{
		{ID: uuid.New(), Title: "Configure project", Done: true, OwnerID: admin.ID},
		{ID: uuid.New(), Title: "Implement authentication", Done: false, OwnerID: admin.ID},
		{ID: uuid.New(), Title: "Build the user interface", Done: false, OwnerID: user.ID},
		{ID: uuid.New(), Title: "Write tests", Done: false, OwnerID: user.ID},
	}
	if err := db.DB.Create(&tasks).Error; err != nil {
		return err
	}

	log.Println("Demo data seeded: admin@tasks-pro.com / admin123, user@tasks-pro.com / user123")
	return nil
}

func seedUser(db *Database, email, password string, role models.Role) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
