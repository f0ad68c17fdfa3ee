package db

import (
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts a default admin and a regular user for local development.
func Seed(conn *gorm.DB) error {
	seeds := []struct {
		name     string
		email    string
		password string
		isAdmin  bool
	}{
		{name: "admin", email: "admin@email.com", password: "admin", isAdmin: true},
		{name: "user", email: "user@email.com", password: "user"},
	}

	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Name:         s.name,
			Email:        s.email,
			PasswordHash: string(hash),
			IsAdmin:      s.isAdmin,
		}

		if err := conn.Create(&user).Error; err != nil {
			return err
		}
	}

	return nil
}
