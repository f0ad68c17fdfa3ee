package db

import (
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func tables() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Card{},
		&models.Comment{},
	}
}

func Migrate(conn *gorm.DB) error {
	migrator := conn.Migrator()

	for _, model := range tables() {
		if !migrator.HasTable(model) {
			if err := conn.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

func Drop(conn *gorm.DB) error {
	migrator := conn.Migrator()

	for _, model := range tables() {
		if migrator.HasTable(model) {
			if err := migrator.DropTable(model); err != nil {
				return err
			}
		}
	}

	return nil
}
