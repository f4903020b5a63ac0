package db

import (
	"errors"

	"github.com/lifehub-dev/lifehub/internal/auth"
	"github.com/lifehub-dev/lifehub/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// SeedUserEmail is the fixed smoke-test account ensured at startup.
const (
	SeedUserEmail    = "test@lifehub.local"
	SeedUserPassword = "test123"
	SeedUserFullName = "Test User"
)

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Area{},
		&models.Project{},
		&models.ProjectNextAction{},
		&models.OneShotTask{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedTestUser inserts the fixed test account if it is absent. Safe to
// call on every start; the check and insert run in one transaction so a
// failure leaves nothing behind.
func SeedTestUser() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var existing models.User

		err := tx.Where("email = ?", SeedUserEmail).First(&existing).Error

		if err == nil {
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := auth.HashPassword(SeedUserPassword)

		if err != nil {
			return err
		}

		fullName := SeedUserFullName

		return tx.Create(&models.User{
			Email:        SeedUserEmail,
			PasswordHash: hash,
			FullName:     &fullName,
		}).Error
	})
}
