package config

import (
	"fmt"
	"time"

	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// GormConfig is shared by the Postgres connection and the test database so
// both translate driver errors the same way. SQL warnings go through the
// application logger; missing rows are normal control flow and stay quiet.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(utils.Logger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
}

// InitDB initializes the database connection and migrates the schema
func InitDB(config *Config) error {
	db, err := gorm.Open(postgres.Open(config.DSN()), GormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	utils.LogInfo("Connected to database %s on %s:%s", config.DBName, config.DBHost, config.DBPort)
	return nil
}

// Migrate creates or updates the tables for all models
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Wishlist{},
		&models.WishlistCollaborator{},
		&models.WishlistItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}
	return nil
}
