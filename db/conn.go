// Package db opens the Postgres connection used by the whole app
package db

import (
	"fmt"

	"contacts-api/config"
	"contacts-api/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.SSLMode)

	// TranslateError makes unique constraint violations surface as
	// gorm.ErrDuplicatedKey so the services can rely on the database
	// as the authoritative duplicate guard
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.Contact{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
