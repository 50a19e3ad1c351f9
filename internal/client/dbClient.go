package client

import (
	"log"

	"bakery-storefront/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitSqliteClient(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open local database:", err)
	}

	if err := db.AutoMigrate(
		&model.CartItem{},
		&model.Session{},
		&model.LastTransaction{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
