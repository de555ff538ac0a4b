// Package db opens the Postgres connection used by the repositories.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "phonebook_backend/internal/feature/auth/domain/entity"
	contactentity "phonebook_backend/internal/feature/contacts/domain/entity"
)

// OpenDB connects to Postgres, retrying for up to a minute so the service
// survives a database that comes up after it. TranslateError turns driver
// duplicate-key errors into gorm.ErrDuplicatedKey for the adapters.
func OpenDB(dsn string, runMigrations bool) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&contactentity.Contact{},
			&contactentity.ContactEmail{},
			&contactentity.ContactPhone{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
