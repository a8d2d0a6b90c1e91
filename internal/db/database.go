package db

import (
	"fmt"
	"log"

	"github.com/daniilsm/sickday-go/internal/config"
	"github.com/daniilsm/sickday-go/internal/domain/course"
	"github.com/daniilsm/sickday-go/internal/domain/group"
	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums(db *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE ticket_status AS ENUM ('PENDING', 'APPROVED', 'REJECTED'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE ticket_reason AS ENUM ('SICKDAY', 'FAMILY', 'COMPETITION'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := db.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(db *gorm.DB) error {
	createEnums(db)
	return db.AutoMigrate(
		&course.Course{},
		&group.Group{},
		&user.User{},
		&ticket.Ticket{},
		&ticket.Proof{},
	)
}
