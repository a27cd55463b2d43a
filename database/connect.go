package database

import (
	"cinema_scheduler/config"
	"cinema_scheduler/model"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		config.Config("DB_HOST"),
		config.Config("DB_USER"),
		config.Config("DB_PASSWORD"),
		config.Config("DB_NAME"),
		config.Config("DB_PORT"),
		config.DefaultTimezone(),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = db.AutoMigrate(
		&model.Cinema{},
		&model.Hall{},
		&model.Movie{},
		&model.MovieRelease{},
		&model.Holiday{},
		&model.Showtime{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	DB = db
	SeedData(db)
}
