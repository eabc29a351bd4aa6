package main

import (
	"flag"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Seeds the configured database with sample restaurants, pizzas and prices.
//
//	go run ./scripts -reset
func main() {
	reset := flag.Bool("reset", false, "Delete existing restaurants, pizzas and prices before seeding")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.InitDatabase(conf.Database())
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("Failed to close database")
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.WithError(err).Fatal("Failed to reset database")
		}
	}

	if err := database.Seed(db); err != nil {
		log.WithError(err).Fatal("Failed to seed database")
	}
	log.WithField("driver", conf.DBDriver).Info("Seeding finished")
}
