package main

import (
	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/database"
	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/logging"
	"github.com/unremarkableSCM/minesweeper-as-a-service/migrations"
)

func main() {
	log := logging.New()

	migrator, err := database.Migrate(migrations.FS)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		log.Fatal("unable to read migration version: ", err)
	}
	log.WithField("dirty", dirty).Info("database migrated to version ", version)
}
