package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/app"
	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/logging"
	"github.com/unremarkableSCM/minesweeper-as-a-service/migrations"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log := logging.New()

	a := app.New(log, migrations.FS)
	if err := a.Start(ctx); err != nil {
		log.Fatal("failed to start app: ", err)
	}
}
