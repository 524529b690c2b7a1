package main

import (
	log "log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "warblerctl",
		Usage: "Warbler maintenance commands",
		Commands: []*cli.Command{
			newMigrateCommand(),
			newSeedCommand(),
			newFeedCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("warblerctl failed", "err", err)
		os.Exit(1)
	}
}
