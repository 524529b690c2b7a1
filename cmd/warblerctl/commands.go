package main

import (
	"Warbler/internal/api/config"
	"Warbler/internal/pkg/database"
	"Warbler/internal/pkg/logger"
	"Warbler/internal/pkg/redis"
	"Warbler/internal/service"
	"Warbler/internal/wire"
	"fmt"
	log "log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

// env 命令执行所需的依赖
type env struct {
	db       *gorm.DB
	services *wire.Services
}

func setup(withCache bool) (*env, error) {
	if err := config.LoadConfig(); err != nil {
		return nil, err
	}
	cfg := config.Cfg
	logger.InitLogger(cfg.Logstash, cfg.Server.LogLevel)

	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		return nil, err
	}

	if withCache {
		if err = redis.InitRedis(cfg.Redis); err != nil {
			return nil, err
		}
	}

	return &env{db: db, services: wire.BuildServices(db, nil, cfg)}, nil
}

func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create or update database tables",
		Action: func(c *cli.Context) error {
			e, err := setup(false)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if err = database.AutoMigrate(c.Context, e.db); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			log.Info("migrate finished")
			return nil
		},
	}
}

func newSeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "create the default test users, existing names are skipped",
		Action: func(c *cli.Context) error {
			e, err := setup(true)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer func() { _ = redis.Close() }()

			if err = database.AutoMigrate(c.Context, e.db); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			created, err := e.services.User.SeedUsers(c.Context, service.DefaultSeedUsers())
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			log.Info("seed finished", "created", created)
			return nil
		},
	}
}

func newFeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "feed",
		Usage: "print the assembled feed as JSON",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "pretty", Usage: "indent output"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(false)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			feed, err := e.services.Feed.AssembleFeed(c.Context)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			var out []byte
			if c.Bool("pretty") {
				out, err = json.MarshalIndent(feed, "", "  ")
			} else {
				out, err = json.Marshal(feed)
			}
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			_, err = fmt.Fprintln(os.Stdout, string(out))
			return err
		},
	}
}
