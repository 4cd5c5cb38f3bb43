package main

import (
	"context"
	"fmt"
	"os"

	"crm/backend/foundation/web"
	"crm/backend/internal/auth"
	"crm/backend/internal/commands"
	"crm/backend/internal/pkg/config"
	"crm/backend/internal/pkg/logger"
	"crm/backend/internal/pkg/repository/postgresql"
	"crm/backend/internal/router"
	"crm/backend/internal/service"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type flags struct {
	ConfigPath string `conf:"default:config.yaml"`
	Port       string `conf:""`
	LocalDev   bool   `conf:"default:true"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	var f flags
	if err := conf.Parse(os.Args[1:], "CRM", &f); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, err := conf.Usage("CRM", &f)
			if err != nil {
				return errors.Wrap(err, "generating usage")
			}
			fmt.Println(usage)
			return nil
		}
		return errors.Wrap(err, "parsing flags")
	}

	logger.Setup(f.LocalDev)

	cfg, err := config.NewConfig(f.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	if f.Port != "" {
		cfg.ServerPort = f.Port
	}

	db := postgresql.New(cfg)
	defer db.Close()

	commands.MigrateUP(db)
	commands.SeedAdmin(db)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
	}

	var store service.PhotoStore
	if cfg.S3Bucket != "" {
		s3Store, err := service.NewS3Store(context.Background(), cfg)
		if err != nil {
			return errors.Wrap(err, "building s3 store")
		}
		store = s3Store
	} else {
		store = service.NewLocalStore(cfg.MediaDir)
	}

	authenticator := auth.New(cfg.JWTKey)

	app := web.NewApp()
	r := router.NewRouter(app, db, rdb, cfg.ServerPort, authenticator, store, cfg.MediaDir, cfg.AllowedOrigins)

	log.Info().Str("port", cfg.ServerPort).Msg("starting server")
	return r.Init()
}
