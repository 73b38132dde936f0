package main

import (
	"os"

	"github.com/Meenakshi-Adapa/CraftHub/config"
	"github.com/Meenakshi-Adapa/CraftHub/jwt"
	"github.com/Meenakshi-Adapa/CraftHub/routers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	configPath := os.Getenv("CRAFTHUB_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
	}

	jwt.SetKeyPaths(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath)

	db, err := config.SetupMySQLConnection(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	rdb, err := config.SetupRedisConnection(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	router := routers.SetupRouters(db, rdb)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":3000"
	}
	log.Info().Str("addr", addr).Msg("starting server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
