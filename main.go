package main

import (
	"fmt"
	"os"

	"backend/configs"
	"backend/middlewares"
	"backend/pkg/cache"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg := configs.LoadConfig()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedLookups(); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	// Cache (optional; nil when REDIS_ADDR is unset)
	c := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
	if c == nil {
		log.Info().Msg("cache disabled, set REDIS_ADDR to enable")
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, c)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
