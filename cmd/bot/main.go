package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"cateringbot/internal/adapters/telegram"
	"cateringbot/internal/application"
	"cateringbot/internal/config"
	"cateringbot/internal/infrastructure/database"
	"cateringbot/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	if err := database.RunMigrations(cfg.DatabaseURL(), cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL(), cfg.DBConnLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer pool.Close()

	departmentRepo := database.NewDepartmentRepository(pool)
	registry, err := application.LoadDepartmentRegistry(ctx, cfg.DepartmentNames, departmentRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load department registry")
	}

	bot, err := telegram.NewBot(
		cfg,
		registry,
		database.NewEventRepository(pool),
		database.NewStateRepository(pool),
		departmentRepo,
		database.NewMarketingRepository(pool),
		database.NewChatDirectoryRepository(pool),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	if err := bot.Start(ctx); err != nil {
		log.Error().Err(err).Msg("bot stopped")
		os.Exit(1)
	}
}
