package main

import (
	"log"
	"net/http"

	"github.com/DavidOG03/crack-analyst/config"
	"github.com/DavidOG03/crack-analyst/internal/api"
	"github.com/DavidOG03/crack-analyst/internal/container"
	"github.com/DavidOG03/crack-analyst/internal/infrastructure/storage"
	"github.com/DavidOG03/crack-analyst/internal/infrastructure/vision"
	"github.com/DavidOG03/crack-analyst/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel)

	// Хранилище пользователей и конвейер анализа
	userRepo := storage.NewMemoryUserRepository()
	pipeline := vision.NewCrackPipeline(cfg.Pipeline)

	// Хаб раздаёт вердикты WebSocket-наблюдателям
	hub := api.NewHub(appLogger)
	go hub.Run()

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, pipeline, hub, appLogger)

	server := api.NewServer(appContainer.AnalysisService, hub, appLogger)

	// Бот поднимается только при заданном токене, HTTP API работает всегда
	if cfg.TelegramToken != "" {
		bot, err := api.NewBot(cfg.TelegramToken, appContainer.UserService, appContainer.AnalysisService, appLogger)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to create bot")
		}
		go func() {
			if err := bot.Run(); err != nil {
				appLogger.Fatal().Err(err).Msg("bot stopped")
			}
		}()
	} else {
		appLogger.Info().Msg("TELEGRAM_TOKEN is empty, bot is disabled")
	}

	appLogger.Info().Str("addr", cfg.HTTPAddr).Msg("http server is running")
	if err := http.ListenAndServe(cfg.HTTPAddr, server.Routes()); err != nil {
		appLogger.Fatal().Err(err).Msg("http server stopped")
	}
}
