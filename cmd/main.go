package main

import (
	"log"

	"github.com/VladPetriv/money/config"
	"github.com/VladPetriv/money/internal/app"
	"github.com/VladPetriv/money/pkg/logger"
)

func main() {
	cfg := config.Get()

	logger, err := logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
	})
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}

	app.Run(cfg, logger)
}
