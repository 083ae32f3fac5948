// Package main is the entry point for the area light viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/arealight/internal/arealight"
	"github.com/Faultbox/arealight/internal/config"
	"github.com/Faultbox/arealight/internal/logger"
	"github.com/Faultbox/arealight/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Area Lights ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		app.Close()
		if arealight.IsFatal(err) {
			logger.Fatal("light model broke down", zap.Error(err))
		}
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	app.Close()

	logger.Info("viewer closed normally")
}
