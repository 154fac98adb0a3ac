// Package main is the entry point for the Voxel Space terrain viewer.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/app"
	"github.com/Faultbox/voxelspace/internal/assets"
	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Voxel Space ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	t, err := assets.LoadMaps(context.Background(), cfg.Maps)
	if err != nil {
		logger.Error("failed to load terrain", zap.Error(err))
		os.Exit(1)
	}

	a, err := app.New(cfg, t)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
