package main

import (
	"context"
	"log"
	"os"

	"pricetable/config"
	"pricetable/internal/collector"
	"pricetable/logger"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// zap logger
	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zlog.Sync()

	// run both collectors and print the merged table
	if err := collector.Run(context.Background(), cfg, zlog, os.Stdout); err != nil {
		zlog.Fatal("collector failed", zap.Error(err))
	}
}
