package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	archiver "github.com/berlin-open-data/bvg-archiver"
	"github.com/berlin-open-data/bvg-archiver/bvgapi"
	"github.com/berlin-open-data/bvg-archiver/config"
	"github.com/berlin-open-data/bvg-archiver/logging"
	"github.com/berlin-open-data/bvg-archiver/storage"
)

const logFile = "bvg_archiver.log"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config.yml (defaults to ./config.yml)")
	flag.Parse()

	logger, closer, err := logging.NewWithFile(logFile, slog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		return 1
	}
	defer func() { _ = closer.Close() }()

	if err := archive(context.Background(), *configPath, logger); err != nil {
		logger.Error("unhandled error",
			slog.String("component", "main"),
			slog.String("error", err.Error()))
		return 1
	}
	return 0
}

// archive runs one full fetch/process/save cycle to completion.
func archive(ctx context.Context, configPath string, logger *slog.Logger) error {
	var paths []string
	if configPath != "" {
		paths = []string{configPath}
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Config

	uploader, err := storage.NewS3Uploader(ctx, cfg.S3.Region)
	if err != nil {
		return err
	}

	client := bvgapi.NewClient(cfg.API.BaseURL, cfg.API.Duration, cfg.API.MaxResults,
		time.Duration(cfg.API.TimeoutMS)*time.Millisecond)
	writer := storage.NewWriter(uploader, cfg.S3.Bucket, cfg.Staging.Dir,
		logging.ForComponent(logger, "storage"))
	runner := archiver.NewRunner(cfg, client, writer,
		logging.ForComponent(logger, "runner"))

	archived := runner.Run(ctx)
	logger.Info("run complete",
		slog.String("component", "main"),
		slog.Int("artifacts", archived))
	return nil
}
