package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"safeai-bot/config"
	telegram "safeai-bot/internal/api"
	"safeai-bot/internal/container"
	"safeai-bot/internal/infrastructure/report"
	"safeai-bot/internal/infrastructure/storage"
	"safeai-bot/internal/infrastructure/vision"
)

const usage = `usage:
  safeai-bot                  run the telegram bot (TELEGRAM_TOKEN required)
  safeai-bot analyze <path>   analyze an image and print the record as JSON`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Собираем сервисы приложения
	appContainer := container.New(
		storage.NewMemoryUserRepository(),
		storage.NewMemoryAnalysisRepository(),
		vision.NewDetector(),
		report.NewSynthesizer(cfg.Rand()),
		container.Options{
			Highlight: cfg.Highlight(),
			UploadDir: cfg.UploadDir,
			Logger:    logger,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]
	switch {
	case len(args) == 0:
		if err := runBot(ctx, cfg, appContainer, logger); err != nil {
			logger.Fatal("bot stopped", zap.Error(err))
		}
	case args[0] == "analyze" && len(args) == 2:
		if err := analyze(ctx, appContainer, args[1]); err != nil {
			logger.Error("analysis failed", zap.String("path", args[1]), zap.Error(err))
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func runBot(ctx context.Context, cfg *config.Config, c *container.Container, logger *zap.Logger) error {
	if cfg.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, c, logger.Named("telegram"))
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	logger.Info("bot is running")
	return bot.Run(ctx)
}

func analyze(ctx context.Context, c *container.Container, path string) error {
	out, err := c.InspectionService.InspectFile(ctx, path)
	if err != nil {
		// Нейтральный отчёт всё равно печатаем, чтобы вызывающий видел результат.
		if out != nil && out.Report != nil {
			_ = printJSON(out.Report)
		}
		return err
	}
	return printJSON(out.Record)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
