package config

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultHighlight = "#ff0000"
	defaultUploadDir = "uploads"
)

type Config struct {
	TelegramToken  string
	LogLevel       zapcore.Level
	LogFormat      string         // json или console
	AnalysisSeed   uint64         // 0 — случайный seed при каждом запуске
	HighlightColor colorful.Color // Цвет контуров трещин
	UploadDir      string         // Куда бот складывает визуализации
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "json")),
		UploadDir:     getEnv("UPLOAD_DIR", defaultUploadDir),
	}

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return nil, fmt.Errorf("LOG_FORMAT: unsupported format %q", cfg.LogFormat)
	}

	seed, err := strconv.ParseUint(getEnv("ANALYSIS_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ANALYSIS_SEED: %w", err)
	}
	cfg.AnalysisSeed = seed

	highlight, err := colorful.Hex(getEnv("HIGHLIGHT_COLOR", defaultHighlight))
	if err != nil {
		return nil, fmt.Errorf("HIGHLIGHT_COLOR: %w", err)
	}
	cfg.HighlightColor = highlight

	return cfg, nil
}

// Highlight цвет подсветки в виде, пригодном для рисования.
func (c *Config) Highlight() color.Color {
	r, g, b := c.HighlightColor.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Rand источник случайности для синтеза отчёта. При нулевом seed
// каждый запуск получает свою последовательность.
func (c *Config) Rand() *rand.Rand {
	seed := c.AnalysisSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// NewLogger собирает zap-логгер по LOG_FORMAT и LOG_LEVEL.
func (c *Config) NewLogger() (*zap.Logger, error) {
	var zc zap.Config
	if c.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	return zc.Build()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
