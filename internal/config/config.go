package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

type Config struct {
	HTTPAddr string
	GRPCAddr string

	CurrencyCode   string
	CurrencySymbol string
	Locale         string

	NewReleaseWindow    time.Duration
	ProductPathTemplate string
	BatchConcurrency    int

	PaletteFile string
	Palette     domain.Palette

	LogLevel string
	DevMode  bool
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load() // load .env if it exists

	cfg := Config{
		HTTPAddr:            getenv("HTTP_ADDR", ":8080"),
		GRPCAddr:            getenv("GRPC_ADDR", ":50051"),
		CurrencyCode:        getenv("CURRENCY_CODE", "USD"),
		CurrencySymbol:      getenv("CURRENCY_SYMBOL", "$"),
		Locale:              getenv("LOCALE", "en-US"),
		ProductPathTemplate: getenv("PRODUCT_PATH_TEMPLATE", "/shoe/{slug}"),
		PaletteFile:         os.Getenv("PALETTE_FILE"),
		LogLevel:            getenv("LOG_LEVEL", "info"),
		DevMode:             getenv("APP_ENV", "prod") == "dev",
	}

	window, err := time.ParseDuration(getenv("NEW_RELEASE_WINDOW", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("config: NEW_RELEASE_WINDOW: %w", err)
	}
	if window <= 0 {
		return Config{}, fmt.Errorf("config: NEW_RELEASE_WINDOW must be positive, got %s", window)
	}
	cfg.NewReleaseWindow = window

	cfg.BatchConcurrency, err = strconv.Atoi(getenv("BATCH_CONCURRENCY", "8"))
	if err != nil {
		return Config{}, fmt.Errorf("config: BATCH_CONCURRENCY: %w", err)
	}

	cfg.Palette = domain.DefaultPalette()
	if cfg.PaletteFile != "" {
		cfg.Palette, err = LoadPalette(cfg.PaletteFile)
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// LoadPalette reads a YAML palette file. Keys missing from the file keep
// their DefaultPalette values.
func LoadPalette(path string) (domain.Palette, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Palette{}, fmt.Errorf("config: read palette: %w", err)
	}
	return ParsePalette(raw)
}

// ParsePalette decodes YAML palette bytes over DefaultPalette.
func ParsePalette(raw []byte) (domain.Palette, error) {
	pal := domain.DefaultPalette()
	if err := yaml.Unmarshal(raw, &pal); err != nil {
		return domain.Palette{}, fmt.Errorf("config: parse palette: %w", err)
	}
	return pal, nil
}
