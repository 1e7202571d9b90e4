package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Directories, supplied as CLI arguments.
	SourceDir string
	DestDir   string

	// Scanner
	Extensions  []string
	ExcludeDirs []string

	// Classification
	SummaryMaxLen int
	MaxKeywords   int
	ReadingWPM    int

	// Serve mode
	Port   string
	APIKey string
}

func Load() Config {
	cfg := Config{
		Extensions:  envList("MDINDEX_EXTENSIONS", []string{".md", ".markdown"}),
		ExcludeDirs: envList("MDINDEX_EXCLUDE_DIRS", nil),

		SummaryMaxLen: envInt("MDINDEX_SUMMARY_MAX_LEN", 200),
		MaxKeywords:   envInt("MDINDEX_MAX_KEYWORDS", 20),
		ReadingWPM:    envInt("MDINDEX_READING_WPM", 200),

		Port:   envOr("PORT", "8091"),
		APIKey: os.Getenv("MDINDEX_API_KEY"),
	}

	if cfg.SummaryMaxLen <= 0 {
		cfg.SummaryMaxLen = 200
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = 20
	}
	if cfg.ReadingWPM <= 0 {
		cfg.ReadingWPM = 200
	}

	return cfg
}

func (c Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source directory is required")
	}
	if c.DestDir == "" {
		return fmt.Errorf("destination directory is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
