// Package config loads calcpad's configuration: a small line-oriented
// text file of "section key value" entries. Malformed input degrades to
// warnings, never errors; a missing file means defaults.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults and floors for the tunable values.
const (
	DefaultHistoryCapacity = 50
	DefaultMaxDigits       = 24
	MinMaxDigits           = 8
)

// Config holds the program's settings.
type Config struct {
	// HistoryCapacity bounds the in-memory history log.
	HistoryCapacity int
	// MaxDigits bounds the display length during digit entry.
	MaxDigits int
	// LogDivisionByZero, when set, records an attempted division by zero
	// in the history with the unchanged left operand as its result.
	LogDivisionByZero bool
	// Warnings collects non-fatal problems found while loading.
	Warnings []string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HistoryCapacity: DefaultHistoryCapacity,
		MaxDigits:       DefaultMaxDigits,
	}
}

// Path returns the default config file location,
// e.g. ~/.config/calcpad/config.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "calcpad", "config"), nil
}

// Load reads the file at path. A missing file is not an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse reads the config format from r:
//
//	# comment
//	history capacity 50
//	history log-division-by-zero true
//	display max-digits 24
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			cfg.warnf("line %d: expected 'section key value', got %q", lineNo, line)
			continue
		}
		cfg.apply(lineNo, fields[0]+" "+fields[1], fields[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

func (c *Config) apply(lineNo int, key, value string) {
	switch key {
	case "history capacity":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			c.warnf("line %d: history capacity %q must be a positive integer", lineNo, value)
			return
		}
		c.HistoryCapacity = n
	case "history log-division-by-zero":
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.warnf("line %d: history log-division-by-zero %q must be a boolean", lineNo, value)
			return
		}
		c.LogDivisionByZero = b
	case "display max-digits":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxDigits {
			c.warnf("line %d: display max-digits %q must be an integer >= %d", lineNo, value, MinMaxDigits)
			return
		}
		c.MaxDigits = n
	default:
		c.warnf("line %d: unknown setting %q", lineNo, key)
	}
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// LogWarnings emits collected warnings through logger.
func (c *Config) LogWarnings(logger *slog.Logger) {
	for _, w := range c.Warnings {
		logger.Warn("config", "warning", w)
	}
}
