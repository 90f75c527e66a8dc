// Command calcpad is a terminal scientific calculator: keypad and history
// panel, driven by keyboard or mouse.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/calcpad/calcpad/internal/app"
	"github.com/calcpad/calcpad/internal/config"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to the config file (default: the user config dir)")
	debugLog := flag.String("debug", "", "append a debug log to this file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("calcpad " + version)
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("calcpad is interactive; stdin is not a terminal")
	}

	// The alt screen owns stdout, so debug logging goes to a file or
	// nowhere.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer func() { _ = f.Close() }()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	cfg.LogWarnings(logger)

	calculator := app.New(cfg, logger)
	defer calculator.Close()

	p := tea.NewProgram(calculator,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.Path()
		if err != nil {
			// No config dir on this system; run with defaults.
			return config.Default(), nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
