package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/nathanguimaraes/frontend-bank/internal/client"
	"github.com/nathanguimaraes/frontend-bank/internal/config"
	"github.com/nathanguimaraes/frontend-bank/internal/theme"
	"github.com/nathanguimaraes/frontend-bank/internal/ui"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Debug("could not load .env file", "error", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "frontend-bank"})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
		log.SetLevel(level)
	}

	store, err := theme.NewStore(cfg.ConfigDir)
	if err != nil {
		logger.Fatal("failed to open settings store", "error", err)
	}

	api := client.New(cfg.APIURL)
	logger.Info("starting", "api_url", client.NormalizeBaseURL(cfg.APIURL), "account_id", cfg.AccountID)

	program := tea.NewProgram(ui.New(cfg, api, store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Fatal("program exited with error", "error", err)
	}
}
