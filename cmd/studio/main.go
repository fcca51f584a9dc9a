package main

import (
	"flag"
	"fmt"
	"os"

	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/ozgurkaracam/aytas-flyer/internal/render"
	"github.com/ozgurkaracam/aytas-flyer/internal/studio"
	"github.com/ozgurkaracam/aytas-flyer/internal/studio/api"
)

func main() {
	_ = godotenv.Load()

	server := flag.String("server", os.Getenv("FLYER_SERVER_URL"), "flyer server base URL (empty = local-only)")
	campaign := flag.String("campaign", os.Getenv("FLYER_CAMPAIGN_ID"), "campaign id to edit")
	flag.Parse()

	// The TUI owns stdout; logs go to a file so they never tear the screen.
	logFile, err := os.OpenFile("studio.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	client := api.NewClient(*server, *campaign)
	m := studio.NewModel(client, render.NewChrome(logger), logger)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "studio failed: %v\n", err)
		os.Exit(1)
	}
}
