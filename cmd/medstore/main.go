package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"medstore-system/config"
	"medstore-system/internal/store"
	"medstore-system/internal/tui"
)

func main() {
	cfg := config.LoadConfig()
	config.InitLogger(cfg.App.LogFile)
	logger := config.GetLogger()

	st := store.New(logger)
	if cfg.App.SeedData {
		st.Seed()
	}

	program := tea.NewProgram(tui.New(cfg, st), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.WithError(err).Error("dashboard exited")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
