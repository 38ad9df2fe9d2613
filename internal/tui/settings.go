package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medstore-system/config"
)

// settingsModel shows the store profile from configuration and a few
// notification toggles. The data-management entries mirror the original
// page: they are listed but not functional.
type settingsModel struct {
	cfg    config.Config
	cursor int

	lowStockAlerts bool
	expiryAlerts   bool
	dailyReport    bool
}

func newSettingsModel(cfg config.Config) settingsModel {
	return settingsModel{
		cfg:            cfg,
		lowStockAlerts: cfg.Alerts.LowStockAlerts,
		expiryAlerts:   cfg.Alerts.ExpiryAlerts,
	}
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < 2 {
			m.cursor++
		}
	case " ", "enter":
		switch m.cursor {
		case 0:
			m.lowStockAlerts = !m.lowStockAlerts
		case 1:
			m.expiryAlerts = !m.expiryAlerts
		case 2:
			m.dailyReport = !m.dailyReport
		}
	}
	return m, nil
}

func (m settingsModel) View() string {
	profile := strings.Join([]string{
		headerStyle.Render("Store Information"),
		"Store Name:      " + m.cfg.Store.Name,
		"Address:         " + m.cfg.Store.Address,
		"Phone:           " + m.cfg.Store.Phone,
		"License Number:  " + m.cfg.Store.License,
		"Currency:        " + m.cfg.App.CurrencySymbol,
		mutedStyle.Render(fmt.Sprintf("Expiry alert window: %d months", m.cfg.Alerts.ExpiryWindowMonths)),
	}, "\n")

	toggles := []struct {
		label string
		desc  string
		on    bool
	}{
		{"Low Stock Alerts", "Get notified when medicines are running low", m.lowStockAlerts},
		{"Expiry Alerts", "Get notified about medicines expiring soon", m.expiryAlerts},
		{"Daily Sales Report", "Receive daily sales summary", m.dailyReport},
	}
	var notif strings.Builder
	notif.WriteString(headerStyle.Render("Notifications") + "\n")
	for i, t := range toggles {
		box := "[ ]"
		if t.on {
			box = successStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", box, t.label)
		if i == m.cursor {
			line = selectedStyle.Render(" " + line + " ")
		}
		notif.WriteString(line + "\n" + mutedStyle.Render("    "+t.desc) + "\n")
	}

	data := strings.Join([]string{
		headerStyle.Render("Data Management"),
		mutedStyle.Render("Export Data: download all your store data as CSV (not available)"),
		mutedStyle.Render("Import Data: import medicines, customers, or suppliers from CSV (not available)"),
		mutedStyle.Render("Backup Data: create a backup of all your data (not available)"),
		mutedStyle.Render("Reset Data: all records live in memory and reset on restart"),
	}, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Settings"),
		mutedStyle.Render("Configure your medical store settings"),
		"",
		boxStyle.Render(profile),
		"",
		boxStyle.Render(strings.TrimRight(notif.String(), "\n")),
		"",
		boxStyle.Render(data),
		"",
		helpStyle.Render("↑/↓ select toggle · space flip"),
	)
}
