package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medstore-system/internal/services/inventory"
)

func (m Model) updateDashboard(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	// Quick actions, mirroring the original dashboard buttons.
	switch key.String() {
	case "m":
		return navigate(PageMedicines, true)
	case "n":
		return navigate(PageSales, true)
	case "r":
		return navigate(PageDashboard, false)
	}
	return nil
}

func (m Model) renderDashboard() string {
	meds := m.store.Medicines()
	customers := m.store.Customers()
	sales := m.store.Sales()
	stats := inventory.Stats(meds, customers, sales, time.Now(), m.cfg.Alerts.ExpiryWindowMonths)

	cur := m.cfg.App.CurrencySymbol
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Medicines", fmt.Sprintf("%d", stats.TotalMedicines), ""),
		statCard("Low Stock Items", fmt.Sprintf("%d", stats.LowStockItems), lowStockTrend(stats.LowStockItems)),
		statCard("Today's Sales", fmt.Sprintf("%s %s", cur, stats.TodaySales.StringFixed(2)), ""),
		statCard("Total Customers", fmt.Sprintf("%d", stats.TotalCustomers), ""),
	)

	var recent strings.Builder
	recent.WriteString(headerStyle.Render("Recent Sales") + "\n")
	shown := sales
	if len(shown) > 5 {
		shown = shown[:5]
	}
	if len(shown) == 0 {
		recent.WriteString(mutedStyle.Render("No sales yet") + "\n")
	}
	for _, s := range shown {
		recent.WriteString(fmt.Sprintf("%s  %s\n",
			s.CustomerName,
			mutedStyle.Render(fmt.Sprintf("%d items · %s · %s %s", len(s.Items), s.Payment, cur, s.Total.StringFixed(2)))))
	}

	var low strings.Builder
	low.WriteString(headerStyle.Render("Low Stock Alert") + "\n")
	lowMeds := inventory.LowStock(meds)
	if len(lowMeds) == 0 {
		low.WriteString(successStyle.Render("All medicines are well stocked!") + "\n")
	}
	for _, med := range lowMeds {
		low.WriteString(fmt.Sprintf("%s  %s\n",
			med.Name,
			errorStyle.Render(fmt.Sprintf("%d left (min %d)", med.Quantity, med.MinStockLevel))))
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(strings.TrimRight(recent.String(), "\n")),
		" ",
		boxStyle.Render(strings.TrimRight(low.String(), "\n")),
	)

	actions := helpStyle.Render("Quick actions: m add medicine · n create sale · r view reports")

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Dashboard"),
		mutedStyle.Render("Overview of your medical store"),
		"",
		cards,
		"",
		panels,
		"",
		actions,
	)
}

func statCard(title, value, trend string) string {
	body := mutedStyle.Render(title) + "\n" + headerStyle.Render(value)
	if trend != "" {
		body += "\n" + warnStyle.Render(trend)
	}
	return cardStyle.Render(body)
}

func lowStockTrend(count int) string {
	if count > 0 {
		return "Needs attention"
	}
	return "All good"
}
