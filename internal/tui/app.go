// Package tui renders the dashboard: a sidebar of six pages over the shared
// entity store. Every derived view (search results, low-stock lists, sale
// totals) is recomputed on render from a fresh store snapshot.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medstore-system/config"
	"medstore-system/internal/store"
)

// Page identifies one of the dashboard views.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageMedicines Page = "medicines"
	PageSales     Page = "sales"
	PageCustomers Page = "customers"
	PageSuppliers Page = "suppliers"
	PageSettings  Page = "settings"
)

var pages = []Page{
	PageDashboard,
	PageMedicines,
	PageSales,
	PageCustomers,
	PageSuppliers,
	PageSettings,
}

var pageLabels = map[Page]string{
	PageDashboard: "Dashboard",
	PageMedicines: "Medicines",
	PageSales:     "Sales",
	PageCustomers: "Customers",
	PageSuppliers: "Suppliers",
	PageSettings:  "Settings",
}

// ParsePage maps an identifier to a page; anything unknown falls back to
// the dashboard.
func ParsePage(id string) Page {
	p := Page(strings.ToLower(strings.TrimSpace(id)))
	for _, known := range pages {
		if p == known {
			return p
		}
	}
	return PageDashboard
}

// navigateMsg is the single cross-page signal: a page asks the root model
// to switch views. Quick actions on the dashboard emit it instead of
// reaching into global state.
type navigateMsg struct {
	page Page
	// openForm immediately opens the target page's create form.
	openForm bool
}

func navigate(page Page, openForm bool) tea.Cmd {
	return func() tea.Msg { return navigateMsg{page: page, openForm: openForm} }
}

// Model is the navigation shell. It owns the current page identifier and
// the per-page sub-models; business state lives in the store.
type Model struct {
	cfg   config.Config
	store *store.Store

	page      Page
	width     int
	height    int
	medicines medicinesModel
	sales     salesModel
	customers customersModel
	suppliers suppliersModel
	settings  settingsModel
}

func New(cfg config.Config, st *store.Store) Model {
	return Model{
		cfg:       cfg,
		store:     st,
		page:      PageDashboard,
		medicines: newMedicinesModel(cfg, st),
		sales:     newSalesModel(cfg, st),
		customers: newCustomersModel(cfg, st),
		suppliers: newSuppliersModel(st),
		settings:  newSettingsModel(cfg),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		m.page = msg.page
		if msg.openForm {
			switch m.page {
			case PageMedicines:
				m.medicines.openAddForm()
			case PageSales:
				m.sales.openCreateForm()
			}
		}
		return m, nil

	case tea.KeyMsg:
		if !m.typing() {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1", "2", "3", "4", "5", "6":
				idx := int(msg.String()[0] - '1')
				m.page = pages[idx]
				return m, nil
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updatePage(msg)
}

// typing reports whether the active page currently owns the keyboard via a
// focused text input, in which case navigation keys must pass through.
func (m Model) typing() bool {
	switch m.page {
	case PageMedicines:
		return m.medicines.typing()
	case PageSales:
		return m.sales.typing()
	case PageCustomers:
		return m.customers.typing()
	case PageSuppliers:
		return m.suppliers.typing()
	}
	return false
}

func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case PageDashboard:
		cmd = m.updateDashboard(msg)
	case PageMedicines:
		m.medicines, cmd = m.medicines.Update(msg)
	case PageSales:
		m.sales, cmd = m.sales.Update(msg)
	case PageCustomers:
		m.customers, cmd = m.customers.Update(msg)
	case PageSuppliers:
		m.suppliers, cmd = m.suppliers.Update(msg)
	case PageSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var content string
	switch m.page {
	case PageDashboard:
		content = m.renderDashboard()
	case PageMedicines:
		content = m.medicines.View()
	case PageSales:
		content = m.sales.View()
	case PageCustomers:
		content = m.customers.View()
	case PageSuppliers:
		content = m.suppliers.View()
	case PageSettings:
		content = m.settings.View()
	}

	header := titleStyle.Render(" " + m.cfg.Store.Name + " ")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content)
	footer := helpStyle.Render("  1-6 switch page · q quit")
	return fmt.Sprintf("%s\n\n%s\n%s\n", header, body, footer)
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	for i, p := range pages {
		label := fmt.Sprintf("%d %s", i+1, pageLabels[p])
		if p == m.page {
			b.WriteString(selectedStyle.Render(" "+label+" ") + "\n")
		} else {
			b.WriteString(" " + label + " \n")
		}
	}
	return sidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}
