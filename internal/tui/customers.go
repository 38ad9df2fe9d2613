package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"medstore-system/config"
	"medstore-system/internal/models"
	"medstore-system/internal/services/directory"
	"medstore-system/internal/store"
)

const (
	custFieldName = iota
	custFieldPhone
	custFieldEmail
	custFieldAddress
	custFieldDOB
	custFieldCount
)

type customersModel struct {
	cfg   config.Config
	store *store.Store

	adding bool
	search textinput.Model
	cursor int
	status string

	inputs     []textinput.Model
	focusIndex int
	formErr    string
}

func newCustomersModel(cfg config.Config, st *store.Store) customersModel {
	return customersModel{cfg: cfg, store: st, search: newInput("Search customers by name, phone, or email...")}
}

func (m customersModel) typing() bool {
	return m.adding || m.search.Focused()
}

func (m *customersModel) openAddForm() {
	m.adding = true
	m.formErr = ""
	m.inputs = make([]textinput.Model, custFieldCount)
	placeholders := []string{"Name", "Phone", "Email (optional)", "Address", "Date of Birth (YYYY-MM-DD, optional)"}
	for i, p := range placeholders {
		m.inputs[i] = newInput(p)
	}
	m.focusIndex = cycleFocus(m.inputs, 0)
}

func (m customersModel) visible() []models.Customer {
	return directory.SearchCustomers(m.store.Customers(), m.search.Value())
}

func (m customersModel) Update(msg tea.Msg) (customersModel, tea.Cmd) {
	if m.adding {
		return m.updateAddForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.Focused() {
		switch key.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	switch key.String() {
	case "/":
		m.search.Focus()
		m.status = ""
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "a":
		m.openAddForm()
	}
	return m, nil
}

func (m customersModel) updateAddForm(msg tea.Msg) (customersModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.adding = false
		return m, nil
	case "tab", "down":
		m.focusIndex = cycleFocus(m.inputs, m.focusIndex+1)
		return m, nil
	case "shift+tab", "up":
		m.focusIndex = cycleFocus(m.inputs, m.focusIndex-1)
		return m, nil
	case "enter":
		if m.focusIndex < len(m.inputs)-1 {
			m.focusIndex = cycleFocus(m.inputs, m.focusIndex+1)
			return m, nil
		}
		return m.submit()
	case "ctrl+s":
		return m.submit()
	}

	cmd := updateInputs(m.inputs, msg)
	return m, cmd
}

func (m customersModel) submit() (customersModel, tea.Cmd) {
	in := models.CustomerInput{
		Name:    strings.TrimSpace(m.inputs[custFieldName].Value()),
		Phone:   strings.TrimSpace(m.inputs[custFieldPhone].Value()),
		Email:   strings.TrimSpace(m.inputs[custFieldEmail].Value()),
		Address: strings.TrimSpace(m.inputs[custFieldAddress].Value()),
	}
	if dob := parseDateOrZero(m.inputs[custFieldDOB].Value()); !dob.IsZero() {
		in.DateOfBirth = &dob
	}
	if err := validate.Struct(in); err != nil {
		m.formErr = validationMessage(err)
		return m, nil
	}

	cust := m.store.AddCustomer(in)
	m.adding = false
	m.status = fmt.Sprintf("Added %s", cust.Name)
	return m, nil
}

func (m customersModel) View() string {
	if m.adding {
		return m.renderAddForm()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Customer Management") + "\n")
	b.WriteString(mutedStyle.Render("Manage customer information and purchase history") + "\n\n")
	b.WriteString(m.search.View() + "\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("No customers found. Try adjusting your search criteria.") + "\n")
	}
	for i, c := range visible {
		b.WriteString(m.renderCard(c, i == m.cursor) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + successStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("/ search · a add · ↑/↓ select"))
	return b.String()
}

func (m customersModel) renderCard(c models.Customer, selected bool) string {
	name := c.Name
	if selected {
		name = selectedStyle.Render(" " + name + " ")
	} else {
		name = headerStyle.Render(name)
	}

	lines := []string{name, mutedStyle.Render(c.Phone)}
	if c.Email != "" {
		lines = append(lines, mutedStyle.Render(c.Email))
	}
	lines = append(lines, mutedStyle.Render(c.Address))
	if c.DateOfBirth != nil {
		lines = append(lines, mutedStyle.Render("Born "+c.DateOfBirth.Format("2006-01-02")))
	}
	lines = append(lines, "Total Purchases: "+moneyStyle.Render(m.cfg.App.CurrencySymbol+" "+c.TotalPurchases.StringFixed(2)))
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m customersModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Add New Customer") + "\n\n")
	labels := []string{"Name *", "Phone *", "Email", "Address *", "Date of Birth"}
	for i, in := range m.inputs {
		b.WriteString("  " + labels[i] + "\n")
		b.WriteString("  " + in.View() + "\n")
	}
	if m.formErr != "" {
		b.WriteString("\n  " + errorStyle.Render(m.formErr) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab next field · enter on last field saves · ctrl+s save · esc cancel"))
	return boxStyle.Render(b.String())
}
