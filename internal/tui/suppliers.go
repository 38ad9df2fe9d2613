package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"medstore-system/internal/models"
	"medstore-system/internal/services/directory"
	"medstore-system/internal/store"
)

const (
	supFieldName = iota
	supFieldContact
	supFieldPhone
	supFieldEmail
	supFieldAddress
	supFieldCount
)

type suppliersModel struct {
	store *store.Store

	adding bool
	search textinput.Model
	cursor int
	status string

	inputs     []textinput.Model
	focusIndex int
	formErr    string
}

func newSuppliersModel(st *store.Store) suppliersModel {
	return suppliersModel{store: st, search: newInput("Search suppliers by name, contact person, or email...")}
}

func (m suppliersModel) typing() bool {
	return m.adding || m.search.Focused()
}

func (m *suppliersModel) openAddForm() {
	m.adding = true
	m.formErr = ""
	m.inputs = make([]textinput.Model, supFieldCount)
	placeholders := []string{"Supplier Name", "Contact Person", "Phone", "Email", "Address"}
	for i, p := range placeholders {
		m.inputs[i] = newInput(p)
	}
	m.focusIndex = cycleFocus(m.inputs, 0)
}

func (m suppliersModel) visible() []models.Supplier {
	return directory.SearchSuppliers(m.store.Suppliers(), m.search.Value())
}

func (m suppliersModel) Update(msg tea.Msg) (suppliersModel, tea.Cmd) {
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

func (m suppliersModel) updateAddForm(msg tea.Msg) (suppliersModel, tea.Cmd) {
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

func (m suppliersModel) submit() (suppliersModel, tea.Cmd) {
	in := models.SupplierInput{
		Name:          strings.TrimSpace(m.inputs[supFieldName].Value()),
		ContactPerson: strings.TrimSpace(m.inputs[supFieldContact].Value()),
		Phone:         strings.TrimSpace(m.inputs[supFieldPhone].Value()),
		Email:         strings.TrimSpace(m.inputs[supFieldEmail].Value()),
		Address:       strings.TrimSpace(m.inputs[supFieldAddress].Value()),
	}
	if err := validate.Struct(in); err != nil {
		m.formErr = validationMessage(err)
		return m, nil
	}

	sup := m.store.AddSupplier(in)
	m.adding = false
	m.status = fmt.Sprintf("Added %s", sup.Name)
	return m, nil
}

func (m suppliersModel) View() string {
	if m.adding {
		return m.renderAddForm()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Supplier Management") + "\n")
	b.WriteString(mutedStyle.Render("Manage supplier information and relationships") + "\n\n")
	b.WriteString(m.search.View() + "\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("No suppliers found. Try adjusting your search criteria.") + "\n")
	}
	for i, s := range visible {
		b.WriteString(renderSupplierCard(s, i == m.cursor) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + successStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("/ search · a add · ↑/↓ select"))
	return b.String()
}

func renderSupplierCard(s models.Supplier, selected bool) string {
	name := s.Name
	if selected {
		name = selectedStyle.Render(" " + name + " ")
	} else {
		name = headerStyle.Render(name)
	}

	lines := []string{
		name,
		mutedStyle.Render("Contact: " + s.ContactPerson),
		mutedStyle.Render(s.Phone),
		mutedStyle.Render(s.Email),
		mutedStyle.Render(s.Address),
		fmt.Sprintf("Supplied Medicines: %d", len(s.Medicines)),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m suppliersModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Add New Supplier") + "\n\n")
	labels := []string{"Supplier Name *", "Contact Person *", "Phone *", "Email *", "Address *"}
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
