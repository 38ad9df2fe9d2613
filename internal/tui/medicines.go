package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medstore-system/config"
	"medstore-system/internal/models"
	"medstore-system/internal/services/inventory"
	"medstore-system/internal/store"
)

type medicinesMode int

const (
	medList medicinesMode = iota
	medAdd
	medConfirmDelete
)

const (
	medFieldName = iota
	medFieldGeneric
	medFieldManufacturer
	medFieldBatch
	medFieldExpiry
	medFieldCategory
	medFieldQuantity
	medFieldMinStock
	medFieldPurchasePrice
	medFieldSellingPrice
	medFieldDescription
	medFieldCount
)

type medicinesModel struct {
	cfg   config.Config
	store *store.Store

	mode     medicinesMode
	search   textinput.Model
	category int // index into inventory.Categories of the current snapshot
	cursor   int
	status   string

	inputs     []textinput.Model
	focusIndex int
	formErr    string

	deleteID   string
	deleteName string
}

func newMedicinesModel(cfg config.Config, st *store.Store) medicinesModel {
	search := newInput("Search medicines...")
	return medicinesModel{cfg: cfg, store: st, search: search}
}

func (m medicinesModel) typing() bool {
	return m.mode == medAdd || m.search.Focused()
}

func (m *medicinesModel) openAddForm() {
	m.mode = medAdd
	m.formErr = ""
	m.inputs = make([]textinput.Model, medFieldCount)
	placeholders := []string{
		"Medicine Name",
		"Generic Name",
		"Manufacturer",
		"Batch Number",
		"Expiry Date (YYYY-MM-DD)",
		"Category",
		"Quantity",
		"Min Stock Level",
		"Purchase Price",
		"Selling Price",
		"Description (optional)",
	}
	for i, p := range placeholders {
		m.inputs[i] = newInput(p)
	}
	m.focusIndex = cycleFocus(m.inputs, 0)
}

func (m medicinesModel) visible() []models.Medicine {
	cats := inventory.Categories(m.store.Medicines())
	cat := inventory.CategoryAll
	if m.category < len(cats) {
		cat = cats[m.category]
	}
	return inventory.Search(m.store.Medicines(), m.search.Value(), cat)
}

func (m medicinesModel) Update(msg tea.Msg) (medicinesModel, tea.Cmd) {
	switch m.mode {
	case medAdd:
		return m.updateAddForm(msg)
	case medConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m.updateList(msg)
}

func (m medicinesModel) updateList(msg tea.Msg) (medicinesModel, tea.Cmd) {
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
	case "c":
		cats := inventory.Categories(m.store.Medicines())
		m.category = (m.category + 1) % len(cats)
		m.cursor = 0
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
	case "d":
		visible := m.visible()
		if m.cursor < len(visible) {
			m.mode = medConfirmDelete
			m.deleteID = visible[m.cursor].ID
			m.deleteName = visible[m.cursor].Name
		}
	}
	return m, nil
}

func (m medicinesModel) updateConfirm(msg tea.Msg) (medicinesModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.store.DeleteMedicine(m.deleteID)
		m.status = fmt.Sprintf("Deleted %s", m.deleteName)
		m.mode = medList
		m.cursor = 0
	case "n", "N", "esc":
		m.mode = medList
	}
	return m, nil
}

func (m medicinesModel) updateAddForm(msg tea.Msg) (medicinesModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.mode = medList
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
		return m.submitAddForm()
	case "ctrl+s":
		return m.submitAddForm()
	}

	cmd := updateInputs(m.inputs, msg)
	return m, cmd
}

func (m medicinesModel) submitAddForm() (medicinesModel, tea.Cmd) {
	in := models.MedicineInput{
		Name:          strings.TrimSpace(m.inputs[medFieldName].Value()),
		GenericName:   strings.TrimSpace(m.inputs[medFieldGeneric].Value()),
		Manufacturer:  strings.TrimSpace(m.inputs[medFieldManufacturer].Value()),
		BatchNumber:   strings.TrimSpace(m.inputs[medFieldBatch].Value()),
		ExpiryDate:    parseDateOrZero(m.inputs[medFieldExpiry].Value()),
		Category:      strings.TrimSpace(m.inputs[medFieldCategory].Value()),
		Quantity:      parseIntOrZero(m.inputs[medFieldQuantity].Value()),
		MinStockLevel: parseIntOrZero(m.inputs[medFieldMinStock].Value()),
		PurchasePrice: parseDecimalOrZero(m.inputs[medFieldPurchasePrice].Value()),
		SellingPrice:  parseDecimalOrZero(m.inputs[medFieldSellingPrice].Value()),
		Description:   strings.TrimSpace(m.inputs[medFieldDescription].Value()),
	}
	if err := validate.Struct(in); err != nil {
		m.formErr = validationMessage(err)
		return m, nil
	}

	med := m.store.AddMedicine(in)
	m.mode = medList
	m.status = fmt.Sprintf("Added %s", med.Name)
	return m, nil
}

func (m medicinesModel) View() string {
	switch m.mode {
	case medAdd:
		return m.renderAddForm()
	case medConfirmDelete:
		return m.renderConfirm()
	}
	return m.renderList()
}

func (m medicinesModel) renderList() string {
	cats := inventory.Categories(m.store.Medicines())
	cat := inventory.CategoryAll
	if m.category < len(cats) {
		cat = cats[m.category]
	}
	catLabel := "All Categories"
	if cat != inventory.CategoryAll {
		catLabel = cat
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Medicine Inventory") + "\n")
	b.WriteString(mutedStyle.Render("Manage your medicine stock and inventory") + "\n\n")
	b.WriteString(m.search.View() + "  " + boxStyle.Render("Filter: "+catLabel) + "\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("No medicines found. Try adjusting your search or filter criteria.") + "\n")
	}
	now := time.Now()
	for i, med := range visible {
		b.WriteString(m.renderCard(med, i == m.cursor, now) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + successStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("/ search · c category · a add · d delete · ↑/↓ select"))
	return b.String()
}

func (m medicinesModel) renderCard(med models.Medicine, selected bool, now time.Time) string {
	cur := m.cfg.App.CurrencySymbol
	name := med.Name
	if selected {
		name = selectedStyle.Render(" " + name + " ")
	} else {
		name = headerStyle.Render(name)
	}

	stock := fmt.Sprintf("Stock: %d", med.Quantity)
	if med.IsLowStock() {
		stock = errorStyle.Render(stock)
	} else {
		stock = successStyle.Render(stock)
	}

	var badges []string
	if m.cfg.Alerts.LowStockAlerts && med.IsLowStock() {
		badges = append(badges, errorStyle.Render("LOW STOCK"))
	}
	if m.cfg.Alerts.ExpiryAlerts && med.IsExpiringSoon(now, m.cfg.Alerts.ExpiryWindowMonths) {
		badges = append(badges, warnStyle.Render("EXPIRES SOON"))
	}

	lines := []string{
		name,
		mutedStyle.Render(med.GenericName + " · " + med.Manufacturer),
		fmt.Sprintf("%s  Batch %s  Expiry %s", med.Category, med.BatchNumber, med.ExpiryDate.Format("2006-01-02")),
		fmt.Sprintf("%s  Price: %s", stock, moneyStyle.Render(cur+" "+med.SellingPrice.StringFixed(2))),
	}
	if len(badges) > 0 {
		lines = append(lines, strings.Join(badges, "  "))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m medicinesModel) renderConfirm() string {
	prompt := fmt.Sprintf("Are you sure you want to delete %s?", m.deleteName)
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Delete Medicine"),
		"",
		boxStyle.Render(prompt+"\n\n"+helpStyle.Render("y confirm · n cancel")),
	)
}

func (m medicinesModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Add New Medicine") + "\n\n")
	labels := []string{
		"Medicine Name *", "Generic Name *", "Manufacturer *", "Batch Number *",
		"Expiry Date *", "Category *", "Quantity", "Min Stock Level",
		"Purchase Price", "Selling Price", "Description",
	}
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
