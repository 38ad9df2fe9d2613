package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"medstore-system/config"
	"medstore-system/internal/models"
	"medstore-system/internal/services/pos"
	"medstore-system/internal/store"
)

type salesMode int

const (
	salesList salesMode = iota
	salesCreate
)

// focus slots inside the create-sale form
const (
	saleFocusCustomer = iota
	saleFocusSearch
	saleFocusItems
)

type salesModel struct {
	cfg   config.Config
	store *store.Store

	mode       salesMode
	search     textinput.Model
	dateFilter textinput.Model
	cursor     int
	status     string

	builder    *pos.Builder
	customerIn textinput.Model
	medSearch  textinput.Model
	focus      int
	candidate  int
	itemCursor int
	formErr    string
	custPick   int
}

func newSalesModel(cfg config.Config, st *store.Store) salesModel {
	search := newInput("Search by customer name or sale ID...")
	dateFilter := newInput("Date filter (YYYY-MM-DD)")
	dateFilter.CharLimit = 10
	dateFilter.Width = 20
	return salesModel{
		cfg:        cfg,
		store:      st,
		search:     search,
		dateFilter: dateFilter,
		builder:    pos.NewBuilder(),
	}
}

func (m salesModel) typing() bool {
	if m.mode == salesCreate {
		return m.customerIn.Focused() || m.medSearch.Focused()
	}
	return m.search.Focused() || m.dateFilter.Focused()
}

func (m *salesModel) openCreateForm() {
	m.mode = salesCreate
	m.builder = pos.NewBuilder()
	m.customerIn = newInput("Enter customer name")
	m.medSearch = newInput("Search medicines...")
	m.customerIn.Focus()
	m.focus = saleFocusCustomer
	m.candidate = 0
	m.itemCursor = 0
	m.formErr = ""
	m.custPick = -1
}

func (m salesModel) visible() []models.Sale {
	return pos.Search(m.store.Sales(), m.search.Value(), parseDateOrZero(m.dateFilter.Value()))
}

func (m salesModel) Update(msg tea.Msg) (salesModel, tea.Cmd) {
	if m.mode == salesCreate {
		return m.updateCreate(msg)
	}
	return m.updateList(msg)
}

func (m salesModel) updateList(msg tea.Msg) (salesModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.Focused() || m.dateFilter.Focused() {
		switch key.String() {
		case "esc", "enter":
			m.search.Blur()
			m.dateFilter.Blur()
			return m, nil
		case "tab":
			if m.search.Focused() {
				m.search.Blur()
				m.dateFilter.Focus()
			} else {
				m.dateFilter.Blur()
				m.search.Focus()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if m.search.Focused() {
			m.search, cmd = m.search.Update(msg)
		} else {
			m.dateFilter, cmd = m.dateFilter.Update(msg)
		}
		m.cursor = 0
		return m, cmd
	}

	switch key.String() {
	case "/":
		m.search.Focus()
		m.status = ""
	case "f":
		m.dateFilter.Focus()
		m.status = ""
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "n":
		m.openCreateForm()
	}
	return m, nil
}

func (m salesModel) updateCreate(msg tea.Msg) (salesModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.mode = salesList
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "tab":
		m.setFocus((m.focus + 1) % 3)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + 2) % 3)
		return m, nil
	}

	switch m.focus {
	case saleFocusCustomer:
		return m.updateCustomerFocus(msg, key)
	case saleFocusSearch:
		return m.updateSearchFocus(msg, key)
	default:
		return m.updateItemsFocus(key)
	}
}

func (m *salesModel) setFocus(slot int) {
	m.focus = slot
	m.customerIn.Blur()
	m.medSearch.Blur()
	switch slot {
	case saleFocusCustomer:
		m.customerIn.Focus()
	case saleFocusSearch:
		m.medSearch.Focus()
	}
}

func (m salesModel) updateCustomerFocus(msg tea.Msg, key tea.KeyMsg) (salesModel, tea.Cmd) {
	switch key.String() {
	case "ctrl+p":
		// cycle through existing customers, filling name and id
		customers := m.store.Customers()
		if len(customers) > 0 {
			m.custPick = (m.custPick + 1) % len(customers)
			picked := customers[m.custPick]
			m.customerIn.SetValue(picked.Name)
			m.builder.CustomerID = picked.ID
		}
		return m, nil
	case "ctrl+y":
		m.builder.Payment = nextPayment(m.builder.Payment)
		return m, nil
	case "enter":
		m.setFocus(saleFocusSearch)
		return m, nil
	}
	var cmd tea.Cmd
	m.customerIn, cmd = m.customerIn.Update(msg)
	return m, cmd
}

func (m salesModel) updateSearchFocus(msg tea.Msg, key tea.KeyMsg) (salesModel, tea.Cmd) {
	candidates := pos.Candidates(m.store.Medicines(), m.medSearch.Value())
	switch key.String() {
	case "ctrl+n", "down":
		if m.candidate < len(candidates)-1 {
			m.candidate++
		}
		return m, nil
	case "ctrl+p", "up":
		if m.candidate > 0 {
			m.candidate--
		}
		return m, nil
	case "enter":
		if m.candidate < len(candidates) {
			m.builder.AddItem(candidates[m.candidate])
			m.medSearch.SetValue("")
			m.candidate = 0
			m.formErr = ""
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.medSearch, cmd = m.medSearch.Update(msg)
	m.candidate = 0
	return m, cmd
}

func (m salesModel) updateItemsFocus(key tea.KeyMsg) (salesModel, tea.Cmd) {
	items := m.builder.Items()
	switch key.String() {
	case "up", "k":
		if m.itemCursor > 0 {
			m.itemCursor--
		}
	case "down", "j":
		if m.itemCursor < len(items)-1 {
			m.itemCursor++
		}
	case "+":
		if m.itemCursor < len(items) {
			item := items[m.itemCursor]
			m.builder.SetQuantity(item.MedicineID, item.Quantity+1)
		}
	case "-":
		if m.itemCursor < len(items) {
			item := items[m.itemCursor]
			m.builder.SetQuantity(item.MedicineID, item.Quantity-1)
			if m.itemCursor >= len(m.builder.Items()) && m.itemCursor > 0 {
				m.itemCursor--
			}
		}
	case "x", "delete":
		if m.itemCursor < len(items) {
			m.builder.RemoveItem(items[m.itemCursor].MedicineID)
			if m.itemCursor > 0 {
				m.itemCursor--
			}
		}
	case "y":
		m.builder.Payment = nextPayment(m.builder.Payment)
	case "enter":
		return m.submit()
	}
	return m, nil
}

func (m salesModel) submit() (salesModel, tea.Cmd) {
	m.builder.CustomerName = m.customerIn.Value()
	sale, err := m.builder.Build(time.Now())
	if err != nil {
		m.formErr = err.Error()
		return m, nil
	}
	recorded := m.store.AddSale(sale)
	m.mode = salesList
	m.cursor = 0
	m.status = fmt.Sprintf("Sale #%s recorded: %s %s", recorded.ID, m.cfg.App.CurrencySymbol, recorded.Total.StringFixed(2))
	return m, nil
}

func nextPayment(p models.PaymentMethod) models.PaymentMethod {
	for i, method := range models.PaymentMethods {
		if method == p {
			return models.PaymentMethods[(i+1)%len(models.PaymentMethods)]
		}
	}
	return models.PaymentCash
}

func (m salesModel) View() string {
	if m.mode == salesCreate {
		return m.renderCreate()
	}
	return m.renderList()
}

func (m salesModel) renderList() string {
	cur := m.cfg.App.CurrencySymbol
	visible := m.visible()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Sales Management") + "\n")
	b.WriteString(mutedStyle.Render("Track and manage all sales transactions") + "\n\n")

	totalCard := cardStyle.Render(mutedStyle.Render("Total Sales") + "\n" +
		moneyStyle.Render(cur+" "+pos.Total(visible).StringFixed(2)))
	b.WriteString(totalCard + "\n\n")
	b.WriteString(m.search.View() + "  " + m.dateFilter.View() + "\n\n")

	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("No sales found. Try adjusting your search criteria.") + "\n")
	}
	for i, sale := range visible {
		b.WriteString(m.renderSaleCard(sale, i == m.cursor) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + successStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("/ search · f date filter · n new sale · ↑/↓ select"))
	return b.String()
}

func (m salesModel) renderSaleCard(sale models.Sale, selected bool) string {
	cur := m.cfg.App.CurrencySymbol
	title := fmt.Sprintf("Sale #%s", sale.ID)
	if selected {
		title = selectedStyle.Render(" " + title + " ")
	} else {
		title = headerStyle.Render(title)
	}

	lines := []string{
		title + "  " + mutedStyle.Render(sale.Date.Format("2006-01-02")),
		sale.CustomerName,
	}
	for _, item := range sale.Items {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %s × %d = %s %s",
			item.MedicineName, item.Quantity, cur, item.Total.StringFixed(2))))
	}
	lines = append(lines, fmt.Sprintf("%s  %s · %d items",
		moneyStyle.Render(cur+" "+sale.Total.StringFixed(2)), sale.Payment, len(sale.Items)))
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m salesModel) renderCreate() string {
	cur := m.cfg.App.CurrencySymbol

	var b strings.Builder
	b.WriteString(headerStyle.Render("Create New Sale") + "\n\n")

	b.WriteString("  Customer Name *" + pickHint(m.focus == saleFocusCustomer) + "\n")
	b.WriteString("  " + m.customerIn.View() + "\n")
	b.WriteString("  Payment Method: " + selectedStyle.Render(" "+string(m.builder.Payment)+" ") + "\n\n")

	b.WriteString("  Add Medicines" + pickHint(m.focus == saleFocusSearch) + "\n")
	b.WriteString("  " + m.medSearch.View() + "\n")
	if m.medSearch.Value() != "" {
		candidates := pos.Candidates(m.store.Medicines(), m.medSearch.Value())
		if len(candidates) == 0 {
			b.WriteString("  " + mutedStyle.Render("No medicines in stock match") + "\n")
		}
		for i, med := range candidates {
			line := fmt.Sprintf("%s  %s %s · Stock: %d", med.Name, cur, med.SellingPrice.StringFixed(2), med.Quantity)
			if i == m.candidate {
				line = selectedStyle.Render(" " + line + " ")
			} else {
				line = "  " + line
			}
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n  Sale Items" + pickHint(m.focus == saleFocusItems) + "\n")
	items := m.builder.Items()
	if len(items) == 0 {
		b.WriteString("  " + mutedStyle.Render("No items added yet. Search and add medicines above.") + "\n")
	}
	for i, item := range items {
		line := fmt.Sprintf("%s  %s %s each × %d = %s %s",
			item.MedicineName, cur, item.Price.StringFixed(2), item.Quantity, cur, item.Total.StringFixed(2))
		if m.focus == saleFocusItems && i == m.itemCursor {
			line = selectedStyle.Render(" " + line + " ")
		} else {
			line = "  " + line
		}
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n  " + moneyStyle.Render(fmt.Sprintf("Total: %s %s", cur, m.builder.Total().StringFixed(2))) + "\n")

	if m.formErr != "" {
		b.WriteString("\n  " + errorStyle.Render(m.formErr) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab switch section · ctrl+p pick customer · y payment · +/- quantity · x remove · ctrl+s save · esc cancel"))
	return boxStyle.Render(b.String())
}

func pickHint(active bool) string {
	if active {
		return "  " + selectedStyle.Render("◀")
	}
	return ""
}
