// Package pos holds the sale-creation workflow: a transient builder that
// accumulates line items against medicine snapshots and produces a
// completed Sale for the entity store.
package pos

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"medstore-system/internal/models"
)

var (
	ErrEmptySale        = errors.New("sale has no items")
	ErrCustomerRequired = errors.New("customer name is required")
)

// Builder is the working state of an in-progress sale. It consumes
// read-only medicine snapshots and never mutates the medicine or customer
// collections; completing a sale does not decrement stock.
type Builder struct {
	CustomerID   string
	CustomerName string
	Payment      models.PaymentMethod
	items        []models.SaleItem
}

func NewBuilder() *Builder {
	return &Builder{Payment: models.PaymentCash}
}

// Candidates filters medicines for the builder's search box. Out-of-stock
// medicines are excluded so they cannot be added; stock is otherwise not
// consulted, so an added quantity may exceed what is on hand.
func Candidates(meds []models.Medicine, term string) []models.Medicine {
	term = strings.ToLower(term)
	out := make([]models.Medicine, 0, len(meds))
	for _, m := range meds {
		if m.Quantity <= 0 {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(m.Name), term) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// AddItem puts the medicine on the sale at quantity 1, snapshotting its
// current name and selling price. Adding a medicine already on the sale
// increments its quantity instead of creating a second line.
func (b *Builder) AddItem(med models.Medicine) {
	for i, item := range b.items {
		if item.MedicineID == med.ID {
			b.items[i].Quantity++
			b.items[i].Total = lineTotal(b.items[i].Price, b.items[i].Quantity)
			return
		}
	}
	b.items = append(b.items, models.SaleItem{
		MedicineID:   med.ID,
		MedicineName: med.Name,
		Quantity:     1,
		Price:        med.SellingPrice,
		Total:        med.SellingPrice,
	})
}

// SetQuantity replaces a line's quantity. Zero or negative removes the
// line, so the item list never holds a non-positive quantity.
func (b *Builder) SetQuantity(medicineID string, quantity int) {
	if quantity <= 0 {
		b.RemoveItem(medicineID)
		return
	}
	for i, item := range b.items {
		if item.MedicineID == medicineID {
			b.items[i].Quantity = quantity
			b.items[i].Total = lineTotal(b.items[i].Price, quantity)
			return
		}
	}
}

func (b *Builder) RemoveItem(medicineID string) {
	for i, item := range b.items {
		if item.MedicineID == medicineID {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

func (b *Builder) Items() []models.SaleItem {
	out := make([]models.SaleItem, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Builder) Empty() bool {
	return len(b.items) == 0
}

// Total is the running sum of line totals, recomputed on demand.
func (b *Builder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.items {
		total = total.Add(item.Total)
	}
	return total
}

// Build validates and produces the completed sale, dated today, then
// resets the builder back to its empty state. The store assigns the id.
func (b *Builder) Build(now time.Time) (models.Sale, error) {
	if len(b.items) == 0 {
		return models.Sale{}, ErrEmptySale
	}
	name := strings.TrimSpace(b.CustomerName)
	if name == "" {
		return models.Sale{}, ErrCustomerRequired
	}

	sale := models.Sale{
		CustomerID:   b.CustomerID,
		CustomerName: name,
		Items:        b.items,
		Total:        b.Total(),
		Date:         models.Day(now),
		Payment:      b.Payment,
	}
	*b = *NewBuilder()
	return sale, nil
}

func lineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
