package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Medicine struct {
	ID            string
	Name          string
	GenericName   string
	Manufacturer  string
	BatchNumber   string
	ExpiryDate    time.Time
	Quantity      int
	MinStockLevel int
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Category      string
	Description   string
}

// MedicineInput is what the add-medicine form submits. Numeric fields are
// already coerced by the form (non-numeric input becomes zero, never an
// error), so validation only covers the required text fields.
type MedicineInput struct {
	Name          string `validate:"required"`
	GenericName   string `validate:"required"`
	Manufacturer  string `validate:"required"`
	BatchNumber   string `validate:"required"`
	ExpiryDate    time.Time
	Quantity      int
	MinStockLevel int
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Category      string `validate:"required"`
	Description   string
}

// IsLowStock reports whether the quantity on hand is at or below the
// configured minimum stock level. The boundary counts as low.
func (m Medicine) IsLowStock() bool {
	return m.Quantity <= m.MinStockLevel
}

// IsExpiringSoon reports whether the medicine expires within the given
// number of calendar months from now. Month arithmetic follows
// time.AddDate normalization: Jan 31 + 3 months lands on May 1.
func (m Medicine) IsExpiringSoon(now time.Time, months int) bool {
	return !m.ExpiryDate.After(now.AddDate(0, months, 0))
}

// Categories used by the add-medicine form when the inventory offers no
// better suggestion.
var DefaultCategories = []string{
	"Pain Relief",
	"Antibiotic",
	"Vitamin",
	"Diabetes",
	"Heart Disease",
	"Blood Pressure",
	"Other",
}
