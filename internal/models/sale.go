package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentUPI}

type Sale struct {
	ID           string
	CustomerID   string // empty for walk-in customers
	CustomerName string
	Items        []SaleItem
	Total        decimal.Decimal
	Date         time.Time // calendar date, truncated to day
	Payment      PaymentMethod
}

// SaleItem is a denormalized snapshot of the medicine's name and selling
// price at the time of sale, so the receipt stays accurate even if the
// medicine record later changes.
type SaleItem struct {
	MedicineID   string
	MedicineName string
	Quantity     int
	Price        decimal.Decimal
	Total        decimal.Decimal
}

// Day truncates a timestamp to its calendar date in local time.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DashboardStats is the derived summary shown on the dashboard page.
type DashboardStats struct {
	TotalMedicines int
	LowStockItems  int
	TodaySales     decimal.Decimal
	TotalCustomers int
	ExpiringSoon   int
}
