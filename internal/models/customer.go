package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID             string
	Name           string
	Phone          string
	Email          string
	Address        string
	DateOfBirth    *time.Time
	TotalPurchases decimal.Decimal
}

type CustomerInput struct {
	Name        string `validate:"required"`
	Phone       string `validate:"required"`
	Email       string `validate:"omitempty,email"`
	Address     string `validate:"required"`
	DateOfBirth *time.Time
}

type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	// Medicines holds medicine ids supplied by this vendor. References are
	// not checked against the medicine collection.
	Medicines []string
}

type SupplierInput struct {
	Name          string `validate:"required"`
	ContactPerson string `validate:"required"`
	Phone         string `validate:"required"`
	Email         string `validate:"required,email"`
	Address       string `validate:"required"`
}
