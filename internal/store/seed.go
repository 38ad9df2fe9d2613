package store

import (
	"time"

	"github.com/shopspring/decimal"

	"medstore-system/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed loads the fixed sample records the dashboard starts with.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.medicines = []models.Medicine{
		{
			ID:            "1",
			Name:          "Paracetamol 500mg",
			GenericName:   "Acetaminophen",
			Manufacturer:  "GlaxoSmithKline",
			BatchNumber:   "PCM001",
			ExpiryDate:    date(2025, time.December, 31),
			Quantity:      150,
			MinStockLevel: 20,
			PurchasePrice: dec("2.50"),
			SellingPrice:  dec("3.00"),
			Category:      "Pain Relief",
			Description:   "Pain and fever relief medication",
		},
		{
			ID:            "2",
			Name:          "Amoxicillin 250mg",
			GenericName:   "Amoxicillin",
			Manufacturer:  "Cipla",
			BatchNumber:   "AMX002",
			ExpiryDate:    date(2025, time.August, 15),
			Quantity:      85,
			MinStockLevel: 15,
			PurchasePrice: dec("12.00"),
			SellingPrice:  dec("15.00"),
			Category:      "Antibiotic",
			Description:   "Broad-spectrum antibiotic",
		},
		{
			ID:            "3",
			Name:          "Vitamin D3 1000IU",
			GenericName:   "Cholecalciferol",
			Manufacturer:  "Sun Pharma",
			BatchNumber:   "VD3003",
			ExpiryDate:    date(2026, time.March, 20),
			Quantity:      12,
			MinStockLevel: 25,
			PurchasePrice: dec("8.50"),
			SellingPrice:  dec("11.00"),
			Category:      "Vitamin",
			Description:   "Vitamin D supplement",
		},
		{
			ID:            "4",
			Name:          "Metformin 500mg",
			GenericName:   "Metformin HCl",
			Manufacturer:  "Dr. Reddy's",
			BatchNumber:   "MTF004",
			ExpiryDate:    date(2025, time.October, 10),
			Quantity:      200,
			MinStockLevel: 30,
			PurchasePrice: dec("4.25"),
			SellingPrice:  dec("5.50"),
			Category:      "Diabetes",
			Description:   "Type 2 diabetes medication",
		},
	}

	s.customers = []models.Customer{
		{
			ID:             "1",
			Name:           "Ahmed Ali",
			Phone:          "+92-300-1234567",
			Email:          "ahmed.ali@email.com",
			Address:        "Block A, Gulshan-e-Iqbal, Karachi",
			DateOfBirth:    datePtr(1985, time.May, 15),
			TotalPurchases: dec("1250.00"),
		},
		{
			ID:             "2",
			Name:           "Fatima Khan",
			Phone:          "+92-321-9876543",
			Address:        "DHA Phase 2, Lahore",
			TotalPurchases: dec("890.50"),
		},
		{
			ID:             "3",
			Name:           "Muhammad Hassan",
			Phone:          "+92-333-5555555",
			Email:          "hassan@email.com",
			Address:        "F-7 Markaz, Islamabad",
			DateOfBirth:    datePtr(1992, time.December, 3),
			TotalPurchases: dec("2100.75"),
		},
	}

	s.suppliers = []models.Supplier{
		{
			ID:            "1",
			Name:          "MediCorp Distributors",
			ContactPerson: "Tariq Ahmed",
			Phone:         "+92-21-34567890",
			Email:         "info@medicorp.pk",
			Address:       "Industrial Area, Karachi",
			Medicines:     []string{"1", "2"},
		},
		{
			ID:            "2",
			Name:          "HealthPlus Supplies",
			ContactPerson: "Sana Malik",
			Phone:         "+92-42-35678901",
			Email:         "contact@healthplus.pk",
			Address:       "Main Boulevard, Lahore",
			Medicines:     []string{"3", "4"},
		},
	}

	s.sales = []models.Sale{
		{
			ID:           "1",
			CustomerID:   "1",
			CustomerName: "Ahmed Ali",
			Items: []models.SaleItem{
				{MedicineID: "1", MedicineName: "Paracetamol 500mg", Quantity: 10, Price: dec("3.00"), Total: dec("30.00")},
				{MedicineID: "2", MedicineName: "Amoxicillin 250mg", Quantity: 5, Price: dec("15.00"), Total: dec("75.00")},
			},
			Total:   dec("105.00"),
			Date:    date(2025, time.January, 13),
			Payment: models.PaymentCash,
		},
		{
			ID:           "2",
			CustomerName: "Walk-in Customer",
			Items: []models.SaleItem{
				{MedicineID: "3", MedicineName: "Vitamin D3 1000IU", Quantity: 2, Price: dec("11.00"), Total: dec("22.00")},
			},
			Total:   dec("22.00"),
			Date:    date(2025, time.January, 13),
			Payment: models.PaymentCard,
		},
	}
}
