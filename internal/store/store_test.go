package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"medstore-system/internal/models"
)

func newTestStore() *Store {
	return New(nil)
}

func TestAddMedicineAssignsUniqueIDs(t *testing.T) {
	s := newTestStore()
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		med := s.AddMedicine(models.MedicineInput{Name: "Ibuprofen 200mg"})
		if med.ID == "" {
			t.Fatalf("expected a non-empty id")
		}
		if seen[med.ID] {
			t.Fatalf("duplicate id %s", med.ID)
		}
		seen[med.ID] = true
	}
	if got := len(s.Medicines()); got != 10 {
		t.Fatalf("expected 10 medicines, got %d", got)
	}
}

func TestDeleteMedicine(t *testing.T) {
	s := newTestStore()
	med := s.AddMedicine(models.MedicineInput{Name: "Aspirin 75mg"})

	s.DeleteMedicine(med.ID)
	if got := len(s.Medicines()); got != 0 {
		t.Fatalf("expected empty collection after delete, got %d", got)
	}

	// deleting a missing id is a silent no-op
	s.DeleteMedicine("does-not-exist")
	s.DeleteMedicine(med.ID)
	if got := len(s.Medicines()); got != 0 {
		t.Fatalf("expected delete of missing id to change nothing, got %d records", got)
	}
}

func TestAddCustomerStartsAtZeroPurchases(t *testing.T) {
	s := newTestStore()
	cust := s.AddCustomer(models.CustomerInput{Name: "Ali Raza", Phone: "+92-301-0000000", Address: "Karachi"})
	if !cust.TotalPurchases.Equal(decimal.Zero) {
		t.Fatalf("expected zero total purchases, got %s", cust.TotalPurchases)
	}
}

func TestAddSupplierStartsWithNoMedicines(t *testing.T) {
	s := newTestStore()
	sup := s.AddSupplier(models.SupplierInput{Name: "PharmaLink", ContactPerson: "Bilal", Phone: "x", Email: "a@b.pk", Address: "Lahore"})
	if len(sup.Medicines) != 0 {
		t.Fatalf("expected empty medicine reference list, got %v", sup.Medicines)
	}
}

func TestAddSalePrependsMostRecentFirst(t *testing.T) {
	s := newTestStore()
	first := s.AddSale(models.Sale{CustomerName: "First"})
	second := s.AddSale(models.Sale{CustomerName: "Second"})

	sales := s.Sales()
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
	if sales[0].ID != second.ID || sales[1].ID != first.ID {
		t.Fatalf("expected most-recent-first ordering, got %s then %s", sales[0].CustomerName, sales[1].CustomerName)
	}
}

// Recording a sale must leave both the medicine quantities and the
// customer purchase totals untouched. This pins the preserved behavior so
// any future stock-decrement change is made deliberately.
func TestAddSaleLeavesOtherCollectionsUntouched(t *testing.T) {
	s := newTestStore()
	s.Seed()

	medsBefore := s.Medicines()
	custBefore := s.Customers()

	s.AddSale(models.Sale{
		CustomerID:   "1",
		CustomerName: "Ahmed Ali",
		Items: []models.SaleItem{
			{MedicineID: "1", MedicineName: "Paracetamol 500mg", Quantity: 3, Price: decimal.RequireFromString("3.00"), Total: decimal.RequireFromString("9.00")},
		},
		Total:   decimal.RequireFromString("9.00"),
		Date:    models.Day(time.Now()),
		Payment: models.PaymentCash,
	})

	for i, med := range s.Medicines() {
		if med.Quantity != medsBefore[i].Quantity {
			t.Fatalf("medicine %s quantity changed from %d to %d", med.Name, medsBefore[i].Quantity, med.Quantity)
		}
	}
	for i, cust := range s.Customers() {
		if !cust.TotalPurchases.Equal(custBefore[i].TotalPurchases) {
			t.Fatalf("customer %s total purchases changed from %s to %s",
				cust.Name, custBefore[i].TotalPurchases, cust.TotalPurchases)
		}
	}
}

func TestSeedRecords(t *testing.T) {
	s := newTestStore()
	s.Seed()

	meds := s.Medicines()
	if len(meds) != 4 {
		t.Fatalf("expected 4 seeded medicines, got %d", len(meds))
	}
	if len(s.Customers()) != 3 {
		t.Fatalf("expected 3 seeded customers, got %d", len(s.Customers()))
	}
	if len(s.Suppliers()) != 2 {
		t.Fatalf("expected 2 seeded suppliers, got %d", len(s.Suppliers()))
	}

	sales := s.Sales()
	if len(sales) != 2 {
		t.Fatalf("expected 2 seeded sales, got %d", len(sales))
	}
	if !sales[0].Total.Equal(decimal.RequireFromString("105.00")) {
		t.Fatalf("expected first seeded sale total 105.00, got %s", sales[0].Total)
	}

	// Vitamin D3 has 12 on hand against a minimum of 25; Paracetamol has 150/20.
	byName := make(map[string]models.Medicine)
	for _, m := range meds {
		byName[m.Name] = m
	}
	if !byName["Vitamin D3 1000IU"].IsLowStock() {
		t.Fatalf("Vitamin D3 (12/25) should be flagged low stock")
	}
	if byName["Paracetamol 500mg"].IsLowStock() {
		t.Fatalf("Paracetamol (150/20) should not be flagged low stock")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := newTestStore()
	s.Seed()

	snapshot := s.Medicines()
	snapshot[0].Quantity = -999

	if s.Medicines()[0].Quantity == -999 {
		t.Fatalf("mutating a snapshot must not leak into the store")
	}
}
