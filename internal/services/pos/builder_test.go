package pos

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"medstore-system/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var (
	paracetamol = models.Medicine{ID: "1", Name: "Paracetamol 500mg", SellingPrice: dec("3.00"), Quantity: 150}
	amoxicillin = models.Medicine{ID: "2", Name: "Amoxicillin 250mg", SellingPrice: dec("15.00"), Quantity: 85}
	outOfStock  = models.Medicine{ID: "3", Name: "Vitamin D3 1000IU", SellingPrice: dec("11.00"), Quantity: 0}
)

func TestAddItemDeduplicates(t *testing.T) {
	b := NewBuilder()
	b.AddItem(paracetamol)
	b.AddItem(paracetamol)

	items := b.Items()
	if len(items) != 1 {
		t.Fatalf("expected one line item after adding the same medicine twice, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if !items[0].Total.Equal(dec("6.00")) {
		t.Fatalf("expected line total 6.00, got %s", items[0].Total)
	}
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	med := paracetamol
	b := NewBuilder()
	b.AddItem(med)

	med.SellingPrice = dec("99.00")
	med.Name = "renamed"

	item := b.Items()[0]
	if !item.Price.Equal(dec("3.00")) || item.MedicineName != "Paracetamol 500mg" {
		t.Fatalf("line item must snapshot price and name at add time, got %s / %s", item.Price, item.MedicineName)
	}
}

func TestSetQuantity(t *testing.T) {
	b := NewBuilder()
	b.AddItem(paracetamol)

	b.SetQuantity("1", 10)
	if item := b.Items()[0]; item.Quantity != 10 || !item.Total.Equal(dec("30.00")) {
		t.Fatalf("expected qty 10 total 30.00, got %d / %s", item.Quantity, item.Total)
	}

	b.SetQuantity("1", 0)
	if !b.Empty() {
		t.Fatalf("setting quantity to 0 must remove the line")
	}

	b.AddItem(paracetamol)
	b.SetQuantity("1", -5)
	if !b.Empty() {
		t.Fatalf("negative quantity must remove the line")
	}
}

func TestRemoveItem(t *testing.T) {
	b := NewBuilder()
	b.AddItem(paracetamol)
	b.AddItem(amoxicillin)

	b.RemoveItem("1")
	items := b.Items()
	if len(items) != 1 || items[0].MedicineID != "2" {
		t.Fatalf("expected only the amoxicillin line to remain, got %v", items)
	}

	b.RemoveItem("missing")
	if len(b.Items()) != 1 {
		t.Fatalf("removing an unknown id must be a no-op")
	}
}

func TestRunningTotal(t *testing.T) {
	b := NewBuilder()
	b.AddItem(paracetamol)
	b.SetQuantity("1", 10)
	b.AddItem(amoxicillin)
	b.SetQuantity("2", 5)

	// 10 × 3.00 + 5 × 15.00 = 105.00, the fixed sample receipt
	if !b.Total().Equal(dec("105.00")) {
		t.Fatalf("expected total 105.00, got %s", b.Total())
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)

	b := NewBuilder()
	b.CustomerName = "Ahmed Ali"
	b.CustomerID = "1"
	b.Payment = models.PaymentCard
	b.AddItem(paracetamol)
	b.SetQuantity("1", 10)
	b.AddItem(amoxicillin)
	b.SetQuantity("2", 5)

	sale, err := b.Build(now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !sale.Total.Equal(dec("105.00")) {
		t.Fatalf("expected sale total 105.00, got %s", sale.Total)
	}
	sum := decimal.Zero
	for _, item := range sale.Items {
		if !item.Total.Equal(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))) {
			t.Fatalf("item %s total %s does not equal qty × price", item.MedicineName, item.Total)
		}
		sum = sum.Add(item.Total)
	}
	if !sale.Total.Equal(sum) {
		t.Fatalf("sale total %s does not equal sum of item totals %s", sale.Total, sum)
	}
	if !sale.Date.Equal(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected sale dated to the calendar day, got %s", sale.Date)
	}
	if sale.Payment != models.PaymentCard {
		t.Fatalf("expected card payment, got %s", sale.Payment)
	}

	// builder resets after a successful build
	if !b.Empty() || b.CustomerName != "" || b.Payment != models.PaymentCash {
		t.Fatalf("builder must reset after Build")
	}
}

func TestBuildRejectsEmptySale(t *testing.T) {
	b := NewBuilder()
	b.CustomerName = "Ahmed Ali"
	if _, err := b.Build(time.Now()); !errors.Is(err, ErrEmptySale) {
		t.Fatalf("expected ErrEmptySale, got %v", err)
	}
}

func TestBuildRejectsBlankCustomer(t *testing.T) {
	cases := []string{"", "   ", "\t"}
	for _, name := range cases {
		b := NewBuilder()
		b.CustomerName = name
		b.AddItem(paracetamol)
		if _, err := b.Build(time.Now()); !errors.Is(err, ErrCustomerRequired) {
			t.Fatalf("customer name %q: expected ErrCustomerRequired, got %v", name, err)
		}
	}
}

func TestCandidatesExcludeOutOfStock(t *testing.T) {
	meds := []models.Medicine{paracetamol, amoxicillin, outOfStock}

	got := Candidates(meds, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 in-stock candidates, got %d", len(got))
	}
	for _, m := range got {
		if m.Quantity <= 0 {
			t.Fatalf("out-of-stock medicine %s offered as candidate", m.Name)
		}
	}

	byName := Candidates(meds, "amox")
	if len(byName) != 1 || byName[0].ID != "2" {
		t.Fatalf("expected name search to return amoxicillin, got %v", byName)
	}
}

// Stock is only consulted to exclude empty shelves; an added quantity may
// climb past what is on hand.
func TestQuantityNotCappedByStock(t *testing.T) {
	low := models.Medicine{ID: "9", Name: "Cough Syrup", SellingPrice: dec("4.00"), Quantity: 2}
	b := NewBuilder()
	b.AddItem(low)
	b.SetQuantity("9", 50)
	if item := b.Items()[0]; item.Quantity != 50 {
		t.Fatalf("expected quantity 50 despite stock of 2, got %d", item.Quantity)
	}
}
