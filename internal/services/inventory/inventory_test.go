package inventory

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"medstore-system/internal/models"
)

func sampleMedicines() []models.Medicine {
	return []models.Medicine{
		{ID: "1", Name: "Paracetamol 500mg", GenericName: "Acetaminophen", Manufacturer: "GlaxoSmithKline", Category: "Pain Relief", Quantity: 150, MinStockLevel: 20, ExpiryDate: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Amoxicillin 250mg", GenericName: "Amoxicillin", Manufacturer: "Cipla", Category: "Antibiotic", Quantity: 85, MinStockLevel: 15, ExpiryDate: time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "Vitamin D3 1000IU", GenericName: "Cholecalciferol", Manufacturer: "Sun Pharma", Category: "Vitamin", Quantity: 12, MinStockLevel: 25, ExpiryDate: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)},
	}
}

func ids(meds []models.Medicine) []string {
	out := make([]string, len(meds))
	for i, m := range meds {
		out[i] = m.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	meds := sampleMedicines()
	cases := []struct {
		name     string
		term     string
		category string
		expected []string
	}{
		{"empty term matches all", "", CategoryAll, []string{"1", "2", "3"}},
		{"name substring", "paracet", CategoryAll, []string{"1"}},
		{"case insensitive", "PARACET", CategoryAll, []string{"1"}},
		{"generic name", "chole", CategoryAll, []string{"3"}},
		{"manufacturer", "cipla", CategoryAll, []string{"2"}},
		{"category filter", "", "Vitamin", []string{"3"}},
		{"term and category combined", "amox", "Antibiotic", []string{"2"}},
		{"term and category mismatch", "amox", "Vitamin", []string{}},
		{"empty category behaves like all", "", "", []string{"1", "2", "3"}},
		{"no match", "zzz", CategoryAll, []string{}},
	}
	for _, tc := range cases {
		got := ids(Search(meds, tc.term, tc.category))
		if !reflect.DeepEqual(got, tc.expected) {
			t.Fatalf("%s: Search(%q, %q) = %v, expected %v", tc.name, tc.term, tc.category, got, tc.expected)
		}
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	meds := sampleMedicines()
	once := Search(meds, "a", CategoryAll)
	twice := Search(once, "a", CategoryAll)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("filtering an already-filtered result changed it: %v vs %v", ids(once), ids(twice))
	}
}

func TestCategories(t *testing.T) {
	got := Categories(sampleMedicines())
	expected := []string{CategoryAll, "Antibiotic", "Pain Relief", "Vitamin"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("Categories = %v, expected %v", got, expected)
	}
}

func TestLowStock(t *testing.T) {
	got := ids(LowStock(sampleMedicines()))
	if !reflect.DeepEqual(got, []string{"3"}) {
		t.Fatalf("LowStock = %v, expected [3]", got)
	}
}

func TestExpiringSoon(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	got := ids(ExpiringSoon(sampleMedicines(), now, 3))
	// only Amoxicillin (2025-08-15) falls within Jun 15 + 3 months
	if !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("ExpiringSoon = %v, expected [2]", got)
	}
}

func TestStats(t *testing.T) {
	meds := sampleMedicines()
	customers := []models.Customer{{ID: "1"}, {ID: "2"}}
	sales := []models.Sale{
		{Total: decimal.RequireFromString("105.00")},
		{Total: decimal.RequireFromString("22.00")},
	}
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	stats := Stats(meds, customers, sales, now, 3)
	if stats.TotalMedicines != 3 {
		t.Fatalf("TotalMedicines = %d, expected 3", stats.TotalMedicines)
	}
	if stats.LowStockItems != 1 {
		t.Fatalf("LowStockItems = %d, expected 1", stats.LowStockItems)
	}
	if stats.TotalCustomers != 2 {
		t.Fatalf("TotalCustomers = %d, expected 2", stats.TotalCustomers)
	}
	if stats.ExpiringSoon != 1 {
		t.Fatalf("ExpiringSoon = %d, expected 1", stats.ExpiringSoon)
	}
	if !stats.TodaySales.Equal(decimal.RequireFromString("127.00")) {
		t.Fatalf("TodaySales = %s, expected 127.00", stats.TodaySales)
	}
}
