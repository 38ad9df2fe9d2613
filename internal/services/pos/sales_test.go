package pos

import (
	"testing"
	"time"

	"medstore-system/internal/models"
)

func sampleSales() []models.Sale {
	return []models.Sale{
		{ID: "1755", CustomerName: "Ahmed Ali", Total: dec("105.00"), Date: time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local)},
		{ID: "1756", CustomerName: "Walk-in Customer", Total: dec("22.00"), Date: time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local)},
		{ID: "2001", CustomerName: "Fatima Khan", Total: dec("40.00"), Date: time.Date(2025, time.February, 2, 0, 0, 0, 0, time.Local)},
	}
}

func TestSearchSales(t *testing.T) {
	sales := sampleSales()
	cases := []struct {
		name     string
		term     string
		day      time.Time
		expected []string
	}{
		{"no filters", "", time.Time{}, []string{"1755", "1756", "2001"}},
		{"customer name", "fatima", time.Time{}, []string{"2001"}},
		{"customer name case folded", "WALK", time.Time{}, []string{"1756"}},
		{"sale id substring", "175", time.Time{}, []string{"1755", "1756"}},
		{"date filter", "", time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local), []string{"1755", "1756"}},
		{"date filter ignores time of day", "", time.Date(2025, time.February, 2, 18, 45, 0, 0, time.Local), []string{"2001"}},
		{"term and date combined", "ahmed", time.Date(2025, time.January, 13, 0, 0, 0, 0, time.Local), []string{"1755"}},
		{"no match", "zzz", time.Time{}, []string{}},
	}
	for _, tc := range cases {
		got := Search(sales, tc.term, tc.day)
		gotIDs := make([]string, len(got))
		for i, s := range got {
			gotIDs[i] = s.ID
		}
		if len(gotIDs) != len(tc.expected) {
			t.Fatalf("%s: Search(%q) returned %v, expected %v", tc.name, tc.term, gotIDs, tc.expected)
		}
		for i := range gotIDs {
			if gotIDs[i] != tc.expected[i] {
				t.Fatalf("%s: Search(%q) returned %v, expected %v", tc.name, tc.term, gotIDs, tc.expected)
			}
		}
	}
}

func TestSalesTotal(t *testing.T) {
	if got := Total(sampleSales()); !got.Equal(dec("167.00")) {
		t.Fatalf("Total = %s, expected 167.00", got)
	}
	if got := Total(nil); !got.IsZero() {
		t.Fatalf("Total of no sales = %s, expected 0", got)
	}
}
