// Package inventory derives the medicine views: substring search, category
// filter, low-stock and expiring-soon subsets, and the dashboard summary.
// Everything is a pure function over a snapshot, recomputed on every
// render; at this data scale no index or cache is worth carrying.
package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"medstore-system/internal/models"
)

const CategoryAll = "all"

// Search filters medicines by a case-insensitive substring match against
// name, generic name and manufacturer, combined with category equality.
// CategoryAll (or an empty category) matches everything.
func Search(meds []models.Medicine, term, category string) []models.Medicine {
	term = strings.ToLower(term)
	out := make([]models.Medicine, 0, len(meds))
	for _, m := range meds {
		if !matchesTerm(m, term) {
			continue
		}
		if category != "" && category != CategoryAll && m.Category != category {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesTerm(m models.Medicine, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), term) ||
		strings.Contains(strings.ToLower(m.GenericName), term) ||
		strings.Contains(strings.ToLower(m.Manufacturer), term)
}

// Categories returns the distinct categories present in the collection,
// sorted, with the "all" pseudo-category first.
func Categories(meds []models.Medicine) []string {
	seen := make(map[string]struct{}, len(meds))
	var cats []string
	for _, m := range meds {
		if _, ok := seen[m.Category]; ok {
			continue
		}
		seen[m.Category] = struct{}{}
		cats = append(cats, m.Category)
	}
	sort.Strings(cats)
	return append([]string{CategoryAll}, cats...)
}

// LowStock returns the medicines at or below their minimum stock level.
func LowStock(meds []models.Medicine) []models.Medicine {
	out := make([]models.Medicine, 0, len(meds))
	for _, m := range meds {
		if m.IsLowStock() {
			out = append(out, m)
		}
	}
	return out
}

// ExpiringSoon returns the medicines expiring within the window, in
// calendar months from now.
func ExpiringSoon(meds []models.Medicine, now time.Time, months int) []models.Medicine {
	out := make([]models.Medicine, 0, len(meds))
	for _, m := range meds {
		if m.IsExpiringSoon(now, months) {
			out = append(out, m)
		}
	}
	return out
}

// Stats computes the dashboard summary. TodaySales sums every recorded
// sale, matching the original dashboard's headline figure.
func Stats(meds []models.Medicine, customers []models.Customer, sales []models.Sale, now time.Time, expiryMonths int) models.DashboardStats {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return models.DashboardStats{
		TotalMedicines: len(meds),
		LowStockItems:  len(LowStock(meds)),
		TodaySales:     total,
		TotalCustomers: len(customers),
		ExpiringSoon:   len(ExpiringSoon(meds, now, expiryMonths)),
	}
}
