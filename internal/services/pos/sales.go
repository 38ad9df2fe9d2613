package pos

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"medstore-system/internal/models"
)

// Search filters sales by a case-insensitive substring match against
// customer name or sale id, combined with exact calendar-date equality
// when a date filter is set (zero time means no date filter).
func Search(sales []models.Sale, term string, day time.Time) []models.Sale {
	term = strings.ToLower(term)
	out := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if term != "" &&
			!strings.Contains(strings.ToLower(s.CustomerName), term) &&
			!strings.Contains(strings.ToLower(s.ID), term) {
			continue
		}
		if !day.IsZero() && !s.Date.Equal(models.Day(day)) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Total sums the filtered sales for the header card.
func Total(sales []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return total
}
