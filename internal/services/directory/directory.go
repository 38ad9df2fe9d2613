// Package directory derives the customer and supplier list views.
package directory

import (
	"strings"

	"medstore-system/internal/models"
)

// SearchCustomers matches name or email case-insensitively; the phone
// number is matched as a raw substring so "+92-300" style queries work.
func SearchCustomers(customers []models.Customer, term string) []models.Customer {
	folded := strings.ToLower(term)
	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), folded) &&
			!strings.Contains(c.Phone, term) &&
			!(c.Email != "" && strings.Contains(strings.ToLower(c.Email), folded)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SearchSuppliers matches name, contact person or email, case-insensitively.
func SearchSuppliers(suppliers []models.Supplier, term string) []models.Supplier {
	folded := strings.ToLower(term)
	out := make([]models.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if term != "" &&
			!strings.Contains(strings.ToLower(s.Name), folded) &&
			!strings.Contains(strings.ToLower(s.ContactPerson), folded) &&
			!strings.Contains(strings.ToLower(s.Email), folded) {
			continue
		}
		out = append(out, s)
	}
	return out
}
