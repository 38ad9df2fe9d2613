// Package store holds every Medicine, Customer, Supplier and Sale record for
// the session. All state lives in process memory and is discarded on exit;
// the store is created in main and handed to each view, never reached
// through a package-level singleton.
package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"medstore-system/internal/models"
)

type Store struct {
	mu        sync.RWMutex
	medicines []models.Medicine
	customers []models.Customer
	suppliers []models.Supplier
	sales     []models.Sale
	lastID    int64
	log       *logrus.Logger
}

func New(log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
	}
	return &Store{log: log}
}

// nextID returns a fresh millisecond-timestamp id. Two records created in
// the same millisecond still get distinct, increasing ids.
func (s *Store) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// AddMedicine assigns a fresh id and appends the record. No validation
// happens here; the form is the only gatekeeper.
func (s *Store) AddMedicine(in models.MedicineInput) models.Medicine {
	s.mu.Lock()
	defer s.mu.Unlock()

	med := models.Medicine{
		ID:            s.nextID(),
		Name:          in.Name,
		GenericName:   in.GenericName,
		Manufacturer:  in.Manufacturer,
		BatchNumber:   in.BatchNumber,
		ExpiryDate:    in.ExpiryDate,
		Quantity:      in.Quantity,
		MinStockLevel: in.MinStockLevel,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Category:      in.Category,
		Description:   in.Description,
	}
	s.medicines = append(s.medicines, med)

	s.log.WithFields(logrus.Fields{
		"id":   med.ID,
		"name": med.Name,
	}).Info("medicine added")
	return med
}

// DeleteMedicine removes the matching record. A missing id is a silent
// no-op.
func (s *Store) DeleteMedicine(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, med := range s.medicines {
		if med.ID == id {
			s.medicines = append(s.medicines[:i], s.medicines[i+1:]...)
			s.log.WithField("id", id).Info("medicine deleted")
			return
		}
	}
}

// AddCustomer assigns a fresh id and starts the purchase total at zero.
func (s *Store) AddCustomer(in models.CustomerInput) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	cust := models.Customer{
		ID:             s.nextID(),
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		DateOfBirth:    in.DateOfBirth,
		TotalPurchases: decimal.Zero,
	}
	s.customers = append(s.customers, cust)

	s.log.WithFields(logrus.Fields{
		"id":   cust.ID,
		"name": cust.Name,
	}).Info("customer added")
	return cust
}

// AddSupplier assigns a fresh id and starts with no medicine references.
func (s *Store) AddSupplier(in models.SupplierInput) models.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	sup := models.Supplier{
		ID:            s.nextID(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		Medicines:     []string{},
	}
	s.suppliers = append(s.suppliers, sup)

	s.log.WithFields(logrus.Fields{
		"id":   sup.ID,
		"name": sup.Name,
	}).Info("supplier added")
	return sup
}

// AddSale assigns a fresh id and prepends, keeping the collection in
// most-recent-first order. It deliberately does not touch medicine
// quantities or customer purchase totals: sale creation leaves both
// collections untouched, matching the observed behavior this system
// preserves.
func (s *Store) AddSale(sale models.Sale) models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale.ID = s.nextID()
	s.sales = append([]models.Sale{sale}, s.sales...)

	s.log.WithFields(logrus.Fields{
		"id":       sale.ID,
		"customer": sale.CustomerName,
		"items":    len(sale.Items),
		"total":    sale.Total.String(),
		"payment":  string(sale.Payment),
	}).Info("sale recorded")
	return sale
}

// Medicines returns a copy of the medicine collection.
func (s *Store) Medicines() []models.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Medicine, len(s.medicines))
	copy(out, s.medicines)
	return out
}

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

func (s *Store) Suppliers() []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

// Sales returns a copy of the sale collection, most recent first.
func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}
