package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pharmadesk/m/domain"
)

// Persister saves and restores the store snapshot in a durable slot.
// Implementations live in internal/persist.
type Persister interface {
	Load() (*domain.Snapshot, error)
	Save(domain.Snapshot) error
}

// Store is the single source of truth for the four entity collections. It
// assigns every entity identifier and owns cross-entity consistency: a sale
// and its stock decrements land in one state replacement.
//
// Every mutation swaps the affected collection for a fresh slice, so a
// caller holding a previously returned slice can detect change without deep
// equality. Returned slices must be treated as read-only.
type Store struct {
	mu            sync.RWMutex
	medicines     []domain.Medicine
	patients      []domain.Patient
	prescriptions []domain.Prescription
	sales         []domain.Sale
	persister     Persister
}

// New constructs an empty in-memory store that resets every launch.
func New() *Store {
	return &Store{}
}

// Open restores the snapshot persisted under p, if any, and keeps writing
// the store back to p after every mutation.
func Open(p Persister) (*Store, error) {
	snap, err := p.Load()
	if err != nil {
		return nil, err
	}
	s := &Store{persister: p}
	if snap != nil {
		s.medicines = snap.Medicines
		s.patients = snap.Patients
		s.prescriptions = snap.Prescriptions
		s.sales = snap.Sales
	}
	return s, nil
}

// persistLocked serializes the current state into the durable slot. Write
// failures are logged and never surface to the caller. Callers must hold mu.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	snap := domain.Snapshot{
		Medicines:     s.medicines,
		Patients:      s.patients,
		Prescriptions: s.prescriptions,
		Sales:         s.sales,
	}
	if err := s.persister.Save(snap); err != nil {
		log.Printf("unable to persist store snapshot: %v", err)
	}
}

// Readers

func (s *Store) Medicines() []domain.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.medicines
}

func (s *Store) Patients() []domain.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patients
}

func (s *Store) Prescriptions() []domain.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prescriptions
}

func (s *Store) Sales() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sales
}

// Snapshot returns the current state of all four collections in one step.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Snapshot{
		Medicines:     s.medicines,
		Patients:      s.patients,
		Prescriptions: s.prescriptions,
		Sales:         s.sales,
	}
}

func (s *Store) FindMedicine(id string) (domain.Medicine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.medicines {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Medicine{}, false
}

func (s *Store) FindPatient(id string) (domain.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Patient{}, false
}

func (s *Store) FindPrescription(id string) (domain.Prescription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.prescriptions {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Prescription{}, false
}

func (s *Store) FindSale(id string) (domain.Sale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sale := range s.sales {
		if sale.ID == id {
			return sale, true
		}
	}
	return domain.Sale{}, false
}

// Medicine CRUD

// AddMedicine stores the medicine under a freshly assigned identifier and
// returns the stored copy.
func (s *Store) AddMedicine(m domain.Medicine) domain.Medicine {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.NewString()
	s.medicines = append(append([]domain.Medicine(nil), s.medicines...), m)
	s.persistLocked()
	return m
}

// UpdateMedicine merges the patch into the matching medicine. Unknown
// identifiers are a silent no-op.
func (s *Store) UpdateMedicine(id string, patch domain.MedicinePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Medicine, len(s.medicines))
	for i, m := range s.medicines {
		if m.ID == id {
			patch.Apply(&m)
		}
		next[i] = m
	}
	s.medicines = next
	s.persistLocked()
}

// DeleteMedicine removes the medicine by identifier. Unknown identifiers
// are a silent no-op; references from prescriptions and sales are left
// dangling on purpose.
func (s *Store) DeleteMedicine(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Medicine, 0, len(s.medicines))
	for _, m := range s.medicines {
		if m.ID != id {
			next = append(next, m)
		}
	}
	s.medicines = next
	s.persistLocked()
}

// UpdateMedicineStock adds delta (either sign) to the medicine's stock
// count. The result is not clamped; negative stock is a reachable state the
// caller must tolerate.
func (s *Store) UpdateMedicineStock(id string, delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Medicine, len(s.medicines))
	for i, m := range s.medicines {
		if m.ID == id {
			m.Stock += delta
		}
		next[i] = m
	}
	s.medicines = next
	s.persistLocked()
}

// Patient CRUD

func (s *Store) AddPatient(p domain.Patient) domain.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	s.patients = append(append([]domain.Patient(nil), s.patients...), p)
	s.persistLocked()
	return p
}

func (s *Store) UpdatePatient(id string, patch domain.PatientPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Patient, len(s.patients))
	for i, p := range s.patients {
		if p.ID == id {
			patch.Apply(&p)
		}
		next[i] = p
	}
	s.patients = next
	s.persistLocked()
}

func (s *Store) DeletePatient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.patients = next
	s.persistLocked()
}

// Prescription CRUD

// AddPrescription stores the prescription. Referenced patient and medicine
// identifiers are not validated; readers treat dangling references as
// unknown.
func (s *Store) AddPrescription(p domain.Prescription) domain.Prescription {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	s.prescriptions = append(append([]domain.Prescription(nil), s.prescriptions...), p)
	s.persistLocked()
	return p
}

func (s *Store) UpdatePrescription(id string, patch domain.PrescriptionPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Prescription, len(s.prescriptions))
	for i, p := range s.prescriptions {
		if p.ID == id {
			patch.Apply(&p)
		}
		next[i] = p
	}
	s.prescriptions = next
	s.persistLocked()
}

func (s *Store) DeletePrescription(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Prescription, 0, len(s.prescriptions))
	for _, p := range s.prescriptions {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.prescriptions = next
	s.persistLocked()
}

// Sales

// AddSale appends a completed sale and decrements the stock of every
// referenced medicine in the same state replacement; no intermediate state
// is observable where the sale exists but stock is stale. Items whose
// medicine is present in inventory get that medicine's current price
// snapshotted onto them; items referencing unknown medicines keep the
// supplied price and have no stock effect. The total is computed once here
// and never recomputed.
func (s *Store) AddSale(items []domain.SaleItem, method domain.PaymentMethod) domain.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int, len(s.medicines))
	for i, m := range s.medicines {
		index[m.ID] = i
	}

	medicines := append([]domain.Medicine(nil), s.medicines...)
	lines := make([]domain.SaleItem, len(items))
	total := decimal.Zero
	for i, item := range items {
		if at, ok := index[item.MedicineID]; ok {
			item.Price = medicines[at].Price
			medicines[at].Stock -= item.Quantity
		}
		lines[i] = item
		total = total.Add(item.Subtotal())
	}

	sale := domain.Sale{
		ID:            uuid.NewString(),
		Date:          time.Now().UTC(),
		Items:         lines,
		Total:         total,
		PaymentMethod: method,
		Status:        domain.SaleCompleted,
	}
	s.sales = append(append([]domain.Sale(nil), s.sales...), sale)
	s.medicines = medicines
	s.persistLocked()
	return sale
}

func (s *Store) UpdateSale(id string, patch domain.SalePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Sale, len(s.sales))
	for i, sale := range s.sales {
		if sale.ID == id {
			patch.Apply(&sale)
		}
		next[i] = sale
	}
	s.sales = next
	s.persistLocked()
}

func (s *Store) DeleteSale(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		if sale.ID != id {
			next = append(next, sale)
		}
	}
	s.sales = next
	s.persistLocked()
}
