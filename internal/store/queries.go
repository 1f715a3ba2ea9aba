package store

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pharmadesk/m/domain"
)

const searchLimit = 25

const expiryLayout = "2006-01-02"

// LowStock returns the medicines at or below their reorder level, in
// collection order.
func (s *Store) LowStock() []domain.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Medicine
	for _, m := range s.medicines {
		if m.LowStock() {
			out = append(out, m)
		}
	}
	return out
}

// SearchMedicines matches the query case-insensitively against name and
// category, ordered by name and capped at 25 results. An empty query lists
// the first 25 by name.
func (s *Store) SearchMedicines(query string) []domain.Medicine {
	query = strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Medicine
	for _, m := range s.medicines {
		if query == "" ||
			strings.Contains(strings.ToLower(m.Name), query) ||
			strings.Contains(strings.ToLower(m.Category), query) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > searchLimit {
		out = out[:searchLimit]
	}
	return out
}

// ExpiringWithin returns the medicines whose expiry date falls within the
// given number of days, soonest first. Days at or below zero default to 30.
// Medicines without a parseable expiry date are skipped.
func (s *Store) ExpiringWithin(days int) []domain.Medicine {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().UTC().AddDate(0, 0, days)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Medicine
	for _, m := range s.medicines {
		expiry, err := time.Parse(expiryLayout, m.ExpiryDate)
		if err != nil {
			continue
		}
		if !expiry.After(cutoff) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiryDate < out[j].ExpiryDate })
	return out
}

// SalesSummary rolls up revenue and sale count over [from, to). A zero "to"
// leaves the range open-ended. Refunded sales are counted but contribute no
// revenue.
func (s *Store) SalesSummary(from, to time.Time) (decimal.Decimal, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	revenue := decimal.Zero
	var count int64
	for _, sale := range s.sales {
		if sale.Date.Before(from) {
			continue
		}
		if !to.IsZero() && !sale.Date.Before(to) {
			continue
		}
		count++
		if sale.Status != domain.SaleRefunded {
			revenue = revenue.Add(sale.Total)
		}
	}
	return revenue, count
}
