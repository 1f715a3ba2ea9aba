package domain

import "github.com/shopspring/decimal"

type Medicine struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock"`
	Category     string          `json:"category"`
	ExpiryDate   string          `json:"expiryDate"`
	Manufacturer string          `json:"manufacturer"`
	ReorderLevel int64           `json:"reorderLevel"`
}

// LowStock reports whether the medicine is at or below its reorder level.
func (m Medicine) LowStock() bool {
	return m.Stock <= m.ReorderLevel
}

// MedicinePatch carries a partial update. A nil field leaves the current
// value unchanged; a non-nil field overwrites it, including with a zero value.
type MedicinePatch struct {
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	Stock        *int64
	Category     *string
	ExpiryDate   *string
	Manufacturer *string
	ReorderLevel *int64
}

func (p MedicinePatch) Apply(m *Medicine) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Stock != nil {
		m.Stock = *p.Stock
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.ExpiryDate != nil {
		m.ExpiryDate = *p.ExpiryDate
	}
	if p.Manufacturer != nil {
		m.Manufacturer = *p.Manufacturer
	}
	if p.ReorderLevel != nil {
		m.ReorderLevel = *p.ReorderLevel
	}
}
