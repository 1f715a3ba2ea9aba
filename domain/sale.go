package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleRefunded  SaleStatus = "refunded"
)

// SaleItem records a sold line with the unit price snapshotted at sale time.
// Later medicine price edits never touch recorded items.
type SaleItem struct {
	MedicineID string          `json:"medicineId"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

type Sale struct {
	ID             string          `json:"id"`
	PatientID      string          `json:"patientId,omitempty"`
	PrescriptionID string          `json:"prescriptionId,omitempty"`
	Date           time.Time       `json:"date"`
	Items          []SaleItem      `json:"items"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	Status         SaleStatus      `json:"status"`
}

// SalePatch carries a partial update. Total is never recomputed by the
// store; editing Items leaves the recorded Total alone unless Total is
// overwritten explicitly.
type SalePatch struct {
	PatientID      *string
	PrescriptionID *string
	Date           *time.Time
	Items          *[]SaleItem
	Total          *decimal.Decimal
	PaymentMethod  *PaymentMethod
	Status         *SaleStatus
}

func (p SalePatch) Apply(s *Sale) {
	if p.PatientID != nil {
		s.PatientID = *p.PatientID
	}
	if p.PrescriptionID != nil {
		s.PrescriptionID = *p.PrescriptionID
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Items != nil {
		s.Items = *p.Items
	}
	if p.Total != nil {
		s.Total = *p.Total
	}
	if p.PaymentMethod != nil {
		s.PaymentMethod = *p.PaymentMethod
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}
