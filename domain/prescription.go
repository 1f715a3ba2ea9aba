package domain

type PrescriptionStatus string

const (
	PrescriptionPending   PrescriptionStatus = "pending"
	PrescriptionCompleted PrescriptionStatus = "completed"
	PrescriptionCancelled PrescriptionStatus = "cancelled"
)

// PrescriptionMedication is one line on a prescription. The medicine
// reference is not validated against inventory.
type PrescriptionMedication struct {
	MedicineID string `json:"medicineId"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency"`
	Duration   string `json:"duration"`
}

type Prescription struct {
	ID          string                   `json:"id"`
	PatientID   string                   `json:"patientId"`
	DoctorName  string                   `json:"doctorName"`
	Date        string                   `json:"date"`
	Status      PrescriptionStatus       `json:"status"`
	Medications []PrescriptionMedication `json:"medications"`
	Notes       string                   `json:"notes"`
}

// PrescriptionPatch carries a partial update. Status transitions are not
// constrained; any status may be set at any time. A non-nil Medications
// replaces the whole list.
type PrescriptionPatch struct {
	PatientID   *string
	DoctorName  *string
	Date        *string
	Status      *PrescriptionStatus
	Medications *[]PrescriptionMedication
	Notes       *string
}

func (p PrescriptionPatch) Apply(pr *Prescription) {
	if p.PatientID != nil {
		pr.PatientID = *p.PatientID
	}
	if p.DoctorName != nil {
		pr.DoctorName = *p.DoctorName
	}
	if p.Date != nil {
		pr.Date = *p.Date
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Medications != nil {
		pr.Medications = *p.Medications
	}
	if p.Notes != nil {
		pr.Notes = *p.Notes
	}
}
