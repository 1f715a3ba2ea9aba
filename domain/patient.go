package domain

type Patient struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	MedicalHistory []string `json:"medicalHistory"`
}

// PatientPatch carries a partial update. A non-nil MedicalHistory replaces
// the whole list.
type PatientPatch struct {
	Name           *string
	Email          *string
	Phone          *string
	Address        *string
	MedicalHistory *[]string
}

func (p PatientPatch) Apply(pt *Patient) {
	if p.Name != nil {
		pt.Name = *p.Name
	}
	if p.Email != nil {
		pt.Email = *p.Email
	}
	if p.Phone != nil {
		pt.Phone = *p.Phone
	}
	if p.Address != nil {
		pt.Address = *p.Address
	}
	if p.MedicalHistory != nil {
		pt.MedicalHistory = *p.MedicalHistory
	}
}
