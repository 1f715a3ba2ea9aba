package domain

// Snapshot is the serialized shape of the whole store, one ordered slice per
// collection. The JSON field names match the persisted document layout, so
// an older payload with missing fields decodes with those fields zeroed
// rather than failing.
type Snapshot struct {
	Medicines     []Medicine     `json:"medicines"`
	Patients      []Patient      `json:"patients"`
	Prescriptions []Prescription `json:"prescriptions"`
	Sales         []Sale         `json:"sales"`
}
