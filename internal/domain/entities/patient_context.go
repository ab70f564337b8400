package entities

// PatientContext is the snapshot of patient state supplied by the
// patient-data collaborator. The subgraph does not know or care how it was
// obtained (EHR sync, manual entry, etc.).
type PatientContext struct {
	PatientID       string             `json:"patient_id,omitempty"`
	ProviderID      string             `json:"provider_id,omitempty"`
	ConditionCodes  []string           `json:"condition_codes,omitempty"`
	Age             *int               `json:"age,omitempty"`
	Sex             *string            `json:"sex,omitempty"`
	MedicationCodes []string           `json:"medication_codes,omitempty"`
	LabCodes        []string           `json:"lab_codes,omitempty"`
	LabValues       map[string]float64 `json:"lab_values,omitempty"`
	Comorbidities   []string           `json:"comorbidities,omitempty"`
	RiskFactors     []string           `json:"risk_factors,omitempty"`
	ClinicalNotes   *string            `json:"clinical_notes,omitempty"`
}
