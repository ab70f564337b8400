package entities

import (
	"fmt"
	"time"
)

// InstanceStatus is the lifecycle state of a patient's pathway traversal.
// STARTED is the only non-terminal state.
type InstanceStatus string

const (
	InstanceStarted   InstanceStatus = "STARTED"
	InstanceCompleted InstanceStatus = "COMPLETED"
	InstanceAbandoned InstanceStatus = "ABANDONED"
)

// ParseInstanceStatus parses a string into an InstanceStatus
func ParseInstanceStatus(s string) (InstanceStatus, error) {
	switch InstanceStatus(s) {
	case InstanceStarted, InstanceCompleted, InstanceAbandoned:
		return InstanceStatus(s), nil
	}
	return "", fmt.Errorf("unknown instance status '%s'", s)
}

func (s InstanceStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed
func (s InstanceStatus) IsTerminal() bool {
	return s == InstanceCompleted || s == InstanceAbandoned
}

// Scan implements sql.Scanner
func (s *InstanceStatus) Scan(src interface{}) error {
	str, err := scanEnumString(src, "instance status")
	if err != nil {
		return err
	}
	*s, err = ParseInstanceStatus(str)
	return err
}

// SelectionType records who or what chose a node within an instance
type SelectionType string

const (
	SelectionMLRecommended    SelectionType = "ML_RECOMMENDED"
	SelectionProviderSelected SelectionType = "PROVIDER_SELECTED"
	SelectionAutoApplied      SelectionType = "AUTO_APPLIED"
)

// ParseSelectionType parses a string into a SelectionType
func ParseSelectionType(s string) (SelectionType, error) {
	switch SelectionType(s) {
	case SelectionMLRecommended, SelectionProviderSelected, SelectionAutoApplied:
		return SelectionType(s), nil
	}
	return "", fmt.Errorf("unknown selection type '%s'", s)
}

func (s SelectionType) String() string {
	return string(s)
}

// Scan implements sql.Scanner
func (s *SelectionType) Scan(src interface{}) error {
	str, err := scanEnumString(src, "selection type")
	if err != nil {
		return err
	}
	*s, err = ParseSelectionType(str)
	return err
}

// PatientPathwayInstance is one patient's traversal of one pathway.
// PatientContext is an immutable snapshot of what was known at start time.
type PatientPathwayInstance struct {
	ID             string          `json:"id" db:"id"`
	PatientID      string          `json:"patient_id" db:"patient_id"`
	PathwayID      string          `json:"pathway_id" db:"pathway_id"`
	ProviderID     string          `json:"provider_id" db:"provider_id"`
	PatientContext *PatientContext `json:"patient_context,omitempty" db:"-"`
	MLModelID      *string         `json:"ml_model_id,omitempty" db:"ml_model_id"`
	Status         InstanceStatus  `json:"status" db:"status"`
	StartedAt      time.Time       `json:"started_at" db:"started_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
	AbandonedAt    *time.Time      `json:"abandoned_at,omitempty" db:"abandoned_at"`
}

// PatientPathwaySelection records that a specific node was chosen within an
// instance. ResultingCarePlanID is a one-way enrichment set after the fact.
type PatientPathwaySelection struct {
	ID                  string        `json:"id" db:"id"`
	InstanceID          string        `json:"instance_id" db:"instance_id"`
	NodeID              string        `json:"node_id" db:"node_id"`
	SelectionType       SelectionType `json:"selection_type" db:"selection_type"`
	OverrideReason      *string       `json:"override_reason,omitempty" db:"override_reason"`
	ResultingCarePlanID *string       `json:"resulting_care_plan_id,omitempty" db:"resulting_care_plan_id"`
	CreatedBy           string        `json:"created_by" db:"created_by"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
}
