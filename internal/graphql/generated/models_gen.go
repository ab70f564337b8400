// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
)

type ClinicalPathwayFilter struct {
	IsActive      *bool   `json:"isActive,omitempty"`
	IsPublished   *bool   `json:"isPublished,omitempty"`
	ConditionCode *string `json:"conditionCode,omitempty"`
}

type CreateClinicalPathwayInput struct {
	Name           string   `json:"name"`
	Description    *string  `json:"description,omitempty"`
	ConditionCodes []string `json:"conditionCodes,omitempty"`
	VersionLabel   *string  `json:"versionLabel,omitempty"`
	EvidenceSource *string  `json:"evidenceSource,omitempty"`
	EvidenceGrade  *string  `json:"evidenceGrade,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
	CreatedBy      string   `json:"createdBy"`
}

type CreatePathwayNodeInput struct {
	PathwayID           string               `json:"pathwayId"`
	ParentNodeID        *string              `json:"parentNodeId,omitempty"`
	NodeType            entities.NodeType    `json:"nodeType"`
	Title               string               `json:"title"`
	Description         *string              `json:"description,omitempty"`
	ActionType          *entities.ActionType `json:"actionType,omitempty"`
	DecisionFactors     []string             `json:"decisionFactors,omitempty"`
	SuggestedTemplateID *string              `json:"suggestedTemplateId,omitempty"`
	SortOrder           *int                 `json:"sortOrder,omitempty"`
	BaseConfidence      *float64             `json:"baseConfidence,omitempty"`
	IsActive            *bool                `json:"isActive,omitempty"`
}

type EditorNodeInput struct {
	TempID              *string              `json:"tempId,omitempty"`
	ID                  *string              `json:"id,omitempty"`
	IsNew               bool                 `json:"isNew"`
	IsModified          bool                 `json:"isModified"`
	NodeType            entities.NodeType    `json:"nodeType"`
	Title               string               `json:"title"`
	Description         *string              `json:"description,omitempty"`
	ActionType          *entities.ActionType `json:"actionType,omitempty"`
	DecisionFactors     []string             `json:"decisionFactors,omitempty"`
	SuggestedTemplateID *string              `json:"suggestedTemplateId,omitempty"`
	BaseConfidence      *float64             `json:"baseConfidence,omitempty"`
	IsActive            *bool                `json:"isActive,omitempty"`
	Children            []*EditorNodeInput   `json:"children,omitempty"`
}

type LabValueInput struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

type MovePathwayNodeInput struct {
	NewParentNodeID *string `json:"newParentNodeId,omitempty"`
	NewSortOrder    *int    `json:"newSortOrder,omitempty"`
}

type Mutation struct {
}

type PatientContextInput struct {
	PatientID       string           `json:"patientId"`
	ProviderID      *string          `json:"providerId,omitempty"`
	ConditionCodes  []string         `json:"conditionCodes,omitempty"`
	Age             *int             `json:"age,omitempty"`
	Sex             *string          `json:"sex,omitempty"`
	MedicationCodes []string         `json:"medicationCodes,omitempty"`
	LabCodes        []string         `json:"labCodes,omitempty"`
	LabValues       []*LabValueInput `json:"labValues,omitempty"`
	Comorbidities   []string         `json:"comorbidities,omitempty"`
	RiskFactors     []string         `json:"riskFactors,omitempty"`
	ClinicalNotes   *string          `json:"clinicalNotes,omitempty"`
}

type Query struct {
}

type RecordNodeOutcomeInput struct {
	NodeID      string     `json:"nodeId"`
	OutcomeType string     `json:"outcomeType"`
	Description *string    `json:"description,omitempty"`
	ObservedAt  *time.Time `json:"observedAt,omitempty"`
	RecordedBy  string     `json:"recordedBy"`
}

type RecordPathwaySelectionInput struct {
	InstanceID     string                 `json:"instanceId"`
	NodeID         string                 `json:"nodeId"`
	SelectionType  entities.SelectionType `json:"selectionType"`
	OverrideReason *string                `json:"overrideReason,omitempty"`
	CreatedBy      string                 `json:"createdBy"`
}

type SaveDecisionTreeInput struct {
	PathwayID       string           `json:"pathwayId"`
	Tree            *EditorNodeInput `json:"tree"`
	ExpectedVersion *int             `json:"expectedVersion,omitempty"`
}

type StartPathwayInstanceInput struct {
	PatientID      string               `json:"patientId"`
	PathwayID      string               `json:"pathwayId"`
	ProviderID     string               `json:"providerId"`
	PatientContext *PatientContextInput `json:"patientContext,omitempty"`
	MlModelID      *string              `json:"mlModelId,omitempty"`
}

type TempIDMapping struct {
	TempID string `json:"tempId"`
	NodeID string `json:"nodeId"`
}

type UpdateClinicalPathwayInput struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	ConditionCodes  []string `json:"conditionCodes,omitempty"`
	VersionLabel    *string  `json:"versionLabel,omitempty"`
	EvidenceSource  *string  `json:"evidenceSource,omitempty"`
	EvidenceGrade   *string  `json:"evidenceGrade,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
	ExpectedVersion *int     `json:"expectedVersion,omitempty"`
}

type UpdateNodeOutcomeInput struct {
	OutcomeType string     `json:"outcomeType"`
	Description *string    `json:"description,omitempty"`
	ObservedAt  *time.Time `json:"observedAt,omitempty"`
}

type UpdatePathwayNodeInput struct {
	Title               string               `json:"title"`
	Description         *string              `json:"description,omitempty"`
	ActionType          *entities.ActionType `json:"actionType,omitempty"`
	DecisionFactors     []string             `json:"decisionFactors,omitempty"`
	SuggestedTemplateID *string              `json:"suggestedTemplateId,omitempty"`
	BaseConfidence      *float64             `json:"baseConfidence,omitempty"`
	IsActive            *bool                `json:"isActive,omitempty"`
}
