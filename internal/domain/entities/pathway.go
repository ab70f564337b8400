package entities

import "time"

// ClinicalPathway represents a named, versioned clinical decision protocol.
// Its decision logic lives in the tree of PathwayNodes that reference it.
type ClinicalPathway struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Slug           string    `json:"slug" db:"slug"`
	Description    string    `json:"description" db:"description"`
	ConditionCodes []string  `json:"condition_codes" db:"-"`
	VersionLabel   string    `json:"version_label" db:"version_label"`
	EvidenceSource string    `json:"evidence_source" db:"evidence_source"`
	EvidenceGrade  string    `json:"evidence_grade" db:"evidence_grade"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	IsPublished    bool      `json:"is_published" db:"is_published"`
	Version        int       `json:"version" db:"version"`
	CreatedBy      string    `json:"created_by" db:"created_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// PathwayUsageStats aggregates instance counts for a pathway
type PathwayUsageStats struct {
	PathwayID      string  `json:"pathway_id"`
	TotalInstances int     `json:"total_instances"`
	Completed      int     `json:"completed"`
	Abandoned      int     `json:"abandoned"`
	Active         int     `json:"active"`
	CompletionRate float64 `json:"completion_rate"`
}

// NodeSelectionStats aggregates selection counts for a node
type NodeSelectionStats struct {
	NodeID           string `json:"node_id"`
	TotalSelections  int    `json:"total_selections"`
	MLRecommended    int    `json:"ml_recommended"`
	ProviderSelected int    `json:"provider_selected"`
	AutoApplied      int    `json:"auto_applied"`
	OverrideCount    int    `json:"override_count"`
}
