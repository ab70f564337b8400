package entities

// EditorNode is one node of a client-edited tree awaiting persistence.
// New nodes carry only a client-generated TempID; existing nodes carry the
// real ID. Sibling position in Children determines the persisted sortOrder.
type EditorNode struct {
	TempID              *string       `json:"temp_id,omitempty"`
	ID                  *string       `json:"id,omitempty"`
	IsNew               bool          `json:"is_new"`
	IsModified          bool          `json:"is_modified"`
	NodeType            NodeType      `json:"node_type"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	ActionType          *ActionType   `json:"action_type,omitempty"`
	DecisionFactors     []string      `json:"decision_factors"`
	SuggestedTemplateID *string       `json:"suggested_template_id,omitempty"`
	BaseConfidence      float64       `json:"base_confidence"`
	IsActive            bool          `json:"is_active"`
	Children            []*EditorNode `json:"children"`
}

// TreeSaveResult reports what a tree save actually wrote. TempIDMap lets the
// editor reconcile its provisional identities with server-assigned ids.
type TreeSaveResult struct {
	PathwayID    string            `json:"pathway_id"`
	Version      int               `json:"version"`
	CreatedCount int               `json:"created_count"`
	UpdatedCount int               `json:"updated_count"`
	TempIDMap    map[string]string `json:"temp_id_map"`
}
