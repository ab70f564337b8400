package entities

// NodeScore is one node's live score from the external scorer
type NodeScore struct {
	Confidence    float64 `json:"confidence"`
	IsRecommended bool    `json:"isRecommended"`
}

// TreeScore is the scorer's output for a whole tree: per-node scores plus
// the identity of the model that produced them
type TreeScore struct {
	Scores       map[string]NodeScore
	ModelVersion string
}

// NodeRecommendation is the care-plan projection carried only by
// RECOMMENDATION-type nodes in an assembled decision tree
type NodeRecommendation struct {
	TemplateID  *string     `json:"template_id,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ActionType  *ActionType `json:"action_type,omitempty"`
	Confidence  float64     `json:"confidence"`
}

// DecisionTreeNode is one node of an assembled, presentation-ready decision
// tree. Confidence is the live score when available, BaseConfidence otherwise.
// AlternativeCount tells the UI how many sibling options this node competed
// against.
type DecisionTreeNode struct {
	Node              *PathwayNode        `json:"node"`
	Confidence        float64             `json:"confidence"`
	IsRecommendedPath bool                `json:"is_recommended_path"`
	AlternativeCount  int                 `json:"alternative_count"`
	Recommendation    *NodeRecommendation `json:"recommendation,omitempty"`
	Children          []*DecisionTreeNode `json:"children"`
}

// DecisionTreeResult is the full decision-tree query payload
type DecisionTreeResult struct {
	Pathway          *ClinicalPathway  `json:"pathway"`
	Tree             *DecisionTreeNode `json:"tree"`
	ModelVersion     string            `json:"model_version"`
	ProcessingTimeMs int               `json:"processing_time_ms"`
}

// PathwayMatch is one pathway recommended for a patient context
type PathwayMatch struct {
	PathwayID    string           `json:"pathway_id"`
	Pathway      *ClinicalPathway `json:"pathway,omitempty"`
	MatchScore   float64          `json:"match_score"`
	MatchReasons []string         `json:"match_reasons"`
	MLConfidence *float64         `json:"ml_confidence,omitempty"`
}
