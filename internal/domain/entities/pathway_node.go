package entities

import (
	"fmt"
	"time"
)

// NodeType classifies a node within a pathway's decision tree
type NodeType string

const (
	NodeTypeRoot           NodeType = "ROOT"
	NodeTypeDecision       NodeType = "DECISION"
	NodeTypeBranch         NodeType = "BRANCH"
	NodeTypeRecommendation NodeType = "RECOMMENDATION"
)

// ParseNodeType parses a string into a NodeType
func ParseNodeType(s string) (NodeType, error) {
	switch s {
	case string(NodeTypeRoot):
		return NodeTypeRoot, nil
	case string(NodeTypeDecision):
		return NodeTypeDecision, nil
	case string(NodeTypeBranch):
		return NodeTypeBranch, nil
	case string(NodeTypeRecommendation):
		return NodeTypeRecommendation, nil
	}
	return "", fmt.Errorf("unknown node type '%s'", s)
}

func (t NodeType) String() string {
	return string(t)
}

// Scan implements sql.Scanner
func (t *NodeType) Scan(src interface{}) error {
	s, err := scanEnumString(src, "node type")
	if err != nil {
		return err
	}
	*t, err = ParseNodeType(s)
	return err
}

// ActionType describes the clinical action a BRANCH or RECOMMENDATION node suggests
type ActionType string

const (
	ActionTypeMedication ActionType = "MEDICATION"
	ActionTypeLab        ActionType = "LAB"
	ActionTypeReferral   ActionType = "REFERRAL"
	ActionTypeProcedure  ActionType = "PROCEDURE"
	ActionTypeEducation  ActionType = "EDUCATION"
	ActionTypeMonitoring ActionType = "MONITORING"
	ActionTypeLifestyle  ActionType = "LIFESTYLE"
	ActionTypeFollowUp   ActionType = "FOLLOW_UP"
	ActionTypeUrgentCare ActionType = "URGENT_CARE"
)

// ParseActionType parses a string into an ActionType
func ParseActionType(s string) (ActionType, error) {
	switch ActionType(s) {
	case ActionTypeMedication, ActionTypeLab, ActionTypeReferral, ActionTypeProcedure,
		ActionTypeEducation, ActionTypeMonitoring, ActionTypeLifestyle,
		ActionTypeFollowUp, ActionTypeUrgentCare:
		return ActionType(s), nil
	}
	return "", fmt.Errorf("unknown action type '%s'", s)
}

func (t ActionType) String() string {
	return string(t)
}

// Scan implements sql.Scanner
func (t *ActionType) Scan(src interface{}) error {
	s, err := scanEnumString(src, "action type")
	if err != nil {
		return err
	}
	*t, err = ParseActionType(s)
	return err
}

func scanEnumString(src interface{}, what string) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("can't scan type %T to %s", src, what)
}

// PathwayNode is one decision point in a pathway's tree. ParentNodeID is nil
// only for the root node; siblings are ordered by SortOrder ascending.
type PathwayNode struct {
	ID                  string      `json:"id" db:"id"`
	PathwayID           string      `json:"pathway_id" db:"pathway_id"`
	ParentNodeID        *string     `json:"parent_node_id,omitempty" db:"parent_node_id"`
	NodeType            NodeType    `json:"node_type" db:"node_type"`
	Title               string      `json:"title" db:"title"`
	Description         string      `json:"description" db:"description"`
	ActionType          *ActionType `json:"action_type,omitempty" db:"action_type"`
	DecisionFactors     []string    `json:"decision_factors" db:"-"`
	SuggestedTemplateID *string     `json:"suggested_template_id,omitempty" db:"suggested_template_id"`
	SortOrder           int         `json:"sort_order" db:"sort_order"`
	BaseConfidence      float64     `json:"base_confidence" db:"base_confidence"`
	IsActive            bool        `json:"is_active" db:"is_active"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at" db:"updated_at"`
}

// IsRoot reports whether the node is the pathway's root
func (n *PathwayNode) IsRoot() bool {
	return n.ParentNodeID == nil
}

// PathwayNodeOutcome is an observed clinical outcome attached to a node,
// recorded for later evidence refinement
type PathwayNodeOutcome struct {
	ID          string    `json:"id" db:"id"`
	NodeID      string    `json:"node_id" db:"node_id"`
	OutcomeType string    `json:"outcome_type" db:"outcome_type"`
	Description string    `json:"description" db:"description"`
	ObservedAt  time.Time `json:"observed_at" db:"observed_at"`
	RecordedBy  string    `json:"recorded_by" db:"recorded_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
