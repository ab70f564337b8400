package scoring

import (
	"context"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
)

// MockModelVersion identifies scores produced by the mock adapter
const MockModelVersion = "mock-v1"

// MockAdapter provides deterministic scores for local development. Confidence
// starts from each node's base confidence and gets a fixed boost when one of
// the node's decision factors appears in the patient's context.
type MockAdapter struct {
	factorBoost          float64
	recommendedThreshold float64
}

// NewMockAdapter creates a mock scoring provider
func NewMockAdapter() providers.ScoringProvider {
	return &MockAdapter{
		factorBoost:          0.1,
		recommendedThreshold: 0.6,
	}
}

// ScoreTree returns deterministic per-node scores
func (m *MockAdapter) ScoreTree(ctx context.Context, pathwayID string, nodes []*entities.PathwayNode, patientCtx *entities.PatientContext) (*entities.TreeScore, error) {
	known := make(map[string]struct{})
	if patientCtx != nil {
		for _, code := range patientCtx.ConditionCodes {
			known[code] = struct{}{}
		}
		for _, code := range patientCtx.MedicationCodes {
			known[code] = struct{}{}
		}
		for _, code := range patientCtx.Comorbidities {
			known[code] = struct{}{}
		}
	}

	scores := make(map[string]entities.NodeScore, len(nodes))
	for _, node := range nodes {
		confidence := node.BaseConfidence
		for _, factor := range node.DecisionFactors {
			if _, ok := known[factor]; ok {
				confidence += m.factorBoost
				break
			}
		}
		if confidence > 1.0 {
			confidence = 1.0
		}
		scores[node.ID] = entities.NodeScore{
			Confidence:    confidence,
			IsRecommended: confidence >= m.recommendedThreshold,
		}
	}

	return &entities.TreeScore{
		Scores:       scores,
		ModelVersion: MockModelVersion,
	}, nil
}

// RecommendPathways returns no matches; the recommendation service applies
// its own condition-code matching when the scorer offers nothing
func (m *MockAdapter) RecommendPathways(ctx context.Context, patientCtx *entities.PatientContext, maxResults int) ([]*entities.PathwayMatch, error) {
	return nil, nil
}
