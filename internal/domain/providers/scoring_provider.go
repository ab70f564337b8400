package providers

import (
	"context"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
)

// ScoringProvider defines the interface to the external patient-context
// scorer. Implementations are best-effort: when the scorer is unreachable or
// returns a failure they return empty results and a nil error, so pathway
// functionality never depends on scorer availability.
type ScoringProvider interface {
	// ScoreTree scores every node of a pathway tree against a patient
	// context. A nil result with a nil error means no enrichment is
	// available and callers fall back to base confidence.
	ScoreTree(ctx context.Context, pathwayID string, nodes []*entities.PathwayNode, patientCtx *entities.PatientContext) (*entities.TreeScore, error)

	// RecommendPathways ranks pathways for a patient context. An empty
	// slice means the scorer had nothing to offer.
	RecommendPathways(ctx context.Context, patientCtx *entities.PatientContext, maxResults int) ([]*entities.PathwayMatch, error)
}
