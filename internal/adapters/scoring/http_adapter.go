package scoring

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/scorer"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/observability"
)

// HTTPAdapter implements ScoringProvider against the external scorer service.
// Every call runs through a circuit breaker, and failures degrade to empty
// results rather than errors: scoring enriches trees, it never gates them.
type HTTPAdapter struct {
	client  scorer.Client
	breaker *gobreaker.CircuitBreaker
	metrics *observability.Metrics
}

// NewHTTPAdapter creates a scoring adapter backed by the scorer HTTP client
func NewHTTPAdapter(client scorer.Client, metrics *observability.Metrics) providers.ScoringProvider {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "pathway-scorer",
		MaxRequests: 3,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Scorer circuit breaker state changed")
		},
	})

	return &HTTPAdapter{
		client:  client,
		breaker: breaker,
		metrics: metrics,
	}
}

// ScoreTree scores pathway nodes against a patient context. Any failure is
// logged and reported as a nil score with a nil error.
func (a *HTTPAdapter) ScoreTree(ctx context.Context, pathwayID string, nodes []*entities.PathwayNode, patientCtx *entities.PatientContext) (*entities.TreeScore, error) {
	req := scorer.ScoreTreeRequest{
		PathwayID:      pathwayID,
		PatientContext: patientCtx,
		Nodes:          projectNodes(nodes),
	}

	result, err := a.breaker.Execute(func() (interface{}, error) {
		return a.client.ScoreTree(ctx, req)
	})
	a.recordCall(ctx, "score_tree", err)
	if err != nil {
		log.Warn().Str("pathway_id", pathwayID).Err(err).Msg("Scorer unavailable, falling back to base confidence")
		return nil, nil
	}

	resp := result.(*scorer.ScoreTreeResponse)
	return &entities.TreeScore{
		Scores:       resp.Scores,
		ModelVersion: resp.ModelVersion,
	}, nil
}

// RecommendPathways ranks pathways for a patient context. Failures yield an
// empty slice so callers can apply their own fallback matching.
func (a *HTTPAdapter) RecommendPathways(ctx context.Context, patientCtx *entities.PatientContext, maxResults int) ([]*entities.PathwayMatch, error) {
	req := scorer.RecommendRequest{
		PatientContext: patientCtx,
		MaxResults:     maxResults,
	}

	result, err := a.breaker.Execute(func() (interface{}, error) {
		return a.client.RecommendPathways(ctx, req)
	})
	a.recordCall(ctx, "recommend", err)
	if err != nil {
		log.Warn().Err(err).Msg("Scorer unavailable, skipping ML recommendations")
		return nil, nil
	}

	resp := result.(*scorer.RecommendResponse)
	matches := make([]*entities.PathwayMatch, 0, len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		matches = append(matches, &entities.PathwayMatch{
			PathwayID:    rec.PathwayID,
			MatchScore:   rec.MatchScore,
			MatchReasons: rec.MatchReasons,
			MLConfidence: rec.MLConfidence,
		})
	}
	return matches, nil
}

func (a *HTTPAdapter) recordCall(ctx context.Context, operation string, err error) {
	if a.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("operation", operation))
	a.metrics.ScorerCallCount.Add(ctx, 1, attrs)
	if err != nil {
		a.metrics.ScorerFallbackCount.Add(ctx, 1, attrs)
	}
}

func projectNodes(nodes []*entities.PathwayNode) []scorer.NodeProjection {
	projections := make([]scorer.NodeProjection, 0, len(nodes))
	for _, node := range nodes {
		projections = append(projections, scorer.NodeProjection{
			ID:              node.ID,
			NodeType:        node.NodeType,
			Title:           node.Title,
			ActionType:      node.ActionType,
			DecisionFactors: node.DecisionFactors,
			BaseConfidence:  node.BaseConfidence,
		})
	}
	return projections
}
