package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// OutcomeService records observed clinical outcomes against pathway nodes
// for later evidence refinement
type OutcomeService struct {
	nodeRepo    repositories.PathwayNodeRepository
	outcomeRepo repositories.OutcomeRepository
}

// NewOutcomeService creates a new outcome service
func NewOutcomeService(
	nodeRepo repositories.PathwayNodeRepository,
	outcomeRepo repositories.OutcomeRepository,
) *OutcomeService {
	return &OutcomeService{
		nodeRepo:    nodeRepo,
		outcomeRepo: outcomeRepo,
	}
}

// Record stores an observed outcome against an existing node
func (s *OutcomeService) Record(ctx context.Context, outcome *entities.PathwayNodeOutcome) (*entities.PathwayNodeOutcome, error) {
	if strings.TrimSpace(outcome.OutcomeType) == "" {
		return nil, apperrors.NewValidationError("outcome type is required")
	}
	if strings.TrimSpace(outcome.RecordedBy) == "" {
		return nil, apperrors.NewValidationError("recorded by is required")
	}

	if _, err := s.nodeRepo.GetByID(ctx, outcome.NodeID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidationError("node does not exist")
		}
		return nil, err
	}

	if outcome.ID == "" {
		outcome.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if outcome.ObservedAt.IsZero() {
		outcome.ObservedAt = now
	}
	outcome.CreatedAt = now
	outcome.UpdatedAt = now

	if err := s.outcomeRepo.Create(ctx, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

// GetByID retrieves an outcome by ID
func (s *OutcomeService) GetByID(ctx context.Context, id string) (*entities.PathwayNodeOutcome, error) {
	return s.outcomeRepo.GetByID(ctx, id)
}

// Update updates an outcome in place
func (s *OutcomeService) Update(ctx context.Context, outcome *entities.PathwayNodeOutcome) error {
	if strings.TrimSpace(outcome.OutcomeType) == "" {
		return apperrors.NewValidationError("outcome type is required")
	}

	outcome.UpdatedAt = time.Now().UTC()
	return s.outcomeRepo.Update(ctx, outcome)
}

// Delete deletes an outcome
func (s *OutcomeService) Delete(ctx context.Context, id string) error {
	return s.outcomeRepo.Delete(ctx, id)
}

// ListByNode retrieves all outcomes recorded against a node
func (s *OutcomeService) ListByNode(ctx context.Context, nodeID string) ([]*entities.PathwayNodeOutcome, error) {
	return s.outcomeRepo.ListByNode(ctx, nodeID)
}
