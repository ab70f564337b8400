package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// PathwayService handles business logic for clinical pathways and their nodes
type PathwayService struct {
	pathwayRepo   repositories.PathwayRepository
	nodeRepo      repositories.PathwayNodeRepository
	instanceRepo  repositories.InstanceRepository
	selectionRepo repositories.SelectionRepository
	eventBus      providers.EventBus
}

// NewPathwayService creates a new pathway service
func NewPathwayService(
	pathwayRepo repositories.PathwayRepository,
	nodeRepo repositories.PathwayNodeRepository,
	instanceRepo repositories.InstanceRepository,
	selectionRepo repositories.SelectionRepository,
	eventBus providers.EventBus,
) *PathwayService {
	return &PathwayService{
		pathwayRepo:   pathwayRepo,
		nodeRepo:      nodeRepo,
		instanceRepo:  instanceRepo,
		selectionRepo: selectionRepo,
		eventBus:      eventBus,
	}
}

// Create creates a new pathway
func (s *PathwayService) Create(ctx context.Context, pathway *entities.ClinicalPathway) error {
	if strings.TrimSpace(pathway.Name) == "" {
		return apperrors.NewValidationError("pathway name is required")
	}

	if pathway.ID == "" {
		pathway.ID = uuid.New().String()
	}
	if pathway.Slug == "" {
		pathway.Slug = Slugify(pathway.Name)
	}
	pathway.IsPublished = false
	pathway.Version = 1

	now := time.Now().UTC()
	pathway.CreatedAt = now
	pathway.UpdatedAt = now

	if err := s.pathwayRepo.Create(ctx, pathway); err != nil {
		return err
	}

	s.publishEvent(ctx, entities.PathwayEventCreated, pathway.ID)
	return nil
}

// GetByID retrieves a pathway by ID
func (s *PathwayService) GetByID(ctx context.Context, id string) (*entities.ClinicalPathway, error) {
	return s.pathwayRepo.GetByID(ctx, id)
}

// GetBySlug retrieves a pathway by slug
func (s *PathwayService) GetBySlug(ctx context.Context, slug string) (*entities.ClinicalPathway, error) {
	return s.pathwayRepo.GetBySlug(ctx, slug)
}

// List retrieves pathways matching the filter, cursor-paginated
func (s *PathwayService) List(ctx context.Context, filter repositories.PathwayFilter) (*repositories.PathwayPage, error) {
	return s.pathwayRepo.List(ctx, filter)
}

// Update updates pathway metadata. A non-nil expectedVersion makes the write
// conditional on the stored version.
func (s *PathwayService) Update(ctx context.Context, pathway *entities.ClinicalPathway, expectedVersion *int) error {
	if strings.TrimSpace(pathway.Name) == "" {
		return apperrors.NewValidationError("pathway name is required")
	}

	pathway.UpdatedAt = time.Now().UTC()

	if err := s.pathwayRepo.Update(ctx, pathway, expectedVersion); err != nil {
		return err
	}

	s.publishEvent(ctx, entities.PathwayEventUpdated, pathway.ID)
	return nil
}

// Delete deletes a pathway and all of its nodes
func (s *PathwayService) Delete(ctx context.Context, id string) error {
	if err := s.pathwayRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, entities.PathwayEventDeleted, id)
	return nil
}

// Publish marks a pathway as published. A pathway without a root node cannot
// be published.
func (s *PathwayService) Publish(ctx context.Context, id string) (*entities.ClinicalPathway, error) {
	if _, err := s.nodeRepo.GetRootNode(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidationError("pathway has no root node and cannot be published")
		}
		return nil, err
	}

	pathway, err := s.pathwayRepo.SetPublished(ctx, id, true)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, entities.PathwayEventPublished, id)
	return pathway, nil
}

// Unpublish clears a pathway's published flag
func (s *PathwayService) Unpublish(ctx context.Context, id string) (*entities.ClinicalPathway, error) {
	pathway, err := s.pathwayRepo.SetPublished(ctx, id, false)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, entities.PathwayEventUnpublished, id)
	return pathway, nil
}

// Duplicate deep-copies a pathway and its entire node tree under a new name.
// The copy starts unpublished at version 1.
func (s *PathwayService) Duplicate(ctx context.Context, id, newName, createdBy string) (*entities.ClinicalPathway, error) {
	if strings.TrimSpace(newName) == "" {
		return nil, apperrors.NewValidationError("new pathway name is required")
	}

	src, err := s.pathwayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := &entities.ClinicalPathway{
		ID:             uuid.New().String(),
		Name:           newName,
		Slug:           Slugify(newName),
		Description:    src.Description,
		ConditionCodes: append([]string(nil), src.ConditionCodes...),
		VersionLabel:   src.VersionLabel,
		EvidenceSource: src.EvidenceSource,
		EvidenceGrade:  src.EvidenceGrade,
		IsActive:       src.IsActive,
		IsPublished:    false,
		Version:        1,
		CreatedBy:      createdBy,
	}

	now := time.Now().UTC()
	dup.CreatedAt = now
	dup.UpdatedAt = now

	if err := s.pathwayRepo.Create(ctx, dup); err != nil {
		return nil, err
	}

	if err := s.nodeRepo.CopyTree(ctx, src.ID, dup.ID); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, entities.PathwayEventCreated, dup.ID)
	return dup, nil
}

// CreateNode creates a node within a pathway. Parent linkage is validated:
// the parent must belong to the same pathway, and a pathway holds at most one
// root node.
func (s *PathwayService) CreateNode(ctx context.Context, node *entities.PathwayNode) error {
	if strings.TrimSpace(node.Title) == "" {
		return apperrors.NewValidationError("node title is required")
	}

	if _, err := s.pathwayRepo.GetByID(ctx, node.PathwayID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidationError("pathway does not exist")
		}
		return err
	}

	if node.ParentNodeID == nil {
		if _, err := s.nodeRepo.GetRootNode(ctx, node.PathwayID); err == nil {
			return apperrors.NewValidationError("pathway already has a root node")
		} else if !apperrors.IsNotFound(err) {
			return err
		}
	} else {
		parent, err := s.nodeRepo.GetByID(ctx, *node.ParentNodeID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return apperrors.NewValidationError("parent node does not exist")
			}
			return err
		}
		if parent.PathwayID != node.PathwayID {
			return apperrors.NewValidationError("parent node belongs to a different pathway")
		}
	}

	if node.ID == "" {
		node.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	node.CreatedAt = now
	node.UpdatedAt = now

	if err := s.nodeRepo.Create(ctx, node); err != nil {
		return err
	}

	s.publishEvent(ctx, entities.PathwayEventUpdated, node.PathwayID)
	return nil
}

// GetNode retrieves a node by ID
func (s *PathwayService) GetNode(ctx context.Context, id string) (*entities.PathwayNode, error) {
	return s.nodeRepo.GetByID(ctx, id)
}

// UpdateNode updates a node in place
func (s *PathwayService) UpdateNode(ctx context.Context, node *entities.PathwayNode) error {
	if strings.TrimSpace(node.Title) == "" {
		return apperrors.NewValidationError("node title is required")
	}

	node.UpdatedAt = time.Now().UTC()

	if err := s.nodeRepo.Update(ctx, node); err != nil {
		return err
	}

	s.publishEvent(ctx, entities.PathwayEventUpdated, node.PathwayID)
	return nil
}

// DeleteNode deletes a node
func (s *PathwayService) DeleteNode(ctx context.Context, id string) error {
	node, err := s.nodeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.nodeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, entities.PathwayEventUpdated, node.PathwayID)
	return nil
}

// MoveNode reparents and/or reorders a node
func (s *PathwayService) MoveNode(ctx context.Context, nodeID string, newParentID *string, newSortOrder *int) (*entities.PathwayNode, error) {
	node, err := s.nodeRepo.Move(ctx, nodeID, newParentID, newSortOrder)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, entities.PathwayEventUpdated, node.PathwayID)
	return node, nil
}

// GetUsageStats aggregates instance counts for a pathway
func (s *PathwayService) GetUsageStats(ctx context.Context, pathwayID string) (*entities.PathwayUsageStats, error) {
	return s.instanceRepo.GetUsageStats(ctx, pathwayID)
}

// GetSelectionStats aggregates selection counts for a node
func (s *PathwayService) GetSelectionStats(ctx context.Context, nodeID string) (*entities.NodeSelectionStats, error) {
	return s.selectionRepo.GetSelectionStats(ctx, nodeID)
}

// publishEvent emits a pathway lifecycle event; delivery is best-effort
func (s *PathwayService) publishEvent(ctx context.Context, eventType entities.PathwayEventType, pathwayID string) {
	if s.eventBus == nil {
		return
	}

	event := &entities.PathwayEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		PathwayID:  pathwayID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelPathwayUpdates, event); err != nil {
		log.Warn().Str("pathway_id", pathwayID).Str("type", string(eventType)).Err(err).Msg("Failed to publish pathway event")
	}
}

// Slugify derives a URL slug from a pathway name
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
