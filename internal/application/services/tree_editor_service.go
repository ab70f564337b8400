package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// TreeEditorService persists client-edited pathway trees. The editor works
// offline with provisional ids; saving reconciles them against real ids,
// writing parents before children so every child references a resolved parent.
type TreeEditorService struct {
	pathwayRepo repositories.PathwayRepository
	nodeRepo    repositories.PathwayNodeRepository
	eventBus    providers.EventBus
	maxDepth    int
}

// NewTreeEditorService creates a new tree editor service
func NewTreeEditorService(
	pathwayRepo repositories.PathwayRepository,
	nodeRepo repositories.PathwayNodeRepository,
	eventBus providers.EventBus,
	maxDepth int,
) *TreeEditorService {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxTreeDepth
	}
	return &TreeEditorService{
		pathwayRepo: pathwayRepo,
		nodeRepo:    nodeRepo,
		eventBus:    eventBus,
		maxDepth:    maxDepth,
	}
}

// SaveTree walks the edited tree depth-first, creating new nodes and updating
// modified ones. Sibling position becomes the persisted sort order. The first
// write failure aborts the traversal; already-written nodes stay written.
// A non-nil expectedVersion rejects the save with a conflict when the pathway
// was edited concurrently. A successful save bumps the pathway version.
func (s *TreeEditorService) SaveTree(ctx context.Context, pathwayID string, root *entities.EditorNode, expectedVersion *int) (*entities.TreeSaveResult, error) {
	if root == nil {
		return nil, apperrors.NewValidationError("tree root is required")
	}

	pathway, err := s.pathwayRepo.GetByID(ctx, pathwayID)
	if err != nil {
		return nil, err
	}
	if expectedVersion != nil && pathway.Version != *expectedVersion {
		return nil, apperrors.NewConflictError(fmt.Sprintf("pathway version is %d, expected %d", pathway.Version, *expectedVersion))
	}

	type frame struct {
		node      *entities.EditorNode
		parentID  *string
		sortOrder int
		depth     int
	}

	result := &entities.TreeSaveResult{
		PathwayID: pathwayID,
		TempIDMap: make(map[string]string),
	}

	stack := []frame{{node: root, depth: 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > s.maxDepth {
			return nil, apperrors.NewValidationError(fmt.Sprintf("tree exceeds maximum depth of %d", s.maxDepth))
		}

		realID, err := s.saveNode(ctx, pathwayID, top.node, top.parentID, top.sortOrder, result)
		if err != nil {
			return nil, err
		}

		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:      top.node.Children[i],
				parentID:  &realID,
				sortOrder: i,
				depth:     top.depth + 1,
			})
		}
	}

	if err := s.pathwayRepo.Update(ctx, pathway, expectedVersion); err != nil {
		return nil, err
	}
	result.Version = pathway.Version

	s.publishEvent(ctx, pathwayID)
	return result, nil
}

// saveNode writes one editor node and returns its real id
func (s *TreeEditorService) saveNode(ctx context.Context, pathwayID string, edited *entities.EditorNode, parentID *string, sortOrder int, result *entities.TreeSaveResult) (string, error) {
	if edited.IsNew {
		node := editorToNode(edited, pathwayID, parentID, sortOrder)
		node.ID = uuid.New().String()
		node.CreatedAt = node.UpdatedAt
		if err := s.nodeRepo.Create(ctx, node); err != nil {
			return "", err
		}
		result.CreatedCount++
		if edited.TempID != nil {
			result.TempIDMap[*edited.TempID] = node.ID
		}
		return node.ID, nil
	}

	if edited.ID == nil {
		return "", apperrors.NewValidationError("existing node is missing its id")
	}

	if edited.IsModified {
		node := editorToNode(edited, pathwayID, parentID, sortOrder)
		node.ID = *edited.ID
		if err := s.nodeRepo.Update(ctx, node); err != nil {
			return "", err
		}
		result.UpdatedCount++
	}

	return *edited.ID, nil
}

func editorToNode(edited *entities.EditorNode, pathwayID string, parentID *string, sortOrder int) *entities.PathwayNode {
	return &entities.PathwayNode{
		PathwayID:           pathwayID,
		ParentNodeID:        parentID,
		NodeType:            edited.NodeType,
		Title:               edited.Title,
		Description:         edited.Description,
		ActionType:          edited.ActionType,
		DecisionFactors:     edited.DecisionFactors,
		SuggestedTemplateID: edited.SuggestedTemplateID,
		SortOrder:           sortOrder,
		BaseConfidence:      edited.BaseConfidence,
		IsActive:            edited.IsActive,
		UpdatedAt:           time.Now().UTC(),
	}
}

func (s *TreeEditorService) publishEvent(ctx context.Context, pathwayID string) {
	if s.eventBus == nil {
		return
	}

	event := &entities.PathwayEvent{
		ID:         uuid.New().String(),
		Type:       entities.PathwayEventTreeSaved,
		PathwayID:  pathwayID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelPathwayUpdates, event); err != nil {
		log.Warn().Str("pathway_id", pathwayID).Err(err).Msg("Failed to publish tree saved event")
	}
}
