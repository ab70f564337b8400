package repositories

import (
	"context"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
)

// PathwayNodeRepository defines the interface for pathway node data operations
type PathwayNodeRepository interface {
	// Create creates a new node
	Create(ctx context.Context, node *entities.PathwayNode) error

	// GetByID retrieves a node by ID
	GetByID(ctx context.Context, id string) (*entities.PathwayNode, error)

	// GetByIDs retrieves multiple nodes by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.PathwayNode, error)

	// GetRootNode retrieves the node with a null parent for the pathway
	GetRootNode(ctx context.Context, pathwayID string) (*entities.PathwayNode, error)

	// GetChildren retrieves a node's direct children ordered by sort order
	GetChildren(ctx context.Context, nodeID string) ([]*entities.PathwayNode, error)

	// ListByPathway retrieves every node of a pathway as a flat list
	ListByPathway(ctx context.Context, pathwayID string) ([]*entities.PathwayNode, error)

	// Update updates a node in place
	Update(ctx context.Context, node *entities.PathwayNode) error

	// Delete deletes a node
	Delete(ctx context.Context, id string) error

	// Move reparents and/or reorders a node. Reparenting onto the node
	// itself or one of its descendants fails with a validation error.
	Move(ctx context.Context, nodeID string, newParentID *string, newSortOrder *int) (*entities.PathwayNode, error)

	// CopyTree deep-copies every node of srcPathwayID into dstPathwayID,
	// regenerating ids while preserving tree shape and sort order
	CopyTree(ctx context.Context, srcPathwayID, dstPathwayID string) error
}

// OutcomeRepository defines the interface for node outcome data operations
type OutcomeRepository interface {
	// Create creates a new outcome
	Create(ctx context.Context, outcome *entities.PathwayNodeOutcome) error

	// GetByID retrieves an outcome by ID
	GetByID(ctx context.Context, id string) (*entities.PathwayNodeOutcome, error)

	// ListByNode retrieves all outcomes recorded against a node
	ListByNode(ctx context.Context, nodeID string) ([]*entities.PathwayNodeOutcome, error)

	// Update updates an outcome
	Update(ctx context.Context, outcome *entities.PathwayNodeOutcome) error

	// Delete deletes an outcome
	Delete(ctx context.Context, id string) error
}
