package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/postgres"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// maxAncestorWalk bounds the parent-chain walk during cycle checks so a
// corrupted parent graph cannot loop forever
const maxAncestorWalk = 256

// PathwayNodeAdapter implements PathwayNodeRepository
type PathwayNodeAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPathwayNodeAdapter creates a new pathway node adapter
func NewPathwayNodeAdapter(client *postgres.Client) repositories.PathwayNodeRepository {
	return &PathwayNodeAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var nodeColumns = []interface{}{
	"id", "pathway_id", "parent_node_id", "node_type", "title", "description",
	"action_type", "decision_factors", "suggested_template_id", "sort_order",
	"base_confidence", "is_active", "created_at", "updated_at",
}

// Create creates a new node
func (a *PathwayNodeAdapter) Create(ctx context.Context, node *entities.PathwayNode) error {
	query, args, err := a.db.Insert("pathway_nodes").Rows(nodeRecord(node, true)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateWriteError(err, "pathway node")
	}

	return nil
}

func nodeRecord(node *entities.PathwayNode, includeID bool) goqu.Record {
	var parentID sql.NullString
	if node.ParentNodeID != nil {
		parentID = sql.NullString{String: *node.ParentNodeID, Valid: true}
	}
	var actionType sql.NullString
	if node.ActionType != nil {
		actionType = sql.NullString{String: node.ActionType.String(), Valid: true}
	}
	var templateID sql.NullString
	if node.SuggestedTemplateID != nil {
		templateID = sql.NullString{String: *node.SuggestedTemplateID, Valid: true}
	}

	record := goqu.Record{
		"pathway_id":            node.PathwayID,
		"parent_node_id":        parentID,
		"node_type":             node.NodeType.String(),
		"title":                 node.Title,
		"description":           sql.NullString{String: node.Description, Valid: node.Description != ""},
		"action_type":           actionType,
		"decision_factors":      pq.Array(node.DecisionFactors),
		"suggested_template_id": templateID,
		"sort_order":            node.SortOrder,
		"base_confidence":       node.BaseConfidence,
		"is_active":             node.IsActive,
		"updated_at":            node.UpdatedAt,
	}
	if includeID {
		record["id"] = node.ID
		record["created_at"] = node.CreatedAt
	}
	return record
}

// GetByID retrieves a node by ID
func (a *PathwayNodeAdapter) GetByID(ctx context.Context, id string) (*entities.PathwayNode, error) {
	query, args, err := a.db.Select(nodeColumns...).
		From("pathway_nodes").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	node, err := scanNode(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("node with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get node", err)
	}

	return node, nil
}

// GetByIDs retrieves multiple nodes by their IDs
func (a *PathwayNodeAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.PathwayNode, error) {
	if len(ids) == 0 {
		return []*entities.PathwayNode{}, nil
	}

	query, args, err := a.db.Select(nodeColumns...).
		From("pathway_nodes").
		Where(goqu.Ex{"id": ids}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryNodes(ctx, query, args...)
}

// GetRootNode retrieves the single node with a null parent for the pathway
func (a *PathwayNodeAdapter) GetRootNode(ctx context.Context, pathwayID string) (*entities.PathwayNode, error) {
	query, args, err := a.db.Select(nodeColumns...).
		From("pathway_nodes").
		Where(goqu.Ex{"pathway_id": pathwayID, "parent_node_id": nil}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	node, err := scanNode(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("pathway %s has no root node", pathwayID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get root node", err)
	}

	return node, nil
}

// GetChildren retrieves a node's direct children ordered by sort order
func (a *PathwayNodeAdapter) GetChildren(ctx context.Context, nodeID string) ([]*entities.PathwayNode, error) {
	query, args, err := a.db.Select(nodeColumns...).
		From("pathway_nodes").
		Where(goqu.Ex{"parent_node_id": nodeID}).
		Order(goqu.I("sort_order").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryNodes(ctx, query, args...)
}

// ListByPathway retrieves every node of a pathway as a flat list
func (a *PathwayNodeAdapter) ListByPathway(ctx context.Context, pathwayID string) ([]*entities.PathwayNode, error) {
	query, args, err := a.db.Select(nodeColumns...).
		From("pathway_nodes").
		Where(goqu.Ex{"pathway_id": pathwayID}).
		Order(goqu.I("sort_order").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryNodes(ctx, query, args...)
}

// Update updates a node in place
func (a *PathwayNodeAdapter) Update(ctx context.Context, node *entities.PathwayNode) error {
	node.UpdatedAt = time.Now()

	query, args, err := a.db.Update("pathway_nodes").
		Set(nodeRecord(node, false)).
		Where(goqu.Ex{"id": node.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateWriteError(err, "pathway node")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("node with id %s not found", node.ID))
	}

	return nil
}

// Delete deletes a node
func (a *PathwayNodeAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("pathway_nodes").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete node", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("node with id %s not found", id))
	}

	return nil
}

// Move reparents and/or reorders a node. Before reparenting, the new
// parent's ancestor chain is walked up to the root; if the moved node
// appears on it the move would create a cycle and is rejected.
func (a *PathwayNodeAdapter) Move(ctx context.Context, nodeID string, newParentID *string, newSortOrder *int) (*entities.PathwayNode, error) {
	node, err := a.GetByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	record := goqu.Record{"updated_at": time.Now()}

	if newParentID != nil {
		if *newParentID == nodeID {
			return nil, apperrors.NewValidationError("cannot move a node under itself")
		}

		parent, err := a.GetByID(ctx, *newParentID)
		if err != nil {
			return nil, err
		}
		if parent.PathwayID != node.PathwayID {
			return nil, apperrors.NewValidationError("cannot move a node to a different pathway")
		}

		if err := a.checkForCycle(ctx, nodeID, parent); err != nil {
			return nil, err
		}

		record["parent_node_id"] = sql.NullString{String: *newParentID, Valid: true}
	}

	if newSortOrder != nil {
		record["sort_order"] = *newSortOrder
	}

	query, args, err := a.db.Update("pathway_nodes").
		Set(record).
		Where(goqu.Ex{"id": nodeID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build move query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return nil, translateWriteError(err, "pathway node")
	}

	return a.GetByID(ctx, nodeID)
}

// checkForCycle walks the candidate parent's ancestors looking for the
// moved node
func (a *PathwayNodeAdapter) checkForCycle(ctx context.Context, nodeID string, parent *entities.PathwayNode) error {
	seen := map[string]bool{parent.ID: true}
	current := parent

	for i := 0; i < maxAncestorWalk; i++ {
		if current.ParentNodeID == nil {
			return nil
		}
		ancestorID := *current.ParentNodeID
		if ancestorID == nodeID {
			return apperrors.NewValidationError("cannot move a node under its own descendant")
		}
		if seen[ancestorID] {
			return apperrors.NewValidationError("pathway node parent chain contains a cycle")
		}
		seen[ancestorID] = true

		ancestor, err := a.GetByID(ctx, ancestorID)
		if err != nil {
			return err
		}
		current = ancestor
	}

	return apperrors.NewValidationError("pathway node parent chain exceeds maximum depth")
}

// CopyTree deep-copies all nodes of srcPathwayID into dstPathwayID. Nodes are
// written parents-first so each copy can reference its already-copied parent.
func (a *PathwayNodeAdapter) CopyTree(ctx context.Context, srcPathwayID, dstPathwayID string) error {
	nodes, err := a.ListByPathway(ctx, srcPathwayID)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		return nil
	}

	idMap := make(map[string]string, len(nodes))
	for _, n := range nodes {
		idMap[n.ID] = uuid.New().String()
	}

	childrenOf := make(map[string][]*entities.PathwayNode)
	var roots []*entities.PathwayNode
	for _, n := range nodes {
		if n.ParentNodeID == nil {
			roots = append(roots, n)
		} else {
			childrenOf[*n.ParentNodeID] = append(childrenOf[*n.ParentNodeID], n)
		}
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	now := time.Now()
	queue := append([]*entities.PathwayNode{}, roots...)
	copied := 0

	for len(queue) > 0 {
		src := queue[0]
		queue = queue[1:]

		dup := *src
		dup.ID = idMap[src.ID]
		dup.PathwayID = dstPathwayID
		dup.CreatedAt = now
		dup.UpdatedAt = now
		if src.ParentNodeID != nil {
			mapped := idMap[*src.ParentNodeID]
			dup.ParentNodeID = &mapped
		}

		query, args, err := a.db.Insert("pathway_nodes").Rows(nodeRecord(&dup, true)).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build copy query", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return translateWriteError(err, "pathway node")
		}
		copied++

		queue = append(queue, childrenOf[src.ID]...)
	}

	if copied != len(nodes) {
		// Orphaned nodes are unreachable from any root; copying them would
		// silently carry corruption into the duplicate.
		return apperrors.NewValidationError(fmt.Sprintf(
			"pathway %s has %d nodes unreachable from its root", srcPathwayID, len(nodes)-copied,
		))
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit tree copy", err)
	}

	return nil
}

func (a *PathwayNodeAdapter) queryNodes(ctx context.Context, query string, args ...interface{}) ([]*entities.PathwayNode, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query nodes", err)
	}
	defer rows.Close()

	var nodes []*entities.PathwayNode
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan node", err)
		}
		nodes = append(nodes, node)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating nodes", err)
	}

	return nodes, nil
}

func scanNode(row rowScanner) (*entities.PathwayNode, error) {
	node := &entities.PathwayNode{}
	var parentID, description, actionType, templateID sql.NullString

	err := row.Scan(
		&node.ID,
		&node.PathwayID,
		&parentID,
		&node.NodeType,
		&node.Title,
		&description,
		&actionType,
		pq.Array(&node.DecisionFactors),
		&templateID,
		&node.SortOrder,
		&node.BaseConfidence,
		&node.IsActive,
		&node.CreatedAt,
		&node.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	node.Description = description.String
	if parentID.Valid {
		node.ParentNodeID = &parentID.String
	}
	if actionType.Valid {
		at, err := entities.ParseActionType(actionType.String)
		if err != nil {
			return nil, err
		}
		node.ActionType = &at
	}
	if templateID.Valid {
		node.SuggestedTemplateID = &templateID.String
	}

	return node, nil
}
