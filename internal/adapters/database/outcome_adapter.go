package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/postgres"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// OutcomeAdapter implements OutcomeRepository
type OutcomeAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewOutcomeAdapter creates a new outcome adapter
func NewOutcomeAdapter(client *postgres.Client) repositories.OutcomeRepository {
	return &OutcomeAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var outcomeColumns = []interface{}{
	"id", "node_id", "outcome_type", "description", "observed_at",
	"recorded_by", "created_at", "updated_at",
}

// Create creates a new outcome
func (a *OutcomeAdapter) Create(ctx context.Context, outcome *entities.PathwayNodeOutcome) error {
	record := goqu.Record{
		"id":           outcome.ID,
		"node_id":      outcome.NodeID,
		"outcome_type": outcome.OutcomeType,
		"description":  sql.NullString{String: outcome.Description, Valid: outcome.Description != ""},
		"observed_at":  outcome.ObservedAt,
		"recorded_by":  outcome.RecordedBy,
		"created_at":   outcome.CreatedAt,
		"updated_at":   outcome.UpdatedAt,
	}

	query, args, err := a.db.Insert("pathway_node_outcomes").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateWriteError(err, "node outcome")
	}

	return nil
}

// GetByID retrieves an outcome by ID
func (a *OutcomeAdapter) GetByID(ctx context.Context, id string) (*entities.PathwayNodeOutcome, error) {
	query, args, err := a.db.Select(outcomeColumns...).
		From("pathway_node_outcomes").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	outcome, err := scanOutcome(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("outcome with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get outcome", err)
	}

	return outcome, nil
}

// ListByNode retrieves all outcomes recorded against a node
func (a *OutcomeAdapter) ListByNode(ctx context.Context, nodeID string) ([]*entities.PathwayNodeOutcome, error) {
	query, args, err := a.db.Select(outcomeColumns...).
		From("pathway_node_outcomes").
		Where(goqu.Ex{"node_id": nodeID}).
		Order(goqu.I("observed_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list outcomes", err)
	}
	defer rows.Close()

	var outcomes []*entities.PathwayNodeOutcome
	for rows.Next() {
		outcome, err := scanOutcome(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan outcome", err)
		}
		outcomes = append(outcomes, outcome)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating outcomes", err)
	}

	return outcomes, nil
}

// Update updates an outcome
func (a *OutcomeAdapter) Update(ctx context.Context, outcome *entities.PathwayNodeOutcome) error {
	outcome.UpdatedAt = time.Now()

	query, args, err := a.db.Update("pathway_node_outcomes").
		Set(goqu.Record{
			"outcome_type": outcome.OutcomeType,
			"description":  sql.NullString{String: outcome.Description, Valid: outcome.Description != ""},
			"observed_at":  outcome.ObservedAt,
			"updated_at":   outcome.UpdatedAt,
		}).
		Where(goqu.Ex{"id": outcome.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update outcome", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("outcome with id %s not found", outcome.ID))
	}

	return nil
}

// Delete deletes an outcome
func (a *OutcomeAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("pathway_node_outcomes").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete outcome", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("outcome with id %s not found", id))
	}

	return nil
}

func scanOutcome(row rowScanner) (*entities.PathwayNodeOutcome, error) {
	outcome := &entities.PathwayNodeOutcome{}
	var description sql.NullString

	err := row.Scan(
		&outcome.ID,
		&outcome.NodeID,
		&outcome.OutcomeType,
		&description,
		&outcome.ObservedAt,
		&outcome.RecordedBy,
		&outcome.CreatedAt,
		&outcome.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	outcome.Description = description.String
	return outcome, nil
}
