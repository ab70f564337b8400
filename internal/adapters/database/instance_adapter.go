package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/postgres"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// InstanceAdapter implements InstanceRepository
type InstanceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewInstanceAdapter creates a new instance adapter
func NewInstanceAdapter(client *postgres.Client) repositories.InstanceRepository {
	return &InstanceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var instanceColumns = []interface{}{
	"id", "patient_id", "pathway_id", "provider_id", "patient_context",
	"ml_model_id", "status", "started_at", "completed_at", "abandoned_at",
}

// Create creates a new instance in the STARTED state
func (a *InstanceAdapter) Create(ctx context.Context, instance *entities.PatientPathwayInstance) error {
	var contextJSON []byte
	if instance.PatientContext != nil {
		var err error
		contextJSON, err = json.Marshal(instance.PatientContext)
		if err != nil {
			return apperrors.NewInternalError("failed to marshal patient context", err)
		}
	}

	var mlModelID sql.NullString
	if instance.MLModelID != nil {
		mlModelID = sql.NullString{String: *instance.MLModelID, Valid: true}
	}

	record := goqu.Record{
		"id":              instance.ID,
		"patient_id":      instance.PatientID,
		"pathway_id":      instance.PathwayID,
		"provider_id":     instance.ProviderID,
		"patient_context": contextJSON,
		"ml_model_id":     mlModelID,
		"status":          instance.Status.String(),
		"started_at":      instance.StartedAt,
	}

	query, args, err := a.db.Insert("patient_pathway_instances").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateWriteError(err, "pathway instance")
	}

	return nil
}

// GetByID retrieves an instance by ID
func (a *InstanceAdapter) GetByID(ctx context.Context, id string) (*entities.PatientPathwayInstance, error) {
	query, args, err := a.db.Select(instanceColumns...).
		From("patient_pathway_instances").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	instance, err := scanInstance(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("instance with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get instance", err)
	}

	return instance, nil
}

// ListByPatient retrieves a patient's instances, most recent first
func (a *InstanceAdapter) ListByPatient(ctx context.Context, patientID string) ([]*entities.PatientPathwayInstance, error) {
	query, args, err := a.db.Select(instanceColumns...).
		From("patient_pathway_instances").
		Where(goqu.Ex{"patient_id": patientID}).
		Order(goqu.I("started_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list instances", err)
	}
	defer rows.Close()

	var instances []*entities.PatientPathwayInstance
	for rows.Next() {
		instance, err := scanInstance(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan instance", err)
		}
		instances = append(instances, instance)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating instances", err)
	}

	return instances, nil
}

// Complete transitions a STARTED instance to COMPLETED
func (a *InstanceAdapter) Complete(ctx context.Context, id string, at time.Time) (*entities.PatientPathwayInstance, error) {
	return a.terminate(ctx, id, entities.InstanceCompleted, "completed_at", at)
}

// Abandon transitions a STARTED instance to ABANDONED
func (a *InstanceAdapter) Abandon(ctx context.Context, id string, at time.Time) (*entities.PatientPathwayInstance, error) {
	return a.terminate(ctx, id, entities.InstanceAbandoned, "abandoned_at", at)
}

// terminate performs a guarded terminal transition. The WHERE clause only
// matches STARTED rows, so a zero-row update is re-read to tell an
// already-terminal instance (conflict) apart from a missing one (not found).
func (a *InstanceAdapter) terminate(ctx context.Context, id string, status entities.InstanceStatus, tsColumn string, at time.Time) (*entities.PatientPathwayInstance, error) {
	query, args, err := a.db.Update("patient_pathway_instances").
		Set(goqu.Record{
			"status":  status.String(),
			tsColumn: at,
		}).
		Where(goqu.Ex{
			"id":     id,
			"status": entities.InstanceStarted.String(),
		}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build transition query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to transition instance", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		existing, err := a.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, apperrors.NewConflictError(fmt.Sprintf(
			"instance %s is already %s", id, existing.Status,
		))
	}

	return a.GetByID(ctx, id)
}

// GetUsageStats aggregates instance counts for a pathway
func (a *InstanceAdapter) GetUsageStats(ctx context.Context, pathwayID string) (*entities.PathwayUsageStats, error) {
	query, args, err := a.db.From("patient_pathway_instances").
		Select(
			goqu.COUNT("*").As("total"),
			goqu.L("COUNT(*) FILTER (WHERE status = ?)", entities.InstanceCompleted.String()).As("completed"),
			goqu.L("COUNT(*) FILTER (WHERE status = ?)", entities.InstanceAbandoned.String()).As("abandoned"),
			goqu.L("COUNT(*) FILTER (WHERE status = ?)", entities.InstanceStarted.String()).As("active"),
		).
		Where(goqu.Ex{"pathway_id": pathwayID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build stats query", err)
	}

	stats := &entities.PathwayUsageStats{PathwayID: pathwayID}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalInstances,
		&stats.Completed,
		&stats.Abandoned,
		&stats.Active,
	)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get usage stats", err)
	}

	if stats.TotalInstances > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.TotalInstances)
	}

	return stats, nil
}

func scanInstance(row rowScanner) (*entities.PatientPathwayInstance, error) {
	instance := &entities.PatientPathwayInstance{}
	var contextJSON []byte
	var mlModelID sql.NullString
	var completedAt, abandonedAt sql.NullTime

	err := row.Scan(
		&instance.ID,
		&instance.PatientID,
		&instance.PathwayID,
		&instance.ProviderID,
		&contextJSON,
		&mlModelID,
		&instance.Status,
		&instance.StartedAt,
		&completedAt,
		&abandonedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(contextJSON) > 0 {
		patientCtx := &entities.PatientContext{}
		if err := json.Unmarshal(contextJSON, patientCtx); err != nil {
			return nil, fmt.Errorf("failed to unmarshal patient context: %w", err)
		}
		instance.PatientContext = patientCtx
	}
	if mlModelID.Valid {
		instance.MLModelID = &mlModelID.String
	}
	if completedAt.Valid {
		instance.CompletedAt = &completedAt.Time
	}
	if abandonedAt.Valid {
		instance.AbandonedAt = &abandonedAt.Time
	}

	return instance, nil
}

// SelectionAdapter implements SelectionRepository
type SelectionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSelectionAdapter creates a new selection adapter
func NewSelectionAdapter(client *postgres.Client) repositories.SelectionRepository {
	return &SelectionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var selectionColumns = []interface{}{
	"id", "instance_id", "node_id", "selection_type", "override_reason",
	"resulting_care_plan_id", "created_by", "created_at",
}

// Create appends a selection row
func (a *SelectionAdapter) Create(ctx context.Context, selection *entities.PatientPathwaySelection) error {
	var overrideReason, carePlanID sql.NullString
	if selection.OverrideReason != nil {
		overrideReason = sql.NullString{String: *selection.OverrideReason, Valid: true}
	}
	if selection.ResultingCarePlanID != nil {
		carePlanID = sql.NullString{String: *selection.ResultingCarePlanID, Valid: true}
	}

	record := goqu.Record{
		"id":                     selection.ID,
		"instance_id":            selection.InstanceID,
		"node_id":                selection.NodeID,
		"selection_type":         selection.SelectionType.String(),
		"override_reason":        overrideReason,
		"resulting_care_plan_id": carePlanID,
		"created_by":             selection.CreatedBy,
		"created_at":             selection.CreatedAt,
	}

	query, args, err := a.db.Insert("patient_pathway_selections").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateWriteError(err, "pathway selection")
	}

	return nil
}

// GetByID retrieves a selection by ID
func (a *SelectionAdapter) GetByID(ctx context.Context, id string) (*entities.PatientPathwaySelection, error) {
	query, args, err := a.db.Select(selectionColumns...).
		From("patient_pathway_selections").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	selection, err := scanSelection(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("selection with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get selection", err)
	}

	return selection, nil
}

// ListByInstance retrieves an instance's selections in creation order
func (a *SelectionAdapter) ListByInstance(ctx context.Context, instanceID string) ([]*entities.PatientPathwaySelection, error) {
	query, args, err := a.db.Select(selectionColumns...).
		From("patient_pathway_selections").
		Where(goqu.Ex{"instance_id": instanceID}).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list selections", err)
	}
	defer rows.Close()

	var selections []*entities.PatientPathwaySelection
	for rows.Next() {
		selection, err := scanSelection(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan selection", err)
		}
		selections = append(selections, selection)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating selections", err)
	}

	return selections, nil
}

// LinkToCarePlan sets the resulting care plan id. Last write wins: a repeat
// call with a different care plan id overwrites the earlier link.
func (a *SelectionAdapter) LinkToCarePlan(ctx context.Context, selectionID, carePlanID string) (*entities.PatientPathwaySelection, error) {
	query, args, err := a.db.Update("patient_pathway_selections").
		Set(goqu.Record{"resulting_care_plan_id": carePlanID}).
		Where(goqu.Ex{"id": selectionID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build link query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to link selection", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("selection with id %s not found", selectionID))
	}

	return a.GetByID(ctx, selectionID)
}

// GetSelectionStats aggregates selection counts for a node
func (a *SelectionAdapter) GetSelectionStats(ctx context.Context, nodeID string) (*entities.NodeSelectionStats, error) {
	query, args, err := a.db.From("patient_pathway_selections").
		Select(
			goqu.COUNT("*").As("total"),
			goqu.L("COUNT(*) FILTER (WHERE selection_type = ?)", entities.SelectionMLRecommended.String()).As("ml_recommended"),
			goqu.L("COUNT(*) FILTER (WHERE selection_type = ?)", entities.SelectionProviderSelected.String()).As("provider_selected"),
			goqu.L("COUNT(*) FILTER (WHERE selection_type = ?)", entities.SelectionAutoApplied.String()).As("auto_applied"),
			goqu.L("COUNT(override_reason)").As("overrides"),
		).
		Where(goqu.Ex{"node_id": nodeID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build stats query", err)
	}

	stats := &entities.NodeSelectionStats{NodeID: nodeID}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalSelections,
		&stats.MLRecommended,
		&stats.ProviderSelected,
		&stats.AutoApplied,
		&stats.OverrideCount,
	)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get selection stats", err)
	}

	return stats, nil
}

func scanSelection(row rowScanner) (*entities.PatientPathwaySelection, error) {
	selection := &entities.PatientPathwaySelection{}
	var overrideReason, carePlanID sql.NullString

	err := row.Scan(
		&selection.ID,
		&selection.InstanceID,
		&selection.NodeID,
		&selection.SelectionType,
		&overrideReason,
		&carePlanID,
		&selection.CreatedBy,
		&selection.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if overrideReason.Valid {
		selection.OverrideReason = &overrideReason.String
	}
	if carePlanID.Valid {
		selection.ResultingCarePlanID = &carePlanID.String
	}

	return selection, nil
}
