package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/postgres"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// PathwayAdapter implements PathwayRepository
type PathwayAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPathwayAdapter creates a new pathway adapter
func NewPathwayAdapter(client *postgres.Client) repositories.PathwayRepository {
	return &PathwayAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var pathwayColumns = []interface{}{
	"id", "name", "slug", "description", "condition_codes", "version_label",
	"evidence_source", "evidence_grade", "is_active", "is_published",
	"version", "created_by", "created_at", "updated_at",
}

// Create creates a new pathway
func (a *PathwayAdapter) Create(ctx context.Context, pathway *entities.ClinicalPathway) error {
	record := goqu.Record{
		"id":              pathway.ID,
		"name":            pathway.Name,
		"slug":            pathway.Slug,
		"description":     sql.NullString{String: pathway.Description, Valid: pathway.Description != ""},
		"condition_codes": pq.Array(pathway.ConditionCodes),
		"version_label":   pathway.VersionLabel,
		"evidence_source": sql.NullString{String: pathway.EvidenceSource, Valid: pathway.EvidenceSource != ""},
		"evidence_grade":  sql.NullString{String: pathway.EvidenceGrade, Valid: pathway.EvidenceGrade != ""},
		"is_active":       pathway.IsActive,
		"is_published":    pathway.IsPublished,
		"version":         pathway.Version,
		"created_by":      pathway.CreatedBy,
		"created_at":      pathway.CreatedAt,
		"updated_at":      pathway.UpdatedAt,
	}

	query, args, err := a.db.Insert("clinical_pathways").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateWriteError(err, "pathway")
	}

	return nil
}

// GetByID retrieves a pathway by ID
func (a *PathwayAdapter) GetByID(ctx context.Context, id string) (*entities.ClinicalPathway, error) {
	return a.getByField(ctx, "id", id)
}

// GetBySlug retrieves a pathway by slug
func (a *PathwayAdapter) GetBySlug(ctx context.Context, slug string) (*entities.ClinicalPathway, error) {
	return a.getByField(ctx, "slug", slug)
}

func (a *PathwayAdapter) getByField(ctx context.Context, field, value string) (*entities.ClinicalPathway, error) {
	query, args, err := a.db.Select(pathwayColumns...).
		From("clinical_pathways").
		Where(goqu.Ex{field: value}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	pathway, err := scanPathway(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("pathway with %s %s not found", field, value))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get pathway", err)
	}

	return pathway, nil
}

// GetByIDs retrieves multiple pathways by their IDs
func (a *PathwayAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.ClinicalPathway, error) {
	if len(ids) == 0 {
		return []*entities.ClinicalPathway{}, nil
	}

	query, args, err := a.db.Select(pathwayColumns...).
		From("clinical_pathways").
		Where(goqu.Ex{"id": ids}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryPathways(ctx, query, args...)
}

// List retrieves pathways matching the filter with stable cursor pagination.
// Rows are ordered by (name, id) so the cursor predicate pages through
// duplicate names without repeating or skipping rows.
func (a *PathwayAdapter) List(ctx context.Context, filter repositories.PathwayFilter) (*repositories.PathwayPage, error) {
	base := a.db.From("clinical_pathways")

	if filter.IsActive != nil {
		base = base.Where(goqu.Ex{"is_active": *filter.IsActive})
	}
	if filter.IsPublished != nil {
		base = base.Where(goqu.Ex{"is_published": *filter.IsPublished})
	}
	if filter.ConditionCode != "" {
		base = base.Where(goqu.L("? = ANY(condition_codes)", filter.ConditionCode))
	}

	countSQL, countArgs, err := base.Select(goqu.COUNT("*")).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build count query", err)
	}

	var totalCount int
	if err := a.client.DB().QueryRowContext(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, apperrors.NewInternalError("failed to count pathways", err)
	}

	ds := base.Select(pathwayColumns...)

	if filter.After != "" {
		curName, curID, err := repositories.DecodeCursor(filter.After)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		ds = ds.Where(goqu.L("(name, id) > (?, ?)", curName, curID))
	}

	ds = ds.Order(goqu.I("name").Asc(), goqu.I("id").Asc())

	limit := filter.First
	if limit <= 0 {
		limit = defaultPageSize
	}
	// Fetch one extra row to detect whether a next page exists
	ds = ds.Limit(uint(limit) + 1)

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	pathways, err := a.queryPathways(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	hasNextPage := false
	if len(pathways) > limit {
		hasNextPage = true
		pathways = pathways[:limit]
	}

	return &repositories.PathwayPage{
		Items:           pathways,
		TotalCount:      totalCount,
		HasNextPage:     hasNextPage,
		HasPreviousPage: filter.After != "",
	}, nil
}

const defaultPageSize = 20

// Update writes the pathway row and increments the version counter. When
// expectedVersion is set, a stale version fails with a conflict instead of
// silently overwriting a concurrent edit.
func (a *PathwayAdapter) Update(ctx context.Context, pathway *entities.ClinicalPathway, expectedVersion *int) error {
	pathway.UpdatedAt = time.Now()

	record := goqu.Record{
		"name":            pathway.Name,
		"slug":            pathway.Slug,
		"description":     sql.NullString{String: pathway.Description, Valid: pathway.Description != ""},
		"condition_codes": pq.Array(pathway.ConditionCodes),
		"version_label":   pathway.VersionLabel,
		"evidence_source": sql.NullString{String: pathway.EvidenceSource, Valid: pathway.EvidenceSource != ""},
		"evidence_grade":  sql.NullString{String: pathway.EvidenceGrade, Valid: pathway.EvidenceGrade != ""},
		"is_active":       pathway.IsActive,
		"version":         goqu.L("version + 1"),
		"updated_at":      pathway.UpdatedAt,
	}

	ds := a.db.Update("clinical_pathways").
		Set(record).
		Where(goqu.Ex{"id": pathway.ID})

	if expectedVersion != nil {
		ds = ds.Where(goqu.Ex{"version": *expectedVersion})
	}

	query, args, err := ds.Returning("version").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&pathway.Version)
	if err == sql.ErrNoRows {
		return a.classifyMissedUpdate(ctx, pathway.ID, expectedVersion)
	}
	if err != nil {
		return translateWriteError(err, "pathway")
	}

	return nil
}

// classifyMissedUpdate distinguishes "row gone" from "version mismatch" after
// a guarded update touched zero rows
func (a *PathwayAdapter) classifyMissedUpdate(ctx context.Context, id string, expectedVersion *int) error {
	if expectedVersion == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("pathway with id %s not found", id))
	}

	current, err := a.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return apperrors.NewConflictError(fmt.Sprintf(
		"pathway %s was modified concurrently (expected version %d, current %d)",
		id, *expectedVersion, current.Version,
	))
}

// Delete deletes a pathway and its nodes
func (a *PathwayAdapter) Delete(ctx context.Context, id string) error {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	nodeSQL, nodeArgs, err := a.db.Delete("pathway_nodes").
		Where(goqu.Ex{"pathway_id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build node delete query", err)
	}
	if _, err := tx.ExecContext(ctx, nodeSQL, nodeArgs...); err != nil {
		return apperrors.NewInternalError("failed to delete pathway nodes", err)
	}

	query, args, err := a.db.Delete("clinical_pathways").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete pathway", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("pathway with id %s not found", id))
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit pathway delete", err)
	}

	return nil
}

// SetPublished toggles the published flag and returns the updated pathway
func (a *PathwayAdapter) SetPublished(ctx context.Context, id string, published bool) (*entities.ClinicalPathway, error) {
	query, args, err := a.db.Update("clinical_pathways").
		Set(goqu.Record{
			"is_published": published,
			"updated_at":   time.Now(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build publish query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update publish state", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("pathway with id %s not found", id))
	}

	return a.GetByID(ctx, id)
}

func (a *PathwayAdapter) queryPathways(ctx context.Context, query string, args ...interface{}) ([]*entities.ClinicalPathway, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query pathways", err)
	}
	defer rows.Close()

	var pathways []*entities.ClinicalPathway
	for rows.Next() {
		pathway, err := scanPathway(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan pathway", err)
		}
		pathways = append(pathways, pathway)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating pathways", err)
	}

	return pathways, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPathway(row rowScanner) (*entities.ClinicalPathway, error) {
	pathway := &entities.ClinicalPathway{}
	var description, evidenceSource, evidenceGrade sql.NullString

	err := row.Scan(
		&pathway.ID,
		&pathway.Name,
		&pathway.Slug,
		&description,
		pq.Array(&pathway.ConditionCodes),
		&pathway.VersionLabel,
		&evidenceSource,
		&evidenceGrade,
		&pathway.IsActive,
		&pathway.IsPublished,
		&pathway.Version,
		&pathway.CreatedBy,
		&pathway.CreatedAt,
		&pathway.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	pathway.Description = description.String
	pathway.EvidenceSource = evidenceSource.String
	pathway.EvidenceGrade = evidenceGrade.String

	return pathway, nil
}
