package repositories

import (
	"context"
	"time"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
)

// InstanceRepository defines the interface for patient pathway instance
// data operations
type InstanceRepository interface {
	// Create creates a new instance in the STARTED state
	Create(ctx context.Context, instance *entities.PatientPathwayInstance) error

	// GetByID retrieves an instance by ID
	GetByID(ctx context.Context, id string) (*entities.PatientPathwayInstance, error)

	// ListByPatient retrieves a patient's instances, most recent first
	ListByPatient(ctx context.Context, patientID string) ([]*entities.PatientPathwayInstance, error)

	// Complete transitions a STARTED instance to COMPLETED. An instance that
	// is already terminal fails with a conflict error; a missing one with a
	// not found error.
	Complete(ctx context.Context, id string, at time.Time) (*entities.PatientPathwayInstance, error)

	// Abandon transitions a STARTED instance to ABANDONED, same error
	// contract as Complete
	Abandon(ctx context.Context, id string, at time.Time) (*entities.PatientPathwayInstance, error)

	// GetUsageStats aggregates instance counts for a pathway
	GetUsageStats(ctx context.Context, pathwayID string) (*entities.PathwayUsageStats, error)
}

// SelectionRepository defines the interface for pathway selection
// data operations
type SelectionRepository interface {
	// Create appends a selection row
	Create(ctx context.Context, selection *entities.PatientPathwaySelection) error

	// GetByID retrieves a selection by ID
	GetByID(ctx context.Context, id string) (*entities.PatientPathwaySelection, error)

	// ListByInstance retrieves an instance's selections in creation order
	ListByInstance(ctx context.Context, instanceID string) ([]*entities.PatientPathwaySelection, error)

	// LinkToCarePlan sets the resulting care plan id on a selection.
	// Repeat calls overwrite (last write wins).
	LinkToCarePlan(ctx context.Context, selectionID, carePlanID string) (*entities.PatientPathwaySelection, error)

	// GetSelectionStats aggregates selection counts for a node
	GetSelectionStats(ctx context.Context, nodeID string) (*entities.NodeSelectionStats, error)
}
