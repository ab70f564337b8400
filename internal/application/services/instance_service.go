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

// InstanceService tracks patients' traversals through pathways and the node
// selections made along the way
type InstanceService struct {
	pathwayRepo   repositories.PathwayRepository
	nodeRepo      repositories.PathwayNodeRepository
	instanceRepo  repositories.InstanceRepository
	selectionRepo repositories.SelectionRepository
}

// NewInstanceService creates a new instance service
func NewInstanceService(
	pathwayRepo repositories.PathwayRepository,
	nodeRepo repositories.PathwayNodeRepository,
	instanceRepo repositories.InstanceRepository,
	selectionRepo repositories.SelectionRepository,
) *InstanceService {
	return &InstanceService{
		pathwayRepo:   pathwayRepo,
		nodeRepo:      nodeRepo,
		instanceRepo:  instanceRepo,
		selectionRepo: selectionRepo,
	}
}

// Start begins a patient's traversal of a pathway, snapshotting the patient
// context as known at start time
func (s *InstanceService) Start(ctx context.Context, patientID, pathwayID, providerID string, patientCtx *entities.PatientContext, mlModelID *string) (*entities.PatientPathwayInstance, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, apperrors.NewValidationError("patient id is required")
	}

	if _, err := s.pathwayRepo.GetByID(ctx, pathwayID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidationError("pathway does not exist")
		}
		return nil, err
	}

	instance := &entities.PatientPathwayInstance{
		ID:             uuid.New().String(),
		PatientID:      patientID,
		PathwayID:      pathwayID,
		ProviderID:     providerID,
		PatientContext: patientCtx,
		MLModelID:      mlModelID,
		Status:         entities.InstanceStarted,
		StartedAt:      time.Now().UTC(),
	}

	if err := s.instanceRepo.Create(ctx, instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// GetByID retrieves an instance by ID
func (s *InstanceService) GetByID(ctx context.Context, id string) (*entities.PatientPathwayInstance, error) {
	return s.instanceRepo.GetByID(ctx, id)
}

// ListByPatient retrieves a patient's instances, most recent first
func (s *InstanceService) ListByPatient(ctx context.Context, patientID string) ([]*entities.PatientPathwayInstance, error) {
	return s.instanceRepo.ListByPatient(ctx, patientID)
}

// RecordSelection records that a node was chosen within an instance. The node
// must belong to the instance's pathway.
func (s *InstanceService) RecordSelection(ctx context.Context, selection *entities.PatientPathwaySelection) (*entities.PatientPathwaySelection, error) {
	instance, err := s.instanceRepo.GetByID(ctx, selection.InstanceID)
	if err != nil {
		return nil, err
	}

	node, err := s.nodeRepo.GetByID(ctx, selection.NodeID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidationError("selected node does not exist")
		}
		return nil, err
	}
	if node.PathwayID != instance.PathwayID {
		return nil, apperrors.NewValidationError("selected node does not belong to the instance's pathway")
	}

	if selection.ID == "" {
		selection.ID = uuid.New().String()
	}
	selection.CreatedAt = time.Now().UTC()
	if err := s.selectionRepo.Create(ctx, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// ListSelections retrieves an instance's selections in creation order
func (s *InstanceService) ListSelections(ctx context.Context, instanceID string) ([]*entities.PatientPathwaySelection, error) {
	return s.selectionRepo.ListByInstance(ctx, instanceID)
}

// Complete marks a started instance as completed
func (s *InstanceService) Complete(ctx context.Context, id string) (*entities.PatientPathwayInstance, error) {
	return s.instanceRepo.Complete(ctx, id, time.Now().UTC())
}

// Abandon marks a started instance as abandoned
func (s *InstanceService) Abandon(ctx context.Context, id string) (*entities.PatientPathwayInstance, error) {
	return s.instanceRepo.Abandon(ctx, id, time.Now().UTC())
}

// LinkToCarePlan attaches the resulting care plan to a selection. Repeat
// calls overwrite the previous link.
func (s *InstanceService) LinkToCarePlan(ctx context.Context, selectionID, carePlanID string) (*entities.PatientPathwaySelection, error) {
	if strings.TrimSpace(carePlanID) == "" {
		return nil, apperrors.NewValidationError("care plan id is required")
	}
	return s.selectionRepo.LinkToCarePlan(ctx, selectionID, carePlanID)
}
