package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/application/services"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

func newInstanceFixture(t *testing.T) (*services.InstanceService, *fakePathwayRepo, *fakeNodeRepo, *fakeInstanceRepo, *fakeSelectionRepo) {
	t.Helper()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	instanceRepo := newFakeInstanceRepo()
	selectionRepo := newFakeSelectionRepo()
	service := services.NewInstanceService(pathwayRepo, nodeRepo, instanceRepo, selectionRepo)
	return service, pathwayRepo, nodeRepo, instanceRepo, selectionRepo
}

func TestInstanceService_StartSnapshotsContext(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, _, instanceRepo, _ := newInstanceFixture(t)
	seedPathway(t, pathwayRepo, "pw-1")

	patientCtx := &entities.PatientContext{
		PatientID:      "pat-1",
		ConditionCodes: []string{"I10"},
		Age:            intPtr(54),
	}

	instance, err := service.Start(ctx, "pat-1", "pw-1", "prov-1", patientCtx, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, instance.ID)
	assert.Equal(t, entities.InstanceStarted, instance.Status)
	assert.False(t, instance.StartedAt.IsZero())

	stored, err := instanceRepo.GetByID(ctx, instance.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PatientContext)
	assert.Equal(t, []string{"I10"}, stored.PatientContext.ConditionCodes)
}

func TestInstanceService_StartUnknownPathwayIsValidation(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, _ := newInstanceFixture(t)

	_, err := service.Start(ctx, "pat-1", "missing", "prov-1", nil, nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInstanceService_CompleteIsTerminal(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, _, _, _ := newInstanceFixture(t)
	seedPathway(t, pathwayRepo, "pw-1")

	instance, err := service.Start(ctx, "pat-1", "pw-1", "prov-1", nil, nil)
	require.NoError(t, err)

	completed, err := service.Complete(ctx, instance.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.InstanceCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	// second transition conflicts
	_, err = service.Complete(ctx, instance.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	_, err = service.Abandon(ctx, instance.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestInstanceService_CompleteUnknownIsNotFound(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, _ := newInstanceFixture(t)

	_, err := service.Complete(ctx, "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInstanceService_RecordSelectionValidatesNodeOwnership(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, nodeRepo, _, selectionRepo := newInstanceFixture(t)
	seedPathway(t, pathwayRepo, "pw-1")
	seedPathway(t, pathwayRepo, "pw-2")
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "own-node", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Own",
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "other-node", PathwayID: "pw-2", NodeType: entities.NodeTypeRoot, Title: "Other",
	})

	instance, err := service.Start(ctx, "pat-1", "pw-1", "prov-1", nil, nil)
	require.NoError(t, err)

	_, err = service.RecordSelection(ctx, &entities.PatientPathwaySelection{
		InstanceID:    instance.ID,
		NodeID:        "other-node",
		SelectionType: entities.SelectionProviderSelected,
		CreatedBy:     "prov-1",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	selection, err := service.RecordSelection(ctx, &entities.PatientPathwaySelection{
		InstanceID:    instance.ID,
		NodeID:        "own-node",
		SelectionType: entities.SelectionProviderSelected,
		CreatedBy:     "prov-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, selection.ID)

	listed, err := selectionRepo.ListByInstance(ctx, instance.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestInstanceService_RecordSelectionStampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, nodeRepo, _, selectionRepo := newInstanceFixture(t)
	seedPathway(t, pathwayRepo, "pw-1")
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "node-1", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root",
	})

	instance, err := service.Start(ctx, "pat-1", "pw-1", "prov-1", nil, nil)
	require.NoError(t, err)

	selection, err := service.RecordSelection(ctx, &entities.PatientPathwaySelection{
		InstanceID:    instance.ID,
		NodeID:        "node-1",
		SelectionType: entities.SelectionProviderSelected,
		CreatedBy:     "prov-1",
	})
	require.NoError(t, err)
	assert.False(t, selection.CreatedAt.IsZero())

	listed, err := selectionRepo.ListByInstance(ctx, instance.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].CreatedAt.IsZero())
}

func TestInstanceService_LinkToCarePlanLastWriteWins(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, nodeRepo, _, _ := newInstanceFixture(t)
	seedPathway(t, pathwayRepo, "pw-1")
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "node-1", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root",
	})

	instance, err := service.Start(ctx, "pat-1", "pw-1", "prov-1", nil, nil)
	require.NoError(t, err)
	selection, err := service.RecordSelection(ctx, &entities.PatientPathwaySelection{
		InstanceID:    instance.ID,
		NodeID:        "node-1",
		SelectionType: entities.SelectionAutoApplied,
		CreatedBy:     "prov-1",
	})
	require.NoError(t, err)

	first, err := service.LinkToCarePlan(ctx, selection.ID, "cp-1")
	require.NoError(t, err)
	require.NotNil(t, first.ResultingCarePlanID)
	assert.Equal(t, "cp-1", *first.ResultingCarePlanID)

	second, err := service.LinkToCarePlan(ctx, selection.ID, "cp-2")
	require.NoError(t, err)
	require.NotNil(t, second.ResultingCarePlanID)
	assert.Equal(t, "cp-2", *second.ResultingCarePlanID)
}

func TestInstanceService_LinkUnknownSelectionIsNotFound(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, _ := newInstanceFixture(t)

	_, err := service.LinkToCarePlan(ctx, "missing", "cp-1")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
