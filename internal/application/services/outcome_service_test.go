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

func TestOutcomeService_RecordAssignsIdentityAndTimestamp(t *testing.T) {
	ctx := context.Background()
	nodeRepo := newFakeNodeRepo()
	outcomeRepo := newFakeOutcomeRepo()
	service := services.NewOutcomeService(nodeRepo, outcomeRepo)

	seedNode(t, nodeRepo, &entities.PathwayNode{ID: "n1", PathwayID: "pw-1", NodeType: entities.NodeTypeRecommendation, Title: "Start metformin"})

	outcome, err := service.Record(ctx, &entities.PathwayNodeOutcome{
		NodeID:      "n1",
		OutcomeType: "hba1c_improved",
		Description: "HbA1c dropped below 7% at 3 months",
		RecordedBy:  "provider-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, outcome.ID)
	assert.False(t, outcome.ObservedAt.IsZero())

	listed, err := service.ListByNode(ctx, "n1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestOutcomeService_RecordUnknownNodeIsValidation(t *testing.T) {
	ctx := context.Background()
	service := services.NewOutcomeService(newFakeNodeRepo(), newFakeOutcomeRepo())

	_, err := service.Record(ctx, &entities.PathwayNodeOutcome{
		NodeID:      "missing",
		OutcomeType: "hba1c_improved",
		RecordedBy:  "provider-1",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestOutcomeService_RecordRequiresOutcomeType(t *testing.T) {
	ctx := context.Background()
	service := services.NewOutcomeService(newFakeNodeRepo(), newFakeOutcomeRepo())

	_, err := service.Record(ctx, &entities.PathwayNodeOutcome{
		NodeID:     "n1",
		RecordedBy: "provider-1",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestOutcomeService_UpdatePersistsChanges(t *testing.T) {
	ctx := context.Background()
	nodeRepo := newFakeNodeRepo()
	service := services.NewOutcomeService(nodeRepo, newFakeOutcomeRepo())

	seedNode(t, nodeRepo, &entities.PathwayNode{ID: "n1", PathwayID: "pw-1", NodeType: entities.NodeTypeRecommendation, Title: "Start metformin"})

	outcome, err := service.Record(ctx, &entities.PathwayNodeOutcome{
		NodeID:      "n1",
		OutcomeType: "hba1c_improved",
		RecordedBy:  "provider-1",
	})
	require.NoError(t, err)
	recordedAt := outcome.UpdatedAt

	outcome.OutcomeType = "hba1c_unchanged"
	outcome.Description = "No change at 6 month follow-up"
	require.NoError(t, service.Update(ctx, outcome))
	assert.False(t, outcome.UpdatedAt.Before(recordedAt))

	stored, err := service.GetByID(ctx, outcome.ID)
	require.NoError(t, err)
	assert.Equal(t, "hba1c_unchanged", stored.OutcomeType)
	assert.Equal(t, "No change at 6 month follow-up", stored.Description)
}

func TestOutcomeService_UpdateRequiresOutcomeType(t *testing.T) {
	ctx := context.Background()
	service := services.NewOutcomeService(newFakeNodeRepo(), newFakeOutcomeRepo())

	err := service.Update(ctx, &entities.PathwayNodeOutcome{ID: "o1"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestOutcomeService_DeleteRemovesOutcome(t *testing.T) {
	ctx := context.Background()
	nodeRepo := newFakeNodeRepo()
	service := services.NewOutcomeService(nodeRepo, newFakeOutcomeRepo())

	seedNode(t, nodeRepo, &entities.PathwayNode{ID: "n1", PathwayID: "pw-1", NodeType: entities.NodeTypeRecommendation, Title: "Start metformin"})

	outcome, err := service.Record(ctx, &entities.PathwayNodeOutcome{
		NodeID:      "n1",
		OutcomeType: "hba1c_improved",
		RecordedBy:  "provider-1",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, outcome.ID))

	_, err = service.GetByID(ctx, outcome.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = service.Delete(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}
