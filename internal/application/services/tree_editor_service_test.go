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

func TestTreeEditorService_CreatesParentBeforeChild(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")

	tree := &entities.EditorNode{
		TempID:   strPtr("tmp-root"),
		IsNew:    true,
		NodeType: entities.NodeTypeRoot,
		Title:    "Assess",
		IsActive: true,
		Children: []*entities.EditorNode{
			{
				TempID:   strPtr("tmp-child"),
				IsNew:    true,
				NodeType: entities.NodeTypeRecommendation,
				Title:    "Recommend",
				IsActive: true,
			},
		},
	}

	service := services.NewTreeEditorService(pathwayRepo, nodeRepo, &fakeEventBus{}, 0)
	result, err := service.SaveTree(ctx, "pw-1", tree, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, 0, result.UpdatedCount)
	require.Len(t, nodeRepo.createCalls, 2)

	rootCall := nodeRepo.createCalls[0]
	childCall := nodeRepo.createCalls[1]
	assert.Nil(t, rootCall.ParentNodeID)
	require.NotNil(t, childCall.ParentNodeID)
	assert.Equal(t, rootCall.ID, *childCall.ParentNodeID)
	assert.Equal(t, 0, childCall.SortOrder)

	assert.Equal(t, rootCall.ID, result.TempIDMap["tmp-root"])
	assert.Equal(t, childCall.ID, result.TempIDMap["tmp-child"])
	assert.Equal(t, 2, result.Version)
}

func TestTreeEditorService_SiblingIndexBecomesSortOrder(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")

	tree := &entities.EditorNode{
		TempID: strPtr("tmp-root"), IsNew: true, NodeType: entities.NodeTypeRoot, Title: "Root", IsActive: true,
		Children: []*entities.EditorNode{
			{TempID: strPtr("tmp-0"), IsNew: true, NodeType: entities.NodeTypeBranch, Title: "First", IsActive: true},
			{TempID: strPtr("tmp-1"), IsNew: true, NodeType: entities.NodeTypeBranch, Title: "Second", IsActive: true},
			{TempID: strPtr("tmp-2"), IsNew: true, NodeType: entities.NodeTypeBranch, Title: "Third", IsActive: true},
		},
	}

	service := services.NewTreeEditorService(pathwayRepo, nodeRepo, &fakeEventBus{}, 0)
	result, err := service.SaveTree(ctx, "pw-1", tree, nil)

	require.NoError(t, err)
	assert.Equal(t, 4, result.CreatedCount)

	byTitle := make(map[string]int)
	for _, call := range nodeRepo.createCalls {
		byTitle[call.Title] = call.SortOrder
	}
	assert.Equal(t, 0, byTitle["First"])
	assert.Equal(t, 1, byTitle["Second"])
	assert.Equal(t, 2, byTitle["Third"])
}

func TestTreeEditorService_SkipsUnmodifiedNodes(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root",
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "child", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch, Title: "Old title",
	})
	nodeRepo.createCalls = nil

	tree := &entities.EditorNode{
		ID: strPtr("root"), NodeType: entities.NodeTypeRoot, Title: "Root", IsActive: true,
		Children: []*entities.EditorNode{
			{
				ID: strPtr("child"), IsModified: true, NodeType: entities.NodeTypeBranch,
				Title: "New title", IsActive: true,
			},
		},
	}

	service := services.NewTreeEditorService(pathwayRepo, nodeRepo, &fakeEventBus{}, 0)
	result, err := service.SaveTree(ctx, "pw-1", tree, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.CreatedCount)
	assert.Equal(t, 1, result.UpdatedCount)
	assert.Empty(t, nodeRepo.createCalls)
	require.Len(t, nodeRepo.updateCalls, 1)
	assert.Equal(t, "New title", nodeRepo.updateCalls[0].Title)

	stored, err := nodeRepo.GetByID(ctx, "child")
	require.NoError(t, err)
	assert.Equal(t, "New title", stored.Title)
}

func TestTreeEditorService_AbortsOnFirstWriteFailure(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	nodeRepo.failCreates = 1
	seedPathway(t, pathwayRepo, "pw-1")

	tree := &entities.EditorNode{
		TempID: strPtr("tmp-root"), IsNew: true, NodeType: entities.NodeTypeRoot, Title: "Root", IsActive: true,
		Children: []*entities.EditorNode{
			{TempID: strPtr("tmp-a"), IsNew: true, NodeType: entities.NodeTypeBranch, Title: "A", IsActive: true},
			{TempID: strPtr("tmp-b"), IsNew: true, NodeType: entities.NodeTypeBranch, Title: "B", IsActive: true},
		},
	}

	service := services.NewTreeEditorService(pathwayRepo, nodeRepo, &fakeEventBus{}, 0)
	result, err := service.SaveTree(ctx, "pw-1", tree, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Len(t, nodeRepo.createCalls, 1)

	// version untouched on failure
	pathway, err := pathwayRepo.GetByID(ctx, "pw-1")
	require.NoError(t, err)
	assert.Equal(t, 1, pathway.Version)
}

func TestTreeEditorService_VersionMismatchConflicts(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")

	tree := &entities.EditorNode{
		TempID: strPtr("tmp-root"), IsNew: true, NodeType: entities.NodeTypeRoot, Title: "Root", IsActive: true,
	}

	service := services.NewTreeEditorService(pathwayRepo, nodeRepo, &fakeEventBus{}, 0)
	_, err := service.SaveTree(ctx, "pw-1", tree, intPtr(99))

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Empty(t, nodeRepo.createCalls)
}

func TestTreeEditorService_MissingIDOnExistingNode(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")

	tree := &entities.EditorNode{
		IsNew: false, NodeType: entities.NodeTypeRoot, Title: "Root", IsActive: true,
	}

	service := services.NewTreeEditorService(pathwayRepo, nodeRepo, &fakeEventBus{}, 0)
	_, err := service.SaveTree(ctx, "pw-1", tree, nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
