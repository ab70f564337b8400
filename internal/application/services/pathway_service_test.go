package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/application/services"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

func newPathwayFixture(t *testing.T) (*services.PathwayService, *fakePathwayRepo, *fakeNodeRepo, *fakeEventBus) {
	t.Helper()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	bus := &fakeEventBus{}
	service := services.NewPathwayService(pathwayRepo, nodeRepo, newFakeInstanceRepo(), newFakeSelectionRepo(), bus)
	return service, pathwayRepo, nodeRepo, bus
}

func TestPathwayService_CreateAssignsIdentityAndSlug(t *testing.T) {
	ctx := context.Background()
	service, _, _, bus := newPathwayFixture(t)

	pathway := &entities.ClinicalPathway{Name: "Type 2 Diabetes: Initial Management", IsActive: true}
	err := service.Create(ctx, pathway)

	require.NoError(t, err)
	assert.NotEmpty(t, pathway.ID)
	assert.Equal(t, "type-2-diabetes-initial-management", pathway.Slug)
	assert.Equal(t, 1, pathway.Version)
	assert.False(t, pathway.IsPublished)
	require.Len(t, bus.published, 1)
	assert.Equal(t, entities.PathwayEventCreated, bus.published[0].Type)
}

func TestPathwayService_CreateStampsTimestamps(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, nodeRepo, _ := newPathwayFixture(t)

	pathway := &entities.ClinicalPathway{Name: "Hypertension Workup", IsActive: true}
	require.NoError(t, service.Create(ctx, pathway))
	assert.False(t, pathway.CreatedAt.IsZero())
	assert.Equal(t, pathway.CreatedAt, pathway.UpdatedAt)

	stored, err := pathwayRepo.GetByID(ctx, pathway.ID)
	require.NoError(t, err)
	assert.False(t, stored.CreatedAt.IsZero())

	node := &entities.PathwayNode{
		PathwayID: pathway.ID, NodeType: entities.NodeTypeRoot, Title: "Initial Assessment",
	}
	require.NoError(t, service.CreateNode(ctx, node))
	assert.False(t, node.CreatedAt.IsZero())
	assert.Equal(t, node.CreatedAt, node.UpdatedAt)

	storedNode, err := nodeRepo.GetByID(ctx, node.ID)
	require.NoError(t, err)
	assert.False(t, storedNode.CreatedAt.IsZero())
}

func TestPathwayService_CreateRequiresName(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newPathwayFixture(t)

	err := service.Create(ctx, &entities.ClinicalPathway{Name: "   "})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPathwayService_PublishRequiresRootNode(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, nodeRepo, bus := newPathwayFixture(t)
	seedPathway(t, pathwayRepo, "pw-1")

	_, err := service.Publish(ctx, "pw-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root",
	})

	published, err := service.Publish(ctx, "pw-1")
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	require.NotEmpty(t, bus.published)
	assert.Equal(t, entities.PathwayEventPublished, bus.published[len(bus.published)-1].Type)
}

func TestPathwayService_UpdateVersionMismatchConflicts(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, _, _ := newPathwayFixture(t)
	seedPathway(t, pathwayRepo, "pw-1")

	pathway, err := pathwayRepo.GetByID(ctx, "pw-1")
	require.NoError(t, err)

	err = service.Update(ctx, pathway, intPtr(99))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	err = service.Update(ctx, pathway, intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, 2, pathway.Version)
}

func TestPathwayService_DuplicateCopiesTree(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, nodeRepo, _ := newPathwayFixture(t)
	src := seedPathway(t, pathwayRepo, "pw-1")
	src.IsPublished = true
	require.NoError(t, pathwayRepo.Update(ctx, src, nil))

	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root",
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "child", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch,
		Title: "Child", SortOrder: 0,
	})

	dup, err := service.Duplicate(ctx, "pw-1", "Hypertension v2", "dr-1")

	require.NoError(t, err)
	assert.NotEqual(t, "pw-1", dup.ID)
	assert.Equal(t, "Hypertension v2", dup.Name)
	assert.False(t, dup.IsPublished)
	assert.Equal(t, 1, dup.Version)

	copied, err := nodeRepo.ListByPathway(ctx, dup.ID)
	require.NoError(t, err)
	require.Len(t, copied, 2)

	var root, child *entities.PathwayNode
	for _, node := range copied {
		if node.ParentNodeID == nil {
			root = node
		} else {
			child = node
		}
	}
	require.NotNil(t, root)
	require.NotNil(t, child)
	assert.NotEqual(t, "root", root.ID)
	assert.Equal(t, root.ID, *child.ParentNodeID)
	assert.Equal(t, "Child", child.Title)
}

func TestPathwayService_CreateNodeEnforcesSingleRoot(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, nodeRepo, _ := newPathwayFixture(t)
	seedPathway(t, pathwayRepo, "pw-1")
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root",
	})

	err := service.CreateNode(ctx, &entities.PathwayNode{
		PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Another root", IsActive: true,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPathwayService_CreateNodeRejectsCrossPathwayParent(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, nodeRepo, _ := newPathwayFixture(t)
	seedPathway(t, pathwayRepo, "pw-1")
	seedPathway(t, pathwayRepo, "pw-2")
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "other-root", PathwayID: "pw-2", NodeType: entities.NodeTypeRoot, Title: "Other root",
	})

	err := service.CreateNode(ctx, &entities.PathwayNode{
		PathwayID: "pw-1", ParentNodeID: strPtr("other-root"),
		NodeType: entities.NodeTypeBranch, Title: "Child", IsActive: true,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPathwayService_ListPaginationIsStable(t *testing.T) {
	ctx := context.Background()
	service, pathwayRepo, _, _ := newPathwayFixture(t)
	for i := 0; i < 7; i++ {
		require.NoError(t, pathwayRepo.Create(ctx, &entities.ClinicalPathway{
			ID:       fmt.Sprintf("pw-%d", i),
			Name:     fmt.Sprintf("Pathway %02d", i),
			IsActive: true,
			Version:  1,
		}))
	}

	full, err := service.List(ctx, repositories.PathwayFilter{First: 100})
	require.NoError(t, err)
	require.Len(t, full.Items, 7)

	page1, err := service.List(ctx, repositories.PathwayFilter{First: 3})
	require.NoError(t, err)
	require.Len(t, page1.Items, 3)
	assert.True(t, page1.HasNextPage)
	assert.Equal(t, 7, page1.TotalCount)

	cursor := repositories.EncodeCursor(page1.Items[len(page1.Items)-1])
	page2, err := service.List(ctx, repositories.PathwayFilter{First: 3, After: cursor})
	require.NoError(t, err)
	require.Len(t, page2.Items, 3)
	assert.True(t, page2.HasPreviousPage)

	cursor = repositories.EncodeCursor(page2.Items[len(page2.Items)-1])
	page3, err := service.List(ctx, repositories.PathwayFilter{First: 3, After: cursor})
	require.NoError(t, err)
	require.Len(t, page3.Items, 1)
	assert.False(t, page3.HasNextPage)

	var paged []string
	for _, page := range []*repositories.PathwayPage{page1, page2, page3} {
		for _, item := range page.Items {
			paged = append(paged, item.ID)
		}
	}
	var expected []string
	for _, item := range full.Items {
		expected = append(expected, item.ID)
	}
	assert.Equal(t, expected, paged)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "copd-exacerbation", services.Slugify("COPD Exacerbation"))
	assert.Equal(t, "type-2-diabetes", services.Slugify("  Type 2 — Diabetes!  "))
	assert.Equal(t, "chest-pain-triage", services.Slugify("Chest Pain / Triage"))
}
