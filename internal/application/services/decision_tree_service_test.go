package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/application/services"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

func seedPathway(t *testing.T, repo *fakePathwayRepo, id string) *entities.ClinicalPathway {
	t.Helper()
	pathway := &entities.ClinicalPathway{
		ID:       id,
		Name:     "Hypertension Management",
		Slug:     "hypertension-management",
		IsActive: true,
		Version:  1,
	}
	require.NoError(t, repo.Create(context.Background(), pathway))
	return pathway
}

func seedNode(t *testing.T, repo *fakeNodeRepo, node *entities.PathwayNode) *entities.PathwayNode {
	t.Helper()
	node.IsActive = true
	require.NoError(t, repo.Create(context.Background(), node))
	return node
}

func TestDecisionTreeService_AssemblesLinearTree(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")

	templateID := "tmpl-1"
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot,
		Title: "Assess blood pressure", BaseConfidence: 0.9,
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "a", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch,
		Title: "Stage 1 hypertension", BaseConfidence: 0.7,
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "a1", PathwayID: "pw-1", ParentNodeID: strPtr("a"), NodeType: entities.NodeTypeRecommendation,
		Title: "Start ACE inhibitor", BaseConfidence: 0.6, SuggestedTemplateID: &templateID,
	})

	service := services.NewDecisionTreeService(pathwayRepo, nodeRepo, &fakeScoring{}, 0)
	result, err := service.GetDecisionTree(ctx, "pw-1", nil)

	require.NoError(t, err)
	require.NotNil(t, result.Tree)
	assert.Equal(t, "pw-1", result.Pathway.ID)
	assert.Equal(t, services.ModelVersionNoContext, result.ModelVersion)
	assert.Greater(t, result.ProcessingTimeMs, 0)

	assert.Equal(t, 0.9, result.Tree.Confidence)
	assert.Equal(t, 0, result.Tree.AlternativeCount)
	require.Len(t, result.Tree.Children, 1)

	branch := result.Tree.Children[0]
	assert.Equal(t, 0.7, branch.Confidence)
	assert.Equal(t, 0, branch.AlternativeCount)
	assert.Nil(t, branch.Recommendation)
	require.Len(t, branch.Children, 1)

	leaf := branch.Children[0]
	assert.Equal(t, 0.6, leaf.Confidence)
	assert.Equal(t, 0, leaf.AlternativeCount)
	require.NotNil(t, leaf.Recommendation)
	assert.Equal(t, "Start ACE inhibitor", leaf.Recommendation.Title)
	assert.Equal(t, &templateID, leaf.Recommendation.TemplateID)
	assert.Equal(t, 0.6, leaf.Recommendation.Confidence)
}

func TestDecisionTreeService_PartialScoreOverride(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")

	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root", BaseConfidence: 0.5,
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "b1", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch,
		Title: "Option A", BaseConfidence: 0.4, SortOrder: 0,
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "b2", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch,
		Title: "Option B", BaseConfidence: 0.4, SortOrder: 1,
	})

	scoring := &fakeScoring{
		scoreTree: func(pathwayID string, nodes []*entities.PathwayNode, patientCtx *entities.PatientContext) (*entities.TreeScore, error) {
			return &entities.TreeScore{
				ModelVersion: "risk-model-v3",
				Scores: map[string]entities.NodeScore{
					"b1": {Confidence: 0.85, IsRecommended: true},
				},
			}, nil
		},
	}

	service := services.NewDecisionTreeService(pathwayRepo, nodeRepo, scoring, 0)
	result, err := service.GetDecisionTree(ctx, "pw-1", &entities.PatientContext{PatientID: "pat-1"})

	require.NoError(t, err)
	assert.Equal(t, "risk-model-v3", result.ModelVersion)
	require.Len(t, result.Tree.Children, 2)

	scored := result.Tree.Children[0]
	unscored := result.Tree.Children[1]
	assert.Equal(t, 0.85, scored.Confidence)
	assert.True(t, scored.IsRecommendedPath)
	assert.Equal(t, 1, scored.AlternativeCount)
	assert.Equal(t, 0.4, unscored.Confidence)
	assert.False(t, unscored.IsRecommendedPath)
	assert.Equal(t, 1, unscored.AlternativeCount)
}

func TestDecisionTreeService_ScorerEmptyFallsBackToStatic(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root", BaseConfidence: 0.8,
	})

	service := services.NewDecisionTreeService(pathwayRepo, nodeRepo, &fakeScoring{}, 0)
	result, err := service.GetDecisionTree(ctx, "pw-1", &entities.PatientContext{PatientID: "pat-1"})

	require.NoError(t, err)
	assert.Equal(t, services.ModelVersionStatic, result.ModelVersion)
	assert.Equal(t, 0.8, result.Tree.Confidence)
}

func TestDecisionTreeService_SiblingOrderBySortOrder(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root", BaseConfidence: 1,
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "second", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch,
		Title: "Second", SortOrder: 1,
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "first", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch,
		Title: "First", SortOrder: 0,
	})

	service := services.NewDecisionTreeService(pathwayRepo, nodeRepo, &fakeScoring{}, 0)
	result, err := service.GetDecisionTree(ctx, "pw-1", nil)

	require.NoError(t, err)
	require.Len(t, result.Tree.Children, 2)
	assert.Equal(t, "first", result.Tree.Children[0].Node.ID)
	assert.Equal(t, "second", result.Tree.Children[1].Node.ID)
}

func TestDecisionTreeService_CyclicNodesFailClosed(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")

	// b and c reference each other, no root exists
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "b", PathwayID: "pw-1", ParentNodeID: strPtr("c"), NodeType: entities.NodeTypeBranch, Title: "B",
	})
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "c", PathwayID: "pw-1", ParentNodeID: strPtr("b"), NodeType: entities.NodeTypeBranch, Title: "C",
	})

	service := services.NewDecisionTreeService(pathwayRepo, nodeRepo, &fakeScoring{}, 0)
	_, err := service.GetDecisionTree(ctx, "pw-1", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDecisionTreeService_MaxDepthGuard(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")

	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "n0", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Level 0",
	})
	parent := "n0"
	for i := 1; i <= 4; i++ {
		id := fmt.Sprintf("n%d", i)
		seedNode(t, nodeRepo, &entities.PathwayNode{
			ID: id, PathwayID: "pw-1", ParentNodeID: strPtr(parent), NodeType: entities.NodeTypeBranch,
			Title: "Level",
		})
		parent = id
	}

	service := services.NewDecisionTreeService(pathwayRepo, nodeRepo, &fakeScoring{}, 3)
	_, err := service.GetDecisionTree(ctx, "pw-1", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDecisionTreeService_SkipsInactiveNodes(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")
	seedNode(t, nodeRepo, &entities.PathwayNode{
		ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root",
	})
	retired := &entities.PathwayNode{
		ID: "old", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch,
		Title: "Retired option", IsActive: false,
	}
	require.NoError(t, nodeRepo.Create(ctx, retired))

	service := services.NewDecisionTreeService(pathwayRepo, nodeRepo, &fakeScoring{}, 0)
	result, err := service.GetDecisionTree(ctx, "pw-1", nil)

	require.NoError(t, err)
	assert.Empty(t, result.Tree.Children)
}

func TestBuildNodeTree_MissingRootFallback(t *testing.T) {
	orphanParent := "gone"
	nodes := []*entities.PathwayNode{
		{ID: "x", PathwayID: "pw-1", ParentNodeID: &orphanParent, Title: "Orphan root"},
		{ID: "y", PathwayID: "pw-1", ParentNodeID: strPtr("x"), Title: "Child"},
	}

	root, childrenOf, err := services.BuildNodeTree(nodes)

	require.NoError(t, err)
	assert.Equal(t, "x", root.ID)
	require.Len(t, childrenOf["x"], 1)
	assert.Equal(t, "y", childrenOf["x"][0].ID)
}

func TestBuildNodeTree_EmptyListIsNotFound(t *testing.T) {
	_, _, err := services.BuildNodeTree(nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFlattenTree_RoundTrip(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	nodeRepo := newFakeNodeRepo()
	seedPathway(t, pathwayRepo, "pw-1")

	flat := []*entities.PathwayNode{
		{ID: "root", PathwayID: "pw-1", NodeType: entities.NodeTypeRoot, Title: "Root"},
		{ID: "a", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch, Title: "A", SortOrder: 0},
		{ID: "b", PathwayID: "pw-1", ParentNodeID: strPtr("root"), NodeType: entities.NodeTypeBranch, Title: "B", SortOrder: 1},
		{ID: "a1", PathwayID: "pw-1", ParentNodeID: strPtr("a"), NodeType: entities.NodeTypeRecommendation, Title: "A1", SortOrder: 0},
	}
	for _, node := range flat {
		seedNode(t, nodeRepo, node)
	}

	service := services.NewDecisionTreeService(pathwayRepo, nodeRepo, &fakeScoring{}, 0)
	result, err := service.GetDecisionTree(ctx, "pw-1", nil)
	require.NoError(t, err)

	type triple struct {
		id, parent string
		sortOrder  int
	}
	toTriple := func(nodes []*entities.PathwayNode) []triple {
		triples := make([]triple, 0, len(nodes))
		for _, n := range nodes {
			parent := ""
			if n.ParentNodeID != nil {
				parent = *n.ParentNodeID
			}
			triples = append(triples, triple{id: n.ID, parent: parent, sortOrder: n.SortOrder})
		}
		return triples
	}

	flattened := services.FlattenTree(result.Tree)
	assert.ElementsMatch(t, toTriple(flat), toTriple(flattened))
}
