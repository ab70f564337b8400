package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/application/services"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
)

func seedPublishedPathway(t *testing.T, repo *fakePathwayRepo, id, name string, codes []string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entities.ClinicalPathway{
		ID:             id,
		Name:           name,
		ConditionCodes: codes,
		IsActive:       true,
		IsPublished:    true,
		Version:        1,
	}))
}

func TestRecommendationService_ScorerMatchesAreHydrated(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	seedPublishedPathway(t, pathwayRepo, "pw-1", "Hypertension", []string{"I10"})

	confidence := 0.92
	scoring := &fakeScoring{
		recommend: func(patientCtx *entities.PatientContext, maxResults int) ([]*entities.PathwayMatch, error) {
			return []*entities.PathwayMatch{
				{PathwayID: "pw-1", MatchScore: 0.92, MatchReasons: []string{"model match"}, MLConfidence: &confidence},
				{PathwayID: "gone", MatchScore: 0.5},
			}, nil
		},
	}

	service := services.NewRecommendationService(pathwayRepo, scoring)
	matches, err := service.RecommendPathways(ctx, &entities.PatientContext{PatientID: "pat-1", ConditionCodes: []string{"I10"}}, 5)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "pw-1", matches[0].PathwayID)
	require.NotNil(t, matches[0].Pathway)
	assert.Equal(t, "Hypertension", matches[0].Pathway.Name)
	assert.Equal(t, 0.92, matches[0].MatchScore)
}

func TestRecommendationService_FallsBackToConditionCodes(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	seedPublishedPathway(t, pathwayRepo, "pw-1", "Diabetes Type 2", []string{"E11"})
	seedPublishedPathway(t, pathwayRepo, "pw-2", "Asthma", []string{"J45"})

	service := services.NewRecommendationService(pathwayRepo, &fakeScoring{})
	matches, err := service.RecommendPathways(ctx, &entities.PatientContext{
		PatientID:      "pat-1",
		ConditionCodes: []string{"E11.9"},
	}, 5)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "pw-1", matches[0].PathwayID)
	assert.Equal(t, 0.7, matches[0].MatchScore)
	assert.NotEmpty(t, matches[0].MatchReasons)
}

func TestRecommendationService_NoMatchIsEmpty(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	seedPublishedPathway(t, pathwayRepo, "pw-1", "Diabetes Type 2", []string{"E11"})

	service := services.NewRecommendationService(pathwayRepo, &fakeScoring{})
	matches, err := service.RecommendPathways(ctx, &entities.PatientContext{
		PatientID:      "pat-1",
		ConditionCodes: []string{"Z99"},
	}, 5)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRecommendationService_UnpublishedPathwaysExcludedFromFallback(t *testing.T) {
	ctx := context.Background()
	pathwayRepo := newFakePathwayRepo()
	require.NoError(t, pathwayRepo.Create(ctx, &entities.ClinicalPathway{
		ID:             "pw-draft",
		Name:           "Draft pathway",
		ConditionCodes: []string{"I10"},
		IsActive:       true,
		IsPublished:    false,
		Version:        1,
	}))

	service := services.NewRecommendationService(pathwayRepo, &fakeScoring{})
	matches, err := service.RecommendPathways(ctx, &entities.PatientContext{
		PatientID:      "pat-1",
		ConditionCodes: []string{"I10"},
	}, 5)

	require.NoError(t, err)
	assert.Empty(t, matches)
}
