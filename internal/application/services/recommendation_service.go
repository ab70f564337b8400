package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// Match score assigned by condition-code fallback matching
const fallbackMatchScore = 0.7

// Upper bound on pathways considered by fallback matching
const fallbackCandidateLimit = 200

// RecommendationService ranks pathways for a patient context. The scorer
// ranks when available; otherwise published pathways are matched on condition
// codes.
type RecommendationService struct {
	pathwayRepo repositories.PathwayRepository
	scoring     providers.ScoringProvider
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(pathwayRepo repositories.PathwayRepository, scoring providers.ScoringProvider) *RecommendationService {
	return &RecommendationService{
		pathwayRepo: pathwayRepo,
		scoring:     scoring,
	}
}

// RecommendPathways returns up to maxResults pathways ranked for the patient
func (s *RecommendationService) RecommendPathways(ctx context.Context, patientCtx *entities.PatientContext, maxResults int) ([]*entities.PathwayMatch, error) {
	if patientCtx == nil {
		return nil, apperrors.NewValidationError("patient context is required")
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	matches, err := s.scoring.RecommendPathways(ctx, patientCtx, maxResults)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return s.hydrate(ctx, matches, maxResults)
	}

	return s.matchByConditionCodes(ctx, patientCtx, maxResults)
}

// hydrate attaches pathway records to scorer matches, dropping matches whose
// pathway no longer exists
func (s *RecommendationService) hydrate(ctx context.Context, matches []*entities.PathwayMatch, maxResults int) ([]*entities.PathwayMatch, error) {
	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.PathwayID)
	}

	pathways, err := s.pathwayRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entities.ClinicalPathway, len(pathways))
	for _, pathway := range pathways {
		byID[pathway.ID] = pathway
	}

	hydrated := make([]*entities.PathwayMatch, 0, len(matches))
	for _, match := range matches {
		pathway, ok := byID[match.PathwayID]
		if !ok {
			log.Warn().Str("pathway_id", match.PathwayID).Msg("Scorer recommended an unknown pathway, dropping")
			continue
		}
		match.Pathway = pathway
		hydrated = append(hydrated, match)
		if len(hydrated) == maxResults {
			break
		}
	}
	return hydrated, nil
}

// matchByConditionCodes matches published pathways whose condition codes
// overlap the patient's, using prefix matching so a specific diagnosis code
// matches a pathway keyed on its category
func (s *RecommendationService) matchByConditionCodes(ctx context.Context, patientCtx *entities.PatientContext, maxResults int) ([]*entities.PathwayMatch, error) {
	if len(patientCtx.ConditionCodes) == 0 {
		return nil, nil
	}

	active, published := true, true
	page, err := s.pathwayRepo.List(ctx, repositories.PathwayFilter{
		IsActive:    &active,
		IsPublished: &published,
		First:       fallbackCandidateLimit,
	})
	if err != nil {
		return nil, err
	}

	matches := make([]*entities.PathwayMatch, 0, maxResults)
	for _, pathway := range page.Items {
		code, ok := matchCondition(patientCtx.ConditionCodes, pathway.ConditionCodes)
		if !ok {
			continue
		}
		matches = append(matches, &entities.PathwayMatch{
			PathwayID:    pathway.ID,
			Pathway:      pathway,
			MatchScore:   fallbackMatchScore,
			MatchReasons: []string{fmt.Sprintf("Pathway covers condition %s", code)},
		})
		if len(matches) == maxResults {
			break
		}
	}
	return matches, nil
}

// matchCondition reports the first patient condition code covered by the
// pathway. Codes match when either is a prefix of the other.
func matchCondition(patientCodes, pathwayCodes []string) (string, bool) {
	for _, pc := range patientCodes {
		for _, code := range pathwayCodes {
			if strings.HasPrefix(pc, code) || strings.HasPrefix(code, pc) {
				return pc, true
			}
		}
	}
	return "", false
}
