package resolvers

import (
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/application/services"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/observability"
)

// This file will not be regenerated automatically.
//
// It serves as dependency injection for your app, add any dependencies you require
// here.

type Resolver struct {
	pathwayService        *services.PathwayService
	treeService           *services.DecisionTreeService
	editorService         *services.TreeEditorService
	instanceService       *services.InstanceService
	recommendationService *services.RecommendationService
	outcomeService        *services.OutcomeService
	nodeRepo              repositories.PathwayNodeRepository
	metrics               *observability.Metrics
}

// NewResolver creates a new resolver with dependencies
func NewResolver(
	pathwayService *services.PathwayService,
	treeService *services.DecisionTreeService,
	editorService *services.TreeEditorService,
	instanceService *services.InstanceService,
	recommendationService *services.RecommendationService,
	outcomeService *services.OutcomeService,
	nodeRepo repositories.PathwayNodeRepository,
	metrics *observability.Metrics,
) *Resolver {
	return &Resolver{
		pathwayService:        pathwayService,
		treeService:           treeService,
		editorService:         editorService,
		instanceService:       instanceService,
		recommendationService: recommendationService,
		outcomeService:        outcomeService,
		nodeRepo:              nodeRepo,
		metrics:               metrics,
	}
}
