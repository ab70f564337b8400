// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package generated

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/graphql/scalars"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// region    ************************** generated!.gotpl **************************

// NewExecutableSchema creates an ExecutableSchema from the ResolverRoot interface.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{
		schema:     cfg.Schema,
		resolvers:  cfg.Resolvers,
		directives: cfg.Directives,
		complexity: cfg.Complexity,
	}
}

type Config struct {
	Schema     *ast.Schema
	Resolvers  ResolverRoot
	Directives DirectiveRoot
	Complexity ComplexityRoot
}

type ResolverRoot interface {
	ClinicalPathway() ClinicalPathwayResolver
	Mutation() MutationResolver
	PathwayNode() PathwayNodeResolver
	PatientPathwayInstance() PatientPathwayInstanceResolver
	PatientPathwaySelection() PatientPathwaySelectionResolver
	Query() QueryResolver
	TreeSaveResult() TreeSaveResultResolver
}

type DirectiveRoot struct {
}

type ComplexityRoot struct {
	ClinicalPathway struct {
		ConditionCodes func(childComplexity int) int
		CreatedAt      func(childComplexity int) int
		CreatedBy      func(childComplexity int) int
		Description    func(childComplexity int) int
		EvidenceGrade  func(childComplexity int) int
		EvidenceSource func(childComplexity int) int
		ID             func(childComplexity int) int
		IsActive       func(childComplexity int) int
		IsPublished    func(childComplexity int) int
		Name           func(childComplexity int) int
		RootNode       func(childComplexity int) int
		Slug           func(childComplexity int) int
		UpdatedAt      func(childComplexity int) int
		UsageStats     func(childComplexity int) int
		Version        func(childComplexity int) int
		VersionLabel   func(childComplexity int) int
	}

	ClinicalPathwayConnection struct {
		Edges      func(childComplexity int) int
		PageInfo   func(childComplexity int) int
		TotalCount func(childComplexity int) int
	}

	ClinicalPathwayEdge struct {
		Cursor func(childComplexity int) int
		Node   func(childComplexity int) int
	}

	DecisionTreeNode struct {
		AlternativeCount  func(childComplexity int) int
		Children          func(childComplexity int) int
		Confidence        func(childComplexity int) int
		IsRecommendedPath func(childComplexity int) int
		Node              func(childComplexity int) int
		Recommendation    func(childComplexity int) int
	}

	DecisionTreeResult struct {
		ModelVersion     func(childComplexity int) int
		Pathway          func(childComplexity int) int
		ProcessingTimeMs func(childComplexity int) int
		Tree             func(childComplexity int) int
	}

	Mutation struct {
		AbandonPathwayInstance   func(childComplexity int, id string) int
		CompletePathwayInstance  func(childComplexity int, id string) int
		CreateClinicalPathway    func(childComplexity int, input CreateClinicalPathwayInput) int
		CreatePathwayNode        func(childComplexity int, input CreatePathwayNodeInput) int
		DeleteClinicalPathway    func(childComplexity int, id string) int
		DeleteNodeOutcome        func(childComplexity int, id string) int
		DeletePathwayNode        func(childComplexity int, id string) int
		DuplicateClinicalPathway func(childComplexity int, id string, newName string, createdBy string) int
		LinkSelectionToCarePlan  func(childComplexity int, selectionID string, carePlanID string) int
		MovePathwayNode          func(childComplexity int, id string, input MovePathwayNodeInput) int
		PublishClinicalPathway   func(childComplexity int, id string) int
		RecordNodeOutcome        func(childComplexity int, input RecordNodeOutcomeInput) int
		RecordPathwaySelection   func(childComplexity int, input RecordPathwaySelectionInput) int
		SaveDecisionTree         func(childComplexity int, input SaveDecisionTreeInput) int
		StartPathwayInstance     func(childComplexity int, input StartPathwayInstanceInput) int
		UnpublishClinicalPathway func(childComplexity int, id string) int
		UpdateClinicalPathway    func(childComplexity int, id string, input UpdateClinicalPathwayInput) int
		UpdateNodeOutcome        func(childComplexity int, id string, input UpdateNodeOutcomeInput) int
		UpdatePathwayNode        func(childComplexity int, id string, input UpdatePathwayNodeInput) int
	}

	NodeRecommendation struct {
		ActionType  func(childComplexity int) int
		Confidence  func(childComplexity int) int
		Description func(childComplexity int) int
		TemplateID  func(childComplexity int) int
		Title       func(childComplexity int) int
	}

	NodeSelectionStats struct {
		AutoApplied      func(childComplexity int) int
		MLRecommended    func(childComplexity int) int
		NodeID           func(childComplexity int) int
		OverrideCount    func(childComplexity int) int
		ProviderSelected func(childComplexity int) int
		TotalSelections  func(childComplexity int) int
	}

	PageInfo struct {
		EndCursor       func(childComplexity int) int
		HasNextPage     func(childComplexity int) int
		HasPreviousPage func(childComplexity int) int
		StartCursor     func(childComplexity int) int
	}

	PathwayMatch struct {
		MLConfidence func(childComplexity int) int
		MatchReasons func(childComplexity int) int
		MatchScore   func(childComplexity int) int
		Pathway      func(childComplexity int) int
	}

	PathwayNode struct {
		ActionType          func(childComplexity int) int
		BaseConfidence      func(childComplexity int) int
		Children            func(childComplexity int) int
		CreatedAt           func(childComplexity int) int
		DecisionFactors     func(childComplexity int) int
		Description         func(childComplexity int) int
		ID                  func(childComplexity int) int
		IsActive            func(childComplexity int) int
		NodeType            func(childComplexity int) int
		ParentNodeID        func(childComplexity int) int
		Pathway             func(childComplexity int) int
		PathwayID           func(childComplexity int) int
		SelectionStats      func(childComplexity int) int
		SortOrder           func(childComplexity int) int
		SuggestedTemplateID func(childComplexity int) int
		Title               func(childComplexity int) int
		UpdatedAt           func(childComplexity int) int
	}

	PathwayNodeOutcome struct {
		CreatedAt   func(childComplexity int) int
		Description func(childComplexity int) int
		ID          func(childComplexity int) int
		NodeID      func(childComplexity int) int
		ObservedAt  func(childComplexity int) int
		OutcomeType func(childComplexity int) int
		RecordedBy  func(childComplexity int) int
		UpdatedAt   func(childComplexity int) int
	}

	PathwayUsageStats struct {
		Abandoned      func(childComplexity int) int
		Active         func(childComplexity int) int
		Completed      func(childComplexity int) int
		CompletionRate func(childComplexity int) int
		PathwayID      func(childComplexity int) int
		TotalInstances func(childComplexity int) int
	}

	PatientPathwayInstance struct {
		AbandonedAt func(childComplexity int) int
		CompletedAt func(childComplexity int) int
		ID          func(childComplexity int) int
		MLModelID   func(childComplexity int) int
		Pathway     func(childComplexity int) int
		PathwayID   func(childComplexity int) int
		PatientID   func(childComplexity int) int
		ProviderID  func(childComplexity int) int
		Selections  func(childComplexity int) int
		StartedAt   func(childComplexity int) int
		Status      func(childComplexity int) int
	}

	PatientPathwaySelection struct {
		CreatedAt           func(childComplexity int) int
		CreatedBy           func(childComplexity int) int
		ID                  func(childComplexity int) int
		InstanceID          func(childComplexity int) int
		Node                func(childComplexity int) int
		NodeID              func(childComplexity int) int
		OverrideReason      func(childComplexity int) int
		ResultingCarePlanID func(childComplexity int) int
		SelectionType       func(childComplexity int) int
	}

	Query struct {
		ClinicalPathway             func(childComplexity int, id string) int
		ClinicalPathwayBySlug       func(childComplexity int, slug string) int
		ClinicalPathways            func(childComplexity int, filter *ClinicalPathwayFilter, first *int, after *string) int
		GetDecisionTree             func(childComplexity int, pathwayID string, patientContext *PatientContextInput) int
		NodeOutcomes                func(childComplexity int, nodeID string) int
		PathwayInstance             func(childComplexity int, id string) int
		PathwayNode                 func(childComplexity int, id string) int
		PathwayTree                 func(childComplexity int, pathwayID string) int
		PatientPathwayInstances     func(childComplexity int, patientID string) int
		RecommendPathwaysForPatient func(childComplexity int, context PatientContextInput, first *int) int
	}

	TempIdMapping struct {
		NodeID func(childComplexity int) int
		TempID func(childComplexity int) int
	}

	TreeSaveResult struct {
		CreatedCount func(childComplexity int) int
		PathwayID    func(childComplexity int) int
		TempIDMap    func(childComplexity int) int
		UpdatedCount func(childComplexity int) int
		Version      func(childComplexity int) int
	}
}

type ClinicalPathwayResolver interface {
	RootNode(ctx context.Context, obj *entities.ClinicalPathway) (*entities.PathwayNode, error)
	UsageStats(ctx context.Context, obj *entities.ClinicalPathway) (*entities.PathwayUsageStats, error)
}
type MutationResolver interface {
	CreateClinicalPathway(ctx context.Context, input CreateClinicalPathwayInput) (*entities.ClinicalPathway, error)
	UpdateClinicalPathway(ctx context.Context, id string, input UpdateClinicalPathwayInput) (*entities.ClinicalPathway, error)
	DeleteClinicalPathway(ctx context.Context, id string) (bool, error)
	PublishClinicalPathway(ctx context.Context, id string) (*entities.ClinicalPathway, error)
	UnpublishClinicalPathway(ctx context.Context, id string) (*entities.ClinicalPathway, error)
	DuplicateClinicalPathway(ctx context.Context, id string, newName string, createdBy string) (*entities.ClinicalPathway, error)
	CreatePathwayNode(ctx context.Context, input CreatePathwayNodeInput) (*entities.PathwayNode, error)
	UpdatePathwayNode(ctx context.Context, id string, input UpdatePathwayNodeInput) (*entities.PathwayNode, error)
	DeletePathwayNode(ctx context.Context, id string) (bool, error)
	MovePathwayNode(ctx context.Context, id string, input MovePathwayNodeInput) (*entities.PathwayNode, error)
	StartPathwayInstance(ctx context.Context, input StartPathwayInstanceInput) (*entities.PatientPathwayInstance, error)
	RecordPathwaySelection(ctx context.Context, input RecordPathwaySelectionInput) (*entities.PatientPathwaySelection, error)
	CompletePathwayInstance(ctx context.Context, id string) (*entities.PatientPathwayInstance, error)
	AbandonPathwayInstance(ctx context.Context, id string) (*entities.PatientPathwayInstance, error)
	LinkSelectionToCarePlan(ctx context.Context, selectionID string, carePlanID string) (*entities.PatientPathwaySelection, error)
	RecordNodeOutcome(ctx context.Context, input RecordNodeOutcomeInput) (*entities.PathwayNodeOutcome, error)
	UpdateNodeOutcome(ctx context.Context, id string, input UpdateNodeOutcomeInput) (*entities.PathwayNodeOutcome, error)
	DeleteNodeOutcome(ctx context.Context, id string) (bool, error)
	SaveDecisionTree(ctx context.Context, input SaveDecisionTreeInput) (*entities.TreeSaveResult, error)
}
type PathwayNodeResolver interface {
	Pathway(ctx context.Context, obj *entities.PathwayNode) (*entities.ClinicalPathway, error)
	Children(ctx context.Context, obj *entities.PathwayNode) ([]*entities.PathwayNode, error)
	SelectionStats(ctx context.Context, obj *entities.PathwayNode) (*entities.NodeSelectionStats, error)
}
type PatientPathwayInstanceResolver interface {
	Pathway(ctx context.Context, obj *entities.PatientPathwayInstance) (*entities.ClinicalPathway, error)
	Selections(ctx context.Context, obj *entities.PatientPathwayInstance) ([]*entities.PatientPathwaySelection, error)
}
type PatientPathwaySelectionResolver interface {
	Node(ctx context.Context, obj *entities.PatientPathwaySelection) (*entities.PathwayNode, error)
}
type QueryResolver interface {
	ClinicalPathway(ctx context.Context, id string) (*entities.ClinicalPathway, error)
	ClinicalPathwayBySlug(ctx context.Context, slug string) (*entities.ClinicalPathway, error)
	ClinicalPathways(ctx context.Context, filter *ClinicalPathwayFilter, first *int, after *string) (*entities.PathwayConnection, error)
	PathwayNode(ctx context.Context, id string) (*entities.PathwayNode, error)
	PathwayTree(ctx context.Context, pathwayID string) (*entities.DecisionTreeNode, error)
	GetDecisionTree(ctx context.Context, pathwayID string, patientContext *PatientContextInput) (*entities.DecisionTreeResult, error)
	RecommendPathwaysForPatient(ctx context.Context, context PatientContextInput, first *int) ([]*entities.PathwayMatch, error)
	NodeOutcomes(ctx context.Context, nodeID string) ([]*entities.PathwayNodeOutcome, error)
	PathwayInstance(ctx context.Context, id string) (*entities.PatientPathwayInstance, error)
	PatientPathwayInstances(ctx context.Context, patientID string) ([]*entities.PatientPathwayInstance, error)
}
type TreeSaveResultResolver interface {
	TempIDMap(ctx context.Context, obj *entities.TreeSaveResult) ([]*TempIDMapping, error)
}

type executableSchema struct {
	schema     *ast.Schema
	resolvers  ResolverRoot
	directives DirectiveRoot
	complexity ComplexityRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	if e.schema != nil {
		return e.schema
	}
	return parsedSchema
}

func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	ec := executionContext{nil, e, 0, 0, nil}
	_ = ec
	switch typeName + "." + field {

	case "ClinicalPathway.conditionCodes":
		if e.complexity.ClinicalPathway.ConditionCodes == nil {
			break
		}

		return e.complexity.ClinicalPathway.ConditionCodes(childComplexity), true
	case "ClinicalPathway.createdAt":
		if e.complexity.ClinicalPathway.CreatedAt == nil {
			break
		}

		return e.complexity.ClinicalPathway.CreatedAt(childComplexity), true
	case "ClinicalPathway.createdBy":
		if e.complexity.ClinicalPathway.CreatedBy == nil {
			break
		}

		return e.complexity.ClinicalPathway.CreatedBy(childComplexity), true
	case "ClinicalPathway.description":
		if e.complexity.ClinicalPathway.Description == nil {
			break
		}

		return e.complexity.ClinicalPathway.Description(childComplexity), true
	case "ClinicalPathway.evidenceGrade":
		if e.complexity.ClinicalPathway.EvidenceGrade == nil {
			break
		}

		return e.complexity.ClinicalPathway.EvidenceGrade(childComplexity), true
	case "ClinicalPathway.evidenceSource":
		if e.complexity.ClinicalPathway.EvidenceSource == nil {
			break
		}

		return e.complexity.ClinicalPathway.EvidenceSource(childComplexity), true
	case "ClinicalPathway.id":
		if e.complexity.ClinicalPathway.ID == nil {
			break
		}

		return e.complexity.ClinicalPathway.ID(childComplexity), true
	case "ClinicalPathway.isActive":
		if e.complexity.ClinicalPathway.IsActive == nil {
			break
		}

		return e.complexity.ClinicalPathway.IsActive(childComplexity), true
	case "ClinicalPathway.isPublished":
		if e.complexity.ClinicalPathway.IsPublished == nil {
			break
		}

		return e.complexity.ClinicalPathway.IsPublished(childComplexity), true
	case "ClinicalPathway.name":
		if e.complexity.ClinicalPathway.Name == nil {
			break
		}

		return e.complexity.ClinicalPathway.Name(childComplexity), true
	case "ClinicalPathway.rootNode":
		if e.complexity.ClinicalPathway.RootNode == nil {
			break
		}

		return e.complexity.ClinicalPathway.RootNode(childComplexity), true
	case "ClinicalPathway.slug":
		if e.complexity.ClinicalPathway.Slug == nil {
			break
		}

		return e.complexity.ClinicalPathway.Slug(childComplexity), true
	case "ClinicalPathway.updatedAt":
		if e.complexity.ClinicalPathway.UpdatedAt == nil {
			break
		}

		return e.complexity.ClinicalPathway.UpdatedAt(childComplexity), true
	case "ClinicalPathway.usageStats":
		if e.complexity.ClinicalPathway.UsageStats == nil {
			break
		}

		return e.complexity.ClinicalPathway.UsageStats(childComplexity), true
	case "ClinicalPathway.version":
		if e.complexity.ClinicalPathway.Version == nil {
			break
		}

		return e.complexity.ClinicalPathway.Version(childComplexity), true
	case "ClinicalPathway.versionLabel":
		if e.complexity.ClinicalPathway.VersionLabel == nil {
			break
		}

		return e.complexity.ClinicalPathway.VersionLabel(childComplexity), true

	case "ClinicalPathwayConnection.edges":
		if e.complexity.ClinicalPathwayConnection.Edges == nil {
			break
		}

		return e.complexity.ClinicalPathwayConnection.Edges(childComplexity), true
	case "ClinicalPathwayConnection.pageInfo":
		if e.complexity.ClinicalPathwayConnection.PageInfo == nil {
			break
		}

		return e.complexity.ClinicalPathwayConnection.PageInfo(childComplexity), true
	case "ClinicalPathwayConnection.totalCount":
		if e.complexity.ClinicalPathwayConnection.TotalCount == nil {
			break
		}

		return e.complexity.ClinicalPathwayConnection.TotalCount(childComplexity), true

	case "ClinicalPathwayEdge.cursor":
		if e.complexity.ClinicalPathwayEdge.Cursor == nil {
			break
		}

		return e.complexity.ClinicalPathwayEdge.Cursor(childComplexity), true
	case "ClinicalPathwayEdge.node":
		if e.complexity.ClinicalPathwayEdge.Node == nil {
			break
		}

		return e.complexity.ClinicalPathwayEdge.Node(childComplexity), true

	case "DecisionTreeNode.alternativeCount":
		if e.complexity.DecisionTreeNode.AlternativeCount == nil {
			break
		}

		return e.complexity.DecisionTreeNode.AlternativeCount(childComplexity), true
	case "DecisionTreeNode.children":
		if e.complexity.DecisionTreeNode.Children == nil {
			break
		}

		return e.complexity.DecisionTreeNode.Children(childComplexity), true
	case "DecisionTreeNode.confidence":
		if e.complexity.DecisionTreeNode.Confidence == nil {
			break
		}

		return e.complexity.DecisionTreeNode.Confidence(childComplexity), true
	case "DecisionTreeNode.isRecommendedPath":
		if e.complexity.DecisionTreeNode.IsRecommendedPath == nil {
			break
		}

		return e.complexity.DecisionTreeNode.IsRecommendedPath(childComplexity), true
	case "DecisionTreeNode.node":
		if e.complexity.DecisionTreeNode.Node == nil {
			break
		}

		return e.complexity.DecisionTreeNode.Node(childComplexity), true
	case "DecisionTreeNode.recommendation":
		if e.complexity.DecisionTreeNode.Recommendation == nil {
			break
		}

		return e.complexity.DecisionTreeNode.Recommendation(childComplexity), true

	case "DecisionTreeResult.modelVersion":
		if e.complexity.DecisionTreeResult.ModelVersion == nil {
			break
		}

		return e.complexity.DecisionTreeResult.ModelVersion(childComplexity), true
	case "DecisionTreeResult.pathway":
		if e.complexity.DecisionTreeResult.Pathway == nil {
			break
		}

		return e.complexity.DecisionTreeResult.Pathway(childComplexity), true
	case "DecisionTreeResult.processingTimeMs":
		if e.complexity.DecisionTreeResult.ProcessingTimeMs == nil {
			break
		}

		return e.complexity.DecisionTreeResult.ProcessingTimeMs(childComplexity), true
	case "DecisionTreeResult.tree":
		if e.complexity.DecisionTreeResult.Tree == nil {
			break
		}

		return e.complexity.DecisionTreeResult.Tree(childComplexity), true

	case "Mutation.abandonPathwayInstance":
		if e.complexity.Mutation.AbandonPathwayInstance == nil {
			break
		}

		args, err := ec.field_Mutation_abandonPathwayInstance_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.AbandonPathwayInstance(childComplexity, args["id"].(string)), true
	case "Mutation.completePathwayInstance":
		if e.complexity.Mutation.CompletePathwayInstance == nil {
			break
		}

		args, err := ec.field_Mutation_completePathwayInstance_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CompletePathwayInstance(childComplexity, args["id"].(string)), true
	case "Mutation.createClinicalPathway":
		if e.complexity.Mutation.CreateClinicalPathway == nil {
			break
		}

		args, err := ec.field_Mutation_createClinicalPathway_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateClinicalPathway(childComplexity, args["input"].(CreateClinicalPathwayInput)), true
	case "Mutation.createPathwayNode":
		if e.complexity.Mutation.CreatePathwayNode == nil {
			break
		}

		args, err := ec.field_Mutation_createPathwayNode_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreatePathwayNode(childComplexity, args["input"].(CreatePathwayNodeInput)), true
	case "Mutation.deleteClinicalPathway":
		if e.complexity.Mutation.DeleteClinicalPathway == nil {
			break
		}

		args, err := ec.field_Mutation_deleteClinicalPathway_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteClinicalPathway(childComplexity, args["id"].(string)), true
	case "Mutation.deleteNodeOutcome":
		if e.complexity.Mutation.DeleteNodeOutcome == nil {
			break
		}

		args, err := ec.field_Mutation_deleteNodeOutcome_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteNodeOutcome(childComplexity, args["id"].(string)), true
	case "Mutation.deletePathwayNode":
		if e.complexity.Mutation.DeletePathwayNode == nil {
			break
		}

		args, err := ec.field_Mutation_deletePathwayNode_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeletePathwayNode(childComplexity, args["id"].(string)), true
	case "Mutation.duplicateClinicalPathway":
		if e.complexity.Mutation.DuplicateClinicalPathway == nil {
			break
		}

		args, err := ec.field_Mutation_duplicateClinicalPathway_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DuplicateClinicalPathway(childComplexity, args["id"].(string), args["newName"].(string), args["createdBy"].(string)), true
	case "Mutation.linkSelectionToCarePlan":
		if e.complexity.Mutation.LinkSelectionToCarePlan == nil {
			break
		}

		args, err := ec.field_Mutation_linkSelectionToCarePlan_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.LinkSelectionToCarePlan(childComplexity, args["selectionId"].(string), args["carePlanId"].(string)), true
	case "Mutation.movePathwayNode":
		if e.complexity.Mutation.MovePathwayNode == nil {
			break
		}

		args, err := ec.field_Mutation_movePathwayNode_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MovePathwayNode(childComplexity, args["id"].(string), args["input"].(MovePathwayNodeInput)), true
	case "Mutation.publishClinicalPathway":
		if e.complexity.Mutation.PublishClinicalPathway == nil {
			break
		}

		args, err := ec.field_Mutation_publishClinicalPathway_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.PublishClinicalPathway(childComplexity, args["id"].(string)), true
	case "Mutation.recordNodeOutcome":
		if e.complexity.Mutation.RecordNodeOutcome == nil {
			break
		}

		args, err := ec.field_Mutation_recordNodeOutcome_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RecordNodeOutcome(childComplexity, args["input"].(RecordNodeOutcomeInput)), true
	case "Mutation.recordPathwaySelection":
		if e.complexity.Mutation.RecordPathwaySelection == nil {
			break
		}

		args, err := ec.field_Mutation_recordPathwaySelection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RecordPathwaySelection(childComplexity, args["input"].(RecordPathwaySelectionInput)), true
	case "Mutation.saveDecisionTree":
		if e.complexity.Mutation.SaveDecisionTree == nil {
			break
		}

		args, err := ec.field_Mutation_saveDecisionTree_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.SaveDecisionTree(childComplexity, args["input"].(SaveDecisionTreeInput)), true
	case "Mutation.startPathwayInstance":
		if e.complexity.Mutation.StartPathwayInstance == nil {
			break
		}

		args, err := ec.field_Mutation_startPathwayInstance_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.StartPathwayInstance(childComplexity, args["input"].(StartPathwayInstanceInput)), true
	case "Mutation.unpublishClinicalPathway":
		if e.complexity.Mutation.UnpublishClinicalPathway == nil {
			break
		}

		args, err := ec.field_Mutation_unpublishClinicalPathway_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UnpublishClinicalPathway(childComplexity, args["id"].(string)), true
	case "Mutation.updateClinicalPathway":
		if e.complexity.Mutation.UpdateClinicalPathway == nil {
			break
		}

		args, err := ec.field_Mutation_updateClinicalPathway_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateClinicalPathway(childComplexity, args["id"].(string), args["input"].(UpdateClinicalPathwayInput)), true
	case "Mutation.updateNodeOutcome":
		if e.complexity.Mutation.UpdateNodeOutcome == nil {
			break
		}

		args, err := ec.field_Mutation_updateNodeOutcome_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateNodeOutcome(childComplexity, args["id"].(string), args["input"].(UpdateNodeOutcomeInput)), true
	case "Mutation.updatePathwayNode":
		if e.complexity.Mutation.UpdatePathwayNode == nil {
			break
		}

		args, err := ec.field_Mutation_updatePathwayNode_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdatePathwayNode(childComplexity, args["id"].(string), args["input"].(UpdatePathwayNodeInput)), true

	case "NodeRecommendation.actionType":
		if e.complexity.NodeRecommendation.ActionType == nil {
			break
		}

		return e.complexity.NodeRecommendation.ActionType(childComplexity), true
	case "NodeRecommendation.confidence":
		if e.complexity.NodeRecommendation.Confidence == nil {
			break
		}

		return e.complexity.NodeRecommendation.Confidence(childComplexity), true
	case "NodeRecommendation.description":
		if e.complexity.NodeRecommendation.Description == nil {
			break
		}

		return e.complexity.NodeRecommendation.Description(childComplexity), true
	case "NodeRecommendation.templateId":
		if e.complexity.NodeRecommendation.TemplateID == nil {
			break
		}

		return e.complexity.NodeRecommendation.TemplateID(childComplexity), true
	case "NodeRecommendation.title":
		if e.complexity.NodeRecommendation.Title == nil {
			break
		}

		return e.complexity.NodeRecommendation.Title(childComplexity), true

	case "NodeSelectionStats.autoApplied":
		if e.complexity.NodeSelectionStats.AutoApplied == nil {
			break
		}

		return e.complexity.NodeSelectionStats.AutoApplied(childComplexity), true
	case "NodeSelectionStats.mlRecommended":
		if e.complexity.NodeSelectionStats.MLRecommended == nil {
			break
		}

		return e.complexity.NodeSelectionStats.MLRecommended(childComplexity), true
	case "NodeSelectionStats.nodeId":
		if e.complexity.NodeSelectionStats.NodeID == nil {
			break
		}

		return e.complexity.NodeSelectionStats.NodeID(childComplexity), true
	case "NodeSelectionStats.overrideCount":
		if e.complexity.NodeSelectionStats.OverrideCount == nil {
			break
		}

		return e.complexity.NodeSelectionStats.OverrideCount(childComplexity), true
	case "NodeSelectionStats.providerSelected":
		if e.complexity.NodeSelectionStats.ProviderSelected == nil {
			break
		}

		return e.complexity.NodeSelectionStats.ProviderSelected(childComplexity), true
	case "NodeSelectionStats.totalSelections":
		if e.complexity.NodeSelectionStats.TotalSelections == nil {
			break
		}

		return e.complexity.NodeSelectionStats.TotalSelections(childComplexity), true

	case "PageInfo.endCursor":
		if e.complexity.PageInfo.EndCursor == nil {
			break
		}

		return e.complexity.PageInfo.EndCursor(childComplexity), true
	case "PageInfo.hasNextPage":
		if e.complexity.PageInfo.HasNextPage == nil {
			break
		}

		return e.complexity.PageInfo.HasNextPage(childComplexity), true
	case "PageInfo.hasPreviousPage":
		if e.complexity.PageInfo.HasPreviousPage == nil {
			break
		}

		return e.complexity.PageInfo.HasPreviousPage(childComplexity), true
	case "PageInfo.startCursor":
		if e.complexity.PageInfo.StartCursor == nil {
			break
		}

		return e.complexity.PageInfo.StartCursor(childComplexity), true

	case "PathwayMatch.mlConfidence":
		if e.complexity.PathwayMatch.MLConfidence == nil {
			break
		}

		return e.complexity.PathwayMatch.MLConfidence(childComplexity), true
	case "PathwayMatch.matchReasons":
		if e.complexity.PathwayMatch.MatchReasons == nil {
			break
		}

		return e.complexity.PathwayMatch.MatchReasons(childComplexity), true
	case "PathwayMatch.matchScore":
		if e.complexity.PathwayMatch.MatchScore == nil {
			break
		}

		return e.complexity.PathwayMatch.MatchScore(childComplexity), true
	case "PathwayMatch.pathway":
		if e.complexity.PathwayMatch.Pathway == nil {
			break
		}

		return e.complexity.PathwayMatch.Pathway(childComplexity), true

	case "PathwayNode.actionType":
		if e.complexity.PathwayNode.ActionType == nil {
			break
		}

		return e.complexity.PathwayNode.ActionType(childComplexity), true
	case "PathwayNode.baseConfidence":
		if e.complexity.PathwayNode.BaseConfidence == nil {
			break
		}

		return e.complexity.PathwayNode.BaseConfidence(childComplexity), true
	case "PathwayNode.children":
		if e.complexity.PathwayNode.Children == nil {
			break
		}

		return e.complexity.PathwayNode.Children(childComplexity), true
	case "PathwayNode.createdAt":
		if e.complexity.PathwayNode.CreatedAt == nil {
			break
		}

		return e.complexity.PathwayNode.CreatedAt(childComplexity), true
	case "PathwayNode.decisionFactors":
		if e.complexity.PathwayNode.DecisionFactors == nil {
			break
		}

		return e.complexity.PathwayNode.DecisionFactors(childComplexity), true
	case "PathwayNode.description":
		if e.complexity.PathwayNode.Description == nil {
			break
		}

		return e.complexity.PathwayNode.Description(childComplexity), true
	case "PathwayNode.id":
		if e.complexity.PathwayNode.ID == nil {
			break
		}

		return e.complexity.PathwayNode.ID(childComplexity), true
	case "PathwayNode.isActive":
		if e.complexity.PathwayNode.IsActive == nil {
			break
		}

		return e.complexity.PathwayNode.IsActive(childComplexity), true
	case "PathwayNode.nodeType":
		if e.complexity.PathwayNode.NodeType == nil {
			break
		}

		return e.complexity.PathwayNode.NodeType(childComplexity), true
	case "PathwayNode.parentNodeId":
		if e.complexity.PathwayNode.ParentNodeID == nil {
			break
		}

		return e.complexity.PathwayNode.ParentNodeID(childComplexity), true
	case "PathwayNode.pathway":
		if e.complexity.PathwayNode.Pathway == nil {
			break
		}

		return e.complexity.PathwayNode.Pathway(childComplexity), true
	case "PathwayNode.pathwayId":
		if e.complexity.PathwayNode.PathwayID == nil {
			break
		}

		return e.complexity.PathwayNode.PathwayID(childComplexity), true
	case "PathwayNode.selectionStats":
		if e.complexity.PathwayNode.SelectionStats == nil {
			break
		}

		return e.complexity.PathwayNode.SelectionStats(childComplexity), true
	case "PathwayNode.sortOrder":
		if e.complexity.PathwayNode.SortOrder == nil {
			break
		}

		return e.complexity.PathwayNode.SortOrder(childComplexity), true
	case "PathwayNode.suggestedTemplateId":
		if e.complexity.PathwayNode.SuggestedTemplateID == nil {
			break
		}

		return e.complexity.PathwayNode.SuggestedTemplateID(childComplexity), true
	case "PathwayNode.title":
		if e.complexity.PathwayNode.Title == nil {
			break
		}

		return e.complexity.PathwayNode.Title(childComplexity), true
	case "PathwayNode.updatedAt":
		if e.complexity.PathwayNode.UpdatedAt == nil {
			break
		}

		return e.complexity.PathwayNode.UpdatedAt(childComplexity), true

	case "PathwayNodeOutcome.createdAt":
		if e.complexity.PathwayNodeOutcome.CreatedAt == nil {
			break
		}

		return e.complexity.PathwayNodeOutcome.CreatedAt(childComplexity), true
	case "PathwayNodeOutcome.description":
		if e.complexity.PathwayNodeOutcome.Description == nil {
			break
		}

		return e.complexity.PathwayNodeOutcome.Description(childComplexity), true
	case "PathwayNodeOutcome.id":
		if e.complexity.PathwayNodeOutcome.ID == nil {
			break
		}

		return e.complexity.PathwayNodeOutcome.ID(childComplexity), true
	case "PathwayNodeOutcome.nodeId":
		if e.complexity.PathwayNodeOutcome.NodeID == nil {
			break
		}

		return e.complexity.PathwayNodeOutcome.NodeID(childComplexity), true
	case "PathwayNodeOutcome.observedAt":
		if e.complexity.PathwayNodeOutcome.ObservedAt == nil {
			break
		}

		return e.complexity.PathwayNodeOutcome.ObservedAt(childComplexity), true
	case "PathwayNodeOutcome.outcomeType":
		if e.complexity.PathwayNodeOutcome.OutcomeType == nil {
			break
		}

		return e.complexity.PathwayNodeOutcome.OutcomeType(childComplexity), true
	case "PathwayNodeOutcome.recordedBy":
		if e.complexity.PathwayNodeOutcome.RecordedBy == nil {
			break
		}

		return e.complexity.PathwayNodeOutcome.RecordedBy(childComplexity), true
	case "PathwayNodeOutcome.updatedAt":
		if e.complexity.PathwayNodeOutcome.UpdatedAt == nil {
			break
		}

		return e.complexity.PathwayNodeOutcome.UpdatedAt(childComplexity), true

	case "PathwayUsageStats.abandoned":
		if e.complexity.PathwayUsageStats.Abandoned == nil {
			break
		}

		return e.complexity.PathwayUsageStats.Abandoned(childComplexity), true
	case "PathwayUsageStats.active":
		if e.complexity.PathwayUsageStats.Active == nil {
			break
		}

		return e.complexity.PathwayUsageStats.Active(childComplexity), true
	case "PathwayUsageStats.completed":
		if e.complexity.PathwayUsageStats.Completed == nil {
			break
		}

		return e.complexity.PathwayUsageStats.Completed(childComplexity), true
	case "PathwayUsageStats.completionRate":
		if e.complexity.PathwayUsageStats.CompletionRate == nil {
			break
		}

		return e.complexity.PathwayUsageStats.CompletionRate(childComplexity), true
	case "PathwayUsageStats.pathwayId":
		if e.complexity.PathwayUsageStats.PathwayID == nil {
			break
		}

		return e.complexity.PathwayUsageStats.PathwayID(childComplexity), true
	case "PathwayUsageStats.totalInstances":
		if e.complexity.PathwayUsageStats.TotalInstances == nil {
			break
		}

		return e.complexity.PathwayUsageStats.TotalInstances(childComplexity), true

	case "PatientPathwayInstance.abandonedAt":
		if e.complexity.PatientPathwayInstance.AbandonedAt == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.AbandonedAt(childComplexity), true
	case "PatientPathwayInstance.completedAt":
		if e.complexity.PatientPathwayInstance.CompletedAt == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.CompletedAt(childComplexity), true
	case "PatientPathwayInstance.id":
		if e.complexity.PatientPathwayInstance.ID == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.ID(childComplexity), true
	case "PatientPathwayInstance.mlModelId":
		if e.complexity.PatientPathwayInstance.MLModelID == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.MLModelID(childComplexity), true
	case "PatientPathwayInstance.pathway":
		if e.complexity.PatientPathwayInstance.Pathway == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.Pathway(childComplexity), true
	case "PatientPathwayInstance.pathwayId":
		if e.complexity.PatientPathwayInstance.PathwayID == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.PathwayID(childComplexity), true
	case "PatientPathwayInstance.patientId":
		if e.complexity.PatientPathwayInstance.PatientID == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.PatientID(childComplexity), true
	case "PatientPathwayInstance.providerId":
		if e.complexity.PatientPathwayInstance.ProviderID == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.ProviderID(childComplexity), true
	case "PatientPathwayInstance.selections":
		if e.complexity.PatientPathwayInstance.Selections == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.Selections(childComplexity), true
	case "PatientPathwayInstance.startedAt":
		if e.complexity.PatientPathwayInstance.StartedAt == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.StartedAt(childComplexity), true
	case "PatientPathwayInstance.status":
		if e.complexity.PatientPathwayInstance.Status == nil {
			break
		}

		return e.complexity.PatientPathwayInstance.Status(childComplexity), true

	case "PatientPathwaySelection.createdAt":
		if e.complexity.PatientPathwaySelection.CreatedAt == nil {
			break
		}

		return e.complexity.PatientPathwaySelection.CreatedAt(childComplexity), true
	case "PatientPathwaySelection.createdBy":
		if e.complexity.PatientPathwaySelection.CreatedBy == nil {
			break
		}

		return e.complexity.PatientPathwaySelection.CreatedBy(childComplexity), true
	case "PatientPathwaySelection.id":
		if e.complexity.PatientPathwaySelection.ID == nil {
			break
		}

		return e.complexity.PatientPathwaySelection.ID(childComplexity), true
	case "PatientPathwaySelection.instanceId":
		if e.complexity.PatientPathwaySelection.InstanceID == nil {
			break
		}

		return e.complexity.PatientPathwaySelection.InstanceID(childComplexity), true
	case "PatientPathwaySelection.node":
		if e.complexity.PatientPathwaySelection.Node == nil {
			break
		}

		return e.complexity.PatientPathwaySelection.Node(childComplexity), true
	case "PatientPathwaySelection.nodeId":
		if e.complexity.PatientPathwaySelection.NodeID == nil {
			break
		}

		return e.complexity.PatientPathwaySelection.NodeID(childComplexity), true
	case "PatientPathwaySelection.overrideReason":
		if e.complexity.PatientPathwaySelection.OverrideReason == nil {
			break
		}

		return e.complexity.PatientPathwaySelection.OverrideReason(childComplexity), true
	case "PatientPathwaySelection.resultingCarePlanId":
		if e.complexity.PatientPathwaySelection.ResultingCarePlanID == nil {
			break
		}

		return e.complexity.PatientPathwaySelection.ResultingCarePlanID(childComplexity), true
	case "PatientPathwaySelection.selectionType":
		if e.complexity.PatientPathwaySelection.SelectionType == nil {
			break
		}

		return e.complexity.PatientPathwaySelection.SelectionType(childComplexity), true

	case "Query.clinicalPathway":
		if e.complexity.Query.ClinicalPathway == nil {
			break
		}

		args, err := ec.field_Query_clinicalPathway_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ClinicalPathway(childComplexity, args["id"].(string)), true
	case "Query.clinicalPathwayBySlug":
		if e.complexity.Query.ClinicalPathwayBySlug == nil {
			break
		}

		args, err := ec.field_Query_clinicalPathwayBySlug_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ClinicalPathwayBySlug(childComplexity, args["slug"].(string)), true
	case "Query.clinicalPathways":
		if e.complexity.Query.ClinicalPathways == nil {
			break
		}

		args, err := ec.field_Query_clinicalPathways_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ClinicalPathways(childComplexity, args["filter"].(*ClinicalPathwayFilter), args["first"].(*int), args["after"].(*string)), true
	case "Query.getDecisionTree":
		if e.complexity.Query.GetDecisionTree == nil {
			break
		}

		args, err := ec.field_Query_getDecisionTree_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.GetDecisionTree(childComplexity, args["pathwayId"].(string), args["patientContext"].(*PatientContextInput)), true
	case "Query.nodeOutcomes":
		if e.complexity.Query.NodeOutcomes == nil {
			break
		}

		args, err := ec.field_Query_nodeOutcomes_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.NodeOutcomes(childComplexity, args["nodeId"].(string)), true
	case "Query.pathwayInstance":
		if e.complexity.Query.PathwayInstance == nil {
			break
		}

		args, err := ec.field_Query_pathwayInstance_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.PathwayInstance(childComplexity, args["id"].(string)), true
	case "Query.pathwayNode":
		if e.complexity.Query.PathwayNode == nil {
			break
		}

		args, err := ec.field_Query_pathwayNode_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.PathwayNode(childComplexity, args["id"].(string)), true
	case "Query.pathwayTree":
		if e.complexity.Query.PathwayTree == nil {
			break
		}

		args, err := ec.field_Query_pathwayTree_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.PathwayTree(childComplexity, args["pathwayId"].(string)), true
	case "Query.patientPathwayInstances":
		if e.complexity.Query.PatientPathwayInstances == nil {
			break
		}

		args, err := ec.field_Query_patientPathwayInstances_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.PatientPathwayInstances(childComplexity, args["patientId"].(string)), true
	case "Query.recommendPathwaysForPatient":
		if e.complexity.Query.RecommendPathwaysForPatient == nil {
			break
		}

		args, err := ec.field_Query_recommendPathwaysForPatient_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.RecommendPathwaysForPatient(childComplexity, args["context"].(PatientContextInput), args["first"].(*int)), true

	case "TempIdMapping.nodeId":
		if e.complexity.TempIdMapping.NodeID == nil {
			break
		}

		return e.complexity.TempIdMapping.NodeID(childComplexity), true
	case "TempIdMapping.tempId":
		if e.complexity.TempIdMapping.TempID == nil {
			break
		}

		return e.complexity.TempIdMapping.TempID(childComplexity), true

	case "TreeSaveResult.createdCount":
		if e.complexity.TreeSaveResult.CreatedCount == nil {
			break
		}

		return e.complexity.TreeSaveResult.CreatedCount(childComplexity), true
	case "TreeSaveResult.pathwayId":
		if e.complexity.TreeSaveResult.PathwayID == nil {
			break
		}

		return e.complexity.TreeSaveResult.PathwayID(childComplexity), true
	case "TreeSaveResult.tempIdMap":
		if e.complexity.TreeSaveResult.TempIDMap == nil {
			break
		}

		return e.complexity.TreeSaveResult.TempIDMap(childComplexity), true
	case "TreeSaveResult.updatedCount":
		if e.complexity.TreeSaveResult.UpdatedCount == nil {
			break
		}

		return e.complexity.TreeSaveResult.UpdatedCount(childComplexity), true
	case "TreeSaveResult.version":
		if e.complexity.TreeSaveResult.Version == nil {
			break
		}

		return e.complexity.TreeSaveResult.Version(childComplexity), true

	}
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := executionContext{opCtx, e, 0, 0, make(chan graphql.DeferredResult)}
	inputUnmarshalMap := graphql.BuildUnmarshalerMap(
		ec.unmarshalInputClinicalPathwayFilter,
		ec.unmarshalInputCreateClinicalPathwayInput,
		ec.unmarshalInputCreatePathwayNodeInput,
		ec.unmarshalInputEditorNodeInput,
		ec.unmarshalInputLabValueInput,
		ec.unmarshalInputMovePathwayNodeInput,
		ec.unmarshalInputPatientContextInput,
		ec.unmarshalInputRecordNodeOutcomeInput,
		ec.unmarshalInputRecordPathwaySelectionInput,
		ec.unmarshalInputSaveDecisionTreeInput,
		ec.unmarshalInputStartPathwayInstanceInput,
		ec.unmarshalInputUpdateClinicalPathwayInput,
		ec.unmarshalInputUpdateNodeOutcomeInput,
		ec.unmarshalInputUpdatePathwayNodeInput,
	)
	first := true

	switch opCtx.Operation.Operation {
	case ast.Query:
		return func(ctx context.Context) *graphql.Response {
			var response graphql.Response
			var data graphql.Marshaler
			if first {
				first = false
				ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
				data = ec._Query(ctx, opCtx.Operation.SelectionSet)
			} else {
				if atomic.LoadInt32(&ec.pendingDeferred) > 0 {
					result := <-ec.deferredResults
					atomic.AddInt32(&ec.pendingDeferred, -1)
					data = result.Result
					response.Path = result.Path
					response.Label = result.Label
					response.Errors = result.Errors
				} else {
					return nil
				}
			}
			var buf bytes.Buffer
			data.MarshalGQL(&buf)
			response.Data = buf.Bytes()
			if atomic.LoadInt32(&ec.deferred) > 0 {
				hasNext := atomic.LoadInt32(&ec.pendingDeferred) > 0
				response.HasNext = &hasNext
			}

			return &response
		}
	case ast.Mutation:
		return func(ctx context.Context) *graphql.Response {
			if !first {
				return nil
			}
			first = false
			ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
			data := ec._Mutation(ctx, opCtx.Operation.SelectionSet)
			var buf bytes.Buffer
			data.MarshalGQL(&buf)

			return &graphql.Response{
				Data: buf.Bytes(),
			}
		}

	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}
}

type executionContext struct {
	*graphql.OperationContext
	*executableSchema
	deferred        int32
	pendingDeferred int32
	deferredResults chan graphql.DeferredResult
}

func (ec *executionContext) processDeferredGroup(dg graphql.DeferredGroup) {
	atomic.AddInt32(&ec.pendingDeferred, 1)
	go func() {
		ctx := graphql.WithFreshResponseContext(dg.Context)
		dg.FieldSet.Dispatch(ctx)
		ds := graphql.DeferredResult{
			Path:   dg.Path,
			Label:  dg.Label,
			Result: dg.FieldSet,
			Errors: graphql.GetErrors(ctx),
		}
		// null fields should bubble up
		if dg.FieldSet.Invalids > 0 {
			ds.Result = graphql.Null
		}
		ec.deferredResults <- ds
	}()
}

func (ec *executionContext) introspectSchema() (*introspection.Schema, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapSchema(ec.Schema()), nil
}

func (ec *executionContext) introspectType(name string) (*introspection.Type, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapTypeFromDef(ec.Schema(), ec.Schema().Types[name]), nil
}

var sources = []*ast.Source{
	{Name: "../schema.graphqls", Input: `scalar DateTime

enum NodeType {
  ROOT
  DECISION
  BRANCH
  RECOMMENDATION
}

enum ActionType {
  MEDICATION
  LAB
  REFERRAL
  PROCEDURE
  EDUCATION
  MONITORING
  LIFESTYLE
  FOLLOW_UP
  URGENT_CARE
}

enum InstanceStatus {
  STARTED
  COMPLETED
  ABANDONED
}

enum SelectionType {
  ML_RECOMMENDED
  PROVIDER_SELECTED
  AUTO_APPLIED
}

type ClinicalPathway {
  id: ID!
  name: String!
  slug: String!
  description: String!
  conditionCodes: [String!]!
  versionLabel: String!
  evidenceSource: String!
  evidenceGrade: String!
  isActive: Boolean!
  isPublished: Boolean!
  version: Int!
  createdBy: String!
  createdAt: DateTime!
  updatedAt: DateTime!
  rootNode: PathwayNode
  usageStats: PathwayUsageStats!
}

type PathwayNode {
  id: ID!
  pathwayId: ID!
  parentNodeId: ID
  nodeType: NodeType!
  title: String!
  description: String!
  actionType: ActionType
  decisionFactors: [String!]!
  suggestedTemplateId: ID
  sortOrder: Int!
  baseConfidence: Float!
  isActive: Boolean!
  createdAt: DateTime!
  updatedAt: DateTime!
  pathway: ClinicalPathway!
  children: [PathwayNode!]!
  selectionStats: NodeSelectionStats!
}

type PathwayUsageStats {
  pathwayId: ID!
  totalInstances: Int!
  completed: Int!
  abandoned: Int!
  active: Int!
  completionRate: Float!
}

type NodeSelectionStats {
  nodeId: ID!
  totalSelections: Int!
  mlRecommended: Int!
  providerSelected: Int!
  autoApplied: Int!
  overrideCount: Int!
}

type PageInfo {
  hasNextPage: Boolean!
  hasPreviousPage: Boolean!
  startCursor: String
  endCursor: String
}

type ClinicalPathwayEdge {
  cursor: String!
  node: ClinicalPathway!
}

type ClinicalPathwayConnection {
  edges: [ClinicalPathwayEdge!]!
  pageInfo: PageInfo!
  totalCount: Int!
}

type NodeRecommendation {
  templateId: ID
  title: String!
  description: String!
  actionType: ActionType
  confidence: Float!
}

type DecisionTreeNode {
  node: PathwayNode!
  confidence: Float!
  isRecommendedPath: Boolean!
  alternativeCount: Int!
  recommendation: NodeRecommendation
  children: [DecisionTreeNode!]!
}

type DecisionTreeResult {
  pathway: ClinicalPathway!
  tree: DecisionTreeNode!
  modelVersion: String!
  processingTimeMs: Int!
}

type PathwayMatch {
  pathway: ClinicalPathway!
  matchScore: Float!
  matchReasons: [String!]!
  mlConfidence: Float
}

type PatientPathwayInstance {
  id: ID!
  patientId: ID!
  pathwayId: ID!
  providerId: ID!
  mlModelId: String
  status: InstanceStatus!
  startedAt: DateTime!
  completedAt: DateTime
  abandonedAt: DateTime
  pathway: ClinicalPathway!
  selections: [PatientPathwaySelection!]!
}

type PatientPathwaySelection {
  id: ID!
  instanceId: ID!
  nodeId: ID!
  selectionType: SelectionType!
  overrideReason: String
  resultingCarePlanId: ID
  createdBy: String!
  createdAt: DateTime!
  node: PathwayNode!
}

type PathwayNodeOutcome {
  id: ID!
  nodeId: ID!
  outcomeType: String!
  description: String!
  observedAt: DateTime!
  recordedBy: String!
  createdAt: DateTime!
  updatedAt: DateTime!
}

type TempIdMapping {
  tempId: String!
  nodeId: ID!
}

type TreeSaveResult {
  pathwayId: ID!
  version: Int!
  createdCount: Int!
  updatedCount: Int!
  tempIdMap: [TempIdMapping!]!
}

input LabValueInput {
  code: String!
  value: Float!
}

input PatientContextInput {
  patientId: ID!
  providerId: ID
  conditionCodes: [String!]
  age: Int
  sex: String
  medicationCodes: [String!]
  labCodes: [String!]
  labValues: [LabValueInput!]
  comorbidities: [String!]
  riskFactors: [String!]
  clinicalNotes: String
}

input ClinicalPathwayFilter {
  isActive: Boolean
  isPublished: Boolean
  conditionCode: String
}

input CreateClinicalPathwayInput {
  name: String!
  description: String
  conditionCodes: [String!]
  versionLabel: String
  evidenceSource: String
  evidenceGrade: String
  isActive: Boolean
  createdBy: String!
}

input UpdateClinicalPathwayInput {
  name: String!
  description: String
  conditionCodes: [String!]
  versionLabel: String
  evidenceSource: String
  evidenceGrade: String
  isActive: Boolean
  expectedVersion: Int
}

input CreatePathwayNodeInput {
  pathwayId: ID!
  parentNodeId: ID
  nodeType: NodeType!
  title: String!
  description: String
  actionType: ActionType
  decisionFactors: [String!]
  suggestedTemplateId: ID
  sortOrder: Int
  baseConfidence: Float
  isActive: Boolean
}

input UpdatePathwayNodeInput {
  title: String!
  description: String
  actionType: ActionType
  decisionFactors: [String!]
  suggestedTemplateId: ID
  baseConfidence: Float
  isActive: Boolean
}

input MovePathwayNodeInput {
  newParentNodeId: ID
  newSortOrder: Int
}

input StartPathwayInstanceInput {
  patientId: ID!
  pathwayId: ID!
  providerId: ID!
  patientContext: PatientContextInput
  mlModelId: String
}

input RecordPathwaySelectionInput {
  instanceId: ID!
  nodeId: ID!
  selectionType: SelectionType!
  overrideReason: String
  createdBy: String!
}

input EditorNodeInput {
  tempId: String
  id: ID
  isNew: Boolean!
  isModified: Boolean!
  nodeType: NodeType!
  title: String!
  description: String
  actionType: ActionType
  decisionFactors: [String!]
  suggestedTemplateId: ID
  baseConfidence: Float
  isActive: Boolean
  children: [EditorNodeInput!]
}

input RecordNodeOutcomeInput {
  nodeId: ID!
  outcomeType: String!
  description: String
  observedAt: DateTime
  recordedBy: String!
}

input UpdateNodeOutcomeInput {
  outcomeType: String!
  description: String
  observedAt: DateTime
}

input SaveDecisionTreeInput {
  pathwayId: ID!
  tree: EditorNodeInput!
  expectedVersion: Int
}

type Query {
  clinicalPathway(id: ID!): ClinicalPathway
  clinicalPathwayBySlug(slug: String!): ClinicalPathway
  clinicalPathways(filter: ClinicalPathwayFilter, first: Int, after: String): ClinicalPathwayConnection!
  pathwayNode(id: ID!): PathwayNode
  pathwayTree(pathwayId: ID!): DecisionTreeNode!
  getDecisionTree(pathwayId: ID!, patientContext: PatientContextInput): DecisionTreeResult!
  recommendPathwaysForPatient(context: PatientContextInput!, first: Int): [PathwayMatch!]!
  nodeOutcomes(nodeId: ID!): [PathwayNodeOutcome!]!
  pathwayInstance(id: ID!): PatientPathwayInstance
  patientPathwayInstances(patientId: ID!): [PatientPathwayInstance!]!
}

type Mutation {
  createClinicalPathway(input: CreateClinicalPathwayInput!): ClinicalPathway!
  updateClinicalPathway(id: ID!, input: UpdateClinicalPathwayInput!): ClinicalPathway!
  deleteClinicalPathway(id: ID!): Boolean!
  publishClinicalPathway(id: ID!): ClinicalPathway!
  unpublishClinicalPathway(id: ID!): ClinicalPathway!
  duplicateClinicalPathway(id: ID!, newName: String!, createdBy: String!): ClinicalPathway!
  createPathwayNode(input: CreatePathwayNodeInput!): PathwayNode!
  updatePathwayNode(id: ID!, input: UpdatePathwayNodeInput!): PathwayNode!
  deletePathwayNode(id: ID!): Boolean!
  movePathwayNode(id: ID!, input: MovePathwayNodeInput!): PathwayNode!
  startPathwayInstance(input: StartPathwayInstanceInput!): PatientPathwayInstance!
  recordPathwaySelection(input: RecordPathwaySelectionInput!): PatientPathwaySelection!
  completePathwayInstance(id: ID!): PatientPathwayInstance!
  abandonPathwayInstance(id: ID!): PatientPathwayInstance!
  linkSelectionToCarePlan(selectionId: ID!, carePlanId: ID!): PatientPathwaySelection!
  recordNodeOutcome(input: RecordNodeOutcomeInput!): PathwayNodeOutcome!
  updateNodeOutcome(id: ID!, input: UpdateNodeOutcomeInput!): PathwayNodeOutcome!
  deleteNodeOutcome(id: ID!): Boolean!
  saveDecisionTree(input: SaveDecisionTreeInput!): TreeSaveResult!
}
`, BuiltIn: false},
}
var parsedSchema = gqlparser.MustLoadSchema(sources...)

// endregion ************************** generated!.gotpl **************************

// region    ***************************** args.gotpl *****************************

func (ec *executionContext) field_Mutation_abandonPathwayInstance_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_completePathwayInstance_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createClinicalPathway_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateClinicalPathwayInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐCreateClinicalPathwayInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createPathwayNode_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreatePathwayNodeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐCreatePathwayNodeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteClinicalPathway_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteNodeOutcome_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deletePathwayNode_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_duplicateClinicalPathway_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "newName", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["newName"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "createdBy", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["createdBy"] = arg2
	return args, nil
}

func (ec *executionContext) field_Mutation_linkSelectionToCarePlan_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "selectionId", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["selectionId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "carePlanId", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["carePlanId"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_movePathwayNode_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNMovePathwayNodeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐMovePathwayNodeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_publishClinicalPathway_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_recordNodeOutcome_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNRecordNodeOutcomeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐRecordNodeOutcomeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_recordPathwaySelection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNRecordPathwaySelectionInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐRecordPathwaySelectionInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_saveDecisionTree_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNSaveDecisionTreeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐSaveDecisionTreeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_startPathwayInstance_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNStartPathwayInstanceInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐStartPathwayInstanceInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_unpublishClinicalPathway_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateClinicalPathway_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateClinicalPathwayInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐUpdateClinicalPathwayInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_updateNodeOutcome_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateNodeOutcomeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐUpdateNodeOutcomeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_updatePathwayNode_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdatePathwayNodeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐUpdatePathwayNodeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query___type_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "name", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["name"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_clinicalPathwayBySlug_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "slug", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["slug"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_clinicalPathway_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_clinicalPathways_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "filter", ec.unmarshalOClinicalPathwayFilter2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐClinicalPathwayFilter)
	if err != nil {
		return nil, err
	}
	args["filter"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "after", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["after"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_getDecisionTree_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "pathwayId", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["pathwayId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "patientContext", ec.unmarshalOPatientContextInput2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐPatientContextInput)
	if err != nil {
		return nil, err
	}
	args["patientContext"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_nodeOutcomes_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "nodeId", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["nodeId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_pathwayInstance_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_pathwayNode_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_pathwayTree_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "pathwayId", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["pathwayId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_patientPathwayInstances_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "patientId", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["patientId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_recommendPathwaysForPatient_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "context", ec.unmarshalNPatientContextInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐPatientContextInput)
	if err != nil {
		return nil, err
	}
	args["context"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg1
	return args, nil
}

func (ec *executionContext) field___Directive_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Field_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_enumValues_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_fields_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

// endregion ***************************** args.gotpl *****************************

// region    ************************** directives.gotpl **************************

// endregion ************************** directives.gotpl **************************

// region    **************************** field.gotpl *****************************

func (ec *executionContext) _ClinicalPathway_id(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_name(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_slug(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_slug,
		func(ctx context.Context) (any, error) {
			return obj.Slug, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_slug(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_description(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_conditionCodes(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_conditionCodes,
		func(ctx context.Context) (any, error) {
			return obj.ConditionCodes, nil
		},
		nil,
		ec.marshalNString2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_conditionCodes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_versionLabel(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_versionLabel,
		func(ctx context.Context) (any, error) {
			return obj.VersionLabel, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_versionLabel(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_evidenceSource(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_evidenceSource,
		func(ctx context.Context) (any, error) {
			return obj.EvidenceSource, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_evidenceSource(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_evidenceGrade(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_evidenceGrade,
		func(ctx context.Context) (any, error) {
			return obj.EvidenceGrade, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_evidenceGrade(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_isActive(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_isActive,
		func(ctx context.Context) (any, error) {
			return obj.IsActive, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_isActive(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_isPublished(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_isPublished,
		func(ctx context.Context) (any, error) {
			return obj.IsPublished, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_isPublished(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_version(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_version,
		func(ctx context.Context) (any, error) {
			return obj.Version, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_version(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_createdBy(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_createdBy,
		func(ctx context.Context) (any, error) {
			return obj.CreatedBy, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_createdBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_createdAt(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_updatedAt(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_rootNode(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_rootNode,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.ClinicalPathway().RootNode(ctx, obj)
		},
		nil,
		ec.marshalOPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_rootNode(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNode_id(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PathwayNode_pathwayId(ctx, field)
			case "parentNodeId":
				return ec.fieldContext_PathwayNode_parentNodeId(ctx, field)
			case "nodeType":
				return ec.fieldContext_PathwayNode_nodeType(ctx, field)
			case "title":
				return ec.fieldContext_PathwayNode_title(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNode_description(ctx, field)
			case "actionType":
				return ec.fieldContext_PathwayNode_actionType(ctx, field)
			case "decisionFactors":
				return ec.fieldContext_PathwayNode_decisionFactors(ctx, field)
			case "suggestedTemplateId":
				return ec.fieldContext_PathwayNode_suggestedTemplateId(ctx, field)
			case "sortOrder":
				return ec.fieldContext_PathwayNode_sortOrder(ctx, field)
			case "baseConfidence":
				return ec.fieldContext_PathwayNode_baseConfidence(ctx, field)
			case "isActive":
				return ec.fieldContext_PathwayNode_isActive(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNode_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNode_updatedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PathwayNode_pathway(ctx, field)
			case "children":
				return ec.fieldContext_PathwayNode_children(ctx, field)
			case "selectionStats":
				return ec.fieldContext_PathwayNode_selectionStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNode", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathway_usageStats(ctx context.Context, field graphql.CollectedField, obj *entities.ClinicalPathway) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathway_usageStats,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.ClinicalPathway().UsageStats(ctx, obj)
		},
		nil,
		ec.marshalNPathwayUsageStats2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayUsageStats,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathway_usageStats(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathway",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "pathwayId":
				return ec.fieldContext_PathwayUsageStats_pathwayId(ctx, field)
			case "totalInstances":
				return ec.fieldContext_PathwayUsageStats_totalInstances(ctx, field)
			case "completed":
				return ec.fieldContext_PathwayUsageStats_completed(ctx, field)
			case "abandoned":
				return ec.fieldContext_PathwayUsageStats_abandoned(ctx, field)
			case "active":
				return ec.fieldContext_PathwayUsageStats_active(ctx, field)
			case "completionRate":
				return ec.fieldContext_PathwayUsageStats_completionRate(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayUsageStats", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathwayConnection_edges(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayConnection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathwayConnection_edges,
		func(ctx context.Context) (any, error) {
			return obj.Edges, nil
		},
		nil,
		ec.marshalNClinicalPathwayEdge2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayEdgeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathwayConnection_edges(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathwayConnection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "cursor":
				return ec.fieldContext_ClinicalPathwayEdge_cursor(ctx, field)
			case "node":
				return ec.fieldContext_ClinicalPathwayEdge_node(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathwayEdge", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathwayConnection_pageInfo(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayConnection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathwayConnection_pageInfo,
		func(ctx context.Context) (any, error) {
			return obj.PageInfo, nil
		},
		nil,
		ec.marshalNPageInfo2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPageInfo,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathwayConnection_pageInfo(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathwayConnection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "hasNextPage":
				return ec.fieldContext_PageInfo_hasNextPage(ctx, field)
			case "hasPreviousPage":
				return ec.fieldContext_PageInfo_hasPreviousPage(ctx, field)
			case "startCursor":
				return ec.fieldContext_PageInfo_startCursor(ctx, field)
			case "endCursor":
				return ec.fieldContext_PageInfo_endCursor(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PageInfo", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathwayConnection_totalCount(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayConnection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathwayConnection_totalCount,
		func(ctx context.Context) (any, error) {
			return obj.TotalCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathwayConnection_totalCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathwayConnection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathwayEdge_cursor(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayEdge) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathwayEdge_cursor,
		func(ctx context.Context) (any, error) {
			return obj.Cursor, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathwayEdge_cursor(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathwayEdge",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ClinicalPathwayEdge_node(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayEdge) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ClinicalPathwayEdge_node,
		func(ctx context.Context) (any, error) {
			return obj.Node, nil
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ClinicalPathwayEdge_node(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ClinicalPathwayEdge",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeNode_node(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeNode_node,
		func(ctx context.Context) (any, error) {
			return obj.Node, nil
		},
		nil,
		ec.marshalNPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeNode_node(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNode_id(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PathwayNode_pathwayId(ctx, field)
			case "parentNodeId":
				return ec.fieldContext_PathwayNode_parentNodeId(ctx, field)
			case "nodeType":
				return ec.fieldContext_PathwayNode_nodeType(ctx, field)
			case "title":
				return ec.fieldContext_PathwayNode_title(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNode_description(ctx, field)
			case "actionType":
				return ec.fieldContext_PathwayNode_actionType(ctx, field)
			case "decisionFactors":
				return ec.fieldContext_PathwayNode_decisionFactors(ctx, field)
			case "suggestedTemplateId":
				return ec.fieldContext_PathwayNode_suggestedTemplateId(ctx, field)
			case "sortOrder":
				return ec.fieldContext_PathwayNode_sortOrder(ctx, field)
			case "baseConfidence":
				return ec.fieldContext_PathwayNode_baseConfidence(ctx, field)
			case "isActive":
				return ec.fieldContext_PathwayNode_isActive(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNode_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNode_updatedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PathwayNode_pathway(ctx, field)
			case "children":
				return ec.fieldContext_PathwayNode_children(ctx, field)
			case "selectionStats":
				return ec.fieldContext_PathwayNode_selectionStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNode", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeNode_confidence(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeNode_confidence,
		func(ctx context.Context) (any, error) {
			return obj.Confidence, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeNode_confidence(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeNode_isRecommendedPath(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeNode_isRecommendedPath,
		func(ctx context.Context) (any, error) {
			return obj.IsRecommendedPath, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeNode_isRecommendedPath(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeNode_alternativeCount(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeNode_alternativeCount,
		func(ctx context.Context) (any, error) {
			return obj.AlternativeCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeNode_alternativeCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeNode_recommendation(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeNode_recommendation,
		func(ctx context.Context) (any, error) {
			return obj.Recommendation, nil
		},
		nil,
		ec.marshalONodeRecommendation2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeRecommendation,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeNode_recommendation(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "templateId":
				return ec.fieldContext_NodeRecommendation_templateId(ctx, field)
			case "title":
				return ec.fieldContext_NodeRecommendation_title(ctx, field)
			case "description":
				return ec.fieldContext_NodeRecommendation_description(ctx, field)
			case "actionType":
				return ec.fieldContext_NodeRecommendation_actionType(ctx, field)
			case "confidence":
				return ec.fieldContext_NodeRecommendation_confidence(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type NodeRecommendation", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeNode_children(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeNode_children,
		func(ctx context.Context) (any, error) {
			return obj.Children, nil
		},
		nil,
		ec.marshalNDecisionTreeNode2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeNodeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeNode_children(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "node":
				return ec.fieldContext_DecisionTreeNode_node(ctx, field)
			case "confidence":
				return ec.fieldContext_DecisionTreeNode_confidence(ctx, field)
			case "isRecommendedPath":
				return ec.fieldContext_DecisionTreeNode_isRecommendedPath(ctx, field)
			case "alternativeCount":
				return ec.fieldContext_DecisionTreeNode_alternativeCount(ctx, field)
			case "recommendation":
				return ec.fieldContext_DecisionTreeNode_recommendation(ctx, field)
			case "children":
				return ec.fieldContext_DecisionTreeNode_children(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type DecisionTreeNode", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeResult_pathway(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeResult_pathway,
		func(ctx context.Context) (any, error) {
			return obj.Pathway, nil
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeResult_pathway(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeResult_tree(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeResult_tree,
		func(ctx context.Context) (any, error) {
			return obj.Tree, nil
		},
		nil,
		ec.marshalNDecisionTreeNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeNode,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeResult_tree(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "node":
				return ec.fieldContext_DecisionTreeNode_node(ctx, field)
			case "confidence":
				return ec.fieldContext_DecisionTreeNode_confidence(ctx, field)
			case "isRecommendedPath":
				return ec.fieldContext_DecisionTreeNode_isRecommendedPath(ctx, field)
			case "alternativeCount":
				return ec.fieldContext_DecisionTreeNode_alternativeCount(ctx, field)
			case "recommendation":
				return ec.fieldContext_DecisionTreeNode_recommendation(ctx, field)
			case "children":
				return ec.fieldContext_DecisionTreeNode_children(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type DecisionTreeNode", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeResult_modelVersion(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeResult_modelVersion,
		func(ctx context.Context) (any, error) {
			return obj.ModelVersion, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeResult_modelVersion(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _DecisionTreeResult_processingTimeMs(ctx context.Context, field graphql.CollectedField, obj *entities.DecisionTreeResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DecisionTreeResult_processingTimeMs,
		func(ctx context.Context) (any, error) {
			return obj.ProcessingTimeMs, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DecisionTreeResult_processingTimeMs(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DecisionTreeResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createClinicalPathway(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createClinicalPathway,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateClinicalPathway(ctx, fc.Args["input"].(CreateClinicalPathwayInput))
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createClinicalPathway(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createClinicalPathway_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateClinicalPathway(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateClinicalPathway,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateClinicalPathway(ctx, fc.Args["id"].(string), fc.Args["input"].(UpdateClinicalPathwayInput))
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateClinicalPathway(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateClinicalPathway_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteClinicalPathway(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteClinicalPathway,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteClinicalPathway(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteClinicalPathway(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteClinicalPathway_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_publishClinicalPathway(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_publishClinicalPathway,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().PublishClinicalPathway(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_publishClinicalPathway(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_publishClinicalPathway_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_unpublishClinicalPathway(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_unpublishClinicalPathway,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UnpublishClinicalPathway(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_unpublishClinicalPathway(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_unpublishClinicalPathway_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_duplicateClinicalPathway(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_duplicateClinicalPathway,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DuplicateClinicalPathway(ctx, fc.Args["id"].(string), fc.Args["newName"].(string), fc.Args["createdBy"].(string))
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_duplicateClinicalPathway(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_duplicateClinicalPathway_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createPathwayNode(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createPathwayNode,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreatePathwayNode(ctx, fc.Args["input"].(CreatePathwayNodeInput))
		},
		nil,
		ec.marshalNPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createPathwayNode(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNode_id(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PathwayNode_pathwayId(ctx, field)
			case "parentNodeId":
				return ec.fieldContext_PathwayNode_parentNodeId(ctx, field)
			case "nodeType":
				return ec.fieldContext_PathwayNode_nodeType(ctx, field)
			case "title":
				return ec.fieldContext_PathwayNode_title(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNode_description(ctx, field)
			case "actionType":
				return ec.fieldContext_PathwayNode_actionType(ctx, field)
			case "decisionFactors":
				return ec.fieldContext_PathwayNode_decisionFactors(ctx, field)
			case "suggestedTemplateId":
				return ec.fieldContext_PathwayNode_suggestedTemplateId(ctx, field)
			case "sortOrder":
				return ec.fieldContext_PathwayNode_sortOrder(ctx, field)
			case "baseConfidence":
				return ec.fieldContext_PathwayNode_baseConfidence(ctx, field)
			case "isActive":
				return ec.fieldContext_PathwayNode_isActive(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNode_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNode_updatedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PathwayNode_pathway(ctx, field)
			case "children":
				return ec.fieldContext_PathwayNode_children(ctx, field)
			case "selectionStats":
				return ec.fieldContext_PathwayNode_selectionStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNode", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createPathwayNode_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updatePathwayNode(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updatePathwayNode,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdatePathwayNode(ctx, fc.Args["id"].(string), fc.Args["input"].(UpdatePathwayNodeInput))
		},
		nil,
		ec.marshalNPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updatePathwayNode(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNode_id(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PathwayNode_pathwayId(ctx, field)
			case "parentNodeId":
				return ec.fieldContext_PathwayNode_parentNodeId(ctx, field)
			case "nodeType":
				return ec.fieldContext_PathwayNode_nodeType(ctx, field)
			case "title":
				return ec.fieldContext_PathwayNode_title(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNode_description(ctx, field)
			case "actionType":
				return ec.fieldContext_PathwayNode_actionType(ctx, field)
			case "decisionFactors":
				return ec.fieldContext_PathwayNode_decisionFactors(ctx, field)
			case "suggestedTemplateId":
				return ec.fieldContext_PathwayNode_suggestedTemplateId(ctx, field)
			case "sortOrder":
				return ec.fieldContext_PathwayNode_sortOrder(ctx, field)
			case "baseConfidence":
				return ec.fieldContext_PathwayNode_baseConfidence(ctx, field)
			case "isActive":
				return ec.fieldContext_PathwayNode_isActive(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNode_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNode_updatedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PathwayNode_pathway(ctx, field)
			case "children":
				return ec.fieldContext_PathwayNode_children(ctx, field)
			case "selectionStats":
				return ec.fieldContext_PathwayNode_selectionStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNode", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updatePathwayNode_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deletePathwayNode(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deletePathwayNode,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeletePathwayNode(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deletePathwayNode(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deletePathwayNode_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_movePathwayNode(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_movePathwayNode,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MovePathwayNode(ctx, fc.Args["id"].(string), fc.Args["input"].(MovePathwayNodeInput))
		},
		nil,
		ec.marshalNPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_movePathwayNode(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNode_id(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PathwayNode_pathwayId(ctx, field)
			case "parentNodeId":
				return ec.fieldContext_PathwayNode_parentNodeId(ctx, field)
			case "nodeType":
				return ec.fieldContext_PathwayNode_nodeType(ctx, field)
			case "title":
				return ec.fieldContext_PathwayNode_title(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNode_description(ctx, field)
			case "actionType":
				return ec.fieldContext_PathwayNode_actionType(ctx, field)
			case "decisionFactors":
				return ec.fieldContext_PathwayNode_decisionFactors(ctx, field)
			case "suggestedTemplateId":
				return ec.fieldContext_PathwayNode_suggestedTemplateId(ctx, field)
			case "sortOrder":
				return ec.fieldContext_PathwayNode_sortOrder(ctx, field)
			case "baseConfidence":
				return ec.fieldContext_PathwayNode_baseConfidence(ctx, field)
			case "isActive":
				return ec.fieldContext_PathwayNode_isActive(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNode_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNode_updatedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PathwayNode_pathway(ctx, field)
			case "children":
				return ec.fieldContext_PathwayNode_children(ctx, field)
			case "selectionStats":
				return ec.fieldContext_PathwayNode_selectionStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNode", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_movePathwayNode_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_startPathwayInstance(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_startPathwayInstance,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().StartPathwayInstance(ctx, fc.Args["input"].(StartPathwayInstanceInput))
		},
		nil,
		ec.marshalNPatientPathwayInstance2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstance,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_startPathwayInstance(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PatientPathwayInstance_id(ctx, field)
			case "patientId":
				return ec.fieldContext_PatientPathwayInstance_patientId(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PatientPathwayInstance_pathwayId(ctx, field)
			case "providerId":
				return ec.fieldContext_PatientPathwayInstance_providerId(ctx, field)
			case "mlModelId":
				return ec.fieldContext_PatientPathwayInstance_mlModelId(ctx, field)
			case "status":
				return ec.fieldContext_PatientPathwayInstance_status(ctx, field)
			case "startedAt":
				return ec.fieldContext_PatientPathwayInstance_startedAt(ctx, field)
			case "completedAt":
				return ec.fieldContext_PatientPathwayInstance_completedAt(ctx, field)
			case "abandonedAt":
				return ec.fieldContext_PatientPathwayInstance_abandonedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PatientPathwayInstance_pathway(ctx, field)
			case "selections":
				return ec.fieldContext_PatientPathwayInstance_selections(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PatientPathwayInstance", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_startPathwayInstance_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_recordPathwaySelection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_recordPathwaySelection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RecordPathwaySelection(ctx, fc.Args["input"].(RecordPathwaySelectionInput))
		},
		nil,
		ec.marshalNPatientPathwaySelection2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwaySelection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_recordPathwaySelection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PatientPathwaySelection_id(ctx, field)
			case "instanceId":
				return ec.fieldContext_PatientPathwaySelection_instanceId(ctx, field)
			case "nodeId":
				return ec.fieldContext_PatientPathwaySelection_nodeId(ctx, field)
			case "selectionType":
				return ec.fieldContext_PatientPathwaySelection_selectionType(ctx, field)
			case "overrideReason":
				return ec.fieldContext_PatientPathwaySelection_overrideReason(ctx, field)
			case "resultingCarePlanId":
				return ec.fieldContext_PatientPathwaySelection_resultingCarePlanId(ctx, field)
			case "createdBy":
				return ec.fieldContext_PatientPathwaySelection_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_PatientPathwaySelection_createdAt(ctx, field)
			case "node":
				return ec.fieldContext_PatientPathwaySelection_node(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PatientPathwaySelection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_recordPathwaySelection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_completePathwayInstance(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_completePathwayInstance,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CompletePathwayInstance(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNPatientPathwayInstance2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstance,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_completePathwayInstance(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PatientPathwayInstance_id(ctx, field)
			case "patientId":
				return ec.fieldContext_PatientPathwayInstance_patientId(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PatientPathwayInstance_pathwayId(ctx, field)
			case "providerId":
				return ec.fieldContext_PatientPathwayInstance_providerId(ctx, field)
			case "mlModelId":
				return ec.fieldContext_PatientPathwayInstance_mlModelId(ctx, field)
			case "status":
				return ec.fieldContext_PatientPathwayInstance_status(ctx, field)
			case "startedAt":
				return ec.fieldContext_PatientPathwayInstance_startedAt(ctx, field)
			case "completedAt":
				return ec.fieldContext_PatientPathwayInstance_completedAt(ctx, field)
			case "abandonedAt":
				return ec.fieldContext_PatientPathwayInstance_abandonedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PatientPathwayInstance_pathway(ctx, field)
			case "selections":
				return ec.fieldContext_PatientPathwayInstance_selections(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PatientPathwayInstance", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_completePathwayInstance_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_abandonPathwayInstance(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_abandonPathwayInstance,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().AbandonPathwayInstance(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNPatientPathwayInstance2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstance,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_abandonPathwayInstance(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PatientPathwayInstance_id(ctx, field)
			case "patientId":
				return ec.fieldContext_PatientPathwayInstance_patientId(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PatientPathwayInstance_pathwayId(ctx, field)
			case "providerId":
				return ec.fieldContext_PatientPathwayInstance_providerId(ctx, field)
			case "mlModelId":
				return ec.fieldContext_PatientPathwayInstance_mlModelId(ctx, field)
			case "status":
				return ec.fieldContext_PatientPathwayInstance_status(ctx, field)
			case "startedAt":
				return ec.fieldContext_PatientPathwayInstance_startedAt(ctx, field)
			case "completedAt":
				return ec.fieldContext_PatientPathwayInstance_completedAt(ctx, field)
			case "abandonedAt":
				return ec.fieldContext_PatientPathwayInstance_abandonedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PatientPathwayInstance_pathway(ctx, field)
			case "selections":
				return ec.fieldContext_PatientPathwayInstance_selections(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PatientPathwayInstance", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_abandonPathwayInstance_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_linkSelectionToCarePlan(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_linkSelectionToCarePlan,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().LinkSelectionToCarePlan(ctx, fc.Args["selectionId"].(string), fc.Args["carePlanId"].(string))
		},
		nil,
		ec.marshalNPatientPathwaySelection2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwaySelection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_linkSelectionToCarePlan(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PatientPathwaySelection_id(ctx, field)
			case "instanceId":
				return ec.fieldContext_PatientPathwaySelection_instanceId(ctx, field)
			case "nodeId":
				return ec.fieldContext_PatientPathwaySelection_nodeId(ctx, field)
			case "selectionType":
				return ec.fieldContext_PatientPathwaySelection_selectionType(ctx, field)
			case "overrideReason":
				return ec.fieldContext_PatientPathwaySelection_overrideReason(ctx, field)
			case "resultingCarePlanId":
				return ec.fieldContext_PatientPathwaySelection_resultingCarePlanId(ctx, field)
			case "createdBy":
				return ec.fieldContext_PatientPathwaySelection_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_PatientPathwaySelection_createdAt(ctx, field)
			case "node":
				return ec.fieldContext_PatientPathwaySelection_node(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PatientPathwaySelection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_linkSelectionToCarePlan_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_recordNodeOutcome(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_recordNodeOutcome,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RecordNodeOutcome(ctx, fc.Args["input"].(RecordNodeOutcomeInput))
		},
		nil,
		ec.marshalNPathwayNodeOutcome2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNodeOutcome,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_recordNodeOutcome(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNodeOutcome_id(ctx, field)
			case "nodeId":
				return ec.fieldContext_PathwayNodeOutcome_nodeId(ctx, field)
			case "outcomeType":
				return ec.fieldContext_PathwayNodeOutcome_outcomeType(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNodeOutcome_description(ctx, field)
			case "observedAt":
				return ec.fieldContext_PathwayNodeOutcome_observedAt(ctx, field)
			case "recordedBy":
				return ec.fieldContext_PathwayNodeOutcome_recordedBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNodeOutcome_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNodeOutcome_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNodeOutcome", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_recordNodeOutcome_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateNodeOutcome(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateNodeOutcome,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateNodeOutcome(ctx, fc.Args["id"].(string), fc.Args["input"].(UpdateNodeOutcomeInput))
		},
		nil,
		ec.marshalNPathwayNodeOutcome2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNodeOutcome,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateNodeOutcome(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNodeOutcome_id(ctx, field)
			case "nodeId":
				return ec.fieldContext_PathwayNodeOutcome_nodeId(ctx, field)
			case "outcomeType":
				return ec.fieldContext_PathwayNodeOutcome_outcomeType(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNodeOutcome_description(ctx, field)
			case "observedAt":
				return ec.fieldContext_PathwayNodeOutcome_observedAt(ctx, field)
			case "recordedBy":
				return ec.fieldContext_PathwayNodeOutcome_recordedBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNodeOutcome_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNodeOutcome_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNodeOutcome", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateNodeOutcome_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteNodeOutcome(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteNodeOutcome,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteNodeOutcome(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteNodeOutcome(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteNodeOutcome_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_saveDecisionTree(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_saveDecisionTree,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().SaveDecisionTree(ctx, fc.Args["input"].(SaveDecisionTreeInput))
		},
		nil,
		ec.marshalNTreeSaveResult2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐTreeSaveResult,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_saveDecisionTree(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "pathwayId":
				return ec.fieldContext_TreeSaveResult_pathwayId(ctx, field)
			case "version":
				return ec.fieldContext_TreeSaveResult_version(ctx, field)
			case "createdCount":
				return ec.fieldContext_TreeSaveResult_createdCount(ctx, field)
			case "updatedCount":
				return ec.fieldContext_TreeSaveResult_updatedCount(ctx, field)
			case "tempIdMap":
				return ec.fieldContext_TreeSaveResult_tempIdMap(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type TreeSaveResult", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_saveDecisionTree_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _NodeRecommendation_templateId(ctx context.Context, field graphql.CollectedField, obj *entities.NodeRecommendation) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeRecommendation_templateId,
		func(ctx context.Context) (any, error) {
			return obj.TemplateID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_NodeRecommendation_templateId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeRecommendation",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeRecommendation_title(ctx context.Context, field graphql.CollectedField, obj *entities.NodeRecommendation) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeRecommendation_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NodeRecommendation_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeRecommendation",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeRecommendation_description(ctx context.Context, field graphql.CollectedField, obj *entities.NodeRecommendation) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeRecommendation_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NodeRecommendation_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeRecommendation",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeRecommendation_actionType(ctx context.Context, field graphql.CollectedField, obj *entities.NodeRecommendation) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeRecommendation_actionType,
		func(ctx context.Context) (any, error) {
			return obj.ActionType, nil
		},
		nil,
		ec.marshalOActionType2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐActionType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_NodeRecommendation_actionType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeRecommendation",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ActionType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeRecommendation_confidence(ctx context.Context, field graphql.CollectedField, obj *entities.NodeRecommendation) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeRecommendation_confidence,
		func(ctx context.Context) (any, error) {
			return obj.Confidence, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NodeRecommendation_confidence(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeRecommendation",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeSelectionStats_nodeId(ctx context.Context, field graphql.CollectedField, obj *entities.NodeSelectionStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeSelectionStats_nodeId,
		func(ctx context.Context) (any, error) {
			return obj.NodeID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NodeSelectionStats_nodeId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeSelectionStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeSelectionStats_totalSelections(ctx context.Context, field graphql.CollectedField, obj *entities.NodeSelectionStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeSelectionStats_totalSelections,
		func(ctx context.Context) (any, error) {
			return obj.TotalSelections, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NodeSelectionStats_totalSelections(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeSelectionStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeSelectionStats_mlRecommended(ctx context.Context, field graphql.CollectedField, obj *entities.NodeSelectionStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeSelectionStats_mlRecommended,
		func(ctx context.Context) (any, error) {
			return obj.MLRecommended, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NodeSelectionStats_mlRecommended(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeSelectionStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeSelectionStats_providerSelected(ctx context.Context, field graphql.CollectedField, obj *entities.NodeSelectionStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeSelectionStats_providerSelected,
		func(ctx context.Context) (any, error) {
			return obj.ProviderSelected, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NodeSelectionStats_providerSelected(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeSelectionStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeSelectionStats_autoApplied(ctx context.Context, field graphql.CollectedField, obj *entities.NodeSelectionStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeSelectionStats_autoApplied,
		func(ctx context.Context) (any, error) {
			return obj.AutoApplied, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NodeSelectionStats_autoApplied(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeSelectionStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NodeSelectionStats_overrideCount(ctx context.Context, field graphql.CollectedField, obj *entities.NodeSelectionStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NodeSelectionStats_overrideCount,
		func(ctx context.Context) (any, error) {
			return obj.OverrideCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NodeSelectionStats_overrideCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NodeSelectionStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PageInfo_hasNextPage(ctx context.Context, field graphql.CollectedField, obj *entities.PageInfo) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PageInfo_hasNextPage,
		func(ctx context.Context) (any, error) {
			return obj.HasNextPage, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PageInfo_hasNextPage(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PageInfo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PageInfo_hasPreviousPage(ctx context.Context, field graphql.CollectedField, obj *entities.PageInfo) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PageInfo_hasPreviousPage,
		func(ctx context.Context) (any, error) {
			return obj.HasPreviousPage, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PageInfo_hasPreviousPage(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PageInfo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PageInfo_startCursor(ctx context.Context, field graphql.CollectedField, obj *entities.PageInfo) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PageInfo_startCursor,
		func(ctx context.Context) (any, error) {
			return obj.StartCursor, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PageInfo_startCursor(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PageInfo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PageInfo_endCursor(ctx context.Context, field graphql.CollectedField, obj *entities.PageInfo) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PageInfo_endCursor,
		func(ctx context.Context) (any, error) {
			return obj.EndCursor, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PageInfo_endCursor(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PageInfo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayMatch_pathway(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayMatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayMatch_pathway,
		func(ctx context.Context) (any, error) {
			return obj.Pathway, nil
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayMatch_pathway(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayMatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayMatch_matchScore(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayMatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayMatch_matchScore,
		func(ctx context.Context) (any, error) {
			return obj.MatchScore, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayMatch_matchScore(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayMatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayMatch_matchReasons(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayMatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayMatch_matchReasons,
		func(ctx context.Context) (any, error) {
			return obj.MatchReasons, nil
		},
		nil,
		ec.marshalNString2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayMatch_matchReasons(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayMatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayMatch_mlConfidence(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayMatch) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayMatch_mlConfidence,
		func(ctx context.Context) (any, error) {
			return obj.MLConfidence, nil
		},
		nil,
		ec.marshalOFloat2ᚖfloat64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PathwayMatch_mlConfidence(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayMatch",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_id(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_pathwayId(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_pathwayId,
		func(ctx context.Context) (any, error) {
			return obj.PathwayID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_pathwayId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_parentNodeId(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_parentNodeId,
		func(ctx context.Context) (any, error) {
			return obj.ParentNodeID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_parentNodeId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_nodeType(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_nodeType,
		func(ctx context.Context) (any, error) {
			return obj.NodeType, nil
		},
		nil,
		ec.marshalNNodeType2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_nodeType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type NodeType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_title(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_title,
		func(ctx context.Context) (any, error) {
			return obj.Title, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_title(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_description(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_actionType(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_actionType,
		func(ctx context.Context) (any, error) {
			return obj.ActionType, nil
		},
		nil,
		ec.marshalOActionType2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐActionType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_actionType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ActionType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_decisionFactors(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_decisionFactors,
		func(ctx context.Context) (any, error) {
			return obj.DecisionFactors, nil
		},
		nil,
		ec.marshalNString2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_decisionFactors(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_suggestedTemplateId(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_suggestedTemplateId,
		func(ctx context.Context) (any, error) {
			return obj.SuggestedTemplateID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_suggestedTemplateId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_sortOrder(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_sortOrder,
		func(ctx context.Context) (any, error) {
			return obj.SortOrder, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_sortOrder(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_baseConfidence(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_baseConfidence,
		func(ctx context.Context) (any, error) {
			return obj.BaseConfidence, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_baseConfidence(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_isActive(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_isActive,
		func(ctx context.Context) (any, error) {
			return obj.IsActive, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_isActive(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_createdAt(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_updatedAt(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_pathway(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_pathway,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.PathwayNode().Pathway(ctx, obj)
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_pathway(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_children(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_children,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.PathwayNode().Children(ctx, obj)
		},
		nil,
		ec.marshalNPathwayNode2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNodeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_children(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNode_id(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PathwayNode_pathwayId(ctx, field)
			case "parentNodeId":
				return ec.fieldContext_PathwayNode_parentNodeId(ctx, field)
			case "nodeType":
				return ec.fieldContext_PathwayNode_nodeType(ctx, field)
			case "title":
				return ec.fieldContext_PathwayNode_title(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNode_description(ctx, field)
			case "actionType":
				return ec.fieldContext_PathwayNode_actionType(ctx, field)
			case "decisionFactors":
				return ec.fieldContext_PathwayNode_decisionFactors(ctx, field)
			case "suggestedTemplateId":
				return ec.fieldContext_PathwayNode_suggestedTemplateId(ctx, field)
			case "sortOrder":
				return ec.fieldContext_PathwayNode_sortOrder(ctx, field)
			case "baseConfidence":
				return ec.fieldContext_PathwayNode_baseConfidence(ctx, field)
			case "isActive":
				return ec.fieldContext_PathwayNode_isActive(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNode_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNode_updatedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PathwayNode_pathway(ctx, field)
			case "children":
				return ec.fieldContext_PathwayNode_children(ctx, field)
			case "selectionStats":
				return ec.fieldContext_PathwayNode_selectionStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNode", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNode_selectionStats(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNode) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNode_selectionStats,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.PathwayNode().SelectionStats(ctx, obj)
		},
		nil,
		ec.marshalNNodeSelectionStats2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeSelectionStats,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNode_selectionStats(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNode",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "nodeId":
				return ec.fieldContext_NodeSelectionStats_nodeId(ctx, field)
			case "totalSelections":
				return ec.fieldContext_NodeSelectionStats_totalSelections(ctx, field)
			case "mlRecommended":
				return ec.fieldContext_NodeSelectionStats_mlRecommended(ctx, field)
			case "providerSelected":
				return ec.fieldContext_NodeSelectionStats_providerSelected(ctx, field)
			case "autoApplied":
				return ec.fieldContext_NodeSelectionStats_autoApplied(ctx, field)
			case "overrideCount":
				return ec.fieldContext_NodeSelectionStats_overrideCount(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type NodeSelectionStats", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNodeOutcome_id(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNodeOutcome) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNodeOutcome_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNodeOutcome_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNodeOutcome",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNodeOutcome_nodeId(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNodeOutcome) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNodeOutcome_nodeId,
		func(ctx context.Context) (any, error) {
			return obj.NodeID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNodeOutcome_nodeId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNodeOutcome",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNodeOutcome_outcomeType(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNodeOutcome) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNodeOutcome_outcomeType,
		func(ctx context.Context) (any, error) {
			return obj.OutcomeType, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNodeOutcome_outcomeType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNodeOutcome",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNodeOutcome_description(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNodeOutcome) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNodeOutcome_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNodeOutcome_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNodeOutcome",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNodeOutcome_observedAt(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNodeOutcome) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNodeOutcome_observedAt,
		func(ctx context.Context) (any, error) {
			return obj.ObservedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNodeOutcome_observedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNodeOutcome",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNodeOutcome_recordedBy(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNodeOutcome) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNodeOutcome_recordedBy,
		func(ctx context.Context) (any, error) {
			return obj.RecordedBy, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNodeOutcome_recordedBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNodeOutcome",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNodeOutcome_createdAt(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNodeOutcome) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNodeOutcome_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNodeOutcome_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNodeOutcome",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayNodeOutcome_updatedAt(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayNodeOutcome) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayNodeOutcome_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayNodeOutcome_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayNodeOutcome",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayUsageStats_pathwayId(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayUsageStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayUsageStats_pathwayId,
		func(ctx context.Context) (any, error) {
			return obj.PathwayID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayUsageStats_pathwayId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayUsageStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayUsageStats_totalInstances(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayUsageStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayUsageStats_totalInstances,
		func(ctx context.Context) (any, error) {
			return obj.TotalInstances, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayUsageStats_totalInstances(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayUsageStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayUsageStats_completed(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayUsageStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayUsageStats_completed,
		func(ctx context.Context) (any, error) {
			return obj.Completed, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayUsageStats_completed(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayUsageStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayUsageStats_abandoned(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayUsageStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayUsageStats_abandoned,
		func(ctx context.Context) (any, error) {
			return obj.Abandoned, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayUsageStats_abandoned(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayUsageStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayUsageStats_active(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayUsageStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayUsageStats_active,
		func(ctx context.Context) (any, error) {
			return obj.Active, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayUsageStats_active(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayUsageStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PathwayUsageStats_completionRate(ctx context.Context, field graphql.CollectedField, obj *entities.PathwayUsageStats) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PathwayUsageStats_completionRate,
		func(ctx context.Context) (any, error) {
			return obj.CompletionRate, nil
		},
		nil,
		ec.marshalNFloat2float64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PathwayUsageStats_completionRate(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PathwayUsageStats",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Float does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_id(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_patientId(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_patientId,
		func(ctx context.Context) (any, error) {
			return obj.PatientID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_patientId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_pathwayId(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_pathwayId,
		func(ctx context.Context) (any, error) {
			return obj.PathwayID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_pathwayId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_providerId(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_providerId,
		func(ctx context.Context) (any, error) {
			return obj.ProviderID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_providerId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_mlModelId(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_mlModelId,
		func(ctx context.Context) (any, error) {
			return obj.MLModelID, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_mlModelId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_status(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_status,
		func(ctx context.Context) (any, error) {
			return obj.Status, nil
		},
		nil,
		ec.marshalNInstanceStatus2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐInstanceStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type InstanceStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_startedAt(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_startedAt,
		func(ctx context.Context) (any, error) {
			return obj.StartedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_startedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_completedAt(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_completedAt,
		func(ctx context.Context) (any, error) {
			return obj.CompletedAt, nil
		},
		nil,
		ec.marshalODateTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_completedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_abandonedAt(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_abandonedAt,
		func(ctx context.Context) (any, error) {
			return obj.AbandonedAt, nil
		},
		nil,
		ec.marshalODateTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_abandonedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_pathway(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_pathway,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.PatientPathwayInstance().Pathway(ctx, obj)
		},
		nil,
		ec.marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_pathway(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwayInstance_selections(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwayInstance) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwayInstance_selections,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.PatientPathwayInstance().Selections(ctx, obj)
		},
		nil,
		ec.marshalNPatientPathwaySelection2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwaySelectionᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwayInstance_selections(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwayInstance",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PatientPathwaySelection_id(ctx, field)
			case "instanceId":
				return ec.fieldContext_PatientPathwaySelection_instanceId(ctx, field)
			case "nodeId":
				return ec.fieldContext_PatientPathwaySelection_nodeId(ctx, field)
			case "selectionType":
				return ec.fieldContext_PatientPathwaySelection_selectionType(ctx, field)
			case "overrideReason":
				return ec.fieldContext_PatientPathwaySelection_overrideReason(ctx, field)
			case "resultingCarePlanId":
				return ec.fieldContext_PatientPathwaySelection_resultingCarePlanId(ctx, field)
			case "createdBy":
				return ec.fieldContext_PatientPathwaySelection_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_PatientPathwaySelection_createdAt(ctx, field)
			case "node":
				return ec.fieldContext_PatientPathwaySelection_node(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PatientPathwaySelection", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwaySelection_id(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwaySelection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwaySelection_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwaySelection_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwaySelection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwaySelection_instanceId(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwaySelection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwaySelection_instanceId,
		func(ctx context.Context) (any, error) {
			return obj.InstanceID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwaySelection_instanceId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwaySelection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwaySelection_nodeId(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwaySelection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwaySelection_nodeId,
		func(ctx context.Context) (any, error) {
			return obj.NodeID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwaySelection_nodeId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwaySelection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwaySelection_selectionType(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwaySelection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwaySelection_selectionType,
		func(ctx context.Context) (any, error) {
			return obj.SelectionType, nil
		},
		nil,
		ec.marshalNSelectionType2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐSelectionType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwaySelection_selectionType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwaySelection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type SelectionType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwaySelection_overrideReason(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwaySelection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwaySelection_overrideReason,
		func(ctx context.Context) (any, error) {
			return obj.OverrideReason, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PatientPathwaySelection_overrideReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwaySelection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwaySelection_resultingCarePlanId(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwaySelection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwaySelection_resultingCarePlanId,
		func(ctx context.Context) (any, error) {
			return obj.ResultingCarePlanID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PatientPathwaySelection_resultingCarePlanId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwaySelection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwaySelection_createdBy(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwaySelection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwaySelection_createdBy,
		func(ctx context.Context) (any, error) {
			return obj.CreatedBy, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwaySelection_createdBy(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwaySelection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwaySelection_createdAt(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwaySelection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwaySelection_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwaySelection_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwaySelection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PatientPathwaySelection_node(ctx context.Context, field graphql.CollectedField, obj *entities.PatientPathwaySelection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PatientPathwaySelection_node,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.PatientPathwaySelection().Node(ctx, obj)
		},
		nil,
		ec.marshalNPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PatientPathwaySelection_node(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PatientPathwaySelection",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNode_id(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PathwayNode_pathwayId(ctx, field)
			case "parentNodeId":
				return ec.fieldContext_PathwayNode_parentNodeId(ctx, field)
			case "nodeType":
				return ec.fieldContext_PathwayNode_nodeType(ctx, field)
			case "title":
				return ec.fieldContext_PathwayNode_title(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNode_description(ctx, field)
			case "actionType":
				return ec.fieldContext_PathwayNode_actionType(ctx, field)
			case "decisionFactors":
				return ec.fieldContext_PathwayNode_decisionFactors(ctx, field)
			case "suggestedTemplateId":
				return ec.fieldContext_PathwayNode_suggestedTemplateId(ctx, field)
			case "sortOrder":
				return ec.fieldContext_PathwayNode_sortOrder(ctx, field)
			case "baseConfidence":
				return ec.fieldContext_PathwayNode_baseConfidence(ctx, field)
			case "isActive":
				return ec.fieldContext_PathwayNode_isActive(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNode_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNode_updatedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PathwayNode_pathway(ctx, field)
			case "children":
				return ec.fieldContext_PathwayNode_children(ctx, field)
			case "selectionStats":
				return ec.fieldContext_PathwayNode_selectionStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNode", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_clinicalPathway(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_clinicalPathway,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ClinicalPathway(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalOClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_clinicalPathway(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_clinicalPathway_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_clinicalPathwayBySlug(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_clinicalPathwayBySlug,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ClinicalPathwayBySlug(ctx, fc.Args["slug"].(string))
		},
		nil,
		ec.marshalOClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_clinicalPathwayBySlug(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ClinicalPathway_id(ctx, field)
			case "name":
				return ec.fieldContext_ClinicalPathway_name(ctx, field)
			case "slug":
				return ec.fieldContext_ClinicalPathway_slug(ctx, field)
			case "description":
				return ec.fieldContext_ClinicalPathway_description(ctx, field)
			case "conditionCodes":
				return ec.fieldContext_ClinicalPathway_conditionCodes(ctx, field)
			case "versionLabel":
				return ec.fieldContext_ClinicalPathway_versionLabel(ctx, field)
			case "evidenceSource":
				return ec.fieldContext_ClinicalPathway_evidenceSource(ctx, field)
			case "evidenceGrade":
				return ec.fieldContext_ClinicalPathway_evidenceGrade(ctx, field)
			case "isActive":
				return ec.fieldContext_ClinicalPathway_isActive(ctx, field)
			case "isPublished":
				return ec.fieldContext_ClinicalPathway_isPublished(ctx, field)
			case "version":
				return ec.fieldContext_ClinicalPathway_version(ctx, field)
			case "createdBy":
				return ec.fieldContext_ClinicalPathway_createdBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_ClinicalPathway_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_ClinicalPathway_updatedAt(ctx, field)
			case "rootNode":
				return ec.fieldContext_ClinicalPathway_rootNode(ctx, field)
			case "usageStats":
				return ec.fieldContext_ClinicalPathway_usageStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathway", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_clinicalPathwayBySlug_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_clinicalPathways(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_clinicalPathways,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ClinicalPathways(ctx, fc.Args["filter"].(*ClinicalPathwayFilter), fc.Args["first"].(*int), fc.Args["after"].(*string))
		},
		nil,
		ec.marshalNClinicalPathwayConnection2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayConnection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_clinicalPathways(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "edges":
				return ec.fieldContext_ClinicalPathwayConnection_edges(ctx, field)
			case "pageInfo":
				return ec.fieldContext_ClinicalPathwayConnection_pageInfo(ctx, field)
			case "totalCount":
				return ec.fieldContext_ClinicalPathwayConnection_totalCount(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ClinicalPathwayConnection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_clinicalPathways_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_pathwayNode(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_pathwayNode,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().PathwayNode(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalOPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_pathwayNode(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNode_id(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PathwayNode_pathwayId(ctx, field)
			case "parentNodeId":
				return ec.fieldContext_PathwayNode_parentNodeId(ctx, field)
			case "nodeType":
				return ec.fieldContext_PathwayNode_nodeType(ctx, field)
			case "title":
				return ec.fieldContext_PathwayNode_title(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNode_description(ctx, field)
			case "actionType":
				return ec.fieldContext_PathwayNode_actionType(ctx, field)
			case "decisionFactors":
				return ec.fieldContext_PathwayNode_decisionFactors(ctx, field)
			case "suggestedTemplateId":
				return ec.fieldContext_PathwayNode_suggestedTemplateId(ctx, field)
			case "sortOrder":
				return ec.fieldContext_PathwayNode_sortOrder(ctx, field)
			case "baseConfidence":
				return ec.fieldContext_PathwayNode_baseConfidence(ctx, field)
			case "isActive":
				return ec.fieldContext_PathwayNode_isActive(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNode_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNode_updatedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PathwayNode_pathway(ctx, field)
			case "children":
				return ec.fieldContext_PathwayNode_children(ctx, field)
			case "selectionStats":
				return ec.fieldContext_PathwayNode_selectionStats(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNode", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_pathwayNode_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_pathwayTree(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_pathwayTree,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().PathwayTree(ctx, fc.Args["pathwayId"].(string))
		},
		nil,
		ec.marshalNDecisionTreeNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeNode,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_pathwayTree(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "node":
				return ec.fieldContext_DecisionTreeNode_node(ctx, field)
			case "confidence":
				return ec.fieldContext_DecisionTreeNode_confidence(ctx, field)
			case "isRecommendedPath":
				return ec.fieldContext_DecisionTreeNode_isRecommendedPath(ctx, field)
			case "alternativeCount":
				return ec.fieldContext_DecisionTreeNode_alternativeCount(ctx, field)
			case "recommendation":
				return ec.fieldContext_DecisionTreeNode_recommendation(ctx, field)
			case "children":
				return ec.fieldContext_DecisionTreeNode_children(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type DecisionTreeNode", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_pathwayTree_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_getDecisionTree(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_getDecisionTree,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().GetDecisionTree(ctx, fc.Args["pathwayId"].(string), fc.Args["patientContext"].(*PatientContextInput))
		},
		nil,
		ec.marshalNDecisionTreeResult2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeResult,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_getDecisionTree(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "pathway":
				return ec.fieldContext_DecisionTreeResult_pathway(ctx, field)
			case "tree":
				return ec.fieldContext_DecisionTreeResult_tree(ctx, field)
			case "modelVersion":
				return ec.fieldContext_DecisionTreeResult_modelVersion(ctx, field)
			case "processingTimeMs":
				return ec.fieldContext_DecisionTreeResult_processingTimeMs(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type DecisionTreeResult", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_getDecisionTree_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_recommendPathwaysForPatient(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_recommendPathwaysForPatient,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().RecommendPathwaysForPatient(ctx, fc.Args["context"].(PatientContextInput), fc.Args["first"].(*int))
		},
		nil,
		ec.marshalNPathwayMatch2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayMatchᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_recommendPathwaysForPatient(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "pathway":
				return ec.fieldContext_PathwayMatch_pathway(ctx, field)
			case "matchScore":
				return ec.fieldContext_PathwayMatch_matchScore(ctx, field)
			case "matchReasons":
				return ec.fieldContext_PathwayMatch_matchReasons(ctx, field)
			case "mlConfidence":
				return ec.fieldContext_PathwayMatch_mlConfidence(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayMatch", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_recommendPathwaysForPatient_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_nodeOutcomes(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_nodeOutcomes,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().NodeOutcomes(ctx, fc.Args["nodeId"].(string))
		},
		nil,
		ec.marshalNPathwayNodeOutcome2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNodeOutcomeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_nodeOutcomes(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PathwayNodeOutcome_id(ctx, field)
			case "nodeId":
				return ec.fieldContext_PathwayNodeOutcome_nodeId(ctx, field)
			case "outcomeType":
				return ec.fieldContext_PathwayNodeOutcome_outcomeType(ctx, field)
			case "description":
				return ec.fieldContext_PathwayNodeOutcome_description(ctx, field)
			case "observedAt":
				return ec.fieldContext_PathwayNodeOutcome_observedAt(ctx, field)
			case "recordedBy":
				return ec.fieldContext_PathwayNodeOutcome_recordedBy(ctx, field)
			case "createdAt":
				return ec.fieldContext_PathwayNodeOutcome_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_PathwayNodeOutcome_updatedAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PathwayNodeOutcome", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_nodeOutcomes_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_pathwayInstance(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_pathwayInstance,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().PathwayInstance(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalOPatientPathwayInstance2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstance,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_pathwayInstance(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PatientPathwayInstance_id(ctx, field)
			case "patientId":
				return ec.fieldContext_PatientPathwayInstance_patientId(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PatientPathwayInstance_pathwayId(ctx, field)
			case "providerId":
				return ec.fieldContext_PatientPathwayInstance_providerId(ctx, field)
			case "mlModelId":
				return ec.fieldContext_PatientPathwayInstance_mlModelId(ctx, field)
			case "status":
				return ec.fieldContext_PatientPathwayInstance_status(ctx, field)
			case "startedAt":
				return ec.fieldContext_PatientPathwayInstance_startedAt(ctx, field)
			case "completedAt":
				return ec.fieldContext_PatientPathwayInstance_completedAt(ctx, field)
			case "abandonedAt":
				return ec.fieldContext_PatientPathwayInstance_abandonedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PatientPathwayInstance_pathway(ctx, field)
			case "selections":
				return ec.fieldContext_PatientPathwayInstance_selections(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PatientPathwayInstance", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_pathwayInstance_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_patientPathwayInstances(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_patientPathwayInstances,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().PatientPathwayInstances(ctx, fc.Args["patientId"].(string))
		},
		nil,
		ec.marshalNPatientPathwayInstance2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstanceᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_patientPathwayInstances(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_PatientPathwayInstance_id(ctx, field)
			case "patientId":
				return ec.fieldContext_PatientPathwayInstance_patientId(ctx, field)
			case "pathwayId":
				return ec.fieldContext_PatientPathwayInstance_pathwayId(ctx, field)
			case "providerId":
				return ec.fieldContext_PatientPathwayInstance_providerId(ctx, field)
			case "mlModelId":
				return ec.fieldContext_PatientPathwayInstance_mlModelId(ctx, field)
			case "status":
				return ec.fieldContext_PatientPathwayInstance_status(ctx, field)
			case "startedAt":
				return ec.fieldContext_PatientPathwayInstance_startedAt(ctx, field)
			case "completedAt":
				return ec.fieldContext_PatientPathwayInstance_completedAt(ctx, field)
			case "abandonedAt":
				return ec.fieldContext_PatientPathwayInstance_abandonedAt(ctx, field)
			case "pathway":
				return ec.fieldContext_PatientPathwayInstance_pathway(ctx, field)
			case "selections":
				return ec.fieldContext_PatientPathwayInstance_selections(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PatientPathwayInstance", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_patientPathwayInstances_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___type(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___type,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.introspectType(fc.Args["name"].(string))
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___type(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query___type_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___schema(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___schema,
		func(ctx context.Context) (any, error) {
			return ec.introspectSchema()
		},
		nil,
		ec.marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___schema(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "description":
				return ec.fieldContext___Schema_description(ctx, field)
			case "types":
				return ec.fieldContext___Schema_types(ctx, field)
			case "queryType":
				return ec.fieldContext___Schema_queryType(ctx, field)
			case "mutationType":
				return ec.fieldContext___Schema_mutationType(ctx, field)
			case "subscriptionType":
				return ec.fieldContext___Schema_subscriptionType(ctx, field)
			case "directives":
				return ec.fieldContext___Schema_directives(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Schema", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _TempIdMapping_tempId(ctx context.Context, field graphql.CollectedField, obj *TempIDMapping) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TempIdMapping_tempId,
		func(ctx context.Context) (any, error) {
			return obj.TempID, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TempIdMapping_tempId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TempIdMapping",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _TempIdMapping_nodeId(ctx context.Context, field graphql.CollectedField, obj *TempIDMapping) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TempIdMapping_nodeId,
		func(ctx context.Context) (any, error) {
			return obj.NodeID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TempIdMapping_nodeId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TempIdMapping",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _TreeSaveResult_pathwayId(ctx context.Context, field graphql.CollectedField, obj *entities.TreeSaveResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TreeSaveResult_pathwayId,
		func(ctx context.Context) (any, error) {
			return obj.PathwayID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TreeSaveResult_pathwayId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TreeSaveResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _TreeSaveResult_version(ctx context.Context, field graphql.CollectedField, obj *entities.TreeSaveResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TreeSaveResult_version,
		func(ctx context.Context) (any, error) {
			return obj.Version, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TreeSaveResult_version(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TreeSaveResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _TreeSaveResult_createdCount(ctx context.Context, field graphql.CollectedField, obj *entities.TreeSaveResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TreeSaveResult_createdCount,
		func(ctx context.Context) (any, error) {
			return obj.CreatedCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TreeSaveResult_createdCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TreeSaveResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _TreeSaveResult_updatedCount(ctx context.Context, field graphql.CollectedField, obj *entities.TreeSaveResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TreeSaveResult_updatedCount,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedCount, nil
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TreeSaveResult_updatedCount(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TreeSaveResult",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _TreeSaveResult_tempIdMap(ctx context.Context, field graphql.CollectedField, obj *entities.TreeSaveResult) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_TreeSaveResult_tempIdMap,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.TreeSaveResult().TempIDMap(ctx, obj)
		},
		nil,
		ec.marshalNTempIdMapping2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐTempIDMappingᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_TreeSaveResult_tempIdMap(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "TreeSaveResult",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "tempId":
				return ec.fieldContext_TempIdMapping_tempId(ctx, field)
			case "nodeId":
				return ec.fieldContext_TempIdMapping_nodeId(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type TempIdMapping", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Directive_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_isRepeatable(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_isRepeatable,
		func(ctx context.Context) (any, error) {
			return obj.IsRepeatable, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_isRepeatable(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_locations(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_locations,
		func(ctx context.Context) (any, error) {
			return obj.Locations, nil
		},
		nil,
		ec.marshalN__DirectiveLocation2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_locations(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __DirectiveLocation does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Directive_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Field_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Field_type(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_type(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_defaultValue(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_defaultValue,
		func(ctx context.Context) (any, error) {
			return obj.DefaultValue, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_defaultValue(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_types(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_types,
		func(ctx context.Context) (any, error) {
			return obj.Types(), nil
		},
		nil,
		ec.marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_types(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_queryType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_queryType,
		func(ctx context.Context) (any, error) {
			return obj.QueryType(), nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_queryType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_mutationType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_mutationType,
		func(ctx context.Context) (any, error) {
			return obj.MutationType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_mutationType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_subscriptionType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_subscriptionType,
		func(ctx context.Context) (any, error) {
			return obj.SubscriptionType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_subscriptionType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_directives(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_directives,
		func(ctx context.Context) (any, error) {
			return obj.Directives(), nil
		},
		nil,
		ec.marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_directives(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Directive_name(ctx, field)
			case "description":
				return ec.fieldContext___Directive_description(ctx, field)
			case "isRepeatable":
				return ec.fieldContext___Directive_isRepeatable(ctx, field)
			case "locations":
				return ec.fieldContext___Directive_locations(ctx, field)
			case "args":
				return ec.fieldContext___Directive_args(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Directive", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_kind(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_kind,
		func(ctx context.Context) (any, error) {
			return obj.Kind(), nil
		},
		nil,
		ec.marshalN__TypeKind2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Type_kind(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __TypeKind does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_name,
		func(ctx context.Context) (any, error) {
			return obj.Name(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_specifiedByURL(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_specifiedByURL,
		func(ctx context.Context) (any, error) {
			return obj.SpecifiedByURL(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_specifiedByURL(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_fields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_fields,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.Fields(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_fields(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Field_name(ctx, field)
			case "description":
				return ec.fieldContext___Field_description(ctx, field)
			case "args":
				return ec.fieldContext___Field_args(ctx, field)
			case "type":
				return ec.fieldContext___Field_type(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___Field_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___Field_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Field", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_fields_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_interfaces(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_interfaces,
		func(ctx context.Context) (any, error) {
			return obj.Interfaces(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_interfaces(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_possibleTypes(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_possibleTypes,
		func(ctx context.Context) (any, error) {
			return obj.PossibleTypes(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_possibleTypes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_enumValues(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_enumValues,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.EnumValues(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_enumValues(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___EnumValue_name(ctx, field)
			case "description":
				return ec.fieldContext___EnumValue_description(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___EnumValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___EnumValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __EnumValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_enumValues_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_inputFields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_inputFields,
		func(ctx context.Context) (any, error) {
			return obj.InputFields(), nil
		},
		nil,
		ec.marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_inputFields(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_ofType(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_ofType,
		func(ctx context.Context) (any, error) {
			return obj.OfType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_ofType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_isOneOf(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_isOneOf,
		func(ctx context.Context) (any, error) {
			return obj.IsOneOf(), nil
		},
		nil,
		ec.marshalOBoolean2bool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_isOneOf(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

// endregion **************************** field.gotpl *****************************

// region    **************************** input.gotpl *****************************

func (ec *executionContext) unmarshalInputClinicalPathwayFilter(ctx context.Context, obj any) (ClinicalPathwayFilter, error) {
	var it ClinicalPathwayFilter
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"isActive", "isPublished", "conditionCode"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "isActive":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isActive"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsActive = data
		case "isPublished":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isPublished"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsPublished = data
		case "conditionCode":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("conditionCode"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.ConditionCode = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateClinicalPathwayInput(ctx context.Context, obj any) (CreateClinicalPathwayInput, error) {
	var it CreateClinicalPathwayInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"name", "description", "conditionCodes", "versionLabel", "evidenceSource", "evidenceGrade", "isActive", "createdBy"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "conditionCodes":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("conditionCodes"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.ConditionCodes = data
		case "versionLabel":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("versionLabel"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.VersionLabel = data
		case "evidenceSource":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("evidenceSource"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.EvidenceSource = data
		case "evidenceGrade":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("evidenceGrade"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.EvidenceGrade = data
		case "isActive":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isActive"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsActive = data
		case "createdBy":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("createdBy"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.CreatedBy = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreatePathwayNodeInput(ctx context.Context, obj any) (CreatePathwayNodeInput, error) {
	var it CreatePathwayNodeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"pathwayId", "parentNodeId", "nodeType", "title", "description", "actionType", "decisionFactors", "suggestedTemplateId", "sortOrder", "baseConfidence", "isActive"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "pathwayId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("pathwayId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.PathwayID = data
		case "parentNodeId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("parentNodeId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.ParentNodeID = data
		case "nodeType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("nodeType"))
			data, err := ec.unmarshalNNodeType2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeType(ctx, v)
			if err != nil {
				return it, err
			}
			it.NodeType = data
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "actionType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("actionType"))
			data, err := ec.unmarshalOActionType2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐActionType(ctx, v)
			if err != nil {
				return it, err
			}
			it.ActionType = data
		case "decisionFactors":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("decisionFactors"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.DecisionFactors = data
		case "suggestedTemplateId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("suggestedTemplateId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.SuggestedTemplateID = data
		case "sortOrder":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("sortOrder"))
			data, err := ec.unmarshalOInt2ᚖint(ctx, v)
			if err != nil {
				return it, err
			}
			it.SortOrder = data
		case "baseConfidence":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("baseConfidence"))
			data, err := ec.unmarshalOFloat2ᚖfloat64(ctx, v)
			if err != nil {
				return it, err
			}
			it.BaseConfidence = data
		case "isActive":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isActive"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsActive = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputEditorNodeInput(ctx context.Context, obj any) (EditorNodeInput, error) {
	var it EditorNodeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"tempId", "id", "isNew", "isModified", "nodeType", "title", "description", "actionType", "decisionFactors", "suggestedTemplateId", "baseConfidence", "isActive", "children"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "tempId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("tempId"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.TempID = data
		case "id":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("id"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.ID = data
		case "isNew":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isNew"))
			data, err := ec.unmarshalNBoolean2bool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsNew = data
		case "isModified":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isModified"))
			data, err := ec.unmarshalNBoolean2bool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsModified = data
		case "nodeType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("nodeType"))
			data, err := ec.unmarshalNNodeType2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeType(ctx, v)
			if err != nil {
				return it, err
			}
			it.NodeType = data
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "actionType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("actionType"))
			data, err := ec.unmarshalOActionType2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐActionType(ctx, v)
			if err != nil {
				return it, err
			}
			it.ActionType = data
		case "decisionFactors":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("decisionFactors"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.DecisionFactors = data
		case "suggestedTemplateId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("suggestedTemplateId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.SuggestedTemplateID = data
		case "baseConfidence":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("baseConfidence"))
			data, err := ec.unmarshalOFloat2ᚖfloat64(ctx, v)
			if err != nil {
				return it, err
			}
			it.BaseConfidence = data
		case "isActive":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isActive"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsActive = data
		case "children":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("children"))
			data, err := ec.unmarshalOEditorNodeInput2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐEditorNodeInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Children = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputLabValueInput(ctx context.Context, obj any) (LabValueInput, error) {
	var it LabValueInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"code", "value"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "code":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("code"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Code = data
		case "value":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("value"))
			data, err := ec.unmarshalNFloat2float64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Value = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputMovePathwayNodeInput(ctx context.Context, obj any) (MovePathwayNodeInput, error) {
	var it MovePathwayNodeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"newParentNodeId", "newSortOrder"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "newParentNodeId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("newParentNodeId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.NewParentNodeID = data
		case "newSortOrder":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("newSortOrder"))
			data, err := ec.unmarshalOInt2ᚖint(ctx, v)
			if err != nil {
				return it, err
			}
			it.NewSortOrder = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputPatientContextInput(ctx context.Context, obj any) (PatientContextInput, error) {
	var it PatientContextInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"patientId", "providerId", "conditionCodes", "age", "sex", "medicationCodes", "labCodes", "labValues", "comorbidities", "riskFactors", "clinicalNotes"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "patientId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("patientId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.PatientID = data
		case "providerId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("providerId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.ProviderID = data
		case "conditionCodes":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("conditionCodes"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.ConditionCodes = data
		case "age":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("age"))
			data, err := ec.unmarshalOInt2ᚖint(ctx, v)
			if err != nil {
				return it, err
			}
			it.Age = data
		case "sex":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("sex"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Sex = data
		case "medicationCodes":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("medicationCodes"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.MedicationCodes = data
		case "labCodes":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("labCodes"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.LabCodes = data
		case "labValues":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("labValues"))
			data, err := ec.unmarshalOLabValueInput2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐLabValueInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.LabValues = data
		case "comorbidities":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("comorbidities"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Comorbidities = data
		case "riskFactors":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("riskFactors"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.RiskFactors = data
		case "clinicalNotes":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("clinicalNotes"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.ClinicalNotes = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputRecordNodeOutcomeInput(ctx context.Context, obj any) (RecordNodeOutcomeInput, error) {
	var it RecordNodeOutcomeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"nodeId", "outcomeType", "description", "observedAt", "recordedBy"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "nodeId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("nodeId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.NodeID = data
		case "outcomeType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("outcomeType"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.OutcomeType = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "observedAt":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("observedAt"))
			data, err := ec.unmarshalODateTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.ObservedAt = data
		case "recordedBy":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("recordedBy"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.RecordedBy = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputRecordPathwaySelectionInput(ctx context.Context, obj any) (RecordPathwaySelectionInput, error) {
	var it RecordPathwaySelectionInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"instanceId", "nodeId", "selectionType", "overrideReason", "createdBy"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "instanceId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("instanceId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.InstanceID = data
		case "nodeId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("nodeId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.NodeID = data
		case "selectionType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("selectionType"))
			data, err := ec.unmarshalNSelectionType2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐSelectionType(ctx, v)
			if err != nil {
				return it, err
			}
			it.SelectionType = data
		case "overrideReason":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("overrideReason"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.OverrideReason = data
		case "createdBy":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("createdBy"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.CreatedBy = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputSaveDecisionTreeInput(ctx context.Context, obj any) (SaveDecisionTreeInput, error) {
	var it SaveDecisionTreeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"pathwayId", "tree", "expectedVersion"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "pathwayId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("pathwayId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.PathwayID = data
		case "tree":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("tree"))
			data, err := ec.unmarshalNEditorNodeInput2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐEditorNodeInput(ctx, v)
			if err != nil {
				return it, err
			}
			it.Tree = data
		case "expectedVersion":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("expectedVersion"))
			data, err := ec.unmarshalOInt2ᚖint(ctx, v)
			if err != nil {
				return it, err
			}
			it.ExpectedVersion = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputStartPathwayInstanceInput(ctx context.Context, obj any) (StartPathwayInstanceInput, error) {
	var it StartPathwayInstanceInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"patientId", "pathwayId", "providerId", "patientContext", "mlModelId"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "patientId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("patientId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.PatientID = data
		case "pathwayId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("pathwayId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.PathwayID = data
		case "providerId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("providerId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.ProviderID = data
		case "patientContext":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("patientContext"))
			data, err := ec.unmarshalOPatientContextInput2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐPatientContextInput(ctx, v)
			if err != nil {
				return it, err
			}
			it.PatientContext = data
		case "mlModelId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("mlModelId"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.MlModelID = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateClinicalPathwayInput(ctx context.Context, obj any) (UpdateClinicalPathwayInput, error) {
	var it UpdateClinicalPathwayInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"name", "description", "conditionCodes", "versionLabel", "evidenceSource", "evidenceGrade", "isActive", "expectedVersion"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "conditionCodes":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("conditionCodes"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.ConditionCodes = data
		case "versionLabel":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("versionLabel"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.VersionLabel = data
		case "evidenceSource":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("evidenceSource"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.EvidenceSource = data
		case "evidenceGrade":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("evidenceGrade"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.EvidenceGrade = data
		case "isActive":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isActive"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsActive = data
		case "expectedVersion":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("expectedVersion"))
			data, err := ec.unmarshalOInt2ᚖint(ctx, v)
			if err != nil {
				return it, err
			}
			it.ExpectedVersion = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateNodeOutcomeInput(ctx context.Context, obj any) (UpdateNodeOutcomeInput, error) {
	var it UpdateNodeOutcomeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"outcomeType", "description", "observedAt"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "outcomeType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("outcomeType"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.OutcomeType = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "observedAt":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("observedAt"))
			data, err := ec.unmarshalODateTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.ObservedAt = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdatePathwayNodeInput(ctx context.Context, obj any) (UpdatePathwayNodeInput, error) {
	var it UpdatePathwayNodeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"title", "description", "actionType", "decisionFactors", "suggestedTemplateId", "baseConfidence", "isActive"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "title":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("title"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Title = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "actionType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("actionType"))
			data, err := ec.unmarshalOActionType2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐActionType(ctx, v)
			if err != nil {
				return it, err
			}
			it.ActionType = data
		case "decisionFactors":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("decisionFactors"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.DecisionFactors = data
		case "suggestedTemplateId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("suggestedTemplateId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.SuggestedTemplateID = data
		case "baseConfidence":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("baseConfidence"))
			data, err := ec.unmarshalOFloat2ᚖfloat64(ctx, v)
			if err != nil {
				return it, err
			}
			it.BaseConfidence = data
		case "isActive":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("isActive"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.IsActive = data
		}
	}

	return it, nil
}

// endregion **************************** input.gotpl *****************************

// region    ************************** interface.gotpl ***************************

// endregion ************************** interface.gotpl ***************************

// region    **************************** object.gotpl ****************************

var clinicalPathwayImplementors = []string{"ClinicalPathway"}

func (ec *executionContext) _ClinicalPathway(ctx context.Context, sel ast.SelectionSet, obj *entities.ClinicalPathway) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, clinicalPathwayImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ClinicalPathway")
		case "id":
			out.Values[i] = ec._ClinicalPathway_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "name":
			out.Values[i] = ec._ClinicalPathway_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "slug":
			out.Values[i] = ec._ClinicalPathway_slug(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "description":
			out.Values[i] = ec._ClinicalPathway_description(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "conditionCodes":
			out.Values[i] = ec._ClinicalPathway_conditionCodes(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "versionLabel":
			out.Values[i] = ec._ClinicalPathway_versionLabel(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "evidenceSource":
			out.Values[i] = ec._ClinicalPathway_evidenceSource(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "evidenceGrade":
			out.Values[i] = ec._ClinicalPathway_evidenceGrade(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "isActive":
			out.Values[i] = ec._ClinicalPathway_isActive(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "isPublished":
			out.Values[i] = ec._ClinicalPathway_isPublished(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "version":
			out.Values[i] = ec._ClinicalPathway_version(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdBy":
			out.Values[i] = ec._ClinicalPathway_createdBy(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdAt":
			out.Values[i] = ec._ClinicalPathway_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._ClinicalPathway_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "rootNode":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._ClinicalPathway_rootNode(ctx, field, obj)
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "usageStats":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._ClinicalPathway_usageStats(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var clinicalPathwayConnectionImplementors = []string{"ClinicalPathwayConnection"}

func (ec *executionContext) _ClinicalPathwayConnection(ctx context.Context, sel ast.SelectionSet, obj *entities.PathwayConnection) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, clinicalPathwayConnectionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ClinicalPathwayConnection")
		case "edges":
			out.Values[i] = ec._ClinicalPathwayConnection_edges(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "pageInfo":
			out.Values[i] = ec._ClinicalPathwayConnection_pageInfo(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "totalCount":
			out.Values[i] = ec._ClinicalPathwayConnection_totalCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var clinicalPathwayEdgeImplementors = []string{"ClinicalPathwayEdge"}

func (ec *executionContext) _ClinicalPathwayEdge(ctx context.Context, sel ast.SelectionSet, obj *entities.PathwayEdge) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, clinicalPathwayEdgeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ClinicalPathwayEdge")
		case "cursor":
			out.Values[i] = ec._ClinicalPathwayEdge_cursor(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "node":
			out.Values[i] = ec._ClinicalPathwayEdge_node(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var decisionTreeNodeImplementors = []string{"DecisionTreeNode"}

func (ec *executionContext) _DecisionTreeNode(ctx context.Context, sel ast.SelectionSet, obj *entities.DecisionTreeNode) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, decisionTreeNodeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("DecisionTreeNode")
		case "node":
			out.Values[i] = ec._DecisionTreeNode_node(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "confidence":
			out.Values[i] = ec._DecisionTreeNode_confidence(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isRecommendedPath":
			out.Values[i] = ec._DecisionTreeNode_isRecommendedPath(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "alternativeCount":
			out.Values[i] = ec._DecisionTreeNode_alternativeCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "recommendation":
			out.Values[i] = ec._DecisionTreeNode_recommendation(ctx, field, obj)
		case "children":
			out.Values[i] = ec._DecisionTreeNode_children(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var decisionTreeResultImplementors = []string{"DecisionTreeResult"}

func (ec *executionContext) _DecisionTreeResult(ctx context.Context, sel ast.SelectionSet, obj *entities.DecisionTreeResult) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, decisionTreeResultImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("DecisionTreeResult")
		case "pathway":
			out.Values[i] = ec._DecisionTreeResult_pathway(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "tree":
			out.Values[i] = ec._DecisionTreeResult_tree(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "modelVersion":
			out.Values[i] = ec._DecisionTreeResult_modelVersion(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "processingTimeMs":
			out.Values[i] = ec._DecisionTreeResult_processingTimeMs(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mutationImplementors = []string{"Mutation"}

func (ec *executionContext) _Mutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mutationImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Mutation",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Mutation")
		case "createClinicalPathway":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createClinicalPathway(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateClinicalPathway":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateClinicalPathway(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteClinicalPathway":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteClinicalPathway(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "publishClinicalPathway":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_publishClinicalPathway(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "unpublishClinicalPathway":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_unpublishClinicalPathway(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "duplicateClinicalPathway":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_duplicateClinicalPathway(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createPathwayNode":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createPathwayNode(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatePathwayNode":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updatePathwayNode(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deletePathwayNode":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deletePathwayNode(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "movePathwayNode":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_movePathwayNode(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "startPathwayInstance":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_startPathwayInstance(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "recordPathwaySelection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_recordPathwaySelection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "completePathwayInstance":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_completePathwayInstance(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "abandonPathwayInstance":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_abandonPathwayInstance(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "linkSelectionToCarePlan":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_linkSelectionToCarePlan(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "recordNodeOutcome":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_recordNodeOutcome(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateNodeOutcome":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateNodeOutcome(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteNodeOutcome":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteNodeOutcome(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "saveDecisionTree":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_saveDecisionTree(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var nodeRecommendationImplementors = []string{"NodeRecommendation"}

func (ec *executionContext) _NodeRecommendation(ctx context.Context, sel ast.SelectionSet, obj *entities.NodeRecommendation) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, nodeRecommendationImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("NodeRecommendation")
		case "templateId":
			out.Values[i] = ec._NodeRecommendation_templateId(ctx, field, obj)
		case "title":
			out.Values[i] = ec._NodeRecommendation_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec._NodeRecommendation_description(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "actionType":
			out.Values[i] = ec._NodeRecommendation_actionType(ctx, field, obj)
		case "confidence":
			out.Values[i] = ec._NodeRecommendation_confidence(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var nodeSelectionStatsImplementors = []string{"NodeSelectionStats"}

func (ec *executionContext) _NodeSelectionStats(ctx context.Context, sel ast.SelectionSet, obj *entities.NodeSelectionStats) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, nodeSelectionStatsImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("NodeSelectionStats")
		case "nodeId":
			out.Values[i] = ec._NodeSelectionStats_nodeId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "totalSelections":
			out.Values[i] = ec._NodeSelectionStats_totalSelections(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mlRecommended":
			out.Values[i] = ec._NodeSelectionStats_mlRecommended(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "providerSelected":
			out.Values[i] = ec._NodeSelectionStats_providerSelected(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "autoApplied":
			out.Values[i] = ec._NodeSelectionStats_autoApplied(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "overrideCount":
			out.Values[i] = ec._NodeSelectionStats_overrideCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var pageInfoImplementors = []string{"PageInfo"}

func (ec *executionContext) _PageInfo(ctx context.Context, sel ast.SelectionSet, obj *entities.PageInfo) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, pageInfoImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PageInfo")
		case "hasNextPage":
			out.Values[i] = ec._PageInfo_hasNextPage(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "hasPreviousPage":
			out.Values[i] = ec._PageInfo_hasPreviousPage(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "startCursor":
			out.Values[i] = ec._PageInfo_startCursor(ctx, field, obj)
		case "endCursor":
			out.Values[i] = ec._PageInfo_endCursor(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var pathwayMatchImplementors = []string{"PathwayMatch"}

func (ec *executionContext) _PathwayMatch(ctx context.Context, sel ast.SelectionSet, obj *entities.PathwayMatch) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, pathwayMatchImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PathwayMatch")
		case "pathway":
			out.Values[i] = ec._PathwayMatch_pathway(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "matchScore":
			out.Values[i] = ec._PathwayMatch_matchScore(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "matchReasons":
			out.Values[i] = ec._PathwayMatch_matchReasons(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mlConfidence":
			out.Values[i] = ec._PathwayMatch_mlConfidence(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var pathwayNodeImplementors = []string{"PathwayNode"}

func (ec *executionContext) _PathwayNode(ctx context.Context, sel ast.SelectionSet, obj *entities.PathwayNode) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, pathwayNodeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PathwayNode")
		case "id":
			out.Values[i] = ec._PathwayNode_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "pathwayId":
			out.Values[i] = ec._PathwayNode_pathwayId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "parentNodeId":
			out.Values[i] = ec._PathwayNode_parentNodeId(ctx, field, obj)
		case "nodeType":
			out.Values[i] = ec._PathwayNode_nodeType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "title":
			out.Values[i] = ec._PathwayNode_title(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "description":
			out.Values[i] = ec._PathwayNode_description(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "actionType":
			out.Values[i] = ec._PathwayNode_actionType(ctx, field, obj)
		case "decisionFactors":
			out.Values[i] = ec._PathwayNode_decisionFactors(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "suggestedTemplateId":
			out.Values[i] = ec._PathwayNode_suggestedTemplateId(ctx, field, obj)
		case "sortOrder":
			out.Values[i] = ec._PathwayNode_sortOrder(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "baseConfidence":
			out.Values[i] = ec._PathwayNode_baseConfidence(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "isActive":
			out.Values[i] = ec._PathwayNode_isActive(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdAt":
			out.Values[i] = ec._PathwayNode_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._PathwayNode_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "pathway":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._PathwayNode_pathway(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "children":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._PathwayNode_children(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "selectionStats":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._PathwayNode_selectionStats(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var pathwayNodeOutcomeImplementors = []string{"PathwayNodeOutcome"}

func (ec *executionContext) _PathwayNodeOutcome(ctx context.Context, sel ast.SelectionSet, obj *entities.PathwayNodeOutcome) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, pathwayNodeOutcomeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PathwayNodeOutcome")
		case "id":
			out.Values[i] = ec._PathwayNodeOutcome_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "nodeId":
			out.Values[i] = ec._PathwayNodeOutcome_nodeId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "outcomeType":
			out.Values[i] = ec._PathwayNodeOutcome_outcomeType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec._PathwayNodeOutcome_description(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "observedAt":
			out.Values[i] = ec._PathwayNodeOutcome_observedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "recordedBy":
			out.Values[i] = ec._PathwayNodeOutcome_recordedBy(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._PathwayNodeOutcome_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updatedAt":
			out.Values[i] = ec._PathwayNodeOutcome_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var pathwayUsageStatsImplementors = []string{"PathwayUsageStats"}

func (ec *executionContext) _PathwayUsageStats(ctx context.Context, sel ast.SelectionSet, obj *entities.PathwayUsageStats) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, pathwayUsageStatsImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PathwayUsageStats")
		case "pathwayId":
			out.Values[i] = ec._PathwayUsageStats_pathwayId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "totalInstances":
			out.Values[i] = ec._PathwayUsageStats_totalInstances(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "completed":
			out.Values[i] = ec._PathwayUsageStats_completed(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "abandoned":
			out.Values[i] = ec._PathwayUsageStats_abandoned(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "active":
			out.Values[i] = ec._PathwayUsageStats_active(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "completionRate":
			out.Values[i] = ec._PathwayUsageStats_completionRate(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var patientPathwayInstanceImplementors = []string{"PatientPathwayInstance"}

func (ec *executionContext) _PatientPathwayInstance(ctx context.Context, sel ast.SelectionSet, obj *entities.PatientPathwayInstance) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, patientPathwayInstanceImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PatientPathwayInstance")
		case "id":
			out.Values[i] = ec._PatientPathwayInstance_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "patientId":
			out.Values[i] = ec._PatientPathwayInstance_patientId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "pathwayId":
			out.Values[i] = ec._PatientPathwayInstance_pathwayId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "providerId":
			out.Values[i] = ec._PatientPathwayInstance_providerId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "mlModelId":
			out.Values[i] = ec._PatientPathwayInstance_mlModelId(ctx, field, obj)
		case "status":
			out.Values[i] = ec._PatientPathwayInstance_status(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "startedAt":
			out.Values[i] = ec._PatientPathwayInstance_startedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "completedAt":
			out.Values[i] = ec._PatientPathwayInstance_completedAt(ctx, field, obj)
		case "abandonedAt":
			out.Values[i] = ec._PatientPathwayInstance_abandonedAt(ctx, field, obj)
		case "pathway":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._PatientPathwayInstance_pathway(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "selections":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._PatientPathwayInstance_selections(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var patientPathwaySelectionImplementors = []string{"PatientPathwaySelection"}

func (ec *executionContext) _PatientPathwaySelection(ctx context.Context, sel ast.SelectionSet, obj *entities.PatientPathwaySelection) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, patientPathwaySelectionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PatientPathwaySelection")
		case "id":
			out.Values[i] = ec._PatientPathwaySelection_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "instanceId":
			out.Values[i] = ec._PatientPathwaySelection_instanceId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "nodeId":
			out.Values[i] = ec._PatientPathwaySelection_nodeId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "selectionType":
			out.Values[i] = ec._PatientPathwaySelection_selectionType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "overrideReason":
			out.Values[i] = ec._PatientPathwaySelection_overrideReason(ctx, field, obj)
		case "resultingCarePlanId":
			out.Values[i] = ec._PatientPathwaySelection_resultingCarePlanId(ctx, field, obj)
		case "createdBy":
			out.Values[i] = ec._PatientPathwaySelection_createdBy(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdAt":
			out.Values[i] = ec._PatientPathwaySelection_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "node":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._PatientPathwaySelection_node(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var queryImplementors = []string{"Query"}

func (ec *executionContext) _Query(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, queryImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Query",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Query")
		case "clinicalPathway":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_clinicalPathway(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "clinicalPathwayBySlug":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_clinicalPathwayBySlug(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "clinicalPathways":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_clinicalPathways(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "pathwayNode":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_pathwayNode(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "pathwayTree":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_pathwayTree(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "getDecisionTree":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_getDecisionTree(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "recommendPathwaysForPatient":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_recommendPathwaysForPatient(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "nodeOutcomes":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_nodeOutcomes(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "pathwayInstance":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_pathwayInstance(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "patientPathwayInstances":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_patientPathwayInstances(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "__type":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___type(ctx, field)
			})
		case "__schema":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___schema(ctx, field)
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var tempIdMappingImplementors = []string{"TempIdMapping"}

func (ec *executionContext) _TempIdMapping(ctx context.Context, sel ast.SelectionSet, obj *TempIDMapping) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, tempIdMappingImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("TempIdMapping")
		case "tempId":
			out.Values[i] = ec._TempIdMapping_tempId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "nodeId":
			out.Values[i] = ec._TempIdMapping_nodeId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var treeSaveResultImplementors = []string{"TreeSaveResult"}

func (ec *executionContext) _TreeSaveResult(ctx context.Context, sel ast.SelectionSet, obj *entities.TreeSaveResult) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, treeSaveResultImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("TreeSaveResult")
		case "pathwayId":
			out.Values[i] = ec._TreeSaveResult_pathwayId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "version":
			out.Values[i] = ec._TreeSaveResult_version(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdCount":
			out.Values[i] = ec._TreeSaveResult_createdCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedCount":
			out.Values[i] = ec._TreeSaveResult_updatedCount(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "tempIdMap":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._TreeSaveResult_tempIdMap(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __DirectiveImplementors = []string{"__Directive"}

func (ec *executionContext) ___Directive(ctx context.Context, sel ast.SelectionSet, obj *introspection.Directive) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __DirectiveImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Directive")
		case "name":
			out.Values[i] = ec.___Directive_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Directive_description(ctx, field, obj)
		case "isRepeatable":
			out.Values[i] = ec.___Directive_isRepeatable(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "locations":
			out.Values[i] = ec.___Directive_locations(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "args":
			out.Values[i] = ec.___Directive_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __EnumValueImplementors = []string{"__EnumValue"}

func (ec *executionContext) ___EnumValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.EnumValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __EnumValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__EnumValue")
		case "name":
			out.Values[i] = ec.___EnumValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___EnumValue_description(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___EnumValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___EnumValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __FieldImplementors = []string{"__Field"}

func (ec *executionContext) ___Field(ctx context.Context, sel ast.SelectionSet, obj *introspection.Field) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __FieldImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Field")
		case "name":
			out.Values[i] = ec.___Field_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Field_description(ctx, field, obj)
		case "args":
			out.Values[i] = ec.___Field_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "type":
			out.Values[i] = ec.___Field_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isDeprecated":
			out.Values[i] = ec.___Field_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___Field_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __InputValueImplementors = []string{"__InputValue"}

func (ec *executionContext) ___InputValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.InputValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __InputValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__InputValue")
		case "name":
			out.Values[i] = ec.___InputValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___InputValue_description(ctx, field, obj)
		case "type":
			out.Values[i] = ec.___InputValue_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "defaultValue":
			out.Values[i] = ec.___InputValue_defaultValue(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___InputValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___InputValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __SchemaImplementors = []string{"__Schema"}

func (ec *executionContext) ___Schema(ctx context.Context, sel ast.SelectionSet, obj *introspection.Schema) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __SchemaImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Schema")
		case "description":
			out.Values[i] = ec.___Schema_description(ctx, field, obj)
		case "types":
			out.Values[i] = ec.___Schema_types(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "queryType":
			out.Values[i] = ec.___Schema_queryType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mutationType":
			out.Values[i] = ec.___Schema_mutationType(ctx, field, obj)
		case "subscriptionType":
			out.Values[i] = ec.___Schema_subscriptionType(ctx, field, obj)
		case "directives":
			out.Values[i] = ec.___Schema_directives(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __TypeImplementors = []string{"__Type"}

func (ec *executionContext) ___Type(ctx context.Context, sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __TypeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Type")
		case "kind":
			out.Values[i] = ec.___Type_kind(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec.___Type_name(ctx, field, obj)
		case "description":
			out.Values[i] = ec.___Type_description(ctx, field, obj)
		case "specifiedByURL":
			out.Values[i] = ec.___Type_specifiedByURL(ctx, field, obj)
		case "fields":
			out.Values[i] = ec.___Type_fields(ctx, field, obj)
		case "interfaces":
			out.Values[i] = ec.___Type_interfaces(ctx, field, obj)
		case "possibleTypes":
			out.Values[i] = ec.___Type_possibleTypes(ctx, field, obj)
		case "enumValues":
			out.Values[i] = ec.___Type_enumValues(ctx, field, obj)
		case "inputFields":
			out.Values[i] = ec.___Type_inputFields(ctx, field, obj)
		case "ofType":
			out.Values[i] = ec.___Type_ofType(ctx, field, obj)
		case "isOneOf":
			out.Values[i] = ec.___Type_isOneOf(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

// endregion **************************** object.gotpl ****************************

// region    ***************************** type.gotpl *****************************

func (ec *executionContext) unmarshalNBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalBoolean(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNClinicalPathway2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway(ctx context.Context, sel ast.SelectionSet, v entities.ClinicalPathway) graphql.Marshaler {
	return ec._ClinicalPathway(ctx, sel, &v)
}

func (ec *executionContext) marshalNClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway(ctx context.Context, sel ast.SelectionSet, v *entities.ClinicalPathway) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ClinicalPathway(ctx, sel, v)
}

func (ec *executionContext) marshalNClinicalPathwayConnection2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayConnection(ctx context.Context, sel ast.SelectionSet, v entities.PathwayConnection) graphql.Marshaler {
	return ec._ClinicalPathwayConnection(ctx, sel, &v)
}

func (ec *executionContext) marshalNClinicalPathwayConnection2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayConnection(ctx context.Context, sel ast.SelectionSet, v *entities.PathwayConnection) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ClinicalPathwayConnection(ctx, sel, v)
}

func (ec *executionContext) marshalNClinicalPathwayEdge2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayEdgeᚄ(ctx context.Context, sel ast.SelectionSet, v []*entities.PathwayEdge) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNClinicalPathwayEdge2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayEdge(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNClinicalPathwayEdge2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayEdge(ctx context.Context, sel ast.SelectionSet, v *entities.PathwayEdge) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ClinicalPathwayEdge(ctx, sel, v)
}

func (ec *executionContext) unmarshalNCreateClinicalPathwayInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐCreateClinicalPathwayInput(ctx context.Context, v any) (CreateClinicalPathwayInput, error) {
	res, err := ec.unmarshalInputCreateClinicalPathwayInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreatePathwayNodeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐCreatePathwayNodeInput(ctx context.Context, v any) (CreatePathwayNodeInput, error) {
	res, err := ec.unmarshalInputCreatePathwayNodeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNDateTime2timeᚐTime(ctx context.Context, v any) (time.Time, error) {
	res, err := scalars.UnmarshalDateTime(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNDateTime2timeᚐTime(ctx context.Context, sel ast.SelectionSet, v time.Time) graphql.Marshaler {
	_ = sel
	res := scalars.MarshalDateTime(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNDecisionTreeNode2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeNode(ctx context.Context, sel ast.SelectionSet, v entities.DecisionTreeNode) graphql.Marshaler {
	return ec._DecisionTreeNode(ctx, sel, &v)
}

func (ec *executionContext) marshalNDecisionTreeNode2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeNodeᚄ(ctx context.Context, sel ast.SelectionSet, v []*entities.DecisionTreeNode) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNDecisionTreeNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeNode(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNDecisionTreeNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeNode(ctx context.Context, sel ast.SelectionSet, v *entities.DecisionTreeNode) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._DecisionTreeNode(ctx, sel, v)
}

func (ec *executionContext) marshalNDecisionTreeResult2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeResult(ctx context.Context, sel ast.SelectionSet, v entities.DecisionTreeResult) graphql.Marshaler {
	return ec._DecisionTreeResult(ctx, sel, &v)
}

func (ec *executionContext) marshalNDecisionTreeResult2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐDecisionTreeResult(ctx context.Context, sel ast.SelectionSet, v *entities.DecisionTreeResult) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._DecisionTreeResult(ctx, sel, v)
}

func (ec *executionContext) unmarshalNEditorNodeInput2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐEditorNodeInput(ctx context.Context, v any) (*EditorNodeInput, error) {
	res, err := ec.unmarshalInputEditorNodeInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNFloat2float64(ctx context.Context, v any) (float64, error) {
	res, err := graphql.UnmarshalFloatContext(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNFloat2float64(ctx context.Context, sel ast.SelectionSet, v float64) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalFloatContext(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return graphql.WrapContextMarshaler(ctx, res)
}

func (ec *executionContext) unmarshalNID2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalID(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNID2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalID(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNInstanceStatus2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐInstanceStatus(ctx context.Context, v any) (entities.InstanceStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := entities.InstanceStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInstanceStatus2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐInstanceStatus(ctx context.Context, sel ast.SelectionSet, v entities.InstanceStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNInt2int(ctx context.Context, v any) (int, error) {
	res, err := graphql.UnmarshalInt(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInt2int(ctx context.Context, sel ast.SelectionSet, v int) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalInt(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNLabValueInput2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐLabValueInput(ctx context.Context, v any) (*LabValueInput, error) {
	res, err := ec.unmarshalInputLabValueInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNMovePathwayNodeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐMovePathwayNodeInput(ctx context.Context, v any) (MovePathwayNodeInput, error) {
	res, err := ec.unmarshalInputMovePathwayNodeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNNodeSelectionStats2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeSelectionStats(ctx context.Context, sel ast.SelectionSet, v entities.NodeSelectionStats) graphql.Marshaler {
	return ec._NodeSelectionStats(ctx, sel, &v)
}

func (ec *executionContext) marshalNNodeSelectionStats2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeSelectionStats(ctx context.Context, sel ast.SelectionSet, v *entities.NodeSelectionStats) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._NodeSelectionStats(ctx, sel, v)
}

func (ec *executionContext) unmarshalNNodeType2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeType(ctx context.Context, v any) (entities.NodeType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := entities.NodeType(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNNodeType2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeType(ctx context.Context, sel ast.SelectionSet, v entities.NodeType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNPageInfo2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPageInfo(ctx context.Context, sel ast.SelectionSet, v *entities.PageInfo) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PageInfo(ctx, sel, v)
}

func (ec *executionContext) marshalNPathwayMatch2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayMatchᚄ(ctx context.Context, sel ast.SelectionSet, v []*entities.PathwayMatch) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNPathwayMatch2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayMatch(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNPathwayMatch2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayMatch(ctx context.Context, sel ast.SelectionSet, v *entities.PathwayMatch) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PathwayMatch(ctx, sel, v)
}

func (ec *executionContext) marshalNPathwayNode2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode(ctx context.Context, sel ast.SelectionSet, v entities.PathwayNode) graphql.Marshaler {
	return ec._PathwayNode(ctx, sel, &v)
}

func (ec *executionContext) marshalNPathwayNode2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNodeᚄ(ctx context.Context, sel ast.SelectionSet, v []*entities.PathwayNode) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode(ctx context.Context, sel ast.SelectionSet, v *entities.PathwayNode) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PathwayNode(ctx, sel, v)
}

func (ec *executionContext) marshalNPathwayNodeOutcome2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNodeOutcome(ctx context.Context, sel ast.SelectionSet, v entities.PathwayNodeOutcome) graphql.Marshaler {
	return ec._PathwayNodeOutcome(ctx, sel, &v)
}

func (ec *executionContext) marshalNPathwayNodeOutcome2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNodeOutcomeᚄ(ctx context.Context, sel ast.SelectionSet, v []*entities.PathwayNodeOutcome) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNPathwayNodeOutcome2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNodeOutcome(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNPathwayNodeOutcome2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNodeOutcome(ctx context.Context, sel ast.SelectionSet, v *entities.PathwayNodeOutcome) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PathwayNodeOutcome(ctx, sel, v)
}

func (ec *executionContext) marshalNPathwayUsageStats2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayUsageStats(ctx context.Context, sel ast.SelectionSet, v entities.PathwayUsageStats) graphql.Marshaler {
	return ec._PathwayUsageStats(ctx, sel, &v)
}

func (ec *executionContext) marshalNPathwayUsageStats2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayUsageStats(ctx context.Context, sel ast.SelectionSet, v *entities.PathwayUsageStats) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PathwayUsageStats(ctx, sel, v)
}

func (ec *executionContext) unmarshalNPatientContextInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐPatientContextInput(ctx context.Context, v any) (PatientContextInput, error) {
	res, err := ec.unmarshalInputPatientContextInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNPatientPathwayInstance2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstance(ctx context.Context, sel ast.SelectionSet, v entities.PatientPathwayInstance) graphql.Marshaler {
	return ec._PatientPathwayInstance(ctx, sel, &v)
}

func (ec *executionContext) marshalNPatientPathwayInstance2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstanceᚄ(ctx context.Context, sel ast.SelectionSet, v []*entities.PatientPathwayInstance) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNPatientPathwayInstance2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstance(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNPatientPathwayInstance2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstance(ctx context.Context, sel ast.SelectionSet, v *entities.PatientPathwayInstance) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PatientPathwayInstance(ctx, sel, v)
}

func (ec *executionContext) marshalNPatientPathwaySelection2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwaySelection(ctx context.Context, sel ast.SelectionSet, v entities.PatientPathwaySelection) graphql.Marshaler {
	return ec._PatientPathwaySelection(ctx, sel, &v)
}

func (ec *executionContext) marshalNPatientPathwaySelection2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwaySelectionᚄ(ctx context.Context, sel ast.SelectionSet, v []*entities.PatientPathwaySelection) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNPatientPathwaySelection2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwaySelection(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNPatientPathwaySelection2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwaySelection(ctx context.Context, sel ast.SelectionSet, v *entities.PatientPathwaySelection) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PatientPathwaySelection(ctx, sel, v)
}

func (ec *executionContext) unmarshalNRecordNodeOutcomeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐRecordNodeOutcomeInput(ctx context.Context, v any) (RecordNodeOutcomeInput, error) {
	res, err := ec.unmarshalInputRecordNodeOutcomeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNRecordPathwaySelectionInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐRecordPathwaySelectionInput(ctx context.Context, v any) (RecordPathwaySelectionInput, error) {
	res, err := ec.unmarshalInputRecordPathwaySelectionInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNSaveDecisionTreeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐSaveDecisionTreeInput(ctx context.Context, v any) (SaveDecisionTreeInput, error) {
	res, err := ec.unmarshalInputSaveDecisionTreeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNSelectionType2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐSelectionType(ctx context.Context, v any) (entities.SelectionType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := entities.SelectionType(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNSelectionType2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐSelectionType(ctx context.Context, sel ast.SelectionSet, v entities.SelectionType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNStartPathwayInstanceInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐStartPathwayInstanceInput(ctx context.Context, v any) (StartPathwayInstanceInput, error) {
	res, err := ec.unmarshalInputStartPathwayInstanceInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNString2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNString2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNString2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNString2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalNString2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNString2string(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNTempIdMapping2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐTempIDMappingᚄ(ctx context.Context, sel ast.SelectionSet, v []*TempIDMapping) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNTempIdMapping2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐTempIDMapping(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNTempIdMapping2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐTempIDMapping(ctx context.Context, sel ast.SelectionSet, v *TempIDMapping) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._TempIdMapping(ctx, sel, v)
}

func (ec *executionContext) marshalNTreeSaveResult2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐTreeSaveResult(ctx context.Context, sel ast.SelectionSet, v entities.TreeSaveResult) graphql.Marshaler {
	return ec._TreeSaveResult(ctx, sel, &v)
}

func (ec *executionContext) marshalNTreeSaveResult2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐTreeSaveResult(ctx context.Context, sel ast.SelectionSet, v *entities.TreeSaveResult) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._TreeSaveResult(ctx, sel, v)
}

func (ec *executionContext) unmarshalNUpdateClinicalPathwayInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐUpdateClinicalPathwayInput(ctx context.Context, v any) (UpdateClinicalPathwayInput, error) {
	res, err := ec.unmarshalInputUpdateClinicalPathwayInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdateNodeOutcomeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐUpdateNodeOutcomeInput(ctx context.Context, v any) (UpdateNodeOutcomeInput, error) {
	res, err := ec.unmarshalInputUpdateNodeOutcomeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUpdatePathwayNodeInput2githubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐUpdatePathwayNodeInput(ctx context.Context, v any) (UpdatePathwayNodeInput, error) {
	res, err := ec.unmarshalInputUpdatePathwayNodeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx context.Context, sel ast.SelectionSet, v introspection.Directive) graphql.Marshaler {
	return ec.___Directive(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Directive) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalN__DirectiveLocation2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__DirectiveLocation2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalN__DirectiveLocation2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__DirectiveLocation2string(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx context.Context, sel ast.SelectionSet, v introspection.EnumValue) graphql.Marshaler {
	return ec.___EnumValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx context.Context, sel ast.SelectionSet, v introspection.Field) graphql.Marshaler {
	return ec.___Field(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx context.Context, sel ast.SelectionSet, v introspection.InputValue) graphql.Marshaler {
	return ec.___InputValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v introspection.Type) graphql.Marshaler {
	return ec.___Type(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

func (ec *executionContext) unmarshalN__TypeKind2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__TypeKind2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalOActionType2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐActionType(ctx context.Context, v any) (*entities.ActionType, error) {
	if v == nil {
		return nil, nil
	}
	tmp, err := graphql.UnmarshalString(v)
	res := entities.ActionType(tmp)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOActionType2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐActionType(ctx context.Context, sel ast.SelectionSet, v *entities.ActionType) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(string(*v))
	return res
}

func (ec *executionContext) unmarshalOBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(v)
	return res
}

func (ec *executionContext) unmarshalOBoolean2ᚖbool(ctx context.Context, v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalBoolean(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2ᚖbool(ctx context.Context, sel ast.SelectionSet, v *bool) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(*v)
	return res
}

func (ec *executionContext) marshalOClinicalPathway2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐClinicalPathway(ctx context.Context, sel ast.SelectionSet, v *entities.ClinicalPathway) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._ClinicalPathway(ctx, sel, v)
}

func (ec *executionContext) unmarshalOClinicalPathwayFilter2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐClinicalPathwayFilter(ctx context.Context, v any) (*ClinicalPathwayFilter, error) {
	if v == nil {
		return nil, nil
	}
	res, err := ec.unmarshalInputClinicalPathwayFilter(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalODateTime2ᚖtimeᚐTime(ctx context.Context, v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	res, err := scalars.UnmarshalDateTime(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalODateTime2ᚖtimeᚐTime(ctx context.Context, sel ast.SelectionSet, v *time.Time) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := scalars.MarshalDateTime(*v)
	return res
}

func (ec *executionContext) unmarshalOEditorNodeInput2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐEditorNodeInputᚄ(ctx context.Context, v any) ([]*EditorNodeInput, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]*EditorNodeInput, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNEditorNodeInput2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐEditorNodeInput(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) unmarshalOFloat2ᚖfloat64(ctx context.Context, v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalFloatContext(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOFloat2ᚖfloat64(ctx context.Context, sel ast.SelectionSet, v *float64) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	res := graphql.MarshalFloatContext(*v)
	return graphql.WrapContextMarshaler(ctx, res)
}

func (ec *executionContext) unmarshalOID2ᚖstring(ctx context.Context, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalID(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOID2ᚖstring(ctx context.Context, sel ast.SelectionSet, v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalID(*v)
	return res
}

func (ec *executionContext) unmarshalOInt2ᚖint(ctx context.Context, v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalInt(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOInt2ᚖint(ctx context.Context, sel ast.SelectionSet, v *int) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalInt(*v)
	return res
}

func (ec *executionContext) unmarshalOLabValueInput2ᚕᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐLabValueInputᚄ(ctx context.Context, v any) ([]*LabValueInput, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]*LabValueInput, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNLabValueInput2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐLabValueInput(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalONodeRecommendation2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐNodeRecommendation(ctx context.Context, sel ast.SelectionSet, v *entities.NodeRecommendation) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._NodeRecommendation(ctx, sel, v)
}

func (ec *executionContext) marshalOPathwayNode2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPathwayNode(ctx context.Context, sel ast.SelectionSet, v *entities.PathwayNode) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._PathwayNode(ctx, sel, v)
}

func (ec *executionContext) unmarshalOPatientContextInput2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋgraphqlᚋgeneratedᚐPatientContextInput(ctx context.Context, v any) (*PatientContextInput, error) {
	if v == nil {
		return nil, nil
	}
	res, err := ec.unmarshalInputPatientContextInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOPatientPathwayInstance2ᚖgithubᚗcomᚋPrismᚑClinicalᚋprismᚑgraphqlᚑsub006ᚋinternalᚋdomainᚋentitiesᚐPatientPathwayInstance(ctx context.Context, sel ast.SelectionSet, v *entities.PatientPathwayInstance) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._PatientPathwayInstance(ctx, sel, v)
}

func (ec *executionContext) unmarshalOString2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNString2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalOString2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNString2string(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalOString2ᚖstring(ctx context.Context, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalString(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOString2ᚖstring(ctx context.Context, sel ast.SelectionSet, v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(*v)
	return res
}

func (ec *executionContext) marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.EnumValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Field) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema(ctx context.Context, sel ast.SelectionSet, v *introspection.Schema) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Schema(ctx, sel, v)
}

func (ec *executionContext) marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

// endregion ***************************** type.gotpl *****************************
