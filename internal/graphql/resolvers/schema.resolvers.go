package resolvers

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/graphql/generated"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/graphql/loaders"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/observability"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// RootNode is the resolver for the rootNode field.
func (r *clinicalPathwayResolver) RootNode(ctx context.Context, obj *entities.ClinicalPathway) (*entities.PathwayNode, error) {
	node, err := r.nodeRepo.GetRootNode(ctx, obj.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return node, nil
}

// UsageStats is the resolver for the usageStats field.
func (r *clinicalPathwayResolver) UsageStats(ctx context.Context, obj *entities.ClinicalPathway) (*entities.PathwayUsageStats, error) {
	return r.pathwayService.GetUsageStats(ctx, obj.ID)
}

// CreateClinicalPathway is the resolver for the createClinicalPathway field.
func (r *mutationResolver) CreateClinicalPathway(ctx context.Context, input generated.CreateClinicalPathwayInput) (*entities.ClinicalPathway, error) {
	pathway := &entities.ClinicalPathway{
		Name:           input.Name,
		Description:    strOrEmpty(input.Description),
		ConditionCodes: input.ConditionCodes,
		VersionLabel:   strOrEmpty(input.VersionLabel),
		EvidenceSource: strOrEmpty(input.EvidenceSource),
		EvidenceGrade:  strOrEmpty(input.EvidenceGrade),
		IsActive:       boolOr(input.IsActive, true),
		CreatedBy:      input.CreatedBy,
	}
	if err := r.pathwayService.Create(ctx, pathway); err != nil {
		return nil, err
	}
	return pathway, nil
}

// UpdateClinicalPathway is the resolver for the updateClinicalPathway field.
func (r *mutationResolver) UpdateClinicalPathway(ctx context.Context, id string, input generated.UpdateClinicalPathwayInput) (*entities.ClinicalPathway, error) {
	pathway, err := r.pathwayService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pathway.Name = input.Name
	if input.Description != nil {
		pathway.Description = *input.Description
	}
	if input.ConditionCodes != nil {
		pathway.ConditionCodes = input.ConditionCodes
	}
	if input.VersionLabel != nil {
		pathway.VersionLabel = *input.VersionLabel
	}
	if input.EvidenceSource != nil {
		pathway.EvidenceSource = *input.EvidenceSource
	}
	if input.EvidenceGrade != nil {
		pathway.EvidenceGrade = *input.EvidenceGrade
	}
	if input.IsActive != nil {
		pathway.IsActive = *input.IsActive
	}

	if err := r.pathwayService.Update(ctx, pathway, input.ExpectedVersion); err != nil {
		return nil, err
	}
	return pathway, nil
}

// DeleteClinicalPathway is the resolver for the deleteClinicalPathway field.
func (r *mutationResolver) DeleteClinicalPathway(ctx context.Context, id string) (bool, error) {
	if err := r.pathwayService.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// PublishClinicalPathway is the resolver for the publishClinicalPathway field.
func (r *mutationResolver) PublishClinicalPathway(ctx context.Context, id string) (*entities.ClinicalPathway, error) {
	return r.pathwayService.Publish(ctx, id)
}

// UnpublishClinicalPathway is the resolver for the unpublishClinicalPathway field.
func (r *mutationResolver) UnpublishClinicalPathway(ctx context.Context, id string) (*entities.ClinicalPathway, error) {
	return r.pathwayService.Unpublish(ctx, id)
}

// DuplicateClinicalPathway is the resolver for the duplicateClinicalPathway field.
func (r *mutationResolver) DuplicateClinicalPathway(ctx context.Context, id string, newName string, createdBy string) (*entities.ClinicalPathway, error) {
	return r.pathwayService.Duplicate(ctx, id, newName, createdBy)
}

// CreatePathwayNode is the resolver for the createPathwayNode field.
func (r *mutationResolver) CreatePathwayNode(ctx context.Context, input generated.CreatePathwayNodeInput) (*entities.PathwayNode, error) {
	node := &entities.PathwayNode{
		PathwayID:           input.PathwayID,
		ParentNodeID:        input.ParentNodeID,
		NodeType:            input.NodeType,
		Title:               input.Title,
		Description:         strOrEmpty(input.Description),
		ActionType:          input.ActionType,
		DecisionFactors:     input.DecisionFactors,
		SuggestedTemplateID: input.SuggestedTemplateID,
		SortOrder:           intOr(input.SortOrder, 0),
		BaseConfidence:      floatOr(input.BaseConfidence, 0.5),
		IsActive:            boolOr(input.IsActive, true),
	}
	if err := r.pathwayService.CreateNode(ctx, node); err != nil {
		return nil, err
	}
	return node, nil
}

// UpdatePathwayNode is the resolver for the updatePathwayNode field.
func (r *mutationResolver) UpdatePathwayNode(ctx context.Context, id string, input generated.UpdatePathwayNodeInput) (*entities.PathwayNode, error) {
	node, err := r.pathwayService.GetNode(ctx, id)
	if err != nil {
		return nil, err
	}

	node.Title = input.Title
	if input.Description != nil {
		node.Description = *input.Description
	}
	if input.ActionType != nil {
		node.ActionType = input.ActionType
	}
	if input.DecisionFactors != nil {
		node.DecisionFactors = input.DecisionFactors
	}
	if input.SuggestedTemplateID != nil {
		node.SuggestedTemplateID = input.SuggestedTemplateID
	}
	if input.BaseConfidence != nil {
		node.BaseConfidence = *input.BaseConfidence
	}
	if input.IsActive != nil {
		node.IsActive = *input.IsActive
	}

	if err := r.pathwayService.UpdateNode(ctx, node); err != nil {
		return nil, err
	}
	return node, nil
}

// DeletePathwayNode is the resolver for the deletePathwayNode field.
func (r *mutationResolver) DeletePathwayNode(ctx context.Context, id string) (bool, error) {
	if err := r.pathwayService.DeleteNode(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// MovePathwayNode is the resolver for the movePathwayNode field.
func (r *mutationResolver) MovePathwayNode(ctx context.Context, id string, input generated.MovePathwayNodeInput) (*entities.PathwayNode, error) {
	return r.pathwayService.MoveNode(ctx, id, input.NewParentNodeID, input.NewSortOrder)
}

// StartPathwayInstance is the resolver for the startPathwayInstance field.
func (r *mutationResolver) StartPathwayInstance(ctx context.Context, input generated.StartPathwayInstanceInput) (*entities.PatientPathwayInstance, error) {
	return r.instanceService.Start(ctx, input.PatientID, input.PathwayID, input.ProviderID, toPatientContext(input.PatientContext), input.MlModelID)
}

// RecordPathwaySelection is the resolver for the recordPathwaySelection field.
func (r *mutationResolver) RecordPathwaySelection(ctx context.Context, input generated.RecordPathwaySelectionInput) (*entities.PatientPathwaySelection, error) {
	selection := &entities.PatientPathwaySelection{
		InstanceID:     input.InstanceID,
		NodeID:         input.NodeID,
		SelectionType:  input.SelectionType,
		OverrideReason: input.OverrideReason,
		CreatedBy:      input.CreatedBy,
	}
	return r.instanceService.RecordSelection(ctx, selection)
}

// CompletePathwayInstance is the resolver for the completePathwayInstance field.
func (r *mutationResolver) CompletePathwayInstance(ctx context.Context, id string) (*entities.PatientPathwayInstance, error) {
	return r.instanceService.Complete(ctx, id)
}

// AbandonPathwayInstance is the resolver for the abandonPathwayInstance field.
func (r *mutationResolver) AbandonPathwayInstance(ctx context.Context, id string) (*entities.PatientPathwayInstance, error) {
	return r.instanceService.Abandon(ctx, id)
}

// LinkSelectionToCarePlan is the resolver for the linkSelectionToCarePlan field.
func (r *mutationResolver) LinkSelectionToCarePlan(ctx context.Context, selectionID string, carePlanID string) (*entities.PatientPathwaySelection, error) {
	return r.instanceService.LinkToCarePlan(ctx, selectionID, carePlanID)
}

// RecordNodeOutcome is the resolver for the recordNodeOutcome field.
func (r *mutationResolver) RecordNodeOutcome(ctx context.Context, input generated.RecordNodeOutcomeInput) (*entities.PathwayNodeOutcome, error) {
	outcome := &entities.PathwayNodeOutcome{
		NodeID:      input.NodeID,
		OutcomeType: input.OutcomeType,
		Description: strOrEmpty(input.Description),
		RecordedBy:  input.RecordedBy,
	}
	if input.ObservedAt != nil {
		outcome.ObservedAt = *input.ObservedAt
	}
	return r.outcomeService.Record(ctx, outcome)
}

// UpdateNodeOutcome is the resolver for the updateNodeOutcome field.
func (r *mutationResolver) UpdateNodeOutcome(ctx context.Context, id string, input generated.UpdateNodeOutcomeInput) (*entities.PathwayNodeOutcome, error) {
	outcome, err := r.outcomeService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome.OutcomeType = input.OutcomeType
	if input.Description != nil {
		outcome.Description = *input.Description
	}
	if input.ObservedAt != nil {
		outcome.ObservedAt = *input.ObservedAt
	}

	if err := r.outcomeService.Update(ctx, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

// DeleteNodeOutcome is the resolver for the deleteNodeOutcome field.
func (r *mutationResolver) DeleteNodeOutcome(ctx context.Context, id string) (bool, error) {
	if err := r.outcomeService.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// SaveDecisionTree is the resolver for the saveDecisionTree field.
func (r *mutationResolver) SaveDecisionTree(ctx context.Context, input generated.SaveDecisionTreeInput) (*entities.TreeSaveResult, error) {
	return r.editorService.SaveTree(ctx, input.PathwayID, toEditorNode(input.Tree), input.ExpectedVersion)
}

// Pathway is the resolver for the pathway field.
func (r *pathwayNodeResolver) Pathway(ctx context.Context, obj *entities.PathwayNode) (*entities.ClinicalPathway, error) {
	return loaders.For(ctx).PathwayLoader.Load(ctx, obj.PathwayID)()
}

// Children is the resolver for the children field.
func (r *pathwayNodeResolver) Children(ctx context.Context, obj *entities.PathwayNode) ([]*entities.PathwayNode, error) {
	return r.nodeRepo.GetChildren(ctx, obj.ID)
}

// SelectionStats is the resolver for the selectionStats field.
func (r *pathwayNodeResolver) SelectionStats(ctx context.Context, obj *entities.PathwayNode) (*entities.NodeSelectionStats, error) {
	return r.pathwayService.GetSelectionStats(ctx, obj.ID)
}

// Pathway is the resolver for the pathway field.
func (r *patientPathwayInstanceResolver) Pathway(ctx context.Context, obj *entities.PatientPathwayInstance) (*entities.ClinicalPathway, error) {
	return loaders.For(ctx).PathwayLoader.Load(ctx, obj.PathwayID)()
}

// Selections is the resolver for the selections field.
func (r *patientPathwayInstanceResolver) Selections(ctx context.Context, obj *entities.PatientPathwayInstance) ([]*entities.PatientPathwaySelection, error) {
	return r.instanceService.ListSelections(ctx, obj.ID)
}

// Node is the resolver for the node field.
func (r *patientPathwaySelectionResolver) Node(ctx context.Context, obj *entities.PatientPathwaySelection) (*entities.PathwayNode, error) {
	return loaders.For(ctx).NodeLoader.Load(ctx, obj.NodeID)()
}

// ClinicalPathway is the resolver for the clinicalPathway field.
func (r *queryResolver) ClinicalPathway(ctx context.Context, id string) (*entities.ClinicalPathway, error) {
	pathway, err := r.pathwayService.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return pathway, nil
}

// ClinicalPathwayBySlug is the resolver for the clinicalPathwayBySlug field.
func (r *queryResolver) ClinicalPathwayBySlug(ctx context.Context, slug string) (*entities.ClinicalPathway, error) {
	pathway, err := r.pathwayService.GetBySlug(ctx, slug)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return pathway, nil
}

// ClinicalPathways is the resolver for the clinicalPathways field.
func (r *queryResolver) ClinicalPathways(ctx context.Context, filter *generated.ClinicalPathwayFilter, first *int, after *string) (*entities.PathwayConnection, error) {
	repoFilter := repositories.PathwayFilter{
		First: intOr(first, defaultPageSize),
		After: strOrEmpty(after),
	}
	if filter != nil {
		repoFilter.IsActive = filter.IsActive
		repoFilter.IsPublished = filter.IsPublished
		repoFilter.ConditionCode = strOrEmpty(filter.ConditionCode)
	}

	page, err := r.pathwayService.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	edges := make([]*entities.PathwayEdge, len(page.Items))
	for i, pathway := range page.Items {
		edges[i] = &entities.PathwayEdge{
			Cursor: repositories.EncodeCursor(pathway),
			Node:   pathway,
		}
	}

	pageInfo := &entities.PageInfo{
		HasNextPage:     page.HasNextPage,
		HasPreviousPage: page.HasPreviousPage,
	}
	if len(edges) > 0 {
		pageInfo.StartCursor = &edges[0].Cursor
		pageInfo.EndCursor = &edges[len(edges)-1].Cursor
	}

	return &entities.PathwayConnection{
		Edges:      edges,
		PageInfo:   pageInfo,
		TotalCount: page.TotalCount,
	}, nil
}

// PathwayNode is the resolver for the pathwayNode field.
func (r *queryResolver) PathwayNode(ctx context.Context, id string) (*entities.PathwayNode, error) {
	node, err := r.pathwayService.GetNode(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return node, nil
}

// PathwayTree is the resolver for the pathwayTree field.
func (r *queryResolver) PathwayTree(ctx context.Context, pathwayID string) (*entities.DecisionTreeNode, error) {
	return r.treeService.GetPathwayTree(ctx, pathwayID)
}

// GetDecisionTree is the resolver for the getDecisionTree field.
func (r *queryResolver) GetDecisionTree(ctx context.Context, pathwayID string, patientContext *generated.PatientContextInput) (*entities.DecisionTreeResult, error) {
	result, err := r.treeService.GetDecisionTree(ctx, pathwayID, toPatientContext(patientContext))
	if err != nil {
		return nil, err
	}
	observability.RecordTreeAssembly(ctx, r.metrics, pathwayID, result.ProcessingTimeMs)
	return result, nil
}

// RecommendPathwaysForPatient is the resolver for the recommendPathwaysForPatient field.
func (r *queryResolver) RecommendPathwaysForPatient(ctx context.Context, context generated.PatientContextInput, first *int) ([]*entities.PathwayMatch, error) {
	return r.recommendationService.RecommendPathways(ctx, toPatientContext(&context), intOr(first, 0))
}

// NodeOutcomes is the resolver for the nodeOutcomes field.
func (r *queryResolver) NodeOutcomes(ctx context.Context, nodeID string) ([]*entities.PathwayNodeOutcome, error) {
	return r.outcomeService.ListByNode(ctx, nodeID)
}

// PathwayInstance is the resolver for the pathwayInstance field.
func (r *queryResolver) PathwayInstance(ctx context.Context, id string) (*entities.PatientPathwayInstance, error) {
	instance, err := r.instanceService.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return instance, nil
}

// PatientPathwayInstances is the resolver for the patientPathwayInstances field.
func (r *queryResolver) PatientPathwayInstances(ctx context.Context, patientID string) ([]*entities.PatientPathwayInstance, error) {
	return r.instanceService.ListByPatient(ctx, patientID)
}

// TempIDMap is the resolver for the tempIdMap field.
func (r *treeSaveResultResolver) TempIDMap(ctx context.Context, obj *entities.TreeSaveResult) ([]*generated.TempIDMapping, error) {
	mappings := make([]*generated.TempIDMapping, 0, len(obj.TempIDMap))
	for tempID, nodeID := range obj.TempIDMap {
		mappings = append(mappings, &generated.TempIDMapping{TempID: tempID, NodeID: nodeID})
	}
	return mappings, nil
}

// ClinicalPathway returns generated.ClinicalPathwayResolver implementation.
func (r *Resolver) ClinicalPathway() generated.ClinicalPathwayResolver {
	return &clinicalPathwayResolver{r}
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// PathwayNode returns generated.PathwayNodeResolver implementation.
func (r *Resolver) PathwayNode() generated.PathwayNodeResolver { return &pathwayNodeResolver{r} }

// PatientPathwayInstance returns generated.PatientPathwayInstanceResolver implementation.
func (r *Resolver) PatientPathwayInstance() generated.PatientPathwayInstanceResolver {
	return &patientPathwayInstanceResolver{r}
}

// PatientPathwaySelection returns generated.PatientPathwaySelectionResolver implementation.
func (r *Resolver) PatientPathwaySelection() generated.PatientPathwaySelectionResolver {
	return &patientPathwaySelectionResolver{r}
}

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// TreeSaveResult returns generated.TreeSaveResultResolver implementation.
func (r *Resolver) TreeSaveResult() generated.TreeSaveResultResolver {
	return &treeSaveResultResolver{r}
}

type clinicalPathwayResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type pathwayNodeResolver struct{ *Resolver }
type patientPathwayInstanceResolver struct{ *Resolver }
type patientPathwaySelectionResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type treeSaveResultResolver struct{ *Resolver }
