package services_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// In-memory fakes implementing the repository contracts, including the
// version-guard and terminal-transition semantics of the real adapters.

type fakePathwayRepo struct {
	pathways map[string]*entities.ClinicalPathway
}

func newFakePathwayRepo() *fakePathwayRepo {
	return &fakePathwayRepo{pathways: make(map[string]*entities.ClinicalPathway)}
}

func (r *fakePathwayRepo) Create(ctx context.Context, pathway *entities.ClinicalPathway) error {
	if _, ok := r.pathways[pathway.ID]; ok {
		return apperrors.NewConflictError("pathway already exists")
	}
	dup := *pathway
	r.pathways[pathway.ID] = &dup
	return nil
}

func (r *fakePathwayRepo) GetByID(ctx context.Context, id string) (*entities.ClinicalPathway, error) {
	stored, ok := r.pathways[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("pathway with id %s not found", id))
	}
	dup := *stored
	return &dup, nil
}

func (r *fakePathwayRepo) GetBySlug(ctx context.Context, slug string) (*entities.ClinicalPathway, error) {
	for _, stored := range r.pathways {
		if stored.Slug == slug {
			dup := *stored
			return &dup, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("pathway with slug %s not found", slug))
}

func (r *fakePathwayRepo) GetByIDs(ctx context.Context, ids []string) ([]*entities.ClinicalPathway, error) {
	var result []*entities.ClinicalPathway
	for _, id := range ids {
		if stored, ok := r.pathways[id]; ok {
			dup := *stored
			result = append(result, &dup)
		}
	}
	return result, nil
}

func (r *fakePathwayRepo) List(ctx context.Context, filter repositories.PathwayFilter) (*repositories.PathwayPage, error) {
	var matched []*entities.ClinicalPathway
	for _, stored := range r.pathways {
		if filter.IsActive != nil && stored.IsActive != *filter.IsActive {
			continue
		}
		if filter.IsPublished != nil && stored.IsPublished != *filter.IsPublished {
			continue
		}
		if filter.ConditionCode != "" && !contains(stored.ConditionCodes, filter.ConditionCode) {
			continue
		}
		dup := *stored
		matched = append(matched, &dup)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	if filter.After != "" {
		name, id, err := repositories.DecodeCursor(filter.After)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		idx := 0
		for idx < len(matched) {
			p := matched[idx]
			if p.Name > name || (p.Name == name && p.ID > id) {
				break
			}
			idx++
		}
		matched = matched[idx:]
	}

	first := filter.First
	if first <= 0 {
		first = 20
	}
	hasNext := len(matched) > first
	if hasNext {
		matched = matched[:first]
	}

	return &repositories.PathwayPage{
		Items:           matched,
		TotalCount:      total,
		HasNextPage:     hasNext,
		HasPreviousPage: filter.After != "",
	}, nil
}

func (r *fakePathwayRepo) Update(ctx context.Context, pathway *entities.ClinicalPathway, expectedVersion *int) error {
	stored, ok := r.pathways[pathway.ID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("pathway with id %s not found", pathway.ID))
	}
	if expectedVersion != nil && stored.Version != *expectedVersion {
		return apperrors.NewConflictError(fmt.Sprintf("pathway version is %d, expected %d", stored.Version, *expectedVersion))
	}
	dup := *pathway
	dup.Version = stored.Version + 1
	r.pathways[pathway.ID] = &dup
	pathway.Version = dup.Version
	return nil
}

func (r *fakePathwayRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.pathways[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("pathway with id %s not found", id))
	}
	delete(r.pathways, id)
	return nil
}

func (r *fakePathwayRepo) SetPublished(ctx context.Context, id string, published bool) (*entities.ClinicalPathway, error) {
	stored, ok := r.pathways[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("pathway with id %s not found", id))
	}
	stored.IsPublished = published
	dup := *stored
	return &dup, nil
}

type fakeNodeRepo struct {
	nodes map[string]*entities.PathwayNode
	order []string

	createCalls []*entities.PathwayNode
	updateCalls []*entities.PathwayNode
	failCreates int
}

func newFakeNodeRepo() *fakeNodeRepo {
	return &fakeNodeRepo{nodes: make(map[string]*entities.PathwayNode)}
}

func (r *fakeNodeRepo) Create(ctx context.Context, node *entities.PathwayNode) error {
	if r.failCreates > 0 && len(r.createCalls) >= r.failCreates {
		return apperrors.NewInternalError("failed to create node", nil)
	}
	dup := *node
	r.createCalls = append(r.createCalls, &dup)
	stored := dup
	r.nodes[node.ID] = &stored
	r.order = append(r.order, node.ID)
	return nil
}

func (r *fakeNodeRepo) GetByID(ctx context.Context, id string) (*entities.PathwayNode, error) {
	stored, ok := r.nodes[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("node with id %s not found", id))
	}
	dup := *stored
	return &dup, nil
}

func (r *fakeNodeRepo) GetByIDs(ctx context.Context, ids []string) ([]*entities.PathwayNode, error) {
	var result []*entities.PathwayNode
	for _, id := range ids {
		if stored, ok := r.nodes[id]; ok {
			dup := *stored
			result = append(result, &dup)
		}
	}
	return result, nil
}

func (r *fakeNodeRepo) GetRootNode(ctx context.Context, pathwayID string) (*entities.PathwayNode, error) {
	for _, id := range r.order {
		stored := r.nodes[id]
		if stored != nil && stored.PathwayID == pathwayID && stored.ParentNodeID == nil {
			dup := *stored
			return &dup, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("root node for pathway %s not found", pathwayID))
}

func (r *fakeNodeRepo) GetChildren(ctx context.Context, nodeID string) ([]*entities.PathwayNode, error) {
	var children []*entities.PathwayNode
	for _, id := range r.order {
		stored := r.nodes[id]
		if stored != nil && stored.ParentNodeID != nil && *stored.ParentNodeID == nodeID {
			dup := *stored
			children = append(children, &dup)
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].SortOrder < children[j].SortOrder
	})
	return children, nil
}

func (r *fakeNodeRepo) ListByPathway(ctx context.Context, pathwayID string) ([]*entities.PathwayNode, error) {
	var result []*entities.PathwayNode
	for _, id := range r.order {
		stored := r.nodes[id]
		if stored != nil && stored.PathwayID == pathwayID {
			dup := *stored
			result = append(result, &dup)
		}
	}
	return result, nil
}

func (r *fakeNodeRepo) Update(ctx context.Context, node *entities.PathwayNode) error {
	if _, ok := r.nodes[node.ID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("node with id %s not found", node.ID))
	}
	dup := *node
	r.updateCalls = append(r.updateCalls, &dup)
	stored := dup
	r.nodes[node.ID] = &stored
	return nil
}

func (r *fakeNodeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.nodes[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("node with id %s not found", id))
	}
	delete(r.nodes, id)
	return nil
}

func (r *fakeNodeRepo) Move(ctx context.Context, nodeID string, newParentID *string, newSortOrder *int) (*entities.PathwayNode, error) {
	stored, ok := r.nodes[nodeID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("node with id %s not found", nodeID))
	}
	if newParentID != nil {
		if *newParentID == nodeID {
			return nil, apperrors.NewValidationError("node cannot be its own parent")
		}
		ancestor := r.nodes[*newParentID]
		for ancestor != nil {
			if ancestor.ID == nodeID {
				return nil, apperrors.NewValidationError("cannot move a node under its own descendant")
			}
			if ancestor.ParentNodeID == nil {
				break
			}
			ancestor = r.nodes[*ancestor.ParentNodeID]
		}
		stored.ParentNodeID = newParentID
	}
	if newSortOrder != nil {
		stored.SortOrder = *newSortOrder
	}
	dup := *stored
	return &dup, nil
}

func (r *fakeNodeRepo) CopyTree(ctx context.Context, srcPathwayID, dstPathwayID string) error {
	idMap := make(map[string]string)
	var src []*entities.PathwayNode
	for _, id := range r.order {
		stored := r.nodes[id]
		if stored != nil && stored.PathwayID == srcPathwayID {
			src = append(src, stored)
			idMap[stored.ID] = uuid.New().String()
		}
	}
	for _, node := range src {
		dup := *node
		dup.ID = idMap[node.ID]
		dup.PathwayID = dstPathwayID
		if node.ParentNodeID != nil {
			mapped := idMap[*node.ParentNodeID]
			dup.ParentNodeID = &mapped
		}
		r.nodes[dup.ID] = &dup
		r.order = append(r.order, dup.ID)
	}
	return nil
}

type fakeInstanceRepo struct {
	instances map[string]*entities.PatientPathwayInstance
}

func newFakeInstanceRepo() *fakeInstanceRepo {
	return &fakeInstanceRepo{instances: make(map[string]*entities.PatientPathwayInstance)}
}

func (r *fakeInstanceRepo) Create(ctx context.Context, instance *entities.PatientPathwayInstance) error {
	dup := *instance
	r.instances[instance.ID] = &dup
	return nil
}

func (r *fakeInstanceRepo) GetByID(ctx context.Context, id string) (*entities.PatientPathwayInstance, error) {
	stored, ok := r.instances[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("instance with id %s not found", id))
	}
	dup := *stored
	return &dup, nil
}

func (r *fakeInstanceRepo) ListByPatient(ctx context.Context, patientID string) ([]*entities.PatientPathwayInstance, error) {
	var result []*entities.PatientPathwayInstance
	for _, stored := range r.instances {
		if stored.PatientID == patientID {
			dup := *stored
			result = append(result, &dup)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	return result, nil
}

func (r *fakeInstanceRepo) Complete(ctx context.Context, id string, at time.Time) (*entities.PatientPathwayInstance, error) {
	return r.terminate(id, entities.InstanceCompleted, at)
}

func (r *fakeInstanceRepo) Abandon(ctx context.Context, id string, at time.Time) (*entities.PatientPathwayInstance, error) {
	return r.terminate(id, entities.InstanceAbandoned, at)
}

func (r *fakeInstanceRepo) terminate(id string, status entities.InstanceStatus, at time.Time) (*entities.PatientPathwayInstance, error) {
	stored, ok := r.instances[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("instance with id %s not found", id))
	}
	if stored.Status.IsTerminal() {
		return nil, apperrors.NewConflictError(fmt.Sprintf("instance is already %s", stored.Status))
	}
	stored.Status = status
	if status == entities.InstanceCompleted {
		stored.CompletedAt = &at
	} else {
		stored.AbandonedAt = &at
	}
	dup := *stored
	return &dup, nil
}

func (r *fakeInstanceRepo) GetUsageStats(ctx context.Context, pathwayID string) (*entities.PathwayUsageStats, error) {
	stats := &entities.PathwayUsageStats{PathwayID: pathwayID}
	for _, stored := range r.instances {
		if stored.PathwayID != pathwayID {
			continue
		}
		stats.TotalInstances++
		switch stored.Status {
		case entities.InstanceCompleted:
			stats.Completed++
		case entities.InstanceAbandoned:
			stats.Abandoned++
		default:
			stats.Active++
		}
	}
	if stats.TotalInstances > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.TotalInstances)
	}
	return stats, nil
}

type fakeSelectionRepo struct {
	selections map[string]*entities.PatientPathwaySelection
	order      []string
}

func newFakeSelectionRepo() *fakeSelectionRepo {
	return &fakeSelectionRepo{selections: make(map[string]*entities.PatientPathwaySelection)}
}

func (r *fakeSelectionRepo) Create(ctx context.Context, selection *entities.PatientPathwaySelection) error {
	dup := *selection
	r.selections[selection.ID] = &dup
	r.order = append(r.order, selection.ID)
	return nil
}

func (r *fakeSelectionRepo) GetByID(ctx context.Context, id string) (*entities.PatientPathwaySelection, error) {
	stored, ok := r.selections[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("selection with id %s not found", id))
	}
	dup := *stored
	return &dup, nil
}

func (r *fakeSelectionRepo) ListByInstance(ctx context.Context, instanceID string) ([]*entities.PatientPathwaySelection, error) {
	var result []*entities.PatientPathwaySelection
	for _, id := range r.order {
		stored := r.selections[id]
		if stored != nil && stored.InstanceID == instanceID {
			dup := *stored
			result = append(result, &dup)
		}
	}
	return result, nil
}

func (r *fakeSelectionRepo) LinkToCarePlan(ctx context.Context, selectionID, carePlanID string) (*entities.PatientPathwaySelection, error) {
	stored, ok := r.selections[selectionID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("selection with id %s not found", selectionID))
	}
	stored.ResultingCarePlanID = &carePlanID
	dup := *stored
	return &dup, nil
}

func (r *fakeSelectionRepo) GetSelectionStats(ctx context.Context, nodeID string) (*entities.NodeSelectionStats, error) {
	stats := &entities.NodeSelectionStats{NodeID: nodeID}
	for _, stored := range r.selections {
		if stored.NodeID != nodeID {
			continue
		}
		stats.TotalSelections++
		switch stored.SelectionType {
		case entities.SelectionMLRecommended:
			stats.MLRecommended++
		case entities.SelectionProviderSelected:
			stats.ProviderSelected++
		case entities.SelectionAutoApplied:
			stats.AutoApplied++
		}
		if stored.OverrideReason != nil {
			stats.OverrideCount++
		}
	}
	return stats, nil
}

type fakeScoring struct {
	scoreTree func(pathwayID string, nodes []*entities.PathwayNode, patientCtx *entities.PatientContext) (*entities.TreeScore, error)
	recommend func(patientCtx *entities.PatientContext, maxResults int) ([]*entities.PathwayMatch, error)
}

func (s *fakeScoring) ScoreTree(ctx context.Context, pathwayID string, nodes []*entities.PathwayNode, patientCtx *entities.PatientContext) (*entities.TreeScore, error) {
	if s.scoreTree == nil {
		return nil, nil
	}
	return s.scoreTree(pathwayID, nodes, patientCtx)
}

func (s *fakeScoring) RecommendPathways(ctx context.Context, patientCtx *entities.PatientContext, maxResults int) ([]*entities.PathwayMatch, error) {
	if s.recommend == nil {
		return nil, nil
	}
	return s.recommend(patientCtx, maxResults)
}

type fakeEventBus struct {
	published []*entities.PathwayEvent
}

func (b *fakeEventBus) Publish(ctx context.Context, channel string, event *entities.PathwayEvent) error {
	b.published = append(b.published, event)
	return nil
}

func (b *fakeEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.PathwayEvent, error) {
	ch := make(chan *entities.PathwayEvent)
	close(ch)
	return ch, nil
}

func (b *fakeEventBus) Unsubscribe(ctx context.Context, channel string) error { return nil }

func (b *fakeEventBus) Close() error { return nil }

type fakeOutcomeRepo struct {
	outcomes map[string]*entities.PathwayNodeOutcome
}

func newFakeOutcomeRepo() *fakeOutcomeRepo {
	return &fakeOutcomeRepo{outcomes: make(map[string]*entities.PathwayNodeOutcome)}
}

func (r *fakeOutcomeRepo) Create(ctx context.Context, outcome *entities.PathwayNodeOutcome) error {
	r.outcomes[outcome.ID] = outcome
	return nil
}

func (r *fakeOutcomeRepo) GetByID(ctx context.Context, id string) (*entities.PathwayNodeOutcome, error) {
	outcome, ok := r.outcomes[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("outcome not found")
	}
	return outcome, nil
}

func (r *fakeOutcomeRepo) ListByNode(ctx context.Context, nodeID string) ([]*entities.PathwayNodeOutcome, error) {
	var result []*entities.PathwayNodeOutcome
	for _, outcome := range r.outcomes {
		if outcome.NodeID == nodeID {
			result = append(result, outcome)
		}
	}
	return result, nil
}

func (r *fakeOutcomeRepo) Update(ctx context.Context, outcome *entities.PathwayNodeOutcome) error {
	if _, ok := r.outcomes[outcome.ID]; !ok {
		return apperrors.NewNotFoundError("outcome not found")
	}
	r.outcomes[outcome.ID] = outcome
	return nil
}

func (r *fakeOutcomeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.outcomes[id]; !ok {
		return apperrors.NewNotFoundError("outcome not found")
	}
	delete(r.outcomes, id)
	return nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
