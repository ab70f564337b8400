package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

// Model version markers for trees assembled without live scoring
const (
	ModelVersionStatic    = "static"
	ModelVersionNoContext = "no-context"
)

// DefaultMaxTreeDepth bounds tree traversal when no limit is configured
const DefaultMaxTreeDepth = 32

// DecisionTreeService assembles flat pathway nodes into presentation-ready
// decision trees, optionally enriched with live patient-context scores
type DecisionTreeService struct {
	pathwayRepo repositories.PathwayRepository
	nodeRepo    repositories.PathwayNodeRepository
	scoring     providers.ScoringProvider
	maxDepth    int
}

// NewDecisionTreeService creates a new decision tree service
func NewDecisionTreeService(
	pathwayRepo repositories.PathwayRepository,
	nodeRepo repositories.PathwayNodeRepository,
	scoring providers.ScoringProvider,
	maxDepth int,
) *DecisionTreeService {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxTreeDepth
	}
	return &DecisionTreeService{
		pathwayRepo: pathwayRepo,
		nodeRepo:    nodeRepo,
		scoring:     scoring,
		maxDepth:    maxDepth,
	}
}

// GetDecisionTree assembles the full decision tree for a pathway. When a
// patient context is given, node confidences are overridden by the scorer
// where scores are available; scorer failure leaves base confidences intact.
func (s *DecisionTreeService) GetDecisionTree(ctx context.Context, pathwayID string, patientCtx *entities.PatientContext) (*entities.DecisionTreeResult, error) {
	start := time.Now()

	pathway, err := s.pathwayRepo.GetByID(ctx, pathwayID)
	if err != nil {
		return nil, err
	}

	nodes, err := s.nodeRepo.ListByPathway(ctx, pathwayID)
	if err != nil {
		return nil, err
	}

	active := make([]*entities.PathwayNode, 0, len(nodes))
	for _, node := range nodes {
		if node.IsActive {
			active = append(active, node)
		}
	}
	if len(active) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("pathway %s has no nodes", pathwayID))
	}

	modelVersion := ModelVersionNoContext
	var scores map[string]entities.NodeScore
	if patientCtx != nil {
		modelVersion = ModelVersionStatic
		treeScore, err := s.scoring.ScoreTree(ctx, pathwayID, active, patientCtx)
		if err != nil {
			return nil, err
		}
		if treeScore != nil && len(treeScore.Scores) > 0 {
			scores = treeScore.Scores
			modelVersion = treeScore.ModelVersion
		}
	}

	root, childrenOf, err := BuildNodeTree(active)
	if err != nil {
		return nil, err
	}
	if err := s.validateTraversal(root, childrenOf); err != nil {
		return nil, err
	}

	tree, err := s.assemble(ctx, root, childrenOf, scores, 0)
	if err != nil {
		return nil, err
	}

	processingMs := int(time.Since(start).Milliseconds())
	if processingMs == 0 {
		processingMs = 1
	}

	return &entities.DecisionTreeResult{
		Pathway:          pathway,
		Tree:             tree,
		ModelVersion:     modelVersion,
		ProcessingTimeMs: processingMs,
	}, nil
}

// GetPathwayTree assembles the pathway's node tree with base confidences only
func (s *DecisionTreeService) GetPathwayTree(ctx context.Context, pathwayID string) (*entities.DecisionTreeNode, error) {
	result, err := s.GetDecisionTree(ctx, pathwayID, nil)
	if err != nil {
		return nil, err
	}
	return result.Tree, nil
}

// BuildNodeTree groups a flat node list into a root plus a children-by-parent
// map, each sibling group ordered by (sortOrder, id). When no node has a null
// parent, the first node whose parent is absent from the set acts as root.
func BuildNodeTree(nodes []*entities.PathwayNode) (*entities.PathwayNode, map[string][]*entities.PathwayNode, error) {
	if len(nodes) == 0 {
		return nil, nil, apperrors.NewNotFoundError("no nodes to build a tree from")
	}

	byID := make(map[string]*entities.PathwayNode, len(nodes))
	for _, node := range nodes {
		byID[node.ID] = node
	}

	var root *entities.PathwayNode
	childrenOf := make(map[string][]*entities.PathwayNode)
	for _, node := range nodes {
		if node.ParentNodeID == nil {
			if root == nil {
				root = node
			}
			continue
		}
		childrenOf[*node.ParentNodeID] = append(childrenOf[*node.ParentNodeID], node)
	}

	if root == nil {
		// Orphaned subtree: treat the first node whose parent is not in
		// the set as the effective root.
		for _, node := range nodes {
			if _, ok := byID[*node.ParentNodeID]; !ok {
				root = node
				break
			}
		}
	}
	if root == nil {
		return nil, nil, apperrors.NewValidationError("node set contains no reachable root")
	}

	for _, siblings := range childrenOf {
		sort.SliceStable(siblings, func(i, j int) bool {
			if siblings[i].SortOrder != siblings[j].SortOrder {
				return siblings[i].SortOrder < siblings[j].SortOrder
			}
			return siblings[i].ID < siblings[j].ID
		})
	}

	return root, childrenOf, nil
}

// validateTraversal walks the tree with an explicit work list, failing closed
// on cycles and on depth beyond the configured maximum
func (s *DecisionTreeService) validateTraversal(root *entities.PathwayNode, childrenOf map[string][]*entities.PathwayNode) error {
	type frame struct {
		node  *entities.PathwayNode
		depth int
	}

	visited := make(map[string]struct{})
	stack := []frame{{node: root, depth: 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[top.node.ID]; seen {
			return apperrors.NewValidationError(fmt.Sprintf("node %s appears more than once in the tree", top.node.ID))
		}
		visited[top.node.ID] = struct{}{}

		if top.depth > s.maxDepth {
			return apperrors.NewValidationError(fmt.Sprintf("tree exceeds maximum depth of %d", s.maxDepth))
		}

		for _, child := range childrenOf[top.node.ID] {
			stack = append(stack, frame{node: child, depth: top.depth + 1})
		}
	}
	return nil
}

// assemble builds the presentation tree below node. Sibling subtrees are
// composed concurrently, fan-in preserving child order. Recursion depth is
// already bounded by validateTraversal.
func (s *DecisionTreeService) assemble(ctx context.Context, node *entities.PathwayNode, childrenOf map[string][]*entities.PathwayNode, scores map[string]entities.NodeScore, alternatives int) (*entities.DecisionTreeNode, error) {
	confidence := node.BaseConfidence
	recommended := false
	if score, ok := scores[node.ID]; ok {
		confidence = score.Confidence
		recommended = score.IsRecommended
	}

	result := &entities.DecisionTreeNode{
		Node:              node,
		Confidence:        confidence,
		IsRecommendedPath: recommended,
		AlternativeCount:  alternatives,
	}

	if node.NodeType == entities.NodeTypeRecommendation {
		result.Recommendation = &entities.NodeRecommendation{
			TemplateID:  node.SuggestedTemplateID,
			Title:       node.Title,
			Description: node.Description,
			ActionType:  node.ActionType,
			Confidence:  confidence,
		}
	}

	siblings := childrenOf[node.ID]
	if len(siblings) == 0 {
		return result, nil
	}

	childAlternatives := 0
	if len(siblings) > 1 {
		childAlternatives = len(siblings) - 1
	}

	children := make([]*entities.DecisionTreeNode, len(siblings))
	g, gctx := errgroup.WithContext(ctx)
	for i, child := range siblings {
		g.Go(func() error {
			subtree, err := s.assemble(gctx, child, childrenOf, scores, childAlternatives)
			if err != nil {
				return err
			}
			children[i] = subtree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Children = children
	return result, nil
}

// FlattenTree walks an assembled tree in pre-order and returns the underlying
// pathway nodes
func FlattenTree(tree *entities.DecisionTreeNode) []*entities.PathwayNode {
	if tree == nil {
		return nil
	}
	nodes := []*entities.PathwayNode{tree.Node}
	for _, child := range tree.Children {
		nodes = append(nodes, FlattenTree(child)...)
	}
	return nodes
}
