package loaders

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
)

type ctxKey string

const loadersKey ctxKey = "dataloaders"

// Loaders contains all the dataloaders for the application
type Loaders struct {
	PathwayLoader *dataloader.Loader[string, *entities.ClinicalPathway]
	NodeLoader    *dataloader.Loader[string, *entities.PathwayNode]
}

// NewLoaders creates a new instance of Loaders
func NewLoaders(pathwayRepo repositories.PathwayRepository, nodeRepo repositories.PathwayNodeRepository) *Loaders {
	return &Loaders{
		PathwayLoader: dataloader.NewBatchedLoader(func(ctx context.Context, keys []string) []*dataloader.Result[*entities.ClinicalPathway] {
			results := make([]*dataloader.Result[*entities.ClinicalPathway], len(keys))
			pathways, err := pathwayRepo.GetByIDs(ctx, keys)

			pathwayMap := make(map[string]*entities.ClinicalPathway)
			if err == nil {
				for _, p := range pathways {
					pathwayMap[p.ID] = p
				}
			}

			for i, key := range keys {
				if err != nil {
					results[i] = &dataloader.Result[*entities.ClinicalPathway]{Error: err}
				} else if p, ok := pathwayMap[key]; ok {
					results[i] = &dataloader.Result[*entities.ClinicalPathway]{Data: p}
				} else {
					results[i] = &dataloader.Result[*entities.ClinicalPathway]{Error: fmt.Errorf("pathway %s not found", key)}
				}
			}
			return results
		}),
		NodeLoader: dataloader.NewBatchedLoader(func(ctx context.Context, keys []string) []*dataloader.Result[*entities.PathwayNode] {
			results := make([]*dataloader.Result[*entities.PathwayNode], len(keys))
			nodes, err := nodeRepo.GetByIDs(ctx, keys)

			nodeMap := make(map[string]*entities.PathwayNode)
			if err == nil {
				for _, n := range nodes {
					nodeMap[n.ID] = n
				}
			}

			for i, key := range keys {
				if err != nil {
					results[i] = &dataloader.Result[*entities.PathwayNode]{Error: err}
				} else if n, ok := nodeMap[key]; ok {
					results[i] = &dataloader.Result[*entities.PathwayNode]{Data: n}
				} else {
					results[i] = &dataloader.Result[*entities.PathwayNode]{Error: fmt.Errorf("pathway node %s not found", key)}
				}
			}
			return results
		}),
	}
}

// For returns the loaders for a given context
func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}

// WithLoaders returns a new context with the loaders attached
func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, loaders)
}
