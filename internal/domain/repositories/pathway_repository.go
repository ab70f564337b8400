package repositories

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
)

// PathwayRepository defines the interface for clinical pathway data operations
type PathwayRepository interface {
	// Create creates a new pathway
	Create(ctx context.Context, pathway *entities.ClinicalPathway) error

	// GetByID retrieves a pathway by ID
	GetByID(ctx context.Context, id string) (*entities.ClinicalPathway, error)

	// GetBySlug retrieves a pathway by its URL slug
	GetBySlug(ctx context.Context, slug string) (*entities.ClinicalPathway, error)

	// GetByIDs retrieves multiple pathways by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.ClinicalPathway, error)

	// List retrieves pathways matching the filter, cursor-paginated
	List(ctx context.Context, filter PathwayFilter) (*PathwayPage, error)

	// Update writes the pathway row and bumps its version counter.
	// When expectedVersion is non-nil a mismatch fails with a conflict error.
	Update(ctx context.Context, pathway *entities.ClinicalPathway, expectedVersion *int) error

	// Delete deletes a pathway and all of its nodes
	Delete(ctx context.Context, id string) error

	// SetPublished toggles the published flag
	SetPublished(ctx context.Context, id string, published bool) (*entities.ClinicalPathway, error)
}

// PathwayFilter defines filters and pagination for listing pathways
type PathwayFilter struct {
	IsActive      *bool
	IsPublished   *bool
	ConditionCode string
	First         int
	After         string
}

// PathwayPage is one page of a cursor-paginated pathway listing
type PathwayPage struct {
	Items           []*entities.ClinicalPathway
	TotalCount      int
	HasNextPage     bool
	HasPreviousPage bool
}

// EncodeCursor builds the opaque listing cursor for a pathway. Listings are
// ordered by (name, id), so the cursor carries both to break ties stably.
func EncodeCursor(p *entities.ClinicalPathway) string {
	return base64.StdEncoding.EncodeToString([]byte(p.Name + "|" + p.ID))
}

// DecodeCursor splits an opaque cursor back into its (name, id) sort key
func DecodeCursor(cursor string) (name, id string, err error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return "", "", fmt.Errorf("malformed cursor: %w", err)
	}
	sep := strings.LastIndex(string(raw), "|")
	if sep < 0 {
		return "", "", fmt.Errorf("malformed cursor: missing separator")
	}
	return string(raw[:sep]), string(raw[sep+1:]), nil
}
