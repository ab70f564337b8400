package entities

// PageInfo carries cursor pagination metadata for connection results
type PageInfo struct {
	HasNextPage     bool    `json:"has_next_page"`
	HasPreviousPage bool    `json:"has_previous_page"`
	StartCursor     *string `json:"start_cursor,omitempty"`
	EndCursor       *string `json:"end_cursor,omitempty"`
}

// PathwayEdge pairs a pathway with its opaque cursor
type PathwayEdge struct {
	Cursor string           `json:"cursor"`
	Node   *ClinicalPathway `json:"node"`
}

// PathwayConnection is the cursor-paginated pathway listing result
type PathwayConnection struct {
	Edges      []*PathwayEdge `json:"edges"`
	PageInfo   *PageInfo      `json:"page_info"`
	TotalCount int            `json:"total_count"`
}
