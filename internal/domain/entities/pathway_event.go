package entities

import "time"

// PathwayEventType identifies what happened to a pathway
type PathwayEventType string

const (
	PathwayEventCreated     PathwayEventType = "pathway.created"
	PathwayEventUpdated     PathwayEventType = "pathway.updated"
	PathwayEventPublished   PathwayEventType = "pathway.published"
	PathwayEventUnpublished PathwayEventType = "pathway.unpublished"
	PathwayEventDeleted     PathwayEventType = "pathway.deleted"
	PathwayEventTreeSaved   PathwayEventType = "pathway.tree_saved"
)

// PathwayEvent is the pub/sub payload emitted on pathway lifecycle changes.
// Other service instances use it to invalidate their cached reads.
type PathwayEvent struct {
	ID         string           `json:"id"`
	Type       PathwayEventType `json:"type"`
	PathwayID  string           `json:"pathway_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}
