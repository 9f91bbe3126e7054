package queue

import "time"

const (
	PosterCreated = "poster.created"
	PosterUpdated = "poster.updated"
	PosterDeleted = "poster.deleted"
)

// PosterEvent is published on PosterEventsExchange after a poster write commits.
type PosterEvent struct {
	Type       string    `json:"type"`
	PosterID   int64     `json:"poster_id"`
	UserID     int64     `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
