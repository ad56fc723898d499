package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "EXTRACTION_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent carries the common fields of a concrete event.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const TypeExtractionCompleted = "EXTRACTION_COMPLETED"

// NewExtractionCompleted records the outcome of one attachment batch.
func NewExtractionCompleted(batchID string, filesProcessed, successful int, durationMs int64) Event {
	return BaseEvent{
		Type: TypeExtractionCompleted,
		Data: map[string]interface{}{
			"batch_id":        batchID,
			"files_processed": filesProcessed,
			"successful":      successful,
			"duration_ms":     durationMs,
		},
		OccurredAt: time.Now(),
	}
}
