package models

// Event is a domain event published to Kafka for downstream
// notification consumers.
type Event struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"` // unix seconds
	UserID    string `json:"user_id"`
	Entity    string `json:"entity"`    // e.g. appointment, blood_donor
	EntityID  string `json:"entity_id"`
	Action    string `json:"action"` // e.g. booked, registered
}
