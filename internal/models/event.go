package models

// Record mutation operations published to the event stream.
const (
	OpCreateRecord = "create_record"
	OpUpdateRecord = "update_record"
	OpToggleStatus = "toggle_status"
)

// RecordEvent describes a successful record mutation, published to Kafka.
type RecordEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier for the event
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds) of the mutation
	RecordID  string `json:"record_id"` // Mutated record
	UserID    string `json:"user_id"`   // Acting (owning) user
	Operation string `json:"operation"` // One of the Op* constants
	Status    string `json:"status"`    // Record status after the mutation
}
