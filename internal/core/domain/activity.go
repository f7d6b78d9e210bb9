package domain

import "time"

// Activity actions recorded in the audit trail.
const (
	ActionContactCreated = "contact_created"
	ActionContactUpdated = "contact_updated"
	ActionContactDeleted = "contact_deleted"
	ActionAddressCreated = "address_created"
	ActionAddressUpdated = "address_updated"
	ActionAddressDeleted = "address_deleted"
)

// ActivityEvent is a single audit record for a mutation performed by a user.
// Events are persisted asynchronously; failures never surface to the request.
type ActivityEvent struct {
	UserID    int64     `bson:"user_id"`
	Action    string    `bson:"action"`
	Entity    string    `bson:"entity"`
	EntityID  int64     `bson:"entity_id"`
	Timestamp time.Time `bson:"timestamp"`
}
