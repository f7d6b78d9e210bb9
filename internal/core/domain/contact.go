package domain

import "time"

// Contact belongs to exactly one user. UserID is set at creation and never
// reassigned; every lookup carries it as a mandatory query predicate.
type Contact struct {
	ID        int64     `json:"id" bson:"_id"`
	UserID    int64     `json:"-" bson:"user_id"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
