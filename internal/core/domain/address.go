package domain

import "time"

// Address belongs to exactly one contact. ContactID is set at creation and
// never reassigned. Addresses are only reachable through their contact:
// resolve the contact under the caller first, then the address under that
// contact.
type Address struct {
	ID         int64     `json:"id" bson:"_id"`
	ContactID  int64     `json:"-" bson:"contact_id"`
	Street     string    `json:"street" bson:"street"`
	City       string    `json:"city" bson:"city"`
	Province   string    `json:"province" bson:"province"`
	Country    string    `json:"country" bson:"country"`
	PostalCode string    `json:"postal_code" bson:"postal_code"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
