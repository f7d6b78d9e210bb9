package domain

import "time"

// User models an account holder. Token is the opaque session credential:
// set to a fresh value on every login, cleared on logout, and compared
// byte-for-byte by the auth middleware. At most one live token exists per
// user — a new login overwrites the previous one.
type User struct {
	ID           int64     `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Token        string    `json:"-" bson:"token"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
