package domain

import "errors"

// ErrUnauthorized covers both a missing and an unrecognized session token.
// The two cases are deliberately indistinguishable to the caller.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidCredentials is returned on any failed login attempt, whether the
// username is unknown or the password is wrong.
var ErrInvalidCredentials = errors.New("username or password is wrong")

// ErrContactNotFound is returned when a contact does not exist or belongs to
// a different user. The two cases are indistinguishable (anti-enumeration).
var ErrContactNotFound = errors.New("contact not found")

// ErrAddressNotFound is returned when an address does not exist or hangs off
// a different contact. Same anti-enumeration policy as ErrContactNotFound.
var ErrAddressNotFound = errors.New("address not found")

var ErrUsernameTaken = errors.New("username already registered")
var ErrUserNotFound = errors.New("user not found")
