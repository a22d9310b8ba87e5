package users

import "time"

// Account is a registered user account. PasswordHash is the opaque encoded
// bcrypt string; plaintext passwords are never stored or logged.
//
// Profile fields are optional and carry no uniqueness or format constraints.
type Account struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Company      *string
	Industry     *string
	CreatedAt    time.Time
}
