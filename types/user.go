package types

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user, assigned by storage.
	ID int `json:"id" db:"id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username" db:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in serialized output.
	PasswordHash string `json:"-" db:"password_hash"`
}
