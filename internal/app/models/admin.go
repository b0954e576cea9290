package models

// Admin is the single operator account allowed to edit portfolio content,
// based on the 'admins' table.
type Admin struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"` // Unique login name
	Password string `json:"-" db:"password"`        // bcrypt hash, never serialized
}
