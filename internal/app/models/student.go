package models

// Student is the portfolio owner's profile record, based on the 'students'
// table. The application assumes at most one row exists; lookups use
// first-row semantics.
type Student struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"` // Display name, required
	Tagline      string `json:"tagline" db:"tagline"`
	Email        string `json:"email" db:"email"`
	Phone        string `json:"phone" db:"phone"`
	Location     string `json:"location" db:"location"`
	About        string `json:"about" db:"about"`
	ProfileImage string `json:"profileImage" db:"profile_image"` // Relative upload path
	GitHub       string `json:"github" db:"github"`
	LinkedIn     string `json:"linkedin" db:"linkedin"`
	Twitter      string `json:"twitter" db:"twitter"`
	Website      string `json:"website" db:"website"`
	Resume       string `json:"resume" db:"resume"` // Relative upload path
	Skills       string `json:"skills" db:"skills"` // JSON-encoded list of strings
}
