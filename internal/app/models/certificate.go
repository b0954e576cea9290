package models

// Certificate is a certification entry owned by the student, based on the
// 'certificates' table.
type Certificate struct {
	ID            int64  `json:"id" db:"id"`
	StudentID     int64  `json:"studentId" db:"student_id"`
	Title         string `json:"title" db:"title"` // Required
	Issuer        string `json:"issuer" db:"issuer"`
	Date          string `json:"date" db:"date"`
	CredentialID  string `json:"credentialId" db:"credential_id"`
	CredentialURL string `json:"credentialUrl" db:"credential_url"`
	Image         string `json:"image" db:"image"`       // Relative upload path
	Category      string `json:"category" db:"category"` // Free-form tag for client-side filtering
}
