package models

// Experience is a work experience entry owned by the student, based on the
// 'experience' table. Current positions carry no end date.
type Experience struct {
	ID          int64  `json:"id" db:"id"`
	StudentID   int64  `json:"studentId" db:"student_id"`
	Role        string `json:"role" db:"role"`       // Required
	Company     string `json:"company" db:"company"` // Required
	StartDate   string `json:"startDate" db:"start_date"`
	EndDate     string `json:"endDate" db:"end_date"`
	Current     bool   `json:"current" db:"current"` // Stored as 0/1
	Description string `json:"description" db:"description"`
	Logo        string `json:"logo" db:"logo"` // Relative upload path
}
