package models

// Education is a single education entry owned by the student, based on the
// 'education' table.
type Education struct {
	ID          int64  `json:"id" db:"id"`
	StudentID   int64  `json:"studentId" db:"student_id"`
	Degree      string `json:"degree" db:"degree"`           // Required
	Institution string `json:"institution" db:"institution"` // Required
	Field       string `json:"field" db:"field"`
	StartYear   string `json:"startYear" db:"start_year"`
	EndYear     string `json:"endYear" db:"end_year"`
	Grade       string `json:"grade" db:"grade"`
	Description string `json:"description" db:"description"`
	Logo        string `json:"logo" db:"logo"` // Relative upload path
}
