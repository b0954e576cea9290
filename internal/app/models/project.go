package models

import "time"

// Project is a portfolio project owned by the student, based on the
// 'projects' table.
type Project struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	Title       string    `json:"title" db:"title"` // Required
	Description string    `json:"description" db:"description"`
	TechStack   string    `json:"techStack" db:"tech_stack"`
	Image       string    `json:"image" db:"image"` // Relative upload path
	GitHubLink  string    `json:"githubLink" db:"github_link"`
	LiveLink    string    `json:"liveLink" db:"live_link"`
	Category    string    `json:"category" db:"category"` // Free-form tag for client-side filtering
	Featured    bool      `json:"featured" db:"featured"` // Stored as 0/1
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
