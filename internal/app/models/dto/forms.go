package dto

// Form bindings for the admin panel. Required fields are enforced at bind
// time so a store mutation is never attempted with missing input.

// LoginForm is the admin login submission
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// PersonalForm is the personal-details submission. Skills arrive as a
// comma-separated string and are serialized by the student service.
type PersonalForm struct {
	Name     string `form:"name" binding:"required"`
	Tagline  string `form:"tagline"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Location string `form:"location"`
	About    string `form:"about"`
	GitHub   string `form:"github"`
	LinkedIn string `form:"linkedin"`
	Twitter  string `form:"twitter"`
	Website  string `form:"website"`
	Skills   string `form:"skills"`
}

// EducationForm is the add-education submission
type EducationForm struct {
	Degree      string `form:"degree" binding:"required"`
	Institution string `form:"institution" binding:"required"`
	Field       string `form:"field"`
	StartYear   string `form:"start_year"`
	EndYear     string `form:"end_year"`
	Grade       string `form:"grade"`
	Description string `form:"description"`
}

// ProjectForm is the add/edit project submission. Featured is a checkbox,
// present only when ticked.
type ProjectForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	TechStack   string `form:"tech_stack"`
	GitHubLink  string `form:"github_link"`
	LiveLink    string `form:"live_link"`
	Category    string `form:"category"`
	Featured    bool   `form:"featured"`
}

// CertificateForm is the add-certificate submission
type CertificateForm struct {
	Title         string `form:"title" binding:"required"`
	Issuer        string `form:"issuer"`
	Date          string `form:"date"`
	CredentialID  string `form:"credential_id"`
	CredentialURL string `form:"credential_url"`
	Category      string `form:"category"`
}

// ExperienceForm is the add-experience submission. Current is a checkbox,
// present only when ticked.
type ExperienceForm struct {
	Role        string `form:"role" binding:"required"`
	Company     string `form:"company" binding:"required"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Current     bool   `form:"current"`
	Description string `form:"description"`
}
