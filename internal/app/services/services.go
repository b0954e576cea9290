package services

// Services defined in this package:
// - AuthService: verifies admin credentials at login
// - StudentService: upserts and reads the single student profile
// - EducationService: manages education entries
// - ProjectService: manages projects
// - CertificateService: manages certificates
// - ExperienceService: manages experience entries
// - PortfolioService: assembles the public portfolio view and dashboard stats
