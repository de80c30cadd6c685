// Package types provides type definitions for structured data used throughout the cv-compiler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the structured résumé supplied to the compiler.
// Ordering of every list is meaningful: insertion order is document order.
type ResumeRecord struct {
	Contact    Contact          `json:"contact"`
	Summary    string           `json:"summary,omitempty"`
	Skills     []SkillCategory  `json:"skills,omitempty"`
	Experience []Employer       `json:"experience,omitempty"`
	Projects   []Project        `json:"projects,omitempty"`
	Education  []EducationEntry `json:"education,omitempty"`
}

// Contact holds the candidate's name and contact channels.
// Fields other than Name are optional and omitted from output when empty.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// SkillCategory represents one labeled skill row (e.g., "Languages: Go, Rust")
type SkillCategory struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// Employer represents one employer with one or more roles held there
type Employer struct {
	Company        string `json:"company"`
	Roles          []Role `json:"roles"`
	PageBreakAfter bool   `json:"pageBreakAfter,omitempty"`
}

// Role represents a single role at an employer
type Role struct {
	Title       string `json:"title"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// Project represents a personal or professional project entry
type Project struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	PageBreakAfter bool   `json:"pageBreakAfter,omitempty"`
}

// EducationEntry represents one education entry. Degree is optional; when
// absent the institution is promoted to the entry's main line.
type EducationEntry struct {
	Institution    string   `json:"institution"`
	Degree         string   `json:"degree,omitempty"`
	Period         string   `json:"period,omitempty"`
	Focus          []string `json:"focus,omitempty"`
	PageBreakAfter bool     `json:"pageBreakAfter,omitempty"`
}
