package models

// Module defines a course module record
type Module struct {
	ID        int64  `json:"id,omitempty" example:"2"`  // Unique identifier, absent until persisted
	Code      string `json:"code" example:"CS2800"`     // Short module code
	Name      string `json:"name" example:"Algorithms"` // Display name
	Mandatory bool   `json:"mandatory"`                 // Whether the module is compulsory

	// Optional fields
	Department   *string `json:"department,omitempty" example:"Computer Science"`
	Prerequisite *Module `json:"prerequisite,omitempty"` // Self-reference to another module
	RequiredYear *int    `json:"requiredYear,omitempty" example:"2"`
	MinYear      *int    `json:"minYear,omitempty" example:"1"`
	MaxYear      *int    `json:"maxYear,omitempty" example:"4"`
}
