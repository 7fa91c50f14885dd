package models

import "strings"

// Student defines a student record as served by the records backend
type Student struct {
	ID        int64  `json:"id,omitempty" example:"1"`       // Unique identifier, absent until persisted
	FirstName string `json:"firstName" example:"Ada"`        // Given name
	LastName  string `json:"lastName" example:"Lovelace"`    // Family name
	UserName  string `json:"userName" example:"ada"`         // Unique username (uniqueness enforced upstream)
	Email     string `json:"email" example:"ada@school.edu"` // Unique email (uniqueness enforced upstream)

	// Optional extended fields
	Major        *string  `json:"major,omitempty" example:"Mathematics"`
	EntryYear    *int     `json:"entryYear,omitempty" example:"2023"`
	GraduateYear *int     `json:"graduateYear,omitempty" example:"2027"`
	TuitionFees  *float64 `json:"tuitionFees,omitempty" example:"9250"`
	TuitionPaid  *float64 `json:"tuitionPaid,omitempty" example:"4625"`
	BirthDate    *string  `json:"birthDate,omitempty" example:"2004-12-10"`
	Resident     *bool    `json:"resident,omitempty"`
	Sex          *string  `json:"sex,omitempty" example:"F"`
}

// FullName returns the display name for the student
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
