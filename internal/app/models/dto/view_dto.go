package dto

import "github.com/okandemir/campusgate/internal/app/models"

// StudentView is a student row merged with its derived grade average.
// Average is the unrounded value (null when the student has no graded
// entries); AverageDisplay carries the one-decimal rendering or the no-data
// sentinel.
type StudentView struct {
	models.Student
	Average        *float64 `json:"averageScore,omitempty"`
	AverageDisplay string   `json:"averageDisplay" example:"70.0"`
}

// ModuleView is a module row merged with its derived grade average
type ModuleView struct {
	models.Module
	Average        *float64 `json:"averageScore,omitempty"`
	AverageDisplay string   `json:"averageDisplay" example:"88.0"`
}
