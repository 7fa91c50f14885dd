package models

// Grade represents a score awarded to a student for a module. Upsert
// semantics live upstream: submitting a (student, module, score) triple
// updates the existing grade for that pair or creates one.
type Grade struct {
	ID      int64    `json:"id,omitempty" example:"5"`
	Score   *float64 `json:"score" example:"88"` // Nullable; a null score is excluded from averages
	Student *Student `json:"student,omitempty"`
	Module  *Module  `json:"module,omitempty"`
}
