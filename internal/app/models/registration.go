package models

// Registration represents an enrollment edge between a student and a module.
// The backend embeds snapshots of both related entities rather than bare
// foreign keys, so no second fetch is needed to render the pair.
type Registration struct {
	ID      int64    `json:"id,omitempty" example:"3"`
	Student *Student `json:"student,omitempty"`
	Module  *Module  `json:"module,omitempty"`
}
