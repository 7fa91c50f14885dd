package dto

// ListQuery carries the user-controlled filter and sort parameters of a
// collection view. Query is matched case-insensitively against the view's
// searchable fields; Sort names one of the view's comparator keys.
type ListQuery struct {
	Query string `form:"q"`
	Sort  string `form:"sort"`
}

// UpsertGradeRequest creates or updates the grade for a (student, module)
// pair. The pair selection is validated locally before any upstream call.
type UpsertGradeRequest struct {
	StudentID int64   `json:"studentId" binding:"required,min=1"`
	ModuleID  int64   `json:"moduleId" binding:"required,min=1"`
	Score     float64 `json:"score"`
}
