package models

import "time"

// OperationType classifies an audit log entry
type OperationType string

const (
	OperationCreate OperationType = "CREATE"
	OperationUpdate OperationType = "UPDATE"
	OperationDelete OperationType = "DELETE"
	OperationRevert OperationType = "REVERT"
)

// OperationLog is an append-only audit trail entry. A REVERT operation is
// itself logged and cannot be reverted again.
type OperationLog struct {
	ID          int64         `json:"id,omitempty" example:"10"`
	Type        OperationType `json:"operationType" example:"UPDATE"`
	EntityType  string        `json:"entityType" example:"STUDENT"`
	EntityID    int64         `json:"entityId" example:"1"`
	Username    string        `json:"username" example:"admin"`
	Timestamp   time.Time     `json:"timestamp"`
	Description string        `json:"description" example:"Updated student Ada Lovelace"`
}

// Revertable reports whether the operation may be undone
func (o OperationLog) Revertable() bool {
	return o.Type != OperationRevert
}
