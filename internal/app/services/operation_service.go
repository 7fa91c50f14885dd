package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/okandemir/campusgate/internal/app/models"
	"github.com/okandemir/campusgate/internal/pkg/apperrors"
	"github.com/okandemir/campusgate/internal/pkg/hal"
	"github.com/okandemir/campusgate/internal/pkg/upstream"
)

// operationService implements OperationService on top of the backend client
type operationService struct {
	api    *upstream.Client
	logger zerolog.Logger
}

// NewOperationService creates a new operation service instance
func NewOperationService(api *upstream.Client, logger zerolog.Logger) OperationService {
	return &operationService{
		api:    api,
		logger: logger,
	}
}

// List serves the audit trail as a raw pass-through: entries keep whatever
// free-form fields the backend recorded, with HAL link metadata stripped
// from each element. Newest entries come first; RFC 3339 timestamps order
// correctly under string comparison.
func (s *operationService) List(ctx context.Context) ([]map[string]interface{}, error) {
	raw, err := s.api.Get(ctx, "/operations")
	if err != nil {
		return nil, err
	}

	items := hal.Unwrap(raw, "operations")
	entries := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		var decoded map[string]interface{}
		if err := json.Unmarshal(item, &decoded); err != nil {
			continue
		}
		stripped, ok := hal.StripMeta(decoded).(map[string]interface{})
		if !ok {
			continue
		}
		entries = append(entries, stripped)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return operationTimestamp(entries[i]) > operationTimestamp(entries[j])
	})
	return entries, nil
}

func operationTimestamp(entry map[string]interface{}) string {
	ts, _ := entry["timestamp"].(string)
	return ts
}

// Revert undoes a previously logged operation. The entry is looked up
// first: reverting a REVERT entry is rejected locally, matching the
// append-only audit trail rules, before any write reaches the backend.
func (s *operationService) Revert(ctx context.Context, id int64) error {
	raw, err := s.api.Get(ctx, "/operations")
	if err != nil {
		return err
	}

	var target *models.OperationLog
	for _, op := range hal.Collection[models.OperationLog](raw, "operations") {
		if op.ID == id {
			entry := op
			target = &entry
			break
		}
	}
	if target == nil {
		return apperrors.ErrOperationNotFound
	}
	if !target.Revertable() {
		return apperrors.ErrOperationNotRevertable
	}

	_, err = s.api.Post(ctx, fmt.Sprintf("/operations/%d/revert", id), nil)
	return err
}
