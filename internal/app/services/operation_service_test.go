package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/okandemir/campusgate/internal/pkg/apperrors"
)

const operationsFixture = `{"_embedded":{"operations":[
	{"id":1,"operationType":"CREATE","entityType":"STUDENT","entityId":1,"username":"admin",
	 "timestamp":"2026-08-01T09:00:00Z","description":"Created student",
	 "_links":{"self":{"href":"/operations/1"}}},
	{"id":2,"operationType":"REVERT","entityType":"STUDENT","entityId":1,"username":"admin",
	 "timestamp":"2026-08-02T09:00:00Z","description":"Reverted create"}
]}}`

func TestOperationListStripsLinksAndOrdersNewestFirst(t *testing.T) {
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/operations": jsonHandler(operationsFixture),
	})

	svc := NewOperationService(api, zerolog.Nop())
	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["id"] != float64(2) {
		t.Errorf("expected newest entry first, got id %v", entries[0]["id"])
	}
	for i, entry := range entries {
		if _, ok := entry["_links"]; ok {
			t.Errorf("entry %d still carries _links", i)
		}
	}
	// Free-form fields survive the pass-through
	if entries[1]["description"] != "Created student" {
		t.Errorf("unexpected description: %v", entries[1]["description"])
	}
}

func TestRevertBlocksRevertEntriesLocally(t *testing.T) {
	var revertCalls int64
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/operations": jsonHandler(operationsFixture),
		"/operations/2/revert": func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&revertCalls, 1)
			w.WriteHeader(http.StatusOK)
		},
	})

	svc := NewOperationService(api, zerolog.Nop())
	err := svc.Revert(context.Background(), 2)
	if !errors.Is(err, apperrors.ErrOperationNotRevertable) {
		t.Fatalf("expected not-revertable error, got %v", err)
	}
	if atomic.LoadInt64(&revertCalls) != 0 {
		t.Error("revert of a REVERT entry must not reach the backend")
	}
}

func TestRevertForwardsRevertableEntries(t *testing.T) {
	var revertCalls int64
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/operations": jsonHandler(operationsFixture),
		"/operations/1/revert": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			atomic.AddInt64(&revertCalls, 1)
			w.WriteHeader(http.StatusOK)
		},
	})

	svc := NewOperationService(api, zerolog.Nop())
	if err := svc.Revert(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt64(&revertCalls) != 1 {
		t.Errorf("expected one revert call, got %d", revertCalls)
	}
}

func TestRevertUnknownOperation(t *testing.T) {
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/operations": jsonHandler(operationsFixture),
	})

	svc := NewOperationService(api, zerolog.Nop())
	err := svc.Revert(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrOperationNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
