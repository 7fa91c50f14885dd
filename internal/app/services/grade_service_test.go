package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/pkg/apperrors"
	"github.com/okandemir/campusgate/internal/pkg/upstream"
)

func TestUpsertRejectionPassesBodyThroughVerbatim(t *testing.T) {
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/grades/upsert": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte("score out of range"))
		},
	})

	svc := NewGradeService(api, zerolog.Nop())
	_, err := svc.Upsert(context.Background(), dto.UpsertGradeRequest{
		StudentID: 1,
		ModuleID:  2,
		Score:     500,
	})
	if err == nil {
		t.Fatal("expected upsert to fail")
	}

	var reqErr *upstream.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", reqErr.Status)
	}
	// The UI must display exactly what the backend said
	if reqErr.Message != "score out of range" {
		t.Errorf("expected verbatim message, got %q", reqErr.Message)
	}
}

func TestUpsertMissingSelectionSkipsNetwork(t *testing.T) {
	var calls int64
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/grades/upsert": func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			w.WriteHeader(http.StatusOK)
		},
	})

	svc := NewGradeService(api, zerolog.Nop())

	tests := []dto.UpsertGradeRequest{
		{StudentID: 0, ModuleID: 2, Score: 50},
		{StudentID: 1, ModuleID: 0, Score: 50},
	}
	for _, req := range tests {
		_, err := svc.Upsert(context.Background(), req)
		if !errors.Is(err, apperrors.ErrMissingGradeSelection) {
			t.Errorf("request %+v: expected missing selection error, got %v", req, err)
		}
	}

	if atomic.LoadInt64(&calls) != 0 {
		t.Errorf("expected no upstream round-trip, got %d calls", calls)
	}
}

func TestUpsertSuccessEchoesStoredGrade(t *testing.T) {
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/grades/upsert": jsonHandler(`{"id":9,"score":75,"student":{"id":1},"module":{"id":2}}`),
	})

	svc := NewGradeService(api, zerolog.Nop())
	grade, err := svc.Upsert(context.Background(), dto.UpsertGradeRequest{
		StudentID: 1,
		ModuleID:  2,
		Score:     75,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grade.ID != 9 {
		t.Errorf("expected backend-assigned id 9, got %d", grade.ID)
	}
	if grade.Score == nil || *grade.Score != 75 {
		t.Errorf("unexpected score: %v", grade.Score)
	}
}

func TestGradeListSortsByScoreDescending(t *testing.T) {
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/grades": jsonHandler(`[
			{"id":1,"score":40,"student":{"id":1},"module":{"id":2}},
			{"id":2,"score":null,"student":{"id":1},"module":{"id":3}},
			{"id":3,"score":95,"student":{"id":2},"module":{"id":2}}
		]`),
	})

	svc := NewGradeService(api, zerolog.Nop())
	grades, err := svc.List(context.Background(), dto.ListQuery{Sort: "score_desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(grades) != 3 {
		t.Fatalf("expected 3 grades, got %d", len(grades))
	}
	if grades[0].ID != 3 || grades[2].ID != 2 {
		t.Errorf("unexpected order: %d,%d,%d", grades[0].ID, grades[1].ID, grades[2].ID)
	}
}
