package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/pkg/upstream"
)

func newTestUpstream(t *testing.T, routes map[string]http.HandlerFunc) *upstream.Client {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return upstream.NewClient(srv.URL, 5*time.Second, nil, zerolog.Nop())
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestStudentListMergesAverages(t *testing.T) {
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		// One endpoint answers HAL, the other a bare array; both normalize
		"/students": jsonHandler(`{"_embedded":{"students":[
			{"id":1,"firstName":"Ada","lastName":"Lovelace","userName":"ada","email":"a@x.com"}
		]}}`),
		"/grades": jsonHandler(`[{"id":5,"student":{"id":1},"module":{"id":2,"code":"M1"},"score":88}]`),
	})

	svc := NewStudentService(api, zerolog.Nop())
	views, err := svc.List(context.Background(), dto.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 1 {
		t.Fatalf("expected one student card, got %d", len(views))
	}
	view := views[0]
	if view.FullName() != "Ada Lovelace" {
		t.Errorf("expected Ada Lovelace, got %q", view.FullName())
	}
	if view.Average == nil || *view.Average != 88.0 {
		t.Errorf("expected average 88.0, got %v", view.Average)
	}
	if view.AverageDisplay != "88.0" {
		t.Errorf("expected display 88.0, got %q", view.AverageDisplay)
	}
}

func TestStudentListNoGradesSentinel(t *testing.T) {
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/students": jsonHandler(`[{"id":1,"firstName":"Ada","lastName":"Lovelace"}]`),
		"/grades":   jsonHandler(`[]`),
	})

	svc := NewStudentService(api, zerolog.Nop())
	views, err := svc.List(context.Background(), dto.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if views[0].Average != nil {
		t.Errorf("expected no average, got %v", *views[0].Average)
	}
	if views[0].AverageDisplay != "-" {
		t.Errorf("expected no-data sentinel, got %q", views[0].AverageDisplay)
	}
}

func TestStudentListAbortsOnAnyFetchFailure(t *testing.T) {
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/students": jsonHandler(`[{"id":1,"firstName":"Ada"}]`),
		"/grades": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("grades exploded"))
		},
	})

	svc := NewStudentService(api, zerolog.Nop())
	views, err := svc.List(context.Background(), dto.ListQuery{})
	if err == nil {
		t.Fatal("expected the page load to abort")
	}
	if views != nil {
		t.Errorf("expected no partial data, got %+v", views)
	}

	reqErr, ok := err.(*upstream.RequestError)
	if !ok {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.Message != "grades exploded" {
		t.Errorf("expected upstream body text, got %q", reqErr.Message)
	}
}

func TestStudentListFilterAndSort(t *testing.T) {
	api := newTestUpstream(t, map[string]http.HandlerFunc{
		"/students": jsonHandler(`[
			{"id":3,"firstName":"Bob","lastName":"Zimmer","userName":"bob"},
			{"id":1,"firstName":"Anna","lastName":"Young","userName":"anna"},
			{"id":2,"firstName":"Annette","lastName":"Adams","userName":"annette"}
		]`),
		"/grades": jsonHandler(`[]`),
	})

	svc := NewStudentService(api, zerolog.Nop())

	views, err := svc.List(context.Background(), dto.ListQuery{Query: "ann"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected two matches for %q, got %d", "ann", len(views))
	}
	// Default sort is name ascending
	if views[0].FirstName != "Anna" || views[1].FirstName != "Annette" {
		t.Errorf("unexpected order: %q, %q", views[0].FirstName, views[1].FirstName)
	}

	views, err = svc.List(context.Background(), dto.ListQuery{Sort: "id"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views[0].ID != 1 || views[1].ID != 2 || views[2].ID != 3 {
		t.Errorf("expected id ascending, got %d,%d,%d", views[0].ID, views[1].ID, views[2].ID)
	}
}
