package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, tokens, zerolog.Nop()), srv
}

func TestDoReturnsJSONPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1}`))
	}, nil)

	payload, err := client.Do(context.Background(), http.MethodGet, "/students", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload.JSON) != `{"id":1}` {
		t.Errorf("expected raw JSON, got %q", payload.JSON)
	}
	if payload.Text != "" {
		t.Errorf("expected empty text, got %q", payload.Text)
	}
}

func TestDoReturnsTextForNonJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("pong"))
	}, nil)

	payload, err := client.Do(context.Background(), http.MethodGet, "/ping", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.JSON != nil {
		t.Errorf("expected no JSON, got %q", payload.JSON)
	}
	if payload.Text != "pong" {
		t.Errorf("expected text payload, got %q", payload.Text)
	}
}

func TestDoNoContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, nil)

	payload, err := client.Do(context.Background(), http.MethodDelete, "/students/1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.JSON != nil || payload.Text != "" {
		t.Errorf("expected empty payload for 204, got %+v", payload)
	}
}

func TestDoSerializesBodyAsJSON(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}, nil)

	body := map[string]interface{}{"firstName": "Ada"}
	if _, err := client.Do(context.Background(), http.MethodPost, "/students", body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("body was not valid JSON: %v", err)
	}
	if decoded["firstName"] != "Ada" {
		t.Errorf("unexpected body: %v", decoded)
	}
}

func TestDoErrorCarriesBodyText(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("score out of range"))
	}, nil)

	_, err := client.Do(context.Background(), http.MethodPost, "/grades/upsert", map[string]int{"score": 500})
	if err == nil {
		t.Fatal("expected an error")
	}

	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", reqErr.Status)
	}
	if reqErr.Message != "score out of range" {
		t.Errorf("expected verbatim body text, got %q", reqErr.Message)
	}
}

func TestDoErrorFallsBackToStatusLine(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, nil)

	_, err := client.Do(context.Background(), http.MethodDelete, "/students/1", nil)
	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.Message == "" {
		t.Error("expected status line fallback for empty body")
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}, StaticToken("abc123"))

	if _, err := client.Get(context.Background(), "/students"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestEmptyTokenOmitsHeader(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}, StaticToken(""))

	if _, err := client.Do(context.Background(), http.MethodGet, "/students", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sawHeader || gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestContextTokenSource(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}, ContextToken{})

	ctx := WithToken(context.Background(), "per-request")
	if _, err := client.Do(ctx, http.MethodGet, "/auth/me", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer per-request" {
		t.Errorf("expected per-request token forwarded, got %q", gotAuth)
	}

	// Without a token on the context the request goes out unauthenticated
	if _, err := client.Do(context.Background(), http.MethodGet, "/auth/me", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected unauthenticated request, got %q", gotAuth)
	}
}
