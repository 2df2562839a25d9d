package alerts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fraudwatch/internal/types"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Info(ctx context.Context, arg ...any)                    {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Error(ctx context.Context, arg ...any)                   {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func TestClientSearch(t *testing.T) {
	envelope := Page{
		Content: []Alert{
			{ID: "a1", Severity: types.SeverityHigh, Status: types.AlertStatusPending},
			{ID: "a2", Severity: types.SeverityHigh, Status: types.AlertStatusConfirmed},
		},
		TotalElements: 42,
		TotalPages:    5,
		Size:          10,
		Number:        0,
		First:         true,
	}

	var gotPath, gotAuth string
	var gotFilter Filter

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Query().Get("page") != "0" || r.URL.Query().Get("size") != "10" {
			t.Errorf("query = %s, want page=0&size=10", r.URL.RawQuery)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotFilter); err != nil {
			t.Errorf("decode filter body: %v", err)
		}
		json.NewEncoder(w).Encode(envelope)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, StaticToken("tok123"), testLogger{})

	page, err := client.Search(context.Background(), Filter{Severity: types.SeverityHigh}, 0, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotPath != "/fraud-alerts/search" {
		t.Errorf("path = %q, want /fraud-alerts/search", gotPath)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
	if gotFilter.Severity != types.SeverityHigh {
		t.Errorf("filter severity = %v, want HIGH", gotFilter.Severity)
	}
	if len(page.Content) != 2 || page.Content[0].ID != "a1" {
		t.Errorf("content = %+v, want envelope content verbatim", page.Content)
	}
	if page.TotalElements != 42 || page.TotalPages != 5 {
		t.Errorf("totals = (%d, %d), want (42, 5)", page.TotalElements, page.TotalPages)
	}
}

func TestClientSearchWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("Authorization = %q, want unset", auth)
		}
		json.NewEncoder(w).Encode(Page{})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, nil, testLogger{})
	if _, err := client.Search(context.Background(), Filter{}, 0, 10); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
}

func TestClientSearchBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"message": "invalid severity", "status": 400})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, nil, testLogger{})

	_, err := client.Search(context.Background(), Filter{}, 0, 10)
	if err == nil {
		t.Fatal("expected error from 400 response")
	}
	if err.Error() != "invalid severity" {
		t.Errorf("error = %q, want backend message", err.Error())
	}
}

func TestClientSearchOpaqueError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, nil, testLogger{})

	_, err := client.Search(context.Background(), Filter{}, 0, 10)
	if err == nil {
		t.Fatal("expected error from 502 response")
	}
	if err.Error() != "HTTP error: 502" {
		t.Errorf("error = %q, want HTTP error: 502", err.Error())
	}
}

func TestClientUpdateStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/fraud-alerts/a1/status" {
			t.Errorf("path = %q, want /fraud-alerts/a1/status", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["status"] != "REVIEWED" {
			t.Errorf("status body = %v, want REVIEWED", body)
		}
		json.NewEncoder(w).Encode(Alert{ID: "a1", Status: types.AlertStatusReviewed})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, nil, testLogger{})

	alert, err := client.UpdateStatus(context.Background(), "a1", types.AlertStatusReviewed)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if alert.Status != types.AlertStatusReviewed {
		t.Errorf("status = %v, want REVIEWED", alert.Status)
	}
}

func TestClientRecentAndStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fraud-alerts/recent":
			if r.URL.Query().Get("limit") != "3" {
				t.Errorf("limit = %q, want 3", r.URL.Query().Get("limit"))
			}
			json.NewEncoder(w).Encode([]Alert{{ID: "a1"}, {ID: "a2"}})
		case "/fraud-alerts/stats":
			json.NewEncoder(w).Encode(Stats{Total: 10, Pending: 4, BySeverity: map[string]int64{"HIGH": 2}})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, nil, testLogger{})

	recent, err := client.Recent(context.Background(), 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("recent length = %d, want 2", len(recent))
	}

	stats, err := client.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 10 || stats.BySeverity["HIGH"] != 2 {
		t.Errorf("stats = %+v", stats)
	}
}
