package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wishlane/wishlane-cli/internal/models"
)

func testClient(srv *httptest.Server, contextName string) *Client {
	return &Client{
		BaseURL:     srv.URL,
		APIKey:      "test-key",
		HTTPClient:  &http.Client{Timeout: 5 * time.Second},
		ContextName: contextName,
	}
}

func ambiguityBody(entries string) string {
	msg := "Multiple projects found. Please specify project_id. Projects: " + entries
	b, _ := json.Marshal(map[string]string{"error": msg})
	return string(b)
}

func TestDisambiguationRetry(t *testing.T) {
	var calls []struct {
		projectID string
		apiKey    string
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, struct {
			projectID string
			apiKey    string
		}{r.URL.Query().Get("project_id"), r.Header.Get("X-API-Key")})

		if r.URL.Query().Get("project_id") == "" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, ambiguityBody(fmt.Sprintf("My Cool App (%s), Other Board (%s)", idAlpha, idBeta)))
			return
		}

		json.NewEncoder(w).Encode(models.Stats{
			Project:  models.Project{ID: r.URL.Query().Get("project_id"), Name: "My Cool App"},
			Overview: models.Overview{TotalRequests: 3},
		})
	}))
	defer srv.Close()

	c := testClient(srv, "my-cool-app")
	stats, err := c.GetStats("")
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("expected exactly 2 HTTP calls, got %d", len(calls))
	}
	if calls[0].projectID != "" {
		t.Errorf("first call unexpectedly carried project_id %q", calls[0].projectID)
	}
	if calls[1].projectID != idAlpha {
		t.Errorf("retry project_id = %q, want %q", calls[1].projectID, idAlpha)
	}
	for i, call := range calls {
		if call.apiKey != "test-key" {
			t.Errorf("call %d missing X-API-Key header", i)
		}
	}
	if stats.Project.ID != idAlpha || stats.Overview.TotalRequests != 3 {
		t.Errorf("unexpected second-call body: %+v", stats)
	}
}

func TestDisambiguationNoMatchPropagatesOriginalError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, ambiguityBody(fmt.Sprintf("Alpha (%s), Beta (%s)", idAlpha, idBeta)))
	}))
	defer srv.Close()

	c := testClient(srv, "zzz-unrelated")
	_, err := c.GetStats("")
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Fatalf("expected exactly 1 HTTP call, got %d", calls)
	}
	if !strings.Contains(err.Error(), "Multiple projects found") {
		t.Errorf("error should carry the original message, got: %v", err)
	}
	if !strings.Contains(err.Error(), "Alpha") || !strings.Contains(err.Error(), "Beta") {
		t.Errorf("error should list candidate projects, got: %v", err)
	}
}

func TestRetryHappensAtMostOnce(t *testing.T) {
	// The backend keeps answering with the ambiguity error even when
	// project_id is present; the client must not loop.
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, ambiguityBody(fmt.Sprintf("My Cool App (%s)", idAlpha)))
	}))
	defer srv.Close()

	c := testClient(srv, "my-cool-app")
	_, err := c.GetStats("")
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 2 {
		t.Fatalf("expected exactly 2 HTTP calls, got %d", calls)
	}
}

func TestServerErrorNotRetried(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "database exploded"}`)
	}))
	defer srv.Close()

	c := testClient(srv, "my-cool-app")
	_, err := c.GetStats("")
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Fatalf("expected exactly 1 HTTP call, got %d", calls)
	}
	if !strings.Contains(err.Error(), "database exploded") {
		t.Errorf("expected backend message in error, got: %v", err)
	}
}

func TestMalformedErrorBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "<html>nope</html>")
	}))
	defer srv.Close()

	c := testClient(srv, "my-cool-app")
	_, err := c.GetStats("")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), http.StatusText(http.StatusForbidden)) {
		t.Errorf("expected status text fallback, got: %v", err)
	}
}

func TestListFeatureRequestsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		if r.URL.Path != "/api/mcp/feature-requests" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.FeatureRequestList{Project: models.Project{Name: "Board"}})
	}))
	defer srv.Close()

	c := testClient(srv, "board")
	_, err := c.ListFeatureRequests(ListOptions{
		Status: "pending",
		SortBy: "mrr",
		Search: "dark mode",
		Limit:  10,
		Offset: 20,
	})
	if err != nil {
		t.Fatalf("ListFeatureRequests() error = %v", err)
	}

	want := map[string]string{
		"status": "pending", "sort_by": "mrr", "q": "dark mode",
		"limit": "10", "offset": "20",
	}
	for k, v := range want {
		if got := gotQuery[k]; len(got) != 1 || got[0] != v {
			t.Errorf("query %s = %v, want %q", k, got, v)
		}
	}
	// Empty filters must be omitted entirely
	for _, k := range []string{"priority", "project_id"} {
		if _, present := gotQuery[k]; present {
			t.Errorf("empty parameter %q was sent", k)
		}
	}
}

func TestUpdateFeatureRequestPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/api/mcp/feature-requests/req-42" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["status"] != "planned" || body["status_message"] != "Coming soon" {
			t.Errorf("unexpected body: %v", body)
		}
		if _, present := body["priority"]; present {
			t.Error("empty priority should be omitted from body")
		}

		json.NewEncoder(w).Encode(models.FeatureRequest{ID: "req-42", Title: "Dark mode", Status: "planned"})
	}))
	defer srv.Close()

	c := testClient(srv, "board")
	fr, err := c.UpdateFeatureRequest("req-42", "", StatusUpdate{Status: "planned", StatusMessage: "Coming soon"})
	if err != nil {
		t.Fatalf("UpdateFeatureRequest() error = %v", err)
	}
	if fr.Status != "planned" {
		t.Errorf("status = %q, want planned", fr.Status)
	}
}

func TestUpdateRequiresID(t *testing.T) {
	c := &Client{BaseURL: "http://unused", HTTPClient: http.DefaultClient}
	if _, err := c.UpdateFeatureRequest("", "", StatusUpdate{Status: "planned"}); err == nil {
		t.Fatal("expected an error for missing id")
	}
}
