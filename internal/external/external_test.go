package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"schememonitor/internal/config"
	"schememonitor/internal/util"
)

func TestSMDPSearchProject(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"data":[{"gsNo":"1001"}]}}`))
	}))
	defer server.Close()

	client := NewSMDPClient(config.SMDPConfig{URL: server.URL, BEARER_TOKEN: "token123"}, util.NewLogger("development"))

	body, status, err := client.SearchProject(context.Background(), "1001", "")
	if err != nil {
		t.Fatalf("SearchProject: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotAuth != "Bearer token123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPayload["SearchText"] != "1001" {
		t.Errorf("SearchText = %v, want 1001", gotPayload["SearchText"])
	}
	if gotPayload["FilterID"] != "1" {
		t.Errorf("FilterID = %v, want default 1", gotPayload["FilterID"])
	}

	var wrapper map[string]interface{}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		t.Fatalf("upstream body not passed through: %v", err)
	}
}

func TestTourismClientURLs(t *testing.T) {
	var gotPaths []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("Authorization = %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewTourismClient(config.TourismConfig{
		PROJECTS_URL: server.URL + "/api/projects",
		REPORTS_URL:  server.URL + "/api/reports",
		BEARER_TOKEN: "tok",
	}, util.NewLogger("development"))

	ctx := context.Background()
	if _, _, err := client.ProjectStructure(ctx, "abc"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := client.ProjectDetails(ctx, "abc"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := client.Reports(ctx); err != nil {
		t.Fatal(err)
	}
	if _, _, err := client.ReportDetails(ctx, "r1"); err != nil {
		t.Fatal(err)
	}

	want := []string{"/api/projects/abc/structure", "/api/projects/abc", "/api/reports", "/api/reports/r1"}
	for i, path := range want {
		if gotPaths[i] != path {
			t.Errorf("call %d path = %s, want %s", i, gotPaths[i], path)
		}
	}
}
