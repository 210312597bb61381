package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/marie/subvention-scroller/internal/models"
)

// stubAdapter returns a fixed number of opportunities and records the limit
// it was asked for.
type stubAdapter struct {
	name     string
	gotLimit int
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Search(ctx context.Context, keywords, region string, limit int) []models.Opportunity {
	s.gotLimit = limit
	var out []models.Opportunity
	for i := 0; i < limit; i++ {
		out = append(out, models.Opportunity{
			Title:             fmt.Sprintf("%s-%d", s.name, i),
			URL:               fmt.Sprintf("https://example.org/%s/%d", s.name, i),
			DaysUntilDeadline: models.NoDeadline,
		})
	}
	return out
}

// testServer builds a Server with stubbed search adapters so no handler
// reaches the network unless a test injects its own upstream.
func testServer(t *testing.T) (*Server, *stubAdapter, *stubAdapter, *stubAdapter) {
	t.Helper()
	s := NewServer()
	fr := &stubAdapter{name: "french"}
	eu := &stubAdapter{name: "european"}
	co := &stubAdapter{name: "colombian"}
	s.Searcher.French = fr
	s.Searcher.European = eu
	s.Searcher.Colombian = co
	s.ExportDir = t.TempDir()
	return s, fr, eu, co
}

func doJSON(s *Server, method, target, token string, body any) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _, _, _ := testServer(t)

	rec := doJSON(s, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "OK" {
		t.Errorf("body = %q, want OK", got)
	}
}

func TestSearchEndpoint(t *testing.T) {
	s, fr, eu, co := testServer(t)

	rec := doJSON(s, http.MethodGet, "/api/v1/search?keywords=culture&include_european=true&limit=10", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var session models.SearchSession
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if session.Params.Keywords != "culture" || !session.Params.IncludeEuropean {
		t.Errorf("params not echoed: %+v", session.Params)
	}
	if fr.gotLimit != 5 || eu.gotLimit != 5 {
		t.Errorf("limits = %d/%d, want 5/5", fr.gotLimit, eu.gotLimit)
	}
	if len(session.Results.French) != 5 || len(session.Results.European) != 5 {
		t.Errorf("result sizes = %d/%d, want 5/5",
			len(session.Results.French), len(session.Results.European))
	}
	if co.gotLimit != 0 || len(session.Results.Colombian) != 0 {
		t.Errorf("inactive Colombian source was queried: limit=%d results=%d",
			co.gotLimit, len(session.Results.Colombian))
	}
	if body := rec.Body.String(); !strings.Contains(body, `"colombian":[]`) {
		t.Error("inactive origin serialized as null instead of []")
	}
}

func TestArtsEndpoint(t *testing.T) {
	s, _, _, _ := testServer(t)

	rec := doJSON(s, http.MethodGet, "/api/v1/arts?scope=french&art_type=photographie", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Count         int                  `json:"count"`
		Opportunities []models.Opportunity `json:"opportunities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count == 0 {
		t.Fatal("no photography results from the French catalog")
	}
	for _, opp := range resp.Opportunities {
		if opp.Origin != models.OriginFrench {
			t.Errorf("%q has origin %q, want french", opp.Title, opp.Origin)
		}
	}

	if rec := doJSON(s, http.MethodGet, "/api/v1/arts?scope=martian", "", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown scope: status = %d, want 400", rec.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	s, _, _, _ := testServer(t)

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>subvention funding grant aide</body></html>")
	}))
	defer ok.Close()
	gone := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer gone.Close()
	s.Validator.Client = ok.Client()

	rec := doJSON(s, http.MethodPost, "/api/v1/validate", "", map[string]any{
		"urls": []string{ok.URL, gone.URL},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Total   int `json:"total"`
		Working int `json:"working"`
		Broken  int `json:"broken"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 2 || resp.Working != 1 || resp.Broken != 1 {
		t.Errorf("counts = %+v, want total 2 working 1 broken 1", resp)
	}

	if rec := doJSON(s, http.MethodPost, "/api/v1/validate", "", map[string]any{}); rec.Code != http.StatusBadRequest {
		t.Errorf("empty URL list: status = %d, want 400", rec.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s, _, _, _ := testServer(t)

	rec := doJSON(s, http.MethodPost, "/api/v1/repair", "", map[string]any{
		"urls": []map[string]string{{"url": "https://example.org"}},
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	if rec := doJSON(s, http.MethodPost, "/api/v1/report", "garbage", map[string]any{}); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", rec.Code)
	}
}

func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	rec := doJSON(s, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"password": "hunter2"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	return resp.Token
}

func TestLoginAndRepair(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	s, _, _, _ := testServer(t)

	if rec := doJSON(s, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"password": "wrong"}); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status = %d, want 401", rec.Code)
	}
	token := adminToken(t, s)

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>funding subvention</body></html>")
	}))
	defer ok.Close()
	s.Validator.Client = ok.Client()
	s.Repairer.Validator = s.Validator

	rec := doJSON(s, http.MethodPost, "/api/v1/repair", token, map[string]any{
		"urls": []map[string]string{{"url": ok.URL, "title": "Known grant", "source": "Test"}},
		"name": "repair test",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("repair status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Summary struct {
			TotalBroken    int `json:"total_broken_urls"`
			AlreadyWorking int `json:"already_working"`
		} `json:"summary"`
		LogPath string `json:"log_path"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding repair response: %v", err)
	}
	if resp.Summary.TotalBroken != 1 || resp.Summary.AlreadyWorking != 1 {
		t.Errorf("summary = %+v, want 1 total, 1 already working", resp.Summary)
	}
	if resp.LogPath == "" {
		t.Error("no fix log path returned")
	}
}

func TestReportEndpoint(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	s, _, _, _ := testServer(t)
	token := adminToken(t, s)

	rec := doJSON(s, http.MethodPost, "/api/v1/report", token, map[string]any{
		"params": map[string]any{
			"keywords":         "culture",
			"include_european": true,
			"limit":            6,
		},
		"export": true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("report status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Report struct {
			Totals struct {
				Total int `json:"total"`
			} `json:"totals"`
		} `json:"report"`
		Files map[string]string `json:"files"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding report response: %v", err)
	}
	if resp.Report.Totals.Total != 6 {
		t.Errorf("report total = %d, want 6", resp.Report.Totals.Total)
	}
	if resp.Files["report"] == "" || resp.Files["workbook"] == "" {
		t.Errorf("missing export files: %v", resp.Files)
	}
}
