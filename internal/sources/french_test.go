package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestAdapter(ts *httptest.Server) *AidesTerritoires {
	return &AidesTerritoires{BaseURL: ts.URL, Client: ts.Client()}
}

func TestFrenchSearch_LiveResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("is_live") != "true" {
			t.Errorf("missing is_live param in %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [{
				"name": "Aide au patrimoine rural",
				"description": "<p>Restauration du <b>petit patrimoine</b></p>",
				"url": "https://example.org/aide",
				"submission_deadline": "2030-03-15",
				"financers": [{"name": "Région Bretagne"}, {"name": "DRAC"}],
				"perimeter": {"name": "Bretagne"},
				"subvention_rate_lower_bound": 1000,
				"subvention_rate_upper_bound": "50000",
				"contact_email": "aides@example.org"
			}]
		}`))
	}))
	defer ts.Close()

	opps := newTestAdapter(ts).Search(context.Background(), "", "", 10)
	if len(opps) != 1 {
		t.Fatalf("got %d opportunities, want 1", len(opps))
	}

	opp := opps[0]
	if opp.Title != "Aide au patrimoine rural" {
		t.Errorf("Title = %q", opp.Title)
	}
	if strings.Contains(opp.Description, "<") {
		t.Errorf("Description not cleaned: %q", opp.Description)
	}
	if opp.Deadline != "15/03/2030" {
		t.Errorf("Deadline = %q, want 15/03/2030", opp.Deadline)
	}
	if opp.Financers != "Région Bretagne, DRAC" {
		t.Errorf("Financers = %q", opp.Financers)
	}
	if opp.Amount != "€1000 - €50000" {
		t.Errorf("Amount = %q", opp.Amount)
	}
	if opp.ContactInfo != "Email: aides@example.org" {
		t.Errorf("ContactInfo = %q", opp.ContactInfo)
	}
	if opp.ProjectManager != "Géré par Région Bretagne" {
		t.Errorf("ProjectManager = %q", opp.ProjectManager)
	}
}

func TestFrenchSearch_UnauthorizedFallsBackToSamples(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	opps := newTestAdapter(ts).Search(context.Background(), "", "", 10)
	if len(opps) == 0 {
		t.Fatal("expected sample data on 401")
	}
	for _, opp := range opps {
		if opp.Source != "Aides-Territoires (Sample)" {
			t.Errorf("sample opportunity has Source %q", opp.Source)
		}
	}
}

func TestFrenchSearch_RateLimitedReturnsNothing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	if opps := newTestAdapter(ts).Search(context.Background(), "", "", 10); len(opps) != 0 {
		t.Errorf("got %d opportunities on 429, want 0", len(opps))
	}
}

func TestFrenchSearch_TransportErrorFallsBackToSamples(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := ts.Client()
	ts.Close()

	a := &AidesTerritoires{BaseURL: ts.URL, Client: client}
	opps := a.Search(context.Background(), "", "", 10)
	if len(opps) == 0 {
		t.Fatal("expected sample data when the API is unreachable")
	}
}

func TestFrenchSearch_SampleKeywordFilter(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	a := newTestAdapter(ts)
	all := a.Search(context.Background(), "", "", 10)
	filtered := a.Search(context.Background(), "écologique", "", 10)
	if len(filtered) == 0 || len(filtered) >= len(all) {
		t.Errorf("keyword filter kept %d of %d samples", len(filtered), len(all))
	}
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"5000"`, "5000"},
		{`5000`, "5000"},
		{`null`, ""},
		{`12.5`, "12.5"},
	}
	for _, tt := range tests {
		var f flexString
		if err := f.UnmarshalJSON([]byte(tt.in)); err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", tt.in, err)
		}
		if string(f) != tt.want {
			t.Errorf("flexString(%s) = %q, want %q", tt.in, f, tt.want)
		}
	}
}
