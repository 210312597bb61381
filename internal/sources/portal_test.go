package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marie/subvention-scroller/internal/models"
)

const portalPage = `<html><body>
<a href="/calls/green-energy">Green Energy Call for Proposals 2026</a>
<a href="/calls/culture">Culture Grant Programme for Visual Artists</a>
<a href="/calls/green-energy">Green Energy Call for Proposals 2026</a>
<a href="/calls/short">Short</a>
<a href="/about">About the Commission and its institutional history</a>
</body></html>`

func portalServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, portalPage)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestPortalDiscover(t *testing.T) {
	ts := portalServer(t)
	p := NewPortalScraper(ts.URL)

	found := p.Discover(context.Background(), "", 10)
	if len(found) != 2 {
		t.Fatalf("found %d opportunities, want 2 (short titles, non-call links and duplicate hrefs skipped)", len(found))
	}

	first := found[0]
	if first.Title != "Green Energy Call for Proposals 2026" {
		t.Errorf("title = %q", first.Title)
	}
	if first.URL != ts.URL+"/calls/green-energy" {
		t.Errorf("URL = %q, want absolute %s/calls/green-energy", first.URL, ts.URL)
	}
	if first.Origin != models.OriginEuropean || first.DaysUntilDeadline != models.NoDeadline {
		t.Errorf("stub not canonical: origin=%q days=%d", first.Origin, first.DaysUntilDeadline)
	}
}

func TestPortalDiscover_KeywordFilterAndCap(t *testing.T) {
	ts := portalServer(t)
	p := NewPortalScraper(ts.URL)

	found := p.Discover(context.Background(), "energy", 10)
	if len(found) != 1 || found[0].URL != ts.URL+"/calls/green-energy" {
		t.Fatalf("keyword filter: got %d results", len(found))
	}

	if found := p.Discover(context.Background(), "", 1); len(found) != 1 {
		t.Errorf("cap: got %d results, want 1", len(found))
	}
}

func TestPortalDiscover_UnreachableYieldsNothing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	p := NewPortalScraper(ts.URL)
	if found := p.Discover(context.Background(), "", 10); len(found) != 0 {
		t.Errorf("got %d results from a dead portal, want none", len(found))
	}
}

func TestLooksLikeCallLink(t *testing.T) {
	tests := []struct {
		title, href string
		want        bool
	}{
		{"Green Energy Call 2026", "/x", true},
		{"Some announcement", "/funding-tenders/topic-42", true},
		{"Institutional history", "/about", false},
	}
	for _, tt := range tests {
		if got := looksLikeCallLink(tt.title, tt.href); got != tt.want {
			t.Errorf("looksLikeCallLink(%q, %q) = %v, want %v", tt.title, tt.href, got, tt.want)
		}
	}
}
