package contacts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"

	"github.com/gigcompass/venuesearch/internal/domain"
	"github.com/gigcompass/venuesearch/internal/domain/search/query"
)

// --- Fake transport ---

type fakeTransport struct {
	status   int
	body     string
	err      error
	lastPath string
	lastBody map[string]any
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.lastPath = req.URL.Path
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &f.lastBody)
		}
	}
	if f.err != nil {
		return nil, f.err
	}

	header := http.Header{}
	header.Set("X-Elastic-Product", "Elasticsearch")
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: f.status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func newRepo(t *testing.T, ft *fakeTransport) *Repo {
	t.Helper()
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://testbackend:9200"},
		Transport: ft,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return New(es, "contacts")
}

const hitsResponse = `{
	"hits": {
		"total": {"value": 2},
		"hits": [
			{"_id": "1", "_score": 4.2,
			 "_source": {"company": "Blue Note", "city": "New York"},
			 "highlight": {"company": ["<em>Blue</em> Note"]}},
			{"_id": "2", "_score": 1.1, "_source": {"company": "Mercury Lounge"}}
		]
	}
}`

// --- Tests ---

func TestSearchParsesHits(t *testing.T) {
	ft := &fakeTransport{status: http.StatusOK, body: hitsResponse}
	repo := newRepo(t, ft)

	tier := query.Tier{Should: []query.Clause{query.MatchAll{}}, MinimumShouldMatch: 1}
	docs, err := repo.Search(context.Background(), tier, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("docs = %d, want 2", len(docs))
	}
	if docs[0].ID() != "1" || docs[0].Score() != 4.2 {
		t.Errorf("first doc = %s/%f", docs[0].ID(), docs[0].Score())
	}
	if docs[0].StringField("company") != "Blue Note" {
		t.Errorf("company = %q", docs[0].StringField("company"))
	}
	if got := docs[0].Highlights()["company"]; len(got) != 1 {
		t.Errorf("highlights = %v", got)
	}

	if !strings.HasSuffix(ft.lastPath, "/contacts/_search") {
		t.Errorf("path = %q", ft.lastPath)
	}
	if ft.lastBody["size"] != float64(25) {
		t.Errorf("size = %v", ft.lastBody["size"])
	}
	if ft.lastBody["track_scores"] != true {
		t.Error("track_scores not set")
	}
	if _, ok := ft.lastBody["highlight"]; !ok {
		t.Error("highlight block missing")
	}
}

func TestSearchMissingFieldsYieldZeroHits(t *testing.T) {
	ft := &fakeTransport{status: http.StatusOK, body: `{"took": 3}`}
	repo := newRepo(t, ft)

	docs, err := repo.Search(context.Background(), query.Tier{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("docs = %d, want 0", len(docs))
	}
}

func TestSearchBackendError(t *testing.T) {
	ft := &fakeTransport{status: http.StatusBadGateway, body: `{"error": "bad gateway"}`}
	repo := newRepo(t, ft)

	_, err := repo.Search(context.Background(), query.Tier{}, 10)
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}
}

func TestSearchByNameBody(t *testing.T) {
	ft := &fakeTransport{status: http.StatusOK, body: hitsResponse}
	repo := newRepo(t, ft)

	if _, err := repo.SearchByName(context.Background(), "blue", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, ok := ft.lastBody["query"].(map[string]any)
	if !ok {
		t.Fatalf("query block = %v", ft.lastBody["query"])
	}
	boolQ := q["bool"].(map[string]any)
	should := boolQ["should"].([]any)
	if len(should) != 2 {
		t.Fatalf("should clauses = %d, want 2", len(should))
	}
	if _, ok := should[0].(map[string]any)["match_phrase_prefix"]; !ok {
		t.Error("first clause is not match_phrase_prefix")
	}
	src := ft.lastBody["_source"].([]any)
	if len(src) != 5 || src[0] != "contactId" {
		t.Errorf("_source = %v", src)
	}
}

func TestPing(t *testing.T) {
	ft := &fakeTransport{status: http.StatusOK, body: `{}`}
	repo := newRepo(t, ft)
	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	down := &fakeTransport{status: http.StatusServiceUnavailable, body: `{}`}
	repo = newRepo(t, down)
	if err := repo.Ping(context.Background()); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}
}
