package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"boxdstats/internal/tmdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "en-US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
	if _, err := tmdb.New("key", " ", ""); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestSearchMovieSendsTitleYearAndKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_key") != "key" {
			t.Errorf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if q.Get("query") != "Heat" || q.Get("year") != "1995" {
			t.Errorf("unexpected query: %q", r.URL.RawQuery)
		}
		if q.Get("language") != "en-US" {
			t.Errorf("expected language parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":949,"title":"Heat"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	resp, err := client.SearchMovie(context.Background(), "Heat", 1995)
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != 949 {
		t.Fatalf("unexpected response: %#v", resp)
	}
}

func TestSearchMovieOmitsEmptyYear(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["year"]; ok {
			t.Errorf("expected no year parameter, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	resp, err := client.SearchMovie(context.Background(), "Untitled", 0)
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Fatalf("expected empty results, got %#v", resp.Results)
	}
}

func TestSearchMovieHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"status_code":25}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.SearchMovie(context.Background(), "fail", 0); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}

func TestSearchMovieEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "  ", 0); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestGetMovieDetailsAppendsSubResources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/949" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("append_to_response"); got != tmdb.DetailAppends {
			t.Errorf("append_to_response = %q", got)
		}
		_, _ = w.Write([]byte(`{
			"id": 949, "title": "Heat", "release_date": "1995-12-15", "runtime": null,
			"genres": [{"id": 28, "name": "Action"}],
			"vote_average": 7.9,
			"credits": {"cast": [{"name": "Al Pacino"}], "crew": [{"name": "Michael Mann", "job": "Director"}]},
			"release_dates": {"results": [{"iso_3166_1": "US", "release_dates": [{"certification": "R"}]}]},
			"keywords": {"keywords": [{"id": 1, "name": "heist"}]}
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	details, err := client.GetMovieDetails(context.Background(), 949)
	if err != nil {
		t.Fatalf("GetMovieDetails returned error: %v", err)
	}
	if details.Runtime != nil {
		t.Fatalf("expected nil runtime for JSON null, got %v", *details.Runtime)
	}
	if details.VoteAverage == nil || *details.VoteAverage != 7.9 {
		t.Fatalf("unexpected vote average: %v", details.VoteAverage)
	}
	if details.VoteCount != nil {
		t.Fatalf("expected nil vote count when absent, got %v", *details.VoteCount)
	}
	if len(details.Credits.Crew) != 1 || details.ReleaseDates.Results[0].ReleaseDates[0].Certification != "R" {
		t.Fatalf("unexpected appended blocks: %#v", details)
	}
	if len(details.Keywords.Keywords) != 1 || details.Keywords.Keywords[0].Name != "heist" {
		t.Fatalf("unexpected keywords: %#v", details.Keywords)
	}
}

func TestGetMovieDetailsRejectsInvalidID(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.GetMovieDetails(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero id")
	}
}
