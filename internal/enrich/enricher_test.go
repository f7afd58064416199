package enrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"boxdstats/internal/film"
	"boxdstats/internal/tmdb"
)

type fakeCatalog struct {
	search      map[string]*tmdb.Response
	searchErr   map[string]error
	details     map[int64]*tmdb.MovieDetails
	searchCalls int
	detailCalls int
}

func (f *fakeCatalog) SearchMovie(_ context.Context, query string, _ int) (*tmdb.Response, error) {
	f.searchCalls++
	if err := f.searchErr[query]; err != nil {
		return nil, err
	}
	if resp, ok := f.search[query]; ok {
		return resp, nil
	}
	return &tmdb.Response{}, nil
}

func (f *fakeCatalog) GetMovieDetails(_ context.Context, id int64) (*tmdb.MovieDetails, error) {
	f.detailCalls++
	if d, ok := f.details[id]; ok {
		return d, nil
	}
	return nil, errors.New("tmdb movie details returned 404")
}

func hits(ids ...int64) *tmdb.Response {
	resp := &tmdb.Response{}
	for _, id := range ids {
		resp.Results = append(resp.Results, tmdb.Result{ID: id})
	}
	return resp
}

func TestRunSkipsZeroResultSearch(t *testing.T) {
	catalog := &fakeCatalog{}
	e := New(catalog, Options{})

	result, err := e.Run(context.Background(), []film.Reference{{Title: "Film X", Year: 2020}})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(result.Records) != 0 {
		t.Fatalf("expected no records, got %d", len(result.Records))
	}
	if len(result.Outcomes) != 1 || result.Outcomes[0].Status != StatusNotFound {
		t.Fatalf("unexpected outcomes: %#v", result.Outcomes)
	}
	if catalog.detailCalls != 0 {
		t.Fatalf("expected no detail call after empty search, got %d", catalog.detailCalls)
	}
	if result.Dropped() != 1 {
		t.Fatalf("Dropped = %d, want 1", result.Dropped())
	}
}

func TestRunUsesFirstResultAndDropsFailures(t *testing.T) {
	catalog := &fakeCatalog{
		search: map[string]*tmdb.Response{
			"Heat":     hits(949, 12345),
			"Lost":     hits(404),
			"Solaris2": hits(593),
		},
		searchErr: map[string]error{"Broken": errors.New("tmdb search returned 500")},
		details: map[int64]*tmdb.MovieDetails{
			949:   {ID: 949, Title: "Heat", ReleaseDate: "1995-12-15"},
			12345: {ID: 12345, Title: "Wrong Heat"},
			593:   {ID: 593, Title: "Solaris", ReleaseDate: "1972-03-20"},
		},
	}
	var seen []Status
	e := New(catalog, Options{OnOutcome: func(i int, o Outcome) {
		if i != len(seen) {
			t.Errorf("outcome index %d out of order", i)
		}
		seen = append(seen, o.Status)
	}})

	refs := []film.Reference{
		{Title: "Heat", Year: 1995},
		{Title: "Broken", Year: 2001},
		{Title: "Lost", Year: 1990},
		{Title: "Solaris2", Year: 2002},
	}
	result, err := e.Run(context.Background(), refs)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Records))
	}
	if result.Records[0].TMDBID != 949 || result.Records[0].Title != "Heat" {
		t.Fatalf("expected first search hit to be used, got %#v", result.Records[0])
	}
	if result.Records[1].Year != 1972 {
		t.Fatalf("expected year from release date to override export year, got %d", result.Records[1].Year)
	}
	want := []Status{StatusResolved, StatusSearchFailed, StatusDetailFailed, StatusResolved}
	for i, status := range want {
		if result.Outcomes[i].Status != status || seen[i] != status {
			t.Fatalf("outcome %d = %s (callback %s), want %s", i, result.Outcomes[i].Status, seen[i], status)
		}
	}
	if result.Outcomes[2].TMDBID != 404 || result.Outcomes[2].Err == nil {
		t.Fatalf("expected detail failure to keep id and error, got %#v", result.Outcomes[2])
	}
	for _, record := range result.Records {
		if record.TMDBID == 0 {
			t.Fatal("every record must carry a catalog id")
		}
	}
}

func TestRunPacesBetweenLookups(t *testing.T) {
	catalog := &fakeCatalog{}
	e := New(catalog, Options{Delay: 250 * time.Millisecond})
	var sleeps []time.Duration
	e.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}

	refs := []film.Reference{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	if _, err := e.Run(context.Background(), refs); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(sleeps) != 2 {
		t.Fatalf("expected 2 pauses between 3 lookups, got %d", len(sleeps))
	}
	for _, d := range sleeps {
		if d != 250*time.Millisecond {
			t.Fatalf("unexpected pause %v", d)
		}
	}
	if catalog.searchCalls != 3 {
		t.Fatalf("expected 3 searches, got %d", catalog.searchCalls)
	}
}

func TestRunStopsOnCancellation(t *testing.T) {
	catalog := &fakeCatalog{}
	e := New(catalog, Options{Delay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Run(ctx, []film.Reference{{Title: "A"}, {Title: "B"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSleepWithContextReturnsEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := SleepWithContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("sleep did not return early")
	}
	if err := SleepWithContext(context.Background(), 0); err != nil {
		t.Fatalf("zero sleep returned %v", err)
	}
}
