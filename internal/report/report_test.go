package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"boxdstats/internal/config"
	"boxdstats/internal/film"
	"boxdstats/internal/report"
	"boxdstats/internal/stats"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func sampleStats() *stats.Statistics {
	records := []film.Metadata{
		{TMDBID: 1, Title: "Film A", Year: 1994, Genres: []string{"Drama"}, VoteAverage: floatPtr(8), Runtime: intPtr(120), Director: "Ann", Countries: []string{"France"}},
		{TMDBID: 2, Title: "Film <B>", Year: 2003, Genres: []string{"Drama", "Comedy"}, VoteAverage: floatPtr(6), Runtime: intPtr(90), Director: "Bo"},
	}
	watched := film.NewTitleSet("Film A", "Film <B>")
	for i := 0; i < 1500; i++ {
		watched.Add("Extra " + string(rune('a'+i%26)) + string(rune('a'+i/26%26)) + string(rune('a'+i/676)))
	}
	return stats.Compute(stats.Input{
		Records:   records,
		Watched:   watched,
		Watchlist: film.NewTitleSet("Film <B>"),
		Liked:     film.NewTitleSet("Film A"),
	})
}

func options() report.Options {
	return report.OptionsFromConfig(func() *config.Config { c := config.Default(); return &c }())
}

func render(t *testing.T, s *stats.Statistics) string {
	t.Helper()
	doc, err := report.Build(s, options())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	var buf bytes.Buffer
	if err := report.Render(&buf, doc); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return buf.String()
}

func TestBuildOrdersCharts(t *testing.T) {
	doc, err := report.Build(sampleStats(), options())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	want := []string{
		"Films Watched per Decade",
		"Films Watched by Year",
		"Top Directors",
		"Top Writers",
		"Top Actor/Actress",
		"Top Production Companies",
		"Top Countries",
		"Top Languages",
		"Top Genres",
		"Like Ratio by Genre",
		"Top Genres in Watchlist",
		"Average Vote by Genre",
	}
	if len(doc.Charts) != len(want) {
		t.Fatalf("expected %d charts, got %d", len(want), len(doc.Charts))
	}
	for i, title := range want {
		if doc.Charts[i].Title != title {
			t.Fatalf("chart %d = %q, want %q", i, doc.Charts[i].Title, title)
		}
	}
	if !strings.Contains(string(doc.Charts[6].Spec), `"type":"pie"`) {
		t.Fatalf("expected countries chart to be a pie: %s", doc.Charts[6].Spec)
	}
	if !strings.Contains(string(doc.Charts[2].Spec), `"orientation":"h"`) {
		t.Fatalf("expected directors chart to be horizontal: %s", doc.Charts[2].Spec)
	}
}

func TestRenderFormatsNumbersAndEscapes(t *testing.T) {
	html := render(t, sampleStats())

	if !strings.Contains(html, "<b>Watched</b>1,502") {
		t.Fatal("expected thousands separator in watched count")
	}
	if !strings.Contains(html, "<b>Total Runtime</b>210 min (~4 hrs)") {
		t.Fatal("expected total runtime tile")
	}
	if strings.Contains(html, "Film <B>") {
		t.Fatal("expected film titles to be escaped")
	}
	if !strings.Contains(html, "Breaking Bad") {
		t.Fatal("expected fun facts")
	}
	if !strings.Contains(html, `src="https://cdn.plot.ly/`) {
		t.Fatal("expected chart library script tag")
	}
	if strings.Count(html, "Plotly.newPlot(") != 12 {
		t.Fatalf("expected 12 charts, got %d", strings.Count(html, "Plotly.newPlot("))
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	first := render(t, sampleStats())
	second := render(t, sampleStats())
	if first != second {
		t.Fatal("expected identical output for identical statistics")
	}
}

func TestRenderWithoutRuntimes(t *testing.T) {
	s := stats.Compute(stats.Input{Records: []film.Metadata{{TMDBID: 1, Title: "Silent"}}})
	html := render(t, s)
	if !strings.Contains(html, "<b>Total Runtime</b>unavailable") {
		t.Fatal("expected unavailable runtime tile")
	}
	if !strings.Contains(html, "<b>Top Director</b>n/a") {
		t.Fatal("expected n/a for missing director mode")
	}
	if strings.Contains(html, "Breaking Bad") {
		t.Fatal("expected fun facts to be replaced by a note")
	}
}

func TestWriteAndExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "index.html")
	if report.Exists(path) {
		t.Fatal("report should not exist yet")
	}
	doc, err := report.Build(sampleStats(), options())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := report.Write(path, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !report.Exists(path) {
		t.Fatal("expected report to exist")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Fatalf("unexpected report start: %.40q", data)
	}
}
