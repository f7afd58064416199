package report

import (
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"boxdstats/internal/config"
	"boxdstats/internal/stats"
)

const notAvailable = "n/a"

// Options controls presentation.
type Options struct {
	Title           string
	ChartLibraryURL string
	Theme           config.Theme
}

// OptionsFromConfig maps the report section of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Title:           cfg.Report.Title,
		ChartLibraryURL: cfg.Report.ChartLibraryURL,
		Theme:           cfg.Report.Theme,
	}
}

// Tile is one labelled value in the overview panel.
type Tile struct {
	Label string
	Value string
}

// Fact is one fun-fact line.
type Fact struct {
	Subject        string
	ReferenceHours string
	Times          string
}

// Chart is one rendered chart: a DOM id and its Plotly figure as JSON.
type Chart struct {
	ID    string
	Title string
	Spec  template.JS
}

// Document is everything the page template needs.
type Document struct {
	Title           string
	ChartLibraryURL string
	Theme           config.Theme
	Tiles           []Tile
	Facts           []Fact
	// RuntimeNote replaces the fun facts when no runtimes are known.
	RuntimeNote string
	Charts      []Chart
}

// Build assembles the document for s.
func Build(s *stats.Statistics, opts Options) (*Document, error) {
	if s == nil {
		return nil, fmt.Errorf("statistics are required")
	}
	p := message.NewPrinter(language.English)
	doc := &Document{
		Title:           opts.Title,
		ChartLibraryURL: opts.ChartLibraryURL,
		Theme:           opts.Theme,
		Tiles:           overviewTiles(p, s),
	}
	if doc.Title == "" {
		doc.Title = "Letterboxd Stats"
	}

	if s.Runtime.Available {
		for _, fact := range s.FunFacts {
			doc.Facts = append(doc.Facts, Fact{
				Subject:        fact.Subject,
				ReferenceHours: p.Sprintf("%.0f", fact.ReferenceHours),
				Times:          p.Sprintf("%.1f", fact.Times),
			})
		}
	} else {
		doc.RuntimeNote = "Runtime data unavailable, so no viewing-time comparisons could be made."
	}

	theme := opts.Theme
	figures := []figure{
		lineChart("Films Watched per Decade", s.ByDecade, theme),
		lineChart("Films Watched by Year", s.ByYear, theme),
		countBarChart("Top Directors", s.Directors, theme),
		countBarChart("Top Writers", s.Writers, theme),
		countBarChart("Top Actor/Actress", s.Actors, theme),
		countBarChart("Top Production Companies", s.ProductionCompanies, theme),
		pieChart("Top Countries", s.Countries, theme),
		pieChart("Top Languages", s.Languages, theme),
		pieChart("Top Genres", s.Genres, theme),
		ratioBarChart("Like Ratio by Genre", s.LikeRatioByGenre, theme),
		countBarChart("Top Genres in Watchlist", s.WatchlistGenres, theme),
		ratioBarChart("Average Vote by Genre", s.AverageVoteByGenre, theme),
	}
	for i, fig := range figures {
		spec, err := fig.encode()
		if err != nil {
			return nil, err
		}
		doc.Charts = append(doc.Charts, Chart{
			ID:    fmt.Sprintf("chart-%02d", i+1),
			Title: fig.Layout.Title.Text,
			Spec:  template.JS(spec),
		})
	}
	return doc, nil
}

func overviewTiles(p *message.Printer, s *stats.Statistics) []Tile {
	o := s.Overview
	tiles := []Tile{
		{"Watched", p.Sprintf("%d", o.Watched)},
		{"Liked", p.Sprintf("%d", o.Liked)},
		{"Watchlist", p.Sprintf("%d", o.Watchlist)},
		{"Watchlist %", p.Sprintf("%.1f%%", o.WatchlistCompletion)},
		{"Liked %", p.Sprintf("%.1f%%", o.LikedPercent)},
		{"Top Director", orNA(s.Modes.Director)},
		{"Top Actor/Actress", orNA(s.Modes.Actor)},
		{"Top Genre", orNA(s.Modes.Genre)},
		{"Most Watched Year", yearOrNA(s.Modes.Year)},
	}

	r := s.Runtime
	if !r.Available {
		for _, label := range []string{"Total Runtime", "Avg Runtime", "Shortest Film", "Longest Film"} {
			tiles = append(tiles, Tile{label, "unavailable"})
		}
		return tiles
	}
	return append(tiles,
		Tile{"Total Runtime", p.Sprintf("%d min (~%.0f hrs)", r.TotalMinutes, r.Hours())},
		Tile{"Avg Runtime", p.Sprintf("%.1f min", r.AverageMinutes)},
		Tile{"Shortest Film", p.Sprintf("%s (%d min)", r.Shortest.Title, r.Shortest.Minutes)},
		Tile{"Longest Film", p.Sprintf("%s (%d min)", r.Longest.Title, r.Longest.Minutes)},
	)
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	return value
}

func yearOrNA(year int) string {
	if year <= 0 {
		return notAvailable
	}
	return fmt.Sprintf("%d", year)
}
