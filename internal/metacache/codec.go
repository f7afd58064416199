package metacache

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"boxdstats/internal/film"
)

// Columns is the cache header in file order.
var Columns = []string{
	"tmdb_id",
	"title",
	"year",
	"runtime",
	"genres",
	"director",
	"writers",
	"cast",
	"production_companies",
	"countries",
	"languages",
	"release_date",
	"certification",
	"vote_average",
	"vote_count",
	"popularity",
	"overview",
	"keywords",
	"poster_path",
	"backdrop_path",
}

func encodeRecord(m film.Metadata) ([]string, error) {
	lists := map[string][]string{
		"genres":               m.Genres,
		"writers":              m.Writers,
		"cast":                 m.Cast,
		"production_companies": m.ProductionCompanies,
		"countries":            m.Countries,
		"languages":            m.Languages,
		"keywords":             m.Keywords,
	}
	row := make([]string, len(Columns))
	for i, col := range Columns {
		if values, ok := lists[col]; ok {
			cell, err := encodeList(values)
			if err != nil {
				return nil, fmt.Errorf("encode %s: %w", col, err)
			}
			row[i] = cell
			continue
		}
		switch col {
		case "tmdb_id":
			row[i] = strconv.FormatInt(m.TMDBID, 10)
		case "title":
			row[i] = m.Title
		case "year":
			if m.Year != 0 {
				row[i] = strconv.Itoa(m.Year)
			}
		case "runtime":
			if m.Runtime != nil {
				row[i] = strconv.Itoa(*m.Runtime)
			}
		case "director":
			row[i] = m.Director
		case "release_date":
			row[i] = m.ReleaseDate
		case "certification":
			row[i] = m.Certification
		case "vote_average":
			if m.VoteAverage != nil {
				row[i] = strconv.FormatFloat(*m.VoteAverage, 'f', -1, 64)
			}
		case "vote_count":
			if m.VoteCount != nil {
				row[i] = strconv.FormatInt(*m.VoteCount, 10)
			}
		case "popularity":
			if m.Popularity != nil {
				row[i] = strconv.FormatFloat(*m.Popularity, 'f', -1, 64)
			}
		case "overview":
			row[i] = m.Overview
		case "poster_path":
			row[i] = m.PosterPath
		case "backdrop_path":
			row[i] = m.BackdropPath
		}
	}
	return row, nil
}

// decodeRecord maps one row onto a record using the header positions in idx.
func decodeRecord(row []string, idx map[string]int) (film.Metadata, error) {
	cell := func(col string) string {
		pos, ok := idx[col]
		if !ok || pos >= len(row) {
			return ""
		}
		return row[pos]
	}

	var m film.Metadata
	id, err := strconv.ParseInt(strings.TrimSpace(cell("tmdb_id")), 10, 64)
	if err != nil || id <= 0 {
		return film.Metadata{}, fmt.Errorf("invalid tmdb_id %q", cell("tmdb_id"))
	}
	m.TMDBID = id
	m.Title = cell("title")
	m.Director = cell("director")
	m.ReleaseDate = cell("release_date")
	m.Certification = cell("certification")
	m.Overview = cell("overview")
	m.PosterPath = cell("poster_path")
	m.BackdropPath = cell("backdrop_path")

	if m.Year, err = parseOptionalInt(cell("year")); err != nil {
		return film.Metadata{}, fmt.Errorf("year: %w", err)
	}
	if v := strings.TrimSpace(cell("runtime")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return film.Metadata{}, fmt.Errorf("runtime: %w", err)
		}
		m.Runtime = &n
	}
	if m.VoteAverage, err = parseOptionalFloat(cell("vote_average")); err != nil {
		return film.Metadata{}, fmt.Errorf("vote_average: %w", err)
	}
	if v := strings.TrimSpace(cell("vote_count")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return film.Metadata{}, fmt.Errorf("vote_count: %w", err)
		}
		m.VoteCount = &n
	}
	if m.Popularity, err = parseOptionalFloat(cell("popularity")); err != nil {
		return film.Metadata{}, fmt.Errorf("popularity: %w", err)
	}

	targets := []struct {
		col string
		dst *[]string
	}{
		{"genres", &m.Genres},
		{"writers", &m.Writers},
		{"cast", &m.Cast},
		{"production_companies", &m.ProductionCompanies},
		{"countries", &m.Countries},
		{"languages", &m.Languages},
		{"keywords", &m.Keywords},
	}
	for _, target := range targets {
		values, err := decodeList(cell(target.col))
		if err != nil {
			return film.Metadata{}, fmt.Errorf("%s: %w", target.col, err)
		}
		*target.dst = values
	}
	return m, nil
}

// encodeList writes nil as an empty cell and everything else, including an
// empty list, as a JSON array.
func encodeList(values []string) (string, error) {
	if values == nil {
		return "", nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeList(cell string) ([]string, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(cell), &values); err != nil {
		return nil, fmt.Errorf("parse list cell: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func parseOptionalInt(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func parseOptionalFloat(v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
