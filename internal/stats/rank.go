package stats

import (
	"sort"
	"strings"

	"boxdstats/internal/film"
)

// DefaultTopN is the ranking length used when none is configured.
const DefaultTopN = 10

// Count is one ranked category.
type Count struct {
	Label string
	Count int
}

// Ratio is one ranked per-category value.
type Ratio struct {
	Label string
	Value float64
}

// Explode flattens a list field across records. Records whose field is absent
// contribute nothing.
func Explode(records []film.Metadata, field func(film.Metadata) []string) []string {
	var values []string
	for _, record := range records {
		values = append(values, field(record)...)
	}
	return values
}

// Scalar collects a single-valued field across records, skipping blanks.
func Scalar(records []film.Metadata, field func(film.Metadata) string) []string {
	values := make([]string, 0, len(records))
	for _, record := range records {
		if v := field(record); strings.TrimSpace(v) != "" {
			values = append(values, v)
		}
	}
	return values
}

// TopN counts occurrences and returns at most n categories by descending
// count. Ties keep first-seen order; blank values are ignored.
func TopN(values []string, n int) []Count {
	counts := countInOrder(values)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return truncate(counts, n)
}

// Mode returns the most frequent value, or "" when there is none.
func Mode(values []string) string {
	top := TopN(values, 1)
	if len(top) == 0 {
		return ""
	}
	return top[0].Label
}

func countInOrder(values []string) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		pos, ok := index[v]
		if !ok {
			pos = len(counts)
			index[v] = pos
			counts = append(counts, Count{Label: v})
		}
		counts[pos].Count++
	}
	return counts
}

func truncate[T any](items []T, n int) []T {
	if n <= 0 {
		n = DefaultTopN
	}
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// genreAccumulator tracks a per-genre sum and occurrence count in first-seen order.
type genreAccumulator struct {
	index  map[string]int
	labels []string
	sums   []float64
	counts []int
}

func newGenreAccumulator() *genreAccumulator {
	return &genreAccumulator{index: make(map[string]int)}
}

func (a *genreAccumulator) add(genre string, value float64) {
	if strings.TrimSpace(genre) == "" {
		return
	}
	pos, ok := a.index[genre]
	if !ok {
		pos = len(a.labels)
		a.index[genre] = pos
		a.labels = append(a.labels, genre)
		a.sums = append(a.sums, 0)
		a.counts = append(a.counts, 0)
	}
	a.sums[pos] += value
	a.counts[pos]++
}

func (a *genreAccumulator) means(n int) []Ratio {
	ratios := make([]Ratio, 0, len(a.labels))
	for i, label := range a.labels {
		ratios = append(ratios, Ratio{Label: label, Value: a.sums[i] / float64(a.counts[i])})
	}
	sort.SliceStable(ratios, func(i, j int) bool {
		return ratios[i].Value > ratios[j].Value
	})
	return truncate(ratios, n)
}

// LikeRatioByGenre is, per genre, the share of films carrying it whose title
// is liked. Values lie in [0,1].
func LikeRatioByGenre(records []film.Metadata, liked film.TitleSet, n int) []Ratio {
	acc := newGenreAccumulator()
	for _, record := range records {
		value := 0.0
		if liked.Contains(record.Title) {
			value = 1
		}
		for _, genre := range record.Genres {
			acc.add(genre, value)
		}
	}
	return acc.means(n)
}

// AverageVoteByGenre is, per genre, the mean catalog rating over films that
// carry it and have a rating.
func AverageVoteByGenre(records []film.Metadata, n int) []Ratio {
	acc := newGenreAccumulator()
	for _, record := range records {
		if record.VoteAverage == nil {
			continue
		}
		for _, genre := range record.Genres {
			acc.add(genre, *record.VoteAverage)
		}
	}
	return acc.means(n)
}

// WatchlistGenres ranks genres among cached films whose title is on the watchlist.
func WatchlistGenres(records []film.Metadata, watchlist film.TitleSet, n int) []Count {
	var genres []string
	for _, record := range records {
		if watchlist.Contains(record.Title) {
			genres = append(genres, record.Genres...)
		}
	}
	return TopN(genres, n)
}
