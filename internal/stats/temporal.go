package stats

import (
	"sort"

	"boxdstats/internal/film"
)

// Point is one bucket of a time series.
type Point struct {
	Year  int
	Count int
}

// ByYear counts films per release year in ascending order. Unknown years are excluded.
func ByYear(records []film.Metadata) []Point {
	return bucket(records, func(year int) int { return year })
}

// ByDecade counts films per decade (1994 → 1990) in ascending order.
func ByDecade(records []film.Metadata) []Point {
	return bucket(records, func(year int) int { return year / 10 * 10 })
}

func bucket(records []film.Metadata, key func(int) int) []Point {
	counts := make(map[int]int)
	for _, record := range records {
		if record.Year <= 0 {
			continue
		}
		counts[key(record.Year)]++
	}
	points := make([]Point, 0, len(counts))
	for year, count := range counts {
		points = append(points, Point{Year: year, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}

// ModeYear returns the most frequent release year, preferring the earlier
// year on ties. Zero means no record has a year.
func ModeYear(records []film.Metadata) int {
	best := Point{}
	for _, p := range ByYear(records) {
		if p.Count > best.Count {
			best = p
		}
	}
	return best.Year
}
