package stats

import "boxdstats/internal/film"

// Input bundles everything the statistics are derived from.
type Input struct {
	Records   []film.Metadata
	Watched   film.TitleSet
	Watchlist film.TitleSet
	Liked     film.TitleSet
	TopN      int
}

// Overview holds the headline set counts and percentages.
type Overview struct {
	Watched   int
	Watchlist int
	Liked     int
	Cached    int
	// WatchlistCompletion is the share of watchlist titles also watched, 0-100.
	WatchlistCompletion float64
	// LikedPercent is the share of watched titles also liked, 0-100.
	LikedPercent float64
}

// Modes holds the most frequent values. Empty strings and a zero year mean
// there was no data.
type Modes struct {
	Director string
	Actor    string
	Genre    string
	Year     int
}

// Statistics is the full derived view rendered into the report.
type Statistics struct {
	Overview Overview
	Runtime  RuntimeStats
	Modes    Modes
	FunFacts []FunFact

	ByDecade []Point
	ByYear   []Point

	Directors           []Count
	Writers             []Count
	Actors              []Count
	ProductionCompanies []Count
	Countries           []Count
	Languages           []Count
	Genres              []Count
	WatchlistGenres     []Count

	LikeRatioByGenre   []Ratio
	AverageVoteByGenre []Ratio
}

// Compute derives all statistics from in.
func Compute(in Input) *Statistics {
	n := in.TopN
	if n <= 0 {
		n = DefaultTopN
	}
	watched := orEmpty(in.Watched)
	watchlist := orEmpty(in.Watchlist)
	liked := orEmpty(in.Liked)
	records := in.Records

	directors := Scalar(records, func(m film.Metadata) string { return m.Director })
	cast := Explode(records, func(m film.Metadata) []string { return m.Cast })
	genres := Explode(records, func(m film.Metadata) []string { return m.Genres })

	runtime := Runtimes(records)
	s := &Statistics{
		Overview: Overview{
			Watched:             watched.Len(),
			Watchlist:           watchlist.Len(),
			Liked:               liked.Len(),
			Cached:              len(records),
			WatchlistCompletion: percent(watched.IntersectionLen(watchlist), watchlist.Len()),
			LikedPercent:        percent(watched.IntersectionLen(liked), watched.Len()),
		},
		Runtime: runtime,
		Modes: Modes{
			Director: Mode(directors),
			Actor:    Mode(cast),
			Genre:    Mode(genres),
			Year:     ModeYear(records),
		},
		FunFacts: FunFacts(runtime.Hours()),

		ByDecade: ByDecade(records),
		ByYear:   ByYear(records),

		Directors:           TopN(directors, n),
		Writers:             TopN(Explode(records, func(m film.Metadata) []string { return m.Writers }), n),
		Actors:              TopN(cast, n),
		ProductionCompanies: TopN(Explode(records, func(m film.Metadata) []string { return m.ProductionCompanies }), n),
		Countries:           TopN(Explode(records, func(m film.Metadata) []string { return m.Countries }), n),
		Languages:           TopN(Explode(records, func(m film.Metadata) []string { return m.Languages }), n),
		Genres:              TopN(genres, n),
		WatchlistGenres:     WatchlistGenres(records, watchlist, n),

		LikeRatioByGenre:   LikeRatioByGenre(records, liked, n),
		AverageVoteByGenre: AverageVoteByGenre(records, n),
	}
	return s
}

// percent is part/whole*100 with the denominator floored at 1.
func percent(part, whole int) float64 {
	if whole < 1 {
		whole = 1
	}
	return float64(part) / float64(whole) * 100
}

func orEmpty(set film.TitleSet) film.TitleSet {
	if set == nil {
		return film.TitleSet{}
	}
	return set
}
