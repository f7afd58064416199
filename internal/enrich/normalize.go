package enrich

import (
	"strconv"
	"strings"

	"boxdstats/internal/film"
	"boxdstats/internal/tmdb"
)

// CastLimit is the number of billed cast members kept per film.
const CastLimit = 10

var writerJobs = map[string]struct{}{
	"Writer":     {},
	"Screenplay": {},
	"Author":     {},
}

// Normalize flattens a TMDB detail payload into a metadata record. The year
// comes from the release date, not from the export. region selects the
// certification market.
func Normalize(d *tmdb.MovieDetails, region string) film.Metadata {
	meta := film.Metadata{
		TMDBID:       d.ID,
		Title:        d.Title,
		Year:         releaseYear(d.ReleaseDate),
		Runtime:      d.Runtime,
		ReleaseDate:  d.ReleaseDate,
		VoteAverage:  d.VoteAverage,
		VoteCount:    d.VoteCount,
		Popularity:   d.Popularity,
		Overview:     d.Overview,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
	}

	meta.Genres = namedList(d.Genres)
	meta.ProductionCompanies = namedList(d.ProductionCompanies)
	meta.Keywords = namedList(d.Keywords.Keywords)

	meta.Countries = make([]string, 0, len(d.ProductionCountries))
	for _, country := range d.ProductionCountries {
		meta.Countries = append(meta.Countries, country.Name)
	}
	meta.Languages = make([]string, 0, len(d.SpokenLanguages))
	for _, lang := range d.SpokenLanguages {
		meta.Languages = append(meta.Languages, lang.EnglishName)
	}

	meta.Writers = make([]string, 0)
	for _, crew := range d.Credits.Crew {
		// Later directors overwrite earlier ones.
		if crew.Job == "Director" {
			meta.Director = crew.Name
			continue
		}
		if _, ok := writerJobs[crew.Job]; ok {
			meta.Writers = append(meta.Writers, crew.Name)
		}
	}

	cast := d.Credits.Cast
	if len(cast) > CastLimit {
		cast = cast[:CastLimit]
	}
	meta.Cast = make([]string, 0, len(cast))
	for _, member := range cast {
		meta.Cast = append(meta.Cast, member.Name)
	}

	meta.Certification = certification(d.ReleaseDates, region)
	return meta
}

// certification returns the first release's rating from the first block for
// region that lists any release, or "".
func certification(releases tmdb.ReleaseDates, region string) string {
	for _, block := range releases.Results {
		if !strings.EqualFold(block.ISO31661, region) || len(block.ReleaseDates) == 0 {
			continue
		}
		return block.ReleaseDates[0].Certification
	}
	return ""
}

func releaseYear(date string) int {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0
	}
	yearPart, _, _ := strings.Cut(date, "-")
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0
	}
	return year
}

func namedList(items []tmdb.Named) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
