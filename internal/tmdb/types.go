package tmdb

// Result represents a single TMDB search match.
type Result struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
}

// Response models the TMDB paginated search response.
type Response struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Named is the {id, name} shape shared by genres, companies, and keywords.
type Named struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Country is a production country entry.
type Country struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

// SpokenLanguage is a spoken language entry.
type SpokenLanguage struct {
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

// CastMember is a billed cast credit.
type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is a crew credit.
type CrewMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits is the appended credits block.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// ReleaseDate is one dated release inside a region block.
type ReleaseDate struct {
	Certification string `json:"certification"`
	ReleaseDate   string `json:"release_date"`
	Type          int    `json:"type"`
}

// RegionReleases groups release dates for one ISO 3166-1 region.
type RegionReleases struct {
	ISO31661     string        `json:"iso_3166_1"`
	ReleaseDates []ReleaseDate `json:"release_dates"`
}

// ReleaseDates is the appended release_dates block.
type ReleaseDates struct {
	Results []RegionReleases `json:"results"`
}

// Keywords is the appended keywords block.
type Keywords struct {
	Keywords []Named `json:"keywords"`
}

// MovieDetails is the movie detail payload including the appended blocks.
// Pointer fields distinguish JSON null from zero.
type MovieDetails struct {
	ID                  int64            `json:"id"`
	Title               string           `json:"title"`
	Overview            string           `json:"overview"`
	ReleaseDate         string           `json:"release_date"`
	Runtime             *int             `json:"runtime"`
	Genres              []Named          `json:"genres"`
	ProductionCompanies []Named          `json:"production_companies"`
	ProductionCountries []Country        `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage `json:"spoken_languages"`
	VoteAverage         *float64         `json:"vote_average"`
	VoteCount           *int64           `json:"vote_count"`
	Popularity          *float64         `json:"popularity"`
	PosterPath          string           `json:"poster_path"`
	BackdropPath        string           `json:"backdrop_path"`
	Credits             Credits          `json:"credits"`
	ReleaseDates        ReleaseDates     `json:"release_dates"`
	Keywords            Keywords         `json:"keywords"`
}
