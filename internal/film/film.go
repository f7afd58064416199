package film

import (
	"strconv"
	"strings"
)

// Reference identifies one film in the user's lists before catalog
// resolution. Year 0 means the export left the year empty.
type Reference struct {
	Title string
	Year  int
}

// Key returns the identity of the reference. Two distinct films sharing a
// title and year collapse onto the same key.
func (r Reference) Key() string {
	return r.Title + "\x00" + strconv.Itoa(r.Year)
}

// String renders the reference for logs, e.g. "Heat (1995)".
func (r Reference) String() string {
	if r.Year == 0 {
		return r.Title
	}
	return r.Title + " (" + strconv.Itoa(r.Year) + ")"
}

// Metadata is the normalized catalog record for one resolved film. Nil list
// fields mean the value was absent; nil numeric pointers mean the catalog had
// no value.
type Metadata struct {
	TMDBID              int64
	Title               string
	Year                int
	Runtime             *int
	Genres              []string
	Director            string
	Writers             []string
	Cast                []string
	ProductionCompanies []string
	Countries           []string
	Languages           []string
	ReleaseDate         string
	Certification       string
	VoteAverage         *float64
	VoteCount           *int64
	Popularity          *float64
	Overview            string
	Keywords            []string
	PosterPath          string
	BackdropPath        string
}

// TitleSet is a set of film titles used for membership tests.
type TitleSet map[string]struct{}

// NewTitleSet builds a set from the given titles, ignoring blanks.
func NewTitleSet(titles ...string) TitleSet {
	set := make(TitleSet, len(titles))
	for _, title := range titles {
		set.Add(title)
	}
	return set
}

// Add inserts title into the set.
func (s TitleSet) Add(title string) {
	if strings.TrimSpace(title) == "" {
		return
	}
	s[title] = struct{}{}
}

// Contains reports whether title is in the set.
func (s TitleSet) Contains(title string) bool {
	_, ok := s[title]
	return ok
}

// Len returns the number of distinct titles.
func (s TitleSet) Len() int {
	return len(s)
}

// IntersectionLen counts titles present in both sets.
func (s TitleSet) IntersectionLen(other TitleSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	count := 0
	for title := range small {
		if large.Contains(title) {
			count++
		}
	}
	return count
}
