package export

import (
	"path/filepath"

	"boxdstats/internal/film"
)

// Table locations inside an extracted export.
const (
	WatchedFile   = "watched.csv"
	WatchlistFile = "watchlist.csv"
	LikedFile     = "likes/films.csv"
)

// Sources holds the three tables of one export.
type Sources struct {
	Watched   []Entry
	Watchlist []Entry
	Liked     []Entry
}

// Load reads all three tables from an extracted export directory. The first
// missing or unreadable table aborts the load.
func Load(dir string) (*Sources, error) {
	watched, err := ReadTable(filepath.Join(dir, WatchedFile))
	if err != nil {
		return nil, err
	}
	watchlist, err := ReadTable(filepath.Join(dir, WatchlistFile))
	if err != nil {
		return nil, err
	}
	liked, err := ReadTable(filepath.Join(dir, filepath.FromSlash(LikedFile)))
	if err != nil {
		return nil, err
	}
	return &Sources{Watched: watched, Watchlist: watchlist, Liked: liked}, nil
}

// References returns every distinct (title, year) pair across watched,
// watchlist, and liked, in first-seen order.
func References(s *Sources) []film.Reference {
	if s == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var refs []film.Reference
	for _, table := range [][]Entry{s.Watched, s.Watchlist, s.Liked} {
		for _, entry := range table {
			ref := film.Reference{Title: entry.Name, Year: entry.Year}
			key := ref.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			refs = append(refs, ref)
		}
	}
	return refs
}

// WatchedSet returns the titles of the watched table.
func (s *Sources) WatchedSet() film.TitleSet { return titleSet(s.Watched) }

// WatchlistSet returns the titles of the watchlist table.
func (s *Sources) WatchlistSet() film.TitleSet { return titleSet(s.Watchlist) }

// LikedSet returns the titles of the liked table.
func (s *Sources) LikedSet() film.TitleSet { return titleSet(s.Liked) }

func titleSet(entries []Entry) film.TitleSet {
	set := make(film.TitleSet, len(entries))
	for _, entry := range entries {
		set.Add(entry.Name)
	}
	return set
}
