package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// Row is one Name/Year line of an export table fixture. Year 0 writes an
// empty cell.
type Row struct {
	Name string
	Year int
}

// WriteTable writes a Letterboxd-shaped CSV (Date, Name, Year, Letterboxd URI)
// to path, creating parent directories.
func WriteTable(t testing.TB, path string, rows ...Row) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := [][]string{{"Date", "Name", "Year", "Letterboxd URI"}}
	for i, row := range rows {
		year := ""
		if row.Year != 0 {
			year = strconv.Itoa(row.Year)
		}
		records = append(records, []string{"2024-01-01", row.Name, year, "https://boxd.it/" + strconv.Itoa(i)})
	}
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteExport writes watched.csv, watchlist.csv, and likes/films.csv under dir.
func WriteExport(t testing.TB, dir string, watched, watchlist, liked []Row) {
	t.Helper()

	WriteTable(t, filepath.Join(dir, "watched.csv"), watched...)
	WriteTable(t, filepath.Join(dir, "watchlist.csv"), watchlist...)
	WriteTable(t, filepath.Join(dir, "likes", "films.csv"), liked...)
}
