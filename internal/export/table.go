package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Entry is one row of an export table.
type Entry struct {
	Name string
	Year int
}

// ReadTable loads a CSV table with a header row containing at least Name and
// Year columns. Empty or unparsable years become 0.
func ReadTable(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := parseTable(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

func parseTable(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	nameCol, yearCol := -1, -1
	for i, column := range header {
		switch strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")) {
		case "Name":
			nameCol = i
		case "Year":
			yearCol = i
		}
	}
	if nameCol < 0 || yearCol < 0 {
		return nil, errors.New("header must contain Name and Year columns")
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if nameCol >= len(record) {
			continue
		}
		entry := Entry{Name: strings.TrimSpace(record[nameCol])}
		if entry.Name == "" {
			continue
		}
		if yearCol < len(record) {
			entry.Year = parseYear(record[yearCol])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseYear(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if year, err := strconv.Atoi(value); err == nil {
		return year
	}
	// Spreadsheet round-trips sometimes leave "1999.0".
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}
