package stats

import "boxdstats/internal/film"

// FilmRuntime names one film with its runtime.
type FilmRuntime struct {
	Title   string
	Minutes int
}

// RuntimeStats summarises runtimes. When no record has a runtime, Available
// is false and every other field is zero.
type RuntimeStats struct {
	Available      bool
	Films          int
	TotalMinutes   int
	AverageMinutes float64
	Longest        FilmRuntime
	Shortest       FilmRuntime
}

// Hours is the total runtime in hours.
func (r RuntimeStats) Hours() float64 {
	return float64(r.TotalMinutes) / 60
}

// Runtimes computes the runtime summary. On equal runtimes the earlier
// record is kept as longest or shortest.
func Runtimes(records []film.Metadata) RuntimeStats {
	var out RuntimeStats
	for _, record := range records {
		if record.Runtime == nil {
			continue
		}
		minutes := *record.Runtime
		current := FilmRuntime{Title: record.Title, Minutes: minutes}
		if !out.Available {
			out.Available = true
			out.Longest = current
			out.Shortest = current
		} else {
			if minutes > out.Longest.Minutes {
				out.Longest = current
			}
			if minutes < out.Shortest.Minutes {
				out.Shortest = current
			}
		}
		out.Films++
		out.TotalMinutes += minutes
	}
	if out.Films > 0 {
		out.AverageMinutes = float64(out.TotalMinutes) / float64(out.Films)
	}
	return out
}

// FunFact compares total viewing time against a fixed reference duration.
type FunFact struct {
	Subject        string
	ReferenceHours float64
	Times          float64
}

// FunFactReferences are the reference durations, in display order.
var FunFactReferences = []FunFact{
	{Subject: "Breaking Bad", ReferenceHours: 62},
	{Subject: "Marvel Cinematic Universe", ReferenceHours: 50},
	{Subject: "Fallout 3", ReferenceHours: 40},
	{Subject: "The Dark Knight Trilogy", ReferenceHours: 9},
	{Subject: "Harry Potter film series", ReferenceHours: 15},
}

// FunFacts divides hours by each reference duration.
func FunFacts(hours float64) []FunFact {
	facts := make([]FunFact, 0, len(FunFactReferences))
	for _, ref := range FunFactReferences {
		ref.Times = hours / ref.ReferenceHours
		facts = append(facts, ref)
	}
	return facts
}
