package ledger

import "time"

// RunStatus is the lifecycle state of a run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// Run is one fetch invocation.
type Run struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	Status         RunStatus
	ReferenceCount int
	ResolvedCount  int
	ErrorMessage   string
}

// Dropped counts references that did not resolve.
func (r Run) Dropped() int {
	return r.ReferenceCount - r.ResolvedCount
}

// Lookup is the recorded outcome for one reference of a run.
type Lookup struct {
	RunID        string
	Position     int
	Title        string
	Year         int
	Status       string
	TMDBID       int64
	ErrorMessage string
}

// Resolved reports whether the lookup produced a record.
func (l Lookup) Resolved() bool {
	return l.Status == "resolved"
}
