package ingest

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

// Stage identifies one write stage of the persistence orchestrator.
type Stage string

const (
	StageCore       Stage = "applicant"
	StageAddress    Stage = "address"
	StageEducation  Stage = "education"
	StageExperience Stage = "experience"
	StageSkills     Stage = "skills"
	StageFiles      Stage = "files"
)

// StageStatus is the typed outcome of a single stage.
type StageStatus string

const (
	StageWritten StageStatus = "written"
	StageSkipped StageStatus = "skipped"
	StageFailed  StageStatus = "failed"
)

// StageResult records what happened at one stage for one record.
type StageResult struct {
	Stage  Stage       `json:"stage"`
	Status StageStatus `json:"status"`
	Reason string      `json:"reason,omitempty"`
}

// Outcome is the per-record verdict reported to the batch run reporter.
type Outcome string

const (
	OutcomeImported Outcome = "imported"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeErrored  Outcome = "errored"
)

// Report is the per-record result of a commit: the overall outcome plus the
// typed outcome of every stage, so callers and tests can assert on stage
// level behavior directly instead of scraping logs.
type Report struct {
	Outcome     Outcome
	Reason      string
	ApplicantID int64
	Created     bool
	Completion  int
	Stages      []StageResult
}

// StageOutcome returns the result for a stage, nil when the stage never ran.
func (r *Report) StageOutcome(stage Stage) *StageResult {
	for i := range r.Stages {
		if r.Stages[i].Stage == stage {
			return &r.Stages[i]
		}
	}
	return nil
}

// RowFailure is one offending row kept for the end-of-run listing.
type RowFailure struct {
	File   string
	Sheet  string
	Row    int
	Reason string
}

// RunReport accumulates per-record outcomes across a bulk run. Counters are
// updated under a lock so rows may be processed concurrently. It holds no
// other state and never persists anything.
type RunReport struct {
	RunID     uuid.UUID
	StartedAt time.Time

	mu        sync.Mutex
	processed int
	imported  int
	skipped   int
	errored   int
	failures  []RowFailure
}

// NewRunReport starts an empty report for a new bulk run.
func NewRunReport() *RunReport {
	return &RunReport{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}
}

// Add records the outcome of one row.
func (r *RunReport) Add(file, sheet string, row int, rep Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.processed++
	switch rep.Outcome {
	case OutcomeImported:
		r.imported++
	case OutcomeSkipped:
		r.skipped++
	case OutcomeErrored:
		r.errored++
		r.failures = append(r.failures, RowFailure{File: file, Sheet: sheet, Row: row, Reason: rep.Reason})
	}
}

// RunSummary is the aggregate view of a finished (or in-flight) run.
type RunSummary struct {
	RunID       uuid.UUID
	Processed   int
	Imported    int
	Skipped     int
	Errored     int
	SuccessRate float64
	Elapsed     time.Duration
	Failures    []RowFailure
}

// Summary snapshots the current counters. Callable mid-run for streaming
// progress.
func (r *RunReport) Summary() RunSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	rate := 0.0
	if r.processed > 0 {
		rate = float64(r.imported) / float64(r.processed) * 100
	}

	failures := make([]RowFailure, len(r.failures))
	copy(failures, r.failures)

	return RunSummary{
		RunID:       r.RunID,
		Processed:   r.processed,
		Imported:    r.imported,
		Skipped:     r.skipped,
		Errored:     r.errored,
		SuccessRate: rate,
		Elapsed:     time.Since(r.StartedAt),
		Failures:    failures,
	}
}

// Print writes the human-readable run summary: the counters table and, when
// rows failed, a per-row reason listing.
func (r *RunReport) Print(w io.Writer) {
	s := r.Summary()

	fmt.Fprintf(w, "\nImport run %s finished in %s\n\n", s.RunID, s.Elapsed.Round(time.Millisecond))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Processed", "Imported", "Skipped", "Errored", "Success Rate"})
	table.Append([]string{
		strconv.Itoa(s.Processed),
		color.GreenString(strconv.Itoa(s.Imported)),
		strconv.Itoa(s.Skipped),
		color.RedString(strconv.Itoa(s.Errored)),
		fmt.Sprintf("%.1f%%", s.SuccessRate),
	})
	table.Render()

	if len(s.Failures) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", color.RedString("Failed rows:"))
	failed := tablewriter.NewWriter(w)
	failed.SetHeader([]string{"File", "Sheet", "Row", "Reason"})
	for _, f := range s.Failures {
		failed.Append([]string{f.File, f.Sheet, strconv.Itoa(f.Row), f.Reason})
	}
	failed.Render()
}
