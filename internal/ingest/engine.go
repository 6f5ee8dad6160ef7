package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nkumar/talentpool/internal/pkg/apperrors"
)

// Engine ties the pipeline together for both producers of applicant records:
// the bulk tabular path feeds raw rows through ProcessRecord, the guided
// submission path hands pre-built candidates to CommitCandidate.
type Engine struct {
	normalizer   *Normalizer
	resolver     *Resolver
	orchestrator *Orchestrator
	logger       zerolog.Logger
}

// New creates an Engine over the given stores.
func New(stores Stores, logger zerolog.Logger) *Engine {
	return &Engine{
		normalizer:   NewNormalizer(),
		resolver:     NewResolver(stores.Applicants),
		orchestrator: NewOrchestrator(stores, logger),
		logger:       logger,
	}
}

// ProcessRecord runs one raw row through normalize, clean, resolve and
// commit. It never returns an error: per-row problems become the row's
// Report so a bulk run always completes.
func (e *Engine) ProcessRecord(ctx context.Context, rec RawRecord, dryRun bool) Report {
	fields := e.normalizer.Normalize(rec)
	cand := BuildCandidate(fields, rec)

	res, err := e.resolver.Resolve(ctx, cand)
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingIdentifier) {
			return Report{Outcome: OutcomeErrored, Reason: "missing email and phone"}
		}
		return Report{Outcome: OutcomeErrored, Reason: fmt.Sprintf("applicant error: %v", err)}
	}

	if dryRun {
		return Report{
			Outcome:    OutcomeSkipped,
			Reason:     fmt.Sprintf("dry run: would %s", res.Decision),
			Completion: CompletionScore(cand),
		}
	}

	return e.orchestrator.Commit(ctx, cand, res)
}

// CommitCandidate resolves and commits an already-segmented candidate from
// the guided submission path. Unlike the bulk path, failures of the
// mandatory stage surface as errors so the caller can fail the submission
// visibly.
func (e *Engine) CommitCandidate(ctx context.Context, cand *Candidate) (Report, error) {
	res, err := e.resolver.Resolve(ctx, cand)
	if err != nil {
		return Report{Outcome: OutcomeErrored, Reason: err.Error()}, err
	}

	rep := e.orchestrator.Commit(ctx, cand, res)
	if rep.Outcome == OutcomeErrored {
		return rep, apperrors.NewCustomError(apperrors.ErrCoreWriteFailed, rep.Reason)
	}
	return rep, nil
}
