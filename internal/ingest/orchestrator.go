package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/pkg/apperrors"
)

// Orchestrator commits a resolved candidate to the canonical store. The core
// applicant write is mandatory; every dependent stage after it is best
// effort, in a fixed order. The resulting multi-entity commit is deliberately
// non-atomic: the core identity is the unit of value, enrichment data must
// never sink an otherwise-valid applicant.
type Orchestrator struct {
	stores Stores
	logger zerolog.Logger
}

// NewOrchestrator creates a new Orchestrator over the given stores.
func NewOrchestrator(stores Stores, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{stores: stores, logger: logger}
}

// Commit executes the staged write policy for one candidate. The completion
// score is computed on the post-merge record and attached before the core
// write. A failed core write aborts the record; dependent failures are
// logged, recorded as stage results, and do not change the outcome.
func (o *Orchestrator) Commit(ctx context.Context, cand *Candidate, res *Resolution) Report {
	target := cand.Applicant
	if res.Decision == DecisionUpdate {
		target = *Merge(res.Existing, &cand.Applicant)
	}

	scored := *cand
	scored.Applicant = target
	target.CompletionPercentage = CompletionScore(&scored)

	rep := Report{Completion: target.CompletionPercentage}

	id, created, err := o.writeCore(ctx, &target, res)
	if err != nil {
		o.logger.Error().Err(err).Str("decision", res.Decision.String()).Msg("core applicant write failed")
		rep.Outcome = OutcomeErrored
		rep.Reason = fmt.Sprintf("applicant error: %v", err)
		rep.Stages = append(rep.Stages, StageResult{Stage: StageCore, Status: StageFailed, Reason: err.Error()})
		return rep
	}

	rep.Outcome = OutcomeImported
	rep.ApplicantID = id
	rep.Created = created
	rep.Stages = append(rep.Stages, StageResult{Stage: StageCore, Status: StageWritten})

	rep.Stages = append(rep.Stages, o.writeAddress(ctx, id, cand.Address))
	rep.Stages = append(rep.Stages, o.writeEducation(ctx, id, cand.Education))
	rep.Stages = append(rep.Stages, o.writeExperience(ctx, id, cand.Experience))
	rep.Stages = append(rep.Stages, o.writeSkills(ctx, id, cand.Skills))
	rep.Stages = append(rep.Stages, o.writeFiles(ctx, id, cand.Files))

	return rep
}

// writeCore performs the mandatory stage. An insert that loses a same-key
// race gets one retry as an update against the record that won; a conflict
// that still cannot be resolved surfaces as a core write failure. The bool
// reports whether a new record came into existence.
func (o *Orchestrator) writeCore(ctx context.Context, target *models.Applicant, res *Resolution) (int64, bool, error) {
	if res.Decision == DecisionUpdate {
		target.ID = res.Existing.ID
		if err := o.stores.Applicants.Update(ctx, target); err != nil {
			return 0, false, err
		}
		return target.ID, false, nil
	}

	id, err := o.stores.Applicants.Insert(ctx, target)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicateKey) {
		return 0, false, err
	}

	o.logger.Warn().Msg("insert lost natural-key race, retrying as update")
	resolver := NewResolver(o.stores.Applicants)
	retry, rerr := resolver.Resolve(ctx, &Candidate{Applicant: *target})
	if rerr != nil || retry.Decision != DecisionUpdate {
		return 0, false, fmt.Errorf("duplicate key not convertible to update: %w", err)
	}

	merged := Merge(retry.Existing, target)
	merged.ID = retry.Existing.ID
	if uerr := o.stores.Applicants.Update(ctx, merged); uerr != nil {
		return 0, false, uerr
	}
	*target = *merged
	return merged.ID, false, nil
}

func (o *Orchestrator) writeAddress(ctx context.Context, applicantID int64, address *models.Address) StageResult {
	if address == nil {
		return StageResult{Stage: StageAddress, Status: StageSkipped}
	}
	address.ApplicantID = applicantID
	if err := o.stores.Addresses.Upsert(ctx, address); err != nil {
		o.logger.Warn().Err(err).Int64("applicantID", applicantID).Msg("address write failed")
		return StageResult{Stage: StageAddress, Status: StageFailed, Reason: fmt.Sprintf("address error: %v", err)}
	}
	return StageResult{Stage: StageAddress, Status: StageWritten}
}

func (o *Orchestrator) writeEducation(ctx context.Context, applicantID int64, entries []models.EducationEntry) StageResult {
	if len(entries) == 0 {
		return StageResult{Stage: StageEducation, Status: StageSkipped}
	}
	for i := range entries {
		entries[i].ApplicantID = applicantID
	}
	if err := o.stores.Education.CreateMany(ctx, entries); err != nil {
		o.logger.Warn().Err(err).Int64("applicantID", applicantID).Msg("education write failed")
		return StageResult{Stage: StageEducation, Status: StageFailed, Reason: fmt.Sprintf("education error: %v", err)}
	}
	return StageResult{Stage: StageEducation, Status: StageWritten}
}

func (o *Orchestrator) writeExperience(ctx context.Context, applicantID int64, entries []models.ExperienceEntry) StageResult {
	if len(entries) == 0 {
		return StageResult{Stage: StageExperience, Status: StageSkipped}
	}
	for i := range entries {
		entries[i].ApplicantID = applicantID
	}
	if err := o.stores.Experience.CreateMany(ctx, entries); err != nil {
		o.logger.Warn().Err(err).Int64("applicantID", applicantID).Msg("experience write failed")
		return StageResult{Stage: StageExperience, Status: StageFailed, Reason: fmt.Sprintf("experience error: %v", err)}
	}
	return StageResult{Stage: StageExperience, Status: StageWritten}
}

func (o *Orchestrator) writeSkills(ctx context.Context, applicantID int64, entries []models.SkillEntry) StageResult {
	if len(entries) == 0 {
		return StageResult{Stage: StageSkills, Status: StageSkipped}
	}
	for i := range entries {
		entries[i].ApplicantID = applicantID
	}
	if err := o.stores.Skills.CreateMany(ctx, entries); err != nil {
		o.logger.Warn().Err(err).Int64("applicantID", applicantID).Msg("skills write failed")
		return StageResult{Stage: StageSkills, Status: StageFailed, Reason: fmt.Sprintf("skills error: %v", err)}
	}
	return StageResult{Stage: StageSkills, Status: StageWritten}
}

func (o *Orchestrator) writeFiles(ctx context.Context, applicantID int64, refs []models.FileReference) StageResult {
	if len(refs) == 0 {
		return StageResult{Stage: StageFiles, Status: StageSkipped}
	}
	for i := range refs {
		refs[i].ApplicantID = applicantID
	}
	if err := o.stores.Files.CreateMany(ctx, refs); err != nil {
		o.logger.Warn().Err(err).Int64("applicantID", applicantID).Msg("file reference write failed")
		return StageResult{Stage: StageFiles, Status: StageFailed, Reason: fmt.Sprintf("files error: %v", err)}
	}
	return StageResult{Stage: StageFiles, Status: StageWritten}
}
