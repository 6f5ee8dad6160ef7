package ingest

import (
	"context"
	"fmt"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/pkg/apperrors"
)

// Decision is the identity resolver's verdict for a candidate.
type Decision int

const (
	DecisionInsert Decision = iota
	DecisionUpdate
)

func (d Decision) String() string {
	if d == DecisionUpdate {
		return "update"
	}
	return "insert"
}

// Resolution carries the decision and, for updates, the existing record the
// candidate resolved to.
type Resolution struct {
	Decision Decision
	Existing *models.Applicant
}

// Resolver decides whether a candidate is a new person or an existing one,
// by natural key. It performs exactly one store lookup per candidate.
type Resolver struct {
	store ApplicantStore
}

// NewResolver creates a new Resolver over the given applicant store.
func NewResolver(store ApplicantStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve looks up the candidate's natural key: normalized email when
// present, otherwise normalized mobile. Candidates with neither are rejected
// with apperrors.ErrMissingIdentifier and never reach persistence.
func (r *Resolver) Resolve(ctx context.Context, cand *Candidate) (*Resolution, error) {
	a := &cand.Applicant

	var (
		existing *models.Applicant
		err      error
	)
	switch {
	case a.EmailAddress != nil:
		existing, err = r.store.FindByEmail(ctx, *a.EmailAddress)
	case a.MobileNumber != nil:
		existing, err = r.store.FindByMobile(ctx, *a.MobileNumber)
	default:
		return nil, apperrors.ErrMissingIdentifier
	}
	if err != nil {
		return nil, fmt.Errorf("applicant lookup failed: %w", err)
	}

	if existing == nil {
		return &Resolution{Decision: DecisionInsert}, nil
	}
	return &Resolution{Decision: DecisionUpdate, Existing: existing}, nil
}

// Merge overlays the candidate's non-null canonical fields onto the existing
// record, candidate winning on conflict. Lifecycle fields (status,
// verification flags) stay as stored: re-ingestion refreshes profile data, it
// does not reset where the applicant is in the pipeline.
func Merge(existing *models.Applicant, cand *models.Applicant) *models.Applicant {
	merged := *existing

	if cand.FullName != nil {
		merged.FullName = cand.FullName
	}
	if cand.EmailAddress != nil {
		merged.EmailAddress = cand.EmailAddress
	}
	if cand.MobileNumber != nil {
		merged.MobileNumber = cand.MobileNumber
	}
	if cand.CityCurrentLocation != nil {
		merged.CityCurrentLocation = cand.CityCurrentLocation
	}
	if cand.PositionApplied != nil {
		merged.PositionApplied = cand.PositionApplied
	}
	if cand.CommunicationRating != nil {
		merged.CommunicationRating = cand.CommunicationRating
	}
	if cand.HighestQualification != nil {
		merged.HighestQualification = cand.HighestQualification
	}
	if cand.BoardUniversity != nil {
		merged.BoardUniversity = cand.BoardUniversity
	}
	if cand.PassingYear != nil {
		merged.PassingYear = cand.PassingYear
	}
	if cand.PercentageGrade != nil {
		merged.PercentageGrade = cand.PercentageGrade
	}
	if cand.ExperienceSummary != nil {
		merged.ExperienceSummary = cand.ExperienceSummary
	}

	return &merged
}
