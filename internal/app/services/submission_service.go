package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/app/models/dto"
	"github.com/nkumar/talentpool/internal/app/repositories"
	"github.com/nkumar/talentpool/internal/ingest"
	"github.com/nkumar/talentpool/internal/pkg/apperrors"
)

const dateLayout = "2006-01-02"

// SubmissionService defines the interface for guided-submission operations
type SubmissionService interface {
	Submit(ctx context.Context, req *dto.SubmissionRequest) (*dto.SubmissionResponse, error)
	GetApplicant(ctx context.Context, id int64) (*models.Applicant, error)
}

// submissionServiceImpl implements SubmissionService
type submissionServiceImpl struct {
	engine        *ingest.Engine
	applicantRepo repositories.IApplicantRepository
	logger        zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	engine *ingest.Engine,
	applicantRepo repositories.IApplicantRepository,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		engine:        engine,
		applicantRepo: applicantRepo,
		logger:        logger,
	}
}

// Submit validates the business rules the engine itself does not enforce,
// builds a candidate from the pre-partitioned payload and commits it. The
// submission fails visibly only when the core write fails; dependent stage
// failures are reported in the response.
func (s *submissionServiceImpl) Submit(ctx context.Context, req *dto.SubmissionRequest) (*dto.SubmissionResponse, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	cand, err := buildCandidate(req)
	if err != nil {
		return nil, err
	}

	rep, err := s.engine.CommitCandidate(ctx, cand)
	if err != nil {
		s.logger.Error().Err(err).Msg("guided submission failed")
		return nil, err
	}

	s.logger.Info().
		Int64("applicantID", rep.ApplicantID).
		Bool("created", rep.Created).
		Int("completion", rep.Completion).
		Msg("guided submission committed")

	return dto.NewSubmissionResponse(rep), nil
}

// GetApplicant retrieves a stored core record by ID
func (s *submissionServiceImpl) GetApplicant(ctx context.Context, id int64) (*models.Applicant, error) {
	return s.applicantRepo.GetByID(ctx, id)
}

// validateSubmission enforces the invariants the guided caller owns: at most
// one highest education entry, and closed experience entries with an end
// date after the start date.
func validateSubmission(req *dto.SubmissionRequest) error {
	highest := 0
	for _, e := range req.Education {
		if e.IsHighest {
			highest++
		}
	}
	if highest > 1 {
		return apperrors.NewValidationError("at most one education entry may be marked highest")
	}

	for i, e := range req.Experience {
		if e.IsCurrent {
			continue
		}
		if e.EndDate == "" {
			return apperrors.NewValidationError(fmt.Sprintf("experience[%d]: end date is required when not current", i))
		}
		start, err := time.Parse(dateLayout, e.StartDate)
		if err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("experience[%d]: invalid start date", i))
		}
		end, err := time.Parse(dateLayout, e.EndDate)
		if err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("experience[%d]: invalid end date", i))
		}
		if !end.After(start) {
			return apperrors.NewValidationError(fmt.Sprintf("experience[%d]: end date must be after start date", i))
		}
	}

	return nil
}

// buildCandidate maps the validated payload onto an engine candidate,
// running the same cleaners the bulk path uses so both producers agree on
// canonical forms.
func buildCandidate(req *dto.SubmissionRequest) (*ingest.Candidate, error) {
	cand := &ingest.Candidate{}
	a := &cand.Applicant

	p := req.Personal
	a.FullName = ingest.CleanText(p.FullName)
	a.EmailAddress = ingest.NormalizeEmail(p.EmailAddress)
	a.MobileNumber = ingest.NormalizeMobile(p.MobileNumber)
	a.CityCurrentLocation = ingest.CleanText(p.CityCurrentLocation)
	a.PositionApplied = ingest.CleanText(p.PositionApplied)
	a.CommunicationRating = p.CommunicationRating
	a.HighestQualification = ingest.CleanText(p.HighestQualification)
	a.BoardUniversity = ingest.CleanText(p.BoardUniversity)
	a.PassingYear = ingest.CleanYear(p.PassingYear)
	a.PercentageGrade = ingest.CleanText(p.PercentageGrade)
	a.ExperienceSummary = ingest.CleanText(p.ExperienceSummary)
	a.Status = models.StatusSubmitted

	if addr := req.Address; addr != nil {
		cand.Address = &models.Address{
			StateID:     addr.StateID,
			DistrictID:  addr.DistrictID,
			CityID:      addr.CityID,
			AddressLine: ingest.CleanText(addr.AddressLine),
			Landmark:    ingest.CleanText(addr.Landmark),
			PostalCode:  ingest.CleanText(addr.PostalCode),
		}
	}

	for _, e := range req.Education {
		cand.Education = append(cand.Education, models.EducationEntry{
			Level:           models.EducationLevel(e.Level),
			BoardID:         e.BoardID,
			InstitutionID:   e.InstitutionID,
			DegreeID:        e.DegreeID,
			CourseID:        e.CourseID,
			InstitutionName: ingest.CleanText(e.InstitutionName),
			PassingYear:     ingest.CleanYear(e.PassingYear),
			PercentageGrade: ingest.CleanText(e.PercentageGrade),
			IsHighest:       e.IsHighest,
		})
	}

	for i, e := range req.Experience {
		entry, err := buildExperienceEntry(e)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("experience[%d]: %v", i, err))
		}
		cand.Experience = append(cand.Experience, entry)
	}

	for _, sk := range req.Skills {
		entry := models.SkillEntry{
			Name:     sk.Name,
			Category: models.SkillCategory(sk.Category),
		}
		if sk.Proficiency != "" {
			p := models.SkillProficiency(sk.Proficiency)
			entry.Proficiency = &p
		}
		cand.Skills = append(cand.Skills, entry)
	}

	for _, f := range req.Files {
		cand.Files = append(cand.Files, models.FileReference{
			FileType: models.FileType(f.FileType),
			FileURL:  f.FileURL,
		})
	}

	return cand, nil
}

// buildExperienceEntry parses dates and derives total months. For current
// engagements the span runs to now and the end date stays null.
func buildExperienceEntry(e dto.ExperienceStep) (models.ExperienceEntry, error) {
	start, err := time.Parse(dateLayout, e.StartDate)
	if err != nil {
		return models.ExperienceEntry{}, fmt.Errorf("invalid start date %q", e.StartDate)
	}

	entry := models.ExperienceEntry{
		CompanyName:        e.CompanyName,
		Designation:        ingest.CleanText(e.Designation),
		EmploymentType:     models.EmploymentType(e.EmploymentType),
		StartDate:          start,
		IsCurrent:          e.IsCurrent,
		AnnualCompensation: e.AnnualCompensation,
		NoticePeriodDays:   e.NoticePeriodDays,
	}

	until := time.Now()
	if !e.IsCurrent {
		end, err := time.Parse(dateLayout, e.EndDate)
		if err != nil {
			return models.ExperienceEntry{}, fmt.Errorf("invalid end date %q", e.EndDate)
		}
		entry.EndDate = &end
		until = end
	}

	entry.TotalMonths = monthsBetween(start, until)
	return entry, nil
}

// monthsBetween counts whole calendar months between two dates, never
// negative.
func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
