package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/app/models/dto"
	"github.com/nkumar/talentpool/internal/ingest"
	"github.com/nkumar/talentpool/internal/pkg/apperrors"
)

// memoryApplicantStore is a minimal in-memory ApplicantStore for wiring a
// real engine under the service.
type memoryApplicantStore struct {
	byEmail map[string]*models.Applicant
	nextID  int64
}

func newMemoryApplicantStore() *memoryApplicantStore {
	return &memoryApplicantStore{byEmail: make(map[string]*models.Applicant)}
}

func (s *memoryApplicantStore) FindByEmail(ctx context.Context, email string) (*models.Applicant, error) {
	return s.byEmail[email], nil
}

func (s *memoryApplicantStore) FindByMobile(ctx context.Context, mobile string) (*models.Applicant, error) {
	return nil, nil
}

func (s *memoryApplicantStore) Insert(ctx context.Context, applicant *models.Applicant) (int64, error) {
	s.nextID++
	stored := *applicant
	stored.ID = s.nextID
	if stored.EmailAddress != nil {
		s.byEmail[*stored.EmailAddress] = &stored
	}
	return stored.ID, nil
}

func (s *memoryApplicantStore) Update(ctx context.Context, applicant *models.Applicant) error {
	if applicant.EmailAddress != nil {
		stored := *applicant
		s.byEmail[*stored.EmailAddress] = &stored
	}
	return nil
}

type captureEducationStore struct {
	entries []models.EducationEntry
}

func (s *captureEducationStore) CreateMany(ctx context.Context, entries []models.EducationEntry) error {
	s.entries = append(s.entries, entries...)
	return nil
}

type noopAddressStore struct{}

func (noopAddressStore) Upsert(ctx context.Context, address *models.Address) error { return nil }

type noopExperienceStore struct{}

func (noopExperienceStore) CreateMany(ctx context.Context, entries []models.ExperienceEntry) error {
	return nil
}

type noopSkillStore struct{}

func (noopSkillStore) CreateMany(ctx context.Context, entries []models.SkillEntry) error { return nil }

type noopFileStore struct{}

func (noopFileStore) CreateMany(ctx context.Context, refs []models.FileReference) error { return nil }

func newTestEngine(applicants *memoryApplicantStore, education *captureEducationStore) *ingest.Engine {
	return ingest.New(ingest.Stores{
		Applicants: applicants,
		Addresses:  noopAddressStore{},
		Education:  education,
		Experience: noopExperienceStore{},
		Skills:     noopSkillStore{},
		Files:      noopFileStore{},
	}, zerolog.Nop())
}

func validRequest() *dto.SubmissionRequest {
	return &dto.SubmissionRequest{
		Personal: dto.PersonalStep{
			FullName:     "Asha Rao",
			EmailAddress: "Asha@X.com",
			MobileNumber: "+91 9876543210",
		},
		Education: []dto.EducationStep{
			{Level: "undergraduate", PassingYear: "2022-2026", IsHighest: true},
		},
		Experience: []dto.ExperienceStep{
			{
				CompanyName:    "Acme Systems",
				EmploymentType: "full_time",
				StartDate:      "2021-01-15",
				EndDate:        "2023-07-15",
			},
		},
		Skills: []dto.SkillStep{{Name: "Go", Category: "technical", Proficiency: "advanced"}},
		Files:  []dto.FileStep{{FileType: "resume", FileURL: "https://s.example/r.pdf"}},
	}
}

func TestSubmitHappyPath(t *testing.T) {
	applicants := newMemoryApplicantStore()
	education := &captureEducationStore{}
	svc := NewSubmissionService(newTestEngine(applicants, education), nil, zerolog.Nop())

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Created)
	assert.NotZero(t, resp.ApplicantID)
	assert.Greater(t, resp.CompletionPercentage, 0)

	stored := applicants.byEmail["asha@x.com"]
	require.NotNil(t, stored, "email must be stored canonical")
	assert.Equal(t, "9876543210", *stored.MobileNumber)
	assert.Equal(t, models.StatusSubmitted, stored.Status)

	require.Len(t, education.entries, 1)
	assert.Equal(t, 2022, *education.entries[0].PassingYear)
	assert.True(t, education.entries[0].IsHighest)
}

func TestSubmitResubmissionUpdates(t *testing.T) {
	applicants := newMemoryApplicantStore()
	svc := NewSubmissionService(newTestEngine(applicants, &captureEducationStore{}), nil, zerolog.Nop())

	first, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	again := validRequest()
	again.Personal.CityCurrentLocation = "Pune"
	second, err := svc.Submit(context.Background(), again)
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.ApplicantID, second.ApplicantID)
	assert.Equal(t, "Pune", *applicants.byEmail["asha@x.com"].CityCurrentLocation)
}

func TestSubmitRejectsTwoHighestEducation(t *testing.T) {
	svc := NewSubmissionService(newTestEngine(newMemoryApplicantStore(), &captureEducationStore{}), nil, zerolog.Nop())

	req := validRequest()
	req.Education = append(req.Education, dto.EducationStep{Level: "postgraduate", IsHighest: true})

	_, err := svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSubmitRejectsBadExperienceDates(t *testing.T) {
	svc := NewSubmissionService(newTestEngine(newMemoryApplicantStore(), &captureEducationStore{}), nil, zerolog.Nop())

	req := validRequest()
	req.Experience[0].EndDate = "2020-01-01"

	_, err := svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSubmitRejectsMissingIdentifiers(t *testing.T) {
	svc := NewSubmissionService(newTestEngine(newMemoryApplicantStore(), &captureEducationStore{}), nil, zerolog.Nop())

	req := validRequest()
	req.Personal.EmailAddress = ""
	req.Personal.MobileNumber = ""

	_, err := svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrMissingIdentifier)
}

func TestBuildExperienceEntryDerivesMonths(t *testing.T) {
	entry, err := buildExperienceEntry(dto.ExperienceStep{
		CompanyName:    "Acme",
		EmploymentType: "full_time",
		StartDate:      "2021-01-15",
		EndDate:        "2023-07-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, entry.TotalMonths)
	require.NotNil(t, entry.EndDate)
}

func TestBuildExperienceEntryCurrentRunsToNow(t *testing.T) {
	start := time.Now().AddDate(-1, 0, 0).Format(dateLayout)
	entry, err := buildExperienceEntry(dto.ExperienceStep{
		CompanyName:    "Acme",
		EmploymentType: "full_time",
		StartDate:      start,
		IsCurrent:      true,
	})
	require.NoError(t, err)
	assert.Nil(t, entry.EndDate)
	assert.Equal(t, 12, entry.TotalMonths)
}

func TestMonthsBetween(t *testing.T) {
	d := func(s string) time.Time {
		v, err := time.Parse(dateLayout, s)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, 0, monthsBetween(d("2023-01-10"), d("2023-01-20")))
	assert.Equal(t, 1, monthsBetween(d("2023-01-10"), d("2023-02-10")))
	assert.Equal(t, 0, monthsBetween(d("2023-01-20"), d("2023-02-10")))
	assert.Equal(t, 12, monthsBetween(d("2022-03-01"), d("2023-03-01")))
	assert.Equal(t, 0, monthsBetween(d("2023-03-01"), d("2023-02-01")))
}
