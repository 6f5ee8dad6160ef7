package ingest

import (
	"context"
	"fmt"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/pkg/apperrors"
)

// fakeApplicantStore is an in-memory ApplicantStore with the same duplicate
// key contract as the real repository.
type fakeApplicantStore struct {
	byEmail  map[string]*models.Applicant
	byMobile map[string]*models.Applicant
	nextID   int64

	lookups  int
	inserted []*models.Applicant
	updated  []*models.Applicant

	findErr   error
	insertErr error
	updateErr error
}

func newFakeApplicantStore() *fakeApplicantStore {
	return &fakeApplicantStore{
		byEmail:  make(map[string]*models.Applicant),
		byMobile: make(map[string]*models.Applicant),
	}
}

func (s *fakeApplicantStore) seed(a *models.Applicant) *models.Applicant {
	s.nextID++
	a.ID = s.nextID
	if a.EmailAddress != nil {
		s.byEmail[*a.EmailAddress] = a
	}
	if a.MobileNumber != nil {
		s.byMobile[*a.MobileNumber] = a
	}
	return a
}

func (s *fakeApplicantStore) FindByEmail(ctx context.Context, email string) (*models.Applicant, error) {
	s.lookups++
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.byEmail[email], nil
}

func (s *fakeApplicantStore) FindByMobile(ctx context.Context, mobile string) (*models.Applicant, error) {
	s.lookups++
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.byMobile[mobile], nil
}

func (s *fakeApplicantStore) Insert(ctx context.Context, applicant *models.Applicant) (int64, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	if applicant.EmailAddress != nil {
		if _, exists := s.byEmail[*applicant.EmailAddress]; exists {
			return 0, fmt.Errorf("applicant already exists: %w", apperrors.ErrDuplicateKey)
		}
	}
	stored := *applicant
	s.seed(&stored)
	s.inserted = append(s.inserted, &stored)
	return stored.ID, nil
}

func (s *fakeApplicantStore) Update(ctx context.Context, applicant *models.Applicant) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	stored := *applicant
	s.updated = append(s.updated, &stored)
	if stored.EmailAddress != nil {
		s.byEmail[*stored.EmailAddress] = &stored
	}
	if stored.MobileNumber != nil {
		s.byMobile[*stored.MobileNumber] = &stored
	}
	return nil
}

type fakeAddressStore struct {
	err     error
	upserts []*models.Address
}

func (s *fakeAddressStore) Upsert(ctx context.Context, address *models.Address) error {
	if s.err != nil {
		return s.err
	}
	s.upserts = append(s.upserts, address)
	return nil
}

type fakeEducationStore struct {
	err     error
	entries []models.EducationEntry
}

func (s *fakeEducationStore) CreateMany(ctx context.Context, entries []models.EducationEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entries...)
	return nil
}

type fakeExperienceStore struct {
	err     error
	entries []models.ExperienceEntry
}

func (s *fakeExperienceStore) CreateMany(ctx context.Context, entries []models.ExperienceEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entries...)
	return nil
}

type fakeSkillStore struct {
	err     error
	entries []models.SkillEntry
}

func (s *fakeSkillStore) CreateMany(ctx context.Context, entries []models.SkillEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entries...)
	return nil
}

type fakeFileStore struct {
	err  error
	refs []models.FileReference
}

func (s *fakeFileStore) CreateMany(ctx context.Context, refs []models.FileReference) error {
	if s.err != nil {
		return s.err
	}
	s.refs = append(s.refs, refs...)
	return nil
}

// storesFixture bundles the fakes behind one Stores value.
type storesFixture struct {
	applicants *fakeApplicantStore
	addresses  *fakeAddressStore
	education  *fakeEducationStore
	experience *fakeExperienceStore
	skills     *fakeSkillStore
	files      *fakeFileStore
}

func newStoresFixture() *storesFixture {
	return &storesFixture{
		applicants: newFakeApplicantStore(),
		addresses:  &fakeAddressStore{},
		education:  &fakeEducationStore{},
		experience: &fakeExperienceStore{},
		skills:     &fakeSkillStore{},
		files:      &fakeFileStore{},
	}
}

func (f *storesFixture) stores() Stores {
	return Stores{
		Applicants: f.applicants,
		Addresses:  f.addresses,
		Education:  f.education,
		Experience: f.experience,
		Skills:     f.skills,
		Files:      f.files,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
