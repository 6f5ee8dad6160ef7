package ingest

import (
	"context"

	"github.com/nkumar/talentpool/internal/app/models"
)

// ApplicantStore is the engine's view of the canonical core table. Find
// methods return (nil, nil) when no record matches; errors are reserved for
// store failures. Insert must return a duplicate natural-key rejection as an
// error wrapping apperrors.ErrDuplicateKey so the orchestrator can convert
// the conflict into an update.
type ApplicantStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Applicant, error)
	FindByMobile(ctx context.Context, mobile string) (*models.Applicant, error)
	Insert(ctx context.Context, applicant *models.Applicant) (int64, error)
	Update(ctx context.Context, applicant *models.Applicant) error
}

// AddressStore persists the one-to-one address extension. Upsert replaces an
// existing row for the same applicant.
type AddressStore interface {
	Upsert(ctx context.Context, address *models.Address) error
}

// EducationStore appends education entries for a resolved applicant.
type EducationStore interface {
	CreateMany(ctx context.Context, entries []models.EducationEntry) error
}

// ExperienceStore appends experience entries for a resolved applicant.
type ExperienceStore interface {
	CreateMany(ctx context.Context, entries []models.ExperienceEntry) error
}

// SkillStore appends skill entries for a resolved applicant.
type SkillStore interface {
	CreateMany(ctx context.Context, entries []models.SkillEntry) error
}

// FileStore records pointer rows for documents already deposited in external
// object storage.
type FileStore interface {
	CreateMany(ctx context.Context, refs []models.FileReference) error
}

// Stores bundles every store the persistence orchestrator writes to.
type Stores struct {
	Applicants ApplicantStore
	Addresses  AddressStore
	Education  EducationStore
	Experience ExperienceStore
	Skills     SkillStore
	Files      FileStore
}
