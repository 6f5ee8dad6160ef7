package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkumar/talentpool/internal/ingest"
)

// Repositories is the container for all repositories
type Repositories struct {
	ApplicantRepository  *ApplicantRepository
	AddressRepository    *AddressRepository
	EducationRepository  *EducationRepository
	ExperienceRepository *ExperienceRepository
	SkillRepository      *SkillRepository
	FileRepository       *FileRepository
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ApplicantRepository:  NewApplicantRepository(db),
		AddressRepository:    NewAddressRepository(db),
		EducationRepository:  NewEducationRepository(db),
		ExperienceRepository: NewExperienceRepository(db),
		SkillRepository:      NewSkillRepository(db),
		FileRepository:       NewFileRepository(db),
	}
}

// Stores adapts the repositories to the ingestion engine's store bundle
func (r *Repositories) Stores() ingest.Stores {
	return ingest.Stores{
		Applicants: r.ApplicantRepository,
		Addresses:  r.AddressRepository,
		Education:  r.EducationRepository,
		Experience: r.ExperienceRepository,
		Skills:     r.SkillRepository,
		Files:      r.FileRepository,
	}
}
