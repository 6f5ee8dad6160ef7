package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/db"
)

// FileRepository handles file reference database operations. Only pointer
// rows live here; the binaries sit in external object storage.
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// CreateMany records file references for an applicant in one transaction
func (r *FileRepository) CreateMany(ctx context.Context, refs []models.FileReference) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for i := range refs {
			f := &refs[i]
			err := tx.QueryRow(ctx, `
				INSERT INTO applicant_files (applicant_id, file_type, file_url)
				VALUES ($1, $2, $3)
				RETURNING id`,
				f.ApplicantID, f.FileType, f.FileURL).Scan(&f.ID)
			if err != nil {
				return fmt.Errorf("error creating file reference: %w", err)
			}
		}
		return nil
	})
}
