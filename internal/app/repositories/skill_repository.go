package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/db"
)

// SkillRepository handles skill entry database operations
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// CreateMany appends skill entries for an applicant in one transaction
func (r *SkillRepository) CreateMany(ctx context.Context, entries []models.SkillEntry) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for i := range entries {
			e := &entries[i]
			err := tx.QueryRow(ctx, `
				INSERT INTO skill_entries (applicant_id, name, category, proficiency)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				e.ApplicantID, e.Name, e.Category, e.Proficiency).Scan(&e.ID)
			if err != nil {
				return fmt.Errorf("error creating skill entry: %w", err)
			}
		}
		return nil
	})
}
