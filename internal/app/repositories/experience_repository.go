package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/db"
)

// ExperienceRepository handles experience entry database operations
type ExperienceRepository struct {
	db *pgxpool.Pool
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// CreateMany appends experience entries for an applicant in one transaction
func (r *ExperienceRepository) CreateMany(ctx context.Context, entries []models.ExperienceEntry) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for i := range entries {
			e := &entries[i]
			err := tx.QueryRow(ctx, `
				INSERT INTO experience_entries (
					applicant_id, company_name, designation, employment_type,
					start_date, end_date, is_current, total_months,
					annual_compensation, notice_period_days)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id`,
				e.ApplicantID, e.CompanyName, e.Designation, e.EmploymentType,
				e.StartDate, e.EndDate, e.IsCurrent, e.TotalMonths,
				e.AnnualCompensation, e.NoticePeriodDays).Scan(&e.ID)
			if err != nil {
				return fmt.Errorf("error creating experience entry: %w", err)
			}
		}
		return nil
	})
}
