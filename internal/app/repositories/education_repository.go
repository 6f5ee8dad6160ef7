package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/db"
)

// EducationRepository handles education entry database operations
type EducationRepository struct {
	db *pgxpool.Pool
}

// NewEducationRepository creates a new EducationRepository
func NewEducationRepository(db *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{db: db}
}

// CreateMany appends education entries for an applicant in one transaction
func (r *EducationRepository) CreateMany(ctx context.Context, entries []models.EducationEntry) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for i := range entries {
			e := &entries[i]
			err := tx.QueryRow(ctx, `
				INSERT INTO education_entries (
					applicant_id, level, board_id, institution_id, degree_id, course_id,
					institution_name, passing_year, percentage_grade, is_highest)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id`,
				e.ApplicantID, e.Level, e.BoardID, e.InstitutionID, e.DegreeID, e.CourseID,
				e.InstitutionName, e.PassingYear, e.PercentageGrade, e.IsHighest).Scan(&e.ID)
			if err != nil {
				return fmt.Errorf("error creating education entry: %w", err)
			}
		}
		return nil
	})
}

// ListByApplicantID retrieves all education entries for an applicant
func (r *EducationRepository) ListByApplicantID(ctx context.Context, applicantID int64) ([]models.EducationEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, applicant_id, level, board_id, institution_id, degree_id, course_id,
			institution_name, passing_year, percentage_grade, is_highest, created_at
		FROM education_entries
		WHERE applicant_id = $1
		ORDER BY id`,
		applicantID)
	if err != nil {
		return nil, fmt.Errorf("error listing education entries: %w", err)
	}
	defer rows.Close()

	var entries []models.EducationEntry
	for rows.Next() {
		var e models.EducationEntry
		if err := rows.Scan(
			&e.ID, &e.ApplicantID, &e.Level, &e.BoardID, &e.InstitutionID, &e.DegreeID, &e.CourseID,
			&e.InstitutionName, &e.PassingYear, &e.PercentageGrade, &e.IsHighest, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning education entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
