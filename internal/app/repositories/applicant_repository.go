package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/pkg/apperrors"
	"github.com/nkumar/talentpool/internal/pkg/dberrors"
)

// IApplicantRepository defines the interface for applicant database operations
type IApplicantRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Applicant, error)
	FindByMobile(ctx context.Context, mobile string) (*models.Applicant, error)
	Insert(ctx context.Context, applicant *models.Applicant) (int64, error)
	Update(ctx context.Context, applicant *models.Applicant) error
	GetByID(ctx context.Context, id int64) (*models.Applicant, error)
}

// ApplicantRepository handles applicant database operations
type ApplicantRepository struct {
	db *pgxpool.Pool
}

// NewApplicantRepository creates a new ApplicantRepository
func NewApplicantRepository(db *pgxpool.Pool) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

const applicantColumns = `
	id, full_name, email_address, mobile_number, city_current_location,
	position_applied, communication_rating, highest_qualification,
	board_university, passing_year, percentage_grade, experience_summary,
	status, email_verified, mobile_verified, completion_percentage,
	created_at, updated_at`

func scanApplicant(row pgx.Row) (*models.Applicant, error) {
	a := &models.Applicant{}
	err := row.Scan(
		&a.ID, &a.FullName, &a.EmailAddress, &a.MobileNumber, &a.CityCurrentLocation,
		&a.PositionApplied, &a.CommunicationRating, &a.HighestQualification,
		&a.BoardUniversity, &a.PassingYear, &a.PercentageGrade, &a.ExperienceSummary,
		&a.Status, &a.EmailVerified, &a.MobileVerified, &a.CompletionPercentage,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindByEmail retrieves an applicant by normalized email address. Returns
// (nil, nil) when no record matches.
func (r *ApplicantRepository) FindByEmail(ctx context.Context, email string) (*models.Applicant, error) {
	applicant, err := scanApplicant(r.db.QueryRow(ctx, `
		SELECT `+applicantColumns+`
		FROM applicants
		WHERE lower(email_address) = lower($1)`,
		email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding applicant by email: %w", err)
	}
	return applicant, nil
}

// FindByMobile retrieves an applicant by normalized mobile number. Returns
// (nil, nil) when no record matches.
func (r *ApplicantRepository) FindByMobile(ctx context.Context, mobile string) (*models.Applicant, error) {
	applicant, err := scanApplicant(r.db.QueryRow(ctx, `
		SELECT `+applicantColumns+`
		FROM applicants
		WHERE mobile_number = $1`,
		mobile))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding applicant by mobile: %w", err)
	}
	return applicant, nil
}

// GetByID retrieves an applicant by ID
func (r *ApplicantRepository) GetByID(ctx context.Context, id int64) (*models.Applicant, error) {
	applicant, err := scanApplicant(r.db.QueryRow(ctx, `
		SELECT `+applicantColumns+`
		FROM applicants
		WHERE id = $1`,
		id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrApplicantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding applicant: %w", err)
	}
	return applicant, nil
}

// Insert creates a new applicant. A natural-key collision surfaces as an
// error wrapping apperrors.ErrDuplicateKey so the caller can retry as an
// update.
func (r *ApplicantRepository) Insert(ctx context.Context, applicant *models.Applicant) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO applicants (
			full_name, email_address, mobile_number, city_current_location,
			position_applied, communication_rating, highest_qualification,
			board_university, passing_year, percentage_grade, experience_summary,
			status, email_verified, mobile_verified, completion_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		applicant.FullName, applicant.EmailAddress, applicant.MobileNumber, applicant.CityCurrentLocation,
		applicant.PositionApplied, applicant.CommunicationRating, applicant.HighestQualification,
		applicant.BoardUniversity, applicant.PassingYear, applicant.PercentageGrade, applicant.ExperienceSummary,
		applicant.Status, applicant.EmailVerified, applicant.MobileVerified, applicant.CompletionPercentage).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, fmt.Errorf("applicant already exists: %w", apperrors.ErrDuplicateKey)
		}
		return 0, fmt.Errorf("error creating applicant: %w", err)
	}

	applicant.ID = id
	return id, nil
}

// Update rewrites the canonical profile fields of an existing applicant
func (r *ApplicantRepository) Update(ctx context.Context, applicant *models.Applicant) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE applicants
		SET full_name = $1, email_address = $2, mobile_number = $3,
			city_current_location = $4, position_applied = $5,
			communication_rating = $6, highest_qualification = $7,
			board_university = $8, passing_year = $9, percentage_grade = $10,
			experience_summary = $11, completion_percentage = $12,
			updated_at = now()
		WHERE id = $13`,
		applicant.FullName, applicant.EmailAddress, applicant.MobileNumber,
		applicant.CityCurrentLocation, applicant.PositionApplied,
		applicant.CommunicationRating, applicant.HighestQualification,
		applicant.BoardUniversity, applicant.PassingYear, applicant.PercentageGrade,
		applicant.ExperienceSummary, applicant.CompletionPercentage,
		applicant.ID)

	if err != nil {
		return fmt.Errorf("error updating applicant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicantNotFound
	}
	return nil
}
