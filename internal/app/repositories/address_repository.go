package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkumar/talentpool/internal/app/models"
)

// AddressRepository handles address database operations
type AddressRepository struct {
	db *pgxpool.Pool
}

// NewAddressRepository creates a new AddressRepository
func NewAddressRepository(db *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{db: db}
}

// Upsert creates the address row for an applicant, replacing an existing one.
// The address is a one-to-one extension, so re-ingestion overwrites rather
// than appends.
func (r *AddressRepository) Upsert(ctx context.Context, address *models.Address) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO addresses (applicant_id, state_id, district_id, city_id, address_line, landmark, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (applicant_id)
		DO UPDATE SET
			state_id = EXCLUDED.state_id,
			district_id = EXCLUDED.district_id,
			city_id = EXCLUDED.city_id,
			address_line = EXCLUDED.address_line,
			landmark = EXCLUDED.landmark,
			postal_code = EXCLUDED.postal_code
		RETURNING id`,
		address.ApplicantID, address.StateID, address.DistrictID, address.CityID,
		address.AddressLine, address.Landmark, address.PostalCode).Scan(&address.ID)

	if err != nil {
		return fmt.Errorf("error upserting address: %w", err)
	}
	return nil
}

// GetByApplicantID retrieves the address for an applicant, nil when absent
func (r *AddressRepository) GetByApplicantID(ctx context.Context, applicantID int64) (*models.Address, error) {
	a := &models.Address{}
	err := r.db.QueryRow(ctx, `
		SELECT id, applicant_id, state_id, district_id, city_id, address_line, landmark, postal_code, created_at
		FROM addresses
		WHERE applicant_id = $1`,
		applicantID).Scan(
		&a.ID, &a.ApplicantID, &a.StateID, &a.DistrictID, &a.CityID,
		&a.AddressLine, &a.Landmark, &a.PostalCode, &a.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding address: %w", err)
	}
	return a, nil
}
