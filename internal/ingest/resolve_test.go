package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkumar/talentpool/internal/app/models"
	"github.com/nkumar/talentpool/internal/pkg/apperrors"
)

func TestResolveNewApplicant(t *testing.T) {
	store := newFakeApplicantStore()
	r := NewResolver(store)

	cand := &Candidate{Applicant: models.Applicant{EmailAddress: strPtr("new@x.com")}}
	res, err := r.Resolve(context.Background(), cand)
	require.NoError(t, err)
	assert.Equal(t, DecisionInsert, res.Decision)
	assert.Nil(t, res.Existing)
	assert.Equal(t, 1, store.lookups)
}

func TestResolveExistingByEmail(t *testing.T) {
	store := newFakeApplicantStore()
	existing := store.seed(&models.Applicant{EmailAddress: strPtr("asha@x.com")})
	r := NewResolver(store)

	cand := &Candidate{Applicant: models.Applicant{
		EmailAddress: strPtr("asha@x.com"),
		MobileNumber: strPtr("9876543210"),
	}}
	res, err := r.Resolve(context.Background(), cand)
	require.NoError(t, err)
	assert.Equal(t, DecisionUpdate, res.Decision)
	assert.Equal(t, existing.ID, res.Existing.ID)
	// email present means mobile is never consulted
	assert.Equal(t, 1, store.lookups)
}

func TestResolveMobileFallback(t *testing.T) {
	store := newFakeApplicantStore()
	existing := store.seed(&models.Applicant{MobileNumber: strPtr("9876543210")})
	r := NewResolver(store)

	cand := &Candidate{Applicant: models.Applicant{MobileNumber: strPtr("9876543210")}}
	res, err := r.Resolve(context.Background(), cand)
	require.NoError(t, err)
	assert.Equal(t, DecisionUpdate, res.Decision)
	assert.Equal(t, existing.ID, res.Existing.ID)
	assert.Equal(t, 1, store.lookups)
}

func TestResolveMissingIdentifier(t *testing.T) {
	store := newFakeApplicantStore()
	r := NewResolver(store)

	cand := &Candidate{Applicant: models.Applicant{FullName: strPtr("No Contact")}}
	_, err := r.Resolve(context.Background(), cand)
	require.ErrorIs(t, err, apperrors.ErrMissingIdentifier)
	assert.Equal(t, 0, store.lookups)
}

func TestResolveIdempotent(t *testing.T) {
	store := newFakeApplicantStore()
	store.seed(&models.Applicant{EmailAddress: strPtr("asha@x.com")})
	r := NewResolver(store)

	cand := &Candidate{Applicant: models.Applicant{EmailAddress: strPtr("asha@x.com")}}
	first, err := r.Resolve(context.Background(), cand)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), cand)
	require.NoError(t, err)
	assert.Equal(t, first.Decision, second.Decision)
	assert.Equal(t, first.Existing.ID, second.Existing.ID)
}

func TestMergeCandidateWins(t *testing.T) {
	existing := &models.Applicant{
		ID:                  7,
		FullName:            strPtr("Asha R"),
		EmailAddress:        strPtr("asha@x.com"),
		CityCurrentLocation: strPtr("Mumbai"),
		Status:              models.StatusShortlisted,
		EmailVerified:       true,
	}
	cand := &models.Applicant{
		FullName:            strPtr("Asha Rao"),
		CityCurrentLocation: strPtr("Pune"),
		PassingYear:         intPtr(2020),
		Status:              models.StatusSubmitted,
	}

	merged := Merge(existing, cand)
	assert.Equal(t, int64(7), merged.ID)
	assert.Equal(t, "Asha Rao", *merged.FullName)
	assert.Equal(t, "Pune", *merged.CityCurrentLocation)
	assert.Equal(t, "asha@x.com", *merged.EmailAddress)
	assert.Equal(t, 2020, *merged.PassingYear)
	// lifecycle fields stay as stored
	assert.Equal(t, models.StatusShortlisted, merged.Status)
	assert.True(t, merged.EmailVerified)
}

func TestMergeNullsDoNotErase(t *testing.T) {
	existing := &models.Applicant{
		PositionApplied: strPtr("Backend Engineer"),
		PassingYear:     intPtr(2019),
	}
	merged := Merge(existing, &models.Applicant{})
	assert.Equal(t, "Backend Engineer", *merged.PositionApplied)
	assert.Equal(t, 2019, *merged.PassingYear)
}
