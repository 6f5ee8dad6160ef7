package models

import "time"

// Address is the optional one-to-one extension of an Applicant. State,
// district and city are references into master data owned by an external
// lookup service; only the IDs are stored here.
type Address struct {
	ID          int64     `json:"id" db:"id"`
	ApplicantID int64     `json:"applicantId" db:"applicant_id"`
	StateID     *int64    `json:"stateId,omitempty" db:"state_id"`
	DistrictID  *int64    `json:"districtId,omitempty" db:"district_id"`
	CityID      *int64    `json:"cityId,omitempty" db:"city_id"`
	AddressLine *string   `json:"addressLine,omitempty" db:"address_line"`
	Landmark    *string   `json:"landmark,omitempty" db:"landmark"`
	PostalCode  *string   `json:"postalCode,omitempty" db:"postal_code"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
