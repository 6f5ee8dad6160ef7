package models

import "time"

// ApplicantStatus represents the lifecycle status of an applicant record
type ApplicantStatus string

const (
	StatusSubmitted   ApplicantStatus = "submitted"
	StatusScreening   ApplicantStatus = "screening"
	StatusShortlisted ApplicantStatus = "shortlisted"
	StatusRejected    ApplicantStatus = "rejected"
	StatusHired       ApplicantStatus = "hired"
)

// Applicant defines the canonical core record based on the 'applicants' table.
// Natural key: normalized email address, falling back to the normalized
// mobile number when email is absent. Optional profile fields are pointers so
// a missing value survives round trips as NULL rather than a zero value.
type Applicant struct {
	ID                   int64           `json:"id" db:"id" example:"1"`
	FullName             *string         `json:"fullName,omitempty" db:"full_name" example:"Asha Rao"`
	EmailAddress         *string         `json:"emailAddress,omitempty" db:"email_address" example:"asha@x.com"`
	MobileNumber         *string         `json:"mobileNumber,omitempty" db:"mobile_number" example:"9876543210"`
	CityCurrentLocation  *string         `json:"cityCurrentLocation,omitempty" db:"city_current_location" example:"Pune"`
	PositionApplied      *string         `json:"positionApplied,omitempty" db:"position_applied" example:"Backend Engineer"`
	CommunicationRating  *int            `json:"communicationRating,omitempty" db:"communication_rating" example:"4"`
	HighestQualification *string         `json:"highestQualification,omitempty" db:"highest_qualification" example:"undergraduate"`
	BoardUniversity      *string         `json:"boardUniversity,omitempty" db:"board_university" example:"Pune University"`
	PassingYear          *int            `json:"passingYear,omitempty" db:"passing_year" example:"2022"`
	PercentageGrade      *string         `json:"percentageGrade,omitempty" db:"percentage_grade" example:"78.5"`
	ExperienceSummary    *string         `json:"experienceSummary,omitempty" db:"experience_summary" example:"3 years"`
	Status               ApplicantStatus `json:"status" db:"status" example:"submitted"`
	EmailVerified        bool            `json:"emailVerified" db:"email_verified" example:"false"`
	MobileVerified       bool            `json:"mobileVerified" db:"mobile_verified" example:"false"`
	CompletionPercentage int             `json:"completionPercentage" db:"completion_percentage" example:"64"`
	CreatedAt            time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time       `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Address *Address `json:"address,omitempty"`
}
