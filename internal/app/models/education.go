package models

import "time"

// EducationLevel represents the level of an education entry
type EducationLevel string

const (
	EducationSchool        EducationLevel = "school"
	EducationDiploma       EducationLevel = "diploma"
	EducationUndergraduate EducationLevel = "undergraduate"
	EducationPostgraduate  EducationLevel = "postgraduate"
	EducationDoctoral      EducationLevel = "doctoral"
)

// EducationEntry is one of many education rows per Applicant. Board,
// institution, degree and course are references into external master data.
// At most one entry per applicant is intended to carry IsHighest = true;
// the store does not enforce this, the guided-submission caller does.
type EducationEntry struct {
	ID              int64          `json:"id" db:"id"`
	ApplicantID     int64          `json:"applicantId" db:"applicant_id"`
	Level           EducationLevel `json:"level" db:"level" example:"undergraduate"`
	BoardID         *int64         `json:"boardId,omitempty" db:"board_id"`
	InstitutionID   *int64         `json:"institutionId,omitempty" db:"institution_id"`
	DegreeID        *int64         `json:"degreeId,omitempty" db:"degree_id"`
	CourseID        *int64         `json:"courseId,omitempty" db:"course_id"`
	InstitutionName *string        `json:"institutionName,omitempty" db:"institution_name"`
	PassingYear     *int           `json:"passingYear,omitempty" db:"passing_year" example:"2022"`
	PercentageGrade *string        `json:"percentageGrade,omitempty" db:"percentage_grade"`
	IsHighest       bool           `json:"isHighest" db:"is_highest"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
}
