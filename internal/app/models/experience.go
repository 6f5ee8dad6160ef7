package models

import "time"

// EmploymentType represents the engagement type of an experience entry
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

// ExperienceEntry is one of many work-history rows per Applicant.
// EndDate is nil while IsCurrent is true; otherwise it must postdate
// StartDate. TotalMonths is derived at ingestion time, not user-supplied.
type ExperienceEntry struct {
	ID                 int64          `json:"id" db:"id"`
	ApplicantID        int64          `json:"applicantId" db:"applicant_id"`
	CompanyName        string         `json:"companyName" db:"company_name" example:"Acme Systems"`
	Designation        *string        `json:"designation,omitempty" db:"designation" example:"Software Engineer"`
	EmploymentType     EmploymentType `json:"employmentType" db:"employment_type" example:"full_time"`
	StartDate          time.Time      `json:"startDate" db:"start_date"`
	EndDate            *time.Time     `json:"endDate,omitempty" db:"end_date"`
	IsCurrent          bool           `json:"isCurrent" db:"is_current"`
	TotalMonths        int            `json:"totalMonths" db:"total_months" example:"18"`
	AnnualCompensation *float64       `json:"annualCompensation,omitempty" db:"annual_compensation"`
	NoticePeriodDays   *int           `json:"noticePeriodDays,omitempty" db:"notice_period_days" example:"30"`
	CreatedAt          time.Time      `json:"createdAt" db:"created_at"`
}
