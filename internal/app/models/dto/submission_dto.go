package dto

// SubmissionRequest is the guided-submission payload: one applicant,
// pre-partitioned by step. Structural validation happens here before the
// payload reaches the ingestion engine; the engine itself only re-checks
// identity and coercion edge cases.
type SubmissionRequest struct {
	Personal   PersonalStep      `json:"personal" validate:"required"`
	Address    *AddressStep      `json:"address,omitempty"`
	Education  []EducationStep   `json:"education,omitempty" validate:"dive"`
	Experience []ExperienceStep  `json:"experience,omitempty" validate:"dive"`
	Skills     []SkillStep       `json:"skills,omitempty" validate:"dive"`
	Files      []FileStep        `json:"files,omitempty" validate:"dive"`
}

// PersonalStep carries the core identity and profile fields
type PersonalStep struct {
	FullName             string  `json:"fullName" validate:"required,min=2,max=150"`
	EmailAddress         string  `json:"emailAddress" validate:"omitempty,email"`
	MobileNumber         string  `json:"mobileNumber" validate:"omitempty,min=10,max=15"`
	CityCurrentLocation  string  `json:"cityCurrentLocation" validate:"omitempty,max=100"`
	PositionApplied      string  `json:"positionApplied" validate:"omitempty,max=150"`
	CommunicationRating  *int    `json:"communicationRating,omitempty" validate:"omitempty,min=1,max=5"`
	HighestQualification string  `json:"highestQualification" validate:"omitempty,max=100"`
	BoardUniversity      string  `json:"boardUniversity" validate:"omitempty,max=200"`
	PassingYear          string  `json:"passingYear" validate:"omitempty,max=20"`
	PercentageGrade      string  `json:"percentageGrade" validate:"omitempty,max=20"`
	ExperienceSummary    string  `json:"experienceSummary" validate:"omitempty,max=100"`
}

// AddressStep carries the optional one-to-one address extension
type AddressStep struct {
	StateID     *int64 `json:"stateId,omitempty"`
	DistrictID  *int64 `json:"districtId,omitempty"`
	CityID      *int64 `json:"cityId,omitempty"`
	AddressLine string `json:"addressLine" validate:"omitempty,max=300"`
	Landmark    string `json:"landmark" validate:"omitempty,max=150"`
	PostalCode  string `json:"postalCode" validate:"omitempty,max=10"`
}

// EducationStep carries one education entry
type EducationStep struct {
	Level           string `json:"level" validate:"required,oneof=school diploma undergraduate postgraduate doctoral"`
	BoardID         *int64 `json:"boardId,omitempty"`
	InstitutionID   *int64 `json:"institutionId,omitempty"`
	DegreeID        *int64 `json:"degreeId,omitempty"`
	CourseID        *int64 `json:"courseId,omitempty"`
	InstitutionName string `json:"institutionName" validate:"omitempty,max=200"`
	PassingYear     string `json:"passingYear" validate:"omitempty,max=20"`
	PercentageGrade string `json:"percentageGrade" validate:"omitempty,max=20"`
	IsHighest       bool   `json:"isHighest"`
}

// ExperienceStep carries one work-history entry. Dates use YYYY-MM-DD.
type ExperienceStep struct {
	CompanyName        string   `json:"companyName" validate:"required,max=200"`
	Designation        string   `json:"designation" validate:"omitempty,max=150"`
	EmploymentType     string   `json:"employmentType" validate:"required,oneof=full_time part_time contract internship"`
	StartDate          string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate            string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	IsCurrent          bool     `json:"isCurrent"`
	AnnualCompensation *float64 `json:"annualCompensation,omitempty" validate:"omitempty,min=0"`
	NoticePeriodDays   *int     `json:"noticePeriodDays,omitempty" validate:"omitempty,min=0,max=365"`
}

// SkillStep carries one skill entry
type SkillStep struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,oneof=technical soft tool language"`
	Proficiency string `json:"proficiency" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

// FileStep carries one file reference whose binary is already in object
// storage
type FileStep struct {
	FileType string `json:"fileType" validate:"required,oneof=resume profile_photo certificate"`
	FileURL  string `json:"fileUrl" validate:"required,url"`
}
