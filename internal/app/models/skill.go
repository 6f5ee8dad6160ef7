package models

import "time"

// SkillCategory represents the category of a skill entry
type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillTool      SkillCategory = "tool"
	SkillLanguage  SkillCategory = "language"
)

// SkillProficiency represents the self-assessed proficiency for a skill
type SkillProficiency string

const (
	ProficiencyBeginner     SkillProficiency = "beginner"
	ProficiencyIntermediate SkillProficiency = "intermediate"
	ProficiencyAdvanced     SkillProficiency = "advanced"
	ProficiencyExpert       SkillProficiency = "expert"
)

// SkillEntry is one of many skill rows per Applicant
type SkillEntry struct {
	ID          int64             `json:"id" db:"id"`
	ApplicantID int64             `json:"applicantId" db:"applicant_id"`
	Name        string            `json:"name" db:"name" example:"Go"`
	Category    SkillCategory     `json:"category" db:"category" example:"technical"`
	Proficiency *SkillProficiency `json:"proficiency,omitempty" db:"proficiency" example:"advanced"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
}
