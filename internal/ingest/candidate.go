package ingest

import (
	"strings"

	"github.com/nkumar/talentpool/internal/app/models"
)

// Candidate is a normalized core-record candidate plus its optional dependent
// collections, ready for identity resolution and persistence.
type Candidate struct {
	Applicant  models.Applicant
	Address    *models.Address
	Education  []models.EducationEntry
	Experience []models.ExperienceEntry
	Skills     []models.SkillEntry
	Files      []models.FileReference
}

// BuildCandidate cleans and coerces canonical fields into a typed candidate.
// The raw record is consulted only for identifier fallback when neither
// canonical email nor mobile survived normalization.
func BuildCandidate(fields map[string]string, rec RawRecord) *Candidate {
	cand := &Candidate{}
	a := &cand.Applicant

	a.FullName = CleanText(fields[FieldFullName])
	a.EmailAddress = NormalizeEmail(fields[FieldEmailAddress])
	a.MobileNumber = NormalizeMobile(fields[FieldMobileNumber])
	a.CityCurrentLocation = CleanText(fields[FieldCityCurrentLocation])
	a.PositionApplied = CleanText(fields[FieldPositionApplied])
	a.CommunicationRating = CleanRating(fields[FieldCommunicationRating])
	a.HighestQualification = CleanText(fields[FieldHighestQualification])
	a.BoardUniversity = CleanText(fields[FieldBoardUniversity])
	a.PassingYear = CleanYear(fields[FieldPassingYear])
	a.PercentageGrade = CleanText(fields[FieldPercentageGrade])
	a.ExperienceSummary = CleanText(fields[FieldExperienceSummary])
	a.Status = models.StatusSubmitted

	if a.EmailAddress == nil && a.MobileNumber == nil {
		email, mobile := FallbackIdentifier(rec)
		a.EmailAddress = email
		a.MobileNumber = mobile
	}

	if a.HighestQualification != nil || a.BoardUniversity != nil || a.PassingYear != nil || a.PercentageGrade != nil {
		entry := models.EducationEntry{
			Level:           educationLevelOf(a.HighestQualification),
			InstitutionName: a.BoardUniversity,
			PassingYear:     a.PassingYear,
			PercentageGrade: a.PercentageGrade,
			IsHighest:       true,
		}
		cand.Education = append(cand.Education, entry)
	}

	if raw := CleanText(fields[FieldSkills]); raw != nil {
		for _, name := range splitList(*raw) {
			cand.Skills = append(cand.Skills, models.SkillEntry{
				Name:     name,
				Category: models.SkillTechnical,
			})
		}
	}

	if url := CleanText(fields[FieldResumeURL]); url != nil {
		cand.Files = append(cand.Files, models.FileReference{
			FileType: models.FileTypeResume,
			FileURL:  *url,
		})
	}

	return cand
}

// splitList breaks a comma or semicolon separated cell into trimmed items.
func splitList(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// educationLevelOf maps a free-text qualification onto an education level.
// Defaults to undergraduate, the most common case in bulk sheets.
func educationLevelOf(qualification *string) models.EducationLevel {
	if qualification == nil {
		return models.EducationUndergraduate
	}
	q := strings.ToLower(*qualification)
	switch {
	case strings.Contains(q, "phd") || strings.Contains(q, "doctor"):
		return models.EducationDoctoral
	case strings.Contains(q, "master") || strings.Contains(q, "post") || strings.Contains(q, "pg") ||
		strings.Contains(q, "mba") || strings.Contains(q, "mca") || strings.Contains(q, "m."):
		return models.EducationPostgraduate
	case strings.Contains(q, "diploma") || strings.Contains(q, "iti"):
		return models.EducationDiploma
	case strings.Contains(q, "school") || strings.Contains(q, "ssc") || strings.Contains(q, "hsc") ||
		strings.Contains(q, "10") || strings.Contains(q, "12"):
		return models.EducationSchool
	default:
		return models.EducationUndergraduate
	}
}
