package ingest

import "strings"

// Canonical field names. Every source column ends up under one of these or is
// dropped.
const (
	FieldFullName             = "full_name"
	FieldEmailAddress         = "email_address"
	FieldMobileNumber         = "mobile_number"
	FieldCityCurrentLocation  = "city_current_location"
	FieldPositionApplied      = "position_applied"
	FieldCommunicationRating  = "communication_rating"
	FieldHighestQualification = "highest_qualification"
	FieldBoardUniversity      = "board_university"
	FieldPassingYear          = "passing_year"
	FieldPercentageGrade      = "percentage_grade"
	FieldExperienceSummary    = "experience_summary"
	FieldSkills               = "skills"
	FieldResumeURL            = "resume_url"
)

// aliasGroup maps one canonical field to the source labels that may carry it.
// Alias order inside a group encodes priority: an earlier alias beats a later
// one when two source columns map to the same canonical field. Among labels
// of equal priority, last seen wins.
type aliasGroup struct {
	canonical string
	aliases   []string
}

// aliasTable is queried in declared order. Labels are matched after
// NormalizeLabel, so entries here are already lower-case with single spaces.
var aliasTable = []aliasGroup{
	{FieldFullName, []string{"full name", "candidate name", "applicant name", "name"}},
	{FieldEmailAddress, []string{"email address", "email id", "e-mail", "email", "mail id"}},
	{FieldMobileNumber, []string{"mobile number", "phone number", "mobile no", "contact number", "contact no", "mobile", "phone", "whatsapp number", "contact"}},
	{FieldCityCurrentLocation, []string{"city current location", "current city", "current location", "city", "location"}},
	{FieldPositionApplied, []string{"position applied", "position applied for", "post applied for", "job role", "applying for", "position", "role"}},
	{FieldCommunicationRating, []string{"communication rating", "communication skills", "communication"}},
	{FieldHighestQualification, []string{"highest qualification", "qualification", "highest education", "education"}},
	{FieldBoardUniversity, []string{"board university", "board/university", "university", "board", "institution"}},
	{FieldPassingYear, []string{"passing year", "year of passing", "passout year", "year of completion", "graduation year"}},
	{FieldPercentageGrade, []string{"percentage", "marks", "cgpa", "grade"}},
	{FieldExperienceSummary, []string{"total experience", "years of experience", "experience", "work experience"}},
	{FieldSkills, []string{"key skills", "skill set", "skills", "technical skills"}},
	{FieldResumeURL, []string{"resume link", "resume url", "cv link", "resume"}},
}

// aliasRef records which canonical field a label feeds and how strong the
// alias is (lower is stronger).
type aliasRef struct {
	canonical string
	priority  int
}

// Normalizer maps arbitrary raw column labels to canonical field names via
// the alias table. It has no side effects and is safe for concurrent use.
type Normalizer struct {
	lookup map[string]aliasRef
}

// NewNormalizer builds a Normalizer from the declared alias table.
func NewNormalizer() *Normalizer {
	lookup := make(map[string]aliasRef)
	for _, group := range aliasTable {
		for i, alias := range group.aliases {
			if _, exists := lookup[alias]; exists {
				continue
			}
			lookup[alias] = aliasRef{canonical: group.canonical, priority: i}
		}
	}
	return &Normalizer{lookup: lookup}
}

// NormalizeLabel lower-cases, trims and collapses internal whitespace before
// alias lookup.
func NormalizeLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(label))), " ")
}

// Normalize maps a raw record onto canonical field names. Unmapped labels are
// dropped silently. When two source columns feed the same canonical field the
// stronger alias wins; at equal strength the later column wins.
func (n *Normalizer) Normalize(rec RawRecord) map[string]string {
	fields := make(map[string]string)
	strength := make(map[string]int)

	for _, f := range rec {
		if f.Value == nil {
			continue
		}
		ref, ok := n.lookup[NormalizeLabel(f.Label)]
		if !ok {
			continue
		}
		if prev, seen := strength[ref.canonical]; seen && prev < ref.priority {
			continue
		}
		fields[ref.canonical] = *f.Value
		strength[ref.canonical] = ref.priority
	}

	return fields
}
