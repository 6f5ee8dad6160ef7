package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkumar/talentpool/internal/app/models"
)

func TestBuildCandidateFallbackIdentifier(t *testing.T) {
	// identifier hides under a label the alias table does not know
	contact := "asha@x.com"
	name := "Asha Rao"
	rec := RawRecord{
		{Label: "Full Name", Value: &name},
		{Label: "How to reach you", Value: &contact},
	}
	fields := NewNormalizer().Normalize(rec)

	cand := BuildCandidate(fields, rec)
	require.NotNil(t, cand.Applicant.EmailAddress)
	assert.Equal(t, "asha@x.com", *cand.Applicant.EmailAddress)
}

func TestBuildCandidateNoFallbackWhenCanonicalPresent(t *testing.T) {
	canonical := "canonical@x.com"
	other := "other@x.com"
	rec := RawRecord{
		{Label: "Email Address", Value: &canonical},
		{Label: "Secondary Contact", Value: &other},
	}
	fields := NewNormalizer().Normalize(rec)

	cand := BuildCandidate(fields, rec)
	assert.Equal(t, "canonical@x.com", *cand.Applicant.EmailAddress)
}

func TestBuildCandidateEducationSynthesis(t *testing.T) {
	fields := map[string]string{
		FieldHighestQualification: "MBA",
		FieldBoardUniversity:      "Pune University",
		FieldPassingYear:          "2018",
		FieldPercentageGrade:      "72%",
		FieldEmailAddress:         "asha@x.com",
	}

	cand := BuildCandidate(fields, nil)
	require.Len(t, cand.Education, 1)
	edu := cand.Education[0]
	assert.Equal(t, models.EducationPostgraduate, edu.Level)
	assert.Equal(t, "Pune University", *edu.InstitutionName)
	assert.Equal(t, 2018, *edu.PassingYear)
	assert.Equal(t, "72%", *edu.PercentageGrade)
	assert.True(t, edu.IsHighest)
}

func TestBuildCandidateNoEducationWithoutSummaryFields(t *testing.T) {
	cand := BuildCandidate(map[string]string{FieldEmailAddress: "a@b.c"}, nil)
	assert.Empty(t, cand.Education)
}

func TestEducationLevelOf(t *testing.T) {
	tests := []struct {
		qualification string
		want          models.EducationLevel
	}{
		{"PhD", models.EducationDoctoral},
		{"M.Tech", models.EducationPostgraduate},
		{"MBA", models.EducationPostgraduate},
		{"B.Tech", models.EducationUndergraduate},
		{"Diploma in Mechanical", models.EducationDiploma},
		{"12th Pass", models.EducationSchool},
		{"SSC", models.EducationSchool},
		{"Graduate", models.EducationUndergraduate},
	}
	for _, tt := range tests {
		t.Run(tt.qualification, func(t *testing.T) {
			assert.Equal(t, tt.want, educationLevelOf(&tt.qualification))
		})
	}
	assert.Equal(t, models.EducationUndergraduate, educationLevelOf(nil))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, splitList("Go, SQL; Docker"))
	assert.Equal(t, []string{"Go"}, splitList("Go"))
	assert.Empty(t, splitList(" , ; "))
}
