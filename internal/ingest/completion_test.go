package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkumar/talentpool/internal/app/models"
)

func TestCompletionScoreEmpty(t *testing.T) {
	assert.Equal(t, 0, CompletionScore(&Candidate{}))
}

func TestCompletionScoreFull(t *testing.T) {
	cand := &Candidate{
		Applicant: models.Applicant{
			FullName:             strPtr("Asha Rao"),
			EmailAddress:         strPtr("asha@x.com"),
			MobileNumber:         strPtr("9876543210"),
			CityCurrentLocation:  strPtr("Pune"),
			PositionApplied:      strPtr("Backend Engineer"),
			CommunicationRating:  intPtr(4),
			HighestQualification: strPtr("B.Tech"),
			BoardUniversity:      strPtr("Pune University"),
			PassingYear:          intPtr(2020),
			PercentageGrade:      strPtr("82%"),
			ExperienceSummary:    strPtr("3 years"),
		},
		Education:  []models.EducationEntry{{Level: models.EducationUndergraduate}},
		Experience: []models.ExperienceEntry{{CompanyName: "Acme"}},
		Skills:     []models.SkillEntry{{Name: "Go"}},
		Files:      []models.FileReference{{FileType: models.FileTypeResume}},
	}
	assert.Equal(t, 100, CompletionScore(cand))
}

func TestCompletionScoreBounds(t *testing.T) {
	cand := &Candidate{
		Applicant: models.Applicant{EmailAddress: strPtr("a@b.c")},
	}
	score := CompletionScore(cand)
	assert.Greater(t, score, 0)
	assert.Less(t, score, 100)
}

func TestCompletionScoreMonotonic(t *testing.T) {
	cand := &Candidate{
		Applicant: models.Applicant{EmailAddress: strPtr("a@b.c")},
	}
	before := CompletionScore(cand)

	cand.Applicant.FullName = strPtr("Asha Rao")
	after := CompletionScore(cand)
	assert.Greater(t, after, before)

	cand.Skills = append(cand.Skills, models.SkillEntry{Name: "Go"})
	assert.Greater(t, CompletionScore(cand), after)
}

func TestCompletionScoreExperienceSummaryCounts(t *testing.T) {
	withSummary := &Candidate{
		Applicant: models.Applicant{ExperienceSummary: strPtr("5 years")},
	}
	withEntries := &Candidate{
		Experience: []models.ExperienceEntry{{CompanyName: "Acme"}},
	}
	assert.Equal(t, CompletionScore(withSummary), CompletionScore(withEntries))
}
