package ingest

import "math"

// CompletionScore derives the 0-100 completeness metric for a candidate from
// the declared scoring field set: identity/contact fields, the education
// summary, presence of the dependent collections, and file presence. Adding
// a previously-missing field never lowers the score.
func CompletionScore(c *Candidate) int {
	a := &c.Applicant

	checks := []bool{
		// identity/contact
		a.FullName != nil,
		a.EmailAddress != nil,
		a.MobileNumber != nil,
		a.CityCurrentLocation != nil,
		a.PositionApplied != nil,
		a.CommunicationRating != nil,
		// education summary
		a.HighestQualification != nil,
		a.BoardUniversity != nil,
		a.PassingYear != nil,
		a.PercentageGrade != nil,
		// supplied collections
		len(c.Education) > 0,
		len(c.Experience) > 0 || a.ExperienceSummary != nil,
		len(c.Skills) > 0,
		// file presence
		len(c.Files) > 0,
	}

	populated := 0
	for _, ok := range checks {
		if ok {
			populated++
		}
	}

	return int(math.Round(float64(populated) / float64(len(checks)) * 100))
}
