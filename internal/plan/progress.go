package plan

import "strings"

// Section is one top-level plan section whose arrival is reported while the
// generation response streams in.
type Section struct {
	Key   string
	Label string
}

// Sections lists the keys probed for during streaming, in display order.
var Sections = []Section{
	{Key: "careerTeamFeedback", Label: "Advisory Team Debrief"},
	{Key: "skillsToDevelop", Label: "Skill Development Plan"},
	{Key: "phases", Label: "Actionable Timeline"},
	{Key: "recommendedCourses", Label: "Course Recommendations"},
	{Key: "certifications", Label: "Certifications & Training"},
	{Key: "companyProspects", Label: "Target Company Analysis"},
}

// Arrived reports which section keys have appeared so far in the partial,
// possibly invalid, JSON text. Detection is a quoted-substring probe, not a
// parse: a key name inside narrative text can false-positive, which is
// acceptable for a progress indicator. The result is recomputed from scratch
// on every call; no state is kept.
func Arrived(partial string) map[string]bool {
	seen := make(map[string]bool, len(Sections))
	for _, s := range Sections {
		if strings.Contains(partial, `"`+s.Key+`"`) {
			seen[s.Key] = true
		}
	}
	return seen
}

// Percent converts the arrived-section count to a 0-100 progress figure.
func Percent(partial string) int {
	n := 0
	for range Arrived(partial) {
		n++
	}
	return n * 100 / len(Sections)
}
