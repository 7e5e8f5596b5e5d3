package models

// copySlice duplicates a slice, keeping empty distinct from nil: an empty
// collection must serialize as [] so persisted plans keep passing the store's
// shape check.
func copySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Clone returns a deep copy of the plan. Every reducer transition operates
// on a clone so that prior states stay untouched.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}

	out := *p

	out.CareerTeamFeedback.SkillAssessments = copySlice(p.CareerTeamFeedback.SkillAssessments)
	if p.CareerTeamFeedback.TerminalLeaveDays != nil {
		days := *p.CareerTeamFeedback.TerminalLeaveDays
		out.CareerTeamFeedback.TerminalLeaveDays = &days
	}

	out.SkillsToDevelop = copySlice(p.SkillsToDevelop)
	out.NetworkingSuggestions = copySlice(p.NetworkingSuggestions)
	out.ProjectIdeas = copySlice(p.ProjectIdeas)

	out.Phases = copySlice(p.Phases)
	for i := range out.Phases {
		out.Phases[i].Tasks = copySlice(out.Phases[i].Tasks)
		out.Phases[i].RecommendedCourseIDs = copySlice(out.Phases[i].RecommendedCourseIDs)
	}

	out.Milestones = copySlice(p.Milestones)
	out.Certifications = copySlice(p.Certifications)
	out.RecommendedCourses = copySlice(p.RecommendedCourses)
	out.CompanyProspects = copySlice(p.CompanyProspects)
	out.GroundingSources = copySlice(p.GroundingSources)

	return &out
}
