package ai

import (
	"fmt"
	"strings"
	"time"

	"bridgeout/pkg/models"
)

// buildPlanPrompt renders the advisory-team briefing from the profile. The
// uploaded documents travel separately as inlineData parts.
func buildPlanPrompt(profile *models.UserProfile, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Act as an expert AI career advisory team for a transitioning service member. Based on the user's complete profile, create a comprehensive career transition plan.
Analyze all provided materials: the content of uploaded documents (resumes, evaluations, award citations) to infer their current role and experience. Also take into account any additional considerations the user has provided.

User Details:
- Target Role(s): %s
- Target Geographic Areas: %s
- Additional Considerations from User:
---
%s
---
`, profile.TargetRole, orDefault(profile.TargetLocations, "Not specified."), orDefault(profile.AdditionalConsiderations, "None provided."))

	if r := profile.Retirement; r != nil {
		fmt.Fprintf(&b, `
Retirement Logistics:
- Retirement date: %s
- Current leave balance: %d days
- Desired terminal leave: %d days
- Permissive TDY (PTDY) available: %d days
- Career Skills Program (CSP) available: %d days

Compute the terminal leave plan per AR 600-8-10: report the effective terminal leave day count as "terminalLeaveDays" and explain the math in "leaveCalculationBreakdown" inside careerTeamFeedback. The plan's timeline must end at the last working day implied by that math, not at the retirement date.
`, r.RetirementDate, r.CurrentLeaveBalance, r.DesiredTerminalLeaveDays, r.PTDYDays, r.CSPDays)
	}

	fmt.Fprintf(&b, `
First, provide a detailed "AI Advisory Team Debrief" in careerTeamFeedback:
1. overallImpression: the candidate's strengths and the feasibility of this transition. Encouraging but realistic.
2. resumeFeedback: specific, actionable feedback on their documents for the target role.
3. skillsGapAnalysis: the most critical gaps between their inferred profile and the target role.
4. skillAssessments: for each key skill, the current and required level on a 1-10 scale.

Next, generate the actionable plan, keeping target locations and considerations in mind:
5. summary: a brief overview of the transition strategy.
6. skillsToDevelop, networkingSuggestions, projectIdeas: plain string lists.
7. phases: a chronological series of phases. Each phase needs a title, startDate and endDate (YYYY-MM-DD, relative to today, %s, over a realistic 3-6 month span), an objective, a list of tasks, and recommendedCourseIds referencing the recommendedCourses list. Every task needs text, status "To Do", an "inertiaAction" (a very small, easy first step, 2-5 words), and an optional dueDate within the phase.
8. recommendedCourses: concrete courses with id, courseName, provider, url, and reasoning.
9. milestones: dated markers, each with date, title, description, and a type from: Skill Development, Networking, Application, Project Work, Personal Branding.
10. certifications: key professional certifications, each with name and status "Recommended".

Finally, the Target Company Analysis:
11. companyProspects: 3-5 realistic target companies. For each, give companyName, probability of getting hired (High, Medium, or Low), a realistic compensationRange for that company and location (use public data such as levels.fyi where possible), the targetLevel to aim for, and reasoning.

Provide the entire output as a single JSON object in the specified shape.
`, now.UTC().Format("2006-01-02"))

	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// planSchema is the response-shape contract sent as response_schema when
// grounding is off (the API rejects a schema combined with built-in tools).
func planSchema() map[string]interface{} {
	str := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "STRING", "description": desc}
	}
	num := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "NUMBER", "description": desc}
	}
	arr := func(items map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{"type": "ARRAY", "items": items}
	}
	obj := func(props map[string]interface{}, required ...string) map[string]interface{} {
		return map[string]interface{}{"type": "OBJECT", "properties": props, "required": required}
	}

	task := obj(map[string]interface{}{
		"text":          str("The description of the task."),
		"status":        str("The initial status, which must be 'To Do'."),
		"inertiaAction": str("A small first step (2-5 words) to get started."),
		"dueDate":       str("Optional YYYY-MM-DD due date within the phase."),
	}, "text", "status", "inertiaAction")

	phase := obj(map[string]interface{}{
		"title":                str("A thematic title for the phase."),
		"startDate":            str("Phase start date, YYYY-MM-DD."),
		"endDate":              str("Phase end date, YYYY-MM-DD."),
		"objective":            str("What this phase accomplishes."),
		"tasks":                arr(task),
		"recommendedCourseIds": arr(num("ID of a recommended course relevant to this phase.")),
	}, "title", "startDate", "endDate", "objective", "tasks")

	course := obj(map[string]interface{}{
		"id":         num("Unique integer ID for the course."),
		"courseName": str("The course name."),
		"provider":   str("Who offers the course."),
		"url":        str("Course URL."),
		"reasoning":  str("Why this course matters for the target role."),
	}, "id", "courseName", "provider", "url", "reasoning")

	milestone := obj(map[string]interface{}{
		"date":        str("Milestone date, YYYY-MM-DD."),
		"title":       str("A short title."),
		"description": str("What the milestone entails."),
		"type":        str("One of: Skill Development, Networking, Application, Project Work, Personal Branding."),
	}, "date", "title", "description", "type")

	assessment := obj(map[string]interface{}{
		"skillName":     str("The skill being assessed."),
		"currentLevel":  num("Current level on a 1-10 scale."),
		"requiredLevel": num("Level required for the target role, 1-10."),
	}, "skillName", "currentLevel", "requiredLevel")

	feedback := obj(map[string]interface{}{
		"overallImpression":         str("Overall impression of the profile and transition viability."),
		"resumeFeedback":            str("Actionable feedback on the uploaded documents."),
		"skillsGapAnalysis":         str("Key missing skills for the target role."),
		"skillAssessments":          arr(assessment),
		"leaveCalculationBreakdown": str("Narrative of the terminal leave math, when applicable."),
		"terminalLeaveDays":         num("Computed terminal leave day count, when applicable."),
	}, "overallImpression", "resumeFeedback", "skillsGapAnalysis")

	prospect := obj(map[string]interface{}{
		"companyName":       str("The potential employer."),
		"probability":       str("Hiring probability: High, Medium, or Low."),
		"compensationRange": str("Estimated total compensation range."),
		"targetLevel":       str("Recommended level to target, e.g. 'L4 / SDE II'."),
		"reasoning":         str("Why this company and level fit the profile."),
	}, "companyName", "probability", "compensationRange", "targetLevel")

	return obj(map[string]interface{}{
		"summary":               str("A brief summary of the career transition plan."),
		"careerTeamFeedback":    feedback,
		"skillsToDevelop":       arr(str("A skill to develop.")),
		"networkingSuggestions": arr(str("A networking suggestion.")),
		"projectIdeas":          arr(str("A portfolio project idea.")),
		"phases":                arr(phase),
		"recommendedCourses":    arr(course),
		"milestones":            arr(milestone),
		"certifications": arr(obj(map[string]interface{}{
			"name":   str("The full certification name."),
			"status": str("The initial status, which must be 'Recommended'."),
		}, "name", "status")),
		"companyProspects": arr(prospect),
	}, "summary", "careerTeamFeedback", "skillsToDevelop", "networkingSuggestions",
		"projectIdeas", "phases", "recommendedCourses", "certifications", "companyProspects")
}

// buildChatSystemPrompt anchors follow-up questions to the generated plan.
func buildChatSystemPrompt(plan *models.Plan, profile *models.UserProfile) string {
	var b strings.Builder
	b.WriteString("You are the user's AI career advisory team. They already have a generated transition plan; answer follow-up questions about it concisely and concretely.\n\n")
	fmt.Fprintf(&b, "Target role: %s\n", profile.TargetRole)
	if profile.TargetLocations != "" {
		fmt.Fprintf(&b, "Target locations: %s\n", profile.TargetLocations)
	}
	fmt.Fprintf(&b, "\nPlan summary: %s\n", plan.Summary)
	if len(plan.Phases) > 0 {
		b.WriteString("\nPhases:\n")
		for _, p := range plan.Phases {
			fmt.Fprintf(&b, "- %s (%s to %s): %s\n", p.Title, p.StartDate, p.EndDate, p.Objective)
		}
	}
	return b.String()
}
