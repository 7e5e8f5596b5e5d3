package plan

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"bridgeout/pkg/models"
)

// simpleListKeys is the priority order probed when the model returns a list
// element as an object instead of a plain string.
var simpleListKeys = []string{"skill", "suggestion", "idea", "name", "title"}

// Normalize converts the model's untrusted, weakly typed JSON tree into a
// canonical Plan. It is total: every absent or malformed field is replaced
// with a default, so a partial plan is always preferred over a hard failure.
// All document invariants hold on the returned value: plan-wide unique task
// and certification IDs, no dangling course references, no nil placeholders
// in any collection.
func Normalize(raw map[string]interface{}, grounding []models.GroundingSource) *models.Plan {
	if raw == nil {
		raw = map[string]interface{}{}
	}

	p := &models.Plan{
		Summary:               asString(raw["summary"]),
		CareerTeamFeedback:    normalizeFeedback(raw),
		SkillsToDevelop:       normalizeStringList(raw["skillsToDevelop"]),
		NetworkingSuggestions: normalizeStringList(raw["networkingSuggestions"]),
		ProjectIdeas:          normalizeStringList(raw["projectIdeas"]),
	}

	p.RecommendedCourses = normalizeCourses(raw["recommendedCourses"])

	courseIDs := make(map[int]bool, len(p.RecommendedCourses))
	for _, c := range p.RecommendedCourses {
		courseIDs[c.ID] = true
	}
	p.Phases = normalizePhases(raw["phases"], courseIDs)

	p.Milestones = normalizeMilestones(raw["milestones"])
	p.Certifications = normalizeCertifications(raw["certifications"])
	p.CompanyProspects = normalizeProspects(raw["companyProspects"])
	p.GroundingSources = DedupeGrounding(grounding)

	return p
}

// normalizeFeedback accepts the debrief either as a nested object or, for
// tolerance of earlier response shapes, as equivalent fields at the top
// level. The nested object wins per field when it carries a non-empty value.
func normalizeFeedback(raw map[string]interface{}) models.CareerTeamFeedback {
	nested := asMap(raw["careerTeamFeedback"])

	pick := func(key string) string {
		if s := asString(nested[key]); s != "" {
			return s
		}
		return asString(raw[key])
	}

	fb := models.CareerTeamFeedback{
		OverallImpression:         pick("overallImpression"),
		ResumeFeedback:            pick("resumeFeedback"),
		SkillsGapAnalysis:         pick("skillsGapAnalysis"),
		LeaveCalculationBreakdown: pick("leaveCalculationBreakdown"),
		SkillAssessments:          []models.SkillAssessment{},
	}

	items := asSlice(nested["skillAssessments"])
	if len(items) == 0 {
		items = asSlice(raw["skillAssessments"])
	}
	for _, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}
		fb.SkillAssessments = append(fb.SkillAssessments, models.SkillAssessment{
			SkillName:     asString(m["skillName"]),
			CurrentLevel:  asInt(m["currentLevel"], 0),
			RequiredLevel: asInt(m["requiredLevel"], 0),
		})
	}

	if days, ok := asNumber(nested["terminalLeaveDays"]); ok {
		d := int(days)
		fb.TerminalLeaveDays = &d
	} else if days, ok := asNumber(raw["terminalLeaveDays"]); ok {
		d := int(days)
		fb.TerminalLeaveDays = &d
	}

	return fb
}

// normalizeStringList coerces a heterogeneous list (strings mixed with
// objects) into plain strings. Objects are probed with simpleListKeys in
// priority order and serialized to JSON as a last resort. Empty and
// whitespace-only results are filtered out.
func normalizeStringList(v interface{}) []string {
	out := []string{}
	for _, item := range asSlice(v) {
		s := coerceListItem(item)
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func coerceListItem(item interface{}) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]interface{}:
		for _, key := range simpleListKeys {
			if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// normalizeCourses keeps a numeric ID the model supplied and falls back to
// the positional index otherwise.
func normalizeCourses(v interface{}) []models.Course {
	out := []models.Course{}
	for i, item := range asSlice(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		out = append(out, models.Course{
			ID:         asInt(m["id"], i),
			CourseName: asString(m["courseName"]),
			Provider:   asString(m["provider"]),
			URL:        asString(m["url"]),
			Reasoning:  asString(m["reasoning"]),
		})
	}
	return out
}

// normalizePhases assigns stable string IDs to phases and sequential integer
// IDs to tasks, counting across the entire plan in phase order. Every task
// starts as To Do no matter what status the model claimed. Course references
// pointing at unknown IDs are dropped silently; model hallucination of a
// course ID is expected and non-fatal.
func normalizePhases(v interface{}, courseIDs map[int]bool) []models.Phase {
	out := []models.Phase{}
	taskID := 0
	for _, item := range asSlice(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		phase := models.Phase{
			ID:                   uuid.NewString(),
			Title:                asString(m["title"]),
			StartDate:            asString(m["startDate"]),
			EndDate:              asString(m["endDate"]),
			Objective:            asString(m["objective"]),
			Tasks:                []models.Task{},
			RecommendedCourseIDs: []int{},
		}

		for _, t := range asSlice(m["tasks"]) {
			tm := asMap(t)
			if tm == nil {
				continue
			}
			phase.Tasks = append(phase.Tasks, models.Task{
				ID:            taskID,
				Text:          asString(tm["text"]),
				Status:        models.TaskToDo,
				InertiaAction: asString(tm["inertiaAction"]),
				DueDate:       asString(tm["dueDate"]),
			})
			taskID++
		}

		for _, rc := range asSlice(m["recommendedCourseIds"]) {
			if n, ok := asNumber(rc); ok && courseIDs[int(n)] {
				phase.RecommendedCourseIDs = append(phase.RecommendedCourseIDs, int(n))
			}
		}

		out = append(out, phase)
	}
	return out
}

func normalizeMilestones(v interface{}) []models.Milestone {
	out := []models.Milestone{}
	for i, item := range asSlice(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		out = append(out, models.Milestone{
			ID:          i,
			Date:        asString(m["date"]),
			Title:       asString(m["title"]),
			Description: asString(m["description"]),
			Type:        models.MilestoneType(asString(m["type"])),
		})
	}
	return out
}

// normalizeCertifications assigns positional IDs and forces every freshly
// generated certification to Recommended.
func normalizeCertifications(v interface{}) []models.Certification {
	out := []models.Certification{}
	for i, item := range asSlice(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		out = append(out, models.Certification{
			ID:             i,
			Name:           asString(m["name"]),
			Status:         models.CertRecommended,
			CourseProvider: asString(m["courseProvider"]),
			CourseURL:      asString(m["courseUrl"]),
			Reasoning:      asString(m["reasoning"]),
		})
	}
	return out
}

func normalizeProspects(v interface{}) []models.CompanyProspect {
	out := []models.CompanyProspect{}
	for _, item := range asSlice(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		out = append(out, models.CompanyProspect{
			ID:                uuid.NewString(),
			CompanyName:       asString(m["companyName"]),
			Probability:       models.HiringProbability(asString(m["probability"])),
			CompensationRange: asString(m["compensationRange"]),
			TargetLevel:       asString(m["targetLevel"]),
			Reasoning:         asString(m["reasoning"]),
		})
	}
	return out
}

// DedupeGrounding drops citations without a URI and keeps the first
// occurrence of each URI, preserving order.
func DedupeGrounding(sources []models.GroundingSource) []models.GroundingSource {
	out := []models.GroundingSource{}
	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		if s.URI == "" || seen[s.URI] {
			continue
		}
		seen[s.URI] = true
		out = append(out, s)
	}
	return out
}

// Loose-typing helpers over the decoded JSON tree. encoding/json decodes
// numbers in an interface{} tree as float64.

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asNumber(v interface{}) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}

func asInt(v interface{}, fallback int) int {
	if n, ok := asNumber(v); ok {
		return int(n)
	}
	return fallback
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}
