package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCloneNil(t *testing.T) {
	var p *Plan
	if p.Clone() != nil {
		t.Error("Expected nil clone of nil plan")
	}
}

func TestCloneKeepsEmptyCollectionsNonNil(t *testing.T) {
	// A freshly normalized plan carries empty (not nil) collections, and they
	// must stay that way through clones: nil serializes as JSON null, which
	// the persistence layer rejects as a corrupted plan.
	orig := &Plan{
		CareerTeamFeedback: CareerTeamFeedback{
			SkillAssessments: []SkillAssessment{},
		},
		SkillsToDevelop:       []string{},
		NetworkingSuggestions: []string{},
		ProjectIdeas:          []string{},
		Phases: []Phase{
			{ID: "p1", Tasks: []Task{}, RecommendedCourseIDs: []int{}},
		},
		Milestones:         []Milestone{},
		Certifications:     []Certification{},
		RecommendedCourses: []Course{},
		CompanyProspects:   []CompanyProspect{},
		GroundingSources:   []GroundingSource{},
	}

	clone := orig.Clone()

	for name, s := range map[string]interface{}{
		"SkillsToDevelop":       clone.SkillsToDevelop,
		"NetworkingSuggestions": clone.NetworkingSuggestions,
		"ProjectIdeas":          clone.ProjectIdeas,
		"Phases[0].Tasks":       clone.Phases[0].Tasks,
		"Phases[0].CourseIDs":   clone.Phases[0].RecommendedCourseIDs,
		"Milestones":            clone.Milestones,
		"Certifications":        clone.Certifications,
		"RecommendedCourses":    clone.RecommendedCourses,
		"CompanyProspects":      clone.CompanyProspects,
		"GroundingSources":      clone.GroundingSources,
		"SkillAssessments":      clone.CareerTeamFeedback.SkillAssessments,
	} {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("Failed to marshal %s: %v", name, err)
		}
		if string(data) == "null" {
			t.Errorf("Clone turned empty %s into nil", name)
		}
	}

	data, err := json.Marshal(clone)
	if err != nil {
		t.Fatalf("Failed to marshal clone: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("Cloned plan serialized with null collections: %s", data)
	}
}

func TestCloneKeepsNilCollectionsNil(t *testing.T) {
	clone := (&Plan{}).Clone()
	if clone.Phases != nil || clone.SkillsToDevelop != nil {
		t.Error("Clone materialized collections the original never had")
	}
}

func TestCloneIsDeep(t *testing.T) {
	days := 45
	orig := &Plan{
		Summary: "original",
		CareerTeamFeedback: CareerTeamFeedback{
			SkillAssessments:  []SkillAssessment{{SkillName: "AWS", CurrentLevel: 3, RequiredLevel: 6}},
			TerminalLeaveDays: &days,
		},
		SkillsToDevelop: []string{"AWS"},
		Phases: []Phase{
			{
				ID:                   "p1",
				Tasks:                []Task{{ID: 0, Text: "enroll", Status: TaskToDo}},
				RecommendedCourseIDs: []int{0},
			},
		},
		Certifications: []Certification{{ID: 0, Name: "SAA", Status: CertRecommended}},
	}

	clone := orig.Clone()
	clone.Summary = "changed"
	clone.SkillsToDevelop[0] = "GCP"
	clone.Phases[0].Tasks[0].Status = TaskCompleted
	clone.Phases[0].RecommendedCourseIDs[0] = 9
	clone.Certifications[0].Status = CertCompleted
	clone.CareerTeamFeedback.SkillAssessments[0].CurrentLevel = 9
	*clone.CareerTeamFeedback.TerminalLeaveDays = 90

	if orig.Summary != "original" {
		t.Error("Summary aliased")
	}
	if orig.SkillsToDevelop[0] != "AWS" {
		t.Error("SkillsToDevelop aliased")
	}
	if orig.Phases[0].Tasks[0].Status != TaskToDo {
		t.Error("Phase tasks aliased")
	}
	if orig.Phases[0].RecommendedCourseIDs[0] != 0 {
		t.Error("RecommendedCourseIDs aliased")
	}
	if orig.Certifications[0].Status != CertRecommended {
		t.Error("Certifications aliased")
	}
	if orig.CareerTeamFeedback.SkillAssessments[0].CurrentLevel != 3 {
		t.Error("SkillAssessments aliased")
	}
	if *orig.CareerTeamFeedback.TerminalLeaveDays != 45 {
		t.Error("TerminalLeaveDays pointer aliased")
	}
}
