package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"bridgeout/internal/app"
	"bridgeout/internal/plan"
	"bridgeout/internal/store"
	"bridgeout/pkg/models"
)

func setupTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	db, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	st := store.New(db, nil)
	p := &models.Plan{
		Summary: "test plan",
		CareerTeamFeedback: models.CareerTeamFeedback{
			SkillAssessments: []models.SkillAssessment{},
		},
		SkillsToDevelop:       []string{"AWS"},
		NetworkingSuggestions: []string{},
		ProjectIdeas:          []string{},
		Phases: []models.Phase{
			{
				ID:    "p1",
				Title: "Foundation",
				Tasks: []models.Task{
					{ID: 0, Text: "enroll", Status: models.TaskToDo},
				},
				RecommendedCourseIDs: []int{},
			},
		},
		Milestones:         []models.Milestone{{ID: 0, Title: "first cert", Date: "2026-10-01"}},
		Certifications:     []models.Certification{{ID: 0, Name: "SAA", Status: models.CertRecommended}},
		RecommendedCourses: []models.Course{},
		CompanyProspects:   []models.CompanyProspect{},
		GroundingSources:   []models.GroundingSource{},
	}
	profile := &models.UserProfile{
		TargetRole: "Cloud Engineer",
		Documents: []models.DocumentFile{
			{FileName: "resume.pdf", MimeType: "application/pdf", Data: "aGk="},
		},
	}
	if err := st.SaveState(p, profile); err != nil {
		t.Fatalf("Failed to seed state: %v", err)
	}

	cmd := &cobra.Command{}
	cmd.SetContext(app.SetAppInContext(context.Background(), &app.App{DB: db, Store: st}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd
}

func TestLoadState(t *testing.T) {
	cmd := setupTestCommand(t)

	application, p, profile, err := loadState(cmd)
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	if application == nil || application.Store == nil {
		t.Fatal("Expected the app container, got nil")
	}
	if p.Summary != "test plan" || len(p.Phases) != 1 {
		t.Errorf("Plan not loaded correctly: %+v", p)
	}
	if profile.TargetRole != "Cloud Engineer" {
		t.Errorf("Expected profile role, got %q", profile.TargetRole)
	}
}

func TestDispatchWritesThrough(t *testing.T) {
	cmd := setupTestCommand(t)

	next, err := dispatch(cmd, plan.Action{
		Type:       plan.ActionUpdateTaskStatus,
		TaskID:     0,
		TaskStatus: models.TaskCompleted,
	})
	if err != nil {
		t.Fatalf("Failed to dispatch: %v", err)
	}
	if next.Phases[0].Tasks[0].Status != models.TaskCompleted {
		t.Errorf("Expected completed task, got %q", next.Phases[0].Tasks[0].Status)
	}

	// The edit must be persisted, not just returned.
	_, reloaded, _, err := loadState(cmd)
	if err != nil {
		t.Fatalf("Failed to reload state: %v", err)
	}
	if reloaded.Phases[0].Tasks[0].Status != models.TaskCompleted {
		t.Errorf("Edit not persisted, got %q", reloaded.Phases[0].Tasks[0].Status)
	}
}

func TestMustChangeTask(t *testing.T) {
	cmd := setupTestCommand(t)

	if err := mustChangeTask(cmd, 0, plan.Action{
		Type:       plan.ActionUpdateTaskStatus,
		TaskID:     0,
		TaskStatus: models.TaskInProgress,
	}); err != nil {
		t.Fatalf("Failed to change existing task: %v", err)
	}
	_, p, _, err := loadState(cmd)
	if err != nil {
		t.Fatalf("Failed to reload state: %v", err)
	}
	if p.Phases[0].Tasks[0].Status != models.TaskInProgress {
		t.Errorf("Expected in-progress task, got %q", p.Phases[0].Tasks[0].Status)
	}

	if err := mustChangeTask(cmd, 99, plan.Action{
		Type:   plan.ActionDeleteTask,
		TaskID: 99,
	}); err == nil {
		t.Error("Expected an error for a missing task id")
	}
}

func TestMustChangeCert(t *testing.T) {
	cmd := setupTestCommand(t)

	if err := mustChangeCert(cmd, 0, plan.Action{
		Type:       plan.ActionUpdateCertStatus,
		CertID:     0,
		CertStatus: models.CertCompleted,
	}); err != nil {
		t.Fatalf("Failed to change existing cert: %v", err)
	}
	if err := mustChangeCert(cmd, 99, plan.Action{
		Type:   plan.ActionDeleteCertification,
		CertID: 99,
	}); err == nil {
		t.Error("Expected an error for a missing certification id")
	}
}

func TestListLen(t *testing.T) {
	cmd := setupTestCommand(t)

	_, p, _, err := loadState(cmd)
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	if got := listLen(p, plan.ListSkills); got != 1 {
		t.Errorf("Expected 1 skill, got %d", got)
	}
	if got := listLen(p, plan.ListNetworking); got != 0 {
		t.Errorf("Expected 0 networking items, got %d", got)
	}
	if got := listLen(p, "bogus"); got != 0 {
		t.Errorf("Expected 0 for unknown list, got %d", got)
	}
}
