package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgeout/pkg/models"
)

func seedPlan() *models.Plan {
	return &models.Plan{
		Summary:               "seed",
		SkillsToDevelop:       []string{"AWS"},
		NetworkingSuggestions: []string{},
		ProjectIdeas:          []string{"homelab"},
		Phases: []models.Phase{
			{
				ID:    "phase-1",
				Title: "Foundation",
				Tasks: []models.Task{
					{ID: 0, Text: "enroll", Status: models.TaskToDo},
					{ID: 1, Text: "study", Status: models.TaskInProgress},
				},
				RecommendedCourseIDs: []int{0},
			},
			{
				ID:    "phase-2",
				Title: "Apply",
				Tasks: []models.Task{
					{ID: 2, Text: "apply", Status: models.TaskToDo},
				},
			},
		},
		Milestones: []models.Milestone{
			{ID: 0, Date: "2026-10-01", Title: "first cert", Type: models.MilestoneSkillDevelopment},
		},
		Certifications: []models.Certification{
			{ID: 0, Name: "AWS SAA", Status: models.CertRecommended},
		},
		RecommendedCourses: []models.Course{{ID: 0, CourseName: "SAA prep"}},
	}
}

func TestReduceSetPlan(t *testing.T) {
	fresh := seedPlan()
	assert.Same(t, fresh, Reduce(nil, Action{Type: ActionSetPlan, Plan: fresh}))
	assert.Nil(t, Reduce(fresh, Action{Type: ActionSetPlan, Plan: nil}))
}

func TestReduceNilStateIsInert(t *testing.T) {
	for _, typ := range []ActionType{
		ActionUpdateTaskStatus, ActionAddTask, ActionDeleteCertification,
		ActionAddSimpleListItem, ActionUpdateMilestone, "SOMETHING_NEW",
	} {
		assert.Nil(t, Reduce(nil, Action{Type: typ}), "action %s", typ)
	}
}

func TestReduceNeverMutatesInput(t *testing.T) {
	state := seedPlan()
	snapshot := state.Clone()

	actions := []Action{
		{Type: ActionUpdateTaskStatus, TaskID: 0, TaskStatus: models.TaskCompleted},
		{Type: ActionUpdateTaskDueDate, TaskID: 2, DueDate: "2026-11-01"},
		{Type: ActionUpdateCertStatus, CertID: 0, CertStatus: models.CertInProgress},
		{Type: ActionAddTask, PhaseIndex: 1, Task: models.Task{Text: "network"}},
		{Type: ActionAddCertification, Cert: models.Certification{Name: "Sec+"}},
		{Type: ActionAddSimpleListItem, List: ListSkills, Text: "Terraform"},
		{Type: ActionDeleteTask, TaskID: 1},
		{Type: ActionDeleteCertification, CertID: 0},
		{Type: ActionDeleteSimpleListItem, List: ListProjects, Index: 0},
		{Type: ActionUpdateMilestone, MilestoneID: 0, Milestone: models.Milestone{Title: "renamed"}},
	}
	for _, action := range actions {
		next := Reduce(state, action)
		require.NotNil(t, next, "action %s", action.Type)
		assert.NotSame(t, state, next, "action %s", action.Type)
		if diff := cmp.Diff(snapshot, state); diff != "" {
			t.Fatalf("action %s mutated input state (-want +got):\n%s", action.Type, diff)
		}
	}
}

func TestReduceTaskStatusCycle(t *testing.T) {
	state := seedPlan()
	for _, status := range []models.TaskStatus{
		models.TaskInProgress, models.TaskCompleted, models.TaskToDo,
	} {
		state = Reduce(state, Action{Type: ActionUpdateTaskStatus, TaskID: 0, TaskStatus: status})
		assert.Equal(t, status, state.Phases[0].Tasks[0].Status)
	}
}

func TestReduceTaskDueDate(t *testing.T) {
	state := seedPlan()

	next := Reduce(state, Action{Type: ActionUpdateTaskDueDate, TaskID: 2, DueDate: "2026-11-01"})
	assert.Equal(t, "2026-11-01", next.Phases[1].Tasks[0].DueDate)

	cleared := Reduce(next, Action{Type: ActionUpdateTaskDueDate, TaskID: 2, DueDate: ""})
	assert.Empty(t, cleared.Phases[1].Tasks[0].DueDate)
}

func TestReduceMissingIDsAreNoOps(t *testing.T) {
	state := seedPlan()
	for _, action := range []Action{
		{Type: ActionUpdateTaskStatus, TaskID: 99, TaskStatus: models.TaskCompleted},
		{Type: ActionUpdateTaskDueDate, TaskID: 99, DueDate: "2026-11-01"},
		{Type: ActionUpdateCertStatus, CertID: 99, CertStatus: models.CertCompleted},
		{Type: ActionDeleteTask, TaskID: 99},
		{Type: ActionDeleteCertification, CertID: 99},
		{Type: ActionUpdateMilestone, MilestoneID: 99, Milestone: models.Milestone{Title: "x"}},
		{Type: ActionAddTask, PhaseIndex: 5, Task: models.Task{Text: "x"}},
		{Type: ActionAddTask, PhaseIndex: -1, Task: models.Task{Text: "x"}},
		{Type: ActionDeleteSimpleListItem, List: ListSkills, Index: 9},
		{Type: ActionDeleteSimpleListItem, List: "bogus", Index: 0},
		{Type: ActionAddSimpleListItem, List: "bogus", Text: "x"},
		{Type: "UNKNOWN_ACTION"},
	} {
		assert.Same(t, state, Reduce(state, action), "action %s", action.Type)
	}
}

func TestReduceAddTaskAssignsNextID(t *testing.T) {
	state := seedPlan()

	next := Reduce(state, Action{
		Type:       ActionAddTask,
		PhaseIndex: 1,
		Task:       models.Task{Text: "mock interview", Status: models.TaskCompleted},
	})

	added := next.Phases[1].Tasks[len(next.Phases[1].Tasks)-1]
	assert.Equal(t, 3, added.ID)
	assert.Equal(t, "mock interview", added.Text)
	// Claimed statuses on the payload are ignored; new tasks start at To Do.
	assert.Equal(t, models.TaskToDo, added.Status)
}

func TestReduceAddAfterDeleteReusesNoIDs(t *testing.T) {
	state := seedPlan()

	state = Reduce(state, Action{Type: ActionDeleteTask, TaskID: 2})
	state = Reduce(state, Action{Type: ActionAddTask, PhaseIndex: 0, Task: models.Task{Text: "a"}})
	state = Reduce(state, Action{Type: ActionAddTask, PhaseIndex: 1, Task: models.Task{Text: "b"}})

	seen := map[int]bool{}
	for _, phase := range state.Phases {
		for _, task := range phase.Tasks {
			assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
			seen[task.ID] = true
		}
	}
	assert.Len(t, seen, 4)
}

func TestReduceCertifications(t *testing.T) {
	state := seedPlan()

	next := Reduce(state, Action{
		Type: ActionAddCertification,
		Cert: models.Certification{Name: "Security+", Status: models.CertCompleted},
	})
	require.Len(t, next.Certifications, 2)
	assert.Equal(t, 1, next.Certifications[1].ID)
	assert.Equal(t, models.CertRecommended, next.Certifications[1].Status)

	next = Reduce(next, Action{Type: ActionUpdateCertStatus, CertID: 1, CertStatus: models.CertInProgress})
	assert.Equal(t, models.CertInProgress, next.Certifications[1].Status)

	next = Reduce(next, Action{Type: ActionDeleteCertification, CertID: 0})
	require.Len(t, next.Certifications, 1)
	assert.Equal(t, "Security+", next.Certifications[0].Name)
}

func TestReduceSimpleListRoundTrip(t *testing.T) {
	state := seedPlan()

	next := Reduce(state, Action{Type: ActionAddSimpleListItem, List: ListSkills, Text: "Terraform"})
	assert.Equal(t, []string{"AWS", "Terraform"}, next.SkillsToDevelop)

	next = Reduce(next, Action{Type: ActionDeleteSimpleListItem, List: ListSkills, Index: 1})
	assert.Equal(t, []string{"AWS"}, next.SkillsToDevelop)

	if diff := cmp.Diff(state.SkillsToDevelop, next.SkillsToDevelop); diff != "" {
		t.Fatalf("append-then-delete did not round-trip (-want +got):\n%s", diff)
	}
}

func TestReduceDeletePreservesOrder(t *testing.T) {
	state := seedPlan()
	state.ProjectIdeas = []string{"a", "b", "c"}

	next := Reduce(state, Action{Type: ActionDeleteSimpleListItem, List: ListProjects, Index: 1})
	assert.Equal(t, []string{"a", "c"}, next.ProjectIdeas)
}

func TestReduceUpdateMilestone(t *testing.T) {
	state := seedPlan()

	next := Reduce(state, Action{
		Type:        ActionUpdateMilestone,
		MilestoneID: 0,
		Milestone:   models.Milestone{Date: "2026-12-01", Type: models.MilestoneNetworking},
	})

	m := next.Milestones[0]
	assert.Equal(t, "2026-12-01", m.Date)
	assert.Equal(t, models.MilestoneNetworking, m.Type)
	// Empty payload fields leave the existing values alone.
	assert.Equal(t, "first cert", m.Title)
}
