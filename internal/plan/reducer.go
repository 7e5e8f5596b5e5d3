package plan

import "bridgeout/pkg/models"

// ListType names one of the three editable simple-string lists.
type ListType string

const (
	ListSkills     ListType = "skillsToDevelop"
	ListNetworking ListType = "networkingSuggestions"
	ListProjects   ListType = "projectIdeas"
)

// ActionType tags a reducer action.
type ActionType string

const (
	ActionSetPlan              ActionType = "SET_PLAN"
	ActionUpdateTaskStatus     ActionType = "UPDATE_TASK_STATUS"
	ActionUpdateTaskDueDate    ActionType = "UPDATE_TASK_DUE_DATE"
	ActionUpdateCertStatus     ActionType = "UPDATE_CERT_STATUS"
	ActionAddTask              ActionType = "ADD_TASK"
	ActionAddCertification     ActionType = "ADD_CERTIFICATION"
	ActionAddSimpleListItem    ActionType = "ADD_SIMPLE_LIST_ITEM"
	ActionDeleteTask           ActionType = "DELETE_TASK"
	ActionDeleteCertification  ActionType = "DELETE_CERTIFICATION"
	ActionDeleteSimpleListItem ActionType = "DELETE_SIMPLE_LIST_ITEM"
	ActionUpdateMilestone      ActionType = "UPDATE_MILESTONE"
)

// Action is the closed set of plan transitions. Only the fields relevant to
// the tagged type are read; the rest are ignored.
type Action struct {
	Type ActionType

	Plan *models.Plan // SetPlan: replacement state, may be nil for "start new"

	TaskID     int
	TaskStatus models.TaskStatus
	DueDate    string
	PhaseIndex int
	Task       models.Task // AddTask payload; ID and Status are assigned here

	CertID     int
	CertStatus models.CertificationStatus
	Cert       models.Certification // AddCertification payload

	List  ListType
	Text  string
	Index int

	MilestoneID int
	Milestone   models.Milestone // UpdateMilestone payload; ID is ignored
}

// Reduce is the pure state-transition function over the plan document.
// Transitions are immutable: a new Plan value is produced, never a mutation
// of the previous one. Every action is total. Missing IDs, bad indexes, and
// unknown action types are no-ops that return the input state, so a replayed
// action log can never throw.
func Reduce(state *models.Plan, action Action) *models.Plan {
	if action.Type == ActionSetPlan {
		return action.Plan
	}
	if state == nil {
		// Only SetPlan leaves the uninitialized state.
		return nil
	}

	switch action.Type {
	case ActionUpdateTaskStatus:
		return updateTask(state, action.TaskID, func(t *models.Task) {
			t.Status = action.TaskStatus
		})

	case ActionUpdateTaskDueDate:
		return updateTask(state, action.TaskID, func(t *models.Task) {
			t.DueDate = action.DueDate
		})

	case ActionUpdateCertStatus:
		for i, c := range state.Certifications {
			if c.ID == action.CertID {
				next := state.Clone()
				next.Certifications[i].Status = action.CertStatus
				return next
			}
		}
		return state

	case ActionAddTask:
		if action.PhaseIndex < 0 || action.PhaseIndex >= len(state.Phases) {
			return state
		}
		next := state.Clone()
		task := action.Task
		task.ID = NextID(taskIDs(next))
		task.Status = models.TaskToDo
		next.Phases[action.PhaseIndex].Tasks = append(next.Phases[action.PhaseIndex].Tasks, task)
		return next

	case ActionAddCertification:
		next := state.Clone()
		cert := action.Cert
		cert.ID = NextID(certIDs(next))
		cert.Status = models.CertRecommended
		next.Certifications = append(next.Certifications, cert)
		return next

	case ActionAddSimpleListItem:
		if _, ok := listFor(state, action.List); !ok {
			return state
		}
		next := state.Clone()
		list, _ := listFor(next, action.List)
		setList(next, action.List, append(list, action.Text))
		return next

	case ActionDeleteTask:
		for pi, phase := range state.Phases {
			for ti, t := range phase.Tasks {
				if t.ID == action.TaskID {
					next := state.Clone()
					tasks := next.Phases[pi].Tasks
					next.Phases[pi].Tasks = append(tasks[:ti], tasks[ti+1:]...)
					return next
				}
			}
		}
		return state

	case ActionDeleteCertification:
		for i, c := range state.Certifications {
			if c.ID == action.CertID {
				next := state.Clone()
				next.Certifications = append(next.Certifications[:i], next.Certifications[i+1:]...)
				return next
			}
		}
		return state

	case ActionDeleteSimpleListItem:
		list, ok := listFor(state, action.List)
		if !ok || action.Index < 0 || action.Index >= len(list) {
			return state
		}
		next := state.Clone()
		updated, _ := listFor(next, action.List)
		setList(next, action.List, append(updated[:action.Index], updated[action.Index+1:]...))
		return next

	case ActionUpdateMilestone:
		for i, m := range state.Milestones {
			if m.ID == action.MilestoneID {
				next := state.Clone()
				edit := &next.Milestones[i]
				if action.Milestone.Date != "" {
					edit.Date = action.Milestone.Date
				}
				if action.Milestone.Title != "" {
					edit.Title = action.Milestone.Title
				}
				if action.Milestone.Description != "" {
					edit.Description = action.Milestone.Description
				}
				if action.Milestone.Type != "" {
					edit.Type = action.Milestone.Type
				}
				return next
			}
		}
		return state

	default:
		// Unknown action types never throw; forward compatibility.
		return state
	}
}

func updateTask(state *models.Plan, taskID int, apply func(*models.Task)) *models.Plan {
	for pi, phase := range state.Phases {
		for ti, t := range phase.Tasks {
			if t.ID == taskID {
				next := state.Clone()
				apply(&next.Phases[pi].Tasks[ti])
				return next
			}
		}
	}
	return state
}

func taskIDs(p *models.Plan) []int {
	var ids []int
	for _, phase := range p.Phases {
		for _, t := range phase.Tasks {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func certIDs(p *models.Plan) []int {
	ids := make([]int, len(p.Certifications))
	for i, c := range p.Certifications {
		ids[i] = c.ID
	}
	return ids
}

func listFor(p *models.Plan, lt ListType) ([]string, bool) {
	switch lt {
	case ListSkills:
		return p.SkillsToDevelop, true
	case ListNetworking:
		return p.NetworkingSuggestions, true
	case ListProjects:
		return p.ProjectIdeas, true
	default:
		return nil, false
	}
}

func setList(p *models.Plan, lt ListType, items []string) {
	switch lt {
	case ListSkills:
		p.SkillsToDevelop = items
	case ListNetworking:
		p.NetworkingSuggestions = items
	case ListProjects:
		p.ProjectIdeas = items
	}
}
