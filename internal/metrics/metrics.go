// Package metrics computes the dashboard figures: completion percentages,
// a transition-readiness score, and the terminal-leave timeline. All pure
// functions over the plan document; no I/O.
package metrics

import (
	"time"

	"bridgeout/internal/dates"
	"bridgeout/pkg/models"
)

// Stats summarizes completion across a collection of trackable items.
type Stats struct {
	Total      int
	Completed  int
	InProgress int
}

// Percent returns completion as 0-100. An empty collection reads as 0.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}

// TaskCompletion tallies task statuses across every phase.
func TaskCompletion(p *models.Plan) Stats {
	var s Stats
	for _, phase := range p.Phases {
		s = s.add(PhaseCompletion(phase))
	}
	return s
}

// PhaseCompletion tallies task statuses within one phase.
func PhaseCompletion(phase models.Phase) Stats {
	var s Stats
	for _, t := range phase.Tasks {
		s.Total++
		switch t.Status {
		case models.TaskCompleted:
			s.Completed++
		case models.TaskInProgress:
			s.InProgress++
		}
	}
	return s
}

// CertCompletion tallies certification statuses.
func CertCompletion(p *models.Plan) Stats {
	var s Stats
	for _, c := range p.Certifications {
		s.Total++
		switch c.Status {
		case models.CertCompleted:
			s.Completed++
		case models.CertInProgress:
			s.InProgress++
		}
	}
	return s
}

func (s Stats) add(o Stats) Stats {
	s.Total += o.Total
	s.Completed += o.Completed
	s.InProgress += o.InProgress
	return s
}

// ReadinessScore estimates how ready the user is for the target role as a
// value between 0.0 and 1.0.
//
// Factors:
//   - Skill readiness (50% weight): mean of current/required across the
//     debrief's skill assessments.
//   - Task completion (30% weight).
//   - Certification completion (20% weight).
//
// Factors with no data are excluded and the remaining weights renormalized.
func ReadinessScore(p *models.Plan) float64 {
	score := 0.0
	weight := 0.0

	if len(p.CareerTeamFeedback.SkillAssessments) > 0 {
		score += skillReadiness(p.CareerTeamFeedback.SkillAssessments) * 0.5
		weight += 0.5
	}
	if ts := TaskCompletion(p); ts.Total > 0 {
		score += float64(ts.Completed) / float64(ts.Total) * 0.3
		weight += 0.3
	}
	if cs := CertCompletion(p); cs.Total > 0 {
		score += float64(cs.Completed) / float64(cs.Total) * 0.2
		weight += 0.2
	}

	if weight == 0 {
		return 0
	}
	return score / weight
}

func skillReadiness(assessments []models.SkillAssessment) float64 {
	sum := 0.0
	counted := 0
	for _, a := range assessments {
		if a.RequiredLevel <= 0 {
			continue
		}
		ratio := float64(a.CurrentLevel) / float64(a.RequiredLevel)
		if ratio > 1 {
			ratio = 1
		}
		if ratio < 0 {
			ratio = 0
		}
		sum += ratio
		counted++
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

// LastWorkingDay computes the final duty day before the transition pipeline
// begins: the retirement date minus terminal leave, PTDY, and CSP days.
// terminalDays should come from the debrief's computed count when present,
// falling back to the desired count on the retirement record.
func LastWorkingDay(r *models.RetirementLogistics, terminalDays int) (time.Time, error) {
	retirement, err := dates.ParseUTC(r.RetirementDate)
	if err != nil {
		return time.Time{}, err
	}
	return dates.AddDays(retirement, -(terminalDays + r.PTDYDays + r.CSPDays)), nil
}

// TerminalDays picks the effective terminal-leave day count for a plan:
// the debrief's computed value wins over the user's desired value.
func TerminalDays(p *models.Plan, r *models.RetirementLogistics) int {
	if p != nil && p.CareerTeamFeedback.TerminalLeaveDays != nil {
		return *p.CareerTeamFeedback.TerminalLeaveDays
	}
	if r != nil {
		return r.DesiredTerminalLeaveDays
	}
	return 0
}
