package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridgeout/internal/app"
	"bridgeout/internal/dates"
	"bridgeout/internal/metrics"
	"bridgeout/pkg/models"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the transition plan dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, profile, err := loadState(cmd)
		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render("Transition Plan — " + profile.TargetRole))
		if p.Summary != "" {
			cmd.Println(valueStyle.Render(p.Summary))
		}

		printMetrics(cmd, p, profile)
		printDebrief(cmd, p)
		printPhases(cmd, p)
		printMilestones(cmd, p)
		printCertifications(cmd, p)
		printCourses(cmd, p)
		printSimpleLists(cmd, p)
		printProspects(cmd, p)
		printSources(cmd, p)
		return nil
	},
}

var planResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the current plan and profile",
	Long:  "Remove the stored plan and profile so a new one can be generated.",
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.GetAppFromContext(cmd.Context())
		if application == nil {
			return fmt.Errorf("application not initialized")
		}
		if err := application.Store.Reset(); err != nil {
			return err
		}
		cmd.Println("✓ Plan cleared. Run 'bridgeout generate' to start a new one.")
		return nil
	},
}

func printMetrics(cmd *cobra.Command, p *models.Plan, profile *models.UserProfile) {
	tasks := metrics.TaskCompletion(p)
	certs := metrics.CertCompletion(p)
	cmd.Printf("\n%s %d%% tasks (%d/%d done, %d in progress) · %d%% certifications · readiness %.0f%%\n",
		labelStyle.Render("Progress:"),
		tasks.Percent(), tasks.Completed, tasks.Total, tasks.InProgress,
		certs.Percent(), metrics.ReadinessScore(p)*100)

	if r := profile.Retirement; r != nil {
		days := metrics.TerminalDays(p, r)
		if last, err := metrics.LastWorkingDay(r, days); err == nil {
			cmd.Printf("%s %s (retirement %s, %d days terminal leave)\n",
				labelStyle.Render("Last working day:"),
				last.Format("Jan 2, 2006"), dates.Display(r.RetirementDate), days)
		}
	}
}

func printDebrief(cmd *cobra.Command, p *models.Plan) {
	fb := p.CareerTeamFeedback
	if fb.OverallImpression == "" && fb.ResumeFeedback == "" && fb.SkillsGapAnalysis == "" {
		return
	}
	cmd.Println(titleStyle.Render("Advisory Team Debrief"))
	if fb.OverallImpression != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Overall:"), fb.OverallImpression)
	}
	if fb.ResumeFeedback != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Resume:"), fb.ResumeFeedback)
	}
	if fb.SkillsGapAnalysis != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Skills gap:"), fb.SkillsGapAnalysis)
	}
	for _, a := range fb.SkillAssessments {
		cmd.Printf("  %s %d/%d\n", valueStyle.Render(a.SkillName), a.CurrentLevel, a.RequiredLevel)
	}
	if fb.LeaveCalculationBreakdown != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Leave math:"), fb.LeaveCalculationBreakdown)
	}
}

func printPhases(cmd *cobra.Command, p *models.Plan) {
	if len(p.Phases) == 0 {
		return
	}
	cmd.Println(titleStyle.Render("Timeline"))
	for i, phase := range p.Phases {
		stats := metrics.PhaseCompletion(phase)
		cmd.Printf("%s %s (%s) — %d%%\n",
			labelStyle.Render(fmt.Sprintf("Phase %d:", i+1)),
			phase.Title, dates.DisplayRange(phase.StartDate, phase.EndDate), stats.Percent())
		if phase.Objective != "" {
			cmd.Printf("  %s\n", valueStyle.Render(phase.Objective))
		}
		for _, t := range phase.Tasks {
			cmd.Printf("  %s [%d] %s", taskMark(t.Status), t.ID, t.Text)
			if t.DueDate != "" {
				cmd.Printf(" (due %s)", dates.Display(t.DueDate))
			}
			cmd.Println()
			if t.InertiaAction != "" && t.Status == models.TaskToDo {
				cmd.Printf("      %s %s\n", pendingStyle.Render("first step:"), t.InertiaAction)
			}
		}
		if len(phase.RecommendedCourseIDs) > 0 {
			cmd.Printf("  %s %v\n", pendingStyle.Render("courses:"), phase.RecommendedCourseIDs)
		}
	}
}

func printMilestones(cmd *cobra.Command, p *models.Plan) {
	if len(p.Milestones) == 0 {
		return
	}
	cmd.Println(titleStyle.Render("Milestones"))
	for _, m := range p.Milestones {
		cmd.Printf("  [%d] %s — %s (%s)\n", m.ID, dates.Display(m.Date), m.Title, m.Type)
		if m.Description != "" {
			cmd.Printf("      %s\n", valueStyle.Render(m.Description))
		}
	}
}

func printCertifications(cmd *cobra.Command, p *models.Plan) {
	if len(p.Certifications) == 0 {
		return
	}
	cmd.Println(titleStyle.Render("Certifications"))
	for _, c := range p.Certifications {
		cmd.Printf("  %s [%d] %s (%s)\n", certMark(c.Status), c.ID, c.Name, c.Status)
		if c.CourseProvider != "" {
			cmd.Printf("      via %s %s\n", c.CourseProvider, c.CourseURL)
		}
	}
}

func printCourses(cmd *cobra.Command, p *models.Plan) {
	if len(p.RecommendedCourses) == 0 {
		return
	}
	cmd.Println(titleStyle.Render("Recommended Courses"))
	for _, c := range p.RecommendedCourses {
		cmd.Printf("  [%d] %s — %s\n", c.ID, c.CourseName, c.Provider)
		if c.URL != "" {
			cmd.Printf("      %s\n", pendingStyle.Render(c.URL))
		}
		if c.Reasoning != "" {
			cmd.Printf("      %s\n", valueStyle.Render(c.Reasoning))
		}
	}
}

func printSimpleLists(cmd *cobra.Command, p *models.Plan) {
	printList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		cmd.Println(titleStyle.Render(title))
		for i, item := range items {
			cmd.Printf("  %d. %s\n", i, item)
		}
	}
	printList("Skills to Develop", p.SkillsToDevelop)
	printList("Networking Suggestions", p.NetworkingSuggestions)
	printList("Project Ideas", p.ProjectIdeas)
}

func printProspects(cmd *cobra.Command, p *models.Plan) {
	if len(p.CompanyProspects) == 0 {
		return
	}
	cmd.Println(titleStyle.Render("Target Companies"))
	for _, c := range p.CompanyProspects {
		cmd.Printf("  %s — %s probability, %s, target %s\n",
			labelStyle.Render(c.CompanyName), c.Probability, c.CompensationRange, c.TargetLevel)
		if c.Reasoning != "" {
			cmd.Printf("      %s\n", valueStyle.Render(c.Reasoning))
		}
	}
}

func printSources(cmd *cobra.Command, p *models.Plan) {
	if len(p.GroundingSources) == 0 {
		return
	}
	cmd.Println(titleStyle.Render("Sources"))
	for _, s := range p.GroundingSources {
		if s.Title != "" {
			cmd.Printf("  %s — %s\n", s.Title, pendingStyle.Render(s.URI))
		} else {
			cmd.Printf("  %s\n", pendingStyle.Render(s.URI))
		}
	}
}

func taskMark(s models.TaskStatus) string {
	switch s {
	case models.TaskCompleted:
		return doneStyle.Render("[✓]")
	case models.TaskInProgress:
		return warnStyle.Render("[~]")
	default:
		return pendingStyle.Render("[ ]")
	}
}

func certMark(s models.CertificationStatus) string {
	switch s {
	case models.CertCompleted:
		return doneStyle.Render("[✓]")
	case models.CertInProgress:
		return warnStyle.Render("[~]")
	default:
		return pendingStyle.Render("[ ]")
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planResetCmd)
}
