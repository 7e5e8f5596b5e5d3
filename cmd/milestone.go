package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bridgeout/internal/dates"
	"bridgeout/internal/plan"
	"bridgeout/pkg/models"
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Manage timeline milestones",
}

var (
	milestoneEditDate  string
	milestoneEditTitle string
	milestoneEditDesc  string
	milestoneEditType  string
)

var milestoneEditCmd = &cobra.Command{
	Use:   "edit <milestone-id>",
	Short: "Edit a milestone's date, title, description, or type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid milestone id: %s", args[0])
		}
		if milestoneEditDate == "" && milestoneEditTitle == "" &&
			milestoneEditDesc == "" && milestoneEditType == "" {
			return fmt.Errorf("nothing to change: pass at least one of --date, --title, --description, --type")
		}
		if milestoneEditDate != "" {
			if _, err := dates.ParseUTC(milestoneEditDate); err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", milestoneEditDate)
			}
		}
		var mtype models.MilestoneType
		if milestoneEditType != "" {
			mtype, err = milestoneTypeFromArg(milestoneEditType)
			if err != nil {
				return err
			}
		}

		_, before, _, err := loadState(cmd)
		if err != nil {
			return err
		}
		found := false
		for _, m := range before.Milestones {
			if m.ID == id {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no milestone with id %d", id)
		}

		if _, err := dispatch(cmd, plan.Action{
			Type:        plan.ActionUpdateMilestone,
			MilestoneID: id,
			Milestone: models.Milestone{
				Date:        milestoneEditDate,
				Title:       milestoneEditTitle,
				Description: milestoneEditDesc,
				Type:        mtype,
			},
		}); err != nil {
			return err
		}
		cmd.Printf("✓ Updated milestone %d\n", id)
		return nil
	},
}

func milestoneTypeFromArg(s string) (models.MilestoneType, error) {
	switch s {
	case "skill":
		return models.MilestoneSkillDevelopment, nil
	case "networking":
		return models.MilestoneNetworking, nil
	case "application":
		return models.MilestoneApplication, nil
	case "project":
		return models.MilestoneProjectWork, nil
	case "branding":
		return models.MilestonePersonalBranding, nil
	default:
		return "", fmt.Errorf("unknown milestone type %q: use skill, networking, application, project, or branding", s)
	}
}

func init() {
	rootCmd.AddCommand(milestoneCmd)
	milestoneCmd.AddCommand(milestoneEditCmd)
	milestoneEditCmd.Flags().StringVar(&milestoneEditDate, "date", "", "new date (YYYY-MM-DD)")
	milestoneEditCmd.Flags().StringVar(&milestoneEditTitle, "title", "", "new title")
	milestoneEditCmd.Flags().StringVar(&milestoneEditDesc, "description", "", "new description")
	milestoneEditCmd.Flags().StringVar(&milestoneEditType, "type", "", "skill, networking, application, project, or branding")
}
