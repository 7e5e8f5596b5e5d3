package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bridgeout/internal/plan"
	"bridgeout/pkg/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Edit the skills, networking, and project-idea lists",
}

var listAddCmd = &cobra.Command{
	Use:   "add <skills|networking|projects> <text>",
	Short: "Append an item to a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lt, err := listTypeFromArg(args[0])
		if err != nil {
			return err
		}
		if _, err := dispatch(cmd, plan.Action{
			Type: plan.ActionAddSimpleListItem,
			List: lt,
			Text: args[1],
		}); err != nil {
			return err
		}
		cmd.Printf("✓ Added to %s\n", args[0])
		return nil
	},
}

var listRmCmd = &cobra.Command{
	Use:   "rm <skills|networking|projects> <index>",
	Short: "Remove an item from a list by its index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lt, err := listTypeFromArg(args[0])
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[1])
		}
		_, before, _, err := loadState(cmd)
		if err != nil {
			return err
		}
		if index < 0 || index >= listLen(before, lt) {
			return fmt.Errorf("index %d out of range for %s", index, args[0])
		}
		if _, err := dispatch(cmd, plan.Action{
			Type:  plan.ActionDeleteSimpleListItem,
			List:  lt,
			Index: index,
		}); err != nil {
			return err
		}
		cmd.Printf("✓ Removed item %d from %s\n", index, args[0])
		return nil
	},
}

func listTypeFromArg(s string) (plan.ListType, error) {
	switch s {
	case "skills":
		return plan.ListSkills, nil
	case "networking":
		return plan.ListNetworking, nil
	case "projects":
		return plan.ListProjects, nil
	default:
		return "", fmt.Errorf("unknown list %q: use skills, networking, or projects", s)
	}
}

func listLen(p *models.Plan, lt plan.ListType) int {
	switch lt {
	case plan.ListSkills:
		return len(p.SkillsToDevelop)
	case plan.ListNetworking:
		return len(p.NetworkingSuggestions)
	case plan.ListProjects:
		return len(p.ProjectIdeas)
	default:
		return 0
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listAddCmd, listRmCmd)
}
