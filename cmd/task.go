package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bridgeout/internal/dates"
	"bridgeout/internal/plan"
	"bridgeout/pkg/models"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage plan tasks",
}

var taskAddInertia string

var taskAddCmd = &cobra.Command{
	Use:   "add <phase-number> <text>",
	Short: "Add a task to a phase",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		phaseNum, err := strconv.Atoi(args[0])
		if err != nil || phaseNum < 1 {
			return fmt.Errorf("invalid phase number: %s", args[0])
		}
		_, before, _, err := loadState(cmd)
		if err != nil {
			return err
		}
		if phaseNum > len(before.Phases) {
			return fmt.Errorf("phase %d does not exist (plan has %d)", phaseNum, len(before.Phases))
		}
		next, err := dispatch(cmd, plan.Action{
			Type:       plan.ActionAddTask,
			PhaseIndex: phaseNum - 1,
			Task:       models.Task{Text: args[1], InertiaAction: taskAddInertia},
		})
		if err != nil {
			return err
		}
		added := next.Phases[phaseNum-1].Tasks
		cmd.Printf("✓ Added task %d to phase %d\n", added[len(added)-1].ID, phaseNum)
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  taskStatusRun(models.TaskCompleted),
}

var taskStartCmd = &cobra.Command{
	Use:   "start <task-id>",
	Short: "Mark a task in progress",
	Args:  cobra.ExactArgs(1),
	RunE:  taskStatusRun(models.TaskInProgress),
}

var taskTodoCmd = &cobra.Command{
	Use:   "todo <task-id>",
	Short: "Move a task back to To Do",
	Args:  cobra.ExactArgs(1),
	RunE:  taskStatusRun(models.TaskToDo),
}

var taskDueCmd = &cobra.Command{
	Use:   "due <task-id> <yyyy-mm-dd>",
	Short: "Set or clear a task's due date",
	Long:  "Set a task's due date. Pass an empty string (\"\") to clear it.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		due := args[1]
		if due != "" {
			if _, err := dates.ParseUTC(due); err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", due)
			}
		}
		if err := mustChangeTask(cmd, id, plan.Action{
			Type:    plan.ActionUpdateTaskDueDate,
			TaskID:  id,
			DueDate: due,
		}); err != nil {
			return err
		}
		if due == "" {
			cmd.Printf("✓ Cleared due date on task %d\n", id)
		} else {
			cmd.Printf("✓ Task %d due %s\n", id, dates.Display(due))
		}
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		if err := mustChangeTask(cmd, id, plan.Action{
			Type:   plan.ActionDeleteTask,
			TaskID: id,
		}); err != nil {
			return err
		}
		cmd.Printf("✓ Deleted task %d\n", id)
		return nil
	},
}

func taskStatusRun(status models.TaskStatus) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		if err := mustChangeTask(cmd, id, plan.Action{
			Type:       plan.ActionUpdateTaskStatus,
			TaskID:     id,
			TaskStatus: status,
		}); err != nil {
			return err
		}
		cmd.Printf("✓ Task %d → %s\n", id, status)
		return nil
	}
}

// mustChangeTask dispatches and reports an error when the task ID did not
// match anything, since the reducer itself treats that as a silent no-op.
func mustChangeTask(cmd *cobra.Command, id int, action plan.Action) error {
	_, before, _, err := loadState(cmd)
	if err != nil {
		return err
	}
	if !hasTask(before, id) {
		return fmt.Errorf("no task with id %d", id)
	}
	_, err = dispatch(cmd, action)
	return err
}

func hasTask(p *models.Plan, id int) bool {
	for _, phase := range p.Phases {
		for _, t := range phase.Tasks {
			if t.ID == id {
				return true
			}
		}
	}
	return false
}

func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", s)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskDoneCmd, taskStartCmd, taskTodoCmd, taskDueCmd, taskRmCmd)
	taskAddCmd.Flags().StringVar(&taskAddInertia, "inertia", "", "a small first step to break task inertia")
}
