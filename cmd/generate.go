package cmd

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bridgeout/internal/ai"
	"bridgeout/internal/app"
	"bridgeout/internal/plan"
	"bridgeout/pkg/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new transition plan",
	Long: `Generate a career transition plan from your target role and documents.
Any existing plan is replaced.`,
	Example: `  bridgeout generate --role "Site Reliability Engineer" --doc resume.pdf
  bridgeout generate --role "Product Manager" --locations "Austin, TX" \
      --doc resume.pdf --doc evals.pdf \
      --retirement-date 2027-03-01 --leave-balance 72 --ptdy-days 10 --csp-days 120`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.GetAppFromContext(cmd.Context())
		if application == nil {
			return fmt.Errorf("application not initialized")
		}

		profile, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}

		// Validation failures are reported per-field before any external call.
		if err := profile.Validate(time.Now()); err != nil {
			if errs, ok := err.(models.ValidationErrors); ok {
				cmd.Println(warnStyle.Render("Profile is incomplete:"))
				for _, fe := range errs {
					cmd.Printf("  - %s: %s\n", fe.Field, fe.Message)
				}
				return fmt.Errorf("fix the profile and try again")
			}
			return err
		}

		cmd.Println(titleStyle.Render("Generating your transition plan"))
		cmd.Printf("Target role: %s\n", profile.TargetRole)
		cmd.Println("Consulting the AI advisory team — this may take a minute or two.")
		cmd.Println()

		// Stream the response, reporting each plan section as it arrives.
		var accumulated strings.Builder
		reported := map[string]bool{}
		onChunk := func(chunk string) {
			accumulated.WriteString(chunk)
			arrived := plan.Arrived(accumulated.String())
			for _, section := range plan.Sections {
				if arrived[section.Key] && !reported[section.Key] {
					reported[section.Key] = true
					cmd.Printf("  %s %s\n", doneStyle.Render("✓"), section.Label)
				}
			}
		}

		result, err := application.AI.GeneratePlanStream(cmd.Context(), profile, onChunk)
		if err != nil {
			return fmt.Errorf("generate plan: %w", err)
		}

		raw, err := ai.ExtractJSON(result.Text)
		if err != nil {
			// Usually transient model misbehavior; distinct from network failure.
			return fmt.Errorf("the AI returned an unreadable plan, please try again: %w", err)
		}

		p := plan.Normalize(raw, result.Grounding)
		if err := application.Store.SaveState(p, profile); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}

		cmd.Println()
		cmd.Printf("✓ Plan generated: %d phases, %d tasks, %d certifications, %d courses\n",
			len(p.Phases), countTasks(p), len(p.Certifications), len(p.RecommendedCourses))
		cmd.Println("Run 'bridgeout plan' to see the full dashboard.")
		return nil
	},
}

// profileFromFlags assembles the UserProfile, reading and base64-encoding
// each attached document.
func profileFromFlags(cmd *cobra.Command) (*models.UserProfile, error) {
	role, _ := cmd.Flags().GetString("role")
	locations, _ := cmd.Flags().GetString("locations")
	notes, _ := cmd.Flags().GetString("notes")
	docPaths, _ := cmd.Flags().GetStringArray("doc")

	profile := &models.UserProfile{
		TargetRole:               role,
		TargetLocations:          locations,
		AdditionalConsiderations: notes,
		Documents:                []models.DocumentFile{},
	}

	for _, path := range docPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w", path, err)
		}
		mimeType := mime.TypeByExtension(filepath.Ext(path))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		profile.Documents = append(profile.Documents, models.DocumentFile{
			FileName:   filepath.Base(path),
			MimeType:   mimeType,
			Data:       base64.StdEncoding.EncodeToString(data),
			UploadDate: time.Now().UTC().Format(time.RFC3339),
		})
	}

	retirementDate, _ := cmd.Flags().GetString("retirement-date")
	if retirementDate != "" {
		leaveBalance, _ := cmd.Flags().GetInt("leave-balance")
		terminalDays, _ := cmd.Flags().GetInt("terminal-leave")
		ptdyDays, _ := cmd.Flags().GetInt("ptdy-days")
		cspDays, _ := cmd.Flags().GetInt("csp-days")
		profile.Retirement = &models.RetirementLogistics{
			RetirementDate:           retirementDate,
			CurrentLeaveBalance:      leaveBalance,
			DesiredTerminalLeaveDays: terminalDays,
			PTDYDays:                 ptdyDays,
			CSPDays:                  cspDays,
		}
	}

	return profile, nil
}

func countTasks(p *models.Plan) int {
	n := 0
	for _, phase := range p.Phases {
		n += len(phase.Tasks)
	}
	return n
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("role", "", "Target role(s), e.g. \"Cloud Engineer\" (required)")
	generateCmd.Flags().String("locations", "", "Target geographic areas")
	generateCmd.Flags().String("notes", "", "Additional considerations for the advisory team")
	generateCmd.Flags().StringArray("doc", nil, "Document to attach (repeatable): resume, evals, citations")
	generateCmd.Flags().String("retirement-date", "", "Retirement date (YYYY-MM-DD)")
	generateCmd.Flags().Int("leave-balance", 0, "Current leave balance in days")
	generateCmd.Flags().Int("terminal-leave", 0, "Desired terminal leave days")
	generateCmd.Flags().Int("ptdy-days", 0, "Permissive TDY days available")
	generateCmd.Flags().Int("csp-days", 0, "Career Skills Program days available")
}
