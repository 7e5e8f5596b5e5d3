package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bridgeout/internal/plan"
	"bridgeout/pkg/models"
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Manage recommended certifications",
}

var (
	certAddProvider string
	certAddURL      string
	certAddReason   string
)

var certAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a certification to pursue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		next, err := dispatch(cmd, plan.Action{
			Type: plan.ActionAddCertification,
			Cert: models.Certification{
				Name:           args[0],
				CourseProvider: certAddProvider,
				CourseURL:      certAddURL,
				Reasoning:      certAddReason,
			},
		})
		if err != nil {
			return err
		}
		added := next.Certifications[len(next.Certifications)-1]
		cmd.Printf("✓ Added certification %d: %s\n", added.ID, added.Name)
		return nil
	},
}

var certStatusCmd = &cobra.Command{
	Use:   "status <cert-id> <recommended|in-progress|completed>",
	Short: "Update a certification's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCertID(args[0])
		if err != nil {
			return err
		}
		status, err := certStatusFromArg(args[1])
		if err != nil {
			return err
		}
		if err := mustChangeCert(cmd, id, plan.Action{
			Type:       plan.ActionUpdateCertStatus,
			CertID:     id,
			CertStatus: status,
		}); err != nil {
			return err
		}
		cmd.Printf("✓ Certification %d → %s\n", id, status)
		return nil
	},
}

var certRmCmd = &cobra.Command{
	Use:   "rm <cert-id>",
	Short: "Delete a certification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCertID(args[0])
		if err != nil {
			return err
		}
		if err := mustChangeCert(cmd, id, plan.Action{
			Type:   plan.ActionDeleteCertification,
			CertID: id,
		}); err != nil {
			return err
		}
		cmd.Printf("✓ Deleted certification %d\n", id)
		return nil
	},
}

func certStatusFromArg(s string) (models.CertificationStatus, error) {
	switch s {
	case "recommended":
		return models.CertRecommended, nil
	case "in-progress":
		return models.CertInProgress, nil
	case "completed":
		return models.CertCompleted, nil
	default:
		return "", fmt.Errorf("unknown status %q: use recommended, in-progress, or completed", s)
	}
}

func mustChangeCert(cmd *cobra.Command, id int, action plan.Action) error {
	_, before, _, err := loadState(cmd)
	if err != nil {
		return err
	}
	found := false
	for _, c := range before.Certifications {
		if c.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no certification with id %d", id)
	}
	_, err = dispatch(cmd, action)
	return err
}

func parseCertID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid certification id: %s", s)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(certCmd)
	certCmd.AddCommand(certAddCmd, certStatusCmd, certRmCmd)
	certAddCmd.Flags().StringVar(&certAddProvider, "provider", "", "course provider offering the certification")
	certAddCmd.Flags().StringVar(&certAddURL, "url", "", "course URL")
	certAddCmd.Flags().StringVar(&certAddReason, "reason", "", "why this certification matters")
}
