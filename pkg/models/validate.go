package models

import (
	"fmt"
	"strings"
	"time"
)

// FieldError is a validation failure tied to a single profile field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors aggregates per-field failures so the caller can report
// all of them at once instead of stopping at the first.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

// Validate checks the profile before any generation request is attempted.
// It returns nil or a ValidationErrors listing every failing field.
func (p *UserProfile) Validate(now time.Time) error {
	var errs ValidationErrors

	if strings.TrimSpace(p.TargetRole) == "" {
		errs = append(errs, FieldError{"targetRole", "target role is required"})
	}
	if len(p.Documents) == 0 {
		errs = append(errs, FieldError{"documents", "attach at least one document (resume, evaluation, etc.)"})
	}

	if r := p.Retirement; r != nil {
		if r.CurrentLeaveBalance < 0 {
			errs = append(errs, FieldError{"currentLeaveBalance", "leave balance cannot be negative"})
		}
		if r.DesiredTerminalLeaveDays < 0 {
			errs = append(errs, FieldError{"desiredTerminalLeaveDays", "terminal leave days cannot be negative"})
		}
		if r.PTDYDays < 0 {
			errs = append(errs, FieldError{"ptdyDays", "PTDY days cannot be negative"})
		}
		if r.CSPDays < 0 {
			errs = append(errs, FieldError{"cspDays", "CSP days cannot be negative"})
		}
		if r.RetirementDate != "" {
			d, err := time.Parse("2006-01-02", r.RetirementDate)
			if err != nil {
				errs = append(errs, FieldError{"retirementDate", "must be a YYYY-MM-DD date"})
			} else if d.Before(now.UTC().Truncate(24 * time.Hour)) {
				errs = append(errs, FieldError{"retirementDate", "retirement date is in the past"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
