package models

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validProfile() *UserProfile {
	return &UserProfile{
		TargetRole: "Cloud Engineer",
		Documents: []DocumentFile{
			{FileName: "resume.pdf", MimeType: "application/pdf", Data: "aGk="},
		},
		Retirement: &RetirementLogistics{
			RetirementDate:           "2027-03-31",
			CurrentLeaveBalance:      75,
			DesiredTerminalLeaveDays: 60,
			PTDYDays:                 10,
		},
	}
}

func TestValidateOK(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	if err := validProfile().Validate(now); err != nil {
		t.Errorf("Expected valid profile, got %v", err)
	}

	// Retirement logistics are optional.
	p := validProfile()
	p.Retirement = nil
	if err := p.Validate(now); err != nil {
		t.Errorf("Expected valid profile without retirement, got %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mutate    func(*UserProfile)
		wantField string
	}{
		{"missing role", func(p *UserProfile) { p.TargetRole = "  " }, "targetRole"},
		{"no documents", func(p *UserProfile) { p.Documents = nil }, "documents"},
		{"negative leave", func(p *UserProfile) { p.Retirement.CurrentLeaveBalance = -1 }, "currentLeaveBalance"},
		{"negative terminal", func(p *UserProfile) { p.Retirement.DesiredTerminalLeaveDays = -5 }, "desiredTerminalLeaveDays"},
		{"negative ptdy", func(p *UserProfile) { p.Retirement.PTDYDays = -1 }, "ptdyDays"},
		{"negative csp", func(p *UserProfile) { p.Retirement.CSPDays = -1 }, "cspDays"},
		{"bad date", func(p *UserProfile) { p.Retirement.RetirementDate = "31/03/2027" }, "retirementDate"},
		{"past date", func(p *UserProfile) { p.Retirement.RetirementDate = "2020-01-01" }, "retirementDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)

			err := p.Validate(now)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Expected ValidationErrors, got %T", err)
			}
			found := false
			for _, fe := range verrs {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected a %s error, got %v", tt.wantField, verrs)
			}
		})
	}
}

func TestValidateCollectsAllFailures(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	p := &UserProfile{
		Retirement: &RetirementLogistics{CurrentLeaveBalance: -1, RetirementDate: "bogus"},
	}

	err := p.Validate(now)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 4 {
		t.Errorf("Expected 4 failures, got %d: %v", len(verrs), verrs)
	}
	if !strings.Contains(err.Error(), "targetRole") || !strings.Contains(err.Error(), "retirementDate") {
		t.Errorf("Error message should list all fields, got %q", err.Error())
	}
}
