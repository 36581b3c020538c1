package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/bulletin-dev/bulletin/shared/domain"
)

func (v *Validator) requiredFields(b *domain.Bulletin) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	if b.Date.IsZero() {
		issues = append(issues, errorIssue("date", "Bulletin date is required"))
	}
	if strings.TrimSpace(b.ChurchName) == "" {
		issues = append(issues, errorIssue("church_name", "Church name is required"))
	}
	if strings.TrimSpace(b.WelcomeMessage) == "" {
		issues = append(issues, errorIssue("welcome_message", "Welcome message is required"))
	}

	return issues
}

func (v *Validator) dateSanity(b *domain.Bulletin) []domain.ValidationIssue {
	if b.Date.IsZero() {
		// absence already reported by requiredFields
		return nil
	}

	var issues []domain.ValidationIssue

	today := dateOnly(v.Now())
	if dateOnly(b.Date).Before(today) {
		issues = append(issues, warningIssue("date", "Bulletin date is in the past"))
	}
	if b.Date.Weekday() != v.WorshipWeekday {
		issues = append(issues, warningIssue("date",
			fmt.Sprintf("Bulletin date falls on %s, not on the %s worship day", b.Date.Weekday(), v.WorshipWeekday)))
	}

	return issues
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
