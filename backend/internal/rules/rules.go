// Package rules checks a bulletin draft against the editorial rule set and
// reports every violation it finds as a severity-tagged issue. It never
// rejects a draft itself; callers decide what an error-severity issue blocks.
package rules

import (
	"time"

	"github.com/bulletin-dev/bulletin/shared/domain"
)

// Rule inspects a draft and returns the issues it found. Rules are
// independent; none may assume another already ran.
type Rule func(b *domain.Bulletin) []domain.ValidationIssue

// RequiredServiceTypes is the minimal service set every bulletin must schedule.
var RequiredServiceTypes = []domain.ServiceType{
	domain.SongService,
	domain.SabbathSchool,
	domain.FirstService,
}

// KeyServiceRoles must have an assigned person in every service.
var KeyServiceRoles = []domain.RoleName{
	domain.RolePulpitManager,
	domain.RolePianist,
}

// RequiredDutyRoles must appear in every duty rotation entry.
var RequiredDutyRoles = []domain.RoleName{
	domain.RolePulpitManager,
	domain.RoleOpeningPrayer,
}

type Validator struct {
	// WorshipWeekday is the expected weekday of a bulletin date.
	WorshipWeekday time.Weekday
	// Now is swappable in tests for the past-date check.
	Now func() time.Time

	rules []Rule
}

func New() *Validator {
	v := &Validator{
		WorshipWeekday: time.Saturday,
		Now:            time.Now,
	}
	v.rules = []Rule{
		v.requiredFields,
		v.dateSanity,
		v.serviceRules,
		v.announcementRules,
		v.dutyRules,
		v.contactRules,
	}
	return v
}

// Validate runs every rule group in order and concatenates their findings.
// It never short-circuits, so one call surfaces the complete defect set.
// A nil bulletin is a caller bug and panics.
func (v *Validator) Validate(b *domain.Bulletin) []domain.ValidationIssue {
	if b == nil {
		panic("rules: Validate called with nil bulletin")
	}
	issues := []domain.ValidationIssue{}
	for _, rule := range v.rules {
		issues = append(issues, rule(b)...)
	}
	return issues
}

func errorIssue(field, message string) domain.ValidationIssue {
	return domain.ValidationIssue{Field: field, Message: message, Severity: domain.SeverityError}
}

func warningIssue(field, message string) domain.ValidationIssue {
	return domain.ValidationIssue{Field: field, Message: message, Severity: domain.SeverityWarning}
}
