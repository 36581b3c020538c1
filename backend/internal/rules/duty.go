package rules

import (
	"fmt"
	"strings"

	"github.com/bulletin-dev/bulletin/shared/domain"
)

func (v *Validator) dutyRules(b *domain.Bulletin) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	for i, entry := range b.DutySchedule {
		field := fmt.Sprintf("duty_schedule[%d]", i)

		if entry.Date == nil || entry.Date.IsZero() {
			issues = append(issues, errorIssue(field+".date", "Duty entry has no date"))
		}

		for _, role := range RequiredDutyRoles {
			if !hasDutyRole(entry.Assignments, role) {
				issues = append(issues, warningIssue(field+".assignments",
					fmt.Sprintf("Duty entry is missing the %s role", roleNames[role])))
			}
		}

		// One aggregated error per entry no matter how many pairs repeat.
		if dups := duplicatePairs(entry.Assignments); len(dups) > 0 {
			issues = append(issues, errorIssue(field+".assignments",
				fmt.Sprintf("Duty entry assigns the same role and service more than once: %s",
					strings.Join(dups, ", "))))
		}
	}

	return issues
}

func hasDutyRole(assignments []domain.DutyAssignment, role domain.RoleName) bool {
	for _, a := range assignments {
		if a.Role == role {
			return true
		}
	}
	return false
}

// duplicatePairs returns every (role, service) pair that appears more than
// once, each listed once, in first-occurrence order.
func duplicatePairs(assignments []domain.DutyAssignment) []string {
	seen := make(map[string]int, len(assignments))
	var dups []string
	for _, a := range assignments {
		key := fmt.Sprintf("%s/%s", a.Role, a.Service)
		seen[key]++
		if seen[key] == 2 {
			dups = append(dups, key)
		}
	}
	return dups
}
