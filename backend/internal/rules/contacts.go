package rules

import (
	"fmt"
	"regexp"

	"github.com/bulletin-dev/bulletin/shared/domain"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s()\-]{5,18}[0-9]$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func (v *Validator) contactRules(b *domain.Bulletin) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	if len(b.Contacts.Pastors) == 0 {
		issues = append(issues, errorIssue("contacts.pastors", "At least one pastor contact is required"))
	}

	for i, p := range b.Contacts.Pastors {
		field := fmt.Sprintf("contacts.pastors[%d]", i)
		if p.Phone != "" && !phoneRe.MatchString(p.Phone) {
			issues = append(issues, warningIssue(field+".phone",
				fmt.Sprintf("Pastor %q has a malformed phone number %q", p.Name, p.Phone)))
		}
		if p.Email != "" && !emailRe.MatchString(p.Email) {
			issues = append(issues, warningIssue(field+".email",
				fmt.Sprintf("Pastor %q has a malformed email %q", p.Name, p.Email)))
		}
	}

	for i, d := range b.Contacts.Departments {
		field := fmt.Sprintf("contacts.departments[%d]", i)
		if d.Phone != "" && !phoneRe.MatchString(d.Phone) {
			issues = append(issues, warningIssue(field+".phone",
				fmt.Sprintf("Department %q has a malformed phone number %q", d.Name, d.Phone)))
		}
		if d.Email != "" && !emailRe.MatchString(d.Email) {
			issues = append(issues, warningIssue(field+".email",
				fmt.Sprintf("Department %q has a malformed email %q", d.Name, d.Email)))
		}
	}

	return issues
}
