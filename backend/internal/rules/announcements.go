package rules

import (
	"fmt"
	"strings"

	"github.com/bulletin-dev/bulletin/shared/domain"
)

func (v *Validator) announcementRules(b *domain.Bulletin) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	for i, a := range b.Announcements {
		field := fmt.Sprintf("announcements[%d]", i)

		if strings.TrimSpace(a.Title) == "" {
			issues = append(issues, errorIssue(field+".title", "Announcement title is required"))
		}
		if strings.TrimSpace(a.Description) == "" {
			issues = append(issues, errorIssue(field+".description",
				fmt.Sprintf("Announcement %q has no description", a.Title)))
		}
		if a.StartDate != nil && a.EndDate != nil && a.StartDate.After(*a.EndDate) {
			issues = append(issues, errorIssue(field+".start_date",
				fmt.Sprintf("Announcement %q starts after it ends", a.Title)))
		}
		if a.RegistrationLink != "" && strings.TrimSpace(a.ContactPerson) == "" {
			issues = append(issues, warningIssue(field+".contact_person",
				fmt.Sprintf("Announcement %q has a registration link but no contact person", a.Title)))
		}
		if a.Payment != nil && a.Payment.Amount <= 0 {
			issues = append(issues, errorIssue(field+".payment.amount",
				fmt.Sprintf("Announcement %q has a payment block with a non-positive amount", a.Title)))
		}
	}

	return issues
}
