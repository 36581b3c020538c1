package bulletintmpl

import (
	"time"

	"github.com/bulletin-dev/bulletin/shared/domain"
)

// DefaultRotationWeeks is the usual planning horizon, not a hard limit.
const DefaultRotationWeeks = 8

var rotationRoles = []domain.RoleName{
	domain.RolePulpitManager,
	domain.RoleOpeningPrayer,
}

var rotationSlots = []domain.ServiceSlot{
	domain.SlotFirst,
	domain.SlotSecond,
}

// DutyRotation produces one entry per week starting at anchor, each seeded
// with empty-person placeholders for every rotation role in both services.
func DutyRotation(anchor time.Time, weeks int) []domain.DutyEntry {
	entries := []domain.DutyEntry{}
	for week := 0; week < weeks; week++ {
		date := anchor.AddDate(0, 0, 7*week)
		entry := domain.DutyEntry{Date: &date}
		for _, role := range rotationRoles {
			for _, slot := range rotationSlots {
				entry.Assignments = append(entry.Assignments, domain.DutyAssignment{
					Role:    role,
					Service: slot,
				})
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
