package rules

import (
	"fmt"

	"github.com/bulletin-dev/bulletin/backend/internal/timeslot"
	"github.com/bulletin-dev/bulletin/shared/domain"
)

var serviceTypeNames = map[domain.ServiceType]string{
	domain.SongService:   "song service",
	domain.SabbathSchool: "Sabbath school",
	domain.FirstService:  "first service",
	domain.SecondService: "second service",
}

var roleNames = map[domain.RoleName]string{
	domain.RolePulpitManager: "pulpit manager",
	domain.RolePianist:       "pianist",
	domain.RoleOpeningPrayer: "opening prayer",
}

func serviceLabel(s domain.ServiceSchedule) string {
	if s.Name != "" {
		return s.Name
	}
	if n, ok := serviceTypeNames[s.Type]; ok {
		return n
	}
	return "service"
}

func (v *Validator) serviceRules(b *domain.Bulletin) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	// Parse every window once. A malformed time blocks the overlap check for
	// that service, so it is an error rather than a silently skipped warning.
	intervals := make([]*timeslot.Interval, len(b.Services))
	for i, svc := range b.Services {
		field := fmt.Sprintf("services[%d]", i)

		start, startErr := timeslot.ParseClock(svc.StartTime)
		if startErr != nil {
			issues = append(issues, errorIssue(field+".start_time",
				fmt.Sprintf("Service %q has an invalid start time %q", serviceLabel(svc), svc.StartTime)))
		}
		end, endErr := timeslot.ParseClock(svc.EndTime)
		if endErr != nil {
			issues = append(issues, errorIssue(field+".end_time",
				fmt.Sprintf("Service %q has an invalid end time %q", serviceLabel(svc), svc.EndTime)))
		}
		if startErr != nil || endErr != nil {
			continue
		}

		if start >= end {
			issues = append(issues, errorIssue(field,
				fmt.Sprintf("Service %q starts at or after its end time", serviceLabel(svc))))
		}
		intervals[i] = &timeslot.Interval{Start: start, End: end}
	}

	// Pairwise overlap over every unordered pair with usable windows.
	for i := range b.Services {
		if intervals[i] == nil {
			continue
		}
		for j := i + 1; j < len(b.Services); j++ {
			if intervals[j] == nil {
				continue
			}
			if timeslot.Overlaps(*intervals[i], *intervals[j]) {
				issues = append(issues, warningIssue(fmt.Sprintf("services[%d]", i),
					fmt.Sprintf("Service %q overlaps with service %q",
						serviceLabel(b.Services[i]), serviceLabel(b.Services[j]))))
			}
		}
	}

	// Minimal required service set.
	present := make(map[domain.ServiceType]bool, len(b.Services))
	for _, svc := range b.Services {
		present[svc.Type] = true
	}
	for _, required := range RequiredServiceTypes {
		if !present[required] {
			issues = append(issues, errorIssue("services",
				fmt.Sprintf("Missing required service: %s", serviceTypeNames[required])))
		}
	}

	// Key roles need an assigned person in every service.
	for i, svc := range b.Services {
		for _, role := range KeyServiceRoles {
			if !hasAssignedRole(svc.Roles, role) {
				issues = append(issues, warningIssue(fmt.Sprintf("services[%d].roles", i),
					fmt.Sprintf("Service %q has no assigned %s", serviceLabel(svc), roleNames[role])))
			}
		}
	}

	return issues
}

func hasAssignedRole(roles []domain.RoleAssignment, role domain.RoleName) bool {
	for _, r := range roles {
		if r.Role == role && r.Person != "" {
			return true
		}
	}
	return false
}
