package bulletintmpl

import (
	"fmt"
	"strings"

	"github.com/bulletin-dev/bulletin/backend/internal/timeslot"
	"github.com/bulletin-dev/bulletin/shared/domain"
)

// ValidateTemplate checks template integrity only: a usable name, at least
// one default service, and sane service windows. Templates carry no dates,
// contacts or announcements, so the full bulletin rule set does not apply.
func ValidateTemplate(tpl *domain.Template) []string {
	if tpl == nil {
		panic("bulletintmpl: ValidateTemplate called with nil template")
	}

	var problems []string

	if strings.TrimSpace(tpl.Name) == "" {
		problems = append(problems, "template name must not be empty")
	}
	if len(tpl.Services) == 0 {
		problems = append(problems, "template must define at least one default service")
	}
	for i, svc := range tpl.Services {
		iv, err := timeslot.ParseInterval(svc.StartTime, svc.EndTime)
		if err != nil {
			problems = append(problems, fmt.Sprintf("service %d (%s): %v", i, svc.Name, err))
			continue
		}
		if iv.Start >= iv.End {
			problems = append(problems, fmt.Sprintf("service %d (%s): start time must be before end time", i, svc.Name))
		}
	}

	return problems
}
