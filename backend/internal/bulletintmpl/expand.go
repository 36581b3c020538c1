// Package bulletintmpl scaffolds new bulletin drafts from named templates
// and generates multi-week duty rotations.
package bulletintmpl

import (
	"time"

	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/google/uuid"
)

// Expand builds a draft from a template and an anchor date. Every slice is
// deep-copied and every service gets a fresh id, so the draft shares no
// mutable state with the template or with other drafts. A nil template is a
// caller bug and panics.
func Expand(tpl *domain.Template, anchor time.Time) *domain.Bulletin {
	if tpl == nil {
		panic("bulletintmpl: Expand called with nil template")
	}

	b := &domain.Bulletin{
		BulletinMetadata: domain.BulletinMetadata{Date: anchor},
		WelcomeMessage:   tpl.WelcomeMessage,
		Services:         make([]domain.ServiceSchedule, len(tpl.Services)),
		Announcements:    []domain.Announcement{},
		DutySchedule:     []domain.DutyEntry{},
		FaithPrinciples:  append([]string(nil), tpl.FaithPrinciples...),
		Contacts: domain.ContactBook{
			Departments: append([]domain.Department(nil), tpl.Departments...),
		},
	}

	for i, svc := range tpl.Services {
		b.Services[i] = copyService(svc)
	}

	return b
}

func copyService(svc domain.ServiceSchedule) domain.ServiceSchedule {
	out := svc
	out.Id = uuid.NewString()
	out.Roles = append([]domain.RoleAssignment(nil), svc.Roles...)
	out.Program = append([]domain.ProgramItem(nil), svc.Program...)
	return out
}
