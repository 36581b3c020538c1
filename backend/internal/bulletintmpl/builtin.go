package bulletintmpl

import (
	"github.com/bulletin-dev/bulletin/shared/domain"
)

// Built-in templates are reference data: Expand deep-copies everything it
// hands out, so nothing here is ever mutated by a draft.
var builtin = []domain.Template{sabbathStandard}

var sabbathStandard = domain.Template{
	Name:           "sabbath-standard",
	WelcomeMessage: "Happy Sabbath! We are glad you are worshipping with us today.",
	Services: []domain.ServiceSchedule{
		{
			Name:      "Song Service",
			Type:      domain.SongService,
			StartTime: "09:00",
			EndTime:   "09:20",
			Roles: []domain.RoleAssignment{
				{Role: domain.RolePulpitManager},
				{Role: domain.RolePianist},
				{Role: "song_leader"},
			},
		},
		{
			Name:      "Sabbath School",
			Type:      domain.SabbathSchool,
			StartTime: "09:30",
			EndTime:   "10:40",
			Roles: []domain.RoleAssignment{
				{Role: domain.RolePulpitManager},
				{Role: domain.RolePianist},
				{Role: "lesson_leader"},
				{Role: "mission_story"},
			},
		},
		{
			Name:      "First Service",
			Type:      domain.FirstService,
			StartTime: "11:00",
			EndTime:   "12:15",
			Roles: []domain.RoleAssignment{
				{Role: domain.RolePulpitManager},
				{Role: domain.RolePianist},
				{Role: domain.RoleOpeningPrayer},
				{Role: "preacher"},
				{Role: "scripture_reading"},
			},
		},
		{
			Name:      "Second Service",
			Type:      domain.SecondService,
			StartTime: "13:30",
			EndTime:   "14:30",
			Roles: []domain.RoleAssignment{
				{Role: domain.RolePulpitManager},
				{Role: domain.RolePianist},
				{Role: domain.RoleOpeningPrayer},
				{Role: "preacher"},
			},
		},
	},
	Roles: []domain.RoleName{
		domain.RolePulpitManager,
		domain.RolePianist,
		domain.RoleOpeningPrayer,
		"song_leader",
		"lesson_leader",
		"preacher",
		"scripture_reading",
	},
	FaithPrinciples: []string{
		"The Holy Scriptures",
		"The Trinity",
		"Salvation by faith in Christ",
		"The Sabbath",
		"The Second Coming",
	},
	Departments: []domain.Department{
		{Name: "Sabbath School"},
		{Name: "Youth"},
		{Name: "Music"},
		{Name: "Community Services"},
	},
}

// Builtin returns the named built-in template, or nil if unknown.
func Builtin(name domain.TemplateName) *domain.Template {
	for i := range builtin {
		if builtin[i].Name == name {
			return &builtin[i]
		}
	}
	return nil
}

// BuiltinNames lists the available template names in registration order.
func BuiltinNames() []domain.TemplateName {
	names := make([]domain.TemplateName, len(builtin))
	for i := range builtin {
		names[i] = builtin[i].Name
	}
	return names
}
