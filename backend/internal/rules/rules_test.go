package rules

import (
	"testing"
	"time"

	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-03 is a Saturday; the fixed clock sits two days before it.
var (
	fixedNow     = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	saturdayDate = time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
)

func newTestValidator() *Validator {
	v := New()
	v.Now = func() time.Time { return fixedNow }
	return v
}

func service(t domain.ServiceType, name, start, end string) domain.ServiceSchedule {
	return domain.ServiceSchedule{
		Id:        name,
		Name:      name,
		Type:      t,
		StartTime: start,
		EndTime:   end,
		Roles: []domain.RoleAssignment{
			{Role: domain.RolePulpitManager, Person: "A. Elder"},
			{Role: domain.RolePianist, Person: "B. Keys"},
		},
	}
}

// validBulletin satisfies every error- and warning-level rule.
func validBulletin() *domain.Bulletin {
	return &domain.Bulletin{
		BulletinMetadata: domain.BulletinMetadata{
			Date:       saturdayDate,
			ChurchName: "Hope Church",
		},
		WelcomeMessage: "Happy Sabbath, welcome to worship with us.",
		Services: []domain.ServiceSchedule{
			service(domain.SongService, "Song Service", "09:00", "09:20"),
			service(domain.SabbathSchool, "Sabbath School", "09:30", "10:40"),
			service(domain.FirstService, "First Service", "11:00", "12:15"),
		},
		Contacts: domain.ContactBook{
			Pastors: []domain.Pastor{
				{Name: "J. Shepherd", Phone: "+372 5123 4567", Email: "pastor@example.org"},
			},
		},
	}
}

func severityCount(issues []domain.ValidationIssue, s domain.Severity) int {
	n := 0
	for _, i := range issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

func TestValidateCleanDraft(t *testing.T) {
	v := newTestValidator()
	issues := v.Validate(validBulletin())
	assert.Empty(t, issues)
	assert.False(t, domain.HasErrors(issues))
}

func TestValidateNilBulletinPanics(t *testing.T) {
	v := newTestValidator()
	assert.Panics(t, func() { v.Validate(nil) })
}

func TestValidateRequiredFields(t *testing.T) {
	v := newTestValidator()
	b := validBulletin()
	b.Date = time.Time{}
	b.ChurchName = ""
	b.WelcomeMessage = "   "

	issues := v.Validate(b)
	require.GreaterOrEqual(t, len(issues), 3)

	fields := []string{issues[0].Field, issues[1].Field, issues[2].Field}
	assert.Equal(t, []string{"date", "church_name", "welcome_message"}, fields)
	for _, i := range issues[:3] {
		assert.Equal(t, domain.SeverityError, i.Severity)
	}
}

func TestValidateDateSanity(t *testing.T) {
	v := newTestValidator()

	t.Run("PastDate", func(t *testing.T) {
		b := validBulletin()
		b.Date = time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC) // a past Saturday
		issues := v.Validate(b)
		require.Len(t, issues, 1)
		assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "past")
	})

	t.Run("WrongWeekday", func(t *testing.T) {
		b := validBulletin()
		b.Date = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) // Monday
		issues := v.Validate(b)
		require.Len(t, issues, 1)
		assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "Monday")
	})

	t.Run("ConfiguredWeekday", func(t *testing.T) {
		sunday := newTestValidator()
		sunday.WorshipWeekday = time.Sunday
		b := validBulletin()
		b.Date = time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC) // Sunday
		assert.Empty(t, sunday.Validate(b))
	})

	t.Run("MissingDateSkipsSanityChecks", func(t *testing.T) {
		b := validBulletin()
		b.Date = time.Time{}
		issues := v.Validate(b)
		require.Len(t, issues, 1) // only the required-field error
		assert.Equal(t, domain.SeverityError, issues[0].Severity)
	})
}

func TestValidateGroupOrdering(t *testing.T) {
	v := newTestValidator()
	b := validBulletin()
	b.ChurchName = ""                                            // group 1: error
	b.Date = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)         // group 2: weekday warning
	b.Services[1].StartTime = "08:30"                            // group 3: overlap with song service? no: 08:30-10:40 vs 09:00-09:20 overlaps
	b.Announcements = []domain.Announcement{{Title: "Bake sale"}} // group 4: missing description
	now := saturdayDate
	b.DutySchedule = []domain.DutyEntry{{Date: &now}} // group 5: missing required roles
	b.Contacts.Pastors = nil                          // group 6: no pastors

	issues := v.Validate(b)
	require.NotEmpty(t, issues)

	groupOf := func(field string) int {
		switch {
		case field == "church_name":
			return 1
		case field == "date":
			return 2
		case len(field) >= 8 && field[:8] == "services":
			return 3
		case len(field) >= 13 && field[:13] == "announcements":
			return 4
		case len(field) >= 13 && field[:13] == "duty_schedule":
			return 5
		default:
			return 6
		}
	}
	last := 0
	for _, i := range issues {
		g := groupOf(i.Field)
		assert.GreaterOrEqual(t, g, last, "issue %+v out of group order", i)
		if g > last {
			last = g
		}
	}
	assert.Equal(t, 6, last, "expected findings from every rule group")
}

func TestHasErrors(t *testing.T) {
	assert.False(t, domain.HasErrors(nil))
	assert.False(t, domain.HasErrors([]domain.ValidationIssue{
		{Severity: domain.SeverityWarning},
	}))
	assert.True(t, domain.HasErrors([]domain.ValidationIssue{
		{Severity: domain.SeverityWarning},
		{Severity: domain.SeverityError},
	}))
}
