package rules

import (
	"strings"
	"testing"

	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuesContaining(issues []domain.ValidationIssue, substr string) []domain.ValidationIssue {
	var out []domain.ValidationIssue
	for _, i := range issues {
		if strings.Contains(i.Message, substr) {
			out = append(out, i)
		}
	}
	return out
}

func TestServiceWindowOrdering(t *testing.T) {
	v := newTestValidator()
	b := validBulletin()
	b.Services[0].StartTime = "09:30"
	b.Services[0].EndTime = "09:30" // zero-length window

	issues := v.Validate(b)
	bad := issuesContaining(issues, "starts at or after")
	require.Len(t, bad, 1)
	assert.Equal(t, domain.SeverityError, bad[0].Severity)
	assert.Equal(t, "services[0]", bad[0].Field)
}

func TestServiceOverlap(t *testing.T) {
	v := newTestValidator()

	t.Run("BackToBackDoesNotOverlap", func(t *testing.T) {
		b := validBulletin()
		b.Services[0] = service(domain.SongService, "Song Service", "09:00", "10:30")
		b.Services[1] = service(domain.SabbathSchool, "Sabbath School", "10:30", "11:00")
		b.Services[2] = service(domain.FirstService, "First Service", "11:00", "12:15")
		assert.Empty(t, issuesContaining(v.Validate(b), "overlaps"))
	})

	t.Run("OverlappingWindowsWarnOnce", func(t *testing.T) {
		b := validBulletin()
		b.Services[0] = service(domain.SongService, "Song Service", "09:00", "10:30")
		b.Services[1] = service(domain.SabbathSchool, "Sabbath School", "10:00", "10:45")

		overlaps := issuesContaining(v.Validate(b), "overlaps")
		require.Len(t, overlaps, 1)
		assert.Equal(t, domain.SeverityWarning, overlaps[0].Severity)
		// the warning names both conflicting services
		assert.Contains(t, overlaps[0].Message, "Song Service")
		assert.Contains(t, overlaps[0].Message, "Sabbath School")
	})

	t.Run("MalformedTimeSkipsOverlapCheck", func(t *testing.T) {
		b := validBulletin()
		b.Services[0].StartTime = "late morning"
		issues := v.Validate(b)
		assert.Empty(t, issuesContaining(issues, "overlaps"))

		bad := issuesContaining(issues, "invalid start time")
		require.Len(t, bad, 1)
		assert.Equal(t, domain.SeverityError, bad[0].Severity)
		assert.Equal(t, "services[0].start_time", bad[0].Field)
	})
}

func TestRequiredServiceSet(t *testing.T) {
	v := newTestValidator()
	b := validBulletin()
	b.Services = b.Services[:1] // song service only

	issues := v.Validate(b)
	missing := issuesContaining(issues, "Missing required service")
	require.Len(t, missing, 2)
	assert.Contains(t, missing[0].Message, "Sabbath school")
	assert.Contains(t, missing[1].Message, "first service")
	for _, i := range missing {
		assert.Equal(t, domain.SeverityError, i.Severity)
	}
}

func TestKeyRoleWarnings(t *testing.T) {
	v := newTestValidator()
	b := validBulletin()
	b.Services[2].Roles = []domain.RoleAssignment{
		{Role: domain.RolePulpitManager, Person: "A. Elder"},
		{Role: domain.RolePianist}, // role listed but nobody assigned
	}

	issues := v.Validate(b)
	warnings := issuesContaining(issues, "no assigned pianist")
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.SeverityWarning, warnings[0].Severity)
	assert.Equal(t, "services[2].roles", warnings[0].Field)
}
