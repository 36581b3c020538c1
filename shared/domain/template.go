package domain

// Template is a named bundle of defaults used to scaffold a new bulletin.
// Templates are immutable reference data; expansion deep-copies everything
// so drafts never alias template state.
type Template struct {
	Name            TemplateName      `json:"name"`
	WelcomeMessage  string            `json:"welcome_message"`
	Services        []ServiceSchedule `json:"services"`
	Roles           []RoleName        `json:"roles"`
	FaithPrinciples []string          `json:"faith_principles"`
	Departments     []Department      `json:"departments"`
}
