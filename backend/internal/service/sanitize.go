package service

import (
	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer strips unsafe markup from the free-text fields editors type
// into. Structured fields (times, roles, dates) are left to the rules engine.
type HTMLSanitizer struct {
	text *bluemonday.Policy // free text: welcome message, descriptions
	name *bluemonday.Policy // single-line fields: names, titles
}

func NewSanitizer() *HTMLSanitizer {
	return &HTMLSanitizer{
		text: bluemonday.UGCPolicy(),
		name: bluemonday.StrictPolicy(),
	}
}

func (s *HTMLSanitizer) Sanitize(b *domain.Bulletin) {
	b.ChurchName = s.name.Sanitize(b.ChurchName)
	b.WelcomeMessage = s.text.Sanitize(b.WelcomeMessage)

	for i := range b.Announcements {
		a := &b.Announcements[i]
		a.Title = s.name.Sanitize(a.Title)
		a.Description = s.text.Sanitize(a.Description)
	}
	for i := range b.FaithPrinciples {
		b.FaithPrinciples[i] = s.name.Sanitize(b.FaithPrinciples[i])
	}
}
