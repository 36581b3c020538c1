package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bulletin-dev/bulletin/backend/internal/bulletintmpl"
	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/bulletin-dev/bulletin/shared/errors"
)

type TemplateService interface {
	List() []domain.Template
	Expand(name domain.TemplateName, date time.Time, weeks int) (*domain.Bulletin, error)
	Rotation(start time.Time, weeks int) ([]domain.DutyEntry, error)
}

type Template struct {
	defaultWeeks int
}

func NewTemplate(defaultWeeks int) TemplateService {
	if defaultWeeks <= 0 {
		defaultWeeks = bulletintmpl.DefaultRotationWeeks
	}
	return &Template{defaultWeeks: defaultWeeks}
}

func (t *Template) List() []domain.Template {
	names := bulletintmpl.BuiltinNames()
	templates := make([]domain.Template, 0, len(names))
	for _, name := range names {
		templates = append(templates, *bulletintmpl.Builtin(name))
	}
	return templates
}

// Expand scaffolds a draft from a named template, including a duty-rotation
// skeleton starting on the bulletin date.
func (t *Template) Expand(name domain.TemplateName, date time.Time, weeks int) (*domain.Bulletin, error) {
	tpl := bulletintmpl.Builtin(name)
	if tpl == nil {
		return nil, &errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unknown template %q", name), StatusCode: http.StatusNotFound}
	}
	if problems := bulletintmpl.ValidateTemplate(tpl); len(problems) > 0 {
		// built-ins are checked in tests; a broken one is a deployment bug
		return nil, &errors.ErrorWithStatusCode{Message: fmt.Sprintf("Template %q is invalid: %v", name, problems), StatusCode: http.StatusInternalServerError}
	}

	if weeks == 0 {
		weeks = t.defaultWeeks
	}
	if weeks < 0 {
		return nil, &errors.ErrorWithStatusCode{Message: "Week count must be positive", StatusCode: http.StatusBadRequest}
	}

	b := bulletintmpl.Expand(tpl, date)
	b.DutySchedule = bulletintmpl.DutyRotation(date, weeks)
	return b, nil
}

func (t *Template) Rotation(start time.Time, weeks int) ([]domain.DutyEntry, error) {
	if weeks == 0 {
		weeks = t.defaultWeeks
	}
	if weeks < 0 {
		return nil, &errors.ErrorWithStatusCode{Message: "Week count must be positive", StatusCode: http.StatusBadRequest}
	}
	return bulletintmpl.DutyRotation(start, weeks), nil
}
