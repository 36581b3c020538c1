package api

import (
	"time"

	"github.com/bulletin-dev/bulletin/shared/domain"
)

// Request and response DTOs shared by the backend handlers and API clients.

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SaveBulletinRequest carries a full draft document. Drafts are allowed to be
// incomplete; completeness is the rules engine's business, not the decoder's.
type SaveBulletinRequest struct {
	Bulletin domain.Bulletin `json:"bulletin"`
}

type BulletinResponse struct {
	Bulletin *domain.Bulletin `json:"bulletin"`
	// Issues from the validation pass that accompanied the save.
	Issues []domain.ValidationIssue `json:"issues,omitempty"`
}

type BulletinListResponse struct {
	Bulletins []domain.BulletinMetadata `json:"bulletins"`
}

type ValidationResponse struct {
	Issues    []domain.ValidationIssue `json:"issues"`
	HasErrors bool                     `json:"has_errors"`
}

type FromTemplateRequest struct {
	Template string    `json:"template" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	// RotationWeeks of 0 means the configured default horizon.
	RotationWeeks int `json:"rotation_weeks,omitempty"`
}

type DutyRotationRequest struct {
	Start time.Time `json:"start" validate:"required"`
	Weeks int       `json:"weeks,omitempty"`
}

type DutyRotationResponse struct {
	Entries []domain.DutyEntry `json:"entries"`
}

type TemplateListResponse struct {
	Templates []domain.Template `json:"templates"`
}
