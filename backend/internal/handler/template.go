package handler

import (
	"net/http"

	"github.com/bulletin-dev/bulletin/shared/api"
	"github.com/bulletin-dev/bulletin/shared/utils"
)

func (h *Handler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, api.TemplateListResponse{Templates: h.template.List()})
}

// FromTemplate expands a named template into a fresh draft for the given
// date. Nothing is persisted; the editor saves the draft separately.
func (h *Handler) FromTemplate(w http.ResponseWriter, r *http.Request) {
	var body api.FromTemplateRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	b, err := h.template.Expand(body.Template, body.Date, body.RotationWeeks)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.BulletinResponse{Bulletin: b})
}

func (h *Handler) DutyRotation(w http.ResponseWriter, r *http.Request) {
	var body api.DutyRotationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	entries, err := h.template.Rotation(body.Start, body.Weeks)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.DutyRotationResponse{Entries: entries})
}
