package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bulletin-dev/bulletin/shared/api"
	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/bulletin-dev/bulletin/shared/utils"
	"github.com/gorilla/mux"
)

// CreateBulletin saves a new draft. Incomplete drafts are fine as long as the
// rules engine finds no error-severity issues; those come back as 422 with
// the issue list.
func (h *Handler) CreateBulletin(w http.ResponseWriter, r *http.Request) {
	var body api.SaveBulletinRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	b := body.Bulletin
	saved, issues, err := h.bulletin.Create(domain.BulletinCreationData{
		Date:            b.Date,
		ChurchName:      b.ChurchName,
		ChurchAddress:   b.ChurchAddress,
		WelcomeMessage:  b.WelcomeMessage,
		Services:        b.Services,
		Announcements:   b.Announcements,
		DutySchedule:    b.DutySchedule,
		FaithPrinciples: b.FaithPrinciples,
		Contacts:        b.Contacts,
	})
	if err != nil {
		if len(issues) > 0 {
			writeIssues(w, http.StatusUnprocessableEntity, issues)
			return
		}
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(api.BulletinResponse{Bulletin: saved, Issues: issues}); err != nil {
		slog.Error("encoding response", "err", err)
	}
}

func (h *Handler) GetBulletin(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(mux.Vars(r)["id"], "bulletin id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.bulletin.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.BulletinResponse{Bulletin: b})
}

func (h *Handler) GetBulletins(w http.ResponseWriter, r *http.Request) {
	bulletins, err := h.bulletin.GetAll()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.BulletinListResponse{Bulletins: bulletins})
}

func (h *Handler) UpdateBulletin(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(mux.Vars(r)["id"], "bulletin id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.SaveBulletinRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	b := body.Bulletin
	b.Id = id // the path wins over whatever the document says

	issues, err := h.bulletin.Update(&b)
	if err != nil {
		if len(issues) > 0 {
			writeIssues(w, http.StatusUnprocessableEntity, issues)
			return
		}
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, api.BulletinResponse{Bulletin: &b, Issues: issues})
}

func (h *Handler) DeleteBulletin(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(mux.Vars(r)["id"], "bulletin id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.bulletin.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ValidateBulletin runs the rules engine on a draft without saving anything.
// Always 200; problems live in the issue list, not the status code.
func (h *Handler) ValidateBulletin(w http.ResponseWriter, r *http.Request) {
	var body api.SaveBulletinRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	issues := h.bulletin.Check(&body.Bulletin)
	utils.WriteJSON(w, api.ValidationResponse{Issues: issues, HasErrors: domain.HasErrors(issues)})
}
