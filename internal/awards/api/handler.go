package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/auth"
	"tcpworld-api/internal/awards"
	"tcpworld-api/internal/logger"
	"tcpworld-api/internal/models"
	"tcpworld-api/internal/utils"
	"tcpworld-api/internal/validation"
)

type Handler struct {
	Awards *awards.Service
	Logger *logger.Logger
}

func NewHandler(awardService *awards.Service, log *logger.Logger) *Handler {
	return &Handler{Awards: awardService, Logger: log}
}

func (h *Handler) ListAwards(w http.ResponseWriter, r *http.Request) {
	filter := models.AwardFilter{Status: r.URL.Query().Get("status")}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			utils.Error(w, apperr.New(apperr.Validation, "year must be an integer"))
			return
		}
		filter.Year = year
	}

	list, err := h.Awards.ListAwards(r.Context(), filter)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListAwards: %v", err))
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *Handler) CreateAward(w http.ResponseWriter, r *http.Request) {
	var req models.AwardCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	award, err := h.Awards.CreateAward(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("CreateAward: created %s", award.ID))
	utils.JSON(w, http.StatusOK, award)
}

func (h *Handler) UpdateAward(w http.ResponseWriter, r *http.Request) {
	var req models.AwardUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req.AwardCreate); err != nil {
		utils.Error(w, err)
		return
	}

	award, err := h.Awards.UpdateAward(r.Context(), chi.URLParam(r, "awardId"), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, award)
}

func (h *Handler) CreateNomination(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r.Context())
	if user == nil {
		utils.Error(w, apperr.New(apperr.Unauthorized, "Could not validate credentials"))
		return
	}

	var req models.NominationCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	nom, err := h.Awards.Nominate(r.Context(), user, req)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreateNomination: user %s, award %s: %v", user.ID, req.AwardID, err))
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, nom)
}

func (h *Handler) ListNominations(w http.ResponseWriter, r *http.Request) {
	noms, err := h.Awards.ListNominations(r.Context(), r.URL.Query().Get("award_id"))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, noms)
}

func (h *Handler) MyNominations(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r.Context())
	if user == nil {
		utils.Error(w, apperr.New(apperr.Unauthorized, "Could not validate credentials"))
		return
	}

	noms, err := h.Awards.MyNominations(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, noms)
}

func (h *Handler) UpdateNominationStatus(w http.ResponseWriter, r *http.Request) {
	var req models.NominationStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	nom, err := h.Awards.SetNominationStatus(r.Context(), chi.URLParam(r, "nominationId"), req.Status)
	if err != nil {
		utils.Error(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("UpdateNominationStatus: %s -> %s", nom.ID, nom.Status))
	utils.JSON(w, http.StatusOK, nom)
}
