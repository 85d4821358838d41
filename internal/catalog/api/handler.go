package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/catalog"
	"tcpworld-api/internal/logger"
	"tcpworld-api/internal/models"
	"tcpworld-api/internal/utils"
	"tcpworld-api/internal/validation"
)

type Handler struct {
	Catalog *catalog.Service
	Logger  *logger.Logger
}

func NewHandler(catalogService *catalog.Service, log *logger.Logger) *Handler {
	return &Handler{Catalog: catalogService, Logger: log}
}

func (h *Handler) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	var featured *bool
	if raw := r.URL.Query().Get("featured"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.Error(w, apperr.New(apperr.Validation, "featured must be a boolean"))
			return
		}
		featured = &parsed
	}

	speakers, err := h.Catalog.ListSpeakers(r.Context(), featured)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListSpeakers: %v", err))
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, speakers)
}

func (h *Handler) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	speaker, err := h.Catalog.GetSpeaker(r.Context(), chi.URLParam(r, "speakerId"))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, speaker)
}

func (h *Handler) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req models.SpeakerCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	speaker, err := h.Catalog.CreateSpeaker(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("CreateSpeaker: created %s", speaker.ID))
	utils.JSON(w, http.StatusOK, speaker)
}

func (h *Handler) UpdateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req models.SpeakerCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	speaker, err := h.Catalog.UpdateSpeaker(r.Context(), chi.URLParam(r, "speakerId"), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, speaker)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Catalog.ListSessions(r.Context(), r.URL.Query().Get("event_id"))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, sessions)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	session, err := h.Catalog.CreateSession(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, session)
}

func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.InquiryCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	inquiry, err := h.Catalog.CreateInquiry(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("CreateInquiry: received %s", inquiry.ID))
	utils.JSON(w, http.StatusOK, inquiry)
}

func (h *Handler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.Catalog.ListInquiries(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, inquiries)
}
