package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/auth"
	"tcpworld-api/internal/calendar"
	"tcpworld-api/internal/events"
	"tcpworld-api/internal/logger"
	"tcpworld-api/internal/models"
	"tcpworld-api/internal/utils"
	"tcpworld-api/internal/validation"
)

type Handler struct {
	Events *events.Service
	Logger *logger.Logger
}

func NewHandler(eventService *events.Service, log *logger.Logger) *Handler {
	return &Handler{Events: eventService, Logger: log}
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := models.EventFilter{Status: r.URL.Query().Get("status")}
	if raw := r.URL.Query().Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			utils.Error(w, apperr.New(apperr.Validation, "featured must be a boolean"))
			return
		}
		filter.Featured = &featured
	}

	list, err := h.Events.ListEvents(r.Context(), filter)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListEvents: %v", err))
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.Events.GetEvent(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, event)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	event, err := h.Events.CreateEvent(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("CreateEvent: created %s (%d seats)", event.ID, event.AvailableSeats))
	utils.JSON(w, http.StatusOK, event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	event, err := h.Events.UpdateEvent(r.Context(), chi.URLParam(r, "eventId"), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if err := h.Events.DeleteEvent(r.Context(), eventID); err != nil {
		utils.Error(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("DeleteEvent: deleted %s", eventID))
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

func (h *Handler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r.Context())
	if user == nil {
		utils.Error(w, apperr.New(apperr.Unauthorized, "Could not validate credentials"))
		return
	}

	var req models.RegistrationCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	reg, err := h.Events.Register(r.Context(), user, req)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreateRegistration: user %s, event %s: %v", user.ID, req.EventID, err))
		utils.Error(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("CreateRegistration: user %s booked event %s", user.ID, reg.EventID))
	utils.JSON(w, http.StatusOK, reg)
}

func (h *Handler) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r.Context())
	if user == nil {
		utils.Error(w, apperr.New(apperr.Unauthorized, "Could not validate credentials"))
		return
	}

	regs, err := h.Events.MyRegistrations(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, regs)
}

func (h *Handler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.Events.AllRegistrations(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, regs)
}

func (h *Handler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	event, err := h.Events.GetEvent(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, calendar.ExportEvent(event))
}
