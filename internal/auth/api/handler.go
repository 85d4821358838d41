package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/auth"
	"tcpworld-api/internal/logger"
	"tcpworld-api/internal/models"
	"tcpworld-api/internal/utils"
	"tcpworld-api/internal/validation"
)

type Handler struct {
	Auth   *auth.Service
	Logger *logger.Logger
}

func NewHandler(authService *auth.Service, log *logger.Logger) *Handler {
	return &Handler{Auth: authService, Logger: log}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	token, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		h.Logger.Warn("AUTH", fmt.Sprintf("Register failed for %s: %v", req.Email, err))
		utils.Error(w, err)
		return
	}

	h.Logger.Info("AUTH", fmt.Sprintf("Registered new user %s", token.User.ID))
	utils.JSON(w, http.StatusOK, token)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		utils.Error(w, err)
		return
	}

	token, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		h.Logger.LogSecurity("LOGIN_FAILED", fmt.Sprintf("login attempt for %s rejected", req.Email))
		utils.Error(w, err)
		return
	}

	h.Logger.Info("AUTH", fmt.Sprintf("User %s logged in", token.User.ID))
	utils.JSON(w, http.StatusOK, token)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r.Context())
	if user == nil {
		utils.Error(w, apperr.New(apperr.Unauthorized, "Could not validate credentials"))
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
