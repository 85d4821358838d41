package api

import (
	"fmt"
	"net/http"

	"tcpworld-api/internal/logger"
	"tcpworld-api/internal/stats"
	"tcpworld-api/internal/utils"
)

type Handler struct {
	Stats  *stats.Service
	Logger *logger.Logger
}

func NewHandler(statsService *stats.Service, log *logger.Logger) *Handler {
	return &Handler{Stats: statsService, Logger: log}
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Stats.Overview(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Overview: %v", err))
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, overview)
}
