package handlers

import (
	"net/http"

	"trimly/middleware"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PreferenceHandler manages the caller's selected-worker pointer, the
// transient "which barber am I looking at" state backing the booking flow.
type PreferenceHandler struct {
	Logger *zap.Logger
}

func NewPreferenceHandler(logger *zap.Logger) *PreferenceHandler {
	return &PreferenceHandler{Logger: logger}
}

// SetSelectedWorker saves the worker the caller is currently browsing.
func (h *PreferenceHandler) SetSelectedWorker(c *gin.Context) {
	var body struct {
		WorkerID string `json:"worker_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.WorkerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "validation", "worker_id is required")
		return
	}

	if err := utils.SaveSelectedWorker(utils.GetCacheClient(), middleware.CallerID(c), body.WorkerID); err != nil {
		h.Logger.Error("failed to save selected worker", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "preference store did not respond; please retry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"worker_id": body.WorkerID})
}

// GetSelectedWorker returns the saved pointer, empty when none is set.
func (h *PreferenceHandler) GetSelectedWorker(c *gin.Context) {
	workerID, err := utils.GetSelectedWorker(utils.GetCacheClient(), middleware.CallerID(c))
	if err != nil {
		h.Logger.Error("failed to load selected worker", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "preference store did not respond; please retry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"worker_id": workerID})
}

// ClearSelectedWorker drops the pointer, e.g. once a booking settles.
func (h *PreferenceHandler) ClearSelectedWorker(c *gin.Context) {
	if err := utils.ClearSelectedWorker(utils.GetCacheClient(), middleware.CallerID(c)); err != nil {
		h.Logger.Error("failed to clear selected worker", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "preference store did not respond; please retry")
		return
	}
	c.Status(http.StatusNoContent)
}
