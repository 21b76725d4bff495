package handlers

import (
	"errors"
	"net/http"

	userRepo "trimly/database/repository/user"
	"trimly/models"
	"trimly/services/review"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkerHandler exposes the public worker directory. Ratings are always
// recomputed from the review set; nothing stored on the worker document is
// trusted for display.
type WorkerHandler struct {
	Users   userRepo.UserRepository
	Reviews review.Service
	Logger  *zap.Logger
}

func NewWorkerHandler(users userRepo.UserRepository, reviews review.Service, logger *zap.Logger) *WorkerHandler {
	return &WorkerHandler{Users: users, Reviews: reviews, Logger: logger}
}

// ListWorkers returns every worker profile with its current rating.
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	workers, err := h.Users.GetWorkers()
	if err != nil {
		h.Logger.Error("failed to list workers", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "could not load the worker directory")
		return
	}

	profiles := make([]models.WorkerProfile, 0, len(workers))
	for _, w := range workers {
		reviews, err := h.Reviews.ListForWorker(c.Request.Context(), w.ID)
		if err != nil {
			h.Logger.Warn("failed to load reviews for worker", zap.String("workerID", w.ID), zap.Error(err))
			reviews = nil
		}
		profiles = append(profiles, workerProfile(w, reviews, false))
	}

	c.JSON(http.StatusOK, gin.H{"workers": profiles})
}

// GetWorker returns one worker profile with its rating and full review list.
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	w, err := h.Users.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not_found", "worker not found")
			return
		}
		h.Logger.Error("failed to load worker", zap.String("workerID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "could not load the worker profile")
		return
	}
	if w == nil || w.Role != models.RoleWorker {
		utils.JSONError(c, http.StatusNotFound, "not_found", "worker not found")
		return
	}

	reviews, err := h.Reviews.ListForWorker(c.Request.Context(), w.ID)
	if err != nil {
		h.Logger.Error("failed to load reviews", zap.String("workerID", w.ID), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "could not load reviews")
		return
	}

	c.JSON(http.StatusOK, workerProfile(*w, reviews, true))
}

func workerProfile(w models.User, reviews []models.Review, includeReviews bool) models.WorkerProfile {
	p := models.WorkerProfile{
		ID:        w.ID,
		Name:      w.Name,
		Phone:     w.Phone,
		Bio:       w.Bio,
		PhotoURL:  w.PhotoURL,
		Available: w.Available,
		Rating:    review.AverageRating(reviews),
	}
	if includeReviews {
		p.Reviews = reviews
	}
	return p
}
