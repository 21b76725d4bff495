package handlers

import (
	"errors"
	"net/http"

	"trimly/middleware"
	"trimly/services/identity"
	"trimly/services/review"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes review submission, editing and deletion over HTTP.
type ReviewHandler struct {
	Svc    review.Service
	Logger *zap.Logger
}

func NewReviewHandler(svc review.Service, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

// SubmitReview creates the caller's review of the worker in the path.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var body struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	req := review.SubmitRequest{
		WorkerID: c.Param("id"),
		Rating:   body.Rating,
		Comment:  body.Comment,
	}
	rv, err := h.Svc.Submit(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rv)
}

// EditReview updates the caller's own review.
func (h *ReviewHandler) EditReview(c *gin.Context) {
	var body struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	rv, err := h.Svc.Edit(c.Request.Context(), middleware.CallerID(c), c.Param("id"), body.Rating, body.Comment)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rv)
}

// DeleteReview removes the caller's own review.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) respondError(c *gin.Context, err error) {
	var already *review.AlreadyReviewedError
	switch {
	case errors.Is(err, identity.ErrUnauthenticated):
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "sign in to review a worker")
	case errors.Is(err, review.ErrInvalidRating):
		utils.JSONError(c, http.StatusBadRequest, "invalid_rating", "rating must be between 1 and 5")
	case errors.Is(err, review.ErrInvalidComment):
		utils.JSONError(c, http.StatusBadRequest, "invalid_comment", "comment is too short")
	case errors.As(err, &already):
		c.JSON(http.StatusConflict, gin.H{
			"error":    "already_reviewed",
			"reviewId": already.ReviewID,
		})
	case errors.Is(err, review.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "forbidden", "you can only change your own review")
	case errors.Is(err, review.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not_found", "review not found")
	default:
		h.Logger.Error("review operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "the review store did not respond; please retry")
	}
}
