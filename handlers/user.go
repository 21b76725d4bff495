package handlers

import (
	"errors"
	"net/http"

	"trimly/middleware"
	"trimly/services/user"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account registration and the sign-in/sign-out flows.
type UserHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// RegisterUser creates a customer account and signs it in.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// AuthenticateUser signs in with email and password.
func (h *UserHandler) AuthenticateUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	res, err := h.Svc.Authenticate(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// FirebaseSignIn signs in with an identity-provider ID token.
func (h *UserHandler) FirebaseSignIn(c *gin.Context) {
	var body struct {
		IDToken string `json:"id_token"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	res, err := h.Svc.FirebaseSignIn(c.Request.Context(), body.IDToken)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SignOutUser revokes the caller's session and clears their preferences.
func (h *UserHandler) SignOutUser(c *gin.Context) {
	if err := h.Svc.SignOut(c.Request.Context(), middleware.CallerID(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "validation", "name, email and a password of at least 8 characters are required")
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "email_taken", "an account with this email already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect")
	case errors.Is(err, user.ErrInvalidProviderToken):
		utils.JSONError(c, http.StatusUnauthorized, "invalid_provider_token", "identity provider token was rejected")
	default:
		h.Logger.Error("account operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "the account store did not respond; please retry")
	}
}
