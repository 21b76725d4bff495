// File: trimly/handlers/bundle.go
package handlers

import (
	userRepoPkg "trimly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Account endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	FirebaseSignInHandler   gin.HandlerFunc
	SignOutUserHandler      gin.HandlerFunc

	// Worker directory endpoints
	ListWorkersHandler gin.HandlerFunc
	GetWorkerHandler   gin.HandlerFunc

	// Selected-worker preference endpoints
	SetSelectedWorkerHandler   gin.HandlerFunc
	GetSelectedWorkerHandler   gin.HandlerFunc
	ClearSelectedWorkerHandler gin.HandlerFunc

	// Appointment endpoints
	CreateAppointmentHandler       gin.HandlerFunc
	ListMyAppointmentsHandler      gin.HandlerFunc
	ListRequestsHandler            gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc

	// Review endpoints
	SubmitReviewHandler gin.HandlerFunc
	EditReviewHandler   gin.HandlerFunc
	DeleteReviewHandler gin.HandlerFunc
}
