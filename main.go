// File: trimly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trimly/config"
	"trimly/database"
	apptRepoPkg "trimly/database/repository/appointment"
	reviewRepoPkg "trimly/database/repository/review"
	userRepoPkg "trimly/database/repository/user"
	"trimly/handlers"
	"trimly/middleware"
	"trimly/routes"
	"trimly/services/appointment"
	"trimly/services/identity"
	"trimly/services/notification"
	"trimly/services/review"
	"trimly/services/user"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	apptRepo := apptRepoPkg.NewMongoAppointmentRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	gate := identity.NewDefaultGate(userRepo)

	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService, err := notification.NewDefaultService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	appointmentService := &appointment.DefaultService{
		Repo:     apptRepo,
		Gate:     gate,
		Notifier: notificationService,
	}

	reviewService := &review.DefaultService{
		Repo: reviewRepo,
		Gate: gate,
	}

	// handlers.
	userHandler := handlers.NewUserHandler(userService, logger)
	workerHandler := handlers.NewWorkerHandler(userRepo, reviewService, logger)
	preferenceHandler := handlers.NewPreferenceHandler(logger)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Account endpoints.
		RegisterUserHandler:     userHandler.RegisterUser,
		AuthenticateUserHandler: userHandler.AuthenticateUser,
		FirebaseSignInHandler:   userHandler.FirebaseSignIn,
		SignOutUserHandler:      userHandler.SignOutUser,

		// Worker directory endpoints.
		ListWorkersHandler: workerHandler.ListWorkers,
		GetWorkerHandler:   workerHandler.GetWorker,

		// Selected-worker preference endpoints.
		SetSelectedWorkerHandler:   preferenceHandler.SetSelectedWorker,
		GetSelectedWorkerHandler:   preferenceHandler.GetSelectedWorker,
		ClearSelectedWorkerHandler: preferenceHandler.ClearSelectedWorker,

		// Appointment endpoints.
		CreateAppointmentHandler:       appointmentHandler.CreateAppointment,
		ListMyAppointmentsHandler:      appointmentHandler.ListMyAppointments,
		ListRequestsHandler:            appointmentHandler.ListRequests,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatus,

		// Review endpoints.
		SubmitReviewHandler: reviewHandler.SubmitReview,
		EditReviewHandler:   reviewHandler.EditReview,
		DeleteReviewHandler: reviewHandler.DeleteReview,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
