package notification

import (
	"context"
	"fmt"

	userRepo "trimly/database/repository/user"
	"trimly/models"
	"trimly/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultService is the production implementation over FCM.
type DefaultService struct {
	Users userRepo.UserRepository
}

func NewDefaultService(users userRepo.UserRepository) (*DefaultService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultService{Users: users}, nil
}

// NotifyAppointmentRequested tells a worker about a new pending request.
func (s *DefaultService) NotifyAppointmentRequested(ctx context.Context, workerID string, appt *models.Appointment) error {
	title := "New appointment request"
	body := fmt.Sprintf("%s requested %s on %s at %s", appt.ClientName, appt.Service, appt.Date, appt.Time)
	return s.sendPush(ctx, workerID, title, body, map[string]string{
		"appointmentId": appt.ID,
		"kind":          "appointment_requested",
	})
}

// NotifyAppointmentDecided tells a client their request was confirmed or rejected.
func (s *DefaultService) NotifyAppointmentDecided(ctx context.Context, clientID string, appt *models.Appointment) error {
	title := "Appointment update"
	body := fmt.Sprintf("Your appointment on %s at %s was %s", appt.Date, appt.Time, appt.Status)
	return s.sendPush(ctx, clientID, title, body, map[string]string{
		"appointmentId": appt.ID,
		"kind":          "appointment_decided",
		"status":        string(appt.Status),
	})
}

// sendPush looks up the recipient's FCM token and delivers the message.
func (s *DefaultService) sendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("sendPush: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("sendPush: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("sendPush: FCM delivery failed",
			zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("sendPush: failed to send FCM message: %w", err)
	}
	return nil
}
