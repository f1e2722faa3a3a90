package notification

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/notification"
)

type NotificationService interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]notification.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type NotificationServiceImpl struct {
	notification.NotificationRepository
}

func NewNotificationService(notificationRepository notification.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{
		NotificationRepository: notificationRepository,
	}
}

// ListByEmployee implements NotificationService.
func (s *NotificationServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	notifications, err := s.NotificationRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead implements NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	if err := s.NotificationRepository.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
