package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)

	// ListByEmployee retrieves an employee's notifications, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Notification, error)

	MarkRead(ctx context.Context, id string) error
}
