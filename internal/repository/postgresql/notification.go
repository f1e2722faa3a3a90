package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrmslite/hrms-backend-go/internal/domain/notification"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

// Create implements notification.NotificationRepository.
func (n *notificationRepositoryImpl) Create(ctx context.Context, notif notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, n.db)
	query := `
		INSERT INTO notifications (id, employee_id, title, message, type, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, false, NOW())
		RETURNING created_at
	`

	notif.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		notif.ID, notif.EmployeeID, notif.Title, notif.Message, notif.Type,
	).Scan(&notif.CreatedAt)

	if err != nil {
		return notification.Notification{}, err
	}

	return notif, nil
}

// ListByEmployee implements notification.NotificationRepository.
func (n *notificationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	q := GetQuerier(ctx, n.db)
	query := `
		SELECT id, employee_id, title, message, type, is_read, created_at
		FROM notifications
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var notif notification.Notification
		if err := rows.Scan(
			&notif.ID, &notif.EmployeeID, &notif.Title, &notif.Message,
			&notif.Type, &notif.IsRead, &notif.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, notif)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead implements notification.NotificationRepository.
func (n *notificationRepositoryImpl) MarkRead(ctx context.Context, id string) error {
	q := GetQuerier(ctx, n.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("notification with id %s not found", id)
	}
	return nil
}
