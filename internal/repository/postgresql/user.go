package postgresql

import (
	"context"
	"errors"

	"github.com/hrmslite/hrms-backend-go/internal/domain/user"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)
	query := `
		SELECT id, email, password_hash, full_name, is_admin, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var account user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash,
		&account.FullName, &account.IsAdmin,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return account, nil
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)
	query := `
		SELECT id, email, password_hash, full_name, is_admin, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var account user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Email, &account.PasswordHash,
		&account.FullName, &account.IsAdmin,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return account, nil
}
