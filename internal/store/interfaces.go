package store

import (
	"context"

	"github.com/MKhiriev/go-user-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists [models.User] records in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with the server-assigned ID and
	// timestamps. Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// ListUsers returns every user ordered by ID.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUserByID returns the user with the given ID or [ErrNoUserWasFound].
	GetUserByID(ctx context.Context, id int64) (models.User, error)

	// UpdateUser writes the non-nil fields of update and returns the stored
	// user. Returns [ErrNoUserWasFound] for an unknown ID and
	// [ErrEmailAlreadyExists] when the new email is taken.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// EmailExists reports whether a user other than exceptID uses email.
	// Pass 0 as exceptID to check against every user.
	EmailExists(ctx context.Context, email string, exceptID int64) (bool, error)
}

// ErrorClassificator maps driver errors of a specific database to the
// conditions the repositories react to.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
