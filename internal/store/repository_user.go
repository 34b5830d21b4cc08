package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/models"
)

// userRepository is the database/sql implementation of [UserRepository] for
// both PostgreSQL and SQLite. It handles user account persistence against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user, r.now())
	if err != nil {
		return models.User{}, err
	}

	var created models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return queryUser(ctx, r.db, query, args, &created)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, r.mapError(err)
	}

	return created, nil
}

// ListUsers returns all users ordered by ID. An empty table yields an empty,
// non-nil slice.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder)
	if err != nil {
		return nil, err
	}

	var users []models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		users = make([]models.User, 0)

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var user models.User
			if err = scanUser(rows, &user); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			users = append(users, user)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, r.mapError(err)
	}

	return users, nil
}

// GetUserByID retrieves the user with the given ID.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.db.builder, id)
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return queryUser(ctx, r.db, query, args, &found)
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error getting user")
		}
		return models.User{}, r.mapError(err)
	}

	return found, nil
}

// UpdateUser applies the non-nil fields of update and returns the updated
// record. An unknown ID yields [ErrNoUserWasFound].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, update, r.now())
	if err != nil {
		return models.User{}, err
	}

	var updated models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return queryUser(ctx, r.db, query, args, &updated)
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		}
		return models.User{}, r.mapError(err)
	}

	return updated, nil
}

// EmailExists reports whether the email is used by a user other than
// exceptID.
func (r *userRepository) EmailExists(ctx context.Context, email string, exceptID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEmailExistsQuery(r.db.builder, email, exceptID)
	if err != nil {
		return false, err
	}

	var exists bool
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var one int
		err := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			exists = false
			return nil
		case err != nil:
			return err
		}
		exists = true
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.EmailExists").Msg("error checking email")
		return false, r.mapError(err)
	}

	return exists, nil
}

// mapError converts driver errors into the package sentinels.
func (r *userRepository) mapError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNoUserWasFound
	case r.db.errorClassificator.IsUniqueViolation(err):
		return ErrEmailAlreadyExists
	case errors.Is(err, ErrScanningRow), errors.Is(err, ErrScanningRows):
		return err
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
}

// queryUser runs a single-row user query. Driver errors and [sql.ErrNoRows]
// are returned as is; any other scan failure is wrapped in [ErrScanningRow].
func queryUser(ctx context.Context, db *DB, query string, args []any, user *models.User) error {
	row := db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return err
	}

	if err := scanUser(row, user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}
