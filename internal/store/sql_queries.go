package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-gateway/models"
	"github.com/Masterminds/squirrel"
)

// usersTable is the table every user query reads and writes.
var usersTable = models.User{}.TableName()

// userColumns is the column order every user query selects and every scan
// expects.
var userColumns = []string{"id", "name", "email", "password", "created_at", "updated_at"}

const returningUser = "RETURNING id, name, email, password, created_at, updated_at"

func buildInsertUserQuery(b squirrel.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("name", "email", "password", "created_at", "updated_at").
		Values(user.Name, user.Email, user.Password, now, now).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUsersQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserByIDQuery(b squirrel.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateUserQuery sets only the non-nil fields of update and bumps
// updated_at. An empty update is an error.
func buildUpdateUserQuery(b squirrel.StatementBuilderType, update models.UserUpdate, now time.Time) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	ub := b.Update(usersTable)
	if update.Name != nil {
		ub = ub.Set("name", *update.Name)
	}
	if update.Email != nil {
		ub = ub.Set("email", *update.Email)
	}
	if update.Password != nil {
		ub = ub.Set("password", *update.Password)
	}

	query, args, err := ub.
		Set("updated_at", now).
		Where(squirrel.Eq{"id": update.ID}).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildEmailExistsQuery(b squirrel.StatementBuilderType, email string, exceptID int64) (string, []any, error) {
	sb := b.
		Select("1").
		From(usersTable).
		Where(squirrel.Eq{"email": email})
	if exceptID != 0 {
		sb = sb.Where(squirrel.NotEq{"id": exceptID})
	}

	query, args, err := sb.Limit(1).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
