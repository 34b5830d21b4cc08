// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery_Postgres(t *testing.T) {
	user := models.User{Name: "n", Email: "e@x.io", Password: "h"}

	query, args, err := buildInsertUserQuery(statementBuilder(DialectPostgres), user, fixedNow)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (name,email,password,created_at,updated_at) VALUES ($1,$2,$3,$4,$5) "+returningUser,
		query)
	assert.Equal(t, []any{"n", "e@x.io", "h", fixedNow, fixedNow}, args)
}

func Test_buildInsertUserQuery_SQLiteUsesQuestionMarks(t *testing.T) {
	query, _, err := buildInsertUserQuery(statementBuilder(DialectSQLite), models.User{}, fixedNow)
	require.NoError(t, err)

	assert.Contains(t, query, "VALUES (?,?,?,?,?)")
	assert.NotContains(t, query, "$")
}

func Test_buildSelectUsersQuery(t *testing.T) {
	query, args, err := buildSelectUsersQuery(statementBuilder(DialectPostgres))
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, email, password, created_at, updated_at FROM users ORDER BY id", query)
	assert.Empty(t, args)
}

func Test_buildSelectUserByIDQuery(t *testing.T) {
	query, args, err := buildSelectUserByIDQuery(statementBuilder(DialectPostgres), 42)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "FROM users WHERE id = $1"), query)
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_buildUpdateUserQuery(t *testing.T) {
	name, email, password := "n", "e@x.io", "h"

	tests := []struct {
		name      string
		update    models.UserUpdate
		wantSet   string
		wantArgs  []any
		wantError bool
	}{
		{
			name:     "name only",
			update:   models.UserUpdate{ID: 1, Name: &name},
			wantSet:  "SET name = $1, updated_at = $2 WHERE id = $3",
			wantArgs: []any{"n", fixedNow, int64(1)},
		},
		{
			name:     "email and password",
			update:   models.UserUpdate{ID: 2, Email: &email, Password: &password},
			wantSet:  "SET email = $1, password = $2, updated_at = $3 WHERE id = $4",
			wantArgs: []any{"e@x.io", "h", fixedNow, int64(2)},
		},
		{
			name:      "empty",
			update:    models.UserUpdate{ID: 3},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(statementBuilder(DialectPostgres), tt.update, fixedNow)
			if tt.wantError {
				require.ErrorIs(t, err, ErrBuildingSQLQuery)
				return
			}
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "UPDATE users "), query)
			assert.Contains(t, query, tt.wantSet)
			assert.True(t, strings.HasSuffix(query, returningUser), query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildEmailExistsQuery(t *testing.T) {
	query, args, err := buildEmailExistsQuery(statementBuilder(DialectSQLite), "e@x.io", 0)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM users WHERE email = ? LIMIT 1", query)
	assert.Equal(t, []any{"e@x.io"}, args)

	query, args, err = buildEmailExistsQuery(statementBuilder(DialectSQLite), "e@x.io", 7)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM users WHERE email = ? AND id <> ? LIMIT 1", query)
	assert.Equal(t, []any{"e@x.io", int64(7)}, args)
}
