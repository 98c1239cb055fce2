package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/auth-server/internal/model"
)

var userRowColumns = []string{
	"id", "role", "last_login_as", "first_name", "last_name", "email", "password_hash",
	"language", "native_language", "is_email_confirmed", "is_first_login", "last_login", "created_at", "updated_at",
}

func userRow(u model.User) *pgxmock.Rows {
	return pgxmock.NewRows(userRowColumns).AddRow(
		u.ID, u.Role, u.LastLoginAs, u.FirstName, u.LastName, u.Email, u.PasswordHash,
		u.Language, u.NativeLanguage, u.IsEmailConfirmed, u.IsFirstLogin, u.LastLogin, u.CreatedAt, u.UpdatedAt,
	)
}

func sampleUser() model.User {
	now := time.Now().UTC().Truncate(time.Second)
	return model.User{
		ID:             uuid.New(),
		Role:           "student",
		LastLoginAs:    "student",
		FirstName:      "Ann",
		LastName:       "Lee",
		Email:          "a@x.com",
		PasswordHash:   "$argon2id$hash",
		Language:       "en",
		NativeLanguage: "en",
		IsFirstLogin:   true,
		LastLogin:      &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	u := sampleUser()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      model.User
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM users WHERE LOWER\(email\) = LOWER\(\$1\)`).
					WithArgs("a@x.com").
					WillReturnRows(userRow(u))
			},
			want: u,
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM users`).
					WithArgs("a@x.com").
					WillReturnRows(pgxmock.NewRows(userRowColumns))
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			got, err := NewUserRepository(mock).GetByEmail(context.Background(), "a@x.com")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	u := sampleUser()
	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs(u.ID).
		WillReturnRows(userRow(u))
	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs(u.ID).
		WillReturnError(errors.New("connection reset"))

	repo := NewUserRepository(mock)

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = repo.GetByID(context.Background(), u.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	nu := model.NewUser{
		Role:           "student",
		FirstName:      "Ann",
		LastName:       "Lee",
		Email:          "a@x.com",
		PasswordHash:   "$argon2id$hash",
		Language:       "en",
		NativeLanguage: "en",
	}

	t.Run("created", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		u := sampleUser()
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), nu.Role, nu.FirstName, nu.LastName, nu.Email, nu.PasswordHash, nu.Language, nu.NativeLanguage).
			WillReturnRows(userRow(u))

		got, err := NewUserRepository(mock).Create(context.Background(), nu)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "student", got.LastLoginAs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), nu.Role, nu.FirstName, nu.LastName, nu.Email, nu.PasswordHash, nu.Language, nu.NativeLanguage).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err = NewUserRepository(mock).Create(context.Background(), nu)
		require.ErrorIs(t, err, model.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Update(t *testing.T) {
	id := uuid.New()
	hash := "new-hash"
	no := false
	yes := true
	now := time.Now()

	tests := []struct {
		name      string
		upd       model.UserUpdate
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "password only",
			upd:  model.UserUpdate{PasswordHash: &hash},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE users SET password_hash = \$1, updated_at = NOW\(\) WHERE id = \$2`).
					WithArgs(hash, id).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "login bookkeeping",
			upd:  model.UserUpdate{IsFirstLogin: &no, LastLogin: &now},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE users SET is_first_login = \$1, last_login = \$2, updated_at = NOW\(\) WHERE id = \$3`).
					WithArgs(no, now, id).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "missing user",
			upd:  model.UserUpdate{IsEmailConfirmed: &yes},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE users SET is_email_confirmed = \$1`).
					WithArgs(yes, id).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:      "empty update is a no-op",
			upd:       model.UserUpdate{},
			setupMock: func(mock pgxmock.PgxPoolIface) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			err = NewUserRepository(mock).Update(context.Background(), id, tt.upd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
