package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/auth-server/internal/model"
)

const uniqueViolation = "23505"

const userColumns = `id, role, last_login_as, first_name, last_name, email, password_hash,
	language, native_language, is_email_confirmed, is_first_login, last_login, created_at, updated_at`

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Create inserts a new user. The active role starts equal to the signup role.
func (r *UserRepository) Create(ctx context.Context, user model.NewUser) (model.User, error) {
	query := `INSERT INTO users (id, role, last_login_as, first_name, last_name, email, password_hash, language, native_language)
			  VALUES ($1, $2, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		uuid.New(), user.Role, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Language, user.NativeLanguage,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

// Update writes the non-nil fields of upd.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, upd model.UserUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.PasswordHash != nil {
		add("password_hash", *upd.PasswordHash)
	}
	if upd.LastLoginAs != nil {
		add("last_login_as", *upd.LastLoginAs)
	}
	if upd.IsEmailConfirmed != nil {
		add("is_email_confirmed", *upd.IsEmailConfirmed)
	}
	if upd.IsFirstLogin != nil {
		add("is_first_login", *upd.IsFirstLogin)
	}
	if upd.LastLogin != nil {
		add("last_login", *upd.LastLogin)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Role, &user.LastLoginAs, &user.FirstName, &user.LastName, &user.Email,
		&user.PasswordHash, &user.Language, &user.NativeLanguage, &user.IsEmailConfirmed,
		&user.IsFirstLogin, &user.LastLogin, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}
