package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/auth-server/internal/model"
)

var _ model.TokenStore = (*TokenRepository)(nil)

// TokenRepository keeps issued refresh, reset and confirm tokens in the
// tokens table. A user may own any number of rows per kind.
type TokenRepository struct {
	db Querier
}

func NewTokenRepository(db Querier) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Save(ctx context.Context, userID uuid.UUID, token string, kind model.TokenKind) error {
	const query = `INSERT INTO tokens (id, user_id, kind, token, created_at) VALUES ($1, $2, $3, $4, NOW())`

	if _, err := r.db.Exec(ctx, query, uuid.New(), userID, kind.String(), token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (r *TokenRepository) Find(ctx context.Context, token string, kind model.TokenKind) (model.StoredToken, error) {
	const query = `SELECT id, user_id, kind, token, created_at FROM tokens WHERE token = $1 AND kind = $2 LIMIT 1`

	var st model.StoredToken
	var k string
	err := r.db.QueryRow(ctx, query, token, kind.String()).Scan(&st.ID, &st.UserID, &k, &st.Token, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StoredToken{}, model.ErrNotFound
		}
		return model.StoredToken{}, fmt.Errorf("failed to find token: %w", err)
	}
	st.Kind = model.TokenKind(k)

	return st, nil
}

func (r *TokenRepository) Remove(ctx context.Context, token string) error {
	const query = `DELETE FROM tokens WHERE token = $1`

	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

func (r *TokenRepository) RemoveAllForUser(ctx context.Context, userID uuid.UUID, kind model.TokenKind) error {
	const query = `DELETE FROM tokens WHERE user_id = $1 AND kind = $2`

	if _, err := r.db.Exec(ctx, query, userID, kind.String()); err != nil {
		return fmt.Errorf("failed to remove tokens for user: %w", err)
	}
	return nil
}
