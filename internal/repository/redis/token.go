package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/auth-server/internal/model"
)

const defaultPrefix = "auth"

var storedKinds = []model.TokenKind{
	model.TokenKindRefresh,
	model.TokenKindReset,
	model.TokenKindConfirm,
}

var _ model.TokenStore = (*TokenStore)(nil)

// TTLFunc returns the lifetime of a token kind. Keys expire with the token.
type TTLFunc func(kind model.TokenKind) time.Duration

// TokenStore keeps tokens as hashes under prefix:tok:<kind>:<token> and
// indexes them per owner in sets under prefix:user:<userID>:<kind>.
type TokenStore struct {
	client goredis.UniversalClient
	prefix string
	ttl    TTLFunc
}

func NewTokenStore(client goredis.UniversalClient, prefix string, ttl TTLFunc) *TokenStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &TokenStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *TokenStore) tokenKey(kind model.TokenKind, token string) string {
	return s.prefix + ":tok:" + kind.String() + ":" + token
}

func (s *TokenStore) userKey(userID uuid.UUID, kind model.TokenKind) string {
	return s.prefix + ":user:" + userID.String() + ":" + kind.String()
}

func (s *TokenStore) Save(ctx context.Context, userID uuid.UUID, token string, kind model.TokenKind) error {
	ttl := s.ttl(kind)
	tk := s.tokenKey(kind, token)
	uk := s.userKey(userID, kind)

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, tk,
			"id", uuid.NewString(),
			"user_id", userID.String(),
			"created_at", strconv.FormatInt(time.Now().UnixNano(), 10),
		)
		pipe.Expire(ctx, tk, ttl)
		pipe.SAdd(ctx, uk, token)
		pipe.Expire(ctx, uk, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (s *TokenStore) Find(ctx context.Context, token string, kind model.TokenKind) (model.StoredToken, error) {
	fields, err := s.client.HGetAll(ctx, s.tokenKey(kind, token)).Result()
	if err != nil {
		return model.StoredToken{}, fmt.Errorf("failed to find token: %w", err)
	}
	if len(fields) == 0 {
		return model.StoredToken{}, model.ErrNotFound
	}

	st, err := decodeToken(fields)
	if err != nil {
		return model.StoredToken{}, fmt.Errorf("failed to decode token record: %w", err)
	}
	st.Kind = kind
	st.Token = token

	return st, nil
}

// Remove deletes token under every stored kind. Missing tokens are ignored.
func (s *TokenStore) Remove(ctx context.Context, token string) error {
	owners := make(map[model.TokenKind]*goredis.StringCmd, len(storedKinds))
	_, err := s.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, kind := range storedKinds {
			owners[kind] = pipe.HGet(ctx, s.tokenKey(kind, token), "user_id")
		}
		return nil
	})
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("failed to look up token: %w", err)
	}

	found := make(map[model.TokenKind]uuid.UUID, len(owners))
	for kind, cmd := range owners {
		if userID, err := uuid.Parse(cmd.Val()); err == nil {
			found[kind] = userID
		}
	}
	if len(found) == 0 {
		return nil
	}

	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for kind, userID := range found {
			pipe.Del(ctx, s.tokenKey(kind, token))
			pipe.SRem(ctx, s.userKey(userID, kind), token)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

func (s *TokenStore) RemoveAllForUser(ctx context.Context, userID uuid.UUID, kind model.TokenKind) error {
	uk := s.userKey(userID, kind)

	tokens, err := s.client.SMembers(ctx, uk).Result()
	if err != nil {
		return fmt.Errorf("failed to list user tokens: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, token := range tokens {
			pipe.Del(ctx, s.tokenKey(kind, token))
		}
		pipe.Del(ctx, uk)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove tokens for user: %w", err)
	}
	return nil
}

func decodeToken(fields map[string]string) (model.StoredToken, error) {
	id, err := uuid.Parse(fields["id"])
	if err != nil {
		return model.StoredToken{}, fmt.Errorf("bad id: %w", err)
	}
	userID, err := uuid.Parse(fields["user_id"])
	if err != nil {
		return model.StoredToken{}, fmt.Errorf("bad user id: %w", err)
	}
	nanos, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return model.StoredToken{}, fmt.Errorf("bad created_at: %w", err)
	}

	return model.StoredToken{
		ID:        id,
		UserID:    userID,
		CreatedAt: time.Unix(0, nanos).UTC(),
	}, nil
}
