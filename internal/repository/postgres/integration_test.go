//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/auth-server/internal/model"
	repo "github.com/dtroode/auth-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "auth_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/auth_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_UserAndTokens(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	tr := repo.NewTokenRepository(conn)

	u, err := ur.Create(ctx, model.NewUser{
		Role:           "student",
		FirstName:      "Ann",
		LastName:       "Lee",
		Email:          "Ann@Example.com",
		PasswordHash:   "hash",
		Language:       "en",
		NativeLanguage: "en",
	})
	require.NoError(t, err)
	require.Equal(t, "student", u.LastLoginAs)
	require.True(t, u.IsFirstLogin)
	require.False(t, u.IsEmailConfirmed)

	t.Run("user_repository", func(t *testing.T) {
		byEmail, err := ur.GetByEmail(ctx, "ann@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)

		_, err = ur.Create(ctx, model.NewUser{Role: "student", Email: "ann@example.com", PasswordHash: "x"})
		require.ErrorIs(t, err, model.ErrAlreadyExists)

		confirmed := true
		now := time.Now()
		require.NoError(t, ur.Update(ctx, u.ID, model.UserUpdate{IsEmailConfirmed: &confirmed, LastLogin: &now}))

		byID, err := ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, byID.IsEmailConfirmed)
		require.NotNil(t, byID.LastLogin)
	})

	t.Run("token_repository", func(t *testing.T) {
		require.NoError(t, tr.Save(ctx, u.ID, "r1", model.TokenKindRefresh))
		require.NoError(t, tr.Save(ctx, u.ID, "r2", model.TokenKindRefresh))
		require.NoError(t, tr.Save(ctx, u.ID, "c1", model.TokenKindConfirm))

		got, err := tr.Find(ctx, "r1", model.TokenKindRefresh)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.UserID)

		_, err = tr.Find(ctx, "r1", model.TokenKindReset)
		require.ErrorIs(t, err, model.ErrNotFound)

		require.NoError(t, tr.Remove(ctx, "r1"))
		require.NoError(t, tr.Remove(ctx, "r1"))
		_, err = tr.Find(ctx, "r1", model.TokenKindRefresh)
		require.ErrorIs(t, err, model.ErrNotFound)

		_, err = tr.Find(ctx, "r2", model.TokenKindRefresh)
		require.NoError(t, err)

		require.NoError(t, tr.RemoveAllForUser(ctx, u.ID, model.TokenKindConfirm))
		_, err = tr.Find(ctx, "c1", model.TokenKindConfirm)
		require.ErrorIs(t, err, model.ErrNotFound)
		_, err = tr.Find(ctx, "r2", model.TokenKindRefresh)
		require.NoError(t, err)
	})
}
