package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"finance-tracker/config"
	"finance-tracker/internal/auth"
	"finance-tracker/internal/models"
	"finance-tracker/internal/storage/sqlite"

	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *sqlite.SQLiteStorage {
	t.Helper()

	cfg := &config.Config{
		DB: config.DBConfig{
			DBPath:          filepath.Join(t.TempDir(), "services.db"),
			MaxOpenConns:    1,
			CheckoutTimeout: time.Second,
		},
	}
	store, err := sqlite.NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// signUp регистрирует пользователя и возвращает его id
func signUp(t *testing.T, store *sqlite.SQLiteStorage, email string) int64 {
	t.Helper()
	svc := NewAuthService(store, auth.NewTokenManager("test-secret", time.Hour))
	user, err := svc.SignUp(context.Background(), models.Credentials{Email: email, PasswordHash: "pw"})
	require.NoError(t, err)
	return user.ID
}

func ts(t *testing.T, s string) models.Timestamp {
	t.Helper()
	v, err := models.ParseTimestamp(s)
	require.NoError(t, err)
	return v
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	require.Error(t, err)
	se, ok := err.(*Error)
	require.True(t, ok, "expected *services.Error, got %T: %v", err, err)
	require.Equal(t, kind, se.Kind, se.Message)
	return se
}
