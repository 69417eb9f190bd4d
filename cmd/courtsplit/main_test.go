package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/courtsplit/internal/auth"
	"github.com/mmynk/courtsplit/internal/storage"
	"github.com/mmynk/courtsplit/internal/storage/sqlite"
)

func TestRun_ConsoleSession(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_BACKEND", "memory")

	script := strings.Join([]string{
		"new Friday Match / Football",
		"open 1",
		"name Ana",
		"phone 987654321",
		"add",
		"name Luis",
		"phone 912345678",
		"add",
		"cost 100",
		"quit",
	}, "\n")

	var out bytes.Buffer
	err := run(context.Background(), nil, strings.NewReader(script), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Friday Match")
	assert.Contains(t, out.String(), "EACH PAYS: S/ 50.00")
}

func TestRun_Token(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_SECRET", "test-secret")

	var out bytes.Buffer
	err := run(context.Background(), []string{"token", "-ttl", "1h", "phone-1"}, nil, &out)
	require.NoError(t, err)

	jwtManager, err := auth.NewJWTManager("test-secret", time.Hour)
	require.NoError(t, err)
	claims, err := jwtManager.Validate(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "phone-1", claims.DeviceID)
}

func TestRun_TokenWithoutSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_SECRET", "")

	err := run(context.Background(), []string{"token", "phone-1"}, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, auth.ErrMissingSecret)
}

func TestRun_TokenUsage(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_SECRET", "test-secret")

	err := run(context.Background(), []string{"token"}, nil, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_RefusesHeldStore(t *testing.T) {
	t.Chdir(t.TempDir())
	dbPath := filepath.Join(t.TempDir(), "shared.db")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("DB_PATH", dbPath)

	held, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer held.Close()

	err = run(context.Background(), nil, strings.NewReader("quit\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, storage.ErrLocked)
}

func TestRun_CancelEndsSession(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_BACKEND", "memory")

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, nil, pr, &bytes.Buffer{}) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session kept running after interrupt")
	}
}
