// Command courtsplit is the interactive terminal front-end. It works on the
// store directly, so it cannot run while cmd/server holds the same store:
// opening it then fails with storage.ErrLocked.
//
// Usage:
//
//	courtsplit                   start the interactive session
//	courtsplit token <device-id> print a device token signed with AUTH_SECRET
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/courtsplit/internal/auth"
	"github.com/mmynk/courtsplit/internal/config"
	"github.com/mmynk/courtsplit/internal/console"
	"github.com/mmynk/courtsplit/internal/ledger"
	"github.com/mmynk/courtsplit/internal/persistence"
	"github.com/mmynk/courtsplit/internal/session"
	"github.com/mmynk/courtsplit/internal/storage/backend"
	"github.com/mmynk/courtsplit/pkg/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if len(args) > 0 && args[0] == "token" {
		return mintToken(cfg, args[1:], stdout)
	}

	// Keep the screen for the session; only problems go to stderr.
	logging.Setup(os.Stderr, max(cfg.LogLevel, slog.LevelWarn))

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.StoreBackend, err)
	}
	defer store.Close()

	book, err := ledger.Open(ctx, persistence.NewAdapter(store, cfg.StoreKey))
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	err = console.New(session.New(book), stdout, cfg.Currency).Run(ctx, stdin)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func mintToken(cfg *config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	ttl := fs.Duration("ttl", cfg.TokenTTL, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: courtsplit token [-ttl 720h] <device-id>")
	}

	jwtManager, err := auth.NewJWTManager(cfg.AuthSecret, *ttl)
	if err != nil {
		return err
	}
	token, err := jwtManager.Generate(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}
	fmt.Fprintln(stdout, token)
	return nil
}
