// Command award grants badges to a user, and optionally marks the user as
// verified, by email address. Badge counters have no public write endpoint;
// this is how moderators hand them out.
//
// Usage:
//
//	award --email=user@example.com --gold=1 --silver=0 [--verify]
//
// Negative values revoke badges; counters never drop below zero.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/teamhub-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/teamhub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/teamhub-backend/internal/app"
	"github.com/heartmarshall/teamhub-backend/internal/config"
	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

const usage = "Usage: award --email=user@example.com [--gold=N] [--silver=N] [--verify]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so that deferred cleanup always happens.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("award", flag.ContinueOnError)
	fs.SetOutput(stderr)
	email := fs.String("email", "", "email of the user to award")
	gold := fs.Int("gold", 0, "gold badges to add")
	silver := fs.Int("silver", 0, "silver badges to add")
	verify := fs.Bool("verify", false, "mark the user as verified")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *email == "" || (*gold == 0 && *silver == 0 && !*verify) {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	var count domain.BadgesCount
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := users.GetByEmail(ctx, domain.NormalizeEmail(*email))
		if err != nil {
			return err
		}
		if *verify {
			if err := users.SetVerified(ctx, u.ID, true); err != nil {
				return err
			}
		}
		count, err = users.AwardBadges(ctx, u.ID, *gold, *silver)
		return err
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintf(stdout, "No user found with email %q.\n", *email)
		return 1
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintln(stdout, "Badge counters cannot become negative.")
		return 1
	case err != nil:
		logger.Error("award badges", slog.String("error", err.Error()))
		return 1
	}

	fmt.Fprintf(stdout, "User %q now has %d gold and %d silver badges.\n", *email, count.Gold, count.Silver)
	return 0
}
