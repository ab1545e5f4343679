// Command reviews lists, submits and deletes reviews against the configured review driver.
//
// Usage:
//
//	reviews list
//	reviews submit -name Ann -rating 4 -description "Great"
//	reviews delete <review_id>
//
// Configuration is read from the environment (or a .env file), as for the server:
// REVIEW_DRIVER, HYGRAPH_ENDPOINT, HYGRAPH_AUTH_TOKEN, HYGRAPH_REQUEST_TIMEOUT and
// optionally LOG_LEVEL.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jbeshir/star-reviews/internal/app"
	"github.com/jbeshir/star-reviews/internal/domain"
	"github.com/jbeshir/star-reviews/internal/reviewstore"

	_ "github.com/joho/godotenv/autoload"
)

var errUsage = errors.New("usage: reviews list | submit -name NAME -rating N -description TEXT | delete ID")

func main() {
	ctx := context.Background()

	logLevel := slog.LevelWarn
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	store, err := app.SetupReviewStore(ctx)
	if err != nil {
		return fmt.Errorf("setting up review store: %w", err)
	}

	switch args[0] {
	case "list":
		if err := store.Load(ctx); err != nil {
			return err
		}
	case "submit":
		draft, err := parseDraft(args[1:])
		if err != nil {
			return err
		}
		if _, err := store.Submit(ctx, draft); err != nil {
			return err
		}
	case "delete":
		if len(args) != 2 || args[1] == "" {
			return errUsage
		}
		if err := store.Remove(ctx, args[1]); err != nil {
			return err
		}
	default:
		return errUsage
	}

	return writeSnapshot(out, store.Snapshot())
}

func parseDraft(args []string) (*domain.ReviewDraft, error) {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	name := fs.String("name", "", "author name")
	rating := fs.Int("rating", 0, fmt.Sprintf("star rating, 1-%d", domain.MaxRating))
	description := fs.String("description", "", "review text (required)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	draft := &domain.ReviewDraft{
		Name:        *name,
		Description: *description,
	}
	if *rating > 0 {
		draft.ClickStar(*rating)
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	return draft, nil
}

func writeSnapshot(out io.Writer, snap reviewstore.Snapshot) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	reviews := snap.Reviews
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return enc.Encode(reviews)
}
