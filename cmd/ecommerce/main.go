// Package main wires one shared UserPreference store to an Android and an iOS
// handler, replays a fixed sequence of locale changes and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sapsa07/ecommerce"
	"github.com/sapsa07/ecommerce/handler"
	"github.com/sapsa07/ecommerce/storage"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ecommerce", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	backend := fs.String("storage", "memory", "Storage backend: memory or sqlite (in-memory SQLite)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := ecommerce.ParseLogLevel(*logLevel)
	if err != nil {
		return err
	}
	logger := ecommerce.NewLogger(stderr, level)

	store, err := openStorage(*backend)
	if err != nil {
		logger.Error("Failed to initialize storage", "storage", *backend, "error", err)
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	prefs := ecommerce.New(
		ecommerce.WithStorage(store),
		ecommerce.WithLogger(logger),
	)

	android := handler.NewAndroidHandler(prefs, logger)
	ios := handler.NewIOSHandler(prefs, logger)

	if err := replay(ctx, android, ios); err != nil {
		logger.Error("Failed to apply preference change", "error", err)
		return err
	}

	return printPreferences(ctx, stdout, prefs)
}

func openStorage(backend string) (ecommerce.Storage, error) {
	switch backend {
	case "memory":
		return storage.NewMemoryStorage(), nil
	case "sqlite":
		return storage.NewSQLiteStorage()
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", ecommerce.ErrInvalidInput, backend)
	}
}

func replay(ctx context.Context, android, ios handler.PlatformHandler) error {
	steps := []func() error{
		func() error { return android.ChangeUserCountry(ctx, "Anand", ecommerce.CountryUSA) },
		func() error { return ios.ChangeUserCountry(ctx, "Sabina", ecommerce.CountryIndia) },
		func() error {
			return android.ChangeUserLanguage(ctx, "Anand", ecommerce.CountryUSA, ecommerce.LanguageSpanish)
		},
		func() error {
			return ios.ChangeUserLanguage(ctx, "Sabina", ecommerce.CountryIndia, ecommerce.LanguageHindi)
		},
		func() error {
			return android.ChangeUserLanguage(ctx, "Anupama", ecommerce.CountryIndia, ecommerce.LanguageEnglish)
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func printPreferences(ctx context.Context, w io.Writer, prefs *ecommerce.UserPreference) error {
	users, err := prefs.Users(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		s, _, err := prefs.Get(ctx, user)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: country=%s language=%s\n", user, s.Country, s.Language); err != nil {
			return err
		}
	}
	return nil
}
