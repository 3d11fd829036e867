package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/focuskit/focuskit/internal/adapters/git"
	"github.com/focuskit/focuskit/internal/adapters/notification"
	"github.com/focuskit/focuskit/internal/adapters/storage"
	"github.com/focuskit/focuskit/internal/config"
	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/engine"
	"github.com/focuskit/focuskit/internal/ports"
)

// appDeps groups all dependencies initialized at startup.
type appDeps struct {
	storage  ports.Storage
	engine   *engine.Engine
	git      ports.GitDetector
	notifier *notification.Notifier
	config   *config.Config
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// Initialize notifier
	app.notifier = notification.New(app.config.Notifications.Enabled, app.config.Notifications.Sound)

	// Determine database path
	if dbPath == "" {
		dbPath = config.GetDBPath(app.config)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// Initialize storage
	app.storage, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize git detector
	app.git = git.NewDetector()

	// Initialize the session engine and restore persisted state
	app.engine = engine.New(app.storage, app.notifier, app.git)
	if err := app.engine.Load(context.Background()); err != nil {
		return fmt.Errorf("failed to load engine state: %w", err)
	}

	// Config file is the source of truth for timer settings and goal target
	app.engine.UpdateSettings(app.config.TimerSettings())
	if app.config.Goal.TargetMinutes > 0 {
		app.engine.SetDailyGoalTarget(app.config.Goal.TargetMinutes)
	}

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.storage != nil {
		return app.storage.Close()
	}
	return nil
}

// resolveSubject finds a subject by exact id, then by id prefix (list
// prints truncated ids), then by fuzzy title match, best match first.
func resolveSubject(ctx context.Context, query string) (*domain.Subject, error) {
	if subject, err := app.storage.Subjects().FindByID(ctx, query); err == nil {
		return subject, nil
	}

	all, err := app.storage.Subjects().FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if strings.HasPrefix(s.ID, query) {
			return s, nil
		}
	}

	matches, err := app.storage.Subjects().FindMatching(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no subject matches %q: %w", query, domain.ErrSubjectNotFound)
	}
	return matches[0], nil
}
