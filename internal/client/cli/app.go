package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/dmitrijs2005/legalassist/internal/client/api"
	"github.com/dmitrijs2005/legalassist/internal/client/config"
	"github.com/dmitrijs2005/legalassist/internal/client/consult"
	"github.com/dmitrijs2005/legalassist/internal/client/history"
	"github.com/dmitrijs2005/legalassist/internal/client/models"
	"github.com/dmitrijs2005/legalassist/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/legalassist/internal/client/storage"
	"github.com/dmitrijs2005/legalassist/internal/client/syncsched"
	"github.com/dmitrijs2005/legalassist/internal/common"
	"github.com/dmitrijs2005/legalassist/internal/logging"
)

type App struct {
	config      *config.Config
	controller  *consult.Controller
	scheduler   *syncsched.Scheduler
	history     *history.Store
	api         *api.Client
	kv          metadata.Repository
	log         logging.Logger
	reader      *bufio.Reader
	interactive bool
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	kv := metadata.NewSQLiteRepository(db)

	userID, err := ensureClientID(ctx, kv)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(cfg.QueryEndpointURL, cfg.SyncEndpointURL, cfg.RequestTimeout, userID)
	hist := history.NewStore(kv, log)
	hist.Load(ctx)

	return &App{
		config:      cfg,
		controller:  consult.NewController(apiClient, hist, log),
		scheduler:   syncsched.NewScheduler(kv, apiClient, log),
		history:     hist,
		api:         apiClient,
		kv:          kv,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}, nil
}

// Run starts the background corpus sync and enters the REPL. The sync is
// fire-and-forget: the prompt is available immediately.
func (a *App) Run(ctx context.Context) {
	a.scheduler.Start(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	runREPL(ctx, a, a.status, scanner, a.interactive)
}

func (a *App) status() string {
	if a.controller.Outcome().Status == models.StatusPending {
		return "(pending)"
	}
	return ""
}

// ensureClientID returns the persistent anonymous identifier sent with each
// question, creating it on first run.
func ensureClientID(ctx context.Context, kv metadata.Repository) (string, error) {
	raw, err := kv.Get(ctx, common.ClientIDKey)
	if err != nil {
		return "", fmt.Errorf("error reading client id: %w", err)
	}
	if raw != nil {
		return string(raw), nil
	}

	id := uuid.NewString()
	if err := kv.Set(ctx, common.ClientIDKey, []byte(id)); err != nil {
		return "", fmt.Errorf("error saving client id: %w", err)
	}
	return id, nil
}
