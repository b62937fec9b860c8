// Package app wires configuration, storage, the transport client, and the
// resource services into one shared core used by the CLI.
package app

import (
	"fmt"
	"os"

	"github.com/zenmoney/zenmoney-cli/internal/clients/zenapi"
	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
	"github.com/zenmoney/zenmoney-cli/internal/services/auth"
	"github.com/zenmoney/zenmoney-cli/internal/services/banks"
	"github.com/zenmoney/zenmoney-cli/internal/services/categories"
	"github.com/zenmoney/zenmoney-cli/internal/services/investments"
	"github.com/zenmoney/zenmoney-cli/internal/services/loans"
	"github.com/zenmoney/zenmoney-cli/internal/services/report"
	"github.com/zenmoney/zenmoney-cli/internal/services/transactions"
	"github.com/zenmoney/zenmoney-cli/internal/storage/badger"
)

// App holds all initialized services and the shared transport client.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Credentials interfaces.CredentialStore
	Client      *zenapi.Client

	Auth         interfaces.AuthService
	Banks        *banks.Service
	Transactions *transactions.Service
	Categories   *categories.Service
	Investments  *investments.Service
	Loans        *loans.Service
	Report       *report.Service

	store *badger.Store
}

// NewApp initializes configuration, the credential store, the transport
// client, and every resource service.
func NewApp(configPath string) (*App, error) {
	if configPath == "" {
		configPath = os.Getenv("ZENMONEY_CONFIG")
	}
	if configPath == "" {
		configPath = "zenmoney.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	store, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	creds := badger.NewCredentialStorage(store, logger)

	// The client receives only the read capability; writes stay with the
	// auth service.
	client := zenapi.NewClient(config.API.BaseURL, creds,
		zenapi.WithLogger(logger),
		zenapi.WithRateLimit(config.API.RateLimit),
	)

	return &App{
		Config:       config,
		Logger:       logger,
		Credentials:  creds,
		Client:       client,
		Auth:         auth.NewService(client, creds, logger),
		Banks:        banks.NewService(client, logger),
		Transactions: transactions.NewService(client, logger),
		Categories:   categories.NewService(client, logger),
		Investments:  investments.NewService(client, logger),
		Loans:        loans.NewService(client, logger),
		Report:       report.NewService(client, logger),
		store:        store,
	}, nil
}

// LoggedIn reports whether a bearer token is stored. Presence is the only
// signal checked: the token is opaque and never validated locally.
func (a *App) LoggedIn() bool {
	return a.Credentials.Token() != ""
}

// Close releases the local storage.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
