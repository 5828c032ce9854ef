package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/loankeeper/internal/client/config"
	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/dmitrijs2005/loankeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/loankeeper/internal/client/services"
	"github.com/dmitrijs2005/loankeeper/internal/client/storage"
	"github.com/dmitrijs2005/loankeeper/internal/logging"
	"github.com/shopspring/decimal"
)

type App struct {
	config       *config.Config
	store        kv.Store
	log          logging.Logger
	authService  services.AuthService
	ledger       services.LedgerService
	achievements services.AchievementService

	session *models.Session
	// lastList maps list positions to loan ids for "pay 2" style references.
	lastList []string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the configured store and wires the services over it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error initializing storage: %w", err)
	}

	codec, err := services.NewSecretCodec(c.PasswordHashing)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	ledger := services.NewLedgerService(store, log)
	return &App{
		config:       c,
		store:        store,
		log:          log,
		authService:  services.NewAuthService(store, codec, log),
		ledger:       ledger,
		achievements: services.NewAchievementService(store, ledger, log),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

// Run restores the persisted session and serves commands until the user
// exits. The store is closed on return.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Error(ctx, "failed to close storage", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to LoanKeeper CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restoreSession(ctx context.Context) {
	s, err := a.authService.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to restore session", "error", err)
		return
	}
	if s != nil {
		a.session = s
		fmt.Fprintf(a.out, "Welcome back, %s!\n", s.Name)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) username() string {
	if a.session == nil {
		return ""
	}
	return a.session.Username
}

func (a *App) getStatus() string {
	if a.session == nil {
		return "(logged out)"
	}
	return fmt.Sprintf("(%s)", a.session.Username)
}

func (a *App) currency() string {
	if a.config == nil || a.config.Currency == "" {
		return "$"
	}
	return a.config.Currency
}

func (a *App) money(d decimal.Decimal) string {
	return models.FormatMoney(a.currency(), d)
}
