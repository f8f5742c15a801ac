package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/docledger/internal/client/client"
	"github.com/dmitrijs2005/docledger/internal/client/config"
	"github.com/dmitrijs2005/docledger/internal/server/models"
)

// API is the server surface the CLI uses. *client.GRPCClient implements it.
type API interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, userName, password, role string) error
	Login(ctx context.Context, userName, password string) (string, error)
	Logout()
	PostData(ctx context.Context, content any) (string, error)
	GetData(ctx context.Context, guid string) (any, error)
	PutData(ctx context.Context, guid string, content any) (string, error)
	GetAllData(ctx context.Context) ([]models.Document, error)
	GetLatestData(ctx context.Context, guid string) (*models.Document, error)
	Trace(ctx context.Context, guid string) ([]any, error)
	GrantAccess(ctx context.Context, guid string, usernames []string) ([]string, error)
	RevokeAccess(ctx context.Context, guid, username string) error
	GetAccessInfo(ctx context.Context, guid string) ([]string, error)
	PublishData(ctx context.Context, content any) (string, error)
	GetPublished(ctx context.Context, onlyMine bool) ([]models.PublishedGroup, error)
	Close() error
}

type App struct {
	config   *config.Config
	api      API
	userName string
	role     string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewDocLedgerClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api API, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	ctx2, cancel := a.callCtx(ctx)
	if err := a.api.Ping(ctx2); err != nil {
		fmt.Fprintf(a.out, "Server %s is not reachable: %v\n", a.config.ServerEndpointAddr, err)
	}
	cancel()

	fmt.Fprintln(a.out, "docledger CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.userName, a.role)
}

// callCtx bounds a single server call by the configured timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.CallTimeout)
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
