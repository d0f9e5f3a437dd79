package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/pwcred/internal/auth"
	"github.com/dmitrijs2005/pwcred/internal/config"
	"github.com/dmitrijs2005/pwcred/internal/credential"
	"github.com/dmitrijs2005/pwcred/internal/kdfpool"
	"github.com/dmitrijs2005/pwcred/internal/logging"
)

// Exit codes returned by Run.
const (
	ExitOK       = 0
	ExitRejected = 1 // weak password or mismatch
	ExitError    = 2
)

type App struct {
	config *config.Config
	auth   *auth.Authenticator
	log    logging.Logger
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp wires logging, the derivation pool and the authenticator from c.
// Logs go to stderr so stdout carries only command output.
func NewApp(c *config.Config) (*App, error) {
	log, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, err
	}
	return newApp(c, log, os.Stdin, os.Stdout, os.Stderr), nil
}

func newApp(c *config.Config, log logging.Logger, in io.Reader, out, errOut io.Writer) *App {
	pool := kdfpool.New(c.Workers)
	h := credential.NewHasher(credential.WithPool(pool), credential.WithLogger(log))

	return &App{
		config: c,
		auth:   auth.NewAuthenticator(h, log.With("component", "auth")),
		log:    log,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// commandContext bounds how long a command may wait for a derivation slot.
func (a *App) commandContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.AcquireTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.AcquireTimeout)
}
