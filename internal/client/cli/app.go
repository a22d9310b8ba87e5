// Package cli implements the interactive authctl shell: signup and signin
// against the auth server, plus a whoami command for the stored token.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/zarclabs/zarc-auth/internal/client/client"
	"github.com/zarclabs/zarc-auth/internal/client/config"
)

type App struct {
	config      *config.Config
	api         *client.Client
	reader      *bufio.Reader
	accessToken string
	userName    string
}

func NewApp(c *config.Config) *App {
	api := client.New(c.ServerBaseURL, c.RequestTimeout)
	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin)}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.accessToken != ""
}
