package main

import (
	"context"

	"github.com/zarclabs/zarc-auth/internal/client/cli"
	"github.com/zarclabs/zarc-auth/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(ctx)

}
