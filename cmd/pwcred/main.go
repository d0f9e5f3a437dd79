package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/pwcred/internal/cli"
	"github.com/dmitrijs2005/pwcred/internal/config"
	"github.com/dmitrijs2005/pwcred/internal/flagx"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	code := app.Run(ctx, flagx.StripArgs(os.Args[1:], config.Flags))
	stop()
	os.Exit(code)

}
