package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/teamfinder/internal/bot"
	"github.com/dmitrijs2005/teamfinder/internal/bot/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app, err := bot.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
