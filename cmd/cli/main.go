package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/dmitrijs2005/legalassist/internal/client/cli"
	"github.com/dmitrijs2005/legalassist/internal/client/config"
	"github.com/dmitrijs2005/legalassist/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer zl.Sync()

	app, err := cli.NewApp(ctx, cfg, logging.NewZapLogger(zl.Sugar()))

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
