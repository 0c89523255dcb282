package main

import (
	"bufio"
	"context"
	"os"

	"schememonitor/internal/dashboard/cli"
	"schememonitor/internal/dashboard/gateway"
	"schememonitor/internal/dashboard/toast"
	"schememonitor/internal/env"
	"schememonitor/internal/util"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := util.NewLogger(env.GetString("ENV", "development"))
	defer logger.Sync()

	base := env.GetString("DASHBOARD_API_URL", "http://localhost:8000")
	client := gateway.NewClient(base)
	notifier := toast.NewLogger(logger)

	app := cli.NewApp(client, notifier)

	ctx := context.Background()
	if err := app.Load(ctx); err != nil {
		logger.Warnf("Initial load failed: %v", err)
	}

	cli.RunREPL(ctx, app, bufio.NewScanner(os.Stdin))
}
