package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/cli"
	"github.com/pcbinspect/client/config"
	logger "github.com/pcbinspect/client/logging"
)

func main() {
	// Interrupt cancels in-flight requests instead of killing the process mid-write
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.Execute(ctx, initApp, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initApp(ctx context.Context, out, errOut io.Writer) (*cli.App, error) {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	if err := logger.InitLogger(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app, err := cli.NewApp(ctx, cfg, out, errOut)
	if err != nil {
		logger.Error("Failed to start client", zap.Error(err))
		return nil, err
	}
	return app, nil
}
