package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/studiominds/expertpanel/internal/config"
	"github.com/studiominds/expertpanel/internal/httpapi"
	"github.com/studiominds/expertpanel/internal/mcptools"
)

func runServe(args []string) error {
	var (
		addr      string
		configDir string
		verbose   bool
	)
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.StringVar(&addr, "addr", "", "listen address (overrides config)")
	fs.StringVar(&configDir, "config-dir", ".", "directory containing expertpanel.yml")
	fs.BoolVar(&verbose, "verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	logger, err := newLogger(verbose || cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	orch, err := newOrchestrator(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := httpapi.NewServer(orch, cfg, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Stop(shutdownCtx)
	})

	return g.Wait()
}

func runMCP(args []string) error {
	var verbose bool
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.BoolVar(&verbose, "verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Logs go to stderr; stdout is the MCP transport.
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	orch, err := newOrchestrator(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("mcp server starting", zap.String("transport", "stdio"))
	server := mcptools.NewPanelMCPServer(mcptools.NewPanelService(orch))
	return mcptools.RunStdio(ctx, server)
}
