package main

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/cloudbridge"
	"github.com/viant/cloudbridge/internal/config"
	"github.com/viant/cloudbridge/internal/logger"
)

// Run serves the CloudStore module over stdio; logs go to stderr.
func Run(args []string) error {
	options := &Options{}
	_, err := flags.ParseArgs(options, args)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	options.Apply(cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}
	ctx := context.Background()
	srv, err := cloudbridge.NewService(ctx, cfg, logger.New(cfg.LogLevel, os.Stderr))
	if err != nil {
		return err
	}
	defer srv.Close()
	return srv.Stdio(ctx).ListenAndServe()
}
