package main

import "github.com/viant/cloudbridge/internal/config"

// Options overrides environment configuration.
type Options struct {
	ContainerURL  string `short:"u" long:"container" description:"container URL, e.g. file:///data/container"`
	ContainerName string `short:"n" long:"name" description:"container display name"`
	LocalURL      string `short:"l" long:"local" description:"local download URL"`
	KVDir         string `short:"k" long:"kv" description:"key-value store directory, in memory when empty"`
	Concurrency   int    `short:"c" long:"concurrency" description:"max parallel handlers"`
	LogLevel      string `long:"log" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
}

// Apply copies non-zero options over config.
func (o *Options) Apply(cfg *config.Config) {
	if o.ContainerURL != "" {
		cfg.ContainerURL = o.ContainerURL
	}
	if o.ContainerName != "" {
		cfg.ContainerName = o.ContainerName
	}
	if o.LocalURL != "" {
		cfg.LocalURL = o.LocalURL
	}
	if o.KVDir != "" {
		cfg.KVDir = o.KVDir
	}
	if o.Concurrency != 0 {
		cfg.Concurrency = o.Concurrency
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
}
