package main

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/cloudbridge/internal/config"
)

func TestOptions_Apply(t *testing.T) {
	options := &Options{}
	_, err := flags.ParseArgs(options, []string{"-u", "file:///data/container", "--concurrency", "2", "--log", "debug"})
	require.NoError(t, err)

	cfg := &config.Config{ContainerName: "CloudStore", Concurrency: 8, LogLevel: "info", KVDir: "/var/kv"}
	options.Apply(cfg)
	assert.Equal(t, &config.Config{
		ContainerURL:  "file:///data/container",
		ContainerName: "CloudStore",
		KVDir:         "/var/kv",
		Concurrency:   2,
		LogLevel:      "debug",
	}, cfg)

	_, err = flags.ParseArgs(&Options{}, []string{"--log", "verbose"})
	assert.Error(t, err)
}
