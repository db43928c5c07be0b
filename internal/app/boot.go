package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/memberadmin/internal/config"
	"github.com/five82/memberadmin/internal/logging"
	"github.com/five82/memberadmin/internal/members"
)

// runtime bundles what every command needs: settings, a logger and the
// member client.
type runtime struct {
	cfg    config.Config
	log    *zap.Logger
	flush  func()
	client *members.Client
}

// boot loads configuration and builds the logger and client. sourceURL, when
// set, takes precedence over the config file and environment.
func boot(configPath, sourceURL string, stderr bool) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if url := strings.TrimSpace(sourceURL); url != "" {
		cfg.SourceURL = url
	}

	log, flush := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Stderr: stderr,
	})

	client, err := members.NewClient(cfg.SourceURL, cfg.RequestTimeout)
	if err != nil {
		flush()
		return nil, fmt.Errorf("init member client: %w", err)
	}

	log.Debug("configuration loaded",
		zap.String("source", client.Source()),
		zap.Duration("timeout", cfg.RequestTimeout),
		zap.String("log_level", cfg.LogLevel),
	)
	return &runtime{cfg: cfg, log: log, flush: flush, client: client}, nil
}
