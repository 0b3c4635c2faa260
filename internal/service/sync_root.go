package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/utils"
)

var ErrNoSyncRoot = errors.New("configuration has no sync_root")

// daemonConfig is the subset of the daemon's YAML configuration the client
// reads.
type daemonConfig struct {
	SyncRoot string `yaml:"sync_root"`
}

// SyncRootService fetches the sync root boundary from the daemon's
// configuration and installs it on the cache.
type SyncRootService struct {
	settings adapter.SettingsProxy
	cache    *StatusCache
	fallback string
	logger   *logger.Logger
}

func NewSyncRootService(settings adapter.SettingsProxy, cache *StatusCache, fallback string, logger *logger.Logger) *SyncRootService {
	return &SyncRootService{
		settings: settings,
		cache:    cache,
		fallback: utils.NormalizePath(fallback),
		logger:   logger,
	}
}

// Load fetches and installs the sync root, falling back to the configured
// default when the daemon is unreachable or its configuration unusable.
func (s *SyncRootService) Load(ctx context.Context) string {
	root := s.fallback

	text, err := s.settings.GetConfig(ctx)
	if err == nil {
		var parsed string
		if parsed, err = parseSyncRoot(text); err == nil {
			root = parsed
		}
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("fallback", root).Msg("using default sync root")
	}

	s.cache.SetRoot(root)
	s.logger.Info().Str("root", root).Msg("sync root loaded")
	return root
}

func parseSyncRoot(text string) (string, error) {
	var cfg daemonConfig
	if err := yaml.Unmarshal([]byte(text), &cfg); err != nil {
		return "", fmt.Errorf("parse daemon config: %w", err)
	}

	root := utils.NormalizePath(cfg.SyncRoot)
	if root == "" || !filepath.IsAbs(root) {
		return "", ErrNoSyncRoot
	}
	return root, nil
}
