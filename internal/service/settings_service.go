package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/models"
)

// SettingsService reads the daemon's configuration and edits its selective
// sync folders and exclusion patterns. Replacing the configuration goes
// through the dispatcher as [models.ActionSetConfig].
type SettingsService struct {
	settings adapter.SettingsProxy
	roots    *SyncRootService
	logger   *logger.Logger
}

func NewSettingsService(settings adapter.SettingsProxy, roots *SyncRootService, logger *logger.Logger) *SettingsService {
	return &SettingsService{
		settings: settings,
		roots:    roots,
		logger:   logger,
	}
}

// GetConfig returns the daemon's YAML configuration text.
func (s *SettingsService) GetConfig(ctx context.Context) (string, error) {
	text, err := s.settings.GetConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("get config: %w", err)
	}
	return text, nil
}

func (s *SettingsService) SelectedFolders(ctx context.Context) ([]string, error) {
	folders, err := s.settings.GetSelectedFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("get selected folders: %w", err)
	}
	return folders, nil
}

func (s *SettingsService) SetSelectedFolders(ctx context.Context, folders []string) error {
	if err := s.settings.SetSelectedFolders(ctx, folders); err != nil {
		return fmt.Errorf("set selected folders: %w", err)
	}
	return nil
}

func (s *SettingsService) ExclusionPatterns(ctx context.Context) ([]string, error) {
	patterns, err := s.settings.GetExclusionPatterns(ctx)
	if err != nil {
		return nil, fmt.Errorf("get exclusion patterns: %w", err)
	}
	return patterns, nil
}

func (s *SettingsService) SetExclusionPatterns(ctx context.Context, patterns []string) error {
	if err := s.settings.SetExclusionPatterns(ctx, patterns); err != nil {
		return fmt.Errorf("set exclusion patterns: %w", err)
	}
	return nil
}

// ReloadSyncRoot refetches the sync root after the configuration changed.
func (s *SettingsService) ReloadSyncRoot(ctx context.Context) string {
	return s.roots.Load(ctx)
}

// RemoteFolderTree returns the top-level remote folders. A malformed tree is
// logged and yields no folders.
func (s *SettingsService) RemoteFolderTree(ctx context.Context) ([]models.FolderNode, error) {
	doc, err := s.settings.GetRemoteFolderTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("get remote folder tree: %w", err)
	}

	nodes, err := parseFolderTree(doc)
	if err != nil {
		s.logger.Warn().Err(err).Msg("ignoring malformed remote folder tree")
		return nil, nil
	}
	return nodes, nil
}

// parseFolderTree accepts either a single root object, whose children are
// returned, or an array of top-level folders.
func parseFolderTree(doc string) ([]models.FolderNode, error) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil, nil
	}

	if strings.HasPrefix(doc, "[") {
		var nodes []models.FolderNode
		if err := json.Unmarshal([]byte(doc), &nodes); err != nil {
			return nil, fmt.Errorf("decode folder list: %w", err)
		}
		return nodes, nil
	}

	var root models.FolderNode
	if err := json.Unmarshal([]byte(doc), &root); err != nil {
		return nil, fmt.Errorf("decode folder tree: %w", err)
	}
	return root.Children, nil
}
