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

// ConflictService lists unresolved conflicts. Resolution goes through the
// dispatcher as [models.ActionResolveConflict] and
// [models.ActionResolveAllConflicts].
type ConflictService struct {
	conflicts adapter.ConflictsProxy
	files     adapter.FilesProxy
	logger    *logger.Logger
}

func NewConflictService(conflicts adapter.ConflictsProxy, files adapter.FilesProxy, logger *logger.Logger) *ConflictService {
	return &ConflictService{
		conflicts: conflicts,
		files:     files,
		logger:    logger,
	}
}

// List returns every well-formed conflict the daemon reports. Malformed
// entries are skipped; a malformed document yields an empty list.
func (s *ConflictService) List(ctx context.Context) ([]models.Conflict, error) {
	doc, err := s.conflicts.ListConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conflicts: %w", err)
	}

	list, skipped, err := parseConflictList(doc)
	if err != nil {
		s.logger.Warn().Err(err).Msg("ignoring malformed conflict list")
		return []models.Conflict{}, nil
	}
	if skipped > 0 {
		s.logger.Debug().Int("skipped", skipped).Msg("skipped malformed conflict entries")
	}
	return list, nil
}

// Details returns one conflict by id.
func (s *ConflictService) Details(ctx context.Context, id string) (models.Conflict, error) {
	doc, err := s.conflicts.GetConflictDetails(ctx, id)
	if err != nil {
		return models.Conflict{}, fmt.Errorf("get conflict %s: %w", id, err)
	}

	var c models.Conflict
	if err = json.Unmarshal([]byte(doc), &c); err != nil {
		return models.Conflict{}, fmt.Errorf("decode conflict %s: %w", id, adapter.ErrMalformedReply)
	}
	if !c.Valid() {
		return models.Conflict{}, fmt.Errorf("conflict %s: missing fields: %w", id, adapter.ErrMalformedReply)
	}
	if c.ItemPath == "" {
		c.ItemPath = "unknown"
	}
	return c, nil
}

// Paths returns the local paths currently in conflict.
func (s *ConflictService) Paths(ctx context.Context) ([]string, error) {
	paths, err := s.files.GetConflictPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("get conflict paths: %w", err)
	}
	return paths, nil
}

func parseConflictList(doc string) ([]models.Conflict, int, error) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return []models.Conflict{}, 0, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, 0, fmt.Errorf("decode conflict list: %w", err)
	}

	list := make([]models.Conflict, 0, len(raw))
	skipped := 0
	for _, entry := range raw {
		var c models.Conflict
		if err := json.Unmarshal(entry, &c); err != nil || !c.Valid() {
			skipped++
			continue
		}
		if c.ItemPath == "" {
			c.ItemPath = "unknown"
		}
		list = append(list, c)
	}
	return list, skipped, nil
}
