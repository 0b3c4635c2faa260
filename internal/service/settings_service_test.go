package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/mock"
	"github.com/enigmora/lnxdrive-shell/models"
)

func newSettingsService(t *testing.T) (*SettingsService, *mock.MockSettingsProxy, *StatusCache) {
	settings := mock.NewMockSettingsProxy(gomock.NewController(t))
	cache := NewStatusCache()
	roots := NewSyncRootService(settings, cache, testRoot, logger.Nop())
	return NewSettingsService(settings, roots, logger.Nop()), settings, cache
}

func TestParseFolderTree(t *testing.T) {
	work := models.FolderNode{Name: "Work", Path: "/Documents/Work"}
	docs := models.FolderNode{Name: "Documents", Path: "/Documents", Children: []models.FolderNode{work}}

	tests := []struct {
		name string
		doc  string
		want []models.FolderNode
	}{
		{
			name: "root object",
			doc:  `{"name":"","path":"/","children":[{"name":"Documents","path":"/Documents","children":[{"name":"Work","path":"/Documents/Work"}]}]}`,
			want: []models.FolderNode{docs},
		},
		{
			name: "top-level array",
			doc:  `[{"name":"Documents","path":"/Documents","children":[{"name":"Work","path":"/Documents/Work"}]}]`,
			want: []models.FolderNode{docs},
		},
		{name: "empty", doc: "  ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFolderTree(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoteFolderTree_MalformedYieldsNothing(t *testing.T) {
	svc, settings, _ := newSettingsService(t)
	settings.EXPECT().GetRemoteFolderTree(gomock.Any()).Return(`{"children":`, nil)

	nodes, err := svc.RemoteFolderTree(context.Background())

	require.NoError(t, err)
	assert.Nil(t, nodes)
}

func TestSettingsService_FoldersAndExclusions(t *testing.T) {
	svc, settings, _ := newSettingsService(t)
	ctx := context.Background()

	settings.EXPECT().GetSelectedFolders(gomock.Any()).Return([]string{"/Documents"}, nil)
	settings.EXPECT().SetSelectedFolders(gomock.Any(), []string{"/Photos"}).Return(nil)
	settings.EXPECT().GetExclusionPatterns(gomock.Any()).Return([]string{"*.tmp"}, nil)
	settings.EXPECT().SetExclusionPatterns(gomock.Any(), []string{"*.bak"}).Return(errors.New("rejected"))

	folders, err := svc.SelectedFolders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/Documents"}, folders)

	require.NoError(t, svc.SetSelectedFolders(ctx, []string{"/Photos"}))

	patterns, err := svc.ExclusionPatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp"}, patterns)

	assert.EqualError(t, svc.SetExclusionPatterns(ctx, []string{"*.bak"}), "set exclusion patterns: rejected")
}

func TestSettingsService_ReloadSyncRoot(t *testing.T) {
	svc, settings, cache := newSettingsService(t)
	settings.EXPECT().GetConfig(gomock.Any()).Return("sync_root: /mnt/Cloud\n", nil)

	assert.Equal(t, "/mnt/Cloud", svc.ReloadSyncRoot(context.Background()))
	assert.Equal(t, "/mnt/Cloud", cache.Root())
}
