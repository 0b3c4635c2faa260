package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/mock"
	"github.com/enigmora/lnxdrive-shell/models"
)

func TestFolderWatcher_ListsAndRequeriesOnChange(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "existing.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o600))

	files := mock.NewMockFilesProxy(gomock.NewController(t))
	cache := NewStatusCache()
	cache.SetRoot(root)
	cache.GoOnline()
	status := NewStatusService(files, cache, NewInvalidationRegistry(), logger.Nop())

	var mu sync.Mutex
	var queried [][]string
	files.EXPECT().
		GetBatchFileStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, paths []string) (map[string]models.StatusKind, error) {
			mu.Lock()
			queried = append(queried, paths)
			mu.Unlock()
			out := make(map[string]models.StatusKind, len(paths))
			for _, p := range paths {
				out[p] = models.StatusSynced
			}
			return out, nil
		}).
		AnyTimes()

	w := NewFolderWatcher(status, []string{root}, logger.Nop())
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Run(ctx))
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	require.Eventually(t, func() bool {
		return assert.ObjectsAreEqual([]string{existing}, w.VisiblePaths())
	}, 2*time.Second, 5*time.Millisecond)

	added := filepath.Join(root, "added.txt")
	require.NoError(t, os.WriteFile(added, []byte("y"), 0o600))

	require.Eventually(t, func() bool {
		s, _ := cache.Lookup(added)
		return s == models.StatusSynced
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{added, existing}, w.VisiblePaths())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{existing}, queried[0])
}

func TestFolderWatcher_NoDirsBlocksUntilCancelled(t *testing.T) {
	w := NewFolderWatcher(nil, nil, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.NoError(t, w.Run(ctx))
	assert.Empty(t, w.VisiblePaths())
}
