package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmora/lnxdrive-shell/models"
)

const testRoot = "/home/user/OneDrive"

func onlineCache() *StatusCache {
	c := NewStatusCache()
	c.SetRoot(testRoot)
	c.GoOnline()
	return c
}

// ── Lookup ──────────────────────────────────────────────────────────────────

func TestStatusCache_LookupOutsideRoot(t *testing.T) {
	c := onlineCache()

	_, ok := c.Lookup("/etc/hosts")
	assert.False(t, ok)

	_, ok = c.Lookup("/home/user/OneDriveBackup/x")
	assert.False(t, ok)
}

func TestStatusCache_LookupUncachedIsUnknown(t *testing.T) {
	c := onlineCache()

	status, ok := c.Lookup(testRoot + "/never-seen.txt")
	require.True(t, ok)
	assert.Equal(t, models.StatusUnknown, status)
}

func TestStatusCache_LookupRootItself(t *testing.T) {
	c := onlineCache()

	_, ok := c.Lookup(testRoot)
	assert.True(t, ok)
}

// ── Push and batch ──────────────────────────────────────────────────────────

func TestStatusCache_PushThenLookup(t *testing.T) {
	c := onlineCache()

	require.True(t, c.ApplyPush(testRoot+"/photos", models.StatusSyncing))
	require.True(t, c.ApplyPush(testRoot+"/photos/", models.StatusSynced))

	status, ok := c.Lookup(testRoot + "/photos")
	require.True(t, ok)
	assert.Equal(t, models.StatusSynced, status)
	assert.Equal(t, 1, c.Len())
}

func TestStatusCache_PushOutsideRootIgnored(t *testing.T) {
	c := onlineCache()

	assert.False(t, c.ApplyPush("/tmp/file", models.StatusSynced))
	assert.Equal(t, 0, c.Len())
}

func TestStatusCache_StaleBatchDoesNotOverwritePush(t *testing.T) {
	c := onlineCache()
	path := testRoot + "/photos"

	token := c.BeginBatch()
	require.True(t, c.ApplyPush(path, models.StatusSyncing))

	changed := c.MergeBatch(token, map[string]models.StatusKind{
		path:                      models.StatusSynced,
		testRoot + "/budget.xlsx": models.StatusPending,
	})

	assert.Equal(t, []string{testRoot + "/budget.xlsx"}, changed)
	status, _ := c.Lookup(path)
	assert.Equal(t, models.StatusSyncing, status)
}

func TestStatusCache_BatchAfterPushApplies(t *testing.T) {
	c := onlineCache()
	path := testRoot + "/photos"

	require.True(t, c.ApplyPush(path, models.StatusSyncing))
	token := c.BeginBatch()

	changed := c.MergeBatch(token, map[string]models.StatusKind{path: models.StatusSynced})

	assert.Equal(t, []string{path}, changed)
	status, _ := c.Lookup(path)
	assert.Equal(t, models.StatusSynced, status)
}

func TestStatusCache_MergeReportsOnlyChanges(t *testing.T) {
	c := onlineCache()
	path := testRoot + "/document.pdf"

	c.MergeBatch(c.BeginBatch(), map[string]models.StatusKind{path: models.StatusSynced})
	changed := c.MergeBatch(c.BeginBatch(), map[string]models.StatusKind{path: models.StatusSynced})

	assert.Empty(t, changed)
}

func TestStatusCache_MergeSkipsOutsideRoot(t *testing.T) {
	c := onlineCache()

	changed := c.MergeBatch(c.BeginBatch(), map[string]models.StatusKind{"/var/log/x": models.StatusSynced})

	assert.Empty(t, changed)
	assert.Equal(t, 0, c.Len())
}

// ── Offline ─────────────────────────────────────────────────────────────────

func TestStatusCache_GoOfflineInvalidatesEverything(t *testing.T) {
	c := onlineCache()
	a, b := testRoot+"/a", testRoot+"/b"
	c.MergeBatch(c.BeginBatch(), map[string]models.StatusKind{a: models.StatusSynced, b: models.StatusCloudOnly})

	paths := c.GoOffline()

	assert.Equal(t, []string{a, b}, paths)
	assert.False(t, c.Online())
	for _, p := range paths {
		status, ok := c.Lookup(p)
		require.True(t, ok)
		assert.Equal(t, models.StatusUnknown, status)
	}
}

func TestStatusCache_BatchInFlightAcrossOutageDropped(t *testing.T) {
	c := onlineCache()
	path := testRoot + "/a"

	token := c.BeginBatch()
	c.GoOffline()
	c.GoOnline()

	changed := c.MergeBatch(token, map[string]models.StatusKind{path: models.StatusSynced})

	assert.Empty(t, changed)
	status, _ := c.Lookup(path)
	assert.Equal(t, models.StatusUnknown, status)
}

func TestStatusCache_OfflineIgnoresUpdates(t *testing.T) {
	c := onlineCache()
	c.GoOffline()

	assert.False(t, c.ApplyPush(testRoot+"/a", models.StatusSynced))
	assert.Empty(t, c.MergeBatch(c.BeginBatch(), map[string]models.StatusKind{testRoot + "/a": models.StatusSynced}))
}

func TestStatusCache_SetRootDropsOutsideEntries(t *testing.T) {
	c := onlineCache()
	c.ApplyPush(testRoot+"/a", models.StatusSynced)

	c.SetRoot("/home/user/Cloud")

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "/home/user/Cloud", c.Root())
}

func TestStatusCache_WarmRecordsButReadsUnknown(t *testing.T) {
	c := onlineCache()
	path := testRoot + "/a"
	c.GoOffline()

	c.Warm()
	assert.True(t, c.Accepting())
	assert.False(t, c.Online())
	require.True(t, c.ApplyPush(path, models.StatusSynced))

	status, ok := c.Lookup(path)
	require.True(t, ok)
	assert.Equal(t, models.StatusUnknown, status)

	c.GoOnline()
	status, _ = c.Lookup(path)
	assert.Equal(t, models.StatusSynced, status)
}
