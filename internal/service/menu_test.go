package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmora/lnxdrive-shell/internal/app"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/models"
)

func menuStatus(t *testing.T, statuses map[string]models.StatusKind) *StatusService {
	t.Helper()
	cache := onlineCache()
	for p, s := range statuses {
		require.True(t, cache.ApplyPush(p, s))
	}
	return NewStatusService(nil, cache, NewInvalidationRegistry(), logger.Nop())
}

func TestAvailableActions_MixedSelection(t *testing.T) {
	cloud := testRoot + "/photos"
	synced := testRoot + "/document.pdf"
	conflict := testRoot + "/budget.xlsx"
	status := menuStatus(t, map[string]models.StatusKind{
		cloud:    models.StatusCloudOnly,
		synced:   models.StatusSynced,
		conflict: models.StatusConflict,
	})

	items := AvailableActions(status, stateReader(models.AvailabilityConnected), []string{cloud, synced, conflict})

	require.Len(t, items, 3)
	assert.Equal(t, models.ActionRequest{Kind: models.ActionPin, Targets: []string{cloud}}, items[0].Request)
	assert.Equal(t, models.ActionRequest{Kind: models.ActionUnpin, Targets: []string{synced}}, items[1].Request)
	assert.Equal(t, models.ActionRequest{Kind: models.ActionForceSync, Targets: []string{cloud, synced, conflict}}, items[2].Request)
	for _, item := range items {
		assert.True(t, item.Enabled)
	}
}

func TestAvailableActions_OnlySyncForUnknown(t *testing.T) {
	status := menuStatus(t, nil)

	items := AvailableActions(status, stateReader(models.AvailabilityConnected), []string{testRoot + "/new.txt"})

	require.Len(t, items, 1)
	assert.Equal(t, models.ActionForceSync, items[0].Request.Kind)
}

func TestAvailableActions_NothingOutsideRoot(t *testing.T) {
	status := menuStatus(t, nil)

	assert.Nil(t, AvailableActions(status, stateReader(models.AvailabilityConnected), []string{"/tmp/a", "/tmp/b"}))
	assert.Nil(t, AvailableActions(status, stateReader(models.AvailabilityConnected), nil))
}

func TestAvailableActions_PartlyManagedSelection(t *testing.T) {
	synced := testRoot + "/document.pdf"
	status := menuStatus(t, map[string]models.StatusKind{synced: models.StatusSynced})

	items := AvailableActions(status, stateReader(models.AvailabilityConnected), []string{"/tmp/notes.txt", synced})

	require.Len(t, items, 2)
	assert.Equal(t, models.ActionRequest{Kind: models.ActionUnpin, Targets: []string{synced}}, items[0].Request)
	assert.Equal(t, models.ActionRequest{Kind: models.ActionForceSync, Targets: []string{synced}}, items[1].Request)
}

func TestAvailableActions_DegradedMode(t *testing.T) {
	status := menuStatus(t, map[string]models.StatusKind{testRoot + "/a": models.StatusSynced})

	items := AvailableActions(status, stateReader(models.AvailabilityReconnecting), []string{testRoot + "/a"})

	require.Len(t, items, 1)
	assert.Equal(t, app.MenuServiceNotRunning, items[0].Label)
	assert.False(t, items[0].Enabled)
}

func TestBackgroundActions(t *testing.T) {
	status := menuStatus(t, nil)

	items := BackgroundActions(status, stateReader(models.AvailabilityConnected), testRoot+"/Documents")
	require.Len(t, items, 1)
	assert.Equal(t, app.MenuSyncFolder, items[0].Label)
	assert.Equal(t, []string{testRoot + "/Documents"}, items[0].Request.Targets)

	assert.Nil(t, BackgroundActions(status, stateReader(models.AvailabilityDisconnected), testRoot))
	assert.Nil(t, BackgroundActions(status, stateReader(models.AvailabilityConnected), "/srv"))
}
