package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/internal/mock"
	"github.com/enigmora/lnxdrive-shell/models"
)

func TestFormatQuota(t *testing.T) {
	assert.Equal(t, "1.0 GB of 5.0 GB used (20%)", FormatQuota(models.Quota{Used: 1_000_000_000, Total: 5_000_000_000}))
	assert.Equal(t, "512 B used", FormatQuota(models.Quota{Used: 512}))
}

func TestFormatLastSync(t *testing.T) {
	assert.Equal(t, "never", FormatLastSync(time.Time{}))
	assert.Equal(t, "1 hour ago", FormatLastSync(time.Now().Add(-time.Hour)))
}

func TestAccountService_Summary(t *testing.T) {
	proxy := mock.NewMockServiceProxy(gomock.NewController(t))
	svc := NewAccountService(proxy, proxy, proxy)

	info := models.AccountInfo{Email: "user@example.com", Provider: "onedrive"}
	quota := models.Quota{Used: 10, Total: 100}
	state := models.SyncState{Status: "idle", PendingChanges: 3}

	proxy.EXPECT().GetAccountInfo(gomock.Any()).Return(info, nil)
	proxy.EXPECT().GetQuota(gomock.Any()).Return(quota, nil)
	proxy.EXPECT().GetSyncState(gomock.Any()).Return(state, nil)
	proxy.EXPECT().GetConnectionStatus(gomock.Any()).Return("online", nil)

	sum, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, AccountSummary{Account: info, Quota: quota, Sync: state, Connection: "online"}, sum)
}

func TestAccountService_SummaryStopsAtFirstFailure(t *testing.T) {
	proxy := mock.NewMockServiceProxy(gomock.NewController(t))
	svc := NewAccountService(proxy, proxy, proxy)

	proxy.EXPECT().GetAccountInfo(gomock.Any()).Return(models.AccountInfo{}, nil)
	proxy.EXPECT().GetQuota(gomock.Any()).Return(models.Quota{}, errors.New("no quota"))

	_, err := svc.Summary(context.Background())

	assert.EqualError(t, err, "get quota: no quota")
}

func TestAuthService_Complete(t *testing.T) {
	proxy := mock.NewMockServiceProxy(gomock.NewController(t))
	svc := NewAuthService(proxy, logger.Nop())

	proxy.EXPECT().CompleteAuth(gomock.Any(), "code", "state").Return(true, nil)
	assert.NoError(t, svc.Complete(context.Background(), "code", "state"))

	proxy.EXPECT().CompleteAuth(gomock.Any(), "bad", "state").Return(false, nil)
	assert.ErrorIs(t, svc.Complete(context.Background(), "bad", "state"), ErrNotAuthenticated)

	proxy.EXPECT().StartAuth(gomock.Any()).Return(models.AuthSession{URL: "https://login.example.com/?s=1", State: "1"}, nil)
	session, err := svc.Begin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", session.State)
}
