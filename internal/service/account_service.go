package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/enigmora/lnxdrive-shell/internal/adapter"
	"github.com/enigmora/lnxdrive-shell/models"
)

// AccountSummary is a display-ready snapshot of the account and sync state.
type AccountSummary struct {
	Account    models.AccountInfo
	Quota      models.Quota
	Sync       models.SyncState
	Connection string
}

// AccountService reads account, quota and sync state for the status panel.
type AccountService struct {
	status adapter.StatusProxy
	sync   adapter.SyncProxy
	mgr    adapter.ManagerProxy
}

func NewAccountService(status adapter.StatusProxy, sync adapter.SyncProxy, mgr adapter.ManagerProxy) *AccountService {
	return &AccountService{status: status, sync: sync, mgr: mgr}
}

func (s *AccountService) Quota(ctx context.Context) (models.Quota, error) {
	q, err := s.status.GetQuota(ctx)
	if err != nil {
		return models.Quota{}, fmt.Errorf("get quota: %w", err)
	}
	return q, nil
}

func (s *AccountService) Account(ctx context.Context) (models.AccountInfo, error) {
	info, err := s.status.GetAccountInfo(ctx)
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("get account info: %w", err)
	}
	return info, nil
}

func (s *AccountService) SyncState(ctx context.Context) (models.SyncState, error) {
	st, err := s.sync.GetSyncState(ctx)
	if err != nil {
		return models.SyncState{}, fmt.Errorf("get sync state: %w", err)
	}
	return st, nil
}

func (s *AccountService) Manager(ctx context.Context) (models.ManagerState, error) {
	st, err := s.mgr.GetManagerState(ctx)
	if err != nil {
		return models.ManagerState{}, fmt.Errorf("get manager state: %w", err)
	}
	return st, nil
}

// Summary collects everything the status panel shows. The first failing
// read aborts the snapshot.
func (s *AccountService) Summary(ctx context.Context) (AccountSummary, error) {
	var (
		sum AccountSummary
		err error
	)
	if sum.Account, err = s.Account(ctx); err != nil {
		return AccountSummary{}, err
	}
	if sum.Quota, err = s.Quota(ctx); err != nil {
		return AccountSummary{}, err
	}
	if sum.Sync, err = s.SyncState(ctx); err != nil {
		return AccountSummary{}, err
	}
	if sum.Connection, err = s.status.GetConnectionStatus(ctx); err != nil {
		return AccountSummary{}, fmt.Errorf("get connection status: %w", err)
	}
	return sum, nil
}

// FormatQuota renders q as "1.2 GB of 5.0 GB used (24%)".
func FormatQuota(q models.Quota) string {
	if q.Total == 0 {
		return humanize.Bytes(q.Used) + " used"
	}
	return fmt.Sprintf("%s of %s used (%.0f%%)", humanize.Bytes(q.Used), humanize.Bytes(q.Total), q.Fraction()*100)
}

// FormatLastSync renders t relative to now, or "never" for the zero time.
func FormatLastSync(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}
