package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/enigmora/lnxdrive-shell/internal/client"
	"github.com/enigmora/lnxdrive-shell/internal/service"
	"github.com/enigmora/lnxdrive-shell/models"
)

func (e *env) newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pause",
		Short:   MsgPauseShort,
		GroupID: "daemon",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runDaemonAction(cmd, models.ActionPauseSync, "", "")
		},
	}
}

func (e *env) newResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resume",
		Short:   MsgResumeShort,
		GroupID: "daemon",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runDaemonAction(cmd, models.ActionResumeSync, "", "")
		},
	}
}

func (e *env) newQuotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "quota",
		Short:   MsgQuotaShort,
		GroupID: "daemon",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				q, err := a.Services.Account.Quota(ctx)
				if err != nil {
					return err
				}
				e.printf(cmd, "%s\n", service.FormatQuota(q))
				return nil
			})
		},
	}
}

func (e *env) newAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "account",
		Short:   MsgAccountShort,
		GroupID: "daemon",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				sum, err := a.Services.Account.Summary(ctx)
				if err != nil {
					return err
				}
				mgr, err := a.Services.Account.Manager(ctx)
				if err != nil {
					return err
				}

				e.printf(cmd, "Email:        %s\n", sum.Account.Email)
				e.printf(cmd, "Name:         %s\n", sum.Account.DisplayName)
				e.printf(cmd, "Provider:     %s\n", sum.Account.Provider)
				e.printf(cmd, "Storage:      %s\n", service.FormatQuota(sum.Quota))
				e.printf(cmd, "Sync:         %s\n", sum.Sync.Status)
				e.printf(cmd, "Last sync:    %s\n", service.FormatLastSync(sum.Sync.LastSyncTime))
				e.printf(cmd, "Pending:      %d\n", sum.Sync.PendingChanges)
				e.printf(cmd, "Connection:   %s\n", sum.Connection)
				e.printf(cmd, "Daemon:       %s %s\n", mgr.Status, mgr.Version)
				return nil
			})
		},
	}
}
