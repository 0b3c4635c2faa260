package cli

import (
	"context"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/enigmora/lnxdrive-shell/internal/client"
	"github.com/enigmora/lnxdrive-shell/models"
)

func (e *env) newConflictsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conflicts",
		Short:   MsgConflictsShort,
		GroupID: "files",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List unresolved conflicts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				conflicts, err := a.Services.Conflicts.List(ctx)
				if err != nil {
					return err
				}
				if len(conflicts) == 0 {
					e.printf(cmd, "%s\n", MsgNoConflicts)
					return nil
				}
				e.printf(cmd, "%s\n", conflictTable(conflicts))
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show both versions of a conflict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				c, err := a.Services.Conflicts.Details(ctx, args[0])
				if err != nil {
					return err
				}
				e.printf(cmd, "%s\n", c.ItemPath)
				e.printf(cmd, "Detected: %s\n", c.DetectedAt)
				e.printf(cmd, "Local:    %s, modified %s, %s\n", humanize.Bytes(c.LocalVersion.SizeBytes), c.LocalVersion.ModifiedAt, c.LocalVersion.Hash)
				e.printf(cmd, "Remote:   %s, modified %s, %s\n", humanize.Bytes(c.RemoteVersion.SizeBytes), c.RemoteVersion.ModifiedAt, c.RemoteVersion.Hash)
				return nil
			})
		},
	}

	resolve := &cobra.Command{
		Use:       "resolve ID STRATEGY",
		Short:     "Resolve one conflict (keep_local, keep_remote or keep_both)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: strategies(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runDaemonAction(cmd, models.ActionResolveConflict, args[0], args[1])
		},
	}

	resolveAll := &cobra.Command{
		Use:   "resolve-all STRATEGY",
		Short: "Resolve every conflict with one strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runDaemonAction(cmd, models.ActionResolveAllConflicts, "", args[0])
		},
	}

	paths := &cobra.Command{
		Use:   "paths",
		Short: "List local paths in conflict",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				list, err := a.Services.Conflicts.Paths(ctx)
				if err != nil {
					return err
				}
				for _, p := range list {
					e.printf(cmd, "%s\n", p)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(list, show, resolve, resolveAll, paths)
	return cmd
}

func conflictTable(conflicts []models.Conflict) string {
	t := table.New().Headers("ID", "FILE", "DETECTED", "LOCAL", "REMOTE")
	for _, c := range conflicts {
		t.Row(
			c.ID,
			c.FileName(),
			c.DetectedAt,
			humanize.Bytes(c.LocalVersion.SizeBytes),
			humanize.Bytes(c.RemoteVersion.SizeBytes),
		)
	}
	return t.Render()
}

func strategies() []string {
	return []string{
		string(models.KeepLocal),
		string(models.KeepRemote),
		string(models.KeepBoth),
	}
}
