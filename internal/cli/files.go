package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/enigmora/lnxdrive-shell/internal/client"
	"github.com/enigmora/lnxdrive-shell/internal/service"
	"github.com/enigmora/lnxdrive-shell/internal/utils"
	"github.com/enigmora/lnxdrive-shell/models"
)

func (e *env) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status PATH...",
		Short:   MsgStatusShort,
		GroupID: "files",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := absPaths(args)
			if err != nil {
				return err
			}

			return e.withApp(cmd, false, func(ctx context.Context, a *client.App) error {
				statuses := a.Services.Status.GetBatchStatus(ctx, paths)
				for _, p := range paths {
					s, ok := statuses[p]
					if !ok {
						e.printf(cmd, "%s\t%s\n", p, MsgNotManaged)
						continue
					}
					e.printf(cmd, "%s\t%s\n", p, s.Label())
				}
				return nil
			})
		},
	}
}

func (e *env) newPinCmd() *cobra.Command {
	return e.newPathActionCmd("pin PATH...", MsgPinShort, models.ActionPin)
}

func (e *env) newUnpinCmd() *cobra.Command {
	return e.newPathActionCmd("unpin PATH...", MsgUnpinShort, models.ActionUnpin)
}

func (e *env) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sync [PATH...]",
		Short:   MsgSyncShort,
		GroupID: "files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return e.runDaemonAction(cmd, models.ActionSyncNow, "", "")
			}
			return e.runPathAction(cmd, models.ActionForceSync, args)
		},
	}
}

func (e *env) newPathActionCmd(use, short string, kind models.ActionKind) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		GroupID: "files",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runPathAction(cmd, kind, args)
		},
	}
}

// runPathAction dispatches kind for every path and prints one line per
// outcome as it arrives.
func (e *env) runPathAction(cmd *cobra.Command, kind models.ActionKind, args []string) error {
	targets, err := absPaths(args)
	if err != nil {
		return err
	}

	return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
		results := make(chan models.ActionResult, len(targets))
		a.Services.Dispatcher.Dispatch(models.ActionRequest{Kind: kind, Targets: targets}, func(r models.ActionResult) {
			results <- r
		})

		failed := 0
		for range targets {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case r := <-results:
				if r.Err != nil {
					failed++
					e.printf(cmd, "%s\t%s\n", r.Action.Target, describeFailure(r.Err))
					continue
				}
				e.printf(cmd, "%s\t%s: done\n", r.Action.Target, kind.Title())
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d: %w", failed, len(targets), ErrActionsFailed)
		}
		return nil
	})
}

// runDaemonAction runs a single target-less action and prints its outcome.
func (e *env) runDaemonAction(cmd *cobra.Command, kind models.ActionKind, target, argument string) error {
	return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
		if err := a.Services.Dispatcher.Do(ctx, kind, target, argument); err != nil {
			return err
		}
		e.printf(cmd, "%s: done\n", kind.Title())
		return nil
	})
}

func describeFailure(err error) string {
	if actionErr, ok := service.AsActionError(err); ok {
		title, body := service.NotificationText(actionErr)
		return title + ": " + body
	}
	return err.Error()
}

func absPaths(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		p, err := filepath.Abs(utils.ExpandHome(arg))
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", arg, err)
		}
		out = append(out, p)
	}
	return out, nil
}
