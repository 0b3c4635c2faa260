package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/enigmora/lnxdrive-shell/internal/tui"
)

func (e *env) newMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "monitor",
		Short:   MsgMonitorShort,
		GroupID: "daemon",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runMonitor(cmd)
		},
	}
}

// runMonitor opens the status panel. The panel starts in degraded mode when
// the daemon is away and recovers on its own.
func (e *env) runMonitor(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := e.opts.Open(ctx, e.cfg, e.log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			e.log.Warn().Err(cerr).Msg("core teardown")
		}
	}()

	ui, err := tui.New(a.Services, e.log.WithComponent("tui"))
	if err != nil {
		return err
	}

	a.Start(ctx)
	return ui.Run(ctx)
}

func (e *env) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.printf(cmd, "%s\n", e.opts.Build.String())
			return nil
		},
	}
}
