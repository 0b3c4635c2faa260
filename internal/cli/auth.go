package cli

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/enigmora/lnxdrive-shell/internal/client"
	"github.com/enigmora/lnxdrive-shell/models"
)

func (e *env) newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Short:   MsgAuthShort,
		GroupID: "daemon",
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Report whether the daemon is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				ok, err := a.Services.Auth.IsAuthenticated(ctx)
				if err != nil {
					return err
				}
				if ok {
					e.printf(cmd, "%s\n", MsgSignedIn)
				} else {
					e.printf(cmd, "%s\n", MsgNotSignedIn)
				}
				return nil
			})
		},
	}

	var copyURL bool
	login := &cobra.Command{
		Use:   "login",
		Short: "Start the browser sign-in flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				session, err := a.Services.Auth.Begin(ctx)
				if err != nil {
					return err
				}
				e.printf(cmd, "%s\n%s\n", MsgOpenURL, session.URL)
				if copyURL {
					if err = clipboard.WriteAll(session.URL); err != nil {
						e.log.Warn().Err(err).Msg("copy sign-in URL")
					} else {
						e.printf(cmd, "%s\n", MsgURLCopied)
					}
				}
				e.printf(cmd, "%s\nState: %s\n", MsgThenRun, session.State)
				return nil
			})
		},
	}
	login.Flags().BoolVar(&copyURL, "copy", false, "copy the sign-in URL to the clipboard")

	complete := &cobra.Command{
		Use:   "complete CODE STATE",
		Short: "Finish sign-in with the code returned by the browser",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				if err := a.Services.Auth.Complete(ctx, args[0], args[1]); err != nil {
					return err
				}
				e.printf(cmd, "%s\n", MsgSignedIn)
				return nil
			})
		},
	}

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the cloud account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runDaemonAction(cmd, models.ActionLogout, "", "")
		},
	}

	cmd.AddCommand(status, login, complete, logout)
	return cmd
}
