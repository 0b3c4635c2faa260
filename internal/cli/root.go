// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the lnxdrive-shell command tree.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/enigmora/lnxdrive-shell/internal/client"
	"github.com/enigmora/lnxdrive-shell/internal/config"
	"github.com/enigmora/lnxdrive-shell/internal/logger"
	"github.com/enigmora/lnxdrive-shell/models"
)

// Opener builds the core a command runs against.
type Opener func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*client.App, error)

// Options configures the command tree.
type Options struct {
	Build models.BuildInfo

	// Open defaults to [client.NewApp].
	Open Opener

	// Logger overrides the file logger built from configuration.
	Logger *logger.Logger
}

// env is the per-invocation state shared by every command.
type env struct {
	opts Options
	cfg  *config.ClientConfig
	log  *logger.Logger
}

// NewRootCmd creates and returns the root command.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Open == nil {
		opts.Open = client.NewApp
	}
	e := &env{opts: opts}

	rootCmd := &cobra.Command{
		Use:     "lnxdrive-shell",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: opts.Build.Version(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetClientConfig(cmd.Flags())
			if err != nil {
				return err
			}
			e.cfg = cfg

			e.log = opts.Logger
			if e.log == nil {
				e.log = logger.NewClientLogger("lnxdrive-shell", cfg.Log.Level, cfg.Log.File)
			}
			e.log.Debug().Str("command", cmd.CommandPath()).Msg("command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runMonitor(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddGroup(
		&cobra.Group{ID: "files", Title: "File Commands:"},
		&cobra.Group{ID: "daemon", Title: "Daemon Commands:"},
	)

	rootCmd.AddCommand(
		e.newStatusCmd(),
		e.newPinCmd(),
		e.newUnpinCmd(),
		e.newSyncCmd(),
		e.newPauseCmd(),
		e.newResumeCmd(),
		e.newQuotaCmd(),
		e.newAccountCmd(),
		e.newConflictsCmd(),
		e.newAuthCmd(),
		e.newConfigCmd(),
		e.newFoldersCmd(),
		e.newExclusionsCmd(),
		e.newMonitorCmd(),
		e.newVersionCmd(),
	)

	return rootCmd
}

// withApp opens and starts a core for the duration of fn. When
// requireConnected is set fn only runs once the daemon is available.
func (e *env) withApp(cmd *cobra.Command, requireConnected bool, fn func(ctx context.Context, a *client.App) error) error {
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

	a.Start(ctx)

	waitCtx, cancel := context.WithTimeout(ctx, e.connectTimeout())
	err = a.WaitConnected(waitCtx)
	cancel()
	if err != nil && requireConnected {
		return userError(err)
	}

	return userError(fn(ctx, a))
}

func (e *env) connectTimeout() time.Duration {
	if t := e.cfg.Calls.LookupTimeout; t > 0 {
		return t
	}
	return config.DefaultLookupTimeout
}

func (e *env) printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
