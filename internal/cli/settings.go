package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/enigmora/lnxdrive-shell/internal/client"
	"github.com/enigmora/lnxdrive-shell/models"
)

func (e *env) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "daemon",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the daemon configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				text, err := a.Services.Settings.GetConfig(ctx)
				if err != nil {
					return err
				}
				e.printf(cmd, "%s", text)
				if !strings.HasSuffix(text, "\n") {
					e.printf(cmd, "\n")
				}
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:   "set FILE",
		Short: "Replace the daemon configuration with FILE (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				if err := a.SetConfig(ctx, text); err != nil {
					return err
				}
				e.printf(cmd, "%s: done\nSync root: %s\n", models.ActionSetConfig.Title(), a.Services.Cache.Root())
				return nil
			})
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}

func (e *env) newFoldersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folders",
		Short:   MsgFoldersShort,
		GroupID: "daemon",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the folders selected for sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				folders, err := a.Services.Settings.SelectedFolders(ctx)
				if err != nil {
					return err
				}
				for _, f := range folders {
					e.printf(cmd, "%s\n", f)
				}
				return nil
			})
		},
	}

	tree := &cobra.Command{
		Use:   "tree",
		Short: "Show the remote folder tree, marking selected folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				nodes, err := a.Services.Settings.RemoteFolderTree(ctx)
				if err != nil {
					return err
				}
				selected, err := a.Services.Settings.SelectedFolders(ctx)
				if err != nil {
					return err
				}
				e.printf(cmd, "%s", renderFolderTree(nodes, selected))
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:   "set FOLDER...",
		Short: "Replace the folders selected for sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				return a.Services.Settings.SetSelectedFolders(ctx, args)
			})
		},
	}

	cmd.AddCommand(list, tree, set)
	return cmd
}

func (e *env) newExclusionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exclusions",
		Short:   MsgExclusionsShort,
		GroupID: "daemon",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List exclusion patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				patterns, err := a.Services.Settings.ExclusionPatterns(ctx)
				if err != nil {
					return err
				}
				for _, p := range patterns {
					e.printf(cmd, "%s\n", p)
				}
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:   "set PATTERN...",
		Short: "Replace the exclusion patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				return a.Services.Settings.SetExclusionPatterns(ctx, args)
			})
		},
	}

	cmd.AddCommand(list, set)
	return cmd
}

func renderFolderTree(nodes []models.FolderNode, selected []string) string {
	marked := make(map[string]bool, len(selected))
	for _, s := range selected {
		marked[s] = true
	}

	var b strings.Builder
	var walk func(n models.FolderNode, depth int)
	walk = func(n models.FolderNode, depth int) {
		mark := "[ ]"
		if marked[n.Path] {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %s\n", strings.Repeat("  ", depth), mark, n.Name)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, n := range nodes {
		walk(n, 0)
	}
	return b.String()
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
