package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/zoro11031/turtleshell/internal/cli"
)

var mkdirParents bool

var mkdirCmd = &cobra.Command{
	Use:   "mkdir directory...",
	Short: "Create directories",
	Long: `Create each directory. By default the parent must exist and the
directory must not; -p creates missing parents and accepts existing
directories.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContext(cmd, func(ctx context.Context, c *cli.Context) error {
			return cli.RunMkdir(ctx, c, args, mkdirParents)
		})
	},
}

func init() {
	mkdirCmd.Flags().BoolVarP(&mkdirParents, "parents", "p", false, "create parent directories as needed")
	rootCmd.AddCommand(mkdirCmd)
}
