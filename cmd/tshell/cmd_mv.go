package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/zoro11031/turtleshell/internal/cli"
)

var mvInteractive bool

var mvCmd = &cobra.Command{
	Use:   "mv source... destination",
	Short: "Move or rename files",
	Long: `Rename a file or directory, or move several into a destination directory.

A file cannot replace a directory and a directory cannot replace a file.
Moves between different filesystems are not supported.

Use -i to be asked before an existing file is overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContext(cmd, func(ctx context.Context, c *cli.Context) error {
			return cli.RunMove(ctx, c, args, mvInteractive || c.Settings.ConfirmOverwrite)
		})
	},
}

func init() {
	mvCmd.Flags().BoolVarP(&mvInteractive, "interactive", "i", false, "prompt before overwrite")
	rootCmd.AddCommand(mvCmd)
}
