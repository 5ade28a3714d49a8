package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/zoro11031/turtleshell/internal/cli"
)

var cpInteractive bool

var cpCmd = &cobra.Command{
	Use:   "cp source... destination",
	Short: "Copy files",
	Long: `Copy a file to a destination path, or several files into a destination
directory. Multiple files are copied concurrently and nothing is rolled back
when one of them fails.

Use -i to be asked before an existing file is overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContext(cmd, func(ctx context.Context, c *cli.Context) error {
			return cli.RunCopy(ctx, c, args, cpInteractive || c.Settings.ConfirmOverwrite)
		})
	},
}

func init() {
	cpCmd.Flags().BoolVarP(&cpInteractive, "interactive", "i", false, "prompt before overwrite")
	rootCmd.AddCommand(cpCmd)
}
