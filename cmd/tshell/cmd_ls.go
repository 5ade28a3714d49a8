package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/zoro11031/turtleshell/internal/cli"
)

var lsCmd = &cobra.Command{
	Use:   "ls [directory]",
	Short: "List directory contents",
	Long: `List the entries of a directory, one per line, in the order the
operating system returns them. Without an argument the current working
directory is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}
		return withContext(cmd, func(ctx context.Context, c *cli.Context) error {
			return cli.RunList(ctx, c, dir)
		})
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
