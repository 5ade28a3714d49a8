package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/zoro11031/turtleshell/internal/cli"
)

var touchCmd = &cobra.Command{
	Use:   "touch file...",
	Short: "Create files or update their timestamps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContext(cmd, func(ctx context.Context, c *cli.Context) error {
			return cli.RunTouch(ctx, c, args)
		})
	},
}

func init() {
	rootCmd.AddCommand(touchCmd)
}
