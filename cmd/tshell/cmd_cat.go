package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/zoro11031/turtleshell/internal/cli"
)

var catCmd = &cobra.Command{
	Use:   "cat [file...]",
	Short: "Print file contents",
	Long: `Print the contents of each file in order. Files are read concurrently;
if any file cannot be read nothing is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContext(cmd, func(ctx context.Context, c *cli.Context) error {
			return cli.RunCat(ctx, c, args)
		})
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
